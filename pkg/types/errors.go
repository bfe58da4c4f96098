package types

import "errors"

// Registry and type editing errors (prd001-registry-core R7).
var (
	ErrInvalidName        = errors.New("invalid name")
	ErrDuplicateName      = errors.New("duplicate type name")
	ErrDuplicateMember    = errors.New("duplicate member name")
	ErrMemberNotFound     = errors.New("member not found")
	ErrTypeNotFound       = errors.New("type not found")
	ErrCyclicReference    = errors.New("class cannot contain itself")
	ErrTooManyFlagValues  = errors.New("flag enum exceeds the usable bit width")
	ErrInvalidStorageType = errors.New("invalid storage type")
)

// Store lifecycle errors (prd002-store-backend R7).
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Config validation errors (prd002-store-backend R1).
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)
