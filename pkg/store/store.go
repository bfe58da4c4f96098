// Package store provides the public API for the SQLite-indexed project
// store. It exposes the factory function while keeping implementation
// details internal.
//
// Implements: prd002-store-backend R2 (store factory);
//
//	docs/ARCHITECTURE § Public API.
package store

import (
	"github.com/mesh-intelligence/proptypes/internal/store"
	"github.com/mesh-intelligence/proptypes/pkg/types"
)

// NewBackend creates a new project store instance. The store is not
// attached; call Attach with a Config to initialize.
//
// Example:
//
//	s := store.NewBackend()
//	err := s.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".typekit-db",
//	})
//	defer s.Detach()
func NewBackend() types.Store {
	return store.NewBackend()
}
