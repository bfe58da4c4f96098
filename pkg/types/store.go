package types

// Store defines the interface for project-scoped persistence of declared
// types. Callers attach to a backend, load and save a Registry, and
// detach when done.
// Implements prd002-store-backend R2.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// ProjectID returns the stable identity of the attached project.
	ProjectID() string

	// LoadTypes replaces the registry contents with the project's
	// declared types, resolving forward references.
	LoadTypes(reg *Registry) error

	// SaveTypes writes the registry back as the project's type
	// document and refreshes the lookup index.
	SaveTypes(reg *Registry) error

	// ListTypes returns summary rows for the declared types, filtered
	// by kind when kind is not KindInvalid.
	ListTypes(kind Kind) ([]TypeRow, error)
}

// TypeRow is a summary of one declared type as indexed by the store.
type TypeRow struct {
	ID   int
	Name string
	Kind string
}
