// Package store implements the SQLite-indexed project store for declared
// property types. The propertytypes.json document in the data directory is
// the source of truth; SQLite is the query index rebuilt from it.
// Implements: prd002-store-backend R3-R6;
//
//	docs/ARCHITECTURE § Project Store.
package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/proptypes/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Filenames inside the data directory.
const (
	documentName = "propertytypes.json"
	indexDBName  = "index.db"
)

// Backend implements the Store interface. The JSON type document is the
// source of truth; the SQLite index answers list and lookup queries
// without re-parsing the document.
type Backend struct {
	mu        sync.RWMutex
	attached  bool
	config    types.Config
	db        *sql.DB
	dataDir   string
	projectID string
}

var _ types.Store = (*Backend)(nil)

// NewBackend creates a new store instance. The store is not attached;
// call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the store with the given configuration. Creates the
// data directory and an empty type document if needed, opens the SQLite
// index, and loads or assigns the project identity.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	docPath := filepath.Join(dataDir, documentName)
	if _, err := os.Stat(docPath); os.IsNotExist(err) {
		if err := WriteDocument(docPath, nil); err != nil {
			return fmt.Errorf("creating empty type document: %w", err)
		}
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, indexDBName))
	if err != nil {
		return fmt.Errorf("opening index database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("applying schema: %w", err)
	}

	projectID, err := ensureProjectID(db)
	if err != nil {
		db.Close()
		return err
	}

	b.config = config
	b.db = db
	b.dataDir = dataDir
	b.projectID = projectID
	b.attached = true
	return nil
}

// Detach releases the index database. Idempotent: detaching a detached
// store succeeds.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false

	if err := b.db.Close(); err != nil {
		return fmt.Errorf("closing index database: %w", err)
	}
	return nil
}

// ProjectID returns the project identity assigned on first attach.
// Empty while detached.
func (b *Backend) ProjectID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return ""
	}
	return b.projectID
}

// LoadTypes replaces the registry contents with the project's type
// document and rebuilds the index to match.
func (b *Backend) LoadTypes(reg *types.Registry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	records, err := ReadDocument(filepath.Join(b.dataDir, documentName))
	if err != nil {
		return err
	}

	reg.LoadFrom(records, b.dataDir)
	return b.reindex(reg)
}

// SaveTypes writes the registry back as the project's type document and
// refreshes the index, both inside the same attach.
func (b *Backend) SaveTypes(reg *types.Registry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	records := reg.ToVariant(b.dataDir)
	if err := WriteDocument(filepath.Join(b.dataDir, documentName), records); err != nil {
		return err
	}
	return b.reindex(reg)
}

// ListTypes returns summary rows from the index, ordered by id. A kind
// other than KindInvalid filters the rows.
func (b *Backend) ListTypes(kind types.Kind) ([]types.TypeRow, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	query := "SELECT type_id, name, kind FROM property_types ORDER BY type_id"
	args := []any{}
	if kind != types.KindInvalid {
		query = "SELECT type_id, name, kind FROM property_types WHERE kind = ? ORDER BY type_id"
		args = append(args, kind.String())
	}

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying property types: %w", err)
	}
	defer rows.Close()

	var out []types.TypeRow
	for rows.Next() {
		var row types.TypeRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Kind); err != nil {
			return nil, fmt.Errorf("scanning property type row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// reindex rebuilds the property_types table from the registry inside one
// transaction.
func (b *Backend) reindex(reg *types.Registry) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning reindex transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM property_types"); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	ctx := types.NewExportContext(reg, b.dataDir)
	for _, t := range reg.Types() {
		record, err := json.Marshal(t.ToVariant(ctx))
		if err != nil {
			return fmt.Errorf("encoding type %q: %w", t.Name(), err)
		}
		if _, err := tx.Exec(
			"INSERT INTO property_types (type_id, name, kind, record) VALUES (?, ?, ?, ?)",
			t.ID(), t.Name(), t.Kind().String(), string(record),
		); err != nil {
			return fmt.Errorf("indexing type %q: %w", t.Name(), err)
		}
	}

	return tx.Commit()
}

// ensureProjectID loads the project row, inserting a fresh UUID v7 on
// first attach.
func ensureProjectID(db *sql.DB) (string, error) {
	var id string
	err := db.QueryRow("SELECT project_id FROM project LIMIT 1").Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("reading project identity: %w", err)
	}

	newID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating project UUID: %w", err)
	}
	id = newID.String()

	if _, err := db.Exec(
		"INSERT INTO project (project_id, created_at) VALUES (?, ?)",
		id, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return "", fmt.Errorf("writing project identity: %w", err)
	}
	return id, nil
}
