// Session setup shared by subcommands: resolve directories, load config,
// attach the store, load the registry.
package cli

import (
	"fmt"

	"github.com/mesh-intelligence/proptypes/internal/paths"
	"github.com/mesh-intelligence/proptypes/internal/store"
	"github.com/mesh-intelligence/proptypes/pkg/types"
)

// session bundles an attached store with the registry loaded from it.
type session struct {
	store *store.Backend
	reg   *types.Registry
	dir   string
}

// openSession resolves directories, attaches the store, and loads the
// project's declared types. The caller must close the session.
func openSession() (*session, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	b := store.NewBackend()
	if err := b.Attach(types.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	reg := types.NewRegistry()
	if err := b.LoadTypes(reg); err != nil {
		b.Detach()
		return nil, fmt.Errorf("load types: %w", err)
	}

	return &session{store: b, reg: reg, dir: dataDir}, nil
}

// save writes the registry back to the store.
func (s *session) save() error {
	return s.store.SaveTypes(s.reg)
}

// close detaches the store.
func (s *session) close() {
	s.store.Detach()
}
