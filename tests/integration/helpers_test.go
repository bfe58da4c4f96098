// Package integration tests the proptypes system end to end: store
// lifecycle, document round-trips through the registry, and the typekit
// CLI surface.
// Implements: test suites for prd001-registry-core, prd002-store-backend,
// prd003-typekit-cli.
package integration

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/proptypes/internal/cli"
	"github.com/mesh-intelligence/proptypes/pkg/store"
	"github.com/mesh-intelligence/proptypes/pkg/types"
)

// attachedStore creates a store attached to a temp data directory.
func attachedStore(t *testing.T) (types.Store, string) {
	t.Helper()
	dir := t.TempDir()
	b := store.NewBackend()
	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { b.Detach() })
	return b, dir
}

// runCLI executes one typekit command against the given config and data
// directories, returning its combined output.
func runCLI(t *testing.T, configDir, dataDir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config-dir", configDir, "--data-dir", dataDir}, args...))
	err := root.Execute()
	return out.String(), err
}

// directionEnum builds the canonical four-direction enum used across the
// suite.
func directionEnum() *types.EnumType {
	e := types.NewEnumType("Direction")
	e.Values = []string{"N", "E", "S", "W"}
	return e
}
