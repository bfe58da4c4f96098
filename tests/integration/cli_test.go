// CLI surface tests: every typekit subcommand against a temp project.
package integration

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProject returns fresh config and data directories for one CLI run.
func newProject(t *testing.T) (string, string) {
	t.Helper()
	base := t.TempDir()
	return filepath.Join(base, "config"), filepath.Join(base, "data")
}

func TestCLIVersion(t *testing.T) {
	configDir, dataDir := newProject(t)
	out, err := runCLI(t, configDir, dataDir, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "typekit v")
}

func TestCLIInitCreatesProject(t *testing.T) {
	configDir, dataDir := newProject(t)
	out, err := runCLI(t, configDir, dataDir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized project")

	assert.FileExists(t, filepath.Join(configDir, "config.yaml"))
	assert.FileExists(t, filepath.Join(dataDir, "propertytypes.json"))
}

func TestCLIDeclareAndList(t *testing.T) {
	configDir, dataDir := newProject(t)

	_, err := runCLI(t, configDir, dataDir, "add-enum", "Direction", "--values", "N,E,S,W")
	require.NoError(t, err)
	_, err = runCLI(t, configDir, dataDir, "add-class", "Monster")
	require.NoError(t, err)

	out, err := runCLI(t, configDir, dataDir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Direction")
	assert.Contains(t, out, "Monster")

	out, err = runCLI(t, configDir, dataDir, "list", "--kind", "enum")
	require.NoError(t, err)
	assert.Contains(t, out, "Direction")
	assert.NotContains(t, out, "Monster")

	// Declaring the same name twice is refused.
	_, err = runCLI(t, configDir, dataDir, "add-enum", "Direction", "--values", "up,down")
	require.Error(t, err)
}

func TestCLIShowJSON(t *testing.T) {
	configDir, dataDir := newProject(t)

	_, err := runCLI(t, configDir, dataDir, "add-enum", "Direction", "--values", "N,E,S,W", "--flags")
	require.NoError(t, err)

	out, err := runCLI(t, configDir, dataDir, "--json", "show", "Direction")
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, "enum", record["type"])
	assert.Equal(t, true, record["valuesAsFlags"])
	assert.EqualValues(t, 1, record["id"])
}

func TestCLIShowUnknownType(t *testing.T) {
	configDir, dataDir := newProject(t)
	_, err := runCLI(t, configDir, dataDir, "show", "Ghost")
	require.Error(t, err)
}

func TestCLIMemberEditingRefusesCycles(t *testing.T) {
	configDir, dataDir := newProject(t)

	for _, name := range []string{"A", "B"} {
		_, err := runCLI(t, configDir, dataDir, "add-class", name)
		require.NoError(t, err)
	}

	// A.b: B, then B.a: A would close the cycle.
	_, err := runCLI(t, configDir, dataDir, "add-member", "A", "b", "B")
	require.NoError(t, err)
	_, err = runCLI(t, configDir, dataDir, "add-member", "B", "a", "A")
	require.Error(t, err, "closing a containment cycle must be refused")

	// A class is never a member of itself.
	_, err = runCLI(t, configDir, dataDir, "add-member", "A", "self", "A")
	require.Error(t, err)

	// Generic members are always fine.
	_, err = runCLI(t, configDir, dataDir, "add-member", "B", "hp", "int", "--default", "10")
	require.NoError(t, err)
}

func TestCLIRemove(t *testing.T) {
	configDir, dataDir := newProject(t)

	_, err := runCLI(t, configDir, dataDir, "add-enum", "Direction", "--values", "N,E")
	require.NoError(t, err)
	_, err = runCLI(t, configDir, dataDir, "remove", "Direction")
	require.NoError(t, err)

	out, err := runCLI(t, configDir, dataDir, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Direction")

	_, err = runCLI(t, configDir, dataDir, "remove", "Direction")
	require.Error(t, err)
}

func TestCLICheckReportsProblems(t *testing.T) {
	configDir, dataDir := newProject(t)

	_, err := runCLI(t, configDir, dataDir, "add-enum", "Direction", "--values", "N,E")
	require.NoError(t, err)

	out, err := runCLI(t, configDir, dataDir, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "no problems")
}

func TestCLIExportImport(t *testing.T) {
	configDir, dataDir := newProject(t)

	_, err := runCLI(t, configDir, dataDir, "add-enum", "Direction", "--values", "N,E,S,W")
	require.NoError(t, err)

	exported := filepath.Join(t.TempDir(), "types.json")
	out, err := runCLI(t, configDir, dataDir, "export", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 types")
	assert.FileExists(t, exported)

	// Import into a second project.
	configDir2, dataDir2 := newProject(t)
	out, err = runCLI(t, configDir2, dataDir2, "import", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 of 1 types")

	out, err = runCLI(t, configDir2, dataDir2, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Direction")

	// Importing the same document again adds nothing.
	out, err = runCLI(t, configDir2, dataDir2, "import", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 of 1 types")
}
