package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/propman/internal/paths"
)

// isolate points the config directory at an empty temp dir, runs from
// another empty dir and clears the environment propman reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	for _, env := range []string{"PROPMAN_DEBUG", "PROPMAN_ALL", "PROPMAN_MOVE", "PROPMAN_REMOVE", "PROPMAN_COLOR", "PROPMAN_STYLE", "PROPMAN_LOG_FORMAT"} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	t.Chdir(t.TempDir())
	viper.Reset()
	return dir
}

// execute runs the CLI and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := ExecuteArgs(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func writeNote(t *testing.T, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
