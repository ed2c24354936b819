package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/propman/internal/config"
	"github.com/thoreinstein/propman/internal/errors"
)

func TestConfigPath(t *testing.T) {
	dir := isolate(t)

	stdout, _, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml")+"\n", stdout)
}

func TestConfigList_Formats(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("move: [status, tags]\nstyle: github\n"), 0o600))

	want := config.Config{
		Version:   1,
		Move:      []string{"status", "tags"},
		Remove:    []string{},
		Color:     "auto",
		Style:     "github",
		LogFormat: "text",
	}

	tests := []struct {
		name   string
		args   []string
		decode func([]byte, any) error
	}{
		{"default is yaml", []string{"config"}, yaml.Unmarshal},
		{"yaml", []string{"config", "list"}, yaml.Unmarshal},
		{"toml", []string{"config", "list", "--format", "toml"}, toml.Unmarshal},
		{"json", []string{"config", "list", "--format", "json"}, json.Unmarshal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)

			got := config.Config{Remove: []string{}}
			require.NoError(t, tt.decode([]byte(stdout), &got), "output %q", stdout)
			if len(got.Remove) == 0 {
				got.Remove = []string{}
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestConfigList_UnknownFormat(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "config", "list", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidFlag))
}

func TestConfigSetGet(t *testing.T) {
	dir := isolate(t)

	stdout, _, err := execute(t, "config", "set", "move", "status, tags,")
	require.NoError(t, err)
	assert.Equal(t, "Set move = [status tags]\n", stdout)

	_, _, err = execute(t, "config", "set", "all", "true")
	require.NoError(t, err)

	path := filepath.Join(dir, "config.yaml")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	var saved config.Config
	require.NoError(t, yaml.Unmarshal([]byte(readFile(t, path)), &saved))
	assert.Equal(t, []string{"status", "tags"}, saved.Move)
	assert.True(t, saved.All)

	stdout, _, err = execute(t, "config", "get", "move")
	require.NoError(t, err)
	assert.Equal(t, "status\ntags\n", stdout)

	stdout, _, err = execute(t, "config", "get", "all")
	require.NoError(t, err)
	assert.Equal(t, "true\n", stdout)
}

func TestConfigSet_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		wantIs error
	}{
		{"invalid value", []string{"config", "set", "color", "rainbow"}, errors.ErrInvalidConfig},
		{"bad bool", []string{"config", "set", "all", "maybe"}, errors.ErrInvalidFlag},
		{"bad version", []string{"config", "set", "version", "one"}, errors.ErrInvalidFlag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)

			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantIs), "error %v", err)
			assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

			_, statErr := os.Stat(filepath.Join(dir, "config.yaml"))
			assert.True(t, os.IsNotExist(statErr), "invalid value must not be saved")
		})
	}
}

func TestConfigSet_RepairsInvalidFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: rainbow\n"), 0o600))

	_, _, err := execute(t, "config", "get", "color")
	require.Error(t, err)

	_, _, err = execute(t, "config", "set", "color", "never")
	require.NoError(t, err)

	stdout, _, err := execute(t, "config", "get", "color")
	require.NoError(t, err)
	assert.Equal(t, "never\n", stdout)
}

func TestConfigGet_UnknownKey(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "config", "get", "platforms")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, errors.Suggestion(err), "log_format")
}

func TestConfigEdit_CreatesFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as editor")
	}
	dir := isolate(t)

	script := filepath.Join(t.TempDir(), "fake-editor")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"opened $1\"\n"), 0o755))
	t.Setenv("EDITOR", script)

	stdout, _, err := execute(t, "config", "edit")
	require.NoError(t, err)

	path := filepath.Join(dir, "config.yaml")
	assert.Equal(t, "opened "+path+"\n", stdout)

	var saved config.Config
	require.NoError(t, yaml.Unmarshal([]byte(readFile(t, path)), &saved))
	assert.Equal(t, config.DefaultStyle, saved.Style)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList(" a, b,,c ,"))
	assert.Equal(t, []string{}, splitList(""))
}
