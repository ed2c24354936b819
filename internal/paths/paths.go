package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/propman/internal/errors"
)

// AppName names the configuration directory.
const AppName = "propman"

// ConfigFileName is the base name of the configuration file.
const ConfigFileName = "config.yaml"

// ConfigDirEnv overrides the configuration directory when set.
const ConfigDirEnv = "PROPMAN_CONFIG_DIR"

// DefaultDirPerm is the permission for newly created directories.
const DefaultDirPerm = 0o700

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// EnsureDir creates path and any missing parents. A zero perm means
// DefaultDirPerm. It is a no-op for existing directories.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	if err := os.MkdirAll(path, perm); err != nil {
		return errors.Wrapf(err, "creating directory %s", path)
	}
	return nil
}

// ResolveHome returns the user's home directory.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the propman configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ExpandHome replaces a leading "~" in path with the home directory. Other
// paths are returned cleaned but otherwise unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return filepath.Clean(path), nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
