// Package paths resolves the locations propman reads and writes: its XDG
// configuration directory and user supplied note paths.
//
// The XDG base directories come from github.com/adrg/xdg, so on Linux the
// config file lives at ~/.config/propman/config.yaml and on macOS under
// ~/Library/Application Support/propman. PROPMAN_CONFIG_DIR overrides the
// directory entirely.
package paths
