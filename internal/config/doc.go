// Package config loads propman's defaults from a YAML file, PROPMAN_*
// environment variables and command-line flags, using Viper.
//
// The file is looked up in the current directory and then in the XDG config
// directory (see package paths):
//
//	version: 1
//	all: false          # relocate every inline property
//	move: [status]      # always move these
//	remove: []
//	color: auto         # auto, always or never
//	style: monokai      # chroma style for --test previews
//	log_format: text    # text or json
//
// Flags override environment variables, which override the file, which
// overrides the built-in defaults.
package config
