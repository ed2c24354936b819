// Package cmd holds build metadata injected with -ldflags.
package cmd

import "fmt"

// Build-time variables set via ldflags, for example
//
//	go build -ldflags "-X github.com/thoreinstein/propman/cmd.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the one-line version string.
func Info() string {
	return fmt.Sprintf("propman %s (commit %s, built %s)", Version, Commit, Date)
}
