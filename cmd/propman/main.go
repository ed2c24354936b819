// Command propman moves, normalizes and removes properties in note files.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/thoreinstein/propman/cmd/propman/commands"
	"github.com/thoreinstein/propman/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if hint := errors.Suggestion(err); hint != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	}
	os.Exit(errors.ExitCode(err))
}
