// Package editor launches the user's text editor on a file, used by
// "propman config edit".
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/propman/internal/errors"
)

// Streams connects the editor process to a terminal. Nil fields fall back
// to the process's own stdin, stdout and stderr.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Open runs the preferred editor on path and waits for it to exit.
func Open(ctx context.Context, path string, s Streams) error {
	name, args := command()
	cmd := exec.CommandContext(ctx, name, append(args, path)...)
	cmd.Stdin = or[io.Reader](s.In, os.Stdin)
	cmd.Stdout = or[io.Writer](s.Out, os.Stdout)
	cmd.Stderr = or[io.Writer](s.Err, os.Stderr)

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", name)
	}
	return nil
}

func or[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

// command splits the editor setting into program and arguments, so values
// such as "code --wait" work.
func command() (string, []string) {
	fields := strings.Fields(detectEditor())
	return fields[0], fields[1:]
}

// detectEditor picks $EDITOR, then $VISUAL, then nano, then vi.
func detectEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
