// Package preview renders an edited document for --test, syntax
// highlighting the frontmatter as YAML and the body as Markdown when the
// output is a colour terminal.
package preview

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/thoreinstein/propman/internal/errors"
	"github.com/thoreinstein/propman/internal/logging"
	"github.com/thoreinstein/propman/internal/property"
)

// Options controls rendering.
type Options struct {
	Color logging.ColorMode
	// Style names a chroma style. Unknown names use chroma's fallback.
	Style string
}

// Write renders doc to w.
func Write(w io.Writer, doc *property.Document, opts Options) error {
	if !opts.Color.UseColor(w) {
		_, err := io.WriteString(w, doc.String())
		return errors.Wrap(err, "writing preview")
	}

	lines := doc.Lines()
	split := doc.Boundary() + 1
	if split < 0 {
		split = 0
	}
	style := styles.Get(opts.Style)

	if err := highlight(w, "yaml", strings.Join(lines[:split], ""), style); err != nil {
		return err
	}
	return highlight(w, "markdown", strings.Join(lines[split:], ""), style)
}

func highlight(w io.Writer, language, text string, style *chroma.Style) error {
	if text == "" {
		return nil
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return errors.Wrapf(err, "tokenising %s", language)
	}
	if err := formatters.TTY256.Format(w, style, it); err != nil {
		return errors.Wrap(err, "writing preview")
	}
	return nil
}
