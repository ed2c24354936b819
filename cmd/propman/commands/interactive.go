package commands

import (
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/propman/internal/errors"
	"github.com/thoreinstein/propman/internal/property"
)

// pickProperties asks the user to choose properties of doc to move. It is a
// variable so tests can replace the terminal UI.
var pickProperties = findProperties

func findProperties(doc *property.Document) ([]string, error) {
	names := doc.Properties()
	if len(names) == 0 {
		return nil, nil
	}

	idxs, err := fuzzyfinder.FindMulti(
		names,
		func(i int) string { return names[i] },
		fuzzyfinder.WithPromptString("move> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			return occurrenceText(doc, names[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "selecting properties")
	}

	picked := make([]string, 0, len(idxs))
	for _, i := range idxs {
		picked = append(picked, names[i])
	}
	return picked, nil
}

// occurrenceText returns the source lines of the property called name.
func occurrenceText(doc *property.Document, name string) string {
	occ, ok := doc.Locate(name)
	if !ok {
		return ""
	}
	var b strings.Builder
	for i := occ.Index; i < occ.Index+occ.Lines; i++ {
		b.WriteString(doc.Line(i))
	}
	return b.String()
}
