package property

import (
	"log/slog"
	"strings"

	"github.com/thoreinstein/propman/internal/logging"
	"github.com/thoreinstein/propman/pkg/frontmatter"
)

// Plan lists the edits to apply to one document.
type Plan struct {
	// All relocates every inline property found in the body.
	All bool
	// Move lists properties to relocate to the end of the frontmatter block,
	// in the order they should end up in.
	Move []string
	// Remove lists properties to delete.
	Remove []string
}

// Empty reports whether the plan requests no edits.
func (p Plan) Empty() bool {
	return !p.All && len(p.Move) == 0 && len(p.Remove) == 0
}

// ActionKind identifies what an Action did.
type ActionKind string

const (
	// ActionMove relocated a property into the frontmatter block.
	ActionMove ActionKind = "move"
	// ActionRemove deleted a property.
	ActionRemove ActionKind = "remove"
)

// Action records one edit.
type Action struct {
	Kind     ActionKind
	Property string
	// Line is the 1-based line the property was found on, before the edit.
	Line int
	// Form is where the property was found.
	Form Form
	// Result holds the lines inserted into the frontmatter for moves, or the
	// lines deleted for removals.
	Result []string
}

// Result summarizes an Apply call.
type Result struct {
	// Synthesized is set when an empty frontmatter block had to be added.
	Synthesized bool
	Actions     []Action
	// Missing lists requested properties that were not found.
	Missing []string
}

// Editor applies property edits to documents and reports each step to its
// logger.
type Editor struct {
	logger *slog.Logger
}

// NewEditor creates an Editor. A nil logger discards diagnostics.
func NewEditor(logger *slog.Logger) *Editor {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Editor{logger: logger}
}

// Apply runs plan against doc: it guarantees a frontmatter block, relocates
// inline properties when plan.All is set, then performs moves and removals
// in the order given. Properties that cannot be found are skipped.
func (e *Editor) Apply(doc *Document, plan Plan) *Result {
	res := &Result{}

	if doc.EnsureFrontmatter() {
		res.Synthesized = true
		e.logger.Info("no frontmatter found, added empty block")
	}
	e.logger.Debug("frontmatter boundary", "line", doc.Boundary()+1)

	if plan.All {
		res.Actions = append(res.Actions, e.Discover(doc)...)
	}

	for _, name := range plan.Move {
		occ, ok := e.locate(doc, name)
		if !ok {
			res.Missing = append(res.Missing, name)
			continue
		}
		line := occ.Index + 1
		inserted := e.Relocate(doc, occ, name, FormFrontmatter)
		res.Actions = append(res.Actions, Action{
			Kind:     ActionMove,
			Property: name,
			Line:     line,
			Form:     occ.Form,
			Result:   inserted,
		})
	}

	for _, name := range plan.Remove {
		occ, ok := e.locate(doc, name)
		if !ok {
			res.Missing = append(res.Missing, name)
			continue
		}
		line := occ.Index + 1
		removed := e.Remove(doc, occ)
		res.Actions = append(res.Actions, Action{
			Kind:     ActionRemove,
			Property: name,
			Line:     line,
			Form:     occ.Form,
			Result:   removed,
		})
	}

	return res
}

func (e *Editor) locate(doc *Document, name string) (Occurrence, bool) {
	occ, ok := doc.Locate(name)
	if !ok {
		e.logger.Info("property not found", "property", name)
		return occ, false
	}
	e.logger.Info("property found",
		"property", name,
		"line", occ.Index+1,
		"form", occ.Form.String(),
	)
	return occ, true
}

// Relocate removes the property at occ and inserts its normalized form at
// the end of the frontmatter block, returning the inserted lines.
//
// With FormFrontmatter a single-line comma separated value is expanded into
// a block list. With FormInline the property always stays on one line.
// Item lines of a multi-line frontmatter property move along unchanged.
func (e *Editor) Relocate(doc *Document, occ Occurrence, name string, form Form) []string {
	e.logger.Info("moving property",
		"property", name,
		"line", occ.Index+1,
		"text", strings.TrimRight(doc.Line(occ.Index), "\r\n"),
	)

	removed := doc.remove(occ.Index, occ.Lines)
	head := Normalize(removed[0], name)

	var out []string
	if form == FormFrontmatter && len(removed) == 1 && Expandable(head) {
		out = frontmatter.SplitLines(ExpandList(head))
	} else {
		out = append([]string{head}, terminated(removed[1:])...)
	}

	doc.insert(doc.Boundary(), out...)
	return out
}

// Remove deletes the property at occ and returns the deleted lines.
func (e *Editor) Remove(doc *Document, occ Occurrence) []string {
	e.logger.Info("removing property",
		"line", occ.Index+1,
		"text", strings.TrimRight(doc.Line(occ.Index), "\r\n"),
	)
	return doc.remove(occ.Index, occ.Lines)
}

// Discover relocates every inline property in the body into the frontmatter
// block, in the order they appear. The document must have a frontmatter
// block.
func (e *Editor) Discover(doc *Document) []Action {
	var actions []Action
	// Relocating line i removes it from below the boundary and inserts one
	// line above it, so line i+1 keeps its index.
	for i := doc.Boundary() + 1; i < doc.Len(); i++ {
		name, ok := InlineName(doc.Line(i))
		if !ok {
			continue
		}
		e.logger.Info("found inline property", "property", name, "line", i+1)
		occ := Occurrence{Index: i, Lines: 1, Form: FormInline}
		inserted := e.Relocate(doc, occ, name, FormInline)
		actions = append(actions, Action{
			Kind:     ActionMove,
			Property: name,
			Line:     i + 1,
			Form:     FormInline,
			Result:   inserted,
		})
	}
	return actions
}

// terminated returns lines with a newline added to any line missing one.
func terminated(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if !strings.HasSuffix(l, "\n") {
			l += "\n"
		}
		out[i] = l
	}
	return out
}
