package property

import (
	"strings"

	"github.com/thoreinstein/propman/pkg/frontmatter"
)

// Document is a note held as an ordered list of lines, each keeping its own
// line terminator.
type Document struct {
	lines []string
	// boundary is the index of the closing frontmatter delimiter, or -1
	// when the document has no frontmatter block.
	boundary int
}

// NewDocument returns a Document over a copy of lines.
func NewDocument(lines []string) *Document {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Document{
		lines:    cp,
		boundary: frontmatter.Closing(cp),
	}
}

// Parse splits content into lines and returns the resulting Document.
func Parse(content string) *Document {
	return NewDocument(frontmatter.SplitLines(content))
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the line at index i including its terminator.
func (d *Document) Line(i int) string {
	return d.lines[i]
}

// Lines returns a copy of the document lines.
func (d *Document) Lines() []string {
	cp := make([]string, len(d.lines))
	copy(cp, d.lines)
	return cp
}

// String renders the document back to text.
func (d *Document) String() string {
	return frontmatter.JoinLines(d.lines)
}

// Boundary returns the index of the closing frontmatter delimiter, or -1
// when the document has no frontmatter block.
func (d *Document) Boundary() int {
	return d.boundary
}

// HasFrontmatter reports whether the document has a closed frontmatter block.
func (d *Document) HasFrontmatter() bool {
	return d.boundary > 0
}

// Search returns the index of the first line at or after start that contains
// substr, or -1.
func (d *Document) Search(substr string, start int) int {
	return d.SearchRange(substr, start, len(d.lines))
}

// SearchRange returns the index of the first line in [start, stop) that
// contains substr, or -1. Bounds outside the document are clamped.
func (d *Document) SearchRange(substr string, start, stop int) int {
	start = max(start, 0)
	stop = min(stop, len(d.lines))
	for i := start; i < stop; i++ {
		if strings.Contains(d.lines[i], substr) {
			return i
		}
	}
	return -1
}

// EnsureFrontmatter guarantees a frontmatter block. When the document has
// none, an empty block is inserted at the top and the boundary becomes 1.
// It reports whether a block was synthesized.
func (d *Document) EnsureFrontmatter() bool {
	if d.HasFrontmatter() {
		return false
	}
	d.lines = append(frontmatter.Block(), d.lines...)
	d.boundary = 1
	return true
}

// insert places lines before index at. Inserting at or before the boundary
// pushes the closing delimiter down.
func (d *Document) insert(at int, lines ...string) {
	if len(lines) == 0 {
		return
	}
	grown := make([]string, 0, len(d.lines)+len(lines))
	grown = append(grown, d.lines[:at]...)
	grown = append(grown, lines...)
	grown = append(grown, d.lines[at:]...)
	d.lines = grown
	if d.boundary >= 0 && at <= d.boundary {
		d.boundary += len(lines)
	}
}

// remove deletes n lines starting at index at and returns them.
func (d *Document) remove(at, n int) []string {
	removed := make([]string, n)
	copy(removed, d.lines[at:at+n])
	d.lines = append(d.lines[:at], d.lines[at+n:]...)
	if d.boundary >= 0 && at+n <= d.boundary {
		d.boundary -= n
	}
	return removed
}
