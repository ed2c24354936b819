package property

import "strings"

// Form names the syntax a property line is written in.
type Form int

const (
	// FormFrontmatter is the "key: value" form used inside the frontmatter block.
	FormFrontmatter Form = iota
	// FormInline is the "key:: value" form used in the note body.
	FormInline
)

func (f Form) String() string {
	switch f {
	case FormInline:
		return "inline"
	default:
		return "frontmatter"
	}
}

// Occurrence is the position of one property in a Document. It is only
// valid until the document is next mutated.
type Occurrence struct {
	// Index is the line holding the property key.
	Index int
	// Lines is how many lines the property spans. Frontmatter properties
	// written as block lists span their item lines too.
	Lines int
	// Form is the syntax the property was found in.
	Form Form
}

// Locate finds the property called name. The frontmatter block is searched
// first for a line beginning with "name:"; when that fails the body is
// searched for a line containing "name::".
func (d *Document) Locate(name string) (Occurrence, bool) {
	if name == "" {
		return Occurrence{}, false
	}

	if d.boundary > 1 {
		key := name + ":"
		for i := 1; i < d.boundary; i++ {
			line := d.lines[i]
			if strings.HasPrefix(line, key) && !strings.HasPrefix(line, key+":") {
				return Occurrence{Index: i, Lines: d.extent(i), Form: FormFrontmatter}, true
			}
		}
	}

	if i := d.Search(name+"::", d.boundary+1); i >= 0 {
		return Occurrence{Index: i, Lines: 1, Form: FormInline}, true
	}
	return Occurrence{}, false
}

// extent counts the lines owned by the frontmatter key at index i: the key
// line plus any indented or "- " item lines that follow it inside the block.
func (d *Document) extent(i int) int {
	n := 1
	for j := i + 1; j < d.boundary; j++ {
		if !isContinuation(d.lines[j]) {
			break
		}
		n++
	}
	return n
}

func isContinuation(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	return line[0] == ' ' || line[0] == '\t' || strings.HasPrefix(line, "- ")
}

// Properties lists the property names present in the document: frontmatter
// keys in block order followed by inline properties in body order.
// Duplicates are reported once.
func (d *Document) Properties() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for i := 1; i < d.boundary; i++ {
		line := d.lines[i]
		if isContinuation(line) || strings.HasPrefix(line, "#") {
			continue
		}
		if key, _, ok := strings.Cut(line, ":"); ok {
			add(strings.TrimSpace(key))
		}
	}
	for i := d.boundary + 1; i < len(d.lines); i++ {
		if name, ok := InlineName(d.lines[i]); ok {
			add(name)
		}
	}
	return names
}
