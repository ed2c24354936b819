package property

import "strings"

// Expandable reports whether a normalized "key: a, b, c" line should be
// rewritten as a block list.
//
// A line qualifies when it has a comma and none of its commas belong to a
// wiki-link. A comma is disqualifying when
//
//   - it sits inside a link, e.g. "[[Smith, John]]": the comma is followed
//     by text without "[" and then "]]"
//   - a link follows it, e.g. "Todo, [[Done]]": after optional spaces and
//     quotes the comma is followed by "[[" that is closed later on the line
//
// Values that are already YAML flow sequences ("[a, b]") or mappings
// ("{a: 1}") and single quoted scalars are left alone.
//
// This is a heuristic. A value mixing plain items and links anywhere after
// a comma is never expanded, even though a list would be valid.
func Expandable(line string) bool {
	if !strings.Contains(line, ",") {
		return false
	}

	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return false
	}
	if isFlowOrQuoted(strings.TrimSpace(value)) {
		return false
	}

	for i := 0; i < len(line); i++ {
		if line[i] != ',' {
			continue
		}
		rest := line[i+1:]
		if commaInLink(rest) || commaBeforeLink(rest) {
			return false
		}
	}
	return true
}

// commaInLink reports whether rest, the text after a comma, reaches a "]]"
// before any "[".
func commaInLink(rest string) bool {
	seg := rest
	if i := strings.IndexByte(rest, '['); i >= 0 {
		seg = rest[:i]
	}
	return len(seg) > 1 && strings.Contains(seg[1:], "]]")
}

// commaBeforeLink reports whether rest opens a wiki-link that closes later
// on the line.
func commaBeforeLink(rest string) bool {
	rest = strings.TrimLeft(rest, " \t\"'")
	return strings.HasPrefix(rest, "[[") && strings.Contains(rest[2:], "]]")
}

func isFlowOrQuoted(value string) bool {
	if value == "" {
		return false
	}
	switch value[0] {
	case '{':
		return true
	case '[':
		return !strings.HasPrefix(value, "[[")
	case '"', '\'':
		if strings.HasPrefix(value, "\"[[") {
			return false
		}
		return len(value) > 1 && value[len(value)-1] == value[0] &&
			!strings.ContainsRune(value[1:len(value)-1], rune(value[0]))
	}
	return false
}

// ExpandList rewrites "key: a, b" as "key:\n  - a\n  - b\n". The key is the
// text before the first colon. Empty items are dropped.
func ExpandList(line string) string {
	key, value, _ := strings.Cut(line, ":")

	var b strings.Builder
	b.WriteString(strings.TrimSpace(key))
	b.WriteString(":")
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			b.WriteString("\n  - ")
			b.WriteString(item)
		}
	}
	b.WriteString("\n")
	return b.String()
}
