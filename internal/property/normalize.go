package property

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize rewrites a raw property line into a frontmatter line:
//
//   - text before the property name is dropped, except an opening bracket
//     directly in front of it
//   - a bracketed inline field such as "[key:: v]" or "(key:: v)" is reduced
//     to the text inside its matching brackets
//   - the first "::" becomes ":"
//   - the first character is lower-cased
//   - everything from the first "^" (a block reference) is dropped, unless
//     the caret opens the line
//   - wiki-links are quoted, "[[x]]" becoming "\"[[x]]\"", so the value stays
//     a plain YAML scalar; links that are already quoted are left alone
//
// The result always ends with a single newline.
func Normalize(line, name string) string {
	start := strings.Index(line, name)
	if start < 0 {
		start = 0
	}
	if start > 0 && name != "" && !isOpener(name[0]) && isOpener(line[start-1]) {
		start--
	}
	line = strings.TrimSpace(line[start:])

	if line != "" && isOpener(line[0]) {
		if end := matchingClose(line); end > 0 {
			line = strings.TrimSpace(line[1:end])
		}
	}

	line = strings.Replace(line, "::", ":", 1)
	line = lowerFirst(line)

	if i := strings.IndexByte(line, '^'); i > 0 {
		line = strings.TrimRightFunc(line[:i], unicode.IsSpace)
	}

	return quoteLinks(line) + "\n"
}

func isOpener(c byte) bool {
	return c == '[' || c == '('
}

// matchingClose returns the index of the bracket that closes the one at
// s[0], or -1 when it is never closed.
func matchingClose(s string) int {
	open := s[0]
	closer := byte(']')
	if open == '(' {
		closer = ')'
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func quoteLinks(s string) string {
	if !strings.Contains(s, "[[") && !strings.Contains(s, "]]") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "[["):
			if i == 0 || s[i-1] != '"' {
				b.WriteByte('"')
			}
			b.WriteString("[[")
			i += 2
		case strings.HasPrefix(s[i:], "]]"):
			b.WriteString("]]")
			i += 2
			if i >= len(s) || s[i] != '"' {
				b.WriteByte('"')
			}
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
