package frontmatter

import "strings"

// Delimiter marks the start and end of a frontmatter block.
const Delimiter = "---"

// IsDelimiter reports whether line is a frontmatter delimiter line.
func IsDelimiter(line string) bool {
	return strings.TrimSpace(line) == Delimiter
}

// Closing returns the index of the closing delimiter of the block that opens
// on lines[0], or -1 when lines has no opening or no closing delimiter.
// In a file that does not start with "---" a later "---" line is a thematic
// break in the body, not a frontmatter boundary.
func Closing(lines []string) int {
	if len(lines) == 0 || !IsDelimiter(lines[0]) {
		return -1
	}
	for i := 1; i < len(lines); i++ {
		if IsDelimiter(lines[i]) {
			return i
		}
	}
	return -1
}

// Block returns an empty frontmatter block as two delimiter lines.
func Block() []string {
	return []string{Delimiter + "\n", Delimiter + "\n"}
}

// SplitLines splits content into lines that keep their terminators.
// The final line is returned without a terminator when content does not end
// with a newline. Empty content yields no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines concatenates lines produced by SplitLines.
func JoinLines(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
	}
	return b.String()
}
