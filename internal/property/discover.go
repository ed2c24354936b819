package property

// InlineName reports the name of the inline property on line, if any.
//
// An inline property is a run of name characters (letters, digits, "-",
// "_", "[" and "(") immediately followed by "::", one whitespace character
// and at least one more character on the same line. The first such run
// wins. A leading bracket is part of the name, so "[status:: done]" yields
// "[status".
//
// Edge cases:
//   - "key::value" (no whitespace) is not a property
//   - "key:: " with nothing after the space is not a property
//   - "std::vector" style text is ignored because no whitespace follows "::"
//   - a bare ":: value" has no name and is ignored
func InlineName(line string) (string, bool) {
	for k := 1; k+1 < len(line); k++ {
		if line[k] != ':' || line[k+1] != ':' {
			continue
		}
		if k+3 >= len(line) || !isSpace(line[k+2]) || line[k+3] == '\n' {
			continue
		}
		j := k
		for j > 0 && isNameChar(line[j-1]) {
			j--
		}
		if j < k {
			return line[j:k], true
		}
	}
	return "", false
}

func isNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '[', c == '(':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}
