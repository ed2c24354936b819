// Package frontmatter locates the "---" delimited property block at the top
// of a note.
//
// The block opens with a delimiter on the first line and closes with the
// next delimiter line. A delimiter line is one whose content, ignoring
// surrounding whitespace, is exactly "---". Both LF and CRLF terminated
// lines are recognized.
//
// The package works on lines rather than bytes so callers can edit the
// block in place:
//
//	lines := frontmatter.SplitLines(content)
//	if end := frontmatter.Closing(lines); end < 0 {
//		lines = append(frontmatter.Block(), lines...)
//	}
//
// Nothing here interprets the YAML inside the block.
package frontmatter
