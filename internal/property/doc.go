// Package property edits the property lines of a note: the "key: value"
// lines of the frontmatter block and the "key:: value" annotations found in
// the body.
//
// A [Document] is a mutable slice of lines plus the index of the closing
// frontmatter delimiter. Every insertion or removal keeps that index current,
// but any other index a caller holds is stale after a mutation, so the
// [Editor] re-locates each property right before it acts on it.
//
// The classification helpers ([InlineName], [Normalize], [Expandable]) are
// line scanners, not YAML parsers. Their edge cases are listed on each
// function.
package property
