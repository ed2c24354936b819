package property

import "testing"

func TestInlineName(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantOK   bool
	}{
		{"simple", "body:: hello\n", "body", true},
		{"dashes and underscores", "due-date_2:: tomorrow\n", "due-date_2", true},
		{"square bracket", "- [due:: 2024-01-01] pay\n", "[due", true},
		{"round bracket", "Call (owner:: Sam) today\n", "(owner", true},
		{"prose before", "We agreed that status:: done\n", "status", true},
		{"tab separator", "a::\tb\n", "a", true},
		{"no whitespace after", "key::value\n", "", false},
		{"nothing after space", "key:: \n", "", false},
		{"nothing after space no newline", "key:: ", "", false},
		{"scope operator", "use std::vector here\n", "", false},
		{"frontmatter form", "key: value\n", "", false},
		{"no name", ":: value\n", "", false},
		{"name after space-only prefix", "  :: x and y:: z\n", "y", true},
		{"triple colon", "a::: b\n", "", false},
		{"first property wins", "a:: 1 b:: 2\n", "a", true},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InlineName(tt.line)
			if ok != tt.wantOK || got != tt.wantName {
				t.Errorf("InlineName(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}
