package property

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		property string
		want     string
	}{
		{
			name:     "inline to frontmatter",
			line:     "tags:: a, b, c\n",
			property: "tags",
			want:     "tags: a, b, c\n",
		},
		{
			name:     "frontmatter line is trimmed",
			line:     "status: open   \n",
			property: "status",
			want:     "status: open\n",
		},
		{
			name:     "leading text dropped",
			line:     "Some prose then due:: tomorrow\n",
			property: "due",
			want:     "due: tomorrow\n",
		},
		{
			name:     "first character lower-cased",
			line:     "Status: Todo\n",
			property: "Status",
			want:     "status: Todo\n",
		},
		{
			name:     "non-ascii first character lower-cased",
			line:     "État:: fini\n",
			property: "État",
			want:     "état: fini\n",
		},
		{
			name:     "only first double colon converted",
			line:     "lang:: c++ std:: stuff\n",
			property: "lang",
			want:     "lang: c++ std:: stuff\n",
		},
		{
			name:     "square bracket inline field",
			line:     "- [due:: 2024-01-01] pay rent\n",
			property: "[due",
			want:     "due: 2024-01-01\n",
		},
		{
			name:     "round bracket inline field",
			line:     "Call (owner:: Sam) today\n",
			property: "(owner",
			want:     "owner: Sam\n",
		},
		{
			name:     "bracket kept when name given without it",
			line:     "- [due:: 2024-01-01] pay rent\n",
			property: "due",
			want:     "due: 2024-01-01\n",
		},
		{
			name:     "nested link inside bracket field",
			line:     "[up:: [[Home]]]\n",
			property: "[up",
			want:     "up: \"[[Home]]\"\n",
		},
		{
			name:     "unclosed bracket left as is",
			line:     "[due:: 2024-01-01\n",
			property: "[due",
			want:     "[due: 2024-01-01\n",
		},
		{
			name:     "block reference dropped",
			line:     "status:: done ^abc123\n",
			property: "status",
			want:     "status: done\n",
		},
		{
			name:     "wiki-links quoted",
			line:     "related:: [[Note A]], [[Note B]]\n",
			property: "related",
			want:     "related: \"[[Note A]]\", \"[[Note B]]\"\n",
		},
		{
			name:     "quoted wiki-links untouched",
			line:     "up: \"[[Home]]\"\n",
			property: "up",
			want:     "up: \"[[Home]]\"\n",
		},
		{
			name:     "crlf terminator replaced",
			line:     "a:: 1\r\n",
			property: "a",
			want:     "a: 1\n",
		},
		{
			name:     "property missing from line keeps whole line",
			line:     "x:: y\n",
			property: "nope",
			want:     "x: y\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.line, tt.property); got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.line, tt.property, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	tests := []struct {
		line     string
		property string
	}{
		{"status: done\n", "status"},
		{"up: \"[[Home]]\"\n", "up"},
		{"related: \"[[A]]\", \"[[B]]\"\n", "related"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.line, tt.property); got != tt.line {
			t.Errorf("Normalize(%q) = %q, want unchanged", tt.line, got)
		}
	}
}

func TestNormalize_QuotedLinkIsYAMLScalar(t *testing.T) {
	line := Normalize("up:: [[Home|Start]]\n", "up")

	var got map[string]string
	if err := yaml.Unmarshal([]byte(line), &got); err != nil {
		t.Fatalf("yaml.Unmarshal(%q) error = %v", line, err)
	}
	if got["up"] != "[[Home|Start]]" {
		t.Errorf("up = %q, want %q", got["up"], "[[Home|Start]]")
	}
}

func TestMatchingClose(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"[a]", 2},
		{"[a [[b]] c] d", 10},
		{"(a (b) c) d", 8},
		{"(a [b) c", 5},
		{"[never", -1},
	}
	for _, tt := range tests {
		if got := matchingClose(tt.in); got != tt.want {
			t.Errorf("matchingClose(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
