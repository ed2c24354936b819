package logging

import (
	"os"
	"testing"
)

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{
			name:  "NO_COLOR prevents color",
			env:   map[string]string{"NO_COLOR": "1"},
			isTTY: true,
			want:  false,
		},
		{
			name:  "empty NO_COLOR still prevents color",
			env:   map[string]string{"NO_COLOR": ""},
			isTTY: true,
			want:  false,
		},
		{
			name:  "TERM=dumb prevents color",
			env:   map[string]string{"TERM": "dumb"},
			isTTY: true,
			want:  false,
		},
		{
			name:  "non-TTY prevents color",
			env:   map[string]string{},
			isTTY: false,
			want:  false,
		},
		{
			name:  "TTY with capable terminal",
			env:   map[string]string{"TERM": "xterm-256color"},
			isTTY: true,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			os.Unsetenv("NO_COLOR")
			t.Setenv("TERM", "")
			os.Unsetenv("TERM")

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := supportsColor(tt.isTTY); got != tt.want {
				t.Errorf("supportsColor() = %v, want %v (env=%v, isTTY=%v)", got, tt.want, tt.env, tt.isTTY)
			}
		})
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	var w mockWriter
	if IsTTY(&w) {
		t.Error("IsTTY should return false for mockWriter")
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{" never ", ColorNever, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColorMode_UseColor(t *testing.T) {
	var w mockWriter
	if !ColorAlways.UseColor(&w) {
		t.Error("ColorAlways should colour a non-terminal writer")
	}
	if ColorNever.UseColor(&w) {
		t.Error("ColorNever should never colour")
	}
	if ColorAuto.UseColor(&w) {
		t.Error("ColorAuto should not colour a non-terminal writer")
	}
}

type mockWriter struct{}

func (m *mockWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}
