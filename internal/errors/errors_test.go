package errors

import (
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrFileNotFound, ExitUser),
			want: "file not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(Wrap(ErrInvalidConfig, "loading config"), ExitUser),
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrFileNotFound, ExitUser),
			wantTarget: ErrFileNotFound,
			wantIs:     true,
		},
		{
			name:       "unwrap through wrapped error",
			err:        NewExitError(Wrapf(ErrMissingFile, "run %d", 1), ExitUser),
			wantTarget: ErrMissingFile,
			wantIs:     true,
		},
		{
			name:       "unwrap through fmt wrapping",
			err:        NewExitError(fmt.Errorf("reading: %w", ErrFileNotFound), ExitUser),
			wantTarget: ErrFileNotFound,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrFileNotFound, ExitUser),
			wantTarget: ErrInvalidConfig,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitUser),
			wantTarget: ErrFileNotFound,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", New("boom"), ExitUser},
		{"user error", NewUserError(ErrMissingFile, ""), ExitUser},
		{"system error", NewSystemError(New("disk"), ""), ExitSystem},
		{"wrapped system error", Wrap(NewSystemError(New("disk"), ""), "writing"), ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"exit error suggestion", NewUserError(ErrMissingFile, "Pass --file"), "Pass --file"},
		{"hint", WithHint(New("bad"), "try again"), "try again"},
		{"exit error without suggestion falls back to hint", NewUserError(WithHint(New("bad"), "hinted"), ""), "hinted"},
		{"config error", NewConfigError(ErrInvalidConfig), "Run: propman config path"},
		{"none", New("bad"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggestion(tt.err); got != tt.want {
				t.Errorf("Suggestion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"ErrMissingFile", ErrMissingFile, "no file specified"},
		{"ErrFileNotFound", ErrFileNotFound, "file not found"},
		{"ErrInvalidConfig", ErrInvalidConfig, "invalid configuration"},
		{"ErrInvalidFlag", ErrInvalidFlag, "invalid flag value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, got, tt.wantMsg)
			}
		})
	}
}

func TestMark(t *testing.T) {
	err := Mark(New("color: must be a valid value"), ErrInvalidConfig)

	if !Is(err, ErrInvalidConfig) {
		t.Error("marked error should match ErrInvalidConfig")
	}
	if got := err.Error(); got != "color: must be a valid value" {
		t.Errorf("Error() = %q, want message unchanged", got)
	}
	if Is(Wrap(err, "validating config"), ErrFileNotFound) {
		t.Error("marked error should not match unrelated sentinels")
	}
}
