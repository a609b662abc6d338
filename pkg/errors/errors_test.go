package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidArgument, "max depth %d is negative", -1), "INVALID_ARGUMENT: max depth -1 is negative"},
		{"wrapped", Wrap(ErrCodeInvalidFormat, errors.New("unexpected EOF"), "decode graph.json"), "INVALID_FORMAT: decode graph.json: unexpected EOF"},
		{"shorthand", InvalidArgument("roots must not be empty"), "INVALID_ARGUMENT: roots must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeInternal, cause, "create report.json")
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidArgument, "x"), ErrCodeInvalidArgument, true},
		{"other code", New(ErrCodeInvalidArgument, "x"), ErrCodeInvalidConfig, false},
		{"outer code wins", Wrap(ErrCodeInvalidConfig, InvalidArgument("inner"), "outer"), ErrCodeInvalidConfig, true},
		{"through fmt.Errorf", fmt.Errorf("graph.json: %w", New(ErrCodeFileNotFound, "x")), ErrCodeFileNotFound, true},
		{"plain error", errors.New("x"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
		{"empty code", errors.New("x"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnsupported, "x")); got != ErrCodeUnsupported {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeUnsupported)
	}
	if got := GetCode(errors.New("x")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"single", InvalidArgument("cap must be positive"), "cap must be positive"},
		{"plain", errors.New("boom"), "boom"},
		{"nested", Wrap(ErrCodeInvalidConfig, InvalidArgument("cap must be positive"), "risk policy"), "risk policy: cap must be positive"},
		{"plain cause", Wrap(ErrCodeFileNotFound, errors.New("no such file"), "graph.json"), "graph.json: no such file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{InvalidArgument("x"), 2},
		{New(ErrCodeInvalidConfig, "x"), 2},
		{fmt.Errorf("flag: %w", New(ErrCodeInvalidInput, "x")), 2},
		{New(ErrCodeFileNotFound, "x"), 1},
		{New(ErrCodeInvalidFormat, "x"), 1},
		{New(ErrCodeCyclesFound, "graph contains cycles"), 1},
		{errors.New("x"), 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
