package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"symbol", "pkg/server.(*Server).Start", false},
		{"file path", "src/app/main.go", false},
		{"ticket", "PROJ-123", false},
		{"unicode", "módulo", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxNodeIDLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateNodeID(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateAttributeKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"camel", "changeCount", false},
		{"snake", "change_count", false},

		{"empty", "", true},
		{"space", "change count", true},
		{"tab", "change\tcount", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttributeKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAttributeKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
