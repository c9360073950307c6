package errors

import (
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "values.txt", false},
		{"nested file", "data/values.csv", false},
		{"absolute file", "/tmp/grid.svg", false},
		{"stdin marker", "-", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 1100), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateListenAddr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"port only", ":8080", false},
		{"host and port", "localhost:6379", false},
		{"ip and port", "127.0.0.1:8080", false},
		{"ipv6", "[::1]:8080", false},

		{"empty", "", true},
		{"missing port", "localhost", true},
		{"empty port", "localhost:", true},
		{"whitespace", "local host:80", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListenAddr(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateListenAddr(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
