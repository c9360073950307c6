package errors

import (
	"net"
	"strings"
	"unicode"
)

// maxPathLength bounds file paths accepted from flags and config files.
const maxPathLength = 1024

// ValidatePath validates a local file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
//
// "-" is accepted and means stdin or stdout depending on the flag.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if path == "-" {
		return nil
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateListenAddr validates a host:port address for the HTTP server or redis.
// The host may be empty (":8080") but the port must be present.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidConfig, "address cannot be empty")
	}
	if strings.ContainsAny(addr, " \t\r\n") {
		return New(ErrCodeInvalidConfig, "address cannot contain whitespace: %q", addr)
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidConfig, err, "invalid address %q", addr)
	}
	if port == "" {
		return New(ErrCodeInvalidConfig, "address %q is missing a port", addr)
	}

	return nil
}
