package grid

import (
	"strings"

	"github.com/matzehuels/csvgrid/pkg/errors"
)

// Fill selects the order in which values are placed into cells.
type Fill int

const (
	// FillRows places values left to right, top to bottom.
	FillRows Fill = iota
	// FillColumns places values top to bottom, left to right, with the extra
	// values front-loaded into the leading columns.
	FillColumns
)

// String returns the canonical flag spelling of f.
func (f Fill) String() string {
	switch f {
	case FillRows:
		return "rows"
	case FillColumns:
		return "columns"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Fill) MarshalText() ([]byte, error) {
	if f != FillRows && f != FillColumns {
		return nil, errors.New(errors.ErrCodeInvalidFill, "invalid fill: %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so a Fill can be read
// directly from JSON and TOML.
func (f *Fill) UnmarshalText(text []byte) error {
	parsed, err := ParseFill(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFill parses a fill name. The empty string selects [FillRows].
func ParseFill(s string) (Fill, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rows", "row", "row-major":
		return FillRows, nil
	case "columns", "column", "column-major":
		return FillColumns, nil
	}
	return FillRows, errors.New(errors.ErrCodeInvalidFill, "invalid fill: %q (must be 'rows' or 'columns')", s)
}

// Option configures [Layout].
type Option func(*layoutConfig)

type layoutConfig struct {
	fill Fill
}

// WithFill selects the fill order. The default is [FillRows].
func WithFill(f Fill) Option {
	return func(c *layoutConfig) {
		c.fill = f
	}
}
