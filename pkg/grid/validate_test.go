package grid

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/csvgrid/pkg/errors"
)

func tokens(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "v"
	}
	return strings.Join(parts, ",")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		columns    int
		wantValues []string
		wantReason string
	}{
		{"simple", "a,b,c,d,e", 2, []string{"a", "b", "c", "d", "e"}, ""},
		{"single value", "x", 1, []string{"x"}, ""},
		{"trims outer whitespace", "  x,y,z \n", 3, []string{"x", "y", "z"}, ""},
		{"keeps inner whitespace", "a , b", 2, []string{"a ", " b"}, ""},
		{"keeps empty tokens", "a,,b", 2, []string{"a", "", "b"}, ""},
		{"trailing comma", "a,b,", 2, []string{"a", "b", ""}, ""},
		{"only a comma", ",", 1, []string{"", ""}, ""},
		{"exactly max", tokens(MaxValues), 10, strings.Split(tokens(MaxValues), ","), ""},

		{"empty", "", 3, nil, MessageNoValues},
		{"whitespace only", "   ", 3, nil, MessageNoValues},
		{"tabs and newlines", "\t\n ", 3, nil, MessageNoValues},
		{"too many", tokens(MaxValues + 1), 3, nil, MessageTooManyValues},
		{"zero columns", "a,b", 0, nil, MessageInvalidColumns},
		{"negative columns", "a,b", -2, nil, MessageInvalidColumns},
		{"too many columns", "a,b", MaxColumns + 1, nil, MessageTooManyColumns},
		{"max int columns", "a,b", math.MaxInt, nil, MessageTooManyColumns},
		{"empty beats columns", "", 0, nil, MessageNoValues},
		{"too many beats columns", tokens(MaxValues + 1), 0, nil, MessageTooManyValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			switch o := Validate(tt.raw, tt.columns).(type) {
			case Accepted:
				if tt.wantReason != "" {
					t.Fatalf("Validate() accepted %v, want rejection %q", o.Values, tt.wantReason)
				}
				if !reflect.DeepEqual(o.Values, tt.wantValues) {
					t.Errorf("Values = %q, want %q", o.Values, tt.wantValues)
				}
				if o.Columns != tt.columns {
					t.Errorf("Columns = %d, want %d", o.Columns, tt.columns)
				}
			case Rejected:
				if tt.wantReason == "" {
					t.Fatalf("Validate() rejected with %q, want acceptance", o.Reason)
				}
				if o.Reason != tt.wantReason {
					t.Errorf("Reason = %q, want %q", o.Reason, tt.wantReason)
				}
			default:
				t.Fatalf("Validate() returned unexpected outcome %T", o)
			}
		})
	}
}

func TestValidateEmptyForAnyColumns(t *testing.T) {
	for _, c := range []int{-5, 0, 1, 2, 7, 100} {
		for _, raw := range []string{"", "   "} {
			r, ok := Validate(raw, c).(Rejected)
			if !ok {
				t.Fatalf("Validate(%q, %d) should be rejected", raw, c)
			}
			if r.Reason != "You must have at least some values!" {
				t.Errorf("Validate(%q, %d) reason = %q", raw, c, r.Reason)
			}
		}
	}
}

func TestRejectedErr(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		columns  int
		wantCode errors.Code
	}{
		{"empty", "", 1, errors.ErrCodeInvalidInput},
		{"too many", tokens(101), 1, errors.ErrCodeTooManyValues},
		{"columns", "a", 0, errors.ErrCodeInvalidColumns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Validate(tt.raw, tt.columns).(Rejected)
			err := r.Err()
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Err() code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
			if errors.UserMessage(err) != r.Reason {
				t.Errorf("UserMessage() = %q, want %q", errors.UserMessage(err), r.Reason)
			}
		})
	}

	// A hand-built rejection without a code falls back to INVALID_INPUT.
	if err := (Rejected{Reason: "nope"}).Err(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Err() without code = %v, want INVALID_INPUT", err)
	}
}

func TestParseColumns(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"3", 3, false},
		{" 12 ", 12, false},
		{"+4", 4, false},

		{"", 0, true},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"2.5", 0, true},
		{"3 columns", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColumns(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColumns(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColumns(%q) = %d, want %d", tt.input, got, tt.want)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidColumns) {
					t.Errorf("ParseColumns(%q) code = %v", tt.input, errors.GetCode(err))
				}
				if errors.UserMessage(err) != MessageInvalidColumns {
					t.Errorf("ParseColumns(%q) message = %q", tt.input, errors.UserMessage(err))
				}
			}
		})
	}
}

func TestParseColumnsBound(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantMsg string
	}{
		{"100", MaxColumns, ""},
		{"101", 0, MessageTooManyColumns},
		{"50000000", 0, MessageTooManyColumns},
		{"9223372036854775807", 0, MessageTooManyColumns},
		{"99999999999999999999", 0, MessageInvalidColumns},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColumns(tt.input)
			if got != tt.want {
				t.Errorf("ParseColumns(%q) = %d, want %d", tt.input, got, tt.want)
			}
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("ParseColumns(%q): %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, errors.ErrCodeInvalidColumns) || errors.UserMessage(err) != tt.wantMsg {
				t.Errorf("ParseColumns(%q) error = %v, want %q", tt.input, err, tt.wantMsg)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		columnsText string
		wantColumns int
		wantReason  string
	}{
		{"valid", "a,b,c", "2", 2, ""},
		{"padded columns", "a,b,c", " 3 ", 3, ""},
		{"unparseable columns", "a,b,c", "three", 0, MessageInvalidColumns},
		{"blank columns", "a,b,c", "", 0, MessageInvalidColumns},
		{"empty values first", "  ", "three", 0, MessageNoValues},
		{"too many values first", tokens(150), "x", 0, MessageTooManyValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			switch o := Evaluate(tt.raw, tt.columnsText).(type) {
			case Accepted:
				if tt.wantReason != "" {
					t.Fatalf("Evaluate() accepted, want %q", tt.wantReason)
				}
				if o.Columns != tt.wantColumns {
					t.Errorf("Columns = %d, want %d", o.Columns, tt.wantColumns)
				}
			case Rejected:
				if o.Reason != tt.wantReason {
					t.Errorf("Reason = %q, want %q", o.Reason, tt.wantReason)
				}
			}
		})
	}
}
