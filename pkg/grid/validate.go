package grid

import (
	"strconv"
	"strings"

	"github.com/matzehuels/csvgrid/pkg/errors"
)

const (
	// MaxValues is the largest number of tokens a single input may contain.
	MaxValues = 100

	// MaxColumns is the largest accepted column count. With at most
	// MaxValues values, wider grids would only add padding.
	MaxColumns = MaxValues

	// Delimiter separates tokens in the raw input.
	Delimiter = ","
)

// User-facing rejection messages. These strings are shown verbatim.
const (
	MessageNoValues       = "You must have at least some values!"
	MessageTooManyValues  = "You cannot have more than 100 values!"
	MessageInvalidColumns = "You must have at least one column!"
	MessageTooManyColumns = "You cannot have more than 100 columns!"
)

// Outcome is the result of validating raw input.
// It is always exactly one of [Accepted] or [Rejected].
type Outcome interface {
	outcome()
}

// Accepted holds a validated value sequence and the column count it will be
// laid out with.
type Accepted struct {
	Values  []string
	Columns int
}

// Rejected holds the reason an input was refused.
type Rejected struct {
	Reason string
	Code   errors.Code
}

func (Accepted) outcome() {}
func (Rejected) outcome() {}

// Layout lays out the accepted values using the accepted column count.
func (a Accepted) Layout(opts ...Option) (Grid, error) {
	return Layout(a.Values, a.Columns, opts...)
}

// Err converts the rejection into a structured error whose user message is
// the rejection reason.
func (r Rejected) Err() error {
	code := r.Code
	if code == "" {
		code = errors.ErrCodeInvalidInput
	}
	return &errors.Error{Code: code, Message: r.Reason}
}

// Validate checks raw input against the acceptance rules.
//
// Value checks run before the column check, so an empty input is always
// reported as such whatever the column count.
func Validate(raw string, columns int) Outcome {
	values, rejected := splitValues(raw)
	if rejected != nil {
		return *rejected
	}
	if columns < 1 {
		return Rejected{Reason: MessageInvalidColumns, Code: errors.ErrCodeInvalidColumns}
	}
	if columns > MaxColumns {
		return Rejected{Reason: MessageTooManyColumns, Code: errors.ErrCodeInvalidColumns}
	}
	return Accepted{Values: values, Columns: columns}
}

// Evaluate validates raw input whose column count is still unparsed text, as
// it arrives from a form field or query parameter.
func Evaluate(raw, columnsText string) Outcome {
	values, rejected := splitValues(raw)
	if rejected != nil {
		return *rejected
	}
	columns, err := ParseColumns(columnsText)
	if err != nil {
		return Rejected{Reason: errors.UserMessage(err), Code: errors.ErrCodeInvalidColumns}
	}
	return Accepted{Values: values, Columns: columns}
}

// ParseColumns parses a column count. Surrounding whitespace is ignored;
// anything that is not an integer in [1, MaxColumns] is rejected.
func ParseColumns(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidColumns, err, MessageInvalidColumns)
	}
	if n < 1 {
		return 0, errors.New(errors.ErrCodeInvalidColumns, MessageInvalidColumns)
	}
	if n > MaxColumns {
		return 0, errors.New(errors.ErrCodeInvalidColumns, MessageTooManyColumns)
	}
	return n, nil
}

func splitValues(raw string) ([]string, *Rejected) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil, &Rejected{Reason: MessageNoValues, Code: errors.ErrCodeInvalidInput}
	}

	values := strings.Split(cleaned, Delimiter)
	if len(values) > MaxValues {
		return nil, &Rejected{Reason: MessageTooManyValues, Code: errors.ErrCodeTooManyValues}
	}
	return values, nil
}
