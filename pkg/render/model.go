package render

import (
	"strconv"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/grid"
)

// Kind names a Model variant in serialized output.
type Kind string

const (
	KindTable Kind = "table"
	KindError Kind = "error"
)

// Model is the single artifact handed to presentation: a [Table] or an [Error].
type Model interface {
	Kind() Kind
}

// Table is a successfully laid-out grid.
type Table struct {
	Grid    grid.Grid
	Columns int
}

// Error is a validation failure to display in place of a table.
type Error struct {
	Message string
	Code    errors.Code
}

// Kind implements Model.
func (Table) Kind() Kind { return KindTable }

// Kind implements Model.
func (Error) Kind() Kind { return KindError }

// Headers returns the column labels "1" through "C".
func (t Table) Headers() []string {
	headers := make([]string, t.Columns)
	for i := range headers {
		headers[i] = strconv.Itoa(i + 1)
	}
	return headers
}

// Err returns the error model as a structured error.
func (e Error) Err() error {
	code := e.Code
	if code == "" {
		code = errors.ErrCodeInvalidInput
	}
	return &errors.Error{Code: code, Message: e.Message}
}

// Build turns a validation outcome into a model, laying out accepted values.
func Build(o grid.Outcome, opts ...grid.Option) Model {
	switch o := o.(type) {
	case grid.Accepted:
		g, err := o.Layout(opts...)
		if err != nil {
			return Error{Message: errors.UserMessage(err), Code: errors.GetCode(err)}
		}
		return Table{Grid: g, Columns: g.Columns()}
	case grid.Rejected:
		return Error{Message: o.Reason, Code: o.Code}
	default:
		return Error{Message: "unknown validation outcome", Code: errors.ErrCodeInternal}
	}
}

// New validates raw input and builds its model.
func New(raw string, columns int, opts ...grid.Option) Model {
	return Build(grid.Validate(raw, columns), opts...)
}

// FromText validates raw input whose column count is unparsed text.
func FromText(raw, columnsText string, opts ...grid.Option) Model {
	return Build(grid.Evaluate(raw, columnsText), opts...)
}
