package sink

import (
	"encoding/json"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/render"
)

type jsonOutput struct {
	Kind    render.Kind `json:"kind"`
	Columns int         `json:"columns,omitempty"`
	Rows    int         `json:"rows,omitempty"`
	Values  int         `json:"values,omitempty"`
	Padding int         `json:"padding,omitempty"`
	Fill    string      `json:"fill,omitempty"`
	Headers []string    `json:"headers,omitempty"`
	Grid    [][]string  `json:"grid,omitempty"`
	Message string      `json:"message,omitempty"`
	Code    errors.Code `json:"code,omitempty"`
}

// RenderJSON serializes the model as indented JSON tagged with its kind.
func RenderJSON(m render.Model) ([]byte, error) {
	var out jsonOutput

	switch m := m.(type) {
	case render.Table:
		out = jsonOutput{
			Kind:    render.KindTable,
			Columns: m.Columns,
			Rows:    m.Grid.Rows(),
			Values:  m.Grid.Len(),
			Padding: m.Grid.Padding(),
			Fill:    m.Grid.Fill().String(),
			Headers: m.Headers(),
			Grid:    m.Grid.Cells(),
		}
	case render.Error:
		out = jsonOutput{
			Kind:    render.KindError,
			Message: m.Message,
			Code:    m.Code,
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported model %T", m)
	}

	return json.MarshalIndent(out, "", "  ")
}
