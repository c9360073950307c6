package sink

import (
	"bytes"
	"encoding/csv"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/render"
)

// RenderCSV writes the header row 1..C followed by the grid rows.
// An error model has no tabular form and is returned as an error.
func RenderCSV(m render.Model) ([]byte, error) {
	switch m := m.(type) {
	case render.Table:
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write(m.Headers()); err != nil {
			return nil, err
		}
		if err := w.WriteAll(m.Grid.Cells()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case render.Error:
		return nil, m.Err()
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported model %T", m)
	}
}
