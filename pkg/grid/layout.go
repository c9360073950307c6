package grid

import (
	"github.com/matzehuels/csvgrid/pkg/errors"
)

// Layout distributes values into a grid of the given column count.
//
// The grid has ceil(N/C) rows. With the default [FillRows], value i lands in
// row i/C, column i%C, so every row but the last is full and the last row
// ends with C·R−N padding cells. [FillColumns] produces the same shape and the
// same padding positions but walks the columns instead.
//
// Layout returns an INVALID_COLUMNS error when columns is outside
// [1, MaxColumns] and an INVALID_INPUT error when values is empty. Neither
// can happen for an [Accepted] outcome from [Validate].
func Layout(values []string, columns int, opts ...Option) (Grid, error) {
	if columns < 1 {
		return Grid{}, errors.New(errors.ErrCodeInvalidColumns, MessageInvalidColumns)
	}
	if columns > MaxColumns {
		return Grid{}, errors.New(errors.ErrCodeInvalidColumns, MessageTooManyColumns)
	}
	if len(values) == 0 {
		return Grid{}, errors.New(errors.ErrCodeInvalidInput, MessageNoValues)
	}

	cfg := layoutConfig{fill: FillRows}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(values)
	rows := (n-1)/columns + 1
	cells := filledRows(rows, columns)

	switch cfg.fill {
	case FillColumns:
		fillColumns(cells, values, rows, columns)
	default:
		for i, v := range values {
			cells[i/columns][i%columns] = v
		}
	}

	return Grid{cells: cells, columns: columns, count: n, fill: cfg.fill}, nil
}

// filledRows allocates rows×columns cells, every one the empty string.
func filledRows(rows, columns int) [][]string {
	backing := make([]string, rows*columns)
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = backing[r*columns : (r+1)*columns : (r+1)*columns]
	}
	return cells
}

// fillColumns writes values column by column. The first C−E columns get a
// full height of rows values and the remaining E columns get rows−1, where E
// is the number of padding cells.
func fillColumns(cells [][]string, values []string, rows, columns int) {
	empty := rows*columns - len(values)
	full := columns - empty

	i := 0
	for c := 0; c < columns; c++ {
		height := rows
		if c >= full {
			height = rows - 1
		}
		for r := 0; r < height; r++ {
			cells[r][c] = values[i]
			i++
		}
	}
}
