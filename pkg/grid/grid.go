package grid

// Grid is an immutable R×C table of strings produced by [Layout].
//
// Exactly Len cells hold values from the input sequence; the remaining
// Padding cells hold the empty string and are always the trailing cells of
// the last row. The zero value is an empty grid with no rows.
type Grid struct {
	cells   [][]string
	columns int
	count   int
	fill    Fill
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g.cells) }

// Columns returns the number of columns.
func (g Grid) Columns() int { return g.columns }

// Len returns the number of cells holding input values.
func (g Grid) Len() int { return g.count }

// Padding returns the number of empty padding cells.
func (g Grid) Padding() int { return g.Rows()*g.columns - g.count }

// Fill returns the fill order the grid was laid out with.
func (g Grid) Fill() Fill { return g.fill }

// Cell returns the value at row r, column c.
// It panics if the position is out of range, like a slice index.
func (g Grid) Cell(r, c int) string { return g.cells[r][c] }

// Row returns a copy of row r.
func (g Grid) Row(r int) []string {
	return append([]string(nil), g.cells[r]...)
}

// Cells returns a deep copy of the grid's rows.
func (g Grid) Cells() [][]string {
	out := make([][]string, len(g.cells))
	for i, row := range g.cells {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// IsPadding reports whether the cell at row r, column c is padding rather
// than an input value. Input values may themselves be empty strings, so this
// is the only reliable way to tell them apart.
func (g Grid) IsPadding(r, c int) bool {
	last := g.Rows() - 1
	if r != last {
		return false
	}
	return c >= g.columns-g.Padding()
}

// Values returns the input sequence in its original order.
func (g Grid) Values() []string {
	out := make([]string, 0, g.count)
	switch g.fill {
	case FillColumns:
		for c := 0; c < g.columns; c++ {
			for r := 0; r < g.Rows(); r++ {
				if !g.IsPadding(r, c) {
					out = append(out, g.cells[r][c])
				}
			}
		}
	default:
		for r, row := range g.cells {
			for c, v := range row {
				if !g.IsPadding(r, c) {
					out = append(out, v)
				}
			}
		}
	}
	return out
}
