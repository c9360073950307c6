// Package grid turns a comma-separated list of values into a rectangular grid.
//
// The package has two stages, evaluated leaf-first:
//
//  1. [Validate] checks raw input and produces an [Outcome]: either [Accepted]
//     carrying the value sequence, or [Rejected] carrying the user-facing reason.
//  2. [Layout] distributes an accepted sequence into R rows of C columns, where
//     R = ceil(N / C), padding unused trailing cells with empty strings.
//
// # Validation Rules
//
// Input is trimmed of surrounding whitespace and split on commas. Individual
// tokens are not trimmed, and empty tokens between consecutive commas are kept.
// The rejection messages are part of the external contract and are shown
// verbatim by every host:
//
//   - "You must have at least some values!" when the trimmed input is empty
//   - "You cannot have more than 100 values!" when there are more than [MaxValues] tokens
//   - "You must have at least one column!" when the column count is below 1
//
// # Fill Order
//
// [FillRows] (the default) fills each row left to right before moving to the
// next row. [FillColumns] fills each column top to bottom, giving the leading
// columns one extra value when N is not a multiple of C. In both modes the
// padding cells are the trailing cells of the last row.
//
// # Usage
//
//	switch o := grid.Validate("a,b,c,d,e", 2).(type) {
//	case grid.Accepted:
//	    g, _ := grid.Layout(o.Values, o.Columns)
//	    fmt.Println(g.Cells()) // [[a b] [c d] [e ]]
//	case grid.Rejected:
//	    fmt.Println(o.Reason)
//	}
package grid
