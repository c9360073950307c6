// Package render builds the render-ready model handed to presentation.
//
// # Overview
//
// A [Model] is exactly one of two variants:
//
//   - [Table]: a laid-out grid together with its column count
//   - [Error]: a user-facing validation message
//
// Presentation code dispatches on the variant with a type switch and never
// needs to know how the grid was produced:
//
//	switch m := render.New("a,b,c,d,e", 2).(type) {
//	case render.Table:
//	    fmt.Println(m.Headers(), m.Grid.Cells())
//	case render.Error:
//	    fmt.Println(m.Message)
//	}
//
// Models are built fresh on every call and are never mutated, so a host can
// keep the most recent one and simply replace it when new input arrives.
//
// # Sinks
//
// The [sink] subpackage turns a Model into bytes: terminal tables, HTML,
// JSON, CSV, Markdown, Graphviz DOT, and SVG or PNG images rendered through
// Graphviz.
package render
