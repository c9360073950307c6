// Package pkg provides the libraries behind csvgrid.
//
// # Overview
//
// csvgrid turns a comma-separated list of values and a column count into a
// table. The pkg directory is organized into three areas:
//
//  1. Core: [grid] validates input and lays values out, [render] turns the
//     result into a presentation model and [render/sink] draws that model
//  2. Orchestration: [pipeline] runs validate → layout → render with caching
//  3. Infrastructure: [cache], [config], [errors], [observability],
//     [buildinfo] and the HTTP [server]
//
// # Architecture
//
// The data flow through csvgrid:
//
//	raw text + column count
//	         ↓
//	    [grid] Validate (Accepted | Rejected)
//	         ↓
//	    [grid] Layout (row-major, or column-major on request)
//	         ↓
//	    [render] Model (Table | Error)
//	         ↓
//	    [render/sink] text, HTML, JSON, CSV, Markdown, DOT, SVG, PNG
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/csvgrid/pkg/render"
//	    "github.com/matzehuels/csvgrid/pkg/render/sink"
//	)
//
//	m := render.New("a,b,c,d,e", 2)
//	os.Stdout.Write(sink.RenderText(m))
package pkg
