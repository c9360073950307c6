// Package sink renders a [render.Model] into output formats.
//
// Every sink performs the same two-branch dispatch: a [render.Table] becomes a
// table whose header row numbers the columns 1..C followed by one row per grid
// row, and a [render.Error] becomes a single error display.
//
// # Formats
//
//   - [RenderText]: terminal table drawn with lipgloss
//   - [RenderHTML]: an HTML <table> fragment, or a <div> holding the message
//   - [RenderJSON]: a machine-readable document tagged with its kind
//   - [RenderCSV]: header plus rows; error models return an error instead
//   - [RenderMarkdown]: a GitHub-flavoured pipe table
//   - [ToDOT], [RenderSVG], [RenderPNG]: Graphviz documents and images
package sink
