package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/csvgrid/pkg/render"
)

// dotEscaper escapes text for Graphviz HTML-like labels.
var dotEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "<BR/>",
)

// ToDOT converts the model to a Graphviz DOT document.
//
// A table becomes a single plaintext node whose HTML-like label is the table
// itself, with a shaded header row numbering the columns. An error becomes a
// single red box holding the message.
func ToDOT(m render.Model) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"Helvetica\", fontsize=14];\n")
	buf.WriteString("\n")

	switch m := m.(type) {
	case render.Table:
		buf.WriteString("  grid [shape=plaintext, label=<\n")
		buf.WriteString("    <TABLE BORDER=\"0\" CELLBORDER=\"1\" CELLSPACING=\"0\" CELLPADDING=\"6\">\n")
		buf.WriteString("      <TR>")
		for i := 1; i <= m.Columns; i++ {
			fmt.Fprintf(&buf, "<TD BGCOLOR=\"lightgrey\"><B>%d</B></TD>", i)
		}
		buf.WriteString("</TR>\n")
		for r, row := range m.Grid.Cells() {
			buf.WriteString("      <TR>")
			for c, v := range row {
				if m.Grid.IsPadding(r, c) {
					buf.WriteString("<TD BGCOLOR=\"whitesmoke\"> </TD>")
					continue
				}
				buf.WriteString("<TD>" + dotCell(v) + "</TD>")
			}
			buf.WriteString("</TR>\n")
		}
		buf.WriteString("    </TABLE>\n")
		buf.WriteString("  >];\n")
	case render.Error:
		fmt.Fprintf(&buf, "  error [shape=box, style=\"rounded,filled\", fillcolor=\"#fdecea\", color=\"#c0392b\", fontcolor=\"#c0392b\", label=%q];\n", m.Message)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotCell escapes a value; an empty value becomes a space because Graphviz
// collapses empty cells.
func dotCell(v string) string {
	if v == "" {
		return " "
	}
	return dotEscaper.Replace(v)
}

// RenderSVG renders the model to SVG through Graphviz.
func RenderSVG(ctx context.Context, m render.Model) ([]byte, error) {
	svg, err := renderDOT(ctx, ToDOT(m), graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(svg), nil
}

// RenderPNG renders the model to PNG through Graphviz.
func RenderPNG(ctx context.Context, m render.Model) ([]byte, error) {
	return renderDOT(ctx, ToDOT(m), graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the viewBox starts at the
// origin and width/height match it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
