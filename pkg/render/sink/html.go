package sink

import (
	"bytes"
	"html"
	"strconv"

	"github.com/matzehuels/csvgrid/pkg/render"
)

// RenderHTML renders the model as an HTML fragment.
//
// A table becomes <table> with a heading row <th>1</th>..<th>C</th> and one
// <tr> per grid row. An error becomes a single <div> holding the message.
// All values are HTML-escaped.
func RenderHTML(m render.Model) []byte {
	var buf bytes.Buffer

	switch m := m.(type) {
	case render.Table:
		buf.WriteString("<table>\n  <tr>")
		for i := 1; i <= m.Columns; i++ {
			buf.WriteString("<th>" + strconv.Itoa(i) + "</th>")
		}
		buf.WriteString("</tr>\n")

		for _, row := range m.Grid.Cells() {
			buf.WriteString("  <tr>")
			for _, v := range row {
				buf.WriteString("<td>" + html.EscapeString(v) + "</td>")
			}
			buf.WriteString("</tr>\n")
		}
		buf.WriteString("</table>\n")
	case render.Error:
		buf.WriteString("<div class=\"error\">" + html.EscapeString(m.Message) + "</div>\n")
	}

	return buf.Bytes()
}
