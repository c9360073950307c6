package sink

import (
	"bytes"
	"strings"

	"github.com/matzehuels/csvgrid/pkg/render"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

// RenderMarkdown renders a table as a GitHub-flavoured pipe table and an
// error as a block quote.
func RenderMarkdown(m render.Model) []byte {
	var buf bytes.Buffer

	switch m := m.(type) {
	case render.Table:
		writeMarkdownRow(&buf, m.Headers())
		buf.WriteString("|" + strings.Repeat(" --- |", m.Columns) + "\n")
		for _, row := range m.Grid.Cells() {
			writeMarkdownRow(&buf, row)
		}
	case render.Error:
		buf.WriteString("> " + markdownEscaper.Replace(m.Message) + "\n")
	}

	return buf.Bytes()
}

func writeMarkdownRow(buf *bytes.Buffer, cells []string) {
	buf.WriteString("|")
	for _, c := range cells {
		buf.WriteString(" " + markdownEscaper.Replace(c) + " |")
	}
	buf.WriteString("\n")
}
