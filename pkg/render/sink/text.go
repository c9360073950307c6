package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/render"
)

// Border names a table border style for [RenderText].
type Border string

const (
	BorderRounded Border = "rounded"
	BorderNormal  Border = "normal"
	BorderThick   Border = "thick"
	BorderDouble  Border = "double"
	BorderASCII   Border = "ascii"
	BorderHidden  Border = "hidden"
)

// DefaultBorder is the border used when none is configured.
const DefaultBorder = BorderRounded

// ValidBorders is the set of supported border names.
var ValidBorders = map[Border]bool{
	BorderRounded: true,
	BorderNormal:  true,
	BorderThick:   true,
	BorderDouble:  true,
	BorderASCII:   true,
	BorderHidden:  true,
}

// ParseBorder parses a border name. The empty string selects [DefaultBorder].
func ParseBorder(s string) (Border, error) {
	if s == "" {
		return DefaultBorder, nil
	}
	b := Border(strings.ToLower(s))
	if !ValidBorders[b] {
		return "", errors.New(errors.ErrCodeInvalidBorder,
			"invalid border: %q (must be one of: rounded, normal, thick, double, ascii, hidden)", s)
	}
	return b, nil
}

func (b Border) lipgloss() lipgloss.Border {
	switch b {
	case BorderNormal:
		return lipgloss.NormalBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	case BorderASCII:
		return lipgloss.ASCIIBorder()
	case BorderHidden:
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

var (
	colorCyan = lipgloss.Color("36")
	colorRed  = lipgloss.Color("167")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
)

// TextOption configures [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	border Border
	color  bool
}

// WithBorder selects the table border.
func WithBorder(b Border) TextOption { return func(r *textRenderer) { r.border = b } }

// WithColor enables or disables ANSI styling. Color is on by default; lipgloss
// still strips it when the output is not a terminal.
func WithColor(on bool) TextOption { return func(r *textRenderer) { r.color = on } }

// RenderText draws the model as a terminal table with numbered column headers.
func RenderText(m render.Model, opts ...TextOption) []byte {
	r := textRenderer{border: DefaultBorder, color: true}
	for _, opt := range opts {
		opt(&r)
	}

	switch m := m.(type) {
	case render.Table:
		return []byte(r.table(m) + "\n")
	case render.Error:
		return []byte(r.error(m.Message) + "\n")
	default:
		return nil
	}
}

func (r textRenderer) table(m render.Table) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Bold(true)
	borderStyle := lipgloss.NewStyle()
	if r.color {
		header = header.Foreground(colorCyan)
		borderStyle = borderStyle.Foreground(colorDim)
	}

	t := table.New().
		Border(r.border.lipgloss()).
		BorderStyle(borderStyle).
		Headers(m.Headers()...).
		Rows(m.Grid.Cells()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return t.Render()
}

func (r textRenderer) error(msg string) string {
	if !r.color {
		return "✗ " + msg
	}
	icon := lipgloss.NewStyle().Foreground(colorRed).Render("✗")
	return icon + " " + lipgloss.NewStyle().Foreground(colorGray).Render(msg)
}
