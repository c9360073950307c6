package cli

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/grid"
	"github.com/matzehuels/csvgrid/pkg/pipeline"
)

// Editor styles
var (
	fieldFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	fieldNormalStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	fieldLabelStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(9)
	editorDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// EditorModel - Interactive grid editor
// =============================================================================

type editorField int

const (
	fieldValues editorField = iota
	fieldColumns
)

// EditorModel is the bubbletea model behind `csvgrid edit`. It holds the two
// input fields and the last rendered grid.
type EditorModel struct {
	ctx    context.Context
	runner *pipeline.Runner

	Values  string
	Columns string
	Focus   editorField
	Fill    grid.Fill
	Border  string

	// SubmitOnly delays rendering until Enter is pressed.
	SubmitOnly bool

	Output   string
	Accepted bool
	Stale    bool
	Err      error
}

// NewEditorModel creates an editor. Initial values are rendered right away;
// an empty editor shows nothing until the first edit.
func NewEditorModel(ctx context.Context, runner *pipeline.Runner, values, columns string, fill grid.Fill, border string, submitOnly bool) EditorModel {
	m := EditorModel{
		ctx:        ctx,
		runner:     runner,
		Values:     values,
		Columns:    columns,
		Fill:       fill,
		Border:     border,
		SubmitOnly: submitOnly,
	}
	if values == "" {
		return m
	}
	return m.recompute()
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	changed := false
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.Focus = 1 - m.Focus
		return m, nil
	case tea.KeyEnter:
		return m.recompute(), nil
	case tea.KeyCtrlF:
		m.Fill = 1 - m.Fill
		changed = true
	case tea.KeyCtrlU:
		m.setField("")
		changed = true
	case tea.KeyBackspace:
		if r := []rune(m.field()); len(r) > 0 {
			m.setField(string(r[:len(r)-1]))
			changed = true
		}
	case tea.KeySpace:
		m.setField(m.field() + " ")
		changed = true
	case tea.KeyRunes:
		m.setField(m.field() + string(key.Runes))
		changed = true
	}

	if !changed {
		return m, nil
	}
	if m.SubmitOnly {
		m.Stale = true
		return m, nil
	}
	return m.recompute(), nil
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("csvgrid"))
	b.WriteString("\n")
	help := "tab switch field  ctrl+f fill order  ctrl+u clear  esc quit"
	if m.SubmitOnly {
		help = "⏎ render  " + help
	}
	b.WriteString(editorDimStyle.Render(help))
	b.WriteString("\n\n")

	b.WriteString(m.renderField("Values", m.Values, m.Focus == fieldValues))
	b.WriteString(m.renderField("Columns", m.Columns, m.Focus == fieldColumns))
	b.WriteString(fieldLabelStyle.Render("Fill") + " " + StyleHighlight.Render(m.Fill.String()) + "\n\n")

	if m.Err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + errors.UserMessage(m.Err) + "\n")
	} else {
		b.WriteString(m.Output)
	}
	if m.Stale {
		b.WriteString(StyleWarning.Render("press enter to update") + "\n")
	}
	return b.String()
}

func (m EditorModel) renderField(label, value string, focused bool) string {
	style := fieldNormalStyle
	cursor := " "
	if focused {
		style = fieldFocusedStyle
		cursor = "▏"
	}
	return fieldLabelStyle.Render(label) + " " + style.Render(value+cursor) + "\n"
}

func (m EditorModel) field() string {
	if m.Focus == fieldColumns {
		return m.Columns
	}
	return m.Values
}

func (m *EditorModel) setField(v string) {
	if m.Focus == fieldColumns {
		m.Columns = v
	} else {
		m.Values = v
	}
}

// recompute renders the current inputs as a text table.
func (m EditorModel) recompute() EditorModel {
	res, err := m.runner.Execute(m.ctx, pipeline.Options{
		Values:  m.Values,
		Columns: m.Columns,
		Fill:    m.Fill,
		Formats: []string{pipeline.FormatText},
		Border:  m.Border,
		Color:   true,
	})
	m.Stale = false
	m.Err = err
	if err != nil {
		return m
	}
	m.Output = string(res.Artifacts[pipeline.FormatText])
	m.Accepted = res.Accepted()
	return m
}
