package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/csvgrid/pkg/grid"
	"github.com/matzehuels/csvgrid/pkg/pipeline"
)

func newTestEditor(submitOnly bool) EditorModel {
	runner := pipeline.NewRunner(nil, nil, log.NewWithOptions(io.Discard, log.Options{}))
	return NewEditorModel(context.Background(), runner, "", "2", grid.FillRows, "ascii", submitOnly)
}

func typeKeys(m EditorModel, s string) EditorModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(EditorModel)
}

func press(m EditorModel, k tea.KeyType) (EditorModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(EditorModel), cmd
}

func TestEditorStartsBlank(t *testing.T) {
	m := newTestEditor(false)
	if m.Accepted || m.Output != "" {
		t.Fatalf("empty editor should show nothing, got Accepted=%v Output=%q", m.Accepted, m.Output)
	}
	if strings.Contains(m.View(), grid.MessageNoValues) {
		t.Error("view should not show a rejection before any edit")
	}

	m = typeKeys(m, "a")
	m, _ = press(m, tea.KeyCtrlU)
	if !strings.Contains(m.Output, grid.MessageNoValues) {
		t.Errorf("cleared values should be rejected, output = %q", m.Output)
	}
}

func TestEditorRendersInitialValues(t *testing.T) {
	runner := pipeline.NewRunner(nil, nil, log.NewWithOptions(io.Discard, log.Options{}))
	m := NewEditorModel(context.Background(), runner, "a,b,c", "2", grid.FillRows, "ascii", false)
	if !m.Accepted || !strings.Contains(m.Output, "| c ") {
		t.Errorf("initial values should render, got Accepted=%v Output=%q", m.Accepted, m.Output)
	}
}

func TestEditorRecomputesOnEveryKey(t *testing.T) {
	m := newTestEditor(false)

	m = typeKeys(m, "a,b,c")
	if !m.Accepted {
		t.Fatalf("expected a table, got %q", m.Output)
	}
	if !strings.Contains(m.Output, "| c ") {
		t.Errorf("output missing last value:\n%s", m.Output)
	}

	m, _ = press(m, tea.KeyBackspace)
	if m.Values != "a,b," {
		t.Errorf("Values = %q after backspace", m.Values)
	}
}

func TestEditorSwitchesFields(t *testing.T) {
	m := newTestEditor(false)
	m = typeKeys(m, "a,b,c")

	m, _ = press(m, tea.KeyTab)
	if m.Focus != fieldColumns {
		t.Fatal("tab should move focus to columns")
	}
	m, _ = press(m, tea.KeyBackspace)
	if m.Columns != "" || m.Accepted {
		t.Errorf("clearing columns should reject, got Columns=%q Accepted=%v", m.Columns, m.Accepted)
	}
	if !strings.Contains(m.Output, grid.MessageInvalidColumns) {
		t.Errorf("output = %q", m.Output)
	}

	m = typeKeys(m, "3")
	if !m.Accepted || m.Columns != "3" {
		t.Errorf("Columns=%q Accepted=%v", m.Columns, m.Accepted)
	}
}

func TestEditorSubmitMode(t *testing.T) {
	m := newTestEditor(true)
	m = typeKeys(m, "x,y")

	if !m.Stale || m.Accepted {
		t.Fatalf("submit mode should wait for enter: Stale=%v Accepted=%v", m.Stale, m.Accepted)
	}
	if !strings.Contains(m.View(), "press enter") {
		t.Error("view should prompt for enter")
	}

	m, _ = press(m, tea.KeyEnter)
	if m.Stale || !m.Accepted {
		t.Errorf("after enter: Stale=%v Accepted=%v", m.Stale, m.Accepted)
	}
}

func TestEditorToggleFill(t *testing.T) {
	m := newTestEditor(false)
	m = typeKeys(m, "1,2,3,4,5")

	m, _ = press(m, tea.KeyCtrlF)
	if m.Fill != grid.FillColumns {
		t.Fatalf("Fill = %v, want columns", m.Fill)
	}
	if !strings.Contains(m.View(), "columns") {
		t.Error("view should show the fill order")
	}
}

func TestEditorQuits(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := press(newTestEditor(false), k)
		if cmd == nil {
			t.Fatalf("%v: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: expected tea.QuitMsg", k)
		}
	}
}
