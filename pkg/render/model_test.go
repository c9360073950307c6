package render

import (
	"reflect"
	"testing"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/grid"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		columns   int
		wantKind  Kind
		wantCells [][]string
		wantMsg   string
	}{
		{
			name:      "table",
			raw:       "a,b,c,d,e",
			columns:   2,
			wantKind:  KindTable,
			wantCells: [][]string{{"a", "b"}, {"c", "d"}, {"e", ""}},
		},
		{
			name:      "full row",
			raw:       "x,y,z",
			columns:   3,
			wantKind:  KindTable,
			wantCells: [][]string{{"x", "y", "z"}},
		},
		{"empty", "", 3, KindError, nil, "You must have at least some values!"},
		{"too many", repeatTokens(101), 3, KindError, nil, "You cannot have more than 100 values!"},
		{"zero columns", "a", 0, KindError, nil, "You must have at least one column!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.raw, tt.columns)
			if m.Kind() != tt.wantKind {
				t.Fatalf("Kind() = %v, want %v", m.Kind(), tt.wantKind)
			}
			switch m := m.(type) {
			case Table:
				if !reflect.DeepEqual(m.Grid.Cells(), tt.wantCells) {
					t.Errorf("cells = %q, want %q", m.Grid.Cells(), tt.wantCells)
				}
				if m.Columns != tt.columns {
					t.Errorf("Columns = %d, want %d", m.Columns, tt.columns)
				}
			case Error:
				if m.Message != tt.wantMsg {
					t.Errorf("Message = %q, want %q", m.Message, tt.wantMsg)
				}
			}
		})
	}
}

func repeatTokens(n int) string {
	s := "t"
	for i := 1; i < n; i++ {
		s += ",t"
	}
	return s
}

func TestFromText(t *testing.T) {
	if m, ok := FromText("1,2,3,4,5,6,7", "3").(Table); !ok {
		t.Fatal("FromText() should produce a table")
	} else if m.Grid.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", m.Grid.Rows())
	}

	e, ok := FromText("1,2,3", "zero").(Error)
	if !ok {
		t.Fatal("FromText() with bad columns should produce an error")
	}
	if e.Message != grid.MessageInvalidColumns {
		t.Errorf("Message = %q", e.Message)
	}
	if !errors.Is(e.Err(), errors.ErrCodeInvalidColumns) {
		t.Errorf("Err() code = %v", errors.GetCode(e.Err()))
	}
}

func TestBuildWithFill(t *testing.T) {
	m := Build(grid.Validate("a,b,c,d,e", 2), grid.WithFill(grid.FillColumns)).(Table)
	want := [][]string{{"a", "d"}, {"b", "e"}, {"c", ""}}
	if !reflect.DeepEqual(m.Grid.Cells(), want) {
		t.Errorf("cells = %q, want %q", m.Grid.Cells(), want)
	}
}

func TestBuildHandBuiltAccepted(t *testing.T) {
	// Accepted values constructed outside Validate still never panic.
	m := Build(grid.Accepted{Values: []string{"a"}, Columns: 0})
	e, ok := m.(Error)
	if !ok {
		t.Fatalf("Build() = %T, want Error", m)
	}
	if e.Code != errors.ErrCodeInvalidColumns {
		t.Errorf("Code = %v, want INVALID_COLUMNS", e.Code)
	}
}

func TestHeaders(t *testing.T) {
	m := New("a,b,c,d", 4).(Table)
	want := []string{"1", "2", "3", "4"}
	if got := m.Headers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Headers() = %v, want %v", got, want)
	}
}

func TestErrDefaultsCode(t *testing.T) {
	if err := (Error{Message: "boom"}).Err(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Err() = %v, want INVALID_INPUT", err)
	}
}
