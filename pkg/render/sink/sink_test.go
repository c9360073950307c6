package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/grid"
	"github.com/matzehuels/csvgrid/pkg/render"
)

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name  string
		model render.Model
		want  string
	}{
		{
			name:  "table with padding",
			model: render.New("a,b,c,d,e", 2),
			want: "<table>\n" +
				"  <tr><th>1</th><th>2</th></tr>\n" +
				"  <tr><td>a</td><td>b</td></tr>\n" +
				"  <tr><td>c</td><td>d</td></tr>\n" +
				"  <tr><td>e</td><td></td></tr>\n" +
				"</table>\n",
		},
		{
			name:  "escapes values",
			model: render.New("<b>,&", 2),
			want: "<table>\n" +
				"  <tr><th>1</th><th>2</th></tr>\n" +
				"  <tr><td>&lt;b&gt;</td><td>&amp;</td></tr>\n" +
				"</table>\n",
		},
		{
			name:  "error",
			model: render.New("", 2),
			want:  "<div class=\"error\">You must have at least some values!</div>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(RenderHTML(tt.model)); got != tt.want {
				t.Errorf("RenderHTML() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(render.New("1,2,3,4,5,6,7", 3))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Kind != render.KindTable {
		t.Errorf("kind = %q, want table", out.Kind)
	}
	if out.Rows != 3 || out.Columns != 3 || out.Values != 7 || out.Padding != 2 {
		t.Errorf("shape = %+v", out)
	}
	if out.Fill != "rows" {
		t.Errorf("fill = %q, want rows", out.Fill)
	}
	if len(out.Grid) != 3 || out.Grid[2][0] != "7" || out.Grid[2][2] != "" {
		t.Errorf("grid = %q", out.Grid)
	}
	if strings.Join(out.Headers, ",") != "1,2,3" {
		t.Errorf("headers = %v", out.Headers)
	}
}

func TestRenderJSONError(t *testing.T) {
	data, err := RenderJSON(render.New(strings.Repeat("x,", 100)+"x", 3))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Kind != render.KindError {
		t.Errorf("kind = %q, want error", out.Kind)
	}
	if out.Message != "You cannot have more than 100 values!" {
		t.Errorf("message = %q", out.Message)
	}
	if out.Code != errors.ErrCodeTooManyValues {
		t.Errorf("code = %q", out.Code)
	}
	if out.Grid != nil {
		t.Error("error output should not carry a grid")
	}
}

func TestRenderCSV(t *testing.T) {
	data, err := RenderCSV(render.New("a,b,c", 2))
	if err != nil {
		t.Fatalf("RenderCSV() error: %v", err)
	}
	want := "1,2\na,b\nc,\n"
	if string(data) != want {
		t.Errorf("RenderCSV() = %q, want %q", data, want)
	}

	_, err = RenderCSV(render.New(" ", 2))
	if err == nil {
		t.Fatal("RenderCSV() of error model should fail")
	}
	if errors.UserMessage(err) != grid.MessageNoValues {
		t.Errorf("UserMessage() = %q", errors.UserMessage(err))
	}
}

func TestRenderMarkdown(t *testing.T) {
	got := string(RenderMarkdown(render.New("x,y|z,w", 2)))
	want := "| 1 | 2 |\n" +
		"| --- | --- |\n" +
		"| x | y\\|z |\n" +
		"| w |  |\n"
	if got != want {
		t.Errorf("RenderMarkdown() =\n%s\nwant\n%s", got, want)
	}

	got = string(RenderMarkdown(render.New("a", 0)))
	if got != "> You must have at least one column!\n" {
		t.Errorf("RenderMarkdown() error = %q", got)
	}
}

func TestRenderText(t *testing.T) {
	out := string(RenderText(render.New("alpha,beta,gamma", 2), WithColor(false)))

	for _, want := range []string{"1", "2", "alpha", "beta", "gamma", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderText() missing %q:\n%s", want, out)
		}
	}

	// Header row plus two data rows, framed by top and bottom borders and a
	// header separator.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Errorf("RenderText() has %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "1") || !strings.Contains(lines[1], "2") {
		t.Errorf("first content line should hold headers: %q", lines[1])
	}
}

func TestRenderTextBorders(t *testing.T) {
	ascii := string(RenderText(render.New("a,b", 2), WithBorder(BorderASCII), WithColor(false)))
	if !strings.Contains(ascii, "+") || strings.Contains(ascii, "╭") {
		t.Errorf("ASCII border not applied:\n%s", ascii)
	}
}

func TestRenderTextError(t *testing.T) {
	out := string(RenderText(render.New("", 3), WithColor(false)))
	if out != "✗ You must have at least some values!\n" {
		t.Errorf("RenderText() error = %q", out)
	}
}

func TestParseBorder(t *testing.T) {
	tests := []struct {
		input   string
		want    Border
		wantErr bool
	}{
		{"", BorderRounded, false},
		{"rounded", BorderRounded, false},
		{"ASCII", BorderASCII, false},
		{"hidden", BorderHidden, false},
		{"wavy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBorder(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBorder(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBorder(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(render.New("a,<b>,c", 2))

	for _, want := range []string{
		"digraph G {",
		"<B>1</B>",
		"<B>2</B>",
		"<TD>a</TD>",
		"<TD>&lt;b&gt;</TD>",
		"<TD BGCOLOR=\"whitesmoke\"> </TD>",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}

	errDot := ToDOT(render.New("", 2))
	if !strings.Contains(errDot, `label="You must have at least some values!"`) {
		t.Errorf("ToDOT() error missing label:\n%s", errDot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeViewBox([]byte(tt.svg)); string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), render.New("x,y,z", 3))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("RenderSVG() output missing <svg> tag")
	}
	if !bytes.Contains(svg, []byte(">y<")) {
		t.Error("RenderSVG() output missing cell text")
	}
}

func TestRenderPNG(t *testing.T) {
	png, err := RenderPNG(context.Background(), render.New("", 1))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("RenderPNG() output is not a PNG")
	}
}
