package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Name", "Hex", "RGB"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})

	table.AddRow([]string{"red", "#ff0000"})
	table.AddRow([]string{"short"})
	table.AddRow([]string{"long", "#000000", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected short row padded to 2 columns, got %q", table.rows[1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected long row truncated to 2 columns, got %q", table.rows[2])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})
	table.AddRow([]string{"Primary", "#3498db"})
	table.AddRow([]string{"Complementary", "#cb6724"})

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Name           Hex" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "-------------  -------" {
		t.Errorf("separator = %q", lines[1])
	}
	if lines[2] != "Primary        #3498db" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestTableRenderIgnoresEscapes(t *testing.T) {
	table := NewTable([]string{"Swatch", "Hex"})
	table.AddRow([]string{"\x1b[48;2;255;0;0m  ab  \x1b[0m", "#ff0000"})

	lines := strings.Split(table.Render(), "\n")
	if !strings.HasSuffix(lines[2], "\x1b[0m  #ff0000") {
		t.Errorf("escape sequences counted towards width: %q", lines[2])
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "plain", in: "#ff0000", want: 7},
		{name: "truecolour", in: "\x1b[48;2;255;0;0m    \x1b[0m", want: 4},
		{name: "hyperlink", in: "\x1b]8;;https://example.com\x07link\x1b]8;;\x07", want: 4},
		{name: "degree", in: "+30°", want: 4},
		{name: "wide", in: "色", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visibleWidth(tt.in); got != tt.want {
				t.Errorf("visibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "ab", width: 4, want: "ab  "},
		{in: "abcd", width: 2, want: "abcd"},
		{in: "+30°", width: 5, want: "+30° "},
	}
	for _, tt := range tests {
		if got := padRight(tt.in, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
