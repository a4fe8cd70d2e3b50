package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"", FormatText},
		{"invalid", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFormatter_Stdout(t *testing.T) {
	f, err := NewFormatter(FormatText, "", true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	defer f.Close()

	if f.file != nil {
		t.Error("file should be nil for stdout")
	}
	if !f.colored {
		t.Error("colored should be true")
	}
}

func TestNewFormatter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	f, err := NewFormatter(FormatJSON, path, true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}

	if f.colored {
		t.Error("file output should disable color")
	}

	if err := f.Output(map[string]int{"n": 3}); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]int
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["n"] != 3 {
		t.Errorf("n = %d, want 3", got["n"])
	}
}

func TestTable_RenderMarkdown(t *testing.T) {
	table := NewTable("Results", []string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}}, nil)

	var buf bytes.Buffer
	if err := table.RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "## Results") {
		t.Error("missing title heading")
	}
	if !strings.Contains(out, "| A | B |") {
		t.Error("missing header row")
	}
	if !strings.Contains(out, "| 1 | 2 |") {
		t.Error("missing data row")
	}
}

func TestTable_RenderText(t *testing.T) {
	table := NewTable("Results", []string{"A", "B"}, [][]string{{"1", "2"}}, nil)

	var buf bytes.Buffer
	if err := table.RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Results") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "1") || !strings.Contains(out, "2") {
		t.Error("missing cell values")
	}
}

func TestTable_RenderData(t *testing.T) {
	table := NewTable("", []string{"X", "Y"}, [][]string{{"1", "10"}}, nil)

	data, ok := table.RenderData().([]map[string]string)
	if !ok {
		t.Fatalf("RenderData() = %T, want []map[string]string", table.RenderData())
	}
	if data[0]["X"] != "1" || data[0]["Y"] != "10" {
		t.Errorf("RenderData() = %v", data)
	}
}

func TestTable_RenderData_Wrapped(t *testing.T) {
	payload := []int{1, 2, 3}
	table := NewTable("", nil, nil, payload)

	got, ok := table.RenderData().([]int)
	if !ok || len(got) != 3 {
		t.Errorf("RenderData() = %v, want wrapped payload", table.RenderData())
	}
}
