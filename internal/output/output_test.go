package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mj1618/winlayout/internal/model"
	"gopkg.in/yaml.v3"
)

// capture redirects Writer and sets the format for the duration of a test.
func capture(t *testing.T, format Format) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldWriter, oldFormat := Writer, OutputFormat
	Writer, OutputFormat = &buf, format
	t.Cleanup(func() { Writer, OutputFormat = oldWriter, oldFormat })
	return &buf
}

var sample = model.WindowInfo{
	Handle: "0x1a2b",
	Path:   `C:\Apps\editor.exe`,
	State:  model.Maximized,
	Rect:   model.Rect{Top: 10, Left: 20, Width: 800, Height: 600},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"YAML", FormatYAML, false},
		{"json", FormatJSON, false},
		{"agent", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrintYAML(t *testing.T) {
	buf := capture(t, FormatYAML)
	if err := Print(sample); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Count(out, "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}
	if !strings.Contains(out, "state: maximized") {
		t.Errorf("expected display state as text, got:\n%s", out)
	}

	var decoded model.WindowInfo
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded != sample {
		t.Errorf("round trip = %+v, want %+v", decoded, sample)
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	buf := capture(t, FormatJSON)
	if err := Print(sample); err != nil {
		t.Fatal(err)
	}

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "\n") {
		t.Errorf("compact JSON should be single-line, got:\n%s", out)
	}
	if strings.Contains(out, `"error"`) {
		t.Errorf("empty error should be omitted, got: %s", out)
	}
	var decoded model.WindowInfo
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Path != sample.Path {
		t.Errorf("path = %q, want %q", decoded.Path, sample.Path)
	}
}

func TestPrintJSON_Pretty(t *testing.T) {
	var buf bytes.Buffer
	old := Writer
	Writer = &buf
	defer func() { Writer = old }()

	if err := PrintJSON(sample, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  \"handle\"") {
		t.Errorf("pretty JSON should be indented, got:\n%s", buf.String())
	}
}

func TestPrintResult_TextMode(t *testing.T) {
	buf := capture(t, FormatText)
	if err := PrintResult("saved work", sample); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "saved work\n" {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	if err := PrintResult("", sample); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty text should print nothing, got %q", buf.String())
	}
}

func TestPrintResult_StructuredMode(t *testing.T) {
	buf := capture(t, FormatYAML)
	if err := PrintResult("saved work", sample); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "saved work") {
		t.Errorf("structured output should not contain the text line, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "0x1a2b") {
		t.Errorf("expected YAML value, got:\n%s", buf.String())
	}
}

func TestTextf(t *testing.T) {
	buf := capture(t, FormatText)
	Textf("%d windows", 3)
	if buf.String() != "3 windows\n" {
		t.Errorf("got %q", buf.String())
	}

	buf = capture(t, FormatJSON)
	Textf("%d windows", 3)
	if buf.Len() != 0 {
		t.Errorf("Textf should be silent outside text mode, got %q", buf.String())
	}
}
