package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format represents the output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatText

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Writer receives all command output. Tests replace it.
var Writer io.Writer = os.Stdout

// ParseFormat validates a --format value. Empty selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use text, yaml, or json)", s)
	}
}

// Print serializes v in the current output format. Text output falls back
// to YAML, which reads well in a terminal.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintJSON(v, PrettyOutput)
	case FormatYAML, FormatText:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintResult writes text in text mode and v otherwise. An empty text
// prints nothing.
func PrintResult(text string, v interface{}) error {
	if OutputFormat != FormatText {
		return Print(v)
	}
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(Writer, text)
	return err
}

// Textf writes a formatted line in text mode only.
func Textf(format string, args ...interface{}) {
	if OutputFormat == FormatText {
		fmt.Fprintf(Writer, format+"\n", args...)
	}
}
