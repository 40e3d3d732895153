package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mpyw/retval/internal/report"
)

// TextFormatter outputs diagnostics in human-readable text format.
// When Color is true, the file location is printed in cyan and the rule ID in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes each diagnostic as a single line in the pattern:
// file:line:col: rule: message
func (f *TextFormatter) Format(w io.Writer, diagnostics []report.Diagnostic) error {
	location := color.New(color.FgCyan)
	rule := color.New(color.FgYellow)

	if f.Color {
		location.EnableColor()
		rule.EnableColor()
	} else {
		location.DisableColor()
		rule.DisableColor()
	}

	for _, d := range diagnostics {
		pos := fmt.Sprintf("%s:%d:%d", d.Position.Filename, d.Position.Line, d.Position.Column)
		if _, err := fmt.Fprintf(w, "%s: %s: %s\n", location.Sprint(pos), rule.Sprint(d.RuleID), d.Message); err != nil {
			return err
		}
	}

	return nil
}
