// Package output renders diagnostics of the report command.
package output

import (
	"fmt"
	"io"
	"os"

	"fortio.org/safecast"
	"golang.org/x/term"

	"github.com/mpyw/retval/internal/config"
	"github.com/mpyw/retval/internal/report"
)

// Formatter defines the interface for outputting diagnostics.
type Formatter interface {
	Format(w io.Writer, diagnostics []report.Diagnostic) error
}

// New returns the formatter for format. color only affects text output.
func New(format string, color bool) (Formatter, error) {
	switch format {
	case config.FormatText:
		return &TextFormatter{Color: color}, nil
	case config.FormatJSON:
		return &JSONFormatter{}, nil
	case config.FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}

// UseColor resolves a color mode for output written to f.
// In auto mode color is used only when f is a terminal.
func UseColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case config.ColorOn:
		return true, nil
	case config.ColorOff:
		return false, nil
	case config.ColorAuto:
		if f == nil {
			return false, nil
		}

		fd, err := safecast.Conv[int](f.Fd())
		if err != nil {
			return false, nil
		}

		return term.IsTerminal(fd), nil
	default:
		return false, fmt.Errorf("%w: %q", config.ErrUnknownColor, mode)
	}
}

// record is the serialized form of a diagnostic.
type record struct {
	File     string `json:"file" yaml:"file"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
	Rule     string `json:"rule" yaml:"rule"`
	Severity string `json:"severity" yaml:"severity"`
	Func     string `json:"func" yaml:"func"`
	Message  string `json:"message" yaml:"message"`
}

func records(diagnostics []report.Diagnostic) []record {
	items := make([]record, 0, len(diagnostics))
	for _, d := range diagnostics {
		items = append(items, record{
			File:     d.Position.Filename,
			Line:     d.Position.Line,
			Column:   d.Position.Column,
			Rule:     d.RuleID,
			Severity: string(d.Severity),
			Func:     d.Func,
			Message:  d.Message,
		})
	}

	return items
}
