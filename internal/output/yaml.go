package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mpyw/retval/internal/report"
)

// YAMLFormatter outputs diagnostics as a YAML sequence.
type YAMLFormatter struct{}

// Format writes diagnostics as a YAML sequence. An empty slice produces [].
func (f *YAMLFormatter) Format(w io.Writer, diagnostics []report.Diagnostic) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(records(diagnostics)); err != nil {
		return err
	}

	return enc.Close()
}
