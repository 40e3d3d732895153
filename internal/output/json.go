package output

import (
	"encoding/json"
	"io"

	"github.com/mpyw/retval/internal/report"
)

// JSONFormatter outputs diagnostics as a JSON array.
type JSONFormatter struct{}

// Format writes diagnostics as a pretty-printed JSON array.
// An empty slice of diagnostics produces [].
func (f *JSONFormatter) Format(w io.Writer, diagnostics []report.Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records(diagnostics))
}
