// Package report builds and collects RetVal diagnostics.
package report

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"
)

// RuleID identifies the discarded-result rule.
const RuleID = "RetVal"

// messageFormat is the single-substitution message template.
const messageFormat = "The return value of '%s' should not be ignored"

// Severity indicates the severity level of a diagnostic.
type Severity string

// Severity levels. RetVal always reports warnings.
const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Diagnostic is a single discarded-result finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Func     string         // name of the called function
	Pos      token.Pos      // start of the call expression
	Position token.Position // resolved file, line and column of Pos
}

// Message formats the diagnostic message for the named function.
func Message(name string) string {
	return fmt.Sprintf(messageFormat, name)
}

// New creates a diagnostic for a discarded call to name at pos.
func New(fset *token.FileSet, pos token.Pos, name string) Diagnostic {
	var position token.Position
	if fset != nil {
		position = fset.Position(pos)
	}

	return Diagnostic{
		RuleID:   RuleID,
		Severity: Warning,
		Message:  Message(name),
		Func:     name,
		Pos:      pos,
		Position: position,
	}
}

// String renders the diagnostic as "file:line:col: RetVal: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Position, d.RuleID, d.Message)
}

// Collector accumulates diagnostics in the order they are emitted.
// It performs no deduplication.
type Collector struct {
	fset  *token.FileSet
	diags []Diagnostic
}

// NewCollector creates a collector resolving positions against fset.
func NewCollector(fset *token.FileSet) *Collector {
	return &Collector{fset: fset}
}

// Emit records one diagnostic for a discarded call to name at pos.
func (c *Collector) Emit(pos token.Pos, name string) {
	c.diags = append(c.diags, New(c.fset, pos, name))
}

// Len returns the number of diagnostics emitted so far.
func (c *Collector) Len() int {
	return len(c.diags)
}

// Diagnostics returns the emitted diagnostics in discovery order.
// The returned slice is a copy.
func (c *Collector) Diagnostics() []Diagnostic {
	return slices.Clone(c.diags)
}

// Sort orders diagnostics by file, line and column.
// Diagnostics at the same position keep their relative order.
func Sort(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Position.Filename, b.Position.Filename),
			cmp.Compare(a.Position.Line, b.Position.Line),
			cmp.Compare(a.Position.Column, b.Position.Column),
		)
	})
}
