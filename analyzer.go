// Package retval provides a go/analysis based analyzer for detecting
// discarded results of functions marked with //retval:mustuse.
package retval

import (
	"errors"
	"flag"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/retval/internal/detector"
	"github.com/mpyw/retval/internal/funcspec"
	"github.com/mpyw/retval/internal/marker"
	"github.com/mpyw/retval/internal/report"
)

// Diagnostic categories.
const (
	CategoryRetVal = report.RuleID
	CategoryMarker = "RetValMarker"
)

// Flags for the analyzer.
var mustUseFuncs string

func init() {
	Analyzer.Flags.StringVar(&mustUseFuncs, "funcs", "",
		"comma-separated list of additional functions whose result must be used (e.g., pkg.Func or pkg.Type.Method)")
}

// Analyzer reports discarded results of functions marked with //retval:mustuse.
var Analyzer = &analysis.Analyzer{
	Name:      "retval",
	Doc:       "checks that results of functions marked with //retval:mustuse are not ignored",
	URL:       "https://github.com/mpyw/retval",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{new(marker.Fact)},
	Run:       run,
	Flags:     flag.FlagSet{},
}

// ErrNoInspector is returned when the inspect pass result is unavailable.
var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Markers declared in this package, shared with importers through facts
	table := marker.Build(pass.Files, pass.TypesInfo)
	marker.Export(table, pass.Pkg, pass.ExportObjectFact)

	reportMarkerIssues(pass, table, skipFiles)

	predicate := marker.NewPredicate(
		funcspec.ParseList(mustUseFuncs),
		table,
		marker.FactSource{Import: pass.ImportObjectFact},
	)

	d := detector.New(detector.TypesResolver{Info: pass.TypesInfo}, predicate)
	for _, diag := range d.Scan(pass.Fset, insp, skipFiles) {
		pass.Report(analysis.Diagnostic{
			Pos:      diag.Pos,
			Category: CategoryRetVal,
			Message:  diag.Message,
		})
	}

	return nil, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
// Test files can be skipped via the driver's built-in -test flag.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// reportMarkerIssues reports misplaced or ineffective //retval:mustuse directives.
func reportMarkerIssues(pass *analysis.Pass, table *marker.Table, skipFiles map[string]bool) {
	for _, issue := range table.Issues() {
		if skipFiles[pass.Fset.Position(issue.Pos).Filename] {
			continue
		}

		pass.Report(analysis.Diagnostic{
			Pos:      issue.Pos,
			Category: CategoryMarker,
			Message:  issue.Message(),
		})
	}
}
