package detector

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/retval/internal/marker"
	"github.com/mpyw/retval/internal/report"
)

// Predicate answers whether a function's result must be used.
type Predicate interface {
	IsMarked(fn *types.Func) bool
}

// Detector reports discarded results of marked functions.
type Detector struct {
	resolver  Resolver
	predicate Predicate
}

// New creates a detector.
func New(resolver Resolver, predicate Predicate) *Detector {
	return &Detector{
		resolver:  resolver,
		predicate: predicate,
	}
}

// Scan walks the files of insp in source order and returns one diagnostic
// per call whose discarded result belongs to a marked, non-void function.
// Files whose name is in skipFiles are not visited.
func (d *Detector) Scan(fset *token.FileSet, insp *inspector.Inspector, skipFiles map[string]bool) []report.Diagnostic {
	collector := report.NewCollector(fset)

	nodeFilter := []ast.Node{
		(*ast.File)(nil),
		(*ast.CallExpr)(nil),
	}

	insp.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		switch node := n.(type) {
		case *ast.File:
			return !skipFiles[fset.Position(node.Pos()).Filename]
		case *ast.CallExpr:
			d.checkCall(collector, node, stack)
		}

		return true
	})

	return collector.Diagnostics()
}

// ScanFiles is Scan over a fresh inspector for files.
func (d *Detector) ScanFiles(fset *token.FileSet, files []*ast.File, skipFiles map[string]bool) []report.Diagnostic {
	return d.Scan(fset, inspector.New(files), skipFiles)
}

// checkCall emits a diagnostic for call when it qualifies.
func (d *Detector) checkCall(collector *report.Collector, call *ast.CallExpr, stack []ast.Node) {
	// Syntactic checks first; they are cheaper than resolving the callee.
	if len(stack) < 2 || IsConsumed(stack) {
		return
	}

	fn := d.resolve(call.Fun)
	if fn == nil || !marker.ReturnsValue(fn) {
		return
	}

	if !d.predicate.IsMarked(fn) {
		return
	}

	collector.Emit(call.Pos(), fn.Name())
}

// resolve resolves callee, treating a panicking resolver as a miss.
func (d *Detector) resolve(callee ast.Expr) (fn *types.Func) {
	defer func() {
		if recover() != nil {
			fn = nil
		}
	}()

	return d.resolver.Resolve(callee)
}
