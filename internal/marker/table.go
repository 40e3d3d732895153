package marker

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
)

// IssueKind classifies a problem with a //retval:mustuse directive.
type IssueKind int

// Issue kinds.
const (
	// Misplaced is a directive not attached to a function or interface method.
	Misplaced IssueKind = iota
	// HasArgs is a directive followed by arguments.
	HasArgs
	// NoResult is a directive on a function that returns nothing.
	NoResult
)

// Issue is a malformed or ineffective directive.
type Issue struct {
	Kind IssueKind
	Pos  token.Pos
	Func string // function name, empty for Misplaced
}

// Message describes the issue.
func (i Issue) Message() string {
	switch i.Kind {
	case HasArgs:
		return fmt.Sprintf("//%s directive takes no arguments", MustUse)
	case NoResult:
		return fmt.Sprintf("//%s directive has no effect on '%s' which returns no value", MustUse, i.Func)
	default:
		return fmt.Sprintf("//%s directive is only allowed on functions and methods", MustUse)
	}
}

// Table maps functions declared in source to their marker sets.
type Table struct {
	sets   map[*types.Func]Set
	issues []Issue
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{sets: make(map[*types.Func]Set)}
}

// Build scans files for directives attached to function and interface
// method declarations.
func Build(files []*ast.File, info *types.Info) *Table {
	t := NewTable()
	t.AddFiles(files, info)

	return t
}

// AddFiles adds the declarations of files, type-checked into info.
func (t *Table) AddFiles(files []*ast.File, info *types.Info) {
	for _, file := range files {
		t.addFile(file, info)
	}
}

// Markers returns the marker set of fn, or nil when fn has none.
func (t *Table) Markers(fn *types.Func) Set {
	if t == nil || fn == nil {
		return nil
	}

	return t.sets[fn.Origin()]
}

// Funcs returns the functions with at least one marker, ordered by
// declaration position.
func (t *Table) Funcs() []*types.Func {
	funcs := make([]*types.Func, 0, len(t.sets))
	for fn := range t.sets {
		funcs = append(funcs, fn)
	}

	slices.SortFunc(funcs, func(a, b *types.Func) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})

	return funcs
}

// Issues returns directive problems found while building, ordered by position.
func (t *Table) Issues() []Issue {
	issues := slices.Clone(t.issues)
	slices.SortFunc(issues, func(a, b Issue) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	return issues
}

// addFile scans a single file.
func (t *Table) addFile(file *ast.File, info *types.Info) {
	// Every MustUse directive in the file; attached ones are removed below.
	pending := make(map[token.Pos]bool)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if d, ok := ParseDirective(c); ok && d.Name == MustUse {
				pending[d.Pos] = true
			}
		}
	}

	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncDecl:
			t.attach(n.Doc, n.Name, info, pending)
		case *ast.InterfaceType:
			for _, field := range n.Methods.List {
				if _, isMethod := field.Type.(*ast.FuncType); !isMethod || len(field.Names) == 0 {
					continue
				}
				t.attach(field.Doc, field.Names[0], info, pending)
			}
		}

		return true
	})

	for pos := range pending {
		t.issues = append(t.issues, Issue{Kind: Misplaced, Pos: pos})
	}
}

// attach records the directives of doc against the function named by ident.
func (t *Table) attach(doc *ast.CommentGroup, ident *ast.Ident, info *types.Info, pending map[token.Pos]bool) {
	if doc == nil {
		return
	}

	fn, ok := info.Defs[ident].(*types.Func)
	if !ok {
		return
	}

	set := make(Set)

	for _, c := range doc.List {
		d, ok := ParseDirective(c)
		if !ok {
			continue
		}

		if d.Name != MustUse {
			set.Add(d.Name)
			continue
		}

		delete(pending, d.Pos)

		if d.Args != "" {
			t.issues = append(t.issues, Issue{Kind: HasArgs, Pos: d.Pos, Func: fn.Name()})
			continue
		}

		if !ReturnsValue(fn) {
			t.issues = append(t.issues, Issue{Kind: NoResult, Pos: d.Pos, Func: fn.Name()})
		}

		set.Add(d.Name)
	}

	if len(set) == 0 {
		return
	}

	fn = fn.Origin()
	if existing, ok := t.sets[fn]; ok {
		for n := range set {
			existing.Add(n)
		}

		return
	}

	t.sets[fn] = set
}

// ReturnsValue reports whether fn has at least one result.
func ReturnsValue(fn *types.Func) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return false
	}

	return sig.Results().Len() > 0
}
