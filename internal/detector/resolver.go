package detector

import (
	"go/ast"
	"go/types"
)

// Resolver maps the callee expression of a call to the function it invokes.
// It returns nil when the callee is not a statically known function.
type Resolver interface {
	Resolve(callee ast.Expr) *types.Func
}

// TypesResolver resolves callees using go/types information.
type TypesResolver struct {
	Info *types.Info
}

// Resolve handles identifiers (Func()), selectors (recv.Method(),
// pkg.Func()), explicit instantiations (Func[int]()) and parenthesized
// callees. Methods and functions of generic code resolve to their origin.
func (r TypesResolver) Resolve(callee ast.Expr) *types.Func {
	if r.Info == nil {
		return nil
	}

	var obj types.Object

	switch fun := ast.Unparen(callee).(type) {
	case *ast.Ident:
		obj = r.Info.Uses[fun]

	case *ast.SelectorExpr:
		if sel := r.Info.Selections[fun]; sel != nil {
			obj = sel.Obj()
		} else {
			// Qualified identifier: pkg.Func
			obj = r.Info.Uses[fun.Sel]
		}

	case *ast.IndexExpr:
		return r.Resolve(fun.X)

	case *ast.IndexListExpr:
		return r.Resolve(fun.X)
	}

	fn, ok := obj.(*types.Func)
	if !ok {
		return nil
	}

	return fn.Origin()
}
