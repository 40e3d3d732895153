package detector

import "go/ast"

// IsConsumed reports whether the result of the last node in stack is used
// by its context. stack is the path from the root to the call, as passed by
// inspector.WithStack.
//
// Parentheses are transparent: the classification continues with the
// grouping's own parent. A call without a parent is not consumed.
func IsConsumed(stack []ast.Node) bool {
	for i := len(stack) - 2; i >= 0; i-- {
		if _, ok := stack[i].(*ast.ParenExpr); ok {
			continue
		}

		return Consumes(stack[i])
	}

	return false
}

// Consumes reports whether parent uses the value of its child expression.
// Only known value-using shapes are listed; every other parent, notably a
// statement such as *ast.ExprStmt, *ast.GoStmt or *ast.DeferStmt, discards
// the value.
func Consumes(parent ast.Node) bool {
	switch parent.(type) {
	case *ast.CallExpr: // argument, or callee of a further call
		return true
	case *ast.BinaryExpr:
		return true
	case *ast.AssignStmt, *ast.ValueSpec, *ast.KeyValueExpr, *ast.CompositeLit:
		return true
	case *ast.ReturnStmt:
		return true
	case *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr, *ast.SliceExpr,
		*ast.StarExpr, *ast.UnaryExpr, *ast.TypeAssertExpr:
		return true
	case *ast.SendStmt, *ast.IncDecStmt:
		return true
	case *ast.IfStmt, *ast.ForStmt, *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.CaseClause, *ast.RangeStmt:
		return true
	default:
		return false
	}
}
