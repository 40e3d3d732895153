// Package funcspec provides function specification parsing and matching.
//
// # Specification Format
//
// A function specification has the format:
//
//	pkg/path.FuncName           # Package-level function
//	pkg/path.TypeName.Method    # Method on type (or interface)
//
// Examples:
//
//	strings.TrimSpace
//	bytes.Buffer.String
//	github.com/example/store.Store.Get
//
// # Parsing
//
// Use [Parse] for a single value or [ParseList] for the comma-separated
// form accepted by the -funcs flag:
//
//	spec := funcspec.Parse("github.com/pkg.Type.Method")
//	// spec.PkgPath  = "github.com/pkg"
//	// spec.TypeName = "Type"
//	// spec.FuncName = "Method"
//
// # Matching
//
// [Spec.Matches] compares package path, receiver type name and function
// name. Pointer receivers and generic receivers are normalized first.
package funcspec
