// Package marker handles //retval:mustuse directives.
//
// # Overview
//
// A function whose result must not be ignored is marked with a directive
// line in its doc comment:
//
//	//retval:mustuse
//	func Parse(s string) (Config, error) { ... }
//
// Interface methods may be marked the same way. The marker then applies to
// calls through the interface, not to the methods of implementing types.
//
//	type Store interface {
//	    //retval:mustuse
//	    Get(key string) []byte
//	}
//
// # Identity
//
// Markers are identified by their full "namespace:name" form. Only
// "retval:mustuse" marks a function; "//mustuse" or "//lint:mustuse" do not.
// All well-formed directives in a doc comment form the function's [Set].
//
// # Sources
//
// [Predicate] consults, in order:
//   - a [Table] built from the directives of the packages being analyzed
//   - a [FactSource] reading [Fact] values exported by dependencies
//   - function specifications given on the command line (see funcspec)
//
// # Validation
//
// Building a [Table] records an [Issue] for a directive that is not
// attached to a function or interface method, one that carries arguments,
// and one attached to a function without results.
package marker
