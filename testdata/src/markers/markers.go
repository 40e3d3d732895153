// Package markers tests placement and identity of //retval:mustuse directives.
package markers

// ===== DIRECTIVE VALIDATION =====

//retval:mustuse // want `//retval:mustuse directive has no effect on 'Void' which returns no value`
func Void() { // want Void:`markers\(retval:mustuse\)`
}

//retval:mustuse strict // want `//retval:mustuse directive takes no arguments`
func WithArgs() int {
	return 0
}

//retval:mustuse // want `//retval:mustuse directive is only allowed on functions and methods`
type Config struct {
	//retval:mustuse // want `//retval:mustuse directive is only allowed on functions and methods`
	Name string
}

//retval:mustuse // want `//retval:mustuse directive is only allowed on functions and methods`
var Default = Config{}

func inBody() {
	//retval:mustuse // want `//retval:mustuse directive is only allowed on functions and methods`
	_ = Default
}

// ===== IDENTITY =====

//mustuse
func ShortName() int {
	return 0
}

//lint:mustuse
func OtherNamespace() int {
	return 0
}

// Combined keeps other directives alongside the marker.
//
//go:noinline
//retval:mustuse
func Combined() int { // want Combined:`markers\(go:noinline,retval:mustuse\)`
	return 0
}

// ===== CALL SITES =====

// [GOOD]: Void function is never reported
func goodVoid() {
	Void()
}

// [GOOD]: Directive with arguments does not mark
func goodWithArgs() {
	WithArgs()
}

// [GOOD]: Markers from other namespaces
func goodOtherMarkers() {
	ShortName()
	OtherNamespace()
}

// [BAD]: Marker combined with other directives
func badCombined() {
	Combined() // want `The return value of 'Combined' should not be ignored`
}
