package marker

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// Name is a fully-qualified marker identity of the form "namespace:name".
type Name struct {
	Namespace string
	Local     string
}

// MustUse marks functions whose result must not be ignored.
var MustUse = Name{Namespace: "retval", Local: "mustuse"}

// String returns "namespace:name".
func (n Name) String() string {
	return n.Namespace + ":" + n.Local
}

// ParseName parses "namespace:name". It reports false when s is not a
// well-formed identity.
func ParseName(s string) (Name, bool) {
	ns, local, ok := strings.Cut(s, ":")
	if !ok || !isNamespace(ns) || !isLocal(local) {
		return Name{}, false
	}

	return Name{Namespace: ns, Local: local}, true
}

// isNamespace accepts lower-case letters and digits, starting with a letter.
func isNamespace(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}

	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}

func isLocal(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}

	return true
}

// Directive is a parsed "//namespace:name [args]" comment.
type Directive struct {
	Name Name
	Args string // trailing text, empty when the directive has no arguments
	Pos  token.Pos
}

// ParseDirective parses a line comment as a directive.
//
// Supported formats:
//   - //retval:mustuse
//   - // retval:mustuse
//   - //retval:mustuse //other:directive   (a following comment is not an argument)
func ParseDirective(c *ast.Comment) (Directive, bool) {
	text, ok := strings.CutPrefix(c.Text, "//")
	if !ok {
		return Directive{}, false
	}

	text = strings.TrimSpace(text)

	if idx := strings.Index(text, " //"); idx >= 0 {
		text = text[:idx]
	}

	head, args, _ := strings.Cut(text, " ")

	name, ok := ParseName(head)
	if !ok {
		return Directive{}, false
	}

	return Directive{
		Name: name,
		Args: strings.TrimSpace(args),
		Pos:  c.Pos(),
	}, true
}

// Set is an unordered set of marker names attached to a function.
type Set map[Name]struct{}

// Add adds n to the set.
func (s Set) Add(n Name) {
	s[n] = struct{}{}
}

// Has reports whether n is in the set. A nil set has no markers.
func (s Set) Has(n Name) bool {
	_, ok := s[n]
	return ok
}

// Strings returns the set's names in sorted order.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n.String())
	}

	slices.Sort(out)

	return out
}
