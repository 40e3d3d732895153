package funcspec

import (
	"go/types"
	"strings"
	"unicode"
)

// Spec holds parsed components of a function specification.
// Format: "pkg/path.Func" or "pkg/path.Type.Method".
type Spec struct {
	PkgPath  string
	TypeName string // empty for package-level functions
	FuncName string
}

// Parse parses a single function specification string into components.
func Parse(s string) Spec {
	spec := Spec{}

	lastDot := strings.LastIndex(s, ".")
	if lastDot == -1 {
		spec.FuncName = s

		return spec
	}

	spec.FuncName = s[lastDot+1:]
	prefix := s[:lastDot]

	// Type names are exported here, so an upper-case segment before the
	// function name is a receiver type. The last path element of a package
	// (after the final slash) can never be confused with it.
	secondLastDot := strings.LastIndex(prefix, ".")
	if secondLastDot != -1 && secondLastDot > strings.LastIndex(prefix, "/") {
		possibleType := prefix[secondLastDot+1:]
		if len(possibleType) > 0 && unicode.IsUpper(rune(possibleType[0])) {
			spec.TypeName = possibleType
			spec.PkgPath = prefix[:secondLastDot]

			return spec
		}
	}

	spec.PkgPath = prefix

	return spec
}

// ParseList parses a comma-separated list of specifications.
// Empty elements are skipped.
func ParseList(s string) []Spec {
	if s == "" {
		return nil
	}

	var specs []Spec

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		specs = append(specs, Parse(part))
	}

	return specs
}

// String returns the specification in its textual form.
func (s Spec) String() string {
	var b strings.Builder

	if s.PkgPath != "" {
		b.WriteString(s.PkgPath)
		b.WriteByte('.')
	}

	if s.TypeName != "" {
		b.WriteString(s.TypeName)
		b.WriteByte('.')
	}

	b.WriteString(s.FuncName)

	return b.String()
}

// Matches checks if a types.Func matches this specification.
// Methods of generic types are matched through their origin.
func (s Spec) Matches(fn *types.Func) bool {
	if fn == nil || fn.Name() != s.FuncName {
		return false
	}

	pkg := fn.Pkg()
	if pkg == nil || pkg.Path() != s.PkgPath {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return false
	}

	recv := sig.Recv()

	if s.TypeName == "" {
		return recv == nil
	}

	if recv == nil {
		return false
	}

	return receiverName(recv.Type()) == s.TypeName
}

// receiverName returns the type name of a method receiver.
// Pointer receivers are unwrapped; interface methods report the
// interface's name.
func receiverName(t types.Type) string {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	if named, ok := types.Unalias(t).(*types.Named); ok {
		return named.Origin().Obj().Name()
	}

	return ""
}

// MatchesAny reports whether fn matches any of the specifications.
func MatchesAny(specs []Spec, fn *types.Func) bool {
	for _, spec := range specs {
		if spec.Matches(fn) {
			return true
		}
	}

	return false
}
