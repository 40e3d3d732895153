package marker

import (
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Fact carries the marker set of a function across packages.
type Fact struct {
	Markers []string
}

// AFact implements analysis.Fact.
func (*Fact) AFact() {}

func (f *Fact) String() string {
	return "markers(" + strings.Join(f.Markers, ",") + ")"
}

// Set converts the fact back into a marker set.
// Malformed names are dropped.
func (f *Fact) Set() Set {
	s := make(Set, len(f.Markers))
	for _, m := range f.Markers {
		if n, ok := ParseName(m); ok {
			s.Add(n)
		}
	}

	return s
}

// NewFact creates a fact from a marker set.
func NewFact(s Set) *Fact {
	return &Fact{Markers: s.Strings()}
}

// FactSource reads marker sets from facts exported by dependencies.
type FactSource struct {
	Import func(obj types.Object, fact analysis.Fact) bool
}

// Markers returns the imported marker set of fn, or nil.
func (s FactSource) Markers(fn *types.Func) Set {
	if s.Import == nil || fn == nil {
		return nil
	}

	var fact Fact
	if !s.Import(fn, &fact) {
		return nil
	}

	return fact.Set()
}

// Export records a fact for every function in t that carries MustUse.
// Only functions declared in the current package may be exported.
func Export(t *Table, pkg *types.Package, export func(obj types.Object, fact analysis.Fact)) {
	for _, fn := range t.Funcs() {
		if fn.Pkg() != pkg {
			continue
		}

		set := t.Markers(fn)
		if !set.Has(MustUse) {
			continue
		}

		export(fn, NewFact(set))
	}
}
