package marker

import (
	"go/types"

	"github.com/mpyw/retval/internal/funcspec"
)

// Source reports the marker set attached to a function.
type Source interface {
	Markers(fn *types.Func) Set
}

// Predicate answers whether a function carries the MustUse marker.
type Predicate struct {
	sources []Source
	extra   []funcspec.Spec
}

// NewPredicate creates a predicate consulting sources in order, then the
// extra specifications (functions marked by configuration).
func NewPredicate(extra []funcspec.Spec, sources ...Source) *Predicate {
	return &Predicate{sources: sources, extra: extra}
}

// IsMarked reports whether fn carries MustUse. A nil function is never marked.
func (p *Predicate) IsMarked(fn *types.Func) bool {
	if p == nil || fn == nil {
		return false
	}

	fn = fn.Origin()

	for _, src := range p.sources {
		if src.Markers(fn).Has(MustUse) {
			return true
		}
	}

	return funcspec.MatchesAny(p.extra, fn)
}
