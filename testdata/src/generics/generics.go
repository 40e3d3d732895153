// Package generics tests marked generic functions and methods.
package generics

//retval:mustuse
func Map[T, U any](in []T, f func(T) U) []U { // want Map:`markers\(retval:mustuse\)`
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

type Box[T any] struct {
	v T
}

//retval:mustuse
func (b *Box[T]) Get() T { // want Get:`markers\(retval:mustuse\)`
	return b.v
}

//retval:mustuse
func Pair[K comparable, V any](k K, v V) (K, V) { // want Pair:`markers\(retval:mustuse\)`
	return k, v
}

func itoa(i int) string {
	return string(rune('0' + i))
}

// [BAD]: Inferred instantiation
func badInferred() {
	Map([]int{1}, itoa) // want `The return value of 'Map' should not be ignored`
}

// [BAD]: Explicit instantiation of all type parameters
func badExplicit() {
	Map[int, string]([]int{1}, itoa) // want `The return value of 'Map' should not be ignored`
}

// [BAD]: Partial instantiation
func badPartial() {
	Pair[string]("k", 1) // want `The return value of 'Pair' should not be ignored`
}

// [BAD]: Method of instantiated type
func badMethod(b *Box[int]) {
	b.Get() // want `The return value of 'Get' should not be ignored`
}

// [GOOD]: Result used
func goodUsed(b *Box[string]) string {
	return b.Get() + Map([]int{1}, itoa)[0]
}
