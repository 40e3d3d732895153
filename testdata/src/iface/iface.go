// Package iface tests markers on interface methods.
package iface

type Store interface {
	// Get returns the stored value.
	//
	//retval:mustuse
	Get(key string) []byte // want Get:`markers\(retval:mustuse\)`
	Put(key string, value []byte) error
}

type memStore struct {
	m map[string][]byte
}

func (s *memStore) Get(key string) []byte {
	return s.m[key]
}

func (s *memStore) Put(key string, value []byte) error {
	s.m[key] = value
	return nil
}

// [BAD]: Call through the interface
func badInterfaceCall(s Store) {
	s.Get("k") // want `The return value of 'Get' should not be ignored`
}

// [BAD]: Method expression
func badMethodExpr(s Store) {
	Store.Get(s, "k") // want `The return value of 'Get' should not be ignored`
}

// [GOOD]: Implementation is not marked
func goodConcreteCall(s *memStore) {
	s.Get("k")
}

// [GOOD]: Unmarked interface method
func goodUnmarkedMethod(s Store) {
	s.Put("k", nil)
}
