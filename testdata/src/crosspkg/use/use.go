// Package use calls marked functions declared in another package.
package use

import "crosspkg/lib"

// [BAD]: Marked package function from a dependency
func badNew() {
	lib.New() // want `The return value of 'New' should not be ignored`
}

// [BAD]: Marked method from a dependency
func badDo(c *lib.Client) {
	c.Do("req") // want `The return value of 'Do' should not be ignored`
}

// [GOOD]: Unmarked method from a dependency
func goodClose(c *lib.Client) {
	c.Close()
}

// [GOOD]: Result used
func goodUsed() error {
	return lib.New().Do("req")
}
