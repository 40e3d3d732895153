// Package filefilter tests that generated files are skipped.
package filefilter

//retval:mustuse
func Get() int { // want Get:`markers\(retval:mustuse\)`
	return 0
}

// [BAD]: Hand-written file is checked
func badHandWritten() {
	Get() // want `The return value of 'Get' should not be ignored`
}
