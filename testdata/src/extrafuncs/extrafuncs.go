// Package extrafuncs tests functions marked through the -funcs flag.
package extrafuncs

import (
	"bytes"
	"strings"
)

// [BAD]: Package function named by -funcs
func badTrimSpace(s string) {
	strings.TrimSpace(s) // want `The return value of 'TrimSpace' should not be ignored`
}

// [BAD]: Method named by -funcs
func badBufferString(b *bytes.Buffer) {
	b.String() // want `The return value of 'String' should not be ignored`
}

// [GOOD]: Function not named by -funcs
func goodToUpper(s string) {
	strings.ToUpper(s)
}

// [GOOD]: Result used
func goodUsed(s string) string {
	return strings.TrimSpace(s)
}
