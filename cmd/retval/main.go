// Command retval is a linter that reports ignored results of functions
// marked with //retval:mustuse.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/retval"
)

func main() {
	singlechecker.Main(retval.Analyzer)
}
