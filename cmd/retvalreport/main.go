// Command retvalreport runs the retval check over Go packages and renders
// the findings as text, JSON or YAML.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes, matching the go/analysis drivers.
const (
	exitOK          = 0
	exitError       = 1
	exitDiagnostics = 3
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errDiagnostics):
		return exitDiagnostics
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "retvalreport: %v\n", err)
		return exitError
	}
}
