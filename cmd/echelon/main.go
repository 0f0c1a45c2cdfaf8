// SPDX-License-Identifier: MIT

// Command echelon reduces a matrix to (reduced) row-echelon form and prints
// every row operation on the way.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/echelon/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		// flag and argument errors from cobra; ExitErrors were already reported
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	os.Exit(cli.GetExitCode(err))
}
