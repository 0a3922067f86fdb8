// ptef estimates the pronunciation time of Brazilian Portuguese number
// sequences. It wraps the library packages behind a small set of commands
// for estimation, frequency counting, verbalization, and validation.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
