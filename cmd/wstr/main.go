// Command wstr inspects weighted sequence files: consensus strings, profile
// matrices, well-formedness checks and format normalisation.
package main

import (
	"fmt"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wstr: %v\n", err)
		os.Exit(1)
	}
}
