// Command smquery serves metabolomics datasets and annotations over HTTP and
// renders translated queries for inspection.
package main

import (
	"os"
)

func main() {
	if err := NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
