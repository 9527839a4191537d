// Command bclmin is the bcl cube-algebra engine's command-line entry point.
package main

import (
	"os"

	"github.com/boolcube/bcl/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args))
}
