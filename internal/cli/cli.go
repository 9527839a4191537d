// Package cli provides the command-line interface for the bclmin binary:
// a flag.NewFlagSet built inside Run, a Run(stdin, stdout, stderr, args) int
// signature so os.Exit(cli.Run(...)) is the only thing main needs, and a
// gentle "run with -help" usage reminder rather than printing full help on
// every error. Only the three flags needed to drive the engine are exposed.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/boolcube/bcl"
	"github.com/boolcube/bcl/expr"
	"github.com/boolcube/bcl/script"
)

const useHelp = "Run 'bclmin -help' for more information.\n"

func printHelp(flags *flag.FlagSet, stderr io.Writer) {
	fmt.Fprintln(stderr, `bclmin - boolean cube algebra / two-level minimizer

Usage:
    bclmin -expr EXPRESSION
    bclmin -script FILE -vars N
    bclmin -vars N < script.json

Flags:`)
	flags.VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(stderr, "    -%-8s %s\n", f.Name, f.Usage)
	})
}

// Run runs the bclmin command-line interface. Typical usage is
//
//	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args))
func Run(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	flags := flag.NewFlagSet("bclmin", flag.ContinueOnError)

	exprFlag := flags.String("expr", "",
		"evaluate a single Boolean expression, minimize it, and print the result")
	scriptFlag := flags.String("script", "",
		"run a JSON step-array script from the given file (default: read from stdin)")
	varsFlag := flags.Int("vars", 0,
		"variable count (required for -script; -expr ignores it and infers the count from its identifiers)")

	flags.Usage = func() { fmt.Fprint(stderr, useHelp) }
	flags.SetOutput(stderr)
	if err := flags.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			printHelp(flags, stderr)
			return 0
		}
		return 2
	}

	if *exprFlag != "" {
		return runExpr(*exprFlag, stdout, stderr)
	}
	return runScript(*scriptFlag, *varsFlag, stdin, stdout, stderr)
}

func runExpr(input string, stdout, stderr io.Writer) int {
	nodes, ctx, err := expr.ParseExpressions([]string{input})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	lists, err := expr.EvaluateAll(nodes, ctx)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	l := lists[0]
	taut, err := l.IsTautology()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := bcl.Minimize(l); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "tautology: %v\n", taut)
	fmt.Fprintf(stdout, "minimized: %s\n", expr.Render(l, ctx))
	return 0
}

func runScript(path string, vars int, stdin io.Reader, stdout, stderr io.Writer) int {
	data, err := readScript(path, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if vars <= 0 {
		fmt.Fprintln(stderr, "Error: -vars must be a positive variable count for -script")
		return 1
	}
	d, out, err := script.Run(uint(vars), data, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	if d.Context().Log.ContainsErrors() {
		fmt.Fprint(stderr, d.Context().Log.String())
	}
	return 0
}

func readScript(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
