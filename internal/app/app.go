// Package app wires the bigcalc command line around the arithmetic
// engine: flag parsing, operand conversion, instrumentation setup, and
// exit-code mapping.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Version is the build version, overridable at link time.
var Version = "dev"

// Config carries the parsed command-line options of a bigcalc run.
type Config struct {
	// Op names the operation: add, sub, mul, div, pow, sqrt or cbrt.
	Op string
	// A and B are the decimal operands. B is ignored by the root
	// operations.
	A, B string
	// Signed forces two's-complement arithmetic; it is implied when
	// either operand is negative.
	Signed bool
}

// Application represents a bigcalc invocation.
type Application struct {
	Config    Config
	ErrWriter io.Writer
}

// New creates an Application by parsing command-line arguments. The
// returned error is flag.ErrHelp when -h was given.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	app := &Application{ErrWriter: errWriter}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.StringVar(&app.Config.Op, "op", "add", "operation: add, sub, mul, div, pow, sqrt, cbrt")
	fs.StringVar(&app.Config.A, "a", "0", "left operand (decimal)")
	fs.StringVar(&app.Config.B, "b", "0", "right operand (decimal)")
	fs.BoolVar(&app.Config.Signed, "signed", false, "use two's-complement arithmetic")

	if err := fs.Parse(cmdArgs); err != nil {
		return nil, err
	}
	return app, nil
}

// HasVersionFlag reports whether the argument list asks for the version.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		if a == "-version" || a == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "bigcalc %s\n", Version)
}

// IsHelpError checks if the error is a help flag error (-h was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
