// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --version, --verbose, --keys

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	version bool
	verbose bool
	keys    bool
}

func parseFlags(args []string, errOut io.Writer) (cliArgs, error) {
	var a cliArgs

	fs := flag.NewFlagSet("kilo", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.BoolVar(&a.version, "version", false, "Show version and exit")
	fs.BoolVar(&a.verbose, "verbose", false, "Debug logging to stderr")
	fs.BoolVar(&a.keys, "keys", false, "Print the code of every key pressed; q quits")

	if err := fs.Parse(args); err != nil {
		return cliArgs{}, err
	}
	return a, nil
}
