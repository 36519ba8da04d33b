// ABOUTME: CLI entry point for kilo with terminal crash recovery
// ABOUTME: Parses flags, runs the editor session on the controlling terminal, maps the outcome to an exit code

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mauromedda/kilo-go/internal/editor"
	klog "github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("kilo %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	os.Exit(run(args))
}

// run owns the terminal for the lifetime of the session. Deferred restores
// run before main calls os.Exit.
func run(args cliArgs) int {
	if args.verbose {
		klog.SetLevel(klog.LevelDebug)
	}

	t := terminal.NewProcessTerminal(os.Stdin, os.Stdout)
	defer terminal.RestoreOnPanic(t)

	ed := editor.New(t, banner())
	var err error
	if args.keys {
		err = ed.Echo()
	} else {
		err = ed.Run()
	}
	if err != nil {
		return 1
	}
	return 0
}

func banner() string {
	return "Kilo editor -- version " + version
}
