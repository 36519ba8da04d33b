// ABOUTME: RestoreOnPanic recovers from panics, clears the screen, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the terminal.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred by the code that owns the terminal.
// On panic it clears the screen, exits raw mode via t, prints the panic
// value and stack trace to stderr, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	restoreAfterPanic(t, os.Stderr, r)
	os.Exit(1)
}

// restoreAfterPanic is the non-exiting half of RestoreOnPanic.
func restoreAfterPanic(t Terminal, errOut io.Writer, r any) {
	// Best-effort: the terminal may already be gone.
	_, _ = io.WriteString(t, ShowCursor+ClearAndHome)
	_ = t.ExitRawMode()

	fmt.Fprintf(errOut, "\npanic: %v\n\n%s\n", r, debug.Stack())
}
