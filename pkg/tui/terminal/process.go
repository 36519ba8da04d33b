// ABOUTME: ProcessTerminal implements Terminal over a tty fd using termios ioctls and golang.org/x/term.
// ABOUTME: Owns the captured settings and guarantees they are reapplied at most once.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	klog "github.com/mauromedda/kilo-go/internal/log"
)

var errNotTerminal = errors.New("not a terminal")

// ProcessTerminal is a real terminal: input is read from in, output goes to out.
type ProcessTerminal struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	mu       sync.Mutex
	state    SessionState
	original unix.Termios
}

// NewProcessTerminal returns a ProcessTerminal in the Uninitialized state.
func NewProcessTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

// State reports where the session is in its lifecycle.
func (t *ProcessTerminal) State() SessionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// EnterRawMode captures the current settings and applies RawFlags over them.
// It can be called once; the session never returns to Uninitialized.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Uninitialized {
		return &Error{Op: "tcsetattr", Kind: ErrTerminalConfig, Err: fmt.Errorf("session already %s", t.state)}
	}
	if !term.IsTerminal(t.inFd) {
		return &Error{Op: "tcgetattr", Kind: ErrTerminalQuery, Err: errNotTerminal}
	}

	orig, err := unix.IoctlGetTermios(t.inFd, ioctlReadTermios)
	if err != nil {
		return &Error{Op: "tcgetattr", Kind: ErrTerminalQuery, Err: err}
	}
	t.original = *orig
	t.state = Captured
	klog.Debug("terminal: settings captured")

	raw := RawFlags(t.original)
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, &raw); err != nil {
		return &Error{Op: "tcsetattr", Kind: ErrTerminalConfig, Err: err}
	}
	t.state = Active
	klog.Debug("terminal: raw mode active")
	return nil
}

// ExitRawMode reapplies the captured settings. Only the first call after a
// capture touches the device; later calls return nil.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Captured && t.state != Active {
		return nil
	}
	t.state = Restored

	orig := t.original
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, &orig); err != nil {
		return &Error{Op: "restore", Kind: ErrTerminalConfig, Err: err}
	}
	klog.Debug("terminal: settings restored")
	return nil
}

// Size resolves the screen geometry, probing the cursor when the window
// size is unavailable.
func (t *ProcessTerminal) Size() (Geometry, error) {
	return ResolveGeometry(func() (int, int, error) {
		return term.GetSize(t.outFd)
	}, t)
}

// Read performs one read(2) on the input fd. With the raw-mode timeout
// policy it returns (0, nil) when no byte arrived in time.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	n, err := unix.Read(t.inFd, p)
	if n < 0 {
		n = 0
	}
	return n, err
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
