// ABOUTME: Editor owns the terminal session: raw mode in, render/read loop, single termination path out.
// ABOUTME: Every exit (quit chord, fatal error) clears the screen and restores the terminal exactly once.

package editor

import (
	"errors"
	"fmt"
	"io"

	klog "github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// ErrQuit unwinds the loop when the user asks to quit. Run never returns it.
var ErrQuit = errors.New("quit requested")

var errAlreadyRun = errors.New("editor: session already used")

// echoQuit ends the key-echo mode.
const echoQuit = key.Key('q')

// Editor drives one terminal session. It is single-use.
type Editor struct {
	term   terminal.Terminal
	banner string
	geom   terminal.Geometry
	state  State
}

// New returns an Editor that will draw banner on t.
func New(t terminal.Terminal, banner string) *Editor {
	return &Editor{
		term:   t,
		banner: banner,
	}
}

// State reports the editor's lifecycle state.
func (e *Editor) State() State {
	return e.state
}

// Geometry returns the screen size resolved at startup.
func (e *Editor) Geometry() terminal.Geometry {
	return e.geom
}

// Run enters raw mode, resolves the geometry and repaints the screen once per
// input cycle until Ctrl-Q. It returns nil on quit and the fatal error
// otherwise; the terminal is restored in both cases.
func (e *Editor) Run() error {
	return e.session(func() error {
		g, err := e.term.Size()
		if err != nil {
			return err
		}
		e.geom = g
		klog.Debug("editor: geometry %s", g)

		for {
			e.state = StateRender
			if err := e.refreshScreen(); err != nil {
				return err
			}

			e.state = StateInput
			k, err := readKey(e.term)
			if err != nil {
				return err
			}
			if err := e.dispatch(k); err != nil {
				return err
			}
		}
	})
}

// Echo enters raw mode and prints the code of every key read until a plain
// 'q' arrives.
func (e *Editor) Echo() error {
	return e.session(func() error {
		for {
			e.state = StateInput
			k, err := readKey(e.term)
			if err != nil {
				return err
			}
			if k == echoQuit {
				return ErrQuit
			}
			if _, err := io.WriteString(e.term, k.EchoLine()); err != nil {
				return fmt.Errorf("echoing key: %w", err)
			}
		}
	})
}

// dispatch handles one key. Only the quit chord does anything for now.
func (e *Editor) dispatch(k key.Key) error {
	switch k {
	case key.KeyCtrlQ:
		klog.Debug("editor: %s pressed, quitting", k)
		return ErrQuit
	}
	return nil
}

func (e *Editor) refreshScreen() error {
	f := tui.AcquireFrame()
	defer tui.ReleaseFrame(f)

	tui.RenderFrame(f, e.geom, e.banner)
	return tui.Flush(e.term, f.Bytes())
}

// session runs body between raw-mode entry and restore. On the way out it
// clears the screen, reports a fatal error while the terminal is still raw,
// then restores the captured settings.
func (e *Editor) session(body func() error) (err error) {
	if e.state != StateInit {
		return errAlreadyRun
	}

	defer func() {
		rerr := e.term.ExitRawMode()
		klog.SetRaw(false)
		if rerr != nil {
			klog.Error("%v", rerr)
			if err == nil {
				err = rerr
			}
		}
		e.state = StateRestoredExit
	}()

	if err := e.term.EnterRawMode(); err != nil {
		return e.terminate(err)
	}
	e.state = StateRawModeActive
	klog.SetRaw(true)

	return e.terminate(body())
}

// terminate is the single exit path: clear the screen, then report err
// unless it is the quit request.
func (e *Editor) terminate(err error) error {
	e.state = StateTerminating

	// Best-effort: the output side may be what failed.
	_, _ = io.WriteString(e.term, terminal.ClearAndHome)

	if err == nil || errors.Is(err, ErrQuit) {
		return nil
	}
	klog.Error("%v", err)
	return err
}
