// ABOUTME: Tests for the editor session: quit dispatch, fatal paths, restore ordering, and key-echo mode.
// ABOUTME: Runs against VirtualTerminal; not parallel because the diagnostic logger is process-global.

package editor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	klog "github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

const testBanner = "Kilo editor -- version test"

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	klog.SetOutput(&buf)
	t.Cleanup(func() {
		klog.SetOutput(nil)
		klog.SetRaw(false)
	})
	return &buf
}

func TestRun_QuitChord(t *testing.T) {
	logBuf := captureLog(t)

	vt := terminal.NewVirtualTerminal(24, 80)
	vt.QueueTimeout()
	vt.QueueReadError(unix.EAGAIN)
	vt.QueueInput("a")
	vt.QueueInput("\x11")

	ed := New(vt, testBanner)
	if err := ed.Run(); err != nil {
		t.Fatalf("Run() = %v, want nil on quit", err)
	}

	out := vt.Output()
	if frames := strings.Count(out, terminal.HideCursor); frames != 2 {
		t.Errorf("frames drawn = %d, want 2", frames)
	}
	if !strings.Contains(out, testBanner) {
		t.Error("banner missing from output")
	}
	if !strings.HasSuffix(out, terminal.ClearAndHome) {
		t.Errorf("output does not end with the clear-screen sequence: %q", out[max(0, len(out)-20):])
	}
	if vt.EnterCount() != 1 || vt.ExitCount() != 1 {
		t.Errorf("enter/exit = %d/%d, want 1/1", vt.EnterCount(), vt.ExitCount())
	}
	if ed.State() != StateRestoredExit {
		t.Errorf("State() = %s, want restored-exit", ed.State())
	}
	if ed.Geometry() != (terminal.Geometry{Rows: 24, Cols: 80}) {
		t.Errorf("Geometry() = %+v, want 24x80", ed.Geometry())
	}
	if logBuf.Len() != 0 {
		t.Errorf("quit logged %q, want nothing", logBuf.String())
	}
}

func TestRun_FatalPaths(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(vt *terminal.VirtualTerminal)
		wantKind  error
		wantCause error
		wantFrame bool
		wantLog   string
	}{
		{
			name:      "read error",
			setup:     func(vt *terminal.VirtualTerminal) { vt.QueueReadError(unix.EIO) },
			wantKind:  terminal.ErrInputRead,
			wantCause: unix.EIO,
			wantFrame: true,
			wantLog:   "[ERROR] read: input read failed: input/output error\r\n",
		},
		{
			name:      "input closed",
			setup:     func(vt *terminal.VirtualTerminal) {},
			wantKind:  terminal.ErrInputRead,
			wantFrame: true,
			wantLog:   "[ERROR] read: input read failed: EOF\r\n",
		},
		{
			name: "capture fails",
			setup: func(vt *terminal.VirtualTerminal) {
				vt.FailEnter(&terminal.Error{Op: "tcgetattr", Kind: terminal.ErrTerminalQuery, Err: unix.ENOTTY})
			},
			wantKind:  terminal.ErrTerminalQuery,
			wantCause: unix.ENOTTY,
			wantLog:   "[ERROR] tcgetattr: cannot read terminal settings: inappropriate ioctl for device\n",
		},
		{
			name: "apply fails",
			setup: func(vt *terminal.VirtualTerminal) {
				vt.FailEnter(&terminal.Error{Op: "tcsetattr", Kind: terminal.ErrTerminalConfig, Err: unix.EIO})
			},
			wantKind: terminal.ErrTerminalConfig,
			wantLog:  "[ERROR] tcsetattr: cannot configure terminal: input/output error\n",
		},
		{
			name: "geometry unavailable",
			setup: func(vt *terminal.VirtualTerminal) {
				vt.FailSize(&terminal.Error{Op: "window size", Kind: terminal.ErrGeometryUnavailable})
			},
			wantKind: terminal.ErrGeometryUnavailable,
			wantLog:  "[ERROR] window size: terminal size unavailable\r\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			logBuf := captureLog(t)

			vt := terminal.NewVirtualTerminal(24, 80)
			tt.setup(vt)

			err := New(vt, testBanner).Run()
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("Run() = %v, want %v", err, tt.wantKind)
			}
			if tt.wantCause != nil && !errors.Is(err, tt.wantCause) {
				t.Errorf("Run() = %v, want cause %v", err, tt.wantCause)
			}

			out := vt.Output()
			if !strings.HasSuffix(out, terminal.ClearAndHome) {
				t.Errorf("output does not end with the clear-screen sequence: %q", out)
			}
			if drew := strings.Contains(out, terminal.HideCursor); drew != tt.wantFrame {
				t.Errorf("frame drawn = %v, want %v", drew, tt.wantFrame)
			}
			if vt.ExitCount() != 1 {
				t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
			}
			if got := logBuf.String(); got != tt.wantLog {
				t.Errorf("diagnostic = %q, want %q", got, tt.wantLog)
			}
		})
	}
}

func TestRun_RestoreFailureIsReported(t *testing.T) {
	logBuf := captureLog(t)

	vt := terminal.NewVirtualTerminal(24, 80)
	vt.QueueInput("\x11")
	vt.FailExit(&terminal.Error{Op: "restore", Kind: terminal.ErrTerminalConfig, Err: unix.EIO})

	err := New(vt, testBanner).Run()
	if !errors.Is(err, terminal.ErrTerminalConfig) {
		t.Fatalf("Run() = %v, want ErrTerminalConfig", err)
	}
	if !strings.Contains(logBuf.String(), "restore: cannot configure terminal") {
		t.Errorf("diagnostic = %q, want the restore failure", logBuf.String())
	}
	if !strings.HasSuffix(vt.Output(), terminal.ClearAndHome) {
		t.Error("screen not cleared before restore")
	}
}

func TestRun_SingleUse(t *testing.T) {
	captureLog(t)

	vt := terminal.NewVirtualTerminal(24, 80)
	vt.QueueInput("\x11")

	ed := New(vt, testBanner)
	if err := ed.Run(); err != nil {
		t.Fatal(err)
	}
	if err := ed.Run(); !errors.Is(err, errAlreadyRun) {
		t.Errorf("second Run() = %v, want errAlreadyRun", err)
	}
	if vt.EnterCount() != 1 || vt.ExitCount() != 1 {
		t.Errorf("enter/exit = %d/%d, want 1/1", vt.EnterCount(), vt.ExitCount())
	}
}

// recordingTerminal logs the order of clear, diagnostic and restore events.
type recordingTerminal struct {
	*terminal.VirtualTerminal
	events *[]string
}

func (r recordingTerminal) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte(terminal.ClearScreen)) {
		*r.events = append(*r.events, "clear")
	}
	return r.VirtualTerminal.Write(p)
}

func (r recordingTerminal) ExitRawMode() error {
	*r.events = append(*r.events, "restore")
	return r.VirtualTerminal.ExitRawMode()
}

type eventWriter struct{ events *[]string }

func (w eventWriter) Write(p []byte) (int, error) {
	*w.events = append(*w.events, "diagnostic")
	return len(p), nil
}

func TestRun_FatalOrdering(t *testing.T) {
	var events []string
	klog.SetOutput(eventWriter{events: &events})
	t.Cleanup(func() {
		klog.SetOutput(nil)
		klog.SetRaw(false)
	})

	vt := terminal.NewVirtualTerminal(24, 80)
	vt.QueueReadError(unix.EIO)

	if err := New(recordingTerminal{VirtualTerminal: vt, events: &events}, testBanner).Run(); err == nil {
		t.Fatal("Run() = nil, want a fatal error")
	}

	want := []string{"clear", "diagnostic", "restore"}
	if strings.Join(events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", events, want)
	}
}

func TestDispatch(t *testing.T) {
	ed := New(terminal.NewVirtualTerminal(24, 80), testBanner)

	for _, b := range []byte{'a', 'q', 'Q', 0x03, 0x1a, 0x1b, '\r', 0x7f} {
		if err := ed.dispatch(keyOf(b)); err != nil {
			t.Errorf("dispatch(%#x) = %v, want no-op", b, err)
		}
	}
	if err := ed.dispatch(keyOf(0x11)); !errors.Is(err, ErrQuit) {
		t.Errorf("dispatch(Ctrl-Q) = %v, want ErrQuit", err)
	}
}

func TestEcho(t *testing.T) {
	captureLog(t)

	vt := terminal.NewVirtualTerminal(24, 80)
	vt.QueueInput("a\r")
	vt.QueueTimeout()
	vt.QueueInput("\x11q")

	ed := New(vt, testBanner)
	if err := ed.Echo(); err != nil {
		t.Fatalf("Echo() = %v, want nil", err)
	}

	want := "97 ('a')\r\n13\r\n17\r\n" + terminal.ClearAndHome
	if got := vt.Output(); got != want {
		t.Errorf("Echo output = %q, want %q", got, want)
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}

func TestState_String(t *testing.T) {
	if got := StateTerminating.String(); got != "terminating" {
		t.Errorf("StateTerminating.String() = %q", got)
	}
	if got := State(42).String(); got != "unknown" {
		t.Errorf("State(42).String() = %q, want unknown", got)
	}
}
