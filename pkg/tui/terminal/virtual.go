// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Replays scripted input (bytes, timeouts, errors), captures output, and counts raw-mode transitions.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// readStep is one scripted Read result.
type readStep struct {
	data []byte
	err  error
}

// VirtualTerminal is a fake Terminal for unit tests.
// When the input script is exhausted Read returns io.EOF.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	geom       Geometry
	sizeErr    error
	enterErr   error
	exitErr    error
	writeErr   error
	input      []readStep
	rawMode    bool
	enterCount int
	exitCount  int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(rows, cols int) *VirtualTerminal {
	return &VirtualTerminal{
		geom: Geometry{Rows: rows, Cols: cols},
	}
}

// EnterRawMode records a raw-mode entry, or fails with the injected error.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterCount++
	if v.enterErr != nil {
		return v.enterErr
	}
	v.rawMode = true
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return v.exitErr
}

// Size returns the configured geometry.
func (v *VirtualTerminal) Size() (Geometry, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return Geometry{}, v.sizeErr
	}
	return v.geom, nil
}

// Read replays the next scripted step. Data steps are consumed across calls
// when p is shorter than the chunk.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		return 0, io.EOF
	}
	step := &v.input[0]
	if step.err != nil || len(step.data) == 0 {
		v.input = v.input[1:]
		return 0, step.err
	}
	n := copy(p, step.data)
	step.data = step.data[n:]
	if len(step.data) == 0 {
		v.input = v.input[1:]
	}
	return n, nil
}

// Write appends data to the output buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// QueueInput scripts bytes to be returned by Read.
func (v *VirtualTerminal) QueueInput(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, readStep{data: []byte(s)})
}

// QueueTimeout scripts one Read that returns (0, nil), as a raw-mode
// read does when the inter-byte timeout expires.
func (v *VirtualTerminal) QueueTimeout() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, readStep{})
}

// QueueReadError scripts one Read that fails with err.
func (v *VirtualTerminal) QueueReadError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, readStep{err: err})
}

// FailEnter makes EnterRawMode return err.
func (v *VirtualTerminal) FailEnter(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enterErr = err
}

// FailExit makes ExitRawMode return err.
func (v *VirtualTerminal) FailExit(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.exitErr = err
}

// FailSize makes Size return err.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sizeErr = err
}

// FailWrites makes every Write return err.
func (v *VirtualTerminal) FailWrites(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.writeErr = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the geometry returned by Size.
func (v *VirtualTerminal) SetSize(rows, cols int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.geom = Geometry{Rows: rows, Cols: cols}
}
