// ABOUTME: Defines the Terminal interface for raw mode, geometry, and byte-level I/O.
// ABOUTME: Abstracts the controlling terminal so the editor loop can run against a fake.

package terminal

// Terminal abstracts low-level terminal operations: raw mode,
// geometry resolution, raw input reads and output writes.
//
// Read follows the raw-mode read policy: it may return (0, nil) when the
// inter-byte timeout expires with no input.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (Geometry, error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}

// SessionState tracks the raw-mode lifecycle. It only moves forward.
type SessionState int

const (
	Uninitialized SessionState = iota
	Captured                   // original settings saved, raw flags not yet applied
	Active                     // raw flags applied
	Restored                   // original settings reapplied; final
)

var sessionStateNames = map[SessionState]string{
	Uninitialized: "uninitialized",
	Captured:      "captured",
	Active:        "active",
	Restored:      "restored",
}

func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}
	return "unknown"
}
