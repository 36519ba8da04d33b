// ABOUTME: Error kinds for terminal capture, configuration, geometry and input failures.
// ABOUTME: Error pairs a kind sentinel with the failing operation and the underlying OS error.

package terminal

import "errors"

// Error kinds. Match them with errors.Is.
var (
	ErrTerminalQuery       = errors.New("cannot read terminal settings")
	ErrTerminalConfig      = errors.New("cannot configure terminal")
	ErrGeometryUnavailable = errors.New("terminal size unavailable")
	ErrGeometryParse       = errors.New("malformed cursor position reply")
	ErrInputRead           = errors.New("input read failed")
)

// Error describes a failed terminal operation.
type Error struct {
	Op   string // tcgetattr, tcsetattr, restore, window size, cursor probe, read
	Kind error  // one of the Err* kinds above
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.Error()
	}
	return e.Op + ": " + e.Kind.Error() + ": " + e.Err.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
