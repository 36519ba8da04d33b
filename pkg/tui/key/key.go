// ABOUTME: Defines the Key type: one raw input byte, with Ctrl chords derived as byte & 0x1f.
// ABOUTME: Provides human-readable names for debug output and the original key-echo format.

package key

import "fmt"

// Key is a single unit of terminal input: the byte read in raw mode.
type Key byte

// Named keys.
const (
	KeyTab       Key = 0x09
	KeyEnter     Key = 0x0d
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 0x7f

	// KeyCtrlQ quits the editor.
	KeyCtrlQ = Key('q' & 0x1f)
)

// Ctrl returns the chord produced by holding Ctrl with c.
func Ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// IsControl reports whether k is an ASCII control byte (0x00-0x1f or DEL).
func (k Key) IsControl() bool {
	return k < 0x20 || k == 0x7f
}

// keyNames labels control bytes whose usual name is not Ctrl+letter.
var keyNames = map[Key]string{
	KeyTab:       "Tab",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k < 0x20:
		return "Ctrl+" + string(rune('@'+k))
	case k < 0x7f:
		return string(rune(k))
	}
	return fmt.Sprintf("0x%02x", byte(k))
}

// EchoLine formats k the way the key-echo mode prints it: the decimal code,
// followed by the character in quotes when it is printable.
func (k Key) EchoLine() string {
	if k.IsControl() {
		return fmt.Sprintf("%d\r\n", byte(k))
	}
	return fmt.Sprintf("%d ('%c')\r\n", byte(k), byte(k))
}
