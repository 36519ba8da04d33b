// ABOUTME: Input Cycle: blocks until one key byte arrives, retrying timeouts and would-block reads.
// ABOUTME: Any other read failure becomes a fatal ErrInputRead.

package editor

import (
	"io"

	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// readKey returns the next input byte. A raw-mode read returns (0, nil)
// when the inter-byte timeout expires; that is retried, as is EAGAIN.
func readKey(r io.Reader) (key.Key, error) {
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			return key.Key(b[0]), nil
		}
		if err == nil || terminal.IsWouldBlock(err) {
			continue
		}
		return 0, &terminal.Error{Op: "read", Kind: terminal.ErrInputRead, Err: err}
	}
}
