// ABOUTME: RawFlags derives the raw-mode line discipline from captured settings.
// ABOUTME: Pure: takes and returns termios by value so the captured snapshot is never touched.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Read timeout policy: return after 100ms even when no byte arrived.
const (
	rawMinBytes = 0
	rawTimeout  = 1 // tenths of a second
)

// RawFlags returns base with echo, canonical input, signal characters,
// extended input processing, input translation and output post-processing
// disabled, 8-bit characters, and a VMIN=0/VTIME=1 read policy.
func RawFlags(base unix.Termios) unix.Termios {
	raw := base
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = rawMinBytes
	raw.Cc[unix.VTIME] = rawTimeout
	return raw
}

// IsWouldBlock reports whether a read error only means "no data yet".
func IsWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR)
}
