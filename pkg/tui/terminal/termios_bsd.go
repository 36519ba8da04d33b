// ABOUTME: BSD and Darwin ioctl requests for reading and writing terminal attributes.
// ABOUTME: TIOCSETAF drains output and discards pending input, like tcsetattr(TCSAFLUSH).

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETAF
)
