// ABOUTME: Linux ioctl requests for reading and writing terminal attributes.
// ABOUTME: TCSETSF drains output and discards pending input, like tcsetattr(TCSAFLUSH).

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
