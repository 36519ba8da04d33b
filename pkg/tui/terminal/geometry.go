// ABOUTME: Geometry Resolver: window-size query first, cursor-position probe as fallback.
// ABOUTME: Parses the device status report reply ESC [ rows ; cols R with a bounded read.

package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	klog "github.com/mauromedda/kilo-go/internal/log"
)

// cursorReplyMax bounds the probe reply read; one byte stays reserved.
const cursorReplyMax = 32

var errZeroColumns = errors.New("window size reports zero columns")

// Geometry is the screen size in character cells.
type Geometry struct {
	Rows int
	Cols int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Cols, g.Rows)
}

// SizeFunc queries the operating system for the window size.
// It uses the golang.org/x/term argument order: width first.
type SizeFunc func() (cols, rows int, err error)

// ResolveGeometry asks query for the window size and uses it verbatim when it
// reports a non-zero column count. Otherwise it probes the terminal through rw.
func ResolveGeometry(query SizeFunc, rw io.ReadWriter) (Geometry, error) {
	cols, rows, qerr := query()
	if qerr == nil && cols != 0 {
		klog.Debug("geometry: window size %dx%d", cols, rows)
		return Geometry{Rows: rows, Cols: cols}, nil
	}
	if qerr == nil {
		qerr = errZeroColumns
	}
	klog.Debug("geometry: window size unusable (%v), probing cursor", qerr)

	g, perr := ProbeGeometry(rw)
	if perr != nil {
		return Geometry{}, &Error{
			Op:   "window size",
			Kind: ErrGeometryUnavailable,
			Err:  fmt.Errorf("%v, then %w", qerr, perr),
		}
	}
	klog.Debug("geometry: cursor probe %s", g)
	return g, nil
}

// ProbeGeometry pushes the cursor to the bottom-right corner and reads back
// its position.
func ProbeGeometry(rw io.ReadWriter) (Geometry, error) {
	if _, err := io.WriteString(rw, CursorToMax); err != nil {
		return Geometry{}, &Error{Op: "cursor probe", Kind: ErrGeometryUnavailable, Err: err}
	}
	return QueryCursorPosition(rw)
}

// QueryCursorPosition writes the device status report request and parses the reply.
func QueryCursorPosition(rw io.ReadWriter) (Geometry, error) {
	if _, err := io.WriteString(rw, CursorPositionRequest); err != nil {
		return Geometry{}, &Error{Op: "cursor probe", Kind: ErrGeometryUnavailable, Err: err}
	}
	return ParseCursorReply(readCursorReply(rw))
}

// readCursorReply reads byte by byte until 'R', a short read, or the buffer fills.
func readCursorReply(r io.Reader) []byte {
	reply := make([]byte, 0, cursorReplyMax)
	var b [1]byte
	for len(reply) < cursorReplyMax-1 {
		n, err := r.Read(b[:])
		if n == 1 {
			reply = append(reply, b[0])
			if b[0] == 'R' {
				break
			}
		}
		if n != 1 || err != nil {
			break
		}
	}
	return reply
}

// ParseCursorReply decodes ESC [ rows ; cols R. Both fields must be positive.
func ParseCursorReply(reply []byte) (Geometry, error) {
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return Geometry{}, parseError(reply, "missing ESC [ prefix")
	}
	body := reply[2:]
	if len(body) == 0 || body[len(body)-1] != 'R' {
		return Geometry{}, parseError(reply, "missing R terminator")
	}
	body = body[:len(body)-1]

	rowsField, colsField, ok := bytes.Cut(body, []byte{';'})
	if !ok {
		return Geometry{}, parseError(reply, "missing ; separator")
	}
	rows, err := strconv.Atoi(string(rowsField))
	if err != nil || rows <= 0 {
		return Geometry{}, parseError(reply, "rows is not a positive integer")
	}
	cols, err := strconv.Atoi(string(colsField))
	if err != nil || cols <= 0 {
		return Geometry{}, parseError(reply, "cols is not a positive integer")
	}
	return Geometry{Rows: rows, Cols: cols}, nil
}

func parseError(reply []byte, reason string) error {
	return &Error{
		Op:   "cursor probe",
		Kind: ErrGeometryParse,
		Err:  fmt.Errorf("%s in %q", reason, reply),
	}
}
