// ABOUTME: Output Compositor: renders the placeholder screen (row markers plus centered banner) into a FrameBuffer
// ABOUTME: Flush writes the whole frame, looping over short writes, so the terminal never sees a partial repaint

package tui

import (
	"fmt"
	"io"

	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// RowMarker fills every row that has no content.
const RowMarker = '~'

const rowSeparator = "\r\n"

// RenderFrame composes one full frame for g into f: hide cursor, home,
// one segment per row, home, show cursor. The banner goes on row g.Rows/3.
func RenderFrame(f *FrameBuffer, g terminal.Geometry, banner string) {
	f.WriteString(terminal.HideCursor)
	f.WriteString(terminal.CursorHome)

	drawRows(f, g, banner)

	f.WriteString(terminal.CursorHome)
	f.WriteString(terminal.ShowCursor)
}

func drawRows(f *FrameBuffer, g terminal.Geometry, banner string) {
	bannerRow := g.Rows / 3
	for y := 0; y < g.Rows; y++ {
		if y == bannerRow {
			drawBanner(f, g.Cols, banner)
		} else {
			_ = f.WriteByte(RowMarker)
		}

		f.WriteString(terminal.EraseLine)
		if y < g.Rows-1 {
			f.WriteString(rowSeparator)
		}
	}
}

// drawBanner centers banner in cols, truncated to at most cols bytes.
// The first padding cell carries the row marker.
func drawBanner(f *FrameBuffer, cols int, banner string) {
	banner = truncate(banner, cols)

	padding := BannerPadding(cols, len(banner))
	if padding > 0 {
		_ = f.WriteByte(RowMarker)
		padding--
	}
	for ; padding > 0; padding-- {
		_ = f.WriteByte(' ')
	}
	f.WriteString(banner)
}

// BannerPadding is the left padding that centers n bytes in cols.
func BannerPadding(cols, n int) int {
	return (cols - n) / 2
}

func truncate(s string, cols int) string {
	if cols < 0 {
		cols = 0
	}
	if len(s) > cols {
		return s[:cols]
	}
	return s
}

// Flush writes p to w in full. A write that makes no progress without an
// error is reported as io.ErrShortWrite.
func Flush(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return fmt.Errorf("flushing frame: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("flushing frame: %w", io.ErrShortWrite)
		}
		p = p[n:]
	}
	return nil
}
