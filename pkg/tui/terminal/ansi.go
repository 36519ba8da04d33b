// ABOUTME: Escape sequences written to and read from the controlling terminal.
// ABOUTME: Kept bit-exact; the compositor and the geometry probe share them.

package terminal

const (
	ClearScreen = "\x1b[2J"
	CursorHome  = "\x1b[H"
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"
	EraseLine   = "\x1b[K"

	// CursorPositionRequest asks for a device status report: ESC [ rows ; cols R.
	CursorPositionRequest = "\x1b[6n"

	// CursorToMax moves right then down by 999; the terminal clamps at its edges.
	CursorToMax = "\x1b[999C\x1b[999B"
)

// ClearAndHome wipes the screen and parks the cursor at the top-left cell.
const ClearAndHome = ClearScreen + CursorHome
