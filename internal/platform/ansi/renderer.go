package ansi

import (
	"bufio"
	"io"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Terminal control sequences.
const (
	escClear    = "\x1b[2J"
	escHome     = "\x1b[H"
	escReset    = "\x1b[0m"
	escHideCur  = "\x1b[?25l"
	escShowCur  = "\x1b[?25h"
	escAltEnter = "\x1b[?1049h"
	escAltLeave = "\x1b[?1049l"
)

// Renderer writes a screen buffer to the terminal with ANSI escapes.
// Each Draw repaints from the home position; rows end with a color reset
// and are separated by CRLF since the terminal is in raw mode. The last
// row gets no CRLF: the screen fills the full terminal height and a LF
// on the bottom line would scroll the whole frame up.
type Renderer struct {
	w *bufio.Writer
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: bufio.NewWriterSize(w, 32*1024)}
}

// Setup switches to the alternate screen and hides the cursor.
func (r *Renderer) Setup() error {
	r.w.WriteString(escAltEnter)
	r.w.WriteString(escHideCur)
	r.w.WriteString(escClear)
	return r.w.Flush()
}

// Restore undoes Setup: colors reset, cursor back, normal screen.
func (r *Renderer) Restore() error {
	r.w.WriteString(escReset)
	r.w.WriteString(escShowCur)
	r.w.WriteString(escAltLeave)
	return r.w.Flush()
}

// Draw repaints the whole screen buffer. Adjacent cells with the same
// color share one escape sequence.
func (r *Renderer) Draw(s *core.Screen) error {
	r.w.WriteString(escHome)

	for y := 0; y < s.Height(); y++ {
		current := core.ColorDefault
		r.w.WriteString(escReset)

		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				r.w.WriteString(cell.Color.ANSI())
				current = cell.Color
			}
			r.w.WriteRune(cell.Rune)
		}

		r.w.WriteString(escReset)
		if y < s.Height()-1 {
			r.w.WriteString("\r\n")
		}
	}

	return r.w.Flush()
}
