// Package ansi provides a plain terminal frontend that bypasses Bubble Tea:
// raw-mode input decoding, frame pacing, and direct ANSI escape rendering.
// This is the --plain mode, closest in spirit to the classic snake.
package ansi

import (
	"github.com/vovakirdan/termsnake/internal/core"
)

// bufferSize bounds how many raw bytes a single frame will consume.
const bufferSize = 256

// InputBuffer accumulates raw terminal bytes between frames. It is
// transient: the loop resets it, fills it with whatever input is pending,
// and decodes it into actions once per frame.
type InputBuffer struct {
	buf    [bufferSize]byte
	length int
	pos    int
}

// Reset empties the buffer for the next frame.
func (b *InputBuffer) Reset() {
	b.length = 0
	b.pos = 0
}

// Write appends raw bytes, dropping anything beyond capacity.
// A frame's worth of keystrokes never comes close to the limit.
func (b *InputBuffer) Write(p []byte) int {
	n := copy(b.buf[b.length:], p)
	b.length += n
	return n
}

// Len returns the number of buffered bytes not yet consumed.
func (b *InputBuffer) Len() int {
	return b.length - b.pos
}

// next consumes and returns the next byte.
func (b *InputBuffer) next() (byte, bool) {
	if b.pos >= b.length {
		return 0, false
	}
	c := b.buf[b.pos]
	b.pos++
	return c, true
}

// peek returns the byte at offset i from the cursor without consuming it.
func (b *InputBuffer) peek(i int) (byte, bool) {
	if b.pos+i >= b.length {
		return 0, false
	}
	return b.buf[b.pos+i], true
}

// Control bytes the decoder recognizes.
const (
	byteCtrlC = 0x03
	byteEsc   = 0x1b
)

// Decode translates the buffered bytes into game actions.
//
// Arrow keys arrive as three-byte CSI sequences (ESC [ A/B/C/D). A bare
// ESC with nothing after it in the same read is a quit, matching the
// classic behavior; an ESC followed by an unknown byte is dropped.
func (b *InputBuffer) Decode(frame *core.InputFrame) {
	for {
		c, ok := b.next()
		if !ok {
			return
		}

		switch c {
		case byteEsc:
			b.decodeEscape(frame)
		case byteCtrlC, 'q', 'Q':
			frame.Set(core.ActionQuit)
		case ' ', 'p', 'P':
			frame.Set(core.ActionPause)
		case 'r', 'R':
			frame.Set(core.ActionRestart)
		case 'w', 'W', 'k':
			frame.Set(core.ActionUp)
		case 's', 'S', 'j':
			frame.Set(core.ActionDown)
		case 'a', 'A', 'h':
			frame.Set(core.ActionLeft)
		case 'd', 'D', 'l':
			frame.Set(core.ActionRight)
		case '\r', '\n':
			frame.Set(core.ActionConfirm)
		}
	}
}

// decodeEscape handles the bytes following an ESC.
func (b *InputBuffer) decodeEscape(frame *core.InputFrame) {
	bracket, ok := b.peek(0)
	if !ok {
		// Nothing after ESC in this read: the key itself
		frame.Set(core.ActionQuit)
		return
	}
	if bracket != '[' {
		// Unknown escape, drop the introducer and rescan
		return
	}

	final, ok := b.peek(1)
	if !ok {
		return
	}

	// Consume "[X"
	b.pos += 2

	switch final {
	case 'A':
		frame.Set(core.ActionUp)
	case 'B':
		frame.Set(core.ActionDown)
	case 'C':
		frame.Set(core.ActionRight)
	case 'D':
		frame.Set(core.ActionLeft)
	}
}
