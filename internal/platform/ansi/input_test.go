package ansi

import (
	"testing"

	"github.com/vovakirdan/termsnake/internal/core"
)

func decode(t *testing.T, raw []byte) core.InputFrame {
	t.Helper()
	var buf InputBuffer
	buf.Reset()
	buf.Write(raw)
	frame := core.NewInputFrame()
	buf.Decode(&frame)
	return frame
}

func TestDecodeArrowKeys(t *testing.T) {
	tests := []struct {
		name   string
		raw    []byte
		action core.Action
	}{
		{"up", []byte{0x1b, '[', 'A'}, core.ActionUp},
		{"down", []byte{0x1b, '[', 'B'}, core.ActionDown},
		{"right", []byte{0x1b, '[', 'C'}, core.ActionRight},
		{"left", []byte{0x1b, '[', 'D'}, core.ActionLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := decode(t, tc.raw)
			if !frame.Has(tc.action) {
				t.Errorf("expected %v from %v", tc.action, tc.raw)
			}
			if frame.Has(core.ActionQuit) {
				t.Error("arrow sequence must not decode as quit")
			}
		})
	}
}

func TestDecodeLetterKeys(t *testing.T) {
	tests := []struct {
		name   string
		raw    []byte
		action core.Action
	}{
		{"w", []byte("w"), core.ActionUp},
		{"s", []byte("s"), core.ActionDown},
		{"a", []byte("a"), core.ActionLeft},
		{"d", []byte("d"), core.ActionRight},
		{"vim k", []byte("k"), core.ActionUp},
		{"vim j", []byte("j"), core.ActionDown},
		{"space", []byte(" "), core.ActionPause},
		{"p", []byte("p"), core.ActionPause},
		{"r", []byte("r"), core.ActionRestart},
		{"q", []byte("q"), core.ActionQuit},
		{"ctrl+c", []byte{0x03}, core.ActionQuit},
		{"enter", []byte("\r"), core.ActionConfirm},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := decode(t, tc.raw)
			if !frame.Has(tc.action) {
				t.Errorf("expected %v from %q", tc.action, tc.raw)
			}
		})
	}
}

func TestDecodeBareEscapeQuits(t *testing.T) {
	frame := decode(t, []byte{0x1b})
	if !frame.Has(core.ActionQuit) {
		t.Error("a bare ESC should quit")
	}
}

func TestDecodeUnknownEscapeDropped(t *testing.T) {
	// ESC followed by a non-CSI byte: the O is rescanned as a plain byte,
	// which maps to nothing
	frame := decode(t, []byte{0x1b, 'O'})
	if frame.Has(core.ActionQuit) {
		t.Error("unknown escape should not quit")
	}
}

func TestDecodeMixedSequence(t *testing.T) {
	// Arrow up, then space, then 'd' in a single read
	raw := []byte{0x1b, '[', 'A', ' ', 'd'}
	frame := decode(t, raw)

	for _, a := range []core.Action{core.ActionUp, core.ActionPause, core.ActionRight} {
		if !frame.Has(a) {
			t.Errorf("expected %v in decoded frame", a)
		}
	}
}

func TestBufferOverflowDropped(t *testing.T) {
	var buf InputBuffer
	buf.Reset()

	big := make([]byte, bufferSize*2)
	for i := range big {
		big[i] = 'w'
	}
	n := buf.Write(big)

	if n != bufferSize {
		t.Errorf("Write accepted %d bytes, expected %d", n, bufferSize)
	}
	if buf.Len() != bufferSize {
		t.Errorf("Len() = %d, expected %d", buf.Len(), bufferSize)
	}

	// Decoding a full buffer is still safe
	frame := core.NewInputFrame()
	buf.Decode(&frame)
	if !frame.Has(core.ActionUp) {
		t.Error("expected ActionUp from the repeated 'w' bytes")
	}
}

func TestBufferReset(t *testing.T) {
	var buf InputBuffer
	buf.Write([]byte("wasd"))
	buf.Reset()

	if buf.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", buf.Len())
	}

	frame := core.NewInputFrame()
	buf.Decode(&frame)
	if len(frame.Actions) != 0 {
		t.Error("decoding a reset buffer should produce no actions")
	}
}
