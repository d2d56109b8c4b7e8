package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		isQuit bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unmapped", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey(%s) action = %v, expected %v", tc.msg, action, tc.action)
			}
			if isQuit != tc.isQuit {
				t.Errorf("MapKey(%s) isQuit = %v, expected %v", tc.msg, isQuit, tc.isQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame); quit {
		t.Error("up arrow should not be a quit request")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("frame should record ActionUp")
	}

	// Unmapped keys leave the frame untouched
	frame.Clear()
	km.MapKeyToFrame(runeKey('z'), &frame)
	if len(frame.Actions) != 0 {
		t.Error("unmapped key should not set any action")
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'a', core.ColorGreen)
	s.SetColored(1, 0, 'b', core.ColorGreen)
	s.SetColored(2, 0, 'c', core.ColorRed)
	s.Set(3, 0, 'd')

	out := RenderScreen(s)

	// Styled or not, every rune must survive rendering in order
	expected := []rune{'a', 'b', 'c', 'd'}
	idx := 0
	for _, r := range out {
		if idx < len(expected) && r == expected[idx] {
			idx++
		}
	}
	if idx != len(expected) {
		t.Errorf("rendered output should contain %q in order, got %q", string(expected), out)
	}
}
