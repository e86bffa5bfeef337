package dmg

import "testing"

func TestJoypadKeyDownUp(t *testing.T) {
	j := NewJoypad()

	if j.Pressed() {
		t.Fatalf("fresh joypad should not be pressed")
	}

	j.KeyDown('a')
	if got := j.Code(); got != 7 {
		t.Errorf("code = %d, want 7", got)
	}
	if !j.Pressed() {
		t.Errorf("expected pressed after KeyDown")
	}

	j.KeyUp('a')
	if j.Pressed() {
		t.Errorf("expected idle after matching KeyUp")
	}
}

func TestJoypadKeyUpIgnoresMismatch(t *testing.T) {
	j := NewJoypad()
	j.KeyDown('a')

	j.KeyUp('s') // different key releasing must not clobber state
	if got := j.Code(); got != 7 {
		t.Errorf("code = %d, want 7 (unaffected by unrelated KeyUp)", got)
	}
}

func TestJoypadIgnoresUnmappedKeys(t *testing.T) {
	j := NewJoypad()
	j.KeyDown('?')
	if j.Pressed() {
		t.Errorf("unmapped key should not register as pressed")
	}
}
