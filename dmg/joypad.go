package dmg

// Joypad tracks the single most-recently-pressed host key, mapped down to
// the 4-bit code the DMG keypad matrix would report. It does not wire into
// the bus's JOYP register; it exists only so host input can resume a CPU
// paused by STOP (see CPU.stopped). HALT resumes on a pending interrupt,
// not on joypad input.
type Joypad struct {
	code int // last pressed key code in [0,15], 0 when nothing is held
}

// NewJoypad returns an idle Joypad.
func NewJoypad() *Joypad {
	return &Joypad{}
}

// KeyDown records key as the currently-held key.
func (j *Joypad) KeyDown(key rune) {
	code, ok := keyCodes[key]
	if !ok {
		return
	}
	j.code = code
}

// KeyUp clears the held key, but only if it matches the key currently
// recorded as held — an unrelated key release must not clobber state.
func (j *Joypad) KeyUp(key rune) {
	code, ok := keyCodes[key]
	if !ok {
		return
	}
	if j.code == code {
		j.code = 0
	}
}

// Code returns the current 4-bit key code, zero when idle.
func (j *Joypad) Code() int {
	return j.code
}

// Pressed reports whether the current key code is non-zero. Since 'x' maps
// to code 0, a held 'x' reads the same as an idle pad and is not reported.
func (j *Joypad) Pressed() bool {
	return j.code != 0
}

// keyCodes is the fixed host-key to 4-bit-code mapping this core uses.
var keyCodes = map[rune]int{
	'1': 1,
	'2': 2,
	'3': 3,
	'4': 12,
	'q': 4,
	'w': 5,
	'e': 6,
	'r': 13,
	'a': 7,
	's': 8,
	'd': 9,
	'f': 14,
	'z': 10,
	'x': 0,
	'c': 11,
	'v': 15,
}
