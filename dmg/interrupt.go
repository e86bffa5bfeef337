package dmg

// Interrupt bits. Only V-blank is required by this core; the bit is kept
// as a named constant rather than a bare bool so a STAT/timer/serial line
// could be added later without renaming anything.
const (
	intVBlank byte = 1 << iota
)

// vblankVector is the fixed address V-blank dispatch jumps to.
const vblankVector uint16 = 0x0040

// dispatchCycles is the machine-cycle tax charged for running the dispatch
// sequence, folded into the PPU's scanline accumulator by the frame loop.
const dispatchCycles = 20

// InterruptController holds the master enable flag and the set of pending
// interrupt lines, and knows how to dispatch V-blank onto the CPU's stack.
type InterruptController struct {
	ime     bool
	pending byte
}

// NewInterruptController returns a controller with interrupts disabled and
// nothing pending.
func NewInterruptController() *InterruptController {
	return &InterruptController{}
}

// SetIME sets the master interrupt enable flag.
func (ic *InterruptController) SetIME(v bool) {
	ic.ime = v
}

// IME reports the master interrupt enable flag.
func (ic *InterruptController) IME() bool {
	return ic.ime
}

// RequestVBlank marks the V-blank line pending.
func (ic *InterruptController) RequestVBlank() {
	ic.pending |= intVBlank
}

// vblankPending reports whether V-blank is waiting to be dispatched.
func (ic *InterruptController) vblankPending() bool {
	return ic.pending&intVBlank != 0
}

// Pending reports whether any interrupt line is waiting to be dispatched,
// regardless of IME. HALT resumes on this condition even with interrupts
// globally disabled.
func (ic *InterruptController) Pending() bool {
	return ic.pending != 0
}

// Dispatch runs the interrupt dispatch sequence against cpu if IME is set
// and V-blank is pending, and reports the cycle cost of doing so (0 if no
// dispatch happened). It must only be called between CPU instructions.
//
// The return address is pushed high byte first: SP -= 2, then the high
// byte of PC is written at SP and the low byte at SP+1. This is the
// reverse of the little-endian order CPU.pushWord uses for PUSH/CALL/RST;
// dispatch does not go through pushWord because of that difference.
func (ic *InterruptController) Dispatch(cpu *CPU) int {
	if !ic.ime || !ic.vblankPending() {
		return 0
	}

	ic.ime = false
	ic.pending &^= intVBlank

	cpu.sp -= 2
	cpu.bus.Write(cpu.sp, byte(cpu.pc>>8))
	cpu.bus.Write(cpu.sp+1, byte(cpu.pc))
	cpu.pc = vblankVector

	return dispatchCycles
}
