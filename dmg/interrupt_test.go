package dmg

import "testing"

func TestDispatchRequiresIMEAndPending(t *testing.T) {
	bus := NewBus()
	interrupts := NewInterruptController()
	joypad := NewJoypad()
	cpu := NewCPU(bus, interrupts, joypad)

	if cycles := interrupts.Dispatch(cpu); cycles != 0 {
		t.Errorf("dispatch with nothing pending cost %d cycles, want 0", cycles)
	}

	interrupts.RequestVBlank()
	if cycles := interrupts.Dispatch(cpu); cycles != 0 {
		t.Errorf("dispatch with IME clear cost %d cycles, want 0", cycles)
	}
}

// V-blank interrupt scenario: IME set, V-blank pre-seeded as pending, SP at
// its reset value. After dispatch PC==0x0040, SP==0xFFFC, the two bytes at
// 0xFFFC/0xFFFD equal the pre-dispatch PC (high byte then low byte), and
// IME is cleared.
func TestVBlankDispatch(t *testing.T) {
	bus := NewBus()
	interrupts := NewInterruptController()
	joypad := NewJoypad()
	cpu := NewCPU(bus, interrupts, joypad)

	cpu.pc = 0x0150
	interrupts.SetIME(true)
	interrupts.RequestVBlank()

	cycles := interrupts.Dispatch(cpu)

	if cycles != dispatchCycles {
		t.Errorf("cycles = %d, want %d", cycles, dispatchCycles)
	}
	if cpu.pc != vblankVector {
		t.Errorf("pc = 0x%04X, want 0x%04X", cpu.pc, vblankVector)
	}
	if cpu.sp != 0xFFFC {
		t.Errorf("sp = 0x%04X, want 0xFFFC", cpu.sp)
	}
	if got := bus.Read(0xFFFC); got != 0x01 {
		t.Errorf("byte at 0xFFFC (high) = 0x%02X, want 0x01", got)
	}
	if got := bus.Read(0xFFFD); got != 0x50 {
		t.Errorf("byte at 0xFFFD (low) = 0x%02X, want 0x50", got)
	}
	if interrupts.IME() {
		t.Errorf("IME should be cleared after dispatch")
	}
	if interrupts.Pending() {
		t.Errorf("V-blank should no longer be pending after dispatch")
	}
}
