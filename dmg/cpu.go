package dmg

import (
	"github.com/pkg/errors"
)

// Flag bits within the F register.
const (
	flagZ byte = 1 << 7 // zero
	flagN byte = 1 << 6 // subtract
	flagH byte = 1 << 5 // half-carry
	flagC byte = 1 << 4 // carry
)

const (
	resetPC uint16 = 0x0100
	resetSP uint16 = 0xFFFE
)

// DecodeError reports an opcode byte this core has no dispatch entry for.
// It is fatal: execution cannot continue past a byte it cannot decode.
type DecodeError struct {
	Opcode byte
	PC     uint16
}

func (e *DecodeError) Error() string {
	return errors.Errorf("unknown opcode 0x%02X at pc 0x%04X", e.Opcode, e.PC).Error()
}

// opcodeFn executes one instruction and returns the machine cycles spent.
type opcodeFn func(c *CPU) (int, error)

// CPU is the SM83 register file and instruction interpreter. It holds no
// hardware state beyond its own registers: memory lives on the Bus,
// interrupt enable/pending state lives on the InterruptController, and key
// state lives on the Joypad, consulted only to know when to resume from
// STOP.
type CPU struct {
	a, f, b, c, d, e, h, l byte
	sp, pc                 uint16

	bus        *Bus
	interrupts *InterruptController
	joypad     *Joypad

	halted  bool
	stopped bool

	// eiPending defers the effect of EI by exactly one instruction: EI sets
	// this true, and the Step call that runs the *following* instruction
	// turns IME on once that instruction has executed.
	eiPending bool

	opcodes [256]opcodeFn
	cb      [256]opcodeFn
}

// NewCPU returns a CPU reset to the post-bootrom state, wired to bus,
// interrupts and joypad.
func NewCPU(bus *Bus, interrupts *InterruptController, joypad *Joypad) *CPU {
	c := &CPU{
		bus:        bus,
		interrupts: interrupts,
		joypad:     joypad,
	}
	c.Reset()
	c.opcodes = buildOpcodeTable()
	c.cb = buildCBTable()
	return c
}

// Reset restores the register file to the values execution would hold
// immediately after the boot ROM hands off to cartridge code.
func (c *CPU) Reset() {
	c.a, c.f = 0, 0
	c.b, c.c = 0, 0
	c.d, c.e = 0, 0
	c.h, c.l = 0, 0
	c.sp = resetSP
	c.pc = resetPC
	c.halted = false
	c.stopped = false
	c.eiPending = false
}

// PC returns the current program counter.
func (c *CPU) PC() uint16 { return c.pc }

func (c *CPU) af() uint16     { return uint16(c.a)<<8 | uint16(c.f&0xF0) }
func (c *CPU) setAF(v uint16) { c.a = byte(v >> 8); c.f = byte(v) & 0xF0 }

func (c *CPU) bc() uint16     { return uint16(c.b)<<8 | uint16(c.c) }
func (c *CPU) setBC(v uint16) { c.b = byte(v >> 8); c.c = byte(v) }

func (c *CPU) de() uint16     { return uint16(c.d)<<8 | uint16(c.e) }
func (c *CPU) setDE(v uint16) { c.d = byte(v >> 8); c.e = byte(v) }

func (c *CPU) hl() uint16     { return uint16(c.h)<<8 | uint16(c.l) }
func (c *CPU) setHL(v uint16) { c.h = byte(v >> 8); c.l = byte(v) }

func (c *CPU) getFlag(mask byte) bool { return c.f&mask != 0 }

func (c *CPU) setFlag(mask byte, v bool) {
	if v {
		c.f |= mask
	} else {
		c.f &^= mask
	}
}

// fetch8 reads the byte at pc and advances pc.
func (c *CPU) fetch8() byte {
	v := c.bus.Read(c.pc)
	c.pc++
	return v
}

// fetch16 reads a little-endian word at pc and advances pc past it.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// pushWord pushes v little-endian: SP -= 2, low byte at SP, high byte at
// SP+1. Used by PUSH rr, CALL and RST. InterruptController.Dispatch pushes
// the opposite byte order directly and does not call this method.
func (c *CPU) pushWord(v uint16) {
	c.sp -= 2
	c.bus.Write(c.sp, byte(v))
	c.bus.Write(c.sp+1, byte(v>>8))
}

// popWord pops a little-endian word pushed by pushWord.
func (c *CPU) popWord() uint16 {
	lo := c.bus.Read(c.sp)
	hi := c.bus.Read(c.sp + 1)
	c.sp += 2
	return uint16(hi)<<8 | uint16(lo)
}

// condTrue evaluates one of the four branch conditions: 0=NZ, 1=Z, 2=NC, 3=C.
func (c *CPU) condTrue(idx int) bool {
	switch idx {
	case 0:
		return !c.getFlag(flagZ)
	case 1:
		return c.getFlag(flagZ)
	case 2:
		return !c.getFlag(flagC)
	case 3:
		return c.getFlag(flagC)
	}
	return false
}

// readReg8/writeReg8 address the eight operands an r8 field in an opcode can
// name: B, C, D, E, H, L, (HL), A, in that encoding order.
func (c *CPU) readReg8(idx int) byte {
	switch idx {
	case 0:
		return c.b
	case 1:
		return c.c
	case 2:
		return c.d
	case 3:
		return c.e
	case 4:
		return c.h
	case 5:
		return c.l
	case 6:
		return c.bus.Read(c.hl())
	default:
		return c.a
	}
}

func (c *CPU) writeReg8(idx int, v byte) {
	switch idx {
	case 0:
		c.b = v
	case 1:
		c.c = v
	case 2:
		c.d = v
	case 3:
		c.e = v
	case 4:
		c.h = v
	case 5:
		c.l = v
	case 6:
		c.bus.Write(c.hl(), v)
	default:
		c.a = v
	}
}

// Step executes exactly one instruction, or, while paused by HALT/STOP,
// consumes a nominal 4 cycles and performs no work. A decode error is
// fatal and is returned immediately.
func (c *CPU) Step() (int, error) {
	wasEIPending := c.eiPending

	if c.halted {
		if c.interrupts.Pending() {
			c.halted = false
		} else {
			return 4, nil
		}
	}

	if c.stopped {
		if c.joypad.Pressed() {
			c.stopped = false
		} else {
			return 4, nil
		}
	}

	opPC := c.pc
	op := c.fetch8()

	fn := c.opcodes[op]
	if fn == nil {
		return 0, &DecodeError{Opcode: op, PC: opPC}
	}

	cycles, err := fn(c)
	if err != nil {
		return 0, err
	}

	if wasEIPending {
		c.interrupts.SetIME(true)
		c.eiPending = false
	}

	return cycles, nil
}
