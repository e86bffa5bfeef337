package dmg

import (
	"time"
)

// cyclesPerFrame is the machine-cycle budget of one frame: 154 scanlines
// of 456 cycles each. At the DMG's 4.194304MHz clock that is about 59.7
// frames per second, conventionally rounded to 60Hz.
const cyclesPerFrame = 70224

// frameBudgetMillis is the wall-clock length of one frame at 60Hz.
const frameBudgetMillis = 16

// EventSource drains host input and reports whether a quit event arrived.
// Window implements this.
type EventSource interface {
	PollEvents() bool
}

// Emulator wires together the Bus, CPU, PPU, interrupt controller and
// joypad, and runs the frame-at-a-time loop described by the component
// design: drain input, run the CPU for one frame's cycle budget advancing
// the PPU and dispatching interrupts in lockstep, rasterize, then pace to
// 16ms.
type Emulator struct {
	bus        *Bus
	cpu        *CPU
	ppu        *PPU
	interrupts *InterruptController
	joypad     *Joypad

	quit bool
}

// NewEmulator constructs every core component wired to a shared Bus and
// Joypad, ready to run once a ROM has been loaded onto the bus.
func NewEmulator(joypad *Joypad) *Emulator {
	bus := NewBus()
	interrupts := NewInterruptController()
	return &Emulator{
		bus:        bus,
		cpu:        NewCPU(bus, interrupts, joypad),
		ppu:        NewPPU(bus, interrupts),
		interrupts: interrupts,
		joypad:     joypad,
	}
}

// Bus exposes the shared address space, primarily so a caller can load a
// ROM onto it before the first frame runs.
func (em *Emulator) Bus() *Bus { return em.bus }

// RunFrame executes exactly one frame: drains input, steps the CPU until
// the per-frame cycle budget is spent (advancing the PPU and running
// interrupt dispatch after every CPU step, per the ordering guarantee that
// each of those completes before the next CPU step begins), rasterizes to
// sink, and reports whether a quit event was observed. It does not sleep;
// callers that want wall-clock pacing should use Run.
func (em *Emulator) RunFrame(events EventSource, sink FrameSink) (bool, error) {
	quit := events.PollEvents()

	spent := 0
	for spent < cyclesPerFrame {
		cycles, err := em.cpu.Step()
		if err != nil {
			return quit, err
		}

		em.ppu.Advance(cycles)
		spent += cycles

		if dispatchCycles := em.interrupts.Dispatch(em.cpu); dispatchCycles > 0 {
			em.ppu.Advance(dispatchCycles)
			spent += dispatchCycles
		}
	}

	em.ppu.Rasterize(sink)

	return quit, nil
}

// Run drives RunFrame in a loop, pacing each iteration to frameBudgetMillis
// and stopping when events reports a quit or RunFrame returns an error.
func (em *Emulator) Run(events EventSource, sink FrameSink) error {
	for {
		start := time.Now()

		quit, err := em.RunFrame(events, sink)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		elapsed := time.Since(start)
		budget := frameBudgetMillis * time.Millisecond
		if elapsed < budget {
			time.Sleep(budget - elapsed)
		}
	}
}
