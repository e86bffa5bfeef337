package dmg

import "image/color"

// ScreenWidth and ScreenHeight are the DMG's visible resolution in pixels.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

const (
	cyclesPerScanline = 456
	scanlinesPerFrame = 154
	vblankScanline    = 144

	tileMapBase    uint16 = 0x9800
	tileDataLow    uint16 = 0x8000 // LCDC bit 4 = 1: unsigned indexing
	tileDataSigned uint16 = 0x9000 // LCDC bit 4 = 0: signed indexing, index < 128
	tileDataHigh   uint16 = 0x8000 // LCDC bit 4 = 0: signed indexing, index >= 128

	lcdcTileDataSelect byte = 1 << 4
)

// FrameSink is the thin presentation-surface interface rasterize writes
// into: per-pixel RGBA color writes plus a "frame is ready" signal. The
// concrete implementation is Window in display.go, built atop pixelgl.
type FrameSink interface {
	SetPixel(x, y int, c color.RGBA)
	Present()
}

// dmgPalette maps a 2-bit BGP-translated color index to the classic DMG
// four-shade grayscale.
var dmgPalette = [4]color.RGBA{
	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, // white
	{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}, // light gray
	{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}, // dark gray
	{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}, // black
}

// PPU advances the scanline counter in step with CPU cycles and, once a
// frame's cycle budget has been spent, rasterizes the background layer to
// a FrameSink. It reads every register it needs directly from the shared
// Bus rather than holding its own register copies, per the Bus's role as
// the single owner of I/O-register state.
type PPU struct {
	bus        *Bus
	interrupts *InterruptController

	ly     byte
	dotAcc int
}

// NewPPU returns a PPU wired to bus and interrupts.
func NewPPU(bus *Bus, interrupts *InterruptController) *PPU {
	return &PPU{bus: bus, interrupts: interrupts}
}

// Advance adds cycles to the scanline accumulator, rolling LY forward one
// scanline for every 456 cycles accumulated, wrapping LY past scanline 153
// back to 0, and raising V-blank exactly once when LY transitions to 144.
func (p *PPU) Advance(cycles int) {
	p.dotAcc += cycles

	for p.dotAcc >= cyclesPerScanline {
		p.dotAcc -= cyclesPerScanline

		p.ly++
		if p.ly >= scanlinesPerFrame {
			p.ly = 0
		}

		p.bus.Write(regLY, p.ly)

		if p.ly == vblankScanline {
			p.interrupts.RequestVBlank()
		}
	}
}

// Rasterize draws the 160x144 background layer to sink, reading SCX, SCY,
// LCDC and BGP from the bus as they stand at the moment it is called.
func (p *PPU) Rasterize(sink FrameSink) {
	scx := p.bus.Read(regSCX)
	scy := p.bus.Read(regSCY)
	lcdc := p.bus.Read(regLCDC)
	bgp := p.bus.Read(regBGP)

	for screenY := 0; screenY < ScreenHeight; screenY++ {
		y := (int(scy) + screenY) & 0xFF
		for screenX := 0; screenX < ScreenWidth; screenX++ {
			x := (int(scx) + screenX) & 0xFF

			tileIdx := p.bus.Read(tileMapBase + uint16(y/8)*32 + uint16(x/8))
			tileData := p.tileDataAddr(lcdc, tileIdx)

			rowAddr := tileData + uint16(y%8)*2
			lo := p.bus.Read(rowAddr)
			hi := p.bus.Read(rowAddr + 1)

			bit := 7 - uint(x%8)
			colorIdx := (boolBit(testBit(hi, int(bit))) << 1) | boolBit(testBit(lo, int(bit)))

			paletteIdx := (bgp >> (colorIdx * 2)) & 0x03
			sink.SetPixel(screenX, screenY, dmgPalette[paletteIdx])
		}
	}

	sink.Present()
}

// tileDataAddr resolves the base address of a tile's pixel data according
// to LCDC bit 4: unsigned indexing from 0x8000, or signed indexing where
// indices below 128 are based at 0x9000 and indices 128 and above are
// based at 0x8000.
func (p *PPU) tileDataAddr(lcdc, tileIdx byte) uint16 {
	if lcdc&lcdcTileDataSelect != 0 {
		return tileDataLow + uint16(tileIdx)*16
	}

	if tileIdx < 128 {
		return tileDataSigned + uint16(tileIdx)*16
	}
	return tileDataHigh + uint16(tileIdx-128)*16
}

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}
