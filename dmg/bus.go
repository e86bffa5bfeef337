package dmg

import (
	"github.com/pkg/errors"
)

// addrSpaceSize is the full 16-bit address range backing every read and
// write in the core.
const addrSpaceSize = 0x10000

// cartridgeCapacity is the largest ROM image the loader will accept. The
// flat bus mapping only ever resolves the first addrSpaceSize bytes of it;
// anything beyond that boundary is accepted but unreachable, matching a
// cartridge whose bank-switching registers this core does not model.
const cartridgeCapacity = 0x200000

// I/O register addresses the PPU consults every frame.
const (
	regLCDC uint16 = 0xFF40
	regSCY  uint16 = 0xFF42
	regSCX  uint16 = 0xFF43
	regLY   uint16 = 0xFF44
	regBGP  uint16 = 0xFF47
)

// Bus is the flat 16-bit address space shared by the CPU and PPU. It owns
// the single backing array for the life of an emulation session; the CPU
// and PPU borrow it but never hold it concurrently, since they only ever
// run from the single-threaded frame loop.
type Bus struct {
	mem [addrSpaceSize]byte
}

// NewBus returns a Bus with a zeroed address space.
func NewBus() *Bus {
	return &Bus{}
}

// Read returns the byte at addr. Every address in [0, 0x10000) resolves;
// there are no unmapped holes in this core.
func (b *Bus) Read(addr uint16) byte {
	return b.mem[addr]
}

// ReadWord reads a little-endian 16-bit value starting at addr.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write stores data at addr. Writes below 0x8000 land in what would be ROM
// on real hardware; they are accepted silently since no bank-switching
// registers are modeled.
func (b *Bus) Write(addr uint16, data byte) {
	b.mem[addr] = data
}

// WriteWord stores a little-endian 16-bit value starting at addr.
func (b *Bus) WriteWord(addr uint16, data uint16) {
	b.Write(addr, byte(data))
	b.Write(addr+1, byte(data>>8))
}

// LoadROM copies a cartridge image into the address space starting at
// 0x0000, zero-filling the remainder of the flat mapping. Images larger
// than the reference cartridge capacity are rejected outright.
func (b *Bus) LoadROM(data []byte) error {
	if len(data) > cartridgeCapacity {
		return errors.Errorf("rom image of %d bytes exceeds cartridge capacity of %d bytes", len(data), cartridgeCapacity)
	}

	n := len(data)
	if n > addrSpaceSize {
		n = addrSpaceSize
	}

	copy(b.mem[:n], data[:n])
	for i := n; i < addrSpaceSize; i++ {
		b.mem[i] = 0
	}

	return nil
}
