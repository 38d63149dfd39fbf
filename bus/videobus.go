package bus

import "github.com/nfeld/famicore/cartridge"

// VideoBus decodes the PPU's 16KB address space: pattern tables on the
// cartridge, 2KB of nametable VRAM, and 32 bytes of palette RAM. All
// mirroring lives here so the PPU core never sees a folded address.
type VideoBus struct {
	cart    *cartridge.Cartridge
	vram    [2048]byte
	palette [32]byte
}

// NewVideoBus creates a VideoBus with no cartridge attached. Pattern
// table reads return 0 until one is connected.
func NewVideoBus() *VideoBus {
	return &VideoBus{}
}

// ConnectCartridge attaches a cartridge for pattern table access and
// nametable mirroring selection.
func (v *VideoBus) ConnectCartridge(cart *cartridge.Cartridge) {
	v.cart = cart
}

// Read reads a byte from PPU address space.
func (v *VideoBus) Read(addr uint16) byte {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if v.cart != nil {
			if data, ok := v.cart.Mapper.PPUMapRead(addr); ok {
				return data
			}
		}
		return 0
	case addr < 0x3F00:
		return v.vram[v.mirrorVRAM(addr)]
	default:
		return v.palette[paletteIndex(addr)]
	}
}

// Write writes a byte to PPU address space.
func (v *VideoBus) Write(addr uint16, data byte) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if v.cart != nil {
			v.cart.Mapper.PPUMapWrite(addr, data)
		}
	case addr < 0x3F00:
		v.vram[v.mirrorVRAM(addr)] = data
	default:
		v.palette[paletteIndex(addr)] = data
	}
}

// mirrorVRAM folds a nametable address ($2000-$3EFF) into the 2KB of
// physical VRAM according to the cartridge's mirroring mode.
func (v *VideoBus) mirrorVRAM(addr uint16) uint16 {
	addr = (addr - 0x2000) & 0x0FFF
	table := addr / 0x0400
	offset := addr % 0x0400

	mode := cartridge.MirrorHorizontal
	if v.cart != nil {
		mode = v.cart.Mapper.Mirroring()
	}

	switch mode {
	case cartridge.MirrorVertical:
		return (table&1)*0x0400 + offset
	case cartridge.MirrorHorizontal:
		return (table>>1)*0x0400 + offset
	case cartridge.MirrorOneScreenLower:
		return offset
	case cartridge.MirrorOneScreenUpper:
		return 0x0400 + offset
	}
	return offset
}

// paletteIndex folds a palette address into the 32-byte palette RAM.
// $3F10/$3F14/$3F18/$3F1C mirror the backdrop entries at $3F00/04/08/0C.
func paletteIndex(addr uint16) uint16 {
	addr &= 0x001F
	if addr >= 0x10 && addr%4 == 0 {
		addr -= 0x10
	}
	return addr
}
