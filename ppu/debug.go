package ppu

import "image/color"

// Snapshot is a read-only copy of the PPU's internal rendering state for
// inspection and debugging.
type Snapshot struct {
	Control Control
	Mask    Mask
	Status  Status

	VRAM       Address
	VRAMTemp   Address
	FineX      byte
	WriteLatch bool
	DataBuffer byte

	PTShiftLo, PTShiftHi uint16
	ATShiftLo, ATShiftHi uint16

	Scanline int
	Cycle    int
	Frame    uint64
}

// Inspect returns a snapshot of the internal shift, address and counter
// state.
func (p *PPU) Inspect() Snapshot {
	return Snapshot{
		Control:    p.control,
		Mask:       p.mask,
		Status:     p.status,
		VRAM:       p.vram,
		VRAMTemp:   p.vramTemp,
		FineX:      p.fineX,
		WriteLatch: p.writeLatch,
		DataBuffer: p.dataBuffer,
		PTShiftLo:  p.ptShiftLo,
		PTShiftHi:  p.ptShiftHi,
		ATShiftLo:  p.atShiftLo,
		ATShiftHi:  p.atShiftHi,
		Scanline:   p.scanline,
		Cycle:      p.cycle,
		Frame:      p.frame,
	}
}

// PatternTable extracts pattern table 0 or 1 into a 128x128 RGBA byte
// slice using the given palette (0-3), for debugger views. Reads go
// through the video bus and have no register side effects.
func (p *PPU) PatternTable(table int, palette byte, dest []byte) {
	base := uint16(table) * 0x1000

	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			offset := base + uint16(tileY*256+tileX*16)
			for row := 0; row < 8; row++ {
				lo := p.bus.Read(offset + uint16(row))
				hi := p.bus.Read(offset + uint16(row) + 8)

				for col := 0; col < 8; col++ {
					pixel := lo&0x01 | hi&0x01<<1
					lo >>= 1
					hi >>= 1

					// Tiles decode right to left.
					x := tileX*8 + (7 - col)
					y := tileY*8 + row

					var c color.RGBA
					if pixel == 0 {
						c = color.RGBA{0, 0, 0, 0xFF}
					} else {
						idx := p.bus.Read(0x3F00 + uint16(palette)*4 + uint16(pixel))
						c = SystemPalette[idx&0x3F]
					}

					i := (y*128 + x) * 4
					dest[i] = c.R
					dest[i+1] = c.G
					dest[i+2] = c.B
					dest[i+3] = 0xFF
				}
			}
		}
	}
}
