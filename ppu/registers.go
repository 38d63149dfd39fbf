package ppu

// The PPU's hardware registers are bit-packed bytes. Each is modelled as a
// small value type with named accessors over its bit ranges rather than as
// loose masking spread through the rendering code.

// Control represents the PPUCTRL register at $2000.
//
//	7  bit  0
//	---- ----
//	VPHB SINN
//	|||| ||++- Base nametable address
//	|||| |+--- VRAM address increment per PPUDATA access (0: 1; 1: 32)
//	|||| +---- Sprite pattern table address
//	|||+------ Background pattern table address
//	||+------- Sprite size (0: 8x8; 1: 8x16)
//	|+-------- PPU leader/follower select
//	+--------- Generate NMI at the start of vertical blank
type Control byte

// Nametable returns the two base nametable select bits.
func (c Control) Nametable() byte {
	return byte(c) & 0x03
}

// VRAMIncrement returns the PPUDATA address increment, 1 or 32.
func (c Control) VRAMIncrement() uint16 {
	if c&0x04 != 0 {
		return 32
	}
	return 1
}

// SpriteTable returns the base address of the sprite pattern table.
func (c Control) SpriteTable() uint16 {
	if c&0x08 != 0 {
		return 0x1000
	}
	return 0x0000
}

// BackgroundTable returns the base address of the background pattern table.
func (c Control) BackgroundTable() uint16 {
	if c&0x10 != 0 {
		return 0x1000
	}
	return 0x0000
}

// SpriteSize returns the sprite height in pixels, 8 or 16.
func (c Control) SpriteSize() byte {
	if c&0x20 != 0 {
		return 16
	}
	return 8
}

// NMIEnabled reports whether vertical blank raises the NMI line.
func (c Control) NMIEnabled() bool {
	return c&0x80 != 0
}

// Mask represents the PPUMASK register at $2001.
//
//	7  bit  0
//	---- ----
//	BGRs bMmG
//	|||| |||+- Greyscale
//	|||| ||+-- Show background in the leftmost 8 pixels
//	|||| |+--- Show sprites in the leftmost 8 pixels
//	|||| +---- Show background
//	|||+------ Show sprites
//	+++------- Emphasize blue/green/red
type Mask byte

func (m Mask) Greyscale() bool          { return m&0x01 != 0 }
func (m Mask) ShowBackgroundLeft() bool { return m&0x02 != 0 }
func (m Mask) ShowSpritesLeft() bool    { return m&0x04 != 0 }
func (m Mask) ShowBackground() bool     { return m&0x08 != 0 }
func (m Mask) ShowSprites() bool        { return m&0x10 != 0 }
func (m Mask) EmphasizeRed() bool       { return m&0x20 != 0 }
func (m Mask) EmphasizeGreen() bool     { return m&0x40 != 0 }
func (m Mask) EmphasizeBlue() bool      { return m&0x80 != 0 }

// Status represents the PPUSTATUS register at $2002. The three meaningful
// bits are hardware-set and cleared by reads or the pre-render scanline.
type Status byte

const (
	statusOverflow Status = 1 << 5
	statusZeroHit  Status = 1 << 6
	statusVBlank   Status = 1 << 7
)

func (s Status) VBlank() bool         { return s&statusVBlank != 0 }
func (s Status) SpriteZeroHit() bool  { return s&statusZeroHit != 0 }
func (s Status) SpriteOverflow() bool { return s&statusOverflow != 0 }

func (s *Status) SetVBlank(v bool)         { s.assign(statusVBlank, v) }
func (s *Status) SetSpriteZeroHit(v bool)  { s.assign(statusZeroHit, v) }
func (s *Status) SetSpriteOverflow(v bool) { s.assign(statusOverflow, v) }

func (s *Status) assign(bit Status, v bool) {
	if v {
		*s |= bit
	} else {
		*s &^= bit
	}
}

// Address is one of the PPU's 15-bit internal VRAM registers, the working
// address v or the staging address t. During rendering the bits are
// interpreted as scroll fields:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
//
// Every mutation masks the value to 15 bits.
type Address uint16

const addressMask = 0x7FFF

const (
	coarseXMask  = 0x001F
	coarseYMask  = 0x03E0
	ntSelectXBit = 0x0400
	ntSelectYBit = 0x0800
	fineYMask    = 0x7000
)

func (a Address) CoarseX() byte   { return byte(a & coarseXMask) }
func (a Address) CoarseY() byte   { return byte(a & coarseYMask >> 5) }
func (a Address) NTSelectX() byte { return byte(a & ntSelectXBit >> 10) }
func (a Address) NTSelectY() byte { return byte(a & ntSelectYBit >> 11) }
func (a Address) FineY() byte     { return byte(a & fineYMask >> 12) }

func (a *Address) SetCoarseX(v byte) {
	*a = *a&^coarseXMask | Address(v)&coarseXMask
}

func (a *Address) SetCoarseY(v byte) {
	*a = *a&^coarseYMask | Address(v)<<5&coarseYMask
}

func (a *Address) SetFineY(v byte) {
	*a = *a&^fineYMask | Address(v)<<12&fineYMask
}

// Set replaces the full register value, masked to 15 bits.
func (a *Address) Set(v uint16) {
	*a = Address(v) & addressMask
}

// TileAddress returns the nametable address of the tile the register
// currently points at.
func (a Address) TileAddress() uint16 {
	return 0x2000 | uint16(a)&0x0FFF
}

// AttributeAddress returns the attribute table byte covering the 4x4 tile
// block the register currently points at.
func (a Address) AttributeAddress() uint16 {
	return 0x23C0 |
		uint16(a)&0x0C00 |
		uint16(a.CoarseY()/4)*8 |
		uint16(a.CoarseX()/4)
}

// IncrementCoarseX advances one tile to the right. Wrapping past tile 31
// crosses into the horizontally adjacent nametable.
func (a *Address) IncrementCoarseX() {
	if a.CoarseX() == 31 {
		a.SetCoarseX(0)
		*a ^= ntSelectXBit
	} else {
		a.SetCoarseX(a.CoarseX() + 1)
	}
}

// IncrementY advances one line down. Fine Y overflows into coarse Y; a
// coarse Y of 29 wraps into the vertically adjacent nametable. Coarse Y
// values 30 and 31 point into the attribute table and wrap to 0 without
// touching the nametable select bit, a hardware quirk that games rely on.
func (a *Address) IncrementY() {
	if a.FineY() < 7 {
		a.SetFineY(a.FineY() + 1)
		return
	}
	a.SetFineY(0)

	switch y := a.CoarseY(); y {
	case 29:
		a.SetCoarseY(0)
		*a ^= ntSelectYBit
	case 31:
		a.SetCoarseY(0)
	default:
		a.SetCoarseY(y + 1)
	}
}

// CopyHorizontal copies the horizontal bits (coarse X and the horizontal
// nametable select) from the staging address.
func (a *Address) CopyHorizontal(t Address) {
	*a = *a&^(coarseXMask|ntSelectXBit) | t&(coarseXMask|ntSelectXBit)
}

// CopyVertical copies the vertical bits (coarse Y, fine Y and the vertical
// nametable select) from the staging address.
func (a *Address) CopyVertical(t Address) {
	*a = *a&^(coarseYMask|ntSelectYBit|fineYMask) | t&(coarseYMask|ntSelectYBit|fineYMask)
}
