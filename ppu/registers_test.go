package ppu

import "testing"

func TestControlFields(t *testing.T) {
	c := Control(0xFF)
	if c.Nametable() != 3 {
		t.Errorf("Expected nametable 3, got %d", c.Nametable())
	}
	if c.VRAMIncrement() != 32 {
		t.Errorf("Expected increment 32, got %d", c.VRAMIncrement())
	}
	if c.SpriteTable() != 0x1000 {
		t.Errorf("Expected sprite table 0x1000, got %04X", c.SpriteTable())
	}
	if c.BackgroundTable() != 0x1000 {
		t.Errorf("Expected background table 0x1000, got %04X", c.BackgroundTable())
	}
	if c.SpriteSize() != 16 {
		t.Errorf("Expected 8x16 sprites, got %d", c.SpriteSize())
	}
	if !c.NMIEnabled() {
		t.Error("Expected NMI enabled")
	}

	c = Control(0x00)
	if c.VRAMIncrement() != 1 {
		t.Errorf("Expected increment 1, got %d", c.VRAMIncrement())
	}
	if c.BackgroundTable() != 0x0000 {
		t.Errorf("Expected background table 0x0000, got %04X", c.BackgroundTable())
	}
	if c.SpriteSize() != 8 {
		t.Errorf("Expected 8x8 sprites, got %d", c.SpriteSize())
	}
}

func TestMaskFields(t *testing.T) {
	m := Mask(0x00)
	if m.ShowBackground() || m.Greyscale() {
		t.Error("Expected all mask bits clear")
	}

	for bit, check := range map[byte]func(Mask) bool{
		0x01: Mask.Greyscale,
		0x02: Mask.ShowBackgroundLeft,
		0x04: Mask.ShowSpritesLeft,
		0x08: Mask.ShowBackground,
		0x10: Mask.ShowSprites,
		0x20: Mask.EmphasizeRed,
		0x40: Mask.EmphasizeGreen,
		0x80: Mask.EmphasizeBlue,
	} {
		if !check(Mask(bit)) {
			t.Errorf("Expected bit %02X to enable its field", bit)
		}
		if check(Mask(^bit)) {
			t.Errorf("Expected field clear without bit %02X", bit)
		}
	}
}

func TestStatusFields(t *testing.T) {
	var s Status
	s.SetVBlank(true)
	if byte(s) != 0x80 {
		t.Errorf("Expected vblank in bit 7, got %02X", byte(s))
	}
	s.SetSpriteZeroHit(true)
	s.SetSpriteOverflow(true)
	if byte(s) != 0xE0 {
		t.Errorf("Expected all flags in bits 5-7, got %02X", byte(s))
	}
	s.SetVBlank(false)
	if s.VBlank() || !s.SpriteZeroHit() || !s.SpriteOverflow() {
		t.Error("Expected only vblank cleared")
	}
}

func TestAddressFields(t *testing.T) {
	var a Address
	a.SetCoarseX(21)
	a.SetCoarseY(17)
	a.SetFineY(5)

	if a.CoarseX() != 21 || a.CoarseY() != 17 || a.FineY() != 5 {
		t.Errorf("Expected fields 21/17/5, got %d/%d/%d", a.CoarseX(), a.CoarseY(), a.FineY())
	}

	// Set masks to 15 bits.
	a.Set(0xFFFF)
	if uint16(a) != 0x7FFF {
		t.Errorf("Expected address masked to 15 bits, got %04X", uint16(a))
	}
}

func TestTileAddress(t *testing.T) {
	var a Address
	a.SetCoarseX(2)
	a.SetCoarseY(3)
	a.SetFineY(7) // must not appear in the tile address

	want := uint16(0x2000 | 3<<5 | 2)
	if got := a.TileAddress(); got != want {
		t.Errorf("Expected tile address %04X, got %04X", want, got)
	}
}

func TestAttributeAddress(t *testing.T) {
	tests := []struct {
		v    uint16
		want uint16
	}{
		{0x0000, 0x23C0},
		// Coarse X 4 selects attribute column 1.
		{0x0004, 0x23C1},
		// Coarse Y 4 selects attribute row 1.
		{4 << 5, 0x23C8},
		// Nametable select carries through.
		{0x0400, 0x27C0},
		{0x0800, 0x2BC0},
	}
	for _, tt := range tests {
		a := Address(tt.v)
		if got := a.AttributeAddress(); got != tt.want {
			t.Errorf("v=%04X: expected attribute address %04X, got %04X", tt.v, tt.want, got)
		}
	}
}

func TestIncrementCoarseX(t *testing.T) {
	var a Address
	a.SetCoarseX(30)

	a.IncrementCoarseX()
	if a.CoarseX() != 31 {
		t.Errorf("Expected coarse X 31, got %d", a.CoarseX())
	}

	// Wrapping flips the horizontal nametable.
	a.IncrementCoarseX()
	if a.CoarseX() != 0 {
		t.Errorf("Expected coarse X wrapped to 0, got %d", a.CoarseX())
	}
	if a.NTSelectX() != 1 {
		t.Error("Expected horizontal nametable flip on wrap")
	}
}

func TestIncrementY(t *testing.T) {
	var a Address

	// Fine Y increments until it wraps into coarse Y.
	a.SetFineY(6)
	a.IncrementY()
	if a.FineY() != 7 || a.CoarseY() != 0 {
		t.Errorf("Expected fine Y 7, got fine=%d coarse=%d", a.FineY(), a.CoarseY())
	}
	a.IncrementY()
	if a.FineY() != 0 || a.CoarseY() != 1 {
		t.Errorf("Expected carry into coarse Y, got fine=%d coarse=%d", a.FineY(), a.CoarseY())
	}
}

func TestIncrementYRow29FlipsNametable(t *testing.T) {
	var a Address
	a.SetCoarseY(29)
	a.SetFineY(7)

	a.IncrementY()
	if a.CoarseY() != 0 {
		t.Errorf("Expected coarse Y wrapped to 0, got %d", a.CoarseY())
	}
	if a.NTSelectY() != 1 {
		t.Error("Expected vertical nametable flip at row 29")
	}
}

func TestIncrementYRow31NoFlip(t *testing.T) {
	// Rows 30 and 31 address attribute memory; wrapping from 31 must not
	// switch nametables.
	var a Address
	a.SetCoarseY(31)
	a.SetFineY(7)

	a.IncrementY()
	if a.CoarseY() != 0 {
		t.Errorf("Expected coarse Y wrapped to 0, got %d", a.CoarseY())
	}
	if a.NTSelectY() != 0 {
		t.Error("Expected no nametable flip from row 31")
	}
}

func TestCopyHorizontal(t *testing.T) {
	var v, tReg Address
	tReg.SetCoarseX(12)
	tReg.Set(uint16(tReg) | 0x0400)
	v.SetCoarseY(20)

	v.CopyHorizontal(tReg)
	if v.CoarseX() != 12 || v.NTSelectX() != 1 {
		t.Errorf("Expected horizontal bits copied, got coarseX=%d ntX=%d", v.CoarseX(), v.NTSelectX())
	}
	if v.CoarseY() != 20 {
		t.Errorf("Expected vertical bits untouched, got coarse Y %d", v.CoarseY())
	}
}

func TestCopyVertical(t *testing.T) {
	var v, tReg Address
	tReg.SetCoarseY(25)
	tReg.SetFineY(3)
	tReg.Set(uint16(tReg) | 0x0800)
	v.SetCoarseX(9)

	v.CopyVertical(tReg)
	if v.CoarseY() != 25 || v.FineY() != 3 || v.NTSelectY() != 1 {
		t.Errorf("Expected vertical bits copied, got coarseY=%d fineY=%d ntY=%d",
			v.CoarseY(), v.FineY(), v.NTSelectY())
	}
	if v.CoarseX() != 9 {
		t.Errorf("Expected horizontal bits untouched, got coarse X %d", v.CoarseX())
	}
}
