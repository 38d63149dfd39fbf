package cartridge

// nrom implements Mapper 0 (NROM): no bank switching at all. 16KB PRG
// images are mirrored into both halves of $8000-$FFFF.
type nrom struct {
	cart *Cartridge
}

func newNROM(cart *Cartridge) *nrom {
	return &nrom{cart: cart}
}

func (m *nrom) CPUMapRead(addr uint16) (byte, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	offset := int(addr-0x8000) % len(m.cart.PRGROM)
	return m.cart.PRGROM[offset], true
}

func (m *nrom) CPUMapWrite(addr uint16, data byte) bool {
	// PRG space is ROM.
	return false
}

func (m *nrom) PPUMapRead(addr uint16) (byte, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	return m.cart.CHRROM[addr], true
}

func (m *nrom) PPUMapWrite(addr uint16, data byte) bool {
	if addr >= 0x2000 || !m.cart.IsCHRRAM {
		return false
	}
	m.cart.CHRROM[addr] = data
	return true
}

func (m *nrom) Mirroring() Mirroring {
	return m.cart.Header.Mirror
}

func (m *nrom) Save() []byte {
	return nil
}

func (m *nrom) Load(data []byte) error {
	return nil
}
