package cartridge

// uxrom implements Mapper 2 (UxROM): a switchable 16KB PRG bank at
// $8000-$BFFF and the last 16KB PRG bank fixed at $C000-$FFFF.
type uxrom struct {
	cart    *Cartridge
	prgBank byte
}

func newUxROM(cart *Cartridge) *uxrom {
	return &uxrom{cart: cart}
}

func (m *uxrom) CPUMapRead(addr uint16) (byte, bool) {
	switch {
	case addr < 0x8000:
		return 0, false
	case addr < 0xC000:
		bank := int(m.prgBank) % m.cart.Header.PRGBanks
		return m.cart.PRGROM[bank*16384+int(addr-0x8000)], true
	default:
		last := m.cart.Header.PRGBanks - 1
		return m.cart.PRGROM[last*16384+int(addr-0xC000)], true
	}
}

func (m *uxrom) CPUMapWrite(addr uint16, data byte) bool {
	if addr < 0x8000 {
		return false
	}
	m.prgBank = data & 0x0F
	return true
}

func (m *uxrom) PPUMapRead(addr uint16) (byte, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	return m.cart.CHRROM[addr], true
}

func (m *uxrom) PPUMapWrite(addr uint16, data byte) bool {
	if addr >= 0x2000 || !m.cart.IsCHRRAM {
		return false
	}
	m.cart.CHRROM[addr] = data
	return true
}

func (m *uxrom) Mirroring() Mirroring {
	return m.cart.Header.Mirror
}

func (m *uxrom) Save() []byte {
	return []byte{m.prgBank}
}

func (m *uxrom) Load(data []byte) error {
	if len(data) > 0 {
		m.prgBank = data[0]
	}
	return nil
}
