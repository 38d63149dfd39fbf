package cartridge

// cnrom implements Mapper 3 (CNROM): fixed PRG and switchable 8KB CHR
// banks, selected by writing anywhere in $8000-$FFFF.
type cnrom struct {
	cart    *Cartridge
	chrBank byte
}

func newCNROM(cart *Cartridge) *cnrom {
	return &cnrom{cart: cart}
}

func (m *cnrom) CPUMapRead(addr uint16) (byte, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	offset := int(addr-0x8000) % len(m.cart.PRGROM)
	return m.cart.PRGROM[offset], true
}

func (m *cnrom) CPUMapWrite(addr uint16, data byte) bool {
	if addr < 0x8000 {
		return false
	}
	m.chrBank = data & 0x03
	return true
}

func (m *cnrom) PPUMapRead(addr uint16) (byte, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	bank := int(m.chrBank)
	if m.cart.Header.CHRBanks > 0 {
		bank %= m.cart.Header.CHRBanks
	}
	return m.cart.CHRROM[bank*8192+int(addr)], true
}

func (m *cnrom) PPUMapWrite(addr uint16, data byte) bool {
	if addr >= 0x2000 || !m.cart.IsCHRRAM {
		return false
	}
	m.cart.CHRROM[addr] = data
	return true
}

func (m *cnrom) Mirroring() Mirroring {
	return m.cart.Header.Mirror
}

func (m *cnrom) Save() []byte {
	return []byte{m.chrBank}
}

func (m *cnrom) Load(data []byte) error {
	if len(data) > 0 {
		m.chrBank = data[0]
	}
	return nil
}
