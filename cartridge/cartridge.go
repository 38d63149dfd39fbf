package cartridge

import (
	"fmt"
	"os"
)

// Mirroring selects how the four logical nametables map onto the 2KB of
// VRAM. Most boards hard-wire one of the first two modes.
type Mirroring byte

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorOneScreenLower
	MirrorOneScreenUpper
)

// Mapper is the bank-switching strategy a cartridge board implements. The
// boolean results report whether the mapper claimed the address; unclaimed
// addresses fall through to the bus.
type Mapper interface {
	CPUMapRead(addr uint16) (byte, bool)
	CPUMapWrite(addr uint16, data byte) bool
	PPUMapRead(addr uint16) (byte, bool)
	PPUMapWrite(addr uint16, data byte) bool
	Mirroring() Mirroring

	// Save and Load snapshot any switchable bank state.
	Save() []byte
	Load([]byte) error
}

// Header holds the fields parsed from a 16-byte iNES header.
type Header struct {
	PRGBanks   int // 16KB units
	CHRBanks   int // 8KB units; 0 means the board provides CHR-RAM
	Mirror     Mirroring
	HasTrainer bool
	MapperID   byte
}

// Cartridge represents an NES cartridge: the ROM images plus the mapper
// constructed for them.
type Cartridge struct {
	Header   Header
	PRGROM   []byte
	CHRROM   []byte
	Mapper   Mapper
	IsCHRRAM bool
}

// New creates a Cartridge from a .nes file.
func New(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}
	return FromBytes(data)
}

// FromBytes creates a Cartridge from the raw contents of a .nes file.
func FromBytes(data []byte) (*Cartridge, error) {
	header, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	offset := 16
	if header.HasTrainer {
		// 512-byte trainer precedes the PRG data.
		offset += 512
	}

	c := &Cartridge{Header: header}

	prgSize := header.PRGBanks * 16384
	c.PRGROM = make([]byte, prgSize)
	copyBounded(c.PRGROM, data, offset)

	if header.CHRBanks > 0 {
		c.CHRROM = make([]byte, header.CHRBanks*8192)
		copyBounded(c.CHRROM, data, offset+prgSize)
	} else {
		// No CHR data on the ROM means the board carries 8KB of
		// CHR-RAM instead.
		c.CHRROM = make([]byte, 8192)
		c.IsCHRRAM = true
	}

	mapper, err := newMapper(c)
	if err != nil {
		return nil, err
	}
	c.Mapper = mapper

	return c, nil
}

func parseHeader(data []byte) (Header, error) {
	if len(data) < 16 {
		return Header{}, fmt.Errorf("file is too small to be a valid NES ROM")
	}
	if data[0] != 'N' || data[1] != 'E' || data[2] != 'S' || data[3] != 0x1A {
		return Header{}, fmt.Errorf("invalid NES ROM format: missing iNES signature")
	}
	if data[4] == 0 {
		// Every board maps at least one PRG bank; a zero count means a
		// corrupt or truncated image.
		return Header{}, fmt.Errorf("invalid NES ROM format: no PRG banks")
	}

	return Header{
		PRGBanks:   int(data[4]),
		CHRBanks:   int(data[5]),
		Mirror:     Mirroring(data[6] & 0x01),
		HasTrainer: data[6]&0x04 != 0,
		MapperID:   data[7]&0xF0 | data[6]>>4,
	}, nil
}

// copyBounded copies into dst from data starting at offset, tolerating
// under-dumped ROMs that are shorter than the header promises.
func copyBounded(dst, data []byte, offset int) {
	if offset >= len(data) {
		return
	}
	copy(dst, data[offset:])
}

func newMapper(cart *Cartridge) (Mapper, error) {
	switch cart.Header.MapperID {
	case 0:
		return newNROM(cart), nil
	case 2:
		return newUxROM(cart), nil
	case 3:
		return newCNROM(cart), nil
	default:
		return nil, fmt.Errorf("unsupported mapper: %d", cart.Header.MapperID)
	}
}
