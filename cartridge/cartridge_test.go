package cartridge

import (
	"os"
	"path/filepath"
	"testing"
)

// buildROM assembles an iNES image in memory.
func buildROM(prgBanks, chrBanks int, flags6, flags7 byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1A, byte(prgBanks), byte(chrBanks), flags6, flags7,
		0, 0, 0, 0, 0, 0, 0, 0}
	data := append([]byte{}, header...)
	data = append(data, make([]byte, prgBanks*16384)...)
	data = append(data, make([]byte, chrBanks*8192)...)
	return data
}

func TestNew(t *testing.T) {
	data := buildROM(2, 1, 0x31, 0x00)

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cart, err := New(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(cart.PRGROM) != 2*16384 {
		t.Errorf("Expected PRGROM size to be %d, but got %d", 2*16384, len(cart.PRGROM))
	}
	if len(cart.CHRROM) != 1*8192 {
		t.Errorf("Expected CHRROM size to be %d, but got %d", 1*8192, len(cart.CHRROM))
	}
	if cart.Header.MapperID != 3 {
		t.Errorf("Expected mapper to be 3, but got %d", cart.Header.MapperID)
	}
	if cart.Header.Mirror != MirrorVertical {
		t.Errorf("Expected vertical mirroring, got %d", cart.Header.Mirror)
	}
}

func TestFromBytesBadSignature(t *testing.T) {
	if _, err := FromBytes([]byte("not a rom file at all")); err == nil {
		t.Error("Expected error for missing iNES signature")
	}
}

func TestFromBytesNoPRGBanks(t *testing.T) {
	data := buildROM(0, 1, 0x00, 0x00)
	if _, err := FromBytes(data); err == nil {
		t.Error("Expected error for a header declaring zero PRG banks")
	}
}

func TestFromBytesUnsupportedMapper(t *testing.T) {
	// Mapper 4 is not implemented.
	data := buildROM(1, 1, 0x40, 0x00)
	if _, err := FromBytes(data); err == nil {
		t.Error("Expected error for unsupported mapper")
	}
}

func TestCHRRAMAllocation(t *testing.T) {
	data := buildROM(1, 0, 0x00, 0x00)
	cart, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if !cart.IsCHRRAM {
		t.Error("Expected CHR-RAM board when CHR bank count is zero")
	}
	if len(cart.CHRROM) != 8192 {
		t.Errorf("Expected 8KB CHR-RAM, got %d", len(cart.CHRROM))
	}
	if !cart.Mapper.PPUMapWrite(0x0123, 0xAB) {
		t.Error("Expected CHR-RAM write to be claimed")
	}
	if v, _ := cart.Mapper.PPUMapRead(0x0123); v != 0xAB {
		t.Errorf("Expected CHR-RAM readback 0xAB, got %02X", v)
	}
}

func TestNROMMirroring16KB(t *testing.T) {
	data := buildROM(1, 1, 0x00, 0x00)
	cart, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	cart.PRGROM[0x0010] = 0x42

	lo, ok := cart.Mapper.CPUMapRead(0x8010)
	if !ok || lo != 0x42 {
		t.Errorf("Expected 0x42 at $8010, got %02X (claimed=%v)", lo, ok)
	}
	hi, ok := cart.Mapper.CPUMapRead(0xC010)
	if !ok || hi != 0x42 {
		t.Errorf("Expected mirror 0x42 at $C010, got %02X (claimed=%v)", hi, ok)
	}
	if _, ok := cart.Mapper.CPUMapRead(0x6000); ok {
		t.Error("Expected $6000 to be unclaimed by NROM")
	}
}

func TestUxROMBankSwitch(t *testing.T) {
	data := buildROM(4, 0, 0x20, 0x00) // mapper 2
	cart, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	for bank := 0; bank < 4; bank++ {
		cart.PRGROM[bank*16384] = byte(0x10 + bank)
	}

	// Fixed window always exposes the last bank.
	if v, _ := cart.Mapper.CPUMapRead(0xC000); v != 0x13 {
		t.Errorf("Expected fixed bank value 0x13, got %02X", v)
	}

	cart.Mapper.CPUMapWrite(0x8000, 2)
	if v, _ := cart.Mapper.CPUMapRead(0x8000); v != 0x12 {
		t.Errorf("Expected switched bank value 0x12, got %02X", v)
	}
}

func TestCNROMBankSwitch(t *testing.T) {
	data := buildROM(1, 2, 0x30, 0x00) // mapper 3
	cart, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	cart.CHRROM[0] = 0xAA
	cart.CHRROM[8192] = 0xBB

	if v, _ := cart.Mapper.PPUMapRead(0x0000); v != 0xAA {
		t.Errorf("Expected bank 0 value 0xAA, got %02X", v)
	}
	cart.Mapper.CPUMapWrite(0x8000, 1)
	if v, _ := cart.Mapper.PPUMapRead(0x0000); v != 0xBB {
		t.Errorf("Expected bank 1 value 0xBB, got %02X", v)
	}
}

func TestSaveLoadState(t *testing.T) {
	data := buildROM(4, 0, 0x20, 0x00)
	cart, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	cart.Mapper.CPUMapWrite(0x8000, 3)
	cart.Mapper.PPUMapWrite(0x0000, 0x5A)
	state := cart.SaveState()

	cart.Mapper.CPUMapWrite(0x8000, 0)
	cart.Mapper.PPUMapWrite(0x0000, 0x00)

	if err := cart.LoadState(state); err != nil {
		t.Fatal(err)
	}
	if v := cart.Mapper.Save(); len(v) != 1 || v[0] != 3 {
		t.Errorf("Expected restored PRG bank 3, got %v", v)
	}
	if v, _ := cart.Mapper.PPUMapRead(0x0000); v != 0x5A {
		t.Errorf("Expected restored CHR-RAM value 0x5A, got %02X", v)
	}
}
