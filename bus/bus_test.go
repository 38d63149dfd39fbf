package bus

import (
	"path/filepath"
	"testing"

	"github.com/nfeld/famicore/cartridge"
)

// testCartridge builds a mapper 0 cartridge whose reset vector points at
// $8000 and whose PRG is filled with NOPs.
func testCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()

	header := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 16384)
	for i := range prg {
		prg[i] = 0xEA // NOP
	}
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	chr := make([]byte, 8192)

	data := append([]byte{}, header...)
	data = append(data, prg...)
	data = append(data, chr...)

	cart, err := cartridge.FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	return cart
}

func TestRAMMirroring(t *testing.T) {
	b := New()
	b.Write(0x0000, 0x42)

	for _, addr := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := b.Read(addr); got != 0x42 {
			t.Errorf("Expected mirror at %04X to read 0x42, got %02X", addr, got)
		}
	}

	b.Write(0x1FFF, 0x99)
	if got := b.Read(0x07FF); got != 0x99 {
		t.Errorf("Expected write at $1FFF to land at $07FF, got %02X", got)
	}
}

func TestOpenBusReadsZero(t *testing.T) {
	b := New()
	if got := b.Read(0x5000); got != 0 {
		t.Errorf("Expected unmapped read to return 0, got %02X", got)
	}
	if got := b.Read(0x8000); got != 0 {
		t.Errorf("Expected cartridge space to read 0 with no cartridge, got %02X", got)
	}
}

func TestPPURegisterRouting(t *testing.T) {
	b := New()

	// Write a byte into VRAM through the data port and read it back with
	// the one-read buffering delay.
	b.Write(0x2006, 0x21)
	b.Write(0x2006, 0x08)
	b.Write(0x2007, 0x5A)

	b.Write(0x2006, 0x21)
	b.Write(0x2006, 0x08)
	b.Read(0x2007) // primes the buffer
	if got := b.Read(0x2007); got != 0x5A {
		t.Errorf("Expected buffered VRAM read 0x5A, got %02X", got)
	}

	// The register window is mirrored every 8 bytes up to $3FFF.
	b.Write(0x3FF9, 0xFF) // $2001 mirror
	if !b.PPU.Inspect().Mask.ShowBackground() {
		t.Error("Expected mirrored mask write to enable background")
	}
}

func TestPaletteMirroring(t *testing.T) {
	v := NewVideoBus()
	v.Write(0x3F10, 0x2A)
	if got := v.Read(0x3F00); got != 0x2A {
		t.Errorf("Expected $3F10 to mirror $3F00, got %02X", got)
	}
	v.Write(0x3F04, 0x11)
	if got := v.Read(0x3F24); got != 0x11 {
		t.Errorf("Expected $3F24 to mirror $3F04, got %02X", got)
	}
}

func TestNametableMirroring(t *testing.T) {
	v := NewVideoBus()

	// With no cartridge the bus defaults to horizontal mirroring, where
	// $2000 and $2400 share memory.
	v.Write(0x2000, 0xAB)
	if got := v.Read(0x2400); got != 0xAB {
		t.Errorf("Expected horizontal mirror $2400 to read 0xAB, got %02X", got)
	}
	if got := v.Read(0x2800); got == 0xAB {
		t.Error("Expected $2800 to map to the other physical table")
	}

	// $3000-$3EFF mirrors $2000-$2EFF.
	if got := v.Read(0x3000); got != 0xAB {
		t.Errorf("Expected $3000 to mirror $2000, got %02X", got)
	}
}

func TestOAMDMA(t *testing.T) {
	b := New()
	cart := testCartridge(t)
	b.LoadCartridge(cart)

	for i := 0; i < 256; i++ {
		b.Write(uint16(0x0200+i), byte(i))
	}

	b.Write(0x2003, 0x00)
	b.Write(0x4014, 0x02)

	// The transfer wraps OAMADDR back to 0, so $2004 reads from the start.
	b.Write(0x2003, 0x10)
	if got := b.Read(0x2004); got != 0x10 {
		t.Errorf("Expected OAM[0x10] to hold 0x10, got %02X", got)
	}

	if _, _, _, _, _, _, cycles := b.GetCPUState(); cycles < 513 {
		t.Errorf("Expected DMA to stall the CPU at least 513 cycles, got %d", cycles)
	}
}

func TestControllerRouting(t *testing.T) {
	b := New()
	b.SetController1State([8]bool{true}) // A pressed

	b.Write(0x4016, 1)
	b.Write(0x4016, 0)
	if got := b.Read(0x4016); got != 1 {
		t.Errorf("Expected first controller read to report A, got %d", got)
	}
	if got := b.Read(0x4017); got != 0 {
		t.Errorf("Expected second controller to report nothing, got %d", got)
	}
}

func TestClockRatio(t *testing.T) {
	b := New()
	b.LoadCartridge(testCartridge(t))

	start := b.PPU.Cycle()
	for i := 0; i < 9; i++ {
		b.Clock()
	}
	if b.SystemClocks != 9 {
		t.Errorf("Expected 9 system clocks, got %d", b.SystemClocks)
	}
	if got := b.PPU.Cycle(); got != start+9 {
		t.Errorf("Expected PPU to advance 9 cycles, got %d", got-start)
	}

	// Reset costs 8 CPU cycles; 9 PPU ticks are 3 CPU ticks.
	if _, _, _, _, _, _, cycles := b.GetCPUState(); cycles != 5 {
		t.Errorf("Expected 5 CPU cycles remaining after reset, got %d", cycles)
	}
}

func TestStepInstruction(t *testing.T) {
	b := New()
	b.LoadCartridge(testCartridge(t))

	b.StepInstruction() // drains the reset sequence
	_, _, _, _, _, pc, _ := b.GetCPUState()

	b.StepInstruction() // executes one NOP
	_, _, _, _, _, pc2, _ := b.GetCPUState()
	if pc2 != pc+1 {
		t.Errorf("Expected PC to advance by one NOP, got %04X -> %04X", pc, pc2)
	}
}

func TestSaveLoadStateRoundTrip(t *testing.T) {
	b := New()
	b.LoadCartridge(testCartridge(t))

	b.Write(0x0042, 0xAA)
	for i := 0; i < 1000; i++ {
		b.Clock()
	}
	clocks := b.SystemClocks
	path := filepath.Join(t.TempDir(), "save.state")
	if err := b.SaveState(path); err != nil {
		t.Fatal(err)
	}

	b.Write(0x0042, 0x00)
	for i := 0; i < 5000; i++ {
		b.Clock()
	}

	if err := b.LoadState(path); err != nil {
		t.Fatal(err)
	}
	if got := b.Read(0x0042); got != 0xAA {
		t.Errorf("Expected restored RAM value 0xAA, got %02X", got)
	}
	if b.SystemClocks != clocks {
		t.Errorf("Expected restored clock count %d, got %d", clocks, b.SystemClocks)
	}
}
