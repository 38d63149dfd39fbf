package cpu

import (
	"testing"

	"github.com/nfeld/famicore/interrupt"
)

type mockBus struct {
	ram [65536]byte
}

func (b *mockBus) Read(addr uint16) byte {
	return b.ram[addr]
}

func (b *mockBus) Write(addr uint16, data byte) {
	b.ram[addr] = data
}

// newCPU returns a CPU wired to a flat RAM bus, reset and with the reset
// sequence already clocked away. Code loads at $8000.
func newCPU(nmi *interrupt.Line) (*CPU, *mockBus) {
	b := &mockBus{}
	b.ram[0xFFFC] = 0x00
	b.ram[0xFFFD] = 0x80

	c := New(nmi)
	c.ConnectBus(b)
	c.Reset()
	for c.Cycles() > 0 {
		c.Clock()
	}
	return c, b
}

func load(b *mockBus, program ...byte) {
	copy(b.ram[0x8000:], program)
}

// step executes one full instruction and returns how many clocks it took.
func step(c *CPU) int {
	cycles := 0
	c.Clock()
	cycles++
	for c.Cycles() > 0 {
		c.Clock()
		cycles++
	}
	return cycles
}

func TestReset(t *testing.T) {
	c, _ := newCPU(nil)

	if c.PC != 0x8000 {
		t.Errorf("Expected PC from reset vector to be 0x8000, got %04X", c.PC)
	}
	if c.SP != 0xFD {
		t.Errorf("Expected SP to be 0xFD, got %02X", c.SP)
	}
	if c.GetFlag(FlagU) != 1 {
		t.Error("Expected unused flag to be set after reset")
	}
}

func TestResetCostsEightCycles(t *testing.T) {
	b := &mockBus{}
	c := New(nil)
	c.ConnectBus(b)
	c.Reset()
	if c.Cycles() != 8 {
		t.Errorf("Expected 8 cycles after reset, got %d", c.Cycles())
	}
}

func TestClockBeforeResetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected Clock before Reset to panic")
		}
	}()
	c := New(nil)
	c.ConnectBus(&mockBus{})
	c.Clock()
}

func TestLoadStore(t *testing.T) {
	c, b := newCPU(nil)
	load(b,
		0xA9, 0x42, // LDA #$42
		0x8D, 0x00, 0x02, // STA $0200
		0xA9, 0x00, // LDA #$00
		0xA2, 0x80, // LDX #$80
	)

	step(c)
	if c.A != 0x42 {
		t.Errorf("Expected A to be 0x42, got %02X", c.A)
	}
	step(c)
	if b.ram[0x0200] != 0x42 {
		t.Errorf("Expected $0200 to hold 0x42, got %02X", b.ram[0x0200])
	}
	step(c)
	if c.GetFlag(FlagZ) != 1 {
		t.Error("Expected zero flag after LDA #$00")
	}
	step(c)
	if c.X != 0x80 || c.GetFlag(FlagN) != 1 {
		t.Errorf("Expected X=0x80 with negative flag, got X=%02X N=%d", c.X, c.GetFlag(FlagN))
	}
}

func TestADCOverflow(t *testing.T) {
	c, b := newCPU(nil)
	load(b,
		0xA9, 0x7F, // LDA #$7F
		0x69, 0x01, // ADC #$01
	)
	step(c)
	step(c)

	if c.A != 0x80 {
		t.Errorf("Expected A to be 0x80, got %02X", c.A)
	}
	if c.GetFlag(FlagV) != 1 {
		t.Error("Expected overflow flag for 0x7F + 0x01")
	}
	if c.GetFlag(FlagN) != 1 {
		t.Error("Expected negative flag for result 0x80")
	}
	if c.GetFlag(FlagC) != 0 {
		t.Error("Expected carry clear for 0x7F + 0x01")
	}
}

func TestADCCarryChains(t *testing.T) {
	c, b := newCPU(nil)
	load(b,
		0x38,       // SEC
		0xA9, 0xFF, // LDA #$FF
		0x69, 0x00, // ADC #$00 (with carry in)
	)
	step(c)
	step(c)
	step(c)

	if c.A != 0x00 {
		t.Errorf("Expected A to wrap to 0x00, got %02X", c.A)
	}
	if c.GetFlag(FlagC) != 1 {
		t.Error("Expected carry out of 0xFF + 0x00 + 1")
	}
	if c.GetFlag(FlagZ) != 1 {
		t.Error("Expected zero flag for wrapped result")
	}
}

func TestSBC(t *testing.T) {
	c, b := newCPU(nil)
	load(b,
		0x38,       // SEC
		0xA9, 0x50, // LDA #$50
		0xE9, 0x10, // SBC #$10
	)
	step(c)
	step(c)
	step(c)

	if c.A != 0x40 {
		t.Errorf("Expected A to be 0x40, got %02X", c.A)
	}
	if c.GetFlag(FlagC) != 1 {
		t.Error("Expected carry set when no borrow occurred")
	}
}

func TestSBCOverflow(t *testing.T) {
	c, b := newCPU(nil)
	load(b,
		0x38,       // SEC
		0xA9, 0xFE, // LDA #$FE
		0xE9, 0x7F, // SBC #$7F
	)
	step(c)
	step(c)
	step(c)

	// -2 - 127 = -129, which does not fit in a signed byte.
	if c.A != 0x7F {
		t.Errorf("Expected A to be 0x7F, got %02X", c.A)
	}
	if c.GetFlag(FlagV) != 1 {
		t.Error("Expected overflow subtracting a positive from a negative")
	}
	if c.GetFlag(FlagC) != 1 {
		t.Error("Expected carry set when no borrow occurred")
	}
	if c.GetFlag(FlagN) != 0 {
		t.Error("Expected negative flag clear for positive result")
	}
}

func TestCompare(t *testing.T) {
	c, b := newCPU(nil)
	load(b,
		0xA9, 0x40, // LDA #$40
		0xC9, 0x40, // CMP #$40
	)
	step(c)
	step(c)

	if c.GetFlag(FlagZ) != 1 || c.GetFlag(FlagC) != 1 {
		t.Errorf("Expected Z and C set for equal compare, got Z=%d C=%d",
			c.GetFlag(FlagZ), c.GetFlag(FlagC))
	}
}

func TestShiftRotate(t *testing.T) {
	c, b := newCPU(nil)
	load(b,
		0xA9, 0x81, // LDA #$81
		0x0A, // ASL A
		0x6A, // ROR A
	)
	step(c)
	step(c)
	if c.A != 0x02 || c.GetFlag(FlagC) != 1 {
		t.Errorf("Expected ASL to give A=0x02 with carry, got A=%02X C=%d", c.A, c.GetFlag(FlagC))
	}
	step(c)
	if c.A != 0x81 {
		t.Errorf("Expected ROR to rotate the carry back in, got %02X", c.A)
	}
}

func TestReadModifyWriteMemory(t *testing.T) {
	c, b := newCPU(nil)
	b.ram[0x0010] = 0x40
	load(b, 0x06, 0x10) // ASL $10

	if got := step(c); got != 5 {
		t.Errorf("Expected ASL zp to take 5 cycles, got %d", got)
	}
	if b.ram[0x0010] != 0x80 {
		t.Errorf("Expected $10 to hold 0x80, got %02X", b.ram[0x0010])
	}
}

func TestBIT(t *testing.T) {
	c, b := newCPU(nil)
	b.ram[0x0010] = 0xC0
	load(b,
		0xA9, 0x01, // LDA #$01
		0x24, 0x10, // BIT $10
	)
	step(c)
	step(c)

	if c.GetFlag(FlagN) != 1 || c.GetFlag(FlagV) != 1 {
		t.Errorf("Expected N and V copied from operand bits, got N=%d V=%d",
			c.GetFlag(FlagN), c.GetFlag(FlagV))
	}
	if c.GetFlag(FlagZ) != 1 {
		t.Error("Expected zero flag since A AND operand is 0")
	}
}

func TestCycleCounts(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		setup   func(c *CPU, b *mockBus)
		want    int
	}{
		{"LDA imm", []byte{0xA9, 0x01}, nil, 2},
		{"LDA abs", []byte{0xAD, 0x00, 0x02}, nil, 4},
		{"LDA abx same page", []byte{0xBD, 0x00, 0x02}, func(c *CPU, b *mockBus) { c.X = 0x01 }, 4},
		{"LDA abx page cross", []byte{0xBD, 0xFF, 0x02}, func(c *CPU, b *mockBus) { c.X = 0x01 }, 5},
		{"LDA izy page cross", []byte{0xB1, 0x10}, func(c *CPU, b *mockBus) {
			b.ram[0x10] = 0xFF
			b.ram[0x11] = 0x02
			c.Y = 0x01
		}, 6},
		{"STA abx never charges the cross", []byte{0x9D, 0xFF, 0x02}, func(c *CPU, b *mockBus) { c.X = 0x01 }, 5},
		{"INC abx fixed cost", []byte{0xFE, 0xFF, 0x02}, func(c *CPU, b *mockBus) { c.X = 0x01 }, 7},
		{"JMP ind", []byte{0x6C, 0x00, 0x02}, nil, 5},
		{"undocumented opcode", []byte{0x02}, nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, b := newCPU(nil)
			load(b, tt.program...)
			if tt.setup != nil {
				tt.setup(c, b)
			}
			if got := step(c); got != tt.want {
				t.Errorf("Expected %d cycles, got %d", tt.want, got)
			}
		})
	}
}

func TestBranchCycles(t *testing.T) {
	// Not taken: 2 cycles.
	c, b := newCPU(nil)
	load(b, 0xB0, 0x10) // BCS (carry clear)
	if got := step(c); got != 2 {
		t.Errorf("Expected untaken branch to take 2 cycles, got %d", got)
	}

	// Taken, same page: 3 cycles.
	c, b = newCPU(nil)
	load(b, 0x90, 0x10) // BCC (carry clear)
	if got := step(c); got != 3 {
		t.Errorf("Expected taken branch to take 3 cycles, got %d", got)
	}
	if c.PC != 0x8012 {
		t.Errorf("Expected branch target 0x8012, got %04X", c.PC)
	}

	// Taken, page crossed: 4 cycles.
	c, b = newCPU(nil)
	load(b, 0x90, 0x80) // BCC backwards across the page
	if got := step(c); got != 4 {
		t.Errorf("Expected page-crossing branch to take 4 cycles, got %d", got)
	}
}

func TestJMPIndirectPageBug(t *testing.T) {
	c, b := newCPU(nil)
	// Pointer at $02FF: low byte from $02FF, high byte wraps to $0200.
	b.ram[0x02FF] = 0x34
	b.ram[0x0300] = 0x99 // must not be used
	b.ram[0x0200] = 0x12
	load(b, 0x6C, 0xFF, 0x02) // JMP ($02FF)

	step(c)
	if c.PC != 0x1234 {
		t.Errorf("Expected the page-wrap bug target 0x1234, got %04X", c.PC)
	}
}

func TestStack(t *testing.T) {
	c, b := newCPU(nil)
	load(b,
		0xA9, 0x37, // LDA #$37
		0x48,       // PHA
		0xA9, 0x00, // LDA #$00
		0x68, // PLA
	)
	step(c)
	step(c)
	if b.ram[0x01FD] != 0x37 {
		t.Errorf("Expected stack top to hold 0x37, got %02X", b.ram[0x01FD])
	}
	step(c)
	step(c)
	if c.A != 0x37 {
		t.Errorf("Expected PLA to restore 0x37, got %02X", c.A)
	}
	if c.GetFlag(FlagZ) != 0 {
		t.Error("Expected PLA to update the zero flag")
	}
}

func TestPHPSetsBreakBits(t *testing.T) {
	c, b := newCPU(nil)
	load(b, 0x08) // PHP
	step(c)

	pushed := b.ram[0x01FD]
	if pushed&byte(FlagB) == 0 || pushed&byte(FlagU) == 0 {
		t.Errorf("Expected B and U set in the pushed status, got %02X", pushed)
	}
}

func TestJSRRTS(t *testing.T) {
	c, b := newCPU(nil)
	load(b, 0x20, 0x00, 0x90) // JSR $9000
	b.ram[0x9000] = 0x60      // RTS

	step(c)
	if c.PC != 0x9000 {
		t.Errorf("Expected PC at subroutine 0x9000, got %04X", c.PC)
	}
	step(c)
	if c.PC != 0x8003 {
		t.Errorf("Expected RTS to return to 0x8003, got %04X", c.PC)
	}
}

func TestBRKRTI(t *testing.T) {
	c, b := newCPU(nil)
	b.ram[0xFFFE] = 0x00
	b.ram[0xFFFF] = 0x90
	load(b, 0x00)        // BRK
	b.ram[0x9000] = 0x40 // RTI

	step(c)
	if c.PC != 0x9000 {
		t.Errorf("Expected PC at IRQ vector 0x9000, got %04X", c.PC)
	}
	if c.GetFlag(FlagI) != 1 {
		t.Error("Expected interrupt disable set after BRK")
	}

	step(c)
	if c.PC != 0x8002 {
		t.Errorf("Expected RTI to return to 0x8002, got %04X", c.PC)
	}
	if c.GetFlag(FlagB) != 0 {
		t.Error("Expected break flag clear after RTI")
	}
}

func TestNMI(t *testing.T) {
	nmi := interrupt.NewLine()
	c, b := newCPU(nmi)
	b.ram[0xFFFA] = 0x00
	b.ram[0xFFFB] = 0xA0
	load(b, 0xEA, 0xEA) // NOPs

	step(c)
	nmi.Raise()
	nmi.Raise() // coalesces with the first

	if got := step(c); got != 7 {
		t.Errorf("Expected the NMI sequence to take 7 cycles, got %d", got)
	}
	if c.PC != 0xA000 {
		t.Errorf("Expected PC at NMI vector 0xA000, got %04X", c.PC)
	}
	if c.GetFlag(FlagI) != 1 {
		t.Error("Expected interrupt disable set during NMI")
	}
	if pushed := b.ram[0x01FB]; pushed&byte(FlagB) != 0 {
		t.Errorf("Expected break flag clear in the pushed status, got %02X", pushed)
	}

	// The second Raise must not trigger a second sequence.
	b.ram[0xA000] = 0xEA
	step(c)
	if c.PC != 0xA001 {
		t.Errorf("Expected normal execution to resume, got PC %04X", c.PC)
	}
}

func TestDecimalModeHasNoEffect(t *testing.T) {
	c, b := newCPU(nil)
	load(b,
		0xF8,       // SED
		0xA9, 0x09, // LDA #$09
		0x69, 0x01, // ADC #$01
	)
	step(c)
	step(c)
	step(c)

	// Binary arithmetic regardless of the decimal flag.
	if c.A != 0x0A {
		t.Errorf("Expected binary result 0x0A, got %02X", c.A)
	}
}

func TestSaveLoadState(t *testing.T) {
	c, b := newCPU(nil)
	load(b, 0xA9, 0x55, 0xA2, 0x66) // LDA #$55, LDX #$66
	step(c)

	s := c.SaveState()

	step(c)
	if c.X != 0x66 {
		t.Fatalf("Expected X=0x66 before restore, got %02X", c.X)
	}

	c.LoadState(s)
	if c.A != 0x55 || c.X != 0x00 || c.PC != 0x8002 {
		t.Errorf("Expected restored state A=55 X=00 PC=8002, got A=%02X X=%02X PC=%04X",
			c.A, c.X, c.PC)
	}
}
