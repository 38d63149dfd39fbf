// Command nestest runs the nestest ROM on the CPU core alone and prints
// an execution trace in the canonical nestest log format, suitable for
// diffing against the known-good log.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/nfeld/famicore/cartridge"
	"github.com/nfeld/famicore/cpu"
)

var (
	romPath  = flag.String("rom", "nestest/testdata/nestest.nes", "path to nestest.nes")
	maxInstr = flag.Int("n", 8991, "number of instructions to trace")
)

// flatBus is 64KB of flat RAM, enough to run the CPU-only portion of
// nestest without a PPU or mapper attached.
type flatBus struct {
	ram [65536]byte
}

func (b *flatBus) Read(addr uint16) byte {
	return b.ram[addr]
}

func (b *flatBus) Write(addr uint16, data byte) {
	b.ram[addr] = data
}

func main() {
	flag.Parse()

	cart, err := cartridge.New(*romPath)
	if err != nil {
		log.Fatalf("Error loading nestest ROM from %s: %v", *romPath, err)
	}

	bus := &flatBus{}
	// nestest's PRG is 16KB; mirror it into both halves of the upper
	// address space the way NROM would.
	copy(bus.ram[0x8000:], cart.PRGROM[:16384])
	copy(bus.ram[0xC000:], cart.PRGROM[:16384])

	c := cpu.New(nil)
	c.ConnectBus(bus)
	c.Reset()

	// The headless entry point for nestest is $C000, not the reset
	// vector.
	c.PC = 0xC000
	c.SP = 0xFD

	totalCycles := 7 // nestest logs start with the reset sequence counted as 7
	for c.Cycles() > 0 {
		c.Clock()
	}

	for i := 0; i < *maxInstr; i++ {
		pc, a, x, y, p, sp := c.PC, c.A, c.X, c.Y, c.P, c.SP
		opcode := bus.Read(pc)
		instr := c.Instruction(opcode)

		fmt.Printf("%04X  %-8s %-32s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
			pc, rawBytes(bus, pc, instr), disassemble(bus, pc, instr),
			a, x, y, p, sp, totalCycles)

		// Run the instruction to completion.
		c.Clock()
		totalCycles++
		for c.Cycles() > 0 {
			c.Clock()
			totalCycles++
		}

		// nestest parks in a tight loop when every test has run.
		if c.PC == pc {
			break
		}
	}
}

// operandLength returns how many operand bytes follow the opcode.
func operandLength(mode string) int {
	switch mode {
	case "imp", "acc":
		return 0
	case "abs", "abx", "aby", "ind":
		return 2
	default:
		return 1
	}
}

func rawBytes(b *flatBus, pc uint16, instr cpu.Instruction) string {
	switch operandLength(instr.AddrModeName) {
	case 0:
		return fmt.Sprintf("%02X", b.Read(pc))
	case 1:
		return fmt.Sprintf("%02X %02X", b.Read(pc), b.Read(pc+1))
	default:
		return fmt.Sprintf("%02X %02X %02X", b.Read(pc), b.Read(pc+1), b.Read(pc+2))
	}
}

func disassemble(b *flatBus, pc uint16, instr cpu.Instruction) string {
	op1 := b.Read(pc + 1)
	op2 := b.Read(pc + 2)
	abs := uint16(op2)<<8 | uint16(op1)

	switch instr.AddrModeName {
	case "imp":
		return instr.Name
	case "acc":
		return fmt.Sprintf("%s A", instr.Name)
	case "imm":
		return fmt.Sprintf("%s #$%02X", instr.Name, op1)
	case "zp0":
		return fmt.Sprintf("%s $%02X", instr.Name, op1)
	case "zpx":
		return fmt.Sprintf("%s $%02X,X", instr.Name, op1)
	case "zpy":
		return fmt.Sprintf("%s $%02X,Y", instr.Name, op1)
	case "rel":
		target := pc + 2 + uint16(int8(op1))
		return fmt.Sprintf("%s $%04X", instr.Name, target)
	case "abs":
		return fmt.Sprintf("%s $%04X", instr.Name, abs)
	case "abx":
		return fmt.Sprintf("%s $%04X,X", instr.Name, abs)
	case "aby":
		return fmt.Sprintf("%s $%04X,Y", instr.Name, abs)
	case "ind":
		return fmt.Sprintf("%s ($%04X)", instr.Name, abs)
	case "izx":
		return fmt.Sprintf("%s ($%02X,X)", instr.Name, op1)
	case "izy":
		return fmt.Sprintf("%s ($%02X),Y", instr.Name, op1)
	}
	return instr.Name
}
