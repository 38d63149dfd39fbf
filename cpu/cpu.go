package cpu

import "github.com/nfeld/famicore/interrupt"

// Bus defines the interface for the CPU to interact with the bus.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

// Flag identifies a single bit of the processor status register.
type Flag byte

const (
	FlagC Flag = 1 << 0 // Carry
	FlagZ Flag = 1 << 1 // Zero
	FlagI Flag = 1 << 2 // Interrupt disable
	FlagD Flag = 1 << 3 // Decimal (no effect on the 2A03)
	FlagB Flag = 1 << 4 // Break
	FlagU Flag = 1 << 5 // Unused, reads as 1 when pushed
	FlagV Flag = 1 << 6 // Overflow
	FlagN Flag = 1 << 7 // Negative
)

const (
	resetVector = 0xFFFC
	nmiVector   = 0xFFFA
	irqVector   = 0xFFFE

	stackBase = 0x0100
)

// CPU represents the 6502 CPU.
//
// The timing contract is not cycle accurate: the Clock call that begins a
// new instruction performs the instruction's full effect immediately and
// loads a countdown equal to its cycle cost. Subsequent Clock calls during
// the countdown only decrement it, so the cost observed by the caller
// matches the documented cycle count, including page-crossing and
// taken-branch extras.
type CPU struct {
	// Program Counter
	PC uint16

	// Stack Pointer
	SP byte

	// Accumulator
	A byte

	// Index Register X
	X byte

	// Index Register Y
	Y byte

	// Processor Status
	P byte

	bus Bus
	nmi *interrupt.Line

	opcode byte
	cycles int
	lookup [256]Instruction

	fetched uint8
	addrAbs uint16
	addrRel uint16

	powered bool
}

// New creates a new CPU instance. The interrupt line carries the NMI
// condition raised by the PPU; a nil line gives the CPU a private one,
// which is convenient for harnesses that never raise it.
func New(nmi *interrupt.Line) *CPU {
	if nmi == nil {
		nmi = interrupt.NewLine()
	}
	c := &CPU{nmi: nmi}
	c.lookup = c.createLookupTable()
	return c
}

// ConnectBus connects the CPU to the bus.
func (c *CPU) ConnectBus(bus Bus) {
	c.bus = bus
}

// Reset loads the program counter from the reset vector at $FFFC and puts
// the registers into their documented power-up state. The start sequence
// costs 8 cycles.
func (c *CPU) Reset() {
	c.addrAbs = resetVector
	lo := uint16(c.bus.Read(c.addrAbs))
	hi := uint16(c.bus.Read(c.addrAbs + 1))
	c.PC = (hi << 8) | lo

	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = 0x00 | byte(FlagU)

	c.addrAbs = 0
	c.addrRel = 0
	c.fetched = 0

	c.cycles = 8
	c.powered = true
}

// Clock performs one clock cycle. A pending NMI is consumed at the next
// instruction boundary; raising the line twice before then coalesces into
// a single interrupt sequence.
func (c *CPU) Clock() {
	if !c.powered {
		panic("cpu: Clock called before Reset")
	}

	if c.cycles == 0 {
		if c.nmi.Consume() {
			c.serviceNMI()
		} else {
			c.SetFlag(FlagU, true)

			c.opcode = c.bus.Read(c.PC)
			c.PC++

			instr := c.lookup[c.opcode]
			c.cycles = instr.Cycles

			extraAddr := instr.AddrMode()
			extraOp := instr.Operate()

			// Only charge the page-crossing penalty when both the
			// addressing mode and the operation are subject to it.
			c.cycles += int(extraAddr & extraOp)

			c.SetFlag(FlagU, true)
		}
	}
	c.cycles--
}

// Stall adds idle cycles to the current countdown. The bus uses this to
// model the CPU suspension during OAM DMA.
func (c *CPU) Stall(cycles int) {
	c.cycles += cycles
}

// Cycles returns the remaining countdown of the instruction in flight.
func (c *CPU) Cycles() int {
	return c.cycles
}

// Opcode returns the opcode of the instruction most recently fetched.
func (c *CPU) Opcode() byte {
	return c.opcode
}

// Instruction returns the descriptor for an opcode. It is read-only data
// intended for disassembly and debugging.
func (c *CPU) Instruction(opcode byte) Instruction {
	return c.lookup[opcode]
}

// GetFlag returns 1 if the given status flag is set and 0 otherwise.
func (c *CPU) GetFlag(f Flag) byte {
	if c.P&byte(f) != 0 {
		return 1
	}
	return 0
}

// SetFlag sets or clears a single bit of the status register.
func (c *CPU) SetFlag(f Flag, v bool) {
	if v {
		c.P |= byte(f)
	} else {
		c.P &^= byte(f)
	}
}

func (c *CPU) setZN(value byte) {
	c.SetFlag(FlagZ, value == 0)
	c.SetFlag(FlagN, value&0x80 != 0)
}

func (c *CPU) push(data byte) {
	c.bus.Write(stackBase+uint16(c.SP), data)
	c.SP--
}

func (c *CPU) pull() byte {
	c.SP++
	return c.bus.Read(stackBase + uint16(c.SP))
}

func (c *CPU) push16(value uint16) {
	c.push(byte(value >> 8))
	c.push(byte(value))
}

func (c *CPU) pull16() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

func (c *CPU) readVector(addr uint16) uint16 {
	lo := uint16(c.bus.Read(addr))
	hi := uint16(c.bus.Read(addr + 1))
	return hi<<8 | lo
}

// serviceNMI pushes the program counter and status (break flag clear) and
// jumps through the NMI vector at $FFFA. The sequence costs 7 cycles.
func (c *CPU) serviceNMI() {
	c.push16(c.PC)

	c.SetFlag(FlagB, false)
	c.SetFlag(FlagU, true)
	c.push(c.P)
	c.SetFlag(FlagI, true)

	c.PC = c.readVector(nmiVector)
	c.cycles = 7
}

// fetch loads the operand resolved by the current addressing mode. The
// accumulator mode reads the A register; every other mode with an operand
// reads from the effective address.
func (c *CPU) fetch() byte {
	mode := c.lookup[c.opcode].AddrModeName
	if mode != "imp" && mode != "acc" {
		c.fetched = c.bus.Read(c.addrAbs)
	}
	return c.fetched
}

// writeBack stores a read-modify-write result either to the accumulator or
// to the effective address, depending on the addressing mode.
func (c *CPU) writeBack(value byte) {
	if c.lookup[c.opcode].AddrModeName == "acc" {
		c.A = value
	} else {
		c.bus.Write(c.addrAbs, value)
	}
}

// Addressing modes. Each mode resolves the effective address (or marks the
// operand source) and returns 1 when the resolution crossed a page
// boundary, which costs an extra cycle for the operations subject to it.

// imp - implied; no operand.
func (c *CPU) imp() byte {
	return 0
}

// acc - accumulator; the operand is the A register.
func (c *CPU) acc() byte {
	c.fetched = c.A
	return 0
}

// imm - immediate; the operand is the byte after the opcode.
func (c *CPU) imm() byte {
	c.addrAbs = c.PC
	c.PC++
	return 0
}

// zp0 - zero page.
func (c *CPU) zp0() byte {
	c.addrAbs = uint16(c.bus.Read(c.PC))
	c.PC++
	return 0
}

// zpx - zero page with X offset; wraps within the zero page.
func (c *CPU) zpx() byte {
	c.addrAbs = uint16(c.bus.Read(c.PC)+c.X) & 0x00FF
	c.PC++
	return 0
}

// zpy - zero page with Y offset; wraps within the zero page.
func (c *CPU) zpy() byte {
	c.addrAbs = uint16(c.bus.Read(c.PC)+c.Y) & 0x00FF
	c.PC++
	return 0
}

// abs - absolute.
func (c *CPU) abs() byte {
	lo := uint16(c.bus.Read(c.PC))
	c.PC++
	hi := uint16(c.bus.Read(c.PC))
	c.PC++
	c.addrAbs = hi<<8 | lo
	return 0
}

// abx - absolute with X offset; reports page crossing.
func (c *CPU) abx() byte {
	lo := uint16(c.bus.Read(c.PC))
	c.PC++
	hi := uint16(c.bus.Read(c.PC))
	c.PC++
	c.addrAbs = (hi<<8 | lo) + uint16(c.X)

	if c.addrAbs&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}

// aby - absolute with Y offset; reports page crossing.
func (c *CPU) aby() byte {
	lo := uint16(c.bus.Read(c.PC))
	c.PC++
	hi := uint16(c.bus.Read(c.PC))
	c.PC++
	c.addrAbs = (hi<<8 | lo) + uint16(c.Y)

	if c.addrAbs&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}

// ind - indirect, used only by JMP. The 6502 does not carry the page when
// the pointer sits on a page boundary; the high byte is read from the
// start of the same page. The bug is reproduced, not fixed.
func (c *CPU) ind() byte {
	ptrLo := uint16(c.bus.Read(c.PC))
	c.PC++
	ptrHi := uint16(c.bus.Read(c.PC))
	c.PC++
	ptr := ptrHi<<8 | ptrLo

	if ptrLo == 0x00FF {
		c.addrAbs = uint16(c.bus.Read(ptr&0xFF00))<<8 | uint16(c.bus.Read(ptr))
	} else {
		c.addrAbs = uint16(c.bus.Read(ptr+1))<<8 | uint16(c.bus.Read(ptr))
	}
	return 0
}

// izx - indexed indirect (zero page,X).
func (c *CPU) izx() byte {
	t := uint16(c.bus.Read(c.PC))
	c.PC++

	lo := uint16(c.bus.Read((t + uint16(c.X)) & 0x00FF))
	hi := uint16(c.bus.Read((t + uint16(c.X) + 1) & 0x00FF))
	c.addrAbs = hi<<8 | lo
	return 0
}

// izy - indirect indexed (zero page),Y; reports page crossing.
func (c *CPU) izy() byte {
	t := uint16(c.bus.Read(c.PC))
	c.PC++

	lo := uint16(c.bus.Read(t & 0x00FF))
	hi := uint16(c.bus.Read((t + 1) & 0x00FF))
	c.addrAbs = (hi<<8 | lo) + uint16(c.Y)

	if c.addrAbs&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}

// rel - relative, used only by branches. The signed 8-bit offset is
// sign-extended into addrRel.
func (c *CPU) rel() byte {
	c.addrRel = uint16(c.bus.Read(c.PC))
	c.PC++
	if c.addrRel&0x80 != 0 {
		c.addrRel |= 0xFF00
	}
	return 0
}
