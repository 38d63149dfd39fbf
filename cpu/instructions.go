package cpu

// Instruction represents a 6502 instruction: the operation to perform, the
// addressing mode that resolves its operand and the base cycle cost. The
// Operate and AddrMode functions each return 1 when their combination is
// subject to an extra page-crossing cycle.
type Instruction struct {
	Name         string
	Operate      func() byte
	AddrMode     func() byte
	AddrModeName string
	Cycles       int
}

// createLookupTable builds the opcode dispatch table. The table is laid
// out in 16 rows of 16 opcodes, matching the standard opcode matrix.
// Undocumented opcodes are captured by xxx and behave as two-cycle NOPs.
func (c *CPU) createLookupTable() [256]Instruction {
	x := Instruction{"???", c.xxx, c.imp, "imp", 2}

	return [256]Instruction{
		// 0x00
		{"BRK", c.brk, c.imp, "imp", 7}, {"ORA", c.ora, c.izx, "izx", 6}, x, x,
		x, {"ORA", c.ora, c.zp0, "zp0", 3}, {"ASL", c.asl, c.zp0, "zp0", 5}, x,
		{"PHP", c.php, c.imp, "imp", 3}, {"ORA", c.ora, c.imm, "imm", 2}, {"ASL", c.asl, c.acc, "acc", 2}, x,
		x, {"ORA", c.ora, c.abs, "abs", 4}, {"ASL", c.asl, c.abs, "abs", 6}, x,
		// 0x10
		{"BPL", c.bpl, c.rel, "rel", 2}, {"ORA", c.ora, c.izy, "izy", 5}, x, x,
		x, {"ORA", c.ora, c.zpx, "zpx", 4}, {"ASL", c.asl, c.zpx, "zpx", 6}, x,
		{"CLC", c.clc, c.imp, "imp", 2}, {"ORA", c.ora, c.aby, "aby", 4}, x, x,
		x, {"ORA", c.ora, c.abx, "abx", 4}, {"ASL", c.asl, c.abx, "abx", 7}, x,
		// 0x20
		{"JSR", c.jsr, c.abs, "abs", 6}, {"AND", c.and, c.izx, "izx", 6}, x, x,
		{"BIT", c.bit, c.zp0, "zp0", 3}, {"AND", c.and, c.zp0, "zp0", 3}, {"ROL", c.rol, c.zp0, "zp0", 5}, x,
		{"PLP", c.plp, c.imp, "imp", 4}, {"AND", c.and, c.imm, "imm", 2}, {"ROL", c.rol, c.acc, "acc", 2}, x,
		{"BIT", c.bit, c.abs, "abs", 4}, {"AND", c.and, c.abs, "abs", 4}, {"ROL", c.rol, c.abs, "abs", 6}, x,
		// 0x30
		{"BMI", c.bmi, c.rel, "rel", 2}, {"AND", c.and, c.izy, "izy", 5}, x, x,
		x, {"AND", c.and, c.zpx, "zpx", 4}, {"ROL", c.rol, c.zpx, "zpx", 6}, x,
		{"SEC", c.sec, c.imp, "imp", 2}, {"AND", c.and, c.aby, "aby", 4}, x, x,
		x, {"AND", c.and, c.abx, "abx", 4}, {"ROL", c.rol, c.abx, "abx", 7}, x,
		// 0x40
		{"RTI", c.rti, c.imp, "imp", 6}, {"EOR", c.eor, c.izx, "izx", 6}, x, x,
		x, {"EOR", c.eor, c.zp0, "zp0", 3}, {"LSR", c.lsr, c.zp0, "zp0", 5}, x,
		{"PHA", c.pha, c.imp, "imp", 3}, {"EOR", c.eor, c.imm, "imm", 2}, {"LSR", c.lsr, c.acc, "acc", 2}, x,
		{"JMP", c.jmp, c.abs, "abs", 3}, {"EOR", c.eor, c.abs, "abs", 4}, {"LSR", c.lsr, c.abs, "abs", 6}, x,
		// 0x50
		{"BVC", c.bvc, c.rel, "rel", 2}, {"EOR", c.eor, c.izy, "izy", 5}, x, x,
		x, {"EOR", c.eor, c.zpx, "zpx", 4}, {"LSR", c.lsr, c.zpx, "zpx", 6}, x,
		{"CLI", c.cli, c.imp, "imp", 2}, {"EOR", c.eor, c.aby, "aby", 4}, x, x,
		x, {"EOR", c.eor, c.abx, "abx", 4}, {"LSR", c.lsr, c.abx, "abx", 7}, x,
		// 0x60
		{"RTS", c.rts, c.imp, "imp", 6}, {"ADC", c.adc, c.izx, "izx", 6}, x, x,
		x, {"ADC", c.adc, c.zp0, "zp0", 3}, {"ROR", c.ror, c.zp0, "zp0", 5}, x,
		{"PLA", c.pla, c.imp, "imp", 4}, {"ADC", c.adc, c.imm, "imm", 2}, {"ROR", c.ror, c.acc, "acc", 2}, x,
		{"JMP", c.jmp, c.ind, "ind", 5}, {"ADC", c.adc, c.abs, "abs", 4}, {"ROR", c.ror, c.abs, "abs", 6}, x,
		// 0x70
		{"BVS", c.bvs, c.rel, "rel", 2}, {"ADC", c.adc, c.izy, "izy", 5}, x, x,
		x, {"ADC", c.adc, c.zpx, "zpx", 4}, {"ROR", c.ror, c.zpx, "zpx", 6}, x,
		{"SEI", c.sei, c.imp, "imp", 2}, {"ADC", c.adc, c.aby, "aby", 4}, x, x,
		x, {"ADC", c.adc, c.abx, "abx", 4}, {"ROR", c.ror, c.abx, "abx", 7}, x,
		// 0x80
		x, {"STA", c.sta, c.izx, "izx", 6}, x, x,
		{"STY", c.sty, c.zp0, "zp0", 3}, {"STA", c.sta, c.zp0, "zp0", 3}, {"STX", c.stx, c.zp0, "zp0", 3}, x,
		{"DEY", c.dey, c.imp, "imp", 2}, x, {"TXA", c.txa, c.imp, "imp", 2}, x,
		{"STY", c.sty, c.abs, "abs", 4}, {"STA", c.sta, c.abs, "abs", 4}, {"STX", c.stx, c.abs, "abs", 4}, x,
		// 0x90
		{"BCC", c.bcc, c.rel, "rel", 2}, {"STA", c.sta, c.izy, "izy", 6}, x, x,
		{"STY", c.sty, c.zpx, "zpx", 4}, {"STA", c.sta, c.zpx, "zpx", 4}, {"STX", c.stx, c.zpy, "zpy", 4}, x,
		{"TYA", c.tya, c.imp, "imp", 2}, {"STA", c.sta, c.aby, "aby", 5}, {"TXS", c.txs, c.imp, "imp", 2}, x,
		x, {"STA", c.sta, c.abx, "abx", 5}, x, x,
		// 0xA0
		{"LDY", c.ldy, c.imm, "imm", 2}, {"LDA", c.lda, c.izx, "izx", 6}, {"LDX", c.ldx, c.imm, "imm", 2}, x,
		{"LDY", c.ldy, c.zp0, "zp0", 3}, {"LDA", c.lda, c.zp0, "zp0", 3}, {"LDX", c.ldx, c.zp0, "zp0", 3}, x,
		{"TAY", c.tay, c.imp, "imp", 2}, {"LDA", c.lda, c.imm, "imm", 2}, {"TAX", c.tax, c.imp, "imp", 2}, x,
		{"LDY", c.ldy, c.abs, "abs", 4}, {"LDA", c.lda, c.abs, "abs", 4}, {"LDX", c.ldx, c.abs, "abs", 4}, x,
		// 0xB0
		{"BCS", c.bcs, c.rel, "rel", 2}, {"LDA", c.lda, c.izy, "izy", 5}, x, x,
		{"LDY", c.ldy, c.zpx, "zpx", 4}, {"LDA", c.lda, c.zpx, "zpx", 4}, {"LDX", c.ldx, c.zpy, "zpy", 4}, x,
		{"CLV", c.clv, c.imp, "imp", 2}, {"LDA", c.lda, c.aby, "aby", 4}, {"TSX", c.tsx, c.imp, "imp", 2}, x,
		{"LDY", c.ldy, c.abx, "abx", 4}, {"LDA", c.lda, c.abx, "abx", 4}, {"LDX", c.ldx, c.aby, "aby", 4}, x,
		// 0xC0
		{"CPY", c.cpy, c.imm, "imm", 2}, {"CMP", c.cmp, c.izx, "izx", 6}, x, x,
		{"CPY", c.cpy, c.zp0, "zp0", 3}, {"CMP", c.cmp, c.zp0, "zp0", 3}, {"DEC", c.dec, c.zp0, "zp0", 5}, x,
		{"INY", c.iny, c.imp, "imp", 2}, {"CMP", c.cmp, c.imm, "imm", 2}, {"DEX", c.dex, c.imp, "imp", 2}, x,
		{"CPY", c.cpy, c.abs, "abs", 4}, {"CMP", c.cmp, c.abs, "abs", 4}, {"DEC", c.dec, c.abs, "abs", 6}, x,
		// 0xD0
		{"BNE", c.bne, c.rel, "rel", 2}, {"CMP", c.cmp, c.izy, "izy", 5}, x, x,
		x, {"CMP", c.cmp, c.zpx, "zpx", 4}, {"DEC", c.dec, c.zpx, "zpx", 6}, x,
		{"CLD", c.cld, c.imp, "imp", 2}, {"CMP", c.cmp, c.aby, "aby", 4}, x, x,
		x, {"CMP", c.cmp, c.abx, "abx", 4}, {"DEC", c.dec, c.abx, "abx", 7}, x,
		// 0xE0
		{"CPX", c.cpx, c.imm, "imm", 2}, {"SBC", c.sbc, c.izx, "izx", 6}, x, x,
		{"CPX", c.cpx, c.zp0, "zp0", 3}, {"SBC", c.sbc, c.zp0, "zp0", 3}, {"INC", c.inc, c.zp0, "zp0", 5}, x,
		{"INX", c.inx, c.imp, "imp", 2}, {"SBC", c.sbc, c.imm, "imm", 2}, {"NOP", c.nop, c.imp, "imp", 2}, x,
		{"CPX", c.cpx, c.abs, "abs", 4}, {"SBC", c.sbc, c.abs, "abs", 4}, {"INC", c.inc, c.abs, "abs", 6}, x,
		// 0xF0
		{"BEQ", c.beq, c.rel, "rel", 2}, {"SBC", c.sbc, c.izy, "izy", 5}, x, x,
		x, {"SBC", c.sbc, c.zpx, "zpx", 4}, {"INC", c.inc, c.zpx, "zpx", 6}, x,
		{"SED", c.sed, c.imp, "imp", 2}, {"SBC", c.sbc, c.aby, "aby", 4}, x, x,
		x, {"SBC", c.sbc, c.abx, "abx", 4}, {"INC", c.inc, c.abx, "abx", 7}, x,
	}
}

// branch applies a taken branch: one extra cycle, plus another when the
// target lands on a different page than the incremented program counter.
func (c *CPU) branch() {
	c.cycles++
	c.addrAbs = c.PC + c.addrRel

	if c.addrAbs&0xFF00 != c.PC&0xFF00 {
		c.cycles++
	}
	c.PC = c.addrAbs
}

// Load and store.

func (c *CPU) lda() byte {
	c.A = c.fetch()
	c.setZN(c.A)
	return 1
}

func (c *CPU) ldx() byte {
	c.X = c.fetch()
	c.setZN(c.X)
	return 1
}

func (c *CPU) ldy() byte {
	c.Y = c.fetch()
	c.setZN(c.Y)
	return 1
}

func (c *CPU) sta() byte {
	c.bus.Write(c.addrAbs, c.A)
	return 0
}

func (c *CPU) stx() byte {
	c.bus.Write(c.addrAbs, c.X)
	return 0
}

func (c *CPU) sty() byte {
	c.bus.Write(c.addrAbs, c.Y)
	return 0
}

// Register transfers.

func (c *CPU) tax() byte {
	c.X = c.A
	c.setZN(c.X)
	return 0
}

func (c *CPU) tay() byte {
	c.Y = c.A
	c.setZN(c.Y)
	return 0
}

func (c *CPU) txa() byte {
	c.A = c.X
	c.setZN(c.A)
	return 0
}

func (c *CPU) tya() byte {
	c.A = c.Y
	c.setZN(c.A)
	return 0
}

func (c *CPU) tsx() byte {
	c.X = c.SP
	c.setZN(c.X)
	return 0
}

func (c *CPU) txs() byte {
	c.SP = c.X
	return 0
}

// Stack operations.

func (c *CPU) pha() byte {
	c.push(c.A)
	return 0
}

// php pushes the status register with the break and unused bits set, as
// the hardware does for a push that is not an interrupt.
func (c *CPU) php() byte {
	c.push(c.P | byte(FlagB) | byte(FlagU))
	return 0
}

func (c *CPU) pla() byte {
	c.A = c.pull()
	c.setZN(c.A)
	return 0
}

func (c *CPU) plp() byte {
	c.P = c.pull()
	c.SetFlag(FlagB, false)
	c.SetFlag(FlagU, true)
	return 0
}

// Logical operations.

func (c *CPU) and() byte {
	c.A &= c.fetch()
	c.setZN(c.A)
	return 1
}

func (c *CPU) ora() byte {
	c.A |= c.fetch()
	c.setZN(c.A)
	return 1
}

func (c *CPU) eor() byte {
	c.A ^= c.fetch()
	c.setZN(c.A)
	return 1
}

// bit tests memory bits against the accumulator: Z from the AND result,
// N and V copied from bits 7 and 6 of the operand.
func (c *CPU) bit() byte {
	value := c.fetch()
	c.SetFlag(FlagZ, c.A&value == 0)
	c.SetFlag(FlagN, value&0x80 != 0)
	c.SetFlag(FlagV, value&0x40 != 0)
	return 0
}

// Shifts and rotates.

func (c *CPU) asl() byte {
	value := c.fetch()
	c.SetFlag(FlagC, value&0x80 != 0)
	result := value << 1
	c.setZN(result)
	c.writeBack(result)
	return 0
}

func (c *CPU) lsr() byte {
	value := c.fetch()
	c.SetFlag(FlagC, value&0x01 != 0)
	result := value >> 1
	c.setZN(result)
	c.writeBack(result)
	return 0
}

func (c *CPU) rol() byte {
	value := c.fetch()
	carry := c.GetFlag(FlagC)
	c.SetFlag(FlagC, value&0x80 != 0)
	result := value<<1 | carry
	c.setZN(result)
	c.writeBack(result)
	return 0
}

func (c *CPU) ror() byte {
	value := c.fetch()
	carry := c.GetFlag(FlagC)
	c.SetFlag(FlagC, value&0x01 != 0)
	result := value>>1 | carry<<7
	c.setZN(result)
	c.writeBack(result)
	return 0
}

// Arithmetic. Decimal mode has no effect on this processor variant, so the
// D flag is ignored by both operations.

// adc adds the operand and the carry bit to the accumulator. Overflow is
// set exactly when both inputs share a sign and the result's sign differs.
func (c *CPU) adc() byte {
	value := c.fetch()
	sum := uint16(c.A) + uint16(value) + uint16(c.GetFlag(FlagC))
	result := byte(sum)

	c.SetFlag(FlagC, sum > 0xFF)
	c.SetFlag(FlagV, (c.A^value)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.setZN(result)

	c.A = result
	return 1
}

// sbc reuses the add rule by complementing the subtrahend; the carry flag
// acts as the inverted borrow.
func (c *CPU) sbc() byte {
	value := c.fetch() ^ 0xFF
	sum := uint16(c.A) + uint16(value) + uint16(c.GetFlag(FlagC))
	result := byte(sum)

	c.SetFlag(FlagC, sum > 0xFF)
	c.SetFlag(FlagV, (c.A^value)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.setZN(result)

	c.A = result
	return 1
}

// Increments and decrements.

func (c *CPU) inc() byte {
	result := c.fetch() + 1
	c.bus.Write(c.addrAbs, result)
	c.setZN(result)
	return 0
}

func (c *CPU) inx() byte {
	c.X++
	c.setZN(c.X)
	return 0
}

func (c *CPU) iny() byte {
	c.Y++
	c.setZN(c.Y)
	return 0
}

func (c *CPU) dec() byte {
	result := c.fetch() - 1
	c.bus.Write(c.addrAbs, result)
	c.setZN(result)
	return 0
}

func (c *CPU) dex() byte {
	c.X--
	c.setZN(c.X)
	return 0
}

func (c *CPU) dey() byte {
	c.Y--
	c.setZN(c.Y)
	return 0
}

// Comparisons. Carry uses the borrow convention: set when the register is
// greater than or equal to the operand.

func (c *CPU) compare(register byte) {
	value := c.fetch()
	result := register - value
	c.SetFlag(FlagC, register >= value)
	c.setZN(result)
}

func (c *CPU) cmp() byte {
	c.compare(c.A)
	return 1
}

func (c *CPU) cpx() byte {
	c.compare(c.X)
	return 0
}

func (c *CPU) cpy() byte {
	c.compare(c.Y)
	return 0
}

// Conditional branches, one per flag test.

func (c *CPU) bcc() byte {
	if c.GetFlag(FlagC) == 0 {
		c.branch()
	}
	return 0
}

func (c *CPU) bcs() byte {
	if c.GetFlag(FlagC) == 1 {
		c.branch()
	}
	return 0
}

func (c *CPU) bne() byte {
	if c.GetFlag(FlagZ) == 0 {
		c.branch()
	}
	return 0
}

func (c *CPU) beq() byte {
	if c.GetFlag(FlagZ) == 1 {
		c.branch()
	}
	return 0
}

func (c *CPU) bpl() byte {
	if c.GetFlag(FlagN) == 0 {
		c.branch()
	}
	return 0
}

func (c *CPU) bmi() byte {
	if c.GetFlag(FlagN) == 1 {
		c.branch()
	}
	return 0
}

func (c *CPU) bvc() byte {
	if c.GetFlag(FlagV) == 0 {
		c.branch()
	}
	return 0
}

func (c *CPU) bvs() byte {
	if c.GetFlag(FlagV) == 1 {
		c.branch()
	}
	return 0
}

// Jumps and subroutines.

func (c *CPU) jmp() byte {
	c.PC = c.addrAbs
	return 0
}

// jsr pushes the address of the last byte of the JSR instruction; rts
// pulls it and adds one.
func (c *CPU) jsr() byte {
	c.push16(c.PC - 1)
	c.PC = c.addrAbs
	return 0
}

func (c *CPU) rts() byte {
	c.PC = c.pull16() + 1
	return 0
}

// Interrupts.

// brk behaves like a hardware interrupt but sets the break flag in the
// pushed status byte and uses the IRQ/BRK vector at $FFFE.
func (c *CPU) brk() byte {
	c.PC++
	c.push16(c.PC)

	c.SetFlag(FlagB, true)
	c.SetFlag(FlagU, true)
	c.push(c.P)
	c.SetFlag(FlagB, false)
	c.SetFlag(FlagI, true)

	c.PC = c.readVector(irqVector)
	return 0
}

func (c *CPU) rti() byte {
	c.P = c.pull()
	c.SetFlag(FlagB, false)
	c.SetFlag(FlagU, true)
	c.PC = c.pull16()
	return 0
}

// Flag set and clear operations.

func (c *CPU) clc() byte {
	c.SetFlag(FlagC, false)
	return 0
}

func (c *CPU) sec() byte {
	c.SetFlag(FlagC, true)
	return 0
}

func (c *CPU) cli() byte {
	c.SetFlag(FlagI, false)
	return 0
}

func (c *CPU) sei() byte {
	c.SetFlag(FlagI, true)
	return 0
}

func (c *CPU) cld() byte {
	c.SetFlag(FlagD, false)
	return 0
}

func (c *CPU) sed() byte {
	c.SetFlag(FlagD, true)
	return 0
}

func (c *CPU) clv() byte {
	c.SetFlag(FlagV, false)
	return 0
}

func (c *CPU) nop() byte {
	return 0
}

// xxx captures undocumented opcodes.
func (c *CPU) xxx() byte {
	return 0
}
