package cpu

// State is a gob-friendly snapshot of the CPU used by save states.
type State struct {
	PC, AddrAbs, AddrRel            uint16
	SP, A, X, Y, P, Opcode, Fetched byte
	Cycles                          int
	Powered                         bool
}

func (c *CPU) SaveState() State {
	return State{c.PC, c.addrAbs, c.addrRel, c.SP, c.A, c.X, c.Y, c.P, c.opcode, c.fetched, c.cycles, c.powered}
}

func (c *CPU) LoadState(s State) {
	c.PC, c.addrAbs, c.addrRel, c.SP, c.A, c.X, c.Y, c.P, c.opcode, c.fetched, c.cycles, c.powered = s.PC, s.AddrAbs, s.AddrRel, s.SP, s.A, s.X, s.Y, s.P, s.Opcode, s.Fetched, s.Cycles, s.Powered
}
