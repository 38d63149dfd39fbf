package cartridge

// State captures the mutable parts of a cartridge for save states. ROM
// contents are not included; the same ROM must be loaded before restore.
type State struct {
	MapperState []byte
	CHRRAM      []byte
}

// SaveState snapshots mapper bank registers and any CHR-RAM contents.
func (c *Cartridge) SaveState() State {
	s := State{MapperState: c.Mapper.Save()}
	if c.IsCHRRAM {
		s.CHRRAM = make([]byte, len(c.CHRROM))
		copy(s.CHRRAM, c.CHRROM)
	}
	return s
}

// LoadState restores a snapshot produced by SaveState.
func (c *Cartridge) LoadState(s State) error {
	if err := c.Mapper.Load(s.MapperState); err != nil {
		return err
	}
	if c.IsCHRRAM && len(s.CHRRAM) == len(c.CHRROM) {
		copy(c.CHRROM, s.CHRRAM)
	}
	return nil
}
