package ppu

// State is a gob-friendly snapshot of the PPU used by save states.
type State struct {
	Oam [256]byte

	Control, Mask, Status byte
	OamAddr, FineX        byte
	WriteLatch            bool
	DataBuffer            byte

	VRAM, VRAMTemp uint16

	NTLatch, ATLatch     byte
	PTAddress            uint16
	PTLatchLo, PTLatchHi byte

	PTShiftLo, PTShiftHi uint16
	ATShiftLo, ATShiftHi uint16

	Scanline, Cycle int
	Frame           uint64
	Powered         bool
}

func (p *PPU) SaveState() State {
	return State{
		Oam:        p.oam,
		Control:    byte(p.control),
		Mask:       byte(p.mask),
		Status:     byte(p.status),
		OamAddr:    p.oamAddr,
		FineX:      p.fineX,
		WriteLatch: p.writeLatch,
		DataBuffer: p.dataBuffer,
		VRAM:       uint16(p.vram),
		VRAMTemp:   uint16(p.vramTemp),
		NTLatch:    p.ntLatch,
		ATLatch:    p.atLatch,
		PTAddress:  p.ptAddress,
		PTLatchLo:  p.ptLatchLo,
		PTLatchHi:  p.ptLatchHi,
		PTShiftLo:  p.ptShiftLo,
		PTShiftHi:  p.ptShiftHi,
		ATShiftLo:  p.atShiftLo,
		ATShiftHi:  p.atShiftHi,
		Scanline:   p.scanline,
		Cycle:      p.cycle,
		Frame:      p.frame,
		Powered:    p.powered,
	}
}

func (p *PPU) LoadState(s State) {
	p.oam = s.Oam
	p.control = Control(s.Control)
	p.mask = Mask(s.Mask)
	p.status = Status(s.Status)
	p.oamAddr = s.OamAddr
	p.fineX = s.FineX
	p.writeLatch = s.WriteLatch
	p.dataBuffer = s.DataBuffer
	p.vram = Address(s.VRAM)
	p.vramTemp = Address(s.VRAMTemp)
	p.ntLatch = s.NTLatch
	p.atLatch = s.ATLatch
	p.ptAddress = s.PTAddress
	p.ptLatchLo = s.PTLatchLo
	p.ptLatchHi = s.PTLatchHi
	p.ptShiftLo = s.PTShiftLo
	p.ptShiftHi = s.PTShiftHi
	p.atShiftLo = s.ATShiftLo
	p.atShiftHi = s.ATShiftHi
	p.scanline = s.Scanline
	p.cycle = s.Cycle
	p.frame = s.Frame
	p.powered = s.Powered
}
