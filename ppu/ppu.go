package ppu

import "github.com/nfeld/famicore/interrupt"

// Bus defines the interface for the PPU to interact with its own 16kB
// address space: pattern tables, nametables and palette RAM. Address
// decoding and mirroring belong to the bus, not to the PPU.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

// FrameSink receives one background pixel per visible dot. The value is
// the color read from palette RAM for that dot (0-63).
type FrameSink interface {
	SetPixel(x, y int, colorIndex byte)
}

// NTSC scanline and cycle layout.
const (
	preRenderScanline  = -1
	lastVisibleLine    = 239
	vblankStartLine    = 241
	maxScanline        = 260
	maxCycle           = 340
	visibleDotsPerLine = 256
)

// PPU represents the Picture Processing Unit. Only the background pipeline
// and the processor-visible register behavior are modelled; there is no
// sprite evaluation or rendering, and the OAM ports exist purely at the
// register level.
type PPU struct {
	bus  Bus
	nmi  *interrupt.Line
	sink FrameSink

	control Control // $2000
	mask    Mask    // $2001
	status  Status  // $2002

	oamAddr byte
	oam     [256]byte

	vram       Address // Loopy v, the working VRAM address
	vramTemp   Address // Loopy t, staged by $2005/$2006 writes
	fineX      byte    // Loopy x, sub-tile horizontal scroll
	writeLatch bool    // Loopy w, shared by the scroll and address ports

	// $2007 read buffer. Reads below palette space return the buffered
	// byte and then refill it.
	dataBuffer byte

	// Latches filled by the 8-cycle fetch cadence before being loaded
	// into the shift registers.
	ntLatch   byte
	atLatch   byte
	ptAddress uint16
	ptLatchLo byte
	ptLatchHi byte

	ptShiftLo uint16
	ptShiftHi uint16
	atShiftLo uint16
	atShiftHi uint16

	scanline int // -1 (pre-render) through 260
	cycle    int // 0 through 340
	frame    uint64

	powered bool
}

// New creates a new PPU instance. The interrupt line is raised at the
// start of vertical blank when NMI generation is enabled; a nil line gives
// the PPU a private one. A nil sink discards pixels, which is convenient
// for harnesses that only exercise register behavior.
func New(bus Bus, nmi *interrupt.Line, sink FrameSink) *PPU {
	if nmi == nil {
		nmi = interrupt.NewLine()
	}
	return &PPU{bus: bus, nmi: nmi, sink: sink}
}

// Reset clears the registers, latches and shift registers used for
// rendering and restarts the frame at the pre-render scanline.
func (p *PPU) Reset() {
	p.control = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0

	p.vram = 0
	p.vramTemp = 0
	p.fineX = 0
	p.writeLatch = false
	p.dataBuffer = 0

	p.ntLatch = 0
	p.atLatch = 0
	p.ptAddress = 0
	p.ptLatchLo = 0
	p.ptLatchHi = 0
	p.ptShiftLo = 0
	p.ptShiftHi = 0
	p.atShiftLo = 0
	p.atShiftHi = 0

	p.scanline = preRenderScanline
	p.cycle = 0
	p.frame = 0

	p.powered = true
}

// Clock advances the PPU by exactly one cycle.
func (p *PPU) Clock() {
	if !p.powered {
		panic("ppu: Clock called before Reset")
	}

	if p.scanline >= preRenderScanline && p.scanline <= lastVisibleLine {
		if p.scanline == preRenderScanline && p.cycle == 1 {
			p.status.SetVBlank(false)
			p.status.SetSpriteZeroHit(false)
			p.status.SetSpriteOverflow(false)
		}

		if (p.cycle >= 2 && p.cycle <= 257) ||
			(p.cycle >= 321 && p.cycle <= 337) {
			p.shiftBackground()

			// The fetch cadence repeats every 8 dots, reloading the
			// shifters on the first dot of each tile.
			switch (p.cycle - 1) % 8 {
			case 0:
				p.loadShiftRegisters()
				p.ntLatch = p.bus.Read(p.vram.TileAddress())
			case 2:
				attr := p.bus.Read(p.vram.AttributeAddress())
				if p.vram.CoarseY()%4 >= 2 {
					attr >>= 4
				}
				if p.vram.CoarseX()%4 >= 2 {
					attr >>= 2
				}
				p.atLatch = attr & 0x03
			case 4:
				p.ptAddress = p.control.BackgroundTable() |
					uint16(p.ntLatch)<<4 |
					uint16(p.vram.FineY())
				p.ptLatchLo = p.bus.Read(p.ptAddress)
			case 6:
				// The two tile planes sit 8 bytes apart.
				p.ptLatchHi = p.bus.Read(p.ptAddress + 8)
			case 7:
				if p.cycle == visibleDotsPerLine {
					p.vram.IncrementY()
				} else {
					p.vram.IncrementCoarseX()
				}
			}
		}

		// Dot 0 is idle; dots 1-256 each emit one pixel after the
		// shifters have advanced.
		if p.scanline >= 0 && p.cycle >= 1 && p.cycle <= visibleDotsPerLine {
			p.emitPixel()
		}

		if p.cycle == 257 {
			p.vram.CopyHorizontal(p.vramTemp)
		}

		if p.scanline == preRenderScanline && p.cycle >= 280 && p.cycle <= 304 {
			p.vram.CopyVertical(p.vramTemp)
		}
	}

	if p.scanline == vblankStartLine && p.cycle == 1 {
		p.status.SetVBlank(true)
		if p.control.NMIEnabled() {
			p.nmi.Raise()
		}
	}

	p.incrementCycle()
}

// emitPixel composes the background pixel for the current dot and hands
// the palette RAM color to the frame sink.
func (p *PPU) emitPixel() {
	var paletteIndex byte
	if p.mask.ShowBackground() {
		mux := uint16(0x8000) >> p.fineX

		var pixel byte
		if p.ptShiftLo&mux != 0 {
			pixel |= 0x01
		}
		if p.ptShiftHi&mux != 0 {
			pixel |= 0x02
		}

		var palette byte
		if p.atShiftLo&mux != 0 {
			palette |= 0x01
		}
		if p.atShiftHi&mux != 0 {
			palette |= 0x02
		}

		if pixel != 0 {
			paletteIndex = palette<<2 | pixel
		}
	}

	colorIndex := p.bus.Read(0x3F00|uint16(paletteIndex)) & 0x3F
	if p.mask.Greyscale() {
		colorIndex &= 0x30
	}

	if p.sink != nil {
		p.sink.SetPixel(p.cycle-1, p.scanline, colorIndex)
	}
}

func (p *PPU) shiftBackground() {
	p.ptShiftLo <<= 1
	p.ptShiftHi <<= 1
	p.atShiftLo <<= 1
	p.atShiftHi <<= 1
}

// loadShiftRegisters reloads the low byte of each shift register from the
// latches filled by the previous fetch cadence. The two attribute bits are
// expanded to cover a full tile.
func (p *PPU) loadShiftRegisters() {
	p.ptShiftLo = p.ptShiftLo&0xFF00 | uint16(p.ptLatchLo)
	p.ptShiftHi = p.ptShiftHi&0xFF00 | uint16(p.ptLatchHi)

	p.atShiftLo = p.atShiftLo & 0xFF00
	if p.atLatch&0x01 != 0 {
		p.atShiftLo |= 0x00FF
	}
	p.atShiftHi = p.atShiftHi & 0xFF00
	if p.atLatch&0x02 != 0 {
		p.atShiftHi |= 0x00FF
	}
}

func (p *PPU) incrementCycle() {
	if p.cycle == maxCycle {
		p.cycle = 0
		if p.scanline == maxScanline {
			p.scanline = preRenderScanline
			p.frame++
		} else {
			p.scanline++
		}
	} else {
		p.cycle++
	}
}

// registerIndex validates and mirrors a CPU address into the eight
// processor-visible registers. The window repeats every 8 bytes through
// $3FFF; anything outside it is a collaborator bug, not an emulated
// condition.
func registerIndex(addr uint16) uint16 {
	if addr < 0x2000 || addr > 0x3FFF {
		panic("ppu: register access outside $2000-$3FFF")
	}
	return addr & 0x0007
}

// ReadRegister handles CPU reads of the memory mapped registers at
// $2000-$3FFF.
func (p *PPU) ReadRegister(addr uint16) byte {
	switch registerIndex(addr) {
	case 0x0002:
		// Reading the status register clears vertical blank and the
		// shared scroll/address write latch.
		data := byte(p.status)
		p.status.SetVBlank(false)
		p.writeLatch = false
		return data

	case 0x0004:
		return p.oam[p.oamAddr]

	case 0x0007:
		// Reads below palette space go through the internal buffer;
		// palette reads bypass it and return immediately.
		data := p.dataBuffer
		p.dataBuffer = p.bus.Read(uint16(p.vram))
		if uint16(p.vram) >= 0x3F00 {
			data = p.dataBuffer
		}
		p.vram.Set(uint16(p.vram) + p.control.VRAMIncrement())
		return data
	}

	// The remaining registers are write-only and read back as open bus.
	return 0
}

// WriteRegister handles CPU writes to the memory mapped registers at
// $2000-$3FFF.
func (p *PPU) WriteRegister(addr uint16, data byte) {
	switch registerIndex(addr) {
	case 0x0000:
		p.control = Control(data)
		// The nametable select bits are also staged into t.
		p.vramTemp = p.vramTemp&^Address(ntSelectXBit|ntSelectYBit) |
			Address(data&0x03)<<10

	case 0x0001:
		p.mask = Mask(data)

	case 0x0003:
		p.oamAddr = data

	case 0x0004:
		p.oam[p.oamAddr] = data
		p.oamAddr++

	case 0x0005:
		if !p.writeLatch {
			p.vramTemp.SetCoarseX(data >> 3)
			p.fineX = data & 0x07
			p.writeLatch = true
		} else {
			p.vramTemp.SetCoarseY(data >> 3)
			p.vramTemp.SetFineY(data & 0x07)
			p.writeLatch = false
		}

	case 0x0006:
		if !p.writeLatch {
			// High byte first. The AND with 0x3F clears bit 14, as
			// the hardware does.
			p.vramTemp.Set(uint16(data&0x3F)<<8 | uint16(p.vramTemp)&0x00FF)
			p.writeLatch = true
		} else {
			p.vramTemp.Set(uint16(p.vramTemp)&0xFF00 | uint16(data))
			p.vram = p.vramTemp
			p.writeLatch = false
		}

	case 0x0007:
		p.bus.Write(uint16(p.vram), data)
		p.vram.Set(uint16(p.vram) + p.control.VRAMIncrement())
	}
}

// Scanline returns the current scanline, -1 through 260.
func (p *PPU) Scanline() int {
	return p.scanline
}

// Cycle returns the current cycle within the scanline, 0 through 340.
func (p *PPU) Cycle() int {
	return p.cycle
}

// Frame returns the number of completed frames since Reset.
func (p *PPU) Frame() uint64 {
	return p.frame
}
