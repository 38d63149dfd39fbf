package bus

import (
	"sync"

	"github.com/nfeld/famicore/cartridge"
	"github.com/nfeld/famicore/controller"
	"github.com/nfeld/famicore/cpu"
	"github.com/nfeld/famicore/interrupt"
	"github.com/nfeld/famicore/ppu"
)

// Bus represents the system bus. It owns the 2KB of work RAM and routes
// CPU accesses to the PPU registers, the controllers and the cartridge.
type Bus struct {
	cpu   *cpu.CPU
	PPU   *ppu.PPU
	video *VideoBus
	cart  *cartridge.Cartridge

	Controller1 *controller.Controller
	Controller2 *controller.Controller

	ram [2048]byte

	frame *ppu.Frame
	nmi   *interrupt.Line

	// SystemClocks counts PPU ticks; the CPU runs every third one.
	SystemClocks int

	mu            sync.Mutex
	paused        bool
	stepRequested bool
}

// New creates a fully wired system: CPU, PPU, video bus, controllers and
// the shared NMI line.
func New() *Bus {
	nmi := interrupt.NewLine()
	frame := ppu.NewFrame()
	video := NewVideoBus()

	b := &Bus{
		cpu:         cpu.New(nmi),
		PPU:         ppu.New(video, nmi, frame),
		video:       video,
		Controller1: controller.New(),
		Controller2: controller.New(),
		frame:       frame,
		nmi:         nmi,
	}
	b.cpu.ConnectBus(b)
	return b
}

// LoadCartridge attaches a cartridge to both the CPU and PPU sides of
// the bus and resets the system.
func (b *Bus) LoadCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
	b.video.ConnectCartridge(cart)
	b.Reset()
}

// HasCartridge reports whether a cartridge is loaded.
func (b *Bus) HasCartridge() bool {
	return b.cart != nil
}

// Reset performs a hardware reset.
func (b *Bus) Reset() {
	b.cpu.Reset()
	b.PPU.Reset()
	b.SystemClocks = 0
}

// Read reads a byte from the CPU address space. Unmapped reads return 0.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]
	case addr < 0x4000:
		return b.PPU.ReadRegister(addr)
	case addr == 0x4016:
		return b.Controller1.Read()
	case addr == 0x4017:
		return b.Controller2.Read()
	case addr >= 0x4020 && b.cart != nil:
		if data, ok := b.cart.Mapper.CPUMapRead(addr); ok {
			return data
		}
	}
	return 0
}

// Write writes a byte to the CPU address space.
func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = data
	case addr < 0x4000:
		b.PPU.WriteRegister(addr, data)
	case addr == 0x4014:
		b.oamDMA(data)
	case addr == 0x4016:
		b.Controller1.Write(data)
		b.Controller2.Write(data)
	case addr >= 0x4020 && b.cart != nil:
		b.cart.Mapper.CPUMapWrite(addr, data)
	}
}

// oamDMA copies a 256-byte page into PPU OAM through the $2004 port and
// stalls the CPU for the 513 cycles the transfer takes.
func (b *Bus) oamDMA(page byte) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.PPU.WriteRegister(0x2004, b.Read(base+uint16(i)))
	}
	b.cpu.Stall(513)
}

// Clock advances the system by one PPU tick. The CPU is clocked once for
// every three PPU ticks.
func (b *Bus) Clock() {
	b.PPU.Clock()
	if b.SystemClocks%3 == 0 {
		b.cpu.Clock()
	}
	b.SystemClocks++
}

// RunFrame advances the system until the PPU finishes the current frame.
// When paused it runs nothing, except that a pending step request
// advances one CPU instruction.
func (b *Bus) RunFrame() {
	b.mu.Lock()
	paused, step := b.paused, b.stepRequested
	b.stepRequested = false
	b.mu.Unlock()

	if paused {
		if step {
			b.StepInstruction()
		}
		return
	}

	start := b.PPU.Frame()
	for b.PPU.Frame() == start {
		b.Clock()
	}
}

// StepInstruction clocks the system until the CPU completes exactly one
// instruction.
func (b *Bus) StepInstruction() {
	for {
		cpuTick := b.SystemClocks%3 == 0
		b.Clock()
		if cpuTick && b.cpu.Cycles() == 0 {
			return
		}
	}
}

// SetPaused suspends or resumes the emulation loop.
func (b *Bus) SetPaused(paused bool) {
	b.mu.Lock()
	b.paused = paused
	b.mu.Unlock()
}

// IsPaused reports whether the emulation loop is suspended.
func (b *Bus) IsPaused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paused
}

// RequestStep asks the loop to advance one CPU instruction while paused.
func (b *Bus) RequestStep() {
	b.mu.Lock()
	b.stepRequested = true
	b.mu.Unlock()
}

// GetFramePixels returns the raw RGBA pixels of the most recent frame.
func (b *Bus) GetFramePixels() []byte {
	return b.frame.Pixels()
}

// Frame returns the frame buffer the PPU renders into.
func (b *Bus) Frame() *ppu.Frame {
	return b.frame
}

// GetCPUState returns the CPU register values for debuggers.
func (b *Bus) GetCPUState() (a, x, y, sp, p byte, pc uint16, cycles int) {
	return b.cpu.A, b.cpu.X, b.cpu.Y, b.cpu.SP, b.cpu.P, b.cpu.PC, b.cpu.Cycles()
}

// GetMemoryBlock reads a block of CPU address space. Reads go through
// the normal bus decode, so register side effects apply.
func (b *Bus) GetMemoryBlock(addr uint16, size uint16) []byte {
	block := make([]byte, size)
	for i := uint16(0); i < size; i++ {
		block[i] = b.Read(addr + i)
	}
	return block
}

// SetController1State updates all buttons on the first controller.
func (b *Bus) SetController1State(buttons [8]bool) {
	b.Controller1.SetButtons(buttons)
}

// SetController2State updates all buttons on the second controller.
func (b *Bus) SetController2State(buttons [8]bool) {
	b.Controller2.SetButtons(buttons)
}
