package bus

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/nfeld/famicore/cartridge"
	"github.com/nfeld/famicore/cpu"
	"github.com/nfeld/famicore/ppu"
)

type State struct {
	Ram          [2048]byte
	VRAM         [2048]byte
	Palette      [32]byte
	SystemClocks int
	CPU          cpu.State
	PPU          ppu.State
	Cartridge    cartridge.State
}

// SaveState saves the entire emulator state to a file.
func (b *Bus) SaveState(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating state file: %w", err)
	}
	defer file.Close()

	s := State{
		Ram:          b.ram,
		VRAM:         b.video.vram,
		Palette:      b.video.palette,
		SystemClocks: b.SystemClocks,
		CPU:          b.cpu.SaveState(),
		PPU:          b.PPU.SaveState(),
	}

	if b.cart != nil {
		s.Cartridge = b.cart.SaveState()
	}

	return gob.NewEncoder(file).Encode(s)
}

// LoadState loads the emulator state from a file.
func (b *Bus) LoadState(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening state file: %w", err)
	}
	defer file.Close()

	var s State
	if err := gob.NewDecoder(file).Decode(&s); err != nil {
		return fmt.Errorf("decoding state file: %w", err)
	}

	b.ram = s.Ram
	b.video.vram = s.VRAM
	b.video.palette = s.Palette
	b.SystemClocks = s.SystemClocks
	b.cpu.LoadState(s.CPU)
	b.PPU.LoadState(s.PPU)

	if b.cart != nil {
		if err := b.cart.LoadState(s.Cartridge); err != nil {
			return err
		}
	}

	return nil
}
