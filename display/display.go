package display

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sqweek/dialog"

	"github.com/nfeld/famicore/bus"
	"github.com/nfeld/famicore/cartridge"
	"github.com/nfeld/famicore/ppu"
	"github.com/nfeld/famicore/server"
)

const (
	scaleFactor = 3
	screenW     = ppu.FrameWidth * scaleFactor
	screenH     = ppu.FrameHeight * scaleFactor
)

var buttonNames = []string{"A", "B", "SELECT", "START", "UP", "DOWN", "LEFT", "RIGHT"}

// Display is the ebiten frontend: it polls input, runs the emulator for
// one frame per tick and draws the PPU's output.
type Display struct {
	bus        *bus.Bus
	grpcServer *server.GRPCServer

	frameImage *ebiten.Image

	// TV static shown while no cartridge is loaded.
	staticImage *ebiten.Image
	staticPix   []byte

	scanlineImage *ebiten.Image

	romLoadChan chan string

	// Input recording.
	recordFile      *os.File
	lastButtons     [8]bool
	buttonHoldCount int
	firstFrame      bool

	statePath string
}

// New creates a new Display instance. recFile may be nil to disable
// input recording.
func New(b *bus.Bus, srv *server.GRPCServer, recFile *os.File, statePath string) *Display {
	staticImg := ebiten.NewImage(ppu.FrameWidth, ppu.FrameHeight)
	staticPix := make([]byte, ppu.FrameWidth*ppu.FrameHeight*4)

	// CRT scanline overlay: a translucent black line every other row.
	scanImg := ebiten.NewImage(ppu.FrameWidth, ppu.FrameHeight)
	for y := 0; y < ppu.FrameHeight; y += 2 {
		vector.DrawFilledRect(scanImg, 0, float32(y), ppu.FrameWidth, 1, color.RGBA{0, 0, 0, 70}, false)
	}

	return &Display{
		bus:           b,
		grpcServer:    srv,
		frameImage:    ebiten.NewImage(ppu.FrameWidth, ppu.FrameHeight),
		staticImage:   staticImg,
		staticPix:     staticPix,
		scanlineImage: scanImg,
		romLoadChan:   make(chan string, 1),
		recordFile:    recFile,
		firstFrame:    true,
		statePath:     statePath,
	}
}

func (d *Display) loadROM(path string) {
	cart, err := cartridge.New(path)
	if err != nil {
		log.Printf("Error loading ROM: %v", err)
		return
	}
	d.bus.LoadCartridge(cart)
}

func (d *Display) writeRecord(frames int, b [8]bool) {
	var pressed []string
	for i, name := range buttonNames {
		if b[i] {
			pressed = append(pressed, name)
		}
	}

	btnStr := "NONE"
	if len(pressed) > 0 {
		btnStr = strings.Join(pressed, "+")
	}
	fmt.Fprintf(d.recordFile, "%d %s\n", frames, btnStr)
}

// pollButtons merges local keyboard input with the network state from
// the gRPC server.
func (d *Display) pollButtons() [8]bool {
	remote := d.grpcServer.GetP1State()
	return [8]bool{
		ebiten.IsKeyPressed(ebiten.KeyZ) || remote[0],          // A
		ebiten.IsKeyPressed(ebiten.KeyX) || remote[1],          // B
		ebiten.IsKeyPressed(ebiten.KeyShift) || remote[2],      // Select
		ebiten.IsKeyPressed(ebiten.KeyEnter) || remote[3],      // Start
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) || remote[4],    // Up
		ebiten.IsKeyPressed(ebiten.KeyArrowDown) || remote[5],  // Down
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || remote[6],  // Left
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || remote[7], // Right
	}
}

// Update advances the emulator by one frame.
func (d *Display) Update() error {
	select {
	case filename := <-d.romLoadChan:
		d.loadROM(filename)
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		go func() {
			filename, err := dialog.File().Filter("NES ROM", "nes").Load()
			if err != nil {
				log.Println(err)
				return
			}
			d.romLoadChan <- filename
		}()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.bus.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := d.bus.SaveState(d.statePath); err != nil {
			log.Printf("Error saving state: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF7) {
		if err := d.bus.LoadState(d.statePath); err != nil {
			log.Printf("Error loading state: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		d.bus.SetPaused(!d.bus.IsPaused())
	}

	buttons := d.pollButtons()
	d.bus.SetController1State(buttons)
	d.bus.SetController2State(d.grpcServer.GetP2State())

	if !d.bus.HasCartridge() {
		for i := 0; i < len(d.staticPix); i += 4 {
			val := byte(rand.Intn(256))
			d.staticPix[i] = val
			d.staticPix[i+1] = val
			d.staticPix[i+2] = val
			d.staticPix[i+3] = 255
		}
		d.staticImage.WritePixels(d.staticPix)
		return nil
	}

	if d.recordFile != nil {
		if d.firstFrame {
			d.lastButtons = buttons
			d.buttonHoldCount = 1
			d.firstFrame = false
		} else if buttons == d.lastButtons {
			d.buttonHoldCount++
		} else {
			d.writeRecord(d.buttonHoldCount, d.lastButtons)
			d.lastButtons = buttons
			d.buttonHoldCount = 1
		}
	}

	d.bus.RunFrame()
	return nil
}

// Draw draws the most recent frame, or TV static when no cartridge is
// loaded.
func (d *Display) Draw(screen *ebiten.Image) {
	var src *ebiten.Image
	if d.bus.HasCartridge() {
		d.frameImage.WritePixels(d.bus.GetFramePixels())
		src = d.frameImage
	} else {
		src = d.staticImage
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleFactor, scaleFactor)
	screen.DrawImage(src, op)

	scanOp := &ebiten.DrawImageOptions{}
	scanOp.GeoM.Scale(scaleFactor, scaleFactor)
	screen.DrawImage(d.scanlineImage, scanOp)

	if d.bus.IsPaused() {
		ebitenutil.DebugPrintAt(screen, "PAUSED", 8, 8)
	}
}

// Layout returns the logical screen size.
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func ScaledWidth() int {
	return screenW
}

func ScaledHeight() int {
	return screenH
}
