package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nfeld/famicore/bus"
	"github.com/nfeld/famicore/cartridge"
	"github.com/nfeld/famicore/display"
	"github.com/nfeld/famicore/server"
)

var (
	romPath    = flag.String("rom", "", "path to a .nes ROM to load at startup")
	recordPath = flag.String("record", "", "record controller input to a script file")
	statePath  = flag.String("state", "famicore.state", "save state file used by F5/F7")
	grpcPort   = flag.Int("port", 50051, "port for the gRPC debug server")
)

func main() {
	flag.Parse()

	b := bus.New()

	if *romPath != "" {
		cart, err := cartridge.New(*romPath)
		if err != nil {
			log.Fatalf("Error loading ROM: %v", err)
		}
		b.LoadCartridge(cart)
	}

	srv := server.NewGRPCServer()
	srv.SetBus(b)
	if err := srv.Start(*grpcPort); err != nil {
		log.Fatalf("Error starting debug server: %v", err)
	}
	defer srv.Stop()

	var recFile *os.File
	if *recordPath != "" {
		f, err := os.Create(*recordPath)
		if err != nil {
			log.Fatalf("Error creating record file: %v", err)
		}
		defer f.Close()
		recFile = f
	}

	d := display.New(b, srv, recFile, *statePath)

	ebiten.SetWindowSize(display.ScaledWidth(), display.ScaledHeight())
	ebiten.SetWindowTitle("famicore")
	if err := ebiten.RunGame(d); err != nil {
		log.Fatal(err)
	}
}
