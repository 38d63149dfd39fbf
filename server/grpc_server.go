package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"sync"

	"github.com/nfeld/famicore/api"
	"google.golang.org/grpc"
)

// Emulator is the surface the debug server needs from the system bus.
type Emulator interface {
	Read(addr uint16) byte
	GetFramePixels() []byte
	LoadState(filename string) error
	Reset()
	SetPaused(bool)
	RequestStep()
	GetCPUState() (a, x, y, sp, p byte, pc uint16, cycles int)
	GetMemoryBlock(addr uint16, size uint16) []byte
}

// GRPCServer exposes the emulator over gRPC: controller input streams
// plus the debug and inspection calls.
type GRPCServer struct {
	api.UnimplementedControllerServiceServer
	mu       sync.Mutex
	p1State  [8]bool
	p2State  [8]bool
	listener net.Listener
	server   *grpc.Server
	emu      Emulator
}

// NewGRPCServer initializes the gRPC controller server.
func NewGRPCServer() *GRPCServer {
	return &GRPCServer{}
}

// SetBus assigns the system bus the server reads frames and memory from.
func (s *GRPCServer) SetBus(emu Emulator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emu = emu
}

func (s *GRPCServer) emulator() (Emulator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emu == nil {
		return nil, fmt.Errorf("emulator bus not connected")
	}
	return s.emu, nil
}

// GetFrame returns the raw pixel data of the most recent frame.
func (s *GRPCServer) GetFrame(ctx context.Context, in *api.Empty) (*api.FrameResponse, error) {
	emu, err := s.emulator()
	if err != nil {
		return nil, err
	}
	return &api.FrameResponse{Pixels: emu.GetFramePixels()}, nil
}

// ReadMemory returns one byte of CPU address space.
func (s *GRPCServer) ReadMemory(ctx context.Context, in *api.MemoryRequest) (*api.MemoryResponse, error) {
	emu, err := s.emulator()
	if err != nil {
		return nil, err
	}
	return &api.MemoryResponse{Data: uint32(emu.Read(uint16(in.Address)))}, nil
}

// ReadMemoryBlock returns a block of CPU address space.
func (s *GRPCServer) ReadMemoryBlock(ctx context.Context, in *api.MemoryBlockRequest) (*api.MemoryBlockResponse, error) {
	emu, err := s.emulator()
	if err != nil {
		return nil, err
	}
	return &api.MemoryBlockResponse{Data: emu.GetMemoryBlock(uint16(in.Address), uint16(in.Size))}, nil
}

// LoadState commands the emulator to load a save state file.
func (s *GRPCServer) LoadState(ctx context.Context, in *api.StateRequest) (*api.Empty, error) {
	emu, err := s.emulator()
	if err != nil {
		return nil, err
	}
	if err := emu.LoadState(in.Filename); err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return &api.Empty{}, nil
}

// ResetSystem triggers a hardware reset.
func (s *GRPCServer) ResetSystem(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	emu, err := s.emulator()
	if err != nil {
		return nil, err
	}
	emu.Reset()
	return &api.Empty{}, nil
}

// Pause suspends the emulation loop.
func (s *GRPCServer) Pause(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	if emu, err := s.emulator(); err == nil {
		emu.SetPaused(true)
	}
	return &api.Empty{}, nil
}

// Resume restarts the emulation loop.
func (s *GRPCServer) Resume(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	if emu, err := s.emulator(); err == nil {
		emu.SetPaused(false)
	}
	return &api.Empty{}, nil
}

// Step advances the CPU by one instruction while paused.
func (s *GRPCServer) Step(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	if emu, err := s.emulator(); err == nil {
		emu.RequestStep()
	}
	return &api.Empty{}, nil
}

// GetCPUState returns the CPU register values.
func (s *GRPCServer) GetCPUState(ctx context.Context, in *api.Empty) (*api.CPUStateResponse, error) {
	emu, err := s.emulator()
	if err != nil {
		return nil, err
	}

	a, x, y, sp, p, pc, cycles := emu.GetCPUState()
	return &api.CPUStateResponse{
		A:      uint32(a),
		X:      uint32(x),
		Y:      uint32(y),
		Sp:     uint32(sp),
		Status: uint32(p),
		Pc:     uint32(pc),
		Cycles: uint32(cycles),
	}, nil
}

// StreamInput handles incoming controller streams from clients.
func (s *GRPCServer) StreamInput(stream grpc.BidiStreamingServer[api.InputState, api.Empty]) error {
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		state := [8]bool{
			req.A,
			req.B,
			req.Select,
			req.Start,
			req.Up,
			req.Down,
			req.Left,
			req.Right,
		}

		s.mu.Lock()
		switch req.PlayerIndex {
		case 2:
			s.p2State = state
		default:
			// Player 1 when unspecified.
			s.p1State = state
		}
		s.mu.Unlock()
	}
}

// GetP1State returns the current network state for Player 1.
func (s *GRPCServer) GetP1State() [8]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p1State
}

// GetP2State returns the current network state for Player 2.
func (s *GRPCServer) GetP2State() [8]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p2State
}

// Start begins listening for gRPC connections on the given port.
func (s *GRPCServer) Start(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = lis
	s.server = grpc.NewServer()
	api.RegisterControllerServiceServer(s.server, s)

	log.Printf("gRPC server listening on :%d", port)

	go func() {
		if err := s.server.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the gRPC server.
func (s *GRPCServer) Stop() {
	if s.server != nil {
		s.server.GracefulStop()
	}
}
