package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nfeld/famicore/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var addr = flag.String("addr", "localhost:50051", "emulator debug server address")

func main() {
	flag.Parse()

	fmt.Printf("vdb - connecting to emulator on %s...\n", *addr)
	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := api.NewControllerServiceClient(conn)
	fmt.Println("Connected. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("(vdb) ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]

		switch {
		case cmd == "help" || cmd == "h":
			fmt.Println("Commands:")
			fmt.Println("  run, c        - Resume execution")
			fmt.Println("  pause, p      - Pause execution")
			fmt.Println("  step, s       - Step one instruction")
			fmt.Println("  regs, r       - Print CPU registers")
			fmt.Println("  x[/N] <addr>  - Examine N bytes of memory (hex address)")
			fmt.Println("  load <file>   - Load a save state file")
			fmt.Println("  reset         - Reset the system")
			fmt.Println("  quit, q       - Exit debugger")
		case cmd == "quit" || cmd == "q" || cmd == "exit":
			return
		case cmd == "pause" || cmd == "p":
			if _, err := client.Pause(context.Background(), &api.Empty{}); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println("Emulator paused.")
			printRegs(client)
		case cmd == "run" || cmd == "c" || cmd == "continue":
			if _, err := client.Resume(context.Background(), &api.Empty{}); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println("Emulator running...")
		case cmd == "step" || cmd == "s":
			if _, err := client.Step(context.Background(), &api.Empty{}); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			printRegs(client)
		case cmd == "regs" || cmd == "r":
			printRegs(client)
		case cmd == "reset":
			if _, err := client.ResetSystem(context.Background(), &api.Empty{}); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case cmd == "load":
			if len(parts) < 2 {
				fmt.Println("Usage: load <file>")
				continue
			}
			if _, err := client.LoadState(context.Background(), &api.StateRequest{Filename: parts[1]}); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case cmd == "x" || strings.HasPrefix(cmd, "x/"):
			examine(client, parts)
		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}

// examine handles "x <addr>" and "x/N <addr>" in gdb fashion.
func examine(client api.ControllerServiceClient, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: x <addr> or x/<count> <addr>")
		return
	}

	count := 1
	if countStr, ok := strings.CutPrefix(parts[0], "x/"); ok {
		n, err := strconv.Atoi(countStr)
		if err != nil || n <= 0 {
			fmt.Printf("Invalid count: %s\n", countStr)
			return
		}
		count = n
	}

	addrStr := strings.TrimPrefix(parts[1], "0x")
	addr, err := strconv.ParseUint(addrStr, 16, 16)
	if err != nil {
		fmt.Printf("Invalid address: %s\n", parts[1])
		return
	}

	res, err := client.ReadMemoryBlock(context.Background(), &api.MemoryBlockRequest{
		Address: uint32(addr),
		Size:    uint32(count),
	})
	if err != nil {
		fmt.Printf("Error reading memory: %v\n", err)
		return
	}
	printHexDump(uint16(addr), res.Data)
}

func printRegs(client api.ControllerServiceClient) {
	state, err := client.GetCPUState(context.Background(), &api.Empty{})
	if err != nil {
		fmt.Printf("Error getting CPU state: %v\n", err)
		return
	}
	fmt.Printf("A: %02X  X: %02X  Y: %02X  SP: %02X  PC: %04X  Status: %08b\n",
		state.A, state.X, state.Y, state.Sp, state.Pc, state.Status)
}

func printHexDump(startAddr uint16, data []byte) {
	for i := 0; i < len(data); i += 16 {
		fmt.Printf("%04X:", startAddr+uint16(i))
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		for j := i; j < end; j++ {
			fmt.Printf(" %02X", data[j])
		}
		fmt.Println()
	}
}
