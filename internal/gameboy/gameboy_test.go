package gameboy

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// loop is JP 0x0100, which takes 16 cycles.
var loop = []uint8{0xC3, 0x00, 0x01}

// newTestGameBoy returns a cartridge-less GameBoy with program loaded at
// the entry point.
func newTestGameBoy(program []uint8, opts ...Opt) *GameBoy {
	g := NewGameBoy(nil, opts...)
	for i, b := range program {
		g.MMU.Write(cpu.EntryPoint+uint16(i), b)
	}
	return g
}

type recordingCompositor struct {
	lines []uint8
	lcdc  []uint8
}

func (r *recordingCompositor) RenderScanline(bus mmu.Reader) {
	r.lines = append(r.lines, bus.Read(types.LY))
	r.lcdc = append(r.lcdc, bus.Read(types.LCDC))
}

func TestGameBoy_Scanline(t *testing.T) {
	g := newTestGameBoy(loop)
	if err := g.RunCycles(CyclesPerScanline - 16); err != nil {
		t.Fatal(err)
	}
	if ly := g.MMU.Read(types.LY); ly != 0 {
		t.Errorf("expected LY 0 before the first scanline, got %d", ly)
	}
	if err := g.RunCycles(16); err != nil {
		t.Fatal(err)
	}
	if ly := g.MMU.Read(types.LY); ly != 1 {
		t.Errorf("expected LY 1 after %d cycles, got %d", g.CPU.Clock(), ly)
	}
}

func TestGameBoy_Frame(t *testing.T) {
	rec := &recordingCompositor{}
	g := newTestGameBoy(loop, WithCompositor(rec))
	g.MMU.Write(types.LCDC, 0x91)

	if err := g.Frame(); err != nil {
		t.Fatal(err)
	}
	if g.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", g.Frames())
	}
	if clock := g.CPU.Clock(); clock < CyclesPerFrame || clock >= CyclesPerFrame+16 {
		t.Errorf("expected frame to end at cycle %d, got %d", CyclesPerFrame, clock)
	}
	if ly := g.MMU.Read(types.LY); ly != 0 {
		t.Errorf("expected LY to wrap to 0, got %d", ly)
	}
	if len(rec.lines) != ScanlinesPerFrame {
		t.Fatalf("expected %d scanlines, got %d", ScanlinesPerFrame, len(rec.lines))
	}
	for i, ly := range rec.lines {
		if ly != uint8(i) {
			t.Errorf("scanline %d rendered with LY %d", i, ly)
		}
		if rec.lcdc[i] != 0x91 {
			t.Errorf("scanline %d: expected LCDC 0x91, got 0x%02X", i, rec.lcdc[i])
		}
	}

	if err := g.Frame(); err != nil {
		t.Fatal(err)
	}
	if g.Frames() != 2 || len(rec.lines) != 2*ScanlinesPerFrame {
		t.Errorf("expected 2 frames, got %d (%d lines)", g.Frames(), len(rec.lines))
	}
}

func TestGameBoy_RunToAddress(t *testing.T) {
	g := newTestGameBoy([]uint8{0x00, 0x00, 0x00, 0xC3, 0x00, 0x01})
	if err := g.RunToAddress(0x0103); err != nil {
		t.Fatal(err)
	}
	if g.CPU.PC != 0x0103 || g.CPU.Clock() != 12 {
		t.Errorf("expected PC 0x0103 after 12 cycles, got 0x%04X after %d", g.CPU.PC, g.CPU.Clock())
	}

	// runs at least one instruction even when already at the target
	if err := g.RunToAddress(0x0103); err != nil {
		t.Fatal(err)
	}
	if g.CPU.PC != 0x0103 || g.CPU.Clock() != 12+16+12 {
		t.Errorf("expected PC 0x0103 after 40 cycles, got 0x%04X after %d", g.CPU.PC, g.CPU.Clock())
	}
}

func TestGameBoy_RunCycles(t *testing.T) {
	g := newTestGameBoy(loop)
	if err := g.RunCycles(1000); err != nil {
		t.Fatal(err)
	}
	// 63 * 16 = 1008
	if g.CPU.Clock() != 1008 {
		t.Errorf("expected clock 1008, got %d", g.CPU.Clock())
	}
	if err := g.RunCycles(0); err != nil {
		t.Fatal(err)
	}
	if g.CPU.Clock() != 1008 {
		t.Errorf("expected an empty budget to run nothing, got clock %d", g.CPU.Clock())
	}
}

func TestGameBoy_Unimplemented(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGameBoy([]uint8{0x00, 0x76}, WithLogger(log.NewWithOutput(&buf, "error")))

	err := g.Run()
	var unimplemented *cpu.UnimplementedOpcodeError
	if !errors.As(err, &unimplemented) {
		t.Fatalf("expected *cpu.UnimplementedOpcodeError, got %v", err)
	}
	if unimplemented.Opcode != 0x76 || unimplemented.PC != 0x0101 {
		t.Errorf("unexpected error contents %+v", unimplemented)
	}
	if g.CPU.PC != 0x0101 || g.CPU.Clock() != 4 {
		t.Errorf("expected PC 0x0101 after 4 cycles, got 0x%04X after %d", g.CPU.PC, g.CPU.Clock())
	}
	if out := buf.String(); !strings.Contains(out, "level=error") || !strings.Contains(out, "0x76") {
		t.Errorf("expected the error to be logged, got %q", out)
	}

	if err := g.RunToAddress(0x0200); !errors.Is(err, cpu.ErrUnimplemented) {
		t.Errorf("expected the error to repeat, got %v", err)
	}
}

func TestGameBoy_Stop(t *testing.T) {
	g := newTestGameBoy(loop)

	// a pending stop ends the next run before it executes anything
	g.Stop()
	if err := g.Run(); err != nil {
		t.Fatal(err)
	}
	if g.CPU.Clock() != 0 {
		t.Errorf("expected no instructions to run, got clock %d", g.CPU.Clock())
	}

	done := make(chan error)
	go func() {
		done <- g.Run()
	}()
	time.Sleep(10 * time.Millisecond)
	g.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestGameBoy_Debug(t *testing.T) {
	// LD B, B; JP 0x0100
	g := newTestGameBoy([]uint8{0x40, 0xC3, 0x00, 0x01}, Debug())
	if err := g.Run(); err != nil {
		t.Fatal(err)
	}
	if g.CPU.PC != 0x0101 {
		t.Errorf("expected to break at 0x0101, got 0x%04X", g.CPU.PC)
	}
}

func TestGameBoy_Cartridge(t *testing.T) {
	rom := make([]byte, 4*0x4000)
	for bank := 0; bank < 4; bank++ {
		rom[bank*0x4000] = uint8(0xB0 + bank)
	}
	copy(rom[0x100:], loop)

	g := NewGameBoy(rom)
	if g.MMU.Read(0x4000) != 0xB1 {
		t.Errorf("expected bank 1 by default, got 0x%02X", g.MMU.Read(0x4000))
	}
	if err := g.RunCycles(CyclesPerScanline); err != nil {
		t.Fatal(err)
	}
	if g.CPU.PC != 0x0100 {
		t.Errorf("expected to loop at 0x0100, got 0x%04X", g.CPU.PC)
	}

	g = NewGameBoy(rom, WithBank(3))
	if g.MMU.Read(0x4000) != 0xB3 {
		t.Errorf("expected bank 3, got 0x%02X", g.MMU.Read(0x4000))
	}

	g = NewGameBoy(rom, WithBank(-1))
	if g.MMU.Read(0x4000) != 0xB1 {
		t.Errorf("expected an invalid bank to be ignored, got 0x%02X", g.MMU.Read(0x4000))
	}
}

func TestGameBoy_Snapshot(t *testing.T) {
	g := newTestGameBoy(loop)
	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	s := g.Snapshot()
	if s.PC != 0x0100 || s.SP != 0xFFFE || s.Clock != 16 {
		t.Errorf("unexpected snapshot %+v", s)
	}
}
