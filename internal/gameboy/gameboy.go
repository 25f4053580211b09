// Package gameboy provides the frame driver for the emulated Game Boy CPU.
// It owns the CPU, memory bus and cartridge, and renders a scanline every
// 456 cycles through a Compositor.
package gameboy

import (
	"sync/atomic"

	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/scheduler"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerScanline is the number of clock cycles spent on each line.
	CyclesPerScanline = 456
	// ScanlinesPerFrame is the number of lines, including vertical blank.
	ScanlinesPerFrame = 154
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = CyclesPerScanline * ScanlinesPerFrame // 70224
)

// Compositor renders a single line of the display. It reads the video
// registers (LCDC, LY) and video memory through the bus.
type Compositor interface {
	RenderScanline(bus mmu.Reader)
}

type nullCompositor struct{}

func (nullCompositor) RenderScanline(mmu.Reader) {}

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU       *cpu.CPU
	MMU       *mmu.MMU
	Scheduler *scheduler.Scheduler

	log.Logger

	compositor Compositor
	frameDone  bool
	frames     uint64

	stopped atomic.Bool
}

// NewGameBoy returns a new GameBoy with the CPU in its post boot state.
// A nil rom leaves the whole address space backed by RAM.
func NewGameBoy(rom []byte, opts ...Opt) *GameBoy {
	var cart *cartridge.Cartridge
	if rom != nil {
		cart = cartridge.NewCartridge(rom)
	}
	g := &GameBoy{
		Scheduler:  scheduler.NewScheduler(),
		Logger:     log.NewNullLogger(),
		compositor: nullCompositor{},
	}
	g.MMU = mmu.NewMMU(cart, mmu.WithLogger(g))
	g.CPU = cpu.New(g.MMU)
	g.CPU.Init()

	g.Scheduler.RegisterEvent(scheduler.ScanlineRender, g.scanline)
	g.Scheduler.RegisterEvent(scheduler.FrameComplete, g.frameComplete)
	g.Scheduler.ScheduleEvent(scheduler.ScanlineRender, CyclesPerScanline)

	for _, opt := range opts {
		opt(g)
	}

	if cart != nil {
		g.Infof("loaded %s", cart)
	}

	return g
}

// scanline renders the current line and advances LY. LY can only be
// cleared by the CPU, so it is advanced with a direct write.
func (g *GameBoy) scanline() {
	g.compositor.RenderScanline(g.MMU)

	ly := (g.MMU.Read(types.LY) + 1) % ScanlinesPerFrame
	g.MMU.WriteDirect(types.LY, ly)
	if ly == 0 {
		g.Scheduler.ScheduleEvent(scheduler.FrameComplete, 0)
	}

	g.Scheduler.ScheduleEvent(scheduler.ScanlineRender, CyclesPerScanline)
}

func (g *GameBoy) frameComplete() {
	g.frames++
	g.frameDone = true
	g.Debugf("frame %d complete at cycle %d", g.frames, g.Scheduler.Cycle())
}

// Frames returns the number of frames completed.
func (g *GameBoy) Frames() uint64 {
	return g.frames
}

// Step executes a single instruction and advances the scheduler by the
// cycles it took. An unimplemented opcode is logged and returned.
func (g *GameBoy) Step() error {
	cycles, err := g.CPU.Step()
	if err != nil {
		g.Errorf("%s", err)
		return err
	}
	g.Scheduler.Tick(uint64(cycles))
	return nil
}

// Stop requests that the current run stops after the instruction being
// executed. It is safe to call from another goroutine. A stop requested
// while nothing is running ends the next run.
func (g *GameBoy) Stop() {
	g.stopped.Store(true)
}

// shouldStop reports, and consumes, a pending stop request or debug
// breakpoint.
func (g *GameBoy) shouldStop() bool {
	if g.stopped.CompareAndSwap(true, false) {
		g.Debugf("stopped at 0x%04X", g.CPU.PC)
		return true
	}
	if g.CPU.DebugBreakpoint {
		g.CPU.DebugBreakpoint = false
		g.Infof("breakpoint at 0x%04X", g.CPU.PC-1)
		return true
	}
	return false
}

// RunToAddress executes at least one instruction, and continues until PC
// reaches target, a stop is requested or an error occurs.
func (g *GameBoy) RunToAddress(target uint16) error {
	for {
		if err := g.Step(); err != nil {
			return err
		}
		if g.CPU.PC == target || g.shouldStop() {
			return nil
		}
	}
}

// RunCycles executes instructions until at least budget cycles have
// elapsed, a stop is requested or an error occurs.
func (g *GameBoy) RunCycles(budget uint64) error {
	end := g.CPU.Clock() + budget
	for g.CPU.Clock() < end {
		if g.shouldStop() {
			return nil
		}
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Frame will step the emulation until every line of the current frame has
// been rendered.
func (g *GameBoy) Frame() error {
	g.frameDone = false
	for !g.frameDone {
		if g.shouldStop() {
			return nil
		}
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run executes frames until a stop is requested or an error occurs.
func (g *GameBoy) Run() error {
	g.Infof("running from 0x%04X", g.CPU.PC)
	for {
		if g.shouldStop() {
			return nil
		}
		if err := g.Step(); err != nil {
			return err
		}
	}
}

// Snapshot returns the current CPU state.
func (g *GameBoy) Snapshot() cpu.Snapshot {
	return g.CPU.Snapshot()
}
