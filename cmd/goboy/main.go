package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
	"golang.org/x/term"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .gz, .zip or .7z)")
	bank := flag.Int("bank", 1, "The ROM bank visible at 0x4000-0x7FFF")
	until := flag.String("until", "", "Run until PC reaches this hex address, then dump the registers")
	cycles := flag.Uint64("cycles", 0, "Run for this many cycles, then dump the registers")
	run := flag.Bool("run", false, "Run until interrupted")
	level := flag.String("log", "info", "The log level. Can be debug, info or error")
	screenshot := flag.String("screenshot", "", "Save the background as a PNG to this file when a run ends")
	green := flag.Bool("green", false, "Shade screenshots with the green palette")
	flag.Parse()

	logger := log.New(*level)
	if *romFile == "" {
		logger.Errorf("no rom file given")
		flag.Usage()
		os.Exit(2)
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}

	base := palette.Palettes[palette.Greyscale]
	if *green {
		base = palette.Palettes[palette.Green]
	}
	background := ppu.NewBackground(base)

	gb := gameboy.NewGameBoy(rom,
		gameboy.WithLogger(logger),
		gameboy.WithBank(*bank),
		gameboy.WithCompositor(background),
	)

	// ctrl-c stops a run instead of killing the debugger
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		for range interrupt {
			gb.Stop()
		}
	}()

	d := &debugger{
		gb:         gb,
		background: background,
		out:        os.Stdout,
		prompt:     term.IsTerminal(int(os.Stdin.Fd())),
	}

	switch {
	case *until != "":
		address, err := strconv.ParseUint(*until, 16, 16)
		if err != nil {
			logger.Errorf("invalid address %q: %s", *until, err)
			os.Exit(2)
		}
		d.finish(gb.RunToAddress(uint16(address)), *screenshot)
	case *cycles > 0:
		d.finish(gb.RunCycles(*cycles), *screenshot)
	case *run:
		d.finish(gb.Run(), *screenshot)
	}

	if err := d.repl(os.Stdin); err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
}

// finish dumps the registers, saves the screenshot if one was asked
// for, and exits.
func (d *debugger) finish(err error, screenshot string) {
	d.dump()
	if screenshot != "" {
		if serr := d.screenshot(screenshot); serr != nil {
			d.gb.Errorf("%s", serr)
			os.Exit(1)
		}
	}
	if err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -rom <file> [options]\n", os.Args[0])
		flag.PrintDefaults()
	}
}
