package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

const help = "s - step, r address - run to address, d - dump registers, f - run, p file - save screenshot, q - quit"

// debugger is a line based front-end over a GameBoy.
type debugger struct {
	gb         *gameboy.GameBoy
	background *ppu.Background
	out        io.Writer

	// prompt prints the current instruction and the help line before
	// every command. It is only wanted when a person is typing.
	prompt bool
}

// repl reads commands from in until q or EOF. Emulation errors are
// reported and leave the debugger running; only read errors are returned.
func (d *debugger) repl(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if d.prompt {
			d.current()
			fmt.Fprintln(d.out, help)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := d.exec(strings.TrimSpace(scanner.Text())); quit {
			return nil
		}
	}
}

// exec executes a single command, and reports whether the debugger
// should quit.
func (d *debugger) exec(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "s":
		d.report(d.gb.Step())
	case "r":
		if len(fields) != 2 {
			fmt.Fprintln(d.out, "Invalid input")
			return false
		}
		address, err := strconv.ParseUint(fields[1], 16, 16)
		if err != nil {
			fmt.Fprintln(d.out, "Invalid input")
			return false
		}
		d.report(d.gb.RunToAddress(uint16(address)))
	case "d":
		d.dump()
	case "f":
		d.report(d.gb.Run())
	case "p":
		if len(fields) != 2 {
			fmt.Fprintln(d.out, "Invalid input")
			return false
		}
		d.report(d.screenshot(strings.Fields(line)[1]))
	case "q":
		return true
	default:
		fmt.Fprintln(d.out, help)
	}
	return false
}

func (d *debugger) report(err error) {
	if err != nil {
		fmt.Fprintln(d.out, err)
	}
}

// current prints the address and mnemonic of the next instruction.
func (d *debugger) current() {
	pc := d.gb.CPU.PC
	opcode := d.gb.MMU.Read(pc)
	name := cpu.Disassemble(opcode)
	if opcode == 0xCB {
		name = cpu.DisassembleCB(d.gb.MMU.Read(pc + 1))
	}
	fmt.Fprintf(d.out, "%04X %02X %s\n", pc, opcode, name)
}

// screenshot saves the last rendered background frame.
func (d *debugger) screenshot(filename string) error {
	if d.background == nil {
		return fmt.Errorf("no compositor attached")
	}
	return utils.SaveImage(filename, d.background.Image())
}

func (d *debugger) dump() {
	fmt.Fprintln(d.out, d.gb.Snapshot())
}
