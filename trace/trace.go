// Package trace renders machine state between ticks for human
// observation. It is a pure observer: every read here peeks at state
// without consuming bus slots or otherwise perturbing the simulation it
// is watching.
package trace

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"bytemachine"
)

// Snapshot is a point-in-time copy of machine state, independent of the
// Machine it was taken from, suitable for deep-printing or diffing.
type Snapshot struct {
	Tick      uint64
	PC        byteproc.Address
	SP        byteproc.Address
	Registers []byteproc.Word
	Flags     byteproc.Flags
	Current   byteproc.Opcode
	Halted    bool
	Bus       byteproc.BusSnapshot
	Memory    []byteproc.Word
}

// Capture takes a Snapshot of m without mutating anything it observes.
// The bus view in particular is a non-consuming peek; capturing never
// takes ownership of a slot.
func Capture(m *byteproc.Machine) Snapshot {
	return Snapshot{
		Tick:      m.Clock.Ticks(),
		PC:        m.CPU.PC(),
		SP:        m.CPU.SP(),
		Registers: m.CPU.Registers(),
		Flags:     m.CPU.FlagsSnapshot(),
		Current:   m.CPU.CurrentInstruction(),
		Halted:    m.CPU.Halted(),
		Bus:       m.Bus.Snapshot(),
		Memory:    m.Memory.Words(),
	}
}

// Renderer prints a Snapshot per tick to an output stream. It owns no
// simulation state of its own; it only watches.
type Renderer struct {
	out    io.Writer
	config spew.ConfigState
}

// NewRenderer returns a Renderer writing human-readable trace lines to
// out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out: out,
		config: spew.ConfigState{
			Indent:                  "  ",
			DisableMethods:          true,
			DisablePointerAddresses: true,
		},
	}
}

// Line prints a single-line tick summary. Memory is left to Dump; it
// does not fit on a line.
func (r *Renderer) Line(s Snapshot) {
	fmt.Fprintf(r.out, "tick=%d pc=%d sp=%d op=%s bus=%s halted=%v regs=%v flags=%+v\n",
		s.Tick, s.PC, s.SP, s.Current, s.Bus.State, s.Halted, s.Registers, s.Flags)
}

// Dump prints a deep, field-by-field rendering of the snapshot, for
// when a single-line summary is not enough detail to debug a run.
func (r *Renderer) Dump(s Snapshot) {
	r.config.Fdump(r.out, s)
}
