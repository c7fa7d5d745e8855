// Package asm assembles programs directly into a Memory block before
// simulation begins. It has no notion of mnemonics or text syntax: a
// program is already a sequence of opcode/operand words, grouped into
// lines purely for the caller's readability.
package asm

import "bytemachine"

// Loader writes a program into a Memory block one word at a time,
// tracking a write head that starts at 0 and only ever advances. It
// carries no state beyond that head, so successive Assemble calls
// keep appending where the previous one stopped.
type Loader struct {
	head   byteproc.Address
	target *byteproc.Memory
}

// NewLoader returns a Loader that will write into target starting at
// address 0.
func NewLoader(target *byteproc.Memory) *Loader {
	return &Loader{target: target}
}

// Head returns the next address that will be written.
func (l *Loader) Head() byteproc.Address { return l.head }

// Assemble writes a full program: a sequence of lines, each a sequence
// of words (an opcode followed by its operands). Lines carry no
// separator in memory; the grouping is a caller-side convenience only.
func (l *Loader) Assemble(program [][]byteproc.Word) error {
	for _, line := range program {
		if err := l.assembleLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) assembleLine(line []byteproc.Word) error {
	for _, w := range line {
		if err := l.target.WriteAt(l.head, w); err != nil {
			return err
		}
		l.head++
	}
	return nil
}
