// Package byteproc implements a cycle-accurate simulator for a small
// synchronous machine: a byte-wide register processor, a byte-addressed
// memory, and a request/response bus that mediates every memory
// transaction between them.
package byteproc

import "errors"

// Fatal errors. All of these terminate the simulation; none are
// recovered by the core. See Machine.Run and CPU.Step.
var (
	ErrOutOfRange       = errors.New("byteproc: address out of range")
	ErrRegisterRange    = errors.New("byteproc: register operand out of range")
	ErrBusNotAvailable  = errors.New("byteproc: bus dispatch while not available")
	ErrBusNoData        = errors.New("byteproc: read from empty bus data slot")
	ErrDecode           = errors.New("byteproc: opcode value out of range")
	ErrDivideByZero     = errors.New("byteproc: division by zero")
	ErrOperandUnderflow = errors.New("byteproc: operand buffer underflow")
	ErrOperandOverflow  = errors.New("byteproc: operand buffer overflow")
	ErrStackOverflow    = errors.New("byteproc: stack pointer wrapped below memory")
	ErrStackUnderflow   = errors.New("byteproc: pop from empty stack")
)
