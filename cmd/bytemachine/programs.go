package main

import "bytemachine"

// demoProgram is one of the canned programs the CLI can load and run.
type demoProgram struct {
	name        string
	description string
	program     [][]byteproc.Word
}

var demoPrograms = []demoProgram{
	{
		name:        "add",
		description: "loads two words and adds them",
		program: [][]byteproc.Word{
			{byteproc.Word(byteproc.OpLoadImm), 0, 1},
			{byteproc.Word(byteproc.OpLoadImm), 1, 3},
			{byteproc.Word(byteproc.OpAdd), 2, 0, 1},
			{byteproc.Word(byteproc.OpHalt)},
		},
	},
	{
		name:        "overflow",
		description: "adds two words that wrap modulo 256",
		program: [][]byteproc.Word{
			{byteproc.Word(byteproc.OpLoadImm), 0, 200},
			{byteproc.Word(byteproc.OpLoadImm), 1, 100},
			{byteproc.Word(byteproc.OpAdd), 2, 0, 1},
			{byteproc.Word(byteproc.OpHalt)},
		},
	},
	{
		name:        "factorial",
		description: "computes 5! by repeated multiplication",
		program: [][]byteproc.Word{
			{byteproc.Word(byteproc.OpLoadImm), 0, 5},
			{byteproc.Word(byteproc.OpLoadImm), 1, 1},
			{byteproc.Word(byteproc.OpLoadImm), 2, 0},
			{byteproc.Word(byteproc.OpMul), 1, 1, 0},
			{byteproc.Word(byteproc.OpDecrement), 0},
			{byteproc.Word(byteproc.OpCompare), 0, 2},
			{byteproc.Word(byteproc.OpJumpIfZero), 22},
			{byteproc.Word(byteproc.OpJump), 9},
			{byteproc.Word(byteproc.OpHalt)},
		},
	},
	{
		name:        "fib",
		description: "pushes the first twelve Fibonacci numbers (0 to 89) onto the stack",
		program: [][]byteproc.Word{
			{byteproc.Word(byteproc.OpLoadImm), 3, 10},
			{byteproc.Word(byteproc.OpLoadImm), 1, 0},
			{byteproc.Word(byteproc.OpLoadImm), 2, 1},
			{byteproc.Word(byteproc.OpLoadImm), 4, 0},
			{byteproc.Word(byteproc.OpPush), 1},
			{byteproc.Word(byteproc.OpPush), 2},
			{byteproc.Word(byteproc.OpAdd), 0, 1, 2},
			{byteproc.Word(byteproc.OpPush), 0},
			{byteproc.Word(byteproc.OpCopy), 1, 2},
			{byteproc.Word(byteproc.OpCopy), 2, 0},
			{byteproc.Word(byteproc.OpDecrement), 3},
			{byteproc.Word(byteproc.OpCompare), 3, 4},
			{byteproc.Word(byteproc.OpJumpIfZero), 37},
			{byteproc.Word(byteproc.OpJump), 16},
			{byteproc.Word(byteproc.OpHalt)},
		},
	},
	{
		name:        "call",
		description: "calls a subroutine that doubles R0 and returns",
		program: [][]byteproc.Word{
			{byteproc.Word(byteproc.OpLoadImm), 0, 33},
			{byteproc.Word(byteproc.OpLoadImm), 5, 2},
			{byteproc.Word(byteproc.OpLoadImm), 6, 13},
			{byteproc.Word(byteproc.OpPush), 6},
			{byteproc.Word(byteproc.OpJump), 14},
			{byteproc.Word(byteproc.OpHalt)},
			{byteproc.Word(byteproc.OpMul), 0, 0, 5},
			{byteproc.Word(byteproc.OpRet)},
		},
	},
	{
		name:        "halt",
		description: "empty program; the zero word decodes as Halt",
		program:     nil,
	},
}

func findDemo(name string) (demoProgram, bool) {
	for _, d := range demoPrograms {
		if d.name == name {
			return d, true
		}
	}
	return demoProgram{}, false
}
