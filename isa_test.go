package byteproc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bytemachine"
)

func TestOperandCountTable(t *testing.T) {
	cases := map[byteproc.Opcode]int{
		byteproc.OpHalt:       0,
		byteproc.OpNull:       0,
		byteproc.OpLoadImm:    2,
		byteproc.OpLoadMem:    2,
		byteproc.OpCopy:       2,
		byteproc.OpAdd:        3,
		byteproc.OpSub:        3,
		byteproc.OpMul:        3,
		byteproc.OpDiv:        3,
		byteproc.OpJump:       1,
		byteproc.OpJumpIfZero: 1,
		byteproc.OpPush:       1,
		byteproc.OpPop:        1,
		byteproc.OpCompare:    2,
		byteproc.OpIncrement:  1,
		byteproc.OpDecrement:  1,
		byteproc.OpRet:        0,
	}
	for op, want := range cases {
		got, err := byteproc.OperandCount(op)
		require.NoError(t, err)
		require.Equal(t, want, got, op.String())
	}
}

func TestOperandCountRejectsSentinelAndBeyond(t *testing.T) {
	_, err := byteproc.OperandCount(byteproc.OpCount)
	require.ErrorIs(t, err, byteproc.ErrDecode)

	_, err = byteproc.OperandCount(byteproc.Opcode(200))
	require.ErrorIs(t, err, byteproc.ErrDecode)
}

func TestDecodeOpcodeRoundTrip(t *testing.T) {
	for v := byteproc.Word(0); v < byteproc.Word(byteproc.OpCount); v++ {
		op, err := byteproc.DecodeOpcode(v)
		require.NoError(t, err)
		require.Equal(t, byteproc.Opcode(v), op)
	}

	_, err := byteproc.DecodeOpcode(byteproc.Word(byteproc.OpCount))
	require.ErrorIs(t, err, byteproc.ErrDecode)
}
