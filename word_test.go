package byteproc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bytemachine"
)

func TestAddMatchesNativeModulo(t *testing.T) {
	for x := 0; x < 256; x += 7 {
		for y := 0; y < 256; y += 11 {
			got := byteproc.Add(byteproc.Word(x), byteproc.Word(y))
			require.Equal(t, byteproc.Word((x+y)%256), got)
		}
	}
}

func TestSubMatchesNativeModulo(t *testing.T) {
	for x := 0; x < 256; x += 7 {
		for y := 0; y < 256; y += 11 {
			got := byteproc.Sub(byteproc.Word(x), byteproc.Word(y))
			want := byteproc.Word((x - y + 256*256) % 256)
			require.Equal(t, want, got)
		}
	}
}

func TestMulMatchesNativeModulo(t *testing.T) {
	for x := 0; x < 256; x += 13 {
		for y := 0; y < 256; y += 17 {
			got := byteproc.Mul(byteproc.Word(x), byteproc.Word(y))
			require.Equal(t, byteproc.Word((x*y)%256), got)
		}
	}
}

func TestDivFloorsAndRejectsZero(t *testing.T) {
	for x := 0; x < 256; x += 7 {
		for y := 1; y < 256; y += 11 {
			got, err := byteproc.Div(byteproc.Word(x), byteproc.Word(y))
			require.NoError(t, err)
			require.Equal(t, byteproc.Word(x/y), got)
		}
	}

	_, err := byteproc.Div(10, 0)
	require.ErrorIs(t, err, byteproc.ErrDivideByZero)
}

func TestSubAddRoundTripsThroughZero(t *testing.T) {
	for x := 0; x < 256; x++ {
		w := byteproc.Word(x)
		require.Equal(t, byteproc.Word(0), byteproc.Add(w, byteproc.Sub(0, w)))
	}
}

func TestCompareIsTotalAndAntisymmetric(t *testing.T) {
	for x := 0; x < 256; x += 3 {
		for y := 0; y < 256; y += 5 {
			a, b := byteproc.Word(x), byteproc.Word(y)
			switch byteproc.Compare(a, b) {
			case byteproc.Equal:
				require.Equal(t, a, b)
				require.Equal(t, byteproc.Equal, byteproc.Compare(b, a))
			case byteproc.Less:
				require.NotEqual(t, a, b)
				require.Equal(t, byteproc.Greater, byteproc.Compare(b, a))
			case byteproc.Greater:
				require.NotEqual(t, a, b)
				require.Equal(t, byteproc.Less, byteproc.Compare(b, a))
			}
		}
	}
}
