package dxorshift

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint64_DrawsAndAdvances(t *testing.T) {
	g := NewSplitMix64(123456)
	require.Equal(t, uint64(4172122716518060777), Uint64(g))
	require.Equal(t, uint64(4753009419905186825), Uint64(g))
}

func TestUint32_HighBits(t *testing.T) {
	g := NewSplitMix64(123456)
	v := g.Front()
	require.Equal(t, uint32(v>>32), Uint32(g))
}

func TestInt_NonNegative(t *testing.T) {
	g := NewXoroshiro128(1)
	for i := 0; i < 4096; i++ {
		require.GreaterOrEqual(t, Int(g), 0)
	}
}

func TestFloat64_HalfOpenUnitInterval(t *testing.T) {
	g := NewXorshift1024(2)
	for i := 0; i < 4096; i++ {
		f := Float64(g)
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestUint64n(t *testing.T) {
	g := NewXoroshiro128(3)
	for _, n := range []uint64{1, 2, 3, 10, 1 << 20, 1<<63 + 1} {
		for i := 0; i < 512; i++ {
			require.Less(t, Uint64n(g, n), n)
		}
	}
	require.Panics(t, func() { Uint64n(g, 0) })
}

func TestRead_MatchesVariates(t *testing.T) {
	g := NewSplitMix64(123456)
	want := make([]byte, 16)
	binary.LittleEndian.PutUint64(want[0:], g.Dup().Front())
	d := g.Dup()
	d.Advance()
	binary.LittleEndian.PutUint64(want[8:], d.Front())

	got := make([]byte, 16)
	n, err := Read(g, got)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	require.Equal(t, want, got)
}

func TestRead_ShortTail(t *testing.T) {
	g := NewSplitMix64(9)
	v := g.Front()
	p := make([]byte, 3)
	n, err := Read(g, p)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{byte(v), byte(v >> 8), byte(v >> 16)}, p)
}

func TestReader(t *testing.T) {
	a := NewXoroshiro128(77)
	b := a.Dup()

	r := &Reader{Src: a}
	got := make([]byte, 32)
	_, err := io.ReadFull(r, got)
	require.NoError(t, err)

	want := make([]byte, 32)
	_, err = Read(b, want)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func BenchmarkFloat64(b *testing.B) {
	g := NewXoroshiro128(123456)
	b.ReportAllocs()
	b.ResetTimer()
	var f float64
	for i := 0; i < b.N; i++ {
		f = Float64(g)
	}
	_ = f
}

func BenchmarkRead(b *testing.B) {
	g := NewXoroshiro128(123456)
	p := make([]byte, 4096)
	b.SetBytes(int64(len(p)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Read(g, p)
	}
}
