package dxorshift

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitMix64_KnownSequence(t *testing.T) {
	want := []uint64{
		4172122716518060777,
		4753009419905186825,
		10875153875153110245,
		13339995472625950266,
		7648109466873647511,
	}
	g := NewSplitMix64(123456)
	for i, w := range want {
		require.Equal(t, w, g.Front(), "variate %d", i)
		g.Advance()
	}
}

func TestSplitMix64_FrontIsPure(t *testing.T) {
	g := NewSplitMix64(42)
	first := g.Front()
	for i := 0; i < 100; i++ {
		require.Equal(t, first, g.Front())
	}
}

func TestSplitMix64_SeedReprimes(t *testing.T) {
	g := NewSplitMix64(123456)
	first := Uint64(g)
	for i := 0; i < 1000; i++ {
		g.Advance()
	}
	g.Seed(123456)
	require.Equal(t, first, g.Front())
}

func TestSplitMix64_DupContinuesWithoutRepriming(t *testing.T) {
	g := NewSplitMix64(7)
	for i := 0; i < 17; i++ {
		g.Advance()
	}
	d := g.Dup()
	for i := 0; i < 64; i++ {
		require.Equal(t, Uint64(g), Uint64(d), "draw %d", i)
	}
	// Advancing the copy must not move the original.
	before := g.Front()
	d.Advance()
	require.Equal(t, before, g.Front())
}

func TestSplitMix64_NeverEmpty(t *testing.T) {
	require.False(t, NewSplitMix64(0).Empty())
}

func BenchmarkSplitMix64(b *testing.B) {
	g := NewSplitMix64(123456)
	b.ReportAllocs()
	b.ResetTimer()
	var v uint64
	for i := 0; i < b.N; i++ {
		v = g.Front()
		g.Advance()
	}
	_ = v
}
