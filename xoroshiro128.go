package dxorshift

import (
	"math/bits"
)

// Jump polynomial equivalent to 2^64 advances of the 55/14/36 transition.
var xoroshiro128Jump = [2]uint64{0xBEAC0467EBA5FACB, 0xD86B048B86AA9922}

// Xoroshiro128 is the xoroshiro128+ generator with 128 bits of state and
// a period of 2^128-1. The all-zero state is a fixed point and is
// rejected at seed time. Construct with one of the NewXoroshiro128
// constructors; the zero value is degenerate and Advance panics on it.
type Xoroshiro128 struct {
	s0, s1 uint64
}

// NewXoroshiro128 returns a generator whose state is expanded from a
// single 64-bit seed through a fresh SplitMix64, then primed.
func NewXoroshiro128(seed uint64) *Xoroshiro128 {
	g := &Xoroshiro128{}
	g.Seed(seed)
	return g
}

// NewXoroshiro128Pair returns a generator seeded from an explicit state
// pair. ErrInvalidSeed if both words are zero.
func NewXoroshiro128Pair(s0, s1 uint64) (*Xoroshiro128, error) {
	g := &Xoroshiro128{}
	if err := g.SeedPair(s0, s1); err != nil {
		return nil, err
	}
	return g, nil
}

// NewXoroshiro128Words returns a generator seeded from the first two
// elements of words. ErrInsufficientSeed if words holds fewer than two
// elements, ErrInvalidSeed if both consumed words are zero.
func NewXoroshiro128Words(words []uint64) (*Xoroshiro128, error) {
	g := &Xoroshiro128{}
	if err := g.SeedWords(words); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed expands seed through SplitMix64 into both state words, then
// applies the single primer advance. SplitMix64 output is never all zero
// for both draws, so this form cannot fail.
func (g *Xoroshiro128) Seed(seed uint64) {
	sm := NewSplitMix64(seed)
	g.s0 = Uint64(sm)
	g.s1 = Uint64(sm)
	g.Advance()
}

// SeedPair reloads state from an explicit pair and re-primes. Seeding is
// all-or-nothing: on error g is unmodified.
func (g *Xoroshiro128) SeedPair(s0, s1 uint64) error {
	if s0|s1 == 0 {
		return ErrInvalidSeed
	}
	g.s0, g.s1 = s0, s1
	g.Advance()
	return nil
}

// SeedWords consumes the first two elements of words as the state pair.
func (g *Xoroshiro128) SeedWords(words []uint64) error {
	if len(words) < 2 {
		return ErrInsufficientSeed
	}
	return g.SeedPair(words[0], words[1])
}

// Front returns the current variate, the wrapping sum of both state
// words. Pure, no mutation.
func (g *Xoroshiro128) Front() uint64 {
	return g.s0 + g.s1
}

// Advance steps to the next state. The all-zero state is unreachable
// through the seeding surface; hitting it means an invariant was bypassed.
func (g *Xoroshiro128) Advance() {
	if g.s0|g.s1 == 0 {
		panic("dxorshift: Xoroshiro128 advanced with all-zero state")
	}
	s1 := g.s1 ^ g.s0
	g.s0 = bits.RotateLeft64(g.s0, 55) ^ s1 ^ (s1 << 14)
	g.s1 = bits.RotateLeft64(s1, 36)
}

// Empty always reports false.
func (g *Xoroshiro128) Empty() bool {
	return false
}

// Jump advances the state by 2^64 steps, yielding a subsequence that does
// not overlap the next 2^64 outputs of the pre-jump orbit. No primer
// advance follows the write-back.
func (g *Xoroshiro128) Jump() {
	var a0, a1 uint64
	for _, w := range xoroshiro128Jump {
		for b := 0; b < 64; b++ {
			if w&(1<<b) != 0 {
				a0 ^= g.s0
				a1 ^= g.s1
			}
			g.Advance()
		}
	}
	g.s0, g.s1 = a0, a1
}

// Dup returns an independent copy with identical state, no re-priming.
func (g *Xoroshiro128) Dup() *Xoroshiro128 {
	c := *g
	return &c
}

// Streams returns n generators spaced 2^64 draws apart, the first one
// jump ahead of g. Each is safe to hand to its own goroutine. g itself is
// left unchanged.
func (g *Xoroshiro128) Streams(n int) []*Xoroshiro128 {
	out := make([]*Xoroshiro128, 0, n)
	cur := g.Dup()
	for i := 0; i < n; i++ {
		cur.Jump()
		out = append(out, cur)
		cur = cur.Dup()
	}
	return out
}
