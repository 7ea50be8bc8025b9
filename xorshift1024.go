package dxorshift

// Output scrambler for xorshift1024*.
const xorshift1024Mult = 1181783497276652981

// Jump polynomial equivalent to 2^512 advances.
var xorshift1024Jump = [16]uint64{
	0x84242F96ECA9C41D, 0xA3C65B8776F96855, 0x5B34A39F070B5837, 0x4489AFFCE4F31A1E,
	0x2FFEEB0A48316F40, 0xDC2D9891FE68C022, 0x3659132BB12FEA70, 0xAAC17D8EFA43CAB8,
	0xC4CB815590989B13, 0x5EE975283D71C93B, 0x691548C86C1BD540, 0x7910C41D10A1E6A5,
	0x0B5FC64563B3E2A8, 0x047F7684E9FC949D, 0xB99181F2D8F685CA, 0x284600E3F30E38C3,
}

// Xorshift1024 is the xorshift1024* generator: 16 words of state walked
// by a rotating head index, period 2^1024-1. The all-zero state is a
// fixed point and is rejected at seed time. Construct with one of the
// NewXorshift1024 constructors; the zero value is degenerate and Advance
// panics on it.
type Xorshift1024 struct {
	w [16]uint64
	p int
}

// NewXorshift1024 returns a generator whose 16 state words are expanded
// from a single 64-bit seed through a fresh SplitMix64, then primed.
func NewXorshift1024(seed uint64) *Xorshift1024 {
	g := &Xorshift1024{}
	g.Seed(seed)
	return g
}

// NewXorshift1024Array returns a generator seeded from an explicit
// 16-word state. ErrInvalidSeed if every word is zero.
func NewXorshift1024Array(state [16]uint64) (*Xorshift1024, error) {
	g := &Xorshift1024{}
	if err := g.SeedArray(state); err != nil {
		return nil, err
	}
	return g, nil
}

// NewXorshift1024Words returns a generator seeded from the first 16
// elements of words. ErrInsufficientSeed if words holds fewer than 16
// elements, ErrInvalidSeed if all consumed words are zero.
func NewXorshift1024Words(words []uint64) (*Xorshift1024, error) {
	g := &Xorshift1024{}
	if err := g.SeedWords(words); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed expands seed through SplitMix64 into all 16 words, resets the
// head index and applies the single primer advance. Cannot fail.
func (g *Xorshift1024) Seed(seed uint64) {
	sm := NewSplitMix64(seed)
	for i := range g.w {
		g.w[i] = Uint64(sm)
	}
	g.p = 0
	g.Advance()
}

// SeedArray reloads state from an explicit 16-word array and re-primes.
// Seeding is all-or-nothing: on error g is unmodified.
func (g *Xorshift1024) SeedArray(state [16]uint64) error {
	var or uint64
	for _, w := range state {
		or |= w
	}
	if or == 0 {
		return ErrInvalidSeed
	}
	g.w = state
	g.p = 0
	g.Advance()
	return nil
}

// SeedWords consumes the first 16 elements of words as the state array.
func (g *Xorshift1024) SeedWords(words []uint64) error {
	if len(words) < 16 {
		return ErrInsufficientSeed
	}
	var state [16]uint64
	copy(state[:], words)
	return g.SeedArray(state)
}

// Front returns the current variate, the scrambled word under the head
// index. Pure, no mutation.
func (g *Xorshift1024) Front() uint64 {
	return g.w[g.p] * xorshift1024Mult
}

// Advance steps the head to the next word and folds the previous word
// into it. Panics on the all-zero state, which is unreachable through
// the seeding surface.
func (g *Xorshift1024) Advance() {
	var or uint64
	for _, w := range g.w {
		or |= w
	}
	if or == 0 {
		panic("dxorshift: Xorshift1024 advanced with all-zero state")
	}
	s0 := g.w[g.p]
	g.p = (g.p + 1) & 15
	s1 := g.w[g.p]
	s1 ^= s1 << 31
	g.w[g.p] = s1 ^ s0 ^ (s1 >> 11) ^ (s0 >> 30)
}

// Empty always reports false.
func (g *Xorshift1024) Empty() bool {
	return false
}

// Jump advances the state by 2^512 steps. Unlike Xoroshiro128.Jump, one
// extra advance follows the accumulator write-back; the reference
// algorithm behaves this way and output compatibility requires keeping
// it.
func (g *Xorshift1024) Jump() {
	var t [16]uint64
	for _, w := range xorshift1024Jump {
		for b := 0; b < 64; b++ {
			if w&(1<<b) != 0 {
				for j := 0; j < 16; j++ {
					t[j] ^= g.w[(j+g.p)&15]
				}
			}
			g.Advance()
		}
	}
	for j := 0; j < 16; j++ {
		g.w[(j+g.p)&15] = t[j]
	}
	g.Advance()
}

// Dup returns an independent copy with identical state and head index,
// no re-priming.
func (g *Xorshift1024) Dup() *Xorshift1024 {
	c := *g
	return &c
}

// Streams returns n generators spaced 2^512 draws apart, the first one
// jump ahead of g. Each is safe to hand to its own goroutine. g itself
// is left unchanged.
func (g *Xorshift1024) Streams(n int) []*Xorshift1024 {
	out := make([]*Xorshift1024, 0, n)
	cur := g.Dup()
	for i := 0; i < n; i++ {
		cur.Jump()
		out = append(out, cur)
		cur = cur.Dup()
	}
	return out
}
