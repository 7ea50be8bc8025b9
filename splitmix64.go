package dxorshift

// Golden-ratio increment. Every seed's orbit is a disjoint arithmetic
// progression mod 2^64, so the generator has full period for any seed.
const splitmixGamma = 0x9E3779B97F4A7C15

// mix64 is the splitmix64 output function, a pure avalanche over z.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// SplitMix64 is a 64-bit additive generator with an avalanche output
// stage. It is used standalone and as the seed expander for the wider
// generators in this package. Construct with NewSplitMix64; the zero
// value is not primed and must not be used.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a generator primed from seed. Every seed is
// valid.
func NewSplitMix64(seed uint64) *SplitMix64 {
	g := &SplitMix64{}
	g.Seed(seed)
	return g
}

// Seed reloads state from seed and applies the single primer advance.
func (g *SplitMix64) Seed(seed uint64) {
	g.state = seed
	g.Advance()
}

// Front returns the current variate without mutating state.
func (g *SplitMix64) Front() uint64 {
	return mix64(g.state)
}

// Advance steps to the next state.
func (g *SplitMix64) Advance() {
	g.state += splitmixGamma
}

// Empty always reports false; the sequence is infinite.
func (g *SplitMix64) Empty() bool {
	return false
}

// Dup returns an independent copy holding the identical state. No primer
// advance is re-applied; the copy continues exactly where g stands.
func (g *SplitMix64) Dup() *SplitMix64 {
	c := *g
	return &c
}
