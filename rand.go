// Package dxorshift implements deterministic xorshift-family pseudorandom
// generators with explicit seeding, jump-ahead subsequence support and
// reference-semantics wrappers. The algorithms follow the splitmix64,
// xoroshiro128+ and xorshift1024* generators described at
// https://prng.di.unimi.it .
//
// None of the generators in this package are cryptographically secure.
// They target high-throughput statistical and simulation workloads.
package dxorshift

import (
	"io"
)

// Inclusive output bounds shared by every generator in this package.
const (
	Min uint64 = 0
	Max uint64 = 1<<64 - 1
)

// Source is the capability contract every generator in this package
// satisfies. Front returns the current variate without mutating state,
// Advance steps to the next state, Seed reloads state from a single
// 64-bit value and re-primes. Empty reports whether the sequence is
// exhausted and is always false for the infinite generators here.
//
// A Source is a mutable cursor over one orbit. Sharing a single Source
// between goroutines without external synchronization is undefined; give
// each goroutine its own instance, derived via Jump where available.
type Source interface {
	Front() uint64
	Advance()
	Empty() bool
	Seed(seed uint64)
}

// Jumper is implemented by generators that can leap their state ahead by
// a large fixed number of advances to produce a non-overlapping
// subsequence.
type Jumper interface {
	Jump()
}

// Uint64 draws the current variate and advances the source.
func Uint64(s Source) uint64 {
	v := s.Front()
	s.Advance()
	return v
}

// Uint32 draws a 32-bit value from the high bits of one variate.
func Uint32(s Source) uint32 {
	return uint32(Uint64(s) >> 32)
}

// Int draws a non-negative int.
func Int(s Source) int {
	u := uint(Uint64(s))
	return int(u << 1 >> 1) // clear the sign bit at the platform width
}

// Float64 draws a float in [0, 1) with 53 bits of precision.
func Float64(s Source) float64 {
	return float64(Uint64(s)>>11) / (1 << 53)
}

// Uint64n draws an unbiased value in [0, n) by rejection. Panics if n is 0.
func Uint64n(s Source, n uint64) uint64 {
	if n == 0 {
		panic("dxorshift: Uint64n with n == 0")
	}
	if n&(n-1) == 0 {
		return Uint64(s) & (n - 1)
	}
	// Reject draws from the tail that would bias the modulus.
	max := Max - Max%n
	v := Uint64(s)
	for v >= max {
		v = Uint64(s)
	}
	return v % n
}

// Read fills p with variate bytes, little-endian, eight at a time. The
// returned error is always nil; the signature matches io.Reader so a
// Source can stand in where a byte stream is expected.
func Read(s Source, p []byte) (n int, err error) {
	n = len(p)
	for len(p) >= 8 {
		v := Uint64(s)
		p[0] = byte(v)
		p[1] = byte(v >> 8)
		p[2] = byte(v >> 16)
		p[3] = byte(v >> 24)
		p[4] = byte(v >> 32)
		p[5] = byte(v >> 40)
		p[6] = byte(v >> 48)
		p[7] = byte(v >> 56)
		p = p[8:]
	}
	if len(p) > 0 {
		v := Uint64(s)
		for i := range p {
			p[i] = byte(v >> (8 * i))
		}
	}
	return n, nil
}

// Reader adapts a Source to io.Reader.
type Reader struct {
	Src Source
}

var _ io.Reader = (*Reader)(nil)

func (r *Reader) Read(p []byte) (int, error) {
	return Read(r.Src, p)
}
