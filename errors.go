package dxorshift

import (
	"errors"
)

var (
	// ErrInvalidSeed is returned when seed material evaluates to the
	// all-zero state, which is a fixed point for the xoroshiro128+ and
	// xorshift1024* transitions. The generator is left unmodified.
	ErrInvalidSeed = errors.New("seed state must not be all zero")

	// ErrInsufficientSeed is returned when a seed word slice is exhausted
	// before the full state width is filled. No partial state is committed.
	ErrInsufficientSeed = errors.New("not enough seed words")

	// ErrNilGenerator is returned when a Ref is bound to a nil source.
	ErrNilGenerator = errors.New("nil generator")
)
