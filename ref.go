package dxorshift

import (
	"reflect"
)

// noCopy flags by-value copies of the containing struct under go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Ref is a non-owning handle giving a generator strict reference
// semantics. Every operation goes through the one bound instance, so two
// consumers holding the same Ref observe a single shared cursor instead
// of silently forking correlated streams. Ref deliberately exposes no
// duplication operation: a consumer cannot obtain a second independent
// cursor over the bound orbit through the wrapper.
//
// A Ref borrows; it never frees the generator and must not outlive it.
type Ref struct {
	noCopy noCopy
	src    Source
}

// NewRef binds a wrapper to src. ErrNilGenerator if src is nil, including
// a typed nil pointer inside the interface.
func NewRef(src Source) (*Ref, error) {
	if src == nil {
		return nil, ErrNilGenerator
	}
	if v := reflect.ValueOf(src); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, ErrNilGenerator
	}
	return &Ref{src: src}, nil
}

// Front returns the bound generator's current variate.
func (r *Ref) Front() uint64 {
	return r.src.Front()
}

// Advance steps the bound generator.
func (r *Ref) Advance() {
	r.src.Advance()
}

// Empty delegates to the bound generator.
func (r *Ref) Empty() bool {
	return r.src.Empty()
}

// Seed re-seeds the bound generator in place.
func (r *Ref) Seed(seed uint64) {
	r.src.Seed(seed)
}

// Jump forwards to the bound generator when it supports jumping and
// reports whether it did.
func (r *Ref) Jump() bool {
	if j, ok := r.src.(Jumper); ok {
		j.Jump()
		return true
	}
	return false
}

var _ Source = (*Ref)(nil)
