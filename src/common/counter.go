package common

import "sync"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Counter is a mutex-guarded, strictly monotonic source of fresh ids. One
// Counter is shared by MIR lowering (type-variable ids) and codegen (SSA
// register and label ids) for the lifetime of a single compilation; it is
// never reset mid-compilation. Injected as a value rather than kept behind
// a package-level global, per the single-threaded, single-compilation
// contract this compiler runs under.
type Counter struct {
	mx sync.Mutex
	n  uint32
}

// NewCounter returns a Counter starting at 0; the first call to Next
// returns 1.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the next fresh id, starting from 1.
func (c *Counter) Next() uint32 {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.n++
	return c.n
}

// NextType returns a fresh Unknown type variable.
func (c *Counter) NextType() Type {
	return Unknown(c.Next())
}
