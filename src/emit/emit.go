// Package emit provides the scope-tree line buffer that codegen renders
// LLVM IR into: nested Item/Scope/Emitter types that let a function body's
// lines compose as a tree and serialize in document order, plus the
// innermost-first name-to-register lookup codegen needs for `alloca`'d
// locals.
package emit

import "strings"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Item is either a single rendered line or a nested Scope.
type Item interface {
	asString() string
}

type line string

func (l line) asString() string { return string(l) }

// Scope is an ordered sequence of Items plus a name-to-register binding
// table for identifiers declared within it. Grounded on
// original_source/src/codegen.rs's Scope: a BTreeMap<String, u32> of names
// alongside a Vec<Item> of lines/subscopes.
type Scope struct {
	names map[string]uint32
	items []Item
}

func newScope() *Scope {
	return &Scope{names: map[string]uint32{}}
}

func (s *Scope) asString() string {
	return s.AsString()
}

// pushSubscope appends scope as a nested Item.
func (s *Scope) pushSubscope(scope *Scope) {
	s.items = append(s.items, scope)
}

// prependLine inserts line at the front of the item list, used for the
// emitter's global scope so string-constant declarations land ahead of
// whatever function bodies already pushed lines.
func (s *Scope) prependLine(l string) {
	s.items = append([]Item{line(l)}, s.items...)
}

// pushLine appends a single rendered line.
func (s *Scope) pushLine(l string) {
	s.items = append(s.items, line(l))
}

func (s *Scope) newVariable(name string, id uint32) {
	s.names[name] = id
}

func (s *Scope) lookupName(name string) (uint32, bool) {
	id, ok := s.names[name]
	return id, ok
}

// AsString renders every Item in order, one per line.
func (s *Scope) AsString() string {
	parts := make([]string, len(s.items))
	for i1, it := range s.items {
		parts[i1] = it.asString()
	}
	return strings.Join(parts, "\n")
}

// Emitter is a stack of Scopes: pushing opens a new nested scope, popping
// closes it and folds it into its parent as a subscope Item. Grounded on
// original_source/src/codegen.rs's Emitter, translated from a Vec<Scope>
// into a Go slice used as a stack.
type Emitter struct {
	stack []*Scope
}

// NewEmitter returns an Emitter with a single root scope open.
func NewEmitter() *Emitter {
	return &Emitter{stack: []*Scope{newScope()}}
}

// Scope pushes a new, empty innermost scope.
func (e *Emitter) Scope() {
	e.stack = append(e.stack, newScope())
}

// Pop closes the innermost scope and folds it into its parent.
func (e *Emitter) Pop() {
	n := len(e.stack)
	if n == 0 {
		return
	}
	top := e.stack[n-1]
	e.stack = e.stack[:n-1]
	if len(e.stack) > 0 {
		e.stack[len(e.stack)-1].pushSubscope(top)
	}
}

// NewVariable binds name to id in the innermost scope.
func (e *Emitter) NewVariable(name string, id uint32) {
	e.stack[len(e.stack)-1].newVariable(name, id)
}

// LookupName searches innermost-first for name's bound register id.
func (e *Emitter) LookupName(name string) (uint32, bool) {
	for i1 := len(e.stack) - 1; i1 >= 0; i1-- {
		if id, ok := e.stack[i1].lookupName(name); ok {
			return id, true
		}
	}
	return 0, false
}

// PushGlobalLine prepends line to the root scope, used for hoisting
// string-constant declarations ahead of the function bodies that reference
// them.
func (e *Emitter) PushGlobalLine(l string) {
	e.stack[0].prependLine(l)
}

// PushLine appends line to the innermost scope.
func (e *Emitter) PushLine(l string) {
	e.stack[len(e.stack)-1].pushLine(l)
}

// AsString renders the whole tree from the root scope down.
func (e *Emitter) AsString() string {
	return e.stack[0].AsString()
}

// Label renders id as a bijective base-26 letter sequence: 1 → "a",
// 26 → "z", 27 → "aa", per spec's worked example. This differs from
// original_source/src/codegen.rs's letter_of_number, which omits the
// pre-decrement and so maps 1 → "b"; the bijective form below is the one
// the spec's own examples require.
func Label(id uint32) string {
	var buf []byte
	for id > 0 {
		id--
		buf = append(buf, byte('a'+id%26))
		id /= 26
	}
	for i1, j := 0, len(buf)-1; i1 < j; i1, j = i1+1, j-1 {
		buf[i1], buf[j] = buf[j], buf[i1]
	}
	return string(buf)
}
