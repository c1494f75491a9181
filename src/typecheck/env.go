// Package typecheck implements the two-phase checker: global signatures
// first (enabling forward references and mutual recursion), then per
// function a Hindley-Milner-style constraint generation and unification
// pass over mir.Expr/mir.Stmt, with the result substituted back into the
// tree in place.
package typecheck

import "slc/src/common"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Env is a stack of lexical scopes, each a name-to-type binding set,
// innermost last. A native typed slice, the same shape emit.Emitter keeps
// its own scope stack in, rather than a second generic stack type: nothing
// here needs the mutex or interface{} boxing a shared Stack would carry.
type Env struct {
	frames []map[string]common.Type
}

// NewEnv returns an Env with a single root scope, used for phase 1's
// global signatures.
func NewEnv() *Env {
	return &Env{frames: []map[string]common.Type{{}}}
}

// Scope pushes a new, empty innermost scope.
func (e *Env) Scope() {
	e.frames = append(e.frames, map[string]common.Type{})
}

// Unscope pops the innermost scope.
func (e *Env) Unscope() {
	if n := len(e.frames); n > 0 {
		e.frames = e.frames[:n-1]
	}
}

// Depth returns the current number of open scopes.
func (e *Env) Depth() int { return len(e.frames) }

// TruncateTo pops scopes until only n remain. Used by checkFn to discard a
// function's parameter scope along with any branch scopes the §9 non-
// popping If quirk left behind, so they cannot leak into the next
// function's Lookup.
func (e *Env) TruncateTo(n int) {
	if n < len(e.frames) {
		e.frames = e.frames[:n]
	}
}

// Bind inserts name into the innermost scope.
func (e *Env) Bind(name string, t common.Type) {
	e.frames[len(e.frames)-1][name] = t
}

// Lookup searches innermost-first for name, returning its type and
// whether it was found.
func (e *Env) Lookup(name string) (common.Type, bool) {
	for i1 := len(e.frames) - 1; i1 >= 0; i1-- {
		if t, ok := e.frames[i1][name]; ok {
			return t, true
		}
	}
	return common.Type{}, false
}
