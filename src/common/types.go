// Package common holds the pieces shared across every compiler stage: the
// Type lattice, literal and named-slot shapes, the Typed contract, and the
// fresh-id counter that both MIR lowering and codegen draw from.
package common

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Kind tags the variant held by a Type value.
type Kind int

// The type lattice: an unresolved placeholder, the three concrete scalar
// types, and function types built out of them.
const (
	KUnknown Kind = iota
	KBool
	KInt
	KString
	KFn
)

// Type is a tagged union over the language's small type lattice. Equality
// is structural (see Equal): two Types compare equal when their Kind and
// payload match, recursively for KFn. Type has no hash and, holding a
// slice, is not comparable with == or usable as a map key.
type Type struct {
	Kind   Kind
	ID     uint32 // Valid when Kind == KUnknown: the placeholder's fresh id.
	Params []Type // Valid when Kind == KFn: parameter types, in order.
	Ret    *Type  // Valid when Kind == KFn: the return type.
}

// Unknown returns a fresh placeholder type carrying id.
func Unknown(id uint32) Type { return Type{Kind: KUnknown, ID: id} }

// Bool, Int and String are the three concrete scalar types.
var (
	Bool   = Type{Kind: KBool}
	Int    = Type{Kind: KInt}
	String = Type{Kind: KString}
)

// Fn builds a function type from its parameter types and return type.
func Fn(params []Type, ret Type) Type {
	r := ret
	return Type{Kind: KFn, Params: params, Ret: &r}
}

// IsUnknown reports whether t is still an unresolved placeholder.
func (t Type) IsUnknown() bool { return t.Kind == KUnknown }

// Equal reports whether t and other are structurally identical.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KUnknown:
		return t.ID == other.ID
	case KFn:
		if len(t.Params) != len(other.Params) {
			return false
		}
		for i1 := range t.Params {
			if !t.Params[i1].Equal(other.Params[i1]) {
				return false
			}
		}
		return t.Ret.Equal(*other.Ret)
	default:
		return true
	}
}

// String renders t for diagnostics. Not the IR representation: see IRRepr.
func (t Type) String() string {
	switch t.Kind {
	case KUnknown:
		return fmt.Sprintf("T(%d)", t.ID)
	case KBool:
		return "bool"
	case KInt:
		return "int"
	case KString:
		return "string"
	case KFn:
		return fmt.Sprintf("fn(%v) -> %s", t.Params, t.Ret.String())
	default:
		return "?"
	}
}

// IRRepr returns the LLVM textual type for t. Fn has no IR representation
// of its own: calling IRRepr on a KFn type is a codegen-stage programming
// error, not a user-reachable one, and panics.
func (t Type) IRRepr() string {
	switch t.Kind {
	case KBool:
		return "i1"
	case KInt:
		return "i32"
	case KString:
		return "i8*"
	case KUnknown:
		// Should not occur post-inference; fallback kept for robustness
		// against a caller that skipped type checking.
		return "i32"
	case KFn:
		panic("common: no IR representation for function type")
	default:
		panic(fmt.Sprintf("common: unhandled type kind %d", t.Kind))
	}
}

// Sub replaces, in t itself, every occurrence of the placeholder varID with
// the type with, recursing into Fn parameter and return types. A no-op on concrete scalar types.
func (t *Type) Sub(varID uint32, with Type) {
	switch t.Kind {
	case KUnknown:
		if t.ID == varID {
			*t = with
		}
	case KFn:
		for i1 := range t.Params {
			t.Params[i1].Sub(varID, with)
		}
		t.Ret.Sub(varID, with)
	}
}

// Typed is implemented by every node that carries a resolved or
// in-progress Type slot.
type Typed interface {
	GetType() Type
}

// Field is a named, typed struct member.
type Field struct {
	Name string
	Type Type
}

// GetType implements Typed.
func (f Field) GetType() Type { return f.Type }

// Arg is a named, typed function parameter.
type Arg struct {
	Name string
	Type Type
}

// GetType implements Typed.
func (a Arg) GetType() Type { return a.Type }

// LitKind distinguishes the two literal forms the language supports.
type LitKind int

const (
	LitInt LitKind = iota
	LitString
)

// Literal is an integer or string constant.
type Literal struct {
	Kind LitKind
	Int  uint32
	Str  string
}

// GetType implements Typed.
func (l Literal) GetType() Type {
	if l.Kind == LitInt {
		return Int
	}
	return String
}
