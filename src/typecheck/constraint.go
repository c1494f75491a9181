package typecheck

import "slc/src/common"

// Constraint is an unordered equality between two types. Equal treats
// (a, b) and (b, a) as the same constraint, matching the Rust prototype's
// HashSet<Constraint>: we keep constraints in a plain
// slice instead of a Go map, since common.Type is not a comparable map
// key once it holds a Params slice, but duplicate/reordered constraints
// are harmless to unification regardless.
type Constraint struct {
	A, B common.Type
}

// Equal reports whether c and other constrain the same pair of types,
// in either order.
func (c Constraint) Equal(other Constraint) bool {
	return (c.A.Equal(other.A) && c.B.Equal(other.B)) ||
		(c.A.Equal(other.B) && c.B.Equal(other.A))
}
