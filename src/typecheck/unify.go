package typecheck

import (
	"fmt"

	"slc/src/common"
)

// Substitution maps an unknown-id to the (possibly still-unknown) type it
// resolved to. Fully closed after Unify returns: chasing one hop through
// the map always lands on a concrete type or a var with no entry.
type Substitution map[uint32]common.Type

// Unify consumes a worklist of constraints and produces a closed
// Substitution, per spec §4.3's unification algorithm. Order of the input
// constraints does not affect the final resolved types at any expression
// site (spec §8's determinism-modulo-order law), since every constraint
// is eventually applied to the full remaining worklist when its
// placeholder is resolved.
func Unify(constraints []Constraint) (Substitution, error) {
	subst := Substitution{}
	work := append([]Constraint(nil), constraints...)

	for len(work) > 0 {
		cur := work[0]
		work = work[1:]

		a, b := cur.A, cur.B
		if a.Equal(b) {
			continue
		}

		var varID uint32
		var with common.Type
		switch {
		case a.Kind == common.KUnknown:
			varID, with = a.ID, b
		case b.Kind == common.KUnknown:
			varID, with = b.ID, a
		default:
			return nil, fmt.Errorf("typecheck: cannot unify %s ~ %s", a, b)
		}

		for i1 := range work {
			work[i1].A.Sub(varID, with)
			work[i1].B.Sub(varID, with)
		}
		subst[varID] = with
	}

	closeSubstitution(subst)
	return subst, nil
}

// closeSubstitution repeatedly chases n ↦ Unknown(m) ↦ t chains down to
// n ↦ t, until no chained mapping remains.
func closeSubstitution(subst Substitution) {
	for {
		changed := false
		for n, t := range subst {
			if t.Kind == common.KUnknown {
				if resolved, ok := subst[t.ID]; ok {
					subst[n] = resolved
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

// Apply resolves t through subst, recursing into Fn parameter and return
// types. A Type with no entry in subst (still Unknown) is returned as is.
func Apply(t common.Type, subst Substitution) common.Type {
	switch t.Kind {
	case common.KUnknown:
		if resolved, ok := subst[t.ID]; ok {
			return Apply(resolved, subst)
		}
		return t
	case common.KFn:
		params := make([]common.Type, len(t.Params))
		for i1, p := range t.Params {
			params[i1] = Apply(p, subst)
		}
		return common.Fn(params, Apply(*t.Ret, subst))
	default:
		return t
	}
}
