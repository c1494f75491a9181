package typecheck

import (
	"fmt"

	"slc/src/common"
	"slc/src/mir"
)

// genStmts generates the union of constraints for an ordered statement
// list.
func genStmts(stmts []mir.Stmt, env *Env, c *common.Counter) ([]Constraint, error) {
	var out []Constraint
	for _, s := range stmts {
		cs, err := genStmt(s, env, c)
		if err != nil {
			return nil, err
		}
		out = append(out, cs...)
	}
	return out, nil
}

// genStmt generates the constraints for one statement, per spec §4.3.
func genStmt(s mir.Stmt, env *Env, c *common.Counter) ([]Constraint, error) {
	switch s := s.(type) {
	case *mir.Assign:
		if !s.IsRebind {
			// Bind the new name to a fresh placeholder before generating
			// the expression's own constraints, per spec's stated order.
			env.Bind(s.Name, c.NextType())
		}
		bound, ok := env.Lookup(s.Name)
		if !ok {
			return nil, fmt.Errorf("typecheck: unknown name %q in rebind", s.Name)
		}
		cs, err := genExpr(s.Expr, env, c)
		if err != nil {
			return nil, err
		}
		return append(cs, Constraint{bound, s.Expr.GetType()}), nil

	case *mir.ExprStmt:
		return genExpr(s.Expr, env, c)

	case *mir.If:
		cs, err := genExpr(s.Cond, env, c)
		if err != nil {
			return nil, err
		}
		// Branch scopes are pushed but deliberately never popped here:
		// a name bound inside a branch stays visible to lookups after
		// the If returns, within this function's constraint pass. See
		// DESIGN.md's "Open Question decisions" for why this quirk is
		// preserved rather than fixed.
		env.Scope()
		thenCs, err := genStmts(s.Then, env, c)
		if err != nil {
			return nil, err
		}
		cs = append(cs, thenCs...)
		if s.Else != nil {
			env.Scope()
			elseCs, err := genStmts(s.Else, env, c)
			if err != nil {
				return nil, err
			}
			cs = append(cs, elseCs...)
		}
		return cs, nil

	case *mir.While:
		cs, err := genExpr(s.Cond, env, c)
		if err != nil {
			return nil, err
		}
		bodyCs, err := genStmts(s.Body, env, c)
		if err != nil {
			return nil, err
		}
		return append(cs, bodyCs...), nil

	case *mir.Return:
		if s.Expr == nil {
			return nil, nil
		}
		return genExpr(s.Expr, env, c)

	default:
		panic("typecheck: unknown mir.Stmt variant")
	}
}

// genExpr generates the constraints for one expression, per spec §4.3.
func genExpr(e mir.Expr, env *Env, c *common.Counter) ([]Constraint, error) {
	switch e := e.(type) {
	case *mir.Literal:
		return []Constraint{{e.Value.GetType(), e.Ty}}, nil

	case *mir.Name:
		t, ok := env.Lookup(e.Value)
		if !ok {
			return nil, fmt.Errorf("typecheck: unknown name %q", e.Value)
		}
		return []Constraint{{t, e.Ty}}, nil

	case *mir.Call:
		sig, ok := env.Lookup(e.Name)
		if !ok {
			return nil, fmt.Errorf("typecheck: call to unknown function %q", e.Name)
		}
		if sig.Kind != common.KFn {
			return nil, fmt.Errorf("typecheck: %q is not callable", e.Name)
		}
		if len(sig.Params) != len(e.Args) {
			return nil, fmt.Errorf("typecheck: %q expects %d argument(s), got %d", e.Name, len(sig.Params), len(e.Args))
		}
		cs := []Constraint{{*sig.Ret, e.Ty}}
		for i1, a := range e.Args {
			argCs, err := genExpr(a, env, c)
			if err != nil {
				return nil, err
			}
			cs = append(cs, argCs...)
			cs = append(cs, Constraint{a.GetType(), sig.Params[i1]})
		}
		return cs, nil

	case *mir.Equals:
		return genEquality(e.Left, e.Right, e.Ty, env, c)
	case *mir.NotEquals:
		return genEquality(e.Left, e.Right, e.Ty, env, c)

	case *mir.Plus:
		return genArith(e.Left, e.Right, e.Ty, env, c)
	case *mir.Minus:
		return genArith(e.Left, e.Right, e.Ty, env, c)
	case *mir.Times:
		return genArith(e.Left, e.Right, e.Ty, env, c)

	default:
		panic("typecheck: unknown mir.Expr variant")
	}
}

// genEquality handles Equals/NotEquals: { left ~ right, result ~ Bool }.
func genEquality(left, right mir.Expr, result common.Type, env *Env, c *common.Counter) ([]Constraint, error) {
	lc, err := genExpr(left, env, c)
	if err != nil {
		return nil, err
	}
	rc, err := genExpr(right, env, c)
	if err != nil {
		return nil, err
	}
	cs := append(lc, rc...)
	return append(cs, Constraint{left.GetType(), right.GetType()}, Constraint{result, common.Bool}), nil
}

// genArith handles Plus/Minus/Times: { left ~ right, result ~ left, result ~ right }.
func genArith(left, right mir.Expr, result common.Type, env *Env, c *common.Counter) ([]Constraint, error) {
	lc, err := genExpr(left, env, c)
	if err != nil {
		return nil, err
	}
	rc, err := genExpr(right, env, c)
	if err != nil {
		return nil, err
	}
	cs := append(lc, rc...)
	return append(cs,
		Constraint{left.GetType(), right.GetType()},
		Constraint{result, left.GetType()},
		Constraint{result, right.GetType()},
	), nil
}
