package typecheck

import (
	"slc/src/common"
	"slc/src/mir"
)

// Check runs both phases over prog: binding every Extern and Fn signature
// into the root scope first (so forward references and mutual recursion
// work), then checking each Fn body in turn. c supplies fresh type
// variables for new let-bindings during constraint generation, drawing
// from the same counter mir.Lower used, per spec §5/§9.
func Check(prog *mir.Program, c *common.Counter) error {
	env := NewEnv()
	for _, d := range prog.Decls {
		switch d := d.(type) {
		case mir.Extern:
			env.Bind(d.Name, d.Type)
		case mir.Fn:
			params := make([]common.Type, len(d.Args))
			for i1, a := range d.Args {
				params[i1] = a.Type
			}
			env.Bind(d.Name, common.Fn(params, d.Ret))
		}
	}

	for _, d := range prog.Decls {
		fn, ok := d.(mir.Fn)
		if !ok {
			continue
		}
		if err := checkFn(fn, env, c); err != nil {
			return err
		}
	}
	return nil
}

func checkFn(fn mir.Fn, env *Env, c *common.Counter) error {
	// genStmt's If case pushes branch scopes it deliberately never pops
	// (the §9 quirk, preserved within one function's constraint pass). A
	// single Unscope here would only pop whichever of those is innermost,
	// leaving the parameter scope and any leftover branch frames visible
	// to the next function's Lookup. Snapshot the depth instead and
	// truncate back to it, so every scope this call opened - the
	// parameter scope plus whatever If left behind - is discarded before
	// the next function is checked.
	depth := env.Depth()
	defer env.TruncateTo(depth)

	env.Scope()
	for _, a := range fn.Args {
		env.Bind(a.Name, a.Type)
	}

	constraints, err := genStmts(fn.Body, env, c)
	if err != nil {
		return err
	}
	subst, err := Unify(constraints)
	if err != nil {
		return err
	}
	applyStmts(fn.Body, subst)
	return nil
}
