package typecheck

import "slc/src/mir"

// applyStmts substitutes every Ty slot reachable from stmts in place.
func applyStmts(stmts []mir.Stmt, subst Substitution) {
	for _, s := range stmts {
		applyStmt(s, subst)
	}
}

func applyStmt(s mir.Stmt, subst Substitution) {
	switch s := s.(type) {
	case *mir.Assign:
		applyExpr(s.Expr, subst)
	case *mir.ExprStmt:
		applyExpr(s.Expr, subst)
	case *mir.If:
		applyExpr(s.Cond, subst)
		applyStmts(s.Then, subst)
		applyStmts(s.Else, subst)
	case *mir.While:
		applyExpr(s.Cond, subst)
		applyStmts(s.Body, subst)
	case *mir.Return:
		if s.Expr != nil {
			applyExpr(s.Expr, subst)
		}
	default:
		panic("typecheck: unknown mir.Stmt variant")
	}
}

func applyExpr(e mir.Expr, subst Substitution) {
	switch e := e.(type) {
	case *mir.Literal:
		mir.SetType(e, Apply(e.Ty, subst))
	case *mir.Name:
		mir.SetType(e, Apply(e.Ty, subst))
	case *mir.Call:
		for _, a := range e.Args {
			applyExpr(a, subst)
		}
		mir.SetType(e, Apply(e.Ty, subst))
	case *mir.Equals:
		applyExpr(e.Left, subst)
		applyExpr(e.Right, subst)
		mir.SetType(e, Apply(e.Ty, subst))
	case *mir.NotEquals:
		applyExpr(e.Left, subst)
		applyExpr(e.Right, subst)
		mir.SetType(e, Apply(e.Ty, subst))
	case *mir.Plus:
		applyExpr(e.Left, subst)
		applyExpr(e.Right, subst)
		mir.SetType(e, Apply(e.Ty, subst))
	case *mir.Minus:
		applyExpr(e.Left, subst)
		applyExpr(e.Right, subst)
		mir.SetType(e, Apply(e.Ty, subst))
	case *mir.Times:
		applyExpr(e.Left, subst)
		applyExpr(e.Right, subst)
		mir.SetType(e, Apply(e.Ty, subst))
	default:
		panic("typecheck: unknown mir.Expr variant")
	}
}
