package mir

import (
	"slc/src/ast"
	"slc/src/common"
)

// Lower performs the purely structural AST → MIR walk: for every
// expression site it allocates a fresh unknown type variable from c and
// stores it in the node's Ty slot, except where the concrete type is
// already known (literals, equality/inequality). This pass never fails,
// per spec §4.2.
func Lower(prog *ast.Program, c *common.Counter) *Program {
	out := &Program{Decls: make([]TopDecl, 0, len(prog.Decls))}
	for _, d := range prog.Decls {
		out.Decls = append(out.Decls, lowerTopDecl(d, c))
	}
	return out
}

func lowerTopDecl(d ast.TopDecl, c *common.Counter) TopDecl {
	switch d := d.(type) {
	case ast.Extern:
		return Extern{Name: d.Name, Type: d.Type}
	case ast.Fn:
		return Fn{Name: d.Name, Args: d.Args, Ret: d.Ret, Body: lowerStmts(d.Body, c)}
	case ast.Struct:
		return Struct{Name: d.Name, Fields: d.Fields}
	default:
		panic("mir: unknown ast.TopDecl variant")
	}
}

func lowerStmts(stmts []ast.Stmt, c *common.Counter) []Stmt {
	out := make([]Stmt, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, lowerStmt(s, c))
	}
	return out
}

func lowerStmt(s ast.Stmt, c *common.Counter) Stmt {
	switch s := s.(type) {
	case ast.Assign:
		return &Assign{IsRebind: s.IsRebind, Name: s.Name, Expr: lowerExpr(s.Expr, c)}
	case ast.ExprStmt:
		return &ExprStmt{Expr: lowerExpr(s.Expr, c)}
	case ast.If:
		var els []Stmt
		if s.Else != nil {
			els = lowerStmts(s.Else, c)
		}
		return &If{Cond: lowerExpr(s.Cond, c), Then: lowerStmts(s.Then, c), Else: els}
	case ast.While:
		return &While{Cond: lowerExpr(s.Cond, c), Body: lowerStmts(s.Body, c)}
	case ast.Return:
		var e Expr
		if s.Expr != nil {
			e = lowerExpr(s.Expr, c)
		}
		return &Return{Expr: e}
	default:
		panic("mir: unknown ast.Stmt variant")
	}
}

func lowerExpr(e ast.Expr, c *common.Counter) Expr {
	switch e := e.(type) {
	case ast.Call:
		args := make([]Expr, 0, len(e.Args))
		for _, a := range e.Args {
			args = append(args, lowerExpr(a, c))
		}
		return &Call{Name: e.Name, Args: args, Ty: c.NextType()}
	case ast.Lit:
		return &Literal{Value: e.Value, Ty: e.Value.GetType()}
	case ast.Name:
		return &Name{Value: e.Value, Ty: c.NextType()}
	case ast.Binary:
		left := lowerExpr(e.Left, c)
		right := lowerExpr(e.Right, c)
		switch e.Op {
		case ast.OpEquals:
			return &Equals{Left: left, Right: right, Ty: common.Bool}
		case ast.OpNotEquals:
			return &NotEquals{Left: left, Right: right, Ty: common.Bool}
		case ast.OpPlus:
			return &Plus{Left: left, Right: right, Ty: c.NextType()}
		case ast.OpMinus:
			return &Minus{Left: left, Right: right, Ty: c.NextType()}
		case ast.OpTimes:
			return &Times{Left: left, Right: right, Ty: c.NextType()}
		default:
			panic("mir: unknown ast.BinOp variant")
		}
	default:
		panic("mir: unknown ast.Expr variant")
	}
}
