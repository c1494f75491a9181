// Package codegen walks a type-checked mir.Program and renders textual
// LLVM IR, line for line, following original_source/src/codegen.rs's
// Codegen impls: alloca/store prologues for function arguments and
// Assign, icmp/br triples for If/While, and GEP+bitcast for string
// constants. Every SSA register and label id is drawn from the same
// common.Counter the rest of the pipeline shares, per spec §5/§9.
package codegen

import (
	"fmt"
	"strings"

	"slc/src/common"
	"slc/src/emit"
	"slc/src/mir"
)

// Generate renders prog as a single textual LLVM IR module.
func Generate(prog *mir.Program, c *common.Counter) string {
	e := emit.NewEmitter()
	for _, d := range prog.Decls {
		genTopDecl(d, e, c)
	}
	return e.AsString()
}

func genTopDecl(d mir.TopDecl, e *emit.Emitter, c *common.Counter) {
	switch d := d.(type) {
	case mir.Extern:
		e.PushLine(fmt.Sprintf("declare i32 @%s(i8* nocapture) nounwind", d.Name))

	case mir.Fn:
		var argsS, argsA []string
		for _, arg := range d.Args {
			argn := c.Next()
			argsS = append(argsS, fmt.Sprintf("%s %%i%d", arg.Type.IRRepr(), argn))

			slot := c.Next()
			argsA = append(argsA, fmt.Sprintf("%%i%d = alloca i32", slot))
			argsA = append(argsA, fmt.Sprintf("store i32 %%i%d, i32* %%i%d", argn, slot))
			e.NewVariable(arg.Name, slot)
		}
		e.PushLine(fmt.Sprintf("define i32 @%s (%s) {", d.Name, strings.Join(argsS, ", ")))
		e.PushLine("entry:")
		e.Scope()
		for _, l := range argsA {
			e.PushLine(l)
		}
		for _, s := range d.Body {
			genStmt(s, e, c)
		}
		e.Pop()
		e.PushLine("ret i32 0")
		e.PushLine("}")

	case mir.Struct:
		fields := make([]string, len(d.Fields))
		for i1, f := range d.Fields {
			fields[i1] = f.Type.IRRepr()
		}
		e.PushLine(fmt.Sprintf("%%st.%s = type { %s }", d.Name, strings.Join(fields, ", ")))

	default:
		panic("codegen: unknown mir.TopDecl variant")
	}
}

func genStmt(s mir.Stmt, e *emit.Emitter, c *common.Counter) {
	switch s := s.(type) {
	case *mir.Assign:
		assigned := genExpr(s.Expr, e, c)
		var slot uint32
		if !s.IsRebind {
			slot = c.Next()
			e.NewVariable(s.Name, slot)
			e.PushLine(fmt.Sprintf("%%i%d = alloca i32", slot))
		} else {
			id, ok := e.LookupName(s.Name)
			if !ok {
				panic(fmt.Sprintf("codegen: name %q not found", s.Name))
			}
			slot = id
		}
		tmp := c.Next()
		e.PushLine(fmt.Sprintf("%%i%d = add i32 %%i%d, 0", tmp, assigned))
		e.PushLine(fmt.Sprintf("store i32 %%i%d, i32* %%i%d", tmp, slot))

	case *mir.ExprStmt:
		genExpr(s.Expr, e, c)

	case *mir.If:
		condTy := s.Cond.GetType().IRRepr()
		cond := genExpr(s.Cond, e, c)
		cmp := c.Next()
		succ := emit.Label(c.Next())
		fail := emit.Label(c.Next())
		done := emit.Label(c.Next())
		e.PushLine(fmt.Sprintf("%%i%d = icmp ne %s %%i%d, 0", cmp, condTy, cond))
		target := done
		if s.Else != nil {
			target = fail
		}
		e.PushLine(fmt.Sprintf("br i1 %%i%d, label %%L%s, label %%L%s", cmp, succ, target))
		e.PushLine(fmt.Sprintf("L%s:", succ))
		e.Scope()
		for _, st := range s.Then {
			genStmt(st, e, c)
		}
		e.Pop()
		e.PushLine(fmt.Sprintf("br label %%L%s", done))
		if s.Else != nil {
			e.PushLine(fmt.Sprintf("L%s:", fail))
			e.Scope()
			for _, st := range s.Else {
				genStmt(st, e, c)
			}
			e.Pop()
			e.PushLine(fmt.Sprintf("br label %%L%s", done))
		}
		e.PushLine(fmt.Sprintf("L%s:", done))

	case *mir.While:
		body := emit.Label(c.Next())
		check := emit.Label(c.Next())
		done := emit.Label(c.Next())
		e.PushLine(fmt.Sprintf("br label %%L%s", check))
		e.PushLine(fmt.Sprintf("L%s:", body))
		e.Scope()
		for _, st := range s.Body {
			genStmt(st, e, c)
		}
		e.Pop()
		e.PushLine(fmt.Sprintf("br label %%L%s", check))
		e.PushLine(fmt.Sprintf("L%s:", check))

		condTy := s.Cond.GetType().IRRepr()
		cond := genExpr(s.Cond, e, c)
		cmp := c.Next()
		e.PushLine(fmt.Sprintf("%%i%d = icmp ne %s %%i%d, 0", cmp, condTy, cond))
		e.PushLine(fmt.Sprintf("br i1 %%i%d, label %%L%s, label %%L%s", cmp, body, done))
		e.PushLine(fmt.Sprintf("L%s:", done))

	case *mir.Return:
		if s.Expr != nil {
			v := genExpr(s.Expr, e, c)
			e.PushLine(fmt.Sprintf("ret i32 %%i%d", v))
		} else {
			e.PushLine("ret void")
		}

	default:
		panic("codegen: unknown mir.Stmt variant")
	}
}

// genExpr generates e's code and returns the SSA id holding its result.
func genExpr(e0 mir.Expr, e *emit.Emitter, c *common.Counter) uint32 {
	switch n := e0.(type) {
	case *mir.Call:
		var args []string
		for _, a := range n.Args {
			id := genExpr(a, e, c)
			args = append(args, fmt.Sprintf("%s %%i%d", a.GetType().IRRepr(), id))
		}
		result := c.Next()
		e.PushLine(fmt.Sprintf("%%i%d = call i32 @%s(%s)", result, n.Name, strings.Join(args, ", ")))
		return result

	case *mir.Literal:
		return genLiteral(n.Value, e, c)

	case *mir.Name:
		id, ok := e.LookupName(n.Value)
		if !ok {
			panic(fmt.Sprintf("codegen: name %q not found", n.Value))
		}
		result := c.Next()
		e.PushLine(fmt.Sprintf("%%i%d = load i32, i32* %%i%d", result, id))
		return result

	case *mir.Equals:
		return genBinary(n.Left, n.Right, "icmp eq", e, c)
	case *mir.NotEquals:
		return genBinary(n.Left, n.Right, "icmp ne", e, c)
	case *mir.Plus:
		return genBinary(n.Left, n.Right, "add", e, c)
	case *mir.Minus:
		return genBinary(n.Left, n.Right, "sub", e, c)
	case *mir.Times:
		return genBinary(n.Left, n.Right, "mul", e, c)

	default:
		panic("codegen: unknown mir.Expr variant")
	}
}

func genBinary(left, right mir.Expr, op string, e *emit.Emitter, c *common.Counter) uint32 {
	l := genExpr(left, e, c)
	r := genExpr(right, e, c)
	result := c.Next()
	e.PushLine(fmt.Sprintf("%%i%d = %s i32 %%i%d, %%i%d", result, op, l, r))
	return result
}

func genLiteral(lit common.Literal, e *emit.Emitter, c *common.Counter) uint32 {
	switch lit.Kind {
	case common.LitInt:
		result := c.Next()
		e.PushLine(fmt.Sprintf("%%i%d = add i32 %d, 0", result, lit.Int))
		return result

	case common.LitString:
		n := len(lit.Str)
		litname := c.Next()
		tmp := c.Next()
		result := c.Next()
		e.PushGlobalLine(fmt.Sprintf(`@ss%d = private unnamed_addr constant [%d x i8] c"%s"`, litname, n, lit.Str))
		e.PushLine(fmt.Sprintf("%%i%d = getelementptr [%d x i8], [%d x i8]* @ss%d", tmp, n, n, litname))
		e.PushLine(fmt.Sprintf("%%i%d = bitcast [%d x i8]* %%i%d to i8*", result, n, tmp))
		return result

	default:
		panic("codegen: unknown common.LitKind variant")
	}
}
