// Drives the parser over the spec's boundary scenarios end to end, since
// the parser-generator grammar itself is out of scope (spec §1) but these
// scenarios are full source texts that need something to turn them into
// an ast.Program.

package parser

import (
	"testing"

	"slc/src/ast"
)

func TestParseIdentityFunction(t *testing.T) {
	prog, err := Parse("fn id(x: int) -> int:\n    return x\n")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}
	fn, ok := prog.Decls[0].(ast.Fn)
	if !ok {
		t.Fatalf("expected ast.Fn, got %T", prog.Decls[0])
	}
	if fn.Name != "id" || len(fn.Args) != 1 || fn.Args[0].Name != "x" {
		t.Fatalf("unexpected fn shape: %+v", fn)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(fn.Body))
	}
	ret, ok := fn.Body[0].(ast.Return)
	if !ok {
		t.Fatalf("expected ast.Return, got %T", fn.Body[0])
	}
	name, ok := ret.Expr.(ast.Name)
	if !ok || name.Value != "x" {
		t.Fatalf("expected return of Name(x), got %+v", ret.Expr)
	}
}

func TestParseConditional(t *testing.T) {
	prog, err := Parse("fn f(x: int) -> int:\n    if x == 0:\n        return 1\n    return 2\n")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	fn := prog.Decls[0].(ast.Fn)
	if len(fn.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(fn.Body))
	}
	ifStmt, ok := fn.Body[0].(ast.If)
	if !ok {
		t.Fatalf("expected ast.If, got %T", fn.Body[0])
	}
	if _, ok := ifStmt.Cond.(ast.Binary); !ok {
		t.Fatalf("expected binary condition, got %T", ifStmt.Cond)
	}
	if len(ifStmt.Then) != 1 || ifStmt.Else != nil {
		t.Fatalf("unexpected if shape: %+v", ifStmt)
	}
	if _, ok := fn.Body[1].(ast.Return); !ok {
		t.Fatalf("expected trailing ast.Return, got %T", fn.Body[1])
	}
}

func TestParseConditionalWithElse(t *testing.T) {
	src := "fn f(x: int) -> int:\n    if x == 0:\n        return 1\n    else:\n        return 2\n    return 3\n"
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	fn := prog.Decls[0].(ast.Fn)
	if len(fn.Body) != 2 {
		t.Fatalf("expected 2 statements (if, trailing return), got %d: %+v", len(fn.Body), fn.Body)
	}
	ifStmt, ok := fn.Body[0].(ast.If)
	if !ok {
		t.Fatalf("expected ast.If, got %T", fn.Body[0])
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Fatalf("expected one statement in each branch, got %+v", ifStmt)
	}
	if _, ok := fn.Body[1].(ast.Return); !ok {
		t.Fatalf("expected trailing ast.Return after the if/else, got %T", fn.Body[1])
	}
}

func TestParseNestedIfNoElse(t *testing.T) {
	src := "fn f(x: int) -> int:\n    if x == 0:\n        if x == 1:\n            return 1\n    return 2\n"
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	fn := prog.Decls[0].(ast.Fn)
	if len(fn.Body) != 2 {
		t.Fatalf("expected 2 statements (outer if, trailing return), got %d: %+v", len(fn.Body), fn.Body)
	}
	outer := fn.Body[0].(ast.If)
	if outer.Else != nil {
		t.Fatalf("expected outer if to have no else, got %+v", outer.Else)
	}
	inner, ok := outer.Then[0].(ast.If)
	if !ok || inner.Else != nil {
		t.Fatalf("expected a nested if with no else, got %+v", outer.Then[0])
	}
}

func TestParseWhileLoop(t *testing.T) {
	prog, err := Parse("fn f() -> int:\n    let i = 0\n    while i != 10:\n        i = i + 1\n    return i\n")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	fn := prog.Decls[0].(ast.Fn)
	if len(fn.Body) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(fn.Body))
	}
	let, ok := fn.Body[0].(ast.Assign)
	if !ok || let.IsRebind {
		t.Fatalf("expected a non-rebind Assign, got %+v", fn.Body[0])
	}
	whileStmt, ok := fn.Body[1].(ast.While)
	if !ok {
		t.Fatalf("expected ast.While, got %T", fn.Body[1])
	}
	if len(whileStmt.Body) != 1 {
		t.Fatalf("expected 1 statement in while body, got %d", len(whileStmt.Body))
	}
	rebind, ok := whileStmt.Body[0].(ast.Assign)
	if !ok || !rebind.IsRebind || rebind.Name != "i" {
		t.Fatalf("expected a rebind Assign of i, got %+v", whileStmt.Body[0])
	}
}

func TestParseMutualRecursion(t *testing.T) {
	src := "fn even(n: int) -> int:\n    return odd(n)\nfn odd(n: int) -> int:\n    return even(n)\n"
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(prog.Decls) != 2 {
		t.Fatalf("expected 2 decls, got %d", len(prog.Decls))
	}
}

func TestParseExternAndStruct(t *testing.T) {
	src := "extern puts(string) -> int\nstruct point:\n    x: int\n    y: int\n"
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	ext, ok := prog.Decls[0].(ast.Extern)
	if !ok || ext.Name != "puts" {
		t.Fatalf("expected extern puts, got %+v", prog.Decls[0])
	}
	st, ok := prog.Decls[1].(ast.Struct)
	if !ok || st.Name != "point" || len(st.Fields) != 2 {
		t.Fatalf("expected struct point with 2 fields, got %+v", prog.Decls[1])
	}
}

func TestParseCallAndPrecedence(t *testing.T) {
	src := "fn f() -> int:\n    return add(1 + 2 * 3, 4)\n"
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	fn := prog.Decls[0].(ast.Fn)
	ret := fn.Body[0].(ast.Return)
	call, ok := ret.Expr.(ast.Call)
	if !ok || call.Name != "add" || len(call.Args) != 2 {
		t.Fatalf("expected a 2-arg call to add, got %+v", ret.Expr)
	}
	sum, ok := call.Args[0].(ast.Binary)
	if !ok || sum.Op != ast.OpPlus {
		t.Fatalf("expected top-level + (additive binds looser than *), got %+v", call.Args[0])
	}
	if _, ok := sum.Right.(ast.Binary); !ok {
		t.Fatalf("expected 2*3 grouped on the right of +, got %+v", sum.Right)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"fn f(x int) -> int:\n    return x\n", // missing colon after arg name
		"fn f() -> int:\nreturn 0\n",           // body not indented
		"fn f() -> int:\n    return 1 +\n",     // dangling operator
	}
	for _, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Fatalf("expected a parse error for %q, got none", src)
		}
	}
}
