package codegen

import (
	"strings"
	"testing"

	"slc/src/common"
	"slc/src/mir"
	"slc/src/parser"
	"slc/src/typecheck"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}
	c := common.NewCounter()
	m := mir.Lower(prog, c)
	if err := typecheck.Check(m, c); err != nil {
		t.Fatalf("typecheck error: %s", err)
	}
	return Generate(m, c)
}

func TestGenerateIdentityFunction(t *testing.T) {
	ir := compile(t, "fn id(x: int) -> int:\n    return x\n")

	// The define line's parameter register number is whatever the shared
	// counter had reached by the time codegen ran (mir.Lower and
	// typecheck.Check both draw from it first), so only the shape is
	// checked here, not a specific %iN value.
	if !strings.Contains(ir, "define i32 @id (i32 %i") {
		t.Fatalf("missing define line:\n%s", ir)
	}
	if !strings.Contains(ir, "alloca i32") || !strings.Contains(ir, "store i32") {
		t.Fatalf("missing alloca/store prologue:\n%s", ir)
	}
	if !strings.Contains(ir, "load i32, i32*") {
		t.Fatalf("missing load before return:\n%s", ir)
	}
	if !strings.Contains(ir, "ret i32 0") {
		t.Fatalf("missing trailing safety ret i32 0:\n%s", ir)
	}
}

func TestGenerateConditionalTwoBlocks(t *testing.T) {
	ir := compile(t, "fn f(x: int) -> int:\n    if x == 0:\n        return 1\n    return 2\n")

	if !strings.Contains(ir, "icmp eq i32") {
		t.Fatalf("missing icmp eq for ==:\n%s", ir)
	}
	if !strings.Contains(ir, "icmp ne") {
		t.Fatalf("missing icmp ne against zero for br:\n%s", ir)
	}
	if strings.Count(ir, "br i1") != 1 {
		t.Fatalf("expected exactly one conditional branch, got:\n%s", ir)
	}
	if strings.Count(ir, "br label") < 1 {
		t.Fatalf("expected an unconditional branch joining to done:\n%s", ir)
	}
	labelDefs := strings.Count(ir, ":\n")
	if labelDefs < 2 {
		t.Fatalf("expected at least two basic-block labels, got:\n%s", ir)
	}
}

func TestGenerateWhileLoopThreeLabels(t *testing.T) {
	ir := compile(t, "fn f() -> int:\n    let i = 0\n    while i != 10:\n        i = i + 1\n    return i\n")

	allocas := strings.Count(ir, "alloca i32")
	if allocas != 1 {
		t.Fatalf("expected i to be alloca'd exactly once (rebind adds no new alloca), got %d:\n%s", allocas, ir)
	}
	brCount := strings.Count(ir, "br label %L")
	if brCount < 2 {
		t.Fatalf("expected the loop body and the trailing check to both branch back, got:\n%s", ir)
	}
	if strings.Count(ir, "L") < 3 {
		t.Fatalf("expected three distinct basic-block labels (body/check/done), got:\n%s", ir)
	}
}

func TestGenerateStringLiteralGEPAndBitcast(t *testing.T) {
	ir := compile(t, "fn f() -> int:\n    let s = \"hi\"\n    return 0\n")

	if !strings.Contains(ir, `private unnamed_addr constant [2 x i8] c"hi"`) {
		t.Fatalf("missing global string constant:\n%s", ir)
	}
	if !strings.Contains(ir, "getelementptr [2 x i8], [2 x i8]* @ss") {
		t.Fatalf("missing GEP with no index list:\n%s", ir)
	}
	if !strings.Contains(ir, "bitcast [2 x i8]* %i") {
		t.Fatalf("missing bitcast to i8*:\n%s", ir)
	}

	globalIdx := strings.Index(ir, "private unnamed_addr constant")
	defineIdx := strings.Index(ir, "define i32 @f")
	if globalIdx == -1 || defineIdx == -1 || globalIdx > defineIdx {
		t.Fatalf("expected the global string constant hoisted ahead of the function define:\n%s", ir)
	}
}

func TestGenerateExternDeclareLine(t *testing.T) {
	ir := compile(t, "extern puts(string) -> int\nfn f() -> int:\n    return 0\n")
	if !strings.Contains(ir, "declare i32 @puts(i8* nocapture) nounwind") {
		t.Fatalf("missing fixed extern declare line:\n%s", ir)
	}
}

func TestGenerateStructTypeLine(t *testing.T) {
	ir := compile(t, "struct point:\n    x: int\n    y: int\nfn f() -> int:\n    return 0\n")
	if !strings.Contains(ir, "%st.point = type { i32, i32 }") {
		t.Fatalf("missing struct type line:\n%s", ir)
	}
}
