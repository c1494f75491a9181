package common

import "testing"

func TestTypeEqualStructural(t *testing.T) {
	a := Fn([]Type{Int, String}, Bool)
	b := Fn([]Type{Int, String}, Bool)
	if !a.Equal(b) {
		t.Fatalf("expected structurally identical Fn types to be Equal")
	}
	c := Fn([]Type{Int, Int}, Bool)
	if a.Equal(c) {
		t.Fatalf("expected Fn types with different params to differ")
	}
	if !Unknown(1).Equal(Unknown(1)) {
		t.Fatalf("expected Unknown types with the same id to be Equal")
	}
	if Unknown(1).Equal(Unknown(2)) {
		t.Fatalf("expected Unknown types with different ids to differ")
	}
}

func TestTypeIRRepr(t *testing.T) {
	// Type embeds a []Type field (Params), so it isn't comparable and can't
	// key a map: a slice of pairs instead.
	cases := []struct {
		ty   Type
		want string
	}{
		{Bool, "i1"},
		{Int, "i32"},
		{String, "i8*"},
	}
	for _, c := range cases {
		if got := c.ty.IRRepr(); got != c.want {
			t.Errorf("%s.IRRepr() = %q, want %q", c.ty, got, c.want)
		}
	}
}

func TestTypeIRReprFnPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected IRRepr on a Fn type to panic")
		}
	}()
	Fn(nil, Int).IRRepr()
}

func TestSubReplacesPlaceholderInPlace(t *testing.T) {
	ty := Unknown(7)
	ty.Sub(7, Int)
	if !ty.Equal(Int) {
		t.Fatalf("expected Sub to resolve the placeholder in place, got %s", ty)
	}

	other := Unknown(8)
	other.Sub(7, Int)
	if !other.IsUnknown() {
		t.Fatalf("expected Sub to leave an unrelated placeholder untouched")
	}
}

func TestSubRecursesIntoFn(t *testing.T) {
	ty := Fn([]Type{Unknown(1), Int}, Unknown(1))
	ty.Sub(1, String)
	if !ty.Params[0].Equal(String) {
		t.Fatalf("expected Sub to recurse into Params, got %s", ty.Params[0])
	}
	if !ty.Ret.Equal(String) {
		t.Fatalf("expected Sub to recurse into Ret, got %s", *ty.Ret)
	}
}

func TestLiteralGetType(t *testing.T) {
	// Assigned to locals first: a composite literal directly in an
	// if-condition is ambiguous with the block's opening brace.
	intLit := Literal{Kind: LitInt, Int: 1}
	if intLit.GetType().Kind != KInt {
		t.Fatalf("expected LitInt to resolve to KInt")
	}
	strLit := Literal{Kind: LitString, Str: "x"}
	if strLit.GetType().Kind != KString {
		t.Fatalf("expected LitString to resolve to KString")
	}
}
