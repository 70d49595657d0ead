package ast

import (
	"testing"

	"go.uber.org/multierr"

	"github.com/tangzhangming/codedom/internal/errors"
	"github.com/tangzhangming/codedom/internal/token"
)

func TestIfChainRewalk(t *testing.T) {
	ret := Ret(nil)
	x := &SnippetStmt{Text: "X"}
	y := &SnippetStmt{Text: "Y"}

	root := IfChain([]CondBlock{
		{Cond: Literal(true), Stmts: []Statement{ret}},
		{Cond: Literal(false), Stmts: []Statement{x}},
	}, []Statement{y})

	if root == nil {
		t.Fatal("expected if chain, got nil")
	}
	if v, _ := root.Cond.(*Primitive).Value.(bool); !v {
		t.Errorf("expected outer condition true, got %v", root.Cond)
	}
	if len(root.True) != 1 || root.True[0] != ret {
		t.Errorf("expected outer true branch [return], got %v", root.True)
	}

	inner, ok := root.ElseIf()
	if !ok {
		t.Fatalf("expected nested if in false branch, got %v", root.False)
	}
	if v, _ := inner.Cond.(*Primitive).Value.(bool); v {
		t.Errorf("expected inner condition false, got %v", inner.Cond)
	}
	if len(inner.True) != 1 || inner.True[0] != x {
		t.Errorf("expected inner true branch [X], got %v", inner.True)
	}
	if len(inner.False) != 1 || inner.False[0] != y {
		t.Errorf("expected innermost false branch [Y], got %v", inner.False)
	}

	// Y 只出现一次
	count := 0
	Inspect(root, func(n Node) bool {
		if n == y {
			count++
		}
		return true
	})
	if count != 1 {
		t.Errorf("expected Y exactly once, got %d", count)
	}
}

func TestIfChainEmpty(t *testing.T) {
	if got := IfChain(nil, []Statement{Ret(nil)}); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestShorthandRoundTrip(t *testing.T) {
	left := Variable("a")
	right := Literal(int32(2))
	for _, op := range token.Operators() {
		ca, err := NewCompoundAssign(left, op, right)
		if !op.IsShorthand() {
			if err == nil || !errors.IsArgument(err) {
				t.Errorf("%s: expected ArgumentError, got %v", op, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", op, err)
		}
		plain := ca.Expand()
		if plain.Left != left {
			t.Errorf("%s: expected assign target a, got %v", op, plain.Left)
		}
		bin, ok := plain.Right.(*BinaryOp)
		if !ok {
			t.Fatalf("%s: expected binary right side, got %T", op, plain.Right)
		}
		if bin.Op != op || bin.Left != left || bin.Right != right {
			t.Errorf("%s: expected (a %s 2), got (%v %s %v)", op, op, bin.Left, bin.Op, bin.Right)
		}
	}
}

func TestNewPropertyInit(t *testing.T) {
	if _, err := NewPropertyInit("", Literal(int32(1))); errors.CodeOf(err) != errors.G0200 {
		t.Errorf("expected G0200, got %v", err)
	}
	p, err := NewPropertyInit("Name", Literal("n"))
	if err != nil || p.Name != "Name" {
		t.Errorf("expected initializer Name, got %v, %v", p, err)
	}
}

func TestCheckTypeDecl(t *testing.T) {
	tests := []struct {
		name string
		decl *TypeDecl
		code string
	}{
		{"class", NewClass("C"), ""},
		{"no kind", &TypeDecl{Name: "N"}, errors.G0100},
		{"two kinds", &TypeDecl{Name: "T", IsClass: true, IsStruct: true}, errors.G0100},
		{"enum", NewEnum("E", "A", "B"), ""},
		{"enum with method", func() *TypeDecl {
			e := NewEnum("E", "A")
			e.Members = append(e.Members, NewMethod("M", nil, AccessPublic))
			return e
		}(), errors.G0101},
		{"enum with generics", func() *TypeDecl {
			e := NewEnum("E", "A")
			e.TypeParams = []*TypeParam{{Name: "T"}}
			return e
		}(), errors.G0102},
		{"enum with base", func() *TypeDecl {
			e := NewEnum("E", "A")
			e.BaseTypes = []*TypeRef{TypeNamed(TypeInt64)}
			return e
		}(), errors.G0103},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTypeDecl(tt.decl)
			if got := errors.CodeOf(err); got != tt.code {
				t.Errorf("expected code %q, got %q (%v)", tt.code, got, err)
			}
			if tt.code != "" && !errors.IsConsistency(err) {
				t.Errorf("expected ConsistencyError, got %T", err)
			}
		})
	}
}

func TestTypeKindPriority(t *testing.T) {
	d := &TypeDecl{IsClass: true, IsEnum: true, IsStruct: true}
	if d.TypeKind() != KindEnum {
		t.Errorf("expected enum, got %s", d.TypeKind())
	}
	if (&TypeDecl{}).TypeKind() != KindClass {
		t.Errorf("expected class for empty flags")
	}
}

func TestAccessResolve(t *testing.T) {
	tests := []struct {
		in   Access
		want Accessibility
		ok   bool
	}{
		{0, Unspecified, true},
		{AccessPublic, Public, true},
		{AccessProtected | AccessInternal, ProtectedInternal, true},
		{AccessPrivate | AccessProtected, PrivateProtected, true},
		{AccessPublic | AccessPrivate, Unspecified, false},
	}
	for _, tt := range tests {
		got, ok := tt.in.Resolve()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: expected (%s, %v), got (%s, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestValidateCollectsAll(t *testing.T) {
	bad := NewField("f", TypeNamed(TypeInt32), AccessPublic|AccessPrivate)
	bad.Modifiers.Scope = Scope(42)
	enum := NewEnum("E", "A")
	enum.Members = append(enum.Members, NewMethod("M", nil, AccessPublic))

	unit := NewUnit("N", NewClass("C", bad), enum)
	errs := multierr.Errors(Validate(unit))
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}

	if err := Validate(NewUnit("N", NewClass("C", NewField("x", TypeNamed(TypeInt32), AccessPublic)))); err != nil {
		t.Errorf("expected valid unit, got %v", err)
	}
}

func TestReparent(t *testing.T) {
	// Foo().Bar 的起点为隐式 this
	inner := Invoke(nil, "Foo")
	chain := PropertyOf(inner, "Bar")
	root := Variable("obj")

	got := Reparent(chain, root)
	if ChainRoot(got) != root {
		t.Errorf("expected new root obj, got %v", ChainRoot(got))
	}
	if ChainRoot(chain) != nil {
		t.Errorf("expected original chain untouched, got root %v", ChainRoot(chain))
	}
	if inner.Method.Target != nil {
		t.Errorf("expected shared inner node untouched")
	}

	// 非链式起点被替换
	got = Reparent(FieldOf(Variable("a"), "b"), root)
	if ChainRoot(got) != root {
		t.Errorf("expected replaced root, got %v", ChainRoot(got))
	}
}

func TestLiteralType(t *testing.T) {
	tests := []struct {
		v    interface{}
		want string
	}{
		{true, TypeBoolean},
		{"s", TypeString},
		{Char('c'), TypeChar},
		{Decimal("1.5"), TypeDecimal},
		{int8(1), TypeSByte},
		{uint8(1), TypeByte},
		{int16(1), TypeInt16},
		{uint16(1), TypeUInt16},
		{int32(1), TypeInt32},
		{uint32(1), TypeUInt32},
		{int64(1), TypeInt64},
		{1, TypeInt64},
		{uint(1), TypeUInt64},
		{float32(1), TypeSingle},
		{1.0, TypeDouble},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := LiteralType(tt.v); got != tt.want {
			t.Errorf("%#v: expected %q, got %q", tt.v, tt.want, got)
		}
	}
}

func TestIsIntegralType(t *testing.T) {
	for _, name := range []string{TypeSByte, TypeByte, TypeInt16, TypeUInt16, TypeInt32, TypeUInt32, TypeInt64, TypeUInt64} {
		if !IsIntegralType(name) {
			t.Errorf("expected %s to be integral", name)
		}
	}
	for _, name := range []string{TypeSingle, TypeDouble, TypeDecimal, TypeString, "Int32"} {
		if IsIntegralType(name) {
			t.Errorf("expected %s not to be integral", name)
		}
	}
}
