package vb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/errors"
	"github.com/tangzhangming/codedom/internal/render"
	"github.com/tangzhangming/codedom/internal/token"
)

const header = "Option Strict Off\nOption Explicit On\n\n"

func newContext(t *testing.T, opts *render.Options) (*render.Context[Extra], *render.StringSink) {
	t.Helper()
	r, err := render.NewRenderer(New(), nil)
	require.NoError(t, err)
	sink := render.NewStringSink()
	return r.NewContext(sink, opts), sink
}

func renderExpr(t *testing.T, e ast.Expression) string {
	t.Helper()
	ctx, sink := newContext(t, nil)
	require.NoError(t, ctx.Expr(e))
	return sink.String()
}

func renderStmt(t *testing.T, s ast.Statement) string {
	t.Helper()
	ctx, sink := newContext(t, nil)
	require.NoError(t, ctx.Stmt(s))
	require.Zero(t, ctx.Extra.Depth())
	return sink.String()
}

func renderUnit(t *testing.T, u *ast.CompileUnit) string {
	t.Helper()
	r, err := render.NewRenderer(New(), nil)
	require.NoError(t, err)
	out, err := r.RenderString(u, nil)
	require.NoError(t, err)
	return out
}

var (
	a = ast.Variable("a")
	b = ast.Variable("b")
	i = ast.Variable("i")
	n = ast.Variable("n")
)

func TestSimpleField(t *testing.T) {
	unit := ast.NewUnit("", ast.NewClass("C",
		ast.NewField("x", ast.TypeNamed(ast.TypeInt32), ast.AccessPublic)))

	want := header +
		"Class C\n" +
		"    Public x As Integer\n" +
		"End Class\n"
	require.Equal(t, want, renderUnit(t, unit))
}

func TestImplicitFieldAccess(t *testing.T) {
	intType := ast.TypeNamed(ast.TypeInt32)
	field := func(name string, scope ast.Scope, shadows bool) *ast.Field {
		f := ast.NewField(name, intType, 0)
		f.Modifiers.Scope = scope
		f.Modifiers.New = shadows
		return f
	}
	limit := field("Limit", ast.ScopeConst, false)
	limit.Init = ast.Literal(1)

	unit := ast.NewUnit("", ast.NewClass("C",
		field("x", ast.ScopeUnset, false),
		field("y", ast.ScopeFinal, false),
		field("count", ast.ScopeStatic, false),
		limit,
		field("z", ast.ScopeUnset, true),
	))
	want := header +
		"Class C\n" +
		"    Dim x As Integer\n" +
		"    Dim y As Integer\n" +
		"    Shared count As Integer\n" +
		"    Const Limit As Integer = 1\n" +
		"    Shadows z As Integer\n" +
		"End Class\n"
	require.Equal(t, want, renderUnit(t, unit))
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{int32(5), "5"},
		{int64(5000000000), "5000000000L"},
		{int16(3), "3S"},
		{uint16(3), "3US"},
		{uint32(3), "3UI"},
		{uint64(3), "3UL"},
		{uint8(7), "CType(7, Byte)"},
		{int8(-1), "CType(-1, SByte)"},
		{int32(-5), "-5"},
		{int32(math.MinInt32), "Integer.MinValue"},
		{int64(math.MinInt32), "Integer.MinValue"},
		{int64(math.MinInt64), "Long.MinValue"},
		{int64(math.MinInt32 - 1), "-2147483649L"},
		{int16(math.MinInt16), "Short.MinValue"},
		{int8(math.MinInt8), "CType(-128, SByte)"},
		{float32(1.5), "1.5F"},
		{2.0, "2.0"},
		{ast.Decimal("1.25"), "1.25D"},
		{nil, "Nothing"},
		{false, "False"},
		{"", `""`},
		{`say "hi"`, `"say ""hi"""`},
		{"x\ny", `"x" & ChrW(10) & "y"`},
		{"\r\n", `ChrW(13) & ChrW(10)`},
		{ast.Char('c'), `"c"c`},
		{ast.Char('"'), `""""c`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, renderExpr(t, ast.Literal(tt.value)), "literal %#v", tt.value)
	}
}

func TestExpressions(t *testing.T) {
	intType := ast.TypeNamed(ast.TypeInt32)
	init, err := ast.NewPropertyInit("X", ast.Literal(1))
	require.NoError(t, err)

	tests := []struct {
		expr ast.Expression
		want string
	}{
		{ast.Variable("Next"), "[Next]"},
		{ast.Binary(a, token.Modulus, b), "a Mod b"},
		{ast.Binary(a, token.IdentityInequality, ast.Null()), "a IsNot Nothing"},
		{ast.Binary(ast.Binary(a, token.Add, b), token.Multiply, n), "(a + b) * n"},
		{ast.Unary(token.Not, a), "Not a"},
		{ast.Binary(a, token.NullCoalesce, b), "If(a, b)"},
		{&ast.Conditional{Cond: a, True: b, False: n}, "If(a, b, n)"},
		{&ast.TypeOf{Type: intType}, "GetType(Integer)"},
		{&ast.TypeRefExpr{Type: ast.NullableOf(intType)}, "Nullable(Of Integer)"},
		{&ast.ObjectCreate{Type: ast.TypeNamed("Point"), Initializers: []*ast.PropertyInit{init}}, "New Point() With {.X = 1}"},
		{&ast.DelegateCreate{Type: ast.TypeNamed("Handler"), Target: ast.This(), Method: "OnClick"}, "New Handler(AddressOf Me.OnClick)"},
		{&ast.Indexer{Target: a, Indices: []ast.Expression{ast.Literal(0)}}, "a(0)"},
		{ast.Invoke(a, "M", &ast.Direction{Dir: ast.DirRef, Expr: b}), "a.M(b)"},
		{&ast.Lambda{Params: []*ast.ParamDecl{ast.Param(nil, "x")}, Body: ast.Variable("x")}, "Function(x) x"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, renderExpr(t, tt.expr))
	}
}

func TestOperandWrapping(t *testing.T) {
	tests := []struct {
		expr ast.Expression
		want string
	}{
		{ast.Invoke(ast.Literal(int32(-5)), "ToString"), "(-5).ToString()"},
		{ast.Binary(ast.Unary(token.Not, a), token.ValueEquality, b), "(Not a) = b"},
		{ast.Binary(a, token.BooleanAnd, ast.Unary(token.Not, b)), "a AndAlso Not b"},
		{ast.Unary(token.Not, ast.Binary(a, token.ValueEquality, b)), "Not a = b"},
		{ast.Binary(a, token.Subtract, ast.Binary(b, token.Subtract, n)), "a - (b - n)"},
		{ast.Binary(ast.Binary(a, token.Add, b), token.Modulus, n), "(a + b) Mod n"},
		{ast.Binary(a, token.Add, ast.Binary(b, token.Modulus, n)), "a + b Mod n"},
		{ast.Binary(ast.Binary(a, token.BooleanOr, b), token.BooleanAnd, n), "(a OrElse b) AndAlso n"},
		{ast.Binary(a, token.Multiply, ast.Literal(-1)), "a * -1"},
		{ast.Unary(token.Negate, ast.Literal(-1)), "-(-1)"},
		{ast.FieldOf(ast.Unary(token.Negate, a), "X"), "(-a).X"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, renderExpr(t, tt.expr))
	}

	opts := render.DefaultOptions()
	opts.RemoveRedundantParens = false
	verbose := []struct {
		expr ast.Expression
		want string
	}{
		{ast.Invoke(ast.Literal(int32(-5)), "ToString"), "(-5).ToString()"},
		{ast.Binary(ast.Binary(a, token.Subtract, b), token.Subtract, n), "(a - b) - n"},
		{ast.Binary(a, token.BooleanAnd, ast.Unary(token.Not, b)), "a AndAlso (Not b)"},
	}
	for _, tt := range verbose {
		ctx, sink := newContext(t, opts)
		require.NoError(t, ctx.Expr(tt.expr))
		require.Equal(t, tt.want, sink.String())
	}
}

func TestArrayUpperBound(t *testing.T) {
	intType := ast.TypeNamed(ast.TypeInt32)
	tests := []struct {
		expr *ast.ArrayCreate
		want string
	}{
		{&ast.ArrayCreate{Elem: intType, Sizes: []ast.Expression{ast.Literal(3)}}, "New Integer(2) {}"},
		{&ast.ArrayCreate{Elem: intType, Sizes: []ast.Expression{n}}, "New Integer(n - 1) {}"},
		{&ast.ArrayCreate{Elem: intType, Sizes: []ast.Expression{ast.Literal(2), ast.Literal(3)}}, "New Integer(1, 2) {}"},
		{&ast.ArrayCreate{Elem: intType, Initializers: []ast.Expression{ast.Literal(1), ast.Literal(2)}}, "New Integer() {1, 2}"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, renderExpr(t, tt.expr))
	}
}

func TestJaggedArrayTypes(t *testing.T) {
	intType := ast.TypeNamed(ast.TypeInt32)
	tests := []struct {
		typ  *ast.TypeRef
		want string
	}{
		{ast.ArrayOf(intType, 2), "Integer(,)"},
		{ast.ArrayOf(ast.ArrayOf(intType, 2), 1), "Integer()(,)"},
		{ast.ArrayOf(ast.ArrayOf(intType, 1), 2), "Integer(,)()"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, renderExpr(t, &ast.TypeRefExpr{Type: tt.typ}))
	}

	jagged := ast.ArrayOf(ast.ArrayOf(intType, 2), 1)
	decl := ast.Declare(jagged, "x", &ast.ArrayCreate{Elem: jagged.Elem, Sizes: []ast.Expression{ast.Literal(5)}})
	require.Equal(t, "Dim x As Integer()(,) = New Integer(4)(,) {}\n", renderStmt(t, decl))
}

func TestBreakResolvesInnermostLoop(t *testing.T) {
	loop := &ast.Iteration{
		Test: a,
		Body: []ast.Statement{&ast.If{Cond: b, True: []ast.Statement{&ast.Break{}}}},
	}
	want := "While a\n" +
		"    If b Then\n" +
		"        Exit While\n" +
		"    End If\n" +
		"End While\n"
	require.Equal(t, want, renderStmt(t, loop))

	each := &ast.ForEach{Var: "x", Collection: a, Body: []ast.Statement{&ast.Continue{}}}
	require.Equal(t, "For Each x In a\n    Continue For\nNext\n", renderStmt(t, each))

	do := &ast.DoWhile{Test: a, Body: []ast.Statement{&ast.Break{}}}
	require.Equal(t, "Do\n    Exit Do\nLoop While a\n", renderStmt(t, do))
}

func TestBreakOutsideLoop(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Strict = true
	ctx, _ := newContext(t, opts)
	err := ctx.Stmt(&ast.Break{})
	require.Error(t, err)
	require.True(t, errors.IsUnhandled(err))

	// lambda 主体截断了外层循环
	lambda := &ast.Lambda{Stmts: []ast.Statement{&ast.Break{}}}
	loop := &ast.Iteration{Test: a, Body: []ast.Statement{ast.Stmt(ast.Invoke(nil, "Run", lambda))}}
	ctx, _ = newContext(t, opts)
	require.True(t, errors.IsUnhandled(ctx.Stmt(loop)))
}

func TestForLoopDesugar(t *testing.T) {
	loop := &ast.Iteration{
		Init: ast.Declare(ast.TypeNamed(ast.TypeInt32), "i", ast.Literal(0)),
		Test: ast.Binary(i, token.LessThan, ast.Literal(10)),
		Incr: ast.Stmt(ast.Unary(token.PostIncrement, i)),
		Body: []ast.Statement{&ast.Continue{}},
	}
	want := "Dim i As Integer = 0\n" +
		"While i < 10\n" +
		"    i += 1\n" +
		"    Continue While\n" +
		"    i += 1\n" +
		"End While\n"
	require.Equal(t, want, renderStmt(t, loop))
	require.Len(t, loop.Body, 1)
}

func TestContinueRunsIncrement(t *testing.T) {
	// 内层 For Each 的 Continue 不执行外层 for 的递增
	loop := &ast.Iteration{
		Init: ast.Declare(ast.TypeNamed(ast.TypeInt32), "i", ast.Literal(0)),
		Test: ast.Binary(i, token.LessThan, n),
		Incr: ast.Stmt(ast.Unary(token.PostIncrement, i)),
		Body: []ast.Statement{
			&ast.ForEach{Var: "x", Collection: a, Body: []ast.Statement{&ast.Continue{}}},
			&ast.If{Cond: b, True: []ast.Statement{&ast.Continue{}}},
			&ast.Break{},
		},
	}
	want := "Dim i As Integer = 0\n" +
		"While i < n\n" +
		"    For Each x In a\n" +
		"        Continue For\n" +
		"    Next\n" +
		"    If b Then\n" +
		"        i += 1\n" +
		"        Continue While\n" +
		"    End If\n" +
		"    Exit While\n" +
		"    i += 1\n" +
		"End While\n"
	require.Equal(t, want, renderStmt(t, loop))

	// 普通 While 没有递增语句
	while := &ast.Iteration{Test: a, Body: []ast.Statement{&ast.Continue{}}}
	require.Equal(t, "While a\n    Continue While\nEnd While\n", renderStmt(t, while))
}

func TestStepDesugar(t *testing.T) {
	pre := ast.Let(a, ast.Unary(token.PreIncrement, i))
	want := "a = (Function()\n" +
		"    i += 1\n" +
		"    Return i\n" +
		"End Function)()\n"
	require.Equal(t, want, renderStmt(t, pre))

	post := ast.Let(a, ast.Unary(token.PostDecrement, i))
	want = "a = (Function()\n" +
		"    Try\n" +
		"        Return i\n" +
		"    Finally\n" +
		"        i -= 1\n" +
		"    End Try\n" +
		"End Function)()\n"
	require.Equal(t, want, renderStmt(t, post))

	require.Equal(t, "i += 1\n", renderStmt(t, ast.Stmt(ast.Unary(token.PreIncrement, i))))
}

func TestCompoundFallback(t *testing.T) {
	s, err := ast.NewCompoundAssign(a, token.Modulus, ast.Literal(2))
	require.NoError(t, err)
	require.Equal(t, "a = a Mod 2\n", renderStmt(t, s))

	s, err = ast.NewCompoundAssign(a, token.Add, ast.Literal(2))
	require.NoError(t, err)
	require.Equal(t, "a += 2\n", renderStmt(t, s))
}

func TestTryCatchDefaultVariable(t *testing.T) {
	s := &ast.Try{
		Body:    []ast.Statement{ast.Stmt(ast.Invoke(nil, "Run"))},
		Catches: []*ast.CatchClause{{Type: ast.TypeNamed("System.Exception")}},
	}
	want := "Try\n" +
		"    Run()\n" +
		"Catch ex As System.Exception\n" +
		"End Try\n"
	require.Equal(t, want, renderStmt(t, s))
}

func TestImportsHoisted(t *testing.T) {
	list := ast.TypeNamed("System.Collections.Generic.List`1", ast.TypeNamed(ast.TypeInt32))
	cls := ast.NewClass("C", ast.NewField("items", list, ast.AccessPrivate))
	unit := &ast.CompileUnit{Namespaces: []*ast.Namespace{{
		Name:    "Demo",
		Imports: []*ast.Import{{Namespace: "System.Collections.Generic"}},
		Types:   []*ast.TypeDecl{cls},
	}}}

	want := header +
		"Imports System.Collections.Generic\n" +
		"\n" +
		"Namespace Demo\n" +
		"    Class C\n" +
		"        Private items As List(Of Integer)\n" +
		"    End Class\n" +
		"End Namespace\n"
	require.Equal(t, want, renderUnit(t, unit))
}

func TestMembers(t *testing.T) {
	str := ast.TypeNamed(ast.TypeString)
	backing := ast.FieldOf(ast.This(), "_name")

	prop := ast.NewProperty("Name", str, ast.AccessPublic)
	prop.GetStmts = []ast.Statement{ast.Ret(backing)}
	prop.SetStmts = []ast.Statement{ast.Let(backing, &ast.PropertyValueRef{})}

	fn := ast.NewMethod("Twice", ast.TypeNamed(ast.TypeInt32), ast.AccessPublic, ast.Param(ast.TypeNamed(ast.TypeInt32), "v"))
	fn.Stmts = []ast.Statement{ast.Ret(ast.Binary(ast.Argument("v"), token.Multiply, ast.Literal(2)))}

	abstract := ast.NewMethod("Run", nil, ast.AccessProtected)
	abstract.Modifiers.Scope = ast.ScopeAbstract

	ctor := &ast.Constructor{
		MemberBase: ast.MemberBase{Modifiers: ast.MemberModifiers{Access: ast.AccessPublic}},
		BaseArgs:   []ast.Expression{ast.Literal("x")},
	}

	cls := ast.NewClass("Greeter", ctor, prop, fn, abstract)
	cls.Modifiers.Abstract = true
	cls.BaseTypes = []*ast.TypeRef{ast.TypeNamed("Base"), ast.TypeNamed("IGreeter")}

	want := header +
		"MustInherit Class Greeter\n" +
		"    Inherits Base\n" +
		"    Implements IGreeter\n" +
		"    Public New()\n" +
		"        MyBase.New(\"x\")\n" +
		"    End Sub\n" +
		"\n" +
		"    Public Property Name As String\n" +
		"        Get\n" +
		"            Return Me._name\n" +
		"        End Get\n" +
		"        Set(ByVal value As String)\n" +
		"            Me._name = value\n" +
		"        End Set\n" +
		"    End Property\n" +
		"\n" +
		"    Public Function Twice(ByVal v As Integer) As Integer\n" +
		"        Return v * 2\n" +
		"    End Function\n" +
		"\n" +
		"    Protected MustOverride Sub Run()\n" +
		"End Class\n"
	require.Equal(t, want, renderUnit(t, ast.NewUnit("", cls)))
}

func TestInterfaceAndEnum(t *testing.T) {
	iface := ast.NewInterface("IGreeter",
		ast.NewMethod("Greet", nil, ast.AccessPublic),
		ast.NewProperty("Name", ast.TypeNamed(ast.TypeString), ast.AccessPublic))
	enum := ast.NewEnum("Color", "Red", "Green")
	enum.BaseTypes = []*ast.TypeRef{ast.TypeNamed(ast.TypeByte)}

	want := header +
		"Interface IGreeter\n" +
		"    Sub Greet()\n" +
		"\n" +
		"    Property Name As String\n" +
		"End Interface\n" +
		"\n" +
		"Enum Color As Byte\n" +
		"    Red\n" +
		"    Green\n" +
		"End Enum\n"
	require.Equal(t, want, renderUnit(t, ast.NewUnit("", iface, enum)))
}

func TestGenericDelegate(t *testing.T) {
	del := ast.NewDelegate("Factory", ast.TypeNamed("T"))
	del.TypeParams = []*ast.TypeParam{{Name: "T", Constraints: []*ast.TypeRef{ast.TypeNamed("IDisposable")}, NewConstraint: true}}
	require.Equal(t, header+"Delegate Function Factory(Of T As {IDisposable, New})() As T\n",
		renderUnit(t, ast.NewUnit("", del)))
}

func TestPragmaNotSupported(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Strict = true
	ctx, _ := newContext(t, opts)
	err := ctx.Directive(&ast.PragmaDirective{Text: "warning disable"})
	require.True(t, errors.IsUnhandled(err))

	ctx, sink := newContext(t, nil)
	require.NoError(t, ctx.Directive(&ast.PragmaDirective{Text: "warning disable"}))
	require.Empty(t, sink.String())
}

func TestStackBalance(t *testing.T) {
	m := ast.NewMethod("Loop", nil, ast.AccessPublic)
	m.Stmts = []ast.Statement{&ast.Iteration{Test: a, Body: []ast.Statement{&ast.Break{}}}}
	cls := ast.NewClass("C", m)

	ctx, _ := newContext(t, nil)
	require.NoError(t, ctx.TypeDecl(cls))
	require.Zero(t, ctx.DeclDepth())
	require.Zero(t, ctx.MemberDepth())
	require.Zero(t, ctx.Extra.Depth())
}
