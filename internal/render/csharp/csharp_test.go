package csharp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/errors"
	"github.com/tangzhangming/codedom/internal/render"
	"github.com/tangzhangming/codedom/internal/token"
)

func newRenderer(t *testing.T) *render.Renderer[Extra] {
	t.Helper()
	r, err := render.NewRenderer(New(), nil)
	require.NoError(t, err)
	return r
}

// renderExpr 在新的上下文中渲染单个表达式
func renderExpr(t *testing.T, e ast.Expression, opts *render.Options) string {
	t.Helper()
	sink := render.NewStringSink()
	ctx := newRenderer(t).NewContext(sink, opts)
	require.NoError(t, ctx.Expr(e))
	return sink.String()
}

func renderStmt(t *testing.T, s ast.Statement) string {
	t.Helper()
	sink := render.NewStringSink()
	ctx := newRenderer(t).NewContext(sink, nil)
	require.NoError(t, ctx.Stmt(s))
	return sink.String()
}

func renderUnit(t *testing.T, u *ast.CompileUnit, opts *render.Options) string {
	t.Helper()
	out, err := newRenderer(t).RenderString(u, opts)
	require.NoError(t, err)
	return out
}

var (
	a = ast.Variable("a")
	b = ast.Variable("b")
	c = ast.Variable("c")
	i = ast.Variable("i")
)

func TestSimpleField(t *testing.T) {
	unit := ast.NewUnit("", ast.NewClass("C",
		ast.NewField("x", ast.TypeNamed(ast.TypeInt32), ast.AccessPublic)))

	require.Equal(t, "class C {\n    public int x;\n}\n", renderUnit(t, unit, nil))
}

func TestLiteralTypePreservation(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{int32(5), "5"},
		{int64(5), "5"},
		{int64(5000000000), "5000000000L"},
		{5, "5"},
		{uint32(5), "5U"},
		{uint64(5), "5UL"},
		{int16(3), "((short)(3))"},
		{uint8(7), "((byte)(7))"},
		{int8(-2), "((sbyte)(-2))"},
		{int32(math.MinInt32), "-2147483648"},
		{int64(math.MinInt64), "-9223372036854775808L"},
		{int16(math.MinInt16), "((short)(-32768))"},
		{float32(1.5), "1.5F"},
		{float32(2), "2.0F"},
		{float64(2), "2.0"},
		{ast.Decimal("1.25"), "1.25M"},
		{math.NaN(), "double.NaN"},
		{float32(math.Inf(1)), "float.PositiveInfinity"},
		{math.Inf(-1), "double.NegativeInfinity"},
		{nil, "null"},
		{true, "true"},
		{"a\"b\n", `"a\"b\n"`},
		{ast.Char('\''), `'\''`},
		{"tab\there", `"tab\there"`},
	}
	for _, tt := range tests {
		got := renderExpr(t, ast.Literal(tt.value), nil)
		require.Equal(t, tt.want, got, "literal %#v", tt.value)
	}
}

func TestKeywordEscaping(t *testing.T) {
	require.Equal(t, "@class", renderExpr(t, ast.Variable("class"), nil))
	require.Equal(t, "klass", renderExpr(t, ast.Variable("klass"), nil))
	require.Equal(t, "this.@event", renderExpr(t, ast.FieldOf(ast.This(), "event"), nil))
}

func TestParenthesisRemoval(t *testing.T) {
	tests := []struct {
		expr ast.Expression
		want string
	}{
		{ast.Binary(ast.Binary(a, token.Add, b), token.Multiply, c), "(a + b) * c"},
		{ast.Binary(a, token.Add, ast.Binary(b, token.Multiply, c)), "a + b * c"},
		{ast.Binary(ast.Binary(a, token.Subtract, b), token.Subtract, c), "a - b - c"},
		{ast.Binary(a, token.Subtract, ast.Binary(b, token.Subtract, c)), "a - (b - c)"},
		{ast.Unary(token.Negate, ast.Unary(token.Negate, a)), "-(-a)"},
		{ast.Unary(token.Not, ast.Binary(a, token.BooleanAnd, b)), "!(a && b)"},
		{ast.Invoke(ast.Binary(a, token.Add, b), "ToString"), "(a + b).ToString()"},
		{ast.Binary(a, token.Subtract, ast.Literal(-1)), "a - -1"},
		{ast.FieldOf(ast.Literal(-5), "X"), "(-5).X"},
		{ast.Unary(token.Negate, ast.Literal(-1)), "-(-1)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, renderExpr(t, tt.expr, nil))
	}

	opts := render.DefaultOptions()
	opts.RemoveRedundantParens = false
	got := renderExpr(t, ast.Binary(ast.Binary(a, token.Subtract, b), token.Subtract, c), opts)
	require.Equal(t, "(a - b) - c", got)
	require.Equal(t, "(-5).X", renderExpr(t, ast.FieldOf(ast.Literal(-5), "X"), opts))
	require.Equal(t, "(-2.5).ToString()", renderExpr(t, ast.Invoke(ast.Literal(-2.5), "ToString"), opts))
	require.Equal(t, "a - (-1)", renderExpr(t, ast.Binary(a, token.Subtract, ast.Literal(-1)), opts))
}

func TestStepOperators(t *testing.T) {
	require.Equal(t, "i++", renderExpr(t, ast.Unary(token.PostIncrement, i), nil))
	require.Equal(t, "--i", renderExpr(t, ast.Unary(token.PreDecrement, i), nil))
	require.Equal(t, "i++;\n", renderStmt(t, ast.Stmt(ast.Unary(token.PostIncrement, i))))
}

func TestExpressions(t *testing.T) {
	intType := ast.TypeNamed(ast.TypeInt32)
	init, err := ast.NewPropertyInit("X", ast.Literal(1))
	require.NoError(t, err)

	tests := []struct {
		expr ast.Expression
		want string
	}{
		{&ast.Cast{Type: ast.TypeNamed(ast.TypeString), Expr: a}, "((string)(a))"},
		{&ast.TypeOf{Type: intType}, "typeof(int)"},
		{&ast.DefaultValue{Type: intType}, "default(int)"},
		{&ast.Conditional{Cond: a, True: b, False: c}, "a ? b : c"},
		{&ast.ArrayCreate{Elem: intType, Sizes: []ast.Expression{ast.Literal(3)}}, "new int[3]"},
		{&ast.ArrayCreate{Elem: intType, Initializers: []ast.Expression{ast.Literal(1), ast.Literal(2)}}, "new int[] { 1, 2 }"},
		{&ast.ArrayCreate{Elem: intType, Sizes: []ast.Expression{ast.Literal(2), ast.Literal(3)}}, "new int[2, 3]"},
		{&ast.ArrayCreate{Elem: ast.ArrayOf(intType, 1), Sizes: []ast.Expression{ast.Literal(2)}}, "new int[2][]"},
		{&ast.ObjectCreate{Type: ast.TypeNamed("Point"), Initializers: []*ast.PropertyInit{init}}, "new Point() { X = 1 }"},
		{&ast.Indexer{Target: a, Indices: []ast.Expression{ast.Literal(0)}}, "a[0]"},
		{ast.Invoke(a, "M", &ast.Direction{Dir: ast.DirOut, Expr: b}), "a.M(out b)"},
		{&ast.DelegateCreate{Type: ast.TypeNamed("Handler"), Target: ast.This(), Method: "OnClick"}, "new Handler(this.OnClick)"},
		{&ast.Lambda{Params: []*ast.ParamDecl{ast.Param(nil, "x")}, Body: ast.Binary(ast.Variable("x"), token.Multiply, ast.Literal(2))}, "x => x * 2"},
		{&ast.Lambda{Params: []*ast.ParamDecl{ast.Param(intType, "x")}, Body: ast.Variable("x")}, "(int x) => x"},
		{ast.Binary(a, token.NullCoalesce, b), "a ?? b"},
		{ast.StaticOf(ast.TypeNamed("System.Console")), "System.Console"},
		{&ast.TypeRefExpr{Type: ast.NullableOf(intType)}, "int?"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, renderExpr(t, tt.expr, nil))
	}
}

func TestJaggedArrayTypes(t *testing.T) {
	intType := ast.TypeNamed(ast.TypeInt32)
	tests := []struct {
		typ  *ast.TypeRef
		want string
	}{
		{ast.ArrayOf(intType, 1), "int[]"},
		{ast.ArrayOf(intType, 2), "int[,]"},
		{ast.ArrayOf(ast.ArrayOf(intType, 2), 1), "int[][,]"},
		{ast.ArrayOf(ast.ArrayOf(intType, 1), 2), "int[,][]"},
		{ast.ArrayOf(ast.ArrayOf(ast.ArrayOf(intType, 1), 3), 2), "int[,][,,][]"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, renderExpr(t, &ast.TypeRefExpr{Type: tt.typ}, nil))
	}

	// 声明的类型与创建表达式的秩顺序一致
	jagged := ast.ArrayOf(ast.ArrayOf(intType, 2), 1)
	decl := ast.Declare(jagged, "x", &ast.ArrayCreate{Elem: jagged.Elem, Sizes: []ast.Expression{ast.Literal(5)}})
	require.Equal(t, "int[][,] x = new int[5][,];\n", renderStmt(t, decl))
}

func TestForLoop(t *testing.T) {
	loop := &ast.Iteration{
		Init: ast.Declare(ast.TypeNamed(ast.TypeInt32), "i", ast.Literal(0)),
		Test: ast.Binary(i, token.LessThan, ast.Literal(10)),
		Incr: ast.Stmt(ast.Unary(token.PostIncrement, i)),
		Body: []ast.Statement{ast.Stmt(ast.Invoke(nil, "F"))},
	}
	require.Equal(t, "for (int i = 0; i < 10; i++) {\n    F();\n}\n", renderStmt(t, loop))
}

func TestIfChain(t *testing.T) {
	s := ast.IfChain([]ast.CondBlock{
		{Cond: a, Stmts: []ast.Statement{ast.Ret(ast.Literal(1))}},
		{Cond: b, Stmts: []ast.Statement{ast.Ret(ast.Literal(2))}},
	}, []ast.Statement{ast.Ret(ast.Literal(3))})

	want := "if (a) {\n" +
		"    return 1;\n" +
		"}\n" +
		"else if (b) {\n" +
		"    return 2;\n" +
		"}\n" +
		"else {\n" +
		"    return 3;\n" +
		"}\n"
	require.Equal(t, want, renderStmt(t, s))
}

func TestTryCatch(t *testing.T) {
	s := &ast.Try{
		Body: []ast.Statement{ast.Stmt(ast.Invoke(nil, "Run"))},
		Catches: []*ast.CatchClause{
			{Type: ast.TypeNamed("System.Exception"), Var: "e", Body: []ast.Statement{&ast.Throw{}}},
		},
		Finally: []ast.Statement{ast.Stmt(ast.Invoke(nil, "Done"))},
	}
	want := "try {\n" +
		"    Run();\n" +
		"}\n" +
		"catch (System.Exception e) {\n" +
		"    throw;\n" +
		"}\n" +
		"finally {\n" +
		"    Done();\n" +
		"}\n"
	require.Equal(t, want, renderStmt(t, s))
}

func TestCompoundAssign(t *testing.T) {
	s, err := ast.NewCompoundAssign(a, token.ShiftLeft, ast.Literal(2))
	require.NoError(t, err)
	require.Equal(t, "a <<= 2;\n", renderStmt(t, s))
}

func TestNamespaceImports(t *testing.T) {
	list := ast.TypeNamed("System.Collections.Generic.List`1", ast.TypeNamed(ast.TypeInt32))
	cls := ast.NewClass("C", ast.NewField("items", list, ast.AccessPrivate))
	cls.Modifiers.Access = ast.AccessPublic
	unit := &ast.CompileUnit{Namespaces: []*ast.Namespace{{
		Name:    "Demo",
		Imports: []*ast.Import{{Namespace: "System.Collections.Generic"}},
		Types:   []*ast.TypeDecl{cls},
	}}}

	want := "namespace Demo {\n" +
		"    using System.Collections.Generic;\n" +
		"\n" +
		"    public class C {\n" +
		"        private List<int> items;\n" +
		"    }\n" +
		"}\n"
	require.Equal(t, want, renderUnit(t, unit, nil))

	opts := render.DefaultOptions()
	opts.FullyQualify = true
	require.Contains(t, renderUnit(t, unit, opts), "private System.Collections.Generic.List<int> items;")
}

func TestMembers(t *testing.T) {
	str := ast.TypeNamed(ast.TypeString)
	method := ast.NewMethod("Greet", str, ast.AccessPublic, ast.Param(str, "name"))
	method.Stmts = []ast.Statement{ast.Ret(ast.Binary(ast.Literal("Hi "), token.Add, ast.Argument("name")))}

	abstract := ast.NewMethod("Run", nil, ast.AccessProtected)
	abstract.Modifiers.Scope = ast.ScopeAbstract

	prop := ast.NewProperty("Name", str, ast.AccessPublic)
	ctor := &ast.Constructor{
		MemberBase: ast.MemberBase{Modifiers: ast.MemberModifiers{Access: ast.AccessPublic}},
		BaseArgs:   []ast.Expression{ast.Literal("x")},
	}

	cls := ast.NewClass("Greeter", ctor, prop, method, abstract)
	cls.Modifiers.Abstract = true
	cls.BaseTypes = []*ast.TypeRef{ast.TypeNamed("Base")}

	want := "abstract class Greeter : Base {\n" +
		"    public Greeter() : base(\"x\") {\n" +
		"    }\n" +
		"\n" +
		"    public string Name { get; set; }\n" +
		"\n" +
		"    public string Greet(string name) {\n" +
		"        return \"Hi \" + name;\n" +
		"    }\n" +
		"\n" +
		"    protected abstract void Run();\n" +
		"}\n"
	require.Equal(t, want, renderUnit(t, ast.NewUnit("", cls), nil))
}

func TestEnumAndDelegate(t *testing.T) {
	enum := ast.NewEnum("Color", "Red", "Green")
	del := ast.NewDelegate("Handler", nil, ast.Param(ast.TypeNamed(ast.TypeObject), "sender"))

	want := "enum Color {\n" +
		"    Red,\n" +
		"    Green,\n" +
		"}\n" +
		"\n" +
		"delegate void Handler(object sender);\n"
	require.Equal(t, want, renderUnit(t, ast.NewUnit("", enum, del), nil))
}

func TestEnumStrictCheck(t *testing.T) {
	enum := ast.NewEnum("Color", "Red")
	enum.Members = append(enum.Members, ast.NewMethod("M", nil, ast.AccessPublic))
	unit := ast.NewUnit("", enum)

	opts := render.DefaultOptions()
	opts.Strict = true
	_, err := newRenderer(t).RenderString(unit, opts)
	require.Error(t, err)
	require.True(t, errors.IsConsistency(err))
	require.Equal(t, errors.G0101, errors.CodeOf(err))

	_, err = newRenderer(t).RenderString(unit, nil)
	require.NoError(t, err)
}

func TestGenericConstraints(t *testing.T) {
	cls := ast.NewClass("Box")
	cls.TypeParams = []*ast.TypeParam{{
		Name:          "T",
		Constraints:   []*ast.TypeRef{ast.TypeNamed("IComparable")},
		NewConstraint: true,
	}}
	require.Equal(t, "class Box<T> where T : IComparable, new() {\n}\n",
		renderUnit(t, ast.NewUnit("", cls), nil))
}

func TestDirectivesAndComments(t *testing.T) {
	f := ast.NewField("x", ast.TypeNamed(ast.TypeInt32), ast.AccessPrivate)
	f.Comments = []*ast.Comment{{Text: "the value", Doc: true}}
	f.StartDirectives = []ast.Directive{&ast.RegionDirective{Start: true, Text: "State"}}
	f.EndDirectives = []ast.Directive{&ast.RegionDirective{}}
	f.Attributes = []*ast.AttributeDecl{{Type: ast.TypeNamed("NonSerialized")}}

	want := "class C {\n" +
		"    /// the value\n" +
		"    #region State\n" +
		"    [NonSerialized]\n" +
		"    private int x;\n" +
		"    #endregion\n" +
		"}\n"
	require.Equal(t, want, renderUnit(t, ast.NewUnit("", ast.NewClass("C", f)), nil))
}
