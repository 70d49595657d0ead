package render

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/errors"
	"github.com/tangzhangming/codedom/internal/token"
)

// testProfile 只填写测试需要的钩子
func testProfile() *Profile[int] {
	return &Profile[int]{
		Name:         "test",
		Terminator:   ";",
		AssignSymbol: "=",
		MemberAccess: ".",
		Decl:         DeclSyntax{TypeFirst: true},
		Null:         "null",
		DefaultInt:   ast.TypeInt32,
		DefaultFloat: ast.TypeDouble,
		LiteralSuffix: func(name string) (string, bool) {
			if name == ast.TypeInt64 {
				return "L", true
			}
			return "", false
		},
		Cast: &CastSyntax{TypeFirst: true, Open: "(", Mid: ")"},
		BinaryOp: func(op token.Operator) (string, bool) {
			switch op {
			case token.Add:
				return "+", true
			case token.Subtract:
				return "-", true
			}
			return "", false
		},
		Return: "return",
		OpenBlock: func(ctx *Context[int], _ BlockKind) {
			ctx.Extra++
			ctx.Write(" {")
		},
		CloseBlock: func(ctx *Context[int], _ BlockKind) {
			ctx.Extra--
			ctx.WriteIndent()
			ctx.Write("}")
		},
		Signature: SignatureSyntax{ReturnFirst: true, Void: "void"},
		DeclKeyword: func(k ast.TypeKind) string {
			if k == ast.KindClass {
				return "class "
			}
			return ""
		},
	}
}

func newTestContext(t *testing.T, opts *Options) (*Context[int], *StringSink) {
	t.Helper()
	r, err := NewRenderer(testProfile(), nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	sink := NewStringSink()
	return r.NewContext(sink, opts), sink
}

func strictOptions() *Options {
	opts := DefaultOptions()
	opts.Strict = true
	return opts
}

// ============================================================================
// 处理器链
// ============================================================================

func TestChainPriority(t *testing.T) {
	ctx, sink := newTestContext(t, nil)

	var calls []string
	handler := func(name string, accept bool) Handler[ast.Expression, int] {
		return func(c *Context[int], _ ast.Expression) (bool, error) {
			calls = append(calls, name)
			if accept {
				c.Write(name)
			}
			return accept, nil
		}
	}
	chain := NewChain[ast.Expression, int](CategoryExpression,
		handler("h1", true), handler("h2", true), handler("h3", false))

	ok, err := chain.Handle(ctx, ast.Variable("x"))
	if err != nil || !ok {
		t.Fatalf("expected handled, got ok=%v err=%v", ok, err)
	}
	if got := strings.Join(calls, ","); got != "h3,h2" {
		t.Errorf("expected h3,h2 to be tried, got %s", got)
	}
	if sink.String() != "h2" {
		t.Errorf("expected only h2 output, got %q", sink.String())
	}
}

func TestEmptyChain(t *testing.T) {
	chain := NewChain[ast.Expression, int](CategoryExpression)

	ctx, _ := newTestContext(t, strictOptions())
	_, err := chain.Handle(ctx, ast.Variable("x"))
	if !errors.IsUnhandled(err) {
		t.Fatalf("expected UnhandledNodeError, got %v", err)
	}
	if errors.CodeOf(err) != errors.G0001 {
		t.Errorf("expected %s, got %s", errors.G0001, errors.CodeOf(err))
	}

	ctx, _ = newTestContext(t, nil)
	ok, err := chain.Handle(ctx, ast.Variable("x"))
	if ok || err != nil {
		t.Errorf("lenient mode: expected (false, nil), got (%v, %v)", ok, err)
	}
}

func TestLenientSkip(t *testing.T) {
	ctx, sink := newTestContext(t, nil)
	// 测试配置没有 break 关键字
	if err := ctx.Stmt(&ast.Break{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.String() != "" {
		t.Errorf("expected nothing written, got %q", sink.String())
	}
}

// ============================================================================
// 栈纪律
// ============================================================================

func TestStackBalanceOnError(t *testing.T) {
	m := ast.NewMethod("Run", nil, ast.AccessPublic)
	m.Stmts = []ast.Statement{&ast.Break{}}
	cls := ast.NewClass("C", m)

	ctx, _ := newTestContext(t, strictOptions())
	err := ctx.TypeDecl(cls)
	if !errors.IsUnhandled(err) {
		t.Fatalf("expected UnhandledNodeError, got %v", err)
	}
	if ctx.DeclDepth() != 0 || ctx.MemberDepth() != 0 {
		t.Errorf("stacks not unwound: decl=%d member=%d", ctx.DeclDepth(), ctx.MemberDepth())
	}
}

func TestEmptyStackRead(t *testing.T) {
	ctx, _ := newTestContext(t, nil)
	if _, err := ctx.CurrentDecl(); errors.CodeOf(err) != errors.G0002 {
		t.Errorf("expected %s for empty declaration stack, got %v", errors.G0002, err)
	}
	if _, err := ctx.CurrentMember(); errors.CodeOf(err) != errors.G0002 {
		t.Errorf("expected %s for empty member stack, got %v", errors.G0002, err)
	}
}

func TestClassLayout(t *testing.T) {
	m := ast.NewMethod("Run", nil, 0)
	m.Stmts = []ast.Statement{ast.Ret(nil)}
	cls := ast.NewClass("C", ast.NewField("x", ast.TypeNamed("Int"), 0), m)

	ctx, sink := newTestContext(t, nil)
	if err := ctx.TypeDecl(cls); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "class C {\n" +
		"    Int x;\n" +
		"\n" +
		"    void Run() {\n" +
		"        return;\n" +
		"    }\n" +
		"}\n"
	if sink.String() != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, sink.String())
	}
	if ctx.Extra != 0 {
		t.Errorf("unbalanced blocks: %d", ctx.Extra)
	}
}

// ============================================================================
// 字面量
// ============================================================================

func TestNumericLiteral(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{int32(7), "7"},
		{7, "7"},
		{int64(7), "7"},
		{int64(5000000000), "5000000000L"},
		{int16(3), "(System.Int16)3"},
		{1.5, "1.5"},
		{3.0, "3.0"},
		{float32(0.5), "(System.Single)0.5"},
		{nil, "null"},
	}
	for _, tt := range tests {
		ctx, sink := newTestContext(t, nil)
		if err := ctx.Expr(ast.Literal(tt.value)); err != nil {
			t.Fatalf("%#v: unexpected error %v", tt.value, err)
		}
		if sink.String() != tt.want {
			t.Errorf("%#v: expected %q, got %q", tt.value, tt.want, sink.String())
		}
	}
}

func TestParensWithoutRemoval(t *testing.T) {
	a, b, c := ast.Variable("a"), ast.Variable("b"), ast.Variable("c")
	ctx, sink := newTestContext(t, nil)
	err := ctx.Expr(ast.Binary(a, token.Subtract, ast.Binary(b, token.Add, c)))
	if err != nil {
		t.Fatal(err)
	}
	if sink.String() != "a - (b + c)" {
		t.Errorf("got %q", sink.String())
	}
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		in, want string
		escape   rune
		control  func(rune) (string, bool)
	}{
		{`say "hi"`, `say \"hi\"`, '\\', BackslashEscape},
		{`a\b`, `a\\b`, '\\', BackslashEscape},
		{"tab\there", `tab\there`, '\\', BackslashEscape},
		{"\x01", `\u0001`, '\\', BackslashEscape},
		{`say "hi"`, `say ""hi""`, '"', nil},
	}
	for _, tt := range tests {
		if got := EscapeString(tt.in, tt.escape, '"', tt.control); got != tt.want {
			t.Errorf("EscapeString(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	for v, want := range map[float64]string{1: "1.0", 0.25: "0.25", 1e21: "1e+21"} {
		if got := FormatFloat(v, 64); got != want {
			t.Errorf("FormatFloat(%v): expected %s, got %s", v, want, got)
		}
	}
}

// ============================================================================
// 配置
// ============================================================================

func TestValidateProfile(t *testing.T) {
	p := testProfile()
	p.AssignSymbol = ""
	_, err := NewRenderer(p, nil)
	if errors.CodeOf(err) != errors.G0202 {
		t.Errorf("expected %s, got %v", errors.G0202, err)
	}
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte("[render]\nstrict = true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !opts.Strict {
		t.Error("strict should be set")
	}
	if !opts.RemoveRedundantParens || opts.IndentUnit != DefaultIndentUnit {
		t.Errorf("missing keys should keep defaults, got %+v", opts)
	}

	if _, err := ParseOptions([]byte("[render\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestOptionsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	opts := DefaultOptions()
	opts.IndentUnit = "\t"
	opts.FullyQualify = true
	if err := opts.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *opts {
		t.Errorf("expected %+v, got %+v", opts, loaded)
	}
}

func TestIndentUnit(t *testing.T) {
	opts := DefaultOptions()
	opts.IndentUnit = "\t"
	ctx, sink := newTestContext(t, opts)
	ctx.Indent()
	ctx.Indent()
	ctx.Line("x")
	ctx.Unindent()
	ctx.Unindent()
	ctx.Unindent()
	if ctx.IndentLevel() != 0 {
		t.Errorf("indent level should not go negative, got %d", ctx.IndentLevel())
	}
	if sink.String() != "\t\tx\n" {
		t.Errorf("got %q", sink.String())
	}
}
