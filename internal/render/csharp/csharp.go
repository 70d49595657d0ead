// Package csharp 实现花括号 / 分号语法族的渲染配置
package csharp

import (
	"strings"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/render"
	"github.com/tangzhangming/codedom/internal/token"
)

// Name 配置名称
const Name = "csharp"

// Extra 花括号语法不需要额外的渲染状态
type Extra struct{}

// New 创建配置
func New() *render.Profile[Extra] {
	return &render.Profile[Extra]{
		Name:     Name,
		NewExtra: func() Extra { return Extra{} },

		// ---------- 词法 ----------
		Terminator:       ";",
		AssignSymbol:     "=",
		MemberAccess:     ".",
		EscapeIdentifier: escapeIdentifier,
		Decl:             render.DeclSyntax{TypeFirst: true, Infer: "var"},

		// ---------- 类型引用 ----------
		BuiltinType:  lookup(builtinTypes),
		TypeArgs:     render.Delims{Open: "<", Close: ">"},
		ArrayRank:    arrayRank,
		Nullable:     func(inner string) string { return inner + "?" },
		GlobalPrefix: "global::",

		// ---------- 字面量 ----------
		Null:          "null",
		True:          "true",
		False:         "false",
		Quote:         quote,
		QuoteChar:     quoteChar,
		DefaultInt:    ast.TypeInt32,
		DefaultFloat:  ast.TypeDouble,
		LiteralSuffix: lookup(suffixes),

		// ---------- 表达式 ----------
		This:                 "this",
		Base:                 "base",
		New:                  "new ",
		BinaryOp:             lookup(binaryOps),
		UnaryOp:              lookup(unaryOps),
		WrapOperand:          render.WrapByPrecedence(precedence),
		SupportsParenRemoval: true,
		Conditional:          &render.ConditionalSyntax{Then: " ? ", Else: " : "},
		Cast:                 &render.CastSyntax{TypeFirst: true, Open: "((", Mid: ")(", Close: "))"},
		TypeOf:               &render.Delims{Open: "typeof(", Close: ")"},
		Default:              &render.Delims{Open: "default(", Close: ")"},
		ObjectInit:           &render.InitSyntax{Open: " { ", Sep: ", ", Close: " }"},
		Array: &render.ArraySyntax{
			Bounds:    render.Delims{Open: "[", Close: "]"},
			InitOpen:  " { ",
			InitSep:   ", ",
			InitClose: " }",
		},
		Index:          render.Delims{Open: "[", Close: "]"},
		ArgDirection:   direction,
		DelegateCreate: &render.Delims{Open: "(", Close: ")"},
		Lambda:         &render.LambdaSyntax{Arrow: " =>", BareSingleParam: true},
		PropertyValue:  "value",

		// ---------- 语句 ----------
		OpenBlock:      openBlock,
		CloseBlock:     closeBlock,
		CompoundSymbol: compoundSymbol,
		If: &render.IfSyntax{
			If:              "if (",
			Then:            ")",
			ElseIf:          "else if (",
			ElseThen:        ")",
			Else:            "else",
			CloseBeforeElse: true,
		},
		While:   &render.Delims{Open: "while (", Close: ")"},
		For:     &render.ForSyntax{Open: "for (", Sep: "; ", Close: ")"},
		DoWhile: &render.DoSyntax{Do: "do", Tail: " while (", TailClose: ");"},
		ForEach: &render.ForEachSyntax{Open: "foreach (", In: " in ", Close: ")"},
		Using:   &render.Delims{Open: "using (", Close: ")"},
		Try: &render.TrySyntax{
			Try:             "try",
			Catch:           "catch",
			CatchOpen:       " (",
			CatchClose:      ")",
			Finally:         "finally",
			CloseBeforeNext: true,
		},
		Attach:   &render.EventSyntax{Sep: " += "},
		Remove:   &render.EventSyntax{Sep: " -= "},
		Goto:     "goto",
		Return:   "return",
		Break:    "break",
		Continue: "continue",
		Throw:    "throw",

		// ---------- 成员 ----------
		AccessKeyword: func(a ast.Accessibility) string { return accessKeywords[a] },
		ScopeKeyword:  func(s ast.Scope) string { return scopeKeywords[s] },
		NewModifier:   "new ",
		TypeModifier: render.TypeModifierSyntax{
			Abstract: "abstract",
			Sealed:   "sealed",
			Static:   "static",
			Partial:  "partial",
		},
		EnumSeparator:  ",",
		Event:          "event ",
		Signature:      render.SignatureSyntax{ReturnFirst: true, Void: "void"},
		Param:          render.ParamSyntax{Varargs: "params "},
		ParamDirection: direction,
		TypeParams: render.TypeParamSyntax{
			Open:  "<",
			Close: ">",
			Where: " where ",
			Colon: " : ",
			New:   "new()",
		},
		Property: &render.PropertySyntax{
			Indexer:   "this",
			Params:    render.Delims{Open: "[", Close: "]"},
			Get:       "get",
			Set:       "set",
			AutoOpen:  " {",
			AutoGet:   "get;",
			AutoSet:   "set;",
			AutoClose: " }",
		},
		Ctor: &render.CtorSyntax{
			Static:       "static ",
			BaseInHeader: true,
			Base:         " : base(",
			Chained:      " : this(",
		},
		EntryPoint:  "Main",
		DeclKeyword: func(k ast.TypeKind) string { return declKeywords[k] },
		TypeBases:   typeBases,

		// ---------- 命名空间 ----------
		Namespace:        "namespace ",
		NamespaceImports: true,
		Import:           render.ImportSyntax{Keyword: "using ", AliasSep: " = "},

		// ---------- 注释 / 特性 / 指令 ----------
		Comment: render.CommentSyntax{Line: "//", Doc: "///"},
		Attribute: render.AttributeSyntax{
			Open:      "[",
			Close:     "]",
			TargetSep: ": ",
			NamedSep:  " = ",
		},
		Region: &render.RegionSyntax{
			Start: func(text string) string { return "#region " + text },
			End:   "#endregion",
		},
		Pragma: "#pragma ",
	}
}

// lookup 把映射表包装成 (值, 是否存在) 形式的钩子
func lookup[K comparable](m map[K]string) func(K) (string, bool) {
	return func(k K) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func escapeIdentifier(name string) string {
	if keywords.Contains(name) {
		return "@" + name
	}
	return name
}

func arrayRank(rank int) string {
	return "[" + strings.Repeat(",", rank-1) + "]"
}

func quote(s string) string {
	return `"` + render.EscapeString(s, '\\', '"', render.BackslashEscape) + `"`
}

func quoteChar(r rune) string {
	return `'` + render.EscapeString(string(r), '\\', '\'', render.BackslashEscape) + `'`
}

func direction(d ast.FieldDirection) (string, bool) {
	switch d {
	case ast.DirRef:
		return "ref ", true
	case ast.DirOut:
		return "out ", true
	case ast.DirIn:
		return "in ", true
	}
	return "", false
}

func compoundSymbol(op token.Operator) (string, bool) {
	if !op.IsShorthand() {
		return "", false
	}
	sym, ok := binaryOps[op]
	if !ok {
		return "", false
	}
	return sym + "=", true
}

// ============================================================================
// 块
// ============================================================================

func openBlock(ctx *render.Context[Extra], _ render.BlockKind) {
	ctx.Write(" {")
}

func closeBlock(ctx *render.Context[Extra], _ render.BlockKind) {
	ctx.WriteIndent()
	ctx.Write("}")
}

// typeBases 基类列表与泛型约束 class C<T> : B, I where T : new()
func typeBases(ctx *render.Context[Extra], d *ast.TypeDecl) error {
	if len(d.BaseTypes) > 0 {
		ctx.Write(" : ")
		if err := ctx.Types(d.BaseTypes, ", "); err != nil {
			return err
		}
	}
	return ctx.WhereClauses(d.TypeParams)
}
