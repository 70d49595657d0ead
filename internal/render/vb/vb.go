// Package vb 实现关键字 / End 块语法族的渲染配置
//
// 这种语法没有自增/自减运算符，没有 break 关键字（Exit For / Exit While / Exit Do
// 取决于外层循环），数组声明的是上界而不是长度；这些差异全部在本包的钩子与
// 额外处理器中处理。
package vb

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/render"
	"github.com/tangzhangming/codedom/internal/token"
)

// Name 配置名称
const Name = "vb"

// New 创建配置
func New() *render.Profile[Extra] {
	return &render.Profile[Extra]{
		Name:     Name,
		NewExtra: func() Extra { return Extra{} },

		// ---------- 词法 ----------
		Terminator:       "",
		AssignSymbol:     "=",
		MemberAccess:     ".",
		EscapeIdentifier: escapeIdentifier,
		Decl:             render.DeclSyntax{As: " As "},

		// ---------- 类型引用 ----------
		BuiltinType:  lookup(builtinTypes),
		TypeArgs:     render.Delims{Open: "(Of ", Close: ")"},
		ArrayRank:    arrayRank,
		Nullable:     func(inner string) string { return "Nullable(Of " + inner + ")" },
		GlobalPrefix: "Global.",

		// ---------- 字面量 ----------
		Null:          "Nothing",
		True:          "True",
		False:         "False",
		Quote:         quote,
		QuoteChar:     quoteChar,
		DefaultInt:    ast.TypeInt32,
		DefaultFloat:  ast.TypeDouble,
		LiteralSuffix: lookup(suffixes),

		MinValueMember: true,

		// ---------- 表达式 ----------
		This:        "Me",
		Base:        "MyBase",
		New:         "New ",
		BinaryOp:    lookup(binaryOps),
		UnaryOp:     lookup(unaryOps),
		WrapOperand: render.WrapByPrecedence(precedence),
		Conditional: &render.ConditionalSyntax{Open: "If(", Then: ", ", Else: ", ", Close: ")"},
		Cast:        &render.CastSyntax{Open: "CType(", Mid: ", ", Close: ")"},
		TypeOf:      &render.Delims{Open: "GetType(", Close: ")"},
		Default:     &render.Delims{Open: "CType(Nothing, ", Close: ")"},
		ObjectInit:  &render.InitSyntax{Open: " With {", Sep: ", ", Close: "}", MemberPrefix: "."},
		Array: &render.ArraySyntax{
			Bounds:    render.Delims{Open: "(", Close: ")"},
			InitOpen:  " {",
			InitSep:   ", ",
			InitClose: "}",
			EmptyInit: " {}",
		},
		ArrayBound:     upperBound,
		Index:          render.Delims{Open: "(", Close: ")"},
		ArgDirection:   func(ast.FieldDirection) (string, bool) { return "", true },
		MethodGroup:    "AddressOf ",
		DelegateCreate: &render.Delims{Open: "(", Close: ")"},
		Lambda:         &render.LambdaSyntax{Function: "Function", Sub: "Sub"},
		PropertyValue:  "value",

		SupportsParenRemoval: true,

		// ---------- 语句 ----------
		OpenBlock:      openBlock,
		CloseBlock:     closeBlock,
		CompoundSymbol: lookup(compoundOps),
		LocalVar:       "Dim ",
		If: &render.IfSyntax{
			If:       "If ",
			Then:     " Then",
			ElseIf:   "ElseIf ",
			ElseThen: " Then",
			Else:     "Else",
		},
		While:   &render.Delims{Open: "While "},
		DoWhile: &render.DoSyntax{Do: "Do", Tail: " While "},
		ForEach: &render.ForEachSyntax{Open: "For Each ", In: " In "},
		Using:   &render.Delims{Open: "Using "},
		Try: &render.TrySyntax{
			Try:        "Try",
			Catch:      "Catch",
			CatchOpen:  " ",
			DefaultVar: "ex",
			Finally:    "Finally",
		},
		Attach: &render.EventSyntax{Prefix: "AddHandler ", Sep: ", "},
		Remove: &render.EventSyntax{Prefix: "RemoveHandler ", Sep: ", "},
		Goto:   "GoTo",
		Return: "Return",
		Throw:  "Throw",

		// ---------- 成员 ----------
		AccessKeyword:  func(a ast.Accessibility) string { return accessKeywords[a] },
		ScopeKeyword:   func(s ast.Scope) string { return scopeKeywords[s] },
		NewModifier:    "Shadows ",
		ImplicitAccess: implicitAccess,
		TypeModifier: render.TypeModifierSyntax{
			Abstract: "MustInherit",
			Sealed:   "NotInheritable",
			Partial:  "Partial",
		},
		Event: "Event ",
		Signature: render.SignatureSyntax{
			Function: "Function ",
			Sub:      "Sub ",
			ReturnAs: " As ",
		},
		Param: render.ParamSyntax{
			Varargs:  "ParamArray ",
			Optional: "Optional ",
			ByVal:    "ByVal ",
		},
		ParamDirection: func(ast.FieldDirection) (string, bool) { return "ByRef ", true },
		TypeParams: render.TypeParamSyntax{
			Open:      "(Of ",
			Close:     ")",
			Inline:    true,
			New:       "New",
			ListOpen:  "{",
			ListClose: "}",
		},
		Property: &render.PropertySyntax{
			Keyword:   "Property ",
			ReadOnly:  "ReadOnly ",
			WriteOnly: "WriteOnly ",
			Default:   "Default ",
			Params:    render.Delims{Open: "(", Close: ")"},
			Get:       "Get",
			Set:       "Set",
			SetValue:  true,
		},
		Ctor: &render.CtorSyntax{
			Name:    "New",
			Static:  "Shared ",
			Base:    "MyBase.New(",
			Chained: "Me.New(",
		},
		EntryPoint:  "Main",
		DeclKeyword: func(k ast.TypeKind) string { return declKeywords[k] },
		TypeBases:   typeBases,

		// ---------- 命名空间 ----------
		Namespace:    "Namespace ",
		Import:       render.ImportSyntax{Keyword: "Imports ", AliasSep: " = "},
		UnitPrologue: unitPrologue,

		// ---------- 注释 / 特性 / 指令 ----------
		Comment: render.CommentSyntax{Line: "'", Doc: "'''"},
		Attribute: render.AttributeSyntax{
			Open:      "<",
			Close:     ">",
			TargetSep: ": ",
			NamedSep:  ":=",
			Target:    strcase.ToCamel,
		},
		Region: &render.RegionSyntax{
			Start: func(text string) string { return `#Region "` + text + `"` },
			End:   "#End Region",
		},

		ExtraHandlers: registerHandlers,
	}
}

func lookup[K comparable](m map[K]string) func(K) (string, bool) {
	return func(k K) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func escapeIdentifier(name string) string {
	if keywords.Contains(name) {
		return "[" + name + "]"
	}
	return name
}

func arrayRank(rank int) string {
	return "(" + strings.Repeat(",", rank-1) + ")"
}

// implicitAccess 字段没有任何修饰符时需要 Dim；Const / Shared / Shadows 本身即可引导声明
func implicitAccess(ctx *render.Context[Extra], m *ast.MemberModifiers) string {
	if kind, err := ctx.CurrentMember(); err != nil || kind != render.MemberField {
		return ""
	}
	switch {
	case m.New:
		return ""
	case m.Scope == ast.ScopeUnset, m.Scope == ast.ScopeFinal, !m.Scope.IsValid():
		return "Dim"
	}
	return ""
}

// ============================================================================
// 类型声明
// ============================================================================

// typeBases 基类型各占一行
//
// 类的第一个基类型为 Inherits，其余为 Implements；接口全部 Inherits；
// 结构体全部 Implements；枚举的基类型是底层类型 (Enum E As Byte)。
func typeBases(ctx *render.Context[Extra], d *ast.TypeDecl) error {
	if len(d.BaseTypes) == 0 {
		return nil
	}
	kind := d.TypeKind()
	if kind == ast.KindEnum {
		ctx.Write(" As ")
		return ctx.Type(d.BaseTypes[0])
	}

	ctx.Indent()
	defer ctx.Unindent()
	for i, t := range d.BaseTypes {
		kw := "Implements "
		if kind == ast.KindInterface || (kind == ast.KindClass && i == 0) {
			kw = "Inherits "
		}
		ctx.Newline()
		ctx.WriteIndent()
		ctx.Write(kw)
		if err := ctx.Type(t); err != nil {
			return err
		}
	}
	return nil
}

// unitPrologue 文件头选项与提升到文件顶部的导入
//
// 导入只能出现在文件开头，所以各命名空间的导入在这里合并去重后统一输出。
func unitPrologue(ctx *render.Context[Extra], unit *ast.CompileUnit) error {
	ctx.Line("Option Strict Off")
	ctx.Line("Option Explicit On")
	ctx.Newline()

	seen := make(map[ast.Import]bool)
	for _, ns := range unit.Namespaces {
		for _, imp := range ns.Imports {
			if seen[*imp] {
				continue
			}
			seen[*imp] = true
			if err := ctx.Import(imp); err != nil {
				return err
			}
		}
	}
	if len(seen) > 0 {
		ctx.Newline()
	}
	return nil
}

// ============================================================================
// 字面量
// ============================================================================

// quote 字符串内的引号重复转义，控制字符拼接为 ChrW(n)
func quote(s string) string {
	var parts []string
	start := 0
	flush := func(end int) {
		if end > start {
			parts = append(parts, `"`+render.EscapeString(s[start:end], '"', '"', nil)+`"`)
		}
	}
	for i, r := range s {
		if !isControl(r) {
			continue
		}
		flush(i)
		parts = append(parts, "ChrW("+strconv.Itoa(int(r))+")")
		start = i + len(string(r))
	}
	flush(len(s))
	if len(parts) == 0 {
		return `""`
	}
	return strings.Join(parts, " & ")
}

func quoteChar(r rune) string {
	switch {
	case r == '"':
		return `""""c`
	case isControl(r):
		return "ChrW(" + strconv.Itoa(int(r)) + ")"
	}
	return `"` + string(r) + `"c`
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f || r == 0x85 || r == 0x2028 || r == 0x2029
}

// upperBound 数组声明的是上界：长度 n 改写为 n - 1，整数字面量直接折叠
func upperBound(size ast.Expression) ast.Expression {
	if lit, ok := size.(*ast.Primitive); ok {
		switch v := ast.NormalizeLiteral(lit.Value).(type) {
		case int32:
			return ast.Literal(v - 1)
		case int64:
			return ast.Literal(v - 1)
		}
	}
	return ast.Binary(size, token.Subtract, ast.Literal(int32(1)))
}
