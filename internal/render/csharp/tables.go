package csharp

import (
	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/render"
	"github.com/tangzhangming/codedom/internal/token"
)

// keywords 需要以 @ 转义的保留字
var keywords = token.NewKeywordSet(
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch", "char",
	"checked", "class", "const", "continue", "decimal", "default", "delegate",
	"do", "double", "else", "enum", "event", "explicit", "extern", "false",
	"finally", "fixed", "float", "for", "foreach", "goto", "if", "implicit",
	"in", "int", "interface", "internal", "is", "lock", "long", "namespace",
	"new", "null", "object", "operator", "out", "override", "params", "private",
	"protected", "public", "readonly", "ref", "return", "sbyte", "sealed",
	"short", "sizeof", "stackalloc", "static", "string", "struct", "switch",
	"this", "throw", "true", "try", "typeof", "uint", "ulong", "unchecked",
	"unsafe", "ushort", "using", "virtual", "void", "volatile", "while",
)

// builtinTypes 规范类型名到关键字
var builtinTypes = map[string]string{
	ast.TypeVoid:    "void",
	ast.TypeObject:  "object",
	ast.TypeBoolean: "bool",
	ast.TypeChar:    "char",
	ast.TypeString:  "string",
	ast.TypeSByte:   "sbyte",
	ast.TypeByte:    "byte",
	ast.TypeInt16:   "short",
	ast.TypeUInt16:  "ushort",
	ast.TypeInt32:   "int",
	ast.TypeUInt32:  "uint",
	ast.TypeInt64:   "long",
	ast.TypeUInt64:  "ulong",
	ast.TypeSingle:  "float",
	ast.TypeDouble:  "double",
	ast.TypeDecimal: "decimal",
}

// suffixes 强制字面量类型的后缀；byte/sbyte/short/ushort 没有后缀，需要强制转换
var suffixes = map[string]string{
	ast.TypeUInt32:  "U",
	ast.TypeInt64:   "L",
	ast.TypeUInt64:  "UL",
	ast.TypeSingle:  "F",
	ast.TypeDecimal: "M",
}

var binaryOps = map[token.Operator]string{
	token.Add:                "+",
	token.Subtract:           "-",
	token.Multiply:           "*",
	token.Divide:             "/",
	token.Modulus:            "%",
	token.Assign:             "=",
	token.IdentityEquality:   "==",
	token.IdentityInequality: "!=",
	token.ValueEquality:      "==",
	token.ValueInequality:    "!=",
	token.BitwiseOr:          "|",
	token.BitwiseAnd:         "&",
	token.BitwiseXor:         "^",
	token.BooleanOr:          "||",
	token.BooleanAnd:         "&&",
	token.LessThan:           "<",
	token.LessThanOrEqual:    "<=",
	token.GreaterThan:        ">",
	token.GreaterThanOrEqual: ">=",
	token.ShiftLeft:          "<<",
	token.ShiftRight:         ">>",
	token.NullCoalesce:       "??",
}

var unaryOps = map[token.UnaryOperator]string{
	token.Not:           "!",
	token.Negate:        "-",
	token.BitwiseNot:    "~",
	token.PreIncrement:  "++",
	token.PostIncrement: "++",
	token.PreDecrement:  "--",
	token.PostDecrement: "--",
}

var accessKeywords = map[ast.Accessibility]string{
	ast.Public:            "public",
	ast.Protected:         "protected",
	ast.Internal:          "internal",
	ast.ProtectedInternal: "protected internal",
	ast.Private:           "private",
	ast.PrivateProtected:  "private protected",
}

var scopeKeywords = map[ast.Scope]string{
	ast.ScopeAbstract: "abstract",
	ast.ScopeOverride: "override",
	ast.ScopeStatic:   "static",
	ast.ScopeConst:    "const",
}

var declKeywords = map[ast.TypeKind]string{
	ast.KindClass:     "class ",
	ast.KindStruct:    "struct ",
	ast.KindInterface: "interface ",
	ast.KindEnum:      "enum ",
	ast.KindDelegate:  "delegate ",
}

// ============================================================================
// 优先级
// ============================================================================

const (
	precLambda = iota + 1
	precConditional
	precCoalesce
	precOrElse
	precAndAlso
	precOr
	precXor
	precAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precUnary
	precPrimary
)

var binaryPrec = map[token.Operator]int{
	token.Assign:             precLambda,
	token.NullCoalesce:       precCoalesce,
	token.BooleanOr:          precOrElse,
	token.BooleanAnd:         precAndAlso,
	token.BitwiseOr:          precOr,
	token.BitwiseXor:         precXor,
	token.BitwiseAnd:         precAnd,
	token.IdentityEquality:   precEquality,
	token.IdentityInequality: precEquality,
	token.ValueEquality:      precEquality,
	token.ValueInequality:    precEquality,
	token.LessThan:           precRelational,
	token.LessThanOrEqual:    precRelational,
	token.GreaterThan:        precRelational,
	token.GreaterThanOrEqual: precRelational,
	token.ShiftLeft:          precShift,
	token.ShiftRight:         precShift,
	token.Add:                precAdditive,
	token.Subtract:           precAdditive,
	token.Multiply:           precMultiplicative,
	token.Divide:             precMultiplicative,
	token.Modulus:            precMultiplicative,
}

func precedence(e ast.Expression) int {
	switch e := e.(type) {
	case *ast.BinaryOp:
		if p, ok := binaryPrec[e.Op]; ok {
			return p
		}
		return precLambda
	case *ast.UnaryOp:
		if e.Op == token.PostIncrement || e.Op == token.PostDecrement {
			return precPrimary
		}
		return precUnary
	case *ast.Conditional:
		return precConditional
	case *ast.Lambda:
		return precLambda
	case *ast.Primitive:
		if render.NegativeLiteral(e) {
			return precUnary
		}
	case *ast.SnippetExpr:
		return 0
	}
	return precPrimary
}
