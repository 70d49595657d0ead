package vb

import (
	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/render"
	"github.com/tangzhangming/codedom/internal/token"
)

// keywords 需要用方括号转义的保留字（大小写不敏感）
var keywords = token.NewFoldedKeywordSet(
	"AddHandler", "AddressOf", "Alias", "And", "AndAlso", "As", "Boolean", "ByRef",
	"Byte", "ByVal", "Call", "Case", "Catch", "CBool", "CByte", "CChar", "CDate",
	"CDbl", "CDec", "Char", "CInt", "Class", "CLng", "CObj", "Const", "Continue",
	"CSByte", "CShort", "CSng", "CStr", "CType", "CUInt", "CULng", "CUShort", "Date",
	"Decimal", "Declare", "Default", "Delegate", "Dim", "DirectCast", "Do", "Double",
	"Each", "Else", "ElseIf", "End", "EndIf", "Enum", "Erase", "Error", "Event",
	"Exit", "False", "Finally", "For", "Friend", "Function", "Get", "GetType",
	"Global", "GoSub", "GoTo", "Handles", "If", "Implements", "Imports", "In",
	"Inherits", "Integer", "Interface", "Is", "IsNot", "Let", "Lib", "Like", "Long",
	"Loop", "Me", "Mod", "Module", "MustInherit", "MustOverride", "MyBase", "MyClass",
	"Namespace", "Narrowing", "New", "Next", "Not", "Nothing", "NotInheritable",
	"NotOverridable", "Object", "Of", "On", "Operator", "Option", "Optional", "Or",
	"OrElse", "Overloads", "Overridable", "Overrides", "ParamArray", "Partial",
	"Private", "Property", "Protected", "Public", "RaiseEvent", "ReadOnly", "ReDim",
	"RemoveHandler", "Resume", "Return", "SByte", "Select", "Set", "Shadows",
	"Shared", "Short", "Single", "Static", "Step", "Stop", "String", "Structure",
	"Sub", "SyncLock", "Then", "Throw", "To", "True", "Try", "TryCast", "TypeOf",
	"UInteger", "ULong", "UShort", "Using", "Variant", "Wend", "When", "While",
	"Widening", "With", "WithEvents", "WriteOnly", "Xor",
)

var builtinTypes = map[string]string{
	ast.TypeObject:  "Object",
	ast.TypeBoolean: "Boolean",
	ast.TypeChar:    "Char",
	ast.TypeString:  "String",
	ast.TypeSByte:   "SByte",
	ast.TypeByte:    "Byte",
	ast.TypeInt16:   "Short",
	ast.TypeUInt16:  "UShort",
	ast.TypeInt32:   "Integer",
	ast.TypeUInt32:  "UInteger",
	ast.TypeInt64:   "Long",
	ast.TypeUInt64:  "ULong",
	ast.TypeSingle:  "Single",
	ast.TypeDouble:  "Double",
	ast.TypeDecimal: "Decimal",
}

// suffixes 强制字面量类型的后缀；Byte/SByte 没有后缀
var suffixes = map[string]string{
	ast.TypeInt16:   "S",
	ast.TypeUInt16:  "US",
	ast.TypeUInt32:  "UI",
	ast.TypeInt64:   "L",
	ast.TypeUInt64:  "UL",
	ast.TypeSingle:  "F",
	ast.TypeDecimal: "D",
}

// binaryOps 空合并没有运算符，由 nullCoalesce 输出为 If(a, b)
var binaryOps = map[token.Operator]string{
	token.Add:                "+",
	token.Subtract:           "-",
	token.Multiply:           "*",
	token.Divide:             "/",
	token.Modulus:            "Mod",
	token.Assign:             "=",
	token.IdentityEquality:   "Is",
	token.IdentityInequality: "IsNot",
	token.ValueEquality:      "=",
	token.ValueInequality:    "<>",
	token.BitwiseOr:          "Or",
	token.BitwiseAnd:         "And",
	token.BitwiseXor:         "Xor",
	token.BooleanOr:          "OrElse",
	token.BooleanAnd:         "AndAlso",
	token.LessThan:           "<",
	token.LessThanOrEqual:    "<=",
	token.GreaterThan:        ">",
	token.GreaterThanOrEqual: ">=",
	token.ShiftLeft:          "<<",
	token.ShiftRight:         ">>",
}

// unaryOps 自增/自减没有运算符，由 stepExpr 改写
var unaryOps = map[token.UnaryOperator]string{
	token.Not:        "Not ",
	token.Negate:     "-",
	token.BitwiseNot: "Not ",
}

// compoundOps Mod/And/Or/Xor 没有复合赋值形式，展开为 x = x op y
var compoundOps = map[token.Operator]string{
	token.Add:        "+=",
	token.Subtract:   "-=",
	token.Multiply:   "*=",
	token.Divide:     "/=",
	token.ShiftLeft:  "<<=",
	token.ShiftRight: ">>=",
}

var accessKeywords = map[ast.Accessibility]string{
	ast.Public:            "Public",
	ast.Protected:         "Protected",
	ast.Internal:          "Friend",
	ast.ProtectedInternal: "Protected Friend",
	ast.Private:           "Private",
	ast.PrivateProtected:  "Private Protected",
}

var scopeKeywords = map[ast.Scope]string{
	ast.ScopeAbstract: "MustOverride",
	ast.ScopeOverride: "Overrides",
	ast.ScopeStatic:   "Shared",
	ast.ScopeConst:    "Const",
}

var declKeywords = map[ast.TypeKind]string{
	ast.KindClass:     "Class ",
	ast.KindStruct:    "Structure ",
	ast.KindInterface: "Interface ",
	ast.KindEnum:      "Enum ",
	ast.KindDelegate:  "Delegate ",
}

// endKeywords 闭合各种块的关键字
var endKeywords = map[render.BlockKind]string{
	render.BlockNamespace: "End Namespace",
	render.BlockClass:     "End Class",
	render.BlockStruct:    "End Structure",
	render.BlockInterface: "End Interface",
	render.BlockEnum:      "End Enum",
	render.BlockFunction:  "End Function",
	render.BlockSub:       "End Sub",
	render.BlockProperty:  "End Property",
	render.BlockGet:       "End Get",
	render.BlockSet:       "End Set",
	render.BlockIf:        "End If",
	render.BlockWhile:     "End While",
	render.BlockDo:        "Loop",
	render.BlockForEach:   "Next",
	render.BlockUsing:     "End Using",
	render.BlockTry:       "End Try",
	render.BlockLambda:    "End Function",
	render.BlockLambdaSub: "End Sub",
}

// loopKeywords Exit / Continue 之后的循环关键字
var loopKeywords = map[render.BlockKind]string{
	render.BlockWhile:   "While",
	render.BlockDo:      "Do",
	render.BlockForEach: "For",
}

// ============================================================================
// 优先级
// ============================================================================
//
// Not 低于比较运算符，And/AndAlso、Or/OrElse 各自同级，Xor 最低。
// 空合并与条件表达式输出为 If(...) 调用，按基本表达式处理。

const (
	precLambda = iota + 1
	precXor
	precOr
	precAnd
	precNot
	precComparison
	precShift
	precAdditive
	precMod
	precMultiplicative
	precNegate
	precPrimary
)

var binaryPrec = map[token.Operator]int{
	token.Assign:             precComparison,
	token.BitwiseXor:         precXor,
	token.BitwiseOr:          precOr,
	token.BooleanOr:          precOr,
	token.BitwiseAnd:         precAnd,
	token.BooleanAnd:         precAnd,
	token.IdentityEquality:   precComparison,
	token.IdentityInequality: precComparison,
	token.ValueEquality:      precComparison,
	token.ValueInequality:    precComparison,
	token.LessThan:           precComparison,
	token.LessThanOrEqual:    precComparison,
	token.GreaterThan:        precComparison,
	token.GreaterThanOrEqual: precComparison,
	token.ShiftLeft:          precShift,
	token.ShiftRight:         precShift,
	token.Add:                precAdditive,
	token.Subtract:           precAdditive,
	token.Modulus:            precMod,
	token.Multiply:           precMultiplicative,
	token.Divide:             precMultiplicative,
	token.NullCoalesce:       precPrimary,
}

func precedence(e ast.Expression) int {
	switch e := e.(type) {
	case *ast.BinaryOp:
		if p, ok := binaryPrec[e.Op]; ok {
			return p
		}
		return precLambda
	case *ast.UnaryOp:
		switch e.Op {
		case token.Not, token.BitwiseNot:
			return precNot
		case token.Negate:
			return precNegate
		}
	case *ast.Lambda:
		return precLambda
	case *ast.Primitive:
		if render.NegativeLiteral(e) {
			return precNegate
		}
	case *ast.SnippetExpr:
		return 0
	}
	return precPrimary
}
