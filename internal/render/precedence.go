package render

import (
	"math"

	"github.com/tangzhangming/codedom/internal/ast"
)

// PrecedenceFunc 返回表达式的优先级，数值越大结合越紧
type PrecedenceFunc func(e ast.Expression) int

// WrapByPrecedence 由优先级表构造 WrapOperand 钩子
//
// 子表达式优先级低于父表达式时加括号；相等时只给右侧运算数加括号（左结合）。
func WrapByPrecedence(prec PrecedenceFunc) func(parent, child ast.Expression, right bool) bool {
	return func(parent, child ast.Expression, right bool) bool {
		pp, cp := prec(parent), prec(child)
		if cp != pp {
			return cp < pp
		}
		return right
	}
}

// NegativeLiteral 输出时以负号开头的数字字面量，作为运算数时与一元负号同级
func NegativeLiteral(e ast.Expression) bool {
	lit, ok := e.(*ast.Primitive)
	if !ok {
		return false
	}
	switch x := ast.NormalizeLiteral(lit.Value).(type) {
	case int8:
		return x < 0
	case int16:
		return x < 0
	case int32:
		return x < 0
	case int64:
		return x < 0
	case float32:
		return math.Signbit(float64(x)) && !math.IsNaN(float64(x))
	case float64:
		return math.Signbit(x) && !math.IsNaN(x)
	case ast.Decimal:
		return len(x) > 0 && x[0] == '-'
	}
	return false
}
