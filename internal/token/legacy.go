package token

import (
	"strings"

	"github.com/tangzhangming/codedom/internal/errors"
)

// ============================================================================
// 旧版运算符子集
// ============================================================================
//
// 旧版树只认识 17 个二元运算符。规范运算符可以无损地转换到旧版，
// 除了 ValueInequality、BitwiseXor、ShiftLeft、ShiftRight、NullCoalesce，
// 它们没有旧版对应，转换时返回 ArgumentError 而不是近似替代。
//
// ============================================================================

// LegacyOperator 旧版二元运算符
type LegacyOperator int

const (
	LegacyAdd LegacyOperator = iota
	LegacySubtract
	LegacyMultiply
	LegacyDivide
	LegacyModulus
	LegacyAssign
	LegacyIdentityInequality
	LegacyIdentityEquality
	LegacyValueEquality
	LegacyBitwiseOr
	LegacyBitwiseAnd
	LegacyBooleanOr
	LegacyBooleanAnd
	LegacyLessThan
	LegacyLessThanOrEqual
	LegacyGreaterThan
	LegacyGreaterThanOrEqual
	legacyEnd
)

// legacyToCanonical 旧版 -> 规范
var legacyToCanonical = [...]Operator{
	LegacyAdd:                Add,
	LegacySubtract:           Subtract,
	LegacyMultiply:           Multiply,
	LegacyDivide:             Divide,
	LegacyModulus:            Modulus,
	LegacyAssign:             Assign,
	LegacyIdentityInequality: IdentityInequality,
	LegacyIdentityEquality:   IdentityEquality,
	LegacyValueEquality:      ValueEquality,
	LegacyBitwiseOr:          BitwiseOr,
	LegacyBitwiseAnd:         BitwiseAnd,
	LegacyBooleanOr:          BooleanOr,
	LegacyBooleanAnd:         BooleanAnd,
	LegacyLessThan:           LessThan,
	LegacyLessThanOrEqual:    LessThanOrEqual,
	LegacyGreaterThan:        GreaterThan,
	LegacyGreaterThanOrEqual: GreaterThanOrEqual,
}

// canonicalToLegacy 规范 -> 旧版，初始化时由 legacyToCanonical 反推
var canonicalToLegacy = func() map[Operator]LegacyOperator {
	m := make(map[Operator]LegacyOperator, len(legacyToCanonical))
	for legacy, op := range legacyToCanonical {
		m[op] = LegacyOperator(legacy)
	}
	return m
}()

// String 返回旧版运算符名称（与对应规范运算符同名）
func (l LegacyOperator) String() string {
	if l >= 0 && l < legacyEnd {
		return legacyToCanonical[l].String()
	}
	return "LegacyOperator(?)"
}

// FromLegacy 旧版运算符转换为规范运算符（总是成功）
func FromLegacy(l LegacyOperator) Operator {
	if l < 0 || l >= legacyEnd {
		return Illegal
	}
	return legacyToCanonical[l]
}

// ToLegacy 规范运算符转换为旧版运算符
func ToLegacy(op Operator) (LegacyOperator, error) {
	if l, ok := canonicalToLegacy[op]; ok {
		return l, nil
	}
	return 0, errors.NewArgument(errors.G0203, "op", op.String())
}

// lookupLegacy 按旧版名称查找（旧版名称带有 Legacy 前缀时也接受）
func lookupLegacy(name string) (LegacyOperator, bool) {
	name = strings.TrimPrefix(strings.ToLower(name), "legacy")
	for l := LegacyAdd; l < legacyEnd; l++ {
		if strings.ToLower(l.String()) == name {
			return l, true
		}
	}
	return 0, false
}
