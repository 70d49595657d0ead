// Package token 定义规范运算符集合、旧版运算符子集以及关键字表
package token

import (
	"fmt"
	"strings"

	"github.com/tangzhangming/codedom/internal/errors"
)

// ============================================================================
// 规范二元运算符
// ============================================================================
//
// Operator 按类别分组：
// 1. 算术（加减乘除取模）
// 2. 赋值
// 3. 相等性（引用相等、值相等）
// 4. 位运算与逻辑运算
// 5. 关系运算
// 6. 移位与空合并
//
// ============================================================================

// Operator 规范二元运算符
type Operator int

const (
	Illegal Operator = iota // 非法运算符

	// ----------------------------------------------------------
	// 算术运算符
	// ----------------------------------------------------------
	Add      // +
	Subtract // -
	Multiply // *
	Divide   // /
	Modulus  // %

	// ----------------------------------------------------------
	// 赋值
	// ----------------------------------------------------------
	Assign // =

	// ----------------------------------------------------------
	// 相等性
	// ----------------------------------------------------------
	IdentityEquality   // 引用相等
	IdentityInequality // 引用不等
	ValueEquality      // 值相等
	ValueInequality    // 值不等

	// ----------------------------------------------------------
	// 位运算 / 逻辑运算
	// ----------------------------------------------------------
	BitwiseOr  // |
	BitwiseAnd // &
	BitwiseXor // ^
	BooleanOr  // ||
	BooleanAnd // &&

	// ----------------------------------------------------------
	// 关系运算
	// ----------------------------------------------------------
	LessThan           // <
	LessThanOrEqual    // <=
	GreaterThan        // >
	GreaterThanOrEqual // >=

	// ----------------------------------------------------------
	// 移位 / 空合并
	// ----------------------------------------------------------
	ShiftLeft    // <<
	ShiftRight   // >>
	NullCoalesce // ??

	operatorEnd
)

// operatorNames 运算符名称表
var operatorNames = [...]string{
	Illegal:            "Illegal",
	Add:                "Add",
	Subtract:           "Subtract",
	Multiply:           "Multiply",
	Divide:             "Divide",
	Modulus:            "Modulus",
	Assign:             "Assign",
	IdentityEquality:   "IdentityEquality",
	IdentityInequality: "IdentityInequality",
	ValueEquality:      "ValueEquality",
	ValueInequality:    "ValueInequality",
	BitwiseOr:          "BitwiseOr",
	BitwiseAnd:         "BitwiseAnd",
	BitwiseXor:         "BitwiseXor",
	BooleanOr:          "BooleanOr",
	BooleanAnd:         "BooleanAnd",
	LessThan:           "LessThan",
	LessThanOrEqual:    "LessThanOrEqual",
	GreaterThan:        "GreaterThan",
	GreaterThanOrEqual: "GreaterThanOrEqual",
	ShiftLeft:          "ShiftLeft",
	ShiftRight:         "ShiftRight",
	NullCoalesce:       "NullCoalesce",
}

// String 返回运算符名称
func (op Operator) String() string {
	if op >= 0 && op < operatorEnd {
		return operatorNames[op]
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// IsValid 是否为规范集合中的运算符
func (op Operator) IsValid() bool {
	return op > Illegal && op < operatorEnd
}

// IsShorthand 是否可用于复合赋值语句（x op= y）
func (op Operator) IsShorthand() bool {
	switch op {
	case Add, Subtract, Multiply, Divide, Modulus,
		BitwiseOr, BitwiseAnd, BitwiseXor,
		ShiftLeft, ShiftRight:
		return true
	}
	return false
}

// IsComparison 是否为相等性或关系运算符
func (op Operator) IsComparison() bool {
	return op >= IdentityEquality && op <= ValueInequality ||
		op >= LessThan && op <= GreaterThanOrEqual
}

// Operators 返回规范集合中全部运算符
func Operators() []Operator {
	ops := make([]Operator, 0, int(operatorEnd)-1)
	for op := Add; op < operatorEnd; op++ {
		ops = append(ops, op)
	}
	return ops
}

// LookupOperator 按名称查找运算符（大小写不敏感，兼容旧版名称）
func LookupOperator(name string) (Operator, bool) {
	for op := Add; op < operatorEnd; op++ {
		if strings.EqualFold(operatorNames[op], name) {
			return op, true
		}
	}
	if legacy, ok := lookupLegacy(name); ok {
		return FromLegacy(legacy), true
	}
	return Illegal, false
}

// MarshalText 实现 encoding.TextMarshaler
func (op Operator) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (op *Operator) UnmarshalText(text []byte) error {
	found, ok := LookupOperator(string(text))
	if !ok {
		return errors.NewArgument(errors.G0205, "operator", string(text))
	}
	*op = found
	return nil
}

// ============================================================================
// 一元运算符
// ============================================================================

// UnaryOperator 一元运算符
type UnaryOperator int

const (
	IllegalUnary  UnaryOperator = iota
	Not                         // 逻辑非
	Negate                      // 取负
	BitwiseNot                  // 按位取反
	PreIncrement                // ++x
	PostIncrement               // x++
	PreDecrement                // --x
	PostDecrement               // x--
	unaryEnd
)

var unaryNames = [...]string{
	IllegalUnary:  "IllegalUnary",
	Not:           "Not",
	Negate:        "Negate",
	BitwiseNot:    "BitwiseNot",
	PreIncrement:  "PreIncrement",
	PostIncrement: "PostIncrement",
	PreDecrement:  "PreDecrement",
	PostDecrement: "PostDecrement",
}

func (op UnaryOperator) String() string {
	if op >= 0 && op < unaryEnd {
		return unaryNames[op]
	}
	return fmt.Sprintf("UnaryOperator(%d)", int(op))
}

// IsStep 是否为自增/自减
func (op UnaryOperator) IsStep() bool {
	return op >= PreIncrement && op <= PostDecrement
}

// IsPrefix 运算符是否写在运算数之前（只有后缀自增/自减不是）
func (op UnaryOperator) IsPrefix() bool {
	return op != PostIncrement && op != PostDecrement
}

// StepOperator 自增/自减对应的二元运算符（Add 或 Subtract）
func (op UnaryOperator) StepOperator() Operator {
	switch op {
	case PreIncrement, PostIncrement:
		return Add
	case PreDecrement, PostDecrement:
		return Subtract
	}
	return Illegal
}

// MarshalText 实现 encoding.TextMarshaler
func (op UnaryOperator) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (op *UnaryOperator) UnmarshalText(text []byte) error {
	for u := Not; u < unaryEnd; u++ {
		if strings.EqualFold(unaryNames[u], string(text)) {
			*op = u
			return nil
		}
	}
	return errors.NewArgument(errors.G0205, "operator", string(text))
}
