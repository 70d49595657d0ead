package ast

import "github.com/tangzhangming/codedom/internal/token"

// ============================================================================
// 字面量
// ============================================================================

// Primitive 字面量
//
// Value 的 Go 动态类型即字面量的运行时类型：
// bool、string、Char、Decimal、int8..int64、uint8..uint64、float32、float64，
// nil 表示空引用。
type Primitive struct {
	Value interface{}
}

// Char 字符字面量
type Char rune

// Decimal 十进制定点数字面量（保存其十进制文本）
type Decimal string

func (e *Primitive) Kind() string { return "Primitive" }
func (e *Primitive) exprNode()    {}

// SnippetExpr 原样输出的表达式片段
type SnippetExpr struct {
	Text string
}

func (e *SnippetExpr) Kind() string { return "SnippetExpr" }
func (e *SnippetExpr) exprNode()    {}

// ============================================================================
// 引用
// ============================================================================

// VariableRef 局部变量引用
type VariableRef struct {
	Name string
}

func (e *VariableRef) Kind() string { return "VariableRef" }
func (e *VariableRef) exprNode()    {}

// ArgumentRef 参数引用
type ArgumentRef struct {
	Name string
}

func (e *ArgumentRef) Kind() string { return "ArgumentRef" }
func (e *ArgumentRef) exprNode()    {}

// FieldRef 字段引用，Target 为 nil 时表示当前实例
type FieldRef struct {
	Target Expression
	Name   string
}

func (e *FieldRef) Kind() string { return "FieldRef" }
func (e *FieldRef) exprNode()    {}

// PropertyRef 属性引用
type PropertyRef struct {
	Target Expression
	Name   string
}

func (e *PropertyRef) Kind() string { return "PropertyRef" }
func (e *PropertyRef) exprNode()    {}

// PropertyValueRef setter 中的隐式 value
type PropertyValueRef struct{}

func (e *PropertyValueRef) Kind() string { return "PropertyValueRef" }
func (e *PropertyValueRef) exprNode()    {}

// EventRef 事件引用
type EventRef struct {
	Target Expression
	Name   string
}

func (e *EventRef) Kind() string { return "EventRef" }
func (e *EventRef) exprNode()    {}

// MethodRef 方法引用（可带泛型实参）
type MethodRef struct {
	Target   Expression
	Name     string
	TypeArgs []*TypeRef
}

func (e *MethodRef) Kind() string { return "MethodRef" }
func (e *MethodRef) exprNode()    {}

// ThisRef 当前实例 (this / Me)
type ThisRef struct{}

func (e *ThisRef) Kind() string { return "ThisRef" }
func (e *ThisRef) exprNode()    {}

// BaseRef 基类实例 (base / MyBase)
type BaseRef struct{}

func (e *BaseRef) Kind() string { return "BaseRef" }
func (e *BaseRef) exprNode()    {}

// TypeRefExpr 作为表达式出现的类型（静态成员访问的目标）
type TypeRefExpr struct {
	Type *TypeRef
}

func (e *TypeRefExpr) Kind() string { return "TypeRefExpr" }
func (e *TypeRefExpr) exprNode()    {}

// ============================================================================
// 运算
// ============================================================================

// BinaryOp 二元运算
type BinaryOp struct {
	Left  Expression
	Op    token.Operator
	Right Expression
}

func (e *BinaryOp) Kind() string { return "BinaryOp" }
func (e *BinaryOp) exprNode()    {}

// UnaryOp 一元运算（含自增/自减）
type UnaryOp struct {
	Op      token.UnaryOperator
	Operand Expression
}

func (e *UnaryOp) Kind() string { return "UnaryOp" }
func (e *UnaryOp) exprNode()    {}

// Conditional 条件表达式 (c ? a : b)
type Conditional struct {
	Cond  Expression
	True  Expression
	False Expression
}

func (e *Conditional) Kind() string { return "Conditional" }
func (e *Conditional) exprNode()    {}

// Cast 类型转换
type Cast struct {
	Type *TypeRef
	Expr Expression
}

func (e *Cast) Kind() string { return "Cast" }
func (e *Cast) exprNode()    {}

// TypeOf 类型对象 (typeof(T))
type TypeOf struct {
	Type *TypeRef
}

func (e *TypeOf) Kind() string { return "TypeOf" }
func (e *TypeOf) exprNode()    {}

// DefaultValue 类型默认值 (default(T))
type DefaultValue struct {
	Type *TypeRef
}

func (e *DefaultValue) Kind() string { return "DefaultValue" }
func (e *DefaultValue) exprNode()    {}

// ============================================================================
// 创建
// ============================================================================

// ObjectCreate 对象创建 new T(args) { P = v }
type ObjectCreate struct {
	Type         *TypeRef
	Args         []Expression
	Initializers []*PropertyInit // 属性初始化器，可为空
}

func (e *ObjectCreate) Kind() string { return "ObjectCreate" }
func (e *ObjectCreate) exprNode()    {}

// PropertyInit 属性初始化器，使用 NewPropertyInit 构造
type PropertyInit struct {
	Name  string
	Value Expression
}

// ArrayCreate 数组创建
//
// Sizes 为每一维的长度（元素个数），多维数组有多个；
// 只有 Initializers 时由初始化器推断长度。
type ArrayCreate struct {
	Elem         *TypeRef
	Sizes        []Expression
	Initializers []Expression
}

func (e *ArrayCreate) Kind() string { return "ArrayCreate" }
func (e *ArrayCreate) exprNode()    {}

// Rank 数组维数
func (e *ArrayCreate) Rank() int {
	if len(e.Sizes) > 1 {
		return len(e.Sizes)
	}
	return 1
}

// DelegateCreate 委托创建 new D(target.Method)
type DelegateCreate struct {
	Type   *TypeRef
	Target Expression
	Method string
}

func (e *DelegateCreate) Kind() string { return "DelegateCreate" }
func (e *DelegateCreate) exprNode()    {}

// ============================================================================
// 调用 / 访问
// ============================================================================

// Indexer 索引访问
type Indexer struct {
	Target  Expression
	Indices []Expression
}

func (e *Indexer) Kind() string { return "Indexer" }
func (e *Indexer) exprNode()    {}

// MethodInvoke 方法调用
type MethodInvoke struct {
	Method *MethodRef
	Args   []Expression
}

func (e *MethodInvoke) Kind() string { return "MethodInvoke" }
func (e *MethodInvoke) exprNode()    {}

// DelegateInvoke 委托调用
type DelegateInvoke struct {
	Target Expression
	Args   []Expression
}

func (e *DelegateInvoke) Kind() string { return "DelegateInvoke" }
func (e *DelegateInvoke) exprNode()    {}

// FieldDirection 参数传递方向
type FieldDirection int

const (
	DirNone FieldDirection = iota // 按值
	DirRef                        // ref
	DirOut                        // out
	DirIn                         // in（只读引用）
)

func (d FieldDirection) String() string {
	switch d {
	case DirRef:
		return "ref"
	case DirOut:
		return "out"
	case DirIn:
		return "in"
	}
	return "none"
}

// Direction 实参方向包装 (ref x / out x / in x)
type Direction struct {
	Dir  FieldDirection
	Expr Expression
}

func (e *Direction) Kind() string { return "Direction" }
func (e *Direction) exprNode()    {}

// ============================================================================
// Lambda / 参数
// ============================================================================

// Lambda 匿名函数
//
// Body 与 Stmts 二选一：Body 非空时为表达式体，否则为语句体。
type Lambda struct {
	Params     []*ParamDecl
	Body       Expression
	Stmts      []Statement
	ReturnType *TypeRef // 可为 nil
}

func (e *Lambda) Kind() string { return "Lambda" }
func (e *Lambda) exprNode()    {}

// IsTyped 是否所有参数都带类型
func (e *Lambda) IsTyped() bool {
	for _, p := range e.Params {
		if p.Type == nil {
			return false
		}
	}
	return true
}

// ParamDecl 参数声明
type ParamDecl struct {
	Type       *TypeRef // 为 nil 时表示无类型的 lambda 参数
	Name       string
	Dir        FieldDirection
	Default    Expression // 默认值，可为 nil
	Varargs    bool       // 可变参数 (params / ParamArray)
	Attributes []*AttributeDecl
}

func (e *ParamDecl) Kind() string { return "ParamDecl" }
func (e *ParamDecl) exprNode()    {}
