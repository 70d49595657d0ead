package ast

import (
	"github.com/tangzhangming/codedom/internal/errors"
	"github.com/tangzhangming/codedom/internal/token"
)

// ============================================================================
// 节点构造函数
// ============================================================================
//
// 构造函数只填充字段，不做校验；
// NewPropertyInit 与 NewCompoundAssign 会检查参数并返回 ArgumentError。
//
// ============================================================================

// ----------------------------------------------------------------------------
// 类型
// ----------------------------------------------------------------------------

// TypeNamed 创建类型引用
func TypeNamed(name string, typeArgs ...*TypeRef) *TypeRef {
	return &TypeRef{Name: name, TypeArgs: typeArgs}
}

// ArrayOf 创建 rank 维数组类型
func ArrayOf(elem *TypeRef, rank int) *TypeRef {
	if rank < 1 {
		rank = 1
	}
	return &TypeRef{Name: elem.Name, ArrayRank: rank, Elem: elem}
}

// NullableOf 创建可空类型
func NullableOf(t *TypeRef) *TypeRef {
	cp := *t
	cp.Nullable = true
	return &cp
}

// ----------------------------------------------------------------------------
// 表达式
// ----------------------------------------------------------------------------

// Literal 创建字面量
func Literal(v interface{}) *Primitive { return &Primitive{Value: v} }

// Null 创建空引用字面量
func Null() *Primitive { return &Primitive{} }

// Variable 创建局部变量引用
func Variable(name string) *VariableRef { return &VariableRef{Name: name} }

// Argument 创建参数引用
func Argument(name string) *ArgumentRef { return &ArgumentRef{Name: name} }

// This 创建当前实例引用
func This() *ThisRef { return &ThisRef{} }

// FieldOf 创建字段引用
func FieldOf(target Expression, name string) *FieldRef {
	return &FieldRef{Target: target, Name: name}
}

// PropertyOf 创建属性引用
func PropertyOf(target Expression, name string) *PropertyRef {
	return &PropertyRef{Target: target, Name: name}
}

// EventOf 创建事件引用
func EventOf(target Expression, name string) *EventRef {
	return &EventRef{Target: target, Name: name}
}

// StaticOf 创建类型作为表达式（访问静态成员）
func StaticOf(t *TypeRef) *TypeRefExpr { return &TypeRefExpr{Type: t} }

// Invoke 创建方法调用 target.name(args)
func Invoke(target Expression, name string, args ...Expression) *MethodInvoke {
	return &MethodInvoke{Method: &MethodRef{Target: target, Name: name}, Args: args}
}

// Binary 创建二元运算
func Binary(left Expression, op token.Operator, right Expression) *BinaryOp {
	return &BinaryOp{Left: left, Op: op, Right: right}
}

// Unary 创建一元运算
func Unary(op token.UnaryOperator, operand Expression) *UnaryOp {
	return &UnaryOp{Op: op, Operand: operand}
}

// New 创建对象
func New(t *TypeRef, args ...Expression) *ObjectCreate {
	return &ObjectCreate{Type: t, Args: args}
}

// NewPropertyInit 创建属性初始化器，名称为空时返回 ArgumentError
func NewPropertyInit(name string, value Expression) (*PropertyInit, error) {
	if name == "" {
		return nil, errors.NewArgument(errors.G0200, "name")
	}
	return &PropertyInit{Name: name, Value: value}, nil
}

// Param 创建参数声明
func Param(t *TypeRef, name string) *ParamDecl {
	return &ParamDecl{Type: t, Name: name}
}

// ----------------------------------------------------------------------------
// 语句
// ----------------------------------------------------------------------------

// Stmt 把表达式包装成语句
func Stmt(e Expression) *ExprStmt { return &ExprStmt{Expr: e} }

// Let 创建赋值语句
func Let(left, right Expression) *Assign { return &Assign{Left: left, Right: right} }

// NewCompoundAssign 创建复合赋值语句
//
// 只接受可简写的运算符（见 token.Operator.IsShorthand），否则返回 ArgumentError。
func NewCompoundAssign(left Expression, op token.Operator, right Expression) (*CompoundAssign, error) {
	if !op.IsShorthand() {
		return nil, errors.NewArgument(errors.G0201, "op", op.String())
	}
	return &CompoundAssign{Left: left, Op: op, Right: right}, nil
}

// Ret 创建返回语句
func Ret(v Expression) *Return { return &Return{Value: v} }

// Declare 创建局部变量声明
func Declare(t *TypeRef, name string, init Expression) *VarDecl {
	return &VarDecl{Type: t, Name: name, Init: init}
}

// CondBlock 条件与对应语句块
type CondBlock struct {
	Cond  Expression
	Stmts []Statement
}

// IfChain 由有序的 (条件, 语句块) 对构建 if / else if / else 链
//
// 第一对成为最外层 If，后续每一对嵌套在前一个 If 的 False 分支中，
// elseStmts 只出现在最内层的 False 分支。pairs 为空时返回 nil。
func IfChain(pairs []CondBlock, elseStmts []Statement) *If {
	if len(pairs) == 0 {
		return nil
	}
	root := &If{Cond: pairs[0].Cond, True: pairs[0].Stmts}
	cur := root
	for _, p := range pairs[1:] {
		next := &If{Cond: p.Cond, True: p.Stmts}
		cur.False = []Statement{next}
		cur = next
	}
	cur.False = elseStmts
	return root
}

// ----------------------------------------------------------------------------
// 成员与类型
// ----------------------------------------------------------------------------

// NewField 创建字段
func NewField(name string, t *TypeRef, access Access) *Field {
	return &Field{
		MemberBase: MemberBase{Name: name, Modifiers: MemberModifiers{Access: access}},
		Type:       t,
	}
}

// NewMethod 创建方法，ret 为 nil 表示无返回值
func NewMethod(name string, ret *TypeRef, access Access, params ...*ParamDecl) *Method {
	return &Method{
		MemberBase: MemberBase{Name: name, Modifiers: MemberModifiers{Access: access}},
		ReturnType: ret,
		Params:     params,
	}
}

// NewProperty 创建带 get/set 的自动属性
func NewProperty(name string, t *TypeRef, access Access) *Property {
	return &Property{
		MemberBase: MemberBase{Name: name, Modifiers: MemberModifiers{Access: access}},
		Type:       t,
		HasGet:     true,
		HasSet:     true,
	}
}

// NewClass 创建类
func NewClass(name string, members ...Member) *TypeDecl {
	return &TypeDecl{Name: name, IsClass: true, Members: members}
}

// NewStruct 创建结构体
func NewStruct(name string, members ...Member) *TypeDecl {
	return &TypeDecl{Name: name, IsStruct: true, Members: members}
}

// NewInterface 创建接口
func NewInterface(name string, members ...Member) *TypeDecl {
	return &TypeDecl{Name: name, IsInterface: true, Members: members}
}

// NewEnum 创建枚举，每个名称成为一个字段
func NewEnum(name string, values ...string) *TypeDecl {
	d := &TypeDecl{Name: name, IsEnum: true}
	for _, v := range values {
		d.Members = append(d.Members, &Field{MemberBase: MemberBase{Name: v}})
	}
	return d
}

// NewDelegate 创建委托类型
func NewDelegate(name string, ret *TypeRef, params ...*ParamDecl) *TypeDecl {
	return &TypeDecl{Name: name, IsDelegate: true, ReturnType: ret, Params: params}
}

// NewUnit 创建只有一个命名空间的编译单元
func NewUnit(ns string, types ...*TypeDecl) *CompileUnit {
	return &CompileUnit{Namespaces: []*Namespace{{Name: ns, Types: types}}}
}
