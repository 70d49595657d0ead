// Package ast 定义与目标语言无关的程序模型
//
// 节点按类别分成封闭的和类型：表达式、语句、成员、类型声明、命名空间等。
// 调用方在渲染前完整地构建整棵树，渲染器只读取，从不修改。
package ast

import "strings"

// Node 是所有节点的基接口
type Node interface {
	Kind() string // 节点的具体种类，用于诊断与分派
}

// Expression 表示一个表达式节点
type Expression interface {
	Node
	exprNode()
}

// Statement 表示一个语句节点
type Statement interface {
	Node
	stmtNode()
}

// Member 表示一个类型成员节点
type Member interface {
	Node
	Base() *MemberBase
	memberNode()
}

// Directive 表示一个预处理指令节点
type Directive interface {
	Node
	directiveNode()
}

// ============================================================================
// 类型引用
// ============================================================================

// TypeRef 类型引用
//
// Name 使用规范名称（如 System.Int32），由配置映射为目标语法的关键字。
// ArrayRank > 0 时表示数组，元素类型为 Elem。
type TypeRef struct {
	Name      string     // 基础名称
	TypeArgs  []*TypeRef // 泛型实参
	ArrayRank int        // 数组维数
	Elem      *TypeRef   // 数组元素类型
	Nullable  bool       // 可空语法糖 (T?)
	Global    bool       // 强制输出完全限定名
}

func (t *TypeRef) Kind() string { return "TypeRef" }

// IsArray 是否为数组类型
func (t *TypeRef) IsArray() bool { return t != nil && t.ArrayRank > 0 && t.Elem != nil }

// Namespace 返回类型名中的命名空间部分（System.Int32 -> System）
func (t *TypeRef) Namespace() string {
	if i := strings.LastIndex(t.Name, "."); i >= 0 {
		return t.Name[:i]
	}
	return ""
}

// ShortName 返回不含命名空间的类型名
func (t *TypeRef) ShortName() string {
	if i := strings.LastIndex(t.Name, "."); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// String 返回类型的调试表示
func (t *TypeRef) String() string {
	if t == nil {
		return "<nil>"
	}
	var sb strings.Builder
	if t.IsArray() {
		sb.WriteString(t.Elem.String())
		sb.WriteString("[")
		sb.WriteString(strings.Repeat(",", t.ArrayRank-1))
		sb.WriteString("]")
	} else {
		sb.WriteString(t.Name)
		if len(t.TypeArgs) > 0 {
			sb.WriteString("<")
			for i, a := range t.TypeArgs {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(a.String())
			}
			sb.WriteString(">")
		}
	}
	if t.Nullable {
		sb.WriteString("?")
	}
	return sb.String()
}

// TypeParam 泛型类型参数 <T> where T : Base, new()
type TypeParam struct {
	Name          string
	Constraints   []*TypeRef
	NewConstraint bool // 构造函数约束
	Attributes    []*AttributeDecl
}

func (p *TypeParam) Kind() string { return "TypeParam" }

// ============================================================================
// 注释 / 特性 / 指令
// ============================================================================

// Comment 注释，Doc 为真时输出为文档注释
type Comment struct {
	Text string
	Doc  bool
}

func (c *Comment) Kind() string { return "Comment" }

// AttributeDecl 自定义特性 [Name(args)]
type AttributeDecl struct {
	Type   *TypeRef
	Args   []*AttributeArg
	Target string // 特性目标（assembly、return），可为空
}

func (a *AttributeDecl) Kind() string { return "AttributeDecl" }

// AttributeArg 特性参数，Name 为空表示位置参数
type AttributeArg struct {
	Name  string
	Value Expression
}

// RegionDirective 折叠区域指令 (#region / #End Region)
type RegionDirective struct {
	Start bool
	Text  string
}

func (d *RegionDirective) Kind() string  { return "RegionDirective" }
func (d *RegionDirective) directiveNode() {}

// PragmaDirective 原样输出的编译指示
type PragmaDirective struct {
	Text string
}

func (d *PragmaDirective) Kind() string  { return "PragmaDirective" }
func (d *PragmaDirective) directiveNode() {}

// ============================================================================
// 命名空间 / 编译单元
// ============================================================================

// Import 命名空间导入
type Import struct {
	Namespace string
	Alias     string // 可为空
}

func (i *Import) Kind() string { return "Import" }

// Namespace 命名空间，Name 为空时表示全局命名空间
type Namespace struct {
	Name     string
	Imports  []*Import
	Types    []*TypeDecl
	Comments []*Comment
}

func (n *Namespace) Kind() string { return "Namespace" }

// CompileUnit 编译单元（渲染入口）
type CompileUnit struct {
	Namespaces         []*Namespace
	AssemblyAttributes []*AttributeDecl
	StartDirectives    []Directive
	EndDirectives      []Directive
}

func (u *CompileUnit) Kind() string { return "CompileUnit" }
