package ast

// ============================================================================
// 成员
// ============================================================================

// MemberBase 所有成员共有的字段
type MemberBase struct {
	Name            string
	Modifiers       MemberModifiers
	Attributes      []*AttributeDecl
	Comments        []*Comment
	StartDirectives []Directive
	EndDirectives   []Directive
}

// Base 返回共有字段
func (b *MemberBase) Base() *MemberBase { return b }

// Field 字段
type Field struct {
	MemberBase
	Type *TypeRef
	Init Expression // 初始值，可为 nil
}

func (m *Field) Kind() string { return "Field" }
func (m *Field) memberNode()  {}

// Property 属性
//
// GetStmts 与 SetStmts 都为 nil 时输出为自动属性。
// GetAccess/SetAccess 非零且与属性本身不同时，访问器单独带访问修饰符。
type Property struct {
	MemberBase
	Type      *TypeRef
	Params    []*ParamDecl // 索引器参数
	HasGet    bool
	HasSet    bool
	GetStmts  []Statement
	SetStmts  []Statement
	GetAccess Access
	SetAccess Access
	Init      Expression // 自动属性初始值
}

func (m *Property) Kind() string { return "Property" }
func (m *Property) memberNode()  {}

// IsAuto 是否为自动属性
func (m *Property) IsAuto() bool { return m.GetStmts == nil && m.SetStmts == nil }

// Event 事件
type Event struct {
	MemberBase
	Type *TypeRef
}

func (m *Event) Kind() string { return "Event" }
func (m *Event) memberNode()  {}

// Method 方法，ReturnType 为 nil 表示无返回值
type Method struct {
	MemberBase
	ReturnType       *TypeRef
	TypeParams       []*TypeParam
	Params           []*ParamDecl
	Stmts            []Statement
	ReturnAttributes []*AttributeDecl
}

func (m *Method) Kind() string { return "Method" }
func (m *Method) memberNode()  {}

// Constructor 实例构造函数
//
// BaseArgs 非空时调用基类构造函数，ChainedArgs 非空时调用本类的其他构造函数。
type Constructor struct {
	MemberBase
	Params      []*ParamDecl
	BaseArgs    []Expression
	ChainedArgs []Expression
	Stmts       []Statement
}

func (m *Constructor) Kind() string { return "Constructor" }
func (m *Constructor) memberNode()  {}

// StaticConstructor 静态构造函数
type StaticConstructor struct {
	MemberBase
	Stmts []Statement
}

func (m *StaticConstructor) Kind() string { return "StaticConstructor" }
func (m *StaticConstructor) memberNode()  {}

// EntryPoint 程序入口方法 (Main)
type EntryPoint struct {
	MemberBase
	Stmts []Statement
}

func (m *EntryPoint) Kind() string { return "EntryPoint" }
func (m *EntryPoint) memberNode()  {}

// NestedType 嵌套类型
type NestedType struct {
	MemberBase
	Decl *TypeDecl
}

func (m *NestedType) Kind() string { return "NestedType" }
func (m *NestedType) memberNode()  {}

// SnippetMember 原样输出的成员片段
type SnippetMember struct {
	MemberBase
	Text string
}

func (m *SnippetMember) Kind() string { return "SnippetMember" }
func (m *SnippetMember) memberNode()  {}

// ============================================================================
// 类型声明
// ============================================================================

// TypeKind 类型声明的种类
type TypeKind int

const (
	KindClass TypeKind = iota
	KindStruct
	KindInterface
	KindEnum
	KindDelegate
)

func (k TypeKind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindDelegate:
		return "delegate"
	}
	return "class"
}

// TypeDecl 类型声明
//
// IsClass/IsStruct/IsInterface/IsEnum/IsDelegate 应恰好设置一个，
// 只有严格模式会检查该约束；宽松模式下按 TypeKind 的优先级解析。
type TypeDecl struct {
	Name            string
	IsClass         bool
	IsStruct        bool
	IsInterface     bool
	IsEnum          bool
	IsDelegate      bool
	Modifiers       TypeModifiers
	Attributes      []*AttributeDecl
	TypeParams      []*TypeParam
	BaseTypes       []*TypeRef
	Members         []Member
	Comments        []*Comment
	StartDirectives []Directive
	EndDirectives   []Directive

	// 委托签名
	ReturnType *TypeRef
	Params     []*ParamDecl
}

func (d *TypeDecl) Kind() string { return "TypeDecl" }

// KindCount 设置了几个种类标志
func (d *TypeDecl) KindCount() int {
	n := 0
	for _, set := range []bool{d.IsClass, d.IsStruct, d.IsInterface, d.IsEnum, d.IsDelegate} {
		if set {
			n++
		}
	}
	return n
}

// TypeKind 解析类型种类
//
// 优先级：delegate > enum > interface > struct > class，一个都没有时视为 class。
func (d *TypeDecl) TypeKind() TypeKind {
	switch {
	case d.IsDelegate:
		return KindDelegate
	case d.IsEnum:
		return KindEnum
	case d.IsInterface:
		return KindInterface
	case d.IsStruct:
		return KindStruct
	}
	return KindClass
}
