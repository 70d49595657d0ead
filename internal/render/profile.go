package render

import (
	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/errors"
	"github.com/tangzhangming/codedom/internal/token"
)

// ============================================================================
// 块种类
// ============================================================================

// BlockKind 结构化块的种类，传给 OpenBlock/CloseBlock
type BlockKind int

const (
	BlockNamespace BlockKind = iota
	BlockClass
	BlockStruct
	BlockInterface
	BlockEnum
	BlockFunction // 有返回值的方法
	BlockSub      // 无返回值的方法 / 构造函数
	BlockProperty
	BlockGet
	BlockSet
	BlockIf
	BlockWhile
	BlockDo
	BlockForEach
	BlockUsing
	BlockTry
	BlockLambda    // 有返回值的语句体 lambda
	BlockLambdaSub // 无返回值的语句体 lambda
)

var blockNames = [...]string{
	BlockNamespace: "namespace",
	BlockClass:     "class",
	BlockStruct:    "struct",
	BlockInterface: "interface",
	BlockEnum:      "enum",
	BlockFunction:  "function",
	BlockSub:       "sub",
	BlockProperty:  "property",
	BlockGet:       "get",
	BlockSet:       "set",
	BlockIf:        "if",
	BlockWhile:     "while",
	BlockDo:        "do",
	BlockForEach:   "foreach",
	BlockUsing:     "using",
	BlockTry:       "try",
	BlockLambda:    "lambda",
	BlockLambdaSub: "lambda-sub",
}

func (k BlockKind) String() string {
	if k >= 0 && int(k) < len(blockNames) {
		return blockNames[k]
	}
	return "block"
}

// IsLoop 是否为循环块
func (k BlockKind) IsLoop() bool {
	return k == BlockWhile || k == BlockDo || k == BlockForEach
}

// IsCallable 是否为方法或 lambda 的主体
func (k BlockKind) IsCallable() bool {
	switch k {
	case BlockFunction, BlockSub, BlockGet, BlockSet, BlockLambda, BlockLambdaSub:
		return true
	}
	return false
}

// BlockForType 类型种类对应的块
func BlockForType(k ast.TypeKind) BlockKind {
	switch k {
	case ast.KindStruct:
		return BlockStruct
	case ast.KindInterface:
		return BlockInterface
	case ast.KindEnum:
		return BlockEnum
	}
	return BlockClass
}

// ============================================================================
// 语法片段
// ============================================================================

// Delims 成对的定界符
type Delims struct {
	Open  string
	Close string
}

// DeclSyntax 名称与类型的声明顺序
type DeclSyntax struct {
	TypeFirst bool   // int x（否则 x As Integer）
	As        string // 名称在前时名称与类型之间的文本
	Infer     string // 类型缺省时代替类型的关键字，可为空
}

// ConditionalSyntax 条件表达式 c ? a : b / If(c, a, b)
type ConditionalSyntax struct {
	Open, Then, Else, Close string
}

// CastSyntax 类型转换
type CastSyntax struct {
	TypeFirst bool // ((T)(x))（否则 CType(x, T)）
	Open      string
	Mid       string
	Close     string
}

// InitSyntax 对象初始化器 new T() { P = v }
type InitSyntax struct {
	Open         string
	Sep          string
	Close        string
	MemberPrefix string // 属性名前缀（VB 的 "."）
}

// ArraySyntax 数组创建
type ArraySyntax struct {
	Bounds    Delims // 维度长度的定界符
	InitOpen  string
	InitSep   string
	InitClose string
	EmptyInit string // 只有长度时追加的初始化器
}

// LambdaSyntax 匿名函数
type LambdaSyntax struct {
	Function        string // 有返回值时参数前的关键字
	Sub             string // 无返回值时参数前的关键字
	Arrow           string // 参数之后、主体之前
	BareSingleParam bool   // 单个无类型参数省略括号
}

// IfSyntax 条件语句
type IfSyntax struct {
	If, Then         string
	ElseIf, ElseThen string
	Else             string
	CloseBeforeElse  bool // 每个分支单独闭合（否则整条链只闭合一次）
}

// ForSyntax 经典 for 循环
type ForSyntax struct {
	Open, Sep, Close string
}

// DoSyntax 后测试循环，Tail 写在闭合之后
type DoSyntax struct {
	Do        string
	Tail      string
	TailClose string
}

// ForEachSyntax 集合遍历
type ForEachSyntax struct {
	Open, In, Close string
}

// TrySyntax 异常处理
type TrySyntax struct {
	Try             string
	Catch           string
	CatchOpen       string
	CatchClose      string
	DefaultVar      string // 有类型无变量时使用的变量名，为空则省略变量
	Finally         string
	CloseBeforeNext bool
}

// EventSyntax 订阅 / 取消订阅事件
type EventSyntax struct {
	Prefix string
	Sep    string
}

// SignatureSyntax 方法与委托签名
type SignatureSyntax struct {
	ReturnFirst bool   // int M()（否则 Function M() As Integer）
	Function    string // 有返回值时名称前的关键字
	Sub         string // 无返回值时名称前的关键字
	Void        string // 无返回值时的返回类型文本
	ReturnAs    string // 返回类型在后时的分隔
	Delegate    string
}

// ParamSyntax 参数声明
type ParamSyntax struct {
	Varargs  string
	Optional string
	ByVal    string // 按值传递时的关键字
}

// TypeParamSyntax 泛型参数
type TypeParamSyntax struct {
	Open, Close string
	Inline      bool   // 约束写在参数内 (Of T As {A, New})
	Where       string // 约束写在签名后时的引导词
	Colon       string // T : A
	New         string // 构造函数约束
	ListOpen    string // 多个内联约束的定界符
	ListClose   string
}

// PropertySyntax 属性
type PropertySyntax struct {
	Keyword   string
	ReadOnly  string
	WriteOnly string
	Indexer   string // 索引器名称 (this / Item)
	Default   string // 索引器前缀 (Default)
	Params    Delims
	Get, Set  string
	SetValue  bool   // set 访问器显式声明 value 参数
	AutoOpen  string // 自动属性访问器列表
	AutoGet   string
	AutoSet   string
	AutoClose string
}

// CtorSyntax 构造函数
type CtorSyntax struct {
	Name         string // 为空时使用类型名
	Static       string
	BaseInHeader bool
	Base         string
	Chained      string
}

// TypeModifierSyntax 类型修饰符关键字
type TypeModifierSyntax struct {
	Abstract, Sealed, Static, Partial string
}

// ImportSyntax 命名空间导入
type ImportSyntax struct {
	Keyword  string
	AliasSep string
}

// CommentSyntax 注释前缀
type CommentSyntax struct {
	Line string
	Doc  string
}

// AttributeSyntax 自定义特性
type AttributeSyntax struct {
	Open, Close string
	TargetSep   string
	NamedSep    string
	Target      func(target string) string
}

// RegionSyntax 折叠区域指令
type RegionSyntax struct {
	Start func(text string) string
	End   string
}

// ============================================================================
// Profile
// ============================================================================

// Profile 一种目标语法的全部钩子
//
// 指针字段为 nil、字符串字段为空或函数返回 false，表示该语法没有对应的结构：
// 通用处理器在写出任何内容之前检查这些钩子，并报告"不处理"，
// 让节点沿处理器链继续传递。
type Profile[X any] struct {
	Name     string
	NewExtra func() X

	// ---------- 词法 ----------
	Terminator       string
	AssignSymbol     string
	MemberAccess     string
	EscapeIdentifier func(name string) string
	Decl             DeclSyntax

	// ---------- 类型引用 ----------
	BuiltinType  func(name string) (string, bool)
	TypeArgs     Delims
	ArrayRank    func(rank int) string
	Nullable     func(inner string) string
	GlobalPrefix string

	// ---------- 字面量 ----------
	Null, True, False string
	Quote             func(s string) string
	QuoteChar         func(r rune) string
	DefaultInt        string
	DefaultFloat      string
	LiteralSuffix     func(typeName string) (string, bool)
	MinValueMember    bool // 整数最小值写成 T.MinValue（负数字面量由一元负号构成的语法）

	// ---------- 表达式 ----------
	This, Base           string
	New                  string
	BinaryOp             func(op token.Operator) (string, bool)
	UnaryOp              func(op token.UnaryOperator) (string, bool)
	WrapOperand          func(parent, child ast.Expression, right bool) bool
	SupportsParenRemoval bool
	Conditional          *ConditionalSyntax
	Cast                 *CastSyntax
	TypeOf               *Delims
	Default              *Delims
	ObjectInit           *InitSyntax
	Array                *ArraySyntax
	ArrayBound           func(size ast.Expression) ast.Expression
	Index                Delims
	ArgDirection         func(d ast.FieldDirection) (string, bool)
	MethodGroup          string
	DelegateCreate       *Delims
	Lambda               *LambdaSyntax
	PropertyValue        string

	// ---------- 语句 ----------
	OpenBlock      func(ctx *Context[X], kind BlockKind)
	CloseBlock     func(ctx *Context[X], kind BlockKind)
	CompoundSymbol func(op token.Operator) (string, bool)
	LocalVar       string
	If             *IfSyntax
	While          *Delims
	For            *ForSyntax
	DoWhile        *DoSyntax
	ForEach        *ForEachSyntax
	Using          *Delims
	Try            *TrySyntax
	Attach         *EventSyntax
	Remove         *EventSyntax
	Goto           string
	Return         string
	Break          string
	Continue       string
	Throw          string

	// ---------- 成员 ----------
	AccessKeyword   func(a ast.Accessibility) string
	ScopeKeyword    func(s ast.Scope) string
	NewModifier     string
	ImplicitAccess  func(ctx *Context[X], m *ast.MemberModifiers) string
	TypeModifier    TypeModifierSyntax
	EnumSeparator   string
	Event           string
	Signature       SignatureSyntax
	Param           ParamSyntax
	ParamDirection  func(d ast.FieldDirection) (string, bool)
	TypeParams      TypeParamSyntax
	Property        *PropertySyntax
	Ctor            *CtorSyntax
	EntryPoint      string
	DeclKeyword     func(k ast.TypeKind) string
	TypeBases       func(ctx *Context[X], d *ast.TypeDecl) error
	TypeBody        func(ctx *Context[X], d *ast.TypeDecl) error

	// ---------- 命名空间 / 编译单元 ----------
	Namespace        string
	NamespaceImports bool
	Import           ImportSyntax
	UnitPrologue     func(ctx *Context[X], unit *ast.CompileUnit) error

	// ---------- 注释 / 特性 / 指令 ----------
	Comment   CommentSyntax
	Attribute AttributeSyntax
	Region    *RegionSyntax
	Pragma    string

	// ExtraHandlers 在通用处理器之后注册，因此优先尝试
	ExtraHandlers func(reg *Registry[X])
}

// Validate 检查配置的必填钩子
func (p *Profile[X]) Validate() error {
	if p.AssignSymbol == "" {
		return errors.NewArgument(errors.G0202, "AssignSymbol", p.Name)
	}
	return nil
}
