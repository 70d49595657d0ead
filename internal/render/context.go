package render

import (
	"go.uber.org/zap"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/errors"
)

// DeclFrame 声明栈中的一项
type DeclFrame struct {
	Kind ast.TypeKind
	Decl *ast.TypeDecl
}

// 成员种类标记
const (
	MemberField       = "field"
	MemberProperty    = "property"
	MemberEvent       = "event"
	MemberMethod      = "method"
	MemberConstructor = "constructor"
	MemberTypeCtor    = "static-constructor"
	MemberEntryPoint  = "entry-point"
	MemberNested      = "nested-type"
	MemberSnippet     = "snippet"
)

// Context 单次渲染的可变状态
//
// 每次渲染创建一个新的 Context，不能跨渲染或跨 goroutine 共享。
type Context[X any] struct {
	Sink    TextSink
	Options *Options
	Logger  *zap.Logger

	// Extra 配置私有的扩展状态
	Extra X

	// Terminate 语句是否自行输出缩进、结束符与换行
	Terminate bool

	// IsAbstract 当前成员是否为抽象成员
	IsAbstract bool

	// 当前命名空间及其导入
	Namespace string
	Imports   map[string]bool

	profile *Profile[X]
	reg     *Registry[X]
	indent  int
	decls   []DeclFrame
	members []string
}

// newContext 创建上下文
func newContext[X any](p *Profile[X], reg *Registry[X], sink TextSink, opts *Options, logger *zap.Logger) *Context[X] {
	if opts == nil {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := &Context[X]{
		Sink:      sink,
		Options:   opts,
		Logger:    logger,
		Terminate: true,
		Imports:   make(map[string]bool),
		profile:   p,
		reg:       reg,
	}
	if p.NewExtra != nil {
		ctx.Extra = p.NewExtra()
	}
	return ctx
}

// Profile 当前使用的语法配置
func (c *Context[X]) Profile() *Profile[X] { return c.profile }

// ProfileName 配置名称
func (c *Context[X]) ProfileName() string { return c.profile.Name }

// ============================================================================
// 缩进
// ============================================================================

// IndentLevel 当前缩进层级
func (c *Context[X]) IndentLevel() int { return c.indent }

// IndentUnit 缩进单位
func (c *Context[X]) IndentUnit() string { return c.Options.indentUnit() }

// Indent 增加一层缩进
func (c *Context[X]) Indent() { c.indent++ }

// Unindent 减少一层缩进
func (c *Context[X]) Unindent() {
	if c.indent > 0 {
		c.indent--
	}
}

// ============================================================================
// 声明栈 / 成员栈
// ============================================================================

// PushDecl 压入类型声明
func (c *Context[X]) PushDecl(d *ast.TypeDecl) {
	c.decls = append(c.decls, DeclFrame{Kind: d.TypeKind(), Decl: d})
}

// PopDecl 弹出类型声明
func (c *Context[X]) PopDecl() {
	if len(c.decls) > 0 {
		c.decls = c.decls[:len(c.decls)-1]
	}
}

// CurrentDecl 当前类型声明，栈为空时返回错误
func (c *Context[X]) CurrentDecl() (DeclFrame, error) {
	if len(c.decls) == 0 {
		return DeclFrame{}, errors.NewEmptyStack("declaration")
	}
	return c.decls[len(c.decls)-1], nil
}

// DeclDepth 声明栈深度
func (c *Context[X]) DeclDepth() int { return len(c.decls) }

// InDecl 当前类型声明是否为指定种类
func (c *Context[X]) InDecl(k ast.TypeKind) bool {
	f, err := c.CurrentDecl()
	return err == nil && f.Kind == k
}

// PushMember 压入成员种类
func (c *Context[X]) PushMember(kind string) {
	c.members = append(c.members, kind)
}

// PopMember 弹出成员种类
func (c *Context[X]) PopMember() {
	if len(c.members) > 0 {
		c.members = c.members[:len(c.members)-1]
	}
}

// CurrentMember 当前成员种类，栈为空时返回错误
func (c *Context[X]) CurrentMember() (string, error) {
	if len(c.members) == 0 {
		return "", errors.NewEmptyStack("member")
	}
	return c.members[len(c.members)-1], nil
}

// MemberDepth 成员栈深度
func (c *Context[X]) MemberDepth() int { return len(c.members) }

// ============================================================================
// 标志
// ============================================================================

// WithoutTerminator 在 fn 执行期间关闭语句的自行结束
func (c *Context[X]) WithoutTerminator(fn func() error) error {
	saved := c.Terminate
	c.Terminate = false
	defer func() { c.Terminate = saved }()
	return fn()
}

// WithTerminator 在 fn 执行期间恢复语句的自行结束（lambda 语句体）
func (c *Context[X]) WithTerminator(fn func() error) error {
	saved := c.Terminate
	c.Terminate = true
	defer func() { c.Terminate = saved }()
	return fn()
}

// EnterNamespace 重置命名空间作用域的状态
func (c *Context[X]) EnterNamespace(name string) {
	c.Namespace = name
	c.Imports = make(map[string]bool)
}

// AddImport 记录导入，重复导入返回 false
func (c *Context[X]) AddImport(ns string) bool {
	if c.Imports[ns] {
		return false
	}
	c.Imports[ns] = true
	return true
}

// ============================================================================
// 输出
// ============================================================================

// Write 写入文本
func (c *Context[X]) Write(s string) { c.Sink.Write(s) }

// Newline 写入换行
func (c *Context[X]) Newline() { c.Sink.Newline() }

// WriteIndent 写入当前缩进
func (c *Context[X]) WriteIndent() { c.Sink.Indent(c) }

// Line 写入缩进、文本与换行
func (c *Context[X]) Line(s string) {
	c.WriteIndent()
	c.Write(s)
	c.Newline()
}

// BeginStatement 语句开始：需要自行结束时写入缩进
func (c *Context[X]) BeginStatement() {
	if c.Terminate {
		c.WriteIndent()
	}
}

// EndStatement 语句结束：需要自行结束时写入结束符与换行
func (c *Context[X]) EndStatement() {
	if c.Terminate {
		c.Write(c.profile.Terminator)
		c.Newline()
	}
}

// Ident 写入经过转义的标识符
func (c *Context[X]) Ident(name string) {
	if c.profile.EscapeIdentifier != nil {
		name = c.profile.EscapeIdentifier(name)
	}
	c.Write(name)
}

// OpenBlock 打开结构化块
func (c *Context[X]) OpenBlock(kind BlockKind) {
	if c.profile.OpenBlock != nil {
		c.profile.OpenBlock(c, kind)
	}
}

// CloseBlock 闭合结构化块（不写换行）
func (c *Context[X]) CloseBlock(kind BlockKind) {
	if c.profile.CloseBlock != nil {
		c.profile.CloseBlock(c, kind)
	}
}

// ============================================================================
// 分派
// ============================================================================
//
// 宽松模式下没有处理器接受的节点被跳过并记录警告；
// 严格模式下链本身返回 UnhandledNodeError。
//
// ============================================================================

func (c *Context[X]) skipped(category string, n ast.Node) {
	c.Logger.Warn("node skipped",
		zap.String("profile", c.profile.Name),
		zap.String("category", category),
		zap.String("kind", n.Kind()))
}

func dispatch[N ast.Node, X any](c *Context[X], chain *Chain[N, X], n N) error {
	ok, err := chain.Handle(c, n)
	if err != nil {
		return err
	}
	if !ok {
		c.skipped(chain.category, n)
	}
	return nil
}

// Expr 渲染表达式，nil 时什么都不写
func (c *Context[X]) Expr(e ast.Expression) error {
	if e == nil {
		return nil
	}
	return dispatch(c, c.reg.Expressions, e)
}

// Exprs 以 sep 分隔渲染表达式列表
func (c *Context[X]) Exprs(list []ast.Expression, sep string) error {
	for i, e := range list {
		if i > 0 {
			c.Write(sep)
		}
		if err := c.Expr(e); err != nil {
			return err
		}
	}
	return nil
}

// Stmt 渲染语句
func (c *Context[X]) Stmt(s ast.Statement) error {
	if s == nil {
		return nil
	}
	return dispatch(c, c.reg.Statements, s)
}

// Stmts 在多一层缩进中渲染语句列表
func (c *Context[X]) Stmts(list []ast.Statement) error {
	c.Indent()
	defer c.Unindent()
	for _, s := range list {
		if err := c.Stmt(s); err != nil {
			return err
		}
	}
	return nil
}

// Member 渲染成员
func (c *Context[X]) Member(m ast.Member) error {
	return dispatch(c, c.reg.Members, m)
}

// TypeDecl 渲染类型声明
func (c *Context[X]) TypeDecl(d *ast.TypeDecl) error {
	return dispatch(c, c.reg.TypeDecls, d)
}

// Type 渲染类型引用
func (c *Context[X]) Type(t *ast.TypeRef) error {
	if t == nil {
		return nil
	}
	return dispatch(c, c.reg.TypeRefs, t)
}

// Types 以 sep 分隔渲染类型列表
func (c *Context[X]) Types(list []*ast.TypeRef, sep string) error {
	for i, t := range list {
		if i > 0 {
			c.Write(sep)
		}
		if err := c.Type(t); err != nil {
			return err
		}
	}
	return nil
}

// TypeParam 渲染泛型参数
func (c *Context[X]) TypeParam(p *ast.TypeParam) error {
	return dispatch(c, c.reg.TypeParams, p)
}

// NamespaceDecl 渲染命名空间
func (c *Context[X]) NamespaceDecl(ns *ast.Namespace) error {
	return dispatch(c, c.reg.Namespaces, ns)
}

// Import 渲染导入
func (c *Context[X]) Import(i *ast.Import) error {
	return dispatch(c, c.reg.Imports, i)
}

// Comment 渲染注释
func (c *Context[X]) Comment(cm *ast.Comment) error {
	if cm == nil {
		return nil
	}
	return dispatch(c, c.reg.Comments, cm)
}

// Comments 渲染注释列表
func (c *Context[X]) Comments(list []*ast.Comment) error {
	for _, cm := range list {
		if err := c.Comment(cm); err != nil {
			return err
		}
	}
	return nil
}

// Attribute 渲染单个特性
func (c *Context[X]) Attribute(a *ast.AttributeDecl) error {
	return dispatch(c, c.reg.Attributes, a)
}

// MemberModifiers 渲染成员修饰符
func (c *Context[X]) MemberModifiers(m *ast.MemberModifiers) error {
	return dispatch(c, c.reg.MemberModifiers, m)
}

// TypeModifiers 渲染类型修饰符
func (c *Context[X]) TypeModifiers(m *ast.TypeModifiers) error {
	return dispatch(c, c.reg.TypeModifiers, m)
}

// Directive 渲染指令
func (c *Context[X]) Directive(d ast.Directive) error {
	return dispatch(c, c.reg.Directives, d)
}

// Directives 渲染指令列表
func (c *Context[X]) Directives(list []ast.Directive) error {
	for _, d := range list {
		if err := c.Directive(d); err != nil {
			return err
		}
	}
	return nil
}
