package render

import (
	"go.uber.org/zap"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/errors"
)

// 节点类别
const (
	CategoryExpression      = "expression"
	CategoryStatement       = "statement"
	CategoryMember          = "member"
	CategoryTypeDecl        = "type-declaration"
	CategoryTypeRef         = "type-reference"
	CategoryTypeParam       = "type-parameter"
	CategoryNamespace       = "namespace"
	CategoryImport          = "import"
	CategoryComment         = "comment"
	CategoryAttribute       = "attribute"
	CategoryMemberModifiers = "member-modifiers"
	CategoryTypeModifiers   = "type-modifiers"
	CategoryDirective       = "directive"
	CategoryCompileUnit     = "compile-unit"
)

// Handler 渲染一个节点
//
// 返回 (false, nil) 表示不处理该节点，此时必须尚未写出任何内容。
type Handler[N ast.Node, X any] func(ctx *Context[X], n N) (bool, error)

// Chain 一个类别的处理器链
type Chain[N ast.Node, X any] struct {
	category string
	handlers []Handler[N, X]
}

// NewChain 创建处理器链，handlers 按注册顺序排列
func NewChain[N ast.Node, X any](category string, handlers ...Handler[N, X]) *Chain[N, X] {
	return &Chain[N, X]{category: category, handlers: handlers}
}

// Register 追加处理器，后注册的优先尝试
func (c *Chain[N, X]) Register(h Handler[N, X]) {
	c.handlers = append(c.handlers, h)
}

// Category 类别名称
func (c *Chain[N, X]) Category() string { return c.category }

// Len 处理器数量
func (c *Chain[N, X]) Len() int { return len(c.handlers) }

// Handle 从最后注册的处理器开始依次尝试，第一个接受的处理器胜出
//
// 没有处理器接受时：严格模式返回 UnhandledNodeError，否则返回 (false, nil)。
func (c *Chain[N, X]) Handle(ctx *Context[X], n N) (bool, error) {
	for i := len(c.handlers) - 1; i >= 0; i-- {
		ok, err := c.handlers[i](ctx, n)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	if ctx.Options.Strict {
		e := errors.NewUnhandled(c.category, n.Kind())
		e.Profile = ctx.ProfileName()
		return false, e
	}
	ctx.Logger.Debug("no handler accepted node",
		zap.String("category", c.category),
		zap.String("kind", n.Kind()))
	return false, nil
}

// ============================================================================
// 注册表
// ============================================================================

// Registry 每个节点类别一条处理器链
type Registry[X any] struct {
	Expressions     *Chain[ast.Expression, X]
	Statements      *Chain[ast.Statement, X]
	Members         *Chain[ast.Member, X]
	TypeDecls       *Chain[*ast.TypeDecl, X]
	TypeRefs        *Chain[*ast.TypeRef, X]
	TypeParams      *Chain[*ast.TypeParam, X]
	Namespaces      *Chain[*ast.Namespace, X]
	Imports         *Chain[*ast.Import, X]
	Comments        *Chain[*ast.Comment, X]
	Attributes      *Chain[*ast.AttributeDecl, X]
	MemberModifiers *Chain[*ast.MemberModifiers, X]
	TypeModifiers   *Chain[*ast.TypeModifiers, X]
	Directives      *Chain[ast.Directive, X]
	Units           *Chain[*ast.CompileUnit, X]
}

// NewRegistry 创建所有链都为空的注册表
func NewRegistry[X any]() *Registry[X] {
	return &Registry[X]{
		Expressions:     NewChain[ast.Expression, X](CategoryExpression),
		Statements:      NewChain[ast.Statement, X](CategoryStatement),
		Members:         NewChain[ast.Member, X](CategoryMember),
		TypeDecls:       NewChain[*ast.TypeDecl, X](CategoryTypeDecl),
		TypeRefs:        NewChain[*ast.TypeRef, X](CategoryTypeRef),
		TypeParams:      NewChain[*ast.TypeParam, X](CategoryTypeParam),
		Namespaces:      NewChain[*ast.Namespace, X](CategoryNamespace),
		Imports:         NewChain[*ast.Import, X](CategoryImport),
		Comments:        NewChain[*ast.Comment, X](CategoryComment),
		Attributes:      NewChain[*ast.AttributeDecl, X](CategoryAttribute),
		MemberModifiers: NewChain[*ast.MemberModifiers, X](CategoryMemberModifiers),
		TypeModifiers:   NewChain[*ast.TypeModifiers, X](CategoryTypeModifiers),
		Directives:      NewChain[ast.Directive, X](CategoryDirective),
		Units:           NewChain[*ast.CompileUnit, X](CategoryCompileUnit),
	}
}

// registerCommon 注册所有类别的通用处理器
func (r *Registry[X]) registerCommon() {
	r.Expressions.Register((*Context[X]).expression)
	r.Statements.Register((*Context[X]).statement)
	r.Members.Register((*Context[X]).member)
	r.TypeDecls.Register((*Context[X]).typeDecl)
	r.TypeRefs.Register((*Context[X]).typeRef)
	r.TypeParams.Register((*Context[X]).typeParam)
	r.Namespaces.Register((*Context[X]).namespace)
	r.Imports.Register((*Context[X]).importDecl)
	r.Comments.Register((*Context[X]).comment)
	r.Attributes.Register((*Context[X]).attribute)
	r.MemberModifiers.Register((*Context[X]).memberModifiers)
	r.TypeModifiers.Register((*Context[X]).typeModifiers)
	r.Directives.Register((*Context[X]).directive)
	r.Units.Register((*Context[X]).compileUnit)
}
