package render

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tangzhangming/codedom/internal/ast"
)

// ============================================================================
// 成员
// ============================================================================
//
// 输出顺序：注释 -> 起始指令 -> 特性 -> 修饰符 -> 声明 -> 结束指令。
// 成员种类在渲染期间压在成员栈上，任何返回路径都会弹出。
//
// ============================================================================

// memberKind 成员种类标记，配置不支持时返回空字符串
func (c *Context[X]) memberKind(m ast.Member) string {
	p := c.profile
	switch m.(type) {
	case *ast.Field:
		return MemberField
	case *ast.Property:
		if p.Property == nil {
			return ""
		}
		return MemberProperty
	case *ast.Event:
		if p.Event == "" {
			return ""
		}
		return MemberEvent
	case *ast.Method:
		return MemberMethod
	case *ast.Constructor:
		if p.Ctor == nil {
			return ""
		}
		return MemberConstructor
	case *ast.StaticConstructor:
		if p.Ctor == nil {
			return ""
		}
		return MemberTypeCtor
	case *ast.EntryPoint:
		return MemberEntryPoint
	case *ast.NestedType:
		return MemberNested
	case *ast.SnippetMember:
		return MemberSnippet
	}
	return ""
}

func (c *Context[X]) member(m ast.Member) (bool, error) {
	kind := c.memberKind(m)
	if kind == "" {
		return false, nil
	}
	if c.Options.Strict {
		if err := ast.CheckMember(m); err != nil {
			return true, err
		}
	}

	b := m.Base()
	if err := c.Comments(b.Comments); err != nil {
		return true, err
	}
	if err := c.Directives(b.StartDirectives); err != nil {
		return true, err
	}
	if err := c.memberBody(kind, m); err != nil {
		return true, err
	}
	return true, c.Directives(b.EndDirectives)
}

func (c *Context[X]) memberBody(kind string, m ast.Member) error {
	c.PushMember(kind)
	defer c.PopMember()
	saved := c.IsAbstract
	defer func() { c.IsAbstract = saved }()

	if err := c.AttributeLines(m.Base().Attributes, ""); err != nil {
		return err
	}

	switch m := m.(type) {
	case *ast.Field:
		return c.field(m)
	case *ast.Property:
		return c.property(m)
	case *ast.Event:
		return c.eventMember(m)
	case *ast.Method:
		return c.method(m)
	case *ast.Constructor:
		return c.constructor(m)
	case *ast.StaticConstructor:
		return c.typeConstructor(m)
	case *ast.EntryPoint:
		return c.entryPoint(m)
	case *ast.NestedType:
		if m.Decl == nil {
			return nil
		}
		return c.TypeDecl(m.Decl)
	case *ast.SnippetMember:
		for _, line := range strings.Split(m.Text, "\n") {
			c.Line(line)
		}
	}
	return nil
}

func (c *Context[X]) field(f *ast.Field) error {
	p := c.profile
	c.WriteIndent()

	// 枚举成员只有名称与可选的值
	if c.InDecl(ast.KindEnum) {
		c.Ident(f.Name)
		if f.Init != nil {
			c.Write(" " + p.AssignSymbol + " ")
			if err := c.Expr(f.Init); err != nil {
				return err
			}
		}
		c.Write(p.EnumSeparator)
		c.Newline()
		return nil
	}

	if err := c.MemberModifiers(&f.Modifiers); err != nil {
		return err
	}
	if err := c.Declare(f.Type, f.Name); err != nil {
		return err
	}
	if f.Init != nil {
		c.Write(" " + p.AssignSymbol + " ")
		if err := c.Expr(f.Init); err != nil {
			return err
		}
	}
	c.Write(p.Terminator)
	c.Newline()
	return nil
}

func (c *Context[X]) eventMember(e *ast.Event) error {
	c.WriteIndent()
	if err := c.MemberModifiers(&e.Modifiers); err != nil {
		return err
	}
	c.Write(c.profile.Event)
	if err := c.Declare(e.Type, e.Name); err != nil {
		return err
	}
	c.Write(c.profile.Terminator)
	c.Newline()
	return nil
}

// Params 输出带括号的形参列表
func (c *Context[X]) Params(params []*ast.ParamDecl) error {
	c.Write("(")
	for i, prm := range params {
		if i > 0 {
			c.Write(", ")
		}
		if err := c.Expr(prm); err != nil {
			return err
		}
	}
	c.Write(")")
	return nil
}

// Signature 输出方法或委托的签名（不含修饰符）
func (c *Context[X]) Signature(name string, tps []*ast.TypeParam, params []*ast.ParamDecl, ret *ast.TypeRef) error {
	s := c.profile.Signature
	if s.ReturnFirst {
		if ret == nil {
			c.Write(s.Void)
		} else if err := c.Type(ret); err != nil {
			return err
		}
		c.Write(" ")
	} else if ret != nil {
		c.Write(s.Function)
	} else {
		c.Write(s.Sub)
	}

	c.Ident(name)
	if err := c.TypeParamList(tps); err != nil {
		return err
	}
	if err := c.Params(params); err != nil {
		return err
	}
	if !s.ReturnFirst && ret != nil {
		c.Write(s.ReturnAs)
		if err := c.Type(ret); err != nil {
			return err
		}
	}
	return c.WhereClauses(tps)
}

func (c *Context[X]) method(m *ast.Method) error {
	if err := c.AttributeLines(m.ReturnAttributes, "return"); err != nil {
		return err
	}
	c.WriteIndent()
	if err := c.MemberModifiers(&m.Modifiers); err != nil {
		return err
	}
	if err := c.Signature(m.Name, m.TypeParams, m.Params, m.ReturnType); err != nil {
		return err
	}

	// 抽象成员与接口成员没有方法体
	if c.IsAbstract {
		c.Write(c.profile.Terminator)
		c.Newline()
		return nil
	}
	kind := BlockSub
	if m.ReturnType != nil {
		kind = BlockFunction
	}
	return c.Block(kind, m.Stmts)
}

func (c *Context[X]) entryPoint(m *ast.EntryPoint) error {
	name := c.profile.EntryPoint
	if name == "" {
		name = "Main"
	}
	return c.method(&ast.Method{
		MemberBase: ast.MemberBase{
			Name:      name,
			Modifiers: ast.MemberModifiers{Access: ast.AccessPublic, Scope: ast.ScopeStatic},
		},
		Stmts: m.Stmts,
	})
}

// ctorName 构造函数名称，默认为所在类型的名称
func (c *Context[X]) ctorName() (string, error) {
	if n := c.profile.Ctor.Name; n != "" {
		return n, nil
	}
	f, err := c.CurrentDecl()
	if err != nil {
		return "", err
	}
	return f.Decl.Name, nil
}

func (c *Context[X]) constructor(m *ast.Constructor) error {
	s := c.profile.Ctor
	name, err := c.ctorName()
	if err != nil {
		return err
	}

	c.WriteIndent()
	if err := c.MemberModifiers(&m.Modifiers); err != nil {
		return err
	}
	c.Write(name)
	if err := c.Params(m.Params); err != nil {
		return err
	}

	// 基类 / 同类构造函数调用
	prefix, args := "", []ast.Expression(nil)
	switch {
	case m.BaseArgs != nil:
		prefix, args = s.Base, m.BaseArgs
	case m.ChainedArgs != nil:
		prefix, args = s.Chained, m.ChainedArgs
	}
	if prefix != "" && s.BaseInHeader {
		c.Write(prefix)
		if err := c.Exprs(args, ", "); err != nil {
			return err
		}
		c.Write(")")
	}

	c.OpenBlock(BlockSub)
	c.Newline()
	if prefix != "" && !s.BaseInHeader {
		c.Indent()
		c.WriteIndent()
		c.Write(prefix)
		err := c.Exprs(args, ", ")
		c.Write(")")
		c.Newline()
		c.Unindent()
		if err != nil {
			return err
		}
	}
	if err := c.Stmts(m.Stmts); err != nil {
		return err
	}
	c.CloseBlock(BlockSub)
	c.Newline()
	return nil
}

func (c *Context[X]) typeConstructor(m *ast.StaticConstructor) error {
	name, err := c.ctorName()
	if err != nil {
		return err
	}
	c.WriteIndent()
	c.Write(c.profile.Ctor.Static)
	c.Write(name)
	c.Write("()")
	return c.Block(BlockSub, m.Stmts)
}

// ============================================================================
// 属性
// ============================================================================

func (c *Context[X]) property(m *ast.Property) error {
	p := c.profile
	s := p.Property

	c.WriteIndent()
	if len(m.Params) > 0 {
		c.Write(s.Default)
	}
	if err := c.MemberModifiers(&m.Modifiers); err != nil {
		return err
	}
	switch {
	case m.HasGet && !m.HasSet:
		c.Write(s.ReadOnly)
	case m.HasSet && !m.HasGet:
		c.Write(s.WriteOnly)
	}
	c.Write(s.Keyword)

	name := func() error {
		if len(m.Params) == 0 {
			c.Ident(m.Name)
			return nil
		}
		if s.Indexer != "" {
			c.Write(s.Indexer)
		} else {
			c.Ident(m.Name)
		}
		c.Write(s.Params.Open)
		for i, prm := range m.Params {
			if i > 0 {
				c.Write(", ")
			}
			if err := c.Expr(prm); err != nil {
				return err
			}
		}
		c.Write(s.Params.Close)
		return nil
	}
	if p.Decl.TypeFirst {
		if err := c.Type(m.Type); err != nil {
			return err
		}
		c.Write(" ")
		if err := name(); err != nil {
			return err
		}
	} else {
		if err := name(); err != nil {
			return err
		}
		c.Write(p.Decl.As)
		if err := c.Type(m.Type); err != nil {
			return err
		}
	}

	if m.IsAuto() || c.IsAbstract {
		c.Write(s.AutoOpen)
		if m.HasGet && s.AutoGet != "" {
			c.Write(" ")
			c.accessorAccess(m.Modifiers.Access, m.GetAccess)
			c.Write(s.AutoGet)
		}
		if m.HasSet && s.AutoSet != "" {
			c.Write(" ")
			c.accessorAccess(m.Modifiers.Access, m.SetAccess)
			c.Write(s.AutoSet)
		}
		c.Write(s.AutoClose)
		if m.Init != nil && !c.IsAbstract {
			c.Write(" " + p.AssignSymbol + " ")
			if err := c.Expr(m.Init); err != nil {
				return err
			}
			c.Write(p.Terminator)
		}
		c.Newline()
		return nil
	}

	c.OpenBlock(BlockProperty)
	c.Newline()
	c.Indent()
	err := c.accessors(m)
	c.Unindent()
	if err != nil {
		return err
	}
	c.CloseBlock(BlockProperty)
	c.Newline()
	return nil
}

func (c *Context[X]) accessors(m *ast.Property) error {
	p := c.profile
	s := p.Property
	if m.HasGet {
		c.WriteIndent()
		c.accessorAccess(m.Modifiers.Access, m.GetAccess)
		c.Write(s.Get)
		if err := c.Block(BlockGet, m.GetStmts); err != nil {
			return err
		}
	}
	if m.HasSet {
		c.WriteIndent()
		c.accessorAccess(m.Modifiers.Access, m.SetAccess)
		c.Write(s.Set)
		if s.SetValue {
			c.Write("(" + p.Param.ByVal)
			if err := c.Declare(m.Type, "value"); err != nil {
				return err
			}
			c.Write(")")
		}
		if err := c.Block(BlockSet, m.SetStmts); err != nil {
			return err
		}
	}
	return nil
}

// accessorAccess 访问器的访问级别与属性不同时单独输出
func (c *Context[X]) accessorAccess(prop, acc ast.Access) {
	if acc == 0 || acc == prop || c.profile.AccessKeyword == nil {
		return
	}
	level, ok := acc.Resolve()
	if !ok {
		return
	}
	if kw := c.profile.AccessKeyword(level); kw != "" {
		c.Write(kw + " ")
	}
}

// ============================================================================
// 修饰符
// ============================================================================

func (c *Context[X]) memberModifiers(m *ast.MemberModifiers) (bool, error) {
	p := c.profile
	c.IsAbstract = m.Scope == ast.ScopeAbstract

	// 接口成员没有修饰符也没有主体
	if c.InDecl(ast.KindInterface) {
		c.IsAbstract = true
		return true, nil
	}

	level, ok := m.Access.Resolve()
	if !ok {
		c.Logger.Debug("unresolved accessibility, treating as unspecified",
			zap.String("access", m.Access.String()))
	}
	kw := ""
	if p.AccessKeyword != nil {
		kw = p.AccessKeyword(level)
	}
	if kw == "" && p.ImplicitAccess != nil {
		kw = p.ImplicitAccess(c, m)
	}
	if kw != "" {
		c.Write(kw + " ")
	}
	if m.New {
		c.Write(p.NewModifier)
	}

	scope := m.Scope
	if !scope.IsValid() {
		scope = ast.ScopeUnset
	}
	if p.ScopeKeyword != nil {
		if kw := p.ScopeKeyword(scope); kw != "" {
			c.Write(kw + " ")
		}
	}
	return true, nil
}

func (c *Context[X]) typeModifiers(m *ast.TypeModifiers) (bool, error) {
	p := c.profile
	if p.AccessKeyword != nil {
		level, _ := m.Access.Resolve()
		if kw := p.AccessKeyword(level); kw != "" {
			c.Write(kw + " ")
		}
	}
	s := p.TypeModifier
	for _, mod := range []struct {
		set bool
		kw  string
	}{
		{m.Abstract, s.Abstract},
		{m.Sealed, s.Sealed},
		{m.Static, s.Static},
		{m.Partial, s.Partial},
	} {
		if mod.set && mod.kw != "" {
			c.Write(mod.kw + " ")
		}
	}
	return true, nil
}
