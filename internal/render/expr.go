package render

import (
	"strings"

	"github.com/tangzhangming/codedom/internal/ast"
)

// ============================================================================
// 表达式
// ============================================================================

func (c *Context[X]) expression(e ast.Expression) (bool, error) {
	p := c.profile
	switch e := e.(type) {
	case *ast.Primitive:
		return c.primitive(e)
	case *ast.SnippetExpr:
		c.Write(e.Text)
		return true, nil

	// ========== 引用 ==========
	case *ast.VariableRef:
		c.Ident(e.Name)
		return true, nil
	case *ast.ArgumentRef:
		c.Ident(e.Name)
		return true, nil
	case *ast.FieldRef:
		return true, c.memberRef(e, e.Target, e.Name)
	case *ast.PropertyRef:
		return true, c.memberRef(e, e.Target, e.Name)
	case *ast.EventRef:
		return true, c.memberRef(e, e.Target, e.Name)
	case *ast.PropertyValueRef:
		return c.keyword(p.PropertyValue)
	case *ast.MethodRef:
		c.Write(p.MethodGroup)
		return true, c.methodRef(e)
	case *ast.ThisRef:
		return c.keyword(p.This)
	case *ast.BaseRef:
		return c.keyword(p.Base)
	case *ast.TypeRefExpr:
		return true, c.Type(e.Type)

	// ========== 运算 ==========
	case *ast.BinaryOp:
		return c.binary(e)
	case *ast.UnaryOp:
		return c.unary(e)
	case *ast.Conditional:
		return c.conditional(e)
	case *ast.Cast:
		return c.cast(e)
	case *ast.TypeOf:
		return c.wrapType(p.TypeOf, e.Type)
	case *ast.DefaultValue:
		return c.wrapType(p.Default, e.Type)

	// ========== 创建 ==========
	case *ast.ObjectCreate:
		return c.objectCreate(e)
	case *ast.ArrayCreate:
		return c.arrayCreate(e)
	case *ast.DelegateCreate:
		return c.delegateCreate(e)

	// ========== 调用 / 访问 ==========
	case *ast.Indexer:
		if err := c.Operand(e, e.Target, false); err != nil {
			return true, err
		}
		c.Write(p.Index.Open)
		if err := c.Exprs(e.Indices, ", "); err != nil {
			return true, err
		}
		c.Write(p.Index.Close)
		return true, nil
	case *ast.MethodInvoke:
		if e.Method == nil {
			return false, nil
		}
		if err := c.methodRef(e.Method); err != nil {
			return true, err
		}
		return true, c.Args(e.Args)
	case *ast.DelegateInvoke:
		if e.Target != nil {
			if err := c.Operand(e, e.Target, false); err != nil {
				return true, err
			}
		}
		return true, c.Args(e.Args)
	case *ast.Direction:
		if e.Dir == ast.DirNone {
			return true, c.Expr(e.Expr)
		}
		if p.ArgDirection == nil {
			return false, nil
		}
		kw, ok := p.ArgDirection(e.Dir)
		if !ok {
			return false, nil
		}
		c.Write(kw)
		return true, c.Expr(e.Expr)

	// ========== lambda / 参数 ==========
	case *ast.Lambda:
		return c.lambda(e)
	case *ast.ParamDecl:
		return c.param(e)
	}
	return false, nil
}

// Args 输出带括号的实参列表
func (c *Context[X]) Args(args []ast.Expression) error {
	c.Write("(")
	if err := c.Exprs(args, ", "); err != nil {
		return err
	}
	c.Write(")")
	return nil
}

// Operand 输出运算数，按需加括号
//
// 开启冗余括号移除且配置支持时，由配置的 WrapOperand 决定；
// 否则所有复合表达式和负数字面量都加括号。
func (c *Context[X]) Operand(parent, child ast.Expression, right bool) error {
	p := c.profile
	wrap := composite(child)
	if c.Options.RemoveRedundantParens && p.SupportsParenRemoval && p.WrapOperand != nil {
		wrap = p.WrapOperand(parent, child, right)
	}
	if !wrap {
		return c.Expr(child)
	}
	c.Write("(")
	if err := c.Expr(child); err != nil {
		return err
	}
	c.Write(")")
	return nil
}

func composite(e ast.Expression) bool {
	switch e.(type) {
	case *ast.BinaryOp, *ast.UnaryOp, *ast.Conditional, *ast.Lambda:
		return true
	}
	return NegativeLiteral(e)
}

func (c *Context[X]) memberRef(parent, target ast.Expression, name string) error {
	if target != nil {
		if err := c.Operand(parent, target, false); err != nil {
			return err
		}
		c.Write(c.profile.MemberAccess)
	}
	c.Ident(name)
	return nil
}

func (c *Context[X]) methodRef(m *ast.MethodRef) error {
	if err := c.memberRef(m, m.Target, m.Name); err != nil {
		return err
	}
	if len(m.TypeArgs) > 0 {
		c.Write(c.profile.TypeArgs.Open)
		if err := c.Types(m.TypeArgs, ", "); err != nil {
			return err
		}
		c.Write(c.profile.TypeArgs.Close)
	}
	return nil
}

func (c *Context[X]) binary(e *ast.BinaryOp) (bool, error) {
	if c.profile.BinaryOp == nil {
		return false, nil
	}
	sym, ok := c.profile.BinaryOp(e.Op)
	if !ok {
		return false, nil
	}
	if err := c.Operand(e, e.Left, false); err != nil {
		return true, err
	}
	c.Write(" " + sym + " ")
	return true, c.Operand(e, e.Right, true)
}

func (c *Context[X]) unary(e *ast.UnaryOp) (bool, error) {
	if c.profile.UnaryOp == nil {
		return false, nil
	}
	sym, ok := c.profile.UnaryOp(e.Op)
	if !ok {
		return false, nil
	}
	if e.Op.IsPrefix() {
		c.Write(sym)
		return true, c.Operand(e, e.Operand, true)
	}
	if err := c.Operand(e, e.Operand, false); err != nil {
		return true, err
	}
	c.Write(sym)
	return true, nil
}

func (c *Context[X]) conditional(e *ast.Conditional) (bool, error) {
	s := c.profile.Conditional
	if s == nil {
		return false, nil
	}
	// 有定界符时各部分互不影响
	operand := func(child ast.Expression, right bool) error {
		if s.Open != "" {
			return c.Expr(child)
		}
		return c.Operand(e, child, right)
	}
	c.Write(s.Open)
	if err := operand(e.Cond, false); err != nil {
		return true, err
	}
	c.Write(s.Then)
	if err := operand(e.True, false); err != nil {
		return true, err
	}
	c.Write(s.Else)
	if err := operand(e.False, true); err != nil {
		return true, err
	}
	c.Write(s.Close)
	return true, nil
}

func (c *Context[X]) cast(e *ast.Cast) (bool, error) {
	s := c.profile.Cast
	if s == nil {
		return false, nil
	}
	first, second := func() error { return c.Expr(e.Expr) }, func() error { return c.Type(e.Type) }
	if s.TypeFirst {
		first, second = second, first
	}
	c.Write(s.Open)
	if err := first(); err != nil {
		return true, err
	}
	c.Write(s.Mid)
	if err := second(); err != nil {
		return true, err
	}
	c.Write(s.Close)
	return true, nil
}

func (c *Context[X]) wrapType(d *Delims, t *ast.TypeRef) (bool, error) {
	if d == nil {
		return false, nil
	}
	c.Write(d.Open)
	if err := c.Type(t); err != nil {
		return true, err
	}
	c.Write(d.Close)
	return true, nil
}

// ============================================================================
// 创建
// ============================================================================

func (c *Context[X]) objectCreate(e *ast.ObjectCreate) (bool, error) {
	p := c.profile
	if p.New == "" || (len(e.Initializers) > 0 && p.ObjectInit == nil) {
		return false, nil
	}
	c.Write(p.New)
	if err := c.Type(e.Type); err != nil {
		return true, err
	}
	if err := c.Args(e.Args); err != nil {
		return true, err
	}
	if len(e.Initializers) == 0 {
		return true, nil
	}

	s := p.ObjectInit
	c.Write(s.Open)
	for i, init := range e.Initializers {
		if i > 0 {
			c.Write(s.Sep)
		}
		c.Write(s.MemberPrefix)
		c.Ident(init.Name)
		c.Write(" " + p.AssignSymbol + " ")
		if err := c.Expr(init.Value); err != nil {
			return true, err
		}
	}
	c.Write(s.Close)
	return true, nil
}

func (c *Context[X]) arrayCreate(e *ast.ArrayCreate) (bool, error) {
	p := c.profile
	s := p.Array
	if s == nil || p.New == "" || p.ArrayRank == nil || e.Elem == nil {
		return false, nil
	}

	// 交错数组：先输出最内层元素类型，长度之后再补上各层的秩
	base := e.Elem
	var ranks []int
	for base.IsArray() {
		ranks = append(ranks, base.ArrayRank)
		base = base.Elem
	}

	c.Write(p.New)
	if err := c.Type(base); err != nil {
		return true, err
	}
	if len(e.Sizes) > 0 {
		c.Write(s.Bounds.Open)
		for i, size := range e.Sizes {
			if i > 0 {
				c.Write(", ")
			}
			bound := size
			if p.ArrayBound != nil {
				bound = p.ArrayBound(size)
			}
			if err := c.Expr(bound); err != nil {
				return true, err
			}
		}
		c.Write(s.Bounds.Close)
	} else {
		c.Write(p.ArrayRank(e.Rank()))
	}
	for _, r := range ranks {
		c.Write(p.ArrayRank(r))
	}

	switch {
	case len(e.Initializers) > 0:
		c.Write(s.InitOpen)
		if err := c.Exprs(e.Initializers, s.InitSep); err != nil {
			return true, err
		}
		c.Write(s.InitClose)
	case len(e.Sizes) > 0:
		c.Write(s.EmptyInit)
	default:
		c.Write(strings.TrimRight(s.InitOpen, " ") + strings.TrimLeft(s.InitClose, " "))
	}
	return true, nil
}

func (c *Context[X]) delegateCreate(e *ast.DelegateCreate) (bool, error) {
	p := c.profile
	if p.DelegateCreate == nil || p.New == "" {
		return false, nil
	}
	c.Write(p.New)
	if err := c.Type(e.Type); err != nil {
		return true, err
	}
	c.Write(p.DelegateCreate.Open)
	c.Write(p.MethodGroup)
	if err := c.memberRef(e, e.Target, e.Method); err != nil {
		return true, err
	}
	c.Write(p.DelegateCreate.Close)
	return true, nil
}

// ============================================================================
// lambda / 参数
// ============================================================================

func (c *Context[X]) lambda(e *ast.Lambda) (bool, error) {
	s := c.profile.Lambda
	if s == nil {
		return false, nil
	}
	isFunc := e.ReturnType != nil || e.Body != nil || ReturnsValue(e.Stmts)
	if isFunc {
		c.Write(s.Function)
	} else {
		c.Write(s.Sub)
	}

	if s.BareSingleParam && len(e.Params) == 1 && e.Params[0].Type == nil && e.Params[0].Dir == ast.DirNone {
		c.Ident(e.Params[0].Name)
	} else {
		c.Write("(")
		for i, prm := range e.Params {
			if i > 0 {
				c.Write(", ")
			}
			if err := c.Expr(prm); err != nil {
				return true, err
			}
		}
		c.Write(")")
	}
	c.Write(s.Arrow)

	if e.Body != nil {
		c.Write(" ")
		return true, c.Expr(e.Body)
	}

	kind := BlockLambdaSub
	if isFunc {
		kind = BlockLambda
	}
	c.OpenBlock(kind)
	c.Newline()
	if err := c.WithTerminator(func() error { return c.Stmts(e.Stmts) }); err != nil {
		return true, err
	}
	c.CloseBlock(kind)
	return true, nil
}

// ReturnsValue 语句列表中是否有带值的 return（不进入嵌套 lambda）
func ReturnsValue(stmts []ast.Statement) bool {
	found := false
	for _, s := range stmts {
		ast.Inspect(s, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.Lambda:
				return false
			case *ast.Return:
				if n.Value != nil {
					found = true
				}
			}
			return !found
		})
		if found {
			return true
		}
	}
	return false
}

func (c *Context[X]) param(e *ast.ParamDecl) (bool, error) {
	p := c.profile
	dirKw := ""
	if e.Dir != ast.DirNone {
		if p.ParamDirection == nil {
			return false, nil
		}
		kw, ok := p.ParamDirection(e.Dir)
		if !ok {
			return false, nil
		}
		dirKw = kw
	}

	for _, a := range e.Attributes {
		if err := c.Attribute(a); err != nil {
			return true, err
		}
		c.Write(" ")
	}
	if e.Default != nil {
		c.Write(p.Param.Optional)
	}
	switch {
	case e.Varargs:
		c.Write(p.Param.Varargs)
	case e.Dir != ast.DirNone:
		c.Write(dirKw)
	case e.Type != nil:
		c.Write(p.Param.ByVal)
	}
	if err := c.Declare(e.Type, e.Name); err != nil {
		return true, err
	}
	if e.Default != nil {
		c.Write(" " + p.AssignSymbol + " ")
		return true, c.Expr(e.Default)
	}
	return true, nil
}
