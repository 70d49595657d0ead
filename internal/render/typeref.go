package render

import (
	"strings"

	"github.com/tangzhangming/codedom/internal/ast"
)

// Capture 把 fn 写出的内容收集为字符串而不写入输出目标
func (c *Context[X]) Capture(fn func() error) (string, error) {
	saved := c.Sink
	buf := NewStringSink()
	c.Sink = buf
	defer func() { c.Sink = saved }()
	err := fn()
	return buf.String(), err
}

func (c *Context[X]) typeRef(t *ast.TypeRef) (bool, error) {
	p := c.profile

	if t.IsArray() {
		if p.ArrayRank == nil {
			return false, nil
		}
		// 交错数组的秩由外向内书写：int[][,] 是元素为 int[,] 的一维数组
		base := t
		var ranks []int
		for base.IsArray() {
			ranks = append(ranks, base.ArrayRank)
			base = base.Elem
		}
		if err := c.Type(base); err != nil {
			return true, err
		}
		for _, r := range ranks {
			c.Write(p.ArrayRank(r))
		}
		return true, nil
	}

	if t.Nullable {
		if p.Nullable == nil {
			return false, nil
		}
		inner := *t
		inner.Nullable = false
		text, err := c.Capture(func() error { return c.Type(&inner) })
		if err != nil {
			return true, err
		}
		c.Write(p.Nullable(text))
		return true, nil
	}

	if len(t.TypeArgs) == 0 && p.BuiltinType != nil {
		if kw, ok := p.BuiltinType(t.Name); ok {
			c.Write(kw)
			return true, nil
		}
	}

	c.Write(c.qualify(t))
	if len(t.TypeArgs) > 0 {
		c.Write(p.TypeArgs.Open)
		if err := c.Types(t.TypeArgs, ", "); err != nil {
			return true, err
		}
		c.Write(p.TypeArgs.Close)
	}
	return true, nil
}

// qualify 决定输出完全限定名还是短名称
func (c *Context[X]) qualify(t *ast.TypeRef) string {
	name := stripArity(t.Name)
	switch {
	case t.Global:
		return c.profile.GlobalPrefix + name
	case c.Options.FullyQualify:
		return name
	}
	ns := t.Namespace()
	if ns != "" && (ns == c.Namespace || c.Imports[ns]) {
		return stripArity(t.ShortName())
	}
	return name
}

// stripArity 去掉泛型元数后缀 List`1 -> List
func stripArity(name string) string {
	if i := strings.IndexByte(name, '`'); i >= 0 {
		return name[:i]
	}
	return name
}

// ============================================================================
// 泛型参数
// ============================================================================

func (c *Context[X]) typeParam(tp *ast.TypeParam) (bool, error) {
	s := c.profile.TypeParams
	c.Ident(tp.Name)
	if !s.Inline || !hasConstraints(tp) {
		return true, nil
	}
	c.Write(c.profile.Decl.As)
	n := len(tp.Constraints)
	if tp.NewConstraint {
		n++
	}
	if n > 1 {
		c.Write(s.ListOpen)
	}
	if err := c.constraintList(tp); err != nil {
		return true, err
	}
	if n > 1 {
		c.Write(s.ListClose)
	}
	return true, nil
}

func hasConstraints(tp *ast.TypeParam) bool {
	return len(tp.Constraints) > 0 || tp.NewConstraint
}

func (c *Context[X]) constraintList(tp *ast.TypeParam) error {
	if err := c.Types(tp.Constraints, ", "); err != nil {
		return err
	}
	if tp.NewConstraint {
		if len(tp.Constraints) > 0 {
			c.Write(", ")
		}
		c.Write(c.profile.TypeParams.New)
	}
	return nil
}

// TypeParamList 输出 <T, U> / (Of T, U)
func (c *Context[X]) TypeParamList(params []*ast.TypeParam) error {
	if len(params) == 0 {
		return nil
	}
	s := c.profile.TypeParams
	c.Write(s.Open)
	for i, tp := range params {
		if i > 0 {
			c.Write(", ")
		}
		if err := c.TypeParam(tp); err != nil {
			return err
		}
	}
	c.Write(s.Close)
	return nil
}

// WhereClauses 输出写在签名之后的约束（where T : A, new()）
func (c *Context[X]) WhereClauses(params []*ast.TypeParam) error {
	s := c.profile.TypeParams
	if s.Inline {
		return nil
	}
	for _, tp := range params {
		if !hasConstraints(tp) {
			continue
		}
		c.Write(s.Where)
		c.Ident(tp.Name)
		c.Write(s.Colon)
		if err := c.constraintList(tp); err != nil {
			return err
		}
	}
	return nil
}

// Declare 输出名称与类型的声明（int x / x As Integer）
//
// t 为 nil 时使用 Infer 关键字，Infer 为空时只输出名称。
func (c *Context[X]) Declare(t *ast.TypeRef, name string) error {
	d := c.profile.Decl
	if d.TypeFirst {
		if t == nil {
			if d.Infer != "" {
				c.Write(d.Infer)
				c.Write(" ")
			}
		} else {
			if err := c.Type(t); err != nil {
				return err
			}
			if name != "" {
				c.Write(" ")
			}
		}
		c.Ident(name)
		return nil
	}

	c.Ident(name)
	if t != nil {
		c.Write(d.As)
		return c.Type(t)
	}
	if d.Infer != "" {
		c.Write(d.As)
		c.Write(d.Infer)
	}
	return nil
}
