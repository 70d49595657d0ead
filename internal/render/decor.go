package render

import (
	"strings"

	"github.com/tangzhangming/codedom/internal/ast"
)

// ============================================================================
// 注释 / 特性 / 指令
// ============================================================================

func (c *Context[X]) comment(cm *ast.Comment) (bool, error) {
	s := c.profile.Comment
	prefix := s.Line
	if cm.Doc && s.Doc != "" {
		prefix = s.Doc
	}
	if prefix == "" {
		return false, nil
	}
	for _, line := range strings.Split(cm.Text, "\n") {
		line = strings.TrimRight(line, "\r")
		c.WriteIndent()
		c.Write(prefix)
		if line != "" {
			c.Write(" " + line)
		}
		c.Newline()
	}
	return true, nil
}

// attribute 行内输出单个特性，位置由调用方决定
func (c *Context[X]) attribute(a *ast.AttributeDecl) (bool, error) {
	s := c.profile.Attribute
	if s.Open == "" {
		return false, nil
	}
	c.Write(s.Open)
	if a.Target != "" {
		target := a.Target
		if s.Target != nil {
			target = s.Target(target)
		}
		c.Write(target + s.TargetSep)
	}
	if err := c.Type(a.Type); err != nil {
		return true, err
	}
	if len(a.Args) > 0 {
		c.Write("(")
		for i, arg := range a.Args {
			if i > 0 {
				c.Write(", ")
			}
			if arg.Name != "" {
				c.Ident(arg.Name)
				c.Write(s.NamedSep)
			}
			if err := c.Expr(arg.Value); err != nil {
				return true, err
			}
		}
		c.Write(")")
	}
	c.Write(s.Close)
	return true, nil
}

// AttributeLines 每个特性单独一行；target 非空时覆盖未指定目标的特性
func (c *Context[X]) AttributeLines(attrs []*ast.AttributeDecl, target string) error {
	for _, a := range attrs {
		if target != "" && a.Target == "" {
			cp := *a
			cp.Target = target
			a = &cp
		}
		text, err := c.Capture(func() error { return c.Attribute(a) })
		if err != nil {
			return err
		}
		if text != "" {
			c.Line(text)
		}
	}
	return nil
}

func (c *Context[X]) directive(d ast.Directive) (bool, error) {
	p := c.profile
	switch d := d.(type) {
	case *ast.RegionDirective:
		if p.Region == nil {
			return false, nil
		}
		if d.Start {
			c.Line(p.Region.Start(d.Text))
		} else {
			c.Line(p.Region.End)
		}
		return true, nil
	case *ast.PragmaDirective:
		if p.Pragma == "" {
			return false, nil
		}
		c.Line(p.Pragma + d.Text)
		return true, nil
	}
	return false, nil
}
