package render

import (
	"github.com/tangzhangming/codedom/internal/ast"
)

// ============================================================================
// 类型声明
// ============================================================================

func (c *Context[X]) typeDecl(d *ast.TypeDecl) (bool, error) {
	p := c.profile
	if p.DeclKeyword == nil {
		return false, nil
	}
	kind := d.TypeKind()
	kw := p.DeclKeyword(kind)
	if kw == "" {
		return false, nil
	}
	if c.Options.Strict {
		if err := ast.CheckTypeDecl(d); err != nil {
			return true, err
		}
		if err := ast.CheckAccess(d.Name, d.Modifiers.Access); err != nil {
			return true, err
		}
	}

	if err := c.Comments(d.Comments); err != nil {
		return true, err
	}
	if err := c.Directives(d.StartDirectives); err != nil {
		return true, err
	}
	if err := c.typeDeclBody(d, kind, kw); err != nil {
		return true, err
	}
	return true, c.Directives(d.EndDirectives)
}

func (c *Context[X]) typeDeclBody(d *ast.TypeDecl, kind ast.TypeKind, kw string) error {
	p := c.profile
	if err := c.AttributeLines(d.Attributes, ""); err != nil {
		return err
	}

	c.PushDecl(d)
	defer c.PopDecl()

	c.WriteIndent()
	if err := c.TypeModifiers(&d.Modifiers); err != nil {
		return err
	}
	c.Write(kw)

	if kind == ast.KindDelegate {
		if err := c.Signature(d.Name, d.TypeParams, d.Params, d.ReturnType); err != nil {
			return err
		}
		c.Write(p.Terminator)
		c.Newline()
		return nil
	}

	c.Ident(d.Name)
	if err := c.TypeParamList(d.TypeParams); err != nil {
		return err
	}
	if p.TypeBases != nil {
		if err := p.TypeBases(c, d); err != nil {
			return err
		}
	}

	block := BlockForType(kind)
	c.OpenBlock(block)
	c.Newline()
	c.Indent()
	if err := c.typeMembers(d); err != nil {
		c.Unindent()
		return err
	}
	c.Unindent()
	c.CloseBlock(block)
	c.Newline()
	return nil
}

// typeMembers 成员之间空一行，连续的字段与枚举成员除外
func (c *Context[X]) typeMembers(d *ast.TypeDecl) error {
	if c.profile.TypeBody != nil {
		if err := c.profile.TypeBody(c, d); err != nil {
			return err
		}
	}
	enum := d.TypeKind() == ast.KindEnum
	for i, m := range d.Members {
		if i > 0 && !enum && !bothFields(d.Members[i-1], m) {
			c.Newline()
		}
		if err := c.Member(m); err != nil {
			return err
		}
	}
	return nil
}

func bothFields(a, b ast.Member) bool {
	_, af := a.(*ast.Field)
	_, bf := b.(*ast.Field)
	return af && bf
}
