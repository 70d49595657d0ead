package render

import (
	"github.com/tangzhangming/codedom/internal/ast"
)

// ============================================================================
// 命名空间 / 导入 / 编译单元
// ============================================================================

func (c *Context[X]) namespace(ns *ast.Namespace) (bool, error) {
	p := c.profile
	named := ns.Name != ""
	if named && p.Namespace == "" {
		return false, nil
	}

	c.EnterNamespace(ns.Name)
	for _, i := range ns.Imports {
		c.AddImport(i.Namespace)
	}

	if err := c.Comments(ns.Comments); err != nil {
		return true, err
	}
	if named {
		c.WriteIndent()
		c.Write(p.Namespace)
		c.Write(ns.Name)
		c.OpenBlock(BlockNamespace)
		c.Newline()
		c.Indent()
	}
	if err := c.namespaceBody(ns); err != nil {
		return true, err
	}
	if named {
		c.Unindent()
		c.CloseBlock(BlockNamespace)
		c.Newline()
	}
	return true, nil
}

func (c *Context[X]) namespaceBody(ns *ast.Namespace) error {
	if c.profile.NamespaceImports && len(ns.Imports) > 0 {
		for _, i := range ns.Imports {
			if err := c.Import(i); err != nil {
				return err
			}
		}
		c.Newline()
	}
	for i, t := range ns.Types {
		if i > 0 {
			c.Newline()
		}
		if err := c.TypeDecl(t); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context[X]) importDecl(i *ast.Import) (bool, error) {
	s := c.profile.Import
	if s.Keyword == "" {
		return false, nil
	}
	c.WriteIndent()
	c.Write(s.Keyword)
	if i.Alias != "" {
		c.Ident(i.Alias)
		c.Write(s.AliasSep)
	}
	c.Write(i.Namespace)
	c.Write(c.profile.Terminator)
	c.Newline()
	return true, nil
}

func (c *Context[X]) compileUnit(u *ast.CompileUnit) (bool, error) {
	p := c.profile
	if p.UnitPrologue != nil {
		if err := p.UnitPrologue(c, u); err != nil {
			return true, err
		}
	}
	if len(u.AssemblyAttributes) > 0 {
		if err := c.AttributeLines(u.AssemblyAttributes, "assembly"); err != nil {
			return true, err
		}
		c.Newline()
	}
	if err := c.Directives(u.StartDirectives); err != nil {
		return true, err
	}
	for i, ns := range u.Namespaces {
		if i > 0 {
			c.Newline()
		}
		if err := c.NamespaceDecl(ns); err != nil {
			return true, err
		}
	}
	return true, c.Directives(u.EndDirectives)
}
