package render

import (
	"github.com/tangzhangming/codedom/internal/ast"
)

// ============================================================================
// 语句
// ============================================================================
//
// 简单语句的输出形如：BeginStatement / 正文 / EndStatement，
// 由 Context.Terminate 控制是否输出缩进、结束符与换行。
// 结构化语句（if / while ...）总是占据整行。
//
// ============================================================================

func (c *Context[X]) statement(s ast.Statement) (bool, error) {
	p := c.profile
	switch s := s.(type) {
	case *ast.ExprStmt:
		return c.simple(func() error { return c.Expr(s.Expr) })
	case *ast.Assign:
		return c.simple(func() error { return c.assign(s.Left, p.AssignSymbol, s.Right) })
	case *ast.CompoundAssign:
		return c.compoundAssign(s)
	case *ast.VarDecl:
		return c.simple(func() error {
			c.Write(p.LocalVar)
			if err := c.Declare(s.Type, s.Name); err != nil {
				return err
			}
			if s.Init == nil {
				return nil
			}
			c.Write(" " + p.AssignSymbol + " ")
			return c.Expr(s.Init)
		})
	case *ast.Return:
		if p.Return == "" {
			return false, nil
		}
		return c.simple(func() error {
			c.Write(p.Return)
			if s.Value == nil {
				return nil
			}
			c.Write(" ")
			return c.Expr(s.Value)
		})
	case *ast.Throw:
		if p.Throw == "" {
			return false, nil
		}
		return c.simple(func() error {
			c.Write(p.Throw)
			if s.Expr == nil {
				return nil
			}
			c.Write(" ")
			return c.Expr(s.Expr)
		})
	case *ast.Break:
		return c.jump(p.Break, "")
	case *ast.Continue:
		return c.jump(p.Continue, "")
	case *ast.Goto:
		return c.jump(p.Goto, s.Label)
	case *ast.Labeled:
		return c.labeled(s)
	case *ast.AttachEvent:
		return c.event(p.Attach, s.Event, s.Listener)
	case *ast.RemoveEvent:
		return c.event(p.Remove, s.Event, s.Listener)
	case *ast.CommentStmt:
		return true, c.Comment(s.Comment)
	case *ast.SnippetStmt:
		c.Line(s.Text)
		return true, nil

	// ========== 结构化语句 ==========
	case *ast.If:
		return c.ifStmt(s)
	case *ast.Iteration:
		if s.IsWhile() {
			return c.while(s)
		}
		return c.forStmt(s)
	case *ast.DoWhile:
		return c.doWhile(s)
	case *ast.ForEach:
		return c.forEach(s)
	case *ast.Using:
		return c.using(s)
	case *ast.Try:
		return c.try(s)
	}
	return false, nil
}

// simple 输出一条简单语句
func (c *Context[X]) simple(body func() error) (bool, error) {
	c.BeginStatement()
	if err := body(); err != nil {
		return true, err
	}
	c.EndStatement()
	return true, nil
}

func (c *Context[X]) assign(left ast.Expression, sym string, right ast.Expression) error {
	if err := c.Expr(left); err != nil {
		return err
	}
	c.Write(" " + sym + " ")
	return c.Expr(right)
}

// compoundAssign 没有对应复合符号时展开为 x = x op y
func (c *Context[X]) compoundAssign(s *ast.CompoundAssign) (bool, error) {
	if c.profile.CompoundSymbol != nil {
		if sym, ok := c.profile.CompoundSymbol(s.Op); ok {
			return c.simple(func() error { return c.assign(s.Left, sym, s.Right) })
		}
	}
	return true, c.Stmt(s.Expand())
}

func (c *Context[X]) jump(kw, label string) (bool, error) {
	if kw == "" {
		return false, nil
	}
	return c.simple(func() error {
		c.Write(kw)
		if label != "" {
			c.Write(" ")
			c.Ident(label)
		}
		return nil
	})
}

// labeled 标签比当前语句少一层缩进
func (c *Context[X]) labeled(s *ast.Labeled) (bool, error) {
	level := c.indent
	c.Unindent()
	c.WriteIndent()
	c.Ident(s.Label)
	c.Write(":")
	c.Newline()
	c.indent = level
	return true, c.Stmt(s.Stmt)
}

func (c *Context[X]) event(s *EventSyntax, ev *ast.EventRef, listener ast.Expression) (bool, error) {
	if s == nil || ev == nil {
		return false, nil
	}
	return c.simple(func() error {
		c.Write(s.Prefix)
		if err := c.Expr(ev); err != nil {
			return err
		}
		c.Write(s.Sep)
		return c.Expr(listener)
	})
}

// Block 在打开的块中输出语句列表，然后闭合并换行
func (c *Context[X]) Block(kind BlockKind, body []ast.Statement) error {
	c.OpenBlock(kind)
	c.Newline()
	if err := c.Stmts(body); err != nil {
		return err
	}
	c.CloseBlock(kind)
	c.Newline()
	return nil
}

func (c *Context[X]) ifStmt(s *ast.If) (bool, error) {
	syn := c.profile.If
	if syn == nil {
		return false, nil
	}

	c.WriteIndent()
	c.Write(syn.If)
	if err := c.Expr(s.Cond); err != nil {
		return true, err
	}
	c.Write(syn.Then)
	c.OpenBlock(BlockIf)
	c.Newline()
	if err := c.Stmts(s.True); err != nil {
		return true, err
	}

	// 子句之间的过渡：逐个闭合的语法先闭合上一段，再打开下一段
	next := func(header func() error) error {
		if syn.CloseBeforeElse {
			c.CloseBlock(BlockIf)
			c.Newline()
		}
		c.WriteIndent()
		if err := header(); err != nil {
			return err
		}
		if syn.CloseBeforeElse {
			c.OpenBlock(BlockIf)
		}
		c.Newline()
		return nil
	}

	cur := s
	for {
		elif, ok := cur.ElseIf()
		if !ok {
			break
		}
		err := next(func() error {
			c.Write(syn.ElseIf)
			if err := c.Expr(elif.Cond); err != nil {
				return err
			}
			c.Write(syn.ElseThen)
			return nil
		})
		if err != nil {
			return true, err
		}
		if err := c.Stmts(elif.True); err != nil {
			return true, err
		}
		cur = elif
	}

	if len(cur.False) > 0 {
		if err := next(func() error { c.Write(syn.Else); return nil }); err != nil {
			return true, err
		}
		if err := c.Stmts(cur.False); err != nil {
			return true, err
		}
	}

	c.CloseBlock(BlockIf)
	c.Newline()
	return true, nil
}

func (c *Context[X]) while(s *ast.Iteration) (bool, error) {
	syn := c.profile.While
	if syn == nil {
		return false, nil
	}
	c.WriteIndent()
	c.Write(syn.Open)
	if err := c.Expr(s.Test); err != nil {
		return true, err
	}
	c.Write(syn.Close)
	return true, c.Block(BlockWhile, s.Body)
}

// forStmt 初始化与递增语句嵌在头部，不输出自身的结束符
func (c *Context[X]) forStmt(s *ast.Iteration) (bool, error) {
	syn := c.profile.For
	if syn == nil {
		return false, nil
	}
	c.WriteIndent()
	c.Write(syn.Open)
	err := c.WithoutTerminator(func() error {
		if err := c.Stmt(s.Init); err != nil {
			return err
		}
		c.Write(syn.Sep)
		if err := c.Expr(s.Test); err != nil {
			return err
		}
		c.Write(syn.Sep)
		return c.Stmt(s.Incr)
	})
	if err != nil {
		return true, err
	}
	c.Write(syn.Close)
	return true, c.Block(BlockWhile, s.Body)
}

func (c *Context[X]) doWhile(s *ast.DoWhile) (bool, error) {
	syn := c.profile.DoWhile
	if syn == nil {
		return false, nil
	}
	c.WriteIndent()
	c.Write(syn.Do)
	c.OpenBlock(BlockDo)
	c.Newline()
	if err := c.Stmts(s.Body); err != nil {
		return true, err
	}
	c.CloseBlock(BlockDo)
	c.Write(syn.Tail)
	if err := c.Expr(s.Test); err != nil {
		return true, err
	}
	c.Write(syn.TailClose)
	c.Newline()
	return true, nil
}

func (c *Context[X]) forEach(s *ast.ForEach) (bool, error) {
	syn := c.profile.ForEach
	if syn == nil {
		return false, nil
	}
	c.WriteIndent()
	c.Write(syn.Open)
	if err := c.Declare(s.ElemType, s.Var); err != nil {
		return true, err
	}
	c.Write(syn.In)
	if err := c.Expr(s.Collection); err != nil {
		return true, err
	}
	c.Write(syn.Close)
	return true, c.Block(BlockForEach, s.Body)
}

func (c *Context[X]) using(s *ast.Using) (bool, error) {
	syn := c.profile.Using
	if syn == nil {
		return false, nil
	}
	c.WriteIndent()
	c.Write(syn.Open)
	if s.Decl != nil {
		if err := c.Declare(s.Decl.Type, s.Decl.Name); err != nil {
			return true, err
		}
		if s.Decl.Init != nil {
			c.Write(" " + c.profile.AssignSymbol + " ")
			if err := c.Expr(s.Decl.Init); err != nil {
				return true, err
			}
		}
	} else if err := c.Expr(s.Expr); err != nil {
		return true, err
	}
	c.Write(syn.Close)
	return true, c.Block(BlockUsing, s.Body)
}

func (c *Context[X]) try(s *ast.Try) (bool, error) {
	syn := c.profile.Try
	if syn == nil {
		return false, nil
	}

	c.WriteIndent()
	c.Write(syn.Try)
	c.OpenBlock(BlockTry)
	c.Newline()
	if err := c.Stmts(s.Body); err != nil {
		return true, err
	}

	clause := func(header func() error, body []ast.Statement) error {
		if syn.CloseBeforeNext {
			c.CloseBlock(BlockTry)
			c.Newline()
		}
		c.WriteIndent()
		if err := header(); err != nil {
			return err
		}
		if syn.CloseBeforeNext {
			c.OpenBlock(BlockTry)
		}
		c.Newline()
		return c.Stmts(body)
	}

	for _, cc := range s.Catches {
		cc := cc
		err := clause(func() error {
			c.Write(syn.Catch)
			if cc.Type == nil {
				return nil
			}
			name := cc.Var
			if name == "" {
				name = syn.DefaultVar
			}
			c.Write(syn.CatchOpen)
			if err := c.Declare(cc.Type, name); err != nil {
				return err
			}
			c.Write(syn.CatchClose)
			return nil
		}, cc.Body)
		if err != nil {
			return true, err
		}
	}

	if len(s.Finally) > 0 {
		err := clause(func() error { c.Write(syn.Finally); return nil }, s.Finally)
		if err != nil {
			return true, err
		}
	}

	c.CloseBlock(BlockTry)
	c.Newline()
	return true, nil
}
