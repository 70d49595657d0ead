package vb

import (
	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/render"
	"github.com/tangzhangming/codedom/internal/token"
)

// ============================================================================
// 额外处理器
// ============================================================================
//
// 这些处理器在通用处理器之后注册，因此优先尝试；
// 不属于自己的节点一律返回 (false, nil) 交给通用处理器。
//
// ============================================================================

func registerHandlers(reg *render.Registry[Extra]) {
	reg.Expressions.Register(stepExpr)
	reg.Expressions.Register(nullCoalesce)

	reg.Statements.Register(forLoop)
	reg.Statements.Register(loopJump)
	reg.Statements.Register(stepStmt)
}

// stepUpdate x += 1 / x -= 1
func stepUpdate(u *ast.UnaryOp) *ast.CompoundAssign {
	return &ast.CompoundAssign{Left: u.Operand, Op: u.Op.StepOperator(), Right: ast.Literal(int32(1))}
}

// stepExpr 把 ++x / x++ 改写为立即调用的 lambda
//
// 前缀形式先更新再返回；后缀形式在 Try 中返回，在 Finally 中更新。
func stepExpr(ctx *render.Context[Extra], e ast.Expression) (bool, error) {
	u, ok := e.(*ast.UnaryOp)
	if !ok || !u.Op.IsStep() {
		return false, nil
	}
	ret := &ast.Return{Value: u.Operand}
	var body []ast.Statement
	if u.Op.IsPrefix() {
		body = []ast.Statement{stepUpdate(u), ret}
	} else {
		body = []ast.Statement{&ast.Try{
			Body:    []ast.Statement{ret},
			Finally: []ast.Statement{stepUpdate(u)},
		}}
	}

	ctx.Write("(")
	if err := ctx.Expr(&ast.Lambda{Stmts: body}); err != nil {
		return true, err
	}
	ctx.Write(")()")
	return true, nil
}

// stepStmt 单独成句的 ++x / x++ 不需要返回值
func stepStmt(ctx *render.Context[Extra], s ast.Statement) (bool, error) {
	es, ok := s.(*ast.ExprStmt)
	if !ok {
		return false, nil
	}
	u, ok := es.Expr.(*ast.UnaryOp)
	if !ok || !u.Op.IsStep() {
		return false, nil
	}
	return true, ctx.Stmt(stepUpdate(u))
}

// nullCoalesce a ?? b -> If(a, b)
func nullCoalesce(ctx *render.Context[Extra], e ast.Expression) (bool, error) {
	b, ok := e.(*ast.BinaryOp)
	if !ok || b.Op != token.NullCoalesce {
		return false, nil
	}
	ctx.Write("If(")
	if err := ctx.Expr(b.Left); err != nil {
		return true, err
	}
	ctx.Write(", ")
	if err := ctx.Expr(b.Right); err != nil {
		return true, err
	}
	ctx.Write(")")
	return true, nil
}

// forLoop 经典 for 循环改写为 初始化 + While，递增语句追加在循环体末尾
//
// 递增语句同时记录在 While 块上，循环体内的 Continue 先执行它再跳转。
func forLoop(ctx *render.Context[Extra], s ast.Statement) (bool, error) {
	it, ok := s.(*ast.Iteration)
	if !ok || it.IsWhile() {
		return false, nil
	}
	if err := ctx.Stmt(it.Init); err != nil {
		return true, err
	}
	body := it.Body[:len(it.Body):len(it.Body)]
	if it.Incr != nil {
		body = append(body, it.Incr)
	}
	test := it.Test
	if test == nil {
		test = ast.Literal(true)
	}

	ctx.WriteIndent()
	ctx.Write("While ")
	if err := ctx.Expr(test); err != nil {
		return true, err
	}
	ctx.Extra.step = it.Incr
	return true, ctx.Block(render.BlockWhile, body)
}

// loopJump break / continue 按最内层循环输出 Exit X / Continue X
//
// 不在循环中时不处理。
func loopJump(ctx *render.Context[Extra], s ast.Statement) (bool, error) {
	var kw string
	switch s.(type) {
	case *ast.Break:
		kw = "Exit "
	case *ast.Continue:
		kw = "Continue "
	default:
		return false, nil
	}
	loop, ok := ctx.Extra.loop()
	if !ok {
		return false, nil
	}
	if _, cont := s.(*ast.Continue); cont && loop.step != nil {
		if err := ctx.Stmt(loop.step); err != nil {
			return true, err
		}
	}
	ctx.BeginStatement()
	ctx.Write(kw + loopKeywords[loop.kind])
	ctx.EndStatement()
	return true, nil
}
