package vb

import (
	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/render"
)

// Extra 已打开块的栈
//
// End X / Loop / Next 由栈顶决定；Exit 与 Continue 向外查找最近的循环，
// 遇到方法或 lambda 的主体即停止。
type Extra struct {
	blocks []block
	step   ast.Statement // 下一个打开的块所属 for 循环的递增语句
}

// block 打开的块；由 for 改写来的 While 记录递增语句，Continue 之前先执行它
type block struct {
	kind render.BlockKind
	step ast.Statement
}

func (e *Extra) push(k render.BlockKind) {
	e.blocks = append(e.blocks, block{kind: k, step: e.step})
	e.step = nil
}

func (e *Extra) pop() (render.BlockKind, bool) {
	if len(e.blocks) == 0 {
		return 0, false
	}
	b := e.blocks[len(e.blocks)-1]
	e.blocks = e.blocks[:len(e.blocks)-1]
	return b.kind, true
}

// Depth 打开的块数
func (e *Extra) Depth() int { return len(e.blocks) }

// loop 最内层的循环块，不跨越方法边界
func (e *Extra) loop() (block, bool) {
	for i := len(e.blocks) - 1; i >= 0; i-- {
		b := e.blocks[i]
		switch {
		case b.kind.IsLoop():
			return b, true
		case b.kind.IsCallable():
			return block{}, false
		}
	}
	return block{}, false
}

// openBlock 块的开头没有定界符，只记录种类
func openBlock(ctx *render.Context[Extra], kind render.BlockKind) {
	ctx.Extra.push(kind)
}

func closeBlock(ctx *render.Context[Extra], kind render.BlockKind) {
	if open, ok := ctx.Extra.pop(); ok {
		kind = open
	}
	ctx.WriteIndent()
	ctx.Write(endKeywords[kind])
}
