package ast

import "github.com/tangzhangming/codedom/internal/token"

// ExprStmt 表达式语句
type ExprStmt struct {
	Expr Expression
}

func (s *ExprStmt) Kind() string { return "ExprStmt" }
func (s *ExprStmt) stmtNode()    {}

// Assign 赋值语句
type Assign struct {
	Left  Expression
	Right Expression
}

func (s *Assign) Kind() string { return "Assign" }
func (s *Assign) stmtNode()    {}

// CompoundAssign 复合赋值语句 (x op= y)，使用 NewCompoundAssign 构造
type CompoundAssign struct {
	Left  Expression
	Op    token.Operator
	Right Expression
}

func (s *CompoundAssign) Kind() string { return "CompoundAssign" }
func (s *CompoundAssign) stmtNode()    {}

// Expand 展开为等价的普通赋值 x = x op y
func (s *CompoundAssign) Expand() *Assign {
	return &Assign{
		Left:  s.Left,
		Right: &BinaryOp{Left: s.Left, Op: s.Op, Right: s.Right},
	}
}

// If 条件语句，elseif 链通过 False 中嵌套的 If 表达
type If struct {
	Cond  Expression
	True  []Statement
	False []Statement
}

func (s *If) Kind() string { return "If" }
func (s *If) stmtNode()    {}

// ElseIf 若 False 分支只有一个 If，返回它（用于输出 else if 链）
func (s *If) ElseIf() (*If, bool) {
	if len(s.False) != 1 {
		return nil, false
	}
	next, ok := s.False[0].(*If)
	return next, ok
}

// Iteration 循环语句
//
// Init 与 Incr 都为空时是 while 循环，否则是经典 for 循环。
type Iteration struct {
	Init Statement
	Test Expression
	Incr Statement
	Body []Statement
}

func (s *Iteration) Kind() string { return "Iteration" }
func (s *Iteration) stmtNode()    {}

// IsWhile 是否可以输出为 while 循环
func (s *Iteration) IsWhile() bool { return s.Init == nil && s.Incr == nil }

// DoWhile 后测试循环
type DoWhile struct {
	Body []Statement
	Test Expression
}

func (s *DoWhile) Kind() string { return "DoWhile" }
func (s *DoWhile) stmtNode()    {}

// ForEach 集合遍历
type ForEach struct {
	ElemType   *TypeRef // 为 nil 时由目标语法推断
	Var        string
	Collection Expression
	Body       []Statement
}

func (s *ForEach) Kind() string { return "ForEach" }
func (s *ForEach) stmtNode()    {}

// Using 资源作用域，Decl 与 Expr 二选一
type Using struct {
	Decl *VarDecl
	Expr Expression
	Body []Statement
}

func (s *Using) Kind() string { return "Using" }
func (s *Using) stmtNode()    {}

// Goto 跳转
type Goto struct {
	Label string
}

func (s *Goto) Kind() string { return "Goto" }
func (s *Goto) stmtNode()    {}

// Labeled 带标签的语句，Stmt 可为 nil
type Labeled struct {
	Label string
	Stmt  Statement
}

func (s *Labeled) Kind() string { return "Labeled" }
func (s *Labeled) stmtNode()    {}

// Return 返回语句，Value 可为 nil
type Return struct {
	Value Expression
}

func (s *Return) Kind() string { return "Return" }
func (s *Return) stmtNode()    {}

// Break 跳出最内层循环
type Break struct{}

func (s *Break) Kind() string { return "Break" }
func (s *Break) stmtNode()    {}

// Continue 继续最内层循环
type Continue struct{}

func (s *Continue) Kind() string { return "Continue" }
func (s *Continue) stmtNode()    {}

// Throw 抛出异常，Expr 为 nil 时表示重新抛出
type Throw struct {
	Expr Expression
}

func (s *Throw) Kind() string { return "Throw" }
func (s *Throw) stmtNode()    {}

// Try 异常处理
type Try struct {
	Body    []Statement
	Catches []*CatchClause
	Finally []Statement
}

func (s *Try) Kind() string { return "Try" }
func (s *Try) stmtNode()    {}

// CatchClause catch 子句，Type 为 nil 时捕获所有异常
type CatchClause struct {
	Type *TypeRef
	Var  string
	Body []Statement
}

// AttachEvent 订阅事件
type AttachEvent struct {
	Event    *EventRef
	Listener Expression
}

func (s *AttachEvent) Kind() string { return "AttachEvent" }
func (s *AttachEvent) stmtNode()    {}

// RemoveEvent 取消订阅事件
type RemoveEvent struct {
	Event    *EventRef
	Listener Expression
}

func (s *RemoveEvent) Kind() string { return "RemoveEvent" }
func (s *RemoveEvent) stmtNode()    {}

// VarDecl 局部变量声明，Type 为 nil 时由目标语法推断
type VarDecl struct {
	Type *TypeRef
	Name string
	Init Expression
}

func (s *VarDecl) Kind() string { return "VarDecl" }
func (s *VarDecl) stmtNode()    {}

// CommentStmt 注释语句
type CommentStmt struct {
	Comment *Comment
}

func (s *CommentStmt) Kind() string { return "CommentStmt" }
func (s *CommentStmt) stmtNode()    {}

// SnippetStmt 原样输出的语句片段
type SnippetStmt struct {
	Text string
}

func (s *SnippetStmt) Kind() string { return "SnippetStmt" }
func (s *SnippetStmt) stmtNode()    {}
