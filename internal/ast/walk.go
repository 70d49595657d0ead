package ast

// Visitor 遍历访问者，Visit 返回 nil 时不再进入子节点
type Visitor interface {
	Visit(n Node) (w Visitor)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect 以先序遍历整棵树，f 返回 false 时跳过子节点
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Walk 以先序遍历整棵树
//
// 语句、成员列表按原顺序访问；nil 子节点被跳过。
func Walk(v Visitor, n Node) {
	if isNil(n) {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}

	switch n := n.(type) {
	// ========== 根 / 命名空间 ==========
	case *CompileUnit:
		walkAttrs(v, n.AssemblyAttributes)
		walkDirectives(v, n.StartDirectives)
		for _, ns := range n.Namespaces {
			Walk(v, ns)
		}
		walkDirectives(v, n.EndDirectives)
	case *Namespace:
		for _, c := range n.Comments {
			Walk(v, c)
		}
		for _, i := range n.Imports {
			Walk(v, i)
		}
		for _, t := range n.Types {
			Walk(v, t)
		}

	// ========== 类型 ==========
	case *TypeDecl:
		for _, c := range n.Comments {
			Walk(v, c)
		}
		walkDirectives(v, n.StartDirectives)
		walkAttrs(v, n.Attributes)
		for _, p := range n.TypeParams {
			Walk(v, p)
		}
		for _, b := range n.BaseTypes {
			Walk(v, b)
		}
		walkParams(v, n.Params)
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
		for _, m := range n.Members {
			Walk(v, m)
		}
		walkDirectives(v, n.EndDirectives)
	case *TypeRef:
		for _, a := range n.TypeArgs {
			Walk(v, a)
		}
		if n.Elem != nil {
			Walk(v, n.Elem)
		}
	case *TypeParam:
		walkAttrs(v, n.Attributes)
		for _, c := range n.Constraints {
			Walk(v, c)
		}
	case *AttributeDecl:
		if n.Type != nil {
			Walk(v, n.Type)
		}
		for _, a := range n.Args {
			Walk(v, a.Value)
		}

	// ========== 成员 ==========
	case *Field:
		walkMember(v, n)
		walkType(v, n.Type)
		Walk(v, n.Init)
	case *Property:
		walkMember(v, n)
		walkType(v, n.Type)
		walkParams(v, n.Params)
		walkStmts(v, n.GetStmts)
		walkStmts(v, n.SetStmts)
		Walk(v, n.Init)
	case *Event:
		walkMember(v, n)
		walkType(v, n.Type)
	case *Method:
		walkMember(v, n)
		walkAttrs(v, n.ReturnAttributes)
		walkType(v, n.ReturnType)
		for _, p := range n.TypeParams {
			Walk(v, p)
		}
		walkParams(v, n.Params)
		walkStmts(v, n.Stmts)
	case *Constructor:
		walkMember(v, n)
		walkParams(v, n.Params)
		walkExprs(v, n.BaseArgs)
		walkExprs(v, n.ChainedArgs)
		walkStmts(v, n.Stmts)
	case *StaticConstructor:
		walkMember(v, n)
		walkStmts(v, n.Stmts)
	case *EntryPoint:
		walkMember(v, n)
		walkStmts(v, n.Stmts)
	case *NestedType:
		walkMember(v, n)
		if n.Decl != nil {
			Walk(v, n.Decl)
		}
	case *SnippetMember:
		walkMember(v, n)

	// ========== 语句 ==========
	case *ExprStmt:
		Walk(v, n.Expr)
	case *Assign:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *CompoundAssign:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *If:
		Walk(v, n.Cond)
		walkStmts(v, n.True)
		walkStmts(v, n.False)
	case *Iteration:
		Walk(v, n.Init)
		Walk(v, n.Test)
		Walk(v, n.Incr)
		walkStmts(v, n.Body)
	case *DoWhile:
		walkStmts(v, n.Body)
		Walk(v, n.Test)
	case *ForEach:
		walkType(v, n.ElemType)
		Walk(v, n.Collection)
		walkStmts(v, n.Body)
	case *Using:
		if n.Decl != nil {
			Walk(v, n.Decl)
		}
		Walk(v, n.Expr)
		walkStmts(v, n.Body)
	case *Labeled:
		Walk(v, n.Stmt)
	case *Return:
		Walk(v, n.Value)
	case *Throw:
		Walk(v, n.Expr)
	case *Try:
		walkStmts(v, n.Body)
		for _, c := range n.Catches {
			walkType(v, c.Type)
			walkStmts(v, c.Body)
		}
		walkStmts(v, n.Finally)
	case *AttachEvent:
		if n.Event != nil {
			Walk(v, n.Event)
		}
		Walk(v, n.Listener)
	case *RemoveEvent:
		if n.Event != nil {
			Walk(v, n.Event)
		}
		Walk(v, n.Listener)
	case *VarDecl:
		walkType(v, n.Type)
		Walk(v, n.Init)
	case *CommentStmt:
		if n.Comment != nil {
			Walk(v, n.Comment)
		}

	// ========== 表达式 ==========
	case *FieldRef:
		Walk(v, n.Target)
	case *PropertyRef:
		Walk(v, n.Target)
	case *EventRef:
		Walk(v, n.Target)
	case *MethodRef:
		Walk(v, n.Target)
		for _, a := range n.TypeArgs {
			Walk(v, a)
		}
	case *TypeRefExpr:
		walkType(v, n.Type)
	case *BinaryOp:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *UnaryOp:
		Walk(v, n.Operand)
	case *Conditional:
		Walk(v, n.Cond)
		Walk(v, n.True)
		Walk(v, n.False)
	case *Cast:
		walkType(v, n.Type)
		Walk(v, n.Expr)
	case *TypeOf:
		walkType(v, n.Type)
	case *DefaultValue:
		walkType(v, n.Type)
	case *ObjectCreate:
		walkType(v, n.Type)
		walkExprs(v, n.Args)
		for _, i := range n.Initializers {
			Walk(v, i.Value)
		}
	case *ArrayCreate:
		walkType(v, n.Elem)
		walkExprs(v, n.Sizes)
		walkExprs(v, n.Initializers)
	case *DelegateCreate:
		walkType(v, n.Type)
		Walk(v, n.Target)
	case *Indexer:
		Walk(v, n.Target)
		walkExprs(v, n.Indices)
	case *MethodInvoke:
		if n.Method != nil {
			Walk(v, n.Method)
		}
		walkExprs(v, n.Args)
	case *DelegateInvoke:
		Walk(v, n.Target)
		walkExprs(v, n.Args)
	case *Direction:
		Walk(v, n.Expr)
	case *Lambda:
		walkParams(v, n.Params)
		walkType(v, n.ReturnType)
		Walk(v, n.Body)
		walkStmts(v, n.Stmts)
	case *ParamDecl:
		walkAttrs(v, n.Attributes)
		walkType(v, n.Type)
		Walk(v, n.Default)
	}
}

// isNil 同时识别无类型 nil 与带类型的 nil 指针
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch p := n.(type) {
	case *TypeRef:
		return p == nil
	case *TypeDecl:
		return p == nil
	case *Comment:
		return p == nil
	}
	return false
}

func walkMember(v Visitor, m Member) {
	b := m.Base()
	for _, c := range b.Comments {
		Walk(v, c)
	}
	walkDirectives(v, b.StartDirectives)
	walkAttrs(v, b.Attributes)
	walkDirectives(v, b.EndDirectives)
}

func walkType(v Visitor, t *TypeRef) {
	if t != nil {
		Walk(v, t)
	}
}

func walkAttrs(v Visitor, attrs []*AttributeDecl) {
	for _, a := range attrs {
		Walk(v, a)
	}
}

func walkDirectives(v Visitor, ds []Directive) {
	for _, d := range ds {
		Walk(v, d)
	}
}

func walkParams(v Visitor, ps []*ParamDecl) {
	for _, p := range ps {
		Walk(v, p)
	}
}

func walkStmts(v Visitor, ss []Statement) {
	for _, s := range ss {
		Walk(v, s)
	}
}

func walkExprs(v Visitor, es []Expression) {
	for _, e := range es {
		Walk(v, e)
	}
}
