package ast

// ============================================================================
// 链式调用改写
// ============================================================================
//
// 流式 API 常常先构建 a.B().C 这样的调用链，再决定链的起点。
// Reparent 沿着 Target 走到链的最内层，把起点替换为 root，
// 路径上的每个节点都会被复制，原链与其他共享节点保持不变。
//
// ============================================================================

// Reparent 返回把 chain 最内层目标替换为 root 之后的新链
//
// 最内层节点的 Target 为 nil（隐式 this）时，root 填入该位置；
// 遇到非链式节点（如 VariableRef）时，该节点本身被替换为 root。
// chain 为 nil 时直接返回 root。
func Reparent(chain, root Expression) Expression {
	switch e := chain.(type) {
	case nil:
		return root
	case *FieldRef:
		cp := *e
		cp.Target = Reparent(e.Target, root)
		return &cp
	case *PropertyRef:
		cp := *e
		cp.Target = Reparent(e.Target, root)
		return &cp
	case *EventRef:
		cp := *e
		cp.Target = Reparent(e.Target, root)
		return &cp
	case *MethodRef:
		return reparentMethod(e, root)
	case *MethodInvoke:
		cp := *e
		if e.Method != nil {
			cp.Method = reparentMethod(e.Method, root)
		}
		return &cp
	case *Indexer:
		cp := *e
		cp.Target = Reparent(e.Target, root)
		return &cp
	case *DelegateInvoke:
		cp := *e
		cp.Target = Reparent(e.Target, root)
		return &cp
	}
	return root
}

func reparentMethod(m *MethodRef, root Expression) *MethodRef {
	cp := *m
	cp.Target = Reparent(m.Target, root)
	return &cp
}

// ChainRoot 返回链的最内层目标，隐式 this 时返回 nil
func ChainRoot(chain Expression) Expression {
	for {
		var next Expression
		switch e := chain.(type) {
		case *FieldRef:
			next = e.Target
		case *PropertyRef:
			next = e.Target
		case *EventRef:
			next = e.Target
		case *MethodRef:
			next = e.Target
		case *MethodInvoke:
			if e.Method == nil {
				return nil
			}
			next = e.Method.Target
		case *Indexer:
			next = e.Target
		case *DelegateInvoke:
			next = e.Target
		default:
			return chain
		}
		if next == nil {
			return nil
		}
		chain = next
	}
}
