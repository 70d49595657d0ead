package codec

import (
	"github.com/segmentio/encoding/json"

	"github.com/tangzhangming/codedom/internal/ast"
)

// catchJSON catch 子句
type catchJSON struct {
	Type *typeJSON         `json:"type"`
	Var  string            `json:"var"`
	Body []json.RawMessage `json:"body"`
}

func stmt(data []byte) (ast.Statement, error) {
	n, err := parse(data, "statement")
	if err != nil {
		return nil, err
	}
	switch kind := kindOf(n); kind {
	case "expr", "expr_stmt":
		e, err := expr(n.Expr)
		return ast.Stmt(e), err
	case "assign":
		left, right, err := pair(n.Left, n.Right)
		return ast.Let(left, right), err
	case "compound_assign":
		op, err := binaryOp(n.Op)
		if err != nil {
			return nil, err
		}
		left, right, err := pair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewCompoundAssign(left, op, right)
	case "var", "var_decl":
		return varDecl(n)
	case "return":
		v, err := optExpr(n.Expr)
		return ast.Ret(v), err
	case "throw":
		e, err := optExpr(n.Expr)
		return &ast.Throw{Expr: e}, err
	case "break":
		return &ast.Break{}, nil
	case "continue":
		return &ast.Continue{}, nil
	case "goto":
		return &ast.Goto{Label: n.Label}, nil
	case "label", "labeled":
		var s ast.Statement
		if !absent(n.Stmt) {
			if s, err = stmt(n.Stmt); err != nil {
				return nil, err
			}
		}
		return &ast.Labeled{Label: n.Label, Stmt: s}, nil
	case "attach", "attach_event":
		ev, listener, err := eventPair(n)
		return &ast.AttachEvent{Event: ev, Listener: listener}, err
	case "remove", "remove_event":
		ev, listener, err := eventPair(n)
		return &ast.RemoveEvent{Event: ev, Listener: listener}, err
	case "comment", "comment_stmt":
		return &ast.CommentStmt{Comment: &ast.Comment{Text: n.Text, Doc: n.Doc}}, nil
	case "snippet", "snippet_stmt":
		return &ast.SnippetStmt{Text: n.Text}, nil

	// ========== 结构化语句 ==========
	case "if":
		return ifStmt(n)
	case "for", "iteration":
		return iteration(n)
	case "while":
		test, err := expr(n.Test)
		if err != nil {
			return nil, err
		}
		body, err := stmtList(n.Body)
		return &ast.Iteration{Test: test, Body: body}, err
	case "do_while":
		test, err := expr(n.Test)
		if err != nil {
			return nil, err
		}
		body, err := stmtList(n.Body)
		return &ast.DoWhile{Test: test, Body: body}, err
	case "for_each":
		coll, err := expr(n.Expr)
		if err != nil {
			return nil, err
		}
		body, err := stmtList(n.Body)
		return &ast.ForEach{ElemType: n.Type.build(), Var: n.Var, Collection: coll, Body: body}, err
	case "using":
		return using(n)
	case "try":
		return try(n)
	default:
		return nil, unknown("statement", kind)
	}
}

func stmtList(list []json.RawMessage) ([]ast.Statement, error) {
	var out []ast.Statement
	for _, raw := range list {
		s, err := stmt(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func optStmt(data json.RawMessage) (ast.Statement, error) {
	if absent(data) {
		return nil, nil
	}
	return stmt(data)
}

func varDecl(n *node) (*ast.VarDecl, error) {
	value, err := optExpr(n.Value)
	if err != nil {
		return nil, err
	}
	return ast.Declare(n.Type.build(), n.Name, value), nil
}

func eventPair(n *node) (*ast.EventRef, ast.Expression, error) {
	en, err := parse(n.Event, "event")
	if err != nil {
		return nil, nil, err
	}
	ev, err := eventRef(en)
	if err != nil {
		return nil, nil, err
	}
	listener, err := expr(n.Expr)
	return ev, listener, err
}

func ifStmt(n *node) (*ast.If, error) {
	cond, err := expr(n.Cond)
	if err != nil {
		return nil, err
	}
	then, err := stmtList(n.Then)
	if err != nil {
		return nil, err
	}
	els, err := stmtList(n.Else)
	if err != nil {
		return nil, err
	}
	return &ast.If{Cond: cond, True: then, False: els}, nil
}

func iteration(n *node) (*ast.Iteration, error) {
	start, err := optStmt(n.Init)
	if err != nil {
		return nil, err
	}
	test, err := optExpr(n.Test)
	if err != nil {
		return nil, err
	}
	incr, err := optStmt(n.Incr)
	if err != nil {
		return nil, err
	}
	body, err := stmtList(n.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Iteration{Init: start, Test: test, Incr: incr, Body: body}, nil
}

func using(n *node) (*ast.Using, error) {
	body, err := stmtList(n.Body)
	if err != nil {
		return nil, err
	}
	u := &ast.Using{Body: body}
	if !absent(n.Decl) {
		dn, err := parse(n.Decl, "using declaration")
		if err != nil {
			return nil, err
		}
		if u.Decl, err = varDecl(dn); err != nil {
			return nil, err
		}
		return u, nil
	}
	u.Expr, err = expr(n.Expr)
	return u, err
}

func try(n *node) (*ast.Try, error) {
	body, err := stmtList(n.Body)
	if err != nil {
		return nil, err
	}
	s := &ast.Try{Body: body}
	for _, c := range n.Catches {
		cb, err := stmtList(c.Body)
		if err != nil {
			return nil, err
		}
		s.Catches = append(s.Catches, &ast.CatchClause{Type: c.Type.build(), Var: c.Var, Body: cb})
	}
	if s.Finally, err = stmtList(n.Finally); err != nil {
		return nil, err
	}
	return s, nil
}
