package codec

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/segmentio/encoding/json"

	"github.com/tangzhangming/codedom/internal/ast"
)

// propInitJSON 对象创建的属性初始化器
type propInitJSON struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// paramJSON 形参声明
type paramJSON struct {
	Type       *typeJSON        `json:"type"`
	Name       string           `json:"name"`
	Dir        string           `json:"dir"`
	Default    json.RawMessage  `json:"default"`
	Varargs    bool             `json:"varargs"`
	Attributes []*attributeJSON `json:"attributes"`
}

func (p *paramJSON) build() (*ast.ParamDecl, error) {
	dir, err := direction(p.Dir)
	if err != nil {
		return nil, err
	}
	def, err := optExpr(p.Default)
	if err != nil {
		return nil, err
	}
	attrs, err := attributes(p.Attributes)
	if err != nil {
		return nil, err
	}
	return &ast.ParamDecl{
		Type:       p.Type.build(),
		Name:       p.Name,
		Dir:        dir,
		Default:    def,
		Varargs:    p.Varargs,
		Attributes: attrs,
	}, nil
}

func params(list []*paramJSON) ([]*ast.ParamDecl, error) {
	var out []*ast.ParamDecl
	for _, p := range list {
		prm, err := p.build()
		if err != nil {
			return nil, err
		}
		out = append(out, prm)
	}
	return out, nil
}

func direction(name string) (ast.FieldDirection, error) {
	switch name {
	case "", "none":
		return ast.DirNone, nil
	case "ref":
		return ast.DirRef, nil
	case "out":
		return ast.DirOut, nil
	case "in":
		return ast.DirIn, nil
	}
	return ast.DirNone, fmt.Errorf("unknown direction %q", name)
}

// ============================================================================
// 表达式
// ============================================================================

func expr(data []byte) (ast.Expression, error) {
	n, err := parse(data, "expression")
	if err != nil {
		return nil, err
	}
	switch kind := kindOf(n); kind {
	case "primitive", "literal":
		return literal(n)
	case "snippet", "snippet_expr":
		return &ast.SnippetExpr{Text: n.Text}, nil

	// ========== 引用 ==========
	case "variable", "variable_ref":
		return ast.Variable(n.Name), nil
	case "argument", "argument_ref":
		return ast.Argument(n.Name), nil
	case "field", "field_ref":
		target, err := optExpr(n.Target)
		return &ast.FieldRef{Target: target, Name: n.Name}, err
	case "property", "property_ref":
		target, err := optExpr(n.Target)
		return &ast.PropertyRef{Target: target, Name: n.Name}, err
	case "event", "event_ref":
		return eventRef(n)
	case "property_value", "property_value_ref":
		return &ast.PropertyValueRef{}, nil
	case "method", "method_ref":
		return methodRef(n)
	case "this", "this_ref":
		return ast.This(), nil
	case "base", "base_ref":
		return &ast.BaseRef{}, nil
	case "type_ref", "type_ref_expr", "static":
		return &ast.TypeRefExpr{Type: n.Type.build()}, nil

	// ========== 运算 ==========
	case "binary", "binary_op":
		op, err := binaryOp(n.Op)
		if err != nil {
			return nil, err
		}
		left, right, err := pair(n.Left, n.Right)
		return &ast.BinaryOp{Left: left, Op: op, Right: right}, err
	case "unary", "unary_op":
		op, err := unaryOp(n.Op)
		if err != nil {
			return nil, err
		}
		operand, err := expr(n.Operand)
		return &ast.UnaryOp{Op: op, Operand: operand}, err
	case "conditional":
		cond, t, err := pair(n.Cond, n.True)
		if err != nil {
			return nil, err
		}
		f, err := expr(n.False)
		return &ast.Conditional{Cond: cond, True: t, False: f}, err
	case "cast":
		e, err := expr(n.Expr)
		return &ast.Cast{Type: n.Type.build(), Expr: e}, err
	case "type_of":
		return &ast.TypeOf{Type: n.Type.build()}, nil
	case "default", "default_value":
		return &ast.DefaultValue{Type: n.Type.build()}, nil

	// ========== 创建 ==========
	case "new", "object_create":
		return objectCreate(n)
	case "new_array", "array_create":
		sizes, err := exprs(n.Sizes)
		if err != nil {
			return nil, err
		}
		inits, err := exprs(n.Initializers)
		return &ast.ArrayCreate{Elem: n.Type.build(), Sizes: sizes, Initializers: inits}, err
	case "new_delegate", "delegate_create":
		target, err := optExpr(n.Target)
		return &ast.DelegateCreate{Type: n.Type.build(), Target: target, Method: n.Method}, err

	// ========== 调用 / 访问 ==========
	case "index", "indexer":
		target, err := expr(n.Target)
		if err != nil {
			return nil, err
		}
		indices, err := exprs(n.Indices)
		return &ast.Indexer{Target: target, Indices: indices}, err
	case "invoke", "method_invoke":
		m, err := methodRef(n)
		if err != nil {
			return nil, err
		}
		args, err := exprs(n.Args)
		return &ast.MethodInvoke{Method: m, Args: args}, err
	case "invoke_delegate", "delegate_invoke":
		target, err := optExpr(n.Target)
		if err != nil {
			return nil, err
		}
		args, err := exprs(n.Args)
		return &ast.DelegateInvoke{Target: target, Args: args}, err
	case "direction":
		dir, err := direction(n.Dir)
		if err != nil {
			return nil, err
		}
		e, err := expr(n.Expr)
		return &ast.Direction{Dir: dir, Expr: e}, err

	// ========== lambda / 参数 ==========
	case "lambda":
		return lambda(n)
	case "param", "param_decl":
		p := &paramJSON{Type: n.Type, Name: n.Name, Dir: n.Dir}
		return p.build()
	default:
		return nil, unknown("expression", kind)
	}
}

// optExpr 缺失或为 null 时返回 nil
func optExpr(data json.RawMessage) (ast.Expression, error) {
	if absent(data) {
		return nil, nil
	}
	return expr(data)
}

func exprs(list []json.RawMessage) ([]ast.Expression, error) {
	var out []ast.Expression
	for _, raw := range list {
		e, err := expr(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func pair(a, b json.RawMessage) (ast.Expression, ast.Expression, error) {
	x, err := expr(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := expr(b)
	return x, y, err
}

func eventRef(n *node) (*ast.EventRef, error) {
	target, err := optExpr(n.Target)
	return &ast.EventRef{Target: target, Name: n.Name}, err
}

func methodRef(n *node) (*ast.MethodRef, error) {
	target, err := optExpr(n.Target)
	if err != nil {
		return nil, err
	}
	return &ast.MethodRef{Target: target, Name: n.Name, TypeArgs: types(n.TypeArgs)}, nil
}

func objectCreate(n *node) (*ast.ObjectCreate, error) {
	args, err := exprs(n.Args)
	if err != nil {
		return nil, err
	}
	e := &ast.ObjectCreate{Type: n.Type.build(), Args: args}
	for _, p := range n.Properties {
		value, err := expr(p.Value)
		if err != nil {
			return nil, err
		}
		init, err := ast.NewPropertyInit(p.Name, value)
		if err != nil {
			return nil, err
		}
		e.Initializers = append(e.Initializers, init)
	}
	return e, nil
}

func lambda(n *node) (*ast.Lambda, error) {
	ps, err := params(n.Params)
	if err != nil {
		return nil, err
	}
	body, err := optExpr(n.Result)
	if err != nil {
		return nil, err
	}
	stmts, err := stmtList(n.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Params: ps, Body: body, Stmts: stmts, ReturnType: n.ReturnType.build()}, nil
}

// ============================================================================
// 字面量
// ============================================================================

// literal 按 "type" 还原字面量的运行时类型
//
// 没有 "type" 时：整数为 Int64（渲染时能收窄则收窄），带小数点或指数的为 Double。
func literal(n *node) (*ast.Primitive, error) {
	raw := bytes.TrimSpace(n.Value)
	if absent(raw) {
		return ast.Null(), nil
	}
	var typeName string
	if n.Type != nil {
		typeName = n.Type.Name
	}

	switch raw[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("invalid boolean literal: %w", err)
		}
		return ast.Literal(b), nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("invalid string literal: %w", err)
		}
		switch typeName {
		case ast.TypeChar:
			r := []rune(s)
			if len(r) != 1 {
				return nil, fmt.Errorf("char literal %q must be a single character", s)
			}
			return ast.Literal(ast.Char(r[0])), nil
		case ast.TypeDecimal:
			return ast.Literal(ast.Decimal(s)), nil
		}
		return ast.Literal(s), nil
	}

	v, err := number(string(raw), typeName)
	if err != nil {
		return nil, err
	}
	return ast.Literal(v), nil
}

func number(text, typeName string) (interface{}, error) {
	signed := func(bits int) (int64, error) { return strconv.ParseInt(text, 10, bits) }
	unsigned := func(bits int) (uint64, error) { return strconv.ParseUint(text, 10, bits) }

	var (
		v   interface{}
		err error
	)
	switch typeName {
	case "":
		if n, e := strconv.ParseInt(text, 10, 64); e == nil {
			return n, nil
		}
		return strconv.ParseFloat(text, 64)
	case ast.TypeSByte:
		var n int64
		n, err = signed(8)
		v = int8(n)
	case ast.TypeByte:
		var n uint64
		n, err = unsigned(8)
		v = uint8(n)
	case ast.TypeInt16:
		var n int64
		n, err = signed(16)
		v = int16(n)
	case ast.TypeUInt16:
		var n uint64
		n, err = unsigned(16)
		v = uint16(n)
	case ast.TypeInt32:
		var n int64
		n, err = signed(32)
		v = int32(n)
	case ast.TypeUInt32:
		var n uint64
		n, err = unsigned(32)
		v = uint32(n)
	case ast.TypeInt64:
		v, err = signed(64)
	case ast.TypeUInt64:
		v, err = unsigned(64)
	case ast.TypeSingle:
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		v = float32(f)
	case ast.TypeDouble:
		v, err = strconv.ParseFloat(text, 64)
	case ast.TypeDecimal:
		v = ast.Decimal(text)
	default:
		return nil, fmt.Errorf("type %s cannot hold numeric literal %s", typeName, text)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s literal %s: %w", typeName, text, err)
	}
	return v, nil
}
