package codec

import (
	"fmt"
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/tangzhangming/codedom/internal/ast"
)

// ============================================================================
// 编译单元 / 命名空间
// ============================================================================

type unitJSON struct {
	Namespaces         []*namespaceJSON  `json:"namespaces"`
	AssemblyAttributes []*attributeJSON  `json:"assembly_attributes"`
	StartDirectives    []*directiveJSON  `json:"start_directives"`
	EndDirectives      []*directiveJSON  `json:"end_directives"`
	Types              []json.RawMessage `json:"types"` // 全局命名空间的简写
}

func (u *unitJSON) build() (*ast.CompileUnit, error) {
	unit := &ast.CompileUnit{}
	var err error
	if unit.AssemblyAttributes, err = attributes(u.AssemblyAttributes); err != nil {
		return nil, err
	}
	if unit.StartDirectives, err = directives(u.StartDirectives); err != nil {
		return nil, err
	}
	if unit.EndDirectives, err = directives(u.EndDirectives); err != nil {
		return nil, err
	}
	if len(u.Types) > 0 {
		u.Namespaces = append([]*namespaceJSON{{Types: u.Types}}, u.Namespaces...)
	}
	for _, nj := range u.Namespaces {
		ns, err := nj.build()
		if err != nil {
			return nil, err
		}
		unit.Namespaces = append(unit.Namespaces, ns)
	}
	return unit, nil
}

type namespaceJSON struct {
	Name     string            `json:"name"`
	Imports  []*ast.Import     `json:"imports"`
	Types    []json.RawMessage `json:"types"`
	Comments []*ast.Comment    `json:"comments"`
}

func (n *namespaceJSON) build() (*ast.Namespace, error) {
	ns := &ast.Namespace{Name: n.Name, Imports: n.Imports, Comments: n.Comments}
	for _, raw := range n.Types {
		d, err := typeDecl(raw)
		if err != nil {
			return nil, fmt.Errorf("namespace %q: %w", n.Name, err)
		}
		ns.Types = append(ns.Types, d)
	}
	return ns, nil
}

// ============================================================================
// 类型声明
// ============================================================================

type typeDeclJSON struct {
	Kind       string            `json:"kind"`
	Name       string            `json:"name"`
	Access     accessJSON        `json:"access"`
	Abstract   bool              `json:"abstract"`
	Sealed     bool              `json:"sealed"`
	Static     bool              `json:"static"`
	Partial    bool              `json:"partial"`
	TypeParams []*typeParamJSON  `json:"type_params"`
	Bases      []*typeJSON       `json:"bases"`
	Members    []json.RawMessage `json:"members"`
	Values     []string          `json:"values"` // 枚举成员的简写
	ReturnType *typeJSON         `json:"return_type"`
	Params     []*paramJSON      `json:"params"`

	Attributes      []*attributeJSON `json:"attributes"`
	Comments        []*ast.Comment   `json:"comments"`
	StartDirectives []*directiveJSON `json:"start_directives"`
	EndDirectives   []*directiveJSON `json:"end_directives"`
}

func typeDecl(data []byte) (*ast.TypeDecl, error) {
	var j typeDeclJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("invalid type declaration: %w", err)
	}
	d := &ast.TypeDecl{
		Name: j.Name,
		Modifiers: ast.TypeModifiers{
			Access:   ast.Access(j.Access),
			Abstract: j.Abstract,
			Sealed:   j.Sealed,
			Static:   j.Static,
			Partial:  j.Partial,
		},
		BaseTypes:  types(j.Bases),
		ReturnType: j.ReturnType.build(),
		Comments:   j.Comments,
	}
	switch kind := normalize(j.Kind); kind {
	case "class":
		d.IsClass = true
	case "struct":
		d.IsStruct = true
	case "interface":
		d.IsInterface = true
	case "enum":
		d.IsEnum = true
	case "delegate":
		d.IsDelegate = true
	default:
		return nil, unknown("type declaration", kind)
	}

	var err error
	if d.TypeParams, err = typeParams(j.TypeParams); err != nil {
		return nil, err
	}
	if d.Params, err = params(j.Params); err != nil {
		return nil, err
	}
	if d.Attributes, err = attributes(j.Attributes); err != nil {
		return nil, err
	}
	if d.StartDirectives, err = directives(j.StartDirectives); err != nil {
		return nil, err
	}
	if d.EndDirectives, err = directives(j.EndDirectives); err != nil {
		return nil, err
	}
	for _, v := range j.Values {
		d.Members = append(d.Members, &ast.Field{MemberBase: ast.MemberBase{Name: v}})
	}
	for _, raw := range j.Members {
		m, err := member(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", j.Name, err)
		}
		d.Members = append(d.Members, m)
	}
	return d, nil
}

type typeParamJSON struct {
	Name        string           `json:"name"`
	Constraints []*typeJSON      `json:"constraints"`
	New         bool             `json:"new"`
	Attributes  []*attributeJSON `json:"attributes"`
}

func typeParams(list []*typeParamJSON) ([]*ast.TypeParam, error) {
	var out []*ast.TypeParam
	for _, p := range list {
		attrs, err := attributes(p.Attributes)
		if err != nil {
			return nil, err
		}
		out = append(out, &ast.TypeParam{
			Name:          p.Name,
			Constraints:   types(p.Constraints),
			NewConstraint: p.New,
			Attributes:    attrs,
		})
	}
	return out, nil
}

// ============================================================================
// 成员
// ============================================================================

type memberJSON struct {
	Kind   string     `json:"kind"`
	Name   string     `json:"name"`
	Access accessJSON `json:"access"`
	Scope  string     `json:"scope"`
	New    bool       `json:"new"`

	Type             *typeJSON         `json:"type"`
	Value            json.RawMessage   `json:"value"`
	Params           []*paramJSON      `json:"params"`
	TypeParams       []*typeParamJSON  `json:"type_params"`
	ReturnType       *typeJSON         `json:"return_type"`
	ReturnAttributes []*attributeJSON  `json:"return_attributes"`
	Body             []json.RawMessage `json:"body"`
	Get              []json.RawMessage `json:"get"`
	Set              []json.RawMessage `json:"set"`
	HasGet           *bool             `json:"has_get"`
	HasSet           *bool             `json:"has_set"`
	GetAccess        accessJSON        `json:"get_access"`
	SetAccess        accessJSON        `json:"set_access"`
	BaseArgs         []json.RawMessage `json:"base_args"`
	ChainedArgs      []json.RawMessage `json:"chained_args"`
	Decl             json.RawMessage   `json:"decl"`
	Text             string            `json:"text"`

	Attributes      []*attributeJSON `json:"attributes"`
	Comments        []*ast.Comment   `json:"comments"`
	StartDirectives []*directiveJSON `json:"start_directives"`
	EndDirectives   []*directiveJSON `json:"end_directives"`
}

func member(data []byte) (ast.Member, error) {
	var j memberJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("invalid member: %w", err)
	}
	base, err := j.base()
	if err != nil {
		return nil, err
	}

	switch kind := normalize(j.Kind); kind {
	case "field":
		value, err := optExpr(j.Value)
		return &ast.Field{MemberBase: base, Type: j.Type.build(), Init: value}, err
	case "property":
		return j.property(base)
	case "event":
		return &ast.Event{MemberBase: base, Type: j.Type.build()}, nil
	case "method":
		m := &ast.Method{MemberBase: base, ReturnType: j.ReturnType.build()}
		if m.TypeParams, err = typeParams(j.TypeParams); err != nil {
			return nil, err
		}
		if m.Params, err = params(j.Params); err != nil {
			return nil, err
		}
		if m.ReturnAttributes, err = attributes(j.ReturnAttributes); err != nil {
			return nil, err
		}
		m.Stmts, err = stmtList(j.Body)
		return m, err
	case "constructor":
		c := &ast.Constructor{MemberBase: base}
		if c.Params, err = params(j.Params); err != nil {
			return nil, err
		}
		if c.BaseArgs, err = ctorArgs(j.BaseArgs); err != nil {
			return nil, err
		}
		if c.ChainedArgs, err = ctorArgs(j.ChainedArgs); err != nil {
			return nil, err
		}
		c.Stmts, err = stmtList(j.Body)
		return c, err
	case "static_constructor", "type_constructor":
		stmts, err := stmtList(j.Body)
		return &ast.StaticConstructor{MemberBase: base, Stmts: stmts}, err
	case "entry_point":
		stmts, err := stmtList(j.Body)
		return &ast.EntryPoint{MemberBase: base, Stmts: stmts}, err
	case "nested", "nested_type":
		d, err := typeDecl(j.Decl)
		return &ast.NestedType{MemberBase: base, Decl: d}, err
	case "snippet", "snippet_member":
		return &ast.SnippetMember{MemberBase: base, Text: j.Text}, nil
	default:
		return nil, unknown("member", kind)
	}
}

func (j *memberJSON) base() (ast.MemberBase, error) {
	scope, err := parseScope(j.Scope)
	if err != nil {
		return ast.MemberBase{}, err
	}
	b := ast.MemberBase{
		Name:      j.Name,
		Modifiers: ast.MemberModifiers{Access: ast.Access(j.Access), Scope: scope, New: j.New},
		Comments:  j.Comments,
	}
	if b.Attributes, err = attributes(j.Attributes); err != nil {
		return b, err
	}
	if b.StartDirectives, err = directives(j.StartDirectives); err != nil {
		return b, err
	}
	b.EndDirectives, err = directives(j.EndDirectives)
	return b, err
}

// property 未显式给出 has_get / has_set 时由访问器语句是否存在推断，
// 两者都没有时视为可读写的自动属性
func (j *memberJSON) property(base ast.MemberBase) (*ast.Property, error) {
	p := &ast.Property{
		MemberBase: base,
		Type:       j.Type.build(),
		GetAccess:  ast.Access(j.GetAccess),
		SetAccess:  ast.Access(j.SetAccess),
	}
	var err error
	if p.Params, err = params(j.Params); err != nil {
		return nil, err
	}
	if p.GetStmts, err = stmtList(j.Get); err != nil {
		return nil, err
	}
	if p.SetStmts, err = stmtList(j.Set); err != nil {
		return nil, err
	}
	if p.Init, err = optExpr(j.Value); err != nil {
		return nil, err
	}
	p.HasGet = j.Get != nil
	p.HasSet = j.Set != nil
	if !p.HasGet && !p.HasSet {
		p.HasGet, p.HasSet = true, true
	}
	if j.HasGet != nil {
		p.HasGet = *j.HasGet
	}
	if j.HasSet != nil {
		p.HasSet = *j.HasSet
	}
	return p, nil
}

// ctorArgs 区分"没有调用"(nil) 与"无参调用"(空切片)
func ctorArgs(list []json.RawMessage) ([]ast.Expression, error) {
	if list == nil {
		return nil, nil
	}
	args, err := exprs(list)
	if err != nil {
		return nil, err
	}
	if args == nil {
		args = []ast.Expression{}
	}
	return args, nil
}

// ============================================================================
// 修饰符
// ============================================================================

// accessJSON 访问修饰符，接受 "public"、"protected internal" 或字符串数组
type accessJSON ast.Access

func (a *accessJSON) UnmarshalJSON(data []byte) error {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("access must be a string or a list of strings")
		}
		if acc, ok := ast.LookupAccess(s); ok {
			*a = accessJSON(acc)
			return nil
		}
		words = strings.Fields(s)
	}
	var acc ast.Access
	for _, w := range words {
		bit, ok := ast.LookupAccess(w)
		if !ok {
			return fmt.Errorf("unknown access modifier %q", w)
		}
		acc |= bit
	}
	*a = accessJSON(acc)
	return nil
}

func parseScope(name string) (ast.Scope, error) {
	if name == "" {
		return ast.ScopeUnset, nil
	}
	s, ok := ast.LookupScope(name)
	if !ok {
		return ast.ScopeUnset, fmt.Errorf("unknown scope %q", name)
	}
	return s, nil
}

// normalize kind 字段的规范形式
func normalize(kind string) string {
	return kindOf(&node{Kind: kind})
}

// ============================================================================
// 特性 / 指令
// ============================================================================

type attributeJSON struct {
	Type   *typeJSON `json:"type"`
	Target string    `json:"target"`
	Args   []struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	} `json:"args"`
}

func attributes(list []*attributeJSON) ([]*ast.AttributeDecl, error) {
	var out []*ast.AttributeDecl
	for _, a := range list {
		decl := &ast.AttributeDecl{Type: a.Type.build(), Target: a.Target}
		for _, arg := range a.Args {
			v, err := expr(arg.Value)
			if err != nil {
				return nil, err
			}
			decl.Args = append(decl.Args, &ast.AttributeArg{Name: arg.Name, Value: v})
		}
		out = append(out, decl)
	}
	return out, nil
}

type directiveJSON struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start bool   `json:"start"`
}

func directives(list []*directiveJSON) ([]ast.Directive, error) {
	var out []ast.Directive
	for _, d := range list {
		switch kind := normalize(d.Kind); kind {
		case "region", "region_directive":
			out = append(out, &ast.RegionDirective{Start: d.Start, Text: d.Text})
		case "end_region":
			out = append(out, &ast.RegionDirective{Text: d.Text})
		case "pragma", "pragma_directive":
			out = append(out, &ast.PragmaDirective{Text: d.Text})
		default:
			return nil, unknown("directive", kind)
		}
	}
	return out, nil
}
