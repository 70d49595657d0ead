// Package codec 解码程序树的 JSON 交换格式
//
// 每个节点是一个带 "kind" 字段的对象，kind 的写法不限
// （"BinaryOp"、"binary_op"、"binary-op" 等价），解码前统一转换为 snake_case。
// 类型引用既可以写成对象，也可以直接写成规范名称字符串：
//
//	{"kind": "binary", "op": "Add", "left": {"kind": "variable", "name": "a"},
//	 "right": {"kind": "primitive", "type": "System.Int64", "value": 1}}
package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/iancoleman/strcase"
	"github.com/segmentio/encoding/json"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/token"
)

// ============================================================================
// 入口
// ============================================================================

// Decode 解码编译单元
func Decode(data []byte) (*ast.CompileUnit, error) {
	var u unitJSON
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("invalid unit: %w", err)
	}
	return u.build()
}

// DecodeReader 从 io.Reader 读取并解码编译单元
func DecodeReader(r io.Reader) (*ast.CompileUnit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit: %w", err)
	}
	return Decode(data)
}

// DecodeFile 读取并解码文件，path 为 "-" 时读取标准输入
func DecodeFile(path string) (*ast.CompileUnit, error) {
	if path == "-" {
		return DecodeReader(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit file: %w", err)
	}
	return Decode(data)
}

// DecodeExpression 解码单个表达式
func DecodeExpression(data []byte) (ast.Expression, error) {
	return expr(data)
}

// DecodeStatement 解码单条语句
func DecodeStatement(data []byte) (ast.Statement, error) {
	return stmt(data)
}

// ============================================================================
// 节点外壳
// ============================================================================

// node 所有节点共用的字段集合，多态的子节点保留为原始 JSON
type node struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Text string `json:"text"`

	// 字面量
	Value json.RawMessage `json:"value"`

	// 运算
	Op      string          `json:"op"`
	Left    json.RawMessage `json:"left"`
	Right   json.RawMessage `json:"right"`
	Operand json.RawMessage `json:"operand"`
	Cond    json.RawMessage `json:"cond"`
	True    json.RawMessage `json:"true"`
	False   json.RawMessage `json:"false"`

	// 引用 / 调用 / 创建
	Type         *typeJSON         `json:"type"`
	TypeArgs     []*typeJSON       `json:"type_args"`
	Target       json.RawMessage   `json:"target"`
	Method       string            `json:"method"`
	Args         []json.RawMessage `json:"args"`
	Indices      []json.RawMessage `json:"indices"`
	Sizes        []json.RawMessage `json:"sizes"`
	Initializers []json.RawMessage `json:"init"`
	Properties   []propInitJSON    `json:"properties"`
	Dir          string            `json:"dir"`
	Expr         json.RawMessage   `json:"expr"`

	// lambda
	Params     []*paramJSON    `json:"params"`
	Result     json.RawMessage `json:"result"`
	ReturnType *typeJSON       `json:"return_type"`

	// 语句
	Body    []json.RawMessage `json:"body"`
	Then    []json.RawMessage `json:"then"`
	Else    []json.RawMessage `json:"else"`
	Init    json.RawMessage   `json:"init_stmt"`
	Test    json.RawMessage   `json:"test"`
	Incr    json.RawMessage   `json:"incr"`
	Var     string            `json:"var"`
	Decl    json.RawMessage   `json:"decl"`
	Catches []*catchJSON      `json:"catches"`
	Finally []json.RawMessage `json:"finally"`
	Event   json.RawMessage   `json:"event"`
	Label   string            `json:"label"`
	Stmt    json.RawMessage   `json:"stmt"`
	Doc     bool              `json:"doc"`
}

// kindOf 规范化的节点种类
func kindOf(n *node) string {
	return strcase.ToSnake(n.Kind)
}

func parse(data []byte, category string) (*node, error) {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", category, err)
	}
	if n.Kind == "" {
		return nil, fmt.Errorf("%s without kind: %s", category, truncate(data))
	}
	return &n, nil
}

func absent(data json.RawMessage) bool {
	d := bytes.TrimSpace(data)
	return len(d) == 0 || bytes.Equal(d, []byte("null"))
}

func truncate(data []byte) string {
	const max = 60
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}

func unknown(category, kind string) error {
	return fmt.Errorf("unknown %s kind %q", category, kind)
}

// ============================================================================
// 类型引用
// ============================================================================

// typeJSON 类型引用；JSON 字符串视为只有名称的引用
type typeJSON struct {
	Name     string      `json:"name"`
	Args     []*typeJSON `json:"args"`
	Rank     int         `json:"rank"`
	Elem     *typeJSON   `json:"elem"`
	Nullable bool        `json:"nullable"`
	Global   bool        `json:"global"`
}

func (t *typeJSON) UnmarshalJSON(data []byte) error {
	if d := bytes.TrimSpace(data); len(d) > 0 && d[0] == '"' {
		return json.Unmarshal(d, &t.Name)
	}
	type plain typeJSON
	return json.Unmarshal(data, (*plain)(t))
}

func (t *typeJSON) build() *ast.TypeRef {
	if t == nil {
		return nil
	}
	return &ast.TypeRef{
		Name:      t.Name,
		TypeArgs:  types(t.Args),
		ArrayRank: t.Rank,
		Elem:      t.Elem.build(),
		Nullable:  t.Nullable,
		Global:    t.Global,
	}
}

func types(list []*typeJSON) []*ast.TypeRef {
	if len(list) == 0 {
		return nil
	}
	out := make([]*ast.TypeRef, len(list))
	for i, t := range list {
		out[i] = t.build()
	}
	return out
}

// ============================================================================
// 运算符
// ============================================================================

// binaryOp 运算符名称先按原样查找，再按 snake_case 等写法转换后查找
func binaryOp(name string) (token.Operator, error) {
	if op, ok := token.LookupOperator(name); ok {
		return op, nil
	}
	var op token.Operator
	err := op.UnmarshalText([]byte(strcase.ToCamel(name)))
	return op, err
}

func unaryOp(name string) (token.UnaryOperator, error) {
	var op token.UnaryOperator
	err := op.UnmarshalText([]byte(strcase.ToCamel(name)))
	return op, err
}
