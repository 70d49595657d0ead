package render

import (
	"math"
	"strconv"

	"github.com/tangzhangming/codedom/internal/ast"
)

// ============================================================================
// 字面量
// ============================================================================
//
// 数字字面量的渲染规则（T 为运行时类型，D 为配置的默认整数 / 浮点类型）：
//   1. T == D：输出裸字面量
//   2. 配置为 T 提供后缀：输出 字面量+后缀
//   3. 否则：渲染 Cast(T, D 类型的字面量)，经由表达式链分派
// 能放进 int32 的 int64 先收窄为 int32。
// 配置开启 MinValueMember 时，Int16/Int32/Int64 的最小值输出为 T.MinValue。
//
// ============================================================================

func (c *Context[X]) primitive(e *ast.Primitive) (bool, error) {
	p := c.profile
	switch v := ast.NormalizeLiteral(e.Value).(type) {
	case nil:
		return c.keyword(p.Null)
	case bool:
		if v {
			return c.keyword(p.True)
		}
		return c.keyword(p.False)
	case string:
		if p.Quote == nil {
			return false, nil
		}
		c.Write(p.Quote(v))
		return true, nil
	case ast.Char:
		if p.QuoteChar == nil {
			return false, nil
		}
		c.Write(p.QuoteChar(rune(v)))
		return true, nil
	case ast.Decimal:
		return c.numeric(ast.TypeDecimal, string(v))
	case int8:
		return c.numeric(ast.TypeSByte, strconv.FormatInt(int64(v), 10))
	case uint8:
		return c.numeric(ast.TypeByte, strconv.FormatUint(uint64(v), 10))
	case int16:
		if v == math.MinInt16 {
			return c.minValue(ast.TypeInt16, strconv.FormatInt(int64(v), 10))
		}
		return c.numeric(ast.TypeInt16, strconv.FormatInt(int64(v), 10))
	case uint16:
		return c.numeric(ast.TypeUInt16, strconv.FormatUint(uint64(v), 10))
	case int32:
		if v == math.MinInt32 {
			return c.minValue(ast.TypeInt32, strconv.FormatInt(int64(v), 10))
		}
		return c.numeric(ast.TypeInt32, strconv.FormatInt(int64(v), 10))
	case uint32:
		return c.numeric(ast.TypeUInt32, strconv.FormatUint(uint64(v), 10))
	case int64:
		switch {
		case v == math.MinInt32:
			return c.minValue(ast.TypeInt32, strconv.FormatInt(v, 10))
		case v >= math.MinInt32 && v <= math.MaxInt32:
			return c.numeric(ast.TypeInt32, strconv.FormatInt(v, 10))
		case v == math.MinInt64:
			return c.minValue(ast.TypeInt64, strconv.FormatInt(v, 10))
		}
		return c.numeric(ast.TypeInt64, strconv.FormatInt(v, 10))
	case uint64:
		return c.numeric(ast.TypeUInt64, strconv.FormatUint(v, 10))
	case float32:
		if special(float64(v)) {
			return c.nonFinite(ast.TypeSingle, float64(v))
		}
		return c.numeric(ast.TypeSingle, FormatFloat(float64(v), 32))
	case float64:
		if special(v) {
			return c.nonFinite(ast.TypeDouble, v)
		}
		return c.numeric(ast.TypeDouble, FormatFloat(v, 64))
	}
	return false, nil
}

func (c *Context[X]) keyword(kw string) (bool, error) {
	if kw == "" {
		return false, nil
	}
	c.Write(kw)
	return true, nil
}

// numeric 按默认类型 / 后缀 / 强制转换三种方式之一输出数字
func (c *Context[X]) numeric(typeName, text string) (bool, error) {
	p := c.profile
	if typeName == p.DefaultInt || typeName == p.DefaultFloat {
		c.Write(text)
		return true, nil
	}
	if p.LiteralSuffix != nil {
		if suffix, ok := p.LiteralSuffix(typeName); ok {
			c.Write(text + suffix)
			return true, nil
		}
	}
	if p.Cast == nil {
		return false, nil
	}
	cast := &ast.Cast{Type: ast.TypeNamed(typeName), Expr: c.defaultLiteral(typeName, text)}
	return true, c.Expr(cast)
}

// defaultLiteral 把数字文本转换为默认类型的字面量
//
// 值超出默认类型范围时退化为原样文本，避免无限递归。
func (c *Context[X]) defaultLiteral(typeName, text string) ast.Expression {
	p := c.profile
	if ast.IsIntegralType(typeName) {
		if p.DefaultInt == ast.TypeInt32 {
			if n, err := strconv.ParseInt(text, 10, 32); err == nil {
				return ast.Literal(int32(n))
			}
		}
		return &ast.SnippetExpr{Text: text}
	}
	if p.DefaultFloat == ast.TypeDouble {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return ast.Literal(f)
		}
	}
	return &ast.SnippetExpr{Text: text}
}

// nonFinite 输出 NaN / 无穷大（Double.NaN 形式）
func (c *Context[X]) nonFinite(typeName string, v float64) (bool, error) {
	name := "NaN"
	switch {
	case math.IsInf(v, 1):
		name = "PositiveInfinity"
	case math.IsInf(v, -1):
		name = "NegativeInfinity"
	}
	return c.typeMember(typeName, name)
}

// minValue 整数类型的最小值
//
// 负号是一元运算符的语法里，最小值的绝对值超出本类型范围，改写为 Integer.MinValue。
func (c *Context[X]) minValue(typeName, text string) (bool, error) {
	if c.profile.MinValueMember {
		return c.typeMember(typeName, "MinValue")
	}
	return c.numeric(typeName, text)
}

func (c *Context[X]) typeMember(typeName, member string) (bool, error) {
	if err := c.Type(ast.TypeNamed(typeName)); err != nil {
		return true, err
	}
	c.Write(c.profile.MemberAccess + member)
	return true, nil
}

func special(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// FormatFloat 格式化浮点数，保证结果不会被读成整数
func FormatFloat(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return s
		}
	}
	return s + ".0"
}
