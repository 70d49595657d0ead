package ast

// 规范类型名称
const (
	TypeVoid    = "System.Void"
	TypeObject  = "System.Object"
	TypeBoolean = "System.Boolean"
	TypeChar    = "System.Char"
	TypeString  = "System.String"
	TypeSByte   = "System.SByte"
	TypeByte    = "System.Byte"
	TypeInt16   = "System.Int16"
	TypeUInt16  = "System.UInt16"
	TypeInt32   = "System.Int32"
	TypeUInt32  = "System.UInt32"
	TypeInt64   = "System.Int64"
	TypeUInt64  = "System.UInt64"
	TypeSingle  = "System.Single"
	TypeDouble  = "System.Double"
	TypeDecimal = "System.Decimal"
)

// NormalizeLiteral 把与平台相关的 Go 类型归一化
//
// int 视为 int64，uint/uintptr 视为 uint64，其余类型原样返回。
func NormalizeLiteral(v interface{}) interface{} {
	switch x := v.(type) {
	case int:
		return int64(x)
	case uint:
		return uint64(x)
	case uintptr:
		return uint64(x)
	}
	return v
}

// LiteralType 返回字面量值对应的规范类型名，nil 或无法识别时返回空字符串
func LiteralType(v interface{}) string {
	switch NormalizeLiteral(v).(type) {
	case bool:
		return TypeBoolean
	case Char:
		return TypeChar
	case string:
		return TypeString
	case Decimal:
		return TypeDecimal
	case int8:
		return TypeSByte
	case uint8:
		return TypeByte
	case int16:
		return TypeInt16
	case uint16:
		return TypeUInt16
	case int32:
		return TypeInt32
	case uint32:
		return TypeUInt32
	case int64:
		return TypeInt64
	case uint64:
		return TypeUInt64
	case float32:
		return TypeSingle
	case float64:
		return TypeDouble
	}
	return ""
}

// IsIntegralType 是否为整数类型名
func IsIntegralType(name string) bool {
	switch name {
	case TypeSByte, TypeByte, TypeInt16, TypeUInt16, TypeInt32, TypeUInt32,
		TypeInt64, TypeUInt64:
		return true
	}
	return false
}
