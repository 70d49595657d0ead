// Package errors 定义渲染器的错误体系
//
// 三类错误：
//   - UnhandledNodeError: 处理器链耗尽，目标语法无法表达该节点
//   - ConsistencyError: 结构性约束被破坏（仅严格模式下抛出）
//   - ArgumentError: 扩展节点或配置构造参数非法
package errors

import "github.com/tangzhangming/codedom/internal/i18n"

// ============================================================================
// 错误级别
// ============================================================================

// Level 错误级别
type Level int

const (
	LevelError   Level = iota // 错误
	LevelWarning              // 警告
	LevelNote                 // 提示
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	default:
		return "unknown"
	}
}

// ============================================================================
// 错误码
// ============================================================================

const (
	// G0001-G0099: 分派错误
	G0001 = "G0001" // 节点无人处理
	G0002 = "G0002" // 声明/成员栈为空

	// G0100-G0199: 一致性错误
	G0100 = "G0100" // 类型声明种类不唯一
	G0101 = "G0101" // 枚举包含非字段成员
	G0102 = "G0102" // 枚举声明了泛型参数
	G0103 = "G0103" // 枚举声明了基类型
	G0104 = "G0104" // 访问修饰符冲突
	G0105 = "G0105" // 作用域无法识别

	// G0200-G0299: 参数错误
	G0200 = "G0200" // 属性初始化器名称为空
	G0201 = "G0201" // 运算符不能用于复合赋值
	G0202 = "G0202" // 赋值符号为空
	G0203 = "G0203" // 运算符没有旧版对应
	G0204 = "G0204" // 未知配置
	G0205 = "G0205" // 未知运算符
)

// ============================================================================
// 错误码信息
// ============================================================================

// ErrorInfo 错误码信息
type ErrorInfo struct {
	Code      string // 错误码
	Level     Level  // 错误级别
	MessageID string // i18n 消息 ID
	Category  string // 错误分类
	HintID    string // 修复建议的 i18n 消息 ID（可选）
}

// errorTable 错误码信息表
var errorTable = map[string]ErrorInfo{
	G0001: {G0001, LevelError, i18n.MsgUnhandledNode, "dispatch", i18n.HintUnhandledNode},
	G0002: {G0002, LevelError, i18n.MsgEmptyStack, "dispatch", ""},

	G0100: {G0100, LevelError, i18n.MsgAmbiguousTypeKind, "consistency", i18n.HintStrictMode},
	G0101: {G0101, LevelError, i18n.MsgEnumNonField, "consistency", i18n.HintStrictMode},
	G0102: {G0102, LevelError, i18n.MsgEnumGenerics, "consistency", i18n.HintStrictMode},
	G0103: {G0103, LevelError, i18n.MsgEnumBaseTypes, "consistency", i18n.HintStrictMode},
	G0104: {G0104, LevelError, i18n.MsgConflictingAccess, "consistency", i18n.HintStrictMode},
	G0105: {G0105, LevelError, i18n.MsgUnknownScope, "consistency", i18n.HintStrictMode},

	G0200: {G0200, LevelError, i18n.MsgEmptyInitializerName, "argument", ""},
	G0201: {G0201, LevelError, i18n.MsgNotShorthand, "argument", i18n.HintShorthand},
	G0202: {G0202, LevelError, i18n.MsgEmptyAssignSymbol, "argument", ""},
	G0203: {G0203, LevelError, i18n.MsgNotLegacy, "argument", ""},
	G0204: {G0204, LevelError, i18n.MsgUnknownProfile, "argument", i18n.HintListProfiles},
	G0205: {G0205, LevelError, i18n.MsgUnknownOperator, "argument", ""},
}

// GetErrorInfo 获取错误码信息
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, ok := errorTable[code]
	return info, ok
}

// message 按错误码生成本地化消息
func message(code string, args ...interface{}) string {
	info, ok := errorTable[code]
	if !ok {
		return code
	}
	return i18n.T(info.MessageID, args...)
}
