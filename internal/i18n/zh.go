package i18n

var messagesZH = map[string]string{
	// ========== 渲染 ==========
	MsgUnhandledNode:        "没有 %s 处理器能够渲染 %s 类型的节点",
	MsgUnhandledNodeProfile: "配置 %s 中没有 %s 处理器能够渲染 %s 类型的节点",
	MsgEmptyStack:           "%s 栈为空",

	// ========== 一致性检查 ==========
	MsgAmbiguousTypeKind: "类型声明 %s 必须恰好是 class、struct、interface、enum、delegate 之一（当前为 %d 个）",
	MsgEnumNonField:      "枚举 %s 包含 %s（类型 %s），枚举只能包含字段",
	MsgEnumGenerics:      "枚举 %s 不能声明泛型参数",
	MsgEnumBaseTypes:     "枚举 %s 不能声明基类型",
	MsgConflictingAccess: "成员 %s 的访问修饰符 %s 互相冲突",
	MsgUnknownScope:      "成员 %s 的作用域 %d 无法识别",

	// ========== 参数 ==========
	MsgEmptyInitializerName: "属性初始化器的名称不能为空",
	MsgNotShorthand:         "运算符 %s 不能用于复合赋值",
	MsgEmptyAssignSymbol:    "配置 %s 的赋值符号为空",
	MsgNotLegacy:            "运算符 %s 没有对应的旧版运算符",
	MsgUnknownProfile:       "未知的配置 %q",
	MsgUnknownOperator:      "未知的运算符 %q",

	// ========== 提示 ==========
	HintUnhandledNode:   "目标语法无法表达该结构，请改写语法树或选择其他配置",
	HintStrictMode:      "关闭严格模式可回退到宽松的默认行为",
	HintShorthand:       "复合赋值只接受 + - * / % | & ^ << >>",
	HintListProfiles:    "运行 `codedom profiles` 查看可用的配置",
	MsgErrorCount:       "错误: 发现 %d 个错误",
	MsgErrorCountSingle: "错误: 发现 1 个错误",

	// ========== 命令行 ==========
	MsgCheckOK:        "%s: 检查通过",
	MsgWroteOutput:    "已写入 %s",
	MsgConfigExists:   "%s 已存在",
	MsgConfigCreated:  "已创建 %s",
	MsgConfigLoaded:   "使用配置文件 %s",
	MsgProfileDefault: "（默认）",
}
