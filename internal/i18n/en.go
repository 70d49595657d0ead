package i18n

// 消息 ID
const (
	// 渲染
	MsgUnhandledNode        = "render.unhandled_node"
	MsgUnhandledNodeProfile = "render.unhandled_node_profile"
	MsgEmptyStack           = "render.empty_stack"

	// 一致性检查
	MsgAmbiguousTypeKind   = "consistency.ambiguous_type_kind"
	MsgEnumNonField        = "consistency.enum_non_field"
	MsgEnumGenerics        = "consistency.enum_generics"
	MsgEnumBaseTypes       = "consistency.enum_base_types"
	MsgConflictingAccess   = "consistency.conflicting_access"
	MsgUnknownScope        = "consistency.unknown_scope"

	// 参数
	MsgEmptyInitializerName = "argument.empty_initializer_name"
	MsgNotShorthand         = "argument.not_shorthand"
	MsgEmptyAssignSymbol    = "argument.empty_assign_symbol"
	MsgNotLegacy            = "argument.not_legacy"
	MsgUnknownProfile       = "argument.unknown_profile"
	MsgUnknownOperator      = "argument.unknown_operator"

	// 提示
	HintUnhandledNode    = "hint.unhandled_node"
	HintStrictMode       = "hint.strict_mode"
	HintShorthand        = "hint.shorthand"
	HintListProfiles     = "hint.list_profiles"
	MsgErrorCount        = "cli.error_count"
	MsgErrorCountSingle  = "cli.error_count_single"

	// 命令行
	MsgCheckOK        = "cli.check_ok"
	MsgWroteOutput    = "cli.wrote_output"
	MsgConfigExists   = "cli.config_exists"
	MsgConfigCreated  = "cli.config_created"
	MsgConfigLoaded   = "cli.config_loaded"
	MsgProfileDefault = "cli.profile_default"
)

var messagesEN = map[string]string{
	// ========== Render ==========
	MsgUnhandledNode:        "no %s handler can render node of kind %s",
	MsgUnhandledNodeProfile: "profile %s has no %s handler for node of kind %s",
	MsgEmptyStack:           "%s stack is empty",

	// ========== Consistency ==========
	MsgAmbiguousTypeKind: "type declaration %s must be exactly one of class, struct, interface, enum or delegate (has %d)",
	MsgEnumNonField:      "enum %s contains member %s of kind %s; enums may only contain fields",
	MsgEnumGenerics:      "enum %s cannot declare type parameters",
	MsgEnumBaseTypes:     "enum %s cannot declare base types",
	MsgConflictingAccess: "member %s has conflicting accessibility bits %s",
	MsgUnknownScope:      "member %s has unknown scope %d",

	// ========== Arguments ==========
	MsgEmptyInitializerName: "property initializer name must not be empty",
	MsgNotShorthand:         "operator %s cannot be used in a compound assignment",
	MsgEmptyAssignSymbol:    "profile %s declares an empty assignment symbol",
	MsgNotLegacy:            "operator %s has no legacy equivalent",
	MsgUnknownProfile:       "unknown profile %q",
	MsgUnknownOperator:      "unknown operator %q",

	// ========== Hints ==========
	HintUnhandledNode:   "the target syntax cannot express this construct; rewrite the tree or pick another profile",
	HintStrictMode:      "disable strict mode to fall back to lenient defaults",
	HintShorthand:       "compound assignment accepts + - * / % | & ^ << >> only",
	HintListProfiles:    "run `codedom profiles` to list available profiles",
	MsgErrorCount:       "error: found %d errors",
	MsgErrorCountSingle: "error: found 1 error",

	// ========== CLI ==========
	MsgCheckOK:        "%s: ok",
	MsgWroteOutput:    "wrote %s",
	MsgConfigExists:   "%s already exists",
	MsgConfigCreated:  "created %s",
	MsgConfigLoaded:   "using config %s",
	MsgProfileDefault: "(default)",
}
