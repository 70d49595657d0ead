package ast

import "strings"

// ============================================================================
// 访问级别
// ============================================================================

// Access 访问修饰符位集合
//
// 组合 Protected|Internal 表示 protected internal，
// Private|Protected 表示 private protected，其余多位组合视为冲突。
type Access uint8

const (
	AccessPublic Access = 1 << iota
	AccessProtected
	AccessInternal
	AccessPrivate
)

// Accessibility 解析后的访问级别
type Accessibility int

const (
	Unspecified Accessibility = iota
	Public
	Protected
	Internal
	ProtectedInternal
	Private
	PrivateProtected
)

var accessibilityNames = [...]string{
	Unspecified:       "unspecified",
	Public:            "public",
	Protected:         "protected",
	Internal:          "internal",
	ProtectedInternal: "protected-internal",
	Private:           "private",
	PrivateProtected:  "private-protected",
}

func (a Accessibility) String() string {
	if a >= 0 && int(a) < len(accessibilityNames) {
		return accessibilityNames[a]
	}
	return "unspecified"
}

// Resolve 把位集合解析为唯一的访问级别
//
// 无法识别的组合返回 (Unspecified, false)，由调用方决定严格模式下是否报错。
func (a Access) Resolve() (Accessibility, bool) {
	switch a {
	case 0:
		return Unspecified, true
	case AccessPublic:
		return Public, true
	case AccessProtected:
		return Protected, true
	case AccessInternal:
		return Internal, true
	case AccessPrivate:
		return Private, true
	case AccessProtected | AccessInternal:
		return ProtectedInternal, true
	case AccessPrivate | AccessProtected:
		return PrivateProtected, true
	}
	return Unspecified, false
}

// String 返回位集合的调试表示 (public|private)
func (a Access) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	names := []string{"public", "protected", "internal", "private"}
	for i, name := range names {
		if a&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// ============================================================================
// 作用域
// ============================================================================

// Scope 成员作用域，取值互斥
type Scope int

const (
	ScopeUnset Scope = iota
	ScopeAbstract
	ScopeOverride
	ScopeStatic
	ScopeConst
	ScopeFinal
	scopeEnd
)

var scopeNames = [...]string{
	ScopeUnset:    "unset",
	ScopeAbstract: "abstract",
	ScopeOverride: "override",
	ScopeStatic:   "static",
	ScopeConst:    "const",
	ScopeFinal:    "final",
}

// IsValid 是否为已知作用域
func (s Scope) IsValid() bool { return s >= ScopeUnset && s < scopeEnd }

func (s Scope) String() string {
	if s.IsValid() {
		return scopeNames[s]
	}
	return "unknown"
}

// LookupScope 按名称查找作用域
func LookupScope(name string) (Scope, bool) {
	for s := ScopeUnset; s < scopeEnd; s++ {
		if strings.EqualFold(scopeNames[s], name) {
			return s, true
		}
	}
	return ScopeUnset, false
}

// LookupAccess 按名称查找访问级别并返回对应的位集合
func LookupAccess(name string) (Access, bool) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "", "unspecified", "none":
		return 0, true
	case "public":
		return AccessPublic, true
	case "protected":
		return AccessProtected, true
	case "internal":
		return AccessInternal, true
	case "private":
		return AccessPrivate, true
	case "protected-internal":
		return AccessProtected | AccessInternal, true
	case "private-protected":
		return AccessPrivate | AccessProtected, true
	}
	return 0, false
}

// ============================================================================
// 修饰符节点
// ============================================================================

// MemberModifiers 成员修饰符（访问级别 + 作用域）
type MemberModifiers struct {
	Access Access
	Scope  Scope
	New    bool // 隐藏基类同名成员
}

func (m *MemberModifiers) Kind() string { return "MemberModifiers" }

// TypeModifiers 类型修饰符
type TypeModifiers struct {
	Access   Access
	Abstract bool
	Sealed   bool
	Static   bool
	Partial  bool
}

func (m *TypeModifiers) Kind() string { return "TypeModifiers" }
