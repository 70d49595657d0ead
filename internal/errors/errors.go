package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/tangzhangming/codedom/internal/i18n"
)

// ============================================================================
// UnhandledNodeError
// ============================================================================

// UnhandledNodeError 某个类别的处理器链全部拒绝了节点
type UnhandledNodeError struct {
	Category string // 节点类别（expression、statement ...）
	Kind     string // 节点的具体种类
	Profile  string // 目标配置（可为空）
}

// NewUnhandled 创建 UnhandledNodeError
func NewUnhandled(category, kind string) *UnhandledNodeError {
	return &UnhandledNodeError{Category: category, Kind: kind}
}

// Code 返回错误码
func (e *UnhandledNodeError) Code() string { return G0001 }

// Error 实现 error 接口
func (e *UnhandledNodeError) Error() string {
	if e.Profile != "" {
		return fmt.Sprintf("%s: %s", G0001, i18n.T(i18n.MsgUnhandledNodeProfile, e.Profile, e.Category, e.Kind))
	}
	return fmt.Sprintf("%s: %s", G0001, message(G0001, e.Category, e.Kind))
}

// ============================================================================
// StackError
// ============================================================================

// StackError 在空的声明栈或成员栈上读取当前项
type StackError struct {
	Stack string // declaration / member
}

// NewEmptyStack 创建 StackError
func NewEmptyStack(stack string) *StackError {
	return &StackError{Stack: stack}
}

// Code 返回错误码
func (e *StackError) Code() string { return G0002 }

// Error 实现 error 接口
func (e *StackError) Error() string {
	return fmt.Sprintf("%s: %s", G0002, message(G0002, e.Stack))
}

// ============================================================================
// ConsistencyError
// ============================================================================

// ConsistencyError 结构性约束被破坏
type ConsistencyError struct {
	ErrCode string // 错误码 (G0100-G0199)
	Node    string // 违规节点的名称
	Message string // 已本地化的消息
}

// NewConsistency 创建 ConsistencyError，args 为消息格式化参数
func NewConsistency(code, node string, args ...interface{}) *ConsistencyError {
	return &ConsistencyError{ErrCode: code, Node: node, Message: message(code, args...)}
}

// Code 返回错误码
func (e *ConsistencyError) Code() string { return e.ErrCode }

// Error 实现 error 接口
func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrCode, e.Message)
}

// ============================================================================
// ArgumentError
// ============================================================================

// ArgumentError 节点或配置的构造参数非法
type ArgumentError struct {
	ErrCode string // 错误码 (G0200-G0299)
	Param   string // 出错的参数名
	Message string // 已本地化的消息
}

// NewArgument 创建 ArgumentError
func NewArgument(code, param string, args ...interface{}) *ArgumentError {
	return &ArgumentError{ErrCode: code, Param: param, Message: message(code, args...)}
}

// Code 返回错误码
func (e *ArgumentError) Code() string { return e.ErrCode }

// Error 实现 error 接口
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.ErrCode, e.Message, e.Param)
}

// ============================================================================
// 辅助函数
// ============================================================================

// Coded 带错误码的错误
type Coded interface {
	error
	Code() string
}

// CodeOf 提取错误链上的第一个错误码，找不到时返回空字符串
func CodeOf(err error) string {
	var c Coded
	if stderrors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// IsUnhandled 判断错误链上是否有 UnhandledNodeError
func IsUnhandled(err error) bool {
	var u *UnhandledNodeError
	return stderrors.As(err, &u)
}

// IsConsistency 判断错误链上是否有 ConsistencyError
func IsConsistency(err error) bool {
	var c *ConsistencyError
	return stderrors.As(err, &c)
}

// IsArgument 判断错误链上是否有 ArgumentError
func IsArgument(err error) bool {
	var a *ArgumentError
	return stderrors.As(err, &a)
}
