package errors

import (
	"fmt"
	"strings"

	"github.com/tangzhangming/codedom/internal/i18n"
)

// ============================================================================
// 格式化器
// ============================================================================

// Formatter 错误格式化器（命令行输出用）
type Formatter struct {
	Colors    bool // 是否使用颜色
	ShowHints bool // 是否显示修复建议
}

// NewFormatter 创建默认格式化器
func NewFormatter() *Formatter {
	return &Formatter{
		Colors:    detectColorSupport(),
		ShowHints: true,
	}
}

// Format 格式化单个错误
//
// 带错误码的错误输出为:
//
//	error[G0101]: enum Color contains member Paint of kind method; enums may only contain fields
//	 = help: disable strict mode to fall back to lenient defaults
func (f *Formatter) Format(err error) string {
	var sb strings.Builder

	code := CodeOf(err)
	info, known := GetErrorInfo(code)

	level := LevelError
	if known {
		level = info.Level
	}
	head := level.String()
	if code != "" {
		head += fmt.Sprintf("[%s]", code)
	}
	color := ColorBoldRed
	switch level {
	case LevelWarning:
		color = ColorYellow
	case LevelNote:
		color = ColorBoldWhite
	}
	sb.WriteString(f.colorize(head, color))
	sb.WriteString(": ")
	sb.WriteString(stripCode(err.Error(), code))
	sb.WriteString("\n")

	if f.ShowHints && known && info.HintID != "" {
		sb.WriteString(f.colorize(" = help:", ColorCyan))
		sb.WriteString(" ")
		sb.WriteString(i18n.T(info.HintID))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatAll 格式化多个错误并附加错误计数
func (f *Formatter) FormatAll(errs []error) string {
	var sb strings.Builder
	for i, err := range errs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(f.Format(err))
	}

	if len(errs) > 0 {
		sb.WriteString("\n")
		countMsg := i18n.T(i18n.MsgErrorCount, len(errs))
		if len(errs) == 1 {
			countMsg = i18n.T(i18n.MsgErrorCountSingle)
		}
		sb.WriteString(f.colorize(countMsg, ColorRed) + "\n")
	}
	return sb.String()
}

func (f *Formatter) colorize(s string, color Color) string {
	if !f.Colors {
		return s
	}
	return Colorize(s, color)
}

// stripCode 去掉消息中重复的 "G0001: " 前缀
func stripCode(msg, code string) string {
	if code == "" {
		return msg
	}
	return strings.TrimPrefix(msg, code+": ")
}
