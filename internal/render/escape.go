package render

import (
	"fmt"
	"strings"
)

// EscapeString 转义字符串内容（不含两端的引号）
//
// escape 与 quote 相同时（如 VB），引号通过重复自身转义；
// control 为控制字符提供替换文本，返回 false 时原样输出。
func EscapeString(s string, escape, quote rune, control func(r rune) (string, bool)) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	for _, r := range s {
		switch {
		case r == quote:
			sb.WriteRune(escape)
			sb.WriteRune(quote)
		case r == escape:
			sb.WriteRune(escape)
			sb.WriteRune(escape)
		case control != nil && isControl(r):
			if repl, ok := control(r); ok {
				sb.WriteString(repl)
			} else {
				sb.WriteRune(r)
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// isControl 需要转义的控制字符，包括 Unicode 行分隔符
func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f || r == 0x85 || r == 0x2028 || r == 0x2029
}

// BackslashEscape C 系语法的控制字符转义
func BackslashEscape(r rune) (string, bool) {
	switch r {
	case 0:
		return `\0`, true
	case '\a':
		return `\a`, true
	case '\b':
		return `\b`, true
	case '\f':
		return `\f`, true
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	case '\v':
		return `\v`, true
	}
	return fmt.Sprintf(`\u%04x`, r), true
}
