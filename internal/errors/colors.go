package errors

import (
	"os"
	"strings"
)

// Color 终端颜色
type Color int

const (
	ColorReset Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorBoldRed
	ColorBoldWhite
)

// ANSI 颜色代码
var ansiCodes = map[Color]string{
	ColorReset:     "\033[0m",
	ColorRed:       "\033[31m",
	ColorYellow:    "\033[33m",
	ColorCyan:      "\033[36m",
	ColorBoldRed:   "\033[1;31m",
	ColorBoldWhite: "\033[1;37m",
}

// detectColorSupport 检测终端是否支持颜色
func detectColorSupport() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// Colorize 给字符串加上颜色
func Colorize(s string, color Color) string {
	code, ok := ansiCodes[color]
	if !ok || color == ColorReset {
		return s
	}
	return code + s + ansiCodes[ColorReset]
}

// Strip 移除字符串中的 ANSI 颜色代码
func Strip(s string) string {
	var sb strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
