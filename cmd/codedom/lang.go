package main

import (
	"os"
	"strings"

	"github.com/tangzhangming/codedom/internal/i18n"
)

// initLanguage 初始化消息语言
// 优先级: 命令行参数 > 环境变量 CODEDOM_LANG > 系统 locale > 默认英文
func initLanguage(override string) {
	if override != "" {
		i18n.SetLanguageFromString(strings.ToLower(strings.TrimSpace(override)))
		return
	}
	if env := os.Getenv("CODEDOM_LANG"); env != "" {
		i18n.SetLanguageFromString(strings.ToLower(strings.TrimSpace(env)))
		return
	}
	if detectChineseLocale() {
		i18n.SetLanguage(i18n.LangChinese)
		return
	}
	i18n.SetLanguage(i18n.LangEnglish)
}

// detectChineseLocale 检查 locale 相关环境变量是否为中文
func detectChineseLocale() bool {
	for _, v := range []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"} {
		val := strings.ToLower(os.Getenv(v))
		if val == "" {
			continue
		}
		return strings.HasPrefix(val, "zh") || strings.Contains(val, "chinese")
	}
	return false
}
