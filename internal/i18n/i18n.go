// Package i18n 提供错误消息与诊断文本的多语言支持
package i18n

import (
	"fmt"
	"sync"
)

// Language 语言类型
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

// 全局语言设置
var (
	currentLang Language = LangEnglish
	mu          sync.RWMutex
)

// catalogs 各语言的消息表
var catalogs = map[Language]map[string]string{
	LangEnglish: messagesEN,
	LangChinese: messagesZH,
}

// SetLanguage 设置当前语言
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	currentLang = lang
}

// SetLanguageFromString 从字符串设置语言，无法识别时回退到英文
func SetLanguageFromString(lang string) {
	switch lang {
	case "zh", "zh-cn", "zh_CN", "zh-tw", "zh-hk", "chinese":
		SetLanguage(LangChinese)
	default:
		SetLanguage(LangEnglish)
	}
}

// GetLanguage 获取当前语言
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T 翻译消息（支持格式化参数）
//
// 查找顺序：当前语言 -> 英文 -> 消息 ID 本身
func T(msgID string, args ...interface{}) string {
	msg, ok := lookup(GetLanguage(), msgID)
	if !ok {
		msg, ok = lookup(LangEnglish, msgID)
	}
	if !ok {
		return msgID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Has 检查消息 ID 是否在英文消息表中登记
func Has(msgID string) bool {
	_, ok := messagesEN[msgID]
	return ok
}

func lookup(lang Language, msgID string) (string, bool) {
	messages, ok := catalogs[lang]
	if !ok {
		return "", false
	}
	msg, ok := messages[msgID]
	return msg, ok
}
