package token

import "strings"

// ============================================================================
// 关键字表
// ============================================================================

// KeywordSet 目标语法的保留字集合
type KeywordSet struct {
	words      map[string]struct{}
	foldedCase bool // 大小写不敏感（VB 系语法）
}

// NewKeywordSet 创建大小写敏感的关键字集合
func NewKeywordSet(words ...string) *KeywordSet {
	return newKeywordSet(false, words)
}

// NewFoldedKeywordSet 创建大小写不敏感的关键字集合
func NewFoldedKeywordSet(words ...string) *KeywordSet {
	return newKeywordSet(true, words)
}

func newKeywordSet(folded bool, words []string) *KeywordSet {
	ks := &KeywordSet{
		words:      make(map[string]struct{}, len(words)),
		foldedCase: folded,
	}
	for _, w := range words {
		ks.words[ks.key(w)] = struct{}{}
	}
	return ks
}

func (ks *KeywordSet) key(word string) string {
	if ks.foldedCase {
		return strings.ToLower(word)
	}
	return word
}

// Contains 判断 word 是否为关键字
func (ks *KeywordSet) Contains(word string) bool {
	if ks == nil {
		return false
	}
	_, ok := ks.words[ks.key(word)]
	return ok
}

// Len 关键字数量
func (ks *KeywordSet) Len() int {
	if ks == nil {
		return 0
	}
	return len(ks.words)
}
