package i18n

import "testing"

func TestCatalogsComplete(t *testing.T) {
	for id := range messagesEN {
		if _, ok := messagesZH[id]; !ok {
			t.Errorf("message %s missing in zh catalog", id)
		}
	}
	for id := range messagesZH {
		if _, ok := messagesEN[id]; !ok {
			t.Errorf("message %s missing in en catalog", id)
		}
	}
}

func TestTranslate(t *testing.T) {
	defer SetLanguage(LangEnglish)

	SetLanguage(LangEnglish)
	if got := T(MsgEmptyStack, "member"); got != "member stack is empty" {
		t.Errorf("expected english message, got %q", got)
	}

	SetLanguageFromString("zh-cn")
	if got := T(MsgEmptyStack, "member"); got != "member 栈为空" {
		t.Errorf("expected chinese message, got %q", got)
	}

	if got := T("no.such.message"); got != "no.such.message" {
		t.Errorf("expected id fallback, got %q", got)
	}
}
