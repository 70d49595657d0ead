package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tangzhangming/codedom/internal/i18n"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"unhandled", NewUnhandled("expression", "Lambda"), G0001},
		{"consistency", NewConsistency(G0101, "Color", "Color", "Paint", "Method"), G0101},
		{"argument", NewArgument(G0201, "op", "=="), G0201},
		{"wrapped", fmt.Errorf("render: %w", NewArgument(G0200, "name")), G0200},
		{"plain", stderrors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.code {
				t.Errorf("expected code %q, got %q", tt.code, got)
			}
		})
	}
}

func TestMessagesRegistered(t *testing.T) {
	for code, info := range errorTable {
		if info.Code != code {
			t.Errorf("%s: table entry carries code %s", code, info.Code)
		}
		if !i18n.Has(info.MessageID) {
			t.Errorf("%s: message %q is not registered", code, info.MessageID)
		}
		if info.HintID != "" && !i18n.Has(info.HintID) {
			t.Errorf("%s: hint %q is not registered", code, info.HintID)
		}
	}
}

func TestUnhandledMessageNamesKind(t *testing.T) {
	err := NewUnhandled("statement", "Goto")
	if !strings.Contains(err.Error(), "Goto") {
		t.Errorf("expected message to name the node kind, got %q", err.Error())
	}

	err.Profile = "vb"
	if !strings.Contains(err.Error(), "vb") {
		t.Errorf("expected message to name the profile, got %q", err.Error())
	}
}

func TestPredicates(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewConsistency(G0100, "T", "T", 2))
	if !IsConsistency(wrapped) {
		t.Error("expected IsConsistency to see through wrapping")
	}
	if IsUnhandled(wrapped) || IsArgument(wrapped) {
		t.Error("expected only IsConsistency to match")
	}
}

func TestFormatterPlain(t *testing.T) {
	f := &Formatter{Colors: false, ShowHints: true}
	out := f.Format(NewArgument(G0201, "op", "=="))

	if !strings.HasPrefix(out, "error[G0201]: ") {
		t.Errorf("unexpected header: %q", out)
	}
	if strings.Count(out, "G0201") != 1 {
		t.Errorf("expected code to appear once, got %q", out)
	}
	if !strings.Contains(out, "= help:") {
		t.Errorf("expected hint line, got %q", out)
	}

	all := f.FormatAll([]error{stderrors.New("a"), stderrors.New("b")})
	if !strings.Contains(all, "found 2 errors") {
		t.Errorf("expected error count, got %q", all)
	}
}

func TestStripColors(t *testing.T) {
	if got := Strip(Colorize("x", ColorRed)); got != "x" {
		t.Errorf("expected colors stripped, got %q", got)
	}
}

func TestEmptyStack(t *testing.T) {
	err := NewEmptyStack("member")
	if CodeOf(err) != G0002 {
		t.Errorf("expected G0002, got %s", CodeOf(err))
	}
	if !strings.Contains(err.Error(), "member stack is empty") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
