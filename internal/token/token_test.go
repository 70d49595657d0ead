package token

import (
	"testing"

	"github.com/tangzhangming/codedom/internal/errors"
)

func TestShorthandEligibility(t *testing.T) {
	eligible := map[Operator]bool{
		Add: true, Subtract: true, Multiply: true, Divide: true, Modulus: true,
		BitwiseOr: true, BitwiseAnd: true, BitwiseXor: true,
		ShiftLeft: true, ShiftRight: true,
	}
	for _, op := range Operators() {
		if got := op.IsShorthand(); got != eligible[op] {
			t.Errorf("%s: expected IsShorthand=%v, got %v", op, eligible[op], got)
		}
	}
}

func TestLegacyRoundTrip(t *testing.T) {
	for l := LegacyAdd; l < legacyEnd; l++ {
		op := FromLegacy(l)
		back, err := ToLegacy(op)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", l, err)
		}
		if back != l {
			t.Errorf("expected %s, got %s", l, back)
		}
	}
}

func TestLegacyRejectsUnrepresentable(t *testing.T) {
	for _, op := range []Operator{ValueInequality, BitwiseXor, ShiftLeft, ShiftRight, NullCoalesce} {
		_, err := ToLegacy(op)
		if err == nil {
			t.Errorf("%s: expected error", op)
			continue
		}
		if errors.CodeOf(err) != errors.G0203 {
			t.Errorf("%s: expected code %s, got %s", op, errors.G0203, errors.CodeOf(err))
		}
	}
}

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		name string
		want Operator
		ok   bool
	}{
		{"Add", Add, true},
		{"nullcoalesce", NullCoalesce, true},
		{"LegacyBooleanAnd", BooleanAnd, true},
		{"Spaceship", Illegal, false},
	}
	for _, tt := range tests {
		got, ok := LookupOperator(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupOperator(%q) = %s, %v; want %s, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUnaryTextRoundTrip(t *testing.T) {
	var op UnaryOperator
	if err := op.UnmarshalText([]byte("postincrement")); err != nil {
		t.Fatal(err)
	}
	if op != PostIncrement || op.IsPrefix() || op.StepOperator() != Add {
		t.Errorf("unexpected decoded operator %s", op)
	}
	if err := op.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for unknown unary operator")
	}
}

func TestPrefixPlacement(t *testing.T) {
	prefix := []UnaryOperator{Not, Negate, BitwiseNot, PreIncrement, PreDecrement}
	for _, op := range prefix {
		if !op.IsPrefix() {
			t.Errorf("expected %s to be prefix", op)
		}
	}
	for _, op := range []UnaryOperator{PostIncrement, PostDecrement} {
		if op.IsPrefix() {
			t.Errorf("expected %s to be postfix", op)
		}
	}
	if Not.IsStep() || !PreDecrement.IsStep() {
		t.Error("only increment and decrement are step operators")
	}
}

func TestKeywordSet(t *testing.T) {
	cs := NewKeywordSet("class", "int")
	if !cs.Contains("class") || cs.Contains("Class") {
		t.Error("case-sensitive set misbehaves")
	}
	vb := NewFoldedKeywordSet("Class", "End")
	if !vb.Contains("class") || !vb.Contains("END") {
		t.Error("folded set should ignore case")
	}
	var nilSet *KeywordSet
	if nilSet.Contains("x") || nilSet.Len() != 0 {
		t.Error("nil set should be empty")
	}
}
