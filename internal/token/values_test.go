package token

import "testing"

func TestModifierStringAndParse(t *testing.T) {
	cases := []struct {
		spelling string
		mod      Modifier
	}{
		{"=", ModifierAssign},
		{"+=", ModifierAppend},
		{":=", ModifierExpand},
		{"?=", ModifierOptional},
		{"!=", ModifierShell},
	}
	for _, c := range cases {
		mod, ok := ParseModifier(c.spelling)
		if !ok || mod != c.mod {
			t.Errorf("ParseModifier(%q) = (%v, %v), want (%v, true)", c.spelling, mod, ok, c.mod)
		}
		if got := c.mod.String(); got != c.spelling {
			t.Errorf("Modifier(%v).String() = %q, want %q", c.mod, got, c.spelling)
		}
	}
	if _, ok := ParseModifier("=="); ok {
		t.Error("ParseModifier(\"==\") should not recognize an unknown spelling")
	}
}

func TestVariableClone(t *testing.T) {
	v := NewVariable("PORTNAME", ModifierAssign)
	clone := v.Clone()
	if clone == v {
		t.Fatal("Clone() returned the same pointer")
	}
	clone.Name = "OTHERNAME"
	if v.Name != "PORTNAME" {
		t.Error("mutating the clone leaked back into the original")
	}
}

func TestParseConditionalKindRoundTrip(t *testing.T) {
	for spelling, kind := range conditionalNames {
		if got := kind.String(); got != spelling {
			t.Errorf("ConditionalKind(%v).String() = %q, want %q", kind, got, spelling)
		}
		parsed, ok := ParseConditionalKind(spelling)
		if !ok || parsed != kind {
			t.Errorf("ParseConditionalKind(%q) = (%v, %v), want (%v, true)", spelling, parsed, ok, kind)
		}
	}
	if _, ok := ParseConditionalKind(".ifbogus"); ok {
		t.Error("ParseConditionalKind(\".ifbogus\") should fail for an unrecognized directive")
	}
}

func TestTargetString(t *testing.T) {
	tg := NewTarget([]string{"post-install", "post-install-on"}, nil)
	if got := tg.String(); got != "post-install post-install-on" {
		t.Errorf("Target.String() = %q", got)
	}
}
