package perr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatsWithAndWithoutLine(t *testing.T) {
	e := New(UnknownConditional, "saw %q", ".weird")
	if e.Error() != `unknown conditional: saw ".weird"` {
		t.Errorf("Error() = %q", e.Error())
	}

	withLine := At(UnknownVariable, 42, "bad name")
	if withLine.Error() != "unknown variable: bad name (line 42)" {
		t.Errorf("Error() = %q", withLine.Error())
	}
}

func TestIsMatchesOnKindAlone(t *testing.T) {
	a := New(IO, "read failed")
	b := New(IO, "a different message entirely")
	if !errors.Is(a, b) {
		t.Error("errors.Is should match two *Error values sharing a Kind")
	}

	c := New(InvalidArgument, "read failed")
	if errors.Is(a, c) {
		t.Error("errors.Is should not match across different Kinds")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("underlying")
	e := Wrap(EditFailed, cause, "pass failed")
	if errors.Unwrap(e) != cause {
		t.Error("Unwrap() should return the wrapped cause")
	}
}

func TestUnknownKindStringsFallBack(t *testing.T) {
	var k Kind = 999
	if k.String() != "unknown error kind" {
		t.Errorf("String() = %q, want fallback", k.String())
	}
}
