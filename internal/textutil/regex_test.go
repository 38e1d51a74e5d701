package textutil

import "testing"

func TestMatchesVariableHead(t *testing.T) {
	if !Matches(PatternVariableHead, "PORTNAME=foo") {
		t.Error("PatternVariableHead should match a plain assignment")
	}
	if Matches(PatternVariableHead, "install:") {
		t.Error("PatternVariableHead should not match a target head")
	}
}

func TestFindSubmatchVersionPrefix(t *testing.T) {
	m := FindSubmatch(PatternVersionPrefix, "v1.2.3")
	if len(m) != 3 || m[1] != "v" || m[2] != "1.2.3" {
		t.Errorf("FindSubmatch(VersionPrefix, \"v1.2.3\") = %v", m)
	}
}

func TestFindSubmatchGitDescribeSuffix(t *testing.T) {
	m := FindSubmatch(PatternGitDescribeSuffix, "1.2-4-gabcdef1")
	if m == nil {
		t.Fatal("expected a match")
	}
	if m[0] != "-4-gabcdef1" {
		t.Errorf("m[0] = %q, want -4-gabcdef1", m[0])
	}
}

func TestSubstituteNoMatchReturnsOriginal(t *testing.T) {
	s := Substitute(PatternGitDescribeSuffix, "", "1.2.3")
	if s != "1.2.3" {
		t.Errorf("Substitute() with no match changed the string: %q", s)
	}
}

func TestMatchesEmptyLine(t *testing.T) {
	if !Matches(PatternEmptyLine, "   ") {
		t.Error("PatternEmptyLine should match whitespace-only input")
	}
	if Matches(PatternEmptyLine, "x") {
		t.Error("PatternEmptyLine should not match non-blank input")
	}
}
