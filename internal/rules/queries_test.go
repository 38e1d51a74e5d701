package rules

import (
	"testing"

	"foss.freebsd.org/portfmt/internal/token"
)

func TestIndentGoalcol(t *testing.T) {
	cases := []struct {
		name string
		mod  token.Modifier
		want int
	}{
		{"USES", token.ModifierAssign, 8},
		{"PORTNAME", token.ModifierAssign, 16},
		{"DISTVERSION", token.ModifierAssign, 16},
		{"MAINTAINER", token.ModifierAssign, 16},
		{"CFLAGS", token.ModifierAppend, 16},
	}
	for _, c := range cases {
		v := token.NewVariable(c.name, c.mod)
		if got := IndentGoalcol(v); got != c.want {
			t.Errorf("IndentGoalcol(%s%s) = %d, want %d", c.name, c.mod.String(), got, c.want)
		}
	}
}

func TestEngineLookupFindsTableEntry(t *testing.T) {
	e := Default()
	rule, ok := e.Lookup("USES")
	if !ok {
		t.Fatal("Lookup(\"USES\") should succeed")
	}
	if rule.Block != token.BlockUses {
		t.Errorf("USES block = %v, want %v", rule.Block, token.BlockUses)
	}
	if !e.ShouldSort(rule, false) {
		t.Error("USES should be sortable by default")
	}
}

func TestEngineLookupUnknownVariable(t *testing.T) {
	e := Default()
	if _, ok := e.Lookup("SOME_RANDOM_VAR"); ok {
		t.Error("Lookup() should not find an unregistered variable")
	}
}

func TestShouldSortRespectsAlwaysSort(t *testing.T) {
	e := Default()
	rule, _ := e.Lookup("MAINTAINER") // not sortable by default
	if e.ShouldSort(rule, false) {
		t.Error("MAINTAINER should not be sortable by default")
	}
	if !e.ShouldSort(rule, true) {
		t.Error("always_sort should force ShouldSort true regardless of the rule")
	}
}

func TestShouldSortNotComparable(t *testing.T) {
	e := Default()
	rule, ok := e.Lookup("GENERATED")
	if !ok {
		t.Fatal("Lookup(\"GENERATED\") should succeed via the special-variables table")
	}
	if e.ShouldSort(rule, true) {
		t.Error("NOT_COMPARABLE must never sort, even with always_sort")
	}
}

func TestPreserveEOLComment(t *testing.T) {
	for _, c := range []string{"#", "# empty", "#none", "# none"} {
		if !PreserveEOLComment(c) {
			t.Errorf("PreserveEOLComment(%q) = false, want true", c)
		}
	}
	if PreserveEOLComment("# a real comment") {
		t.Error("PreserveEOLComment() should not preserve an ordinary comment")
	}
}
