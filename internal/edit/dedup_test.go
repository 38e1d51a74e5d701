package edit

import "testing"

func TestDedupTokensUsesNameCollapse(t *testing.T) {
	p, tokens := newParser(t, "USES=\tcompiler:c++11-lang compiler:c++14-lang\n")
	out, err := DedupTokens(p, tokens, testConfig())
	if err != nil {
		t.Fatalf("DedupTokens() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "USES=\tcompiler:c++11-lang\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestDedupTokensExactDuplicates(t *testing.T) {
	p, tokens := newParser(t, "USES=\tgmake gmake cmake\n")
	out, err := DedupTokens(p, tokens, testConfig())
	if err != nil {
		t.Fatalf("DedupTokens() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "USES=\tgmake cmake\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestDedupTokensSkipsVariablesWithoutFlag(t *testing.T) {
	p, tokens := newParser(t, "COMMENT=\tfoo foo\n")
	out, err := DedupTokens(p, tokens, testConfig())
	if err != nil {
		t.Fatalf("DedupTokens() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "COMMENT=\tfoo foo\n"
	if got != want {
		t.Errorf("rendered = %q, want %q (COMMENT has no FlagDedup, duplicates stay)", got, want)
	}
}

func TestDedupTokensPreservesInlineComment(t *testing.T) {
	p, tokens := newParser(t, "USES=\tgmake gmake # empty\n")
	out, err := DedupTokens(p, tokens, testConfig())
	if err != nil {
		t.Fatalf("DedupTokens() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "USES=\tgmake # empty\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}
