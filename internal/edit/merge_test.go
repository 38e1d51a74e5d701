package edit

import "testing"

func TestMergeAssignReplacesExistingValue(t *testing.T) {
	p, tokens := newParser(t, "MAINTAINER=\told@example.com\n")
	_, overlay := newParser(t, "MAINTAINER=\tnew@example.com\n")

	out, err := Merge(p, tokens, testConfig(), overlay)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "MAINTAINER=\tnew@example.com\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestMergeAssignInsertsWhenAbsent(t *testing.T) {
	p, tokens := newParser(t, "PORTNAME=\tfoo\n")
	_, overlay := newParser(t, "MAINTAINER=\tports@example.com\n")

	out, err := Merge(p, tokens, testConfig(), overlay)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "PORTNAME=\tfoo\n\nMAINTAINER=\tports@example.com\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestMergeAppendAddsAndResorts(t *testing.T) {
	p, tokens := newParser(t, "USES=\tcmake\n")
	_, overlay := newParser(t, "USES+=\tgmake\n")

	out, err := Merge(p, tokens, testConfig(), overlay)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "USES=\tcmake gmake\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestMergeShellIsDeleteGarbageMarksPrimary(t *testing.T) {
	p, tokens := newParser(t, "PORTREVISION=\t3\n")
	_, overlay := newParser(t, "PORTREVISION!=\t\n")

	cfg := testConfig()
	cfg.Settings.MergeShellIsDelete = true
	out, err := Merge(p, tokens, cfg, overlay)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	if got != "" {
		t.Errorf("rendered = %q, want empty (PORTREVISION deleted)", got)
	}
}

func TestMergeOptionalAsAssignWhenOptedIn(t *testing.T) {
	p, tokens := newParser(t, "FOO?=\told\n")
	_, overlay := newParser(t, "FOO?=\tnew\n")

	cfg := testConfig()
	cfg.Settings.MergeOptionalLikeAssign = true
	out, err := Merge(p, tokens, cfg, overlay)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "FOO?=\tnew\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}
