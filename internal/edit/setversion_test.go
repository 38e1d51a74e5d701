package edit

import "testing"

func TestSetVersionSplitsPrefixAndGitDescribeSuffix(t *testing.T) {
	p, tokens := newParser(t, "PORTNAME=\tfoo\nPORTVERSION=\t1.0\nPORTREVISION=\t3\n")
	out, err := SetVersion(p, tokens, testConfig(), "1.2-4-gabcdef1")
	if err != nil {
		t.Fatalf("SetVersion() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "PORTNAME=\t\tfoo\nDISTVERSION=\t\t1.2\nDISTVERSIONSUFFIX=\t-4-gabcdef1\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestSetVersionNoOpWhenUnchanged(t *testing.T) {
	p, tokens := newParser(t, "PORTNAME=\tfoo\nPORTVERSION=\t1.2\n")
	out, err := SetVersion(p, tokens, testConfig(), "1.2")
	if err != nil {
		t.Fatalf("SetVersion() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "PORTNAME=\tfoo\nPORTVERSION=\t1.2\n"
	if got != want {
		t.Errorf("rendered = %q, want %q (same resolved version should be a no-op)", got, want)
	}
}

func TestSetVersionAppliesPrefix(t *testing.T) {
	p, tokens := newParser(t, "PORTNAME=\tfoo\nDISTVERSION=\t1.0\n")
	out, err := SetVersion(p, tokens, testConfig(), "v2.0")
	if err != nil {
		t.Fatalf("SetVersion() error: %v", err)
	}
	p.SetTokens(out)
	got := renderAll(t, p, out)
	want := "PORTNAME=\t\tfoo\nDISTVERSIONPREFIX=\tv\nDISTVERSION=\t\t2.0\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}
