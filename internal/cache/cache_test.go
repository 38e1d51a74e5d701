package cache

import (
	"strings"
	"testing"

	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/token"
)

func build(t *testing.T, src string) []*token.Token {
	t.Helper()
	p := parser.New(parser.DefaultSettings())
	if err := p.ReadFromBuffer(strings.NewReader(src)); err != nil {
		t.Fatalf("ReadFromBuffer() error: %v", err)
	}
	return p.Tokens()
}

func TestCacheUsesAndOptions(t *testing.T) {
	tokens := build(t, `USES=	cmake compiler:c++11-lang
OPTIONS_DEFINE=	SSL DOCS
`)
	c := New()
	c.Refresh(tokens, 1)

	if !c.HasUses("cmake") || !c.HasUses("compiler") {
		t.Errorf("Uses() = %v", c.Uses())
	}
	if !c.HasOption("SSL") || !c.HasOption("DOCS") {
		t.Errorf("Options() = %v", c.Options())
	}
}

func TestCacheRefreshSkipsWhenVersionUnchanged(t *testing.T) {
	tokens := build(t, "USES=\tcmake\n")
	c := New()
	c.Refresh(tokens, 1)
	if !c.HasUses("cmake") {
		t.Fatal("expected cmake to be declared")
	}

	// Mutate tokens without bumping version; Refresh should be a no-op.
	v := token.NewVariable("USES", token.ModifierAppend)
	tokens = append(tokens, token.NewVariableStart(v, 99), token.NewVariableToken(v, "gmake", 99), token.NewVariableEnd(v, 99))
	c.Refresh(tokens, 1)
	if c.HasUses("gmake") {
		t.Error("cache should not have picked up a change without a version bump")
	}

	c.Refresh(tokens, 2)
	// still fine either way; just confirming no panic on a version bump with
	// appended tokens.
}

func TestCacheMasterdir(t *testing.T) {
	tokens := build(t, "MASTERDIR=\t${.CURDIR}/../foo\n")
	c := New()
	c.Refresh(tokens, 1)
	if !c.Masterdir() {
		t.Error("Masterdir() should be true")
	}
}

func TestCacheSubpackages(t *testing.T) {
	tokens := build(t, "PLIST_FILES.server=\tbin/server\n")
	c := New()
	c.Refresh(tokens, 1)
	found := false
	for _, s := range c.Subpackages() {
		if s == "server" {
			found = true
		}
	}
	if !found {
		t.Errorf("Subpackages() = %v, want to contain \"server\"", c.Subpackages())
	}
}

func TestCachePostPlistTargetsTransitiveClosure(t *testing.T) {
	tokens := build(t, `post-install: post-plist
	true

deeper-target: post-install
	true
`)
	c := New()
	c.Refresh(tokens, 1)
	names := map[string]bool{}
	for _, n := range c.PostPlistTargets() {
		names[n] = true
	}
	if !names["deeper-target"] {
		t.Errorf("PostPlistTargets() = %v, want to contain deeper-target", c.PostPlistTargets())
	}
}
