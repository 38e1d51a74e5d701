package edit

import (
	"strings"
	"testing"

	"foss.freebsd.org/portfmt/internal/cache"
	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/render"
	"foss.freebsd.org/portfmt/internal/rules"
	"foss.freebsd.org/portfmt/internal/token"
)

// newParser tokenizes src with default settings and returns both the
// parser (for p.Version()/p.SetTokens) and its initial token stream.
func newParser(t *testing.T, src string) (*parser.Parser, []*token.Token) {
	t.Helper()
	p := parser.New(parser.DefaultSettings())
	if err := p.ReadFromBuffer(strings.NewReader(src)); err != nil {
		t.Fatalf("ReadFromBuffer() error: %v", err)
	}
	return p, p.Tokens()
}

// testConfig builds an edit.Config with a fresh engine and cache, suitable
// for driving a single pass or a short pipeline in a test.
func testConfig() Config {
	return Config{Engine: rules.Default(), Cache: cache.New(), Settings: parser.DefaultSettings()}
}

// renderAll serializes tokens with the default render settings, returning
// the formatted text for assertions.
func renderAll(t *testing.T, p *parser.Parser, tokens []*token.Token) string {
	t.Helper()
	var buf strings.Builder
	cfg := render.Config{Settings: parser.DefaultSettings(), Engine: rules.Default()}
	if err := render.Render(&buf, p, tokens, cfg); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return buf.String()
}
