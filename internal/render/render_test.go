package render

import (
	"strings"
	"testing"

	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/rules"
)

func renderSource(t *testing.T, src string) string {
	t.Helper()
	p := parser.New(parser.DefaultSettings())
	if err := p.ReadFromBuffer(strings.NewReader(src)); err != nil {
		t.Fatalf("ReadFromBuffer() error: %v", err)
	}
	var buf strings.Builder
	cfg := Config{Settings: parser.DefaultSettings(), Engine: rules.Default()}
	if err := Render(&buf, p, p.Tokens(), cfg); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return buf.String()
}

func TestRenderParagraphSharesGoalcol(t *testing.T) {
	got := renderSource(t, "PORTNAME=foo\nDISTVERSION=1.0\nCATEGORIES=www\n")
	want := "PORTNAME=\tfoo\nDISTVERSION=\t1.0\nCATEGORIES=\twww\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestRenderPrintAsNewlinesWrapsEachAtom(t *testing.T) {
	got := renderSource(t, "GH_TUPLE=foo:bar:1.0 baz:qux:2.0\n")
	want := "GH_TUPLE=\tfoo:bar:1.0 \\\n\t\tbaz:qux:2.0\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestRenderPreservedInlineCommentStaysOnValueLine(t *testing.T) {
	got := renderSource(t, "USES=gmake # empty\n")
	want := "USES=\tgmake # empty\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestRenderNonPreservedInlineCommentMovesAbove(t *testing.T) {
	got := renderSource(t, "USES=gmake # needed for the build\n")
	want := "# needed for the build\nUSES=\tgmake\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}

func TestRenderTargetWithCommands(t *testing.T) {
	got := renderSource(t, "do-install:\n\t${INSTALL_DATA} ${WRKSRC}/foo ${STAGEDIR}${PREFIX}/bin\n")
	want := "do-install:\n\t${INSTALL_DATA} ${WRKSRC}/foo ${STAGEDIR}${PREFIX}/bin\n"
	if got != want {
		t.Errorf("rendered = %q, want %q", got, want)
	}
}
