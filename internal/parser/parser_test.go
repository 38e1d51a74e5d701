package parser

import (
	"strings"
	"testing"

	"foss.freebsd.org/portfmt/internal/token"
)

func parseString(t *testing.T, input string) []*token.Token {
	t.Helper()
	p := New(DefaultSettings())
	if err := p.ReadFromBuffer(strings.NewReader(input)); err != nil {
		t.Fatalf("ReadFromBuffer() error: %v", err)
	}
	return p.Tokens()
}

func TestParserSimpleVariable(t *testing.T) {
	tokens := parseString(t, "PORTNAME=foo\n")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(tokens), describe(tokens))
	}
	if tokens[0].Kind != token.VariableStart || tokens[0].Variable.Name != "PORTNAME" {
		t.Errorf("tokens[0] = %+v", tokens[0])
	}
	if tokens[1].Kind != token.VariableToken || tokens[1].Data != "foo" {
		t.Errorf("tokens[1] = %+v", tokens[1])
	}
	if tokens[2].Kind != token.VariableEnd {
		t.Errorf("tokens[2] = %+v", tokens[2])
	}
}

func TestParserBackslashContinuation(t *testing.T) {
	tokens := parseString(t, "USES=\tgmake \\\n\tcmake\n")
	var names []string
	for _, tok := range tokens {
		if tok.Kind == token.VariableToken {
			names = append(names, tok.Data)
		}
	}
	if len(names) != 2 || names[0] != "gmake" || names[1] != "cmake" {
		t.Fatalf("continuation atoms = %v, want [gmake cmake]", names)
	}
}

func TestParserTargetAndCommands(t *testing.T) {
	input := "post-install:\n\t${INSTALL_DATA} ${WRKSRC}/foo ${STAGEDIR}${PREFIX}/foo\n"
	tokens := parseString(t, input)

	if tokens[0].Kind != token.TargetStart {
		t.Fatalf("tokens[0].Kind = %v, want TARGET_START", tokens[0].Kind)
	}
	if tokens[0].Target.Names[0] != "post-install" {
		t.Errorf("target name = %v", tokens[0].Target.Names)
	}
	foundCmd := false
	for _, tok := range tokens {
		if tok.Kind == token.TargetCommandToken {
			foundCmd = true
			if !strings.HasPrefix(tok.Data, "${INSTALL_DATA}") {
				t.Errorf("command token = %q", tok.Data)
			}
		}
	}
	if !foundCmd {
		t.Fatal("no TARGET_COMMAND_TOKEN produced")
	}
	if tokens[len(tokens)-1].Kind != token.TargetEnd {
		t.Errorf("last token = %v, want TARGET_END", tokens[len(tokens)-1].Kind)
	}
}

func TestParserConditional(t *testing.T) {
	tokens := parseString(t, ".if ${FOO} == bar\nBAZ=qux\n.endif\n")
	if tokens[0].Kind != token.ConditionalStart {
		t.Fatalf("tokens[0].Kind = %v", tokens[0].Kind)
	}
	if tokens[1].Kind != token.ConditionalToken || tokens[1].Data != "${FOO} == bar" {
		t.Errorf("tokens[1] = %+v", tokens[1])
	}
	if tokens[2].Kind != token.ConditionalEnd {
		t.Errorf("tokens[2].Kind = %v", tokens[2].Kind)
	}
}

func TestParserUnknownConditionalErrors(t *testing.T) {
	p := New(DefaultSettings())
	err := p.ReadFromBuffer(strings.NewReader(".ifbogus FOO\n.endif\n"))
	if err == nil {
		t.Fatal("expected an error for an unrecognized directive")
	}
}

func TestParserMarksPortMkSentinel(t *testing.T) {
	tokens := parseString(t, ".include <bsd.port.mk>\n")
	found := false
	for _, tok := range tokens {
		if tok.Kind == token.PortMk {
			found = true
		}
	}
	if !found {
		t.Error("expected a PORT_MK sentinel token after .include <bsd.port.mk>")
	}
}

func TestParserFreeComment(t *testing.T) {
	tokens := parseString(t, "# hello\nPORTNAME=foo\n")
	if tokens[0].Kind != token.Comment || tokens[0].Data != "# hello" {
		t.Errorf("tokens[0] = %+v", tokens[0])
	}
}

func describe(tokens []*token.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind.String()
	}
	return out
}
