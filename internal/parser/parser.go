package parser

import (
	"bufio"
	"io"
	"strings"

	"foss.freebsd.org/portfmt/internal/diag"
	"foss.freebsd.org/portfmt/internal/perr"
	"foss.freebsd.org/portfmt/internal/rules"
	"foss.freebsd.org/portfmt/internal/token"
)

type state int

const (
	stateDefault state = iota
	stateInTarget
)

// Parser consumes a line stream and produces a token stream, per
// spec.md's Parser lifecycle: created with Settings, fed lines until
// Finish, after which Tokens is valid and edit passes may run.
type Parser struct {
	Settings Settings

	tokens  []*token.Token
	state   state
	curTgt  *token.Target
	version int
	done    bool
}

// New builds a Parser with the given settings and no tokens yet.
func New(settings Settings) *Parser {
	return &Parser{Settings: settings}
}

type logicalLine struct {
	Text    string
	Start   int
	End     int
	HasTab  bool
}

// ReadFromBuffer reads every line from r, tokenizing as it goes, and then
// calls Finish.
func (p *Parser) ReadFromBuffer(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for {
		ll, ok, err := readLogical(scanner, &lineNo)
		if err != nil {
			return perr.Wrap(perr.IO, err, "reading input")
		}
		if !ok {
			break
		}
		if err := p.consume(ll); err != nil {
			return err
		}
	}
	return p.Finish()
}

func readLogical(scanner *bufio.Scanner, lineNo *int) (logicalLine, bool, error) {
	var parts []string
	start := *lineNo + 1
	first := true
	hasTab := false
	for {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return logicalLine{}, false, err
			}
			if len(parts) == 0 {
				return logicalLine{}, false, nil
			}
			break
		}
		*lineNo++
		line := scanner.Text()
		if first {
			hasTab = strings.HasPrefix(line, "\t")
			first = false
		}
		if strings.HasSuffix(line, `\`) {
			parts = append(parts, strings.TrimSuffix(line, `\`))
			continue
		}
		parts = append(parts, line)
		break
	}
	return logicalLine{Text: strings.Join(parts, " "), Start: start, End: *lineNo, HasTab: hasTab}, true, nil
}

// Finish marks the stream complete. Safe to call multiple times.
func (p *Parser) Finish() error {
	if p.state == stateInTarget {
		p.closeTarget(p.tokens[len(p.tokens)-1].Lines.End)
	}
	p.done = true
	return nil
}

// Tokens returns the current token stream. Valid any time (edit passes
// may call it mid-pipeline); fully valid only after Finish.
func (p *Parser) Tokens() []*token.Token {
	return p.tokens
}

// SetTokens replaces the stream, bumping Version so the metadata cache
// recomputes on next read. Edit passes that build a fresh slice (rather
// than mutating in place) call this to install their result.
func (p *Parser) SetTokens(tokens []*token.Token) {
	p.tokens = tokens
	p.version++
}

// Version returns the monotonically increasing stream-version counter
// the metadata cache uses to decide whether to recompute.
func (p *Parser) Version() int { return p.version }

func (p *Parser) append(t *token.Token) {
	p.tokens = append(p.tokens, t)
}

func (p *Parser) consume(ll logicalLine) error {
	trimmedLeading := strings.TrimLeft(ll.Text, " \t")

	if p.state == stateInTarget {
		if ll.HasTab {
			return p.emitCommand(ll)
		}
		p.closeTarget(ll.Start - 1)
		p.state = stateDefault
	}

	if isEmpty(ll.Text) {
		// Blank lines survive as empty comment tokens so the renderer
		// keeps the author's paragraph breaks.
		p.append(token.NewComment("", ll.Start))
		return nil
	}
	if kw, rest, ok := classifyConditional(trimmedLeading); ok {
		return p.emitConditional(kw, rest, ll)
	}
	if names, depends, ok := classifyTarget(trimmedLeading); ok {
		return p.emitTargetStart(names, depends, ll)
	}
	if name, mod, rhs, ok := classifyVariable(trimmedLeading); ok {
		diag.Log(diag.Lexer, "variable %s at line %d", name, ll.Start)
		return p.emitVariable(name, mod, rhs, ll)
	}
	if strings.HasPrefix(trimmedLeading, "#") {
		p.append(token.NewComment(trimmedLeading, ll.Start))
		return nil
	}
	if strings.HasPrefix(trimmedLeading, ".") {
		// A dot line that classified as neither a known directive nor a
		// variable/target head is a directive outside the closed set.
		word := strings.Fields(trimmedLeading)[0]
		return perr.At(perr.UnknownConditional, ll.Start, "unrecognized directive %q", word)
	}
	// Lenient fallback: treat anything else as a free-floating comment
	// rather than failing the whole file over one odd line.
	p.append(token.NewComment(trimmedLeading, ll.Start))
	return nil
}

func (p *Parser) emitConditional(keyword, rest string, ll logicalLine) error {
	kind, ok := token.ParseConditionalKind(keyword)
	if !ok {
		return perr.At(perr.UnknownConditional, ll.Start, "unrecognized directive %q", keyword)
	}
	cond := token.NewConditional(kind)
	p.append(token.NewConditionalStart(cond, ll.Start))
	if rest != "" {
		atoms, _, err := tokenizeAtoms(rest, ll.Start)
		if err != nil {
			return err
		}
		data := strings.Join(atoms, " ")
		p.append(token.NewConditionalToken(cond, data, ll.Start))
	}
	p.append(token.NewConditionalEnd(cond, ll.End))
	return markSpecialInclude(p, cond, rest, ll)
}

// markSpecialInclude appends the PORT_MK/PORT_OPTIONS_MK/PORT_PRE_MK/
// PORT_POST_MK sentinel token right after a recognized bsd.port*.mk
// include, so later passes (sanitize-append-modifier in particular) can
// find the include boundary without re-parsing conditionals.
func markSpecialInclude(p *Parser, cond *token.Conditional, rest string, ll logicalLine) error {
	if cond.Kind != token.CondInclude && cond.Kind != token.CondSinclude && cond.Kind != token.CondIncludePosix {
		return nil
	}
	switch {
	case strings.Contains(rest, "bsd.port.options.mk"):
		p.append(token.New(token.PortOptionsMk, ll.End))
	case strings.Contains(rest, "bsd.port.pre.mk"):
		p.append(token.New(token.PortPreMk, ll.End))
	case strings.Contains(rest, "bsd.port.post.mk"):
		p.append(token.New(token.PortPostMk, ll.End))
	case strings.Contains(rest, "bsd.port.mk"):
		p.append(token.New(token.PortMk, ll.End))
	}
	return nil
}

func (p *Parser) emitTargetStart(names, depends []string, ll logicalLine) error {
	tg := token.NewTarget(names, depends)
	p.append(token.NewTargetStart(tg, ll.Start))
	p.curTgt = tg
	p.state = stateInTarget
	return nil
}

func (p *Parser) emitCommand(ll logicalLine) error {
	tg := p.curTgt
	p.append(token.NewTargetCommandStart(tg, ll.Start))
	cmd := strings.TrimLeft(ll.Text, "\t")
	if cmd != "" {
		p.append(token.NewTargetCommandToken(tg, cmd, ll.Start))
	}
	p.append(token.NewTargetCommandEnd(tg, ll.End))
	return nil
}

func (p *Parser) closeTarget(endLine int) {
	if p.curTgt == nil {
		return
	}
	p.append(token.NewTargetEnd(p.curTgt, endLine))
	p.curTgt = nil
}

func (p *Parser) emitVariable(name string, mod token.Modifier, rhs string, ll logicalLine) error {
	v := token.NewVariable(name, mod)
	p.append(token.NewVariableStart(v, ll.Start))
	atoms, inlineComment, err := tokenizeAtoms(rhs, ll.Start)
	if err != nil {
		return err
	}
	for _, a := range atoms {
		p.append(token.NewVariableToken(v, a, ll.Start))
	}
	if inlineComment != "" {
		if rules.PreserveEOLComment(inlineComment) {
			p.append(token.NewVariableToken(v, inlineComment, ll.Start))
		} else {
			p.tokens[len(p.tokens)-1].InlineComment = inlineComment
		}
	}
	p.append(token.NewVariableEnd(v, ll.End))
	return nil
}
