package edit

import (
	"fmt"
	"strings"

	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/token"
)

// discardSink implements Sink by dropping everything; used when a caller
// runs an output/lint pass without caring about its result.
type discardSink struct{}

func (discardSink) Emit(string) {}
func (discardSink) Diag(string) {}

func sinkOf(cfg Config) Sink {
	if cfg.Sink == nil {
		return discardSink{}
	}
	return cfg.Sink
}

// OutputVariableValue writes the space-joined value of name to the sink,
// one line, or nothing if the variable is absent.
func OutputVariableValue(p *parser.Parser, tokens []*token.Token, cfg Config, name string) ([]*token.Token, error) {
	idx := findVariable(tokens, name)
	if idx < 0 {
		return tokens, nil
	}
	children, _ := token.VariableTokens(tokens, idx)
	values := make([]string, 0, len(children))
	for _, c := range children {
		if strings.HasPrefix(tokens[c].Data, "#") {
			continue
		}
		values = append(values, tokens[c].Data)
	}
	sinkOf(cfg).Emit(strings.Join(values, " "))
	return tokens, nil
}

// OutputUnknownVariables lists every variable that fell into BlockUnknown
// without a special-variables table entry.
func OutputUnknownVariables(p *parser.Parser, tokens []*token.Token, cfg Config) ([]*token.Token, error) {
	engine := cfg.engine()
	sink := sinkOf(cfg)
	seen := map[string]bool{}
	for _, t := range tokens {
		if t.Kind != token.VariableStart {
			continue
		}
		if _, ok := engine.Lookup(t.Variable.Name); ok {
			continue
		}
		if seen[t.Variable.Name] {
			continue
		}
		seen[t.Variable.Name] = true
		sink.Emit(t.Variable.Name)
	}
	return tokens, nil
}

// specialSources are build targets that are never user-written and are
// always excluded from the unknown-targets report.
var specialSources = map[string]bool{
	".PHONY": true, ".DEFAULT": true, ".SUFFIXES": true,
}

// OutputUnknownTargets lists every target name that is not in the
// target-order table, is not a special source, is not reachable by
// following dependencies from a table target, and is not named in
// postPlistTargets (the caller-provided post-plist closure, normally
// cfg.Cache.PostPlistTargets()).
func OutputUnknownTargets(p *parser.Parser, tokens []*token.Token, cfg Config, postPlistTargets []string) ([]*token.Token, error) {
	engine := cfg.engine()
	sink := sinkOf(cfg)

	postPlist := map[string]bool{}
	for _, n := range postPlistTargets {
		postPlist[n] = true
	}

	reachable := map[string]bool{}
	allDeps := map[string][]string{}
	var roots []string
	for _, t := range tokens {
		if t.Kind != token.TargetStart {
			continue
		}
		name := strings.Join(t.Target.Names, " ")
		allDeps[name] = t.Target.Depends
		if engine.TargetIndex(name) < len(engine.Targets()) {
			roots = append(roots, name)
		}
	}
	queue := append([]string{}, roots...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if reachable[n] {
			continue
		}
		reachable[n] = true
		queue = append(queue, allDeps[n]...)
	}

	seen := map[string]bool{}
	for _, t := range tokens {
		if t.Kind != token.TargetStart {
			continue
		}
		for _, name := range t.Target.Names {
			if specialSources[name] || postPlist[name] || reachable[name] {
				continue
			}
			if engine.TargetIndex(name) < len(engine.Targets()) {
				continue
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			sink.Emit(name)
		}
	}
	return tokens, nil
}

// LintOrder reports every adjacent pair of VARIABLE_START tokens (outside
// conditionals) whose relative order violates CompareOrder.
func LintOrder(p *parser.Parser, tokens []*token.Token, cfg Config) ([]*token.Token, error) {
	engine := cfg.engine()
	ctx := cfg.context(p, tokens)
	shebangfix, cabal := cfg.usesShebangfix(), cfg.usesCabal()
	sink := sinkOf(cfg)

	depth := 0
	var prev *token.Token
	for _, t := range tokens {
		switch t.Kind {
		case token.ConditionalStart:
			depth++
		case token.ConditionalEnd:
			depth--
		case token.VariableStart:
			if depth == 0 && prev != nil {
				if engine.CompareOrder(ctx, prev.Variable, t.Variable, shebangfix, cabal) > 0 {
					sink.Diag(fmt.Sprintf("%s out of order (line %d): should come before %s", t.Variable.Name, t.Lines.Start, prev.Variable.Name))
				}
			}
			if depth == 0 {
				prev = t
			}
		}
	}
	return tokens, nil
}

// LintClones reports variables declared more than once at the same
// nesting depth (outside conditionals), a common cut-and-paste mistake.
func LintClones(p *parser.Parser, tokens []*token.Token, cfg Config) ([]*token.Token, error) {
	sink := sinkOf(cfg)
	depth := 0
	seen := map[string]int{}
	for _, t := range tokens {
		switch t.Kind {
		case token.ConditionalStart:
			depth++
		case token.ConditionalEnd:
			depth--
		case token.VariableStart:
			if depth != 0 {
				continue
			}
			if line, ok := seen[t.Variable.Name]; ok {
				sink.Diag(fmt.Sprintf("%s duplicated (line %d, first seen line %d)", t.Variable.Name, t.Lines.Start, line))
				continue
			}
			seen[t.Variable.Name] = t.Lines.Start
		}
	}
	return tokens, nil
}

// LintCommentedPortrevision flags a "#PORTREVISION=" style comment, which
// usually means a maintainer forgot to either remove it or uncomment it.
func LintCommentedPortrevision(p *parser.Parser, tokens []*token.Token, cfg Config) ([]*token.Token, error) {
	sink := sinkOf(cfg)
	for _, t := range tokens {
		if t.Kind != token.Comment {
			continue
		}
		body := strings.TrimSpace(strings.TrimPrefix(t.Data, "#"))
		if strings.HasPrefix(body, "PORTREVISION") {
			sink.Diag(fmt.Sprintf("commented-out PORTREVISION (line %d)", t.Lines.Start))
		}
	}
	return tokens, nil
}

// LintBsdPort flags a Makefile that never includes bsd.port.mk (directly
// or via bsd.port.pre.mk + bsd.port.post.mk), which means it isn't a
// complete port recipe.
func LintBsdPort(p *parser.Parser, tokens []*token.Token, cfg Config) ([]*token.Token, error) {
	sink := sinkOf(cfg)
	sawPre, sawPost, sawMk := false, false, false
	for _, t := range tokens {
		switch t.Kind {
		case token.PortPreMk:
			sawPre = true
		case token.PortPostMk:
			sawPost = true
		case token.PortMk:
			sawMk = true
		}
	}
	if !sawMk && !(sawPre && sawPost) {
		sink.Diag("missing .include <bsd.port.mk> (or bsd.port.pre.mk + bsd.port.post.mk)")
	}
	return tokens, nil
}
