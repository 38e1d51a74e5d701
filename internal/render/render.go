// Package render implements the serializer (C7): it walks a finished
// token stream and writes the formatted Makefile text, computing goal
// columns and wrap points as it goes rather than annotating the stream.
package render

import (
	"bufio"
	"io"
	"strings"

	"foss.freebsd.org/portfmt/internal/cache"
	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/rules"
	"foss.freebsd.org/portfmt/internal/textutil"
	"foss.freebsd.org/portfmt/internal/token"
)

// Config carries the rules engine, declared-name cache, and formatting
// settings the renderer needs — the same ingredients an edit pass gets,
// minus the output sink, which renderers don't use.
type Config struct {
	Settings parser.Settings
	Engine   *rules.Engine
	Cache    *cache.Cache
}

func (cfg Config) engine() *rules.Engine {
	if cfg.Engine != nil {
		return cfg.Engine
	}
	return rules.Default()
}

// Render writes tokens to w as formatted Makefile text.
func Render(w io.Writer, p *parser.Parser, tokens []*token.Token, cfg Config) error {
	bw := bufio.NewWriter(w)
	goalcols := paragraphGoalcols(tokens, cfg)

	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch t.Kind {
		case token.VariableStart:
			n := renderVariable(bw, tokens, i, goalcols[i], cfg)
			i = n
		case token.Comment:
			bw.WriteString(t.Data)
			bw.WriteByte('\n')
			i++
		case token.ConditionalStart:
			i = renderConditional(bw, tokens, i)
		case token.TargetStart:
			i = renderTarget(bw, tokens, i, cfg)
		case token.PortMk, token.PortOptionsMk, token.PortPreMk, token.PortPostMk:
			i++
		default:
			i++
		}
	}
	return bw.Flush()
}

func renderConditional(w *bufio.Writer, tokens []*token.Token, start int) int {
	c := tokens[start].Conditional
	i := start + 1
	line := c.Kind.String()
	for i < len(tokens) && tokens[i].Kind == token.ConditionalToken && tokens[i].Conditional == c {
		if tokens[i].Data != "" {
			line += " " + tokens[i].Data
		}
		i++
	}
	w.WriteString(line)
	w.WriteByte('\n')
	if i < len(tokens) && tokens[i].Kind == token.ConditionalEnd && tokens[i].Conditional == c {
		i++
	}
	return i
}

func renderTarget(w *bufio.Writer, tokens []*token.Token, start int, cfg Config) int {
	tg := tokens[start].Target
	w.WriteString(strings.Join(tg.Names, " "))
	w.WriteByte(':')
	if len(tg.Depends) > 0 {
		w.WriteByte(' ')
		w.WriteString(strings.Join(tg.Depends, " "))
	}
	w.WriteByte('\n')

	i := start + 1
	for i < len(tokens) && tokens[i].Kind == token.TargetCommandStart && tokens[i].Target == tg {
		i = renderCommand(w, tokens, i, cfg)
	}
	if i < len(tokens) && tokens[i].Kind == token.TargetEnd && tokens[i].Target == tg {
		i++
	}
	return i
}

func renderCommand(w *bufio.Writer, tokens []*token.Token, start int, cfg Config) int {
	tg := tokens[start].Target
	i := start + 1
	var cmd string
	if i < len(tokens) && tokens[i].Kind == token.TargetCommandToken && tokens[i].Target == tg {
		cmd = tokens[i].Data
		i++
	}
	lines := wrapCommand(cmd, cfg.Settings.TargetCommandWrapcol)
	for idx, line := range lines {
		w.WriteByte('\t')
		if idx > 0 {
			w.WriteByte('\t')
		}
		w.WriteString(line)
		if idx < len(lines)-1 {
			w.WriteString(" \\")
		}
		w.WriteByte('\n')
	}
	if i < len(tokens) && tokens[i].Kind == token.TargetCommandEnd && tokens[i].Target == tg {
		i++
	}
	return i
}

// renderVariable writes one VARIABLE_START/.../VARIABLE_END group,
// returning the index just past VARIABLE_END.
func renderVariable(w *bufio.Writer, tokens []*token.Token, start, goalcol int, cfg Config) int {
	engine := cfg.engine()
	v := tokens[start].Variable
	rule, _ := engine.Lookup(v.Name)

	children, end := token.VariableTokens(tokens, start)
	var values []string
	for _, idx := range children {
		values = append(values, tokens[idx].Data)
	}
	if ic := inlineCommentOf(tokens, children); ic != "" {
		w.WriteString(ic)
		w.WriteByte('\n')
	}

	head := v.Name + v.Modifier.String()
	w.WriteString(head)

	if len(values) == 0 {
		w.WriteByte('\n')
		return end + 1
	}

	if engine.PrintAsNewlines(rule) {
		writeGoalcolPadTo(w, len(head), goalcol)
		for idx, val := range values {
			w.WriteString(val)
			if idx < len(values)-1 {
				w.WriteString(" \\\n")
				writeGoalcolPadTo(w, 0, goalcol)
			}
		}
		w.WriteByte('\n')
		return end + 1
	}

	writeGoalcolPadTo(w, len(head), goalcol)
	budget := 0
	if !engine.IgnoreWrapCol(rule) && !engine.LeaveUnformatted(rule) && cfg.Settings.Wrapcol > 0 {
		// Reserve two columns for the " \" continuation marker so no
		// rendered line exceeds the wrap column.
		budget = int(cfg.Settings.Wrapcol) - goalcol - 2
		if budget < 8 {
			budget = 8
		}
	}
	lb := &textutil.LineBuilder{Width: budget}
	for _, val := range values {
		lb.Add(val)
	}
	lines := lb.Lines()
	for idx, line := range lines {
		w.WriteString(line)
		if idx < len(lines)-1 {
			w.WriteString(" \\\n")
			writeGoalcolPadTo(w, 0, goalcol)
		}
	}
	w.WriteByte('\n')
	return end + 1
}

func inlineCommentOf(tokens []*token.Token, children []int) string {
	for _, idx := range children {
		if tokens[idx].InlineComment != "" {
			return tokens[idx].InlineComment
		}
	}
	if len(children) > 0 {
		return tokens[children[0]].InlineComment
	}
	return ""
}

// writeGoalcolPadTo writes enough tabs to advance from column `from` to
// column `to` (both multiples of 8 in practice), always at least one tab.
func writeGoalcolPadTo(w *bufio.Writer, from, to int) {
	pos := from
	wrote := false
	for pos < to {
		w.WriteByte('\t')
		pos = (pos/8 + 1) * 8
		wrote = true
	}
	if !wrote {
		w.WriteByte('\t')
	}
}
