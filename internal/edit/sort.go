package edit

import (
	"sort"
	"strings"

	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/rules"
	"foss.freebsd.org/portfmt/internal/token"
)

// SortTokens stable-sorts each variable's VARIABLE_TOKEN atoms by
// rules.CompareTokens, skipping variables the engine says not to sort or
// that must render exactly as written.
func SortTokens(p *parser.Parser, tokens []*token.Token, cfg Config) ([]*token.Token, error) {
	engine := cfg.engine()
	ctx := cfg.context(p, tokens)
	shebangfix, cabal := cfg.usesShebangfix(), cfg.usesCabal()

	out := make([]*token.Token, len(tokens))
	copy(out, tokens)

	for i, t := range out {
		if t.Kind != token.VariableStart {
			continue
		}
		rule := engine.LookupWithContext(ctx, t.Variable.Name, shebangfix, cabal)
		if !engine.ShouldSort(rule, cfg.Settings.AlwaysSort) || engine.LeaveUnformatted(rule) {
			continue
		}
		children, _ := token.VariableTokens(out, i)
		if len(children) < 2 {
			continue
		}
		caseSensitive := engine.CaseSensitiveSort(rule)
		indices := append([]int(nil), children...)
		sort.SliceStable(indices, func(a, b int) bool {
			ta, tb := rtok(out[indices[a]]), rtok(out[indices[b]])
			return engine.CompareTokens(t.Variable.Name, ta, tb, caseSensitive) < 0
		})
		values := make([]string, len(indices))
		for j, idx := range indices {
			values[j] = out[idx].Data
		}
		for j, idx := range children {
			out[idx].Data = values[j]
		}
	}
	return out, nil
}

// rtok adapts a VARIABLE_TOKEN to the narrow view rules.CompareTokens
// needs. A preserved end-of-line comment ("#", "# empty", ...) is itself
// stored as a VARIABLE_TOKEN whose Data starts with "#"; it must always
// sort last within its variable.
func rtok(t *token.Token) *rules.Token {
	return &rules.Token{Data: t.Data, IsComment: strings.HasPrefix(t.Data, "#")}
}
