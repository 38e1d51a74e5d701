package edit

import (
	"strings"

	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/token"
)

// DedupTokens removes duplicate VARIABLE_TOKEN atoms (by lexical equality)
// from each variable, except where the engine says to skip dedup for that
// variable. USES gets the additional "name:args" collapse: only the first
// "name:..." atom for a given name survives, regardless of its args.
func DedupTokens(p *parser.Parser, tokens []*token.Token, cfg Config) ([]*token.Token, error) {
	engine := cfg.engine()

	out := make([]*token.Token, len(tokens))
	copy(out, tokens)

	for i, t := range out {
		if t.Kind != token.VariableStart {
			continue
		}
		rule, _ := engine.Lookup(t.Variable.Name)
		if engine.SkipDedup(rule) {
			continue
		}
		children, _ := token.VariableTokens(out, i)
		seenExact := map[string]bool{}
		seenUsesName := map[string]bool{}
		isUses := t.Variable.Name == "USES" || t.Variable.Name == "USE"
		for _, idx := range children {
			data := out[idx].Data
			if strings.HasPrefix(data, "#") {
				continue // preserved inline comments are never deduped
			}
			if isUses {
				name, _, hasArgs := strings.Cut(data, ":")
				if hasArgs {
					if seenUsesName[name] {
						out[idx].Garbage = true
						continue
					}
					seenUsesName[name] = true
					continue
				}
			}
			if seenExact[data] {
				out[idx].Garbage = true
				continue
			}
			seenExact[data] = true
		}
	}
	return token.Compact(out), nil
}
