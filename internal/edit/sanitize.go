package edit

import (
	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/token"
)

// preserveAppendFor variables keep "+=" even on their first occurrence in
// a pre-include block, per spec.md's documented CFLAGS/CXXFLAGS/LDFLAGS
// exception.
var preserveAppendFor = map[string]bool{
	"CFLAGS":   true,
	"CXXFLAGS": true,
	"LDFLAGS":  true,
}

// SanitizeAppendModifier rewrites "VAR +=" to "VAR =" on the first
// occurrence of each variable name within a contiguous block that precedes
// the first bsd.port*.mk include, leaving every subsequent "+=" for that
// same name untouched. This "first occurrence only" behavior is
// intentional (see the project's resolution of the upstream open
// question): ports rely on the second occurrence actually appending.
func SanitizeAppendModifier(p *parser.Parser, tokens []*token.Token, cfg Config) ([]*token.Token, error) {
	out := make([]*token.Token, len(tokens))
	copy(out, tokens)

	seen := map[string]bool{}
	for _, t := range out {
		if isPortMkSentinel(t.Kind) {
			break // only the block before the first bsd.port*.mk include is sanitized
		}
		if t.Kind != token.VariableStart {
			continue
		}
		v := t.Variable
		if v.Modifier != token.ModifierAppend || preserveAppendFor[v.Name] {
			continue
		}
		if seen[v.Name] {
			continue
		}
		seen[v.Name] = true
		v.Modifier = token.ModifierAssign
	}
	return out, nil
}

func isPortMkSentinel(k token.Kind) bool {
	switch k {
	case token.PortMk, token.PortOptionsMk, token.PortPreMk, token.PortPostMk:
		return true
	default:
		return false
	}
}
