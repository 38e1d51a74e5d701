package edit

import (
	"strings"

	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/textutil"
	"foss.freebsd.org/portfmt/internal/token"
)

// SetVersion resolves the version variable (PORTVERSION if present, else
// DISTVERSION), splits a prefix of non-digit characters and a possible
// git-describe suffix ("-N-gHASH") out of newVersion, and merges the
// resulting DISTVERSIONPREFIX/DISTVERSION/DISTVERSIONSUFFIX assignments
// back in. The version variable emitted is always DISTVERSION: a
// Makefile that previously carried the legacy single-variable
// PORTVERSION loses it, since DISTVERSION plus its PREFIX/SUFFIX now
// carries the same information. A numeric PORTREVISION is dropped (via a
// shell-delete merge) whenever the resolved version actually changes.
func SetVersion(p *parser.Parser, tokens []*token.Token, cfg Config, newVersion string) ([]*token.Token, error) {
	_, oldValue, usesPortversion := resolveVersionVar(tokens)

	prefix, rest := splitVersionPrefix(newVersion)
	base, suffix := splitGitDescribeSuffix(rest)

	if oldValue == prefix+base && suffix == currentSuffix(tokens) {
		return tokens, nil
	}

	overlay := []*token.Token{}
	if prefix != "" {
		v := token.NewVariable("DISTVERSIONPREFIX", token.ModifierAssign)
		overlay = append(overlay, token.NewVariableStart(v, 0), token.NewVariableToken(v, prefix, 0), token.NewVariableEnd(v, 0))
	} else {
		overlay = append(overlay, deleteVariable("DISTVERSIONPREFIX")...)
	}

	vv := token.NewVariable("DISTVERSION", token.ModifierAssign)
	overlay = append(overlay, token.NewVariableStart(vv, 0), token.NewVariableToken(vv, base, 0), token.NewVariableEnd(vv, 0))

	if suffix != "" {
		sv := token.NewVariable("DISTVERSIONSUFFIX", token.ModifierAssign)
		overlay = append(overlay, token.NewVariableStart(sv, 0), token.NewVariableToken(sv, suffix, 0), token.NewVariableEnd(sv, 0))
	} else {
		overlay = append(overlay, deleteVariable("DISTVERSIONSUFFIX")...)
	}

	if usesPortversion {
		overlay = append(overlay, deleteVariable("PORTVERSION")...)
	}
	if hasNumericPortrevision(tokens) {
		overlay = append(overlay, deleteVariable("PORTREVISION")...)
	}

	return Merge(p, tokens, mergeAsShellDelete(cfg), overlay)
}

func mergeAsShellDelete(cfg Config) Config {
	cfg.Settings.MergeShellIsDelete = true
	return cfg
}

func deleteVariable(name string) []*token.Token {
	v := token.NewVariable(name, token.ModifierShell)
	return []*token.Token{token.NewVariableStart(v, 0), token.NewVariableEnd(v, 0)}
}

func resolveVersionVar(tokens []*token.Token) (name, value string, isPortversion bool) {
	if idx := findVariable(tokens, "PORTVERSION"); idx >= 0 {
		return "PORTVERSION", firstValue(tokens, idx), true
	}
	if idx := findVariable(tokens, "DISTVERSION"); idx >= 0 {
		return "DISTVERSION", firstValue(tokens, idx), false
	}
	return "PORTVERSION", "", true
}

func firstValue(tokens []*token.Token, start int) string {
	children, _ := token.VariableTokens(tokens, start)
	if len(children) == 0 {
		return ""
	}
	return tokens[children[0]].Data
}

func currentSuffix(tokens []*token.Token) string {
	if idx := findVariable(tokens, "DISTVERSIONSUFFIX"); idx >= 0 {
		return firstValue(tokens, idx)
	}
	return ""
}

func hasNumericPortrevision(tokens []*token.Token) bool {
	idx := findVariable(tokens, "PORTREVISION")
	if idx < 0 {
		return false
	}
	val := firstValue(tokens, idx)
	for _, r := range val {
		if r < '0' || r > '9' {
			return false
		}
	}
	return val != ""
}

// splitVersionPrefix splits off a leading run of non-digit characters.
func splitVersionPrefix(s string) (prefix, rest string) {
	m := textutil.FindSubmatch(textutil.PatternVersionPrefix, s)
	if len(m) == 3 {
		return m[1], m[2]
	}
	return "", s
}

// splitGitDescribeSuffix splits a trailing "-N-gHASH" suffix.
func splitGitDescribeSuffix(s string) (base, suffix string) {
	loc := textutil.FindSubmatch(textutil.PatternGitDescribeSuffix, s)
	if loc == nil {
		return s, ""
	}
	idx := strings.LastIndex(s, loc[0])
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx:]
}
