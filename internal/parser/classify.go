package parser

import (
	"strings"

	"foss.freebsd.org/portfmt/internal/token"
)

// conditionalKeywords lists the directive keywords. A keyword matches only
// when the line equals it or continues with a space or tab, so ".elifdef"
// is never read as ".elif" + "def". All directives start at column zero per spec.md §6.
var conditionalKeywordsByLength = func() []string {
	kws := []string{
		".elifndef", ".elifmake", ".ifnmake", ".elifdef", ".ifndef",
		".export-env", ".export-literal", ".unexport-env",
		".ifmake", ".endfor", ".elif", ".else", ".endif",
		".sinclude", ".include", ".export", ".unexport", ".undef",
		".error", ".warning", ".info", ".ifdef", ".if", ".for",
		"include",
	}
	return kws
}()

func classifyConditional(raw string) (keyword, rest string, ok bool) {
	if raw == "" {
		return "", "", false
	}
	if raw[0] != '.' && !strings.HasPrefix(raw, "include") {
		return "", "", false
	}
	for _, kw := range conditionalKeywordsByLength {
		if raw == kw {
			return kw, "", true
		}
		if strings.HasPrefix(raw, kw) && len(raw) > len(kw) && (raw[len(kw)] == ' ' || raw[len(kw)] == '\t') {
			return kw, strings.TrimSpace(raw[len(kw):]), true
		}
	}
	return "", "", false
}

// classifyVariable splits "NAME<ws>MOD<ws>RHS" into its three parts. Only
// the four two-character modifiers and plain "=" are recognized.
func classifyVariable(raw string) (name string, mod token.Modifier, rhs string, ok bool) {
	trimmed := strings.TrimLeft(raw, " \t")
	for _, spelling := range []string{"+=", ":=", "?=", "!=", "="} {
		idx := strings.Index(trimmed, spelling)
		if idx < 0 {
			continue
		}
		candidateName := strings.TrimSpace(trimmed[:idx])
		if candidateName == "" || !looksLikeVariableName(candidateName) {
			continue
		}
		m, okm := token.ParseModifier(spelling)
		if !okm {
			continue
		}
		return candidateName, m, trimmed[idx+len(spelling):], true
	}
	return "", token.ModifierAssign, "", false
}

func looksLikeVariableName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.' || r == '$' || r == '{' || r == '}':
		default:
			return false
		}
	}
	return true
}

// classifyTarget recognizes "names: deps" (but never "name:= ..." which is
// the EXPAND variable modifier, nor an assignment such as "NAME=a:b" whose
// value contains a colon, nor a bare comment).
func classifyTarget(raw string) (names, depends []string, ok bool) {
	trimmed := strings.TrimLeft(raw, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil, false
	}
	idx := strings.IndexByte(trimmed, ':')
	if idx < 0 {
		return nil, nil, false
	}
	if idx+1 < len(trimmed) && trimmed[idx+1] == '=' {
		return nil, nil, false // ":=" is EXPAND, not a target head
	}
	if strings.IndexByte(trimmed[:idx], '=') >= 0 {
		return nil, nil, false // an assignment whose value contains a colon
	}
	lhs := strings.TrimSpace(trimmed[:idx])
	if lhs == "" {
		return nil, nil, false
	}
	names = strings.Fields(lhs)
	depends = strings.Fields(trimmed[idx+1:])
	return names, depends, true
}

func isEmpty(raw string) bool {
	return strings.TrimSpace(raw) == ""
}
