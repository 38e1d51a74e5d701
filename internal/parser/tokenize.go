package parser

import (
	"strings"

	shlex "github.com/anmitsu/go-shlex"

	"foss.freebsd.org/portfmt/internal/perr"
)

// tokenizeAtoms splits a right-hand side into whitespace-separated atoms,
// treating "…", '…', `…`, and ${…} balanced groups as single atoms, and
// returning any trailing "#..." comment as inlineComment; the caller
// (emitVariable) decides whether it is a preserved sentinel spelling. Atoms keep
// their source spelling, quotes and escapes included, so the renderer
// re-emits them byte for byte.
//
// Quote/escape validation on each bounded atom reuses
// github.com/anmitsu/go-shlex's Split, the same library the teacher uses
// to turn a DSL command line into argv-style words (surgeon/inner.go's
// runProcess, surgeon/reposurgeon.go's Do* handlers) — ${…} nesting has no
// shlex equivalent, so it is bounded by hand and skipped over before the
// rest of the atom is handed to shlex.
func tokenizeAtoms(rhs string, line int) (atoms []string, inlineComment string, err error) {
	i := 0
	n := len(rhs)
	for i < n {
		for i < n && (rhs[i] == ' ' || rhs[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		if rhs[i] == '#' {
			inlineComment = strings.TrimRight(rhs[i:], " \t")
			break
		}
		start := i
		var buf strings.Builder
		for i < n && rhs[i] != ' ' && rhs[i] != '\t' {
			switch rhs[i] {
			case '$':
				if i+1 < n && rhs[i+1] == '{' {
					j, jerr := findBraceEnd(rhs, i+1)
					if jerr != nil {
						return nil, "", perr.At(perr.UnspecifiedTokenizerError, line, "unbalanced ${...} starting at column %d", start)
					}
					buf.WriteString(rhs[i : j+1])
					i = j + 1
					continue
				}
				buf.WriteByte(rhs[i])
				i++
			case '"', '\'', '`':
				j, jerr := findQuoteEnd(rhs, i)
				if jerr != nil {
					return nil, "", perr.At(perr.UnspecifiedTokenizerError, line, "unterminated quote starting at column %d", start)
				}
				buf.WriteString(rhs[i : j+1])
				i = j + 1
			case '#':
				// a '#' that isn't leading whitespace-delimited still
				// starts a comment, per make's rules.
				goto wordDone
			default:
				buf.WriteByte(rhs[i])
				i++
			}
		}
	wordDone:
		atom := buf.String()
		if verr := validateQuoting(atom); verr != nil {
			return nil, "", perr.At(perr.UnspecifiedTokenizerError, line, "malformed quoting in %q", atom)
		}
		atoms = append(atoms, atom)
		if i < n && rhs[i] == '#' {
			inlineComment = strings.TrimRight(rhs[i:], " \t")
			break
		}
	}
	return atoms, inlineComment, nil
}

// validateQuoting runs one already-whitespace-bounded atom through shlex
// to reject quoting that findQuoteEnd's balance check alone cannot catch
// (a dangling escape at end of atom, a quote reopened by an escaped
// closer). ${…} groups are exempt: findBraceEnd already isolated them as
// opaque spans, and shlex has no notion of their nesting.
func validateQuoting(atom string) error {
	if !strings.ContainsAny(atom, `"'`+`\`) {
		return nil
	}
	if strings.Contains(atom, "${") {
		return nil
	}
	_, err := shlex.Split(atom, true)
	return err
}

func findBraceEnd(s string, openIdx int) (int, error) {
	depth := 0
	for i := openIdx; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, errUnbalanced
}

func findQuoteEnd(s string, openIdx int) (int, error) {
	q := s[openIdx]
	for i := openIdx + 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == q {
			return i, nil
		}
	}
	return 0, errUnbalanced
}

var errUnbalanced = unbalancedError{}

type unbalancedError struct{}

func (unbalancedError) Error() string { return "unbalanced quote or brace" }
