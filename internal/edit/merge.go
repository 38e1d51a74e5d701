package edit

import (
	"sort"

	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/rules"
	"foss.freebsd.org/portfmt/internal/token"
)

// treatOptionalAsAssign unifies the two checks the upstream merge logic
// ran separately (one gating the outer per-variable switch, one gating
// value assignment) into the single predicate the project's design notes
// call for: OPTIONAL is folded into ASSIGN semantics iff the caller opted
// in via MergeOptionalLikeAssign.
func treatOptionalAsAssign(cfg Config) bool {
	return cfg.Settings.MergeOptionalLikeAssign
}

// Merge folds each variable of the overlay stream into tokens (the
// primary), per variable modifier:
//   - ASSIGN (and OPTIONAL when treatOptionalAsAssign): replace the
//     primary's value tokens, or insert the variable if absent.
//   - APPEND: append the overlay's tokens to the primary's, re-sorting if
//     the variable is sortable; insert if absent.
//   - SHELL: if MergeShellIsDelete, garbage-mark the primary's occurrence;
//     otherwise treated like ASSIGN.
// Inline comments between overlay variables are not carried over unless
// MergeCommentsUnchanged is set, in which case they attach to the next
// merged variable.
func Merge(p *parser.Parser, tokens []*token.Token, cfg Config, overlay []*token.Token) ([]*token.Token, error) {
	engine := cfg.engine()
	out := make([]*token.Token, len(tokens))
	copy(out, tokens)

	pendingComment := ""
	i := 0
	for i < len(overlay) {
		t := overlay[i]
		if t.Kind == token.Comment {
			if cfg.Settings.MergeCommentsUnchanged {
				pendingComment = t.Data
			}
			i++
			continue
		}
		if t.Kind != token.VariableStart {
			i++
			continue
		}
		v := t.Variable
		children, end := token.VariableTokens(overlay, i)
		values := make([]string, len(children))
		for j, idx := range children {
			values[j] = overlay[idx].Data
		}

		effectiveAssign := v.Modifier == token.ModifierAssign ||
			(v.Modifier == token.ModifierOptional && treatOptionalAsAssign(cfg))

		primaryIdx := findVariable(out, v.Name)
		switch {
		case v.Modifier == token.ModifierShell && cfg.Settings.MergeShellIsDelete:
			if primaryIdx >= 0 {
				garbageMarkVariable(out, primaryIdx)
			}
		case effectiveAssign:
			if primaryIdx < 0 {
				merged, err := InsertVariable(p, out, cfg, token.NewVariable(v.Name, token.ModifierAssign), values)
				if err != nil {
					return nil, err
				}
				out = merged
			} else {
				out = replaceValues(out, primaryIdx, values)
			}
		case v.Modifier == token.ModifierAppend:
			if primaryIdx < 0 {
				merged, err := InsertVariable(p, out, cfg, token.NewVariable(v.Name, token.ModifierAppend), values)
				if err != nil {
					return nil, err
				}
				out = merged
			} else {
				out = appendValues(out, primaryIdx, values)
				resortIfSortable(out, primaryIdx, engine, cfg)
			}
		default:
			if primaryIdx < 0 {
				merged, err := InsertVariable(p, out, cfg, token.NewVariable(v.Name, v.Modifier), values)
				if err != nil {
					return nil, err
				}
				out = merged
			} else {
				out = replaceValues(out, primaryIdx, values)
			}
		}

		if pendingComment != "" {
			out[primaryIdxOrLast(out, v.Name)].InlineComment = pendingComment
			pendingComment = ""
		}
		i = end + 1
	}
	return token.Compact(out), nil
}

func findVariable(tokens []*token.Token, name string) int {
	for i, t := range tokens {
		if t.Kind == token.VariableStart && t.Variable.Name == name {
			return i
		}
	}
	return -1
}

func primaryIdxOrLast(tokens []*token.Token, name string) int {
	idx := findVariable(tokens, name)
	if idx < 0 {
		return len(tokens) - 1
	}
	return idx
}

func garbageMarkVariable(tokens []*token.Token, start int) {
	v := tokens[start].Variable
	for i := start; i < len(tokens); i++ {
		tokens[i].Garbage = true
		if tokens[i].Kind == token.VariableEnd && tokens[i].Variable == v {
			break
		}
	}
}

func replaceValues(tokens []*token.Token, start int, values []string) []*token.Token {
	children, end := token.VariableTokens(tokens, start)
	v := tokens[start].Variable
	replacement := make([]*token.Token, 0, len(values))
	for _, val := range values {
		replacement = append(replacement, token.NewVariableToken(v, val, 0))
	}
	out := make([]*token.Token, 0, len(tokens)-len(children)+len(replacement))
	out = append(out, tokens[:start+1]...)
	out = append(out, replacement...)
	out = append(out, tokens[end:]...)
	return out
}

func appendValues(tokens []*token.Token, start int, values []string) []*token.Token {
	_, end := token.VariableTokens(tokens, start)
	v := tokens[start].Variable
	addition := make([]*token.Token, 0, len(values))
	for _, val := range values {
		addition = append(addition, token.NewVariableToken(v, val, 0))
	}
	out := make([]*token.Token, 0, len(tokens)+len(addition))
	out = append(out, tokens[:end]...)
	out = append(out, addition...)
	out = append(out, tokens[end:]...)
	return out
}

// resortIfSortable re-sorts a variable's tokens in place after an append,
// if the engine says the variable should be sorted.
func resortIfSortable(tokens []*token.Token, start int, engine *rules.Engine, cfg Config) {
	rule, _ := engine.Lookup(tokens[start].Variable.Name)
	if !engine.ShouldSort(rule, cfg.Settings.AlwaysSort) || engine.LeaveUnformatted(rule) {
		return
	}
	name := tokens[start].Variable.Name
	caseSensitive := engine.CaseSensitiveSort(rule)
	children, _ := token.VariableTokens(tokens, start)
	indices := append([]int(nil), children...)
	sort.SliceStable(indices, func(a, b int) bool {
		ta, tb := rtok(tokens[indices[a]]), rtok(tokens[indices[b]])
		return engine.CompareTokens(name, ta, tb, caseSensitive) < 0
	})
	values := make([]string, len(indices))
	for j, idx := range indices {
		values[j] = tokens[idx].Data
	}
	for j, idx := range children {
		tokens[idx].Data = values[j]
	}
}
