package render

import (
	"foss.freebsd.org/portfmt/internal/rules"
	"foss.freebsd.org/portfmt/internal/token"
)

// paragraphGoalcols computes, for every VARIABLE_START index, the column
// (a multiple of 8) its "=" should render at. A paragraph is a maximal
// run of VARIABLE_START/.../VARIABLE_END groups interrupted only by
// non-empty COMMENT tokens; a blank line (an empty comment) or any other
// token (conditional, target, a bsd.port*.mk sentinel) breaks the
// paragraph. Variables the engine marks SkipGoalcol get their own
// IndentGoalcol instead of sharing the paragraph's moving goal column.
//
// moving_goalcol is the plain max of each member's IndentGoalcol with no
// artificial floor: an earlier draft of this rule floored every paragraph
// to column 16, but that contradicts a single short variable (e.g. a
// lone "USES=" line) rendering with just one separator tab — the worked
// behavior this formatter actually follows.
func paragraphGoalcols(tokens []*token.Token, cfg Config) map[int]int {
	engine := cfg.engine()
	goalcols := make(map[int]int)

	i := 0
	for i < len(tokens) {
		var varStarts []int
		j := i
		for j < len(tokens) {
			switch tokens[j].Kind {
			case token.Comment:
				// An empty comment is a blank line: it ends the
				// paragraph. Real comments are paragraph-internal.
				if tokens[j].Data == "" {
					if len(varStarts) > 0 {
						break
					}
					j++
					continue
				}
				j++
				continue
			case token.VariableStart:
				varStarts = append(varStarts, j)
				_, end := token.VariableTokens(tokens, j)
				j = end + 1
				continue
			}
			break
		}

		moving := 8
		for _, vs := range varStarts {
			rule, _ := engine.Lookup(tokens[vs].Variable.Name)
			if engine.SkipGoalcol(rule) {
				continue
			}
			if ig := rules.IndentGoalcol(tokens[vs].Variable); ig > moving {
				moving = ig
			}
		}
		for _, vs := range varStarts {
			rule, _ := engine.Lookup(tokens[vs].Variable.Name)
			if engine.SkipGoalcol(rule) {
				goalcols[vs] = rules.IndentGoalcol(tokens[vs].Variable)
			} else {
				goalcols[vs] = moving
			}
		}

		if j == i {
			i++
		} else {
			i = j
		}
	}
	return goalcols
}
