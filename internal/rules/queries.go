package rules

import "foss.freebsd.org/portfmt/internal/token"

// IgnoreWrapCol reports whether a variable's value should never be
// wrapped at the configured wrap column.
func (e *Engine) IgnoreWrapCol(rule VariableRule) bool {
	return rule.Flags.has(FlagIgnoreWrapcol)
}

// IndentGoalcol computes the column (a multiple of 8) at which this
// variable's own assignment would align if it alone determined the
// paragraph's goal column.
func IndentGoalcol(v *token.Variable) int {
	length := len(v.Name) + 1
	if v.Modifier == token.ModifierAssign {
		length++
	} else {
		length += 2
	}
	if (length+1)%8 == 0 {
		length++
	}
	return ((length + 7) / 8) * 8
}

// CaseSensitiveSort reports whether token comparison for this variable
// should be case-sensitive rather than case-insensitive.
func (e *Engine) CaseSensitiveSort(rule VariableRule) bool {
	return rule.Flags.has(FlagCaseSensitiveSort)
}

// LeaveUnformatted reports whether a variable's value must be rendered
// exactly as tokenized, with no sorting or rewrapping.
func (e *Engine) LeaveUnformatted(rule VariableRule) bool {
	return rule.Flags.has(FlagLeaveUnformatted)
}

// ShouldSort reports whether this variable's tokens should be sorted:
// either the rule declares FlagSorted, or the caller forced sorting on
// for every sortable variable via ParserSettings.AlwaysSort.
func (e *Engine) ShouldSort(rule VariableRule, alwaysSort bool) bool {
	if rule.Flags.has(FlagNotComparable) || rule.Flags.has(FlagLeaveUnformatted) {
		return false
	}
	return rule.Flags.has(FlagSorted) || alwaysSort
}

// PrintAsNewlines reports whether each token should render on its own
// continuation line.
func (e *Engine) PrintAsNewlines(rule VariableRule) bool {
	return rule.Flags.has(FlagPrintAsNewlines)
}

// SkipDedup reports whether the dedup pass should leave this variable's
// tokens untouched.
func (e *Engine) SkipDedup(rule VariableRule) bool {
	return !rule.Flags.has(FlagDedup) && !isDedupModifier(rule)
}

// isDedupModifier exists so that the APPEND/USES dedup rule in spec.md
// §4.4 ("skip if SkipDedup(var)") can be expressed purely off rule flags:
// FlagDedup marks a variable as always subject to dedup regardless of its
// block (this is how USES itself, and any special-cased variable, opts in).
func isDedupModifier(rule VariableRule) bool {
	return rule.Flags.has(FlagDedup)
}

// SkipGoalcol reports whether this variable's "=" should not participate
// in a paragraph's shared goal column (it gets its own IndentGoalcol
// instead).
func (e *Engine) SkipGoalcol(rule VariableRule) bool {
	return rule.Flags.has(FlagSkipGoalcol) || rule.Flags.has(FlagLeaveUnformatted)
}

// PreserveEOLComment reports whether a trailing "#" comment on a variable
// line is one of the four sentinel forms that should stay inline rather
// than being demoted to a comment-above-the-variable token.
func PreserveEOLComment(commentText string) bool {
	switch commentText {
	case "#", "# empty", "#none", "# none":
		return true
	default:
		return false
	}
}
