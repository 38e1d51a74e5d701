package edit

import (
	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/rules"
	"foss.freebsd.org/portfmt/internal/token"
)

// InsertVariable inserts a fresh VARIABLE_START/.../VARIABLE_END group for
// v (with the given value atoms) at the position rules.CompareOrder says
// it belongs: immediately after the last existing variable that sorts
// strictly before it, or before the first conditional/target if no such
// variable exists, or at the end of the stream otherwise. A blank comment
// token is inserted on either side when the insertion crosses a block
// boundary, so the renderer's paragraph-break blank line shows up in the
// right place.
func InsertVariable(p *parser.Parser, tokens []*token.Token, cfg Config, v *token.Variable, values []string) ([]*token.Token, error) {
	engine := cfg.engine()
	ctx := cfg.context(p, tokens)
	shebangfix, cabal := cfg.usesShebangfix(), cfg.usesCabal()

	newBlock := engine.LookupWithContext(ctx, v.Name, shebangfix, cabal).Block

	insertAt := -1
	lastVarEnd := -1
	for i, t := range tokens {
		if t.Kind == token.VariableStart && engine.CompareOrder(ctx, t.Variable, v, shebangfix, cabal) < 0 {
			_, end := token.VariableTokens(tokens, i)
			lastVarEnd = end
		}
	}
	if lastVarEnd >= 0 {
		insertAt = lastVarEnd + 1
	} else {
		for i, t := range tokens {
			if t.Kind == token.ConditionalStart || t.Kind == token.TargetStart {
				insertAt = i
				break
			}
		}
		if insertAt < 0 {
			insertAt = len(tokens)
		}
	}

	group := make([]*token.Token, 0, len(values)+2)
	group = append(group, token.NewVariableStart(v, 0))
	for _, val := range values {
		group = append(group, token.NewVariableToken(v, val, 0))
	}
	group = append(group, token.NewVariableEnd(v, 0))

	if blockOf(tokens, insertAt-1, engine, ctx, shebangfix, cabal) != newBlock {
		group = append([]*token.Token{token.NewComment("", 0)}, group...)
	}
	if nextStructuralBlockDiffers(tokens, insertAt, newBlock, engine, ctx, shebangfix, cabal) {
		group = append(group, token.NewComment("", 0))
	}

	out := make([]*token.Token, 0, len(tokens)+len(group))
	out = append(out, tokens[:insertAt]...)
	out = append(out, group...)
	out = append(out, tokens[insertAt:]...)
	return out, nil
}

// blockOf reports the variable-order block of the nearest preceding
// VARIABLE_START at or before idx, or BlockUnknown if idx is out of range
// or no such token exists.
func blockOf(tokens []*token.Token, idx int, engine *rules.Engine, ctx *rules.Context, shebangfix, cabal bool) token.BlockType {
	for i := idx; i >= 0; i-- {
		if tokens[i].Kind == token.VariableStart {
			return engine.LookupWithContext(ctx, tokens[i].Variable.Name, shebangfix, cabal).Block
		}
	}
	return token.BlockUnknown
}

// nextStructuralBlockDiffers reports whether the token at idx itself is a
// CONDITIONAL_START or TARGET_START; later tokens are not examined. Such a
// token always counts as a different block from newBlock, since a variable
// never shares its block with a conditional/target.
func nextStructuralBlockDiffers(tokens []*token.Token, idx int, newBlock token.BlockType, engine *rules.Engine, ctx *rules.Context, shebangfix, cabal bool) bool {
	if idx >= len(tokens) {
		return false
	}
	switch tokens[idx].Kind {
	case token.ConditionalStart, token.TargetStart:
		return true
	default:
		return false
	}
}
