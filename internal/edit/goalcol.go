package edit

import (
	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/token"
)

// WrapLines is registered under the same name the upstream pipeline uses
// for its goal-column computation, but in this implementation goal-column
// and wrap-column placement are purely rendering concerns: they depend on
// paragraph grouping and column arithmetic that only matters at the
// moment of serialization, and recomputing them into the token stream
// would just be thrown away by the next edit pass that reorders or dedups
// a variable. internal/render computes paragraphs and goal columns
// directly from the same rules.IndentGoalcol/SkipGoalcol queries this
// pass would have used. The pass stays in the registry, as a no-op, so
// pipelines that name it explicitly (matching the upstream tool's
// argument list) still resolve.
func WrapLines(p *parser.Parser, tokens []*token.Token, cfg Config) ([]*token.Token, error) {
	return tokens, nil
}
