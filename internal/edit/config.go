// Package edit implements the edit pipeline (C6): a set of pure functions
// that each take the current token stream and a typed config record and
// return a new stream, mirroring the teacher's plugin shape where every
// Do* handler receives the same (command line, parsed args) and returns a
// status rather than reaching into global state.
package edit

import (
	"foss.freebsd.org/portfmt/internal/cache"
	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/rules"
	"foss.freebsd.org/portfmt/internal/token"
)

// Pass is the signature every edit pass shares. A pass must not partially
// mutate its input on error: build the result into a fresh slice (or
// garbage-mark freely) and only return it alongside a nil error.
type Pass func(p *parser.Parser, tokens []*token.Token, cfg Config) ([]*token.Token, error)

// Config carries everything a pass needs beyond the stream itself: the
// formatting settings, the shared rules engine, and the metadata cache for
// the file currently being edited.
type Config struct {
	Settings parser.Settings
	Engine   *rules.Engine
	Cache    *cache.Cache

	// Sink receives diagnostics from the output/lint passes, which never
	// mutate the stream. A nil Sink discards them.
	Sink Sink
}

// Sink is the destination for a lint or output pass, matching the
// teacher's respond/logit split between console-facing output and
// log-facing diagnostics: output passes call Emit, lint passes call Diag.
type Sink interface {
	Emit(line string)
	Diag(line string)
}

// context builds the rules.Context a pass needs from cfg, refreshing the
// cache against the current stream first so declared-name membership
// reflects tokens, not a stale scan.
func (cfg Config) context(p *parser.Parser, tokens []*token.Token) *rules.Context {
	if cfg.Cache != nil {
		cfg.Cache.Refresh(tokens, p.Version())
	}
	var declared rules.DeclaredSets
	if cfg.Cache != nil {
		declared = cfg.Cache
	}
	return rules.NewContext(cfg.Settings.AllowFuzzyMatching, declared)
}

func (cfg Config) engine() *rules.Engine {
	if cfg.Engine != nil {
		return cfg.Engine
	}
	return rules.Default()
}

func (cfg Config) usesShebangfix() bool {
	return cfg.Cache != nil && cfg.Cache.HasUses("shebangfix")
}

func (cfg Config) usesCabal() bool {
	return cfg.Cache != nil && cfg.Cache.HasUses("cabal")
}
