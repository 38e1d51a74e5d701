// Package registry implements the plugin registry (C9): a name->pass map
// usable concurrently by any number of independently-driven Parser
// instances, each single-threaded on its own. Grounded on the teacher's
// own note in surgeon/svnread.go about reaching for "a concurrent-map
// implementation that has per-bucket locking" when a shared table is read
// and written from multiple goroutines — here that table is the
// registry itself rather than an SVN node cache.
package registry

import (
	cmap "github.com/orcaman/concurrent-map"

	"foss.freebsd.org/portfmt/internal/edit"
)

var passes = cmap.New()

// Register adds (or replaces) a named pass. The core passes are
// registered by this package's init().
func Register(name string, pass edit.Pass) {
	passes.Set(name, pass)
}

// Lookup resolves a pass by name.
func Lookup(name string) (edit.Pass, bool) {
	v, ok := passes.Get(name)
	if !ok {
		return nil, false
	}
	return v.(edit.Pass), true
}

// Names returns every registered pass name, in no particular order.
func Names() []string {
	keys := make([]string, 0, passes.Count())
	for item := range passes.IterBuffered() {
		keys = append(keys, item.Key)
	}
	return keys
}

func init() {
	Register("sort-tokens", edit.SortTokens)
	Register("wrap-lines", edit.WrapLines)
	Register("goalcol", edit.WrapLines)
	Register("dedup-tokens", edit.DedupTokens)
	Register("sanitize-append-modifier", edit.SanitizeAppendModifier)
	Register("output-unknown-variables", edit.OutputUnknownVariables)
	Register("lint-order", edit.LintOrder)
	Register("lint-clones", edit.LintClones)
	Register("lint-commented-portrevision", edit.LintCommentedPortrevision)
	Register("lint-bsd-port", edit.LintBsdPort)
}
