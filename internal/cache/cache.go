// Package cache implements the metadata cache (C8): a handful of sets
// derived from a single forward scan of a token stream, recomputed only
// when the owning parser's stream version has advanced since the last
// read.
package cache

import (
	"strings"

	"foss.freebsd.org/portfmt/internal/textutil"
	"foss.freebsd.org/portfmt/internal/token"
)

// Cache holds the lazily (re)computed metadata sets an edit pass needs.
// Each field is recomputed together on Refresh, tagged with the stream
// version at which it was computed; Refresh is a no-op if the version
// hasn't advanced, per the Design Notes' "Each cache key stores a
// monotonically increasing stream version" rule (simplified here to one
// version for the whole cache rather than one per key, since every key is
// produced by the same single forward scan anyway).
type Cache struct {
	version int
	valid   bool

	uses             *textutil.HashOrderedSet
	options          *textutil.HashOrderedSet
	optionGroups     *textutil.HashOrderedSet
	flavors          *textutil.HashOrderedSet
	licenses         *textutil.HashOrderedSet
	shebangLangs     *textutil.HashOrderedSet
	cabalExecutables *textutil.HashOrderedSet
	subpackages      *textutil.HashOrderedSet
	postPlistTargets *textutil.HashOrderedSet
	masterdir        bool
}

// New builds an empty, not-yet-computed Cache. Every set starts empty so
// membership queries are valid (and all negative) before the first Refresh.
func New() *Cache {
	return &Cache{
		uses:             textutil.NewHashOrderedSet(),
		options:          textutil.NewHashOrderedSet(),
		optionGroups:     textutil.NewHashOrderedSet(),
		flavors:          textutil.NewHashOrderedSet(),
		licenses:         textutil.NewHashOrderedSet(),
		shebangLangs:     textutil.NewHashOrderedSet(),
		cabalExecutables: textutil.NewHashOrderedSet(),
		subpackages:      textutil.NewHashOrderedSet(),
		postPlistTargets: textutil.NewHashOrderedSet(),
	}
}

// Refresh recomputes every set from tokens if version differs from the
// last computed version (or nothing has been computed yet).
func (c *Cache) Refresh(tokens []*token.Token, version int) {
	if c.valid && c.version == version {
		return
	}
	c.uses = textutil.NewHashOrderedSet()
	c.options = textutil.NewHashOrderedSet()
	c.optionGroups = textutil.NewHashOrderedSet()
	c.flavors = textutil.NewHashOrderedSet()
	c.licenses = textutil.NewHashOrderedSet()
	c.shebangLangs = textutil.NewHashOrderedSet()
	c.cabalExecutables = textutil.NewHashOrderedSet()
	c.subpackages = textutil.NewHashOrderedSet()
	c.postPlistTargets = textutil.NewHashOrderedSet()
	c.masterdir = false

	depGraph := map[string][]string{}
	var postPlistDirect []string

	skipDepth := 0
	var curVar *token.Variable
	for _, t := range tokens {
		if isSkippedConditional(t, &skipDepth) {
			continue
		}
		if skipDepth > 0 {
			continue
		}
		switch t.Kind {
		case token.VariableStart:
			curVar = t.Variable
			if curVar.Name == "MASTERDIR" {
				c.masterdir = true
			}
			if dotIdx := strings.IndexByte(curVar.Name, '.'); dotIdx >= 0 {
				c.subpackages.Add(curVar.Name[dotIdx+1:])
			}
			if grp, ok := groupFromOptionsVar(curVar.Name); ok {
				c.optionGroups.Add(grp)
			}
		case token.VariableEnd:
			curVar = nil
		case token.VariableToken:
			if curVar == nil {
				continue
			}
			switch curVar.Name {
			case "USES", "USE":
				name, _ := splitUsesEntry(t.Data)
				c.uses.Add(name)
			case "OPTIONS_DEFINE", "OPTIONS_DEFAULT":
				c.options.Add(t.Data)
			case "OPTIONS_GROUP", "OPTIONS_MULTI", "OPTIONS_RADIO", "OPTIONS_SINGLE":
				// declares member option names inline too
				c.options.Add(t.Data)
			case "FLAVORS":
				c.flavors.Add(t.Data)
			case "LICENSE":
				c.licenses.Add(t.Data)
			case "SHEBANG_LANG":
				c.shebangLangs.Add(t.Data)
			case "EXECUTABLES":
				c.cabalExecutables.Add(t.Data)
			}
		case token.TargetStart:
			tg := t.Target
			depGraph[strings.Join(tg.Names, "/")] = tg.Depends
			for _, dep := range tg.Depends {
				if dep == "post-plist" {
					postPlistDirect = append(postPlistDirect, strings.Join(tg.Names, "/"))
				}
			}
		}
	}

	for _, name := range transitiveClosure(depGraph, postPlistDirect) {
		c.postPlistTargets.Add(name)
	}

	c.version = version
	c.valid = true
}

// splitUsesEntry splits a USES= token into its name and colon-args; it
// duplicates rules.splitUsesEntry, which is unexported.
func splitUsesEntry(tok string) (name, args string) {
	idx := strings.IndexByte(tok, ':')
	if idx < 0 {
		return tok, ""
	}
	return tok[:idx], tok[idx+1:]
}

func groupFromOptionsVar(name string) (string, bool) {
	for _, prefix := range []string{"OPTIONS_GROUP_", "OPTIONS_MULTI_", "OPTIONS_RADIO_", "OPTIONS_SINGLE_"} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix), true
		}
	}
	return "", false
}

// isSkippedConditional steps the skip-depth counter over conditional
// branches the engine chooses to ignore for metadata purposes (none, in
// this implementation — every branch is scanned — but the hook exists so
// a caller-provided skip policy could plug in later without changing the
// scan's shape). Always returns false today.
func isSkippedConditional(t *token.Token, depth *int) bool {
	return false
}

func transitiveClosure(graph map[string][]string, roots []string) []string {
	seen := textutil.NewOrderedStringSet()
	queue := append([]string{}, roots...)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if !seen.Add(name) {
			continue
		}
		for target, deps := range graph {
			for _, d := range deps {
				if d == name {
					queue = append(queue, target)
				}
			}
		}
	}
	return seen.Values()
}

// DeclaredSets interface implementation (matches rules.DeclaredSets).

func (c *Cache) HasOption(name string) bool          { return c.options.Contains(name) }
func (c *Cache) HasOptionGroup(name string) bool     { return c.optionGroups.Contains(name) }
func (c *Cache) HasFlavor(name string) bool          { return c.flavors.Contains(name) }
func (c *Cache) HasCabalExecutable(name string) bool { return c.cabalExecutables.Contains(name) }
func (c *Cache) HasLicense(name string) bool         { return c.licenses.Contains(name) }
func (c *Cache) HasShebangLang(name string) bool     { return c.shebangLangs.Contains(name) }
func (c *Cache) HasUses(name string) bool            { return c.uses.Contains(name) }

// Uses, Options, Flavors, ... expose read access to the raw sets for
// passes that need to enumerate rather than test membership (e.g. the
// output-unknown-* lint passes).
func (c *Cache) Uses() []string             { return c.uses.Values() }
func (c *Cache) Options() []string          { return c.options.Values() }
func (c *Cache) OptionGroups() []string     { return c.optionGroups.Values() }
func (c *Cache) Flavors() []string          { return c.flavors.Values() }
func (c *Cache) Licenses() []string         { return c.licenses.Values() }
func (c *Cache) ShebangLangs() []string     { return c.shebangLangs.Values() }
func (c *Cache) CabalExecutables() []string { return c.cabalExecutables.Values() }
func (c *Cache) Subpackages() []string      { return c.subpackages.Values() }
func (c *Cache) PostPlistTargets() []string { return c.postPlistTargets.Values() }
func (c *Cache) Masterdir() bool            { return c.masterdir }
