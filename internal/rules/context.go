package rules

// DeclaredSets is the narrow view the rules engine needs of a parser's
// metadata cache (C8): which option/flavor/license/etc. names the
// Makefile under test actually declares. Declared as an interface here,
// rather than importing internal/cache directly, so the rules engine and
// the cache stay decoupled — the cache is a consumer of the rules engine's
// flag queries, not the other way around.
type DeclaredSets interface {
	HasOption(name string) bool
	HasOptionGroup(name string) bool
	HasFlavor(name string) bool
	HasCabalExecutable(name string) bool
	HasLicense(name string) bool
	HasShebangLang(name string) bool
	HasUses(name string) bool
}

// Context threads the fuzzy-matching flag and the declared-name sets into
// every comparator and recognizer call, per the Design Notes'
// "Comparator context" requirement: comparators need the parser state
// (fuzzy flag, declared licenses/options/flavors) and must be stable, so
// that state is plumbed explicitly rather than read from a global.
type Context struct {
	Fuzzy    bool
	Declared DeclaredSets
}

// noDeclared is used when no metadata cache is available yet (e.g. before
// a Parser has finished reading); every membership test fails open only
// when Fuzzy is set, matching the "unless fuzzy, PREFIX must be declared"
// rule of each recognizer.
type noDeclared struct{}

func (noDeclared) HasOption(string) bool         { return false }
func (noDeclared) HasOptionGroup(string) bool    { return false }
func (noDeclared) HasFlavor(string) bool         { return false }
func (noDeclared) HasCabalExecutable(string) bool { return false }
func (noDeclared) HasLicense(string) bool        { return false }
func (noDeclared) HasShebangLang(string) bool    { return false }
func (noDeclared) HasUses(string) bool           { return false }

// NewContext builds a Context; a nil declared set falls back to one that
// declares nothing.
func NewContext(fuzzy bool, declared DeclaredSets) *Context {
	if declared == nil {
		declared = noDeclared{}
	}
	return &Context{Fuzzy: fuzzy, Declared: declared}
}
