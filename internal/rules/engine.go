package rules

import (
	"sync"

	"foss.freebsd.org/portfmt/internal/token"
)

// Engine owns the three static tables (§4.3): the variable-order table,
// the special-variables table, and the target-order table, plus the
// indices CompareOrder/CompareTargetOrder need. Built once under
// sync.Once, mirroring the teacher's once-built static VCS/importer
// tables in surgeon/vcs.go and surgeon/inner.go.
type Engine struct {
	order      []VariableRule
	orderIndex map[string]int
	special    map[string]VariableRule
	targets    []TargetRule
	targetIdx  map[string]int
	blockPos   map[token.BlockType]int
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the process-wide Engine, built once from baseOrder,
// generatedOrder(), specialVars, and targetOrder.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = build()
	})
	return defaultEngine
}

func build() *Engine {
	// Splice the generated cross-product records into their blocks so
	// every block occupies one contiguous run of the table; generated
	// names sort after the hand-listed members of the same block.
	generated := make(map[token.BlockType][]VariableRule)
	for _, r := range generatedOrder() {
		generated[r.Block] = append(generated[r.Block], r)
	}
	order := make([]VariableRule, 0, len(baseOrder)+256)
	for i, r := range baseOrder {
		order = append(order, r)
		if i+1 == len(baseOrder) || baseOrder[i+1].Block != r.Block {
			order = append(order, generated[r.Block]...)
			delete(generated, r.Block)
		}
	}

	e := &Engine{
		order:      order,
		orderIndex: make(map[string]int, len(order)),
		special:    make(map[string]VariableRule, len(specialVars)),
		targets:    targetOrder,
		targetIdx:  make(map[string]int, len(targetOrder)),
	}
	for i, r := range order {
		e.orderIndex[r.Name] = i
	}
	for _, r := range specialVars {
		e.special[r.Name] = r
	}
	for i, t := range targetOrder {
		e.targetIdx[t.Name] = i
	}
	return e
}

// Lookup resolves the policy for a literal variable name. It does not
// consult the helper-family recognizers (IsOptionsHelper et al.); callers
// that need helper-aware resolution should call LookupWithContext.
func (e *Engine) Lookup(name string) (VariableRule, bool) {
	if i, ok := e.orderIndex[name]; ok {
		return e.order[i], true
	}
	if r, ok := e.special[name]; ok {
		return r, true
	}
	return VariableRule{}, false
}

// helperRule is the synthetic policy assigned to a name recognized only
// via a helper-family pattern (options/flavors/shebang/cabal datadir):
// sortable by default, subpackage-aware when a .pkg suffix is present.
func helperRule(block token.BlockType, subpkg bool) VariableRule {
	flags := FlagSorted
	if subpkg {
		flags |= FlagSubpkgHelper
	}
	return VariableRule{Block: block, Flags: flags}
}

// LookupWithContext resolves a variable's policy, falling back to the
// helper-family recognizers (in the order options -> flavors -> shebang ->
// cabal datadir) when no literal table entry matches. usesShebangfix and
// usesCabal report whether the Makefile under test declares those USES
// entries (needed by IsShebangLang/IsCabalDatadirVars).
func (e *Engine) LookupWithContext(ctx *Context, name string, usesShebangfix, usesCabal bool) VariableRule {
	if r, ok := e.Lookup(name); ok {
		return r
	}
	if m, ok := IsOptionsHelper(ctx, name); ok {
		return helperRule(token.BlockOpthelper, m.Subpkg != "")
	}
	if _, ok := IsFlavorsHelper(ctx, name); ok {
		return helperRule(token.BlockFlavorsHelper, false)
	}
	if _, ok := IsShebangLang(ctx, name, usesShebangfix); ok {
		return helperRule(token.BlockShebangfix, false)
	}
	if _, ok := IsCabalDatadirVars(ctx, name, usesCabal); ok {
		return helperRule(token.BlockCabal, false)
	}
	if prefix, ok := MatchesOptionsGroup(name); ok {
		_ = prefix
		return VariableRule{Block: token.BlockOptdef, Flags: FlagSorted}
	}
	if MatchesLicenseName(ctx, name) {
		return VariableRule{Block: token.BlockLicense, Flags: FlagDefault}
	}
	return VariableRule{Block: token.BlockUnknown, Flags: FlagDefault}
}

// TargetIndex returns the in-table index of a known target root name, or
// len(targets) (sorts last) if unknown.
func (e *Engine) TargetIndex(name string) int {
	if i, ok := e.targetIdx[name]; ok {
		return i
	}
	return len(e.targets)
}

// Targets exposes the static target-order table.
func (e *Engine) Targets() []TargetRule { return e.targets }
