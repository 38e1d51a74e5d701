package rules

import (
	"strings"

	"foss.freebsd.org/portfmt/internal/token"
)

// blockOrder ranks a block by its first appearance in the order table,
// giving every BlockType a total order consistent with the table's layout
// even though BlockType's own declaration order carries no meaning (see
// token/blocktype.go). The recognizer-only blocks, which have no literal
// table entries, are spliced in next to their kin: FLAVORS_HELPER after
// FLAVORS, OPTDESC and OPTHELPER after OPTDEF, and UNKNOWN strictly last.
func (e *Engine) blockOrder(b token.BlockType) int {
	if e.blockPos == nil {
		var seq []token.BlockType
		seen := map[token.BlockType]bool{}
		add := func(bt token.BlockType) {
			if !seen[bt] {
				seen[bt] = true
				seq = append(seq, bt)
			}
		}
		for _, r := range e.order {
			add(r.Block)
			switch r.Block {
			case token.BlockFlavors:
				add(token.BlockFlavorsHelper)
			case token.BlockOptdef:
				add(token.BlockOptdesc)
				add(token.BlockOpthelper)
			}
		}
		add(token.BlockUnknown)
		e.blockPos = make(map[token.BlockType]int, len(seq))
		for i, bt := range seq {
			e.blockPos[bt] = i
		}
	}
	if pos, ok := e.blockPos[b]; ok {
		return pos
	}
	return len(e.blockPos) // anything unseen sorts last
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareOrder implements the VARIABLE_START ordering comparator of
// spec.md §4.3: block first, then in-table index, with helper families
// grouped by (prefix, suffix-index) and subpackage-suffixed names sorting
// after their base.
func (e *Engine) CompareOrder(ctx *Context, a, b *token.Variable, usesShebangfix, usesCabal bool) int {
	if a.Name == b.Name {
		return 0
	}
	ra := e.LookupWithContext(ctx, a.Name, usesShebangfix, usesCabal)
	rb := e.LookupWithContext(ctx, b.Name, usesShebangfix, usesCabal)

	if ra.Block != rb.Block {
		return cmpInt(e.blockOrder(ra.Block), e.blockOrder(rb.Block))
	}

	switch ra.Block {
	case token.BlockOpthelper:
		return e.compareOptionsHelperOrder(ctx, a.Name, b.Name)
	case token.BlockFlavorsHelper:
		return e.compareFlavorsHelperOrder(ctx, a.Name, b.Name)
	case token.BlockLicense:
		return cmpInt(e.licenseTableIndex(a.Name), e.licenseTableIndex(b.Name))
	default:
		ia, oka := e.orderIndex[a.Name]
		ib, okb := e.orderIndex[b.Name]
		if oka && okb {
			return cmpInt(ia, ib)
		}
		if oka != okb {
			// A literally-tabled name sorts before an untabled one that
			// merely fell into the same block via the UNKNOWN fallback.
			if oka {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	}
}

func (e *Engine) compareOptionsHelperOrder(ctx *Context, a, b string) int {
	ma, oka := IsOptionsHelper(ctx, a)
	mb, okb := IsOptionsHelper(ctx, b)
	if !oka || !okb {
		return strings.Compare(a, b)
	}
	if ma.Prefix != mb.Prefix {
		return strings.Compare(ma.Prefix, mb.Prefix)
	}
	si := cmpInt(suffixIndex(optionsHelperSuffixes, ma.Suffix), suffixIndex(optionsHelperSuffixes, mb.Suffix))
	if si != 0 {
		return si
	}
	// Subpackage suffixes (.pkg) sort after the base.
	if (ma.Subpkg != "") != (mb.Subpkg != "") {
		if ma.Subpkg == "" {
			return -1
		}
		return 1
	}
	return strings.Compare(ma.Subpkg, mb.Subpkg)
}

func (e *Engine) compareFlavorsHelperOrder(ctx *Context, a, b string) int {
	ma, oka := IsFlavorsHelper(ctx, a)
	mb, okb := IsFlavorsHelper(ctx, b)
	if !oka || !okb {
		return strings.Compare(a, b)
	}
	if ma.Prefix != mb.Prefix {
		return strings.Compare(ma.Prefix, mb.Prefix)
	}
	return cmpInt(suffixIndex(flavorsHelperSuffixes, ma.Suffix), suffixIndex(flavorsHelperSuffixes, mb.Suffix))
}

// licenseTableIndex finds the table index of the longest matching
// LICENSE_* prefix for name, or a large sentinel if none match, as
// spec.md §4.3 requires ("LICENSE uses table index of the longest
// matching LICENSE_* prefix").
func (e *Engine) licenseTableIndex(name string) int {
	best := -1
	bestLen := -1
	for i, r := range e.order {
		if r.Block != token.BlockLicense {
			continue
		}
		if strings.HasPrefix(name, r.Name) && len(r.Name) > bestLen {
			best = i
			bestLen = len(r.Name)
		}
	}
	if best < 0 {
		return len(e.order)
	}
	return best
}

// CompareTargetOrder implements the TARGET_START ordering comparator:
// split each target name into (root, opt, state) where opt-on:/opt-off:
// suffixes denote an opthelper variant, then compare by table index of
// root, then opt, then on-before-off.
func (e *Engine) CompareTargetOrder(a, b string) int {
	ra, oa, sa := splitTargetName(a)
	rb, ob, sb := splitTargetName(b)
	if ri := cmpInt(e.TargetIndex(ra), e.TargetIndex(rb)); ri != 0 {
		return ri
	}
	if oc := strings.Compare(oa, ob); oc != 0 {
		return oc
	}
	return cmpInt(stateRank(sa), stateRank(sb))
}

// splitTargetName decomposes "root-opt-on:" / "root-opt-off:" style
// option-helper target variants into (root, opt, state).
func splitTargetName(name string) (root, opt, state string) {
	name = strings.TrimSuffix(name, ":")
	if idx := strings.LastIndex(name, "-on"); idx > 0 && idx == len(name)-3 {
		name, state = name[:idx], "on"
	} else if idx := strings.LastIndex(name, "-off"); idx > 0 && idx == len(name)-4 {
		name, state = name[:idx], "off"
	}
	root = name
	if state == "" {
		return root, opt, state
	}
	for _, t := range targetOrder {
		if t.OptHelper && strings.HasPrefix(name, t.Name+"-") {
			return t.Name, name[len(t.Name)+1:], state
		}
	}
	return root, opt, state
}

func stateRank(state string) int {
	switch state {
	case "on":
		return 0
	case "off":
		return 1
	default:
		return -1
	}
}
