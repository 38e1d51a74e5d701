package rules

import (
	"testing"

	"foss.freebsd.org/portfmt/internal/token"
)

func TestCompareOrderBlockPrecedes(t *testing.T) {
	e := Default()
	ctx := NewContext(false, nil)
	portname := token.NewVariable("PORTNAME", token.ModifierAssign)
	maintainer := token.NewVariable("MAINTAINER", token.ModifierAssign)
	if e.CompareOrder(ctx, portname, maintainer, false, false) >= 0 {
		t.Error("PORTNAME should sort before MAINTAINER")
	}
	if e.CompareOrder(ctx, maintainer, portname, false, false) <= 0 {
		t.Error("MAINTAINER should sort after PORTNAME")
	}
}

func TestCompareOrderWithinBlock(t *testing.T) {
	e := Default()
	ctx := NewContext(false, nil)
	distversion := token.NewVariable("DISTVERSION", token.ModifierAssign)
	categories := token.NewVariable("CATEGORIES", token.ModifierAssign)
	if e.CompareOrder(ctx, distversion, categories, false, false) >= 0 {
		t.Error("DISTVERSION should sort before CATEGORIES within the PORTNAME block")
	}
}

func TestCompareOrderSameVariable(t *testing.T) {
	e := Default()
	ctx := NewContext(false, nil)
	a := token.NewVariable("PORTNAME", token.ModifierAssign)
	b := token.NewVariable("PORTNAME", token.ModifierAssign)
	if e.CompareOrder(ctx, a, b, false, false) != 0 {
		t.Error("two variables with the same name should compare equal")
	}
}

func TestCompareOrderOptionsHelperGroupsByPrefix(t *testing.T) {
	e := Default()
	ctx := NewContext(true, nil) // fuzzy: no declared-option bookkeeping needed
	fooDesc := token.NewVariable("FOO_DESC", token.ModifierAssign)
	fooCflags := token.NewVariable("FOO_CFLAGS", token.ModifierAssign)
	barDesc := token.NewVariable("BAR_DESC", token.ModifierAssign)

	if e.CompareOrder(ctx, fooDesc, fooCflags, false, false) >= 0 {
		t.Error("FOO_DESC should sort before FOO_CFLAGS (DESC is first in the helper-suffix list)")
	}
	if e.CompareOrder(ctx, fooDesc, barDesc, false, false) <= 0 {
		t.Error("FOO_* helpers should sort after BAR_* helpers (prefix compares alphabetically)")
	}
}

func TestCompareOrderSubpkgSortsAfterBase(t *testing.T) {
	e := Default()
	ctx := NewContext(true, nil)
	base := token.NewVariable("FOO_DESC", token.ModifierAssign)
	subpkg := token.NewVariable("FOO_DESC.server", token.ModifierAssign)
	if e.CompareOrder(ctx, base, subpkg, false, false) >= 0 {
		t.Error("FOO_DESC should sort before FOO_DESC.server")
	}
}

func TestCompareTargetOrder(t *testing.T) {
	e := Default()
	if e.CompareTargetOrder("fetch", "build") >= 0 {
		t.Error("fetch should sort before build")
	}
	if e.CompareTargetOrder("post-install-on:", "post-install-off:") >= 0 {
		t.Error("post-install-on should sort before post-install-off")
	}
	if e.CompareTargetOrder("post-install:", "post-install-on:") >= 0 {
		t.Error("the bare target should sort before its -on variant")
	}
}
