package rules

import "testing"

type fakeDeclared struct {
	options          map[string]bool
	optionGroups     map[string]bool
	flavors          map[string]bool
	cabalExecutables map[string]bool
	licenses         map[string]bool
	shebangLangs     map[string]bool
	uses             map[string]bool
}

func (f fakeDeclared) HasOption(name string) bool          { return f.options[name] }
func (f fakeDeclared) HasOptionGroup(name string) bool     { return f.optionGroups[name] }
func (f fakeDeclared) HasFlavor(name string) bool          { return f.flavors[name] }
func (f fakeDeclared) HasCabalExecutable(name string) bool { return f.cabalExecutables[name] }
func (f fakeDeclared) HasLicense(name string) bool         { return f.licenses[name] }
func (f fakeDeclared) HasShebangLang(name string) bool     { return f.shebangLangs[name] }
func (f fakeDeclared) HasUses(name string) bool            { return f.uses[name] }

func TestIsOptionsHelperRequiresDeclaration(t *testing.T) {
	ctx := NewContext(false, fakeDeclared{options: map[string]bool{"FOO": true}})
	m, ok := IsOptionsHelper(ctx, "FOO_DESC")
	if !ok {
		t.Fatal("FOO_DESC should match when FOO is a declared option")
	}
	if m.Prefix != "FOO" || m.Suffix != "DESC" || m.Subpkg != "" {
		t.Errorf("match = %+v", m)
	}

	if _, ok := IsOptionsHelper(ctx, "BAR_DESC"); ok {
		t.Error("BAR_DESC should not match: BAR is not a declared option")
	}
}

func TestIsOptionsHelperSubpkg(t *testing.T) {
	ctx := NewContext(false, fakeDeclared{options: map[string]bool{"FOO": true}})
	m, ok := IsOptionsHelper(ctx, "FOO_DESC.server")
	if !ok {
		t.Fatal("FOO_DESC.server should match")
	}
	if m.Subpkg != "server" {
		t.Errorf("Subpkg = %q, want server", m.Subpkg)
	}
}

func TestIsOptionsHelperFuzzy(t *testing.T) {
	ctx := NewContext(true, fakeDeclared{})
	if _, ok := IsOptionsHelper(ctx, "ANYTHING_DESC"); !ok {
		t.Error("fuzzy matching should accept any prefix")
	}
}

func TestIsFlavorsHelperRequiresDeclaration(t *testing.T) {
	ctx := NewContext(false, fakeDeclared{flavors: map[string]bool{"py38": true}})
	if _, ok := IsFlavorsHelper(ctx, "py38_PLIST_FILES"); !ok {
		t.Error("py38_PLIST_FILES should match a declared flavor")
	}
	if _, ok := IsFlavorsHelper(ctx, "py39_PLIST_FILES"); ok {
		t.Error("py39_PLIST_FILES should not match an undeclared flavor")
	}
}

func TestIsShebangLangRequiresUsesShebangfix(t *testing.T) {
	ctx := NewContext(false, fakeDeclared{})
	if _, ok := IsShebangLang(ctx, "PYTHON_CMD", false); ok {
		t.Error("PYTHON_CMD should not match without USES=shebangfix")
	}
	if _, ok := IsShebangLang(ctx, "PYTHON_CMD", true); !ok {
		t.Error("PYTHON_CMD should match a known shebang language under USES=shebangfix")
	}
	if _, ok := IsShebangLang(ctx, "KLINGON_CMD", true); ok {
		t.Error("KLINGON_CMD should not match: not a known or declared shebang language")
	}
}

func TestIsCabalDatadirVars(t *testing.T) {
	ctx := NewContext(false, fakeDeclared{cabalExecutables: map[string]bool{"pandoc": true}})
	if _, ok := IsCabalDatadirVars(ctx, "pandoc_DATADIR_VARS", false); ok {
		t.Error("should require USES=cabal")
	}
	if _, ok := IsCabalDatadirVars(ctx, "pandoc_DATADIR_VARS", true); !ok {
		t.Error("pandoc_DATADIR_VARS should match a declared cabal executable")
	}
}

func TestMatchesOptionsGroup(t *testing.T) {
	if _, ok := MatchesOptionsGroup("OPTIONS_GROUP_SSL"); !ok {
		t.Error("OPTIONS_GROUP_SSL should match")
	}
	if _, ok := MatchesOptionsGroup("OPTIONS_DEFINE"); ok {
		t.Error("OPTIONS_DEFINE should not match the group pattern")
	}
}

func TestMatchesLicenseName(t *testing.T) {
	ctx := NewContext(false, fakeDeclared{licenses: map[string]bool{"MIT": true}})
	if !MatchesLicenseName(ctx, "LICENSE_NAME") {
		t.Error("LICENSE_NAME should always match")
	}
	if !MatchesLicenseName(ctx, "LICENSE_FILE_MIT") {
		t.Error("LICENSE_FILE_MIT should match a declared license")
	}
	if MatchesLicenseName(ctx, "LICENSE_FILE_GPL") {
		t.Error("LICENSE_FILE_GPL should not match an undeclared license")
	}
}
