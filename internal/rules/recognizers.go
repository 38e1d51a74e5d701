package rules

import (
	"strings"

	"foss.freebsd.org/portfmt/internal/textutil"
)

// OptionsHelperMatch is the decomposition returned by IsOptionsHelper.
type OptionsHelperMatch struct {
	Prefix string
	Suffix string
	Subpkg string // empty if not subpackage-qualified
}

// IsOptionsHelper matches PREFIX_HELPER[.SUBPKG] where HELPER is DESC or
// one of the OPTHELPER suffixes and, unless fuzzy, PREFIX is a declared
// option or option group.
func IsOptionsHelper(ctx *Context, name string) (OptionsHelperMatch, bool) {
	m := textutil.FindSubmatch(textutil.PatternOptionsHelper, name)
	if m == nil {
		return OptionsHelperMatch{}, false
	}
	prefix, suffix, subpkg := m[1], m[2], m[3]
	if !ctx.Fuzzy && !ctx.Declared.HasOption(prefix) && !ctx.Declared.HasOptionGroup(prefix) {
		return OptionsHelperMatch{}, false
	}
	return OptionsHelperMatch{Prefix: prefix, Suffix: suffix, Subpkg: subpkg}, true
}

// FlavorsHelperMatch is the decomposition returned by IsFlavorsHelper.
type FlavorsHelperMatch struct {
	Prefix string
	Suffix string
}

// IsFlavorsHelper matches PREFIX_HELPER where HELPER is a FLAVORS_HELPER
// suffix and, unless fuzzy, PREFIX is a declared flavor.
func IsFlavorsHelper(ctx *Context, name string) (FlavorsHelperMatch, bool) {
	m := textutil.FindSubmatch(textutil.PatternFlavorsHelper, name)
	if m == nil {
		return FlavorsHelperMatch{}, false
	}
	prefix, suffix := m[1], m[2]
	if !ctx.Fuzzy && !ctx.Declared.HasFlavor(prefix) {
		return FlavorsHelperMatch{}, false
	}
	return FlavorsHelperMatch{Prefix: prefix, Suffix: suffix}, true
}

// ShebangLangMatch is the decomposition returned by IsShebangLang.
type ShebangLangMatch struct {
	Lang   string
	Suffix string // "CMD" or "OLD_CMD"
}

// IsShebangLang matches LANG_CMD or LANG_OLD_CMD where, unless fuzzy,
// USES=shebangfix is present and LANG is a known or declared shebang
// language.
func IsShebangLang(ctx *Context, name string, usesShebangfix bool) (ShebangLangMatch, bool) {
	m := textutil.FindSubmatch(textutil.PatternShebangLang, name)
	if m == nil {
		return ShebangLangMatch{}, false
	}
	lang, suffix := m[1], m[2]
	if !ctx.Fuzzy {
		if !usesShebangfix {
			return ShebangLangMatch{}, false
		}
		if !ctx.Declared.HasShebangLang(lang) && !isKnownShebangLang(lang) {
			return ShebangLangMatch{}, false
		}
	}
	return ShebangLangMatch{Lang: lang, Suffix: suffix}, true
}

var knownShebangLangs = textutil.NewOrderedStringSet(
	"AWK", "BASH", "ENV", "EXPECT", "GAWK", "JAVA", "KSH", "LUA",
	"NAWK", "NODE", "PERL", "PHP", "PYTHON", "PYTHON2", "PYTHON3",
	"R", "RUBY", "SH", "TCL", "TCLSH", "TK", "WISH", "ZSH",
)

func isKnownShebangLang(lang string) bool {
	return knownShebangLangs.Contains(lang)
}

// CabalDatadirMatch is the decomposition returned by IsCabalDatadirVars.
type CabalDatadirMatch struct {
	Executable string
	Suffix     string
}

// IsCabalDatadirVars matches EXE_DATADIR_VARS with USES=cabal and,
// unless fuzzy, EXE a declared cabal executable.
func IsCabalDatadirVars(ctx *Context, name string, usesCabal bool) (CabalDatadirMatch, bool) {
	m := textutil.FindSubmatch(textutil.PatternCabalDatadirVars, name)
	if m == nil {
		return CabalDatadirMatch{}, false
	}
	exe, suffix := m[1], m[2]
	if !ctx.Fuzzy {
		if !usesCabal {
			return CabalDatadirMatch{}, false
		}
		if !ctx.Declared.HasCabalExecutable(exe) {
			return CabalDatadirMatch{}, false
		}
	}
	return CabalDatadirMatch{Executable: exe, Suffix: suffix}, true
}

// MatchesOptionsGroup matches _?OPTIONS_(GROUP|MULTI|RADIO|SINGLE)_..., as
// used by the OPTIONS_GROUP/OPTIONS_MULTI/etc. family. Returns the whole
// matched prefix.
func MatchesOptionsGroup(name string) (string, bool) {
	m := textutil.FindSubmatch(textutil.PatternOptionsGroup, name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MatchesLicenseName matches LICENSE_(FILE|NAME|TEXT) and their
// _<LICENSE>-suffixed forms; <LICENSE> must lex as [-._+A-Za-z0-9]+ and,
// unless fuzzy, be a declared license.
func MatchesLicenseName(ctx *Context, name string) bool {
	if textutil.Matches(textutil.PatternLicenseName, name) {
		return true
	}
	m := textutil.FindSubmatch(textutil.PatternLicenseNameSuffixed, name)
	if m == nil {
		return false
	}
	license := m[2]
	if !ctx.Fuzzy && !ctx.Declared.HasLicense(license) {
		return false
	}
	return true
}

// splitUsesEntry splits a single USES= token into its name and colon-args.
// Nothing in this package calls it; internal/cache keeps its own copy.
func splitUsesEntry(tok string) (name, args string) {
	idx := strings.IndexByte(tok, ':')
	if idx < 0 {
		return tok, ""
	}
	return tok[:idx], tok[idx+1:]
}
