package rules

import "foss.freebsd.org/portfmt/internal/token"

// archs, freebsdVersions, and sslProviders are the fixed literal lists the
// architecture/OS-version/SSL-provider qualified variable names are a
// function of. Expanding them here rather than hand-enumerating every
// BROKEN_<arch>/IGNORE_FreeBSD_<ver>_<arch>/*_SSL_<provider> name mirrors
// the teacher's own loop-driven construction of its importers/extractors
// tables in surgeon/inner.go's init().
var archs = []string{
	"aarch64", "amd64", "armv6", "armv7", "i386", "mips", "mips64",
	"powerpc", "powerpc64", "powerpcspe", "sparc64",
}

var freebsdVersions = []string{"FreeBSD_11", "FreeBSD_12", "FreeBSD_13", "FreeBSD"}

var sslProviders = []string{"base", "libressl", "libressl-devel", "openssl", "openssl111"}

// generatedOrder holds the arch/version/ssl cross-product records that
// build() splices into their blocks when Default() first builds the
// engine; kept separate from baseOrder so the hand-maintained table stays
// easy to read.
func generatedOrder() []VariableRule {
	var out []VariableRule
	for _, arch := range archs {
		out = append(out, VariableRule{Block: token.BlockBroken, Name: "BROKEN_" + arch})
		out = append(out, VariableRule{Block: token.BlockBroken, Name: "IGNORE_" + arch})
		out = append(out, VariableRule{Block: token.BlockBroken, Name: "ONLY_FOR_ARCHS_REASON_" + arch})
		out = append(out, VariableRule{Block: token.BlockBroken, Name: "NOT_FOR_ARCHS_REASON_" + arch})
		for _, ver := range freebsdVersions {
			out = append(out, VariableRule{Block: token.BlockBroken, Name: "BROKEN_" + ver + "_" + arch})
			out = append(out, VariableRule{Block: token.BlockBroken, Name: "IGNORE_" + ver + "_" + arch})
		}
	}
	for _, ver := range freebsdVersions {
		out = append(out, VariableRule{Block: token.BlockBroken, Name: "BROKEN_" + ver})
		out = append(out, VariableRule{Block: token.BlockBroken, Name: "IGNORE_" + ver})
	}
	for _, provider := range sslProviders {
		out = append(out, VariableRule{Block: token.BlockBroken, Name: "BROKEN_SSL_" + provider})
		out = append(out, VariableRule{Block: token.BlockBroken, Name: "BROKEN_SSL_REASON_" + provider, Flags: FlagIgnoreWrapcol})
		out = append(out, VariableRule{Block: token.BlockBroken, Name: "IGNORE_SSL_" + provider})
		out = append(out, VariableRule{Block: token.BlockBroken, Name: "IGNORE_SSL_REASON_" + provider, Flags: FlagIgnoreWrapcol})
	}
	return out
}

// Archs, FreebsdVersions, and SSLProviders expose the fixed lists for
// recognizers and tests; callers must not mutate the returned slices.
func Archs() []string           { return archs }
func FreebsdVersions() []string { return freebsdVersions }
func SSLProviders() []string    { return sslProviders }

// optionsHelperSuffixes and flavorsHelperSuffixes are the closed
// vocabularies used to order helpers for the same option/flavor by suffix;
// recognizing a PREFIX_SUFFIX name as a helper is done by the textutil
// regex patterns, which list the same suffixes. Order in the slice is the
// suffix's sort key within CompareOrder's (prefix, suffix-index) comparison.
var optionsHelperSuffixes = []string{
	"DESC", "VARS", "VARS_OFF",
	"CONFIGURE_ON", "CONFIGURE_OFF", "CONFIGURE_ENABLE", "CONFIGURE_WITH",
	"CFLAGS", "CFLAGS_OFF", "CPPFLAGS", "CPPFLAGS_OFF",
	"CXXFLAGS", "CXXFLAGS_OFF", "LDFLAGS", "LDFLAGS_OFF",
	"LIB_DEPENDS", "LIB_DEPENDS_OFF", "RUN_DEPENDS", "RUN_DEPENDS_OFF",
	"BUILD_DEPENDS", "BUILD_DEPENDS_OFF", "TEST_DEPENDS", "TEST_DEPENDS_OFF",
	"EXTRA_PATCHES", "EXTRA_PATCHES_OFF",
	"USES", "USES_OFF", "USE",
	"MAKE_ENV", "MAKE_ENV_OFF",
	"PLIST_FILES", "PLIST_FILES_OFF", "PLIST_DIRS", "PLIST_DIRS_OFF", "PLIST_SUB",
	"IMPLIES", "PREVENTS",
}

var flavorsHelperSuffixes = []string{
	"DESC", "PKGNAMEPREFIX", "PKGNAMESUFFIX",
	"PLIST_FILES", "PLIST_DIRS",
	"LIB_DEPENDS", "RUN_DEPENDS", "BUILD_DEPENDS", "CONFLICTS",
}

func OptionsHelperSuffixes() []string { return optionsHelperSuffixes }
func FlavorsHelperSuffixes() []string { return flavorsHelperSuffixes }

func suffixIndex(suffixes []string, s string) int {
	for i, v := range suffixes {
		if v == s {
			return i
		}
	}
	return len(suffixes)
}
