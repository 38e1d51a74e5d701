package rules

import "foss.freebsd.org/portfmt/internal/token"

// baseOrder is the hand-maintained core of the variable-order table: the
// declaration order within this slice is both the intra-block secondary
// order and (via each record's Block) the block boundary used by
// CompareOrder and InsertVariable. The programmatic generation in
// generate.go adds the architecture/OS-version/SSL-provider cross product
// on top of it when Default() first builds the engine.
var baseOrder = []VariableRule{
	// PORTNAME block
	{Block: token.BlockPortname, Name: "PORTNAME"},
	{Block: token.BlockPortname, Name: "PORTVERSION"},
	{Block: token.BlockPortname, Name: "DISTVERSIONPREFIX"},
	{Block: token.BlockPortname, Name: "DISTVERSION"},
	{Block: token.BlockPortname, Name: "DISTVERSIONSUFFIX"},
	{Block: token.BlockPortname, Name: "PORTREVISION"},
	{Block: token.BlockPortname, Name: "PORTEPOCH"},
	{Block: token.BlockPortname, Name: "CATEGORIES", Flags: FlagSorted},
	{Block: token.BlockPortname, Name: "PKGNAMEPREFIX"},
	{Block: token.BlockPortname, Name: "PKGNAMESUFFIX"},
	{Block: token.BlockPortname, Name: "PKGNAME"},

	// PATCHFILES block: distfile and patch origin
	{Block: token.BlockPatchfiles, Name: "MASTER_SITES", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockPatchfiles, Name: "MASTER_SITE_SUBDIR", Flags: FlagSorted},
	{Block: token.BlockPatchfiles, Name: "DISTNAME"},
	{Block: token.BlockPatchfiles, Name: "EXTRACT_SUFX"},
	{Block: token.BlockPatchfiles, Name: "DISTFILES", Flags: FlagSorted | FlagCaseSensitiveSort},
	{Block: token.BlockPatchfiles, Name: "DIST_SUBDIR"},
	{Block: token.BlockPatchfiles, Name: "EXTRACT_ONLY"},
	{Block: token.BlockPatchfiles, Name: "EXTRACT_ONLY_7z"},
	{Block: token.BlockPatchfiles, Name: "PATCH_SITES", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockPatchfiles, Name: "PATCHFILES", Flags: FlagSorted | FlagCaseSensitiveSort},
	{Block: token.BlockPatchfiles, Name: "PATCH_DIST_ARGS"},
	{Block: token.BlockPatchfiles, Name: "PATCH_DIST_STRIP"},
	{Block: token.BlockPatchfiles, Name: "PATCH_ARGS"},
	{Block: token.BlockPatchfiles, Name: "PATCH_STRIP"},
	{Block: token.BlockPatchfiles, Name: "PATCH_WRKSRC"},
	{Block: token.BlockPatchfiles, Name: "EXTRA_PATCHES", Flags: FlagSorted | FlagCaseSensitiveSort},
	{Block: token.BlockPatchfiles, Name: "EXTRA_PATCH_TREE"},

	// MAINTAINER block
	{Block: token.BlockMaintainer, Name: "MAINTAINER"},
	{Block: token.BlockMaintainer, Name: "COMMENT", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockMaintainer, Name: "WWW"},

	// LICENSE block
	{Block: token.BlockLicense, Name: "LICENSE", Flags: FlagSorted},
	{Block: token.BlockLicense, Name: "LICENSE_COMB"},
	{Block: token.BlockLicense, Name: "LICENSE_GROUPS", Flags: FlagSorted},
	{Block: token.BlockLicense, Name: "LICENSE_NAME"},
	{Block: token.BlockLicense, Name: "LICENSE_TEXT", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockLicense, Name: "LICENSE_FILE"},
	{Block: token.BlockLicense, Name: "LICENSE_PERMS", Flags: FlagSorted},
	{Block: token.BlockLicense, Name: "LICENSE_DISTFILES", Flags: FlagSorted},

	// LICENSE_OLD block: the pre-licensing-framework knobs
	{Block: token.BlockLicenseOld, Name: "RESTRICTED"},
	{Block: token.BlockLicenseOld, Name: "RESTRICTED_FILES", Flags: FlagSorted},
	{Block: token.BlockLicenseOld, Name: "NO_CDROM"},
	{Block: token.BlockLicenseOld, Name: "NO_PACKAGE"},
	{Block: token.BlockLicenseOld, Name: "LEGAL_PACKAGE"},
	{Block: token.BlockLicenseOld, Name: "LEGAL_TEXT"},

	// BROKEN block (arch/OS-version qualified names are generated)
	{Block: token.BlockBroken, Name: "DEPRECATED", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockBroken, Name: "EXPIRATION_DATE"},
	{Block: token.BlockBroken, Name: "FORBIDDEN", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockBroken, Name: "MANUAL_PACKAGE_BUILD"},
	{Block: token.BlockBroken, Name: "BROKEN", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockBroken, Name: "BROKEN_RELEASE"},
	{Block: token.BlockBroken, Name: "BROKEN_SSL", Flags: FlagSorted},
	{Block: token.BlockBroken, Name: "BROKEN_SSL_REASON", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockBroken, Name: "IGNORE", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockBroken, Name: "IGNORE_SSL", Flags: FlagSorted},
	{Block: token.BlockBroken, Name: "IGNORE_SSL_REASON", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockBroken, Name: "ONLY_FOR_ARCHS", Flags: FlagSorted},
	{Block: token.BlockBroken, Name: "ONLY_FOR_ARCHS_REASON", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockBroken, Name: "NOT_FOR_ARCHS", Flags: FlagSorted},
	{Block: token.BlockBroken, Name: "NOT_FOR_ARCHS_REASON", Flags: FlagIgnoreWrapcol},

	// DEPENDS block
	{Block: token.BlockDepends, Name: "FETCH_DEPENDS", Flags: FlagSorted | FlagPrintAsNewlines},
	{Block: token.BlockDepends, Name: "EXTRACT_DEPENDS", Flags: FlagSorted | FlagPrintAsNewlines},
	{Block: token.BlockDepends, Name: "PATCH_DEPENDS", Flags: FlagSorted | FlagPrintAsNewlines},
	{Block: token.BlockDepends, Name: "CRAN_DEPENDS"},
	{Block: token.BlockDepends, Name: "BUILD_DEPENDS", Flags: FlagSorted | FlagPrintAsNewlines},
	{Block: token.BlockDepends, Name: "LIB_DEPENDS", Flags: FlagSorted | FlagPrintAsNewlines},
	{Block: token.BlockDepends, Name: "RUN_DEPENDS", Flags: FlagSorted | FlagPrintAsNewlines},
	{Block: token.BlockDepends, Name: "TEST_DEPENDS", Flags: FlagSorted | FlagPrintAsNewlines},
	{Block: token.BlockDepends, Name: "PKG_DEPENDS", Flags: FlagSorted | FlagPrintAsNewlines},

	// FLAVORS block
	{Block: token.BlockFlavors, Name: "FLAVORS"},
	{Block: token.BlockFlavors, Name: "FLAVOR"},

	// USES block: USES itself, then the USE_* family
	{Block: token.BlockUses, Name: "USES", Flags: FlagSorted | FlagDedup},
	{Block: token.BlockUses, Name: "BROKEN_DEPENDS"},
	{Block: token.BlockUses, Name: "CPE_PART"},
	{Block: token.BlockUses, Name: "CPE_VENDOR"},
	{Block: token.BlockUses, Name: "CPE_PRODUCT"},
	{Block: token.BlockUses, Name: "CPE_VERSION"},
	{Block: token.BlockUses, Name: "CPE_UPDATE"},
	{Block: token.BlockUses, Name: "CPE_EDITION"},
	{Block: token.BlockUses, Name: "CPE_LANG"},
	{Block: token.BlockUses, Name: "CPE_SW_EDITION"},
	{Block: token.BlockUses, Name: "CPE_TARGET_SW"},
	{Block: token.BlockUses, Name: "CPE_TARGET_HW"},
	{Block: token.BlockUses, Name: "CPE_OTHER"},
	{Block: token.BlockUses, Name: "DOS2UNIX_FILES", Flags: FlagSorted, Uses: []string{"dos2unix"}},
	{Block: token.BlockUses, Name: "DOS2UNIX_GLOB", Flags: FlagSorted, Uses: []string{"dos2unix"}},
	{Block: token.BlockUses, Name: "DOS2UNIX_REGEX", Uses: []string{"dos2unix"}},
	{Block: token.BlockUses, Name: "DOS2UNIX_WRKSRC", Uses: []string{"dos2unix"}},
	{Block: token.BlockUses, Name: "FONTNAME", Uses: []string{"fonts"}},
	{Block: token.BlockUses, Name: "FONTSDIR", Uses: []string{"fonts"}},
	{Block: token.BlockUses, Name: "HORDE_DIR", Uses: []string{"horde"}},
	{Block: token.BlockUses, Name: "IGNORE_WITH_MYSQL", Flags: FlagSorted, Uses: []string{"mysql"}},
	{Block: token.BlockUses, Name: "IGNORE_WITH_PHP", Flags: FlagSorted, Uses: []string{"php"}},
	{Block: token.BlockUses, Name: "KMODDIR", Uses: []string{"kmod"}},
	{Block: token.BlockUses, Name: "KMODSUBDIR", Uses: []string{"kmod"}},
	{Block: token.BlockUses, Name: "NCURSES_IMPL", Uses: []string{"ncurses"}},
	{Block: token.BlockUses, Name: "PATHFIX_CMAKELISTSTXT", Uses: []string{"pathfix"}},
	{Block: token.BlockUses, Name: "PATHFIX_MAKEFILEIN", Uses: []string{"pathfix"}},
	{Block: token.BlockUses, Name: "PATHFIX_WRKSRC", Uses: []string{"pathfix"}},
	{Block: token.BlockUses, Name: "PYDISTUTILS_SETUP", Uses: []string{"python"}},
	{Block: token.BlockUses, Name: "PYDISTUTILS_BUILDARGS", Uses: []string{"python"}},
	{Block: token.BlockUses, Name: "PYDISTUTILS_INSTALLARGS", Uses: []string{"python"}},
	{Block: token.BlockUses, Name: "PYDISTUTILS_EGGINFO", Uses: []string{"python"}},
	{Block: token.BlockUses, Name: "PYTHON_NO_DEPENDS", Uses: []string{"python"}},
	{Block: token.BlockUses, Name: "PYTHON_CMD", Uses: []string{"python"}},
	{Block: token.BlockUses, Name: "USE_ANT"},
	{Block: token.BlockUses, Name: "USE_ASDF", Flags: FlagSorted},
	{Block: token.BlockUses, Name: "USE_ASDF_FASL"},
	{Block: token.BlockUses, Name: "USE_BINUTILS"},
	{Block: token.BlockUses, Name: "USE_CSTD"},
	{Block: token.BlockUses, Name: "USE_CXXSTD"},
	{Block: token.BlockUses, Name: "USE_FPC", Flags: FlagSorted},
	{Block: token.BlockUses, Name: "USE_GCC"},
	{Block: token.BlockUses, Name: "USE_GECKO"},
	{Block: token.BlockUses, Name: "USE_GITHUB"},
	{Block: token.BlockUses, Name: "GH_ACCOUNT"},
	{Block: token.BlockUses, Name: "GH_PROJECT"},
	{Block: token.BlockUses, Name: "GH_SUBDIR"},
	{Block: token.BlockUses, Name: "GH_TAGNAME"},
	{Block: token.BlockUses, Name: "GH_TUPLE", Flags: FlagSorted | FlagPrintAsNewlines | FlagIgnoreWrapcol},
	{Block: token.BlockUses, Name: "USE_GITLAB"},
	{Block: token.BlockUses, Name: "GL_SITE"},
	{Block: token.BlockUses, Name: "GL_ACCOUNT"},
	{Block: token.BlockUses, Name: "GL_PROJECT"},
	{Block: token.BlockUses, Name: "GL_COMMIT"},
	{Block: token.BlockUses, Name: "GL_SUBDIR"},
	{Block: token.BlockUses, Name: "GL_TUPLE", Flags: FlagSorted | FlagPrintAsNewlines | FlagIgnoreWrapcol},
	{Block: token.BlockUses, Name: "USE_GL", Flags: FlagSorted, Uses: []string{"gl"}},
	{Block: token.BlockUses, Name: "USE_GNOME", Flags: FlagSorted, Uses: []string{"gnome"}},
	{Block: token.BlockUses, Name: "USE_GNOME_SUBR", Uses: []string{"gnome"}},
	{Block: token.BlockUses, Name: "USE_GNUSTEP", Flags: FlagSorted, Uses: []string{"gnustep"}},
	{Block: token.BlockUses, Name: "GNUSTEP_PREFIX", Uses: []string{"gnustep"}},
	{Block: token.BlockUses, Name: "USE_GSTREAMER", Flags: FlagSorted},
	{Block: token.BlockUses, Name: "USE_GSTREAMER1", Flags: FlagSorted},
	{Block: token.BlockUses, Name: "USE_JAVA"},
	{Block: token.BlockUses, Name: "JAVA_VERSION"},
	{Block: token.BlockUses, Name: "JAVA_OS"},
	{Block: token.BlockUses, Name: "JAVA_VENDOR"},
	{Block: token.BlockUses, Name: "JAVA_EXTRACT"},
	{Block: token.BlockUses, Name: "JAVA_BUILD"},
	{Block: token.BlockUses, Name: "JAVA_RUN"},
	{Block: token.BlockUses, Name: "USE_KDE", Flags: FlagSorted, Uses: []string{"kde"}},
	{Block: token.BlockUses, Name: "USE_LDCONFIG"},
	{Block: token.BlockUses, Name: "USE_LOCALE"},
	{Block: token.BlockUses, Name: "USE_MOTIF"},
	{Block: token.BlockUses, Name: "USE_MYSQL", Uses: []string{"mysql"}},
	{Block: token.BlockUses, Name: "USE_OCAML"},
	{Block: token.BlockUses, Name: "NO_OCAML_BUILDDEPENDS"},
	{Block: token.BlockUses, Name: "NO_OCAML_RUNDEPENDS"},
	{Block: token.BlockUses, Name: "USE_OCAML_FINDLIB"},
	{Block: token.BlockUses, Name: "USE_OCAML_CAMLP4"},
	{Block: token.BlockUses, Name: "USE_OCAML_LDCONFIG"},
	{Block: token.BlockUses, Name: "USE_OCAMLFIND_PLIST"},
	{Block: token.BlockUses, Name: "USE_OCAML_WASH"},
	{Block: token.BlockUses, Name: "OCAML_PKGDIRS", Flags: FlagSorted},
	{Block: token.BlockUses, Name: "OCAML_LDLIBS", Flags: FlagSorted},
	{Block: token.BlockUses, Name: "USE_OPENLDAP"},
	{Block: token.BlockUses, Name: "WANT_OPENLDAP_SASL"},
	{Block: token.BlockUses, Name: "USE_PERL5", Flags: FlagSorted, Uses: []string{"perl5"}},
	{Block: token.BlockUses, Name: "USE_PHP", Flags: FlagSorted, Uses: []string{"php"}},
	{Block: token.BlockUses, Name: "IGNORE_WITH_PHP_VER", Uses: []string{"php"}},
	{Block: token.BlockUses, Name: "USE_PYQT", Flags: FlagSorted, Uses: []string{"pyqt"}},
	{Block: token.BlockUses, Name: "USE_PYTHON", Flags: FlagSorted, Uses: []string{"python"}},
	{Block: token.BlockUses, Name: "USE_QT", Flags: FlagSorted, Uses: []string{"qt"}},
	{Block: token.BlockUses, Name: "USE_RC_SUBR"},
	{Block: token.BlockUses, Name: "USE_RUBY"},
	{Block: token.BlockUses, Name: "RUBY_NO_BUILD_DEPENDS"},
	{Block: token.BlockUses, Name: "RUBY_NO_RUN_DEPENDS"},
	{Block: token.BlockUses, Name: "USE_RUBY_EXTCONF"},
	{Block: token.BlockUses, Name: "RUBY_EXTCONF"},
	{Block: token.BlockUses, Name: "RUBY_EXTCONF_SUBDIRS", Flags: FlagSorted},
	{Block: token.BlockUses, Name: "USE_RUBY_SETUP"},
	{Block: token.BlockUses, Name: "RUBY_SETUP"},
	{Block: token.BlockUses, Name: "USE_RUBYGEMS"},
	{Block: token.BlockUses, Name: "USE_SDL", Flags: FlagSorted, Uses: []string{"sdl"}},
	{Block: token.BlockUses, Name: "USE_SM_COMPAT"},
	{Block: token.BlockUses, Name: "USE_SUBMAKE"},
	{Block: token.BlockUses, Name: "USE_TEX", Flags: FlagSorted},
	{Block: token.BlockUses, Name: "USE_WX"},
	{Block: token.BlockUses, Name: "USE_WX_NOT"},
	{Block: token.BlockUses, Name: "WANT_WX"},
	{Block: token.BlockUses, Name: "WANT_WX_VER"},
	{Block: token.BlockUses, Name: "WITH_WX_VER"},
	{Block: token.BlockUses, Name: "WX_COMPS", Flags: FlagSorted},
	{Block: token.BlockUses, Name: "WX_CONF_ARGS"},
	{Block: token.BlockUses, Name: "WX_PREMK"},
	{Block: token.BlockUses, Name: "USE_XFCE", Flags: FlagSorted, Uses: []string{"xfce"}},
	{Block: token.BlockUses, Name: "USE_XORG", Flags: FlagSorted, Uses: []string{"xorg"}},

	// SHEBANGFIX block
	{Block: token.BlockShebangfix, Name: "SHEBANG_FILES", Flags: FlagSorted, Uses: []string{"shebangfix"}},
	{Block: token.BlockShebangfix, Name: "SHEBANG_GLOB", Flags: FlagSorted, Uses: []string{"shebangfix"}},
	{Block: token.BlockShebangfix, Name: "SHEBANG_REGEX", Uses: []string{"shebangfix"}},
	{Block: token.BlockShebangfix, Name: "SHEBANG_LANG", Flags: FlagSorted, Uses: []string{"shebangfix"}},

	// UNIQUEFILES block
	{Block: token.BlockUniquefiles, Name: "UNIQUE_PREFIX", Uses: []string{"uniquefiles"}},
	{Block: token.BlockUniquefiles, Name: "UNIQUE_PREFIX_FILES", Flags: FlagSorted, Uses: []string{"uniquefiles"}},
	{Block: token.BlockUniquefiles, Name: "UNIQUE_SUFFIX", Uses: []string{"uniquefiles"}},
	{Block: token.BlockUniquefiles, Name: "UNIQUE_SUFFIX_FILES", Flags: FlagSorted, Uses: []string{"uniquefiles"}},

	// APACHE block
	{Block: token.BlockApache, Name: "AP_EXTRAS", Uses: []string{"apache"}},
	{Block: token.BlockApache, Name: "AP_INC", Uses: []string{"apache"}},
	{Block: token.BlockApache, Name: "AP_LIB", Uses: []string{"apache"}},
	{Block: token.BlockApache, Name: "AP_FAST_BUILD", Uses: []string{"apache"}},
	{Block: token.BlockApache, Name: "AP_GENPLIST", Uses: []string{"apache"}},
	{Block: token.BlockApache, Name: "MODULENAME", Uses: []string{"apache"}},
	{Block: token.BlockApache, Name: "SHORTMODNAME", Uses: []string{"apache"}},
	{Block: token.BlockApache, Name: "SRC_FILE", Uses: []string{"apache"}},

	// ELIXIR block
	{Block: token.BlockElixir, Name: "ELIXIR_APP_NAME", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "ELIXIR_LIB_ROOT", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "ELIXIR_APP_ROOT", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "ELIXIR_HIDDEN", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "ELIXIR_LOCALE", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_CMD", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_COMPILE", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_REWRITE", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_BUILD_DEPS", Flags: FlagSorted, Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_RUN_DEPS", Flags: FlagSorted, Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_BUILD_NAME", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_TARGET", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_EXTRA_APPS", Flags: FlagSorted, Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_EXTRA_DIRS", Flags: FlagSorted, Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_EXTRA_FILES", Flags: FlagSorted, Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_ENV", Uses: []string{"elixir"}},
	{Block: token.BlockElixir, Name: "MIX_ENV_NAME", Uses: []string{"elixir"}},

	// EMACS block
	{Block: token.BlockEmacs, Name: "EMACS_FLAVORS_EXCLUDE", Uses: []string{"emacs"}},
	{Block: token.BlockEmacs, Name: "EMACS_NO_DEPENDS", Uses: []string{"emacs"}},

	// ERLANG block
	{Block: token.BlockErlang, Name: "ERL_APP_NAME", Uses: []string{"erlang"}},
	{Block: token.BlockErlang, Name: "ERL_APP_ROOT", Uses: []string{"erlang"}},
	{Block: token.BlockErlang, Name: "REBAR_CMD", Uses: []string{"erlang"}},
	{Block: token.BlockErlang, Name: "REBAR3_CMD", Uses: []string{"erlang"}},
	{Block: token.BlockErlang, Name: "REBAR_PROFILE", Uses: []string{"erlang"}},
	{Block: token.BlockErlang, Name: "REBAR_TARGETS", Flags: FlagSorted, Uses: []string{"erlang"}},
	{Block: token.BlockErlang, Name: "ERL_BUILD_NAME", Uses: []string{"erlang"}},
	{Block: token.BlockErlang, Name: "ERL_BUILD_DEPS", Flags: FlagSorted, Uses: []string{"erlang"}},
	{Block: token.BlockErlang, Name: "ERL_RUN_DEPS", Flags: FlagSorted, Uses: []string{"erlang"}},
	{Block: token.BlockErlang, Name: "ERL_DOCS", Flags: FlagSorted, Uses: []string{"erlang"}},

	// CMAKE block
	{Block: token.BlockCmake, Name: "CMAKE_ARGS", Flags: FlagIgnoreWrapcol, Uses: []string{"cmake"}},
	{Block: token.BlockCmake, Name: "CMAKE_ON", Flags: FlagSorted, Uses: []string{"cmake"}},
	{Block: token.BlockCmake, Name: "CMAKE_OFF", Flags: FlagSorted, Uses: []string{"cmake"}},
	{Block: token.BlockCmake, Name: "CMAKE_BUILD_TYPE", Uses: []string{"cmake"}},
	{Block: token.BlockCmake, Name: "CMAKE_INSTALL_PREFIX", Uses: []string{"cmake"}},
	{Block: token.BlockCmake, Name: "CMAKE_SOURCE_PATH", Uses: []string{"cmake"}},

	// CONFIGURE block
	{Block: token.BlockConfigure, Name: "HAS_CONFIGURE"},
	{Block: token.BlockConfigure, Name: "GNU_CONFIGURE"},
	{Block: token.BlockConfigure, Name: "GNU_CONFIGURE_PREFIX"},
	{Block: token.BlockConfigure, Name: "CONFIGURE_CMD"},
	{Block: token.BlockConfigure, Name: "CONFIGURE_LOG"},
	{Block: token.BlockConfigure, Name: "CONFIGURE_SCRIPT"},
	{Block: token.BlockConfigure, Name: "CONFIGURE_SHELL"},
	{Block: token.BlockConfigure, Name: "CONFIGURE_ARGS", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockConfigure, Name: "CONFIGURE_ENV", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockConfigure, Name: "CONFIGURE_OUTSOURCE"},
	{Block: token.BlockConfigure, Name: "CONFIGURE_TARGET"},

	// QMAKE block
	{Block: token.BlockQmake, Name: "QMAKE_ARGS", Flags: FlagIgnoreWrapcol, Uses: []string{"qmake"}},
	{Block: token.BlockQmake, Name: "QMAKE_ENV", Uses: []string{"qmake"}},
	{Block: token.BlockQmake, Name: "QMAKE_CONFIGURE_ARGS", Uses: []string{"qmake"}},
	{Block: token.BlockQmake, Name: "QMAKE_SOURCE_PATH", Uses: []string{"qmake"}},

	// MESON block
	{Block: token.BlockMeson, Name: "MESON_ARGS", Flags: FlagIgnoreWrapcol, Uses: []string{"meson"}},
	{Block: token.BlockMeson, Name: "MESON_BUILD_DIR", Uses: []string{"meson"}},

	// SCONS block
	{Block: token.BlockScons, Name: "CCFLAGS", Uses: []string{"scons"}},
	{Block: token.BlockScons, Name: "CXXFLAGS_SCONS", Uses: []string{"scons"}},
	{Block: token.BlockScons, Name: "LINKFLAGS", Uses: []string{"scons"}},
	{Block: token.BlockScons, Name: "SCONS_ARGS", Flags: FlagIgnoreWrapcol, Uses: []string{"scons"}},
	{Block: token.BlockScons, Name: "SCONS_BUILDENV", Uses: []string{"scons"}},
	{Block: token.BlockScons, Name: "SCONS_ENV", Uses: []string{"scons"}},
	{Block: token.BlockScons, Name: "SCONS_TARGET", Uses: []string{"scons"}},

	// CABAL block
	{Block: token.BlockCabal, Name: "USE_CABAL", Flags: FlagSorted | FlagPrintAsNewlines | FlagCaseSensitiveSort, Uses: []string{"cabal"}},
	{Block: token.BlockCabal, Name: "CABAL_BOOTSTRAP", Uses: []string{"cabal"}},
	{Block: token.BlockCabal, Name: "CABAL_FLAGS", Uses: []string{"cabal"}},
	{Block: token.BlockCabal, Name: "CABAL_REVISION", Uses: []string{"cabal"}},
	{Block: token.BlockCabal, Name: "EXECUTABLES", Flags: FlagSorted, Uses: []string{"cabal"}},
	{Block: token.BlockCabal, Name: "SKIP_CABAL_PLIST", Uses: []string{"cabal"}},
	{Block: token.BlockCabal, Name: "CABAL_WRAPPER_SCRIPTS", Flags: FlagSorted, Uses: []string{"cabal"}},
	{Block: token.BlockCabal, Name: "CABAL_PROJECT", Uses: []string{"cabal"}},

	// CARGO block
	{Block: token.BlockCargo, Name: "CARGO_CRATES", Flags: FlagSorted | FlagPrintAsNewlines | FlagCaseSensitiveSort, Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_USE_GITHUB", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_USE_GITLAB", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_GIT_SUBDIR", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_CARGOTOML", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_CARGOLOCK", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_ENV", Flags: FlagIgnoreWrapcol, Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "RUSTFLAGS", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_CONFIGURE", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_UPDATE_ARGS", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_BUILD", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_BUILD_ARGS", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_INSTALL", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_INSTALL_ARGS", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_INSTALL_PATH", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_TEST", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_TEST_ARGS", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_TARGET_DIR", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_DIST_SUBDIR", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_VENDOR_DIR", Uses: []string{"cargo"}},
	{Block: token.BlockCargo, Name: "CARGO_FEATURES", Flags: FlagSorted, Uses: []string{"cargo"}},

	// GO block
	{Block: token.BlockGo, Name: "GO_MODULE", Uses: []string{"go"}},
	{Block: token.BlockGo, Name: "GO_PKGNAME", Uses: []string{"go"}},
	{Block: token.BlockGo, Name: "GO_TARGET", Flags: FlagSorted, Uses: []string{"go"}},
	{Block: token.BlockGo, Name: "GO_TESTTARGET", Uses: []string{"go"}},
	{Block: token.BlockGo, Name: "GO_BUILDFLAGS", Flags: FlagIgnoreWrapcol, Uses: []string{"go"}},
	{Block: token.BlockGo, Name: "GO_TESTFLAGS", Flags: FlagIgnoreWrapcol, Uses: []string{"go"}},
	{Block: token.BlockGo, Name: "CGO_ENABLED", Uses: []string{"go"}},
	{Block: token.BlockGo, Name: "CGO_CFLAGS", Flags: FlagSorted, Uses: []string{"go"}},
	{Block: token.BlockGo, Name: "CGO_LDFLAGS", Flags: FlagSorted, Uses: []string{"go"}},

	// LAZARUS block
	{Block: token.BlockLazarus, Name: "LAZARUS_PROJECT_FILES", Flags: FlagSorted, Uses: []string{"lazarus"}},
	{Block: token.BlockLazarus, Name: "LAZARUS_DIR", Uses: []string{"lazarus"}},
	{Block: token.BlockLazarus, Name: "LAZBUILD_ARGS", Flags: FlagSorted, Uses: []string{"lazarus"}},
	{Block: token.BlockLazarus, Name: "LAZARUS_NO_FLAVORS", Uses: []string{"lazarus"}},

	// LINUX block
	{Block: token.BlockLinux, Name: "BIN_DISTNAMES", Flags: FlagSorted, Uses: []string{"linux"}},
	{Block: token.BlockLinux, Name: "LIB_DISTNAMES", Flags: FlagSorted, Uses: []string{"linux"}},
	{Block: token.BlockLinux, Name: "SHARE_DISTNAMES", Flags: FlagSorted, Uses: []string{"linux"}},
	{Block: token.BlockLinux, Name: "SRC_DISTFILES", Flags: FlagSorted, Uses: []string{"linux"}},
	{Block: token.BlockLinux, Name: "USE_LINUX", Flags: FlagSorted, Uses: []string{"linux"}},
	{Block: token.BlockLinux, Name: "USE_LINUX_RPM", Uses: []string{"linux"}},
	{Block: token.BlockLinux, Name: "USE_LINUX_RPM_BAD_PERMS", Uses: []string{"linux"}},

	// NUGET block
	{Block: token.BlockNuget, Name: "NUGET_DEPENDS", Flags: FlagSorted, Uses: []string{"mono"}},
	{Block: token.BlockNuget, Name: "NUGET_PACKAGEDIR", Uses: []string{"mono"}},
	{Block: token.BlockNuget, Name: "NUGET_LAYOUT", Uses: []string{"mono"}},
	{Block: token.BlockNuget, Name: "NUGET_FEEDS", Flags: FlagSorted, Uses: []string{"mono"}},
	{Block: token.BlockNuget, Name: "PAKET_PACKAGEDIR", Uses: []string{"mono"}},
	{Block: token.BlockNuget, Name: "PAKET_DEPENDS", Flags: FlagSorted, Uses: []string{"mono"}},

	// MAKE block
	{Block: token.BlockMake, Name: "MAKEFILE"},
	{Block: token.BlockMake, Name: "MAKE_CMD"},
	{Block: token.BlockMake, Name: "MAKE_ARGS", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockMake, Name: "MAKE_ENV", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockMake, Name: "MAKE_FLAGS"},
	{Block: token.BlockMake, Name: "MAKE_JOBS_UNSAFE"},
	{Block: token.BlockMake, Name: "DESTDIRNAME"},
	{Block: token.BlockMake, Name: "ALL_TARGET"},
	{Block: token.BlockMake, Name: "INSTALL_TARGET"},
	{Block: token.BlockMake, Name: "TEST_ARGS", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockMake, Name: "TEST_ENV", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockMake, Name: "TEST_TARGET"},

	// CFLAGS block: compiler flags are habitually written "VAR+=..." in
	// their own visual column, so they never join a paragraph's shared
	// goal column.
	{Block: token.BlockCflags, Name: "CFLAGS", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "CFLAGS_clang", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "CFLAGS_gcc", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "CPPFLAGS", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "CXXFLAGS", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "CXXFLAGS_clang", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "CXXFLAGS_gcc", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "FFLAGS", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "FCFLAGS", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "RUSTFLAGS_CROSS", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "LDFLAGS", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "LIBS", Flags: FlagSkipGoalcol},
	{Block: token.BlockCflags, Name: "LLD_UNSAFE"},
	{Block: token.BlockCflags, Name: "SSP_UNSAFE"},
	{Block: token.BlockCflags, Name: "SSP_CFLAGS"},

	// CONFLICTS block
	{Block: token.BlockConflicts, Name: "CONFLICTS", Flags: FlagSorted},
	{Block: token.BlockConflicts, Name: "CONFLICTS_BUILD", Flags: FlagSorted},
	{Block: token.BlockConflicts, Name: "CONFLICTS_INSTALL", Flags: FlagSorted},

	// STANDARD block: the grab bag of framework knobs
	{Block: token.BlockStandard, Name: "AR"},
	{Block: token.BlockStandard, Name: "AS"},
	{Block: token.BlockStandard, Name: "CC"},
	{Block: token.BlockStandard, Name: "CPP"},
	{Block: token.BlockStandard, Name: "CXX"},
	{Block: token.BlockStandard, Name: "LD"},
	{Block: token.BlockStandard, Name: "STRIP"},
	{Block: token.BlockStandard, Name: "ETCDIR"},
	{Block: token.BlockStandard, Name: "NO_ARCH"},
	{Block: token.BlockStandard, Name: "NO_ARCH_IGNORE", Flags: FlagSorted},
	{Block: token.BlockStandard, Name: "NO_BUILD"},
	{Block: token.BlockStandard, Name: "NO_INSTALL"},
	{Block: token.BlockStandard, Name: "NO_MTREE"},
	{Block: token.BlockStandard, Name: "NO_TEST"},
	{Block: token.BlockStandard, Name: "NO_WRKDIR"},
	{Block: token.BlockStandard, Name: "NOPRECIOUSMAKEVARS"},
	{Block: token.BlockStandard, Name: "PORTSCOUT"},
	{Block: token.BlockStandard, Name: "SCRIPTS_ENV", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockStandard, Name: "SUB_FILES", Flags: FlagSorted},
	{Block: token.BlockStandard, Name: "SUB_LIST", Flags: FlagSorted},
	{Block: token.BlockStandard, Name: "BINARY_ALIAS", Flags: FlagSorted},
	{Block: token.BlockStandard, Name: "BINARY_WRAPPERS", Flags: FlagSorted},
	{Block: token.BlockStandard, Name: "DESKTOP_ENTRIES", Flags: FlagPrintAsNewlines | FlagIgnoreWrapcol},
	{Block: token.BlockStandard, Name: "DAEMONARGS"},
	{Block: token.BlockStandard, Name: "INSTALLS_ICONS"},
	{Block: token.BlockStandard, Name: "INSTALLS_OMF"},

	// WRKSRC block
	{Block: token.BlockWrksrc, Name: "NO_WRKSUBDIR"},
	{Block: token.BlockWrksrc, Name: "WRKSRC"},
	{Block: token.BlockWrksrc, Name: "WRKSRC_SUBDIR"},
	{Block: token.BlockWrksrc, Name: "BUILD_WRKSRC"},
	{Block: token.BlockWrksrc, Name: "CONFIGURE_WRKSRC"},
	{Block: token.BlockWrksrc, Name: "INSTALL_WRKSRC"},
	{Block: token.BlockWrksrc, Name: "TEST_WRKSRC"},

	// USERS block
	{Block: token.BlockUsers, Name: "USERS", Flags: FlagSorted},
	{Block: token.BlockUsers, Name: "GROUPS", Flags: FlagSorted},

	// PLIST block
	{Block: token.BlockPlist, Name: "DESCR"},
	{Block: token.BlockPlist, Name: "DISTINFO_FILE"},
	{Block: token.BlockPlist, Name: "PKGHELP"},
	{Block: token.BlockPlist, Name: "PKGINSTALL"},
	{Block: token.BlockPlist, Name: "PKGDEINSTALL"},
	{Block: token.BlockPlist, Name: "PKGMESSAGE"},
	{Block: token.BlockPlist, Name: "PKG_DBDIR"},
	{Block: token.BlockPlist, Name: "PKG_SUFX"},
	{Block: token.BlockPlist, Name: "PLIST"},
	{Block: token.BlockPlist, Name: "POST_PLIST"},
	{Block: token.BlockPlist, Name: "TMPPLIST"},
	{Block: token.BlockPlist, Name: "INFO", Flags: FlagSorted},
	{Block: token.BlockPlist, Name: "INFO_PATH"},
	{Block: token.BlockPlist, Name: "PLIST_DIRS", Flags: FlagSorted | FlagCaseSensitiveSort},
	{Block: token.BlockPlist, Name: "PLIST_FILES", Flags: FlagSorted | FlagCaseSensitiveSort},
	{Block: token.BlockPlist, Name: "PLIST_SUB", Flags: FlagSorted},
	{Block: token.BlockPlist, Name: "PORTDATA", Flags: FlagSorted | FlagCaseSensitiveSort},
	{Block: token.BlockPlist, Name: "PORTDOCS", Flags: FlagSorted | FlagCaseSensitiveSort},
	{Block: token.BlockPlist, Name: "PORTEXAMPLES", Flags: FlagSorted | FlagCaseSensitiveSort},

	// OPTDEF block
	{Block: token.BlockOptdef, Name: "OPTIONS_DEFINE", Flags: FlagSorted},
	{Block: token.BlockOptdef, Name: "OPTIONS_DEFAULT", Flags: FlagSorted},
	{Block: token.BlockOptdef, Name: "OPTIONS_GROUP", Flags: FlagSorted},
	{Block: token.BlockOptdef, Name: "OPTIONS_MULTI", Flags: FlagSorted},
	{Block: token.BlockOptdef, Name: "OPTIONS_RADIO", Flags: FlagSorted},
	{Block: token.BlockOptdef, Name: "OPTIONS_SINGLE", Flags: FlagSorted},
	{Block: token.BlockOptdef, Name: "OPTIONS_EXCLUDE", Flags: FlagSorted},
	{Block: token.BlockOptdef, Name: "OPTIONS_SLAVE", Flags: FlagSorted},
	{Block: token.BlockOptdef, Name: "OPTIONS_OVERRIDE", Flags: FlagSorted},
	{Block: token.BlockOptdef, Name: "NO_OPTIONS_SORT"},
	{Block: token.BlockOptdef, Name: "OPTIONS_SUB"},
}

// specialVars declares formatting flags for variables that never
// participate in block ordering (they always land in BlockUnknown) but
// still carry a policy the renderer and edit passes must honor.
var specialVars = []VariableRule{
	{Block: token.BlockUnknown, Name: "_LICENSE_LIST", Flags: FlagSorted},
	{Block: token.BlockUnknown, Name: "CO_ENV", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockUnknown, Name: "D4P_ENV", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockUnknown, Name: "DEV_ERROR", Flags: FlagIgnoreWrapcol | FlagPrintAsNewlines},
	{Block: token.BlockUnknown, Name: "DEV_WARNING", Flags: FlagIgnoreWrapcol | FlagPrintAsNewlines},
	{Block: token.BlockUnknown, Name: "GENERATED", Flags: FlagNotComparable},
	{Block: token.BlockUnknown, Name: "GN_ARGS", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockUnknown, Name: "GO_ENV", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockUnknown, Name: "IPXE_BUILDCFG", Flags: FlagPrintAsNewlines},
	{Block: token.BlockUnknown, Name: "MASTER_SITES_ABBREVS", Flags: FlagPrintAsNewlines},
	{Block: token.BlockUnknown, Name: "MOZ_OPTIONS", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockUnknown, Name: "QA_ENV", Flags: FlagIgnoreWrapcol},
	{Block: token.BlockUnknown, Name: "SUBDIR", Flags: FlagPrintAsNewlines | FlagSkipGoalcol},
	{Block: token.BlockUnknown, Name: "SHELL", Flags: FlagLeaveUnformatted},
	{Block: token.BlockUnknown, Name: "MOVED", Flags: FlagLeaveUnformatted},
	{Block: token.BlockUnknown, Name: "UPDATING", Flags: FlagLeaveUnformatted},
}

// TargetRule is one row of the target-order table.
type TargetRule struct {
	Name      string
	OptHelper bool
}

// targetOrder mirrors the framework's own build-phase sequence. Entries
// with OptHelper set may appear as <name>-<OPT>-on/-off variants in a
// Makefile using options helpers.
var targetOrder = []TargetRule{
	{Name: "all"},
	{Name: "post-chroot"},
	{Name: "pre-everything"},
	{Name: "fetch"},
	{Name: "fetch-list"},
	{Name: "fetch-recursive"},
	{Name: "fetch-recursive-list"},
	{Name: "fetch-required"},
	{Name: "fetch-required-list"},
	{Name: "fetch-specials"},
	{Name: "fetch-url-list"},
	{Name: "fetch-urlall-list"},
	{Name: "pre-fetch", OptHelper: true},
	{Name: "do-fetch", OptHelper: true},
	{Name: "post-fetch", OptHelper: true},
	{Name: "checksum"},
	{Name: "checksum-recursive"},
	{Name: "extract"},
	{Name: "pre-extract", OptHelper: true},
	{Name: "do-extract", OptHelper: true},
	{Name: "post-extract", OptHelper: true},
	{Name: "patch"},
	{Name: "pre-patch", OptHelper: true},
	{Name: "do-patch", OptHelper: true},
	{Name: "post-patch", OptHelper: true},
	{Name: "configure"},
	{Name: "pre-configure", OptHelper: true},
	{Name: "do-configure", OptHelper: true},
	{Name: "post-configure", OptHelper: true},
	{Name: "build"},
	{Name: "pre-build", OptHelper: true},
	{Name: "do-build", OptHelper: true},
	{Name: "post-build", OptHelper: true},
	{Name: "stage"},
	{Name: "restage"},
	{Name: "pre-install", OptHelper: true},
	{Name: "do-install", OptHelper: true},
	{Name: "post-install", OptHelper: true},
	{Name: "post-stage", OptHelper: true},
	{Name: "install"},
	{Name: "reinstall"},
	{Name: "deinstall"},
	{Name: "deinstall-all"},
	{Name: "test"},
	{Name: "pre-test", OptHelper: true},
	{Name: "do-test", OptHelper: true},
	{Name: "post-test", OptHelper: true},
	{Name: "package"},
	{Name: "package-name"},
	{Name: "package-recursive"},
	{Name: "repackage"},
	{Name: "pre-package", OptHelper: true},
	{Name: "do-package", OptHelper: true},
	{Name: "post-package", OptHelper: true},
	{Name: "pre-pkg-plist", OptHelper: true},
	{Name: "post-pkg-plist", OptHelper: true},
	{Name: "create-users-groups"},
	{Name: "check-already-installed"},
	{Name: "check-build-conflicts"},
	{Name: "check-config"},
	{Name: "check-conflicts"},
	{Name: "check-deprecated"},
	{Name: "check-install-conflicts"},
	{Name: "check-license"},
	{Name: "check-man"},
	{Name: "check-orphans"},
	{Name: "check-plist"},
	{Name: "check-sanity"},
	{Name: "check-vulnerable"},
	{Name: "checkpatch"},
	{Name: "clean"},
	{Name: "clean-depends"},
	{Name: "config"},
	{Name: "config-conditional"},
	{Name: "config-recursive"},
	{Name: "depends"},
	{Name: "describe"},
	{Name: "distclean"},
	{Name: "makepatch"},
	{Name: "makeplist"},
	{Name: "makesum"},
	{Name: "maintainer"},
	{Name: "readme"},
	{Name: "readmes"},
	{Name: "showconfig"},
	{Name: "showconfig-recursive"},
	{Name: "stage-dir"},
	{Name: "stage-qa"},
	{Name: "rmconfig"},
	{Name: "rmconfig-recursive"},
}
