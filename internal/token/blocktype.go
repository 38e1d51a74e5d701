package token

// BlockType names one section of the canonical variable ordering. The
// order of the constants themselves carries no meaning; block order is
// defined by the rules engine's variable-order table, not by this enum.
type BlockType int

const (
	BlockPortname BlockType = iota
	BlockPatchfiles
	BlockMaintainer
	BlockLicense
	BlockLicenseOld
	BlockBroken
	BlockDepends
	BlockFlavors
	BlockFlavorsHelper
	BlockUses
	BlockShebangfix
	BlockUniquefiles
	BlockApache
	BlockElixir
	BlockEmacs
	BlockErlang
	BlockCmake
	BlockConfigure
	BlockQmake
	BlockMeson
	BlockScons
	BlockCabal
	BlockCargo
	BlockGo
	BlockLazarus
	BlockLinux
	BlockNuget
	BlockMake
	BlockCflags
	BlockConflicts
	BlockStandard
	BlockWrksrc
	BlockUsers
	BlockPlist
	BlockOptdef
	BlockOptdesc
	BlockOpthelper
	BlockUnknown
)

var blockNames = map[BlockType]string{
	BlockPortname:      "PORTNAME",
	BlockPatchfiles:    "PATCHFILES",
	BlockMaintainer:    "MAINTAINER",
	BlockLicense:       "LICENSE",
	BlockLicenseOld:    "LICENSE_OLD",
	BlockBroken:        "BROKEN",
	BlockDepends:       "DEPENDS",
	BlockFlavors:       "FLAVORS",
	BlockFlavorsHelper: "FLAVORS_HELPER",
	BlockUses:          "USES",
	BlockShebangfix:    "SHEBANGFIX",
	BlockUniquefiles:   "UNIQUEFILES",
	BlockApache:        "APACHE",
	BlockElixir:        "ELIXIR",
	BlockEmacs:         "EMACS",
	BlockErlang:        "ERLANG",
	BlockCmake:         "CMAKE",
	BlockConfigure:     "CONFIGURE",
	BlockQmake:         "QMAKE",
	BlockMeson:         "MESON",
	BlockScons:         "SCONS",
	BlockCabal:         "CABAL",
	BlockCargo:         "CARGO",
	BlockGo:            "GO",
	BlockLazarus:       "LAZARUS",
	BlockLinux:         "LINUX",
	BlockNuget:         "NUGET",
	BlockMake:          "MAKE",
	BlockCflags:        "CFLAGS",
	BlockConflicts:     "CONFLICTS",
	BlockStandard:      "STANDARD",
	BlockWrksrc:        "WRKSRC",
	BlockUsers:         "USERS",
	BlockPlist:         "PLIST",
	BlockOptdef:        "OPTDEF",
	BlockOptdesc:       "OPTDESC",
	BlockOpthelper:     "OPTHELPER",
	BlockUnknown:       "UNKNOWN",
}

func (b BlockType) String() string {
	if s, ok := blockNames[b]; ok {
		return s
	}
	return "UNKNOWN"
}
