package rules

import "strings"

// plistKeywords is the set of "@keyword " prefixes stripped from a
// PLIST_FILES-style token before comparing, so "@sample etc/foo.conf"
// sorts next to "etc/foo.conf" rather than by the keyword.
var plistKeywords = textutilKeywordSet()

func textutilKeywordSet() map[string]bool {
	return map[string]bool{
		"@sample": true, "@dir": true, "@comment": true, "@exec": true,
		"@unexec": true, "@mode": true, "@owner": true, "@group": true,
	}
}

func stripPlistKeyword(s string) string {
	fields := strings.SplitN(s, " ", 2)
	if len(fields) == 2 && plistKeywords[fields[0]] {
		return strings.TrimLeft(fields[1], " \t")
	}
	return s
}

// Fixed relative orderings for the framework component vocabularies whose
// tokens don't sort well lexically (e.g. "core" must precede "widgets" for
// USE_QT regardless of alphabetical order because the framework's own
// dependency order matters). A token outside its vocabulary falls back to
// plain string comparison.
var useGnomeOrder = []string{
	"glib12", "glib20", "glibmm", "atk", "atkmm", "pango", "pangomm",
	"pangox-compat", "cairo", "cairomm", "gdkpixbuf", "gdkpixbuf2",
	"gtk12", "gtk20", "gtk30", "gtkmm24", "gtkmm30", "gtksharp20",
	"gtksourceview2", "gtksourceview3", "gtk-update-icon-cache",
	"libglade2", "librsvg2", "libsigc++12", "libsigc++20",
	"libxml++26", "libxml2", "libxslt", "intltool", "intlhack",
	"introspection", "dconf", "gconf2", "gconfmm26", "gsound", "gvfs",
	"libgda5", "libgda5-ui", "libgdamm5", "libgsf", "libidl",
	"libbonobo", "libbonoboui", "libgnome", "libgnomecanvas",
	"libgnomekbd", "libgnomeui", "libwnck", "libwnck3", "metacity",
	"nautilus3", "orbit2", "vte3", "gnomecontrolcenter3",
	"gnomedesktop3", "gnomemenus3", "gnomemimedata", "gnomeprefix",
	"evolutiondataserver3", "pygobject", "pygobject3", "py3gobject3",
	"pygtk2", "referencehack",
}

var useKDEOrder = []string{
	"ecm",
	"activities", "activities-stats", "activitymanagerd", "akonadi",
	"akonadicalendar", "akonadiconsole", "akonadicontacts",
	"akonadiimportwizard", "akonadimime", "akonadinotes",
	"akonadisearch", "alarmcalendar", "apidox", "archive", "attica",
	"attica5", "auth", "baloo", "baloo-widgets", "blog", "bookmarks",
	"breeze", "breeze-gtk", "breeze-icons", "calendarcore",
	"calendarsupport", "calendarutils", "codecs", "completion",
	"config", "configwidgets", "contacts", "coreaddons", "crash",
	"dbusaddons", "designerplugin", "dnssd", "doctools", "emoticons",
	"eventviews", "filemetadata", "frameworkintegration",
	"globalaccel", "grantlee-editor", "grantleetheme",
	"gravatar", "guiaddons", "holidays", "i18n", "iconthemes",
	"identitymanagement", "idletime", "imap", "incidenceeditor",
	"init", "itemmodels", "itemviews", "jobwidgets", "js",
	"jsembed", "kcmutils", "kdav", "kde-cli-tools", "kde-gtk-config",
	"kdeclarative", "kded", "kdelibs4support", "kdepim-addons",
	"kdepim-apps-libs", "kdepim-runtime", "kdeplasma-addons",
	"kdesu", "kdewebkit", "kgamma5", "khtml", "kimageformats",
	"kio", "kirigami2", "kitinerary", "kmenuedit", "kontactinterface",
	"kpkpass", "kross", "kscreen", "kscreenlocker", "ksmtp",
	"ksshaskpass", "ksysguard", "kwallet-pam", "kwayland-integration",
	"kwin", "kwrited", "ldap", "libkcddb", "libkcompactdisc",
	"libkdcraw", "libkdegames", "libkdepim", "libkeduvocdocument",
	"libkexiv2", "libkipi", "libkleo", "libksane", "libkscreen",
	"libksieve", "libksysguard", "mailcommon", "mailimporter",
	"mailtransport", "marble", "mbox-importer", "mediaplayer",
	"messagelib", "milou", "mime", "newstuff", "notifications",
	"notifyconfig", "okular", "oxygen", "oxygen-icons5", "package",
	"parts", "people", "pim-data-exporter", "pimcommon", "pimtextedit",
	"plasma-browser-integration", "plasma-desktop", "plasma-framework",
	"plasma-integration", "plasma-pa", "plasma-sdk", "plasma-workspace",
	"plasma-workspace-wallpapers", "plotting", "polkit-kde-agent-1",
	"powerdevil", "prison", "pty", "purpose", "qqc2-desktop-style",
	"runner", "service", "solid", "sonnet", "syndication",
	"syntaxhighlighting", "systemsettings", "texteditor",
	"textwidgets", "threadweaver", "tnef", "unitconversion",
	"user-manager", "wallet", "wayland", "widgetsaddons",
	"windowsystem", "xmlgui", "xmlrpcclient",
}

var usePyQtOrder = []string{
	"core", "dbus", "dbussupport", "demo", "designer",
	"designerplugin", "doc", "gui", "help", "multimedia",
	"multimediawidgets", "network", "opengl", "printsupport", "qml",
	"qscintilla2", "quickwidgets", "serialport", "sip", "sql", "svg",
	"test", "webchannel", "webengine", "webkit", "webkitwidgets",
	"websockets", "widgets", "xml", "xmlpatterns",
}

var useQtOrder = []string{
	"3d", "assistant", "base", "buildtools", "canvas3d", "charts",
	"concurrent", "connectivity", "core", "datavis3d", "dbus",
	"declarative", "designer", "diag", "doc", "examples", "gamepad",
	"graphicaleffects", "gui", "help", "imageformats", "l10n",
	"linguist", "linguisttools", "location", "multimedia", "network",
	"networkauth", "opengl", "paths", "phonon4", "pixeltool",
	"plugininfo", "printsupport", "qdbus", "qdoc", "qdoc-data", "qev",
	"qmake", "quickcontrols", "quickcontrols2", "remoteobjects",
	"script", "scripttools", "scxml", "sensors", "serialbus",
	"serialport", "speech", "sql", "sql-ibase", "sql-mysql",
	"sql-odbc", "sql-pgsql", "sql-sqlite2", "sql-sqlite3", "sql-tds",
	"svg", "testlib", "uiplugin", "uitools", "virtualkeyboard",
	"wayland", "webchannel", "webengine", "webglplugin", "webkit",
	"websockets", "websockets-qml", "webview", "widgets", "x11extras",
	"xml", "xmlpatterns",
}

func vocabRank(vocab []string, s string) int {
	for i, v := range vocab {
		if v == s {
			return i
		}
	}
	return len(vocab)
}

func compareByVocab(vocab []string, a, b string) (int, bool) {
	ra, rb := vocabRank(vocab, a), vocabRank(vocab, b)
	if ra == len(vocab) && rb == len(vocab) {
		return 0, false
	}
	return cmpInt(ra, rb), true
}

func compareUseGnome(a, b string) (int, bool) { return compareByVocab(useGnomeOrder, a, b) }
func compareUseKDE(a, b string) (int, bool)   { return compareByVocab(useKDEOrder, a, b) }
func compareUsePyQt(a, b string) (int, bool)  { return compareByVocab(usePyQtOrder, a, b) }
func compareUseQt(a, b string) (int, bool)    { return compareByVocab(useQtOrder, a, b) }

// licensePermsOrder ranks LICENSE_PERMS tokens; the framework's own
// convention lists the "dist-mirror"-style permissive grants before the
// more restrictive "no-"-prefixed ones.
var licensePermsOrder = []string{
	"dist-mirror", "dist-sell", "pkg-mirror", "pkg-sell",
	"auto-accept", "no-auto-accept", "no-dist-mirror", "no-dist-sell",
	"no-pkg-mirror", "no-pkg-sell",
}

func compareLicensePerms(a, b string) (int, bool) { return compareByVocab(licensePermsOrder, a, b) }

func comparePlistFiles(a, b string, caseSensitive bool) int {
	a, b = stripPlistKeyword(a), stripPlistKeyword(b)
	return compareStrings(a, b, caseSensitive)
}

func compareStrings(a, b string, caseSensitive bool) int {
	if !caseSensitive {
		a, b = strings.ToLower(a), strings.ToLower(b)
	}
	return strings.Compare(a, b)
}

// CompareTokens implements the VARIABLE_TOKEN sort comparator of spec.md
// §4.3: end-of-line comments sort last; a variable-specific specialized
// comparator (PLIST_FILES/PLIST_DIRS path-keyword stripping,
// LICENSE_PERMS, USE_GNOME/USE_KDE/USE_PYQT/USE_QT component vocabularies)
// runs before falling back to a case-(in)sensitive string compare.
func (e *Engine) CompareTokens(varName string, a, b *Token, caseSensitive bool) int {
	if a.IsComment != b.IsComment {
		if a.IsComment {
			return 1
		}
		return -1
	}
	if a.IsComment && b.IsComment {
		return 0
	}
	switch varName {
	case "LICENSE_PERMS":
		if r, ok := compareLicensePerms(a.Data, b.Data); ok {
			return r
		}
	case "PLIST_FILES", "PLIST_DIRS":
		return comparePlistFiles(a.Data, b.Data, caseSensitive)
	case "USE_GNOME":
		if r, ok := compareUseGnome(a.Data, b.Data); ok {
			return r
		}
	case "USE_KDE":
		if r, ok := compareUseKDE(a.Data, b.Data); ok {
			return r
		}
	case "USE_PYQT":
		if r, ok := compareUsePyQt(a.Data, b.Data); ok {
			return r
		}
	case "USE_QT":
		if r, ok := compareUseQt(a.Data, b.Data); ok {
			return r
		}
	}
	return compareStrings(a.Data, b.Data, caseSensitive)
}

// Token is the minimal view CompareTokens needs of a VARIABLE_TOKEN: its
// raw data and whether it is actually a trailing inline comment (which
// always sorts last). Kept local to rules to avoid importing the token
// package's full Token type into the comparator signature.
type Token struct {
	Data      string
	IsComment bool
}
