package rules

import (
	"testing"

	"foss.freebsd.org/portfmt/internal/token"
)

func TestGeneratedArchQualifiedNames(t *testing.T) {
	e := Default()
	for _, name := range []string{
		"BROKEN_aarch64",
		"IGNORE_i386",
		"BROKEN_FreeBSD_12_powerpc64",
		"IGNORE_FreeBSD_13_amd64",
		"BROKEN_FreeBSD_11",
		"IGNORE_FreeBSD",
	} {
		rule, ok := e.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) should find a generated table entry", name)
			continue
		}
		if rule.Block != token.BlockBroken {
			t.Errorf("%s block = %v, want %v", name, rule.Block, token.BlockBroken)
		}
	}
}

func TestGeneratedSSLProviderNames(t *testing.T) {
	e := Default()
	for _, name := range []string{
		"BROKEN_SSL_openssl",
		"BROKEN_SSL_REASON_libressl",
		"IGNORE_SSL_base",
		"IGNORE_SSL_REASON_openssl111",
	} {
		if _, ok := e.Lookup(name); !ok {
			t.Errorf("Lookup(%q) should find a generated SSL-provider entry", name)
		}
	}
}

// The order table's block column must be contiguous: once a block ends,
// it never reappears later in the table. InsertVariable depends on this
// to find block boundaries with a single scan.
func TestOrderTableBlocksAreContiguous(t *testing.T) {
	e := Default()
	seen := map[token.BlockType]bool{}
	var prev token.BlockType = -1
	for _, r := range e.order {
		if r.Block == prev {
			continue
		}
		if seen[r.Block] {
			t.Fatalf("block %v reappears after ending (at variable %s)", r.Block, r.Name)
		}
		seen[r.Block] = true
		prev = r.Block
	}
}

func TestOrderTableHasNoDuplicateNames(t *testing.T) {
	e := Default()
	seen := map[string]bool{}
	for _, r := range e.order {
		if seen[r.Name] {
			t.Errorf("variable %s appears twice in the order table", r.Name)
		}
		seen[r.Name] = true
	}
}

func TestTargetOrderPhases(t *testing.T) {
	e := Default()
	cases := []struct{ before, after string }{
		{"fetch", "checksum"},
		{"checksum", "extract"},
		{"extract", "patch"},
		{"patch", "configure"},
		{"configure", "build"},
		{"build", "stage"},
		{"stage", "install"},
		{"install", "package"},
		{"do-fetch", "pre-extract"},
	}
	for _, c := range cases {
		if e.CompareTargetOrder(c.before, c.after) >= 0 {
			t.Errorf("target %s should sort before %s", c.before, c.after)
		}
	}
}

func TestTargetOrderOptHelperFlag(t *testing.T) {
	e := Default()
	byName := map[string]TargetRule{}
	for _, r := range e.Targets() {
		byName[r.Name] = r
	}
	for _, name := range []string{"pre-install", "do-install", "post-install", "do-test"} {
		r, ok := byName[name]
		if !ok {
			t.Errorf("target %s missing from the table", name)
			continue
		}
		if !r.OptHelper {
			t.Errorf("target %s should be marked OptHelper", name)
		}
	}
	if byName["fetch"].OptHelper {
		t.Error("target fetch should not be marked OptHelper")
	}
}

func TestSpecialVarsCarryPolicy(t *testing.T) {
	e := Default()
	rule, ok := e.Lookup("DESKTOP_ENTRIES")
	if !ok {
		t.Fatal("DESKTOP_ENTRIES should be in the order table")
	}
	if !e.PrintAsNewlines(rule) {
		t.Error("DESKTOP_ENTRIES should print one entry per line")
	}

	rule, ok = e.Lookup("SHELL")
	if !ok {
		t.Fatal("SHELL should be in the special-variables table")
	}
	if rule.Block != token.BlockUnknown {
		t.Errorf("SHELL block = %v, want %v", rule.Block, token.BlockUnknown)
	}
	if !e.LeaveUnformatted(rule) {
		t.Error("SHELL should be left unformatted")
	}
}

func TestLicenseLongestPrefixIndex(t *testing.T) {
	e := Default()
	ctx := NewContext(true, nil)
	file := token.NewVariable("LICENSE_FILE", token.ModifierAssign)
	fileMIT := token.NewVariable("LICENSE_FILE_MIT", token.ModifierAssign)
	perms := token.NewVariable("LICENSE_PERMS", token.ModifierAssign)
	if e.CompareOrder(ctx, file, fileMIT, false, false) > 0 {
		t.Error("LICENSE_FILE should not sort after LICENSE_FILE_MIT")
	}
	if e.CompareOrder(ctx, fileMIT, perms, false, false) >= 0 {
		t.Error("LICENSE_FILE_MIT should sort before LICENSE_PERMS (longest prefix is LICENSE_FILE)")
	}
}
