package config

import (
	"strings"
	"testing"

	"foss.freebsd.org/portfmt/internal/parser"
)

func TestLoadFromOverridesBaseFields(t *testing.T) {
	base := parser.DefaultSettings()
	yaml := "wrapcol: 100\nalways_sort: true\n"
	out, err := LoadFrom(strings.NewReader(yaml), base)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if out.Wrapcol != 100 {
		t.Errorf("Wrapcol = %d, want 100", out.Wrapcol)
	}
	if !out.AlwaysSort {
		t.Error("AlwaysSort should be true")
	}
	if out.TargetCommandWrapcol != base.TargetCommandWrapcol {
		t.Errorf("TargetCommandWrapcol = %d, want unchanged base %d", out.TargetCommandWrapcol, base.TargetCommandWrapcol)
	}
}

func TestLoadFromLeavesBaseUntouchedWhenFieldAbsent(t *testing.T) {
	base := parser.DefaultSettings()
	base.AllowFuzzyMatching = true
	out, err := LoadFrom(strings.NewReader("always_sort: false\n"), base)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if !out.AllowFuzzyMatching {
		t.Error("AllowFuzzyMatching should remain true from base")
	}
	if out.Wrapcol != base.Wrapcol {
		t.Errorf("Wrapcol = %d, want base's %d", out.Wrapcol, base.Wrapcol)
	}
}

func TestLoadFromRejectsInvalidYAML(t *testing.T) {
	_, err := LoadFrom(strings.NewReader("wrapcol: [this is not a uint\n"), parser.DefaultSettings())
	if err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/.portfmt.yml", parser.DefaultSettings())
	if err == nil {
		t.Error("expected an error for a missing config file")
	}
}
