package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesFileIntoConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Makefile")
	if err := os.WriteFile(path, []byte("PORTNAME=\tfoo\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	p, tokens, cfg, original, err := load(path)
	if err != nil {
		t.Fatalf("load() error: %v", err)
	}
	if p == nil || len(tokens) == 0 {
		t.Fatal("load() returned an empty parser/tokens")
	}
	if cfg.Engine == nil || cfg.Cache == nil {
		t.Error("load() should populate Engine and Cache")
	}
	if string(original) != "PORTNAME=\tfoo\n" {
		t.Errorf("original = %q", original)
	}
}

func TestWriteBackWritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Makefile")
	if err := os.WriteFile(path, []byte("PORTNAME=foo\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	p, tokens, cfg, original, err := load(path)
	if err != nil {
		t.Fatalf("load() error: %v", err)
	}
	if err := writeBack(p, tokens, cfg, path, original); err != nil {
		t.Fatalf("writeBack() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	want := "PORTNAME=\tfoo\n"
	if string(data) != want {
		t.Errorf("file contents = %q, want %q", data, want)
	}
}

func TestNewRootCmdRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"output-variable-value", "set-version", "merge"} {
		if !names[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
}
