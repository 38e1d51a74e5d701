package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Makefile")
	if err := os.WriteFile(path, []byte("PORTNAME=\tfoo\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	data, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput() error: %v", err)
	}
	if string(data) != "PORTNAME=\tfoo\n" {
		t.Errorf("readInput() = %q", data)
	}
}

func TestReadInputMissingFileErrors(t *testing.T) {
	if _, err := readInput(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestNewRootCmdHasExpectedSubcommands(t *testing.T) {
	cmd := newRootCmd()
	want := map[string]bool{
		"unknown-variables":           true,
		"unknown-targets":             true,
		"lint-order":                  true,
		"lint-clones":                 true,
		"lint-commented-portrevision": true,
		"lint-bsd-port":               true,
	}
	got := map[string]bool{}
	for _, c := range cmd.Commands() {
		got[c.Name()] = true
	}
	for name := range want {
		if !got[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
	if len(got) != len(want) {
		t.Errorf("got %d subcommands, want %d: %v", len(got), len(want), got)
	}
	if cmd.Use != "portclippy" {
		t.Errorf("Use = %q", cmd.Use)
	}
}

func TestStdoutSinkWritesToGivenWriters(t *testing.T) {
	var outBuf, diagBuf bytes.Buffer
	out, diag := bufio.NewWriter(&outBuf), bufio.NewWriter(&diagBuf)
	s := stdoutSink{out: out, diag: diag}
	s.Emit("hello")
	s.Diag("world")
	out.Flush()
	diag.Flush()
	if outBuf.String() != "hello\n" {
		t.Errorf("out = %q", outBuf.String())
	}
	if diagBuf.String() != "world\n" {
		t.Errorf("diag = %q", diagBuf.String())
	}
}
