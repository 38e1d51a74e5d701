// Command portclippy runs the core's lint/output passes over a port
// Makefile and prints their findings, without reformatting anything.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"foss.freebsd.org/portfmt/internal/cache"
	"foss.freebsd.org/portfmt/internal/edit"
	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/registry"
	"foss.freebsd.org/portfmt/internal/rules"
	"foss.freebsd.org/portfmt/internal/token"
)

// stdoutSink implements edit.Sink by writing Emit lines to stdout and
// Diag lines to stderr, the same console/log split the teacher draws
// between respond and logit.
type stdoutSink struct {
	out, diag *bufio.Writer
}

func (s stdoutSink) Emit(line string) { fmt.Fprintln(s.out, line) }
func (s stdoutSink) Diag(line string) { fmt.Fprintln(s.diag, line) }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var path string
	root := &cobra.Command{
		Use:   "portclippy",
		Short: "Lint a port Makefile",
	}
	root.PersistentFlags().StringVarP(&path, "file", "f", "", "path to lint (defaults to stdin)")

	root.AddCommand(passCmd(&path, "unknown-variables", "output-unknown-variables"))
	root.AddCommand(unknownTargetsCmd(&path))
	root.AddCommand(passCmd(&path, "lint-order", "lint-order"))
	root.AddCommand(passCmd(&path, "lint-clones", "lint-clones"))
	root.AddCommand(passCmd(&path, "lint-commented-portrevision", "lint-commented-portrevision"))
	root.AddCommand(passCmd(&path, "lint-bsd-port", "lint-bsd-port"))
	return root
}

// passCmd builds a subcommand that loads the Makefile, runs a single
// registered pass by name, and prints its findings.
func passCmd(path *string, use, registryName string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "Run the " + registryName + " pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, tokens, cfg, out, diag, err := load(*path)
			if err != nil {
				return err
			}
			defer out.Flush()
			defer diag.Flush()

			pass, ok := registry.Lookup(registryName)
			if !ok {
				return fmt.Errorf("portclippy: no such pass %q", registryName)
			}
			_, err = pass(p, tokens, cfg)
			return err
		},
	}
}

func unknownTargetsCmd(path *string) *cobra.Command {
	var postPlist []string
	cmd := &cobra.Command{
		Use:   "unknown-targets",
		Short: "Report targets the rules engine does not recognize",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, tokens, cfg, out, diag, err := load(*path)
			if err != nil {
				return err
			}
			defer out.Flush()
			defer diag.Flush()

			known := append(cfg.Cache.PostPlistTargets(), postPlist...)
			_, err = edit.OutputUnknownTargets(p, tokens, cfg, known)
			return err
		},
	}
	cmd.Flags().StringArrayVar(&postPlist, "post-plist-target", nil, "target name to exclude from unknown-target reporting (repeatable)")
	return cmd
}

func load(path string) (*parser.Parser, []*token.Token, edit.Config, *bufio.Writer, *bufio.Writer, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, nil, edit.Config{}, nil, nil, err
	}
	settings := parser.DefaultSettings()
	p := parser.New(settings)
	if err := p.ReadFromBuffer(bytes.NewReader(data)); err != nil {
		return nil, nil, edit.Config{}, nil, nil, err
	}

	out := bufio.NewWriter(os.Stdout)
	diag := bufio.NewWriter(os.Stderr)

	cc := cache.New()
	tokens := p.Tokens()
	cc.Refresh(tokens, p.Version())
	cfg := edit.Config{
		Settings: settings,
		Engine:   rules.Default(),
		Cache:    cc,
		Sink:     stdoutSink{out: out, diag: diag},
	}
	return p, tokens, cfg, out, diag, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
