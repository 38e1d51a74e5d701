// Command portfmt reads a port Makefile from stdin or a path argument,
// reformats it, and writes the result to stdout (or back to the file
// with -i). Flags mirror the teacher's thin-CLI-over-a-library shape:
// portfmt owns no formatting policy itself, it only wires flags to
// internal/parser, internal/edit, and internal/render.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"foss.freebsd.org/portfmt/internal/cache"
	"foss.freebsd.org/portfmt/internal/config"
	"foss.freebsd.org/portfmt/internal/edit"
	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/registry"
	"foss.freebsd.org/portfmt/internal/render"
	"foss.freebsd.org/portfmt/internal/rules"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inPlace    bool
		alwaysSort bool
		wrapcol    uint
		showDiff   bool
		unsafe     bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "portfmt [path]",
		Short: "Format a port Makefile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			original, err := readInput(path)
			if err != nil {
				return err
			}

			settings := parser.DefaultSettings()
			if cp := resolveConfigPath(configPath); cp != "" {
				settings, err = config.Load(cp, settings)
				if err != nil {
					return err
				}
			}
			settings.AlwaysSort = settings.AlwaysSort || alwaysSort
			settings.AllowFuzzyMatching = settings.AllowFuzzyMatching || unsafe
			if wrapcol > 0 {
				settings.Wrapcol = wrapcol
			}

			p := parser.New(settings)
			if err := p.ReadFromBuffer(bytes.NewReader(original)); err != nil {
				return err
			}

			tokens := p.Tokens()
			cc := cache.New()
			cfg := edit.Config{Settings: settings, Engine: rules.Default(), Cache: cc}

			for _, name := range []string{"sanitize-append-modifier", "dedup-tokens", "sort-tokens"} {
				pass, ok := registry.Lookup(name)
				if !ok {
					continue
				}
				tokens, err = pass(p, tokens, cfg)
				if err != nil {
					return err
				}
			}
			p.SetTokens(tokens)

			rcfg := render.Config{Settings: settings, Engine: rules.Default(), Cache: cc}
			if showDiff {
				diff, err := render.Diff(original, p, p.Tokens(), rcfg, displayPath(path))
				if err != nil {
					return err
				}
				fmt.Fprint(os.Stdout, diff)
				return nil
			}

			var out bytes.Buffer
			if err := render.Render(&out, p, p.Tokens(), rcfg); err != nil {
				return err
			}
			if inPlace && path != "" {
				return os.WriteFile(path, out.Bytes(), 0644)
			}
			_, err = os.Stdout.Write(out.Bytes())
			return err
		},
	}

	cmd.Flags().BoolVarP(&inPlace, "inplace", "i", false, "edit the file in place")
	cmd.Flags().BoolVarP(&alwaysSort, "always-sort", "u", false, "sort every sortable variable unconditionally")
	cmd.Flags().UintVarP(&wrapcol, "wrapcol", "w", 0, "wrap column (0 keeps the default)")
	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "show a unified diff instead of writing output")
	cmd.Flags().BoolVar(&unsafe, "unsafe", false, "allow fuzzy matching of options/flavors/shebang/cabal helper names")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML settings file (defaults to $PORTFMT_CONFIG)")
	return cmd
}

// resolveConfigPath prefers an explicit --config over $PORTFMT_CONFIG;
// empty means no config file is read.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("PORTFMT_CONFIG")
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func displayPath(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
