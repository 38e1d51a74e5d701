// Command portedit exposes the core's programmatic single-purpose edit
// operations — output-variable-value, set-version, and merge — each as
// its own subcommand. output-variable-value prints the variable's value;
// set-version and merge write the edited Makefile to stdout, or back to
// the file named with -f.
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
	"foss.freebsd.org/portfmt/internal/render"
	"foss.freebsd.org/portfmt/internal/rules"
	"foss.freebsd.org/portfmt/internal/token"
)

type stdoutSink struct{ out *bufio.Writer }

func (s stdoutSink) Emit(line string) { fmt.Fprintln(s.out, line) }
func (s stdoutSink) Diag(line string) { fmt.Fprintln(os.Stderr, line) }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var path string
	root := &cobra.Command{
		Use:   "portedit",
		Short: "Apply a single programmatic edit to a port Makefile",
	}
	root.PersistentFlags().StringVarP(&path, "file", "f", "", "path to edit (defaults to stdin/stdout)")

	root.AddCommand(outputVariableValueCmd(&path))
	root.AddCommand(setVersionCmd(&path))
	root.AddCommand(mergeCmd(&path))
	return root
}

func outputVariableValueCmd(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "output-variable-value VAR",
		Short: "Print a variable's value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, tokens, cfg, _, err := load(*path)
			if err != nil {
				return err
			}
			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			cfg.Sink = stdoutSink{out: out}
			_, err = edit.OutputVariableValue(p, tokens, cfg, args[0])
			return err
		},
	}
}

func setVersionCmd(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set-version VERSION",
		Short: "Rewrite the port's version variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, tokens, cfg, original, err := load(*path)
			if err != nil {
				return err
			}
			tokens, err = edit.SetVersion(p, tokens, cfg, args[0])
			if err != nil {
				return err
			}
			return writeBack(p, tokens, cfg, *path, original)
		},
	}
}

func mergeCmd(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "merge OVERLAY-FILE",
		Short: "Merge another Makefile's variables into this one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, tokens, cfg, original, err := load(*path)
			if err != nil {
				return err
			}
			overlayData, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			overlayParser := parser.New(cfg.Settings)
			if err := overlayParser.ReadFromBuffer(bytes.NewReader(overlayData)); err != nil {
				return err
			}
			tokens, err = edit.Merge(p, tokens, cfg, overlayParser.Tokens())
			if err != nil {
				return err
			}
			return writeBack(p, tokens, cfg, *path, original)
		},
	}
}

func load(path string) (*parser.Parser, []*token.Token, edit.Config, []byte, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, nil, edit.Config{}, nil, err
	}
	settings := parser.DefaultSettings()
	p := parser.New(settings)
	if err := p.ReadFromBuffer(bytes.NewReader(data)); err != nil {
		return nil, nil, edit.Config{}, nil, err
	}
	cc := cache.New()
	cc.Refresh(p.Tokens(), p.Version())
	cfg := edit.Config{Settings: settings, Engine: rules.Default(), Cache: cc}
	return p, p.Tokens(), cfg, data, nil
}

func writeBack(p *parser.Parser, tokens []*token.Token, cfg edit.Config, path string, original []byte) error {
	p.SetTokens(tokens)
	rcfg := render.Config{Settings: cfg.Settings, Engine: cfg.Engine, Cache: cfg.Cache}
	var out bytes.Buffer
	if err := render.Render(&out, p, p.Tokens(), rcfg); err != nil {
		return err
	}
	if path != "" {
		return os.WriteFile(path, out.Bytes(), 0644)
	}
	_, err := os.Stdout.Write(out.Bytes())
	return err
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
