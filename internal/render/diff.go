package render

import (
	"bytes"

	"github.com/ianbruene/go-difflib/difflib"

	"foss.freebsd.org/portfmt/internal/parser"
	"foss.freebsd.org/portfmt/internal/token"
)

// Diff renders tokens the same way Render does, then returns a unified
// diff against original, for the -d/--diff CLI flag. Grounded on the
// teacher's own unified-diff rendering (surgeon/reposurgeon.go's "diff"
// command, tool/repotool.go's directory-diff path), which builds the same
// difflib.UnifiedDiff record from two SplitLines slices.
func Diff(original []byte, p *parser.Parser, tokens []*token.Token, cfg Config, path string) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, p, tokens, cfg); err != nil {
		return "", err
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(buf.String()),
		FromFile: path,
		ToFile:   path + " (formatted)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
