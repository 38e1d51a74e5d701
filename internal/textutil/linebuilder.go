package textutil

import "strings"

// LineBuilder accumulates whitespace-separated words into lines no wider
// than a column budget, used by the renderer to wrap long variable values
// and target command lines.
type LineBuilder struct {
	Width int // 0 means unbounded
	lines []string
	cur   strings.Builder
	curW  int
}

// Add appends one word, starting a new line first if it would not fit.
// A single word wider than Width is still placed on its own line rather
// than split.
func (b *LineBuilder) Add(word string) {
	wlen := len(word)
	if b.curW == 0 {
		b.cur.WriteString(word)
		b.curW = wlen
		return
	}
	if b.Width > 0 && b.curW+1+wlen > b.Width {
		b.lines = append(b.lines, b.cur.String())
		b.cur.Reset()
		b.cur.WriteString(word)
		b.curW = wlen
		return
	}
	b.cur.WriteByte(' ')
	b.cur.WriteString(word)
	b.curW += 1 + wlen
}

// Lines flushes any pending partial line and returns the accumulated lines.
func (b *LineBuilder) Lines() []string {
	if b.curW > 0 {
		b.lines = append(b.lines, b.cur.String())
		b.cur.Reset()
		b.curW = 0
	}
	return b.lines
}
