package render

import "strings"

// knownWrapCommands are invoked with one argument per continuation line
// when they run long, rather than packed to the wrap column like a
// generic command.
var knownWrapCommands = map[string]bool{
	"${INSTALL_DATA}": true, "${INSTALL_PROGRAM}": true, "${INSTALL_MAN}": true,
	"${INSTALL_LIB}": true, "${INSTALL_SCRIPT}": true, "${SED}": true,
	"${REINPLACE_CMD}": true, "${FIND}": true, "${XARGS}": true,
}

// naturalBreaks are tokens after which a long command line may wrap.
var naturalBreaks = map[string]bool{
	"&&": true, "||": true, "then": true, "|": true,
}

// wrapCommand splits one target command line into continuation-line
// segments (wrapcol 0 means unbounded). A line that fits is returned whole.
// A known command puts each word on its own segment. Otherwise the line
// breaks after a natural break (&&, ||, then, a trailing unquoted ;, |) and
// before any word that would push the segment past wrapcol; a single word
// longer than wrapcol still gets a segment of its own.
func wrapCommand(cmd string, wrapcol uint) []string {
	if cmd == "" {
		return nil
	}
	words := strings.Fields(cmd)
	if len(words) == 0 {
		return []string{cmd}
	}
	if wrapcol == 0 || len(cmd) <= int(wrapcol) {
		return []string{cmd}
	}
	if knownWrapCommands[words[0]] {
		return words
	}

	var lines []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
	}
	for _, w := range words {
		wlen := len(w)
		if curLen > 0 && curLen+1+wlen > int(wrapcol) {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(w)
		curLen += wlen
		if shouldWrapAfter(w) {
			flush()
		}
	}
	flush()
	return lines
}

func shouldWrapAfter(word string) bool {
	if naturalBreaks[word] {
		return true
	}
	trimmed := strings.TrimSuffix(word, ";")
	return trimmed != word && !strings.ContainsAny(trimmed, `"'`)
}
