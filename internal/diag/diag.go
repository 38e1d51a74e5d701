// Package diag implements the core's logging (A1): a bitmask of log
// classes gating calls into a shared logrus.Logger, matching the
// teacher's logSHOUT/logWARN/... const-iota bitmask and its
// logEnable/logit/croak trio (surgeon/reposurgeon.go, surgeon/inner.go) —
// generalized from an ad-hoc VCS-conversion mission's classes to this
// formatter's own (lexer, edit passes, rendering, cache refresh).
package diag

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Class is a bitmask of log classes, set with the same
// "add a constant, add a tag" idiom the teacher documents.
type Class uint

const (
	Shout    Class = 1 << iota // errors and urgent messages
	Warn                       // exceptional condition, probably not a bug
	Baton                      // progress-meter messages
	Commands                   // CLI invocations and their flags
	Lexer                      // tokenizer decisions
	Edit                       // edit-pass decisions
	Render                     // renderer wrap/goalcol decisions
	Cache                      // metadata cache refreshes
)

var classTags = map[string]Class{
	"shout":    Shout,
	"warn":     Warn,
	"baton":    Baton,
	"commands": Commands,
	"lexer":    Lexer,
	"edit":     Edit,
	"render":   Render,
	"cache":    Cache,
}

// ParseClass recognizes one of the named log classes (see classTags).
func ParseClass(name string) (Class, bool) {
	c, ok := classTags[name]
	return c, ok
}

var (
	mu     sync.Mutex
	mask   Class = Shout | Warn
	logger       = logrus.New()
)

// SetLogger installs the logrus.Logger diagnostics are written through,
// replacing the default logrus.New() logger.
func SetLogger(l *logrus.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Enable turns on one or more log classes, in addition to whatever is
// already enabled.
func Enable(classes Class) {
	mu.Lock()
	defer mu.Unlock()
	mask |= classes
}

// Enabled reports whether any bit of classes is currently on.
func Enabled(classes Class) bool {
	mu.Lock()
	defer mu.Unlock()
	return mask&classes != 0
}

// Log emits msg at the given classes, if any of them is enabled.
func Log(classes Class, msg string, args ...interface{}) {
	if !Enabled(classes) {
		return
	}
	logger.WithField("class", classNames(classes)).Infof(msg, args...)
}

// Croak logs an urgent, always-visible error — the diag equivalent of the
// teacher's croak, minus the interactive-session abort flag this core has
// no use for.
func Croak(msg string, args ...interface{}) {
	logger.Errorf(msg, args...)
}

func classNames(classes Class) string {
	var out string
	for name, c := range classTags {
		if classes&c != 0 {
			if out != "" {
				out += ","
			}
			out += name
		}
	}
	if out == "" {
		return "none"
	}
	return out
}
