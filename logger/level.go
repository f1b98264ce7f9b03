package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level defines log severity.
//
// The zero Level means "not configured": Resolve replaces it with the
// default. Filtering never compares Level values numerically; it uses the
// position of a level in a fixed ordering (see Rank).
type Level int

const (
	// LevelNone silences every level-filtered method. It is only meaningful
	// as a configured level.
	LevelNone Level = iota + 1
	// LevelFail tags failures. Filtered and routed as LevelError.
	LevelFail
	// LevelError enables error logging.
	LevelError
	// LevelWarn enables warning logging.
	LevelWarn
	// LevelSuccess tags successes. Filtered and routed as LevelInfo.
	LevelSuccess
	// LevelInfo enables informational logging.
	LevelInfo
	// LevelDebug enables debug logging. It is the default configured level.
	LevelDebug
)

// LevelUnknown is what ParseLevel and UnmarshalText produce for text that
// names no level. As a configured level it permits everything.
const LevelUnknown Level = -1

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("unknown log level")

// levelOrder ranks levels from least to most verbose.
var levelOrder = [...]Level{
	LevelNone,
	LevelFail,
	LevelError,
	LevelWarn,
	LevelSuccess,
	LevelInfo,
	LevelDebug,
}

var levelNames = map[Level]string{
	LevelNone:    "none",
	LevelFail:    "fail",
	LevelError:   "error",
	LevelWarn:    "warn",
	LevelSuccess: "success",
	LevelInfo:    "info",
	LevelDebug:   "debug",
}

// Levels returns the levels that can be emitted, most verbose first.
func Levels() []Level {
	return []Level{
		LevelDebug,
		LevelInfo,
		LevelSuccess,
		LevelWarn,
		LevelError,
		LevelFail,
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	if l == 0 {
		return "unset"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails:
// unrecognized text yields LevelUnknown so that a bad configuration value
// degrades to "log everything" instead of breaking the caller.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, _ := ParseLevel(string(text))
	*l = parsed
	return nil
}

// ParseLevel parses a level name, ignoring case and surrounding space.
// "warning" is accepted as an alias of "warn". An empty string yields the
// zero (unset) Level.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return 0, nil
	case "warning":
		return LevelWarn, nil
	}
	for l, name := range levelNames {
		if name == s {
			return l, nil
		}
	}
	return LevelUnknown, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Rank returns the position of l in the ordering
// none < fail < error < warn < success < info < debug,
// or -1 if l is not a recognized level.
func Rank(l Level) int {
	for i, o := range levelOrder {
		if o == l {
			return i
		}
	}
	return -1
}

// filterLevel maps the display-only levels onto the level they are filtered
// and routed as.
func filterLevel(l Level) Level {
	switch l {
	case LevelFail:
		return LevelError
	case LevelSuccess:
		return LevelInfo
	}
	return l
}

// ShouldEmit reports whether a message at requested passes the configured
// level. An unrecognized configured level permits everything; LevelNone and
// unrecognized requested levels are never emitted.
func ShouldEmit(configured, requested Level) bool {
	r := Rank(filterLevel(requested))
	if r <= 0 {
		return false
	}
	c := Rank(filterLevel(configured))
	if c < 0 {
		return true
	}
	return r <= c
}
