package logger

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

// ColorFunc decorates a string for terminal display.
type ColorFunc func(string) string

// Plain returns s unchanged. It is the decorator used when color is off.
func Plain(s string) string { return s }

// ColorMode selects whether level tags are colorized.
type ColorMode int

const (
	// ColorAuto colorizes when the console's stdout is a terminal, NO_COLOR
	// is empty or "0" and TERM is not "dumb".
	ColorAuto ColorMode = iota
	// ColorAlways always colorizes.
	ColorAlways
	// ColorNever never colorizes.
	ColorNever
)

// palette is fixed for the lifetime of the process.
var palette = map[Level]text.Color{
	LevelDebug:   text.FgHiBlack,
	LevelInfo:    text.FgBlue,
	LevelWarn:    text.FgHiMagenta,
	LevelError:   text.FgHiRed,
	LevelSuccess: text.FgGreen,
	LevelFail:    text.FgRed,
}

// Tag returns the bracketed, upper-cased level name, e.g. "[WARN]".
func Tag(l Level) string {
	return "[" + strings.ToUpper(l.String()) + "]"
}

// ColorFor returns the palette decorator for l: debug gray, info blue,
// warn bright magenta, error bright red, success green, fail red.
// Levels outside the palette get Plain. The decorator always emits escape
// codes; whether tags are decorated at all is decided by ColorMode.
func ColorFor(l Level) ColorFunc {
	c, ok := palette[l]
	if !ok {
		return Plain
	}
	seq := c.EscapeSeq()
	return func(s string) string { return text.Escape(s, seq) }
}

// Colors exposes the palette for coloring message payloads, with the same
// short aliases as the Logger methods.
var Colors = struct {
	Debug, D   ColorFunc
	Info, I    ColorFunc
	Warn, W    ColorFunc
	Error, E   ColorFunc
	Success, S ColorFunc
	Fail, F    ColorFunc
}{
	Debug: ColorFor(LevelDebug), D: ColorFor(LevelDebug),
	Info: ColorFor(LevelInfo), I: ColorFor(LevelInfo),
	Warn: ColorFor(LevelWarn), W: ColorFor(LevelWarn),
	Error: ColorFor(LevelError), E: ColorFor(LevelError),
	Success: ColorFor(LevelSuccess), S: ColorFor(LevelSuccess),
	Fail: ColorFor(LevelFail), F: ColorFor(LevelFail),
}

// enabled resolves the mode against the writer the tags end up on.
func (m ColorMode) enabled(out any) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if !colorsAllowedByEnv() {
		return false
	}
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// colorsAllowedByEnv reads NO_COLOR the way go-pretty does: empty or "0"
// means unset.
func colorsAllowedByEnv() bool {
	if v := os.Getenv("NO_COLOR"); v != "" && v != "0" {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
