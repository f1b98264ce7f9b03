package logger

import (
	"bytes"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func TestTag(t *testing.T) {
	tests := map[Level]string{
		LevelDebug:   "[DEBUG]",
		LevelInfo:    "[INFO]",
		LevelWarn:    "[WARN]",
		LevelError:   "[ERROR]",
		LevelSuccess: "[SUCCESS]",
		LevelFail:    "[FAIL]",
	}
	for l, want := range tests {
		assert.Equal(t, want, Tag(l))
	}
}

func TestColorFor_Palette(t *testing.T) {
	tests := map[Level]text.Color{
		LevelDebug:   text.FgHiBlack,
		LevelInfo:    text.FgBlue,
		LevelWarn:    text.FgHiMagenta,
		LevelError:   text.FgHiRed,
		LevelSuccess: text.FgGreen,
		LevelFail:    text.FgRed,
	}
	for l, c := range tests {
		got := ColorFor(l)("x")
		assert.Equal(t, text.Escape("x", c.EscapeSeq()), got, l.String())
		assert.Contains(t, got, c.EscapeSeq(), l.String())
	}
	assert.Equal(t, "x", ColorFor(LevelNone)("x"))
}

func TestColors_AliasesMatch(t *testing.T) {
	assert.Equal(t, Colors.Debug("a"), Colors.D("a"))
	assert.Equal(t, Colors.Info("a"), Colors.I("a"))
	assert.Equal(t, Colors.Warn("a"), Colors.W("a"))
	assert.Equal(t, Colors.Error("a"), Colors.E("a"))
	assert.Equal(t, Colors.Success("a"), Colors.S("a"))
	assert.Equal(t, Colors.Fail("a"), Colors.F("a"))
	assert.Equal(t, ColorFor(LevelWarn)("a"), Colors.Warn("a"))
}

func TestColorMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorAlways.enabled(&buf))
	assert.False(t, ColorNever.enabled(&buf))
	assert.False(t, ColorAuto.enabled(&buf), "a buffer is not a terminal")
	assert.False(t, ColorAuto.enabled(nil))

	t.Setenv("NO_COLOR", "1")
	assert.True(t, ColorAlways.enabled(&buf), "explicit mode ignores NO_COLOR")
}

func TestColorsAllowedByEnv(t *testing.T) {
	tests := []struct {
		noColor, term string
		want          bool
	}{
		{"", "xterm", true},
		{"0", "xterm", true},
		{"1", "xterm", false},
		{"true", "xterm", false},
		{"", "dumb", false},
	}
	for _, tt := range tests {
		t.Setenv("NO_COLOR", tt.noColor)
		t.Setenv("TERM", tt.term)
		assert.Equal(t, tt.want, colorsAllowedByEnv(), "NO_COLOR=%q TERM=%q", tt.noColor, tt.term)
	}
}

func TestColorFor_AlwaysEscapes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Contains(t, ColorFor(LevelWarn)("[WARN]"), "\x1b[")
	assert.Contains(t, Colors.Info("ok"), "\x1b[")
}
