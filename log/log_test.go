package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.input); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"bogus", DefaultFormat},
	}

	for _, tc := range cases {
		if got := ParseFormat(tc.input); got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	if got := LevelTrace.String(); got != "trace" {
		t.Errorf("LevelTrace.String() = %q, want %q", got, "trace")
	}
}

func TestZeroValueDiscards(t *testing.T) {
	t.Parallel()

	var l Logger

	// Must not panic.
	l.Info("dropped")
	l.Error("dropped", slog.String("key", "value"))
	l.With(slog.String("key", "value")).Warn("dropped")

	if got := l.Level(); got != DefaultLevel {
		t.Errorf("zero Logger Level() = %v, want %v", got, DefaultLevel)
	}
}

func TestMakeTextOutput(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := Make(buf, WithTimeLayout("none"))

	l.Info("hello", slog.Int("count", 3))

	out := buf.String()

	for _, want := range []string{"INFO", "hello", "count=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	if strings.Contains(out, "time=") {
		t.Errorf("output %q contains timestamp despite none layout", out)
	}
}

func TestMakeJSONOutput(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := Make(buf, WithFormat(FormatJSON), WithTimeLayout("none"))

	l.Warn("careful", slog.String("reason", "testing"))

	out := buf.String()

	for _, want := range []string{`"level":"WARN"`, `"msg":"careful"`, `"reason":"testing"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := Make(buf, WithLevel(LevelWarn), WithTimeLayout("none"))

	l.Trace("below")
	l.Debug("below")
	l.Info("below")

	if buf.Len() != 0 {
		t.Fatalf("messages below warn were emitted: %q", buf.String())
	}

	l.Warn("at threshold")

	if !strings.Contains(buf.String(), "at threshold") {
		t.Errorf("warn message not emitted: %q", buf.String())
	}
}

func TestTraceLevelEmitted(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := Make(buf, WithLevel(LevelTrace), WithTimeLayout("none"))

	l.Trace("verbose")

	out := buf.String()

	if !strings.Contains(out, "TRACE") {
		t.Errorf("output %q missing TRACE level label", out)
	}

	if !strings.Contains(out, "verbose") {
		t.Errorf("output %q missing message", out)
	}
}

func TestWithAttrs(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := Make(buf, WithTimeLayout("none")).With(slog.String("component", "core"))

	l.Info("tagged")

	if !strings.Contains(buf.String(), "component=core") {
		t.Errorf("output %q missing inherited attribute", buf.String())
	}
}

func TestPrettyOutput(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := Make(buf, WithPretty(true), WithTimeLayout("none"))

	l.Info("shiny", slog.Bool("ok", true))

	out := buf.String()

	for _, want := range []string{"INFO", "shiny", "ok", "true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
