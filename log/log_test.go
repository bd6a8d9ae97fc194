package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelDebug))
	logger.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()

	logger = Make(&buf, WithLevel(LevelError))
	logger.Info("info message")

	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Trace_UsesCustomLevelName(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithTimeLayout("none"))
	logger.Trace("deep")

	if got := buf.String(); !strings.Contains(got, "level=TRACE") {
		t.Errorf("expected TRACE level name, got %q", got)
	}
}

func TestLogger_Make_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true), WithLevel(LevelInfo)).Info("test message")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller info should name this file: %s", buf.String())
	}

	buf.Reset()
	Make(&buf, WithCaller(false), WithLevel(LevelInfo)).Info("test message")

	if strings.Contains(buf.String(), "source") {
		t.Error("caller info included when disabled")
	}
}

func TestLogger_Make_WithFormat_SetsOutputFormat(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelInfo))
		logger.Info("test message", slog.String("key", "value"))

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}

		if result["msg"] != "test message" || result["key"] != "value" {
			t.Errorf("unexpected JSON record: %v", result)
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatText), WithLevel(LevelInfo), WithPretty(false))
		logger.Info("test message", slog.String("key", "value"))

		output := buf.String()
		if !strings.Contains(output, `msg="test message"`) || !strings.Contains(output, "key=value") {
			t.Errorf("unexpected text record: %s", output)
		}
	})
}

func TestLogger_WrapAndWith(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf)
	wrapped := base.Wrap(WithLevel(LevelDebug), WithFormat(FormatJSON))

	if base.Level() != LevelWarn || wrapped.Level() != LevelDebug {
		t.Errorf("Wrap must not modify the receiver: base=%v wrapped=%v", base.Level(), wrapped.Level())
	}

	if wrapped.Format() != FormatJSON {
		t.Errorf("wrapped format = %v", wrapped.Format())
	}

	wrapped.With(slog.String("component", "parser")).Debug("hello")

	if !strings.Contains(buf.String(), `"component":"parser"`) {
		t.Errorf("With attributes missing: %s", buf.String())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Error("ignored")

	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Error("zero logger should report defaults")
	}

	if got := l.With(slog.Int("n", 1)); got.Logger != nil {
		t.Error("With on a zero logger should stay zero")
	}
}

type valuer struct{}

func (valuer) LogValue() slog.Value {
	return slog.GroupValue(slog.String("kind", "DuplicateBlock"), slog.Int("line", 3))
}

func TestPrettyText(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(true), WithTimeLayout(""), WithLevel(LevelInfo))
	logger.
		With(slog.String("cmd", "lint")).
		Warn("run failed", slog.Any("error", valuer{}), slog.Bool("ok", false))

	out := buf.String()

	for _, want := range []string{
		colorYellow + "WARN" + colorReset,
		"msg" + colorReset + "=" + colorCyan + "run failed",
		"cmd" + colorReset + "=" + colorCyan + "lint",
		"error.kind" + colorReset + "=" + colorCyan + "DuplicateBlock",
		"error.line" + colorReset + "=" + colorYellow + "3",
		"ok" + colorReset + "=" + colorRed + "false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output %q missing %q", out, want)
		}
	}

	if strings.Contains(out, "time") {
		t.Errorf("empty time layout should drop the timestamp: %q", out)
	}

	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected a single line, got %q", out)
	}
}

func TestPrettyText_Groups(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(true), WithTimeLayout(""), WithLevel(LevelInfo))
	logger.Logger.WithGroup("req").Info("hi", "id", 7)

	if out := buf.String(); !strings.Contains(out, "req.id") {
		t.Errorf("group prefix missing: %q", out)
	}
}
