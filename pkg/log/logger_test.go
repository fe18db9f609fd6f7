package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newBufferLogger(level Level, formatter Formatter) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(level),
		WithFormatter(formatter),
		WithOutput(NewWriterOutput(&buf)),
	)
	return l, &buf
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(WarnLevel, &TextFormatter{})

	l.Debug("dropped")
	l.Info("dropped too")
	l.Warn("kept")
	l.Error("also kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("sub-level entries leaked: %q", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "also kept") {
		t.Fatalf("expected WARN and ERROR entries, got: %q", out)
	}
}

func TestJSONFormatterFields(t *testing.T) {
	l, buf := newBufferLogger(InfoLevel, &JSONFormatter{})

	l.Info("opened", Str("backend", "pebble"), Int("batch", 1000))

	var obj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if obj["msg"] != "opened" {
		t.Fatalf("msg = %v", obj["msg"])
	}
	if obj["backend"] != "pebble" {
		t.Fatalf("backend = %v", obj["backend"])
	}
	if obj["level"] != "INFO" {
		t.Fatalf("level = %v", obj["level"])
	}
}

func TestWithComponentBindsField(t *testing.T) {
	l, buf := newBufferLogger(InfoLevel, &TextFormatter{})

	l.WithComponent("writer").Info("hello")

	if !strings.Contains(buf.String(), "component=writer") {
		t.Fatalf("missing component field: %q", buf.String())
	}
}

func TestFatalCallsExit(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	base := NewLogger(
		WithLevel(InfoLevel),
		WithFormatter(&TextFormatter{}),
		WithOutput(NewWriterOutput(&buf)),
	).(*BaseLogger)
	base.exit = func(c int) { code = c }

	base.Fatal("boom", Err(nil))

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "FATAL") {
		t.Fatalf("missing FATAL entry: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": DebugLevel,
		"info":  InfoLevel,
		"WARN":  WarnLevel,
		"error": ErrorLevel,
		"fatal": FatalLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestApplyConfigSelectsFormatter(t *testing.T) {
	l, err := ApplyConfig(&Config{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	base := l.(*BaseLogger)
	if _, ok := base.formatter.(*JSONFormatter); !ok {
		t.Fatalf("formatter = %T, want *JSONFormatter", base.formatter)
	}
	if base.GetLevel() != DebugLevel {
		t.Fatalf("level = %v, want debug", base.GetLevel())
	}

	l, err = ApplyConfig(&Config{})
	if err != nil {
		t.Fatalf("apply defaults: %v", err)
	}
	base = l.(*BaseLogger)
	if _, ok := base.formatter.(*TextFormatter); !ok {
		t.Fatalf("default formatter = %T, want *TextFormatter", base.formatter)
	}
	if base.GetLevel() != InfoLevel {
		t.Fatalf("default level = %v, want info", base.GetLevel())
	}
}

func TestApplyConfigRejectsUnknownValues(t *testing.T) {
	if _, err := ApplyConfig(&Config{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := ApplyConfig(&Config{Level: "verbose"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
