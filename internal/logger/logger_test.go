package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func initBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := Init(cfg, &buf); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(Close)
	return &buf
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"err":     slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "warn"})
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestTagFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", DisabledTags: []string{"Snap"}})
	DebugTagf("snap", "snapped")
	DebugTagf("history", "pushed")

	out := buf.String()
	if strings.Contains(out, "snapped") {
		t.Fatalf("disabled tag was logged: %q", out)
	}
	if !strings.Contains(out, "pushed") || !strings.Contains(out, "tag=history") {
		t.Fatalf("enabled tag missing: %q", out)
	}
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", EnabledTags: []string{"input"}})
	Debugf("untagged")
	DebugTagf("input", "pointer down")

	out := buf.String()
	if strings.Contains(out, "untagged") {
		t.Fatalf("untagged record passed an enabled-tags filter: %q", out)
	}
	if !strings.Contains(out, "pointer down") {
		t.Fatalf("tagged record missing: %q", out)
	}
}

func TestPackageAndFileFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", DisabledPackages: []string{"logger"}})
	Infof("from logger package")
	if buf.Len() != 0 {
		t.Fatalf("disabled package was logged: %q", buf.String())
	}

	buf = initBuffer(t, Config{LogLevel: "debug", EnabledFiles: []string{"logger_test.go"}})
	Infof("from test file")
	if !strings.Contains(buf.String(), "from test file") {
		t.Fatalf("enabled file was dropped: %q", buf.String())
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" a, ,b,c ")
	if strings.Join(got, "|") != "a|b|c" {
		t.Fatalf("SplitList = %v", got)
	}
	if SplitList("") != nil {
		t.Fatalf("expected nil for empty input")
	}
}
