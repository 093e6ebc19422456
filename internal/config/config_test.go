package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newTestFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("slate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	if _, err := f.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return f
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	c := cfg.Canvas
	if c.SnapThreshold != 5 || c.HistoryLimit != 50 || c.PasteOffset != 20 {
		t.Fatalf("unexpected canvas defaults: %+v", c)
	}
	if !c.Snap || c.MinElementSize != 1 || c.HandleTolerance != 10 {
		t.Fatalf("unexpected canvas defaults: %+v", c)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeFile(t, `
[logger]
log_level = "debug"
disabled_tags = ["event"]

[canvas]
snap_threshold = 8.0
history_limit = 20
cell_width = -3.0
bogus = 1
`)
	res, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg := res.Config
	if cfg.Logger.LogLevel != "debug" || len(cfg.Logger.DisabledTags) != 1 {
		t.Fatalf("logger section not applied: %+v", cfg.Logger)
	}
	if cfg.Canvas.SnapThreshold != 8 || cfg.Canvas.HistoryLimit != 20 {
		t.Fatalf("canvas section not applied: %+v", cfg.Canvas)
	}
	if cfg.Canvas.CellWidth != DefaultCellWidth {
		t.Fatalf("invalid cell width should reset to default, got %v", cfg.Canvas.CellWidth)
	}
	if cfg.Canvas.PasteOffset != DefaultPasteOffset {
		t.Fatalf("unset keys should keep defaults, got %v", cfg.Canvas.PasteOffset)
	}
	if len(res.UnknownKeys) != 1 || res.UnknownKeys[0] != "canvas.bogus" {
		t.Fatalf("expected canvas.bogus reported, got %v", res.UnknownKeys)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	res, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"), nil)
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if res.Path != "" || res.Config.Canvas.HistoryLimit != DefaultHistoryLimit {
		t.Fatalf("expected defaults, got %+v", res)
	}
}

func TestLoadConfigParseError(t *testing.T) {
	path := writeFile(t, "[canvas\nsnap = ")
	res, err := LoadConfig(path, nil)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if res.Config == nil || res.Config.Canvas.SnapThreshold != DefaultSnapThreshold {
		t.Fatalf("defaults must still be returned on parse error")
	}
}

func TestFlagOverrides(t *testing.T) {
	path := writeFile(t, `
[logger]
log_level = "warn"
[canvas]
snap = true
`)
	flags := newTestFlags(t, "-config", path, "-loglevel", "error", "-snap=false", "-log-tags", "input, history")
	res, err := LoadConfig("", flags)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg := res.Config
	if res.Path != path {
		t.Fatalf("expected -config path to be used, got %q", res.Path)
	}
	if cfg.Logger.LogLevel != "error" {
		t.Fatalf("flag should override file log level, got %q", cfg.Logger.LogLevel)
	}
	if cfg.Canvas.Snap {
		t.Fatalf("-snap=false should disable snapping")
	}
	if len(cfg.Logger.EnabledTags) != 2 || cfg.Logger.EnabledTags[1] != "history" {
		t.Fatalf("unexpected tags %v", cfg.Logger.EnabledTags)
	}
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeFile(t, "[editor]\nsystem_clipboard = false\n")
	flags := newTestFlags(t)
	res, _ := LoadConfig(path, flags)
	if res.Config.Editor.SystemClipboard {
		t.Fatalf("unset -system-clipboard flag overrode the file value")
	}
}

func TestTemplatesDir(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Canvas.TemplatesDir = "/tmp/tpl"
	if cfg.TemplatesDir() != "/tmp/tpl" {
		t.Fatalf("explicit templates_dir ignored")
	}
}
