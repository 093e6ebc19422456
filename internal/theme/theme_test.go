package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want tcell.Color
	}{
		{"#EEEEEE", tcell.NewRGBColor(0xee, 0xee, 0xee)},
		{"#000", tcell.NewRGBColor(0, 0, 0)},
		{" #ff8000 ", tcell.NewRGBColor(0xff, 0x80, 0x00)},
		{"transparent", tcell.ColorReset},
		{"default", tcell.ColorDefault},
		{"red", tcell.ColorRed},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseColor(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	for _, bad := range []string{"#12", "#zzzzzz", "nocolour"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestGetStyleFallbacks(t *testing.T) {
	th := &SlateLight
	if th.GetStyle(StyleElementText) != th.Styles[StyleElement] {
		t.Fatalf("dotted name should fall back to its base style")
	}
	if th.GetStyle("Nope") != th.Styles[StyleDefault] {
		t.Fatalf("unknown name should fall back to Default")
	}
	empty := &Theme{Name: "empty", Styles: map[string]tcell.Style{}}
	if empty.GetStyle("x") != tcell.StyleDefault {
		t.Fatalf("theme without Default should use tcell default")
	}
}

func TestManagerLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	content := `
name = "Paper"
[styles.Default]
fg = "#111111"
bg = "#ffffff"
[styles.Guide]
fg = "#ff0000"
bold = true
[styles.Broken]
fg = "not-a-colour"
`
	if err := os.WriteFile(filepath.Join(dir, "paper.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.toml"), []byte("name = "), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir, "paper")
	if m.Current().Name != "Paper" {
		t.Fatalf("expected Paper active, got %s", m.Current().Name)
	}
	paper := m.Current()
	if _, ok := paper.Styles["Broken"]; ok {
		t.Fatalf("style with a bad colour should be skipped")
	}
	fg, bg, _ := paper.GetStyle(StyleGuide).Decompose()
	if fg != tcell.NewRGBColor(0xff, 0, 0) || bg != tcell.NewRGBColor(0xff, 0xff, 0xff) {
		t.Fatalf("Guide should inherit the Default background, got fg=%v bg=%v", fg, bg)
	}
	names := m.ListThemes()
	if len(names) != 3 || names[0] != "Paper" {
		t.Fatalf("unexpected theme list %v", names)
	}
}

func TestManagerUnknownInitialFallsBack(t *testing.T) {
	m := NewManager("", "does-not-exist")
	if m.Current().Name != DefaultThemeName {
		t.Fatalf("expected %s, got %s", DefaultThemeName, m.Current().Name)
	}
	if err := m.SetTheme("slate light"); err != nil || m.Current().Name != "Slate Light" {
		t.Fatalf("case-insensitive SetTheme failed: %v", err)
	}
	if err := m.SetTheme("missing"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
