package templates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSummarizeProfileCard(t *testing.T) {
	sum, err := Summarize(profileCardMarkup)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Root != "div" {
		t.Fatalf("expected root div, got %q", sum.Root)
	}
	if len(sum.Text) != 2 || sum.Text[0] != "Nome do Usuário" || sum.Text[1] != "Cargo" {
		t.Fatalf("unexpected text runs %q", sum.Text)
	}
	lines := sum.Lines()
	if len(lines) != 3 || lines[0] != "<div>" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestSummarizeCollapsesWhitespace(t *testing.T) {
	sum, err := Summarize("<section>\n  <h1>Hello\n   world</h1>\n</section>")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Root != "section" || len(sum.Text) != 1 || sum.Text[0] != "Hello world" {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestSummarizeMalformed(t *testing.T) {
	for _, markup := range []string{"", "   \n", "only words here"} {
		if _, err := Summarize(markup); !errors.Is(err, ErrMalformedMarkup) {
			t.Fatalf("markup %q: expected ErrMalformedMarkup, got %v", markup, err)
		}
	}
}

func TestRegistryBuiltin(t *testing.T) {
	r := NewRegistry()
	tpl, ok := r.Get(ProfileCardName)
	if !ok {
		t.Fatalf("built-in template missing")
	}
	if tpl.Width != 300 || tpl.Height != 400 || tpl.Source != SourceBuiltin {
		t.Fatalf("unexpected built-in %+v", tpl)
	}
	data := tpl.Data()
	if data.Width != 300 || data.Height != 400 || data.Markup != tpl.Markup {
		t.Fatalf("unexpected payload %+v", data)
	}
	if r.SummaryFor(tpl.Markup).Root != "div" {
		t.Fatalf("summary not cached for built-in markup")
	}
}

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "banner.toml", `
label = "Banner"
width = 600.0
height = 120.0
markup = "<header><h1>Sale</h1></header>"
`)
	writeTemplate(t, dir, "zero.toml", `
name = "zero"
width = 0.0
height = 10.0
markup = "<div>x</div>"
`)
	writeTemplate(t, dir, "words.toml", `
name = "words"
width = 10.0
height = 10.0
markup = "no element at all"
`)
	writeTemplate(t, dir, "broken.toml", "name = ")
	writeTemplate(t, dir, "notes.txt", "ignored")

	r := NewRegistry()
	n, err := r.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 template loaded, got %d", n)
	}
	banner, ok := r.Get("banner")
	if !ok {
		t.Fatalf("file name should be used as template name")
	}
	if banner.Label != "Banner" || banner.Width != 600 || banner.Summary.Root != "header" {
		t.Fatalf("unexpected banner %+v", banner)
	}
	if banner.Source != filepath.Join(dir, "banner.toml") {
		t.Fatalf("unexpected source %q", banner.Source)
	}
	names := r.Names()
	if len(names) != 2 || names[0] != "banner" || names[1] != ProfileCardName {
		t.Fatalf("unexpected names %v", names)
	}
	if all := r.All(); all[0].Name != ProfileCardName {
		t.Fatalf("built-ins should come first, got %v", all[0].Name)
	}
}

func TestLoadDirMissing(t *testing.T) {
	r := NewRegistry()
	n, err := r.LoadDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil || n != 0 {
		t.Fatalf("missing dir should load nothing without error, got %d, %v", n, err)
	}
}

func TestRegisterOverride(t *testing.T) {
	r := NewRegistry()
	err := r.Register(Template{Name: ProfileCardName, Width: 10, Height: 20, Markup: "<p>small</p>", Source: "test"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	tpl, _ := r.Get(ProfileCardName)
	if tpl.Width != 10 || tpl.Label != ProfileCardName || len(r.All()) != 1 {
		t.Fatalf("override not applied in place: %+v", tpl)
	}
}
