package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/types"
)

// SourceBuiltin marks templates compiled into the binary.
const SourceBuiltin = "builtin"

// Template is a named piece of markup with an intrinsic size.
type Template struct {
	Name   string  `toml:"name"`
	Label  string  `toml:"label"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Markup string  `toml:"markup"`

	Source  string  `toml:"-"` // SourceBuiltin or the file it was loaded from
	Summary Summary `toml:"-"`
}

// Data is the payload stored on a template element.
func (t Template) Data() types.TemplateData {
	return types.TemplateData{Width: t.Width, Height: t.Height, Markup: t.Markup}
}

func (t Template) validate() error {
	if t.Name == "" {
		return fmt.Errorf("template has no name")
	}
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("template '%s' has non-positive size %vx%v", t.Name, t.Width, t.Height)
	}
	return nil
}

// Registry holds the templates available to the editor, built-ins first.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	templates []Template
	byName    map[string]int
	summaries map[string]Summary // keyed by markup
}

// NewRegistry creates a registry holding the built-in templates.
func NewRegistry() *Registry {
	r := &Registry{
		byName:    make(map[string]int),
		summaries: make(map[string]Summary),
	}
	for _, t := range builtinTemplates() {
		if err := r.Register(t); err != nil {
			logger.Errorf("Templates: built-in '%s' rejected: %v", t.Name, err)
		}
	}
	return r
}

// Register validates t, summarizes its markup and adds it. A template with an
// existing name replaces the old one in place.
func (r *Registry) Register(t Template) error {
	if err := t.validate(); err != nil {
		return err
	}
	sum, err := Summarize(t.Markup)
	if err != nil {
		return fmt.Errorf("template '%s': %w", t.Name, err)
	}
	t.Summary = sum
	if t.Label == "" {
		t.Label = t.Name
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries[t.Markup] = sum
	if i, ok := r.byName[t.Name]; ok {
		logger.Warnf("Templates: '%s' from %s overrides %s", t.Name, t.Source, r.templates[i].Source)
		r.templates[i] = t
		return nil
	}
	r.byName[t.Name] = len(r.templates)
	r.templates = append(r.templates, t)
	logger.DebugTagf("templates", "registered '%s' (%vx%v) root=<%s>", t.Name, t.Width, t.Height, sum.Root)
	return nil
}

// LoadDir registers every *.toml template file in dir, in name order.
// A missing directory is not an error. Bad files are skipped with a warning.
// It returns the number of templates loaded.
func (r *Registry) LoadDir(dir string) (int, error) {
	if dir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		logger.Debugf("Templates: directory '%s' does not exist", dir)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read templates dir '%s': %w", dir, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		t, err := LoadFile(path)
		if err == nil {
			err = r.Register(t)
		}
		if err != nil {
			logger.Warnf("Templates: skipping '%s': %v", path, err)
			continue
		}
		loaded++
	}
	logger.Infof("Templates: loaded %d template(s) from '%s'", loaded, dir)
	return loaded, nil
}

// LoadFile decodes one template file. The name defaults to the file name.
func LoadFile(path string) (Template, error) {
	var t Template
	meta, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Template{}, fmt.Errorf("failed to parse template file '%s': %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Templates: unrecognized keys in '%s': %v", path, undecoded)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	t.Source = path
	return t, nil
}

// Get looks a template up by name.
func (r *Registry) Get(name string) (Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byName[name]
	if !ok {
		return Template{}, false
	}
	return r.templates[i], true
}

// All returns the templates in registration order.
func (r *Registry) All() []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Names returns the registered names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SummaryFor returns the summary of markup, parsing and caching it on first
// use. Markup that fails to parse yields an empty summary.
func (r *Registry) SummaryFor(markup string) Summary {
	r.mu.RLock()
	sum, ok := r.summaries[markup]
	r.mu.RUnlock()
	if ok {
		return sum
	}
	sum, err := Summarize(markup)
	if err != nil {
		logger.DebugTagf("templates", "cannot summarize element markup: %v", err)
	}
	r.mu.Lock()
	r.summaries[markup] = sum
	r.mu.Unlock()
	return sum
}
