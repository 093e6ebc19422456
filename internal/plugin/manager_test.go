package plugin

import (
	"errors"
	"testing"
)

type fakePlugin struct {
	name    string
	initErr error
	log     *[]string
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(EditorAPI) error {
	*p.log = append(*p.log, "init "+p.name)
	return p.initErr
}

func (p *fakePlugin) Shutdown() error {
	*p.log = append(*p.log, "shutdown "+p.name)
	return nil
}

func TestManagerLifecycle(t *testing.T) {
	var log []string
	m := NewManager()
	boom := errors.New("boom")
	for _, p := range []*fakePlugin{
		{name: "a", log: &log},
		{name: "b", initErr: boom, log: &log},
		{name: "c", log: &log},
	} {
		if err := m.Register(p); err != nil {
			t.Fatalf("Register %s: %v", p.name, err)
		}
	}

	if err := m.Register(&fakePlugin{name: "a", log: &log}); err == nil {
		t.Fatalf("duplicate name should be rejected")
	}
	if err := m.Register(&fakePlugin{log: &log}); err == nil {
		t.Fatalf("empty name should be rejected")
	}

	if err := m.InitializePlugins(nil); !errors.Is(err, boom) {
		t.Fatalf("expected first init error to be returned, got %v", err)
	}
	m.ShutdownPlugins()

	want := []string{"init a", "init b", "init c", "shutdown c", "shutdown b", "shutdown a"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
	if _, ok := m.GetPlugin("b"); !ok {
		t.Fatalf("GetPlugin failed")
	}
	if names := m.Names(); len(names) != 3 || names[2] != "c" {
		t.Fatalf("unexpected names %v", names)
	}
}
