package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
)

const tagKey = "tag" // attribute key carrying a record's tag

// filteringHandler drops records whose tag, package or file is filtered out
// before handing the rest to the base handler.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
	tag  string // tag attached through WithAttrs, if any
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// sourceOf returns the package directory and file name that produced the record.
func sourceOf(r slog.Record) (pkg, file string) {
	if r.PC == 0 {
		return "", ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
	if frame.File == "" {
		return "", ""
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	if h.cfg.packages.active() || h.cfg.files.active() {
		pkg, file := sourceOf(r)
		if pkg != "" && !h.cfg.packages.permits(pkg) {
			return nil
		}
		if file != "" && !h.cfg.files.permits(file) {
			return nil
		}
	}

	if h.cfg.tags.active() {
		tag := h.tag
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == tagKey {
				tag = a.Value.String()
				return false
			}
			return true
		})
		if !h.cfg.tags.permits(tag) {
			return nil
		}
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &filteringHandler{base: h.base.WithAttrs(attrs), cfg: h.cfg, tag: h.tag}
	for _, a := range attrs {
		if a.Key == tagKey {
			next.tag = a.Value.String()
		}
	}
	return next
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{base: h.base.WithGroup(name), cfg: h.cfg, tag: h.tag}
}
