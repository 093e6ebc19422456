package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/plugin"
)

// RegisterAppCommands registers the built-in commands.
func RegisterAppCommands(reg Registrar, host HostAPI) {
	RegisterThemeCommands(reg, host)
	RegisterTemplateCommands(reg, host)
	RegisterEditCommands(reg, host)
}

func register(reg Registrar, name string, fn plugin.CommandFunc) {
	if err := reg.RegisterCommand(name, fn); err != nil {
		logger.Warnf("Failed to register ':%s' command: %v", name, err)
	}
}

// RegisterThemeCommands registers :theme and :themes.
func RegisterThemeCommands(reg Registrar, host HostAPI) {
	register(reg, "theme", func(args []string) error {
		if len(args) == 0 {
			host.SetStatusMessage("Current theme: %s", host.GetTheme().Name)
			return nil
		}
		themeName := strings.Join(args, " ") // Theme names may contain spaces
		if err := host.SetTheme(themeName); err != nil {
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, strings.Join(host.ListThemes(), ", "))
		}
		host.SetStatusMessage("Theme set to: %s", host.GetTheme().Name)
		return nil
	})
	register(reg, "themes", func(args []string) error {
		host.SetStatusMessage("Available themes: %s", strings.Join(host.ListThemes(), ", "))
		return nil
	})
}

// RegisterTemplateCommands registers :template and :templates.
func RegisterTemplateCommands(reg Registrar, host HostAPI) {
	register(reg, "template", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: template <name>")
		}
		el, err := host.InsertTemplate(args[0])
		if err != nil {
			return err
		}
		host.SetStatusMessage("Inserted template '%s' as #%d", args[0], el.ID)
		return nil
	})
	register(reg, "templates", func(args []string) error {
		list := host.Templates()
		names := make([]string, 0, len(list))
		for _, t := range list {
			names = append(names, fmt.Sprintf("%s (%.0f×%.0f)", t.Name, t.Width, t.Height))
		}
		host.SetStatusMessage("Templates: %s", strings.Join(names, ", "))
		return nil
	})
}

// RegisterEditCommands registers :undo, :redo, :clear and :snap.
func RegisterEditCommands(reg Registrar, host HostAPI) {
	register(reg, "undo", func(args []string) error {
		if !host.Undo() {
			host.SetStatusMessage("Nothing to undo")
		}
		return nil
	})
	register(reg, "redo", func(args []string) error {
		if !host.Redo() {
			host.SetStatusMessage("Nothing to redo")
		}
		return nil
	})
	register(reg, "clear", func(args []string) error {
		host.SetStatusMessage("Removed %d element(s)", host.Clear())
		return nil
	})
	register(reg, "snap", func(args []string) error {
		enabled := !host.SnapEnabled()
		if len(args) > 0 {
			switch strings.ToLower(args[0]) {
			case "on", "true", "1":
				enabled = true
			case "off", "false", "0":
				enabled = false
			default:
				return fmt.Errorf("usage: snap [on|off]")
			}
		}
		host.SetSnapEnabled(enabled)
		if enabled {
			host.SetStatusMessage("Snapping on")
		} else {
			host.SetStatusMessage("Snapping off")
		}
		return nil
	})
}
