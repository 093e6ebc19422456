// plugins/stats/stats.go
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/plugin"
	"github.com/bethropolis/slate/internal/types"
)

// Ensure Stats implements plugin.Plugin
var _ plugin.Plugin = (*Stats)(nil)

// Stats reports what is on the canvas: element counts per type and the
// bounds of the whole document.
type Stats struct {
	api     plugin.EditorAPI
	created int // elements added this session, including pastes
}

// New creates a new instance of the Stats plugin.
func New() plugin.Plugin {
	return &Stats{}
}

// Name returns the unique name of the plugin.
func (p *Stats) Name() string {
	return "stats"
}

// Initialize registers :stats and starts counting insertions.
func (p *Stats) Initialize(api plugin.EditorAPI) error {
	p.api = api
	api.SubscribeEvent(event.TypeElementsAdded, p.handleElementsAdded)
	if err := api.RegisterCommand("stats", p.executeStats); err != nil {
		return fmt.Errorf("failed to register 'stats' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed).
func (p *Stats) Shutdown() error {
	return nil
}

func (p *Stats) handleElementsAdded(e event.Event) bool {
	if data, ok := e.Data.(event.ElementsAddedData); ok {
		p.created += len(data.Elements)
	}
	return false
}

func (p *Stats) executeStats(args []string) error {
	if p.api == nil {
		return fmt.Errorf("stats plugin not initialized with API")
	}
	scope := p.api.Elements()
	label := "document"
	if len(args) > 0 && args[0] == "selection" {
		scope = p.api.SelectedElements()
		label = "selection"
	}
	p.api.SetStatusMessage("%s: %s (added this session: %d)", label, Summarize(scope), p.created)
	return nil
}

// Summarize renders per-type counts and the union bounds of els.
func Summarize(els []types.Element) string {
	if len(els) == 0 {
		return "empty"
	}
	counts := make(map[types.ElementType]int)
	bounds := els[0].Bounds()
	for _, el := range els {
		counts[el.Type]++
		bounds = bounds.Union(el.Bounds())
	}
	kinds := make([]string, 0, len(counts))
	for t := range counts {
		kinds = append(kinds, string(t))
	}
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%d %s", counts[types.ElementType(k)], k))
	}
	return fmt.Sprintf("%s; bounds %.0f,%.0f %.0f×%.0f",
		strings.Join(parts, ", "), bounds.X, bounds.Y, bounds.Width, bounds.Height)
}
