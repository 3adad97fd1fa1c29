package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// levelDisplayName derives a human-readable name from a level ID when the
// level has no explicit name. "old_cellar" -> "Old Cellar".
func levelDisplayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// renderStatusBar produces a full-width inverted status line showing the
// level name and the player's stats.
func (m Model) renderStatusBar() string {
	name := ""
	if lvl, ok := m.defs.Levels[m.engine.LevelID()]; ok {
		name = lvl.Name
	}
	if name == "" {
		name = levelDisplayName(m.engine.LevelID())
	}

	p := m.engine.Player()
	left := fmt.Sprintf(" %s", name)
	right := fmt.Sprintf("Str:%d | Moves:%d | Money:%d ", p.Strength, p.MovesRemaining, p.Money)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
