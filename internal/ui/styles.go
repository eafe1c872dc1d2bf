// Package ui provides the Bubbletea chrome around the terminal grid: a
// border, a status footer, and the ANSI-to-lipgloss cell rendering the
// renderer task uses to paint dirty rows (spec §6 rendering contract).
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color palette for the chrome. The grid's own cell colors
// come from the 16-entry ANSI palette in ansi.go, independent of Theme.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color
	BG        lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	TextDim   lipgloss.Color
	Border    lipgloss.Color
}

// Themes is the registry of chrome color themes (internal/config.Config
// only ever validates "dark" or "light").
var Themes = map[string]Theme{
	"dark": {
		Name:      "dark",
		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#06B6D4"),
		Warning:   lipgloss.Color("#F59E0B"),
		Danger:    lipgloss.Color("#EF4444"),
		Muted:     lipgloss.Color("#6B7280"),
		BG:        lipgloss.Color("#1E1E2E"),
		Surface:   lipgloss.Color("#313244"),
		Text:      lipgloss.Color("#CDD6F4"),
		TextDim:   lipgloss.Color("#6C7086"),
		Border:    lipgloss.Color("#45475A"),
	},
	"light": {
		Name:      "light",
		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#0891B2"),
		Warning:   lipgloss.Color("#D97706"),
		Danger:    lipgloss.Color("#DC2626"),
		Muted:     lipgloss.Color("#9CA3AF"),
		BG:        lipgloss.Color("#F8FAFC"),
		Surface:   lipgloss.Color("#E2E8F0"),
		Text:      lipgloss.Color("#1E293B"),
		TextDim:   lipgloss.Color("#94A3B8"),
		Border:    lipgloss.Color("#CBD5E1"),
	},
}

// ActiveTheme is the currently active chrome theme.
var ActiveTheme = Themes["dark"]

// SetTheme activates a theme by name. Returns false if unrecognized, in
// which case the active theme is left unchanged.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	ActiveTheme = t
	return true
}

// frameStyle is the border lipgloss draws around the grid viewport.
func frameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ActiveTheme.Border)
}

// footerStyle renders the status line beneath the grid.
func footerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(ActiveTheme.Surface).
		Foreground(ActiveTheme.Text).
		Padding(0, 1)
}

// footerKeyStyle highlights a label ("shell:", "status:") in the footer.
func footerKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ActiveTheme.Secondary)
}

// footerDimStyle renders secondary footer text (shortcut hints).
func footerDimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ActiveTheme.TextDim)
}
