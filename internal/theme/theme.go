// Package theme defines the colour palettes cards and panes are drawn with.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is one palette.
type Theme struct {
	Slug string
	Name string

	Title  lipgloss.Color
	Muted  lipgloss.Color
	Status lipgloss.Color
	Error  lipgloss.Color

	// Pane borders, idle and while a card hovers over them.
	Pane      lipgloss.Color
	PaneHover lipgloss.Color

	// Cards.
	CardBorder lipgloss.Color
	Cursor     lipgloss.Color
	Dragging   lipgloss.Color
	Reference  lipgloss.Color
	Text       lipgloss.Color
	TextOnMark lipgloss.Color
	Correct    lipgloss.Color
	Incorrect  lipgloss.Color
}

var (
	CatppuccinMocha = Theme{
		Slug:       "catppuccin-mocha",
		Name:       "Catppuccin Mocha",
		Title:      lipgloss.Color("#f5c2e7"),
		Muted:      lipgloss.Color("#6c7086"),
		Status:     lipgloss.Color("#a6adc8"),
		Error:      lipgloss.Color("#f38ba8"),
		Pane:       lipgloss.Color("#45475a"),
		PaneHover:  lipgloss.Color("#89b4fa"),
		CardBorder: lipgloss.Color("#585b70"),
		Cursor:     lipgloss.Color("#cba6f7"),
		Dragging:   lipgloss.Color("#f9e2af"),
		Reference:  lipgloss.Color("#ffd700"),
		Text:       lipgloss.Color("#ffffff"),
		TextOnMark: lipgloss.Color("#000000"),
		Correct:    lipgloss.Color("#a6e3a1"),
		Incorrect:  lipgloss.Color("#f38ba8"),
	}

	Dracula = Theme{
		Slug:       "dracula",
		Name:       "Dracula",
		Title:      lipgloss.Color("#ff79c6"),
		Muted:      lipgloss.Color("#6272a4"),
		Status:     lipgloss.Color("#f8f8f2"),
		Error:      lipgloss.Color("#ff5555"),
		Pane:       lipgloss.Color("#44475a"),
		PaneHover:  lipgloss.Color("#bd93f9"),
		CardBorder: lipgloss.Color("#6272a4"),
		Cursor:     lipgloss.Color("#8be9fd"),
		Dragging:   lipgloss.Color("#f1fa8c"),
		Reference:  lipgloss.Color("#ffb86c"),
		Text:       lipgloss.Color("#f8f8f2"),
		TextOnMark: lipgloss.Color("#282a36"),
		Correct:    lipgloss.Color("#50fa7b"),
		Incorrect:  lipgloss.Color("#ff5555"),
	}

	SolarizedLight = Theme{
		Slug:       "solarized-light",
		Name:       "Solarized Light",
		Title:      lipgloss.Color("#d33682"),
		Muted:      lipgloss.Color("#93a1a1"),
		Status:     lipgloss.Color("#657b83"),
		Error:      lipgloss.Color("#dc322f"),
		Pane:       lipgloss.Color("#eee8d5"),
		PaneHover:  lipgloss.Color("#268bd2"),
		CardBorder: lipgloss.Color("#93a1a1"),
		Cursor:     lipgloss.Color("#6c71c4"),
		Dragging:   lipgloss.Color("#b58900"),
		Reference:  lipgloss.Color("#cb4b16"),
		Text:       lipgloss.Color("#586e75"),
		TextOnMark: lipgloss.Color("#002b36"),
		Correct:    lipgloss.Color("#859900"),
		Incorrect:  lipgloss.Color("#dc322f"),
	}
)

var bySlug = map[string]Theme{
	CatppuccinMocha.Slug: CatppuccinMocha,
	Dracula.Slug:         Dracula,
	SolarizedLight.Slug:  SolarizedLight,
}

// All returns every theme, ordered by slug.
func All() []Theme {
	themes := make([]Theme, 0, len(bySlug))
	for _, t := range bySlug {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].Slug < themes[j].Slug })
	return themes
}

// Get returns the theme with the given slug, defaulting to Catppuccin Mocha.
func Get(slug string) Theme {
	if t, ok := bySlug[slug]; ok {
		return t
	}
	return CatppuccinMocha
}

// Next returns the theme after t in All, wrapping around.
func Next(t Theme) Theme {
	themes := All()
	for i, candidate := range themes {
		if candidate.Slug == t.Slug {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
