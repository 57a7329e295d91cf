package preview

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

// AmbienceFunc renders the full fixture output of one theme. The CLI wires
// this to storefront provisioning; tests substitute a stub.
type AmbienceFunc func(theme string) (string, error)

type themeItem string

func (i themeItem) Title() string       { return string(i) }
func (i themeItem) Description() string { return "storefront theme" }
func (i themeItem) FilterValue() string { return string(i) }

// Model contains the Bubbletea state for the theme browser: a list of theme
// tokens on the left, the selected theme's ambience on the right.
type Model struct {
	themes   list.Model
	ambience AmbienceFunc
	width    int
	height   int
	quitting bool
}

// NewModel constructs the browser over the given theme tokens.
func NewModel(themes []string, ambience AmbienceFunc) Model {
	items := lo.Map(themes, func(token string, _ int) list.Item {
		return themeItem(token)
	})

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Themes"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return Model{themes: l, ambience: ambience}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedTheme returns the currently highlighted theme token, or "" when
// the list is empty.
func (m Model) SelectedTheme() string {
	item, ok := m.themes.SelectedItem().(themeItem)
	if !ok {
		return ""
	}
	return string(item)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
