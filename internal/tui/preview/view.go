package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the list next to the selected theme's ambience panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	panel := m.renderAmbience()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.themes.View(), panelStyle.Render(panel))
	return lipgloss.JoinVertical(lipgloss.Left, body, helpStyle.Render("↑/↓ select theme • q quit"))
}

func (m Model) renderAmbience() string {
	token := m.SelectedTheme()
	if token == "" {
		return emptyStyle.Render("no themes registered")
	}

	out, err := m.ambience(token)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	var lines []string
	lines = append(lines, titleStyle.Render(token))
	lines = append(lines, strings.TrimRight(out, "\n"))
	return strings.Join(lines, "\n\n")
}
