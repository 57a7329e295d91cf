package main

import (
	"bytes"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vitrinehq/vitrine/internal/storefront"
	"github.com/vitrinehq/vitrine/internal/tui/preview"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse registered themes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview()
		},
	}

	return cmd
}

func runPreview() error {
	m := preview.NewModel(storefront.Themes(), themeAmbience)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}
	return nil
}

// themeAmbience provisions a fresh fixture family and captures its output.
func themeAmbience(theme string) (string, error) {
	factory, err := storefront.ForTheme(theme)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := storefront.New(factory, &buf).Open(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
