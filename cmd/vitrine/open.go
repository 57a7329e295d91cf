package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vitrinehq/vitrine/internal/storefront"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

type openOptions struct {
	theme string
}

func newOpenCmd(flags *rootFlags) *cobra.Command {
	opts := &openOptions{}

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the storefront with a theme's fixture family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "Theme token to provision")
	_ = cmd.MarkFlagRequired("theme")

	return cmd
}

func runOpen(cmd *cobra.Command, flags *rootFlags, opts *openOptions) error {
	log := flags.runLogger().WithField("theme", opts.theme)

	factory, err := storefront.ForTheme(opts.theme)
	if err != nil {
		log.Error(err, "theme resolution failed")
		return err
	}

	var buf bytes.Buffer
	s := storefront.New(factory, &buf)
	log.Debug("fixtures provisioned")

	if err := s.Open(); err != nil {
		log.Error(err, "storefront failed to open")
		return err
	}
	log.Info("storefront open")

	out := cmd.OutOrStdout()
	if styledTerminal(flags) {
		banner := bannerStyle.Render("vitrine • " + opts.theme)
		body := frameStyle.Render(strings.TrimRight(buf.String(), "\n"))
		fmt.Fprintln(out, lipgloss.JoinVertical(lipgloss.Left, banner, body))
		return nil
	}

	fmt.Fprint(out, buf.String())
	return nil
}

func styledTerminal(flags *rootFlags) bool {
	if flags.noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
