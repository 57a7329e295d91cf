package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vitrinehq/vitrine/internal/post"
	"github.com/vitrinehq/vitrine/internal/storefront"
)

type listOptions struct {
	jsonOutput bool
}

type registeredToken struct {
	Kind  string `json:"kind"`
	Token string `json:"token"`
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered themes and formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	rows := append(
		lo.Map(storefront.Themes(), func(token string, _ int) registeredToken {
			return registeredToken{Kind: "theme", Token: token}
		}),
		lo.Map(post.Formats(), func(token string, _ int) registeredToken {
			return registeredToken{Kind: "format", Token: token}
		})...,
	)

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tTOKEN")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row.Kind, row.Token)
	}
	return w.Flush()
}
