package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vitrinehq/vitrine/internal/outline"
	"github.com/vitrinehq/vitrine/internal/post"
	markdownformat "github.com/vitrinehq/vitrine/internal/post/formats/markdown"
)

type composeOptions struct {
	file    string
	format  string
	output  string
	preview bool
}

func newComposeCmd(flags *rootFlags) *cobra.Command {
	opts := &composeOptions{}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a signage document from an outline file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Outline file (YAML)")
	cmd.Flags().StringVar(&opts.format, "format", markdownformat.Format, "Output format token")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the artifact to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the artifact for the terminal (markdown only)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runCompose(cmd *cobra.Command, flags *rootFlags, opts *composeOptions) error {
	log := flags.runLogger().WithField("format", opts.format)

	if opts.preview && opts.format != markdownformat.Format {
		return fmt.Errorf("--preview supports only the %s format", markdownformat.Format)
	}

	doc, err := outline.Parse(opts.file)
	if err != nil {
		log.Error(err, "outline rejected")
		return err
	}
	log.WithField("blocks", len(doc.Blocks)).Debug("outline parsed")

	builder, err := post.NewBuilder(opts.format)
	if err != nil {
		log.Error(err, "format resolution failed")
		return err
	}

	artifact, err := outline.Compose(builder, doc)
	if err != nil {
		log.Error(err, "compose failed")
		return err
	}
	log.WithField("name", doc.Name).Info("artifact composed")

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(artifact), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.output)
		return nil
	}

	if opts.preview {
		rendered, err := renderPreview(artifact)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), artifact)
	return nil
}

func renderPreview(artifact string) (string, error) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(artifact)
}
