package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/ripplebutton/pkg/button"
	"github.com/go-drift/ripplebutton/pkg/config"
)

type renderOptions struct {
	file   string
	format string
	host   bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the markup of a configured button",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Button YAML file")
	cmd.Flags().StringVar(&opts.format, "format", "html", "Output format (html, json)")
	cmd.Flags().BoolVar(&opts.host, "host", false, "Wrap the button in its host element")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions) error {
	if opts.format != "html" && opts.format != "json" {
		return fmt.Errorf("unsupported format %q", opts.format)
	}
	v, err := config.LoadVariant(opts.file)
	if err != nil {
		return err
	}

	rt := button.NewRuntime(nil)
	rt.SetLogger(root.logger)
	defer rt.Dispose()

	kind, cfg := v.Button()
	s := rt.NewSurface(kind, cfg, v.Bounds())
	rt.Frame()

	tree := s.Tree()
	if opts.host {
		tree = s.RenderHost()
	}
	root.logger.With("file", opts.file).Debug("rendered button")

	out := cmd.OutOrStdout()
	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	}
	html, err := tree.HTML()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, html)
	return err
}
