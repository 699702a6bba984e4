package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/ripplebutton/pkg/raster"
)

type snapshotOptions struct {
	file   string
	output string
	scale  int
}

func newSnapshotCmd(root *rootFlags) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Replay an interaction script and write the final frame as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Script YAML file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "snapshot.png", "PNG output path")
	cmd.Flags().IntVar(&opts.scale, "scale", 2, "Pixel scale factor")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSnapshot(cmd *cobra.Command, root *rootFlags, opts *snapshotOptions) error {
	res, err := loadAndReplay(cmd, root, opts.file)
	if err != nil {
		return err
	}
	img, err := raster.Snapshot(res.Tree, res.State, raster.Options{Bounds: res.Bounds, Scale: opts.scale})
	if err != nil {
		return err
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.output, err)
	}
	if err := raster.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", opts.output, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
