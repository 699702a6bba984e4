package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/ripplebutton/pkg/config"
	"github.com/go-drift/ripplebutton/pkg/replay"
)

type replayOptions struct {
	file       string
	jsonOutput bool
}

func newReplayCmd(root *rootFlags) *cobra.Command {
	opts := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay an interaction script and print the ripple call trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadAndReplay(cmd, root, opts.file)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printTrace(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Script YAML file")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func loadAndReplay(cmd *cobra.Command, root *rootFlags, path string) (*replay.Result, error) {
	script, err := config.LoadScript(path)
	if err != nil {
		return nil, err
	}
	return replay.Run(cmd.Context(), script, replay.Options{
		Logger: root.logger,
		OnCall: func(c replay.Call) {
			root.logger.With("step", c.Step).With("at", c.At.String()).Debug(c.Name)
		},
	})
}

func printTrace(cmd *cobra.Command, res *replay.Result) {
	out := cmd.OutOrStdout()
	for _, c := range res.Calls {
		fmt.Fprintln(out, c)
	}
	fmt.Fprintf(out, "mount: %s\n", res.Mount)
	fmt.Fprintf(out, "pressed: %t\n", res.Pressed)
	fmt.Fprintf(out, "global listeners: %d\n", res.GlobalListeners)
	fmt.Fprintf(out, "ripple: pressed=%t hovered=%t focused=%t radius=%.1f\n",
		res.State.Pressed, res.State.Hovered, res.State.Focused, res.State.Radius)
}
