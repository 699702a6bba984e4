package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/go-drift/ripplebutton/pkg/config"
)

var (
	version = "v0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := version
			if semver.IsValid(v) {
				v = semver.Canonical(v)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ripplebutton %s\ncommit: %s\nbuilt: %s\nconfig schema: %s\n",
				v, commit, date, config.SchemaMajor)
			return nil
		},
	}

	return cmd
}
