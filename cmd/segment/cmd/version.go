package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/commons/core/log"
	"github.com/msto63/commons/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "segment %s\n", version.Of("segment"))
			fmt.Fprintf(out, "library %s\n", version.Of("library"))
			a.log.Debug("version requested", log.String("run_id", a.runID))
			return nil
		},
	}
}
