package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/commons/core/errors"
	"github.com/msto63/commons/core/log"
	"github.com/msto63/commons/internal/profile"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <profile> [text]",
		Short: "Run a configured profile",
		Long: `Runs a profile from the [profiles] table of the configuration.

Examples:
  segment run csv 'a,b,c'
  cat input.txt | segment --config segment.yaml run statements`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := profile.Load(a.cfg, a.log)
			if err != nil {
				return err
			}
			p, err := set.Get(args[0])
			if err != nil {
				return err
			}
			text, err := a.input(cmd, args, 1)
			if err != nil {
				return err
			}
			return a.execute(cmd, p, text)
		},
	}
}

func newProfilesCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List configured profiles",
		Long: `Lists the configured profiles with their settings and validation
status. With --strict an invalid profile makes the command fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := profile.Load(a.cfg, a.log)
			if err != nil {
				return err
			}

			failures := set.ValidateAll()
			for name, ferr := range failures {
				a.log.Warn("invalid profile", log.String("profile", name), log.Err(ferr))
			}
			if err := a.renderer(cmd).Profiles(set.List(), failures); err != nil {
				return err
			}

			if strict && len(failures) > 0 {
				return errors.ValidationFailed(errors.ModuleProfile, "profiles", len(failures),
					fmt.Sprintf("%d of %d profiles are invalid", len(failures), len(set.Names())))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a profile is invalid")
	return cmd
}
