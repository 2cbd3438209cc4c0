package commands

import (
	"fmt"

	"github.com/portasui/porta/cmd/porta/setup"
	"github.com/spf13/cobra"
)

func CmdBuild() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <route> <coin> <amount>",
		Short: "Build a migration transaction without signing it. The amount should be a decimal amount.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			portaFactory := setup.UnwrapFactory(cmd.Context())
			params, err := migrationParams(cmd, portaFactory, args)
			if err != nil {
				return err
			}
			migration, err := portaFactory.BuildMigration(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("could not build migration: %w", err)
			}
			out, err := newMigrationOutput(migration)
			if err != nil {
				return err
			}
			fmt.Println(asJson(out))
			return nil
		},
	}
	addMigrationFlags(cmd)
	return cmd
}
