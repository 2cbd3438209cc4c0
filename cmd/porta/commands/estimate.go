package commands

import (
	"fmt"

	"github.com/portasui/porta/cmd/porta/setup"
	"github.com/spf13/cobra"
)

func CmdEstimate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <route> <coin> <amount>",
		Short: "Estimate the gas cost and output of a migration by dry running it.",
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
			estimator, err := portaFactory.NewEstimator()
			if err != nil {
				return err
			}
			fmt.Println(asJson(estimator.Estimate(cmd.Context(), migration)))
			return nil
		},
	}
	addMigrationFlags(cmd)
	return cmd
}
