package commands

import (
	"fmt"

	clienterrors "github.com/portasui/porta/client/errors"
	"github.com/portasui/porta/cmd/porta/setup"
	"github.com/portasui/porta/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type migrateOutput struct {
	Hash string `json:"hash"`
	URL  string `json:"url,omitempty"`
}

func CmdMigrate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate <route> <coin> <amount>",
		Short: "Build, sign and execute a migration. The amount should be a decimal amount.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			portaFactory := setup.UnwrapFactory(cmd.Context())
			keyRef, _ := cmd.Flags().GetString("key")
			s, err := portaFactory.NewSigner(config.Secret(keyRef))
			if err != nil {
				return fmt.Errorf("could not import private key: %v", err)
			}
			if sender, _ := cmd.Flags().GetString("sender"); sender == "" {
				address, err := s.Address()
				if err != nil {
					return err
				}
				_ = cmd.Flags().Set("sender", string(address))
			}
			params, err := migrationParams(cmd, portaFactory, args)
			if err != nil {
				return err
			}
			migration, err := portaFactory.BuildMigration(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("could not build migration: %w", err)
			}

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			if dryRun {
				estimator, err := portaFactory.NewEstimator()
				if err != nil {
					return err
				}
				fmt.Println(asJson(estimator.Estimate(cmd.Context(), migration)))
				return nil
			}

			hash, err := portaFactory.Migrate(cmd.Context(), migration, s)
			if err != nil {
				if clienterrors.Retryable(err) {
					logrus.WithError(err).Warn("node unavailable, the migration can be retried")
				}
				return fmt.Errorf("could not execute migration: %w", err)
			}
			logrus.WithField("hash", hash).Info("executed migration")
			fmt.Println(asJson(migrateOutput{
				Hash: string(hash),
				URL:  portaFactory.Config.TxURL(hash),
			}))
			return nil
		},
	}
	addMigrationFlags(cmd)
	cmd.Flags().Bool("dry-run", false, "Estimate instead of executing")
	return cmd
}
