package commands

import (
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/builder"
	"github.com/portasui/porta/cmd/porta/setup"
	"github.com/spf13/cobra"
)

func CmdValidate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <coin> <amount>",
		Short: "Check a coin and amount before building a migration.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			portaFactory := setup.UnwrapFactory(cmd.Context())
			coin := porta.Coin(args[0]).Normalize()
			raw, _ := cmd.Flags().GetBool("raw")
			amount, err := parseAmount(portaFactory.Coins, coin, args[1], raw)
			if err != nil {
				return err
			}
			params, err := builder.NewMigrationParams(nil, "", coin, amount)
			if err != nil {
				return err
			}
			result := builder.Validate(portaFactory.Coins, params)
			fmt.Println(asJson(result))
			if !result.Valid {
				return fmt.Errorf("invalid: %s", result.Error)
			}
			return nil
		},
	}
	cmd.Flags().Bool("raw", false, "Amount is in base units instead of a decimal amount")
	return cmd
}
