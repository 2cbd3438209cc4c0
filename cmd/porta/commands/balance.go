package commands

import (
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/cmd/porta/setup"
	"github.com/portasui/porta/factory/signer"
	"github.com/spf13/cobra"
)

type balanceOutput struct {
	Address  porta.Address `json:"address"`
	Coin     porta.Coin    `json:"coin"`
	CoinType string        `json:"coin_type"`
	Balance  string        `json:"balance"`
	Raw      string        `json:"raw"`
}

func CmdBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance <coin>",
		Short: "Show the wallet balance of a coin for the sender, e.g. to check the gas coins before migrating.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			portaFactory := setup.UnwrapFactory(cmd.Context())
			coin, ok := portaFactory.Coins.Get(porta.Coin(args[0]))
			if !ok {
				return fmt.Errorf("unsupported coin: %s", args[0])
			}
			address, err := senderOrDerived(cmd)
			if err != nil {
				return err
			}
			if address == "" {
				return fmt.Errorf("--sender or --key is required")
			}
			client, err := portaFactory.NewClient()
			if err != nil {
				return err
			}
			balance, err := client.FetchBalance(cmd.Context(), address, coin.CoinType)
			if err != nil {
				return fmt.Errorf("could not fetch balance: %w", err)
			}
			fmt.Println(asJson(balanceOutput{
				Address:  address,
				Coin:     coin.Symbol,
				CoinType: coin.CoinType,
				Balance:  balance.ToHuman(coin.Decimals).String(),
				Raw:      balance.String(),
			}))
			return nil
		},
	}
	cmd.Flags().String("sender", "", "Address to query. Derived from --key when not set.")
	cmd.Flags().String("key", "env:"+signer.EnvPrivateKey, "Private key reference")
	return cmd
}
