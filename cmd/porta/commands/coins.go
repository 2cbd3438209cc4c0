package commands

import (
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/cmd/porta/setup"
	"github.com/spf13/cobra"
)

type coinOutput struct {
	Symbol    porta.Coin         `json:"symbol"`
	CoinType  string             `json:"coin_type"`
	Decimals  int32              `json:"decimals"`
	UsdPrice  string             `json:"usd_price,omitempty"`
	Protocols []porta.ProtocolID `json:"protocols"`
}

func CmdCoins() *cobra.Command {
	return &cobra.Command{
		Use:   "coins",
		Short: "List the coins that can be migrated and the protocols supporting each.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			portaFactory := setup.UnwrapFactory(cmd.Context())
			coins := []coinOutput{}
			for _, coin := range portaFactory.Coins.Coins() {
				out := coinOutput{
					Symbol:    coin.Symbol,
					CoinType:  coin.CoinType,
					Decimals:  coin.Decimals,
					Protocols: []porta.ProtocolID{},
				}
				if !coin.UsdPrice.IsZero() {
					out.UsdPrice = coin.UsdPrice.String()
				}
				for _, p := range portaFactory.Protocols.All() {
					if p.SupportsCoin(coin.Symbol) {
						out.Protocols = append(out.Protocols, p.ID())
					}
				}
				coins = append(coins, out)
			}
			fmt.Println(asJson(coins))
			return nil
		},
	}
}
