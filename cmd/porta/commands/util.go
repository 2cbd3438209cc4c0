package commands

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/builder"
	"github.com/portasui/porta/config"
	"github.com/portasui/porta/factory"
	"github.com/portasui/porta/factory/signer"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func asJson(data any) string {
	bz, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(bz)
}

// parseAmount reads a decimal amount of the coin, or base units with --raw.
func parseAmount(coins *porta.CoinRegistry, coin porta.Coin, amountStr string, raw bool) (porta.AmountBlockchain, error) {
	if raw {
		return porta.ParseAmountBlockchain(amountStr)
	}
	human, err := porta.NewAmountHumanReadableFromStr(amountStr)
	if err != nil {
		return porta.AmountBlockchain{}, fmt.Errorf("invalid amount %q: %v", amountStr, err)
	}
	decimals := porta.SuiDecimals
	if cfg, ok := coins.Get(coin); ok {
		decimals = cfg.Decimals
	}
	amount, err := human.ToBlockchainExact(decimals)
	if err != nil {
		return porta.AmountBlockchain{}, fmt.Errorf("invalid amount %q: %v", amountStr, err)
	}
	return amount, nil
}

func addMigrationFlags(cmd *cobra.Command) {
	cmd.Flags().String("sender", "", "Address owning the position. Derived from --key when not set.")
	cmd.Flags().String("key", "env:"+signer.EnvPrivateKey, "Private key reference")
	cmd.Flags().Bool("raw", false, "Amount is in base units instead of a decimal amount")
	cmd.Flags().String("slippage", builder.DefaultSlippage.String(), "Slippage tolerance of the swap on liquidity routes, e.g. 0.01")
	cmd.Flags().String("coin-type", "", "Expected coin type of the migrated coin")
	cmd.Flags().Uint64("min-source", 0, "Minimum amount of the migrated coin added to the pool")
	cmd.Flags().Uint64("min-pair", 0, "Minimum amount of the pair coin added to the pool")
	cmd.Flags().String("priority", "", "Gas price priority: low, market, aggressive, very-aggressive or a multiplier")
}

// senderOrDerived uses --sender or derives the address of --key.  An empty sender is allowed,
// direct routes do not need one.
func senderOrDerived(cmd *cobra.Command) (porta.Address, error) {
	sender, _ := cmd.Flags().GetString("sender")
	if sender != "" {
		return porta.Address(sender), nil
	}
	keyRef, _ := cmd.Flags().GetString("key")
	if keyRef == "" {
		return "", nil
	}
	privateKeyInput, err := config.GetSecret(keyRef)
	if err != nil {
		return "", fmt.Errorf("could not load private key: %v", err)
	}
	if privateKeyInput == "" {
		return "", nil
	}
	s, err := signer.New(privateKeyInput)
	if err != nil {
		return "", fmt.Errorf("could not import private key: %v", err)
	}
	return s.Address()
}

// migrationParams reads "<route> <coin> <amount>" and the migration flags.
func migrationParams(cmd *cobra.Command, portaFactory *factory.Factory, args []string) (builder.MigrationParams, error) {
	route, err := porta.ParseMigrationRoute(args[0])
	if err != nil {
		return builder.MigrationParams{}, err
	}
	coin := porta.Coin(args[1]).Normalize()
	raw, _ := cmd.Flags().GetBool("raw")
	amount, err := parseAmount(portaFactory.Coins, coin, args[2], raw)
	if err != nil {
		return builder.MigrationParams{}, err
	}
	sender, err := senderOrDerived(cmd)
	if err != nil {
		return builder.MigrationParams{}, err
	}

	options := []builder.BuilderOption{}
	slippageStr, _ := cmd.Flags().GetString("slippage")
	slippage, err := decimal.NewFromString(slippageStr)
	if err != nil {
		return builder.MigrationParams{}, fmt.Errorf("invalid slippage: %v", err)
	}
	options = append(options, builder.OptionSlippage(slippage))
	if coinType, _ := cmd.Flags().GetString("coin-type"); coinType != "" {
		options = append(options, builder.OptionCoinType(coinType))
	}
	minSource, _ := cmd.Flags().GetUint64("min-source")
	minPair, _ := cmd.Flags().GetUint64("min-pair")
	if minSource > 0 || minPair > 0 {
		options = append(options, builder.OptionMinLiquidity(minSource, minPair))
	}
	if priorityStr, _ := cmd.Flags().GetString("priority"); priorityStr != "" {
		priority, err := porta.NewPriority(priorityStr)
		if err != nil {
			return builder.MigrationParams{}, err
		}
		options = append(options, builder.OptionPriority(priority))
	}
	return builder.NewMigrationParams(route, sender, coin, amount, options...)
}

type liquidityOutput struct {
	Pair         porta.Coin `json:"pair"`
	Pool         string     `json:"pool"`
	SwapIn       string     `json:"swap_in"`
	Remainder    string     `json:"remainder"`
	ExpectedOut  string     `json:"expected_out"`
	MinAmountOut string     `json:"min_amount_out"`
}

type migrationOutput struct {
	Route    string   `json:"route"`
	Sender   string   `json:"sender,omitempty"`
	Coin     string   `json:"coin"`
	CoinType string   `json:"coin_type"`
	Amount   string   `json:"amount"`
	Display  string   `json:"display"`
	Commands []string `json:"commands"`
	// base64 bcs TransactionKind, as accepted by wallets and dry runs
	TransactionKind string           `json:"transaction_kind"`
	Liquidity       *liquidityOutput `json:"liquidity,omitempty"`
}

func newMigrationOutput(migration *builder.Migration) (*migrationOutput, error) {
	kind, err := migration.Transaction.SerializeKind()
	if err != nil {
		return nil, err
	}
	params := migration.Params
	amount := params.GetAmount()
	human := amount.ToHuman(migration.Coin.Decimals)
	out := &migrationOutput{
		Route:           params.GetRoute().String(),
		Sender:          string(params.GetSender()),
		Coin:            string(migration.Coin.Symbol),
		CoinType:        migration.Coin.CoinType,
		Amount:          human.String(),
		Display:         fmt.Sprintf("%s %s", human.Format(migration.Coin.Decimals), migration.Coin.Symbol),
		TransactionKind: base64.StdEncoding.EncodeToString(kind),
	}
	for _, command := range migration.Transaction.Commands() {
		out.Commands = append(out.Commands, command.String())
	}
	if summary := migration.Liquidity; summary != nil {
		out.Liquidity = &liquidityOutput{
			Pair:         summary.Pair.Symbol,
			Pool:         summary.Pool.ID,
			SwapIn:       summary.SwapIn.String(),
			Remainder:    summary.Remainder.String(),
			ExpectedOut:  summary.Quote.ExpectedAmountOut.String(),
			MinAmountOut: summary.Quote.MinAmountOut.String(),
		}
	}
	return out, nil
}
