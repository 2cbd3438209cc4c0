package builder

import (
	"fmt"

	"github.com/portasui/porta"
	"github.com/shopspring/decimal"
)

// DefaultSlippage is the fraction of the quoted swap output that may be lost.
var DefaultSlippage = decimal.NewFromFloat(0.01)

// All possible builder arguments go in here, privately available.
type builderOptions struct {
	coinType       *string
	slippage       *decimal.Decimal
	minSource      *uint64
	minPair        *uint64
	gasFeePriority *porta.GasFeePriority
}

func newBuilderOptions() builderOptions {
	return builderOptions{}
}

func get[T any](arg *T) (T, bool) {
	if arg == nil {
		var zero T
		return zero, false
	}
	return *arg, true
}

type BuilderOption func(opts *builderOptions) error

// OptionCoinType pins the expected coin type.  Building fails if the coin resolves to another type.
func OptionCoinType(coinType string) BuilderOption {
	return func(opts *builderOptions) error {
		opts.coinType = &coinType
		return nil
	}
}

func OptionSlippage(slippage decimal.Decimal) BuilderOption {
	return func(opts *builderOptions) error {
		if slippage.IsNegative() || slippage.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("slippage must be within [0, 1), got %s", slippage)
		}
		opts.slippage = &slippage
		return nil
	}
}

// OptionMinLiquidity sets the minimum amounts accepted when adding liquidity: one for the
// unswapped source coin and one for the swapped pair coin.
func OptionMinLiquidity(minSource uint64, minPair uint64) BuilderOption {
	return func(opts *builderOptions) error {
		opts.minSource = &minSource
		opts.minPair = &minPair
		return nil
	}
}

func OptionPriority(priority porta.GasFeePriority) BuilderOption {
	return func(opts *builderOptions) error {
		opts.gasFeePriority = &priority
		return nil
	}
}

// MigrationParams is an immutable migration request.
type MigrationParams struct {
	options builderOptions
	route   porta.MigrationRoute
	sender  porta.Address
	coin    porta.Coin
	amount  porta.AmountBlockchain
}

func NewMigrationParams(route porta.MigrationRoute, sender porta.Address, coin porta.Coin, amount porta.AmountBlockchain, options ...BuilderOption) (MigrationParams, error) {
	args := MigrationParams{
		options: newBuilderOptions(),
		route:   route,
		sender:  sender,
		coin:    coin.Normalize(),
		amount:  amount,
	}
	for _, opt := range options {
		err := opt(&args.options)
		if err != nil {
			return args, err
		}
	}
	return args, nil
}

func (args *MigrationParams) GetRoute() porta.MigrationRoute    { return args.route }
func (args *MigrationParams) GetSender() porta.Address          { return args.sender }
func (args *MigrationParams) GetCoin() porta.Coin               { return args.coin }
func (args *MigrationParams) GetAmount() porta.AmountBlockchain { return args.amount }
func (args *MigrationParams) GetCoinType() (string, bool)       { return get(args.options.coinType) }
func (args *MigrationParams) GetPriority() (porta.GasFeePriority, bool) {
	return get(args.options.gasFeePriority)
}

func (args *MigrationParams) GetSlippage() decimal.Decimal {
	if slippage, ok := get(args.options.slippage); ok {
		return slippage
	}
	return DefaultSlippage
}

// GetMinLiquidity returns the minimums for the source and pair coin, zero unless set.
func (args *MigrationParams) GetMinLiquidity() (uint64, uint64) {
	minSource, _ := get(args.options.minSource)
	minPair, _ := get(args.options.minPair)
	return minSource, minPair
}
