package buildertest

// Convenient constructors for used in tests

import (
	"github.com/portasui/porta"
	"github.com/portasui/porta/builder"
)

func MustNewMigrationParams(
	route porta.MigrationRoute,
	sender porta.Address,
	coin porta.Coin,
	amount uint64,
	options ...builder.BuilderOption,
) builder.MigrationParams {
	args, err := builder.NewMigrationParams(route, sender, coin, porta.NewAmountBlockchainFromUint64(amount), options...)
	if err != nil {
		panic(err)
	}
	return args
}
