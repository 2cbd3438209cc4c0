package builder

import (
	"fmt"

	"github.com/portasui/porta"
)

// buildDirect withdraws from one lending protocol and deposits the withdrawn coin into another.
func (b *MigrationBuilder) buildDirect(migration *Migration, route porta.DirectRoute) error {
	source, err := b.lending(route, route.From)
	if err != nil {
		return err
	}
	destination, err := b.lending(route, route.To)
	if err != nil {
		return err
	}
	tx := migration.Transaction
	coin := migration.Coin

	withdraw, err := source.Withdraw(coin, migration.Params.GetAmount())
	if err != nil {
		return fmt.Errorf("%s withdraw: %w", source.ID(), err)
	}
	withdrawn, err := tx.Append(withdraw)
	if err != nil {
		return err
	}

	deposit, err := destination.Deposit(coin, withdrawn)
	if err != nil {
		return fmt.Errorf("%s deposit: %w", destination.ID(), err)
	}
	_, err = tx.Append(deposit)
	return err
}
