package sui

import (
	"errors"
	"fmt"

	porta "github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui/ptb"
)

type TxBuilder struct {
	Network *porta.NetworkConfig
}

func NewTxBuilder(network *porta.NetworkConfig) (*TxBuilder, error) {
	return &TxBuilder{
		Network: network,
	}, nil
}

// NewMigrationTx wraps a built migration into signable transaction data.  The sender pays for gas.
func (txBuilder TxBuilder) NewMigrationTx(migration *ptb.Transaction, from porta.Address, publicKey []byte, input *TxInput) (*Tx, error) {
	if len(publicKey) == 0 {
		return nil, errors.New("must set public key for SUI")
	}
	data, err := txBuilder.NewTransactionData(migration, from, input)
	if err != nil {
		return nil, err
	}
	if txBuilder.Network != nil {
		if err := porta.CheckFeeLimit(input.GetFeeLimit(), txBuilder.Network.FeeLimit); err != nil {
			return nil, err
		}
	}
	return NewTx(data, publicKey), nil
}

// NewTransactionData attaches sender, gas payment and expiration to the commands.
func (txBuilder TxBuilder) NewTransactionData(migration *ptb.Transaction, from porta.Address, input *TxInput) (ptb.TransactionData, error) {
	if migration == nil || migration.Len() == 0 {
		return ptb.TransactionData{}, errors.New("migration transaction has no commands")
	}
	sender, err := ptb.ParseAddress(string(from))
	if err != nil {
		return ptb.TransactionData{}, fmt.Errorf("could not decode from address: %w", err)
	}
	if len(input.GasCoins) == 0 {
		return ptb.TransactionData{}, fmt.Errorf("%s has no SUI to pay for gas", from)
	}

	// lower the gas budget to what the gas coins hold.
	payment, budget, err := input.Payment()
	if err != nil {
		return ptb.TransactionData{}, err
	}
	input.GasBudget = budget

	return ptb.TransactionData{
		Transaction: migration,
		Sender:      sender,
		GasData: ptb.GasData{
			Payment: payment,
			Owner:   sender,
			Price:   input.GasPrice,
			Budget:  budget,
		},
		// expires after current epoch
		ExpirationEpoch: input.CurrentEpoch,
	}, nil
}
