package sui

import (
	"github.com/cordialsys/go-sui-sdk/v2/types"
	porta "github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui/ptb"
)

// Sui limits a transaction to this many gas payment objects
const MaxGasPaymentObjects = 256

type TxInput struct {
	GasBudget uint64 `json:"gas_budget,omitempty"`
	GasPrice  uint64 `json:"gas_price,omitempty"`
	// SUI coins owned by the sender, sorted by balance.  The first is the primary gas coin.
	GasCoins []*types.Coin `json:"gas_coins,omitempty"`
	// current epoch
	CurrentEpoch uint64 `json:"current_epoch,omitempty"`
}

var _ porta.TxInput = &TxInput{}

func NewTxInput() *TxInput {
	return &TxInput{}
}

func (input *TxInput) SetGasFeePriority(priority porta.GasFeePriority) error {
	price, err := priority.Apply(input.GasPrice)
	if err != nil {
		return err
	}
	budget, err := priority.Apply(input.GasBudget)
	if err != nil {
		return err
	}
	input.GasPrice = price
	input.GasBudget = budget
	return nil
}

func (input *TxInput) GetFeeLimit() porta.AmountBlockchain {
	return porta.NewAmountBlockchainFromUint64(input.GasBudget)
}

// Sort coins in place from highest to lowest
func (input *TxInput) SortCoins() {
	SortCoins(input.GasCoins)
}

func (input *TxInput) TotalBalance() porta.AmountBlockchain {
	amount := porta.NewAmountBlockchainFromUint64(0)
	for _, coin := range input.GasCoins {
		coinBal := porta.NewAmountBlockchainFromUint64(coin.Balance.Uint64())
		amount = amount.Add(&coinBal)
	}
	return amount
}

// Payment selects the largest coins until they cover the gas budget.  If all coins together
// cannot cover it, the budget is lowered to what they hold.
func (input *TxInput) Payment() ([]ptb.ObjectRef, uint64, error) {
	input.SortCoins()
	payment := []ptb.ObjectRef{}
	covered := uint64(0)
	for _, coin := range input.GasCoins {
		if covered >= input.GasBudget || len(payment) >= MaxGasPaymentObjects {
			break
		}
		ref, err := CoinToObjectRef(coin)
		if err != nil {
			return nil, 0, err
		}
		payment = append(payment, ref)
		covered += coin.Balance.Uint64()
	}
	budget := input.GasBudget
	if covered < budget {
		budget = covered
	}
	return payment, budget, nil
}
