package protocol

import (
	"github.com/portasui/porta"
	"github.com/portasui/porta/builder/errors"
)

// MoveAmount checks that the amount is positive and fits a Move u64.
func MoveAmount(amount porta.AmountBlockchain) (uint64, error) {
	if amount.Sign() <= 0 {
		return 0, errors.ErrInvalidAmount
	}
	if !amount.IsUint64() {
		return 0, errors.ErrAmountOverflow
	}
	return amount.Uint64(), nil
}

func NotSupported(coin porta.Coin, id porta.ProtocolID) error {
	return &errors.AssetNotSupportedError{Asset: string(coin), Protocol: string(id)}
}
