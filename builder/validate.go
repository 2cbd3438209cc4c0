package builder

import (
	"github.com/portasui/porta"
	"github.com/portasui/porta/builder/errors"
)

type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Validate is a pre-flight check of the coin and amount.  Building checks again on its own.
func Validate(coins *porta.CoinRegistry, params MigrationParams) ValidationResult {
	amount := params.GetAmount()
	if amount.Sign() <= 0 {
		return ValidationResult{Error: errors.ErrInvalidAmount.Error()}
	}
	if !coins.Contains(params.GetCoin()) {
		return ValidationResult{Error: "unsupported coin: " + string(params.GetCoin())}
	}
	return ValidationResult{Valid: true}
}
