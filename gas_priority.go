package porta

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// GasFeePriority scales the reference gas price and the gas budget of a migration.  It is one
// of the named levels or a decimal multiplier such as "1.2".
type GasFeePriority string

const (
	Low            GasFeePriority = "low"
	Market         GasFeePriority = "market"
	Aggressive     GasFeePriority = "aggressive"
	VeryAggressive GasFeePriority = "very-aggressive"
)

var priorityMultipliers = map[GasFeePriority]decimal.Decimal{
	Low:            decimal.NewFromFloat(0.7),
	Market:         decimal.NewFromInt(1),
	Aggressive:     decimal.NewFromFloat(1.5),
	VeryAggressive: decimal.NewFromInt(2),
}

var maxCustomMultiplier = decimal.NewFromInt(10)

func NewPriority(input string) (GasFeePriority, error) {
	p := GasFeePriority(strings.ToLower(strings.TrimSpace(input)))
	_, err := p.Multiplier()
	return p, err
}

func (p GasFeePriority) IsEnum() bool {
	_, ok := priorityMultipliers[p]
	return ok
}

// Multiplier is the factor applied to the gas price and budget.
func (p GasFeePriority) Multiplier() (decimal.Decimal, error) {
	if m, ok := priorityMultipliers[p]; ok {
		return m, nil
	}
	m, err := decimal.NewFromString(string(p))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid gas priority %q: must be one of low, market, aggressive, very-aggressive or a decimal", string(p))
	}
	if !m.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("invalid gas priority %q: multiplier must be positive", string(p))
	}
	if m.GreaterThan(maxCustomMultiplier) {
		return decimal.Decimal{}, fmt.Errorf("gas priority %s exceeds custom multiplier limit of %s", m, maxCustomMultiplier)
	}
	return m, nil
}

// Apply scales a MIST amount, rounding down.
func (p GasFeePriority) Apply(mist uint64) (uint64, error) {
	m, err := p.Multiplier()
	if err != nil {
		return 0, err
	}
	return m.Mul(decimal.NewFromBigInt(new(big.Int).SetUint64(mist), 0)).BigInt().Uint64(), nil
}

// CheckFeeLimit rejects a gas budget above the configured limit in SUI.  A zero limit disables
// the check.
func CheckFeeLimit(budget AmountBlockchain, limit AmountHumanReadable) error {
	if limit.IsZero() {
		return nil
	}
	max := limit.ToBlockchain(SuiDecimals)
	if budget.Cmp(&max) > 0 {
		return fmt.Errorf(
			"transaction fee may cost up to %s SUI, which is greater than the current limit of %s",
			budget.ToHuman(SuiDecimals).String(),
			limit.String(),
		)
	}
	return nil
}
