package porta

import (
	"encoding/json"
)

// MigrationEstimate is the advisory cost of a built migration.
type MigrationEstimate struct {
	// Predicted gas cost in MIST
	GasEstimate AmountBlockchain
	GasCostUsd  float64
	// Amount that ends up in the destination protocol, in the smallest unit of the migrated coin
	ExpectedOutput AmountBlockchain
	PriceImpact    float64
	// Set when the dry run failed and the figures are the fixed fallback
	Fallback bool
}

type migrationEstimateJSON struct {
	GasEstimate    json.Number `json:"gasEstimate"`
	GasCostUsd     float64     `json:"gasCostUsd"`
	ExpectedOutput json.Number `json:"expectedOutput"`
	PriceImpact    float64     `json:"priceImpact"`
	Fallback       bool        `json:"fallback,omitempty"`
}

var _ json.Marshaler = MigrationEstimate{}
var _ json.Unmarshaler = &MigrationEstimate{}

// Amounts are written as bare JSON integers.
func (e MigrationEstimate) MarshalJSON() ([]byte, error) {
	return json.Marshal(migrationEstimateJSON{
		GasEstimate:    json.Number(e.GasEstimate.String()),
		GasCostUsd:     e.GasCostUsd,
		ExpectedOutput: json.Number(e.ExpectedOutput.String()),
		PriceImpact:    e.PriceImpact,
		Fallback:       e.Fallback,
	})
}

func (e *MigrationEstimate) UnmarshalJSON(data []byte) error {
	var raw migrationEstimateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	gas, err := ParseAmountBlockchain(raw.GasEstimate.String())
	if err != nil {
		return err
	}
	output, err := ParseAmountBlockchain(raw.ExpectedOutput.String())
	if err != nil {
		return err
	}
	*e = MigrationEstimate{
		GasEstimate:    gas,
		GasCostUsd:     raw.GasCostUsd,
		ExpectedOutput: output,
		PriceImpact:    raw.PriceImpact,
		Fallback:       raw.Fallback,
	}
	return nil
}

// GasUsed is the cost breakdown reported by a dry run, in MIST.
type GasUsed struct {
	ComputationCost AmountBlockchain
	StorageCost     AmountBlockchain
	StorageRebate   AmountBlockchain
}

// Total is computation + storage - rebate.  A rebate larger than the cost yields zero.
func (gas GasUsed) Total() AmountBlockchain {
	total := gas.ComputationCost.Add(&gas.StorageCost)
	total = total.Sub(&gas.StorageRebate)
	if total.Sign() < 0 {
		return NewAmountBlockchainFromUint64(0)
	}
	return total
}
