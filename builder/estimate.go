package builder

import (
	"context"

	"github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/observability"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// FallbackGasEstimate is reported when the dry run fails, in MIST.
const FallbackGasEstimate = 10_000_000

// DefaultSuiUsdPrice is used when no SUI price is configured.
var DefaultSuiUsdPrice = decimal.NewFromFloat(3.5)

type Simulator interface {
	Simulate(ctx context.Context, tx *ptb.Transaction, sender porta.Address) (porta.GasUsed, error)
}

// Estimator dry runs migrations.  Estimates are advisory: a failed dry run yields the fixed
// fallback instead of an error.
type Estimator struct {
	Simulator   Simulator
	SuiUsdPrice decimal.Decimal
	Metrics     *observability.Metrics
}

func NewEstimator(simulator Simulator, coins *porta.CoinRegistry, metrics *observability.Metrics) *Estimator {
	price := DefaultSuiUsdPrice
	if sui, ok := coins.Get(porta.SUI); ok && sui.UsdPrice.Decimal().IsPositive() {
		price = sui.UsdPrice.Decimal()
	}
	return &Estimator{
		Simulator:   simulator,
		SuiUsdPrice: price,
		Metrics:     metrics,
	}
}

func (e *Estimator) Estimate(ctx context.Context, migration *Migration) porta.MigrationEstimate {
	params := migration.Params
	gasUsed, err := e.Simulator.Simulate(ctx, migration.Transaction, params.GetSender())
	if err != nil {
		logrus.WithError(err).WithField("route", routeLabel(params.GetRoute())).Warn("dry run failed, using fallback gas estimate")
		e.Metrics.EstimateFellBack()
		return e.Fallback(migration)
	}
	gas := gasUsed.Total()
	e.Metrics.ObserveGas(gas.Uint64())

	estimate := porta.MigrationEstimate{
		GasEstimate:    gas,
		GasCostUsd:     e.usd(gas),
		ExpectedOutput: params.GetAmount(),
	}
	if summary := migration.Liquidity; summary != nil {
		// the swapped half loses the pool fee, valued in the source coin
		impact := summary.Quote.PriceImpact
		kept := summary.SwapIn.ApplySlippage(impact)
		estimate.ExpectedOutput = summary.Remainder.Add(&kept)
		estimate.PriceImpact = impact.InexactFloat64()
	}
	return estimate
}

// Fallback is the fixed estimate used when the dry run is unavailable.
func (e *Estimator) Fallback(migration *Migration) porta.MigrationEstimate {
	gas := porta.NewAmountBlockchainFromUint64(FallbackGasEstimate)
	return porta.MigrationEstimate{
		GasEstimate:    gas,
		GasCostUsd:     e.usd(gas),
		ExpectedOutput: migration.Params.GetAmount(),
		Fallback:       true,
	}
}

func (e *Estimator) usd(mist porta.AmountBlockchain) float64 {
	return mist.ToHuman(porta.SuiDecimals).Decimal().Mul(e.SuiUsdPrice).InexactFloat64()
}
