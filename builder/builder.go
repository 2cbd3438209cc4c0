package builder

import (
	"context"
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/builder/errors"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/observability"
	"github.com/portasui/porta/protocol"
	"github.com/sirupsen/logrus"
)

// Migration is a built transaction together with what went into it.
type Migration struct {
	Params      MigrationParams
	Coin        *porta.CoinConfig
	Transaction *ptb.Transaction

	// Set for liquidity routes
	Liquidity *LiquiditySummary
}

type LiquiditySummary struct {
	Pair      *porta.CoinConfig
	Pool      *protocol.PoolConfig
	SwapIn    porta.AmountBlockchain
	Remainder porta.AmountBlockchain
	Quote     protocol.SwapQuote
}

// MigrationBuilder composes migration transactions.  It holds no per-build state, so one
// builder can serve concurrent calls.
type MigrationBuilder struct {
	Coins     *porta.CoinRegistry
	Protocols *protocol.Registry
	// Swap router used by liquidity routes
	SwapProtocol porta.ProtocolID
	Metrics      *observability.Metrics
}

func NewMigrationBuilder(coins *porta.CoinRegistry, protocols *protocol.Registry, metrics *observability.Metrics) *MigrationBuilder {
	return &MigrationBuilder{
		Coins:        coins,
		Protocols:    protocols,
		SwapProtocol: porta.Cetus,
		Metrics:      metrics,
	}
}

// Build returns a fresh transaction implementing the migration.
func (b *MigrationBuilder) Build(ctx context.Context, params MigrationParams) (*ptb.Transaction, error) {
	migration, err := b.BuildMigration(ctx, params)
	if err != nil {
		return nil, err
	}
	return migration.Transaction, nil
}

func (b *MigrationBuilder) BuildMigration(ctx context.Context, params MigrationParams) (*Migration, error) {
	route := params.GetRoute()
	name := routeLabel(route)
	migration, err := b.build(ctx, params)
	if err != nil {
		b.Metrics.BuildFailed(name, err)
		return nil, err
	}
	b.Metrics.BuildSucceeded(name)
	logrus.WithFields(logrus.Fields{
		"route":    name,
		"coin":     migration.Coin.Symbol,
		"amount":   params.GetAmount().String(),
		"commands": migration.Transaction.Len(),
	}).Debug("built migration")
	return migration, nil
}

func routeLabel(route porta.MigrationRoute) string {
	if route == nil {
		return "none"
	}
	return route.String()
}

func (b *MigrationBuilder) build(ctx context.Context, params MigrationParams) (*Migration, error) {
	route := params.GetRoute()
	if !porta.IsSupportedRoute(route) {
		return nil, &errors.UnsupportedRouteError{Route: routeLabel(route)}
	}
	amount := params.GetAmount()
	if amount.Sign() <= 0 {
		return nil, errors.ErrInvalidAmount
	}
	coin, err := b.resolveCoin(params, route.Source())
	if err != nil {
		return nil, err
	}

	migration := &Migration{
		Params:      params,
		Coin:        coin,
		Transaction: ptb.NewTransaction(),
	}
	switch route := route.(type) {
	case porta.DirectRoute:
		err = b.buildDirect(migration, route)
	case porta.LiquidityRoute:
		err = b.buildLiquidity(ctx, migration, route)
	default:
		err = &errors.UnsupportedRouteError{Route: route.String()}
	}
	if err != nil {
		return nil, err
	}
	return migration, nil
}

func (b *MigrationBuilder) resolveCoin(params MigrationParams, source porta.ProtocolID) (*porta.CoinConfig, error) {
	coin, ok := b.Coins.Get(params.GetCoin())
	if !ok {
		return nil, &errors.AssetNotSupportedError{Asset: string(params.GetCoin()), Protocol: string(source)}
	}
	if coinType, ok := params.GetCoinType(); ok {
		expected, err := ptb.NormalizeType(coin.CoinType)
		if err != nil {
			return nil, err
		}
		given, err := ptb.NormalizeType(coinType)
		if err != nil {
			return nil, fmt.Errorf("invalid coin type: %w", err)
		}
		if given != expected {
			return nil, &errors.AssetNotSupportedError{Asset: coinType, Protocol: string(source)}
		}
	}
	return coin, nil
}

// protocols of a route that are missing from the registry make the route unsupported
func (b *MigrationBuilder) lending(route porta.MigrationRoute, id porta.ProtocolID) (protocol.Lending, error) {
	lending, err := b.Protocols.Lending(id)
	if err != nil {
		logrus.WithError(err).WithField("route", route.String()).Debug("route is not available")
		return nil, &errors.UnsupportedRouteError{Route: route.String()}
	}
	return lending, nil
}
