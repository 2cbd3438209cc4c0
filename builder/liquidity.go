package builder

import (
	"context"
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/builder/errors"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/protocol"
)

// buildLiquidity withdraws from a lending protocol, swaps half of the coin into the pool's other
// coin, adds both to the pool and sends the position to the sender.
func (b *MigrationBuilder) buildLiquidity(ctx context.Context, migration *Migration, route porta.LiquidityRoute) error {
	params := migration.Params
	sender := params.GetSender()
	if sender == "" {
		return errors.ErrMissingSender
	}
	recipient, err := ptb.ParseAddress(string(sender))
	if err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}

	source, err := b.lending(route, route.From)
	if err != nil {
		return err
	}
	liquidity, err := b.Protocols.Liquidity(route.To)
	if err != nil {
		return &errors.UnsupportedRouteError{Route: route.String()}
	}
	swapper, err := b.Protocols.Swapper(b.SwapProtocol)
	if err != nil {
		return &errors.SwapUnavailableError{From: migration.Coin.CoinType, Reason: err.Error()}
	}

	coin := migration.Coin
	pairSymbol, err := liquidity.PairFor(coin.Symbol)
	if err != nil {
		return err
	}
	pair, ok := b.Coins.Get(pairSymbol)
	if !ok {
		return &errors.UnsupportedPairError{Asset: string(coin.Symbol), Protocol: string(liquidity.ID())}
	}
	pool, err := liquidity.Pool(coin.Symbol, pair.Symbol)
	if err != nil {
		return err
	}

	half, rest := params.GetAmount().SplitHalf()
	if half.IsZero() {
		return fmt.Errorf("%w: %s cannot be split in half", errors.ErrInvalidAmount, params.GetAmount().String())
	}
	tx := migration.Transaction

	withdraw, err := source.Withdraw(coin, params.GetAmount())
	if err != nil {
		return fmt.Errorf("%s withdraw: %w", source.ID(), err)
	}
	withdrawn, err := tx.Append(withdraw)
	if err != nil {
		return err
	}

	// the split part is exactly floor(A/2), the remainder stays in the withdrawn coin
	parts, err := tx.SplitCoins(withdrawn, half.Uint64())
	if err != nil {
		return err
	}

	swap, quote, err := swapper.SwapCall(ctx, parts[0], protocol.SwapRequest{
		CoinIn:   coin,
		CoinOut:  pair,
		AmountIn: half,
		Slippage: params.GetSlippage(),
	})
	if err != nil {
		return err
	}
	swapped, err := tx.Append(swap)
	if err != nil {
		return err
	}

	minSource, minPair := params.GetMinLiquidity()
	legA, legB, err := sortPairByTypeIdentifier(
		protocol.LiquidityLeg{Coin: coin, Handle: withdrawn, MinAmount: minSource},
		protocol.LiquidityLeg{Coin: pair, Handle: swapped, MinAmount: minPair},
	)
	if err != nil {
		return err
	}
	addLiquidity, err := liquidity.AddLiquidity(pool, legA, legB)
	if err != nil {
		return fmt.Errorf("%s add liquidity: %w", liquidity.ID(), err)
	}
	position, err := tx.Append(addLiquidity)
	if err != nil {
		return err
	}
	if err := tx.TransferObjects([]ptb.Argument{position}, recipient); err != nil {
		return err
	}

	migration.Liquidity = &LiquiditySummary{
		Pair:      pair,
		Pool:      pool,
		SwapIn:    half,
		Remainder: rest,
		Quote:     quote,
	}
	return nil
}

// sortPairByTypeIdentifier orders two legs by ascending normalized coin type, the order pools
// keep their coins in.  Add-liquidity calls with the legs reversed abort on chain.
func sortPairByTypeIdentifier(x, y protocol.LiquidityLeg) (protocol.LiquidityLeg, protocol.LiquidityLeg, error) {
	xType, err := ptb.NormalizeType(x.Coin.CoinType)
	if err != nil {
		return x, y, err
	}
	yType, err := ptb.NormalizeType(y.Coin.CoinType)
	if err != nil {
		return x, y, err
	}
	switch {
	case xType < yType:
		return x, y, nil
	case yType < xType:
		return y, x, nil
	}
	return x, y, fmt.Errorf("cannot pair %s with itself", xType)
}
