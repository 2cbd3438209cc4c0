package protocol

import (
	"context"

	"github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/shopspring/decimal"
)

type Protocol interface {
	ID() porta.ProtocolID
	Metadata() *Metadata
	SupportsCoin(coin porta.Coin) bool
}

// Lending protocols hold deposits that can be withdrawn as a coin and deposited elsewhere.
type Lending interface {
	Protocol
	// Withdraw the exact amount of the coin.  The call returns a single coin object.
	Withdraw(coin *porta.CoinConfig, amount porta.AmountBlockchain) (ptb.CallDescriptor, error)
	// Deposit the coin held by handle.
	Deposit(coin *porta.CoinConfig, handle ptb.Argument) (ptb.CallDescriptor, error)
}

// LiquidityLeg is one side of an add-liquidity call.
type LiquidityLeg struct {
	Coin      *porta.CoinConfig
	Handle    ptb.Argument
	MinAmount uint64
}

type Liquidity interface {
	Protocol
	// PairFor returns the coin a pool pairs with the given one.
	PairFor(coin porta.Coin) (porta.Coin, error)
	Pool(a, b porta.Coin) (*PoolConfig, error)
	// AddLiquidity expects the legs in the pool's canonical order.  The call returns the position object.
	AddLiquidity(pool *PoolConfig, legA, legB LiquidityLeg) (ptb.CallDescriptor, error)
}

type SwapRequest struct {
	CoinIn   *porta.CoinConfig
	CoinOut  *porta.CoinConfig
	AmountIn porta.AmountBlockchain
	// Fraction of the expected output that may be lost, e.g. 0.01
	Slippage decimal.Decimal
}

type SwapQuote struct {
	// Direction of the swap in the pool's coin order
	AToB              bool
	ExpectedAmountOut porta.AmountBlockchain
	MinAmountOut      porta.AmountBlockchain
	PriceImpact       decimal.Decimal
}

type Swapper interface {
	Protocol
	Quote(ctx context.Context, req SwapRequest) (SwapQuote, error)
	// SwapCall swaps the coin held by coinIn.  The call returns the output coin.
	SwapCall(ctx context.Context, coinIn ptb.Argument, req SwapRequest) (ptb.CallDescriptor, SwapQuote, error)
}
