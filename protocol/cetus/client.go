package cetus

import (
	"context"
	"fmt"
	"math/big"

	"github.com/portasui/porta"
	"github.com/portasui/porta/builder/errors"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/protocol"
	"github.com/shopspring/decimal"
)

const (
	module = "router"

	GlobalConfigObject = "global_config"
)

// Price limits of the CLMM, the swap may move the pool price all the way to either bound.
var (
	MinSqrtPrice    = big.NewInt(4295048016)
	MaxSqrtPrice, _ = new(big.Int).SetString("79226673515401279992447579055", 10)
)

// Client builds swaps through the Cetus router.  Quotes are valued with the configured coin
// prices; without prices a swap is quoted one to one.
type Client struct {
	cfg *protocol.Config
}

var _ protocol.Swapper = &Client{}

func NewClient(cfg *protocol.Config) (*Client, error) {
	if cfg.ID != porta.Cetus {
		return nil, fmt.Errorf("expected a %s deployment, got %s", porta.Cetus, cfg.ID)
	}
	if _, err := cfg.PackageID(); err != nil {
		return nil, err
	}
	if _, err := cfg.Object(GlobalConfigObject); err != nil {
		return nil, err
	}
	return &Client{cfg: cfg}, nil
}

func (c *Client) ID() porta.ProtocolID {
	return c.cfg.ID
}

func (c *Client) Metadata() *protocol.Metadata {
	return &c.cfg.Metadata
}

func (c *Client) SupportsCoin(coin porta.Coin) bool {
	return c.cfg.SupportsCoin(coin)
}

func (c *Client) pool(req protocol.SwapRequest) (*protocol.PoolConfig, bool, error) {
	in, out := req.CoinIn.Symbol, req.CoinOut.Symbol
	unavailable := func(reason string) error {
		return &errors.SwapUnavailableError{From: req.CoinIn.CoinType, To: req.CoinOut.CoinType, Reason: reason}
	}
	if in.Normalize() == out.Normalize() {
		return nil, false, unavailable("coins are the same")
	}
	if !c.SupportsCoin(in) || !c.SupportsCoin(out) {
		return nil, false, unavailable(fmt.Sprintf("%s does not list both coins", c.ID()))
	}
	for _, pool := range c.cfg.Pools {
		if other, ok := pool.Other(in); ok && other == out.Normalize() {
			return pool, pool.CoinA.Normalize() == in.Normalize(), nil
		}
	}
	return nil, false, unavailable("no pool")
}

func (c *Client) Quote(ctx context.Context, req protocol.SwapRequest) (protocol.SwapQuote, error) {
	pool, aToB, err := c.pool(req)
	if err != nil {
		return protocol.SwapQuote{}, err
	}
	return quote(pool, aToB, req), nil
}

func quote(pool *protocol.PoolConfig, aToB bool, req protocol.SwapRequest) protocol.SwapQuote {
	fee := pool.FeeRate.Decimal()
	expected := req.AmountIn
	priceIn := req.CoinIn.UsdPrice.Decimal()
	priceOut := req.CoinOut.UsdPrice.Decimal()
	if priceIn.IsPositive() && priceOut.IsPositive() {
		value := req.AmountIn.ToHuman(req.CoinIn.Decimals).Decimal().Mul(priceIn)
		out := value.Div(priceOut).Mul(decimal.NewFromInt(1).Sub(fee))
		expected = porta.AmountHumanReadable(out).ToBlockchain(req.CoinOut.Decimals)
	}
	// The minimum is taken over the input amount so configured prices never loosen the bound.
	return protocol.SwapQuote{
		AToB:              aToB,
		ExpectedAmountOut: expected,
		MinAmountOut:      req.AmountIn.ApplySlippage(req.Slippage),
		PriceImpact:       fee,
	}
}

func (c *Client) SwapCall(ctx context.Context, coinIn ptb.Argument, req protocol.SwapRequest) (ptb.CallDescriptor, protocol.SwapQuote, error) {
	amountIn, err := protocol.MoveAmount(req.AmountIn)
	if err != nil {
		return ptb.CallDescriptor{}, protocol.SwapQuote{}, err
	}
	pool, aToB, err := c.pool(req)
	if err != nil {
		return ptb.CallDescriptor{}, protocol.SwapQuote{}, err
	}
	q := quote(pool, aToB, req)
	if !q.MinAmountOut.IsUint64() {
		return ptb.CallDescriptor{}, protocol.SwapQuote{}, errors.ErrAmountOverflow
	}

	globalConfig, err := c.cfg.Object(GlobalConfigObject)
	if err != nil {
		return ptb.CallDescriptor{}, protocol.SwapQuote{}, err
	}
	configOp, err := globalConfig.Operand(false)
	if err != nil {
		return ptb.CallDescriptor{}, protocol.SwapQuote{}, err
	}
	poolOp, err := pool.Operand(true)
	if err != nil {
		return ptb.CallDescriptor{}, protocol.SwapQuote{}, err
	}
	limit := MaxSqrtPrice
	if aToB {
		limit = MinSqrtPrice
	}
	limitOp, err := ptb.PureU128(limit)
	if err != nil {
		return ptb.CallDescriptor{}, protocol.SwapQuote{}, err
	}
	target, err := c.cfg.Target(module, "swap")
	if err != nil {
		return ptb.CallDescriptor{}, protocol.SwapQuote{}, err
	}

	typeA, typeB := req.CoinIn.CoinType, req.CoinOut.CoinType
	if !aToB {
		typeA, typeB = typeB, typeA
	}
	return ptb.CallDescriptor{
		Target: target,
		Arguments: []ptb.Operand{
			configOp,
			poolOp,
			ptb.Output(coinIn),
			ptb.PureBool(aToB),
			ptb.PureU64(amountIn),
			ptb.PureU64(q.MinAmountOut.Uint64()),
			limitOp,
			ptb.Clock(),
		},
		TypeArguments: []string{typeA, typeB},
	}, q, nil
}
