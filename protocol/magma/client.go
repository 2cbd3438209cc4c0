package magma

import (
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/builder/errors"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/protocol"
)

const module = "pool"

// Client builds calls against Magma concentrated liquidity pools.
type Client struct {
	cfg *protocol.Config
}

var _ protocol.Liquidity = &Client{}

func NewClient(cfg *protocol.Config) (*Client, error) {
	if cfg.ID != porta.Magma {
		return nil, fmt.Errorf("expected a %s deployment, got %s", porta.Magma, cfg.ID)
	}
	if _, err := cfg.PackageID(); err != nil {
		return nil, err
	}
	if len(cfg.Pools) == 0 {
		return nil, fmt.Errorf("%s deployment has no pools", cfg.ID)
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
	if !c.cfg.SupportsCoin(coin) {
		return false
	}
	_, err := c.PairFor(coin)
	return err == nil
}

// PairFor returns the other coin of the first pool holding the coin.
func (c *Client) PairFor(coin porta.Coin) (porta.Coin, error) {
	for _, pool := range c.cfg.Pools {
		if other, ok := pool.Other(coin); ok {
			return other, nil
		}
	}
	return "", &errors.UnsupportedPairError{Asset: string(coin), Protocol: string(c.ID())}
}

func (c *Client) Pool(a, b porta.Coin) (*protocol.PoolConfig, error) {
	for _, pool := range c.cfg.Pools {
		if other, ok := pool.Other(a); ok && other == b.Normalize() {
			return pool, nil
		}
	}
	return nil, &errors.UnsupportedPairError{Asset: fmt.Sprintf("%s/%s", a, b), Protocol: string(c.ID())}
}

func (c *Client) AddLiquidity(pool *protocol.PoolConfig, legA, legB protocol.LiquidityLeg) (ptb.CallDescriptor, error) {
	if legA.Coin.Symbol.Normalize() != pool.CoinA.Normalize() || legB.Coin.Symbol.Normalize() != pool.CoinB.Normalize() {
		return ptb.CallDescriptor{}, fmt.Errorf("liquidity legs %s/%s do not match pool %s", legA.Coin.Symbol, legB.Coin.Symbol, pool)
	}
	poolOp, err := pool.Operand(true)
	if err != nil {
		return ptb.CallDescriptor{}, err
	}
	target, err := c.cfg.Target(module, "add_liquidity")
	if err != nil {
		return ptb.CallDescriptor{}, err
	}
	return ptb.CallDescriptor{
		Target: target,
		Arguments: []ptb.Operand{
			poolOp,
			ptb.Output(legA.Handle),
			ptb.Output(legB.Handle),
			ptb.PureU64(legA.MinAmount),
			ptb.PureU64(legB.MinAmount),
			ptb.Clock(),
		},
		TypeArguments: []string{legA.Coin.CoinType, legB.Coin.CoinType},
	}, nil
}
