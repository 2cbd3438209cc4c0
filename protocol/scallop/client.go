package scallop

import (
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/protocol"
)

const (
	module = "lending"

	MarketObject  = "market"
	VersionObject = "version"
)

// Client builds calls against the Scallop lending package.  All coins share a single market object,
// and every call is gated by the package version object.
type Client struct {
	cfg *protocol.Config
}

var _ protocol.Lending = &Client{}

func NewClient(cfg *protocol.Config) (*Client, error) {
	if cfg.ID != porta.Scallop {
		return nil, fmt.Errorf("expected a %s deployment, got %s", porta.Scallop, cfg.ID)
	}
	if _, err := cfg.PackageID(); err != nil {
		return nil, err
	}
	for _, role := range []string{MarketObject, VersionObject} {
		if _, err := cfg.Object(role); err != nil {
			return nil, err
		}
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

// market and version operands, in call order
func (c *Client) objects() ([]ptb.Operand, error) {
	market, err := c.cfg.Object(MarketObject)
	if err != nil {
		return nil, err
	}
	version, err := c.cfg.Object(VersionObject)
	if err != nil {
		return nil, err
	}
	marketOp, err := market.Operand(true)
	if err != nil {
		return nil, err
	}
	versionOp, err := version.Operand(false)
	if err != nil {
		return nil, err
	}
	return []ptb.Operand{marketOp, versionOp}, nil
}

func (c *Client) call(function string, coin *porta.CoinConfig, last ptb.Operand) (ptb.CallDescriptor, error) {
	if !c.SupportsCoin(coin.Symbol) {
		return ptb.CallDescriptor{}, protocol.NotSupported(coin.Symbol, c.ID())
	}
	args, err := c.objects()
	if err != nil {
		return ptb.CallDescriptor{}, err
	}
	target, err := c.cfg.Target(module, function)
	if err != nil {
		return ptb.CallDescriptor{}, err
	}
	return ptb.CallDescriptor{
		Target:        target,
		Arguments:     append(args, last),
		TypeArguments: []string{coin.CoinType},
	}, nil
}

func (c *Client) Withdraw(coin *porta.CoinConfig, amount porta.AmountBlockchain) (ptb.CallDescriptor, error) {
	value, err := protocol.MoveAmount(amount)
	if err != nil {
		return ptb.CallDescriptor{}, err
	}
	return c.call("withdraw", coin, ptb.PureU64(value))
}

func (c *Client) Deposit(coin *porta.CoinConfig, handle ptb.Argument) (ptb.CallDescriptor, error) {
	return c.call("deposit", coin, ptb.Output(handle))
}
