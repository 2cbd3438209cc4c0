package navi

import (
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/protocol"
)

const module = "lending"

// Client builds calls against the Navi lending package.  Navi keeps one reserve pool per coin.
type Client struct {
	cfg *protocol.Config
}

var _ protocol.Lending = &Client{}

func NewClient(cfg *protocol.Config) (*Client, error) {
	if cfg.ID != porta.Navi {
		return nil, fmt.Errorf("expected a %s deployment, got %s", porta.Navi, cfg.ID)
	}
	if _, err := cfg.PackageID(); err != nil {
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
	if !c.cfg.SupportsCoin(coin) {
		return false
	}
	_, ok := c.cfg.Reserve(coin)
	return ok
}

func (c *Client) pool(coin *porta.CoinConfig) (ptb.ObjectOperand, error) {
	if !c.SupportsCoin(coin.Symbol) {
		return ptb.ObjectOperand{}, protocol.NotSupported(coin.Symbol, c.ID())
	}
	reserve, _ := c.cfg.Reserve(coin.Symbol)
	return reserve.Operand(true)
}

func (c *Client) Withdraw(coin *porta.CoinConfig, amount porta.AmountBlockchain) (ptb.CallDescriptor, error) {
	value, err := protocol.MoveAmount(amount)
	if err != nil {
		return ptb.CallDescriptor{}, err
	}
	pool, err := c.pool(coin)
	if err != nil {
		return ptb.CallDescriptor{}, err
	}
	target, err := c.cfg.Target(module, "withdraw")
	if err != nil {
		return ptb.CallDescriptor{}, err
	}
	return ptb.CallDescriptor{
		Target:        target,
		Arguments:     []ptb.Operand{pool, ptb.PureU64(value)},
		TypeArguments: []string{coin.CoinType},
	}, nil
}

func (c *Client) Deposit(coin *porta.CoinConfig, handle ptb.Argument) (ptb.CallDescriptor, error) {
	pool, err := c.pool(coin)
	if err != nil {
		return ptb.CallDescriptor{}, err
	}
	target, err := c.cfg.Target(module, "deposit")
	if err != nil {
		return ptb.CallDescriptor{}, err
	}
	return ptb.CallDescriptor{
		Target:        target,
		Arguments:     []ptb.Operand{pool, ptb.Output(handle)},
		TypeArguments: []string{coin.CoinType},
	}, nil
}
