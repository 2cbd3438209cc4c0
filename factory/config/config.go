package config

import (
	"fmt"
	"slices"

	"github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui"
	"github.com/portasui/porta/protocol"
)

// Config is the full configuration of one network: how to reach it, which coins may be
// migrated and where each protocol is deployed.
type Config struct {
	porta.NetworkConfig `yaml:",inline"`

	Coins     []*porta.CoinConfig `yaml:"coins,omitempty"`
	Protocols []*protocol.Config  `yaml:"protocols,omitempty"`
	// Protocol used to swap half of the position on liquidity routes
	SwapProtocol porta.ProtocolID `yaml:"swap_protocol,omitempty"`
}

func (cfg *Config) CoinRegistry() *porta.CoinRegistry {
	return porta.NewCoinRegistry(cfg.Coins...)
}

func (cfg *Config) GetProtocol(id porta.ProtocolID) (*protocol.Config, bool) {
	for _, p := range cfg.Protocols {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// GetProtocols returns the deployments sorted by id.
func (cfg *Config) GetProtocols() []*protocol.Config {
	protocols := slices.Clone(cfg.Protocols)
	slices.SortFunc(protocols, func(a, b *protocol.Config) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return protocols
}

// Deployed reports whether a protocol has a package on this network.
func Deployed(p *protocol.Config) bool {
	return p.Package != ""
}

func (cfg *Config) Validate() error {
	if err := cfg.NetworkConfig.Validate(); err != nil {
		return err
	}
	coins := cfg.CoinRegistry()
	if len(cfg.Coins) != coins.Len() {
		return fmt.Errorf("%s has duplicate coin entries", cfg.Network)
	}
	for _, coin := range cfg.Coins {
		if coin.CoinType == "" {
			return fmt.Errorf("coin %s has no coin type", coin.Symbol)
		}
		if coin.Symbol.Normalize() == porta.SUI && !sui.IsNativeCoinType(coin.CoinType) {
			return fmt.Errorf("coin %s must use the native coin type, not %s", coin.Symbol, coin.CoinType)
		}
	}
	seen := map[porta.ProtocolID]bool{}
	for _, p := range cfg.Protocols {
		if seen[p.ID] {
			return fmt.Errorf("%s is configured more than once", p.ID)
		}
		seen[p.ID] = true
		if !Deployed(p) {
			continue
		}
		if err := p.Validate(coins); err != nil {
			return err
		}
	}
	return nil
}
