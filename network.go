package porta

import (
	"fmt"
	"strings"
)

type Network string

const (
	Mainnet  = Network("mainnet")
	Testnet  = Network("testnet")
	Devnet   = Network("devnet")
	Localnet = Network("localnet")
)

func (n Network) Valid() bool {
	switch n {
	case Mainnet, Testnet, Devnet, Localnet:
		return true
	}
	return false
}

// NetworkConfig is how to reach and pay for a Sui network.
type NetworkConfig struct {
	Network Network `yaml:"network,omitempty" json:"network"`
	URL     string  `yaml:"url,omitempty" json:"url"`
	// Requests per second against the RPC, 0 disables limiting
	RateLimit float64 `yaml:"rate_limit,omitempty" json:"rate_limit,omitempty"`
	// Gas budget in MIST used when signing a migration
	GasBudget uint64 `yaml:"gas_budget,omitempty" json:"gas_budget,omitempty"`
	// Used when the reference gas price cannot be fetched
	GasPriceDefault uint64 `yaml:"gas_price_default,omitempty" json:"gas_price_default,omitempty"`
	// Maximum fee in SUI that a migration may spend, 0 disables the check
	FeeLimit    AmountHumanReadable `yaml:"fee_limit,omitempty" json:"fee_limit,omitempty"`
	ExplorerURL string              `yaml:"explorer_url,omitempty" json:"explorer_url,omitempty"`
}

func (cfg *NetworkConfig) Validate() error {
	if !cfg.Network.Valid() {
		return fmt.Errorf("unknown network %q", cfg.Network)
	}
	if cfg.URL == "" {
		return fmt.Errorf("no rpc url configured for %s", cfg.Network)
	}
	return nil
}

func (cfg *NetworkConfig) TxURL(digest TxHash) string {
	if cfg.ExplorerURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/tx/%s", strings.TrimSuffix(cfg.ExplorerURL, "/"), digest)
}
