package defaults

import (
	_ "embed"
	"fmt"

	"github.com/portasui/porta"
	factoryconfig "github.com/portasui/porta/factory/config"
	"gopkg.in/yaml.v3"
)

//go:embed mainnet.yaml
var mainnetData string

//go:embed testnet.yaml
var testnetData string

var Mainnet factoryconfig.Config
var Testnet factoryconfig.Config

func Unmarshal(data string) factoryconfig.Config {
	cfg := factoryconfig.Config{}
	if err := yaml.Unmarshal([]byte(data), &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func init() {
	Mainnet = For(porta.Mainnet)
	Testnet = For(porta.Testnet)
}

// For returns a fresh copy of the embedded defaults of a network.  Devnet and localnet
// start from the testnet defaults.
func For(network porta.Network) factoryconfig.Config {
	switch network {
	case porta.Mainnet:
		return Unmarshal(mainnetData)
	default:
		cfg := Unmarshal(testnetData)
		// testnet shares the mainnet fee limit unless it sets its own
		if cfg.FeeLimit.IsZero() {
			cfg.FeeLimit = Unmarshal(mainnetData).FeeLimit
		}
		if network != porta.Testnet {
			cfg.Network = network
			cfg.URL = localURL(network)
			cfg.ExplorerURL = ""
		}
		return cfg
	}
}

func localURL(network porta.Network) string {
	if network == porta.Localnet {
		return "http://127.0.0.1:9000"
	}
	return fmt.Sprintf("https://fullnode.%s.sui.io:443", network)
}
