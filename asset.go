package porta

import (
	"fmt"
	"strings"

	"github.com/tidwall/btree"
)

// Coin is the symbol of a coin, e.g. "SUI" or "USDC"
type Coin string

// Coins known to the default deployments
const (
	SUI   = Coin("SUI")
	USDC  = Coin("USDC")
	USDT  = Coin("USDT")
	WETH  = Coin("WETH")
	CETUS = Coin("CETUS")
	NAVX  = Coin("NAVX")
	SCA   = Coin("SCA")
)

const SuiDecimals int32 = 9

// NativeCoinType is the coin type of SUI, which also pays for gas
const NativeCoinType = "0x2::sui::SUI"

func (c Coin) Normalize() Coin {
	return Coin(strings.ToUpper(strings.TrimSpace(string(c))))
}

// CoinConfig describes a coin as it exists on chain.
type CoinConfig struct {
	Symbol   Coin   `yaml:"symbol" json:"symbol"`
	CoinType string `yaml:"coin_type" json:"coin_type"`
	Decimals int32  `yaml:"decimals" json:"decimals"`
	// Fixed display rate.  This is not a price feed.
	UsdPrice AmountHumanReadable `yaml:"usd_price,omitempty" json:"usd_price,omitempty"`
}

func (c *CoinConfig) String() string {
	return fmt.Sprintf("%s (%s)", c.Symbol, c.CoinType)
}

// CoinRegistry is the allow-list of coins that can be migrated.  Iteration is ordered by symbol.
type CoinRegistry struct {
	coins  *btree.Map[Coin, *CoinConfig]
	byType map[string]*CoinConfig
}

func NewCoinRegistry(coins ...*CoinConfig) *CoinRegistry {
	registry := &CoinRegistry{
		coins:  btree.NewMap[Coin, *CoinConfig](0),
		byType: map[string]*CoinConfig{},
	}
	for _, coin := range coins {
		registry.Add(coin)
	}
	return registry
}

func (r *CoinRegistry) Add(coin *CoinConfig) {
	coin.Symbol = coin.Symbol.Normalize()
	r.coins.Set(coin.Symbol, coin)
	r.byType[coin.CoinType] = coin
}

func (r *CoinRegistry) Get(symbol Coin) (*CoinConfig, bool) {
	return r.coins.Get(symbol.Normalize())
}

func (r *CoinRegistry) GetByType(coinType string) (*CoinConfig, bool) {
	coin, ok := r.byType[coinType]
	return coin, ok
}

func (r *CoinRegistry) Contains(symbol Coin) bool {
	_, ok := r.Get(symbol)
	return ok
}

func (r *CoinRegistry) Len() int {
	return r.coins.Len()
}

func (r *CoinRegistry) Coins() []*CoinConfig {
	coins := make([]*CoinConfig, 0, r.coins.Len())
	r.coins.Scan(func(_ Coin, coin *CoinConfig) bool {
		coins = append(coins, coin)
		return true
	})
	return coins
}

// ProtocolID identifies a DeFi protocol deployment
type ProtocolID string

const (
	Navi    = ProtocolID("navi")
	Scallop = ProtocolID("scallop")
	Magma   = ProtocolID("magma")
	Cetus   = ProtocolID("cetus")
)

type ProtocolKind string

const (
	Lending   = ProtocolKind("lending")
	Liquidity = ProtocolKind("liquidity")
	Dex       = ProtocolKind("dex")
)
