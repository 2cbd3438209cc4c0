package testutil

import (
	porta "github.com/portasui/porta"
	"github.com/portasui/porta/protocol"
)

// Coin types and object ids used by the protocol fixtures.
const (
	UsdcType = "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC"
	UsdtType = "0xc060006111016b8a020ad5b33834984a437aaa7d3c74c18e09a95d48aceab08c::coin::COIN"
	ScaType  = "0x7016aae72cfc67f2fadf55769c0a7dd54291a583b63051a5ed71081cce836ac6::sca::SCA"

	NaviPackage       = "0x1001"
	NaviSuiPool       = "0x1002"
	NaviUsdcPool      = "0x1003"
	ScallopPackage    = "0x2001"
	ScallopMarket     = "0x2002"
	ScallopVersion    = "0x2003"
	MagmaPackage      = "0x3001"
	MagmaSuiUsdc      = "0x3002"
	CetusPackage      = "0x4001"
	CetusGlobalConfig = "0x4002"
	CetusSuiUsdc      = "0x4003"
	SharedVersion     = 100
)

func Coins() *porta.CoinRegistry {
	return porta.NewCoinRegistry(
		&porta.CoinConfig{Symbol: porta.SUI, CoinType: porta.NativeCoinType, Decimals: 9},
		&porta.CoinConfig{Symbol: porta.USDC, CoinType: UsdcType, Decimals: 6},
		&porta.CoinConfig{Symbol: porta.USDT, CoinType: UsdtType, Decimals: 6},
		&porta.CoinConfig{Symbol: porta.SCA, CoinType: ScaType, Decimals: 9},
	)
}

func MustCoin(coins *porta.CoinRegistry, symbol porta.Coin) *porta.CoinConfig {
	coin, ok := coins.Get(symbol)
	if !ok {
		panic("unknown coin " + string(symbol))
	}
	return coin
}

func shared(id string) *protocol.SharedObjectConfig {
	return &protocol.SharedObjectConfig{ID: id, InitialSharedVersion: SharedVersion}
}

func NaviConfig() *protocol.Config {
	return &protocol.Config{
		ID: porta.Navi,
		Metadata: protocol.Metadata{
			Name:           "Navi Protocol",
			Kind:           porta.Lending,
			SupportedCoins: []porta.Coin{porta.SUI, porta.USDC, porta.USDT},
		},
		Package: NaviPackage,
		Reserves: map[porta.Coin]*protocol.SharedObjectConfig{
			porta.SUI:  shared(NaviSuiPool),
			porta.USDC: shared(NaviUsdcPool),
		},
	}
}

func ScallopConfig() *protocol.Config {
	return &protocol.Config{
		ID: porta.Scallop,
		Metadata: protocol.Metadata{
			Name:           "Scallop",
			Kind:           porta.Lending,
			SupportedCoins: []porta.Coin{porta.SUI, porta.USDC, porta.SCA},
		},
		Package: ScallopPackage,
		Objects: map[string]*protocol.SharedObjectConfig{
			"market":  shared(ScallopMarket),
			"version": shared(ScallopVersion),
		},
	}
}

func MagmaConfig() *protocol.Config {
	return &protocol.Config{
		ID: porta.Magma,
		Metadata: protocol.Metadata{
			Name:           "Magma Finance",
			Kind:           porta.Liquidity,
			SupportedCoins: []porta.Coin{porta.SUI, porta.USDC},
		},
		Package: MagmaPackage,
		Pools: []*protocol.PoolConfig{
			{SharedObjectConfig: *shared(MagmaSuiUsdc), CoinA: porta.SUI, CoinB: porta.USDC},
		},
	}
}

func CetusConfig() *protocol.Config {
	fee, _ := porta.NewAmountHumanReadableFromStr("0.003")
	return &protocol.Config{
		ID: porta.Cetus,
		Metadata: protocol.Metadata{
			Name:           "Cetus",
			Kind:           porta.Dex,
			SupportedCoins: []porta.Coin{porta.SUI, porta.USDC, porta.USDT},
		},
		Package: CetusPackage,
		Objects: map[string]*protocol.SharedObjectConfig{
			"global_config": shared(CetusGlobalConfig),
		},
		Pools: []*protocol.PoolConfig{
			{SharedObjectConfig: *shared(CetusSuiUsdc), CoinA: porta.SUI, CoinB: porta.USDC, FeeRate: fee},
		},
	}
}
