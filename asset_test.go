package porta_test

import (
	. "github.com/portasui/porta"
)

func testRegistry() *CoinRegistry {
	return NewCoinRegistry(
		&CoinConfig{Symbol: "usdc", CoinType: "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC", Decimals: 6},
		&CoinConfig{Symbol: SUI, CoinType: NativeCoinType, Decimals: SuiDecimals},
		&CoinConfig{Symbol: CETUS, CoinType: "0x06864a6f921804860930db6ddbe2e16acdf8504495ea7481637a1c8b9a8fe54b::cetus::CETUS", Decimals: 9},
	)
}

func (s *PortaTestSuite) TestCoinRegistry() {
	require := s.Require()
	registry := testRegistry()
	require.Equal(3, registry.Len())

	coin, ok := registry.Get(" usdc ")
	require.True(ok)
	require.Equal(USDC, coin.Symbol)
	require.EqualValues(6, coin.Decimals)

	coin, ok = registry.GetByType(NativeCoinType)
	require.True(ok)
	require.Equal(SUI, coin.Symbol)

	require.True(registry.Contains(CETUS))
	require.False(registry.Contains(NAVX))
	_, ok = registry.GetByType("0x2::foo::FOO")
	require.False(ok)
}

func (s *PortaTestSuite) TestCoinRegistryOrdered() {
	require := s.Require()
	symbols := []Coin{}
	for _, coin := range testRegistry().Coins() {
		symbols = append(symbols, coin.Symbol)
	}
	require.Equal([]Coin{CETUS, SUI, USDC}, symbols)
}
