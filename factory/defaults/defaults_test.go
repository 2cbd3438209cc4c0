package defaults_test

import (
	"testing"

	"github.com/portasui/porta"
	"github.com/portasui/porta/factory/defaults"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigurationLint(t *testing.T) {
	for _, network := range []porta.Network{porta.Mainnet, porta.Testnet, porta.Devnet, porta.Localnet} {
		t.Run(string(network), func(t *testing.T) {
			cfg := defaults.For(network)
			require.Equal(t, network, cfg.Network)
			require.NoError(t, cfg.Validate())

			coins := cfg.CoinRegistry()
			sui, ok := coins.Get(porta.SUI)
			require.True(t, ok, "SUI must always be configured")
			require.Equal(t, porta.NativeCoinType, sui.CoinType)
			require.True(t, sui.UsdPrice.Decimal().IsPositive())
			require.Equal(t, porta.ProtocolID("cetus"), cfg.SwapProtocol)

			for _, id := range []porta.ProtocolID{porta.Navi, porta.Scallop, porta.Magma, porta.Cetus} {
				_, ok := cfg.GetProtocol(id)
				require.True(t, ok, "missing entry for %s", id)
			}
		})
	}
}

func TestMainnetDeployments(t *testing.T) {
	cfg := defaults.For(porta.Mainnet)
	require.Equal(t, "0.5", cfg.FeeLimit.String())

	scallop, ok := cfg.GetProtocol(porta.Scallop)
	require.True(t, ok)
	_, err := scallop.Object("market")
	require.NoError(t, err)
	_, err = scallop.Object("version")
	require.NoError(t, err)

	navi, _ := cfg.GetProtocol(porta.Navi)
	_, ok = navi.Reserve(porta.SUI)
	require.True(t, ok)

	cetus, _ := cfg.GetProtocol(porta.Cetus)
	require.Len(t, cetus.Pools, 1)
	require.True(t, cetus.Pools[0].Has(porta.SUI))
	require.True(t, cetus.Pools[0].Has(porta.USDC))
	global, err := cetus.Object("global_config")
	require.NoError(t, err)
	require.NotZero(t, global.InitialSharedVersion)
}

func TestDefaultsAreCopies(t *testing.T) {
	a := defaults.For(porta.Mainnet)
	a.Coins[0].Decimals = 1
	b := defaults.For(porta.Mainnet)
	require.EqualValues(t, 9, b.Coins[0].Decimals)
}

func TestTestnetInheritsFeeLimit(t *testing.T) {
	require.Equal(t, defaults.Mainnet.FeeLimit.String(), defaults.Testnet.FeeLimit.String())
	require.Equal(t, "http://127.0.0.1:9000", defaults.For(porta.Localnet).URL)
}
