package magma_test

import (
	"testing"

	"github.com/portasui/porta"
	"github.com/portasui/porta/builder/errors"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/protocol"
	"github.com/portasui/porta/protocol/magma"
	"github.com/portasui/porta/testutil"
	"github.com/stretchr/testify/require"
)

func TestPairFor(t *testing.T) {
	client, err := magma.NewClient(testutil.MagmaConfig())
	require.NoError(t, err)

	pair, err := client.PairFor(porta.USDC)
	require.NoError(t, err)
	require.Equal(t, porta.SUI, pair)

	pair, err = client.PairFor("sui")
	require.NoError(t, err)
	require.Equal(t, porta.USDC, pair)

	_, err = client.PairFor(porta.USDT)
	pairErr := &errors.UnsupportedPairError{}
	require.ErrorAs(t, err, &pairErr)
	require.Equal(t, "USDT", pairErr.Asset)
	require.False(t, client.SupportsCoin(porta.USDT))
	require.True(t, client.SupportsCoin(porta.USDC))

	pool, err := client.Pool(porta.USDC, porta.SUI)
	require.NoError(t, err)
	require.Equal(t, testutil.MagmaSuiUsdc, pool.ID)

	_, err = client.Pool(porta.USDC, porta.USDT)
	require.ErrorAs(t, err, &pairErr)
}

func TestNewClientWithoutPools(t *testing.T) {
	cfg := testutil.MagmaConfig()
	cfg.Pools = nil
	_, err := magma.NewClient(cfg)
	require.ErrorContains(t, err, "has no pools")
}

func TestAddLiquidity(t *testing.T) {
	client, err := magma.NewClient(testutil.MagmaConfig())
	require.NoError(t, err)
	coins := testutil.Coins()
	sui := testutil.MustCoin(coins, porta.SUI)
	usdc := testutil.MustCoin(coins, porta.USDC)
	pool, err := client.Pool(porta.SUI, porta.USDC)
	require.NoError(t, err)

	legA := protocol.LiquidityLeg{Coin: sui, Handle: ptb.Result(2), MinAmount: 10}
	legB := protocol.LiquidityLeg{Coin: usdc, Handle: ptb.Result(0), MinAmount: 20}
	desc, err := client.AddLiquidity(pool, legA, legB)
	require.NoError(t, err)

	require.Equal(t, ptb.MustParseAddress(testutil.MagmaPackage).String()+"::pool::add_liquidity", desc.Target)
	require.Equal(t, []string{porta.NativeCoinType, testutil.UsdcType}, desc.TypeArguments)
	require.Equal(t, []ptb.Operand{
		ptb.Shared(ptb.MustParseAddress(testutil.MagmaSuiUsdc), testutil.SharedVersion, true),
		ptb.Output(ptb.Result(2)),
		ptb.Output(ptb.Result(0)),
		ptb.PureU64(10),
		ptb.PureU64(20),
		ptb.Clock(),
	}, desc.Arguments)

	// legs must follow the pool's coin order
	_, err = client.AddLiquidity(pool, legB, legA)
	require.ErrorContains(t, err, "do not match pool")
}
