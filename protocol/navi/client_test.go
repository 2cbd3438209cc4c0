package navi_test

import (
	"testing"

	"github.com/portasui/porta"
	"github.com/portasui/porta/builder/errors"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/protocol"
	"github.com/portasui/porta/protocol/navi"
	"github.com/portasui/porta/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	_, err := navi.NewClient(testutil.ScallopConfig())
	require.ErrorContains(t, err, "expected a navi deployment")

	cfg := testutil.NaviConfig()
	cfg.Package = ""
	_, err = navi.NewClient(cfg)
	require.Error(t, err)
}

func TestWithdraw(t *testing.T) {
	client, err := navi.NewClient(testutil.NaviConfig())
	require.NoError(t, err)
	coins := testutil.Coins()
	sui := testutil.MustCoin(coins, porta.SUI)

	desc, err := client.Withdraw(sui, porta.NewAmountBlockchainFromUint64(100_000_000_000))
	require.NoError(t, err)
	require.Equal(t, ptb.MustParseAddress(testutil.NaviPackage).String()+"::lending::withdraw", desc.Target)
	require.Equal(t, []string{porta.NativeCoinType}, desc.TypeArguments)
	require.Equal(t, []ptb.Operand{
		ptb.Shared(ptb.MustParseAddress(testutil.NaviSuiPool), testutil.SharedVersion, true),
		ptb.PureU64(100_000_000_000),
	}, desc.Arguments)
	require.Empty(t, desc.Outputs())

	usdc := testutil.MustCoin(coins, porta.USDC)
	desc, err = client.Withdraw(usdc, porta.NewAmountBlockchainFromUint64(5))
	require.NoError(t, err)
	require.Equal(t, ptb.Shared(ptb.MustParseAddress(testutil.NaviUsdcPool), testutil.SharedVersion, true), desc.Arguments[0])
}

func TestWithdrawErrors(t *testing.T) {
	client, err := navi.NewClient(testutil.NaviConfig())
	require.NoError(t, err)
	coins := testutil.Coins()

	_, err = client.Withdraw(testutil.MustCoin(coins, porta.SUI), porta.NewAmountBlockchainFromUint64(0))
	require.ErrorIs(t, err, errors.ErrInvalidAmount)

	_, err = client.Withdraw(testutil.MustCoin(coins, porta.SUI), porta.NewAmountBlockchainFromStr("18446744073709551616"))
	require.ErrorIs(t, err, errors.ErrAmountOverflow)

	// listed as supported, but without a reserve pool
	_, err = client.Withdraw(testutil.MustCoin(coins, porta.USDT), porta.NewAmountBlockchainFromUint64(1))
	notSupported := &errors.AssetNotSupportedError{}
	require.ErrorAs(t, err, &notSupported)
	require.Equal(t, "USDT", notSupported.Asset)
	require.Equal(t, "navi", notSupported.Protocol)

	_, err = client.Withdraw(testutil.MustCoin(coins, porta.SCA), porta.NewAmountBlockchainFromUint64(1))
	require.ErrorAs(t, err, &notSupported)
	require.False(t, client.SupportsCoin(porta.SCA))
	require.True(t, client.SupportsCoin("sui"))
}

func TestDeposit(t *testing.T) {
	client, err := navi.NewClient(testutil.NaviConfig())
	require.NoError(t, err)
	usdc := testutil.MustCoin(testutil.Coins(), porta.USDC)

	desc, err := client.Deposit(usdc, ptb.Result(0))
	require.NoError(t, err)
	require.Equal(t, ptb.MustParseAddress(testutil.NaviPackage).String()+"::lending::deposit", desc.Target)
	require.Equal(t, []string{testutil.UsdcType}, desc.TypeArguments)
	require.Equal(t, []ptb.Argument{ptb.Result(0)}, desc.Outputs())
	require.Len(t, desc.Arguments, 2)

	var _ protocol.Lending = client
	require.Equal(t, "Navi Protocol", client.Metadata().Name)
	require.Equal(t, porta.Lending, client.Metadata().Kind)
}
