package commands

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/portasui/porta"
	"github.com/portasui/porta/cmd/porta/setup"
	"github.com/portasui/porta/factory"
	factoryconfig "github.com/portasui/porta/factory/config"
	"github.com/portasui/porta/factory/signer"
	"github.com/portasui/porta/protocol"
	"github.com/portasui/porta/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"
)

const (
	seedHex       = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	signerAddress = "0x304af458e90e97c841685b8cbbc59b909f3e2cf150df590ada4c81452c29737d"
)

type CommandsTestSuite struct {
	suite.Suite
	factory *factory.Factory
}

func newTestFactory(url string) (*factory.Factory, error) {
	cfg := &factoryconfig.Config{
		NetworkConfig: porta.NetworkConfig{Network: porta.Devnet, URL: url},
		Coins:         testutil.Coins().Coins(),
		Protocols: []*protocol.Config{
			testutil.NaviConfig(),
			testutil.ScallopConfig(),
			testutil.MagmaConfig(),
			testutil.CetusConfig(),
		},
	}
	return factory.NewFactoryWithConfig(cfg, nil)
}

func (s *CommandsTestSuite) SetupTest() {
	portaFactory, err := newTestFactory("http://127.0.0.1:1")
	s.Require().NoError(err)
	s.factory = portaFactory
	s.T().Setenv(signer.EnvPrivateKey, "")
}

func TestCommands(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) run(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	return cmd.ExecuteContext(setup.CreateContext(s.factory))
}

func (s *CommandsTestSuite) TestParseAmount() {
	require := s.Require()
	amount, err := parseAmount(s.factory.Coins, porta.USDC, "1.5", false)
	require.NoError(err)
	require.EqualValues(1_500_000, amount.Uint64())

	amount, err = parseAmount(s.factory.Coins, porta.SUI, "1.5", false)
	require.NoError(err)
	require.EqualValues(1_500_000_000, amount.Uint64())

	amount, err = parseAmount(s.factory.Coins, porta.USDC, "1500", true)
	require.NoError(err)
	require.EqualValues(1500, amount.Uint64())

	_, err = parseAmount(s.factory.Coins, porta.USDC, "abc", false)
	require.ErrorContains(err, "invalid amount")

	// USDC has 6 decimals
	_, err = parseAmount(s.factory.Coins, porta.USDC, "1.2345678", false)
	require.ErrorContains(err, "more than 6 decimal places")
	amount, err = parseAmount(s.factory.Coins, porta.USDC, "1.234567", false)
	require.NoError(err)
	require.EqualValues(1_234_567, amount.Uint64())
}

func (s *CommandsTestSuite) TestMigrationParams() {
	require := s.Require()
	cmd := &cobra.Command{}
	addMigrationFlags(cmd)
	require.NoError(cmd.Flags().Set("slippage", "0.02"))
	require.NoError(cmd.Flags().Set("priority", "aggressive"))

	params, err := migrationParams(cmd, s.factory, []string{"Navi-To-Magma", "usdc", "10"})
	require.NoError(err)
	require.Equal(porta.NaviToMagma, params.GetRoute())
	require.Equal(porta.USDC, params.GetCoin())
	require.EqualValues(10_000_000, params.GetAmount().Uint64())
	require.Equal("0.02", params.GetSlippage().String())
	priority, ok := params.GetPriority()
	require.True(ok)
	require.Equal(porta.Aggressive, priority)
	// no sender and no key
	require.Empty(params.GetSender())

	_, err = migrationParams(cmd, s.factory, []string{"navi-to-nowhere", "usdc", "10"})
	require.Error(err)

	_, err = migrationParams(cmd, s.factory, []string{"navi-to-magma", "usdc", "10.0000001"})
	require.ErrorContains(err, "decimal places")
}

func (s *CommandsTestSuite) TestSenderFromKey() {
	require := s.Require()
	s.T().Setenv(signer.EnvPrivateKey, seedHex)
	cmd := &cobra.Command{}
	addMigrationFlags(cmd)
	sender, err := senderOrDerived(cmd)
	require.NoError(err)
	require.EqualValues(signerAddress, sender)

	require.NoError(cmd.Flags().Set("sender", "0xabc"))
	sender, err = senderOrDerived(cmd)
	require.NoError(err)
	require.EqualValues("0xabc", sender)
}

func (s *CommandsTestSuite) TestSenderKeyErrors() {
	require := s.Require()
	cmd := &cobra.Command{}
	addMigrationFlags(cmd)

	missing := filepath.Join(s.T().TempDir(), "missing.key")
	require.NoError(cmd.Flags().Set("key", "file:"+missing))
	_, err := senderOrDerived(cmd)
	require.ErrorContains(err, "could not load private key")

	require.NoError(cmd.Flags().Set("key", "nosuchscheme:abc"))
	_, err = senderOrDerived(cmd)
	require.Error(err)

	// an unset variable means no key, not a failure
	require.NoError(cmd.Flags().Set("key", "env:"+signer.EnvPrivateKey))
	sender, err := senderOrDerived(cmd)
	require.NoError(err)
	require.Empty(sender)

	require.NoError(cmd.Flags().Set("key", ""))
	sender, err = senderOrDerived(cmd)
	require.NoError(err)
	require.Empty(sender)
}

func (s *CommandsTestSuite) TestMigrationOutput() {
	require := s.Require()
	cmd := &cobra.Command{}
	addMigrationFlags(cmd)
	require.NoError(cmd.Flags().Set("sender", signerAddress))
	params, err := migrationParams(cmd, s.factory, []string{"navi-to-magma", "USDC", "100"})
	require.NoError(err)
	migration, err := s.factory.BuildMigration(context.Background(), params)
	require.NoError(err)

	out, err := newMigrationOutput(migration)
	require.NoError(err)
	require.Equal("navi-to-magma", out.Route)
	require.Equal("100", out.Amount)
	require.Equal("100.00 USDC", out.Display)
	require.Len(out.Commands, 5)
	require.Contains(out.Commands[0], "withdraw")
	_, err = base64.StdEncoding.DecodeString(out.TransactionKind)
	require.NoError(err)
	require.NotNil(out.Liquidity)
	require.Equal(porta.SUI, out.Liquidity.Pair)
	require.Equal("50000000", out.Liquidity.SwapIn)
	require.Equal("50000000", out.Liquidity.Remainder)
}

func (s *CommandsTestSuite) TestCommands() {
	require := s.Require()
	require.NoError(s.run(CmdRoutes()))
	require.NoError(s.run(CmdCoins()))
	require.NoError(s.run(CmdValidate(), "usdc", "10"))
	require.ErrorContains(s.run(CmdValidate(), "usdc", "0"), "invalid")
	require.ErrorContains(s.run(CmdValidate(), "doge", "1"), "unsupported coin")
	require.NoError(s.run(CmdBuild(), "navi-to-scallop", "sui", "1"))
	require.Error(s.run(CmdBuild(), "navi-to-magma", "sui", "1", "--coin-type", "0x2::foo::BAR"))

	s.T().Setenv(signer.EnvPrivateKey, seedHex)
	require.NoError(s.run(CmdAddress()))
	require.ErrorContains(s.run(CmdAddress(), "--key", "env:PORTA_UNSET_KEY"), "empty value")
}

func (s *CommandsTestSuite) TestBalance() {
	require := s.Require()
	server, close := testutil.MockJSONRPC(s.T(), testutil.SuiCoinsPage(
		testutil.SuiCoinJSON(testutil.UsdcType, "0x11", testutil.SuiDigest, 1_500_000, 7),
		testutil.SuiCoinJSON(testutil.UsdcType, "0x12", testutil.SuiDigest, 500_000, 8),
	))
	defer close()
	portaFactory, err := newTestFactory(server.URL)
	require.NoError(err)
	s.factory = portaFactory

	require.NoError(s.run(CmdBalance(), "usdc", "--sender", signerAddress))
	require.Equal([]string{"suix_getCoins"}, server.Methods())

	require.ErrorContains(s.run(CmdBalance(), "doge", "--sender", signerAddress), "unsupported coin")
	require.ErrorContains(s.run(CmdBalance(), "usdc"), "--sender or --key is required")
}
