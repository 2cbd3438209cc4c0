package sui_test

import (
	"encoding/hex"

	"github.com/cordialsys/go-sui-sdk/v2/types"
	porta "github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/testutil"
)

const (
	testFrom    = "0xbb8a8269cf96ba2ec27dc9becd79836394dbe7946c7ac211928be4a0b1de66b9"
	testGasCoin = "0x8192d5c2b5722c60866761927d5a0737cd55d0c2b1150eabf818253795b38998"
	testCoin2   = "0xc587db1fbe680b769c1a562a09f2c871a087bafa542c7cb73db6064e2b791bdf"
	testPubKey  = "6a03aadd27a3753c3af2d676591528f3d8209f337b9506163479bc5e61f67ebd"
)

func testMigration() *ptb.Transaction {
	tx := ptb.NewTransaction()
	coins, err := tx.SplitCoins(ptb.GasCoin(), 1_000)
	if err != nil {
		panic(err)
	}
	if err := tx.TransferObjects(coins, ptb.MustParseAddress(testFrom)); err != nil {
		panic(err)
	}
	return tx
}

func testInput(balances ...uint64) *sui.TxInput {
	coins := []*types.Coin{}
	ids := []string{testGasCoin, testCoin2}
	for i, balance := range balances {
		coins = append(coins, testutil.SuiCoin(ids[i], testutil.SuiDigest, balance, 1852477))
	}
	return &sui.TxInput{
		GasBudget:    100_000_000,
		GasPrice:     750,
		GasCoins:     coins,
		CurrentEpoch: 20,
	}
}

func (s *SuiTestSuite) TestNewMigrationTx() {
	require := s.Require()
	pubkey, _ := hex.DecodeString(testPubKey)
	txBuilder, err := sui.NewTxBuilder(&porta.NetworkConfig{Network: porta.Mainnet})
	require.NoError(err)

	input := testInput(10_000_000_000)
	tx, err := txBuilder.NewMigrationTx(testMigration(), testFrom, pubkey, input)
	require.NoError(err)

	require.EqualValues(750, tx.Data.GasData.Price)
	require.EqualValues(100_000_000, tx.Data.GasData.Budget)
	require.Len(tx.Data.GasData.Payment, 1)
	require.Equal(ptb.MustParseAddress(testGasCoin), tx.Data.GasData.Payment[0].ObjectID)
	require.Equal(tx.Data.Sender, tx.Data.GasData.Owner)
	require.EqualValues(20, tx.Data.ExpirationEpoch)

	hash := tx.Hash()
	require.NotEmpty(hash)
	require.Equal(hash, tx.Hash())

	sighashes, err := tx.Sighashes()
	require.NoError(err)
	require.Len(sighashes, 1)
	require.Len(sighashes[0], 32)

	sig := make([]byte, 64)
	require.NoError(tx.AddSignatures(sig))
	sigs := tx.GetSignatures()
	require.Len(sigs, 1)
	require.Len(sigs[0], 1+64+32)
	require.EqualValues(0, sigs[0][0])
	require.Equal(pubkey, []byte(sigs[0][65:]))
}

func (s *SuiTestSuite) TestNewMigrationTxLowersBudget() {
	require := s.Require()
	pubkey, _ := hex.DecodeString(testPubKey)
	txBuilder, _ := sui.NewTxBuilder(nil)

	// two small coins are combined, and together they still do not cover the budget
	input := testInput(30_000_000, 40_000_000)
	tx, err := txBuilder.NewMigrationTx(testMigration(), testFrom, pubkey, input)
	require.NoError(err)
	require.EqualValues(70_000_000, tx.Data.GasData.Budget)
	require.Len(tx.Data.GasData.Payment, 2)
	// largest coin first
	require.Equal(ptb.MustParseAddress(testCoin2), tx.Data.GasData.Payment[0].ObjectID)
}

func (s *SuiTestSuite) TestNewMigrationTxErrors() {
	require := s.Require()
	pubkey, _ := hex.DecodeString(testPubKey)
	limit, _ := porta.NewAmountHumanReadableFromStr("0.05")
	txBuilder, _ := sui.NewTxBuilder(&porta.NetworkConfig{FeeLimit: limit})

	_, err := txBuilder.NewMigrationTx(testMigration(), testFrom, pubkey, testInput(10_000_000_000))
	require.ErrorContains(err, "greater than the current limit")

	_, err = txBuilder.NewMigrationTx(ptb.NewTransaction(), testFrom, pubkey, testInput(10_000_000_000))
	require.ErrorContains(err, "no commands")

	_, err = txBuilder.NewMigrationTx(testMigration(), testFrom, pubkey, testInput())
	require.ErrorContains(err, "no SUI to pay for gas")

	_, err = txBuilder.NewMigrationTx(testMigration(), testFrom, nil, testInput(10_000_000_000))
	require.ErrorContains(err, "public key")

	_, err = txBuilder.NewMigrationTx(testMigration(), "0xzz", pubkey, testInput(10_000_000_000))
	require.ErrorContains(err, "could not decode from address")
}

func (s *SuiTestSuite) TestSetGasFeePriority() {
	require := s.Require()
	input := testInput(10_000_000_000)
	require.NoError(input.SetGasFeePriority(porta.Aggressive))
	require.EqualValues(1125, input.GasPrice)
	require.EqualValues(150_000_000, input.GasBudget)
	require.EqualValues(150_000_000, input.GetFeeLimit().Uint64())

	require.Error(input.SetGasFeePriority("abc"))
}

func (s *SuiTestSuite) TestTotalBalance() {
	require := s.Require()
	input := testInput(30_000_000, 40_000_000)
	require.EqualValues(70_000_000, input.TotalBalance().Uint64())
}

func (s *SuiTestSuite) TestIsNativeCoinType() {
	require := s.Require()
	require.True(sui.IsNativeCoinType("0x2::sui::SUI"))
	require.True(sui.IsNativeCoinType("0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI"))
	require.True(sui.IsNativeCoinType("coin::Coin<0x2::sui::SUI>"))
	require.False(sui.IsNativeCoinType("0x3::sui::SUI"))
	require.False(sui.IsNativeCoinType("garbage"))
}
