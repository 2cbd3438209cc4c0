package porta_test

import (
	"encoding/json"

	. "github.com/portasui/porta"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func (s *PortaTestSuite) TestNewAmountBlockchainFromUint64() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(123)
	require.NotNil(amount)
	require.Equal(amount.Uint64(), uint64(123))
	require.Equal(amount.String(), "123")
}

func (s *PortaTestSuite) TestAmountHumanReadable() {
	require := s.Require()
	amountDec, _ := decimal.NewFromString("10.3")
	amount := AmountHumanReadable(amountDec)
	require.NotNil(amount)
	require.Equal(amount.String(), "10.3")
}

func (s *PortaTestSuite) TestNewAmountHumanReadableFromStr() {
	require := s.Require()
	amount, err := NewAmountHumanReadableFromStr("10.3")
	require.NoError(err)
	require.Equal(amount.String(), "10.3")

	amount, err = NewAmountHumanReadableFromStr("0")
	require.NoError(err)
	require.Equal(amount.String(), "0")

	amount, err = NewAmountHumanReadableFromStr("")
	require.Error(err)
	require.Equal(amount.String(), "0")

	amount, err = NewAmountHumanReadableFromStr("invalid")
	require.Error(err)
	require.Equal(amount.String(), "0")
}

func (s *PortaTestSuite) TestNewBlockchainAmountStr() {
	require := s.Require()
	amount := NewAmountBlockchainFromStr("10")
	require.EqualValues(amount.Uint64(), 10)

	amount = NewAmountBlockchainFromStr("10.1")
	require.EqualValues(amount.Uint64(), 0)

	amount = NewAmountBlockchainFromStr("0x10")
	require.EqualValues(amount.Uint64(), 16)
}

func (s *PortaTestSuite) TestParseAmountBlockchain() {
	require := s.Require()
	amount, err := ParseAmountBlockchain("100_000_000_000")
	require.NoError(err)
	require.EqualValues(100_000_000_000, amount.Uint64())

	_, err = ParseAmountBlockchain("1.5")
	require.Error(err)
	_, err = ParseAmountBlockchain("")
	require.Error(err)

	amount, err = ParseAmountBlockchain("-5")
	require.NoError(err)
	require.Equal(-1, amount.Sign())
}

func (s *PortaTestSuite) TestAmountBlockchainMath() {
	require := s.Require()
	a := NewAmountBlockchainFromUint64(10)
	b := NewAmountBlockchainFromUint64(4)

	sum := a.Add(&b)
	require.EqualValues(14, sum.Uint64())
	diff := a.Sub(&b)
	require.EqualValues(6, diff.Uint64())
	quot := a.Div(&b)
	require.EqualValues(2, quot.Uint64())
	neg := NewAmountBlockchainFromInt64(-10)
	quot = neg.Div(&b)
	require.Equal("-2", quot.String())
	require.Equal(1, a.Cmp(&b))

	// operands are untouched
	require.EqualValues(10, a.Uint64())
	require.EqualValues(4, b.Uint64())

	zero := NewAmountBlockchainFromUint64(0)
	require.True(zero.IsZero())
	require.False(a.IsZero())
}

func (s *PortaTestSuite) TestSplitHalf() {
	require := s.Require()
	for _, v := range []struct {
		amount uint64
		half   uint64
		rest   uint64
	}{
		{100_000_000, 50_000_000, 50_000_000},
		{100_000_001, 50_000_000, 50_000_001},
		{1, 0, 1},
		{2, 1, 1},
		{0, 0, 0},
	} {
		half, rest := NewAmountBlockchainFromUint64(v.amount).SplitHalf()
		require.EqualValues(v.half, half.Uint64())
		require.EqualValues(v.rest, rest.Uint64())
		total := half.Add(&rest)
		require.EqualValues(v.amount, total.Uint64())
	}
}

func (s *PortaTestSuite) TestApplySlippage() {
	require := s.Require()
	onePercent := decimal.RequireFromString("0.01")

	amount := NewAmountBlockchainFromUint64(50_000_000)
	require.EqualValues(49_500_000, amount.ApplySlippage(onePercent).Uint64())

	// floored
	amount = NewAmountBlockchainFromUint64(99)
	require.EqualValues(98, amount.ApplySlippage(onePercent).Uint64())

	amount = NewAmountBlockchainFromUint64(1000)
	require.EqualValues(1000, amount.ApplySlippage(decimal.Zero).Uint64())
	require.EqualValues(0, amount.ApplySlippage(decimal.NewFromInt(2)).Uint64())
}

func (s *PortaTestSuite) TestToHumanAndBack() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(1_500_000_000)
	human := amount.ToHuman(SuiDecimals)
	require.Equal("1.5", human.String())
	require.Equal("1.5000", human.Format(SuiDecimals))
	require.Equal("1.50", human.Format(6))
	// digits past the precision are dropped
	precise, err := NewAmountHumanReadableFromStr("1.2345678")
	require.NoError(err)
	require.EqualValues(1_234_567, precise.ToBlockchain(6).Uint64())
	require.EqualValues(1_500_000_000, human.ToBlockchain(SuiDecimals).Uint64())

	_, err = precise.ToBlockchainExact(6)
	require.ErrorContains(err, "more than 6 decimal places")
	exact, err := precise.ToBlockchainExact(7)
	require.NoError(err)
	require.EqualValues(12_345_678, exact.Uint64())
	trailing, err := NewAmountHumanReadableFromStr("1.500000000000")
	require.NoError(err)
	exact, err = trailing.ToBlockchainExact(SuiDecimals)
	require.NoError(err)
	require.EqualValues(1_500_000_000, exact.Uint64())
}

func (s *PortaTestSuite) TestAmountJSON() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(42)
	bz, err := json.Marshal(amount)
	require.NoError(err)
	require.Equal(`"42"`, string(bz))

	var decoded AmountBlockchain
	require.NoError(json.Unmarshal([]byte(`"42"`), &decoded))
	require.EqualValues(42, decoded.Uint64())
	require.Error(json.Unmarshal([]byte(`"abc"`), &decoded))

	human, _ := NewAmountHumanReadableFromStr("3.5")
	bz, err = json.Marshal(human)
	require.NoError(err)
	require.Equal(`"3.5"`, string(bz))
}

func (s *PortaTestSuite) TestAmountYAML() {
	require := s.Require()
	var cfg struct {
		Price AmountHumanReadable `yaml:"price"`
	}
	require.NoError(yaml.Unmarshal([]byte(`price: "3.50"`), &cfg))
	require.Equal("3.5", cfg.Price.String())

	require.NoError(yaml.Unmarshal([]byte(`price: 1.25`), &cfg))
	require.Equal("1.25", cfg.Price.String())

	require.Error(yaml.Unmarshal([]byte(`price: abc`), &cfg))
}
