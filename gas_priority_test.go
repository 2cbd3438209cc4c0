package porta_test

import (
	"testing"

	"github.com/portasui/porta"
	"github.com/stretchr/testify/require"
)

func TestNewPriority(t *testing.T) {
	vectors := []struct {
		input      string
		priority   porta.GasFeePriority
		multiplier string
		err        string
	}{
		{input: "low", priority: porta.Low, multiplier: "0.7"},
		{input: "market", priority: porta.Market, multiplier: "1"},
		{input: " Aggressive ", priority: porta.Aggressive, multiplier: "1.5"},
		{input: "very-aggressive", priority: porta.VeryAggressive, multiplier: "2"},
		{input: "1.2", priority: "1.2", multiplier: "1.2"},
		{input: "10", priority: "10", multiplier: "10"},
		{input: "random", err: "invalid gas priority"},
		{input: "1.2.3", err: "invalid gas priority"},
		{input: "0", err: "must be positive"},
		{input: "-1", err: "must be positive"},
		{input: "11.0", err: "exceeds custom multiplier"},
	}
	for _, v := range vectors {
		t.Run(v.input, func(t *testing.T) {
			priority, err := porta.NewPriority(v.input)
			if v.err != "" {
				require.ErrorContains(t, err, v.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, v.priority, priority)
			m, err := priority.Multiplier()
			require.NoError(t, err)
			require.Equal(t, v.multiplier, m.String())
		})
	}
}

func TestPriorityApply(t *testing.T) {
	price, err := porta.Aggressive.Apply(750)
	require.NoError(t, err)
	require.EqualValues(t, 1125, price)

	// rounds down
	price, err = porta.Low.Apply(751)
	require.NoError(t, err)
	require.EqualValues(t, 525, price)

	require.True(t, porta.Market.IsEnum())
	require.False(t, porta.GasFeePriority("1.5").IsEnum())
	_, err = porta.GasFeePriority("fast").Apply(1)
	require.Error(t, err)
}

func TestCheckFeeLimit(t *testing.T) {
	limit, err := porta.NewAmountHumanReadableFromStr("0.5")
	require.NoError(t, err)

	require.NoError(t, porta.CheckFeeLimit(porta.NewAmountBlockchainFromUint64(500_000_000), limit))
	require.ErrorContains(t, porta.CheckFeeLimit(porta.NewAmountBlockchainFromUint64(500_000_001), limit), "greater than the current limit of 0.5")
	// no limit configured
	require.NoError(t, porta.CheckFeeLimit(porta.NewAmountBlockchainFromUint64(1<<62), porta.AmountHumanReadable{}))
}
