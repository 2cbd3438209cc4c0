package ptb_test

import (
	"testing"

	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/stretchr/testify/require"
)

const usdcType = "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC"

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      string
	}{
		{
			name:     "short address",
			input:    "0x2::sui::SUI",
			expected: "0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI",
		},
		{
			name:     "full address",
			input:    usdcType,
			expected: usdcType,
		},
		{
			name:     "generic",
			input:    "0x2::coin::Coin<0x2::sui::SUI>",
			expected: "0x0000000000000000000000000000000000000000000000000000000000000002::coin::Coin<0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI>",
		},
		{
			name:     "primitives and vectors",
			input:    "vector< vector<u8> >",
			expected: "vector<vector<u8>>",
		},
		{
			name:     "two type params",
			input:    "0x1::pool::Pool<0x2::sui::SUI,u64>",
			expected: "0x0000000000000000000000000000000000000000000000000000000000000001::pool::Pool<0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI, u64>",
		},
		{name: "missing name", input: "0x2::sui", err: "invalid type"},
		{name: "bad address", input: "0xzz::sui::SUI", err: "bad address"},
		{name: "unclosed", input: "vector<u8", err: "expected '>'"},
		{name: "trailing", input: "u64 u8", err: "unexpected"},
		{name: "empty", input: "", err: "expected identifier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := ptb.NormalizeType(tt.input)
			if tt.err != "" {
				require.ErrorContains(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, normalized)
		})
	}
}

func TestNormalizedOrdering(t *testing.T) {
	sui, err := ptb.NormalizeType("0x2::sui::SUI")
	require.NoError(t, err)
	usdc, err := ptb.NormalizeType(usdcType)
	require.NoError(t, err)
	require.Less(t, sui, usdc)
}

func TestParseTypeTagStruct(t *testing.T) {
	tag, err := ptb.ParseTypeTag("0x2::coin::Coin<0x2::sui::SUI>")
	require.NoError(t, err)
	require.Equal(t, ptb.TypeStruct, tag.Kind)
	require.Equal(t, ptb.FrameworkAddress, tag.Struct.Address)
	require.Equal(t, "coin", tag.Struct.Module)
	require.Equal(t, "Coin", tag.Struct.Name)
	require.Len(t, tag.Struct.TypeParams, 1)
	require.Equal(t, "sui", tag.Struct.TypeParams[0].Struct.Module)
}

func TestParseAddress(t *testing.T) {
	addr, err := ptb.ParseAddress("0x6")
	require.NoError(t, err)
	require.Equal(t, ptb.ClockObjectID, addr)
	require.Equal(t, "0x6", addr.ShortString())
	require.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000006", addr.String())

	addr, err = ptb.ParseAddress("0xABC")
	require.NoError(t, err)
	require.Equal(t, "0xabc", addr.ShortString())

	_, err = ptb.ParseAddress("0x")
	require.Error(t, err)
	_, err = ptb.ParseAddress("0x" + usdcType[2:66] + "00")
	require.Error(t, err)
	_, err = ptb.ParseAddress("0xgg")
	require.Error(t, err)
}

func TestParseObjectDigest(t *testing.T) {
	digest, err := ptb.ParseObjectDigest("HmMNQCsgudhDdXGe9X75WVyPbJnjFApq1EvFhaRzNB1n")
	require.NoError(t, err)
	require.Len(t, digest, 32)
	require.Equal(t, "HmMNQCsgudhDdXGe9X75WVyPbJnjFApq1EvFhaRzNB1n", digest.String())

	_, err = ptb.ParseObjectDigest("abc")
	require.Error(t, err)
}
