package sui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cordialsys/go-sui-sdk/v2/types"
	"github.com/portasui/porta/chain/sui/ptb"
)

// CoinToObjectRef pins a coin object at the version returned by the RPC.
func CoinToObjectRef(coin *types.Coin) (ptb.ObjectRef, error) {
	id, err := ptb.ParseAddress(coin.CoinObjectId.String())
	if err != nil {
		return ptb.ObjectRef{}, fmt.Errorf("could not decode coin id: %v", err)
	}
	digest, err := ptb.ParseObjectDigest(coin.Digest.String())
	if err != nil {
		return ptb.ObjectRef{}, fmt.Errorf("could not decode coin digest: %v", err)
	}
	return ptb.ObjectRef{
		ObjectID: id,
		Version:  coin.Version.Uint64(),
		Digest:   digest,
	}, nil
}

// Strip the coin::Coin<_> wrapper if present
func NormalizeCoinContract(contract string) string {
	if strings.HasPrefix(contract, "coin::Coin<") {
		contract = strings.Replace(contract, "coin::Coin<", "", 1)
		contract = strings.Replace(contract, ">", "", 1)
	}
	return contract
}

// IsNativeCoinType matches both the short and long form of 0x2::sui::SUI
func IsNativeCoinType(coinType string) bool {
	normalized, err := ptb.NormalizeType(NormalizeCoinContract(coinType))
	if err != nil {
		return false
	}
	return normalized == nativeCoinTypeNormalized
}

var nativeCoinTypeNormalized, _ = ptb.NormalizeType("0x2::sui::SUI")

// Sort coins in place from highest to lowest balance
func SortCoins(coins []*types.Coin) {
	sort.SliceStable(coins, func(i, j int) bool {
		return coins[i].Balance.Uint64() > coins[j].Balance.Uint64()
	})
}
