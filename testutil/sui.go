package testutil

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cordialsys/go-sui-sdk/v2/types"
)

const SuiDigest = "HmMNQCsgudhDdXGe9X75WVyPbJnjFApq1EvFhaRzNB1n"

// SuiCoinJSON renders a coin object the way the RPC returns it.
func SuiCoinJSON(coinType string, objectID string, digest string, balance uint64, version uint64) string {
	return fmt.Sprintf(
		`{"coinType":%q,"coinObjectId":%q,"version":"%d","digest":%q,"balance":"%d","previousTransaction":%q}`,
		coinType, objectID, version, digest, balance, digest,
	)
}

func SuiCoin(objectID string, digest string, balance uint64, version uint64) *types.Coin {
	coin := &types.Coin{}
	raw := SuiCoinJSON("0x2::sui::SUI", objectID, digest, balance, version)
	if err := json.Unmarshal([]byte(raw), coin); err != nil {
		panic(err)
	}
	return coin
}

// SuiCoinsPage renders a single page suix_getCoins result.
func SuiCoinsPage(coins ...string) string {
	return fmt.Sprintf(`{"data":[%s],"nextCursor":null,"hasNextPage":false}`, strings.Join(coins, ","))
}
