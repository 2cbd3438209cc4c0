package sui_test

import (
	"encoding/hex"
	"testing"

	"github.com/portasui/porta/chain/sui"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestGetAddressFromPublicKey(t *testing.T) {
	pubkey, _ := hex.DecodeString(testPubKey)
	address, err := sui.NewAddressBuilder().GetAddressFromPublicKey(pubkey)
	require.NoError(t, err)

	expected := blake2b.Sum256(append([]byte{0}, pubkey...))
	require.Equal(t, "0x"+hex.EncodeToString(expected[:]), string(address))
	require.Len(t, string(address), 66)

	_, err = sui.NewAddressBuilder().GetAddressFromPublicKey(pubkey[:31])
	require.ErrorContains(t, err, "invalid ed25519 public key length")
}
