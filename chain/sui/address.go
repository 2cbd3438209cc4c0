package sui

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	porta "github.com/portasui/porta"
	"golang.org/x/crypto/blake2b"
)

// signature scheme flag prefixed to the public key before hashing
const ed25519Flag = 0x00

type AddressBuilder struct{}

var _ porta.AddressBuilder = AddressBuilder{}

func NewAddressBuilder() AddressBuilder {
	return AddressBuilder{}
}

// GetAddressFromPublicKey returns blake2b-256(flag || pubkey) for an ed25519 key
func (ab AddressBuilder) GetAddressFromPublicKey(publicKeyBytes []byte) (porta.Address, error) {
	if len(publicKeyBytes) != ed25519.PublicKeySize {
		return "", fmt.Errorf("invalid ed25519 public key length %d", len(publicKeyBytes))
	}
	hash := blake2b.Sum256(append([]byte{ed25519Flag}, publicKeyBytes...))
	return porta.Address("0x" + hex.EncodeToString(hash[:])), nil
}
