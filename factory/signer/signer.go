package signer

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/bech32"
	"github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui"
	"github.com/sirupsen/logrus"
)

// Signer holds an ed25519 key for signing migrations.  Reference implementation, keys are
// kept in memory.
type Signer struct {
	privateKey []byte
	// privateKey is a raw 32 byte scalar rather than a seed
	scalar bool
}

type PublicKey []byte

const EnvPrivateKey = "PORTA_PRIVATE_KEY"
const EnvEd25519ScalarSigning = "PORTA_SIGN_WITH_SCALAR"

// hrp of keys exported by the sui cli and wallets
const suiPrivateKeyPrefix = "suiprivkey"

func ReadPrivateKeyEnv() string {
	return os.Getenv(EnvPrivateKey)
}

func scalarSigning() bool {
	val := os.Getenv(EnvEd25519ScalarSigning)
	return val == "1" || val == "true"
}

// decodeSuiPrivateKey decodes "suiprivkey1..." which is bech32(flag || seed).
func decodeSuiPrivateKey(secret string) ([]byte, error) {
	hrp, data, err := bech32.Decode(secret)
	if err != nil {
		return nil, err
	}
	if hrp != suiPrivateKeyPrefix {
		return nil, fmt.Errorf("unexpected key prefix %q", hrp)
	}
	bz, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, err
	}
	if len(bz) != ed25519.SeedSize+1 {
		return nil, fmt.Errorf("expected %d bytes in sui private key, got %d", ed25519.SeedSize+1, len(bz))
	}
	if bz[0] != 0 {
		return nil, fmt.Errorf("unsupported signature scheme flag %d, only ed25519 is supported", bz[0])
	}
	return bz[1:], nil
}

func fromString(secret string) ([]byte, error) {
	secret = strings.TrimSpace(secret)
	if strings.HasPrefix(secret, suiPrivateKeyPrefix) {
		return decodeSuiPrivateKey(secret)
	}
	if bz, err := hex.DecodeString(strings.TrimPrefix(secret, "0x")); err == nil {
		return bz, nil
	}
	bz := base58.Decode(secret)
	if len(bz) == 0 {
		return nil, errors.New("expected private key to be a suiprivkey, hex or base58 string")
	}
	return bz, nil
}

func New(secret string) (*Signer, error) {
	secretBz, err := fromString(secret)
	if err != nil {
		return nil, err
	}
	if scalarSigning() {
		if len(secretBz) != 32 {
			return nil, fmt.Errorf("scalar must be 32 bytes, got %d bytes", len(secretBz))
		}
		return &Signer{privateKey: secretBz, scalar: true}, nil
	}
	switch len(secretBz) {
	case ed25519.SeedSize:
		return &Signer{privateKey: ed25519.NewKeyFromSeed(secretBz)}, nil
	case ed25519.PrivateKeySize:
		return &Signer{privateKey: secretBz}, nil
	}
	return nil, errors.New("expected ed25519 key to be 64 or 32 bytes")
}

func (s *Signer) Sign(data porta.TxDataToSign) (porta.TxSignature, error) {
	if s.scalar {
		logrus.Debug("using raw scalar signing for ed25519 key")
		return porta.TxSignature(SignWithScalar(s.privateKey, data)), nil
	}
	return porta.TxSignature(ed25519.Sign(ed25519.PrivateKey(s.privateKey), data)), nil
}

func (s *Signer) SignAll(data []porta.TxDataToSign) ([]porta.TxSignature, error) {
	signatures := make([]porta.TxSignature, len(data))
	for i, d := range data {
		sig, err := s.Sign(d)
		if err != nil {
			return nil, err
		}
		signatures[i] = sig
	}
	return signatures, nil
}

func (s *Signer) PublicKey() (PublicKey, error) {
	if s.scalar {
		scalar, err := edwards25519.NewScalar().SetCanonicalBytes(s.privateKey)
		if err != nil {
			return nil, err
		}
		return PublicKey((&edwards25519.Point{}).ScalarBaseMult(scalar).Bytes()), nil
	}
	return PublicKey(ed25519.PrivateKey(s.privateKey).Public().(ed25519.PublicKey)), nil
}

func (s *Signer) MustPublicKey() PublicKey {
	pub, err := s.PublicKey()
	if err != nil {
		panic(err)
	}
	return pub
}

// Address is the sui address of the key.
func (s *Signer) Address() (porta.Address, error) {
	pub, err := s.PublicKey()
	if err != nil {
		return "", err
	}
	return sui.NewAddressBuilder().GetAddressFromPublicKey(pub)
}
