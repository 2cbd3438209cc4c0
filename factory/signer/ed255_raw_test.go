package signer_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"filippo.io/edwards25519"
	"github.com/portasui/porta/factory/signer"
	"github.com/stretchr/testify/require"
)

func scalarFromSeed(seed []byte) *edwards25519.Scalar {
	h := sha512.Sum512(seed[:32])
	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		panic(err)
	}
	return s
}

func TestSignWithScalar(t *testing.T) {
	require := require.New(t)
	for i := 0; i < 16; i++ {
		seedBz := make([]byte, 32)
		_, err := rand.Read(seedBz)
		require.NoError(err)

		message := []byte("migrate to scallop")
		priv := ed25519.NewKeyFromSeed(seedBz)
		s := scalarFromSeed(seedBz)

		sig := signer.SignWithScalar(s.Bytes(), message)
		require.True(ed25519.Verify(priv.Public().(ed25519.PublicKey), message, sig), "valid signature")
	}
}

func TestScalarSigner(t *testing.T) {
	require := require.New(t)
	t.Setenv(signer.EnvEd25519ScalarSigning, "1")

	seedBz, _ := hex.DecodeString("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	priv := ed25519.NewKeyFromSeed(seedBz)
	s := scalarFromSeed(seedBz)

	scalarSigner, err := signer.New(hex.EncodeToString(s.Bytes()))
	require.NoError(err)
	pub, err := scalarSigner.PublicKey()
	require.NoError(err)
	require.EqualValues(priv.Public().(ed25519.PublicKey), pub)

	sig, err := scalarSigner.Sign([]byte("payload"))
	require.NoError(err)
	require.True(ed25519.Verify(ed25519.PublicKey(pub), []byte("payload"), sig))

	_, err = signer.New("abcd")
	require.ErrorContains(err, "scalar must be 32 bytes")
}
