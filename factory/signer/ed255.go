package signer

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"
)

// SignWithScalar signs with a bare ed25519 scalar instead of a seed.  Keys held by MPC signers
// only exist as a scalar, the seed that would normally be hashed into it is never known.
func SignWithScalar(scalarBz []byte, message []byte) []byte {
	sig, err := signWithScalar(scalarBz, message)
	if err != nil {
		panic(err)
	}
	return sig
}

func signWithScalar(scalarBz []byte, message []byte) ([]byte, error) {
	if len(scalarBz) != 32 {
		return nil, fmt.Errorf("expected the scalar to be 32 bytes but got %d bytes", len(scalarBz))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(scalarBz)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, 64)
	if _, err = rand.Read(nonce); err != nil {
		return nil, err
	}
	r, err := edwards25519.NewScalar().SetUniformBytes(nonce)
	if err != nil {
		return nil, err
	}
	publicPoint := (&edwards25519.Point{}).ScalarBaseMult(s)
	noncePoint := (&edwards25519.Point{}).ScalarBaseMult(r)

	// k = SHA-512(R || A || M)
	hasher := sha512.New()
	hasher.Write(noncePoint.Bytes())
	hasher.Write(publicPoint.Bytes())
	hasher.Write(message)
	k, err := edwards25519.NewScalar().SetUniformBytes(hasher.Sum(nil))
	if err != nil {
		return nil, err
	}
	// S = k * s + r
	S := edwards25519.NewScalar().MultiplyAdd(k, s, r)
	return append(noncePoint.Bytes(), S.Bytes()...), nil
}
