package testutil

import (
	porta "github.com/portasui/porta"
)

// MockTx is a pre-signed transaction for SubmitTx tests.
type MockTx struct {
	Digest             porta.TxHash
	SerializedSignedTx []byte
	Signatures         []porta.TxSignature
}

var _ porta.TxWithSignatures = &MockTx{}

func (tx *MockTx) Hash() porta.TxHash {
	return tx.Digest
}

func (tx *MockTx) Sighashes() ([]porta.TxDataToSign, error) {
	return nil, nil
}

func (tx *MockTx) AddSignatures(sigs ...porta.TxSignature) error {
	tx.Signatures = append(tx.Signatures, sigs...)
	return nil
}

func (tx *MockTx) GetSignatures() []porta.TxSignature {
	return tx.Signatures
}

func (tx *MockTx) Serialize() ([]byte, error) {
	return tx.SerializedSignedTx, nil
}
