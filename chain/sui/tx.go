package sui

import (
	"errors"

	"github.com/btcsuite/btcutil/base58"
	porta "github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui/ptb"
	"golang.org/x/crypto/blake2b"
)

type Tx struct {
	signatures [][]byte
	publicKey  []byte
	Data       ptb.TransactionData
}

var _ porta.Tx = &Tx{}
var _ porta.TxWithSignatures = &Tx{}

func NewTx(data ptb.TransactionData, publicKey []byte) *Tx {
	return &Tx{Data: data, publicKey: publicKey}
}

// Hash returns the tx digest
func (tx Tx) Hash() porta.TxHash {
	typeTag := "TransactionData::"
	bz, err := tx.Serialize()
	if err != nil {
		return ""
	}
	tohash := append([]byte(typeTag), bz...)
	hash := blake2b.Sum256(tohash)
	return porta.TxHash(base58.Encode(hash[:]))
}

func (tx Tx) Sighashes() ([]porta.TxDataToSign, error) {
	bytes, err := tx.Serialize()
	if err != nil {
		return nil, err
	}
	// 0 = transaction data, 0 = V0 intent version, 0 = sui
	intent := []byte{0, 0, 0}
	msg := append(intent, bytes...)
	hash := blake2b.Sum256(msg)
	return []porta.TxDataToSign{hash[:]}, nil
}

func (tx *Tx) AddSignatures(signatures ...porta.TxSignature) error {
	if len(tx.publicKey) == 0 {
		return errors.New("public key is required to add sui signatures")
	}
	for _, sig := range signatures {
		// sui expects signature to be {0, signature, public_key}
		suiSig := []byte{ed25519Flag}
		suiSig = append(suiSig, sig...)
		suiSig = append(suiSig, tx.publicKey...)
		tx.signatures = append(tx.signatures, suiSig)
	}
	return nil
}

func (tx Tx) GetSignatures() []porta.TxSignature {
	return porta.NewTxSignatures(tx.signatures)
}

func (tx Tx) Serialize() ([]byte, error) {
	return tx.Data.Serialize()
}
