package porta

import "encoding/base64"

// TxHash is the base58 digest of a transaction
type TxHash string

// TxDataToSign is the intent message digest a signer signs
type TxDataToSign []byte

func (data TxDataToSign) String() string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// TxSignature is a serialized Sui signature: scheme flag, signature and public key
type TxSignature []byte

func NewTxSignatures(data [][]byte) []TxSignature {
	sigs := make([]TxSignature, 0, len(data))
	for _, sig := range data {
		sigs = append(sigs, sig)
	}
	return sigs
}

// Tx is a migration wrapped with gas data, ready to be signed
type Tx interface {
	Hash() TxHash
	Sighashes() ([]TxDataToSign, error)
	AddSignatures(...TxSignature) error
	// BCS encoded TransactionData
	Serialize() ([]byte, error)
}

// TxWithSignatures is submitted as the transaction bytes plus the signatures
type TxWithSignatures interface {
	Tx
	GetSignatures() []TxSignature
}

// TxInput is the on chain state a transaction is built against
type TxInput interface {
	SetGasFeePriority(priority GasFeePriority) error
	GetFeeLimit() AmountBlockchain
}
