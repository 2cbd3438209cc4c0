package porta

// Address is a Sui account address, 0x-prefixed hex
type Address string

// AddressBuilder is the interface for deriving addresses
type AddressBuilder interface {
	GetAddressFromPublicKey(publicKeyBytes []byte) (Address, error)
}
