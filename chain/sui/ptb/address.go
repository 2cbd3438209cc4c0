package ptb

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

const AddressLength = 32

// Address is a 32 byte Sui address.  Object ids share the representation.
type Address [AddressLength]byte

type ObjectID = Address

// ParseAddress accepts 0x-prefixed hex of up to 64 digits; short forms like "0x2" are left padded.
func ParseAddress(str string) (Address, error) {
	var addr Address
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(str), "0x"), "0X")
	if len(trimmed) == 0 || len(trimmed) > AddressLength*2 {
		return addr, fmt.Errorf("invalid sui address %q", str)
	}
	if len(trimmed)%2 == 1 {
		trimmed = "0" + trimmed
	}
	bz, err := hex.DecodeString(trimmed)
	if err != nil {
		return addr, fmt.Errorf("invalid sui address %q: %v", str, err)
	}
	copy(addr[AddressLength-len(bz):], bz)
	return addr, nil
}

func MustParseAddress(str string) Address {
	addr, err := ParseAddress(str)
	if err != nil {
		panic(err)
	}
	return addr
}

// String is the canonical long form, 0x followed by 64 hex digits.
func (addr Address) String() string {
	return "0x" + hex.EncodeToString(addr[:])
}

// ShortString drops leading zeros, e.g. "0x2" for the framework package.
func (addr Address) ShortString() string {
	short := strings.TrimLeft(hex.EncodeToString(addr[:]), "0")
	if short == "" {
		short = "0"
	}
	return "0x" + short
}

// ObjectDigest is the digest of an object version, base58 encoded over RPC.
type ObjectDigest []byte

func ParseObjectDigest(b58 string) (ObjectDigest, error) {
	bz := base58.Decode(b58)
	if len(bz) != 32 {
		return nil, fmt.Errorf("invalid object digest %q: expected 32 bytes, got %d", b58, len(bz))
	}
	return ObjectDigest(bz), nil
}

func (digest ObjectDigest) String() string {
	return base58.Encode(digest)
}

// ObjectRef pins an owned or immutable object at a specific version.
type ObjectRef struct {
	ObjectID ObjectID
	Version  uint64
	Digest   ObjectDigest
}

// SharedObject references a shared object by the version it became shared at.
type SharedObject struct {
	ObjectID             ObjectID
	InitialSharedVersion uint64
	Mutable              bool
}

var (
	// Sui framework
	FrameworkAddress = MustParseAddress("0x2")
	// The on-chain clock, shared since genesis
	ClockObjectID = MustParseAddress("0x6")
)

const ClockInitialSharedVersion uint64 = 1

func ClockObject() SharedObject {
	return SharedObject{
		ObjectID:             ClockObjectID,
		InitialSharedVersion: ClockInitialSharedVersion,
		Mutable:              false,
	}
}
