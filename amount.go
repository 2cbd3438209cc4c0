package porta

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// AmountBlockchain is an integer amount in base units of a coin, e.g. MIST for SUI.
type AmountBlockchain big.Int

// AmountHumanReadable is a decimal amount of whole coins, e.g. 1.5 SUI.  Config and CLI input
// use this form.
type AmountHumanReadable decimal.Decimal

func (amount *AmountBlockchain) bigInt() *big.Int {
	return (*big.Int)(amount)
}

// arith applies a big.Int operation without modifying either operand.
func (amount *AmountBlockchain) arith(op func(z, x, y *big.Int) *big.Int, other *AmountBlockchain) AmountBlockchain {
	z := new(big.Int)
	op(z, amount.bigInt(), other.bigInt())
	return AmountBlockchain(*z)
}

func (amount AmountBlockchain) String() string {
	return amount.bigInt().String()
}

func (amount AmountBlockchain) Sign() int {
	return amount.bigInt().Sign()
}

func (amount AmountBlockchain) Uint64() uint64 {
	return amount.bigInt().Uint64()
}

// IsUint64 reports whether the amount fits a Move u64.
func (amount AmountBlockchain) IsUint64() bool {
	return amount.bigInt().IsUint64()
}

func (amount *AmountBlockchain) Cmp(other *AmountBlockchain) int {
	return amount.bigInt().Cmp(other.bigInt())
}

func (amount *AmountBlockchain) Add(x *AmountBlockchain) AmountBlockchain {
	return amount.arith((*big.Int).Add, x)
}

func (amount *AmountBlockchain) Sub(x *AmountBlockchain) AmountBlockchain {
	return amount.arith((*big.Int).Sub, x)
}

// Div truncates toward zero.
func (amount *AmountBlockchain) Div(x *AmountBlockchain) AmountBlockchain {
	return amount.arith((*big.Int).Quo, x)
}

func (amount *AmountBlockchain) IsZero() bool {
	return amount.Sign() == 0
}

// SplitHalf divides the amount at floor(A/2).  The first part is exactly floor(A/2),
// the second part keeps the remainder, so for odd amounts it is one unit larger.
func (amount AmountBlockchain) SplitHalf() (AmountBlockchain, AmountBlockchain) {
	two := NewAmountBlockchainFromUint64(2)
	half := amount.Div(&two)
	rest := amount.Sub(&half)
	return half, rest
}

// ApplySlippage returns floor(amount * (1 - tolerance)).
func (amount AmountBlockchain) ApplySlippage(tolerance decimal.Decimal) AmountBlockchain {
	factor := decimal.NewFromInt(1).Sub(tolerance)
	if factor.IsNegative() {
		return NewAmountBlockchainFromUint64(0)
	}
	scaled := decimal.NewFromBigInt(amount.bigInt(), 0).Mul(factor).Floor()
	return AmountBlockchain(*scaled.BigInt())
}

func (amount *AmountBlockchain) ToHuman(decimals int32) AmountHumanReadable {
	return AmountHumanReadable(decimal.NewFromBigInt(amount.bigInt(), -decimals))
}

func NewAmountBlockchainFromUint64(u64 uint64) AmountBlockchain {
	return AmountBlockchain(*new(big.Int).SetUint64(u64))
}

// NewAmountBlockchainFromInt64 allows negative amounts, which validation rejects.
func NewAmountBlockchainFromInt64(i64 int64) AmountBlockchain {
	return AmountBlockchain(*new(big.Int).SetInt64(i64))
}

// NewAmountBlockchainFromStr accepts any base prefix Go understands and yields zero on bad input.
func NewAmountBlockchainFromStr(str string) AmountBlockchain {
	bigInt, ok := new(big.Int).SetString(str, 0)
	if !ok {
		return NewAmountBlockchainFromUint64(0)
	}
	return AmountBlockchain(*bigInt)
}

// ParseAmountBlockchain reads a base 10 integer.  Underscores may group digits.
func ParseAmountBlockchain(str string) (AmountBlockchain, error) {
	str = strings.ReplaceAll(strings.TrimSpace(str), "_", "")
	bigInt, ok := new(big.Int).SetString(str, 10)
	if !ok {
		return AmountBlockchain{}, fmt.Errorf("not a valid integer amount: %q", str)
	}
	return AmountBlockchain(*bigInt), nil
}

func NewAmountHumanReadableFromStr(str string) (AmountHumanReadable, error) {
	dec, err := decimal.NewFromString(str)
	return AmountHumanReadable(dec), err
}

func NewAmountHumanReadableFromFloat(float float64) AmountHumanReadable {
	return AmountHumanReadable(decimal.NewFromFloat(float))
}

func (amount AmountHumanReadable) Decimal() decimal.Decimal {
	return decimal.Decimal(amount)
}

// ToBlockchain shifts into base units, dropping digits past the coin's precision.
func (amount AmountHumanReadable) ToBlockchain(decimals int32) AmountBlockchain {
	return AmountBlockchain(*amount.Decimal().Shift(decimals).BigInt())
}

// ToBlockchainExact shifts into base units and rejects amounts more precise than the coin.
func (amount AmountHumanReadable) ToBlockchainExact(decimals int32) (AmountBlockchain, error) {
	shifted := amount.Decimal().Shift(decimals)
	if !shifted.IsInteger() {
		return AmountBlockchain{}, fmt.Errorf("amount %s has more than %d decimal places", amount.String(), decimals)
	}
	return AmountBlockchain(*shifted.BigInt()), nil
}

func (amount AmountHumanReadable) String() string {
	return amount.Decimal().String()
}

// Format rounds for display, to 4 places for coins with more than 6 decimals and 2 otherwise.
func (amount AmountHumanReadable) Format(decimals int32) string {
	if decimals > 6 {
		return amount.Decimal().StringFixed(4)
	}
	return amount.Decimal().StringFixed(2)
}

func (amount AmountHumanReadable) IsZero() bool {
	return amount.Decimal().IsZero()
}

var (
	_ json.Marshaler   = AmountHumanReadable{}
	_ json.Unmarshaler = &AmountHumanReadable{}
	_ yaml.Marshaler   = AmountHumanReadable{}
	_ yaml.Unmarshaler = &AmountHumanReadable{}
	_ yaml.IsZeroer    = AmountHumanReadable{}
	_ json.Marshaler   = AmountBlockchain{}
	_ json.Unmarshaler = &AmountBlockchain{}
)

func parseDecimal(value string) (AmountHumanReadable, error) {
	value = strings.Trim(strings.TrimSpace(value), "\"")
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return AmountHumanReadable{}, fmt.Errorf("invalid decimal amount: %v", err)
	}
	return AmountHumanReadable(dec), nil
}

// Decimal amounts are written as strings so prices keep their precision.
func (amount AmountHumanReadable) MarshalYAML() (interface{}, error) {
	return amount.String(), nil
}

func (amount *AmountHumanReadable) UnmarshalYAML(node *yaml.Node) error {
	dec, err := parseDecimal(node.Value)
	if err != nil {
		return err
	}
	*amount = dec
	return nil
}

func (amount AmountHumanReadable) MarshalJSON() ([]byte, error) {
	return json.Marshal(amount.String())
}

func (amount *AmountHumanReadable) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	dec, err := parseDecimal(string(p))
	if err != nil {
		return err
	}
	*amount = dec
	return nil
}

func (amount AmountBlockchain) MarshalJSON() ([]byte, error) {
	return json.Marshal(amount.String())
}

func (amount *AmountBlockchain) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), "\"")
	bigInt, ok := new(big.Int).SetString(str, 0)
	if !ok {
		return fmt.Errorf("not a valid big integer: %s", p)
	}
	*amount = AmountBlockchain(*bigInt)
	return nil
}
