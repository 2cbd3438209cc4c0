package ptb

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
)

// Operand is an argument of a call descriptor: a pure value, an object, or the output of an
// earlier command in the same transaction.
type Operand interface {
	fmt.Stringer
	operand()
}

// PureOperand holds a BCS encoded value.
type PureOperand struct {
	Value []byte
}

type ObjectOperand struct {
	Object ObjectArg
}

type OutputOperand struct {
	Argument Argument
}

func (PureOperand) operand()   {}
func (ObjectOperand) operand() {}
func (OutputOperand) operand() {}

func (op PureOperand) String() string   { return fmt.Sprintf("Pure(%x)", op.Value) }
func (op ObjectOperand) String() string { return fmt.Sprintf("Object(%s)", op.Object.ID()) }
func (op OutputOperand) String() string { return op.Argument.String() }

func PureU64(value uint64) PureOperand {
	bz := make([]byte, 8)
	binary.LittleEndian.PutUint64(bz, value)
	return PureOperand{Value: bz}
}

func PureBool(value bool) PureOperand {
	if value {
		return PureOperand{Value: []byte{1}}
	}
	return PureOperand{Value: []byte{0}}
}

// PureU128 encodes a u128 little endian.  Values wider than 128 bits are rejected.
func PureU128(value *big.Int) (PureOperand, error) {
	if value.Sign() < 0 || value.BitLen() > 128 {
		return PureOperand{}, fmt.Errorf("%s does not fit in a u128", value.String())
	}
	bz := value.FillBytes(make([]byte, 16))
	for i, j := 0, len(bz)-1; i < j; i, j = i+1, j-1 {
		bz[i], bz[j] = bz[j], bz[i]
	}
	return PureOperand{Value: bz}, nil
}

func PureAddress(addr Address) PureOperand {
	return PureOperand{Value: append([]byte{}, addr[:]...)}
}

func Shared(id ObjectID, initialSharedVersion uint64, mutable bool) ObjectOperand {
	return ObjectOperand{Object: SharedObjectArg(SharedObject{
		ObjectID:             id,
		InitialSharedVersion: initialSharedVersion,
		Mutable:              mutable,
	})}
}

func Clock() ObjectOperand {
	return ObjectOperand{Object: SharedObjectArg(ClockObject())}
}

func Output(arg Argument) OutputOperand {
	return OutputOperand{Argument: arg}
}

// CallDescriptor describes one Move call: target "package::module::function", its operands and
// its type arguments.
type CallDescriptor struct {
	Target        string
	Arguments     []Operand
	TypeArguments []string
}

func (desc CallDescriptor) String() string {
	args := make([]string, len(desc.Arguments))
	for i, arg := range desc.Arguments {
		args[i] = arg.String()
	}
	typeArgs := ""
	if len(desc.TypeArguments) > 0 {
		typeArgs = "<" + strings.Join(desc.TypeArguments, ", ") + ">"
	}
	return fmt.Sprintf("%s%s(%s)", desc.Target, typeArgs, strings.Join(args, ", "))
}

// ParseTarget splits the target into its package, module and function.
func (desc CallDescriptor) ParseTarget() (ObjectID, string, string, error) {
	parts := strings.Split(desc.Target, "::")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return ObjectID{}, "", "", fmt.Errorf("invalid move call target %q", desc.Target)
	}
	pkg, err := ParseAddress(parts[0])
	if err != nil {
		return ObjectID{}, "", "", fmt.Errorf("invalid move call target %q: %v", desc.Target, err)
	}
	return pkg, parts[1], parts[2], nil
}

// Outputs lists the outputs of earlier commands the descriptor consumes.
func (desc CallDescriptor) Outputs() []Argument {
	outputs := []Argument{}
	for _, arg := range desc.Arguments {
		if output, ok := arg.(OutputOperand); ok {
			outputs = append(outputs, output.Argument)
		}
	}
	return outputs
}
