package ptb

import "fmt"

type ArgumentKind uint8

const (
	ArgumentGasCoin ArgumentKind = iota
	ArgumentInput
	ArgumentResult
	ArgumentNestedResult
)

// Argument is a handle to a value inside a transaction: the gas coin, an input, or the output
// of an earlier command.  Arguments are plain values and compare with ==.
type Argument struct {
	Kind     ArgumentKind
	Index    uint16
	SubIndex uint16
}

func GasCoin() Argument {
	return Argument{Kind: ArgumentGasCoin}
}

func Input(index uint16) Argument {
	return Argument{Kind: ArgumentInput, Index: index}
}

func Result(index uint16) Argument {
	return Argument{Kind: ArgumentResult, Index: index}
}

func NestedResult(index uint16, subIndex uint16) Argument {
	return Argument{Kind: ArgumentNestedResult, Index: index, SubIndex: subIndex}
}

// Command returns the index of the command that produced the argument, if any.
func (arg Argument) Command() (uint16, bool) {
	switch arg.Kind {
	case ArgumentResult, ArgumentNestedResult:
		return arg.Index, true
	}
	return 0, false
}

func (arg Argument) String() string {
	switch arg.Kind {
	case ArgumentGasCoin:
		return "GasCoin"
	case ArgumentInput:
		return fmt.Sprintf("Input(%d)", arg.Index)
	case ArgumentResult:
		return fmt.Sprintf("Result(%d)", arg.Index)
	case ArgumentNestedResult:
		return fmt.Sprintf("NestedResult(%d,%d)", arg.Index, arg.SubIndex)
	}
	return fmt.Sprintf("Argument(%d)", arg.Kind)
}
