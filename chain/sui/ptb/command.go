package ptb

import "fmt"

type MoveCall struct {
	Package       ObjectID
	Module        string
	Function      string
	TypeArguments []TypeTag
	Arguments     []Argument
}

func (call *MoveCall) Target() string {
	return fmt.Sprintf("%s::%s::%s", call.Package.ShortString(), call.Module, call.Function)
}

type TransferObjects struct {
	Objects []Argument
	Address Argument
}

type SplitCoins struct {
	Coin    Argument
	Amounts []Argument
}

type MergeCoins struct {
	Destination Argument
	Sources     []Argument
}

// Command is one step of a programmable transaction.  Exactly one field is set.
type Command struct {
	MoveCall        *MoveCall
	TransferObjects *TransferObjects
	SplitCoins      *SplitCoins
	MergeCoins      *MergeCoins
}

func (cmd Command) String() string {
	switch {
	case cmd.MoveCall != nil:
		return fmt.Sprintf("MoveCall(%s)", cmd.MoveCall.Target())
	case cmd.TransferObjects != nil:
		return fmt.Sprintf("TransferObjects(%d)", len(cmd.TransferObjects.Objects))
	case cmd.SplitCoins != nil:
		return fmt.Sprintf("SplitCoins(%s, %d)", cmd.SplitCoins.Coin, len(cmd.SplitCoins.Amounts))
	case cmd.MergeCoins != nil:
		return fmt.Sprintf("MergeCoins(%s, %d)", cmd.MergeCoins.Destination, len(cmd.MergeCoins.Sources))
	}
	return "Command(empty)"
}

func (cmd Command) arguments() []Argument {
	switch {
	case cmd.MoveCall != nil:
		return cmd.MoveCall.Arguments
	case cmd.TransferObjects != nil:
		return append(append([]Argument{}, cmd.TransferObjects.Objects...), cmd.TransferObjects.Address)
	case cmd.SplitCoins != nil:
		return append([]Argument{cmd.SplitCoins.Coin}, cmd.SplitCoins.Amounts...)
	case cmd.MergeCoins != nil:
		return append([]Argument{cmd.MergeCoins.Destination}, cmd.MergeCoins.Sources...)
	}
	return nil
}
