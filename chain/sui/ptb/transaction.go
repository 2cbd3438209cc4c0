package ptb

import (
	"errors"
	"fmt"
)

var ErrForwardReference = errors.New("argument references a command that has not been appended")
var ErrUnknownInput = errors.New("argument references an unknown input")
var ErrEmptyCommand = errors.New("command has no arguments")

// Transaction is an ordered sequence of commands under construction.  Command i may only consume
// inputs and the outputs of commands appended before it.  Object inputs are de-duplicated by id.
type Transaction struct {
	inputs       []CallArg
	objectInputs map[ObjectID]uint16
	commands     []Command
}

func NewTransaction() *Transaction {
	return &Transaction{
		objectInputs: map[ObjectID]uint16{},
	}
}

func (tx *Transaction) Inputs() []CallArg {
	return tx.inputs
}

func (tx *Transaction) Commands() []Command {
	return tx.commands
}

func (tx *Transaction) Len() int {
	return len(tx.commands)
}

// Pure adds a BCS encoded input.
func (tx *Transaction) Pure(value []byte) Argument {
	tx.inputs = append(tx.inputs, CallArg{Pure: append([]byte{}, value...)})
	return Input(uint16(len(tx.inputs) - 1))
}

func (tx *Transaction) PureU64(value uint64) Argument {
	return tx.Pure(PureU64(value).Value)
}

func (tx *Transaction) PureAddress(addr Address) Argument {
	return tx.Pure(PureAddress(addr).Value)
}

// Object adds an object input, or returns the existing input for the same object.  A shared object
// used both mutably and immutably is passed mutably.
func (tx *Transaction) Object(obj ObjectArg) (Argument, error) {
	if obj.Shared == nil && obj.ImmOrOwned == nil {
		return Argument{}, fmt.Errorf("object argument is empty")
	}
	id := obj.ID()
	if index, ok := tx.objectInputs[id]; ok {
		existing := tx.inputs[index].Object
		if existing.Shared != nil && obj.Shared != nil {
			if existing.Shared.InitialSharedVersion != obj.Shared.InitialSharedVersion {
				return Argument{}, fmt.Errorf("shared object %s used with conflicting versions %d and %d",
					id, existing.Shared.InitialSharedVersion, obj.Shared.InitialSharedVersion)
			}
			existing.Shared.Mutable = existing.Shared.Mutable || obj.Shared.Mutable
		} else if (existing.Shared == nil) != (obj.Shared == nil) {
			return Argument{}, fmt.Errorf("object %s used as both shared and owned", id)
		}
		return Input(index), nil
	}
	copied := obj
	if obj.Shared != nil {
		shared := *obj.Shared
		copied.Shared = &shared
	}
	if obj.ImmOrOwned != nil {
		ref := *obj.ImmOrOwned
		copied.ImmOrOwned = &ref
	}
	tx.inputs = append(tx.inputs, CallArg{Object: &copied})
	index := uint16(len(tx.inputs) - 1)
	tx.objectInputs[id] = index
	return Input(index), nil
}

func (tx *Transaction) resolve(op Operand) (Argument, error) {
	switch op := op.(type) {
	case PureOperand:
		return tx.Pure(op.Value), nil
	case ObjectOperand:
		return tx.Object(op.Object)
	case OutputOperand:
		return op.Argument, tx.check(op.Argument)
	case nil:
		return Argument{}, fmt.Errorf("nil operand")
	default:
		return Argument{}, fmt.Errorf("unknown operand %T", op)
	}
}

// check enforces that an argument only refers to what already exists in the transaction.
func (tx *Transaction) check(arg Argument) error {
	switch arg.Kind {
	case ArgumentGasCoin:
		return nil
	case ArgumentInput:
		if int(arg.Index) >= len(tx.inputs) {
			return fmt.Errorf("%w: %s", ErrUnknownInput, arg)
		}
		return nil
	case ArgumentResult:
		if int(arg.Index) >= len(tx.commands) {
			return fmt.Errorf("%w: %s", ErrForwardReference, arg)
		}
		return nil
	case ArgumentNestedResult:
		if int(arg.Index) >= len(tx.commands) {
			return fmt.Errorf("%w: %s", ErrForwardReference, arg)
		}
		if split := tx.commands[arg.Index].SplitCoins; split != nil && int(arg.SubIndex) >= len(split.Amounts) {
			return fmt.Errorf("%w: %s, split produced %d coins", ErrForwardReference, arg, len(split.Amounts))
		}
		return nil
	}
	return fmt.Errorf("unknown argument kind %d", arg.Kind)
}

func (tx *Transaction) push(cmd Command) (Argument, error) {
	for _, arg := range cmd.arguments() {
		if err := tx.check(arg); err != nil {
			return Argument{}, err
		}
	}
	tx.commands = append(tx.commands, cmd)
	return Result(uint16(len(tx.commands) - 1)), nil
}

// Append adds a Move call and returns the handle to its result.
func (tx *Transaction) Append(desc CallDescriptor) (Argument, error) {
	pkg, module, function, err := desc.ParseTarget()
	if err != nil {
		return Argument{}, err
	}
	typeArgs := make([]TypeTag, len(desc.TypeArguments))
	for i, typeArg := range desc.TypeArguments {
		typeArgs[i], err = ParseTypeTag(typeArg)
		if err != nil {
			return Argument{}, err
		}
	}
	for _, output := range desc.Outputs() {
		if err := tx.check(output); err != nil {
			return Argument{}, err
		}
	}
	// a failed descriptor leaves the transaction untouched
	restore := tx.snapshot()
	args := make([]Argument, len(desc.Arguments))
	for i, op := range desc.Arguments {
		args[i], err = tx.resolve(op)
		if err != nil {
			restore()
			return Argument{}, err
		}
	}
	result, err := tx.push(Command{MoveCall: &MoveCall{
		Package:       pkg,
		Module:        module,
		Function:      function,
		TypeArguments: typeArgs,
		Arguments:     args,
	}})
	if err != nil {
		restore()
	}
	return result, err
}

// snapshot returns a func that drops inputs added since the call and undoes mutability upgrades.
func (tx *Transaction) snapshot() func() {
	count := len(tx.inputs)
	mutable := map[uint16]bool{}
	for _, index := range tx.objectInputs {
		if shared := tx.inputs[index].Object.Shared; shared != nil {
			mutable[index] = shared.Mutable
		}
	}
	return func() {
		for _, input := range tx.inputs[count:] {
			if input.Object != nil {
				delete(tx.objectInputs, input.Object.ID())
			}
		}
		tx.inputs = tx.inputs[:count]
		for index, m := range mutable {
			tx.inputs[index].Object.Shared.Mutable = m
		}
	}
}

// SplitCoins splits the amounts off the coin.  The new coins are returned in order as nested results.
func (tx *Transaction) SplitCoins(coin Argument, amounts ...uint64) ([]Argument, error) {
	if len(amounts) == 0 {
		return nil, ErrEmptyCommand
	}
	if err := tx.check(coin); err != nil {
		return nil, err
	}
	amountArgs := make([]Argument, len(amounts))
	for i, amount := range amounts {
		amountArgs[i] = tx.PureU64(amount)
	}
	result, err := tx.push(Command{SplitCoins: &SplitCoins{Coin: coin, Amounts: amountArgs}})
	if err != nil {
		return nil, err
	}
	coins := make([]Argument, len(amounts))
	for i := range amounts {
		coins[i] = NestedResult(result.Index, uint16(i))
	}
	return coins, nil
}

func (tx *Transaction) MergeCoins(destination Argument, sources ...Argument) error {
	if len(sources) == 0 {
		return ErrEmptyCommand
	}
	_, err := tx.push(Command{MergeCoins: &MergeCoins{Destination: destination, Sources: sources}})
	return err
}

func (tx *Transaction) TransferObjects(objects []Argument, recipient Address) error {
	if len(objects) == 0 {
		return ErrEmptyCommand
	}
	for _, obj := range objects {
		if err := tx.check(obj); err != nil {
			return err
		}
	}
	address := tx.PureAddress(recipient)
	_, err := tx.push(Command{TransferObjects: &TransferObjects{Objects: objects, Address: address}})
	return err
}
