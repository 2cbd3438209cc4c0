package ptb

import (
	"fmt"

	"github.com/cordialsys/go-sui-sdk/v2/lib"
	"github.com/cordialsys/go-sui-sdk/v2/move_types"
	"github.com/cordialsys/go-sui-sdk/v2/sui_types"
	"github.com/fardream/go-bcs/bcs"
)

func toSuiArgument(arg Argument) sui_types.Argument {
	switch arg.Kind {
	case ArgumentInput:
		index := arg.Index
		return sui_types.Argument{Input: &index}
	case ArgumentResult:
		index := arg.Index
		return sui_types.Argument{Result: &index}
	case ArgumentNestedResult:
		return sui_types.Argument{NestedResult: &struct {
			Result1 uint16
			Result2 uint16
		}{Result1: arg.Index, Result2: arg.SubIndex}}
	}
	return sui_types.Argument{GasCoin: &lib.EmptyEnum{}}
}

func toSuiArguments(args []Argument) []sui_types.Argument {
	out := make([]sui_types.Argument, len(args))
	for i, arg := range args {
		out[i] = toSuiArgument(arg)
	}
	return out
}

func toSuiObjectRef(ref ObjectRef) *sui_types.ObjectRef {
	return &sui_types.ObjectRef{
		ObjectId: sui_types.ObjectID(ref.ObjectID),
		Version:  ref.Version,
		Digest:   sui_types.ObjectDigest(ref.Digest),
	}
}

func toSuiCallArg(arg CallArg) (sui_types.CallArg, error) {
	if arg.Object == nil {
		pure := arg.Pure
		return sui_types.CallArg{Pure: &pure}, nil
	}
	switch {
	case arg.Object.ImmOrOwned != nil:
		return sui_types.CallArg{Object: &sui_types.ObjectArg{
			ImmOrOwnedObject: toSuiObjectRef(*arg.Object.ImmOrOwned),
		}}, nil
	case arg.Object.Shared != nil:
		shared := arg.Object.Shared
		return sui_types.CallArg{Object: &sui_types.ObjectArg{
			SharedObject: &struct {
				Id                   sui_types.ObjectID
				InitialSharedVersion sui_types.SequenceNumber
				Mutable              bool
			}{
				Id:                   sui_types.ObjectID(shared.ObjectID),
				InitialSharedVersion: shared.InitialSharedVersion,
				Mutable:              shared.Mutable,
			},
		}}, nil
	}
	return sui_types.CallArg{}, fmt.Errorf("object input has no reference")
}

// ToMoveTypeTag converts to the SDK representation.
func ToMoveTypeTag(tag TypeTag) (move_types.TypeTag, error) {
	switch tag.Kind {
	case TypeBool:
		return move_types.TypeTag{Bool: &lib.EmptyEnum{}}, nil
	case TypeU8:
		return move_types.TypeTag{U8: &lib.EmptyEnum{}}, nil
	case TypeU16:
		return move_types.TypeTag{U16: &lib.EmptyEnum{}}, nil
	case TypeU32:
		return move_types.TypeTag{U32: &lib.EmptyEnum{}}, nil
	case TypeU64:
		return move_types.TypeTag{U64: &lib.EmptyEnum{}}, nil
	case TypeU128:
		return move_types.TypeTag{U128: &lib.EmptyEnum{}}, nil
	case TypeU256:
		return move_types.TypeTag{U256: &lib.EmptyEnum{}}, nil
	case TypeAddress:
		return move_types.TypeTag{Address: &lib.EmptyEnum{}}, nil
	case TypeSigner:
		return move_types.TypeTag{Signer: &lib.EmptyEnum{}}, nil
	case TypeVector:
		inner, err := ToMoveTypeTag(*tag.Vector)
		if err != nil {
			return move_types.TypeTag{}, err
		}
		return move_types.TypeTag{Vector: &inner}, nil
	case TypeStruct:
		params := make([]move_types.TypeTag, len(tag.Struct.TypeParams))
		for i, param := range tag.Struct.TypeParams {
			var err error
			params[i], err = ToMoveTypeTag(param)
			if err != nil {
				return move_types.TypeTag{}, err
			}
		}
		return move_types.TypeTag{Struct: &move_types.StructTag{
			Address:    move_types.AccountAddress(tag.Struct.Address),
			Module:     move_types.Identifier(tag.Struct.Module),
			Name:       move_types.Identifier(tag.Struct.Name),
			TypeParams: params,
		}}, nil
	}
	return move_types.TypeTag{}, fmt.Errorf("unknown type tag kind %d", tag.Kind)
}

func toSuiCommand(cmd Command) (sui_types.Command, error) {
	switch {
	case cmd.MoveCall != nil:
		typeArgs := make([]move_types.TypeTag, len(cmd.MoveCall.TypeArguments))
		for i, tag := range cmd.MoveCall.TypeArguments {
			var err error
			typeArgs[i], err = ToMoveTypeTag(tag)
			if err != nil {
				return sui_types.Command{}, err
			}
		}
		return sui_types.Command{MoveCall: &sui_types.ProgrammableMoveCall{
			Package:       sui_types.ObjectID(cmd.MoveCall.Package),
			Module:        move_types.Identifier(cmd.MoveCall.Module),
			Function:      move_types.Identifier(cmd.MoveCall.Function),
			TypeArguments: typeArgs,
			Arguments:     toSuiArguments(cmd.MoveCall.Arguments),
		}}, nil
	case cmd.TransferObjects != nil:
		return sui_types.Command{TransferObjects: &struct {
			Arguments []sui_types.Argument
			Argument  sui_types.Argument
		}{
			Arguments: toSuiArguments(cmd.TransferObjects.Objects),
			Argument:  toSuiArgument(cmd.TransferObjects.Address),
		}}, nil
	case cmd.SplitCoins != nil:
		return sui_types.Command{SplitCoins: &struct {
			Argument  sui_types.Argument
			Arguments []sui_types.Argument
		}{
			Argument:  toSuiArgument(cmd.SplitCoins.Coin),
			Arguments: toSuiArguments(cmd.SplitCoins.Amounts),
		}}, nil
	case cmd.MergeCoins != nil:
		return sui_types.Command{MergeCoins: &struct {
			Argument  sui_types.Argument
			Arguments []sui_types.Argument
		}{
			Argument:  toSuiArgument(cmd.MergeCoins.Destination),
			Arguments: toSuiArguments(cmd.MergeCoins.Sources),
		}}, nil
	}
	return sui_types.Command{}, fmt.Errorf("empty command")
}

// Programmable converts the built transaction into the SDK's ProgrammableTransaction.
func (tx *Transaction) Programmable() (sui_types.ProgrammableTransaction, error) {
	pt := sui_types.ProgrammableTransaction{
		Inputs:   make([]sui_types.CallArg, len(tx.inputs)),
		Commands: make([]sui_types.Command, len(tx.commands)),
	}
	var err error
	for i, input := range tx.inputs {
		if pt.Inputs[i], err = toSuiCallArg(input); err != nil {
			return sui_types.ProgrammableTransaction{}, err
		}
	}
	for i, cmd := range tx.commands {
		if pt.Commands[i], err = toSuiCommand(cmd); err != nil {
			return sui_types.ProgrammableTransaction{}, fmt.Errorf("command %d: %v", i, err)
		}
	}
	return pt, nil
}

// Serialize encodes the transaction as a ProgrammableTransaction.
func (tx *Transaction) Serialize() ([]byte, error) {
	pt, err := tx.Programmable()
	if err != nil {
		return nil, err
	}
	return bcs.Marshal(pt)
}

// SerializeKind encodes the transaction as a TransactionKind, as dev-inspect expects.
func (tx *Transaction) SerializeKind() ([]byte, error) {
	pt, err := tx.Programmable()
	if err != nil {
		return nil, err
	}
	return bcs.Marshal(sui_types.TransactionKind{ProgrammableTransaction: &pt})
}

type GasData struct {
	Payment []ObjectRef
	Owner   Address
	Price   uint64
	Budget  uint64
}

// TransactionData is the full signable payload.
type TransactionData struct {
	Transaction *Transaction
	Sender      Address
	GasData     GasData
	// Zero means the transaction does not expire
	ExpirationEpoch uint64
}

// ToSui converts to the SDK's TransactionData.
func (data *TransactionData) ToSui() (sui_types.TransactionData, error) {
	if data.Transaction == nil {
		return sui_types.TransactionData{}, fmt.Errorf("transaction data has no transaction")
	}
	pt, err := data.Transaction.Programmable()
	if err != nil {
		return sui_types.TransactionData{}, err
	}
	payment := make([]*sui_types.ObjectRef, len(data.GasData.Payment))
	for i, ref := range data.GasData.Payment {
		payment[i] = toSuiObjectRef(ref)
	}
	expiration := sui_types.TransactionExpiration{None: &lib.EmptyEnum{}}
	if data.ExpirationEpoch > 0 {
		epoch := data.ExpirationEpoch
		expiration = sui_types.TransactionExpiration{Epoch: &epoch}
	}
	return sui_types.TransactionData{V1: &sui_types.TransactionDataV1{
		Kind:   sui_types.TransactionKind{ProgrammableTransaction: &pt},
		Sender: sui_types.SuiAddress(data.Sender),
		GasData: sui_types.GasData{
			Payment: payment,
			Owner:   sui_types.SuiAddress(data.GasData.Owner),
			Price:   data.GasData.Price,
			Budget:  data.GasData.Budget,
		},
		Expiration: expiration,
	}}, nil
}

func (data *TransactionData) Serialize() ([]byte, error) {
	suiData, err := data.ToSui()
	if err != nil {
		return nil, err
	}
	return bcs.Marshal(suiData)
}
