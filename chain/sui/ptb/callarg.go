package ptb

// ObjectArg is an object input, either owned/immutable (pinned by ref) or shared.
type ObjectArg struct {
	ImmOrOwned *ObjectRef
	Shared     *SharedObject
}

func OwnedObject(ref ObjectRef) ObjectArg {
	return ObjectArg{ImmOrOwned: &ref}
}

func SharedObjectArg(shared SharedObject) ObjectArg {
	return ObjectArg{Shared: &shared}
}

func (arg ObjectArg) ID() ObjectID {
	if arg.Shared != nil {
		return arg.Shared.ObjectID
	}
	if arg.ImmOrOwned != nil {
		return arg.ImmOrOwned.ObjectID
	}
	return ObjectID{}
}

// CallArg is a transaction input: BCS encoded pure bytes or an object.
type CallArg struct {
	Pure   []byte
	Object *ObjectArg
}

func (arg CallArg) IsObject() bool {
	return arg.Object != nil
}
