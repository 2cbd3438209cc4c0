package protocol

import (
	"fmt"

	"github.com/portasui/porta"
	"github.com/tidwall/btree"
)

// Registry holds the protocol clients of a network, ordered by id.
type Registry struct {
	protocols *btree.Map[porta.ProtocolID, Protocol]
}

func NewRegistry(protocols ...Protocol) *Registry {
	registry := &Registry{
		protocols: btree.NewMap[porta.ProtocolID, Protocol](0),
	}
	for _, p := range protocols {
		registry.Add(p)
	}
	return registry
}

func (r *Registry) Add(p Protocol) {
	r.protocols.Set(p.ID(), p)
}

func (r *Registry) Get(id porta.ProtocolID) (Protocol, bool) {
	return r.protocols.Get(id)
}

func (r *Registry) All() []Protocol {
	all := make([]Protocol, 0, r.protocols.Len())
	r.protocols.Scan(func(_ porta.ProtocolID, p Protocol) bool {
		all = append(all, p)
		return true
	})
	return all
}

func (r *Registry) Lending(id porta.ProtocolID) (Lending, error) {
	return lookup[Lending](r, id, porta.Lending)
}

func (r *Registry) Liquidity(id porta.ProtocolID) (Liquidity, error) {
	return lookup[Liquidity](r, id, porta.Liquidity)
}

func (r *Registry) Swapper(id porta.ProtocolID) (Swapper, error) {
	return lookup[Swapper](r, id, porta.Dex)
}

func lookup[T Protocol](r *Registry, id porta.ProtocolID, kind porta.ProtocolKind) (T, error) {
	var zero T
	p, ok := r.protocols.Get(id)
	if !ok {
		return zero, fmt.Errorf("protocol %s is not registered", id)
	}
	typed, ok := p.(T)
	if !ok {
		return zero, fmt.Errorf("protocol %s is not a %s protocol", id, kind)
	}
	return typed, nil
}
