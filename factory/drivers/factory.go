package drivers

import (
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/protocol"
	"github.com/portasui/porta/protocol/cetus"
	"github.com/portasui/porta/protocol/magma"
	"github.com/portasui/porta/protocol/navi"
	"github.com/portasui/porta/protocol/scallop"
)

// SupportedProtocols have a client implementation.
var SupportedProtocols = []porta.ProtocolID{
	porta.Navi,
	porta.Scallop,
	porta.Magma,
	porta.Cetus,
}

// NewProtocol creates the client for a protocol deployment.
func NewProtocol(cfg *protocol.Config) (protocol.Protocol, error) {
	switch cfg.ID {
	case porta.Navi:
		return navi.NewClient(cfg)
	case porta.Scallop:
		return scallop.NewClient(cfg)
	case porta.Magma:
		return magma.NewClient(cfg)
	case porta.Cetus:
		return cetus.NewClient(cfg)
	}
	return nil, fmt.Errorf("no client for protocol: %s", cfg.ID)
}

// NewRegistry creates clients for every deployment and registers them.
func NewRegistry(configs ...*protocol.Config) (*protocol.Registry, error) {
	registry := protocol.NewRegistry()
	for _, cfg := range configs {
		client, err := NewProtocol(cfg)
		if err != nil {
			return nil, err
		}
		registry.Add(client)
	}
	return registry, nil
}
