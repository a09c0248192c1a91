package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modpack/internal/adapters/catalog" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modpack/internal/core/ports"
)

// NodeID is the unique identifier for the version resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{catalog.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			c, err := graft.Dep[ports.Catalog](ctx)
			if err != nil {
				return nil, err
			}
			return New(c), nil
		},
	})
}
