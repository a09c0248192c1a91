package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modpack/internal/adapters/config"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
)

const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Catalog, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			client, err := NewClient(settings)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}
