package cache

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/modpack/internal/adapters/config"
	"go.trai.ch/modpack/internal/adapters/logger"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
)

const NodeID graft.ID = "adapter.content_cache"

func init() {
	graft.Register(graft.Node[ports.ContentCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ContentCache, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := NewStore(settings.CacheDir, &http.Client{Timeout: settings.APITimeout}, settings.UserAgent, log)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
