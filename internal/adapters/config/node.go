package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modpack/internal/adapters/logger"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
)

const (
	NodeID         graft.ID = "adapter.config_loader"
	SettingsNodeID graft.ID = "adapter.config.settings"
)

// levelSetter is implemented by loggers whose verbosity can change after construction.
type levelSetter interface {
	SetLevel(level domain.LogLevel)
}

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	// Settings of the current working directory, shared by every adapter that needs them.
	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := loader.Load(".")
			if err != nil {
				return nil, err
			}
			if ls, ok := log.(levelSetter); ok {
				ls.SetLevel(settings.LogLevel)
			}
			return settings, nil
		},
	})
}
