package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modpack/internal/adapters/fs"
	"go.trai.ch/modpack/internal/adapters/logger"
	"go.trai.ch/modpack/internal/core/ports"
)

const NodeID graft.ID = "adapter.index_loader"

func init() {
	graft.Register(graft.Node[ports.IndexLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.VerifierNodeID},
		Run: func(ctx context.Context) (ports.IndexLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[*fs.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, verifier), nil
		},
	})
}
