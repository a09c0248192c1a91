package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modpack/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Verifier, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.FileHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileHasher, error) {
			return NewHasher(), nil
		},
	})
}
