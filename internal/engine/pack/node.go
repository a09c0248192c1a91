package pack

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modpack/internal/adapters/cache"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modpack/internal/adapters/catalog"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modpack/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modpack/internal/adapters/index"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modpack/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
	"go.trai.ch/modpack/internal/engine/resolver"
)

// NodeID is the unique identifier for the pack factory Graft node.
const NodeID graft.ID = "engine.pack"

// Factory binds the shared collaborators to manifests as they are loaded.
type Factory struct {
	deps Deps
}

// NewFactory creates a new Factory.
func NewFactory(deps Deps) *Factory {
	return &Factory{deps: deps}
}

// Open creates a Pack for manifest installed into installDir.
func (f *Factory) Open(manifest *domain.Manifest, installDir string, opts ...Option) *Pack {
	return New(manifest, installDir, f.deps, opts...)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			resolver.NodeID,
			cache.NodeID,
			index.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			fs.WalkerNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runFactoryNode,
	})
}

func runFactoryNode(ctx context.Context) (*Factory, error) {
	cat, err := graft.Dep[ports.Catalog](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	contentCache, err := graft.Dep[ports.ContentCache](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.IndexLoader](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.FileHasher](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[*fs.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewFactory(Deps{
		Catalog:   cat,
		Resolver:  res,
		Cache:     contentCache,
		Index:     loader,
		Hasher:    hasher,
		Probe:     verifier,
		Lister:    walker,
		Logger:    log,
		Telemetry: telemetry,
	}), nil
}
