package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scout/internal/adapters/archlinux" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/scout/internal/adapters/aur"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/scout/internal/adapters/fetch"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/scout/internal/adapters/github"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/scout/internal/adapters/gitlab"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/scout/internal/adapters/gitremote" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/scout/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/scout/internal/core/ports"
)

// RegistryNodeID is the unique identifier for the source registry
// Graft node.
const RegistryNodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetch.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Registry, error) {
			client, err := graft.Dep[*fetch.Client](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRegistry(
				github.NewReleases(client, log),
				github.NewTags(client, log),
				gitlab.NewReleases(client, log),
				gitlab.NewTags(client, log),
				aur.New(client, log),
				archlinux.New(client, log),
				gitremote.New(client, log),
			)
		},
	})
}
