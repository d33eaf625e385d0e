// Package resolver drives multi-source version resolution: grouping
// packages per source, fanning invocations out with bounded
// parallelism and folding the answers into one resolution.
package resolver

import (
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry holds the registered sources keyed by name. The name set
// is closed: registering an unknown or duplicate name fails.
type Registry struct {
	byName map[domain.SourceName]ports.Source
}

// NewRegistry creates a Registry from the given sources.
func NewRegistry(sources ...ports.Source) (*Registry, error) {
	byName := make(map[domain.SourceName]ports.Source, len(sources))
	for _, src := range sources {
		name := src.Name()
		if !name.Known() {
			return nil, zerr.With(domain.ErrUnknownSource, "source", name.String())
		}
		if _, exists := byName[name]; exists {
			return nil, zerr.With(domain.ErrDuplicateSource, "source", name.String())
		}
		byName[name] = src
	}
	return &Registry{byName: byName}, nil
}

// Lookup returns the source registered under name.
func (r *Registry) Lookup(name domain.SourceName) (ports.Source, bool) {
	src, ok := r.byName[name]
	return src, ok
}

// Cascade returns the registered cascade sources in cascade order.
func (r *Registry) Cascade() []ports.Source {
	sources := make([]ports.Source, 0, len(domain.CascadeSources()))
	for _, name := range domain.CascadeSources() {
		if src, ok := r.byName[name]; ok {
			sources = append(sources, src)
		}
	}
	return sources
}

// Names returns the registered source names in registration-set
// order, i.e. the order of domain.KnownSources.
func (r *Registry) Names() []domain.SourceName {
	names := make([]domain.SourceName, 0, len(r.byName))
	for _, name := range domain.KnownSources() {
		if _, ok := r.byName[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
