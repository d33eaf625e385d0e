package ports

import (
	"context"

	"go.trai.ch/scout/internal/core/domain"
)

// Source defines the interface for a version information provider.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type Source interface {
	// Name returns the registered source name.
	Name() domain.SourceName

	// Fetch answers one batched invocation. The result contains the
	// subset of asked packages the source could resolve; packages it
	// cannot answer for are omitted without error. A non-nil error
	// means the whole invocation failed and the result is discarded.
	Fetch(ctx context.Context, req domain.FetchRequest) (domain.BatchResult, error)
}
