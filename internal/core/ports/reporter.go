package ports

import "go.trai.ch/scout/internal/core/domain"

// Reporter is the abstraction for progress reporting during a
// resolution run. It writes to the diagnostic stream only; the result
// payload never passes through it.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Asked records one completed source invocation.
	// queried: the package names the source was asked for
	// found: the names it answered for
	// total: resolved packages across the whole run so far
	Asked(source domain.SourceName, queried, found []string, total int)

	// SourceFailed records a whole invocation failing.
	SourceFailed(source domain.SourceName, err error)

	// PrimaryDone marks the end of the primary phase.
	PrimaryDone()

	// Left lists the packages no source could resolve.
	Left(names []string)
}
