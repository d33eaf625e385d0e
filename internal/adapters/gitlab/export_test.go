package gitlab

import (
	"go.trai.ch/scout/internal/adapters/fetch"
	"go.trai.ch/scout/internal/core/ports"
)

// NewReleasesWithBase creates a releases source against a custom
// instance for testing purposes.
func NewReleasesWithBase(client *fetch.Client, logger ports.Logger, base string) *Source {
	s := NewReleases(client, logger)
	s.base = base
	return s
}

// NewTagsWithBase creates a tags source against a custom instance for
// testing purposes.
func NewTagsWithBase(client *fetch.Client, logger ports.Logger, base string) *Source {
	s := NewTags(client, logger)
	s.base = base
	return s
}
