package archlinux

import (
	"go.trai.ch/scout/internal/adapters/fetch"
	"go.trai.ch/scout/internal/core/ports"
)

// NewWithBase creates a source against a custom API base for testing
// purposes.
func NewWithBase(client *fetch.Client, logger ports.Logger, base string) *Source {
	s := New(client, logger)
	s.base = base
	return s
}
