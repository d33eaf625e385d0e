// Package archlinux implements the source backed by the Arch Linux
// official package search API.
package archlinux

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"go.trai.ch/scout/internal/adapters/fetch"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const apiBase = "https://www.archlinux.org/packages/search/json/"

// searchDoc is the package search response. A package present in
// several repositories yields one result per repository.
type searchDoc struct {
	Results []struct {
		PkgVer string `json:"pkgver"`
	} `json:"results"`
}

// Source implements ports.Source against the Arch Linux package
// search API. The arch identifier defaults to the package name.
type Source struct {
	base   string
	client *fetch.Client
	logger ports.Logger
}

// New creates the "arch" source.
func New(client *fetch.Client, logger ports.Logger) *Source {
	return &Source{
		base:   apiBase,
		client: client,
		logger: logger,
	}
}

// Name returns the registered source name.
func (s *Source) Name() domain.SourceName {
	return domain.SourceArch
}

// Fetch looks up every package in the batch concurrently. Packages
// unknown to the repositories come back with an empty result list and
// are omitted.
func (s *Source) Fetch(ctx context.Context, req domain.FetchRequest) (domain.BatchResult, error) {
	result := make(domain.BatchResult)
	var mu sync.Mutex

	var g errgroup.Group
	for name, spec := range req.Packages {
		g.Go(func() error {
			raws, err := s.search(ctx, spec.ArchName())
			if err != nil {
				s.logger.Debug(fmt.Sprintf("arch: skipping %s: %v", name, err))
				return nil
			}
			if v, ok := spec.PickVersion(raws); ok {
				mu.Lock()
				result[name] = v
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return result, nil
}

func (s *Source) search(ctx context.Context, id string) ([]string, error) {
	endpoint := s.base + "?name=" + url.QueryEscape(id)

	body, err := s.client.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var doc searchDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceResponseMalformed.Error())
	}

	raws := make([]string, 0, len(doc.Results))
	for _, res := range doc.Results {
		raws = append(raws, res.PkgVer)
	}
	return raws, nil
}
