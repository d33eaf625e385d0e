// Package github implements the release and tag sources backed by the
// GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"go.trai.ch/scout/internal/adapters/fetch"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const apiBase = "https://api.github.com/repos"

const (
	kindReleases = "releases"
	kindTags     = "tags"
)

// refDoc is the slice element of both listing endpoints. Releases
// carry tag_name, tags carry name.
type refDoc struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
}

// Source implements ports.Source against one GitHub listing endpoint.
type Source struct {
	name   domain.SourceName
	kind   string
	base   string
	client *fetch.Client
	logger ports.Logger
}

// NewReleases creates the "github" source, which reads published
// releases.
func NewReleases(client *fetch.Client, logger ports.Logger) *Source {
	return &Source{
		name:   domain.SourceGitHub,
		kind:   kindReleases,
		base:   apiBase,
		client: client,
		logger: logger,
	}
}

// NewTags creates the "github_tags" source, which reads raw tags. Some
// projects tag releases without publishing them.
func NewTags(client *fetch.Client, logger ports.Logger) *Source {
	return &Source{
		name:   domain.SourceGitHubTags,
		kind:   kindTags,
		base:   apiBase,
		client: client,
		logger: logger,
	}
}

// Name returns the registered source name.
func (s *Source) Name() domain.SourceName {
	return s.name
}

// Fetch answers for every package in the batch that carries a github
// identifier. Lookups run concurrently; packages whose lookup fails
// are left out of the result.
func (s *Source) Fetch(ctx context.Context, req domain.FetchRequest) (domain.BatchResult, error) {
	result := make(domain.BatchResult)
	var mu sync.Mutex

	var g errgroup.Group
	for name, spec := range req.Packages {
		id := spec.GitHub
		if id == "" {
			continue
		}
		g.Go(func() error {
			raws, err := s.listVersions(ctx, id, req.Credentials.GitHubToken)
			if err != nil {
				s.logger.Debug(fmt.Sprintf("github: skipping %s: %v", name, err))
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

// listVersions fetches the listing endpoint for one repository and
// returns the raw tag names.
func (s *Source) listVersions(ctx context.Context, id, token string) ([]string, error) {
	url := fmt.Sprintf("%s/%s/%s", s.base, id, s.kind)

	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "token "+token)
	}

	body, err := s.client.Get(ctx, url, header)
	if err != nil {
		return nil, err
	}

	var docs []refDoc
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceResponseMalformed.Error())
	}

	raws := make([]string, 0, len(docs))
	for _, doc := range docs {
		if s.kind == kindReleases {
			raws = append(raws, doc.TagName)
		} else {
			raws = append(raws, doc.Name)
		}
	}
	return raws, nil
}
