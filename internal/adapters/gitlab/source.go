// Package gitlab implements the release and tag sources backed by the
// GitLab REST API, for gitlab.com and self-hosted instances.
package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"go.trai.ch/scout/internal/adapters/fetch"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const defaultBase = "https://gitlab.com"

const (
	kindReleases = "releases"
	kindTags     = "repository/tags"
)

// refDoc is the slice element of both listing endpoints. Releases
// carry tag_name, repository tags carry name.
type refDoc struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
}

// Source implements ports.Source against one GitLab listing endpoint.
type Source struct {
	name   domain.SourceName
	kind   string
	base   string
	client *fetch.Client
	logger ports.Logger
}

// NewReleases creates the "gitlab" source, which reads published
// releases.
func NewReleases(client *fetch.Client, logger ports.Logger) *Source {
	return &Source{
		name:   domain.SourceGitLab,
		kind:   kindReleases,
		base:   defaultBase,
		client: client,
		logger: logger,
	}
}

// NewTags creates the "gitlab_tags" source, which reads repository
// tags.
func NewTags(client *fetch.Client, logger ports.Logger) *Source {
	return &Source{
		name:   domain.SourceGitLabTags,
		kind:   kindTags,
		base:   defaultBase,
		client: client,
		logger: logger,
	}
}

// Name returns the registered source name.
func (s *Source) Name() domain.SourceName {
	return s.name
}

// Fetch answers for every package in the batch that carries a gitlab
// identifier. A package may point at a self-hosted instance via its
// url field; the access token is only sent to the default instance.
func (s *Source) Fetch(ctx context.Context, req domain.FetchRequest) (domain.BatchResult, error) {
	result := make(domain.BatchResult)
	var mu sync.Mutex

	var g errgroup.Group
	for name, spec := range req.Packages {
		id := spec.GitLab
		if id == "" {
			continue
		}
		g.Go(func() error {
			raws, err := s.listVersions(ctx, id, spec.BaseURL, req.Credentials.GitLabToken)
			if err != nil {
				s.logger.Debug(fmt.Sprintf("gitlab: skipping %s: %v", name, err))
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

func (s *Source) listVersions(ctx context.Context, id, baseOverride, token string) ([]string, error) {
	base := s.base
	if baseOverride != "" {
		base = baseOverride
	}

	// Project paths are addressed URL-encoded: group/project -> group%2Fproject.
	endpoint := fmt.Sprintf("%s/api/v4/projects/%s/%s", base, url.PathEscape(id), s.kind)

	header := http.Header{}
	if token != "" && base == s.base {
		header.Set("Private-Token", token)
	}

	body, err := s.client.Get(ctx, endpoint, header)
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
