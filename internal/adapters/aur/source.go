// Package aur implements the source backed by the Arch User
// Repository RPC interface.
package aur

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.trai.ch/scout/internal/adapters/fetch"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
)

const apiBase = "https://aur.archlinux.org/rpc/"

// infoDoc is the RPC v5 info response. Results come back in arbitrary
// order and only for packages the AUR knows, so they are matched back
// by Name rather than position.
type infoDoc struct {
	Results []struct {
		Name    string `json:"Name"`
		Version string `json:"Version"`
	} `json:"results"`
}

// Source implements ports.Source against the AUR RPC interface. The
// whole batch is answered by a single multi-arg info request; the aur
// identifier defaults to the package name.
type Source struct {
	base   string
	client *fetch.Client
	logger ports.Logger
}

// New creates the "aur" source.
func New(client *fetch.Client, logger ports.Logger) *Source {
	return &Source{
		base:   apiBase,
		client: client,
		logger: logger,
	}
}

// Name returns the registered source name.
func (s *Source) Name() domain.SourceName {
	return domain.SourceAUR
}

// Fetch asks for the whole batch in one request. Unlike the fan-out
// sources a transport failure here fails the invocation as a whole.
func (s *Source) Fetch(ctx context.Context, req domain.FetchRequest) (domain.BatchResult, error) {
	if len(req.Packages) == 0 {
		return domain.BatchResult{}, nil
	}

	// Several configured packages may share one AUR name.
	byID := make(map[string][]*domain.PackageSpec, len(req.Packages))
	for _, spec := range req.Packages {
		id := spec.AURName()
		byID[id] = append(byID[id], spec)
	}

	values := url.Values{}
	values.Set("v", "5")
	values.Set("type", "info")
	for id := range byID {
		values.Add("arg[]", id)
	}
	endpoint := s.base + "?" + values.Encode()

	body, err := s.client.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var doc infoDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceResponseMalformed.Error())
	}

	result := make(domain.BatchResult)
	answered := make(map[string]bool, len(doc.Results))
	for _, res := range doc.Results {
		answered[res.Name] = true
		for _, spec := range byID[res.Name] {
			if v, ok := spec.PickVersion([]string{res.Version}); ok {
				result[spec.Name] = v
			}
		}
	}
	for id := range byID {
		if !answered[id] {
			s.logger.Debug(fmt.Sprintf("aur: no package named %s", id))
		}
	}
	return result, nil
}
