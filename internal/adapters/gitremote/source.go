// Package gitremote implements the source that lists tags straight
// from a git remote, for projects hosted outside the big forges.
package gitremote

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"

	"go.trai.ch/scout/internal/adapters/fetch"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// tagPattern matches advertised tag refs in both smart-HTTP ref
// advertisements and ls-remote output. The pkt-line length prefix of
// the HTTP framing is absorbed by the leading hex run. Peeled refs
// ("tag^{}") point at the same tag and are folded away.
var tagPattern = regexp.MustCompile(`(?m)^[0-9a-fA-F]+\s+refs/tags/([^/^]+)(\^\{\})?$`)

// Source implements ports.Source by listing tags from the remote a
// package names in its url field. It only answers for packages that
// elect it as primary: a bare URL is too ambiguous for cascading.
type Source struct {
	client *fetch.Client
	logger ports.Logger
}

// New creates the "git" source.
func New(client *fetch.Client, logger ports.Logger) *Source {
	return &Source{
		client: client,
		logger: logger,
	}
}

// Name returns the registered source name.
func (s *Source) Name() domain.SourceName {
	return domain.SourceGit
}

// Fetch lists tags for every package that elected this source and
// carries a url. HTTP remotes are read via the smart-HTTP ref
// advertisement; anything else falls back to git ls-remote.
func (s *Source) Fetch(ctx context.Context, req domain.FetchRequest) (domain.BatchResult, error) {
	result := make(domain.BatchResult)
	var mu sync.Mutex

	var g errgroup.Group
	for name, spec := range req.Packages {
		if spec.Primary != domain.SourceGit || spec.BaseURL == "" {
			continue
		}
		g.Go(func() error {
			raws, err := s.listTags(ctx, spec.BaseURL)
			if err != nil {
				s.logger.Debug(fmt.Sprintf("git: skipping %s: %v", name, err))
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

func (s *Source) listTags(ctx context.Context, remote string) ([]string, error) {
	if strings.HasPrefix(remote, "http://") || strings.HasPrefix(remote, "https://") {
		return s.listTagsHTTP(ctx, remote)
	}
	return s.listTagsExec(ctx, remote)
}

// listTagsHTTP reads the upload-pack ref advertisement without
// spawning a git process.
func (s *Source) listTagsHTTP(ctx context.Context, remote string) ([]string, error) {
	endpoint := strings.TrimSuffix(remote, "/") + "/info/refs?service=git-upload-pack"

	body, err := s.client.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return tagNames(string(body)), nil
}

// listTagsExec shells out for remotes the HTTP path cannot serve
// (ssh, git protocol, local paths).
func (s *Source) listTagsExec(ctx context.Context, remote string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "ls-remote", "--tags", remote)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	out, err := cmd.Output()
	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(err, domain.ErrSourceRequestFailed.Error())
		return nil, zerr.With(zerr.With(wrapped, "exit_code", exitCode), "remote", remote)
	}
	return tagNames(string(out)), nil
}

// tagNames extracts unique tag names from a ref listing.
func tagNames(listing string) []string {
	matches := tagPattern.FindAllStringSubmatch(listing, -1)
	names := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
