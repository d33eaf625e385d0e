package gitlab_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scout/internal/adapters/fetch"
	"go.trai.ch/scout/internal/adapters/gitlab"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/scout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newQuietLogger(t *testing.T) ports.Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return logger
}

func TestSource_Name(t *testing.T) {
	client := fetch.NewClient()
	defer client.Close()
	logger := newQuietLogger(t)

	assert.Equal(t, domain.SourceGitLab, gitlab.NewReleases(client, logger).Name())
	assert.Equal(t, domain.SourceGitLabTags, gitlab.NewTags(client, logger).Name())
}

func TestSource_Fetch_EscapesProjectPath(t *testing.T) {
	var gotURI string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		_, _ = w.Write([]byte(`[{"tag_name":"v16.0.1"},{"tag_name":"v15.11.2"}]`))
	}))
	defer server.Close()

	client := fetch.NewClient()
	defer client.Close()
	source := gitlab.NewReleasesWithBase(client, newQuietLogger(t), server.URL)

	result, err := source.Fetch(context.Background(), domain.FetchRequest{
		Packages: map[string]*domain.PackageSpec{
			"gitlab": {Name: "gitlab", GitLab: "gitlab-org/gitlab"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/v4/projects/gitlab-org%2Fgitlab/releases", gotURI)
	assert.Equal(t, "16.0.1", result["gitlab"].String())
}

func TestSource_Fetch_TagsEndpoint(t *testing.T) {
	var gotURI string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		_, _ = w.Write([]byte(`[{"name":"v2.3.0"},{"name":"v2.2.9"}]`))
	}))
	defer server.Close()

	client := fetch.NewClient()
	defer client.Close()
	source := gitlab.NewTagsWithBase(client, newQuietLogger(t), server.URL)

	result, err := source.Fetch(context.Background(), domain.FetchRequest{
		Packages: map[string]*domain.PackageSpec{
			"proj": {Name: "proj", GitLab: "group/proj"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/v4/projects/group%2Fproj/repository/tags", gotURI)
	assert.Equal(t, "2.3.0", result["proj"].String())
}

func TestSource_Fetch_TokenOnlyForDefaultInstance(t *testing.T) {
	var defaultToken string
	defaultServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defaultToken = r.Header.Get("Private-Token")
		_, _ = w.Write([]byte(`[{"tag_name":"1.0.0"}]`))
	}))
	defer defaultServer.Close()

	var selfHostedToken string
	selfHosted := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		selfHostedToken = r.Header.Get("Private-Token")
		_, _ = w.Write([]byte(`[{"tag_name":"2.0.0"}]`))
	}))
	defer selfHosted.Close()

	client := fetch.NewClient()
	defer client.Close()
	source := gitlab.NewReleasesWithBase(client, newQuietLogger(t), defaultServer.URL)

	result, err := source.Fetch(context.Background(), domain.FetchRequest{
		Packages: map[string]*domain.PackageSpec{
			"hosted": {Name: "hosted", GitLab: "group/hosted"},
			"own":    {Name: "own", GitLab: "group/own", BaseURL: selfHosted.URL},
		},
		Credentials: domain.Credentials{GitLabToken: "gl-secret"},
	})

	require.NoError(t, err)
	assert.Equal(t, "gl-secret", defaultToken, "token goes to the default instance")
	assert.Empty(t, selfHostedToken, "token must not leak to self-hosted instances")
	assert.Equal(t, "1.0.0", result["hosted"].String())
	assert.Equal(t, "2.0.0", result["own"].String())
}

func TestSource_Fetch_SkipsPackagesWithoutIdentifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"tag_name":"1.0.0"}]`))
	}))
	defer server.Close()

	client := fetch.NewClient()
	defer client.Close()
	source := gitlab.NewReleasesWithBase(client, newQuietLogger(t), server.URL)

	result, err := source.Fetch(context.Background(), domain.FetchRequest{
		Packages: map[string]*domain.PackageSpec{
			"no-id": {Name: "no-id", GitHub: "owner/repo"},
		},
	})

	require.NoError(t, err)
	assert.Empty(t, result)
}
