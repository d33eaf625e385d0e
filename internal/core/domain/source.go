package domain

// SourceName identifies one of the registered version sources.
type SourceName string

const (
	// SourceGitHub queries the GitHub releases API.
	SourceGitHub SourceName = "github"

	// SourceGitHubTags queries the GitHub tags API.
	SourceGitHubTags SourceName = "github_tags"

	// SourceGitLab queries the GitLab releases API.
	SourceGitLab SourceName = "gitlab"

	// SourceGitLabTags queries the GitLab repository tags API.
	SourceGitLabTags SourceName = "gitlab_tags"

	// SourceAUR queries the Arch User Repository RPC interface.
	SourceAUR SourceName = "aur"

	// SourceArch queries the Arch Linux package search API.
	SourceArch SourceName = "arch"

	// SourceGit lists tags directly from a git remote.
	SourceGit SourceName = "git"
)

// KnownSources returns every registered source name. The set is
// closed; configuration referencing anything else is rejected.
func KnownSources() []SourceName {
	return []SourceName{
		SourceGitHub,
		SourceGitHubTags,
		SourceGitLab,
		SourceGitLabTags,
		SourceAUR,
		SourceArch,
		SourceGit,
	}
}

// CascadeSources returns the sources tried during the secondary
// phase, in cascade order. The remaining sources answer only for
// packages that elect them as primary.
func CascadeSources() []SourceName {
	return []SourceName{SourceGitHub, SourceGitLab, SourceAUR, SourceArch}
}

// Known reports whether n is a registered source name.
func (n SourceName) Known() bool {
	for _, known := range KnownSources() {
		if n == known {
			return true
		}
	}
	return false
}

// Cascades reports whether n takes part in the secondary phase.
func (n SourceName) Cascades() bool {
	for _, name := range CascadeSources() {
		if n == name {
			return true
		}
	}
	return false
}

// IdentifierField names the package field a source reads its remote
// identifier from.
func (n SourceName) IdentifierField() string {
	switch n {
	case SourceGitHub, SourceGitHubTags:
		return "github"
	case SourceGitLab, SourceGitLabTags:
		return "gitlab"
	case SourceAUR:
		return "aur"
	case SourceArch:
		return "arch"
	case SourceGit:
		return "url"
	default:
		return ""
	}
}

// Kind names the mechanism a source answers by.
func (n SourceName) Kind() string {
	switch n {
	case SourceGitHub, SourceGitLab:
		return "releases"
	case SourceGitHubTags, SourceGitLabTags:
		return "tags"
	case SourceAUR, SourceArch:
		return "index"
	case SourceGit:
		return "remote"
	default:
		return ""
	}
}

func (n SourceName) String() string {
	return string(n)
}

// Credentials carries authentication tokens forwarded verbatim to the
// sources that accept them.
type Credentials struct {
	GitHubToken string
	GitLabToken string
}

// FetchRequest is the input of one batched source invocation.
type FetchRequest struct {
	// Packages maps configured package names to their specs. A source
	// answers for the subset it can identify and silently skips the
	// rest.
	Packages map[string]*PackageSpec

	Credentials Credentials
}
