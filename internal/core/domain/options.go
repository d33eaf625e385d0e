package domain

// Options are the effective settings of a resolution run, after
// defaults, configuration and command line flags have been layered.
type Options struct {
	// Primary enables the primary phase.
	Primary bool

	// Secondary enables the cascade phase.
	Secondary bool

	// TrustPrimary narrows the cascade to packages the primary phase
	// left unresolved. When false the cascade re-asks for everything.
	TrustPrimary bool

	// TrustSecondary lets each cascade answer shrink the remaining
	// set, stopping early once it is empty. When false every cascade
	// source is asked for the full set the phase started with.
	TrustSecondary bool

	// PrintNames lists package names in progress lines instead of
	// counts.
	PrintNames bool

	// Quiet suppresses all progress reporting.
	Quiet bool

	// Parallelism caps concurrently running source invocations.
	Parallelism int

	// GitHubToken authenticates GitHub API requests.
	GitHubToken string

	// GitLabToken authenticates requests against gitlab.com.
	GitLabToken string
}

// DefaultParallelism is the source invocation concurrency used when
// neither configuration nor flags set one.
const DefaultParallelism = 4

// DefaultOptions returns the baseline settings: both phases on, both
// trust flags on, count-style progress on stderr.
func DefaultOptions() Options {
	return Options{
		Primary:        true,
		Secondary:      true,
		TrustPrimary:   true,
		TrustSecondary: true,
		Parallelism:    DefaultParallelism,
	}
}

// Overrides carries explicitly provided option values. Nil fields
// were not set and leave the layer below untouched.
type Overrides struct {
	Primary        *bool
	Secondary      *bool
	TrustPrimary   *bool
	TrustSecondary *bool
	PrintNames     *bool
	Quiet          *bool
	Parallelism    *int
	GitHubToken    *string
	GitLabToken    *string
}

// Apply overlays the set fields of ov onto o and returns the result.
func (o Options) Apply(ov Overrides) Options {
	if ov.Primary != nil {
		o.Primary = *ov.Primary
	}
	if ov.Secondary != nil {
		o.Secondary = *ov.Secondary
	}
	if ov.TrustPrimary != nil {
		o.TrustPrimary = *ov.TrustPrimary
	}
	if ov.TrustSecondary != nil {
		o.TrustSecondary = *ov.TrustSecondary
	}
	if ov.PrintNames != nil {
		o.PrintNames = *ov.PrintNames
	}
	if ov.Quiet != nil {
		o.Quiet = *ov.Quiet
	}
	if ov.Parallelism != nil {
		o.Parallelism = *ov.Parallelism
	}
	if ov.GitHubToken != nil {
		o.GitHubToken = *ov.GitHubToken
	}
	if ov.GitLabToken != nil {
		o.GitLabToken = *ov.GitLabToken
	}
	return o
}

// Credentials extracts the pass-through tokens.
func (o Options) Credentials() Credentials {
	return Credentials{GitHubToken: o.GitHubToken, GitLabToken: o.GitLabToken}
}
