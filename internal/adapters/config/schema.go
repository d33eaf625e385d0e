package config

// Settings represents the reserved settings table of the configuration file.
// All fields are pointers so that explicitly configured values can be told
// apart from absent ones when layering options.
type Settings struct {
	Primary        *bool   `toml:"primary" yaml:"primary"`
	Secondary      *bool   `toml:"secondary" yaml:"secondary"`
	TrustPrimary   *bool   `toml:"trust_primary" yaml:"trust_primary"`
	TrustSecondary *bool   `toml:"trust_secondary" yaml:"trust_secondary"`
	PrintNames     *bool   `toml:"print_names" yaml:"print_names"`
	Quiet          *bool   `toml:"quiet" yaml:"quiet"`
	Parallelism    *int    `toml:"parallelism" yaml:"parallelism"`
	GitHubToken    *string `toml:"github_token" yaml:"github_token"`
	GitLabToken    *string `toml:"gitlab_token" yaml:"gitlab_token"`
}

// PackageDTO represents one package table of the configuration file.
type PackageDTO struct {
	Primary    string `toml:"primary" yaml:"primary"`
	URL        string `toml:"url" yaml:"url"`
	GitHub     string `toml:"github" yaml:"github"`
	GitLab     string `toml:"gitlab" yaml:"gitlab"`
	Arch       string `toml:"arch" yaml:"arch"`
	AUR        string `toml:"aur" yaml:"aur"`
	Constraint string `toml:"constraint" yaml:"constraint"`
}
