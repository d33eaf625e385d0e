package domain

// PackageSpec describes one tracked package: where to look for its
// released versions and under which identifiers.
type PackageSpec struct {
	// Name is the configured package name, the key in the output.
	Name string

	// Primary elects the source asked during the primary phase.
	// Empty means the package relies on the cascade alone.
	Primary SourceName

	// BaseURL overrides the source endpoint where supported: a
	// self-hosted GitLab instance, or the remote for the git source.
	BaseURL string

	// GitHub is the "owner/repo" identifier on GitHub.
	GitHub string

	// GitLab is the "group/project" path on GitLab.
	GitLab string

	// Arch is the Arch Linux package name. Empty falls back to Name.
	Arch string

	// AUR is the AUR package name. Empty falls back to Name.
	AUR string

	// Constraint optionally restricts which versions qualify.
	Constraint *Constraint
}

// ArchName returns the identifier used against the Arch Linux API.
func (p *PackageSpec) ArchName() string {
	if p.Arch != "" {
		return p.Arch
	}
	return p.Name
}

// AURName returns the identifier used against the AUR RPC interface.
func (p *PackageSpec) AURName() string {
	if p.AUR != "" {
		return p.AUR
	}
	return p.Name
}

// PickVersion parses the raw tag names, drops versions outside the
// package constraint, and returns the highest remaining one. The
// boolean is false when nothing qualifies.
func (p *PackageSpec) PickVersion(raws []string) (Version, bool) {
	versions := ParseVersions(raws)
	if p.Constraint != nil {
		kept := versions[:0]
		for _, v := range versions {
			if p.Constraint.Matches(v) {
				kept = append(kept, v)
			}
		}
		versions = kept
	}
	return Latest(versions)
}

// Manifest is the loaded configuration: the package universe plus the
// options the configuration file sets explicitly.
type Manifest struct {
	Packages map[string]*PackageSpec
	Settings Overrides
}
