// Package config provides the configuration loader for scout.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for TOML and YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path. An empty path discovers
// scout.toml or scout.yaml by walking up from the working directory.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigNotFound.Error())
		}
		path, err = findConfiguration(cwd)
		if err != nil {
			return nil, err
		}
	}

	l.Logger.Debug("using configuration at " + path)

	// #nosec G304 -- path is provided by the user or discovered upward from the working directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return l.loadTOML(data)
	case ".yaml", ".yml":
		return l.loadYAML(data)
	default:
		return nil, zerr.With(domain.ErrConfigFormatUnknown, "path", path)
	}
}

// findConfiguration walks up from cwd until a configuration file
// appears, checking scout.toml before scout.yaml in each directory.
func findConfiguration(cwd string) (string, error) {
	currentDir := cwd

	for {
		for _, name := range []string{domain.TOMLFileName, domain.YAMLFileName} {
			candidate := filepath.Join(currentDir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) loadTOML(data []byte) (*domain.Manifest, error) {
	var tables map[string]toml.Primitive
	md, err := toml.Decode(string(data), &tables)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	var settings Settings
	packages := make(map[string]PackageDTO)

	for name := range tables {
		prim := tables[name]
		if name == domain.SettingsKey {
			if decodeErr := md.PrimitiveDecode(prim, &settings); decodeErr != nil {
				return nil, zerr.Wrap(decodeErr, domain.ErrConfigParseFailed.Error())
			}
			continue
		}

		var dto PackageDTO
		if decodeErr := md.PrimitiveDecode(prim, &dto); decodeErr != nil {
			return nil, zerr.Wrap(decodeErr, domain.ErrConfigParseFailed.Error())
		}
		packages[name] = dto
	}

	// Undecoded keys surface in document order, so the first offender
	// is reported deterministically.
	for _, key := range md.Undecoded() {
		if len(key) < 2 {
			continue
		}
		if key[0] == domain.SettingsKey {
			return nil, zerr.With(domain.ErrUnknownOption, "option", key[1])
		}
		fieldErr := zerr.With(domain.ErrUnknownPackageField, "package", key[0])
		return nil, zerr.With(fieldErr, "field", key[1])
	}

	return l.build(settings, packages)
}

// Allowed mapping keys for strict YAML decoding. yaml.v3 only honors
// KnownFields on a Decoder, not on nodes, so unknown keys are checked
// by hand before decoding.
var (
	settingsFields = map[string]bool{
		"primary": true, "secondary": true, "trust_primary": true,
		"trust_secondary": true, "print_names": true, "quiet": true,
		"parallelism": true, "github_token": true, "gitlab_token": true,
	}

	packageFields = map[string]bool{
		"primary": true, "url": true, "github": true, "gitlab": true,
		"arch": true, "aur": true, "constraint": true,
	}
)

func (l *Loader) loadYAML(data []byte) (*domain.Manifest, error) {
	var tables map[string]yaml.Node
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	var settings Settings
	packages := make(map[string]PackageDTO)

	for name := range tables {
		node := tables[name]
		if name == domain.SettingsKey {
			if err := checkFields(&node, settingsFields, func(field string) error {
				return zerr.With(domain.ErrUnknownOption, "option", field)
			}); err != nil {
				return nil, err
			}
			if err := node.Decode(&settings); err != nil {
				return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
			}
			continue
		}

		if err := checkFields(&node, packageFields, func(field string) error {
			fieldErr := zerr.With(domain.ErrUnknownPackageField, "package", name)
			return zerr.With(fieldErr, "field", field)
		}); err != nil {
			return nil, err
		}

		var dto PackageDTO
		if err := node.Decode(&dto); err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		packages[name] = dto
	}

	return l.build(settings, packages)
}

// checkFields rejects mapping keys outside the allowed set. Non-mapping
// nodes pass through and fail later during decoding.
func checkFields(node *yaml.Node, allowed map[string]bool, reject func(string) error) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(node.Content); i += 2 {
		if key := node.Content[i].Value; !allowed[key] {
			return reject(key)
		}
	}
	return nil
}

func (l *Loader) build(settings Settings, packages map[string]PackageDTO) (*domain.Manifest, error) {
	if settings.Parallelism != nil && *settings.Parallelism < 1 {
		return nil, zerr.With(domain.ErrInvalidParallelism, "parallelism", *settings.Parallelism)
	}

	manifest := &domain.Manifest{
		Packages: make(map[string]*domain.PackageSpec, len(packages)),
		Settings: overridesFromSettings(settings),
	}

	for name := range packages {
		spec, err := l.buildPackage(name, packages[name])
		if err != nil {
			return nil, err
		}
		manifest.Packages[name] = spec
	}

	return manifest, nil
}

func (l *Loader) buildPackage(name string, dto PackageDTO) (*domain.PackageSpec, error) {
	spec := &domain.PackageSpec{
		Name:    name,
		Primary: domain.SourceName(dto.Primary),
		BaseURL: dto.URL,
		GitHub:  dto.GitHub,
		GitLab:  dto.GitLab,
		Arch:    dto.Arch,
		AUR:     dto.AUR,
	}

	if dto.Primary != "" {
		if !spec.Primary.Known() {
			sourceErr := zerr.With(domain.ErrUnknownSource, "package", name)
			return nil, zerr.With(sourceErr, "source", dto.Primary)
		}
		if field := spec.Primary.IdentifierField(); missingIdentifier(field, dto) {
			l.Logger.Warn(fmt.Sprintf("package %q elects %s as primary but sets no %q field", name, dto.Primary, field))
		}
	}

	if dto.Constraint != "" {
		constraint, err := domain.ParseConstraint(dto.Constraint)
		if err != nil {
			return nil, zerr.With(err, "package", name)
		}
		spec.Constraint = constraint
	}

	return spec, nil
}

// missingIdentifier reports whether the elected primary source has no
// identifier to query with. The Arch sources fall back to the package
// name, so only the remote-path sources can end up unanswerable.
func missingIdentifier(field string, dto PackageDTO) bool {
	switch field {
	case "github":
		return dto.GitHub == ""
	case "gitlab":
		return dto.GitLab == ""
	case "url":
		return dto.URL == ""
	default:
		return false
	}
}

// overridesFromSettings converts the settings table into option
// overrides. Pointer fields pass through so absent settings leave the
// layer below untouched.
func overridesFromSettings(s Settings) domain.Overrides {
	return domain.Overrides{
		Primary:        s.Primary,
		Secondary:      s.Secondary,
		TrustPrimary:   s.TrustPrimary,
		TrustSecondary: s.TrustSecondary,
		PrintNames:     s.PrintNames,
		Quiet:          s.Quiet,
		Parallelism:    s.Parallelism,
		GitHubToken:    s.GitHubToken,
		GitLabToken:    s.GitLabToken,
	}
}
