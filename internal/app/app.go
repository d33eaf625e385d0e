// Package app implements the application layer for scout.
package app

import (
	"context"
	"io"
	"os"
	"strings"

	"go.trai.ch/scout/internal/adapters/fetch"
	"go.trai.ch/scout/internal/adapters/report"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/scout/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	registry     *resolver.Registry
	logger       ports.Logger
	fetcher      *fetch.Client

	stdout io.Writer
	stderr io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	registry *resolver.Registry,
	log ports.Logger,
	fetcher *fetch.Client,
) *App {
	return &App{
		configLoader: loader,
		registry:     registry,
		logger:       log,
		fetcher:      fetcher,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithStreams redirects the output streams.
// This is primarily used for testing.
func (a *App) WithStreams(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// Components contains the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// ConfigPath is an explicit configuration file. Empty discovers
	// one by walking up from the working directory.
	ConfigPath string

	// Output selects the payload encoding on stdout.
	Output string

	// Overrides carries the options set explicitly on the command
	// line. They win over configuration file settings.
	Overrides domain.Overrides
}

// Resolve runs one full resolution: load the manifest, ask the
// sources in both phases, emit the payload on stdout. A non-empty
// left set surfaces as domain.ErrPartialResolution after the payload
// is written.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	// 1. Validate the encoding before anything else happens
	encoding, err := ParseEncoding(opts.Output)
	if err != nil {
		return err
	}

	// 2. Load the manifest
	manifest, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 3. Layer the options: defaults, file settings, flags
	options := domain.DefaultOptions().Apply(manifest.Settings).Apply(opts.Overrides)
	if options.Parallelism < 1 {
		return zerr.With(domain.ErrInvalidParallelism, "parallelism", options.Parallelism)
	}

	// 4. Run both phases
	reporter := report.New(a.stderr, report.Options{
		PrintNames: options.PrintNames,
		Quiet:      options.Quiet,
	})
	engine := resolver.New(a.registry, reporter)

	defer a.fetcher.Close()

	outcome, err := engine.Resolve(ctx, manifest, options)
	if err != nil {
		return err
	}

	// 5. Emit the payload
	if err := Encode(a.stdout, encoding, outcome.Versions); err != nil {
		return err
	}

	if len(outcome.Left) > 0 {
		return zerr.With(domain.ErrPartialResolution, "packages", strings.Join(outcome.Left, ", "))
	}
	return nil
}

// Sources writes the provider registry listing to stdout.
func (a *App) Sources(output string) error {
	encoding, err := ParseEncoding(output)
	if err != nil {
		return err
	}

	names := a.registry.Names()
	infos := make([]SourceInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, SourceInfo{
			Name:       name.String(),
			Kind:       name.Kind(),
			Cascade:    name.Cascades(),
			Identifier: name.IdentifierField(),
		})
	}
	return EncodeSources(a.stdout, encoding, infos)
}

// SetDebug toggles debug-level logging.
func (a *App) SetDebug(enabled bool) {
	a.logger.SetDebug(enabled)
}
