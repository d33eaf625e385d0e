package resolver

import (
	"context"
	"slices"
	"sort"

	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine runs the two resolution phases over the registered sources.
type Engine struct {
	registry *Registry
	reporter ports.Reporter
}

// New creates an Engine.
func New(registry *Registry, reporter ports.Reporter) *Engine {
	return &Engine{
		registry: registry,
		reporter: reporter,
	}
}

// Outcome is the end state of a resolution run. Versions holds the
// highest released version found per package; Left the sorted names
// no source could resolve. The two are complementary over the
// manifest's package set.
type Outcome struct {
	Versions domain.Resolution
	Left     []string
}

// Resolve runs the primary phase and the secondary cascade according
// to opts and returns the merged outcome. Individual sources failing
// is reported but never aborts the run; only context cancellation
// does.
func (e *Engine) Resolve(ctx context.Context, manifest *domain.Manifest, opts domain.Options) (Outcome, error) {
	sched := NewScheduler(opts.Parallelism)
	versions := make(domain.Resolution, len(manifest.Packages))
	creds := opts.Credentials()

	// asked tracks the sources queried during the primary phase. The
	// cascade visits fresh sources first and only then re-asks these.
	asked := make(map[domain.SourceName]bool)

	if opts.Primary {
		if err := e.primary(ctx, sched, manifest.Packages, creds, versions, asked); err != nil {
			return Outcome{}, err
		}
		e.reporter.PrimaryDone()
	}

	if opts.Secondary {
		pending := manifest.Packages
		if opts.TrustPrimary {
			pending = unresolved(manifest.Packages, versions)
		}
		if len(pending) > 0 {
			var err error
			pending, err = e.cascade(ctx, sched, pending, creds, versions, asked, opts.TrustSecondary, false)
			if err != nil {
				return Outcome{}, err
			}
			if len(pending) > 0 {
				if _, err := e.cascade(ctx, sched, pending, creds, versions, asked, opts.TrustSecondary, true); err != nil {
					return Outcome{}, err
				}
			}
		}
	}

	left := versions.Left(manifest.Packages)
	if len(left) > 0 {
		e.reporter.Left(left)
	}
	return Outcome{Versions: versions, Left: left}, nil
}

// primary partitions the packages by their elected source and asks
// all groups in one batch. Results are folded in submission order, so
// runs are deterministic regardless of completion order.
func (e *Engine) primary(
	ctx context.Context,
	sched *Scheduler,
	packages map[string]*domain.PackageSpec,
	creds domain.Credentials,
	versions domain.Resolution,
	asked map[domain.SourceName]bool,
) error {
	groups := make(map[domain.SourceName]map[string]*domain.PackageSpec)
	for name, spec := range packages {
		if spec.Primary == "" {
			continue
		}
		if groups[spec.Primary] == nil {
			groups[spec.Primary] = make(map[string]*domain.PackageSpec)
		}
		groups[spec.Primary][name] = spec
	}
	if len(groups) == 0 {
		return nil
	}

	names := make([]domain.SourceName, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	invocations := make([]Invocation, 0, len(names))
	for _, srcName := range names {
		src, ok := e.registry.Lookup(srcName)
		if !ok {
			return zerr.With(domain.ErrUnknownSource, "source", srcName.String())
		}
		invocations = append(invocations, Invocation{
			Source:  src,
			Request: domain.FetchRequest{Packages: groups[srcName], Credentials: creds},
		})
	}

	for _, res := range sched.Fetch(ctx, invocations) {
		e.fold(versions, res, groups[res.Source])
		asked[res.Source] = true
	}
	return ctx.Err()
}

// cascade runs one pass over the cascade sources, sequentially, each
// source seeing the versions its predecessors contributed. askedPass
// selects whether the pass visits sources the primary phase already
// queried. With trust enabled the pending set shrinks after every
// answer and the pass stops early once it is empty; without it every
// visited source is asked for the full set the pass started with.
func (e *Engine) cascade(
	ctx context.Context,
	sched *Scheduler,
	pending map[string]*domain.PackageSpec,
	creds domain.Credentials,
	versions domain.Resolution,
	asked map[domain.SourceName]bool,
	trust bool,
	askedPass bool,
) (map[string]*domain.PackageSpec, error) {
	for _, src := range e.registry.Cascade() {
		if asked[src.Name()] != askedPass {
			continue
		}
		if err := ctx.Err(); err != nil {
			return pending, err
		}

		results := sched.Fetch(ctx, []Invocation{{
			Source:  src,
			Request: domain.FetchRequest{Packages: pending, Credentials: creds},
		}})
		e.fold(versions, results[0], pending)

		if trust {
			pending = unresolved(pending, versions)
			if len(pending) == 0 {
				break
			}
		}
	}
	return pending, nil
}

// fold merges one invocation result and reports it.
func (e *Engine) fold(versions domain.Resolution, res InvocationResult, batch map[string]*domain.PackageSpec) {
	if res.Err != nil {
		e.reporter.SourceFailed(res.Source, res.Err)
		return
	}
	versions.Merge(res.Result)
	e.reporter.Asked(res.Source, packageNames(batch), resultNames(res.Result), len(versions))
}

// unresolved returns the subset of packages without a version yet.
func unresolved(packages map[string]*domain.PackageSpec, versions domain.Resolution) map[string]*domain.PackageSpec {
	left := make(map[string]*domain.PackageSpec)
	for name, spec := range packages {
		if _, ok := versions[name]; !ok {
			left[name] = spec
		}
	}
	return left
}

func packageNames(packages map[string]*domain.PackageSpec) []string {
	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resultNames(result domain.BatchResult) []string {
	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
