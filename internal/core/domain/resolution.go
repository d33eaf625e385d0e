package domain

import "sort"

// BatchResult is the partial answer of one source invocation: the
// subset of asked packages the source could resolve, with the highest
// version it saw for each.
type BatchResult map[string]Version

// Resolution accumulates the highest version observed per package
// across all source invocations of a run.
type Resolution map[string]Version

// Merge folds a batch result into the resolution. A version is taken
// when the package is new or the candidate is strictly greater; ties
// keep the stored version. Merging is idempotent and order
// independent.
func (r Resolution) Merge(batch BatchResult) {
	for name, candidate := range batch {
		current, ok := r[name]
		if !ok || current.Compare(candidate) < 0 {
			r[name] = candidate
		}
	}
}

// Left returns the configured package names that have no resolved
// version, sorted.
func (r Resolution) Left(packages map[string]*PackageSpec) []string {
	left := make([]string, 0, len(packages))
	for name := range packages {
		if _, ok := r[name]; !ok {
			left = append(left, name)
		}
	}
	sort.Strings(left)
	return left
}

// Strings renders the resolution as plain name to version strings,
// ready for encoding.
func (r Resolution) Strings() map[string]string {
	out := make(map[string]string, len(r))
	for name, v := range r {
		out[name] = v.String()
	}
	return out
}
