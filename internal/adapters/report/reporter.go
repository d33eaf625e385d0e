// Package report renders resolution progress to the diagnostic stream.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/ui/output"
	"go.trai.ch/scout/internal/ui/style"
)

// Options configure the output shape of a Reporter.
type Options struct {
	// PrintNames lists package names instead of counts.
	PrintNames bool

	// Quiet drops every line.
	Quiet bool
}

// Reporter implements ports.Reporter with chronological, line-oriented
// output. All methods are safe for concurrent use.
type Reporter struct {
	w      io.Writer
	output *termenv.Output
	opts   Options

	mu sync.Mutex
}

// New creates a Reporter writing to w. A nil writer defaults to stderr.
func New(w io.Writer, opts Options) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{
		w:      w,
		output: termenv.NewOutput(w, termenv.WithProfile(output.ColorProfileANSI())),
		opts:   opts,
	}
}

// Asked records one completed source invocation. The name lists
// arrive sorted from the engine.
func (r *Reporter) Asked(source domain.SourceName, queried, found []string, total int) {
	if r.opts.Quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.opts.PrintNames {
		_, _ = fmt.Fprintf(r.w, "Asking %s for:\n    %s\n", source, strings.Join(queried, ", "))
		if len(found) > 0 {
			_, _ = fmt.Fprintf(r.w, "found:\n    %s, total: %d\n\n", strings.Join(found, ", "), total)
		} else {
			_, _ = fmt.Fprintf(r.w, "total: %d\n\n", total)
		}
		return
	}

	_, _ = fmt.Fprintf(r.w, "Asking %s for %d packages, found %d, total: %d\n",
		source, len(queried), len(found), total)
}

// SourceFailed records a whole invocation failing.
func (r *Reporter) SourceFailed(source domain.SourceName, err error) {
	if r.opts.Quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	symbol := r.output.String(style.Warning).Foreground(termenv.ANSIYellow).String()
	_, _ = fmt.Fprintf(r.w, "%s %s failed: %v\n", symbol, source, err)
}

// PrimaryDone marks the end of the primary phase.
func (r *Reporter) PrimaryDone() {
	if r.opts.Quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.w, "primary done")
}

// Left lists the packages no source could resolve.
func (r *Reporter) Left(names []string) {
	if r.opts.Quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.w, "Packages left: %s\n", strings.Join(names, ", "))
}
