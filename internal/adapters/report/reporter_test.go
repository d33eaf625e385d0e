package report_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scout/internal/adapters/report"
	"go.trai.ch/scout/internal/core/domain"
)

func TestReporter_Asked_Counts(t *testing.T) {
	r, buf := newTestReporter(t, report.Options{})

	r.Asked(domain.SourceGitHub, []string{"bat", "fd"}, []string{"fd"}, 3)

	g := goldie.New(t)
	g.Assert(t, "asked_counts", buf.Bytes())
}

func TestReporter_Asked_PrintNames(t *testing.T) {
	t.Run("with answers", func(t *testing.T) {
		r, buf := newTestReporter(t, report.Options{PrintNames: true})

		r.Asked(domain.SourceGitHub, []string{"bat", "fd"}, []string{"fd"}, 3)

		g := goldie.New(t)
		g.Assert(t, "asked_names", buf.Bytes())
	})

	t.Run("without answers", func(t *testing.T) {
		r, buf := newTestReporter(t, report.Options{PrintNames: true})

		r.Asked(domain.SourceAUR, []string{"paru"}, nil, 0)

		g := goldie.New(t)
		g.Assert(t, "asked_names_empty", buf.Bytes())
	})
}

func TestReporter_SourceFailed(t *testing.T) {
	r, buf := newTestReporter(t, report.Options{})

	r.SourceFailed(domain.SourceGitHub, domain.ErrSourceRequestFailed)

	g := goldie.New(t)
	g.Assert(t, "source_failed", buf.Bytes())
}

func TestReporter_PrimaryDone(t *testing.T) {
	r, buf := newTestReporter(t, report.Options{})

	r.PrimaryDone()

	g := goldie.New(t)
	g.Assert(t, "primary_done", buf.Bytes())
}

func TestReporter_Left(t *testing.T) {
	r, buf := newTestReporter(t, report.Options{})

	r.Left([]string{"drifter", "paru"})

	g := goldie.New(t)
	g.Assert(t, "left", buf.Bytes())
}

func TestReporter_RunTranscript(t *testing.T) {
	r, buf := newTestReporter(t, report.Options{})

	r.Asked(domain.SourceGitHub, []string{"electron", "fd"}, []string{"electron", "fd"}, 2)
	r.Asked(domain.SourceArch, []string{"zsh"}, []string{"zsh"}, 3)
	r.PrimaryDone()
	r.SourceFailed(domain.SourceGitLab, domain.ErrSourceRequestFailed)
	r.Asked(domain.SourceAUR, []string{"drifter"}, nil, 3)
	r.Left([]string{"drifter"})

	g := goldie.New(t)
	g.Assert(t, "run_transcript", buf.Bytes())
}

func TestReporter_Quiet(t *testing.T) {
	r, buf := newTestReporter(t, report.Options{Quiet: true})

	r.Asked(domain.SourceGitHub, []string{"fd"}, []string{"fd"}, 1)
	r.SourceFailed(domain.SourceGitLab, domain.ErrSourceRequestFailed)
	r.PrimaryDone()
	r.Left([]string{"drifter"})

	assert.Empty(t, buf.String())
}

func TestReporter_QuietPrintNames(t *testing.T) {
	// Quiet wins over print_names.
	r, buf := newTestReporter(t, report.Options{PrintNames: true, Quiet: true})

	r.Asked(domain.SourceGitHub, []string{"fd"}, []string{"fd"}, 1)

	assert.Empty(t, buf.String())
}

func TestReporter_NilWriterDefaultsToStderr(t *testing.T) {
	require.NotPanics(t, func() {
		report.New(nil, report.Options{})
	})
}

func newTestReporter(t *testing.T, opts report.Options) (*report.Reporter, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := new(bytes.Buffer)
	return report.New(buf, opts), buf
}
