package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scout/cmd/scout/commands"
	"go.trai.ch/scout/internal/app"
	"go.trai.ch/scout/internal/build"
	"go.trai.ch/scout/internal/core/domain"
)

type mockApp struct {
	resolveFunc  func(ctx context.Context, opts app.ResolveOptions) error
	sourcesFunc  func(output string) error
	setDebugFunc func(enabled bool)
}

func (m *mockApp) Resolve(ctx context.Context, opts app.ResolveOptions) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Sources(output string) error {
	if m.sourcesFunc != nil {
		return m.sourcesFunc(output)
	}
	return nil
}

func (m *mockApp) SetDebug(enabled bool) {
	if m.setDebugFunc != nil {
		m.setDebugFunc(enabled)
	}
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ResolveOptions
		called := false

		mock := &mockApp{
			resolveFunc: func(_ context.Context, opts app.ResolveOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"resolve", "scout.toml",
			"--quiet",
			"--trust-secondary=false",
			"--parallelism", "8",
			"--github-token", "s3cret",
			"-o", "yaml",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "scout.toml", captured.ConfigPath)
		assert.Equal(t, "yaml", captured.Output)

		require.NotNil(t, captured.Overrides.Quiet)
		assert.True(t, *captured.Overrides.Quiet)
		require.NotNil(t, captured.Overrides.TrustSecondary)
		assert.False(t, *captured.Overrides.TrustSecondary)
		require.NotNil(t, captured.Overrides.Parallelism)
		assert.Equal(t, 8, *captured.Overrides.Parallelism)
		require.NotNil(t, captured.Overrides.GitHubToken)
		assert.Equal(t, "s3cret", *captured.Overrides.GitHubToken)
	})

	t.Run("untouched flags stay unset", func(t *testing.T) {
		var captured app.ResolveOptions

		mock := &mockApp{
			resolveFunc: func(_ context.Context, opts app.ResolveOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, captured.ConfigPath)
		assert.Equal(t, "json", captured.Output)
		assert.Equal(t, domain.Overrides{}, captured.Overrides, "defaulted flags must not become overrides")
	})

	t.Run("returns error on resolve failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ app.ResolveOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Sources(t *testing.T) {
	t.Run("defaults to table output", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			sourcesFunc: func(output string) error {
				captured = output
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"sources"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "table", captured)
	})

	t.Run("honors the output flag", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			sourcesFunc: func(output string) error {
				captured = output
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"sources", "-o", "json"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "json", captured)
	})
}

func TestCommands_Debug(t *testing.T) {
	var debugSet bool
	mock := &mockApp{
		setDebugFunc: func(enabled bool) {
			debugSet = enabled
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"resolve", "--debug"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, debugSet)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
