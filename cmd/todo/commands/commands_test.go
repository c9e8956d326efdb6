package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/todo/cmd/todo/commands"
	"go.trai.ch/todo/internal/app"
	"go.trai.ch/todo/internal/build"
)

type mockApp struct {
	shellFunc func(ctx context.Context, opts app.ShellOptions) error
}

func (m *mockApp) Shell(ctx context.Context, opts app.ShellOptions) error {
	if m.shellFunc != nil {
		return m.shellFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Shell(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ShellOptions
		called := false

		mock := &mockApp{
			shellFunc: func(_ context.Context, opts app.ShellOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"shell", "--output", "tui", "-f", "pending"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.ShellOptions{OutputMode: "tui", Filter: "pending"}, captured)
	})

	t.Run("ci flag forces linear output", func(t *testing.T) {
		var captured app.ShellOptions
		mock := &mockApp{
			shellFunc: func(_ context.Context, opts app.ShellOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"shell", "--output", "tui", "--ci"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "linear", captured.OutputMode)
	})

	t.Run("root command starts a shell with defaults", func(t *testing.T) {
		var captured *app.ShellOptions
		mock := &mockApp{
			shellFunc: func(_ context.Context, opts app.ShellOptions) error {
				captured = &opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{})

		require.NoError(t, cli.Execute(context.Background()))
		require.NotNil(t, captured)
		assert.Equal(t, app.ShellOptions{}, *captured)
	})

	t.Run("returns error on shell failure", func(t *testing.T) {
		mock := &mockApp{
			shellFunc: func(_ context.Context, _ app.ShellOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"shell"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			shellFunc: func(_ context.Context, _ app.ShellOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"shell", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	originalVersion, originalCommit, originalDate := build.Version, build.Commit, build.Date
	defer func() {
		build.Version, build.Commit, build.Date = originalVersion, originalCommit, originalDate
	}()
	build.Version, build.Commit, build.Date = "1.2.3", "abc123", "2026-01-01"

	t.Run("version command", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"version"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "todo version 1.2.3 (commit: abc123, date: 2026-01-01)\n", buf.String())
	})

	t.Run("version flag", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"--version"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "todo version 1.2.3 (commit: abc123, date: 2026-01-01)\n", buf.String())
	})
}
