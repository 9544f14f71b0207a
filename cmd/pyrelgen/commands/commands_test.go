package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pyrelgen/cmd/pyrelgen/commands"
	"go.trai.ch/pyrelgen/internal/build"
)

type mockApp struct {
	runFunc func(ctx context.Context) error
}

func (m *mockApp) Run(ctx context.Context) error {
	if m.runFunc != nil {
		return m.runFunc(ctx)
	}
	return nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("invokes the app", func(t *testing.T) {
		called := false
		mock := &mockApp{
			runFunc: func(_ context.Context) error {
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("propagates the context", func(t *testing.T) {
		type ctxKey struct{}
		ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

		var got any
		mock := &mockApp{
			runFunc: func(ctx context.Context) error {
				got = ctx.Value(ctxKey{})
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(ctx))
		assert.Equal(t, "marker", got)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t,
		"pyrelgen version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		buf.String(),
	)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "version "+build.Version)
	assert.Contains(t, buf.String(), "commit: "+build.Commit)
}
