package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/optics/blobstore"
)

func TestEnvPath(t *testing.T) {
	env := &Env{}
	assert.Equal(t, "a.npy", env.Path("a.npy"))

	env.Dir = "/data"
	assert.Equal(t, filepath.Join("/data", "a.npy"), env.Path("a.npy"))
	assert.Equal(t, "/abs/a.npy", env.Path("/abs/a.npy"))
}

func TestNewCommand_InitializesEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("hello"), 0o644))

	var stdout bytes.Buffer
	env := &Env{Stdout: &stdout, Dir: dir}
	cmd := NewCommand("test", "test", cobra.NoArgs, env, func(ctx context.Context, env *Env, _ []string) error {
		b, err := env.Store.Open(ctx, "in.txt")
		if err != nil {
			return err
		}
		defer b.Close()

		data, err := blobstore.Bytes(b)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	})
	cmd.SetArgs([]string{})

	require.NoError(t, Execute(context.Background(), cmd))
	assert.Equal(t, "hello", stdout.String())
	assert.NotNil(t, env.Logger)
	assert.NotNil(t, env.FS)
}

func TestExecute_ReportsErrors(t *testing.T) {
	boom := errors.New("boom")

	var stderr bytes.Buffer
	env := &Env{Stderr: &stderr}
	cmd := NewCommand("test", "test", cobra.ExactArgs(1), env, func(context.Context, *Env, []string) error {
		return boom
	})

	cmd.SetArgs([]string{"x"})
	assert.ErrorIs(t, Execute(context.Background(), cmd), boom)
	assert.Equal(t, "Error: boom\n", stderr.String())

	stderr.Reset()
	cmd.SetArgs([]string{})
	assert.Error(t, Execute(context.Background(), cmd))
	assert.Contains(t, stderr.String(), "accepts 1 arg(s), received 0")
}

func TestVerbose(t *testing.T) {
	var stderr bytes.Buffer
	env := &Env{Stderr: &stderr}
	cmd := NewCommand("test", "test", cobra.NoArgs, env, func(ctx context.Context, env *Env, _ []string) error {
		env.Logger.DebugContext(ctx, "debug line")
		return nil
	})

	cmd.SetArgs([]string{"--verbose"})
	require.NoError(t, Execute(context.Background(), cmd))
	assert.Contains(t, stderr.String(), "debug line")
}

func TestQuietByDefault(t *testing.T) {
	var stderr bytes.Buffer
	env := &Env{Stderr: &stderr}
	cmd := NewCommand("test", "test", cobra.NoArgs, env, func(ctx context.Context, env *Env, _ []string) error {
		env.Logger.InfoContext(ctx, "info line")
		return nil
	})

	cmd.SetArgs([]string{})
	require.NoError(t, Execute(context.Background(), cmd))
	assert.Empty(t, stderr.String())
}

func TestLogFormat(t *testing.T) {
	newCmd := func(stderr *bytes.Buffer) *cobra.Command {
		env := &Env{Stderr: stderr}
		return NewCommand("test", "test", cobra.NoArgs, env, func(ctx context.Context, env *Env, _ []string) error {
			env.Logger.WithPath("x.npy").WarnContext(ctx, "careful")
			return nil
		})
	}

	var stderr bytes.Buffer
	cmd := newCmd(&stderr)
	cmd.SetArgs([]string{"--log-format", "json"})
	require.NoError(t, Execute(context.Background(), cmd))
	assert.Contains(t, stderr.String(), `"msg":"careful"`)
	assert.Contains(t, stderr.String(), `"path":"x.npy"`)

	stderr.Reset()
	cmd = newCmd(&stderr)
	cmd.SetArgs([]string{"--log-format", "xml"})
	assert.Error(t, Execute(context.Background(), cmd))
	assert.Contains(t, stderr.String(), "invalid --log-format")
}
