// Package cli holds the plumbing shared by the command-line tools.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/hupe1980/optics"
	"github.com/hupe1980/optics/blobstore"
	"github.com/hupe1980/optics/blobstore/s3"
	"github.com/hupe1980/optics/internal/fs"
)

// Env is the process environment a command runs in.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// Dir resolves relative input and output names. Empty means the
	// working directory.
	Dir string
	// Store opens inputs. Nil means local files plus lazily configured S3.
	Store  blobstore.BlobStore
	FS     fs.FileSystem
	Logger *optics.Logger
}

// DefaultEnv returns an Env bound to the process streams.
func DefaultEnv() *Env {
	return &Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Path resolves name against Dir.
func (e *Env) Path(name string) string {
	if e.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(e.Dir, name)
}

func (e *Env) init(verbose bool, logFormat string) {
	if e.Stdout == nil {
		e.Stdout = io.Discard
	}
	if e.Stderr == nil {
		e.Stderr = io.Discard
	}
	if e.FS == nil {
		e.FS = fs.Default
	}
	if e.Store == nil {
		mux := blobstore.NewMux(blobstore.NewLocalStore(e.Dir))
		mux.Handle("s3", &lazyS3{})
		e.Store = mux
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if logFormat == "json" {
		e.Logger = optics.NewJSONLogger(e.Stderr, level)
	} else {
		e.Logger = optics.NewTextLogger(e.Stderr, level)
	}
}

// RunFunc is the body of a command.
type RunFunc func(ctx context.Context, env *Env, args []string) error

// NewCommand builds a root command with the shared --verbose and
// --log-format flags.
func NewCommand(use, short string, args cobra.PositionalArgs, env *Env, run RunFunc) *cobra.Command {
	var (
		verbose   bool
		logFormat string
	)

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          args,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if logFormat != "text" && logFormat != "json" {
				return fmt.Errorf("invalid --log-format %q: want text or json", logFormat)
			}
			env.init(verbose, logFormat)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), env, args)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format on stderr: text or json")
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	return cmd
}

// Main executes cmd and exits the process with status 1 on error.
func Main(cmd *cobra.Command) {
	if err := Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

// Execute runs cmd and reports a failure on its error stream.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// lazyS3 defers loading the AWS configuration until an s3:// input is opened.
type lazyS3 struct {
	once  sync.Once
	store *s3.Store
	err   error
}

func (l *lazyS3) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	l.once.Do(func() {
		l.store, l.err = s3.New(ctx)
	})
	if l.err != nil {
		return nil, l.err
	}
	return l.store.Open(ctx, name)
}
