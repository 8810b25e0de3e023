// Command opticsgen writes an example OPTICS dataset and its reachability
// plot as optics_clustering_dataset.npy and
// optics_clustering_reachability.npy, the inputs of opticsplot.
//
// The dataset is four gaussian blobs of 100 points with unit deviation,
// ordered with min_samples 3 and max_eps 3.
package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/optics"
	"github.com/hupe1980/optics/internal/cli"
	"github.com/hupe1980/optics/internal/fs"
	"github.com/hupe1980/optics/npy"
	"github.com/hupe1980/optics/testutil"
)

const (
	datasetFile      = "optics_clustering_dataset.npy"
	reachabilityFile = "optics_clustering_reachability.npy"

	seed      = 42
	perCenter = 100
)

var centroids = [][]float64{
	{10, 10},
	{1, 12},
	{20, 30},
	{-20, 30},
}

func main() {
	cli.Main(newCommand(cli.DefaultEnv()))
}

func newCommand(env *cli.Env) *cobra.Command {
	return cli.NewCommand("opticsgen", "Generate an example OPTICS dataset and reachability", cobra.NoArgs, env, run)
}

func run(ctx context.Context, env *cli.Env, _ []string) error {
	dataset := testutil.NewRNG(seed).Blobs(centroids, perCenter, 1)

	a, err := optics.Fit(ctx, dataset,
		optics.WithMinSamples(3),
		optics.WithMaxEps(3),
		optics.WithLogger(env.Logger),
	)
	if err != nil {
		return err
	}

	path := env.Path(datasetFile)
	err = fs.WriteAtomic(env.FS, path, 0o644, func(w io.Writer) error {
		return npy.WriteMatrix(w, dataset)
	})
	env.Logger.LogWrite(ctx, path, err)
	if err != nil {
		return err
	}

	path = env.Path(reachabilityFile)
	err = fs.WriteAtomic(env.FS, path, 0o644, func(w io.Writer) error {
		return npy.WriteVector(w, a.ReachabilityPlot())
	})
	env.Logger.LogWrite(ctx, path, err)
	return err
}
