// Command opticsplot prints an OPTICS reachability array and renders the
// dataset scatter plot and the reachability bar chart as PNG files.
//
// It reads optics_clustering_dataset.npy and
// optics_clustering_reachability.npy from the working directory.
package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/hupe1980/optics/chart"
	"github.com/hupe1980/optics/internal/cli"
	"github.com/hupe1980/optics/internal/fs"
	"github.com/hupe1980/optics/npy"
)

const (
	datasetFile      = "optics_clustering_dataset.npy"
	reachabilityFile = "optics_clustering_reachability.npy"
	datasetPlot      = "optics_clustering_dataset.png"
	reachabilityPlot = "optics_clustering_reachability.png"
)

func main() {
	cli.Main(newCommand(cli.DefaultEnv()))
}

func newCommand(env *cli.Env) *cobra.Command {
	return cli.NewCommand("opticsplot", "Plot an OPTICS dataset and its reachability", cobra.NoArgs, env, run)
}

func run(ctx context.Context, env *cli.Env, _ []string) error {
	dataset, err := npy.LoadMatrix(ctx, env.Store, datasetFile)
	if err != nil {
		return err
	}
	rows, cols := dataset.Dims()
	env.Logger.LogLoad(ctx, datasetFile, rows, cols, nil)

	reachability, err := npy.LoadVector(ctx, env.Store, reachabilityFile)
	if err != nil {
		return err
	}
	env.Logger.LogLoad(ctx, reachabilityFile, len(reachability), 1, nil)

	if rows != len(reachability) {
		env.Logger.WithPath(reachabilityFile).WithCount(len(reachability)).WarnContext(ctx, "reachability length differs from dataset rows", "rows", rows)
	}

	if err := chart.FormatValues(env.Stdout, reachability); err != nil {
		return err
	}

	scatter, err := chart.Scatter(dataset)
	if err != nil {
		return err
	}
	if err := savePNG(ctx, env, scatter, datasetPlot); err != nil {
		return err
	}

	bars, err := chart.Reachability(reachability)
	if err != nil {
		return err
	}
	return savePNG(ctx, env, bars, reachabilityPlot)
}

func savePNG(ctx context.Context, env *cli.Env, p *plot.Plot, name string) error {
	path := env.Path(name)
	err := fs.WriteAtomic(env.FS, path, 0o644, func(w io.Writer) error {
		return chart.Save(p, w, "png")
	})
	env.Logger.LogWrite(ctx, path, err)
	return err
}
