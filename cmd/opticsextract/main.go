// Command opticsextract clusters optics_clustering_dataset.npy with OPTICS
// and writes one "cluster,lat,lon" row per point to optics_clusters.csv.
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hupe1980/optics"
	"github.com/hupe1980/optics/export"
	"github.com/hupe1980/optics/internal/cli"
	"github.com/hupe1980/optics/npy"
)

const (
	datasetFile  = "optics_clustering_dataset.npy"
	clustersFile = "optics_clusters.csv"
)

var params = optics.Params{
	MinSamples: 8,
	Method:     optics.MethodDBSCAN,
	Eps:        0.01,
	Xi:         0.01,
}

func main() {
	cli.Main(newCommand(cli.DefaultEnv()))
}

func newCommand(env *cli.Env) *cobra.Command {
	return cli.NewCommand("opticsextract", "Extract OPTICS clusters into a CSV table", cobra.NoArgs, env, run)
}

func run(ctx context.Context, env *cli.Env, _ []string) error {
	dataset, err := npy.LoadMatrix(ctx, env.Store, datasetFile)
	if err != nil {
		return err
	}
	if err := npy.RequireColumns(dataset, 2); err != nil {
		return err
	}
	rows, cols := dataset.Dims()
	env.Logger.LogLoad(ctx, datasetFile, rows, cols, nil)

	labels, _, err := optics.Cluster(ctx, dataset, params, optics.WithLogger(env.Logger))
	if err != nil {
		return err
	}

	path := env.Path(clustersFile)
	err = export.WriteClusters(env.FS, path, labels, dataset)
	env.Logger.LogWrite(ctx, path, err)
	if err != nil {
		return err
	}

	env.Logger.WithPath(path).WithCount(len(labels)).InfoContext(ctx, "clusters exported",
		"clusters", labels.NumClusters(),
		"noise", labels.NoiseCount(),
	)
	return nil
}
