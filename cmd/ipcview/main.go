// Command ipcview prints the schema and rows of an Arrow IPC file.
//
//	ipcview data.arrow
//	ipcview s3://bucket/data.arrow.zst
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hupe1980/optics/internal/cli"
	"github.com/hupe1980/optics/ipcview"
)

func main() {
	cli.Main(newCommand(cli.DefaultEnv()))
}

func newCommand(env *cli.Env) *cobra.Command {
	return cli.NewCommand("ipcview <path>", "Print an Arrow IPC file as a table", cobra.ExactArgs(1), env, run)
}

func run(ctx context.Context, env *cli.Env, args []string) error {
	return ipcview.View(ctx, env.Store, args[0], env.Stdout)
}
