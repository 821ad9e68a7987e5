// Package commands defines the CLI command structure and flag bindings.
//
// Commands parse arguments and merge flags, environment and an optional
// config file through viper. Execution is delegated to the handlers package.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuits/cmd/circuits/handlers"
	"github.com/katalvlaran/circuits/config"
)

// handlerFunc is the shape shared by every walk handler.
type handlerFunc func(ctx context.Context, cfg config.Config, input string, streams handlers.IO) error

// Root returns the root command for the circuits CLI.
func Root() *cobra.Command {
	v := config.NewViper()
	var configPath string

	cmd := &cobra.Command{
		Use:           "circuits",
		Short:         "Connect 3D junction boxes shortest edge first and report on the clusters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: ./circuits.yaml if present)")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")
	pf.Int("workers", 1, "Edge generation workers (0 = GOMAXPROCS)")
	pf.Bool("json", false, "Output in JSON format")
	pf.String("metrics-file", "", "Write Prometheus metrics to this file after the run")

	// Errors are impossible here: the flags were defined just above.
	_ = v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyWorkers, pf.Lookup("workers"))
	_ = v.BindPFlag(config.KeyJSON, pf.Lookup("json"))
	_ = v.BindPFlag(config.KeyMetricsFile, pf.Lookup("metrics-file"))

	load := func(c *cobra.Command) (config.Config, error) {
		if f := c.Flags().Lookup("edges"); f != nil {
			if err := v.BindPFlag(config.KeyEdges, f); err != nil {
				return config.Config{}, err
			}
		}

		return config.Load(v, configPath)
	}

	// Walk commands
	cmd.AddCommand(Bounded(load))
	cmd.AddCommand(Span(load))
	cmd.AddCommand(Solve(load))
	cmd.AddCommand(Tree(load))

	// Utility commands
	cmd.AddCommand(Version())

	return cmd
}

// loader merges flags, environment and file into a validated config.
type loader func(cmd *cobra.Command) (config.Config, error)

// run loads the config and invokes h with the command's streams.
func run(cmd *cobra.Command, args []string, load loader, h handlerFunc) error {
	cfg, err := load(cmd)
	if err != nil {
		return err
	}
	input := handlers.StdinName
	if len(args) > 0 {
		input = args[0]
	}

	return h(cmd.Context(), cfg, input, handlers.IO{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
}

// inputArgs accepts an optional input path; "-" or none means stdin.
var inputArgs = cobra.MaximumNArgs(1)
