package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/internal/server"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
}

func main() {
	env := loadEnv()
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:          "leastcost",
		Short:        "Least-cost electrification planning for settlements",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", env.ConfigPath, "parameter file (YAML or TOML); built-in defaults when absent")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(runCmd(g, env))
	rootCmd.AddCommand(validateCmd(g))
	rootCmd.AddCommand(summaryCmd(g))
	rootCmd.AddCommand(configCmd(g))
	rootCmd.AddCommand(serveCmd(g, env))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd(g *globalFlags, env *environment) *cobra.Command {
	opts := runOptions{pgDSN: env.PostgresDSN}

	cmd := &cobra.Command{
		Use:   "run [settlements.geojson]",
		Short: "Estimate demand and select the least-cost technology for every settlement",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts.input = args[0]
			return withLogger(g, func(log *zap.Logger) error {
				return runPlan(g, opts, log)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `planned GeoJSON output ("-" for stdout)`)
	cmd.Flags().StringVar(&opts.csv, "csv", "", "planned CSV output")
	cmd.Flags().StringVar(&opts.pgDSN, "pg-dsn", opts.pgDSN, "PostgreSQL DSN to upsert results into")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", runtime.NumCPU(), "concurrent partitions")
	cmd.Flags().BoolVar(&opts.dropNullGeometry, "drop-null-geometry", false, "skip features without geometry instead of failing")
	cmd.Flags().StringVar(&opts.crs, "crs", "", "override the input CRS (EPSG name or proj4 string)")
	return cmd
}

func validateCmd(g *globalFlags) *cobra.Command {
	var crs string
	cmd := &cobra.Command{
		Use:   "validate [settlements.geojson]",
		Short: "Validate the parameters and a settlement collection without planning",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(g, args[0], crs)
		},
	}
	cmd.Flags().StringVar(&crs, "crs", "", "override the input CRS")
	return cmd
}

func summaryCmd(g *globalFlags) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "summary [settlements.geojson]",
		Short: "Plan a settlement collection and print the per-technology summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withLogger(g, func(log *zap.Logger) error {
				return runSummary(g, args[0], workers, log)
			})
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "concurrent partitions")
	return cmd
}

func configCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved parameter set as YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfig(g)
		},
	}
}

func serveCmd(g *globalFlags, env *environment) *cobra.Command {
	port := env.Port
	workers := runtime.NumCPU()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP planning API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			return withLogger(g, func(log *zap.Logger) error {
				return server.New(cfg, port, workers, log).Start()
			})
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", port, "HTTP server port")
	cmd.Flags().IntVarP(&workers, "workers", "w", workers, "concurrent partitions per request")
	return cmd
}
