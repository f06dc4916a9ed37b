// Command imputelab runs the imputation benchmark end to end: load or
// generate a dataset, sweep every imputer over the configured missingness
// grid, print the score table, and write the CSV and plots.
//
// Usage:
//
//	imputelab run                                   # synthetic 1000×10 sweep
//	imputelab run --dataset iris --scale            # named public dataset
//	imputelab run --dataset data.csv --out results  # local file
//	imputelab run --config bench.yaml --workers 4   # YAML config + parallel
//	imputelab datasets                              # list known names
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/imputelab/bench"
	"github.com/katalvlaran/imputelab/dataset"
	"github.com/katalvlaran/imputelab/impute"
	"github.com/katalvlaran/imputelab/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "imputelab:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "imputelab",
		Short:        "Benchmark missing-data imputation methods on tabular numeric data",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newDatasetsCmd())
	return root
}

func newDatasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the named public datasets available to --dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range dataset.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		flagsCfg   = defaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full benchmark sweep and write table, CSV and plots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			overlayFlags(cmd, &cfg, flagsCfg)

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return run(cmd.Context(), cfg, logger, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().StringVar(&flagsCfg.Dataset, "dataset", flagsCfg.Dataset, "registry name, CSV/TSV path, or \"synthetic\"")
	cmd.Flags().BoolVar(&flagsCfg.Scale, "scale", flagsCfg.Scale, "standardize columns before benchmarking")
	cmd.Flags().Float64SliceVar(&flagsCfg.Fractions, "fractions", flagsCfg.Fractions, "missingness fractions in (0,1)")
	cmd.Flags().StringSliceVar(&flagsCfg.Mechanisms, "mechanisms", nil, "mechanisms to sweep (MCAR, MAR, MNAR; default all)")
	cmd.Flags().IntVar(&flagsCfg.Repetitions, "nbsim", flagsCfg.Repetitions, "amputation draws per cell")
	cmd.Flags().Int64Var(&flagsCfg.Seed, "seed", flagsCfg.Seed, "base RNG seed (0 = fixed default)")
	cmd.Flags().IntVar(&flagsCfg.Workers, "workers", flagsCfg.Workers, "parallel cell executors (<=1 sequential)")
	cmd.Flags().StringVar(&flagsCfg.Out, "out", flagsCfg.Out, "output directory for CSV and plots")
	return cmd
}

// overlayFlags copies explicitly set flag values over the file config, so
// precedence is flags > file > defaults.
func overlayFlags(cmd *cobra.Command, cfg *config, flags config) {
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset = flags.Dataset
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = flags.Scale
	}
	if cmd.Flags().Changed("fractions") {
		cfg.Fractions = flags.Fractions
	}
	if cmd.Flags().Changed("mechanisms") {
		cfg.Mechanisms = flags.Mechanisms
	}
	if cmd.Flags().Changed("nbsim") {
		cfg.Repetitions = flags.Repetitions
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flags.Workers
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = flags.Out
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger, stdout io.Writer) error {
	X, err := loadMatrix(ctx, cfg, logger)
	if err != nil {
		return err
	}
	r, c := X.Dims()
	logger.Info("dataset ready", "rows", r, "cols", c, "scaled", cfg.Scale)

	imputers := []impute.Imputer{
		impute.NewMean(),
		impute.NewSoftImpute(&impute.SoftImputeOptions{Seed: cfg.Seed, Tol: 1e-4, MaxIter: 100, CVRounds: 3, CVFraction: 0.1}),
		impute.NewMICE(&impute.MICEOptions{M: 5, Sweeps: 10, Ridge: 1e-6, Seed: cfg.Seed}),
		impute.NewForest(&impute.ForestOptions{Trees: 50, MaxDepth: 10, MinLeaf: 5, MaxIter: 5, Seed: cfg.Seed}),
		impute.NewIterPCA(&impute.IterPCAOptions{Seed: cfg.Seed, Tol: 1e-4, MaxIter: 200, CVRounds: 3, CVFraction: 0.1}),
	}

	opts, err := cfg.benchOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger

	start := time.Now()
	res, err := bench.Run(X, imputers, &opts)
	if err != nil {
		return err
	}
	logger.Info("sweep finished", "cells", len(res.Cells()), "methods", len(res.Methods()), "elapsed", time.Since(start).Round(time.Millisecond))

	fmt.Fprintln(stdout, report.Table(res))
	for _, line := range report.Summary(res) {
		logger.Info(line)
	}

	if cfg.Out == "" {
		return nil
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	csvPath := filepath.Join(cfg.Out, "results.csv")
	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", csvPath, err)
	}
	defer f.Close()
	if err := report.WriteCSV(f, res); err != nil {
		return err
	}
	logger.Info("wrote table", "path", csvPath)

	plots, err := report.SavePlots(res, cfg.Out, nil)
	if err != nil {
		return err
	}
	for _, p := range plots {
		logger.Info("wrote plot", "path", p)
	}
	return nil
}

// loadMatrix resolves the dataset choice: synthetic draw, registry name, or
// local file path, optionally standardized.
func loadMatrix(ctx context.Context, cfg config, logger *slog.Logger) (*mat.Dense, error) {
	var (
		ds  *dataset.Dataset
		err error
	)
	switch {
	case cfg.Dataset == "synthetic":
		opts := dataset.DefaultSyntheticOptions()
		opts.Seed = uint64(cfg.Seed)
		ds, err = dataset.SyntheticNormal(cfg.Synthetic.Rows, cfg.Synthetic.Cols, &opts)
	case looksLikePath(cfg.Dataset):
		ds, err = dataset.FromFile(cfg.Dataset, nil)
	default:
		logger.Debug("downloading dataset", "name", cfg.Dataset)
		ds, err = dataset.Open(ctx, cfg.Dataset)
	}
	if err != nil {
		return nil, err
	}

	if !cfg.Scale {
		return ds.Matrix(), nil
	}
	scaled, _, err := ds.Standardized()
	if err != nil {
		return nil, err
	}
	return scaled.Matrix(), nil
}

// looksLikePath treats anything with a path separator or a table extension
// as a local file rather than a registry name.
func looksLikePath(s string) bool {
	if strings.ContainsRune(s, os.PathSeparator) {
		return true
	}
	switch strings.ToLower(filepath.Ext(s)) {
	case ".csv", ".tsv", ".tab":
		return true
	}
	return false
}
