package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"goscore/adapters/excel"
	"goscore/adapters/methods"
	"goscore/app"
	"goscore/internal"
	"goscore/internal/config"
	"goscore/internal/profiling"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("[CLI] No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "goscore",
		Short: "Score tabular data with chained analysis methods",
		Long: `goscore turns dataset columns into per-row scores.

Each preset is a chain of analysis methods (bell curve, conditional flag,
one-sided distance, zero-to-one, distribution density, significance flag)
joined by arithmetic operators. The result is appended to the dataset as a
new column.

Configuration is read from the environment (or a .env file):
- GOSCORE_DATA_FILE, GOSCORE_SUMMARY_FILE, GOSCORE_OUTPUT_FILE
- GOSCORE_SHEET (default: Sheet1)
- GOSCORE_WORKERS (default: 4)
- GOSCORE_DERIVE_AGGREGATES (default: true)
- GOSCORE_NUMERIC_THRESHOLD, GOSCORE_BOOLEAN_THRESHOLD
- GOSCORE_LOG_LEVEL (default: INFO)
Flags override the environment.`,
		SilenceUsage: true,
	}

	opts := &options{}
	rootCmd.PersistentFlags().StringVar(&opts.dataFile, "data", "", "Dataset file (.csv or .xlsx)")
	rootCmd.PersistentFlags().StringVar(&opts.summaryFile, "summary", "", "Column summary file (.csv or .xlsx)")
	rootCmd.PersistentFlags().StringVar(&opts.sheet, "sheet", "", "Worksheet name for .xlsx files")
	rootCmd.PersistentFlags().IntVar(&opts.workers, "workers", 0, "Presets evaluated concurrently")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "ERROR, WARN, INFO, DEBUG or TRACE")

	rootCmd.AddCommand(
		newMethodsCmd(),
		newValidateCmd(opts),
		newScoreCmd(opts),
		newFilterCmd(opts),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options holds the flags shared by every data command
type options struct {
	dataFile    string
	summaryFile string
	outputFile  string
	sheet       string
	workers     int
	logLevel    string
}

// loadConfig reads the environment and applies flag overrides
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.dataFile != "" {
		cfg.Data.DataFile = opts.dataFile
	}
	if opts.summaryFile != "" {
		cfg.Data.SummaryFile = opts.summaryFile
	}
	if opts.outputFile != "" {
		cfg.Data.OutputFile = opts.outputFile
	}
	if opts.sheet != "" {
		cfg.Data.Sheet = opts.sheet
	}
	if opts.workers != 0 {
		cfg.Runtime.Workers = opts.workers
	}
	if opts.logLevel != "" {
		cfg.Runtime.LogLevel = strings.ToUpper(opts.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	internal.DefaultLogger.SetLevel(internal.ParseLogLevel(cfg.Runtime.LogLevel))
	if cfg.Data.DataFile == "" {
		return nil, fmt.Errorf("no dataset given: set --data or GOSCORE_DATA_FILE")
	}
	return cfg, nil
}

func newService(cfg *config.Config) *app.ScoringService {
	store := excel.NewStore(excel.Config{Sheet: cfg.Data.Sheet})
	profiler := profiling.NewColumnProfiler(profiling.InferenceConfig{
		NumericThreshold: cfg.Profiling.NumericThreshold,
		BooleanThreshold: cfg.Profiling.BooleanThreshold,
	}, cfg.Profiling.DeriveAggregates)
	return app.NewScoringService(store, store, profiler, cfg.Runtime.Workers)
}

func loadRequest(cfg *config.Config) app.LoadRequest {
	return app.LoadRequest{DataFile: cfg.Data.DataFile, SummaryFile: cfg.Data.SummaryFile}
}

func newMethodsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List the available analysis methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := methods.All()
			if asJSON {
				return printJSON(infos)
			}
			for _, info := range infos {
				fmt.Printf("%-22s %s\n", info.ID, info.Name)
				fmt.Printf("%-22s %s\n", "", info.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the registry as JSON")
	return cmd
}

func newValidateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [preset-file]",
		Short: "Check presets against a dataset without scoring",
		Long: `Load a dataset, resolve every preset's columns against it, repair configs
that no longer fit their column and validate the result.

Example: goscore validate presets.json --data listings.csv --summary columns.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runValidate(cmd.Context(), newService(cfg), loadRequest(cfg), args[0])
		},
	}
	return cmd
}

func runValidate(ctx context.Context, service *app.ScoringService, load app.LoadRequest, presetFile string) error {
	table, err := service.LoadTable(ctx, load)
	if err != nil {
		return err
	}
	presets, err := service.LoadPresets(presetFile, table)
	if err != nil {
		return err
	}

	failed := 0
	for _, preset := range presets {
		if _, err := service.PreparePreset(preset); err != nil {
			failed++
			fmt.Printf("❌ %s (%s): %v\n", preset.Name, preset.ID, err)
			continue
		}
		fmt.Printf("✅ %s (%s): %d steps -> %s\n", preset.Name, preset.ID, len(preset.Chain.Steps), preset.OutputColumn())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d presets are invalid", failed, len(presets))
	}
	return nil
}

func newScoreCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "score [preset-file]",
		Short: "Evaluate presets and write the scored dataset",
		Long: `Evaluate every preset in the file against the dataset and append one
column per preset. The output format follows the output file extension.

Example: goscore score presets.json --data listings.xlsx --output scored.xlsx --workers 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if cfg.Data.OutputFile == "" {
				return fmt.Errorf("no output file given: set --output or GOSCORE_OUTPUT_FILE")
			}

			runs, err := newService(cfg).Score(cmd.Context(), app.ScoreRequest{
				LoadRequest: loadRequest(cfg),
				PresetFile:  args[0],
				OutputFile:  cfg.Data.OutputFile,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(runs)
			}
			for _, run := range runs {
				warnings := 0
				for _, d := range run.Result.Diagnostics {
					warnings += len(d.Warnings)
				}
				fmt.Printf("📊 %s -> %s (run %s, %d warnings, %v)\n",
					run.Preset.Name, run.Preset.OutputColumn(), run.RunID, warnings, run.Duration)
			}
			fmt.Printf("💾 Scored dataset saved to: %s\n", cfg.Data.OutputFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file (.csv or .xlsx)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print run results and diagnostics as JSON")
	return cmd
}

func newFilterCmd(opts *options) *cobra.Command {
	var where []string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Keep the rows matching every filter",
		Long: `Apply typed filters to a dataset and write the rows that pass all of them.

Filters are column:operator:value, or column:range:min:max for ranges.
Numeric columns take range, greaterThan and lessThan; text columns take
contains and equals; boolean columns take equals.

Example: goscore filter --data listings.csv --where price:range:100:250 --where city:contains:port --output subset.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if cfg.Data.OutputFile == "" {
				return fmt.Errorf("no output file given: set --output or GOSCORE_OUTPUT_FILE")
			}

			filtered, err := newService(cfg).Filter(cmd.Context(), loadRequest(cfg), where, cfg.Data.OutputFile)
			if err != nil {
				return err
			}
			fmt.Printf("💾 %d rows saved to: %s\n", len(filtered.Rows), cfg.Data.OutputFile)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&where, "where", nil, "Filter expression (repeatable)")
	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file (.csv or .xlsx)")
	return cmd
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
