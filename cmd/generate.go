package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trustdealzz/sitegen/internal/config"
	"github.com/trustdealzz/sitegen/internal/content"
	"github.com/trustdealzz/sitegen/internal/logging"
	"github.com/trustdealzz/sitegen/internal/plan"
	"github.com/trustdealzz/sitegen/internal/render"
	"github.com/trustdealzz/sitegen/internal/site"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full static site",
	Long: `Generate every article page plus the aggregate pages (home, hubs, tags,
archives, feeds, sitemaps). The complete page plan is built in memory first,
so all cross-page links resolve by the end of the run.

A checkpoint is written every batch of ids; re-running resumes where the
previous run stopped.

Examples:
  sitegen generate                          # Generate with config defaults
  sitegen generate --total 2000 --batch 500
  sitegen generate --output ./public --seed 42`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("total", "t", 0, "Number of article ids per language")
	generateCmd.Flags().IntP("batch", "b", 0, "Checkpoint batch size")
	generateCmd.Flags().StringP("output", "o", "", "Output root directory")
	generateCmd.Flags().String("base-url", "", "Absolute base URL of the site")
	generateCmd.Flags().Int64("seed", 0, "Random seed (0 = time-seeded)")
	generateCmd.Flags().Int("internal", 0, "Internal links per page")
	generateCmd.Flags().Int("ext-min", 0, "Minimum external links per page")
	generateCmd.Flags().Int("ext-max", 0, "Maximum external links per page")

	bindFlags(generateCmd.Flags(), map[string]string{
		"generate.total":          "total",
		"generate.batch":          "batch",
		"generate.seed":           "seed",
		"output.root":             "output",
		"site.base_url":           "base-url",
		"links.internal_per_page": "internal",
		"links.external_min":      "ext-min",
		"links.external_max":      "ext-max",
	})
}

// bindFlags binds each config key to its command-line flag so flags win over
// file and environment values.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		viper.BindPFlag(key, flags.Lookup(name))
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger()
	start := time.Now()

	rng, seed := newRand(cfg.Generate.Seed)
	logger.Info(ctx, "starting generation",
		"total", cfg.Generate.Total,
		"languages", cfg.Site.Languages,
		"output", cfg.Output.Root,
		"seed", seed)

	sitePlan, banks, err := buildPlan(cfg, rng)
	if err != nil {
		return err
	}

	emitter, err := newEmitter(cfg, sitePlan, banks, logger, rng)
	if err != nil {
		return err
	}
	if err := emitter.Run(ctx); err != nil {
		return err
	}

	if emitter.Collector().HasErrors() {
		for _, pageErr := range emitter.Collector().PageErrors() {
			fmt.Fprintf(os.Stderr, "page error: %v\n", &pageErr)
		}
		return fmt.Errorf("generation finished with %d page errors", emitter.Collector().Count())
	}

	logger.Info(ctx, "done", "duration", time.Since(start).String())
	return nil
}

// buildPlan loads the data banks per config and builds the complete site
// plan. Any error here is fatal: no partial plan is ever emitted.
func buildPlan(cfg *config.Config, rng *rand.Rand) (*plan.Plan, *content.Banks, error) {
	banks := content.DefaultBanks()
	if cfg.Data.KeywordsFile != "" {
		if err := banks.LoadKeywordFile(cfg.Data.KeywordsFile, rng); err != nil {
			return nil, nil, err
		}
	}
	if cfg.Data.BanksFile != "" {
		if err := banks.LoadBankFile(cfg.Data.BanksFile); err != nil {
			return nil, nil, err
		}
	}

	sitePlan, err := plan.Build(plan.Config{
		Total:     cfg.Generate.Total,
		BaseURL:   cfg.Site.BaseURL,
		Languages: cfg.Site.Languages,
	}, banks, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build site plan: %w", err)
	}
	return sitePlan, banks, nil
}

func newEmitter(cfg *config.Config, sitePlan *plan.Plan, banks *content.Banks, logger logging.Logger, rng *rand.Rand) (*site.Emitter, error) {
	ui, err := content.NewUI()
	if err != nil {
		return nil, fmt.Errorf("failed to build UI strings: %w", err)
	}
	renderer := render.New(banks, ui, cfg.Site.BaseURL, cfg.Output.Minify)
	return site.New(cfg, sitePlan, banks, renderer, logger, rng), nil
}

func newLogger() logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(viper.GetString("log-level")),
		Format: "text",
		Output: os.Stdout,
	})
}

func newRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
