package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/trustdealzz/sitegen/internal/config"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build and inspect the page plan without writing any files",
	Long: `Build the complete page plan in memory and print a summary: record counts
per language, category distribution and sample URLs. Useful for verifying
configuration and data banks before committing to a large generation run.

Examples:
  sitegen plan
  sitegen plan --total 50`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().IntP("total", "t", 0, "Number of article ids per language (overrides config)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if total, _ := cmd.Flags().GetInt("total"); total > 0 {
		cfg.Generate.Total = total
	}

	rng, seed := newRand(cfg.Generate.Seed)
	sitePlan, _, err := buildPlan(cfg, rng)
	if err != nil {
		return err
	}

	fmt.Printf("Plan built: %d ids x %d languages = %d records (seed %d)\n",
		sitePlan.Total(), len(sitePlan.Languages()), sitePlan.Total()*len(sitePlan.Languages()), seed)

	for _, lang := range sitePlan.Languages() {
		records := sitePlan.ByLang(lang)
		fmt.Printf("\n[%s] %d records\n", lang, len(records))

		keys := sitePlan.Categories(lang)
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].Category != keys[j].Category {
				return keys[i].Category < keys[j].Category
			}
			return keys[i].Subcategory < keys[j].Subcategory
		})
		for _, key := range keys {
			fmt.Printf("  %s/%s: %d\n", key.Category, key.Subcategory, len(sitePlan.ByCategory(lang, key)))
		}

		fmt.Printf("  first: %s\n", sitePlan.Record(lang, 1).URL)
		fmt.Printf("  last:  %s\n", sitePlan.Record(lang, sitePlan.Total()).URL)
	}

	urls := sitePlan.URLs()
	chunks := (len(urls) + 49999) / 50000
	fmt.Printf("\nSitemap: %d URLs across %d chunk file(s)\n", len(urls), chunks)
	return nil
}
