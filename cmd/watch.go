package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/trustdealzz/sitegen/internal/config"
	"github.com/trustdealzz/sitegen/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch data bank files and regenerate on changes",
	Long: `Watch the configured keyword and bank files and rerun generation whenever
one of them changes. Useful while tuning keyword lists and category tables.

Examples:
  sitegen watch
  sitegen watch --verbose`,
	RunE: runWatch,
}

var watchVerbose bool

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "Verbose output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	paths := watchPaths(cfg)
	if len(paths) == 0 {
		return fmt.Errorf("nothing to watch: configure data.keywords_file or data.banks_file")
	}

	fileWatcher, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fileWatcher.Stop()

	fileWatcher.AddFilter(func(path string) bool {
		for _, p := range paths {
			if strings.HasSuffix(path, p) || path == p {
				return true
			}
		}
		return false
	})

	fileWatcher.AddHandler(func(events []watcher.ChangeEvent) error {
		if watchVerbose {
			for _, event := range events {
				fmt.Printf("changed (%s): %s\n", event.Op, event.Path)
			}
		} else {
			fmt.Printf("%d file(s) changed, regenerating...\n", len(events))
		}
		if err := runGenerate(cmd, nil); err != nil {
			fmt.Fprintf(os.Stderr, "regeneration failed: %v\n", err)
		}
		return nil
	})

	for _, p := range paths {
		if err := fileWatcher.AddPath(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %d file(s). Press Ctrl+C to stop.\n", len(paths))
	fileWatcher.Start(ctx)
	return nil
}

func watchPaths(cfg *config.Config) []string {
	var paths []string
	if cfg.Data.KeywordsFile != "" {
		paths = append(paths, cfg.Data.KeywordsFile)
	}
	if cfg.Data.BanksFile != "" {
		paths = append(paths, cfg.Data.BanksFile)
	}
	return paths
}
