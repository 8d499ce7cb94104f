// Package cmd provides the command-line interface for sitegen with
// configuration management supporting multiple configuration sources.
//
// Configuration precedence (highest to lowest):
//  1. Command-line flags (--total, --output, etc.)
//  2. SITEGEN_CONFIG_FILE environment variable - custom config file path
//  3. Individual environment variables (SITEGEN_GENERATE_TOTAL, etc.)
//  4. Configuration file (.sitegen.yml)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "Multi-language bulk static site generator with SEO features",
	Long: `Sitegen generates a large, internally-linked multi-language static site:
thousands of article pages per language with hub, tag and archive pages,
RSS feeds, robots.txt and chunked sitemaps.

All page metadata is planned up front, so previous/next links, hreflang
alternates and hub links always resolve to a page that exists on disk.

Quick Start:
  sitegen generate                Generate the full site
  sitegen plan                    Inspect the page plan without writing files
  sitegen watch                   Regenerate when data bank files change`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .sitegen.yml, can also use SITEGEN_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfig := os.Getenv("SITEGEN_CONFIG_FILE"); envConfig != "" {
		viper.SetConfigFile(envConfig)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".sitegen")
		viper.SetConfigType("yml")
	}

	viper.SetEnvPrefix("SITEGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file: %v\n", err)
		}
	}
}
