// Package config provides configuration management for sitegen using Viper
// for flexible loading from files, environment variables and command-line
// flags.
//
// The configuration system supports YAML files, environment variable
// overrides with SITEGEN_ prefix, defaults and validation. It covers the
// site identity (base URL, languages), generation volume, link sampling
// bounds, output handling and data bank sources.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Generate GenerateConfig `yaml:"generate"`
	Links    LinksConfig    `yaml:"links"`
	Output   OutputConfig   `yaml:"output"`
	Data     DataConfig     `yaml:"data"`
}

type SiteConfig struct {
	BaseURL   string   `yaml:"base_url" mapstructure:"base_url"`
	Languages []string `yaml:"languages" mapstructure:"languages"`
}

type GenerateConfig struct {
	Total int   `yaml:"total" mapstructure:"total"`
	Batch int   `yaml:"batch" mapstructure:"batch"`
	Seed  int64 `yaml:"seed" mapstructure:"seed"` // 0 means time-seeded
}

type LinksConfig struct {
	InternalPerPage int `yaml:"internal_per_page" mapstructure:"internal_per_page"`
	ExternalMin     int `yaml:"external_min" mapstructure:"external_min"`
	ExternalMax     int `yaml:"external_max" mapstructure:"external_max"`
}

type OutputConfig struct {
	Root     string `yaml:"root" mapstructure:"root"`
	Compress bool   `yaml:"compress" mapstructure:"compress"`
	Minify   bool   `yaml:"minify" mapstructure:"minify"`
}

type DataConfig struct {
	KeywordsFile string `yaml:"keywords_file" mapstructure:"keywords_file"`
	BanksFile    string `yaml:"banks_file" mapstructure:"banks_file"`
}

// Load unmarshals the viper state into a Config, applies defaults and
// validates the result. Configuration errors are fatal: nothing downstream
// runs with a partially valid config.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Site.BaseURL == "" {
		config.Site.BaseURL = "https://lyrics.trustdealzz.com"
	}
	if len(config.Site.Languages) == 0 {
		config.Site.Languages = []string{"ar", "en", "fr"}
	}
	if config.Generate.Total == 0 {
		config.Generate.Total = 1000
	}
	if config.Generate.Batch == 0 {
		config.Generate.Batch = 1000
	}
	if config.Links.InternalPerPage == 0 && !viper.IsSet("links.internal_per_page") {
		config.Links.InternalPerPage = 120
	}
	if config.Links.ExternalMin == 0 && !viper.IsSet("links.external_min") {
		config.Links.ExternalMin = 120
	}
	if config.Links.ExternalMax == 0 && !viper.IsSet("links.external_max") {
		config.Links.ExternalMax = 220
	}
	if config.Output.Root == "" {
		config.Output.Root = "./public"
	}
	if !viper.IsSet("output.compress") {
		config.Output.Compress = true
	}
	if !viper.IsSet("output.minify") {
		config.Output.Minify = true
	}
}
