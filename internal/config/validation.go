package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// supportedLanguages mirrors the closed language set carried by the content
// banks. Kept here so config validation does not depend on the banks.
var supportedLanguages = map[string]bool{"ar": true, "en": true, "fr": true}

// validateConfig validates configuration values for correctness and basic
// path safety.
func validateConfig(config *Config) error {
	if err := validateSiteConfig(&config.Site); err != nil {
		return fmt.Errorf("site config: %w", err)
	}
	if err := validateGenerateConfig(&config.Generate); err != nil {
		return fmt.Errorf("generate config: %w", err)
	}
	if err := validateLinksConfig(&config.Links); err != nil {
		return fmt.Errorf("links config: %w", err)
	}
	if err := validateOutputConfig(&config.Output); err != nil {
		return fmt.Errorf("output config: %w", err)
	}
	return nil
}

func validateSiteConfig(config *SiteConfig) error {
	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be http or https, got %q", config.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url has no host: %q", config.BaseURL)
	}

	if len(config.Languages) == 0 {
		return fmt.Errorf("languages must not be empty")
	}
	seen := make(map[string]bool, len(config.Languages))
	for _, lang := range config.Languages {
		if !supportedLanguages[lang] {
			return fmt.Errorf("unsupported language %q", lang)
		}
		if seen[lang] {
			return fmt.Errorf("duplicate language %q", lang)
		}
		seen[lang] = true
	}
	return nil
}

func validateGenerateConfig(config *GenerateConfig) error {
	if config.Total <= 0 {
		return fmt.Errorf("total must be positive, got %d", config.Total)
	}
	if config.Batch <= 0 {
		return fmt.Errorf("batch must be positive, got %d", config.Batch)
	}
	return nil
}

func validateLinksConfig(config *LinksConfig) error {
	if config.InternalPerPage < 0 {
		return fmt.Errorf("internal_per_page must not be negative, got %d", config.InternalPerPage)
	}
	if config.ExternalMin < 0 {
		return fmt.Errorf("external_min must not be negative, got %d", config.ExternalMin)
	}
	if config.ExternalMax < config.ExternalMin {
		return fmt.Errorf("external_max %d is below external_min %d", config.ExternalMax, config.ExternalMin)
	}
	return nil
}

func validateOutputConfig(config *OutputConfig) error {
	if strings.TrimSpace(config.Root) == "" {
		return fmt.Errorf("root must not be empty")
	}
	cleanPath := filepath.Clean(config.Root)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("root contains path traversal: %s", config.Root)
	}
	return nil
}
