package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL:   "https://lyrics.example.com",
			Languages: []string{"ar", "en", "fr"},
		},
		Generate: GenerateConfig{Total: 1000, Batch: 500},
		Links:    LinksConfig{InternalPerPage: 120, ExternalMin: 120, ExternalMax: 220},
		Output:   OutputConfig{Root: "./public"},
	}
}

func TestApplyDefaults(t *testing.T) {
	config := &Config{}
	applyDefaults(config)

	assert.NotEmpty(t, config.Site.BaseURL)
	assert.Equal(t, []string{"ar", "en", "fr"}, config.Site.Languages)
	assert.Equal(t, 1000, config.Generate.Total)
	assert.Equal(t, 1000, config.Generate.Batch)
	assert.Equal(t, 120, config.Links.InternalPerPage)
	assert.Equal(t, 120, config.Links.ExternalMin)
	assert.Equal(t, 220, config.Links.ExternalMax)
	assert.Equal(t, "./public", config.Output.Root)
	assert.True(t, config.Output.Compress)
	assert.True(t, config.Output.Minify)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	config := validTestConfig()
	config.Generate.Total = 42
	config.Output.Root = "/srv/www"
	applyDefaults(config)

	assert.Equal(t, 42, config.Generate.Total)
	assert.Equal(t, "/srv/www", config.Output.Root)
	assert.Equal(t, []string{"ar", "en", "fr"}, config.Site.Languages)
}

func TestValidateConfigValid(t *testing.T) {
	require.NoError(t, validateConfig(validTestConfig()))
}

func TestValidateConfigFailures(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"bad scheme", func(c *Config) { c.Site.BaseURL = "ftp://example.com" }, "http or https"},
		{"no host", func(c *Config) { c.Site.BaseURL = "https://" }, "no host"},
		{"no languages", func(c *Config) { c.Site.Languages = nil }, "languages"},
		{"unsupported language", func(c *Config) { c.Site.Languages = []string{"en", "de"} }, "unsupported language"},
		{"duplicate language", func(c *Config) { c.Site.Languages = []string{"en", "en"} }, "duplicate language"},
		{"zero total", func(c *Config) { c.Generate.Total = 0 }, "total must be positive"},
		{"negative total", func(c *Config) { c.Generate.Total = -5 }, "total must be positive"},
		{"zero batch", func(c *Config) { c.Generate.Batch = 0 }, "batch must be positive"},
		{"negative internal links", func(c *Config) { c.Links.InternalPerPage = -1 }, "internal_per_page"},
		{"negative external min", func(c *Config) { c.Links.ExternalMin = -1 }, "external_min"},
		{"inverted external bounds", func(c *Config) { c.Links.ExternalMin = 10; c.Links.ExternalMax = 5 }, "external_max"},
		{"empty output root", func(c *Config) { c.Output.Root = "  " }, "root must not be empty"},
		{"traversal output root", func(c *Config) { c.Output.Root = "../outside" }, "path traversal"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := validTestConfig()
			tc.mutate(config)

			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestValidateLinksZeroIsAllowed(t *testing.T) {
	config := validTestConfig()
	config.Links = LinksConfig{InternalPerPage: 0, ExternalMin: 0, ExternalMax: 0}
	assert.NoError(t, validateConfig(config))
}
