package site

import (
	"context"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustdealzz/sitegen/internal/config"
	"github.com/trustdealzz/sitegen/internal/content"
	"github.com/trustdealzz/sitegen/internal/logging"
	"github.com/trustdealzz/sitegen/internal/plan"
	"github.com/trustdealzz/sitegen/internal/render"
)

func testEmitter(t *testing.T, total int, compress bool) (*Emitter, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		Site: config.SiteConfig{
			BaseURL:   "https://example.com",
			Languages: []string{"ar", "en", "fr"},
		},
		Generate: config.GenerateConfig{Total: total, Batch: 1},
		Links:    config.LinksConfig{InternalPerPage: 4, ExternalMin: 1, ExternalMax: 3},
		Output:   config.OutputConfig{Root: t.TempDir(), Compress: compress, Minify: true},
	}

	rng := rand.New(rand.NewSource(7))
	banks := content.DefaultBanks()
	sitePlan, err := plan.Build(plan.Config{
		Total:     cfg.Generate.Total,
		BaseURL:   cfg.Site.BaseURL,
		Languages: cfg.Site.Languages,
	}, banks, rng)
	require.NoError(t, err)

	ui, err := content.NewUI()
	require.NoError(t, err)
	renderer := render.New(banks, ui, cfg.Site.BaseURL, cfg.Output.Minify)
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelError, Format: "text", Output: io.Discard})

	return New(cfg, sitePlan, banks, renderer, logger, rng), cfg
}

func TestEmitterRunWritesEverything(t *testing.T) {
	emitter, cfg := testEmitter(t, 2, true)
	require.NoError(t, emitter.Run(context.Background()))
	assert.False(t, emitter.Collector().HasErrors())

	root := cfg.Output.Root

	// Every planned article page exists, with its gzip sibling.
	for _, lang := range emitter.plan.Languages() {
		for id := 1; id <= 2; id++ {
			rec := emitter.plan.Record(lang, id)
			assert.FileExists(t, filepath.Join(root, rec.Path))
			assert.FileExists(t, filepath.Join(root, rec.Path+".gz"))
		}
	}

	// Shared output.
	assert.FileExists(t, filepath.Join(root, "robots.txt"))
	assert.FileExists(t, filepath.Join(root, "humans.txt"))
	assert.FileExists(t, filepath.Join(root, "index.html"))
	assert.FileExists(t, filepath.Join(root, "404.html"))
	assert.FileExists(t, filepath.Join(root, "privacy.html"))
	assert.FileExists(t, filepath.Join(root, "archive", "index.html"))
	assert.FileExists(t, filepath.Join(root, "sitemaps", "sitemap_index.xml"))
	assert.FileExists(t, filepath.Join(root, "sitemaps", "sitemap-001.xml"))
	assert.FileExists(t, filepath.Join(root, checkpointFile))

	for _, theme := range content.Themes {
		assert.FileExists(t, filepath.Join(root, "assets", "style-"+theme+".css"))
	}

	for _, lang := range []string{"ar", "en", "fr"} {
		assert.FileExists(t, filepath.Join(root, lang, "index.html"))
		assert.FileExists(t, filepath.Join(root, "rss", lang+".xml"))
	}
	assert.FileExists(t, filepath.Join(root, "rss", "index.xml"))
}

func TestEmitterRunSitemapCoversAllArticles(t *testing.T) {
	emitter, cfg := testEmitter(t, 3, false)
	require.NoError(t, emitter.Run(context.Background()))

	data, err := os.ReadFile(filepath.Join(cfg.Output.Root, "sitemaps", "sitemap-001.xml"))
	require.NoError(t, err)
	for _, u := range emitter.plan.URLs() {
		assert.Contains(t, string(data), "<loc>"+u+"</loc>")
	}
}

func TestEmitterRunRobotsPointsAtSitemapIndex(t *testing.T) {
	emitter, cfg := testEmitter(t, 1, false)
	require.NoError(t, emitter.Run(context.Background()))

	data, err := os.ReadFile(filepath.Join(cfg.Output.Root, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sitemap: https://example.com/sitemaps/sitemap_index.xml")
}

func TestEmitterRunFinalCheckpoint(t *testing.T) {
	emitter, cfg := testEmitter(t, 3, false)
	require.NoError(t, emitter.Run(context.Background()))

	cp, err := LoadCheckpoint(cfg.Output.Root)
	require.NoError(t, err)
	assert.Equal(t, 3, cp.LastIndex)
}

func TestEmitterRunResumesFromCheckpoint(t *testing.T) {
	emitter, cfg := testEmitter(t, 3, false)
	root := cfg.Output.Root

	// Pretend a previous run already emitted ids 1 and 2.
	cp := NewCheckpoint()
	cp.LastIndex = 2
	require.NoError(t, cp.Save(root))

	require.NoError(t, emitter.Run(context.Background()))

	// Only id 3 article pages were written; ids 1 and 2 were skipped.
	for _, lang := range emitter.plan.Languages() {
		assert.NoFileExists(t, filepath.Join(root, emitter.plan.Record(lang, 1).Path))
		assert.NoFileExists(t, filepath.Join(root, emitter.plan.Record(lang, 2).Path))
		assert.FileExists(t, filepath.Join(root, emitter.plan.Record(lang, 3).Path))
	}
}

func TestEmitterRunCancelled(t *testing.T) {
	emitter, cfg := testEmitter(t, 5, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emitter.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(cfg.Output.Root, "index.html"))
}

func TestEmitterArticlePagesLinkWithinPlan(t *testing.T) {
	emitter, cfg := testEmitter(t, 2, false)
	require.NoError(t, emitter.Run(context.Background()))

	// The en/1 page must carry a hreflang alternate for every language.
	rec := emitter.plan.Record("en", 1)
	data, err := os.ReadFile(filepath.Join(cfg.Output.Root, rec.Path))
	require.NoError(t, err)
	page := string(data)
	assert.Equal(t, 3, strings.Count(page, "rel=\"alternate\" hreflang="))
	assert.Contains(t, page, "<link rel=\"canonical\" href=\""+rec.URL+"\">")
}
