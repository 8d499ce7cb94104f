package content

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustdealzz/sitegen/internal/plan"
)

func TestDefaultBanksCoverSupportedLanguages(t *testing.T) {
	banks := DefaultBanks()

	assert.NotEmpty(t, banks.Keywords())
	for _, lang := range SupportedLanguages {
		assert.NotEmpty(t, banks.Authors(lang), "authors for %s", lang)
		assert.NotEmpty(t, banks.Categories(lang), "categories for %s", lang)
		assert.NotEmpty(t, banks.Tags(lang), "tags for %s", lang)
		assert.NotEmpty(t, banks.Anchors(lang), "anchors for %s", lang)
	}
}

func TestDefaultBanksImplementPlanSource(t *testing.T) {
	var _ plan.Source = DefaultBanks()
}

func TestDirectionCoversSupportedLanguages(t *testing.T) {
	for _, lang := range SupportedLanguages {
		dir, ok := Direction[lang]
		require.True(t, ok, "direction for %s", lang)
		assert.Contains(t, []string{"ltr", "rtl"}, dir)
	}
	assert.Equal(t, "rtl", Direction["ar"])
}

func TestTitleContainsKeyword(t *testing.T) {
	banks := DefaultBanks()
	rng := rand.New(rand.NewSource(1))

	for _, lang := range SupportedLanguages {
		for trial := 0; trial < 20; trial++ {
			title := banks.Title(lang, "guitar chords", rng)
			assert.NotEmpty(t, title)
			lowered := strings.ToLower(title)
			assert.Contains(t, lowered, "guitar chords")
		}
	}
}

func TestDescriptionCapped(t *testing.T) {
	banks := DefaultBanks()

	long := strings.Repeat("keyword phrase ", 30)
	for _, lang := range SupportedLanguages {
		desc := banks.Description(lang, long)
		assert.NotEmpty(t, desc)
		assert.LessOrEqual(t, len([]rune(desc)), 160)
	}
}

func TestLoadKeywordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.txt")
	data := "first keyword\n\n  second keyword  \n\nthird keyword\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	banks := DefaultBanks()
	require.NoError(t, banks.LoadKeywordFile(path, rand.New(rand.NewSource(1))))

	keywords := banks.Keywords()
	assert.Len(t, keywords, 3)
	assert.ElementsMatch(t, []string{"first keyword", "second keyword", "third keyword"}, keywords)
}

func TestLoadKeywordFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n  \n\n"), 0o644))

	banks := DefaultBanks()
	err := banks.LoadKeywordFile(path, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestLoadKeywordFileMissing(t *testing.T) {
	banks := DefaultBanks()
	err := banks.LoadKeywordFile(filepath.Join(t.TempDir(), "nope.txt"), rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestLoadBankFileOverlays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks.yml")
	data := `
keywords:
  - custom keyword
authors:
  en: ["Jordan Blake"]
categories:
  en:
    - ["reviews", "gear"]
tags:
  en: ["custom-tag"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	banks := DefaultBanks()
	arAuthors := banks.Authors("ar")
	require.NoError(t, banks.LoadBankFile(path))

	assert.Equal(t, []string{"custom keyword"}, banks.Keywords())
	assert.Equal(t, []string{"Jordan Blake"}, banks.Authors("en"))
	assert.Equal(t, []plan.CategoryKey{{Category: "reviews", Subcategory: "gear"}}, banks.Categories("en"))
	assert.Equal(t, []string{"custom-tag"}, banks.Tags("en"))

	// Languages not named in the file keep their built-in pools.
	assert.Equal(t, arAuthors, banks.Authors("ar"))
	assert.NotEmpty(t, banks.Categories("fr"))
}

func TestLoadBankFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks.yml")
	require.NoError(t, os.WriteFile(path, []byte("keywords: [unclosed"), 0o644))

	banks := DefaultBanks()
	assert.Error(t, banks.LoadBankFile(path))
}

func TestExternalCatalogWellFormed(t *testing.T) {
	assert.GreaterOrEqual(t, len(ExternalCatalog), 40)
	seen := make(map[string]bool, len(ExternalCatalog))
	for _, u := range ExternalCatalog {
		assert.True(t, strings.HasPrefix(u, "https://"), "catalog entry %s", u)
		assert.False(t, seen[u], "duplicate catalog entry %s", u)
		seen[u] = true
	}
}
