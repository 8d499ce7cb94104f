package plan

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Source supplies the language-keyed data pools the builder draws from.
// Implementations must return the same pools for the lifetime of one Build
// call.
type Source interface {
	// Keywords returns the shared keyword pool. Must be non-empty.
	Keywords() []string
	// Authors returns the author pool for a language. Must be non-empty.
	Authors(lang string) []string
	// Categories returns the (category, subcategory) table for a language.
	// Must be non-empty.
	Categories(lang string) []CategoryKey
	// Tags returns the tag pool for a language. Must be non-empty.
	Tags(lang string) []string
	// Title derives a language-specific title for a keyword.
	Title(lang, keyword string, rng *rand.Rand) string
	// Description derives a language-specific meta description for a keyword.
	Description(lang, keyword string) string
}

// Config carries the inputs to Build.
type Config struct {
	Total     int
	BaseURL   string
	Languages []string
	PageExt   string // page file extension, defaults to "html"

	// Publish dates are drawn uniformly from [DateStart, DateEnd]; the
	// modified date follows within [0, ModifyWindowDays] days.
	DateStart        time.Time
	DateEnd          time.Time
	ModifyWindowDays int

	// MaxTags caps the tag subset drawn per record. Zero means 5.
	MaxTags int
}

func (c *Config) applyDefaults() {
	if c.PageExt == "" {
		c.PageExt = "html"
	}
	if c.DateStart.IsZero() {
		c.DateStart = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if c.DateEnd.IsZero() {
		c.DateEnd = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	if c.ModifyWindowDays == 0 {
		c.ModifyWindowDays = 240
	}
	if c.MaxTags == 0 {
		c.MaxTags = 5
	}
}

func (c *Config) validate(src Source) error {
	if c.Total <= 0 {
		return fmt.Errorf("total must be positive, got %d", c.Total)
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("language set must not be empty")
	}
	if c.DateEnd.Before(c.DateStart) {
		return fmt.Errorf("date range end %s precedes start %s",
			c.DateEnd.Format("2006-01-02"), c.DateStart.Format("2006-01-02"))
	}
	if len(src.Keywords()) == 0 {
		return fmt.Errorf("keyword pool is empty")
	}
	for _, lang := range c.Languages {
		if len(src.Authors(lang)) == 0 {
			return fmt.Errorf("author pool for language %q is empty", lang)
		}
		if len(src.Categories(lang)) == 0 {
			return fmt.Errorf("category table for language %q is empty", lang)
		}
		if len(src.Tags(lang)) == 0 {
			return fmt.Errorf("tag pool for language %q is empty", lang)
		}
	}
	return nil
}

// Build constructs the complete plan in one pass over languages x ids. It is
// pure in-memory computation with no side effects; any returned error means
// nothing was built.
//
// Keyword selection is deterministic by id (cyclic over the pool); dates,
// authors, categories and tags come from rng so runs are reproducible under a
// fixed seed.
func Build(cfg Config, src Source, rng *rand.Rand) (*Plan, error) {
	cfg.applyDefaults()
	if err := cfg.validate(src); err != nil {
		return nil, err
	}

	p := &Plan{
		total:           cfg.Total,
		languages:       append([]string(nil), cfg.Languages...),
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		byLangAndID:     make(map[string][]*Record, len(cfg.Languages)),
		byLangCategory:  make(map[string]map[CategoryKey][]*Record, len(cfg.Languages)),
		byLangTag:       make(map[string]map[string][]*Record, len(cfg.Languages)),
		byLangYearMonth: make(map[string]map[YearMonth][]*Record, len(cfg.Languages)),
	}

	keywords := src.Keywords()
	dayRange := int(cfg.DateEnd.Sub(cfg.DateStart).Hours()/24) + 1

	for _, lang := range p.languages {
		authors := src.Authors(lang)
		categories := src.Categories(lang)
		tags := src.Tags(lang)

		records := make([]*Record, cfg.Total)
		catIdx := make(map[CategoryKey][]*Record)
		tagIdx := make(map[string][]*Record)
		ymIdx := make(map[YearMonth][]*Record)

		for id := 1; id <= cfg.Total; id++ {
			keyword := keywords[(id-1)%len(keywords)]
			published := cfg.DateStart.AddDate(0, 0, rng.Intn(dayRange))
			modified := published.AddDate(0, 0, rng.Intn(cfg.ModifyWindowDays+1))
			key := categories[rng.Intn(len(categories))]

			rec := &Record{
				ID:          id,
				Lang:        lang,
				Keyword:     keyword,
				Title:       src.Title(lang, keyword, rng),
				Description: src.Description(lang, keyword),
				Published:   published,
				Modified:    modified,
				Author:      authors[rng.Intn(len(authors))],
				Category:    key.Category,
				Subcategory: key.Subcategory,
				Tags:        sampleTags(tags, cfg.MaxTags, rng),
			}
			rec.Path = PagePath(lang, published, id, cfg.PageExt)
			rec.URL = p.baseURL + "/" + rec.Path

			records[id-1] = rec
			catIdx[key] = append(catIdx[key], rec)
			for _, tag := range rec.Tags {
				tagIdx[tag] = append(tagIdx[tag], rec)
			}
			ym := YearMonth{Year: published.Year(), Month: published.Month()}
			ymIdx[ym] = append(ymIdx[ym], rec)
		}

		p.byLangAndID[lang] = records
		p.byLangCategory[lang] = catIdx
		p.byLangTag[lang] = tagIdx
		p.byLangYearMonth[lang] = ymIdx
	}

	return p, nil
}

// PagePath computes the canonical relative path for one article. The layout
// is load-bearing: it is both the filesystem write target and the URL path,
// so it must never change between plan construction and emission.
func PagePath(lang string, published time.Time, id int, ext string) string {
	return fmt.Sprintf("%s/%04d/%02d/page-%d.%s",
		lang, published.Year(), int(published.Month()), id, ext)
}

// sampleTags draws a non-empty subset of the tag pool without replacement.
func sampleTags(pool []string, maxTags int, rng *rand.Rand) []string {
	limit := maxTags
	if limit > len(pool) {
		limit = len(pool)
	}
	n := 1 + rng.Intn(limit)
	picked := make([]string, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[idx])
	}
	return picked
}
