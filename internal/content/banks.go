// Package content carries the language-keyed data pools the planner and
// renderer draw from: keywords, authors, categories, tags, anchor phrases,
// sample paragraphs and synonym tables, plus localized UI strings.
//
// Built-in banks cover the supported languages out of the box; a keyword
// file and a YAML bank file can override them per deployment.
package content

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/trustdealzz/sitegen/internal/plan"
)

// SupportedLanguages is the closed language set pages are generated for.
var SupportedLanguages = []string{"ar", "en", "fr"}

// Direction maps a language code to its text direction attribute.
var Direction = map[string]string{
	"ar": "rtl",
	"en": "ltr",
	"fr": "ltr",
}

// Banks holds all per-language data pools. It implements plan.Source.
type Banks struct {
	keywords   []string
	authors    map[string][]string
	categories map[string][]plan.CategoryKey
	tags       map[string][]string
	anchors    map[string][]string
	paragraphs map[string][]string
	synonyms   map[string]map[string][]string

	titleCaser map[string]cases.Caser
}

// bankFile is the YAML override shape for the built-in pools.
type bankFile struct {
	Keywords   []string                       `yaml:"keywords"`
	Authors    map[string][]string            `yaml:"authors"`
	Categories map[string][][2]string         `yaml:"categories"`
	Tags       map[string][]string            `yaml:"tags"`
	Anchors    map[string][]string            `yaml:"anchors"`
	Synonyms   map[string]map[string][]string `yaml:"synonyms"`
}

// DefaultBanks returns the built-in pools for all supported languages.
func DefaultBanks() *Banks {
	b := &Banks{
		keywords:   append([]string(nil), defaultKeywords...),
		authors:    defaultAuthors,
		categories: defaultCategories,
		tags:       defaultTags,
		anchors:    defaultAnchors,
		paragraphs: defaultParagraphs,
		synonyms:   defaultSynonyms,
		titleCaser: make(map[string]cases.Caser, len(SupportedLanguages)),
	}
	for _, lang := range SupportedLanguages {
		tag, err := language.Parse(lang)
		if err != nil {
			tag = language.English
		}
		b.titleCaser[lang] = cases.Title(tag)
	}
	return b
}

// LoadKeywordFile replaces the keyword pool with the non-blank lines of the
// given file, shuffled once so successive deployments do not share ordering.
func (b *Banks) LoadKeywordFile(path string, rng *rand.Rand) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open keyword file: %w", err)
	}
	defer f.Close()

	var keywords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			keywords = append(keywords, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read keyword file: %w", err)
	}
	if len(keywords) == 0 {
		return fmt.Errorf("keyword file %s contains no keywords", path)
	}
	rng.Shuffle(len(keywords), func(i, j int) {
		keywords[i], keywords[j] = keywords[j], keywords[i]
	})
	b.keywords = keywords
	return nil
}

// LoadBankFile overlays the built-in pools with the non-empty sections of a
// YAML bank file.
func (b *Banks) LoadBankFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open bank file: %w", err)
	}
	var bf bankFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return fmt.Errorf("parse bank file: %w", err)
	}

	if len(bf.Keywords) > 0 {
		b.keywords = bf.Keywords
	}
	if len(bf.Authors) > 0 {
		b.authors = mergeLangPools(b.authors, bf.Authors)
	}
	if len(bf.Tags) > 0 {
		b.tags = mergeLangPools(b.tags, bf.Tags)
	}
	if len(bf.Anchors) > 0 {
		b.anchors = mergeLangPools(b.anchors, bf.Anchors)
	}
	if len(bf.Categories) > 0 {
		merged := make(map[string][]plan.CategoryKey, len(b.categories))
		for lang, keys := range b.categories {
			merged[lang] = keys
		}
		for lang, pairs := range bf.Categories {
			keys := make([]plan.CategoryKey, 0, len(pairs))
			for _, pair := range pairs {
				keys = append(keys, plan.CategoryKey{Category: pair[0], Subcategory: pair[1]})
			}
			merged[lang] = keys
		}
		b.categories = merged
	}
	if len(bf.Synonyms) > 0 {
		merged := make(map[string]map[string][]string, len(b.synonyms))
		for lang, table := range b.synonyms {
			merged[lang] = table
		}
		for lang, table := range bf.Synonyms {
			merged[lang] = table
		}
		b.synonyms = merged
	}
	return nil
}

func mergeLangPools(base, overlay map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(base))
	for lang, pool := range base {
		merged[lang] = pool
	}
	for lang, pool := range overlay {
		merged[lang] = pool
	}
	return merged
}

// Keywords implements plan.Source.
func (b *Banks) Keywords() []string { return b.keywords }

// Authors implements plan.Source.
func (b *Banks) Authors(lang string) []string { return b.authors[lang] }

// Categories implements plan.Source.
func (b *Banks) Categories(lang string) []plan.CategoryKey { return b.categories[lang] }

// Tags implements plan.Source.
func (b *Banks) Tags(lang string) []string { return b.tags[lang] }

// Anchors returns the anchor-phrase bank for a language.
func (b *Banks) Anchors(lang string) []string { return b.anchors[lang] }

// Title implements plan.Source. Patterns follow the per-language headline
// conventions; the keyword is title-cased with the language's casing rules.
func (b *Banks) Title(lang, keyword string, rng *rand.Rand) string {
	count := 7 + rng.Intn(11)
	year := 2020 + rng.Intn(6)
	cased := keyword
	if caser, ok := b.titleCaser[lang]; ok {
		cased = caser.String(keyword)
	}

	var patterns []string
	switch lang {
	case "en":
		patterns = []string{
			fmt.Sprintf("Top %d ways to %s in %d", count, keyword, year),
			fmt.Sprintf("Ultimate guide to %s", keyword),
			fmt.Sprintf("%s: Tips, tools and tactics", cased),
		}
	case "fr":
		patterns = []string{
			fmt.Sprintf("Top %d façons de %s en %d", count, keyword, year),
			fmt.Sprintf("Guide ultime de %s", keyword),
			fmt.Sprintf("%s : Conseils et outils", cased),
		}
	default:
		patterns = []string{
			fmt.Sprintf("أفضل %d طرق لـ %s في %d", count, keyword, year),
			fmt.Sprintf("الدليل الشامل حول %s", keyword),
			fmt.Sprintf("%s: نصائح وأدوات", keyword),
		}
	}
	return patterns[rng.Intn(len(patterns))]
}

// Description implements plan.Source. The result is capped at 160 characters
// to fit meta description limits.
func (b *Banks) Description(lang, keyword string) string {
	var desc string
	switch lang {
	case "en":
		desc = fmt.Sprintf("Quick, practical overview about %s with real examples and references.", keyword)
	case "fr":
		desc = fmt.Sprintf("Aperçu pratique et rapide de %s avec des exemples concrets.", keyword)
	default:
		desc = fmt.Sprintf("ملخص عملي وسريع حول %s مع أمثلة واقعية ومراجع.", keyword)
	}
	if len(desc) > 160 {
		runes := []rune(desc)
		if len(runes) > 160 {
			desc = string(runes[:160])
		}
	}
	return desc
}
