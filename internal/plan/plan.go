// Package plan precomputes the complete metadata table for every page the
// generator will emit. The plan is built once, fully, before any file is
// written, so previous/next links, hreflang alternates and hub links always
// resolve to a page that exists by the end of the run.
//
// A Plan is immutable after Build returns. Concurrent readers need no
// locking.
package plan

import (
	"fmt"
	"time"
)

// Record holds the precomputed metadata for one article in one language.
type Record struct {
	ID          int
	Lang        string
	Keyword     string
	Title       string
	Description string
	Published   time.Time
	Modified    time.Time
	Author      string
	Category    string
	Subcategory string
	Tags        []string
	Path        string
	URL         string
}

// CategoryKey identifies one (category, subcategory) pair.
type CategoryKey struct {
	Category    string
	Subcategory string
}

// YearMonth identifies one archive bucket.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Alternate is one hreflang alternate for an article id.
type Alternate struct {
	Lang string
	URL  string
}

// Plan is the read-only table of all article metadata plus derived indices.
type Plan struct {
	total     int
	languages []string
	baseURL   string

	byLangAndID     map[string][]*Record // slice index = id-1
	byLangCategory  map[string]map[CategoryKey][]*Record
	byLangTag       map[string]map[string][]*Record
	byLangYearMonth map[string]map[YearMonth][]*Record
}

// Total returns the number of ids per language.
func (p *Plan) Total() int { return p.total }

// Languages returns the language codes the plan was built for, in
// construction order.
func (p *Plan) Languages() []string { return p.languages }

// BaseURL returns the absolute URL prefix shared by all records.
func (p *Plan) BaseURL() string { return p.baseURL }

// Record returns the record for (lang, id). Ids are dense per language, so a
// lookup for an id outside [1, total] or an unknown language is a programming
// error and panics.
func (p *Plan) Record(lang string, id int) *Record {
	recs, ok := p.byLangAndID[lang]
	if !ok {
		panic(fmt.Sprintf("plan: unknown language %q", lang))
	}
	if id < 1 || id > p.total {
		panic(fmt.Sprintf("plan: id %d out of range [1,%d]", id, p.total))
	}
	return recs[id-1]
}

// ByLang returns all records for a language in id order. The returned slice
// is shared and must not be mutated.
func (p *Plan) ByLang(lang string) []*Record {
	return p.byLangAndID[lang]
}

// Prev returns the record preceding (lang, id), or nil when id is 1.
func (p *Plan) Prev(lang string, id int) *Record {
	p.Record(lang, id) // range check
	if id == 1 {
		return nil
	}
	return p.Record(lang, id-1)
}

// Next returns the record following (lang, id), or nil when id is the last.
func (p *Plan) Next(lang string, id int) *Record {
	p.Record(lang, id)
	if id == p.total {
		return nil
	}
	return p.Record(lang, id+1)
}

// Alternates returns one URL per language for the given id, relying on every
// language sharing the same dense id range.
func (p *Plan) Alternates(id int) []Alternate {
	alts := make([]Alternate, 0, len(p.languages))
	for _, lang := range p.languages {
		alts = append(alts, Alternate{Lang: lang, URL: p.Record(lang, id).URL})
	}
	return alts
}

// Categories returns the category keys that have at least one record in the
// given language.
func (p *Plan) Categories(lang string) []CategoryKey {
	idx := p.byLangCategory[lang]
	keys := make([]CategoryKey, 0, len(idx))
	for key := range idx {
		keys = append(keys, key)
	}
	return keys
}

// ByCategory returns the records for one (category, subcategory) in a
// language. The returned slice is shared and must not be mutated.
func (p *Plan) ByCategory(lang string, key CategoryKey) []*Record {
	return p.byLangCategory[lang][key]
}

// Tags returns the tags that have at least one record in the given language.
func (p *Plan) Tags(lang string) []string {
	idx := p.byLangTag[lang]
	tags := make([]string, 0, len(idx))
	for tag := range idx {
		tags = append(tags, tag)
	}
	return tags
}

// ByTag returns the records carrying a tag in a language. The returned slice
// is shared and must not be mutated.
func (p *Plan) ByTag(lang, tag string) []*Record {
	return p.byLangTag[lang][tag]
}

// Archives returns the (year, month) buckets that have at least one record in
// the given language.
func (p *Plan) Archives(lang string) []YearMonth {
	idx := p.byLangYearMonth[lang]
	months := make([]YearMonth, 0, len(idx))
	for ym := range idx {
		months = append(months, ym)
	}
	return months
}

// ByArchive returns the records published in one (year, month) bucket. The
// returned slice is shared and must not be mutated.
func (p *Plan) ByArchive(lang string, ym YearMonth) []*Record {
	return p.byLangYearMonth[lang][ym]
}

// URLs returns every article URL across all languages, languages in
// construction order, ids ascending within each language.
func (p *Plan) URLs() []string {
	urls := make([]string, 0, len(p.languages)*p.total)
	for _, lang := range p.languages {
		for _, rec := range p.byLangAndID[lang] {
			urls = append(urls, rec.URL)
		}
	}
	return urls
}
