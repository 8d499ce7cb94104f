package render

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/trustdealzz/sitegen/internal/plan"
)

// jsonLDArticle emits the schema.org Article block for a record.
func (r *Renderer) jsonLDArticle(rec *plan.Record) string {
	return scriptLD(map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": rec.Title,
		"author": map[string]any{
			"@type": "Person",
			"name":  rec.Author,
		},
		"datePublished":    isoDate(rec.Published),
		"dateModified":     isoDate(rec.Modified),
		"mainEntityOfPage": rec.URL,
	})
}

// jsonLDBreadcrumb emits the BreadcrumbList block mirroring the visible
// breadcrumb trail.
func (r *Renderer) jsonLDBreadcrumb(rec *plan.Record) string {
	crumbs := []struct {
		name string
		url  string
	}{
		{r.ui.T(rec.Lang, "home"), r.baseURL + "/"},
		{rec.Category, r.CategoryURL(rec.Lang, rec.Category, "")},
		{rec.Subcategory, r.CategoryURL(rec.Lang, rec.Category, rec.Subcategory)},
		{rec.Title, rec.URL},
	}
	items := make([]map[string]any, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.name,
			"item":     c.url,
		})
	}
	return scriptLD(map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	})
}

// jsonLDFAQ emits the FAQPage block with 1-2 keyword Q&A pairs.
func (r *Renderer) jsonLDFAQ(rec *plan.Record, rng *rand.Rand) string {
	pairs := r.banks.FAQ(rec.Lang, rec.Keyword, rng)
	main := make([]map[string]any, 0, len(pairs))
	for _, qa := range pairs {
		main = append(main, map[string]any{
			"@type": "Question",
			"name":  qa[0],
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  qa[1],
			},
		})
	}
	return scriptLD(map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": main,
	})
}

// JSONLDWebSite emits the site-wide WebSite block with a SearchAction, used
// on the home page.
func (r *Renderer) JSONLDWebSite() string {
	return scriptLD(map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"url":      r.baseURL,
		"potentialAction": map[string]any{
			"@type":       "SearchAction",
			"target":      r.baseURL + "/search?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	})
}

func scriptLD(data map[string]any) string {
	encoded, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return `<script type="application/ld+json">` + string(encoded) + `</script>`
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02T00:00:00Z")
}
