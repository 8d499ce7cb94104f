package render

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustdealzz/sitegen/internal/content"
	"github.com/trustdealzz/sitegen/internal/links"
	"github.com/trustdealzz/sitegen/internal/plan"
)

const testBaseURL = "https://lyrics.example.com"

func newTestRenderer(t *testing.T, minify bool) *Renderer {
	t.Helper()
	ui, err := content.NewUI()
	require.NoError(t, err)
	return New(content.DefaultBanks(), ui, testBaseURL, minify)
}

func testRecord(lang string, id int) *plan.Record {
	published := time.Date(2022, time.June, 14, 0, 0, 0, 0, time.UTC)
	path := plan.PagePath(lang, published, id, "html")
	return &plan.Record{
		ID:          id,
		Lang:        lang,
		Keyword:     "song lyrics search",
		Title:       "Ultimate guide to song lyrics search",
		Description: "Quick overview of song lyrics search.",
		Published:   published,
		Modified:    published.AddDate(0, 0, 30),
		Author:      "Sam Field",
		Category:    "music",
		Subcategory: "lyrics",
		Tags:        []string{"howto", "review"},
		Path:        path,
		URL:         testBaseURL + "/" + path,
	}
}

func testPageData(lang string, variant Variant) PageData {
	rec := testRecord(lang, 5)
	prev := testRecord(lang, 4)
	next := testRecord(lang, 6)
	return PageData{
		Record: rec,
		Prev:   prev,
		Next:   next,
		Alternates: []plan.Alternate{
			{Lang: "ar", URL: testBaseURL + "/ar/2022/06/page-5.html"},
			{Lang: "en", URL: testBaseURL + "/en/2022/06/page-5.html"},
			{Lang: "fr", URL: testBaseURL + "/fr/2022/06/page-5.html"},
		},
		Internal: []links.Anchor{
			{URL: testBaseURL + "/en/2022/06/page-2.html", Text: "read more"},
			{URL: testBaseURL + "/en/2022/06/page-9.html", Text: "see also"},
		},
		External: []string{"https://ref.example.org/page"},
		Variant:  variant,
	}
}

func TestArticlePageHeadMeta(t *testing.T) {
	r := newTestRenderer(t, false)
	d := testPageData("en", VariantClassic)
	page := r.ArticlePage(d, rand.New(rand.NewSource(1)))

	assert.Contains(t, page, "<title>Ultimate guide to song lyrics search</title>")
	assert.Contains(t, page, fmt.Sprintf("<link rel=\"canonical\" href=\"%s\">", d.Record.URL))
	assert.Contains(t, page, "article:published_time\" content=\"2022-06-14T00:00:00Z\"")
	assert.Contains(t, page, "og:type\" content=\"article\"")

	hreflangs := strings.Count(page, "rel=\"alternate\" hreflang=")
	assert.Equal(t, 3, hreflangs)
	for _, alt := range d.Alternates {
		assert.Contains(t, page, fmt.Sprintf("hreflang=\"%s\" href=\"%s\"", alt.Lang, alt.URL))
	}
}

func TestArticlePageShell(t *testing.T) {
	r := newTestRenderer(t, false)
	page := r.ArticlePage(testPageData("en", VariantClassic), rand.New(rand.NewSource(1)))

	assert.True(t, strings.HasPrefix(page, "<!doctype html>"))
	assert.Contains(t, page, "<html lang=\"en\" dir=\"ltr\">")
	assert.Contains(t, page, "lyrics.example.com")
	assert.Contains(t, page, "/sitemaps/sitemap_index.xml")
	assert.Contains(t, page, "/rss/index.xml")
	assert.Contains(t, page, "/robots.txt")
}

func TestArticlePageArabicDirection(t *testing.T) {
	r := newTestRenderer(t, false)
	page := r.ArticlePage(testPageData("ar", VariantClassic), rand.New(rand.NewSource(1)))

	assert.Contains(t, page, "<html lang=\"ar\" dir=\"rtl\">")
}

func TestArticlePagePager(t *testing.T) {
	r := newTestRenderer(t, false)
	rng := rand.New(rand.NewSource(1))

	d := testPageData("en", VariantClassic)
	page := r.ArticlePage(d, rng)
	assert.Contains(t, page, d.Prev.URL)
	assert.Contains(t, page, d.Next.URL)

	d.Prev = nil
	first := r.ArticlePage(d, rng)
	assert.NotContains(t, first, "page-4.html")
	assert.Contains(t, first, d.Next.URL)

	d.Next = nil
	lonely := r.ArticlePage(d, rng)
	assert.Contains(t, lonely, "<div class=\"pager\"></div>")
}

func TestArticlePageInternalAndExternalLinks(t *testing.T) {
	r := newTestRenderer(t, false)
	d := testPageData("en", VariantClassic)
	page := r.ArticlePage(d, rand.New(rand.NewSource(1)))

	for _, a := range d.Internal {
		assert.Contains(t, page, fmt.Sprintf("<a href=\"%s\">%s</a>", a.URL, a.Text))
	}
	assert.Contains(t, page, "rel=\"nofollow noopener noreferrer\" target=\"_blank\" href=\"https://ref.example.org/page\"")
	assert.Contains(t, page, "https://www.google.com/search?q=")
}

func TestArticlePageVariants(t *testing.T) {
	r := newTestRenderer(t, false)
	rng := rand.New(rand.NewSource(1))

	classic := r.ArticlePage(testPageData("en", VariantClassic), rng)
	assert.Contains(t, classic, "<article class=\"v1\"")
	assert.Contains(t, classic, "class=\"toc\"")

	magazine := r.ArticlePage(testPageData("en", VariantMagazine), rng)
	assert.Contains(t, magazine, "<article class=\"v2\"")
	// Magazine places the TOC before the media figure.
	assert.Less(t, strings.Index(magazine, "class=\"toc\""), strings.Index(magazine, "<figure>"))

	listicle := r.ArticlePage(testPageData("en", VariantListicle), rng)
	assert.Contains(t, listicle, "<article class=\"listicle\"")
	assert.Contains(t, listicle, "<ol class=\"listicle-items\">")
	items := strings.Count(listicle, "<li>")
	assert.GreaterOrEqual(t, items, 6)
}

func TestArticlePageStructuredData(t *testing.T) {
	r := newTestRenderer(t, false)
	page := r.ArticlePage(testPageData("en", VariantClassic), rand.New(rand.NewSource(1)))

	for _, wantType := range []string{"\"Article\"", "\"BreadcrumbList\"", "\"FAQPage\""} {
		assert.Contains(t, page, "\"@type\":"+wantType)
	}

	// Every JSON-LD block must parse as JSON.
	rest := page
	for {
		start := strings.Index(rest, "<script type=\"application/ld+json\">")
		if start < 0 {
			break
		}
		rest = rest[start+len("<script type=\"application/ld+json\">"):]
		end := strings.Index(rest, "</script>")
		require.GreaterOrEqual(t, end, 0)
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(rest[:end]), &decoded))
		assert.NotEmpty(t, decoded["@type"])
		rest = rest[end:]
	}
}

func TestArticlePageEscapesTitle(t *testing.T) {
	r := newTestRenderer(t, false)
	d := testPageData("en", VariantClassic)
	d.Record.Title = `Chords <script> & "tabs"`
	page := r.ArticlePage(d, rand.New(rand.NewSource(1)))

	assert.NotContains(t, page, "<script> &")
	assert.Contains(t, page, "Chords &lt;script&gt; &amp; &#34;tabs&#34;")
}

func TestMinifyHTML(t *testing.T) {
	in := "<div>\n  <p>hi</p>\n\n  </div>\n<a> <b>"
	out := MinifyHTML(in)

	assert.NotContains(t, out, "  ")
	assert.Contains(t, out, "<a><b>")
	assert.Contains(t, out, "<p>hi</p>")
}

func TestRendererMinifyApplied(t *testing.T) {
	plain := newTestRenderer(t, false).ArticlePage(testPageData("en", VariantClassic), rand.New(rand.NewSource(1)))
	mini := newTestRenderer(t, true).ArticlePage(testPageData("en", VariantClassic), rand.New(rand.NewSource(1)))

	assert.Less(t, len(mini), len(plain))
}

func TestCategoryURL(t *testing.T) {
	r := newTestRenderer(t, false)

	assert.Equal(t, testBaseURL+"/en/category/music/", r.CategoryURL("en", "music", ""))
	assert.Equal(t, testBaseURL+"/en/category/music/lyrics/", r.CategoryURL("en", "music", "lyrics"))
	assert.Equal(t, testBaseURL+"/fr/category/mode+de+vie/", r.CategoryURL("fr", "mode de vie", ""))
}

func TestJSONLDWebSite(t *testing.T) {
	out := newTestRenderer(t, false).JSONLDWebSite()

	start := strings.Index(out, ">")
	end := strings.LastIndex(out, "</script>")
	require.Greater(t, end, start)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out[start+1:end]), &decoded))
	assert.Equal(t, "WebSite", decoded["@type"])
}
