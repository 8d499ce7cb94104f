// Package render turns plan records into page markup. It is a formatting
// collaborator: all linking decisions (neighbors, alternates, sampled link
// sets) are made against the plan before rendering, so nothing here can
// produce a link the plan does not already account for.
package render

import (
	"fmt"
	"html"
	"math/rand"
	"net/url"
	"strings"

	"github.com/trustdealzz/sitegen/internal/content"
	"github.com/trustdealzz/sitegen/internal/links"
	"github.com/trustdealzz/sitegen/internal/plan"
)

// Variant selects one of the closed set of article page layouts. All
// variants implement the same render contract; picking one is the caller's
// concern.
type Variant int

const (
	VariantClassic Variant = iota
	VariantMagazine
	VariantListicle
)

// Variants lists all layout variants for random selection.
var Variants = []Variant{VariantClassic, VariantMagazine, VariantListicle}

// PageData carries everything needed to render one article page. It is
// assembled from the plan by the emitter.
type PageData struct {
	Record     *plan.Record
	Prev       *plan.Record
	Next       *plan.Record
	Alternates []plan.Alternate
	Internal   []links.Anchor
	External   []string
	Variant    Variant
}

// Renderer renders article and chrome markup for one site.
type Renderer struct {
	banks   *content.Banks
	ui      *content.UI
	baseURL string
	minify  bool
}

// New creates a renderer over the given banks and UI strings.
func New(banks *content.Banks, ui *content.UI, baseURL string, minify bool) *Renderer {
	return &Renderer{
		banks:   banks,
		ui:      ui,
		baseURL: strings.TrimRight(baseURL, "/"),
		minify:  minify,
	}
}

// ArticlePage renders one complete article document.
func (r *Renderer) ArticlePage(d PageData, rng *rand.Rand) string {
	rec := d.Record
	lang := rec.Lang

	imageURL := stockImageURL(rec.Keyword)
	head := r.headMeta(rec, d.Alternates, imageURL)

	crumbs := r.breadcrumbs(rec)
	byline := r.byline(rec)
	tags := r.tagList(rec)
	pager := r.pager(lang, d.Prev, d.Next)
	related := r.relatedList(lang, d.Internal)
	media := r.mediaBlock(rec, imageURL, rng)

	structured := strings.Join([]string{
		r.jsonLDArticle(rec),
		r.jsonLDBreadcrumb(rec),
		r.jsonLDFAQ(rec, rng),
	}, "\n")

	var body string
	switch d.Variant {
	case VariantListicle:
		body = r.listicleBody(rec, crumbs, byline, media, tags, pager, related, structured, rng)
	case VariantMagazine:
		body = r.articleBody(rec, "v2", crumbs, byline, media, tags, pager, related, structured, d.External, true, rng)
	default:
		body = r.articleBody(rec, "v1", crumbs, byline, media, tags, pager, related, structured, d.External, false, rng)
	}

	return r.document(lang, head, body)
}

// articleBody renders the classic and magazine layouts. The magazine layout
// places the TOC ahead of the media block; otherwise the two share structure.
func (r *Renderer) articleBody(rec *plan.Record, class, crumbs, byline, media, tags, pager, related, structured string, external []string, tocFirst bool, rng *rand.Rand) string {
	lang := rec.Lang
	sections := r.banks.Sections(lang, rng)
	toc := r.toc(lang, sections)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<article class=\"%s\" itemscope itemtype=\"https://schema.org/Article\">\n", class))
	sb.WriteString(crumbs)
	sb.WriteString(fmt.Sprintf("<header><h1 itemprop=\"name\">%s</h1>%s</header>\n", html.EscapeString(rec.Title), byline))
	if tocFirst {
		sb.WriteString(toc)
		sb.WriteString(media)
	} else {
		sb.WriteString(media)
		sb.WriteString(toc)
	}

	sb.WriteString("<section itemprop=\"articleBody\">\n")
	for i, sec := range sections {
		sb.WriteString(fmt.Sprintf("<h2 id=\"sec%d\">%s</h2>\n", i+1, html.EscapeString(sec.Heading)))
		sb.WriteString("<p>" + html.EscapeString(r.banks.Paragraph(lang, 120, 180, rng)) + "</p>\n")
		for _, sub := range sec.Subpoints {
			sb.WriteString(fmt.Sprintf("<h3>%s</h3>\n", html.EscapeString(sub)))
			if rng.Float64() < 0.8 {
				sb.WriteString("<p>" + html.EscapeString(r.banks.Paragraph(lang, 70, 120, rng)) + "</p>\n")
			} else {
				sb.WriteString(r.priceTable(rng))
			}
		}
	}
	sb.WriteString(fmt.Sprintf("<h3>%s</h3>\n", html.EscapeString(r.ui.T(lang, "references"))))
	sb.WriteString(r.externalList(rec.Keyword, external))
	sb.WriteString("</section>\n")

	sb.WriteString(tags)
	sb.WriteString(pager)
	sb.WriteString(fmt.Sprintf("<section class=\"related\"><h3>%s</h3>%s</section>\n", html.EscapeString(r.ui.T(lang, "related")), related))
	sb.WriteString(structured)
	sb.WriteString("\n</article>\n")
	return sb.String()
}

// listicleBody renders the ordered-list layout.
func (r *Renderer) listicleBody(rec *plan.Record, crumbs, byline, media, tags, pager, related, structured string, rng *rand.Rand) string {
	lang := rec.Lang
	var sb strings.Builder
	sb.WriteString("<article class=\"listicle\" itemscope itemtype=\"https://schema.org/Article\">\n")
	sb.WriteString(crumbs)
	sb.WriteString(fmt.Sprintf("<header><h1 itemprop=\"name\">%s</h1>%s</header>\n", html.EscapeString(rec.Title), byline))
	sb.WriteString(media)
	sb.WriteString("<section itemprop=\"articleBody\">\n<ol class=\"listicle-items\">\n")
	items := 6 + rng.Intn(5)
	for i := 0; i < items; i++ {
		sb.WriteString("<li>" + html.EscapeString(r.banks.Paragraph(lang, 25, 40, rng)) + "</li>\n")
	}
	sb.WriteString("</ol>\n</section>\n")
	sb.WriteString(tags)
	sb.WriteString(pager)
	sb.WriteString(fmt.Sprintf("<section><h3>%s</h3>%s</section>\n", html.EscapeString(r.ui.T(lang, "related")), related))
	sb.WriteString(structured)
	sb.WriteString("\n</article>\n")
	return sb.String()
}

// document wraps body markup in the shared page shell.
func (r *Renderer) document(lang, head, body string) string {
	dir := content.Direction[lang]
	if dir == "" {
		dir = "ltr"
	}

	var sb strings.Builder
	sb.WriteString("<!doctype html>\n")
	sb.WriteString(fmt.Sprintf("<html lang=\"%s\" dir=\"%s\">\n", lang, dir))
	sb.WriteString("<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width,initial-scale=1\">\n")
	sb.WriteString(head)
	sb.WriteString("<link rel=\"stylesheet\" href=\"/assets/style-light.css\">\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString("<header class=\"site-header\"><div class=\"container\">\n")
	sb.WriteString(fmt.Sprintf("<h1><a href=\"/\">%s</a></h1>\n", html.EscapeString(siteName(r.baseURL))))
	sb.WriteString("<nav class=\"main-nav\">\n")
	sb.WriteString(fmt.Sprintf("<a href=\"/\">%s</a>\n", html.EscapeString(r.ui.T(lang, "home"))))
	sb.WriteString(fmt.Sprintf("<a href=\"/archive/index.html\">%s</a>\n", html.EscapeString(r.ui.T(lang, "archive"))))
	sb.WriteString("<a href=\"/sitemaps/sitemap_index.xml\">Sitemaps</a>\n")
	sb.WriteString("<a href=\"/rss/index.xml\">RSS</a>\n")
	sb.WriteString("</nav>\n</div></header>\n")
	sb.WriteString("<main class=\"container\">\n")
	sb.WriteString(body)
	sb.WriteString("</main>\n")
	sb.WriteString("<footer class=\"site-footer\"><div class=\"container\">\n")
	sb.WriteString(fmt.Sprintf("<p>&copy; %s</p>\n", html.EscapeString(siteName(r.baseURL))))
	sb.WriteString("<nav class=\"footer-nav\"><a href=\"/privacy.html\">Privacy</a> · <a href=\"/robots.txt\">robots.txt</a></nav>\n")
	sb.WriteString("</div></footer>\n")
	sb.WriteString("</body>\n</html>\n")

	out := sb.String()
	if r.minify {
		out = MinifyHTML(out)
	}
	return out
}

// Document renders an arbitrary page (aggregate pages, error pages) inside
// the shared shell.
func (r *Renderer) Document(lang, head, body string) string {
	return r.document(lang, head, body)
}

// UI exposes the localized chrome strings to aggregate-page writers.
func (r *Renderer) UI() *content.UI { return r.ui }

// MinifyHTML strips indentation and inter-tag whitespace. Safe for the
// markup emitted here, which never relies on significant whitespace.
func MinifyHTML(s string) string {
	lines := strings.Split(s, "\n")
	trimmed := make([]string, 0, len(lines))
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	out := strings.Join(trimmed, "\n")
	return strings.ReplaceAll(out, "> <", "><")
}

// stockImageURL returns a keyword-derived stock image URL.
func stockImageURL(keyword string) string {
	return "https://source.unsplash.com/800x450/?" + url.QueryEscape(keyword)
}

// siteName derives the display name from the base URL host.
func siteName(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}
	return u.Host
}
