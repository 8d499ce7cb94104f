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

// headMeta builds the document head: title, description, canonical, hreflang
// alternates, OpenGraph/Twitter cards and article timestamps.
func (r *Renderer) headMeta(rec *plan.Record, alternates []plan.Alternate, imageURL string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(rec.Title)))
	sb.WriteString(fmt.Sprintf("<meta name=\"description\" content=\"%s\">\n", html.EscapeString(rec.Description)))
	sb.WriteString(fmt.Sprintf("<link rel=\"canonical\" href=\"%s\">\n", rec.URL))
	for _, alt := range alternates {
		sb.WriteString(fmt.Sprintf("<link rel=\"alternate\" hreflang=\"%s\" href=\"%s\">\n", alt.Lang, alt.URL))
	}
	sb.WriteString(fmt.Sprintf("<meta property=\"og:title\" content=\"%s\">\n", html.EscapeString(rec.Title)))
	sb.WriteString(fmt.Sprintf("<meta property=\"og:description\" content=\"%s\">\n", html.EscapeString(rec.Description)))
	sb.WriteString(fmt.Sprintf("<meta property=\"og:url\" content=\"%s\">\n", rec.URL))
	sb.WriteString("<meta property=\"og:type\" content=\"article\">\n")
	sb.WriteString(fmt.Sprintf("<meta property=\"og:image\" content=\"%s\">\n", imageURL))
	sb.WriteString("<meta name=\"twitter:card\" content=\"summary_large_image\">\n")
	sb.WriteString(fmt.Sprintf("<meta property=\"article:published_time\" content=\"%s\"/>\n", isoDate(rec.Published)))
	sb.WriteString(fmt.Sprintf("<meta property=\"article:modified_time\" content=\"%s\"/>\n", isoDate(rec.Modified)))
	return sb.String()
}

// breadcrumbs renders the home > category > subcategory > title trail.
func (r *Renderer) breadcrumbs(rec *plan.Record) string {
	lang := rec.Lang
	catURL := r.CategoryURL(lang, rec.Category, "")
	subURL := r.CategoryURL(lang, rec.Category, rec.Subcategory)

	var sb strings.Builder
	sb.WriteString("<nav class=\"breadcrumbs\">")
	sb.WriteString(fmt.Sprintf("<a href=\"/\">%s</a> › ", html.EscapeString(r.ui.T(lang, "home"))))
	sb.WriteString(fmt.Sprintf("<a href=\"%s\">%s</a> › ", catURL, html.EscapeString(rec.Category)))
	sb.WriteString(fmt.Sprintf("<a href=\"%s\">%s</a> › ", subURL, html.EscapeString(rec.Subcategory)))
	sb.WriteString(fmt.Sprintf("<span>%s</span>", html.EscapeString(rec.Title)))
	sb.WriteString("</nav>\n")
	return sb.String()
}

// byline renders the author/date line.
func (r *Renderer) byline(rec *plan.Record) string {
	return fmt.Sprintf("<p class=\"byline\">%s <strong>%s</strong> — %s</p>",
		html.EscapeString(r.ui.T(rec.Lang, "by")),
		html.EscapeString(rec.Author),
		rec.Published.Format("02 January 2006"))
}

// tagList renders the tag links for a record.
func (r *Renderer) tagList(rec *plan.Record) string {
	tags := make([]string, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		tags = append(tags, fmt.Sprintf("<a href=\"/%s/tags/%s/\">#%s</a>",
			rec.Lang, url.QueryEscape(t), html.EscapeString(t)))
	}
	return fmt.Sprintf("<aside class=\"tags\"><strong>%s:</strong> %s</aside>\n",
		html.EscapeString(r.ui.T(rec.Lang, "tags")), strings.Join(tags, " "))
}

// pager renders previous/next links. Either side may be absent at the ends
// of the id range.
func (r *Renderer) pager(lang string, prev, next *plan.Record) string {
	var left, right string
	if prev != nil {
		left = fmt.Sprintf("<a href=\"%s\">%s</a>", prev.URL, html.EscapeString(r.ui.T(lang, "prev")))
	}
	if next != nil {
		right = fmt.Sprintf("<a href=\"%s\">%s</a>", next.URL, html.EscapeString(r.ui.T(lang, "next")))
	}
	mid := ""
	if left != "" && right != "" {
		mid = " | "
	}
	return fmt.Sprintf("<div class=\"pager\">%s%s%s</div>\n", left, mid, right)
}

// toc renders the table of contents over the H2 sections.
func (r *Renderer) toc(lang string, sections []content.Section) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"toc\"><h3>")
	sb.WriteString(html.EscapeString(r.ui.T(lang, "toc")))
	sb.WriteString("</h3><ul>")
	for i, sec := range sections {
		sb.WriteString(fmt.Sprintf("<li><a href=\"#sec%d\">%s</a></li>", i+1, html.EscapeString(sec.Heading)))
	}
	sb.WriteString("</ul></div>\n")
	return sb.String()
}

// mediaBlock renders the stock image figure plus an occasional video embed.
func (r *Renderer) mediaBlock(rec *plan.Record, imageURL string, rng *rand.Rand) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<figure><img src=\"%s\" alt=\"%s\" loading=\"lazy\"><figcaption>%s</figcaption></figure>\n",
		imageURL, html.EscapeString(rec.Title), html.EscapeString(rec.Title)))
	if rng.Intn(2) == 0 && len(content.VideoIDs) > 0 {
		vid := content.VideoIDs[rng.Intn(len(content.VideoIDs))]
		sb.WriteString(fmt.Sprintf("<div class=\"yt\"><iframe width=\"560\" height=\"315\" src=\"https://www.youtube.com/embed/%s\" title=\"Video\" frameborder=\"0\" allowfullscreen loading=\"lazy\"></iframe></div>\n", vid))
	}
	return sb.String()
}

// relatedList renders the sampled internal links.
func (r *Renderer) relatedList(lang string, anchors []links.Anchor) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, a := range anchors {
		sb.WriteString(fmt.Sprintf("<li><a href=\"%s\">%s</a></li>", a.URL, html.EscapeString(a.Text)))
	}
	sb.WriteString("</ul>")
	return sb.String()
}

// externalList renders the outward reference links plus one keyword search
// link, all nofollow.
func (r *Renderer) externalList(keyword string, urls []string) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, u := range urls {
		label := strings.TrimPrefix(strings.TrimPrefix(u, "https://"), "http://")
		if len(label) > 60 {
			label = label[:60]
		}
		sb.WriteString(fmt.Sprintf("<li><a rel=\"nofollow noopener noreferrer\" target=\"_blank\" href=\"%s\">%s</a></li>",
			u, html.EscapeString(label)))
	}
	sb.WriteString(fmt.Sprintf("<li><a rel=\"nofollow noopener\" target=\"_blank\" href=\"https://www.google.com/search?q=%s\">Google: %s</a></li>",
		url.QueryEscape(keyword), html.EscapeString(keyword)))
	sb.WriteString("</ul>\n")
	return sb.String()
}

// priceTable renders a small filler comparison table.
func (r *Renderer) priceTable(rng *rand.Rand) string {
	var sb strings.Builder
	sb.WriteString("<table><tr><th>Item</th><th>Value</th></tr>")
	rows := 2 + rng.Intn(3)
	for i := 1; i <= rows; i++ {
		sb.WriteString(fmt.Sprintf("<tr><td>Option %d</td><td>$%d</td></tr>", i, 9+rng.Intn(91)))
	}
	sb.WriteString("</table>\n")
	return sb.String()
}

// CategoryURL returns the hub URL for a category or (category, subcategory).
func (r *Renderer) CategoryURL(lang, category, subcategory string) string {
	if subcategory == "" {
		return fmt.Sprintf("%s/%s/category/%s/", r.baseURL, lang, url.QueryEscape(category))
	}
	return fmt.Sprintf("%s/%s/category/%s/%s/", r.baseURL, lang, url.QueryEscape(category), url.QueryEscape(subcategory))
}
