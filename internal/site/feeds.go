package site

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/trustdealzz/sitegen/internal/plan"
)

// feedItemLimit caps the number of entries per language feed.
const feedItemLimit = 100

// writeFeeds emits one RSS feed per language plus an index feed referencing
// them all.
func writeFeeds(root, baseURL string, p *plan.Plan) error {
	rssDir := filepath.Join(root, "rss")
	if err := os.MkdirAll(rssDir, 0755); err != nil {
		return fmt.Errorf("create rss directory: %w", err)
	}
	base := strings.TrimRight(baseURL, "/")

	for _, lang := range p.Languages() {
		latest := append([]*plan.Record(nil), p.ByLang(lang)...)
		sort.Slice(latest, func(i, j int) bool {
			return latest[i].Published.After(latest[j].Published)
		})
		if len(latest) > feedItemLimit {
			latest = latest[:feedItemLimit]
		}

		var sb strings.Builder
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString(fmt.Sprintf("<rss version=\"2.0\"><channel><title>%s %s</title><link>%s/%s/</link><description>Latest %s posts</description>",
			html.EscapeString(base), strings.ToUpper(lang), base, lang, strings.ToUpper(lang)))
		for _, rec := range latest {
			sb.WriteString(fmt.Sprintf("<item><title>%s</title><link>%s</link><guid>%s</guid><pubDate>%s</pubDate><description>%s</description></item>",
				html.EscapeString(rec.Title), rec.URL, rec.URL,
				rec.Published.Format("Mon, 02 Jan 2006 00:00:00 +0000"),
				html.EscapeString(rec.Description)))
		}
		sb.WriteString("</channel></rss>")

		path := filepath.Join(rssDir, lang+".xml")
		if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
			return fmt.Errorf("write feed %s: %w", path, err)
		}
	}

	var idx strings.Builder
	idx.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	idx.WriteString(fmt.Sprintf("<rss version=\"2.0\"><channel><title>RSS Index</title><link>%s/</link><description>All feeds</description>", base))
	for _, lang := range p.Languages() {
		idx.WriteString(fmt.Sprintf("<item><title>%s Feed</title><link>%s/rss/%s.xml</link></item>", strings.ToUpper(lang), base, lang))
	}
	idx.WriteString("</channel></rss>")

	if err := os.WriteFile(filepath.Join(rssDir, "index.xml"), []byte(idx.String()), 0644); err != nil {
		return fmt.Errorf("write feed index: %w", err)
	}
	return nil
}
