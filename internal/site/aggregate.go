package site

import (
	"fmt"
	"html"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/trustdealzz/sitegen/internal/plan"
)

// Aggregate pages consume only the plan's indices, never the written files,
// so they stay correct even when individual page writes failed.

const (
	hubPageLimit = 1000
	tagPageLimit = 2000
	latestLimit  = 20
)

// writeHome emits the main home page, one landing page per language, and the
// 404/privacy pages.
func (e *Emitter) writeHome() error {
	ui := e.renderer.UI()

	var cards strings.Builder
	var all strings.Builder
	for _, lang := range e.plan.Languages() {
		latest := latestRecords(e.plan.ByLang(lang), latestLimit)

		var landing strings.Builder
		landing.WriteString(fmt.Sprintf("<h1>%s (%s)</h1>\n", html.EscapeString(ui.T(lang, "home")), strings.ToUpper(lang)))
		landing.WriteString("<div class=\"grid home-grid\">\n")
		for _, rec := range latest {
			landing.WriteString(fmt.Sprintf("<div class=\"card\"><h3><a href=\"%s\">%s</a></h3><p>%s</p></div>\n",
				rec.URL, html.EscapeString(rec.Title), html.EscapeString(rec.Description)))
		}
		landing.WriteString("</div>\n")
		landing.WriteString(fmt.Sprintf("<h2>%s</h2>\n<ul>\n", html.EscapeString(ui.T(lang, "allPosts"))))
		for _, rec := range e.plan.ByLang(lang) {
			landing.WriteString(recordListItem(rec))
		}
		landing.WriteString("</ul>\n")

		head := fmt.Sprintf("<title>%s — %s</title>\n<meta name=\"description\" content=\"Latest articles (%s)\">\n",
			html.EscapeString(ui.T(lang, "home")), strings.ToUpper(lang), strings.ToUpper(lang))
		page := e.renderer.Document(lang, head, landing.String())
		if err := e.writeFile(filepath.Join(lang, "index.html"), page); err != nil {
			return err
		}

		cards.WriteString(fmt.Sprintf("<div class=\"card\"><h3><a href=\"/%s/\">%s — %s</a></h3><ul>\n",
			lang, strings.ToUpper(lang), html.EscapeString(ui.T(lang, "home"))))
		for _, rec := range latest {
			cards.WriteString(recordListItem(rec))
		}
		cards.WriteString("</ul></div>\n")

		for _, rec := range e.plan.ByLang(lang) {
			all.WriteString(recordListItem(rec))
		}
	}

	var body strings.Builder
	body.WriteString("<h1>Welcome</h1>\n")
	body.WriteString("<p>Language portals and the complete article index.</p>\n")
	body.WriteString("<div class=\"grid home-grid\">\n")
	body.WriteString(cards.String())
	body.WriteString("</div>\n<section>\n<h2>All articles</h2>\n<ul>\n")
	body.WriteString(all.String())
	body.WriteString("</ul>\n</section>\n")
	body.WriteString(e.renderer.JSONLDWebSite())

	head := "<title>Home</title>\n<meta name=\"description\" content=\"All generated articles per language\">\n"
	if err := e.writeFile("index.html", e.renderer.Document("en", head, body.String())); err != nil {
		return err
	}

	notFound := "<h1>404</h1>\n<p>Sorry, page not found. Try a language portal:</p>\n<ul>\n"
	for _, lang := range e.plan.Languages() {
		notFound += fmt.Sprintf("<li><a href=\"/%s/\">%s</a></li>\n", lang, strings.ToUpper(lang))
	}
	notFound += "</ul>\n"
	head404 := "<title>404 Not Found</title>\n<meta name=\"robots\" content=\"noindex\">\n"
	if err := e.writeFile("404.html", e.renderer.Document("en", head404, notFound)); err != nil {
		return err
	}

	privacy := "<h1>Privacy Policy</h1>\n<p>Generated test website. No real tracking.</p>\n"
	return e.writeFile("privacy.html", e.renderer.Document("en", "<title>Privacy Policy</title>\n", privacy))
}

// writeHubs emits one hub page per (category, subcategory) per language,
// plus a category-level page listing the category's articles.
func (e *Emitter) writeHubs() error {
	for _, lang := range e.plan.Languages() {
		keys := e.plan.Categories(lang)
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].Category != keys[j].Category {
				return keys[i].Category < keys[j].Category
			}
			return keys[i].Subcategory < keys[j].Subcategory
		})

		byCategory := make(map[string][]*plan.Record)
		for _, key := range keys {
			records := latestRecords(e.plan.ByCategory(lang, key), hubPageLimit)
			byCategory[key.Category] = append(byCategory[key.Category], records...)

			body := fmt.Sprintf("<h1>%s › %s</h1>\n%s",
				html.EscapeString(key.Category), html.EscapeString(key.Subcategory), recordList(records))
			head := fmt.Sprintf("<title>%s / %s</title>\n<meta name=\"description\" content=\"%s - %s hub\">\n",
				html.EscapeString(key.Category), html.EscapeString(key.Subcategory),
				html.EscapeString(key.Category), html.EscapeString(key.Subcategory))
			rel := filepath.Join(lang, "category", url.QueryEscape(key.Category), url.QueryEscape(key.Subcategory), "index.html")
			if err := e.writeFile(rel, e.renderer.Document(lang, head, body)); err != nil {
				return err
			}
		}

		categories := make([]string, 0, len(byCategory))
		for category := range byCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			records := latestRecords(byCategory[category], hubPageLimit)
			body := fmt.Sprintf("<h1>%s</h1>\n%s", html.EscapeString(category), recordList(records))
			head := fmt.Sprintf("<title>%s</title>\n", html.EscapeString(category))
			rel := filepath.Join(lang, "category", url.QueryEscape(category), "index.html")
			if err := e.writeFile(rel, e.renderer.Document(lang, head, body)); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeTags emits one page per tag per language.
func (e *Emitter) writeTags() error {
	for _, lang := range e.plan.Languages() {
		tags := e.plan.Tags(lang)
		sort.Strings(tags)
		for _, tag := range tags {
			records := e.plan.ByTag(lang, tag)
			if len(records) > tagPageLimit {
				records = records[:tagPageLimit]
			}
			body := fmt.Sprintf("<h1>#%s</h1>\n%s", html.EscapeString(tag), recordList(records))
			head := fmt.Sprintf("<title>#%s</title>\n<meta name=\"description\" content=\"Tag: %s\">\n",
				html.EscapeString(tag), html.EscapeString(tag))
			rel := filepath.Join(lang, "tags", url.QueryEscape(tag), "index.html")
			if err := e.writeFile(rel, e.renderer.Document(lang, head, body)); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeArchives emits one page per (year, month) per language plus the
// master archive index listing everything.
func (e *Emitter) writeArchives() error {
	for _, lang := range e.plan.Languages() {
		months := e.plan.Archives(lang)
		sort.Slice(months, func(i, j int) bool {
			if months[i].Year != months[j].Year {
				return months[i].Year < months[j].Year
			}
			return months[i].Month < months[j].Month
		})
		for _, ym := range months {
			records := append([]*plan.Record(nil), e.plan.ByArchive(lang, ym)...)
			sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

			label := fmt.Sprintf("%s — %04d-%02d", strings.ToUpper(lang), ym.Year, int(ym.Month))
			body := fmt.Sprintf("<h1>%s %s</h1>\n%s",
				html.EscapeString(e.renderer.UI().T(lang, "archive")), label, recordList(records))
			head := fmt.Sprintf("<title>%s %s</title>\n", html.EscapeString(e.renderer.UI().T(lang, "archive")), label)
			rel := filepath.Join("archive", lang, fmt.Sprintf("%04d", ym.Year), fmt.Sprintf("%02d", int(ym.Month)), "index.html")
			if err := e.writeFile(rel, e.renderer.Document(lang, head, body)); err != nil {
				return err
			}
		}
	}

	var all strings.Builder
	for _, lang := range e.plan.Languages() {
		for _, rec := range e.plan.ByLang(lang) {
			all.WriteString(recordListItem(rec))
		}
	}
	body := fmt.Sprintf("<h1>Archive</h1>\n<ul>%s</ul>\n", all.String())
	return e.writeFile(filepath.Join("archive", "index.html"),
		e.renderer.Document("en", "<title>Archive</title>\n", body))
}

// writeFile writes page content under the output root, creating parent
// directories and the optional gzip sibling.
func (e *Emitter) writeFile(rel, content string) error {
	path := filepath.Join(e.cfg.Output.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if e.cfg.Output.Compress {
		if err := gzipFile(path); err != nil {
			return err
		}
	}
	return nil
}

func latestRecords(records []*plan.Record, limit int) []*plan.Record {
	sorted := append([]*plan.Record(nil), records...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Published.After(sorted[j].Published)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func recordList(records []*plan.Record) string {
	var sb strings.Builder
	sb.WriteString("<ul>\n")
	for _, rec := range records {
		sb.WriteString(recordListItem(rec))
	}
	sb.WriteString("</ul>\n")
	return sb.String()
}

func recordListItem(rec *plan.Record) string {
	return fmt.Sprintf("<li><a href=\"%s\">%s</a></li>\n", rec.URL, html.EscapeString(rec.Title))
}
