package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trustdealzz/sitegen/internal/content"
)

const baseCSS = `
*{box-sizing:border-box}body{margin:0;font-family:system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,Helvetica,Arial}
.container{max-width:1100px;margin:0 auto;padding:16px}
.site-header,.site-footer{padding:12px 0}
.main-nav a,.footer-nav a{margin-right:12px;text-decoration:none}
article h1{font-size:2rem;margin:.2rem 0 1rem}
article .toc{background:var(--card);padding:12px;border-radius:12px;margin:16px 0}
article figure{margin:16px 0}
.breadcrumbs{font-size:.9rem;margin:6px 0 16px}
.pager{margin:20px 0}
.tags a{display:inline-block;margin-right:8px}
.grid{display:grid;gap:16px}
.home-grid{grid-template-columns:repeat(auto-fill,minmax(260px,1fr))}
.card{background:var(--card);padding:12px;border-radius:14px;box-shadow:0 2px 8px rgba(0,0,0,.06)}
ul.inline{list-style:none;padding:0;margin:0}
ul.inline li{display:inline-block;margin-right:8px}
h3{margin-top:1.2rem}
table{border-collapse:collapse;width:100%;margin:12px 0}
td,th{border:1px solid var(--border);padding:8px}
`

var themeVars = map[string]string{
	"light":    ":root{--bg:#f8fafc;--fg:#0f172a;--card:#ffffff;--border:#e5e7eb} body{background:var(--bg);color:var(--fg)} a{color:#0ea5e9}",
	"dark":     ":root{--bg:#0b1220;--fg:#e5e7eb;--card:#121a2b;--border:#1f2937} body{background:var(--bg);color:var(--fg)} a{color:#60a5fa}",
	"colorful": ":root{--bg:#fff7ed;--fg:#1f2937;--card:#fffbeb;--border:#fed7aa} body{background:var(--bg);color:var(--fg)} a{color:#f97316}",
}

// writeAssets emits one stylesheet per theme variant.
func writeAssets(root string) error {
	assetDir := filepath.Join(root, "assets")
	if err := os.MkdirAll(assetDir, 0755); err != nil {
		return fmt.Errorf("create asset directory: %w", err)
	}
	for _, theme := range content.Themes {
		css := themeVars[theme] + baseCSS
		path := filepath.Join(assetDir, fmt.Sprintf("style-%s.css", theme))
		if err := os.WriteFile(path, []byte(css), 0644); err != nil {
			return fmt.Errorf("write stylesheet %s: %w", path, err)
		}
	}
	return nil
}

// writeRobots emits robots.txt pointing crawlers at the sitemap index, plus
// humans.txt.
func writeRobots(root, baseURL string) error {
	robots := fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemaps/sitemap_index.xml\n", baseURL)
	if err := os.WriteFile(filepath.Join(root, "robots.txt"), []byte(robots), 0644); err != nil {
		return fmt.Errorf("write robots.txt: %w", err)
	}
	humans := "Site: generated with sitegen\n"
	if err := os.WriteFile(filepath.Join(root, "humans.txt"), []byte(humans), 0644); err != nil {
		return fmt.Errorf("write humans.txt: %w", err)
	}
	return nil
}
