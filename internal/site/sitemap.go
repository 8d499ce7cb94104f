package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SitemapURLLimit is the maximum number of <url> entries per sitemap file.
// The ceiling comes from the sitemaps.org protocol and is not tunable.
const SitemapURLLimit = 50000

// ChunkURLs splits urls into groups of at most SitemapURLLimit entries.
func ChunkURLs(urls []string) [][]string {
	if len(urls) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(urls)+SitemapURLLimit-1)/SitemapURLLimit)
	for start := 0; start < len(urls); start += SitemapURLLimit {
		end := start + SitemapURLLimit
		if end > len(urls) {
			end = len(urls)
		}
		chunks = append(chunks, urls[start:end])
	}
	return chunks
}

// WriteSitemaps writes one sitemap file per chunk plus a sitemap index that
// references exactly ceil(len(urls)/SitemapURLLimit) chunk files.
func WriteSitemaps(root, baseURL string, urls []string, now time.Time) ([]string, error) {
	sitemapDir := filepath.Join(root, "sitemaps")
	if err := os.MkdirAll(sitemapDir, 0755); err != nil {
		return nil, fmt.Errorf("create sitemap directory: %w", err)
	}

	chunks := ChunkURLs(urls)
	written := make([]string, 0, len(chunks)+1)
	var index strings.Builder
	index.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	index.WriteString("<sitemapindex xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")

	for i, chunk := range chunks {
		name := fmt.Sprintf("sitemap-%03d.xml", i+1)
		path := filepath.Join(sitemapDir, name)

		var sm strings.Builder
		sm.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sm.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
		for _, u := range chunk {
			sm.WriteString("<url><loc>")
			sm.WriteString(u)
			sm.WriteString("</loc></url>\n")
		}
		sm.WriteString("</urlset>\n")

		if err := os.WriteFile(path, []byte(sm.String()), 0644); err != nil {
			return written, fmt.Errorf("write sitemap chunk %s: %w", name, err)
		}
		written = append(written, path)

		index.WriteString(fmt.Sprintf("<sitemap><loc>%s/sitemaps/%s</loc><lastmod>%s</lastmod></sitemap>\n",
			strings.TrimRight(baseURL, "/"), name, now.UTC().Format(time.RFC3339)))
	}

	index.WriteString("</sitemapindex>\n")
	indexPath := filepath.Join(sitemapDir, "sitemap_index.xml")
	if err := os.WriteFile(indexPath, []byte(index.String()), 0644); err != nil {
		return written, fmt.Errorf("write sitemap index: %w", err)
	}
	written = append(written, indexPath)
	return written, nil
}
