package site

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// gzipFile writes a .gz sibling next to an already-written page so the web
// server can serve precompressed content.
func gzipFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s for compression: %w", path, err)
	}

	out, err := os.Create(path + ".gz")
	if err != nil {
		return fmt.Errorf("create %s.gz: %w", path, err)
	}
	defer out.Close()

	zw, err := gzip.NewWriterLevel(out, 6)
	if err != nil {
		return err
	}
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return fmt.Errorf("compress %s: %w", path, err)
	}
	return zw.Close()
}
