package site

import (
	"fmt"
	"io"
	"strings"

	"github.com/jlafferty/inkwell/content"
)

// sitemap writes the plain-text site map, one URL per line. Page paths are
// prefixed with the configured base URL when one is set.
func (rd *Renderer) sitemap(w io.Writer, snap *content.Snapshot) error {
	base := strings.TrimSuffix(rd.cfg.BaseURL, "/")
	for _, u := range rd.URLs(snap) {
		if u == "/sitemap.txt" || u == "/feed.xml" {
			continue
		}
		if _, err := fmt.Fprintln(w, base+u); err != nil {
			return fmt.Errorf("sitemap: %w", err)
		}
	}
	return nil
}
