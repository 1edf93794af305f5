// Command bake renders the whole site into a static output folder: every
// page, the sitemap, the RSS feed, and a copy of the static assets. The
// result can be served by any file server.
package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jlafferty/inkwell/content"
	"github.com/jlafferty/inkwell/site"
)

func main() {
	folder := flag.String("root", ".", "Root of the site content.")
	out := flag.String("out", "public", "Output folder for the baked site.")
	drafts := flag.Bool("drafts", false, "Include draft posts in the baked site.")

	flag.Parse()

	fsys := os.DirFS(*folder)

	// Load config and templates
	cfg, err := site.LoadConfig(fsys)
	if err != nil {
		log.Fatal(err)
	}
	renderer, err := site.NewRenderer(cfg, fsys)
	if err != nil {
		log.Fatal(err)
	}

	// Resolve the content once for the whole bake
	var opts []content.Option
	if *drafts {
		log.Print("Including draft posts")
		opts = append(opts, content.WithDrafts())
	}
	lib := content.New(fsys, opts...)
	if conflicts := lib.SlugConflicts(); len(conflicts) > 0 {
		log.Printf("WARNING: duplicate slugs resolve by module precedence: %v", conflicts)
	}
	snap := lib.Snapshot()

	// Render every page
	pages := append(renderer.URLs(snap), "/404.html", "/500.html")
	for _, u := range pages {
		name := filepath.Join(*out, outputFile(u))
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			log.Fatal(err)
		}
		f, err := os.Create(name)
		if err != nil {
			log.Fatal(err)
		}
		err = renderer.RenderPath(f, u, snap)
		f.Close()
		if err != nil {
			log.Fatalf("bake %s: %s", u, err)
		}
	}
	log.Printf("Baked %d pages", len(pages))

	// Copy static assets
	n, err := copyStatic(fsys, *out)
	if err != nil {
		log.Fatal(err)
	}
	if n > 0 {
		log.Printf("Copied %d static files", n)
	}
}

// outputFile maps a page URL to its file in the output folder. Pages with
// no extension become index.html files so file servers resolve the clean
// URLs as-is.
func outputFile(u string) string {
	if u == "/" {
		return "index.html"
	}
	if path.Ext(u) != "" {
		return strings.TrimPrefix(u, "/")
	}
	return strings.TrimPrefix(u, "/") + "/index.html"
}

// copyStatic copies the static folder into the output, returning the number
// of files copied. A site without static assets is fine.
func copyStatic(fsys fs.FS, out string) (int, error) {
	count := 0
	err := fs.WalkDir(fsys, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "static" && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(filepath.Join(out, p), 0o755)
		}
		src, err := fsys.Open(p)
		if err != nil {
			return err
		}
		defer src.Close()
		dst, err := os.Create(filepath.Join(out, p))
		if err != nil {
			return err
		}
		defer dst.Close()
		if _, err := io.Copy(dst, src); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}
