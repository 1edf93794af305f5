package site

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/jlafferty/inkwell/content"
)

// Renderer renders site pages from a content snapshot.
type Renderer struct {
	cfg Config
	tpl *template.Template
}

// NewRenderer loads templates from the content root's template folder (or
// the compiled-in defaults) and returns a Renderer.
func NewRenderer(cfg Config, fsys fs.FS) (*Renderer, error) {
	tpl, err := loadTemplates(fsys)
	if err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg, tpl: tpl}, nil
}

// ContentType returns the MIME type of the page at urlPath.
func ContentType(urlPath string) string {
	switch urlPath {
	case "/sitemap.txt":
		return "text/plain; charset=utf-8"
	case "/feed.xml":
		return "application/rss+xml; charset=utf-8"
	}
	return "text/html; charset=utf-8"
}

// RenderPath renders the page at urlPath into w. It returns fs.ErrNotExist
// when the path does not name a page in the snapshot.
func (rd *Renderer) RenderPath(w io.Writer, urlPath string, snap *content.Snapshot) error {
	if urlPath != "/" {
		urlPath = strings.TrimSuffix(urlPath, "/")
	}
	switch urlPath {
	case "/", "/index.html":
		return rd.home(w, snap)
	case "/posts":
		return rd.execute(w, "posts", page{Title: "All posts", Posts: snap.Posts})
	case "/modules":
		return rd.execute(w, "modules", page{Title: "Modules", Modules: snap.Modules})
	case "/tags":
		return rd.execute(w, "tags", page{Title: "Tags", Tags: snap.Tags})
	case "/sitemap.txt":
		return rd.sitemap(w, snap)
	case "/feed.xml":
		return rd.feed(w, snap)
	case "/404.html":
		return rd.NotFound(w)
	case "/500.html":
		return rd.Error(w, "")
	}
	parts := strings.Split(strings.Trim(urlPath, "/"), "/")
	switch {
	case len(parts) == 2 && parts[0] == "posts":
		return rd.standalonePost(w, snap, parts[1])
	case len(parts) == 2 && parts[0] == "modules":
		return rd.module(w, snap, parts[1])
	case len(parts) == 3 && parts[0] == "modules":
		return rd.modulePost(w, snap, parts[1], parts[2])
	case len(parts) == 2 && parts[0] == "tags":
		return rd.tag(w, snap, parts[1])
	}
	return fs.ErrNotExist
}

// URLs enumerates every page path in the snapshot. The baker writes one
// file per path and the sitemap lists them.
func (rd *Renderer) URLs(snap *content.Snapshot) []string {
	r := []string{"/", "/posts", "/modules", "/tags", "/sitemap.txt", "/feed.xml"}
	for _, p := range snap.Standalone {
		r = append(r, "/posts/"+p.Slug)
	}
	for _, m := range snap.Modules {
		r = append(r, "/modules/"+m.Slug)
		for _, p := range snap.ModulePosts[m.Slug] {
			r = append(r, "/modules/"+m.Slug+"/"+p.Slug)
		}
	}
	for _, t := range snap.Tags {
		r = append(r, "/tags/"+t)
	}
	return r
}

// NotFound renders the 404 page.
func (rd *Renderer) NotFound(w io.Writer) error {
	return rd.execute(w, "notfound", page{Title: "Not found"})
}

// Error renders the 500 page.
func (rd *Renderer) Error(w io.Writer, msg string) error {
	return rd.execute(w, "error", page{Title: "Server error", Message: msg})
}

func (rd *Renderer) home(w io.Writer, snap *content.Snapshot) error {
	posts := snap.Posts
	if len(posts) > rd.cfg.HomePosts {
		posts = posts[:rd.cfg.HomePosts]
	}
	return rd.execute(w, "home", page{Posts: posts, Featured: snap.Featured})
}

func (rd *Renderer) standalonePost(w io.Writer, snap *content.Snapshot, slug string) error {
	for i := range snap.Standalone {
		if snap.Standalone[i].Slug == slug {
			p := snap.Standalone[i]
			return rd.execute(w, "post", page{
				Title:   p.Title,
				Post:    &p,
				Content: markdownHTML(p.Content),
			})
		}
	}
	return fs.ErrNotExist
}

func (rd *Renderer) module(w io.Writer, snap *content.Snapshot, slug string) error {
	m := snap.Module(slug)
	if m == nil {
		return fs.ErrNotExist
	}
	return rd.execute(w, "module", page{
		Title:  m.Title,
		Module: m,
		Posts:  snap.ModulePosts[slug],
	})
}

func (rd *Renderer) modulePost(w io.Writer, snap *content.Snapshot, moduleSlug, slug string) error {
	m := snap.Module(moduleSlug)
	if m == nil {
		return fs.ErrNotExist
	}
	posts := snap.ModulePosts[moduleSlug]
	for i := range posts {
		if posts[i].Slug == slug {
			p := posts[i]
			return rd.execute(w, "post", page{
				Title:    p.Title,
				Post:     &p,
				Module:   m,
				Content:  markdownHTML(p.Content),
				Prev:     snap.PrevInModule(p),
				Next:     snap.NextInModule(p),
				Progress: snap.Progress(p),
			})
		}
	}
	return fs.ErrNotExist
}

func (rd *Renderer) tag(w io.Writer, snap *content.Snapshot, tag string) error {
	posts := snap.PostsByTag(tag)
	if len(posts) == 0 {
		return fs.ErrNotExist
	}
	return rd.execute(w, "tag", page{Title: "#" + tag, Tag: tag, Posts: posts})
}

func (rd *Renderer) execute(w io.Writer, name string, d page) error {
	d.Site = rd.cfg
	err := rd.tpl.ExecuteTemplate(w, name, d)
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
