package content

import (
	"errors"
	"io/fs"
	"log"
	"path"
	"sort"
)

// Modules returns every module under the modules directory, sorted ascending
// by Order. A subdirectory without a metadata.md descriptor is invisible.
// The sort is stable, so equal orders keep directory-scan order.
func (l *Library) Modules() []Module {
	entries, err := fs.ReadDir(l.fsys, modulesDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("modules: %s", err)
		}
		return nil
	}
	var r []Module
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m, err := l.readModule(entry.Name())
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("modules: %s", err)
			}
			continue
		}
		r = append(r, *m)
	}
	sort.SliceStable(r, func(i, j int) bool { return r[i].Order < r[j].Order })
	return r
}

// Module looks up one module by slug. It returns nil when the directory or
// its metadata.md does not exist.
func (l *Library) Module(slug string) *Module {
	m, err := l.readModule(slug)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("module: %s", err)
		}
		return nil
	}
	return m
}

// readModule builds a Module from its metadata.md descriptor.
func (l *Library) readModule(slug string) (*Module, error) {
	f, err := l.fsys.Open(path.Join(modulesDir, slug, metadataFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := parseModule(f)
	if err != nil {
		return nil, err
	}
	return &Module{
		Slug:        slug,
		Title:       m.Title,
		Description: m.Description,
		Order:       m.order(),
		PostOrder:   m.PostOrder,
	}, nil
}

// ModulePosts returns the ordered member posts of one module, drafts
// filtered, each with Module set. Members listed in the module's postOrder
// come first, in list position; unlisted members follow sorted ascending by
// date. With no postOrder the whole list sorts ascending by date, oldest
// first, the reverse of the global feed, because a module reads like a
// course rather than a stream.
func (l *Library) ModulePosts(moduleSlug string) []Post {
	m := l.Module(moduleSlug)
	if m == nil {
		return nil
	}
	entries, err := fs.ReadDir(l.fsys, path.Join(modulesDir, moduleSlug))
	if err != nil {
		log.Printf("modulePosts: %s", err)
		return nil
	}
	var r []Post
	for _, entry := range entries {
		if entry.IsDir() || !isMarkdown(entry.Name()) || entry.Name() == metadataFile {
			continue
		}
		p, err := l.loadPost(path.Join(modulesDir, moduleSlug, entry.Name()), slugOf(entry.Name()), moduleSlug)
		if err != nil {
			log.Printf("modulePosts: %s", err)
			continue
		}
		if p.Draft && !l.drafts {
			continue
		}
		r = append(r, p)
	}
	sortModulePosts(r, m.PostOrder)
	return r
}

// sortModulePosts applies the module ordering rule: explicitly ordered posts
// precede unordered ones, ordered posts compare by postOrder position, and
// unordered posts compare by ascending date.
func sortModulePosts(posts []Post, postOrder []string) {
	pos := func(slug string) int {
		for i, s := range postOrder {
			if s == slug {
				return i
			}
		}
		return -1
	}
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := pos(posts[i].Slug), pos(posts[j].Slug)
		switch {
		case a >= 0 && b >= 0:
			return a < b
		case a >= 0:
			return true
		case b >= 0:
			return false
		default:
			return posts[i].Date < posts[j].Date
		}
	})
}

// AllModulePosts concatenates every module's ordered posts, in module order.
func (l *Library) AllModulePosts() []Post {
	var r []Post
	for _, m := range l.Modules() {
		r = append(r, l.ModulePosts(m.Slug)...)
	}
	return r
}

// ModulePostBySlug looks up a post across all modules by probing
// <module>/<slug>.md then .mdx per module, in Modules order. The first
// match wins, so a slug present in two modules resolves to the module
// that sorts first.
func (l *Library) ModulePostBySlug(slug string) *Post {
	for _, m := range l.Modules() {
		for _, ext := range markdownExts {
			p, err := l.loadPost(path.Join(modulesDir, m.Slug, slug+ext), slug, m.Slug)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					log.Printf("modulePostBySlug: %s", err)
				}
				continue
			}
			if p.Draft && !l.drafts {
				continue
			}
			return &p
		}
	}
	return nil
}

// NextInModule returns the post after p in its module's ordered list, or nil
// at the end of the module or when p has no module. There is no wraparound.
func (l *Library) NextInModule(p Post) *Post {
	posts := l.moduleSiblings(p)
	for i := range posts {
		if posts[i].Slug == p.Slug {
			if i < len(posts)-1 {
				return &posts[i+1]
			}
			return nil
		}
	}
	return nil
}

// PrevInModule returns the post before p in its module's ordered list, or
// nil at the start of the module or when p has no module.
func (l *Library) PrevInModule(p Post) *Post {
	posts := l.moduleSiblings(p)
	for i := range posts {
		if posts[i].Slug == p.Slug {
			if i > 0 {
				return &posts[i-1]
			}
			return nil
		}
	}
	return nil
}

// ModuleProgress reports p's 1-based position within its module, or nil when
// p has no module or cannot be found in its module's list.
func (l *Library) ModuleProgress(p Post) *Progress {
	posts := l.moduleSiblings(p)
	for i := range posts {
		if posts[i].Slug == p.Slug {
			return &Progress{Current: i + 1, Total: len(posts)}
		}
	}
	return nil
}

func (l *Library) moduleSiblings(p Post) []Post {
	if p.Module == "" {
		return nil
	}
	return l.ModulePosts(p.Module)
}
