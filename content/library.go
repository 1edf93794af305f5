package content

import (
	"errors"
	"io/fs"
	"log"
	"sort"
)

// AllPosts is the canonical global feed: module posts followed by standalone
// posts, stably sorted descending by date (newest first). Equal dates keep
// concatenation order.
func (l *Library) AllPosts() []Post {
	r := append(l.AllModulePosts(), l.Posts()...)
	sort.SliceStable(r, func(i, j int) bool { return r[i].Date > r[j].Date })
	return r
}

// FindPost looks up a post by slug anywhere in the corpus. Module posts are
// probed first, so a module post shadows a standalone post with the same
// slug. Returns nil when no post exists.
func (l *Library) FindPost(slug string) *Post {
	if p := l.ModulePostBySlug(slug); p != nil {
		return p
	}
	return l.PostBySlug(slug)
}

// featuredLimit caps the featured strip on the home page.
const featuredLimit = 3

// FeaturedPosts returns at most the three most recent featured posts.
func (l *Library) FeaturedPosts() []Post {
	var r []Post
	for _, p := range l.AllPosts() {
		if !p.Featured {
			continue
		}
		r = append(r, p)
		if len(r) == featuredLimit {
			break
		}
	}
	return r
}

// Tags returns every tag used by a public post, deduplicated and sorted
// alphabetically.
func (l *Library) Tags() []string {
	seen := make(map[string]bool)
	var r []string
	for _, p := range l.AllPosts() {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				r = append(r, t)
			}
		}
	}
	sort.Strings(r)
	return r
}

// PostsByTag filters the global feed to posts carrying tag.
func (l *Library) PostsByTag(tag string) []Post {
	var r []Post
	for _, p := range l.AllPosts() {
		for _, t := range p.Tags {
			if t == tag {
				r = append(r, p)
				break
			}
		}
	}
	return r
}

// SlugConflicts reports slugs claimed by more than one markdown file across
// the corpus, drafts included. Lookups stay permissive when slugs collide
// (module posts shadow standalone ones, earlier modules shadow later ones);
// this is the diagnostic that makes a collision visible.
func (l *Library) SlugConflicts() []string {
	count := make(map[string]int)
	scan := func(dir string, skipMetadata bool) {
		entries, err := fs.ReadDir(l.fsys, dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("slugConflicts: %s", err)
			}
			return
		}
		for _, entry := range entries {
			if entry.IsDir() || !isMarkdown(entry.Name()) {
				continue
			}
			if skipMetadata && entry.Name() == metadataFile {
				continue
			}
			count[slugOf(entry.Name())]++
		}
	}
	scan(postsDir, false)
	for _, m := range l.Modules() {
		scan(modulesDir+"/"+m.Slug, true)
	}
	var r []string
	for slug, n := range count {
		if n > 1 {
			r = append(r, slug)
		}
	}
	sort.Strings(r)
	return r
}
