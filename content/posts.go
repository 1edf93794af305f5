package content

import (
	"errors"
	"io/fs"
	"log"
	"path"
)

// Posts returns the standalone posts from the posts directory. Drafts are
// filtered out and no order is applied; AllPosts sorts the global feed.
// A missing posts directory yields no posts, not an error.
func (l *Library) Posts() []Post {
	entries, err := fs.ReadDir(l.fsys, postsDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("posts: %s", err)
		}
		return nil
	}
	var r []Post
	for _, entry := range entries {
		if entry.IsDir() || !isMarkdown(entry.Name()) {
			continue
		}
		p, err := l.loadPost(path.Join(postsDir, entry.Name()), slugOf(entry.Name()), "")
		if err != nil {
			log.Printf("posts: %s", err)
			continue
		}
		if p.Draft && !l.drafts {
			continue
		}
		r = append(r, p)
	}
	return r
}

// PostBySlug looks up one standalone post, probing <slug>.md then <slug>.mdx.
// It returns nil when neither file exists or the post is a draft. A draft hit
// does not stop the probe, so a published .mdx still resolves when a draft
// .md shares its slug.
func (l *Library) PostBySlug(slug string) *Post {
	for _, ext := range markdownExts {
		p, err := l.loadPost(path.Join(postsDir, slug+ext), slug, "")
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("postBySlug: %s", err)
			}
			continue
		}
		if p.Draft && !l.drafts {
			continue
		}
		return &p
	}
	return nil
}
