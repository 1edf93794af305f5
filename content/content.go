/*
Package content resolves a tree of markdown files into blog posts and modules.

A Library reads from an fs.FS laid out as:

	posts/
	    <slug>.md | <slug>.mdx          standalone posts
	modules/
	    <module-slug>/
	        metadata.md                 module descriptor
	        <post-slug>.md | .mdx       member posts

Posts carry YAML front matter delimited by "---". Modules are ordered
collections of posts; a module directory without a metadata.md file is
invisible. Missing directories and files resolve to empty results or nil,
never errors. A blog with no content is still a blog.

Every operation reads the file system fresh. For render-time work that wants
one consistent view, Snapshot resolves everything once.
*/
package content

import (
	"io/fs"
	"path"
	"strings"
)

const (
	postsDir     = "posts"
	modulesDir   = "modules"
	metadataFile = "metadata.md"
)

// markdownExts are the recognized post file extensions, in probe order.
var markdownExts = []string{".md", ".mdx"}

// Library resolves posts and modules from a file system.
type Library struct {
	fsys   fs.FS
	drafts bool
}

// Option configures a Library.
type Option func(*Library)

// WithDrafts includes draft posts in listings and lookups.
// Meant for local preview, never for a public site.
func WithDrafts() Option {
	return func(l *Library) {
		l.drafts = true
	}
}

// New returns a Library reading from fsys.
func New(fsys fs.FS, opts ...Option) *Library {
	l := &Library{fsys: fsys}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// isMarkdown reports whether name has a recognized post extension.
func isMarkdown(name string) bool {
	ext := path.Ext(name)
	for _, e := range markdownExts {
		if ext == e {
			return true
		}
	}
	return false
}

// slugOf derives a post slug from its filename.
func slugOf(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}
