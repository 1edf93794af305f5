package content

import (
	"fmt"
	"strings"
)

// Post is one piece of content, standalone or belonging to a module.
type Post struct {
	Slug        string   // unique identifier, from the filename
	Title       string   // empty when the front matter has none
	Date        string   // ISO date (YYYY-MM-DD), compared lexicographically
	Description string
	Tags        []string // declaration order from the front matter
	Category    string
	Featured    bool
	Draft       bool
	ReadingTime int    // estimated minutes, derived from the body
	Module      string // owning module slug, empty for standalone posts
	Content     string // markdown body following the front matter
}

// wordsPerMinute is the reading-speed estimate behind ReadingTime.
const wordsPerMinute = 200

// readingTime returns the estimated minutes to read body, rounded up.
func readingTime(body string) int {
	words := len(strings.Fields(body))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// loadPost reads one post file into a Post.
func (l *Library) loadPost(name, slug, module string) (Post, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return Post{}, err
	}
	defer f.Close()
	m, body, err := parsePost(f)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", name, err)
	}
	return Post{
		Slug:        slug,
		Title:       m.Title,
		Date:        m.Date,
		Description: m.Description,
		Tags:        m.Tags,
		Category:    m.Category,
		Featured:    m.Featured,
		Draft:       m.Draft,
		ReadingTime: readingTime(body),
		Module:      module,
		Content:     body,
	}, nil
}
