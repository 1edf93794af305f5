package content

// Snapshot is one complete resolution pass over the Library, taken at a
// point in time. The file system does not change during a page render or a
// bake, so consumers that serve many lookups take a Snapshot once instead
// of re-reading disk per operation. All fields are exported so a Snapshot
// survives gob encoding for the serving cache.
type Snapshot struct {
	Posts       []Post            // global feed, newest first
	Standalone  []Post            // standalone posts only, unsorted
	Modules     []Module          // sorted by Order
	ModulePosts map[string][]Post // ordered member lists by module slug
	Featured    []Post            // at most three most recent featured posts
	Tags        []string          // sorted, deduplicated
}

// Snapshot resolves the whole library once.
func (l *Library) Snapshot() *Snapshot {
	s := &Snapshot{
		Posts:       l.AllPosts(),
		Standalone:  l.Posts(),
		Modules:     l.Modules(),
		ModulePosts: make(map[string][]Post),
		Featured:    l.FeaturedPosts(),
		Tags:        l.Tags(),
	}
	for _, m := range s.Modules {
		s.ModulePosts[m.Slug] = l.ModulePosts(m.Slug)
	}
	return s
}

// FindPost mirrors Library.FindPost against the snapshot: module posts in
// module order first, then standalone posts.
func (s *Snapshot) FindPost(slug string) *Post {
	for _, m := range s.Modules {
		posts := s.ModulePosts[m.Slug]
		for i := range posts {
			if posts[i].Slug == slug {
				return &posts[i]
			}
		}
	}
	for i := range s.Standalone {
		if s.Standalone[i].Slug == slug {
			return &s.Standalone[i]
		}
	}
	return nil
}

// Module returns the module with the given slug, or nil.
func (s *Snapshot) Module(slug string) *Module {
	for i := range s.Modules {
		if s.Modules[i].Slug == slug {
			return &s.Modules[i]
		}
	}
	return nil
}

// PostsByTag filters the feed to posts carrying tag.
func (s *Snapshot) PostsByTag(tag string) []Post {
	var r []Post
	for _, p := range s.Posts {
		for _, t := range p.Tags {
			if t == tag {
				r = append(r, p)
				break
			}
		}
	}
	return r
}

// NextInModule returns the post after p in its module, or nil at the end.
func (s *Snapshot) NextInModule(p Post) *Post {
	posts := s.ModulePosts[p.Module]
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

// PrevInModule returns the post before p in its module, or nil at the start.
func (s *Snapshot) PrevInModule(p Post) *Post {
	posts := s.ModulePosts[p.Module]
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

// Progress reports p's 1-based position within its module, or nil.
func (s *Snapshot) Progress(p Post) *Progress {
	posts := s.ModulePosts[p.Module]
	for i := range posts {
		if posts[i].Slug == p.Slug {
			return &Progress{Current: i + 1, Total: len(posts)}
		}
	}
	return nil
}
