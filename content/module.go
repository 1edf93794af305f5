package content

// Module is a named, ordered collection of posts backed by one directory
// under modules/ and its metadata.md descriptor.
type Module struct {
	Slug        string // from the directory name
	Title       string
	Description string
	Order       int      // display order among modules; 999 when unset
	PostOrder   []string // explicit member ordering by slug; may be empty
}

// Progress locates a post within its module's ordered list.
type Progress struct {
	Current int // 1-based position
	Total   int
}
