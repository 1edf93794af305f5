package content

import (
	"fmt"
	"io"

	"github.com/adrg/frontmatter"
)

// postMatter holds the YAML front matter of a post file.
type postMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Category    string   `yaml:"category"`
	Featured    bool     `yaml:"featured"`
	Draft       bool     `yaml:"draft"`
	Module      string   `yaml:"module"`
}

// moduleMatter holds the YAML front matter of a module's metadata.md.
type moduleMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Order       *int     `yaml:"order"`
	PostOrder   []string `yaml:"postOrder"`
}

// defaultOrder sorts modules without an explicit order after all others.
const defaultOrder = 999

// parsePost splits a post file into front matter and markdown body.
func parsePost(r io.Reader) (postMatter, string, error) {
	var m postMatter
	body, err := frontmatter.Parse(r, &m)
	if err != nil {
		return postMatter{}, "", fmt.Errorf("parsePost: %w", err)
	}
	return m.normalize(), string(body), nil
}

// parseModule reads a module descriptor's front matter.
func parseModule(r io.Reader) (moduleMatter, error) {
	var m moduleMatter
	if _, err := frontmatter.Parse(r, &m); err != nil {
		return moduleMatter{}, fmt.Errorf("parseModule: %w", err)
	}
	return m, nil
}

// normalize applies the field defaults in one visible place, so partially
// filled front matter never produces missing values downstream.
func (m postMatter) normalize() postMatter {
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return m
}

// order resolves the module's display order, defaulting to defaultOrder.
func (m moduleMatter) order() int {
	if m.Order == nil {
		return defaultOrder
	}
	return *m.Order
}
