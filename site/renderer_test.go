package site

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/jlafferty/inkwell/content"
)

func testSite(t *testing.T) (*Renderer, *content.Snapshot) {
	t.Helper()
	fsys := fstest.MapFS{
		"posts/hello.md": &fstest.MapFile{Data: []byte(`---
title: Hello World
date: 2024-03-01
tags:
  - go
featured: true
---
Some *markdown* content.`)},
		"modules/course/metadata.md": &fstest.MapFile{Data: []byte(`---
title: The Course
order: 1
postOrder:
  - intro
  - setup
---
`)},
		"modules/course/intro.md": &fstest.MapFile{Data: []byte(`---
title: Introduction
date: 2024-01-10
---
Start here.`)},
		"modules/course/setup.md": &fstest.MapFile{Data: []byte(`---
title: Setup
date: 2024-01-05
---
Then continue.`)},
	}
	cfg := Config{Title: "Test Blog", BaseURL: "https://example.com", HomePosts: 10}
	rd, err := NewRenderer(cfg, fsys)
	if err != nil {
		t.Fatal(err)
	}
	return rd, content.New(fsys).Snapshot()
}

func render(t *testing.T, rd *Renderer, snap *content.Snapshot, path string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := rd.RenderPath(&buf, path, snap); err != nil {
		t.Fatalf("RenderPath(%q): %s", path, err)
	}
	return buf.String()
}

func TestRenderHome(t *testing.T) {
	rd, snap := testSite(t)
	out := render(t, rd, snap, "/")
	for _, want := range []string{"Test Blog", "Hello World", "Featured", "/posts/hello"} {
		if !strings.Contains(out, want) {
			t.Errorf("Home page missing %q", want)
		}
	}
}

func TestRenderStandalonePost(t *testing.T) {
	rd, snap := testSite(t)
	out := render(t, rd, snap, "/posts/hello")
	if !strings.Contains(out, "<em>markdown</em>") {
		t.Error("Markdown body not rendered to HTML")
	}
	if !strings.Contains(out, "/tags/go") {
		t.Error("Tag link missing")
	}
}

func TestRenderModulePost(t *testing.T) {
	rd, snap := testSite(t)
	out := render(t, rd, snap, "/modules/course/intro")
	if !strings.Contains(out, "Part 1 of 2") {
		t.Error("Progress missing from the module post page")
	}
	if !strings.Contains(out, "/modules/course/setup") {
		t.Error("Next link missing")
	}
	out = render(t, rd, snap, "/modules/course/setup")
	if !strings.Contains(out, "Part 2 of 2") {
		t.Error("Progress missing on the last post")
	}
	if !strings.Contains(out, "/modules/course/intro") {
		t.Error("Previous link missing")
	}
}

func TestRenderModuleIndex(t *testing.T) {
	rd, snap := testSite(t)
	out := render(t, rd, snap, "/modules")
	if !strings.Contains(out, "The Course") {
		t.Error("Module index missing the module")
	}
	out = render(t, rd, snap, "/modules/course")
	if strings.Index(out, "/modules/course/intro") > strings.Index(out, "/modules/course/setup") {
		t.Error("Module page does not list posts in module order")
	}
}

func TestRenderUnknownPaths(t *testing.T) {
	rd, snap := testSite(t)
	var buf bytes.Buffer
	for _, path := range []string{"/nope", "/posts/nope", "/modules/nope", "/modules/course/nope", "/tags/nope", "/a/b/c/d"} {
		if err := rd.RenderPath(&buf, path, snap); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("RenderPath(%q): expected fs.ErrNotExist, got %v", path, err)
		}
	}
}

func TestRenderSitemap(t *testing.T) {
	rd, snap := testSite(t)
	out := render(t, rd, snap, "/sitemap.txt")
	for _, want := range []string{
		"https://example.com/",
		"https://example.com/posts/hello",
		"https://example.com/modules/course/intro",
		"https://example.com/tags/go",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Sitemap missing %q", want)
		}
	}
	if strings.Contains(out, "sitemap.txt") || strings.Contains(out, "feed.xml") {
		t.Error("Sitemap should not list itself or the feed")
	}
}

func TestRenderFeed(t *testing.T) {
	rd, snap := testSite(t)
	out := render(t, rd, snap, "/feed.xml")
	for _, want := range []string{
		`<rss version="2.0">`,
		"<title>Test Blog</title>",
		"<link>https://example.com/posts/hello</link>",
		"01 Mar 2024",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Feed missing %q", want)
		}
	}
}

func TestRenderErrorPages(t *testing.T) {
	rd, _ := testSite(t)
	var buf bytes.Buffer
	if err := rd.NotFound(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Not found") {
		t.Error("404 page missing its message")
	}
	buf.Reset()
	if err := rd.Error(&buf, "boom"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Error("error page missing its message")
	}
}

func TestURLs(t *testing.T) {
	rd, snap := testSite(t)
	got := rd.URLs(snap)
	want := []string{"/", "/posts", "/posts/hello", "/modules", "/modules/course", "/modules/course/intro", "/modules/course/setup", "/tags", "/tags/go", "/sitemap.txt", "/feed.xml"}
	set := make(map[string]bool, len(got))
	for _, u := range got {
		set[u] = true
	}
	for _, u := range want {
		if !set[u] {
			t.Errorf("URLs missing %q", u)
		}
	}
	if len(got) != len(want) {
		t.Errorf("Expected %d URLs, got %d: %v", len(want), len(got), got)
	}
}

func TestCustomTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"template/site.html": &fstest.MapFile{Data: []byte(
			`{{define "home"}}custom home: {{.Site.Title}}{{end}}` +
				`{{define "notfound"}}custom 404{{end}}` +
				`{{define "error"}}custom error{{end}}`)},
	}
	rd, err := NewRenderer(Config{Title: "T"}, fsys)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := rd.RenderPath(&buf, "/", content.New(fsys).Snapshot()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "custom home: T" {
		t.Errorf("Expected the custom template, got %q", buf.String())
	}
}

func TestRSSDate(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{"2024-03-01", "Fri, 01 Mar 2024 00:00:00 +0000"},
		{"not-a-date", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := rssDate(tt.in); got != tt.want {
			t.Errorf("rssDate(%q): expected %q but got %q", tt.in, tt.want, got)
		}
	}
}
