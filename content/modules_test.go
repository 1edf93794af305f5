package content

import (
	"reflect"
	"testing"
)

func TestModules(t *testing.T) {
	l := New(fixture())
	mods := l.Modules()
	if len(mods) != 2 {
		t.Fatalf("Expected 2 modules but got %d: %+v", len(mods), mods)
	}
	if mods[0].Slug != "course" || mods[0].Order != 1 {
		t.Errorf("Expected course first with order 1, got %+v", mods[0])
	}
	if mods[1].Slug != "notes" || mods[1].Order != defaultOrder {
		t.Errorf("Expected notes with the default order, got %+v", mods[1])
	}
	if !reflect.DeepEqual(mods[0].PostOrder, []string{"intro", "setup"}) {
		t.Errorf("Unexpected postOrder: %v", mods[0].PostOrder)
	}
}

func TestModuleWithoutMetadataIsInvisible(t *testing.T) {
	l := New(fixture())
	for _, m := range l.Modules() {
		if m.Slug == "scratch" {
			t.Error("Directory without metadata.md listed as a module")
		}
	}
	if l.Module("scratch") != nil {
		t.Error("Expected nil for a directory without metadata.md")
	}
	if got := l.ModulePosts("scratch"); got != nil {
		t.Errorf("Expected no posts for an invisible module, got %v", got)
	}
}

func TestModuleLookup(t *testing.T) {
	l := New(fixture())
	m := l.Module("course")
	if m == nil {
		t.Fatal("Module returned nil")
	}
	if m.Title != "The Course" || m.Description != "Read in order." {
		t.Errorf("Unexpected module: %+v", m)
	}
	if l.Module("missing") != nil {
		t.Error("Expected nil for an unknown module")
	}
}

// Explicitly ordered members come first, in postOrder position, and
// unordered members follow by ascending date.
func TestModulePostsExplicitOrder(t *testing.T) {
	l := New(fixture())
	got := slugs(l.ModulePosts("course"))
	want := []string{"intro", "setup", "extra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v but got %v", want, got)
	}
}

// Without a postOrder, members sort oldest first, the reverse of the
// global feed.
func TestModulePostsDateOrder(t *testing.T) {
	l := New(fixture())
	got := slugs(l.ModulePosts("notes"))
	want := []string{"two", "one"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v but got %v", want, got)
	}
}

func TestSortModulePosts(t *testing.T) {
	var tests = []struct {
		name      string
		posts     []Post
		postOrder []string
		want      []string
	}{
		{
			"explicit order overrides dates",
			[]Post{{Slug: "a", Date: "2024-01-01"}, {Slug: "b", Date: "2024-02-01"}},
			[]string{"b", "a"},
			[]string{"b", "a"},
		},
		{
			"ordered precede unordered regardless of dates",
			[]Post{{Slug: "c", Date: "2023-01-01"}, {Slug: "a", Date: "2024-06-01"}},
			[]string{"a"},
			[]string{"a", "c"},
		},
		{
			"no order falls back to ascending date",
			[]Post{{Slug: "x", Date: "2024-03-01"}, {Slug: "y", Date: "2024-01-01"}},
			nil,
			[]string{"y", "x"},
		},
		{
			"unordered tail sorts by date",
			[]Post{
				{Slug: "late", Date: "2024-05-01"},
				{Slug: "first", Date: "2024-04-01"},
				{Slug: "early", Date: "2024-01-01"},
			},
			[]string{"first"},
			[]string{"first", "early", "late"},
		},
	}
	for _, tt := range tests {
		posts := append([]Post(nil), tt.posts...)
		sortModulePosts(posts, tt.postOrder)
		if got := slugs(posts); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: expected %v but got %v", tt.name, tt.want, got)
		}
	}
}

func TestModulePostFields(t *testing.T) {
	l := New(fixture())
	for _, p := range l.ModulePosts("course") {
		if p.Module != "course" {
			t.Errorf("Post %q missing module slug, got %q", p.Slug, p.Module)
		}
	}
}

func TestNavigationBoundaries(t *testing.T) {
	l := New(fixture())
	posts := l.ModulePosts("course") // intro, setup, extra
	if got := l.PrevInModule(posts[0]); got != nil {
		t.Errorf("Expected nil before the first post, got %q", got.Slug)
	}
	if got := l.NextInModule(posts[len(posts)-1]); got != nil {
		t.Errorf("Expected nil after the last post, got %q", got.Slug)
	}
	if got := l.NextInModule(posts[0]); got == nil || got.Slug != "setup" {
		t.Errorf("Expected setup after intro, got %v", got)
	}
	if got := l.PrevInModule(posts[2]); got == nil || got.Slug != "setup" {
		t.Errorf("Expected setup before extra, got %v", got)
	}
}

func TestNavigationWithoutModule(t *testing.T) {
	l := New(fixture())
	p := l.PostBySlug("hello")
	if p == nil {
		t.Fatal("PostBySlug returned nil")
	}
	if l.NextInModule(*p) != nil || l.PrevInModule(*p) != nil || l.ModuleProgress(*p) != nil {
		t.Error("Expected nil navigation for a standalone post")
	}
}

func TestModuleProgress(t *testing.T) {
	l := New(fixture())
	posts := l.ModulePosts("course")
	seen := make(map[int]bool)
	for _, p := range posts {
		pr := l.ModuleProgress(p)
		if pr == nil {
			t.Fatalf("Expected progress for %q", p.Slug)
		}
		if pr.Total != len(posts) {
			t.Errorf("Expected total %d for %q, got %d", len(posts), p.Slug, pr.Total)
		}
		if pr.Current < 1 || pr.Current > pr.Total || seen[pr.Current] {
			t.Errorf("Bad position %d for %q", pr.Current, p.Slug)
		}
		seen[pr.Current] = true
	}
}

func TestModulePostBySlugFirstModuleWins(t *testing.T) {
	fsys := fixture()
	fsys["modules/notes/intro.md"] = file(`---
title: Notes Intro
date: 2024-06-01
---
Same slug, later module.`)
	l := New(fsys)
	p := l.ModulePostBySlug("intro")
	if p == nil {
		t.Fatal("ModulePostBySlug returned nil")
	}
	// course sorts before notes, so its intro wins
	if p.Module != "course" {
		t.Errorf("Expected the course post, got module %q", p.Module)
	}
}
