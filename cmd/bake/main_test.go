package main

import "testing"

func TestOutputFile(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{"/", "index.html"},
		{"/posts", "posts/index.html"},
		{"/posts/hello", "posts/hello/index.html"},
		{"/modules/course/intro", "modules/course/intro/index.html"},
		{"/sitemap.txt", "sitemap.txt"},
		{"/feed.xml", "feed.xml"},
		{"/404.html", "404.html"},
	}
	for _, tt := range tests {
		if got := outputFile(tt.in); got != tt.want {
			t.Errorf("outputFile(%q): expected %q but got %q", tt.in, tt.want, got)
		}
	}
}
