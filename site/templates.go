package site

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"

	"github.com/jlafferty/inkwell/content"
)

// page is what page templates receive. Fields not relevant to a given
// template are left at their zero value.
type page struct {
	Site     Config
	Title    string
	Post     *content.Post
	Posts    []content.Post
	Featured []content.Post
	Module   *content.Module
	Modules  []content.Module
	Tag      string
	Tags     []string
	Content  template.HTML // rendered markdown body
	Prev     *content.Post
	Next     *content.Post
	Progress *content.Progress
	Message  string // for the error page
}

// markdownHTML renders a markdown body into HTML.
func markdownHTML(s string) template.HTML {
	return template.HTML(blackfriday.Run([]byte(s)))
}

// funcMap exposes helpers to the page templates.
var funcMap = template.FuncMap{
	"markdown":   markdownHTML,
	"posturl":    postURL,
	"join":       path.Join,
	"trimsuffix": strings.TrimSuffix,
	"trimprefix": strings.TrimPrefix,
	"trimspace":  strings.TrimSpace,
	"now":        time.Now,
}

// postURL returns the canonical page path for a post. Templates hand it
// both values (from range) and pointers (Prev/Next), so it takes either.
func postURL(v any) string {
	var p content.Post
	switch x := v.(type) {
	case content.Post:
		p = x
	case *content.Post:
		if x == nil {
			return ""
		}
		p = *x
	default:
		return ""
	}
	if p.Module != "" {
		return "/modules/" + p.Module + "/" + p.Slug
	}
	return "/posts/" + p.Slug
}

// loadTemplates parses the template folder, falling back to the compiled-in
// defaults when the folder is missing or empty.
func loadTemplates(fsys fs.FS) (*template.Template, error) {
	matches, _ := fs.Glob(fsys, "template/*.html")
	if len(matches) == 0 {
		tpl, err := template.New("inkwell").Funcs(funcMap).Parse(defaultTemplates)
		if err != nil {
			return nil, fmt.Errorf("loadTemplates: %w", err)
		}
		return tpl, nil
	}
	tpl, err := template.New("inkwell").Funcs(funcMap).ParseFS(fsys, "template/*.html")
	if err != nil {
		return nil, fmt.Errorf("loadTemplates: %w", err)
	}
	return tpl, nil
}

const defaultTemplates = `{{define "head"}}<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>{{if .Title}}{{.Title}} - {{end}}{{.Site.Title}}</title>
		{{if .Post}}{{with .Post.Description}}<meta name="description" content="{{.}}">{{end}}{{else}}{{with .Site.Description}}<meta name="description" content="{{.}}">{{end}}{{end}}
	</head>
	<body>
		<header>
			<a href="/">{{.Site.Title}}</a>
			<nav><a href="/posts">Posts</a> <a href="/modules">Modules</a> <a href="/tags">Tags</a></nav>
		</header>
{{end}}{{define "foot"}}
		<footer>{{with .Site.Author}}{{.}} - {{end}}<a href="/feed.xml">RSS</a></footer>
	</body>
</html>
{{end}}{{define "postitem"}}
	<li>
		<a href="{{posturl .}}">{{.Title}}</a>
		<small>{{.Date}}{{if .ReadingTime}} - {{.ReadingTime}} min{{end}}</small>
	</li>
{{end}}{{define "home"}}{{template "head" .}}
		{{if .Featured}}<section>
			<h2>Featured</h2>
			<ul>{{range .Featured}}{{template "postitem" .}}{{end}}</ul>
		</section>{{end}}
		<section>
			<h2>Latest</h2>
			<ul>{{range .Posts}}{{template "postitem" .}}{{end}}</ul>
		</section>
{{template "foot" .}}{{end}}{{define "posts"}}{{template "head" .}}
		<h1>All posts</h1>
		<ul>{{range .Posts}}{{template "postitem" .}}{{end}}</ul>
{{template "foot" .}}{{end}}{{define "post"}}{{template "head" .}}
		<article>
			<h1>{{.Post.Title}}</h1>
			<p><small>{{.Post.Date}}{{if .Post.ReadingTime}} - {{.Post.ReadingTime}} min read{{end}}{{with .Post.Category}} - {{.}}{{end}}</small></p>
			{{.Content}}
			{{if .Post.Tags}}<p>{{range .Post.Tags}}<a href="/tags/{{.}}">#{{.}}</a> {{end}}</p>{{end}}
		</article>
		{{if .Progress}}<p>Part {{.Progress.Current}} of {{.Progress.Total}} in <a href="/modules/{{.Module.Slug}}">{{.Module.Title}}</a></p>{{end}}
		<nav>
			{{if .Prev}}<a href="{{posturl .Prev}}">&larr; {{.Prev.Title}}</a>{{end}}
			{{if .Next}}<a href="{{posturl .Next}}">{{.Next.Title}} &rarr;</a>{{end}}
		</nav>
{{template "foot" .}}{{end}}{{define "modules"}}{{template "head" .}}
		<h1>Modules</h1>
		<ul>{{range .Modules}}
			<li><a href="/modules/{{.Slug}}">{{.Title}}</a>{{with .Description}} - {{.}}{{end}}</li>
		{{end}}</ul>
{{template "foot" .}}{{end}}{{define "module"}}{{template "head" .}}
		<h1>{{.Module.Title}}</h1>
		{{with .Module.Description}}<p>{{.}}</p>{{end}}
		<ol>{{range .Posts}}{{template "postitem" .}}{{end}}</ol>
{{template "foot" .}}{{end}}{{define "tags"}}{{template "head" .}}
		<h1>Tags</h1>
		<ul>{{range .Tags}}<li><a href="/tags/{{.}}">#{{.}}</a></li>{{end}}</ul>
{{template "foot" .}}{{end}}{{define "tag"}}{{template "head" .}}
		<h1>#{{.Tag}}</h1>
		<ul>{{range .Posts}}{{template "postitem" .}}{{end}}</ul>
{{template "foot" .}}{{end}}{{define "notfound"}}{{template "head" .}}
		<h1>Not found</h1>
		<p>That page does not exist. <a href="/">Home</a></p>
{{template "foot" .}}{{end}}{{define "error"}}{{template "head" .}}
		<h1>Server error</h1>
		<p>{{.Message}}</p>
{{template "foot" .}}{{end}}`
