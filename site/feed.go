package site

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jlafferty/inkwell/content"
)

// feedLimit caps the number of feed entries.
const feedLimit = 20

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description,omitempty"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
}

// feed writes the RSS 2.0 feed of the global post feed, newest first.
func (rd *Renderer) feed(w io.Writer, snap *content.Snapshot) error {
	base := strings.TrimSuffix(rd.cfg.BaseURL, "/")
	f := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       rd.cfg.Title,
			Link:        base + "/",
			Description: rd.cfg.Description,
		},
	}
	posts := snap.Posts
	if len(posts) > feedLimit {
		posts = posts[:feedLimit]
	}
	for _, p := range posts {
		link := base + postURL(p)
		f.Channel.Items = append(f.Channel.Items, rssItem{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			Description: p.Description,
			Category:    p.Category,
			PubDate:     rssDate(p.Date),
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("feed: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("feed: %w", err)
	}
	return nil
}

// rssDate converts an ISO post date into the RFC 1123 form RSS readers
// expect, or returns empty when the date is missing or malformed.
func rssDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return ""
	}
	return t.UTC().Format(time.RFC1123Z)
}
