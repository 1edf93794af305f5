// Package site renders the blog's pages from resolved content. It owns the
// HTML templates, the site configuration file, the sitemap, and the RSS
// feed, so the HTTP server and the static baker share one rendering path.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// configFile is the optional TOML configuration at the content root.
const configFile = "site.cfg"

// Duration wraps time.Duration for TOML text form ("24h", "10m").
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	p, err := time.ParseDuration(string(text))
	*d = Duration(p)
	return err
}

// Config contains site settings from the site.cfg file.
type Config struct {
	Title         string            `toml:"title"`
	Description   string            `toml:"description"`
	BaseURL       string            `toml:"baseurl"` // absolute site root for sitemap and feed links
	Author        string            `toml:"author"`
	HomePosts     int               `toml:"homeposts"` // feed entries shown on the home page
	Expires       Duration          `toml:"expires"`
	StaticExpires Duration          `toml:"staticexpires"`
	Headers       map[string]string `toml:"headers"`
}

// defaultHomePosts applies when the config does not set homeposts.
const defaultHomePosts = 10

// LoadConfig reads site.cfg from the content root.
// It is not an error if the file does not exist.
func LoadConfig(fsys fs.FS) (Config, error) {
	var cfg Config
	b, err := fs.ReadFile(fsys, configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg.withDefaults(), nil
		}
		return cfg, fmt.Errorf("cannot read config file: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file: %w", err)
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	if c.HomePosts <= 0 {
		c.HomePosts = defaultHomePosts
	}
	return c
}
