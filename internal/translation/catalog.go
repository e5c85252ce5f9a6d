// Package translation holds the localized strings used for general names,
// skill names, last words and credits.
package translation

import (
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dabingnn/QSanguosha/internal/errors"
)

// DefaultPattern matches the locale files shipped with the game data
const DefaultPattern = "lang/*.yaml"

// File is the on-disk layout of a locale file
type File struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// CatalogConfig configures a Catalog
type CatalogConfig struct {
	// Locale is the preferred locale; the closest loaded table is used
	Locale string
}

// Validate validates the config
func (c *CatalogConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			vb.Fieldf("Locale", "invalid language tag %q", c.Locale)
		}
	}
	return vb.Build()
}

// Catalog is a set of locale tables with one active locale. It is safe for
// concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	preferred language.Tag
	tags      []language.Tag
	tables    map[string]map[string]string
	active    string
}

// NewCatalog creates an empty catalog
func NewCatalog(cfg *CatalogConfig) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog config")
	}

	preferred := language.English
	if cfg.Locale != "" {
		preferred = language.Make(cfg.Locale)
	}

	return &Catalog{
		preferred: preferred,
		tables:    make(map[string]map[string]string),
	}, nil
}

// LoadFS reads every locale file matching pattern and merges it into the
// catalog. Files are processed in lexical order so later files override
// earlier ones for the same locale.
func (c *Catalog) LoadFS(fsys fs.FS, pattern string) error {
	if fsys == nil {
		return errors.InvalidArgument("file system is required")
	}
	if pattern == "" {
		pattern = DefaultPattern
	}

	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid locale pattern")
	}
	sort.Strings(matches)

	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Wrapf(err, "failed to read locale file %s", name)
		}

		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse locale file").
				WithMeta("file", name)
		}

		locale := file.Locale
		if locale == "" {
			locale = trimExt(path.Base(name))
		}

		if err := c.Merge(locale, file.Messages); err != nil {
			return errors.Wrapf(err, "locale file %s", name)
		}
		slog.Debug("loaded locale file", "file", name, "locale", locale, "messages", len(file.Messages))
	}

	return nil
}

// Merge adds messages to the table of locale, overriding existing keys
func (c *Catalog) Merge(locale string, messages map[string]string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return errors.InvalidArgumentf("invalid locale %q", locale).WithMeta("locale", locale)
	}
	key := tag.String()

	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.tables[key]
	if !ok {
		table = make(map[string]string, len(messages))
		c.tables[key] = table
		c.tags = append(c.tags, tag)
	}
	for k, v := range messages {
		table[k] = v
	}

	c.active = c.match()
	return nil
}

// Set adds a single message to the active table
func (c *Catalog) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == "" {
		c.tables[c.preferred.String()] = map[string]string{}
		c.tags = append(c.tags, c.preferred)
		c.active = c.preferred.String()
	}
	c.tables[c.active][key] = value
}

// Use changes the preferred locale and returns the locale that will be served
func (c *Catalog) Use(locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", errors.InvalidArgumentf("invalid locale %q", locale).WithMeta("locale", locale)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.preferred = tag
	c.active = c.match()
	return c.active, nil
}

// Locale returns the locale currently served, empty when nothing is loaded
func (c *Catalog) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Locales returns the loaded locales in sorted order
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	locales := make([]string, 0, len(c.tables))
	for locale := range c.tables {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Messages returns a copy of the table for locale
func (c *Catalog) Messages(locale string) map[string]string {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	table, ok := c.tables[tag.String()]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// Translate returns the active translation of key, or def when missing
func (c *Catalog) Translate(key, def string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if table, ok := c.tables[c.active]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	return def
}

// match picks the loaded table closest to the preferred locale. Caller holds
// the write lock.
func (c *Catalog) match() string {
	if len(c.tags) == 0 {
		return ""
	}
	_, index, confidence := language.NewMatcher(c.tags).Match(c.preferred)
	if confidence == language.No {
		return c.tags[0].String()
	}
	return c.tags[index].String()
}

func trimExt(name string) string {
	return name[:len(name)-len(path.Ext(name))]
}
