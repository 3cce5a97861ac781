package localetext

import (
	"strings"

	"github.com/goliatone/go-datefield/pkg/calendar"
)

// entry holds the placeholder variants for one section type. Letter and
// Digit cover the two content families; Repeat glyphs expand to the
// requested digit width.
type entry struct {
	Letter string
	Digit  string
	Repeat bool
}

// Catalog is a per-locale placeholder table.
type Catalog struct {
	locale  string
	entries map[calendar.SectionType]entry
}

// Locale returns the catalog's locale name.
func (c *Catalog) Locale() string {
	if c == nil {
		return ""
	}
	return c.locale
}

// Placeholder resolves the placeholder for req, falling back to the raw
// format token when the catalog has no entry for the section type.
func (c *Catalog) Placeholder(req PlaceholderRequest) string {
	if c == nil {
		return req.Format
	}
	e, ok := c.entries[req.Type]
	if !ok {
		return req.Format
	}

	glyph := e.Digit
	if req.ContentType == calendar.ContentLetter && e.Letter != "" {
		glyph = e.Letter
	}
	if glyph == "" {
		glyph = e.Letter
	}
	if glyph == "" {
		return req.Format
	}

	if e.Repeat {
		amount := req.DigitAmount
		if amount < 1 {
			amount = 1
		}
		return strings.Repeat(glyph, amount)
	}
	return glyph
}

// Set holds the catalogs loaded from one filesystem, keyed by locale name.
type Set struct {
	catalogs map[string]*Catalog
}

// Catalog returns the catalog for the supplied locale name.
func (s *Set) Catalog(locale string) (*Catalog, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.catalogs[normalizeLocale(locale)]
	return c, ok
}

// Locales returns the loaded locale names in map order.
func (s *Set) Locales() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.catalogs))
	for name := range s.catalogs {
		names = append(names, name)
	}
	return names
}

// Empty reports whether the set holds any catalogs.
func (s *Set) Empty() bool {
	return s == nil || len(s.catalogs) == 0
}

func normalizeLocale(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
