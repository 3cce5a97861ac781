package localetext

import (
	"sync"

	"github.com/goliatone/go-datefield/pkg/calendar"
)

// PlaceholderRequest carries everything a catalog may phrase a placeholder
// from: the section type, its content type, the raw format token, and the
// digit width for repeated glyphs (four-digit years render "YYYY").
type PlaceholderRequest struct {
	Type        calendar.SectionType
	ContentType calendar.ContentType
	Format      string
	DigitAmount int
}

// Provider resolves placeholder text per section. Implementations fall back
// to the raw format token when they have nothing better.
type Provider interface {
	Placeholder(req PlaceholderRequest) string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in English catalog.
func Default() Provider {
	defaultOnce.Do(func() {
		catalog, err := Builtin("en")
		if err != nil {
			// The English catalog ships in the embedded filesystem, so a
			// load failure is a build defect.
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}
