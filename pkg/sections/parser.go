package sections

import (
	internalsections "github.com/goliatone/go-datefield/internal/sections"
	"github.com/goliatone/go-datefield/pkg/appearance"
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/localetext"
)

// Parser splits format strings into ordered section lists.
type Parser interface {
	Parse(format string, d calendar.Date) ([]Section, error)
}

// ParserOption configures the parser behaviour.
type ParserOption func(*parserOptions)

type parserOptions struct {
	adapter             calendar.Adapter
	placeholders        localetext.Provider
	appearance          appearance.Appearance
	respectLeadingZeros bool
}

// WithAdapter sets the calendar adapter the parser probes and formats with.
// An adapter is required.
func WithAdapter(adapter calendar.Adapter) ParserOption {
	return func(opts *parserOptions) {
		opts.adapter = adapter
	}
}

// WithLocaleText overrides the placeholder catalog. Defaults to the embedded
// English catalog.
func WithLocaleText(provider localetext.Provider) ParserOption {
	return func(opts *parserOptions) {
		opts.placeholders = provider
	}
}

// WithAppearance sets density, direction, and the segmented-surface flag.
func WithAppearance(app appearance.Appearance) ParserOption {
	return func(opts *parserOptions) {
		opts.appearance = app
	}
}

// WithRespectLeadingZeros makes the editable width follow the format's own
// padding instead of forcing a constant width on digit sections.
func WithRespectLeadingZeros(respect bool) ParserOption {
	return func(opts *parserOptions) {
		opts.respectLeadingZeros = respect
	}
}

// NewParser returns a Parser backed by the internal implementation.
func NewParser(options ...ParserOption) (Parser, error) {
	cfg := parserOptions{appearance: appearance.Default()}
	for _, opt := range options {
		opt(&cfg)
	}

	return internalsections.New(internalsections.Options{
		Adapter:             cfg.adapter,
		Placeholders:        cfg.placeholders,
		Appearance:          cfg.appearance,
		RespectLeadingZeros: cfg.respectLeadingZeros,
	})
}
