// Package datefield is the root facade over the field engine, the format
// parser, and the calendar adapters. It re-exports the types most callers
// touch and ships convenience constructors for the common wirings; anything
// beyond that lives in the pkg subpackages.
package datefield

import (
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-datefield/pkg/appearance"
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/calendar/gotime"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/sections"
)

// Engine owns the canonical state of one field; alias exported via the root
// package for convenience.
type Engine = field.Engine

// Section models an individual editable unit of a formatted string.
type Section = sections.Section

// Selection describes which sections of a field are active.
type Selection = field.Selection

// Date is the value currency of the field pipeline.
type Date = calendar.Date

// Option configures an Engine.
type Option = field.Option

// UpdateRequest carries the two halves of a section edit commit.
type UpdateRequest = field.UpdateRequest

// ValueType constrains the section types a field accepts.
type ValueType = field.ValueType

const (
	DateOnly = field.DateOnly
	TimeOnly = field.TimeOnly
	DateTime = field.DateTime
)

// New builds a field engine. At minimum an adapter and a format are required:
//
//	engine, err := datefield.New(
//	  datefield.WithAdapter(gotime.New()),
//	  datefield.WithFormat("MM/dd/yyyy"),
//	)
func New(options ...Option) (*Engine, error) {
	return field.New(options...)
}

// WithAdapter sets the calendar adapter the engine works through.
func WithAdapter(a calendar.Adapter) Option {
	return field.WithAdapter(a)
}

// WithFormat sets the field's format string.
func WithFormat(format string) Option {
	return field.WithFormat(format)
}

// WithValue seeds the field's initial value.
func WithValue(v Date) Option {
	return field.WithValue(v)
}

// WithValueType constrains the section types the field supports.
func WithValueType(vt ValueType) Option {
	return field.WithValueType(vt)
}

// WithThemeSelection resolves a go-theme selection into the engine's
// appearance option. Unknown token values surface as errors here, before the
// engine is built.
func WithThemeSelection(sel *theme.Selection) (Option, error) {
	app, err := appearance.FromSelection(sel)
	if err != nil {
		return nil, err
	}
	return field.WithAppearance(app), nil
}

// ParseFormat splits a format string into the section list describing date,
// without standing up an engine. It is the simplest entry point for callers
// that just want the section table.
func ParseFormat(adapter calendar.Adapter, format string, date Date, options ...sections.ParserOption) ([]Section, error) {
	opts := append([]sections.ParserOption{sections.WithAdapter(adapter)}, options...)
	parser, err := sections.NewParser(opts...)
	if err != nil {
		return nil, err
	}
	return parser.Parse(format, date)
}

var calendarsOnce sync.Once

// DefaultCalendars returns the process-wide adapter registry with the gotime
// adapter registered under "gotime". The registration happens here rather
// than in an init so importing an adapter package alone has no side effects.
func DefaultCalendars() *calendar.Registry {
	calendarsOnce.Do(func() {
		calendar.MustRegister("gotime", gotime.New())
	})
	return calendar.DefaultRegistry()
}
