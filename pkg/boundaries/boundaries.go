// Package boundaries resolves the numeric range a section accepts. The field
// engine consults it when committing digit entry and when clamping a day that
// overflows its month.
package boundaries

import (
	"unicode/utf8"

	"github.com/goliatone/go-datefield/pkg/calendar"
)

// Bounds is an inclusive numeric range.
type Bounds struct {
	Minimum int
	Maximum int
}

// Request carries the context a handler may need: the date being edited, the
// section's format token, and its content type.
type Request struct {
	Current calendar.Date
	Format  string
	Content calendar.ContentType
}

type handler func(req Request) Bounds

// Provider maps section types to their bounds. The handler set is closed and
// built at construction; per-call context travels through the Request.
type Provider struct {
	adapter  calendar.Adapter
	handlers map[calendar.SectionType]handler
}

// New builds a provider over the adapter. The adapter must not be nil.
func New(adapter calendar.Adapter) *Provider {
	p := &Provider{adapter: adapter}
	p.handlers = map[calendar.SectionType]handler{
		calendar.SectionYear:     p.yearBounds,
		calendar.SectionMonth:    staticBounds(1, 12),
		calendar.SectionDay:      p.dayBounds,
		calendar.SectionWeekDay:  staticBounds(1, 7),
		calendar.SectionHours:    p.hoursBounds,
		calendar.SectionMinutes:  staticBounds(0, 59),
		calendar.SectionSeconds:  staticBounds(0, 59),
		calendar.SectionMeridiem: staticBounds(0, 1),
		calendar.SectionEmpty:    staticBounds(0, 0),
	}
	return p
}

// Bounds resolves the range for a section type. Unknown types yield the zero
// range.
func (p *Provider) Bounds(sectionType calendar.SectionType, req Request) Bounds {
	h, ok := p.handlers[sectionType]
	if !ok {
		return Bounds{}
	}
	return h(req)
}

func staticBounds(minimum, maximum int) handler {
	return func(Request) Bounds {
		return Bounds{Minimum: minimum, Maximum: maximum}
	}
}

// yearBounds probes whether the token renders four-digit years.
func (p *Provider) yearBounds(req Request) Bounds {
	probe := p.adapter.SetYear(p.adapter.Now(), 2001)
	if utf8.RuneCountInString(p.adapter.FormatByString(probe, req.Format)) == 4 {
		return Bounds{Minimum: 0, Maximum: 9999}
	}
	return Bounds{Minimum: 0, Maximum: 99}
}

// dayBounds caps the day at the current month's length when a month is known.
func (p *Provider) dayBounds(req Request) Bounds {
	if req.Current.IsValid() {
		return Bounds{Minimum: 1, Maximum: p.adapter.DaysInMonth(req.Current)}
	}
	return Bounds{Minimum: 1, Maximum: 31}
}

// hoursBounds probes whether the token is meridiem relative: formatting an
// end-of-day sample with a 24-hour token renders "23".
func (p *Provider) hoursBounds(req Request) Bounds {
	probe := p.adapter.SetHours(p.adapter.Now(), 23)
	if p.adapter.FormatByString(probe, req.Format) != "23" {
		return Bounds{Minimum: 1, Maximum: 12}
	}
	return Bounds{Minimum: 0, Maximum: 23}
}
