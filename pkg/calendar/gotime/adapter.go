// Package gotime ships the standard-library calendar adapter. It speaks a
// date-fns flavored token vocabulary, escapes literals with single quotes,
// and keeps every date in a configurable location. Parsing is strict:
// components that are out of range for their month come back invalid rather
// than normalized.
package gotime

import (
	"time"

	"github.com/goliatone/go-datefield/pkg/calendar"
)

// Adapter implements calendar.Adapter over the time package.
type Adapter struct {
	locale Locale
	loc    *time.Location
	clock  func() time.Time
	tokens calendar.TokenMap
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLocale replaces the built-in English display names.
func WithLocale(locale Locale) Option {
	return func(a *Adapter) {
		a.locale = locale
	}
}

// WithLocation pins the adapter to a timezone. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(a *Adapter) {
		if loc != nil {
			a.loc = loc
		}
	}
}

// WithClock overrides the source of "now". Tests use it for determinism.
func WithClock(clock func() time.Time) Option {
	return func(a *Adapter) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// New builds an adapter with the English locale, the local timezone, and the
// wall clock.
func New(opts ...Option) *Adapter {
	a := &Adapter{
		locale: English(),
		loc:    time.Local,
		clock:  time.Now,
		tokens: defaultTokenMap(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Locale returns the display names the adapter formats with.
func (a *Adapter) Locale() Locale {
	return a.locale
}

// TokenMap returns the adapter's format vocabulary.
func (a *Adapter) TokenMap() calendar.TokenMap {
	return a.tokens
}

// EscapeMarkers returns the single-quote literal delimiters.
func (a *Adapter) EscapeMarkers() calendar.EscapeMarkers {
	return calendar.EscapeMarkers{Start: "'", End: "'"}
}

// Now returns the current instant in the adapter's location.
func (a *Adapter) Now() calendar.Date {
	return calendar.NewDate(a.clock().In(a.loc))
}

// AddDays shifts d by whole days.
func (a *Adapter) AddDays(d calendar.Date, amount int) calendar.Date {
	if !d.IsValid() {
		return d
	}
	return calendar.NewDate(d.Time.In(a.loc).AddDate(0, 0, amount))
}

// AddHours shifts d by whole hours.
func (a *Adapter) AddHours(d calendar.Date, amount int) calendar.Date {
	if !d.IsValid() {
		return d
	}
	return calendar.NewDate(d.Time.In(a.loc).Add(time.Duration(amount) * time.Hour))
}

// StartOfWeek returns midnight of the first day of d's week, honoring the
// locale's first weekday.
func (a *Adapter) StartOfWeek(d calendar.Date) calendar.Date {
	if !d.IsValid() {
		return d
	}
	t := d.Time.In(a.loc)
	diff := (int(t.Weekday()) - int(a.locale.FirstDay) + 7) % 7
	return calendar.NewDate(time.Date(t.Year(), t.Month(), t.Day()-diff, 0, 0, 0, 0, a.loc))
}

// DaysInMonth returns the number of days in d's month, or 31 for non-valid
// dates.
func (a *Adapter) DaysInMonth(d calendar.Date) int {
	if !d.IsValid() {
		return 31
	}
	t := d.Time.In(a.loc)
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, a.loc).Day()
}

// Year returns the calendar year.
func (a *Adapter) Year(d calendar.Date) int { return a.in(d).Year() }

// SetYear replaces the year, clamping Feb 29 when the target year is not a
// leap year.
func (a *Adapter) SetYear(d calendar.Date, v int) calendar.Date {
	return a.rebuild(d, func(t time.Time) time.Time {
		day := clampDay(t.Day(), v, t.Month(), a.loc)
		return time.Date(v, t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), a.loc)
	})
}

// Month returns the 1-based month.
func (a *Adapter) Month(d calendar.Date) int { return int(a.in(d).Month()) }

// SetMonth replaces the 1-based month, clamping the day to the target
// month's length.
func (a *Adapter) SetMonth(d calendar.Date, v int) calendar.Date {
	return a.rebuild(d, func(t time.Time) time.Time {
		day := clampDay(t.Day(), t.Year(), time.Month(v), a.loc)
		return time.Date(t.Year(), time.Month(v), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), a.loc)
	})
}

// Day returns the day of the month.
func (a *Adapter) Day(d calendar.Date) int { return a.in(d).Day() }

// SetDay replaces the day of the month.
func (a *Adapter) SetDay(d calendar.Date, v int) calendar.Date {
	return a.rebuild(d, func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), v, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), a.loc)
	})
}

// Hours returns the 24-hour clock hour.
func (a *Adapter) Hours(d calendar.Date) int { return a.in(d).Hour() }

// SetHours replaces the 24-hour clock hour.
func (a *Adapter) SetHours(d calendar.Date, v int) calendar.Date {
	return a.rebuild(d, func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), v, t.Minute(), t.Second(), t.Nanosecond(), a.loc)
	})
}

// Minutes returns the minute.
func (a *Adapter) Minutes(d calendar.Date) int { return a.in(d).Minute() }

// SetMinutes replaces the minute.
func (a *Adapter) SetMinutes(d calendar.Date, v int) calendar.Date {
	return a.rebuild(d, func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), v, t.Second(), t.Nanosecond(), a.loc)
	})
}

// Seconds returns the second.
func (a *Adapter) Seconds(d calendar.Date) int { return a.in(d).Second() }

// SetSeconds replaces the second.
func (a *Adapter) SetSeconds(d calendar.Date, v int) calendar.Date {
	return a.rebuild(d, func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), v, t.Nanosecond(), a.loc)
	})
}

func (a *Adapter) in(d calendar.Date) time.Time {
	return d.Time.In(a.loc)
}

func (a *Adapter) rebuild(d calendar.Date, f func(time.Time) time.Time) calendar.Date {
	if !d.IsValid() {
		return d
	}
	return calendar.NewDate(f(d.Time.In(a.loc)))
}

func clampDay(day, year int, month time.Month, loc *time.Location) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > last {
		return last
	}
	return day
}
