package gotime

import (
	"strings"
	"time"

	"github.com/goliatone/go-datefield/pkg/calendar"
)

type meridiem uint8

const (
	meridiemNone meridiem = iota
	meridiemAM
	meridiemPM
)

// components accumulates what Parse read out of the input. Absent date
// components default to the Unix epoch's; absent time components to zero.
type components struct {
	year, month, day      int
	hours, minute, second int
	hasYear, hasMonth     bool
	hasDay, hasHours      bool
	twoDigitYear          bool
	hour12                bool
	meridiem              meridiem
}

// Parse reads value against format. Formats containing macros must be
// expanded first. Parsing is strict twice over: the whole input must be
// consumed, and out-of-range components (Feb 31) yield an invalid Date
// instead of a normalized one.
func (a *Adapter) Parse(value, format string) calendar.Date {
	if strings.TrimSpace(value) == "" {
		return calendar.Empty()
	}

	comps := components{year: 1970, month: 1, day: 1}
	pos := 0
	for _, seg := range a.scan(format) {
		if seg.kind == segLiteral {
			if !strings.HasPrefix(value[pos:], seg.text) {
				return calendar.Invalid()
			}
			pos += len(seg.text)
			continue
		}
		n, ok := a.consumeToken(&comps, value[pos:], seg.text)
		if !ok {
			return calendar.Invalid()
		}
		pos += n
	}
	if pos != len(value) {
		return calendar.Invalid()
	}
	return a.assemble(comps)
}

// consumeToken reads one token's worth of input from s, records the
// component, and returns how many bytes it consumed.
func (a *Adapter) consumeToken(comps *components, s, token string) (int, bool) {
	switch token {
	case "yyyy", "y":
		v, n := readDigits(s, 4)
		if n == 0 {
			return 0, false
		}
		comps.year, comps.hasYear = v, true
		return n, true
	case "yy":
		v, n := readDigits(s, 2)
		if n == 0 {
			return 0, false
		}
		comps.year, comps.hasYear, comps.twoDigitYear = v, true, true
		return n, true
	case "MMMM":
		return a.readName(comps, s, a.locale.Months[:], func(c *components, i int) {
			c.month, c.hasMonth = i+1, true
		})
	case "MMM":
		return a.readName(comps, s, a.locale.MonthsAbbrev[:], func(c *components, i int) {
			c.month, c.hasMonth = i+1, true
		})
	case "MM", "M":
		v, n := readDigits(s, 2)
		if n == 0 {
			return 0, false
		}
		comps.month, comps.hasMonth = v, true
		return n, true
	case "dd", "d":
		v, n := readDigits(s, 2)
		if n == 0 {
			return 0, false
		}
		comps.day, comps.hasDay = v, true
		return n, true
	case "do":
		v, n := readDigits(s, 2)
		if n == 0 {
			return 0, false
		}
		comps.day, comps.hasDay = v, true
		for n < len(s) && isLowerLetter(s[n]) {
			n++
		}
		return n, true
	case "EEEE":
		// Weekday names are decoration when a day of month is present;
		// they are consumed and validated but never drive the result.
		return a.readName(comps, s, a.locale.Weekdays[:], func(*components, int) {})
	case "EEE":
		return a.readName(comps, s, a.locale.WeekdaysAbbrev[:], func(*components, int) {})
	case "HH", "H":
		v, n := readDigits(s, 2)
		if n == 0 {
			return 0, false
		}
		comps.hours, comps.hasHours = v, true
		return n, true
	case "hh", "h":
		v, n := readDigits(s, 2)
		if n == 0 {
			return 0, false
		}
		comps.hours, comps.hasHours, comps.hour12 = v, true, true
		return n, true
	case "mm", "m":
		v, n := readDigits(s, 2)
		if n == 0 {
			return 0, false
		}
		comps.minute = v
		return n, true
	case "ss", "s":
		v, n := readDigits(s, 2)
		if n == 0 {
			return 0, false
		}
		comps.second = v
		return n, true
	case "aa", "a":
		if n := matchFold(s, a.locale.AM); n > 0 {
			comps.meridiem = meridiemAM
			return n, true
		}
		if n := matchFold(s, a.locale.PM); n > 0 {
			comps.meridiem = meridiemPM
			return n, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func (a *Adapter) readName(comps *components, s string, names []string, record func(*components, int)) (int, bool) {
	bestLen, bestIdx := 0, -1
	for i, name := range names {
		if n := matchFold(s, name); n > bestLen {
			bestLen, bestIdx = n, i
		}
	}
	if bestIdx < 0 {
		return 0, false
	}
	record(comps, bestIdx)
	return bestLen, true
}

func (a *Adapter) assemble(c components) calendar.Date {
	if c.twoDigitYear {
		c.year += 2000
	}
	hours := c.hours
	if c.hour12 {
		if hours < 1 || hours > 12 {
			return calendar.Invalid()
		}
		hours %= 12
		if c.meridiem == meridiemPM {
			hours += 12
		}
	} else if c.meridiem == meridiemPM && hours < 12 {
		hours += 12
	}

	if c.year < 0 || c.year > 9999 ||
		c.month < 1 || c.month > 12 ||
		c.day < 1 || c.day > 31 ||
		hours < 0 || hours > 23 ||
		c.minute < 0 || c.minute > 59 ||
		c.second < 0 || c.second > 59 {
		return calendar.Invalid()
	}

	t := time.Date(c.year, time.Month(c.month), c.day, hours, c.minute, c.second, 0, a.loc)
	if t.Year() != c.year || t.Month() != time.Month(c.month) || t.Day() != c.day {
		return calendar.Invalid()
	}
	return calendar.NewDate(t)
}

// readDigits reads up to max consecutive ASCII digits and returns the value
// and the count consumed.
func readDigits(s string, max int) (int, int) {
	v, n := 0, 0
	for n < len(s) && n < max && s[n] >= '0' && s[n] <= '9' {
		v = v*10 + int(s[n]-'0')
		n++
	}
	return v, n
}

// matchFold returns the length of prefix when s starts with it
// case-insensitively, 0 otherwise.
func matchFold(s, prefix string) int {
	if len(prefix) == 0 || len(s) < len(prefix) {
		return 0
	}
	if strings.EqualFold(s[:len(prefix)], prefix) {
		return len(prefix)
	}
	return 0
}

func isLowerLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}
