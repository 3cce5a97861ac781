package gotime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-datefield/pkg/calendar"
)

type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segToken
)

// segment is one step of a scanned format string: either literal output or a
// token to render/consume.
type segment struct {
	kind segmentKind
	text string
}

// scan splits a format string into literal and token segments. Escaped runs
// become literals with their quote characters dropped; letters that cannot
// start any known token fall through as literals.
func (a *Adapter) scan(format string) []segment {
	markers := a.EscapeMarkers()
	var segs []segment
	literal := func(s string) {
		if s == "" {
			return
		}
		if n := len(segs); n > 0 && segs[n-1].kind == segLiteral {
			segs[n-1].text += s
			return
		}
		segs = append(segs, segment{kind: segLiteral, text: s})
	}

	i := 0
	for i < len(format) {
		if strings.HasPrefix(format[i:], markers.Start) {
			rest := format[i+len(markers.Start):]
			end := strings.Index(rest, markers.End)
			if end < 0 {
				literal(rest)
				break
			}
			literal(rest[:end])
			i += len(markers.Start) + end + len(markers.End)
			continue
		}
		if isASCIILetter(format[i]) {
			if token, ok := a.tokens.LongestTokenPrefix(format[i:]); ok {
				segs = append(segs, segment{kind: segToken, text: token})
				i += len(token)
				continue
			}
		}
		literal(format[i : i+1])
		i++
	}
	return segs
}

// ExpandFormat rewrites localized macros (P, PP, PPPP, p, Pp) into plain
// token runs. Escaped runs pass through untouched, quotes included, so later
// scans still see them.
func (a *Adapter) ExpandFormat(format string) string {
	markers := a.EscapeMarkers()
	var b strings.Builder

	i := 0
	for i < len(format) {
		if strings.HasPrefix(format[i:], markers.Start) {
			rest := format[i+len(markers.Start):]
			end := strings.Index(rest, markers.End)
			if end < 0 {
				b.WriteString(format[i:])
				break
			}
			b.WriteString(format[i : i+len(markers.Start)+end+len(markers.End)])
			i += len(markers.Start) + end + len(markers.End)
			continue
		}
		if isASCIILetter(format[i]) {
			if macro, ok := longestMacroPrefix(format[i:]); ok {
				b.WriteString(macroExpansions[macro])
				i += len(macro)
				continue
			}
		}
		b.WriteByte(format[i])
		i++
	}
	return b.String()
}

// FormatByString renders d against a full format string. Non-valid dates
// render as "".
func (a *Adapter) FormatByString(d calendar.Date, format string) string {
	if !d.IsValid() {
		return ""
	}
	var b strings.Builder
	for _, seg := range a.scan(format) {
		if seg.kind == segLiteral {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(a.renderToken(d, seg.text))
	}
	return b.String()
}

func (a *Adapter) renderToken(d calendar.Date, token string) string {
	t := d.Time.In(a.loc)
	switch token {
	case "yyyy":
		return fmt.Sprintf("%04d", t.Year())
	case "yy":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "y":
		return strconv.Itoa(t.Year())
	case "MMMM":
		return a.locale.Months[int(t.Month())-1]
	case "MMM":
		return a.locale.MonthsAbbrev[int(t.Month())-1]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "dd":
		return fmt.Sprintf("%02d", t.Day())
	case "d":
		return strconv.Itoa(t.Day())
	case "do":
		return ordinal(t.Day())
	case "EEEE":
		return a.locale.Weekdays[int(t.Weekday())]
	case "EEE":
		return a.locale.WeekdaysAbbrev[int(t.Weekday())]
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12(t))
	case "h":
		return strconv.Itoa(hour12(t))
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "aa", "a":
		if t.Hour() >= 12 {
			return a.locale.PM
		}
		return a.locale.AM
	default:
		return token
	}
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

func longestMacroPrefix(s string) (string, bool) {
	best := ""
	for macro := range macroExpansions {
		if len(macro) <= len(best) {
			continue
		}
		if len(macro) <= len(s) && s[:len(macro)] == macro {
			best = macro
		}
	}
	return best, best != ""
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
