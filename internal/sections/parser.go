package sections

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-datefield/pkg/appearance"
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/localetext"
)

// maxExpansionPasses bounds the format macro expansion loop.
const maxExpansionPasses = 10

// Options configures the behaviour of the Parser. Options are constructed by
// the public adapter in pkg/sections and passed into New.
type Options struct {
	Adapter             calendar.Adapter
	Placeholders        localetext.Provider
	Appearance          appearance.Appearance
	RespectLeadingZeros bool
}

// Parser splits format strings into ordered section lists. A Parser is
// immutable after construction; Parse depends only on its arguments and the
// construction options.
type Parser struct {
	opts Options
}

// New creates a Parser with the supplied options.
func New(options Options) (*Parser, error) {
	opts := options
	if opts.Adapter == nil {
		return nil, errors.New("sections: calendar adapter is required")
	}
	if opts.Placeholders == nil {
		opts.Placeholders = localetext.Default()
	}
	if opts.Appearance.Density == "" {
		opts.Appearance.Density = appearance.DensityDense
	}
	if opts.Appearance.Direction == "" {
		opts.Appearance.Direction = appearance.DirectionLTR
	}
	return &Parser{opts: opts}, nil
}

// Parse turns the format string into the section list describing d. The date
// may be empty or invalid, in which case section values stay blank and
// placeholders carry the display.
func (p *Parser) Parse(format string, d calendar.Date) ([]Section, error) {
	adapter := p.opts.Adapter

	expanded, err := p.expand(format)
	if err != nil {
		return nil, err
	}

	if p.opts.Appearance.Direction == appearance.DirectionRTL && p.opts.Appearance.Segmented {
		expanded = reverseSpacedGroups(expanded)
	}

	runs := findEscapedRuns(expanded, adapter.EscapeMarkers())
	tokens := adapter.TokenMap()
	now := adapter.Now()
	probe := probeDate(adapter)

	var list []Section
	startSeparator := ""

	appendSeparator := func(text string) {
		if text == "" {
			return
		}
		if len(list) == 0 {
			startSeparator += text
		} else {
			list[len(list)-1].EndSeparator += text
		}
	}

	runIdx := 0
	i := 0
	for i < len(expanded) {
		if runIdx < len(runs) && runs[runIdx].start == i {
			appendSeparator(runs[runIdx].text)
			i = runs[runIdx].end
			runIdx++
			continue
		}

		r, size := utf8.DecodeRuneInString(expanded[i:])
		if isASCIILetter(r) {
			// A token never crosses into an escaped run.
			remaining := expanded[i:]
			if runIdx < len(runs) {
				remaining = expanded[i:runs[runIdx].start]
			}
			if token, ok := tokens.LongestTokenPrefix(remaining); ok {
				section, err := p.buildSection(tokens, token, d, now, probe)
				if err != nil {
					return nil, err
				}
				if len(list) == 0 {
					section.StartSeparator = startSeparator
				}
				list = append(list, section)
				i += len(token)
				continue
			}
		}
		appendSeparator(expanded[i : i+size])
		i += size
	}

	// A format without a single token still yields one section so the field
	// always has something to select.
	if len(list) == 0 {
		list = append(list, Section{
			Type:           calendar.SectionEmpty,
			ContentType:    calendar.ContentLetter,
			StartSeparator: startSeparator,
		})
	}

	for idx := range list {
		list[idx].StartSeparator = p.cleanSeparator(list[idx].StartSeparator)
		list[idx].EndSeparator = p.cleanSeparator(list[idx].EndSeparator)
	}
	return list, nil
}

// expand applies the adapter's macro expansion until the format stops
// changing.
func (p *Parser) expand(format string) (string, error) {
	current := format
	for i := 0; i < maxExpansionPasses; i++ {
		next := p.opts.Adapter.ExpandFormat(current)
		if next == current {
			return current, nil
		}
		current = next
	}
	return "", fmt.Errorf("%w: %q", ErrExpansionOverflow, format)
}

func (p *Parser) buildSection(tokens calendar.TokenMap, token string, d, now, probe calendar.Date) (Section, error) {
	if token == "" {
		return Section{}, &ConfigError{Err: ErrEmptyToken}
	}
	cfg := tokens[token]

	hasZerosInFormat := p.formatHasLeadingZeros(cfg, token, probe)
	hasZerosInInput := cfg.Content == calendar.ContentDigit
	if p.opts.RespectLeadingZeros {
		hasZerosInInput = hasZerosInFormat
	}

	adapter := p.opts.Adapter
	value := ""
	if d.IsValid() {
		value = adapter.FormatByString(d, token)
	}

	maxLength := 0
	if hasZerosInInput {
		if hasZerosInFormat {
			rendered := value
			if rendered == "" {
				rendered = adapter.FormatByString(now, token)
			}
			maxLength = utf8.RuneCountInString(rendered)
		} else {
			if cfg.MaxLength == 0 {
				return Section{}, &ConfigError{Token: token, Err: ErrMissingMaxLength}
			}
			maxLength = cfg.MaxLength
			if value != "" {
				value = cleanLeadingZeros(value, maxLength)
			}
		}
	}

	placeholder := p.opts.Placeholders.Placeholder(localetext.PlaceholderRequest{
		Type:        cfg.Section,
		ContentType: cfg.Content,
		Format:      token,
		DigitAmount: utf8.RuneCountInString(adapter.FormatByString(now, token)),
	})

	return Section{
		Type:                    cfg.Section,
		ContentType:             cfg.Content,
		Format:                  token,
		Value:                   value,
		Placeholder:             placeholder,
		MaxLength:               maxLength,
		HasLeadingZerosInFormat: hasZerosInFormat,
		HasLeadingZerosInInput:  hasZerosInInput,
	}, nil
}

// formatHasLeadingZeros probes whether the token renders padded output by
// formatting a date whose components are all single digit.
func (p *Parser) formatHasLeadingZeros(cfg calendar.TokenConfig, token string, probe calendar.Date) bool {
	if cfg.Content != calendar.ContentDigit {
		return false
	}
	rendered := p.opts.Adapter.FormatByString(probe, token)
	return utf8.RuneCountInString(rendered) > 1
}

func (p *Parser) cleanSeparator(sep string) string {
	if sep == "" {
		return sep
	}
	if p.opts.Appearance.Direction == appearance.DirectionRTL && strings.Contains(sep, " ") {
		sep = "⁩" + sep + "⁦"
	}
	if p.opts.Appearance.Density == appearance.DensitySpacious {
		switch sep {
		case "/", ".", "-":
			sep = " " + sep + " "
		}
	}
	return sep
}

// probeDate builds year 1, January 1st, 01:01:01 with the adapter's setters.
func probeDate(a calendar.Adapter) calendar.Date {
	d := a.Now()
	d = a.SetYear(d, 1)
	d = a.SetMonth(d, 1)
	d = a.SetDay(d, 1)
	d = a.SetHours(d, 1)
	d = a.SetMinutes(d, 1)
	d = a.SetSeconds(d, 1)
	return d
}

// cleanLeadingZeros strips incidental leading zeros and re-pads the value to
// size so the editable width stays constant.
func cleanLeadingZeros(value string, size int) string {
	n, err := strconv.Atoi(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%0*d", size, n)
}

func reverseSpacedGroups(format string) string {
	groups := strings.Split(format, " ")
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, " ")
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// escapedRun is a literal region of the expanded format, byte offsets
// covering the escape markers, text holding the content without them.
type escapedRun struct {
	start, end int
	text       string
}

// findEscapedRuns locates every escaped region left to right. Runs that sit
// directly against each other coalesce into one, and an unterminated start
// marker swallows the rest of the format.
func findEscapedRuns(format string, markers calendar.EscapeMarkers) []escapedRun {
	if markers.Start == "" || markers.End == "" {
		return nil
	}
	var runs []escapedRun
	i := 0
	for i < len(format) {
		rel := strings.Index(format[i:], markers.Start)
		if rel < 0 {
			break
		}
		start := i + rel
		contentStart := start + len(markers.Start)
		endRel := strings.Index(format[contentStart:], markers.End)
		if endRel < 0 {
			runs = appendRun(runs, escapedRun{start: start, end: len(format), text: format[contentStart:]})
			break
		}
		contentEnd := contentStart + endRel
		end := contentEnd + len(markers.End)
		runs = appendRun(runs, escapedRun{start: start, end: end, text: format[contentStart:contentEnd]})
		i = end
	}
	return runs
}

func appendRun(runs []escapedRun, run escapedRun) []escapedRun {
	if n := len(runs); n > 0 && runs[n-1].end == run.start {
		runs[n-1].end = run.end
		runs[n-1].text += run.text
		return runs
	}
	return append(runs, run)
}
