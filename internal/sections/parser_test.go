package sections

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/appearance"
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/calendar/gotime"
)

func testAdapter() *gotime.Adapter {
	return gotime.New(
		gotime.WithLocation(time.UTC),
		gotime.WithClock(func() time.Time {
			return time.Date(2023, time.June, 15, 10, 30, 0, 0, time.UTC)
		}),
	)
}

func utcDate(year int, month time.Month, day, hour, min, sec int) calendar.Date {
	return calendar.NewDate(time.Date(year, month, day, hour, min, sec, 0, time.UTC))
}

func mustParser(t *testing.T, options Options) *Parser {
	t.Helper()
	if options.Adapter == nil {
		options.Adapter = testAdapter()
	}
	parser, err := New(options)
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	return parser
}

func TestParse_PaddedNumericFormat(t *testing.T) {
	parser := mustParser(t, Options{})

	got, err := parser.Parse("MM/dd/yyyy", utcDate(2023, time.June, 15, 0, 0, 0))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []Section{
		{
			Type: calendar.SectionMonth, ContentType: calendar.ContentDigit,
			Format: "MM", Value: "06", Placeholder: "MM", MaxLength: 2,
			HasLeadingZerosInFormat: true, HasLeadingZerosInInput: true,
			EndSeparator: "/",
		},
		{
			Type: calendar.SectionDay, ContentType: calendar.ContentDigit,
			Format: "dd", Value: "15", Placeholder: "DD", MaxLength: 2,
			HasLeadingZerosInFormat: true, HasLeadingZerosInInput: true,
			EndSeparator: "/",
		},
		{
			Type: calendar.SectionYear, ContentType: calendar.ContentDigit,
			Format: "yyyy", Value: "2023", Placeholder: "YYYY", MaxLength: 4,
			HasLeadingZerosInFormat: true, HasLeadingZerosInInput: true,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyValueKeepsPlaceholders(t *testing.T) {
	parser := mustParser(t, Options{})

	got, err := parser.Parse("MM/dd/yyyy", calendar.Date{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	for _, section := range got {
		if section.Value != "" {
			t.Fatalf("section %s: value %q, want empty", section.Type, section.Value)
		}
	}
	// MaxLength falls back to formatting the clock when there is no value.
	if got[2].MaxLength != 4 {
		t.Fatalf("year MaxLength: got %d, want 4", got[2].MaxLength)
	}
	if joined := Join(got, TargetInput); joined != "MM/DD/YYYY" {
		t.Fatalf("joined placeholders: got %q", joined)
	}
}

func TestParse_UnpaddedFormatRepadsValue(t *testing.T) {
	parser := mustParser(t, Options{})

	got, err := parser.Parse("M/d/yyyy", utcDate(2023, time.February, 3, 0, 0, 0))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	month := got[0]
	if month.HasLeadingZerosInFormat {
		t.Fatal("format M should not count as padded")
	}
	if !month.HasLeadingZerosInInput {
		t.Fatal("digit section should keep a constant editable width")
	}
	if month.Value != "02" || month.MaxLength != 2 {
		t.Fatalf("month value/maxLength: got %q/%d, want \"02\"/2", month.Value, month.MaxLength)
	}
	if v := month.VisibleValue(TargetParse); v != "2" {
		t.Fatalf("parse target month: got %q, want \"2\"", v)
	}
	if v := month.VisibleValue(TargetInput); v != "02" {
		t.Fatalf("input target month: got %q, want \"02\"", v)
	}
	if day := got[1]; day.Value != "03" {
		t.Fatalf("day value: got %q, want \"03\"", day.Value)
	}
}

func TestParse_RespectLeadingZeros(t *testing.T) {
	parser := mustParser(t, Options{RespectLeadingZeros: true})

	got, err := parser.Parse("M/d/yyyy", utcDate(2023, time.February, 3, 0, 0, 0))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	month := got[0]
	if month.HasLeadingZerosInInput {
		t.Fatal("respecting the format, M should stay unpadded in the input")
	}
	if month.Value != "2" || month.MaxLength != 0 {
		t.Fatalf("month value/maxLength: got %q/%d, want \"2\"/0", month.Value, month.MaxLength)
	}
}

func TestParse_EscapedLiterals(t *testing.T) {
	parser := mustParser(t, Options{})
	date := utcDate(2023, time.June, 15, 10, 30, 0)

	cases := []struct {
		name     string
		format   string
		sections int
		check    func(t *testing.T, got []Section)
	}{
		{
			name:     "leading literal",
			format:   "'Day:' dd",
			sections: 1,
			check: func(t *testing.T, got []Section) {
				if got[0].Type != calendar.SectionDay || got[0].StartSeparator != "Day: " {
					t.Fatalf("day section: %+v", got[0])
				}
			},
		},
		{
			name:     "coalesced trailing literal",
			format:   "hh 'o''clock'",
			sections: 1,
			check: func(t *testing.T, got []Section) {
				if got[0].Value != "10" || got[0].EndSeparator != " oclock" {
					t.Fatalf("hours section: %+v", got[0])
				}
			},
		},
		{
			name:     "escaped token text never tokenizes",
			format:   "'MM' MM",
			sections: 1,
			check: func(t *testing.T, got []Section) {
				if got[0].Type != calendar.SectionMonth || got[0].StartSeparator != "MM " {
					t.Fatalf("month section: %+v", got[0])
				}
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := parser.Parse(tc.format, date)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(got) != tc.sections {
				t.Fatalf("section count: got %d, want %d", len(got), tc.sections)
			}
			tc.check(t, got)
		})
	}
}

func TestParse_LiteralOnlyFormat(t *testing.T) {
	parser := mustParser(t, Options{})

	got, err := parser.Parse("'no value'", utcDate(2023, time.June, 15, 0, 0, 0))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("section count: got %d, want 1", len(got))
	}
	section := got[0]
	if section.Type != calendar.SectionEmpty || section.StartSeparator != "no value" {
		t.Fatalf("synthetic section: %+v", section)
	}
}

func TestParse_MacroExpansion(t *testing.T) {
	parser := mustParser(t, Options{})

	got, err := parser.Parse("Pp", utcDate(2023, time.June, 15, 21, 5, 0))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	wantTypes := []calendar.SectionType{
		calendar.SectionMonth, calendar.SectionDay, calendar.SectionYear,
		calendar.SectionHours, calendar.SectionMinutes, calendar.SectionMeridiem,
	}
	if len(got) != len(wantTypes) {
		t.Fatalf("section count: got %d, want %d", len(got), len(wantTypes))
	}
	for i, section := range got {
		if section.Type != wantTypes[i] {
			t.Fatalf("section %d type: got %s, want %s", i, section.Type, wantTypes[i])
		}
	}
	// h renders "9" but the editable value re-pads to the token's max length.
	if got[3].Value != "09" {
		t.Fatalf("12-hour value: got %q, want \"09\"", got[3].Value)
	}
	if v := got[3].VisibleValue(TargetParse); v != "9" {
		t.Fatalf("12-hour parse target: got %q, want \"9\"", v)
	}
	if got[5].Value != "PM" {
		t.Fatalf("meridiem value: got %q, want \"PM\"", got[5].Value)
	}
}

func TestParse_LetterSections(t *testing.T) {
	parser := mustParser(t, Options{})

	got, err := parser.Parse("EEEE, MMMM do", utcDate(2023, time.June, 15, 0, 0, 0))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got[0].Value != "Thursday" || got[0].Placeholder != "EEEE" || got[0].MaxLength != 0 {
		t.Fatalf("weekday section: %+v", got[0])
	}
	if got[1].Value != "June" || got[1].Placeholder != "MMMM" {
		t.Fatalf("month section: %+v", got[1])
	}
	if got[2].ContentType != calendar.ContentDigitWithLetter || got[2].Value != "15th" {
		t.Fatalf("ordinal day section: %+v", got[2])
	}
	if got[2].HasLeadingZerosInInput {
		t.Fatal("ordinal day should not be width padded")
	}
}

func TestParse_RTLSegmentedReversesGroups(t *testing.T) {
	parser := mustParser(t, Options{
		Appearance: appearance.Appearance{
			Direction: appearance.DirectionRTL,
			Density:   appearance.DensityDense,
			Segmented: true,
		},
	})

	got, err := parser.Parse("dd/MM/yyyy HH:mm", utcDate(2023, time.June, 15, 10, 30, 0))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	wantTypes := []calendar.SectionType{
		calendar.SectionHours, calendar.SectionMinutes,
		calendar.SectionDay, calendar.SectionMonth, calendar.SectionYear,
	}
	if len(got) != len(wantTypes) {
		t.Fatalf("section count: got %d, want %d", len(got), len(wantTypes))
	}
	for i, section := range got {
		if section.Type != wantTypes[i] {
			t.Fatalf("section %d type: got %s, want %s", i, section.Type, wantTypes[i])
		}
	}
	if sep := got[1].EndSeparator; sep != "⁩ ⁦" {
		t.Fatalf("whitespace separator should be isolated: got %q", sep)
	}
	if sep := got[0].EndSeparator; sep != ":" {
		t.Fatalf("colon separator should stay bare: got %q", sep)
	}
}

func TestParse_SpaciousDensityPadsSeparators(t *testing.T) {
	parser := mustParser(t, Options{
		Appearance: appearance.Appearance{Density: appearance.DensitySpacious},
	})

	got, err := parser.Parse("MM/dd/yyyy", utcDate(2023, time.June, 15, 0, 0, 0))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got[0].EndSeparator != " / " || got[1].EndSeparator != " / " {
		t.Fatalf("separators: %q, %q", got[0].EndSeparator, got[1].EndSeparator)
	}
	if joined := Join(got, TargetInput); joined != "06 / 15 / 2023" {
		t.Fatalf("joined: got %q", joined)
	}
}

type cyclicAdapter struct {
	*gotime.Adapter
}

func (cyclicAdapter) ExpandFormat(format string) string {
	return format + "P"
}

func TestParse_ExpansionOverflow(t *testing.T) {
	parser := mustParser(t, Options{Adapter: cyclicAdapter{testAdapter()}})

	_, err := parser.Parse("P", calendar.Date{})
	if !errors.Is(err, ErrExpansionOverflow) {
		t.Fatalf("want ErrExpansionOverflow, got %v", err)
	}
}

type patchedTokensAdapter struct {
	*gotime.Adapter
	tokens calendar.TokenMap
}

func (a patchedTokensAdapter) TokenMap() calendar.TokenMap {
	return a.tokens
}

func TestParse_MissingMaxLength(t *testing.T) {
	tokens := calendar.TokenMap{
		"M": {Section: calendar.SectionMonth, Content: calendar.ContentDigit},
	}
	parser := mustParser(t, Options{
		Adapter: patchedTokensAdapter{Adapter: testAdapter(), tokens: tokens},
	})

	_, err := parser.Parse("M", calendar.Date{})
	if !errors.Is(err, ErrMissingMaxLength) {
		t.Fatalf("want ErrMissingMaxLength, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Token != "M" {
		t.Fatalf("want ConfigError for token M, got %v", err)
	}
}

func TestNew_RequiresAdapter(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("want construction error without an adapter")
	}
}
