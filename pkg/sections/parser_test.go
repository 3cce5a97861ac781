package sections_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-datefield/pkg/appearance"
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/localetext"
	"github.com/goliatone/go-datefield/pkg/sections"
	"github.com/goliatone/go-datefield/pkg/testsupport"
)

// Joining the parse-target values of a section list must reproduce what the
// adapter formats for the same date and format string.
func TestParse_RoundTrip(t *testing.T) {
	adapter := testsupport.Adapter()
	parser, err := sections.NewParser(sections.WithAdapter(adapter))
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}

	date := testsupport.Date(2023, time.February, 3, 9, 5, 7)
	formats := []string{
		"MM/dd/yyyy",
		"M/d/yyyy",
		"yyyy-MM-dd HH:mm:ss",
		"EEEE, MMMM d, yyyy",
		"do MMM yy",
		"h:mm aa",
		"'at' hh 'o''clock'",
		"P",
	}

	for _, format := range formats {
		format := format
		t.Run(format, func(t *testing.T) {
			t.Parallel()
			list, err := parser.Parse(format, date)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := sections.Join(list, sections.TargetParse)
			want := adapter.FormatByString(date, format)
			if got != want {
				t.Fatalf("round trip: got %q, want %q", got, want)
			}
		})
	}
}

func TestNewParser_RequiresAdapter(t *testing.T) {
	if _, err := sections.NewParser(); err == nil {
		t.Fatal("want construction error without an adapter")
	}
}

func TestNewParser_OptionPlumbing(t *testing.T) {
	french, err := localetext.Builtin("fr")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	parser, err := sections.NewParser(
		sections.WithAdapter(testsupport.Adapter()),
		sections.WithLocaleText(french),
		sections.WithAppearance(appearance.Appearance{Density: appearance.DensitySpacious}),
	)
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}

	list, err := parser.Parse("dd/MM", calendar.Date{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if list[0].Placeholder != "JJ" {
		t.Fatalf("french day placeholder: got %q, want \"JJ\"", list[0].Placeholder)
	}
	if list[0].EndSeparator != " / " {
		t.Fatalf("spacious separator: got %q", list[0].EndSeparator)
	}
}
