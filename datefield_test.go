package datefield_test

import (
	"testing"
	"time"

	theme "github.com/goliatone/go-theme"

	datefield "github.com/goliatone/go-datefield"
	"github.com/goliatone/go-datefield/pkg/appearance"
	"github.com/goliatone/go-datefield/pkg/sections"
	"github.com/goliatone/go-datefield/pkg/testsupport"
)

func TestNew_QuickStart(t *testing.T) {
	engine, err := datefield.New(
		datefield.WithAdapter(testsupport.Adapter()),
		datefield.WithFormat("MM/dd/yyyy"),
		datefield.WithValue(testsupport.Date(2023, time.June, 15, 10, 30, 0)),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := sections.Join(engine.Sections(), sections.TargetInput); got != "06/15/2023" {
		t.Fatalf("rendered field = %q, want %q", got, "06/15/2023")
	}
}

func TestParseFormat(t *testing.T) {
	list, err := datefield.ParseFormat(testsupport.Adapter(), "MM/dd/yyyy",
		testsupport.Date(2023, time.June, 15, 0, 0, 0))
	if err != nil {
		t.Fatalf("ParseFormat() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("section count = %d, want 3", len(list))
	}
	values := []string{list[0].Value, list[1].Value, list[2].Value}
	want := []string{"06", "15", "2023"}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("section %d value = %q, want %q", i, values[i], want[i])
		}
	}
}

func TestParseFormat_ForwardsParserOptions(t *testing.T) {
	list, err := datefield.ParseFormat(testsupport.Adapter(), "MM/dd/yyyy", datefield.Date{},
		sections.WithAppearance(appearance.Appearance{Density: appearance.DensitySpacious}))
	if err != nil {
		t.Fatalf("ParseFormat() error = %v", err)
	}
	if list[0].EndSeparator != " / " {
		t.Fatalf("spacious separator = %q, want %q", list[0].EndSeparator, " / ")
	}
}

func TestDefaultCalendars(t *testing.T) {
	reg := datefield.DefaultCalendars()
	if !reg.Has("gotime") {
		t.Fatal("gotime adapter not registered")
	}
	if again := datefield.DefaultCalendars(); again != reg {
		t.Fatal("second call should return the same registry")
	}
	adapter, err := reg.Get("gotime")
	if err != nil {
		t.Fatalf("Get(gotime) error = %v", err)
	}
	if adapter == nil {
		t.Fatal("Get(gotime) returned nil adapter")
	}
}

func TestWithThemeSelection(t *testing.T) {
	sel := &theme.Selection{
		Theme: "acme",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{appearance.TokenDensity: "spacious"},
		},
	}
	opt, err := datefield.WithThemeSelection(sel)
	if err != nil {
		t.Fatalf("WithThemeSelection() error = %v", err)
	}

	engine, err := datefield.New(
		datefield.WithAdapter(testsupport.Adapter()),
		datefield.WithFormat("MM/dd/yyyy"),
		opt,
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if sep := engine.Sections()[0].EndSeparator; sep != " / " {
		t.Fatalf("themed separator = %q, want %q", sep, " / ")
	}
}

func TestWithThemeSelection_UnknownToken(t *testing.T) {
	sel := &theme.Selection{
		Manifest: &theme.Manifest{
			Name:   "broken",
			Tokens: map[string]string{appearance.TokenDensity: "cozy"},
		},
	}
	if _, err := datefield.WithThemeSelection(sel); err == nil {
		t.Fatal("want error for unknown density token")
	}
}
