package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	datefield "github.com/goliatone/go-datefield"
	"github.com/goliatone/go-datefield/pkg/appearance"
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/localetext"
	"github.com/goliatone/go-datefield/pkg/sections"
	"github.com/goliatone/go-datefield/pkg/tui"
)

func main() {
	format := flag.String("format", "MM/dd/yyyy", "format string to parse")
	value := flag.String("value", "", "initial value matching the format (empty for a blank field)")
	locale := flag.String("locale", "en", "placeholder locale (en, es, fr)")
	density := flag.String("density", "dense", "separator density (dense or spacious)")
	rtl := flag.Bool("rtl", false, "lay spaced groups out right to left")
	interactive := flag.Bool("interactive", false, "edit the field through terminal prompts")
	flag.Parse()

	adapter, err := datefield.DefaultCalendars().Get("gotime")
	if err != nil {
		log.Fatalf("calendar adapter: %v", err)
	}

	catalog, err := localetext.Builtin(*locale)
	if err != nil {
		log.Fatalf("locale: %v", err)
	}

	parsedDensity, err := appearance.ParseDensity(*density)
	if err != nil {
		log.Fatalf("density: %v", err)
	}
	app := appearance.Appearance{Density: parsedDensity, Direction: appearance.DirectionLTR}
	if *rtl {
		app.Direction = appearance.DirectionRTL
		app.Segmented = true
	}

	initial := calendar.Empty()
	if *value != "" {
		initial = adapter.Parse(*value, expandFormat(adapter, *format))
		if !initial.IsValid() {
			log.Fatalf("value %q does not match format %q", *value, *format)
		}
	}

	engine, err := datefield.New(
		datefield.WithAdapter(adapter),
		datefield.WithFormat(*format),
		datefield.WithValue(initial),
		field.WithLocaleText(catalog),
		field.WithAppearance(app),
	)
	if err != nil {
		log.Fatalf("build field: %v", err)
	}

	if *interactive {
		session, err := tui.New(engine, adapter)
		if err != nil {
			log.Fatalf("build session: %v", err)
		}
		if err := session.Run(context.Background()); err != nil {
			log.Fatalf("session: %v", err)
		}
		return
	}

	printSections(engine)

	display := sections.Join(engine.Sections(), sections.TargetInput)
	fmt.Printf("\ndisplay:    %s  [%s]\n", display, engine.Value().Status)
	if engine.Value().IsValid() {
		fmt.Printf("round trip: %s\n", adapter.FormatByString(engine.Value(), *format))
	}
}

func printSections(engine *datefield.Engine) {
	fmt.Printf("%-3s %-10s %-18s %-8s %s\n", "#", "TYPE", "CONTENT", "TOKEN", "TEXT")
	for i, section := range engine.Sections() {
		text := section.Value
		if text == "" {
			text = section.Placeholder
		}
		fmt.Printf("%-3d %-10s %-18s %-8s %s\n",
			i, section.Type, section.ContentType, section.Format, text)
	}
}

// expandFormat loops the adapter's macro expansion to its fixed point so the
// initial value can be parsed against formats such as "P".
func expandFormat(a calendar.Adapter, format string) string {
	current := format
	for i := 0; i < 10; i++ {
		next := a.ExpandFormat(current)
		if next == current {
			break
		}
		current = next
	}
	return current
}
