package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	datefield "github.com/goliatone/go-datefield"
	"github.com/goliatone/go-datefield/pkg/calendar/gotime"
	"github.com/goliatone/go-datefield/pkg/localetext"
	"github.com/goliatone/go-datefield/pkg/sections"
)

// defaultFormats is the spread dumped when no -format is given: padded and
// unpadded numerics, a 24-hour timestamp, letter sections, a 12-hour clock,
// and a macro.
var defaultFormats = []string{
	"MM/dd/yyyy",
	"M/d/yyyy",
	"yyyy-MM-dd HH:mm:ss",
	"EEEE, MMMM do",
	"h:mm aa",
	"P",
}

func main() {
	var (
		format = flag.String("format", "", "dump a single format instead of the built-in spread")
		output = flag.String("output", "", "output path (stdout if empty)")
	)
	flag.Parse()

	adapter := gotime.New(
		gotime.WithLocation(time.UTC),
		gotime.WithClock(func() time.Time {
			return time.Date(2023, time.June, 15, 10, 30, 0, 0, time.UTC)
		}),
	)
	date := adapter.Now()

	formats := defaultFormats
	if strings.TrimSpace(*format) != "" {
		formats = []string{strings.TrimSpace(*format)}
	}

	set, err := localetext.LoadFS(datefield.LocalesFS())
	if err != nil {
		fail("load locales: %v", err)
	}
	locales := set.Locales()
	sort.Strings(locales)

	tables := make(map[string]map[string][]sections.Section, len(locales))
	for _, locale := range locales {
		catalog, ok := set.Catalog(locale)
		if !ok {
			continue
		}
		parser, err := sections.NewParser(
			sections.WithAdapter(adapter),
			sections.WithLocaleText(catalog),
		)
		if err != nil {
			fail("new parser: %v", err)
		}

		perFormat := make(map[string][]sections.Section, len(formats))
		for _, f := range formats {
			list, err := parser.Parse(f, date)
			if err != nil {
				fail("parse %q: %v", f, err)
			}
			perFormat[f] = list
		}
		tables[locale] = perFormat
	}

	payload, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		fail("marshal section tables: %v", err)
	}

	if *output == "" {
		fmt.Println(string(payload))
		return
	}
	if err := os.WriteFile(*output, append(payload, '\n'), 0o644); err != nil {
		fail("write %s: %v", *output, err)
	}
	fmt.Printf("✓ Wrote section tables to %s\n", *output)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
