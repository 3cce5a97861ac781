package localetext_test

import (
	"sort"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/localetext"
)

func TestLoadFS_EmbeddedLocales(t *testing.T) {
	set, err := localetext.LoadFS(localetext.EmbeddedLocales())
	if err != nil {
		t.Fatalf("load embedded locales: %v", err)
	}

	got := set.Locales()
	sort.Strings(got)
	want := []string{"en", "es", "fr"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}

	if _, ok := set.Catalog("EN"); !ok {
		t.Fatalf("locale lookup should normalize case")
	}
}

func TestCatalog_Placeholders(t *testing.T) {
	catalog, err := localetext.Builtin("en")
	if err != nil {
		t.Fatalf("builtin en: %v", err)
	}

	cases := []struct {
		name string
		req  localetext.PlaceholderRequest
		want string
	}{
		{
			name: "four digit year repeats",
			req: localetext.PlaceholderRequest{
				Type:        calendar.SectionYear,
				ContentType: calendar.ContentDigit,
				Format:      "yyyy",
				DigitAmount: 4,
			},
			want: "YYYY",
		},
		{
			name: "two digit year repeats",
			req: localetext.PlaceholderRequest{
				Type:        calendar.SectionYear,
				ContentType: calendar.ContentDigit,
				Format:      "yy",
				DigitAmount: 2,
			},
			want: "YY",
		},
		{
			name: "letter month",
			req: localetext.PlaceholderRequest{
				Type:        calendar.SectionMonth,
				ContentType: calendar.ContentLetter,
				Format:      "MMMM",
			},
			want: "MMMM",
		},
		{
			name: "digit month",
			req: localetext.PlaceholderRequest{
				Type:        calendar.SectionMonth,
				ContentType: calendar.ContentDigit,
				Format:      "MM",
			},
			want: "MM",
		},
		{
			name: "meridiem",
			req: localetext.PlaceholderRequest{
				Type:        calendar.SectionMeridiem,
				ContentType: calendar.ContentLetter,
				Format:      "aa",
			},
			want: "aa",
		},
		{
			name: "unknown type falls back to token",
			req: localetext.PlaceholderRequest{
				Type:   calendar.SectionEmpty,
				Format: "??",
			},
			want: "??",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := catalog.Placeholder(tc.req); got != tc.want {
				t.Fatalf("placeholder: want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestBuiltin_FrenchDay(t *testing.T) {
	catalog, err := localetext.Builtin("fr")
	if err != nil {
		t.Fatalf("builtin fr: %v", err)
	}
	got := catalog.Placeholder(localetext.PlaceholderRequest{
		Type:        calendar.SectionDay,
		ContentType: calendar.ContentDigit,
		Format:      "dd",
	})
	if got != "JJ" {
		t.Fatalf("french day placeholder: want JJ, got %q", got)
	}
}

func TestLoad_AcceptsJSON(t *testing.T) {
	data := []byte(`{"locale":"de","placeholders":{"day":{"digit":"TT"}}}`)
	catalog, err := localetext.Load(data, "de.json")
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	got := catalog.Placeholder(localetext.PlaceholderRequest{
		Type:        calendar.SectionDay,
		ContentType: calendar.ContentDigit,
		Format:      "dd",
	})
	if got != "TT" {
		t.Fatalf("json catalog: want TT, got %q", got)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "empty document",
			data:    "   ",
			wantErr: "is empty",
		},
		{
			name:    "missing locale",
			data:    "placeholders:\n  day: {digit: \"DD\"}\n",
			wantErr: "no locale name",
		},
		{
			name:    "unknown section type",
			data:    "locale: xx\nplaceholders:\n  decade: {digit: \"D\"}\n",
			wantErr: "unknown section type",
		},
		{
			name:    "empty placeholder",
			data:    "locale: xx\nplaceholders:\n  day: {digit: \"  \"}\n",
			wantErr: "empty placeholder",
		},
		{
			name:    "not yaml or json",
			data:    "\t{{{",
			wantErr: "invalid JSON or YAML",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := localetext.Load([]byte(tc.data), "bad.yaml")
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("want error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadFS_DuplicateLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("locale: en\nplaceholders:\n  day: {digit: \"DD\"}\n")},
		"b.yaml": {Data: []byte("locale: EN\nplaceholders:\n  day: {digit: \"DD\"}\n")},
	}
	_, err := localetext.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate locale") {
		t.Fatalf("want duplicate locale error, got %v", err)
	}
}

func TestDefault_IsEnglish(t *testing.T) {
	got := localetext.Default().Placeholder(localetext.PlaceholderRequest{
		Type:        calendar.SectionDay,
		ContentType: calendar.ContentDigit,
		Format:      "dd",
	})
	if got != "DD" {
		t.Fatalf("default provider: want DD, got %q", got)
	}
}
