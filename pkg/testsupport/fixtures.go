// Package testsupport holds the shared fixtures of the test suite: a
// deterministic calendar adapter and the golden-file helpers section table
// snapshots are compared with.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/calendar/gotime"
)

// Clock returns the instant every deterministic fixture adapter reports as
// now: 2023-06-15 10:30:00 UTC.
func Clock() time.Time {
	return time.Date(2023, time.June, 15, 10, 30, 0, 0, time.UTC)
}

// Adapter builds a gotime adapter pinned to UTC and the fixture clock. Extra
// options are applied afterwards and may override both.
func Adapter(opts ...gotime.Option) *gotime.Adapter {
	base := []gotime.Option{
		gotime.WithLocation(time.UTC),
		gotime.WithClock(func() time.Time { return Clock() }),
	}
	return gotime.New(append(base, opts...)...)
}

// Date builds a valid UTC date.
func Date(year int, month time.Month, day, hour, minute, second int) calendar.Date {
	return calendar.NewDate(time.Date(year, month, day, hour, minute, second, 0, time.UTC))
}

// WriteGolden rewrites a golden file from value when UPDATE_GOLDENS is set.
// The JSON mirrors what the code under test produced, keeping snapshot diffs
// focused on behavioural changes.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// MustLoadGolden reads a JSON golden file into out.
func MustLoadGolden(t *testing.T, path string, out any) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
