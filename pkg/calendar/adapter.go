package calendar

// FormatProvider exposes an adapter's static format vocabulary.
type FormatProvider interface {
	// TokenMap returns the adapter's token table. The map is treated as
	// read-only by callers.
	TokenMap() TokenMap
	// EscapeMarkers returns the characters delimiting literal runs.
	EscapeMarkers() EscapeMarkers
	// ExpandFormat rewrites composite or localized macros one level.
	// Callers loop it until a fixed point is reached.
	ExpandFormat(format string) string
}

// Formatter converts between text and dates against a format string.
type Formatter interface {
	// FormatByString renders d against a full format string, including
	// escaped runs and separators. Non-valid dates render as "".
	FormatByString(d Date, format string) string
	// Parse reads value against format. It is strict: components that are
	// out of range for their date (Feb 31) yield an invalid Date, never a
	// normalized one. Empty input yields the empty Date.
	Parse(value, format string) Date
}

// Arithmetic supplies the calendar math the engine and the boundaries
// provider lean on. Non-valid inputs pass through unchanged.
type Arithmetic interface {
	Now() Date
	AddDays(d Date, amount int) Date
	AddHours(d Date, amount int) Date
	StartOfWeek(d Date) Date
	DaysInMonth(d Date) int
}

// Components reads and writes individual date components. Months and days
// are 1-based. Setters preserve the remaining components and return a new
// Date; non-valid inputs pass through unchanged.
type Components interface {
	Year(d Date) int
	SetYear(d Date, v int) Date
	Month(d Date) int
	SetMonth(d Date, v int) Date
	Day(d Date) int
	SetDay(d Date, v int) Date
	Hours(d Date) int
	SetHours(d Date, v int) Date
	Minutes(d Date) int
	SetMinutes(d Date, v int) Date
	Seconds(d Date) int
	SetSeconds(d Date, v int) Date
}

// Adapter is the full locale-aware calendar contract the field core
// consumes. Implementations own locale, chronology, and timezone concerns;
// the core never inspects a time.Time directly.
type Adapter interface {
	FormatProvider
	Formatter
	Arithmetic
	Components
}
