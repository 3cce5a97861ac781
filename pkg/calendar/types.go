package calendar

// SectionType names the logical component a section edits.
type SectionType string

const (
	SectionYear     SectionType = "year"
	SectionMonth    SectionType = "month"
	SectionDay      SectionType = "day"
	SectionWeekDay  SectionType = "weekDay"
	SectionHours    SectionType = "hours"
	SectionMinutes  SectionType = "minutes"
	SectionSeconds  SectionType = "seconds"
	SectionMeridiem SectionType = "meridiem"
	// SectionEmpty is the synthetic type used when a format contains no
	// tokenizable sections at all.
	SectionEmpty SectionType = "empty"
)

// Valid reports whether t is one of the known section types.
func (t SectionType) Valid() bool {
	switch t {
	case SectionYear, SectionMonth, SectionDay, SectionWeekDay,
		SectionHours, SectionMinutes, SectionSeconds, SectionMeridiem,
		SectionEmpty:
		return true
	default:
		return false
	}
}

// SectionTypes lists every known section type in canonical order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionYear, SectionMonth, SectionDay, SectionWeekDay,
		SectionHours, SectionMinutes, SectionSeconds, SectionMeridiem,
		SectionEmpty,
	}
}

// ContentType governs how a section's text behaves under editing: plain
// digits, digits trailed by letters (ordinals such as "1st"), or words.
type ContentType string

const (
	ContentDigit           ContentType = "digit"
	ContentDigitWithLetter ContentType = "digit-with-letter"
	ContentLetter          ContentType = "letter"
)

// Valid reports whether c is one of the known content types.
func (c ContentType) Valid() bool {
	switch c {
	case ContentDigit, ContentDigitWithLetter, ContentLetter:
		return true
	default:
		return false
	}
}

// TokenConfig is the static description an adapter attaches to one format
// token. MaxLength bounds keyboard digit entry for tokens whose canonical
// rendering is not zero padded; it is zero when not meaningful.
type TokenConfig struct {
	Section   SectionType
	Content   ContentType
	MaxLength int
}

// TokenMap is an adapter's format vocabulary, keyed by literal token.
type TokenMap map[string]TokenConfig

// LongestTokenPrefix returns the longest token in the map that prefixes s,
// with ties impossible by construction (keys are unique). The boolean is
// false when no token matches.
func (m TokenMap) LongestTokenPrefix(s string) (string, bool) {
	best := ""
	for token := range m {
		if len(token) <= len(best) {
			continue
		}
		if len(token) <= len(s) && s[:len(token)] == token {
			best = token
		}
	}
	return best, best != ""
}

// EscapeMarkers delimit literal runs inside a format string. Start and End
// may be the same character.
type EscapeMarkers struct {
	Start string
	End   string
}
