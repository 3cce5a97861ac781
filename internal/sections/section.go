package sections

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-datefield/pkg/calendar"
)

// Target selects which textual representation of a section to produce.
type Target string

const (
	// TargetInput is the editable representation: input padding applied and
	// the placeholder substituted while the section is empty.
	TargetInput Target = "input"
	// TargetParse is the representation handed to Adapter.Parse: padding that
	// exists only for editing is stripped when the format itself is unpadded.
	TargetParse Target = "parse"
)

// Section models an individual editable unit of the formatted string. Struct
// fields are annotated so tooling can serialise section tables directly.
type Section struct {
	Type        calendar.SectionType `json:"type"`
	ContentType calendar.ContentType `json:"contentType"`
	// Format is the literal token the section was derived from, e.g. "MM".
	Format      string `json:"format"`
	Value       string `json:"value,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	// MaxLength bounds digit entry. It is zero for sections that are not
	// meaningfully bounded and is guaranteed non-zero whenever
	// HasLeadingZerosInInput is true.
	MaxLength int `json:"maxLength,omitempty"`
	// HasLeadingZerosInFormat reports whether the token itself renders padded
	// output; HasLeadingZerosInInput reports whether the editable value keeps
	// a constant width. The two diverge for unpadded tokens: format "M"
	// renders "2" while the editable value still reserves "02".
	HasLeadingZerosInFormat bool `json:"hasLeadingZerosInFormat,omitempty"`
	HasLeadingZerosInInput  bool `json:"hasLeadingZerosInInput,omitempty"`
	// StartSeparator and EndSeparator carry the literal text immediately
	// around the section. Only the first section of a list owns a
	// StartSeparator; later separator text extends the previous EndSeparator.
	StartSeparator string `json:"startSeparator,omitempty"`
	EndSeparator   string `json:"endSeparator,omitempty"`
	// Modified is set the moment a caller supplies a value for the section,
	// separating user-touched sections from ones derived from the date.
	Modified bool `json:"modified,omitempty"`
}

// VisibleValue returns the section text for the requested target, falling
// back to the placeholder while the section is empty.
func (s Section) VisibleValue(target Target) string {
	value := s.Value
	if value == "" {
		value = s.Placeholder
	}
	if target == TargetParse && s.HasLeadingZerosInInput && !s.HasLeadingZerosInFormat {
		if n, err := strconv.Atoi(value); err == nil {
			value = strconv.Itoa(n)
		}
	}
	return value
}

// Join concatenates every section with its separators, yielding the full
// display (TargetInput) or parse (TargetParse) string.
func Join(list []Section, target Target) string {
	var out strings.Builder
	for _, section := range list {
		out.WriteString(section.StartSeparator)
		out.WriteString(section.VisibleValue(target))
		out.WriteString(section.EndSeparator)
	}
	return out.String()
}
