package field

import (
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/sections"
)

// FieldState is one snapshot of a field.
type FieldState struct {
	Sections []sections.Section
	// Value is the externally visible value. It may be empty, and while an
	// edit is in progress it may hold an invalid candidate that is never
	// notified outward.
	Value calendar.Date
	// ReferenceValue is the always-valid date incomplete edits merge onto.
	ReferenceValue calendar.Date

	// Composition-based input that cannot be reconciled section by section
	// stages its raw text here. The engine stores it verbatim; interpretation
	// is the caller's concern.
	fallbackText string
	fallbackSet  bool
}

// AndroidFallback returns the staged composition text and whether one is set.
func (s FieldState) AndroidFallback() (string, bool) {
	return s.fallbackText, s.fallbackSet
}

func copySections(list []sections.Section) []sections.Section {
	out := make([]sections.Section, len(list))
	copy(out, list)
	return out
}
