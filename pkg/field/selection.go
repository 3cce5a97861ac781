package field

import (
	"fmt"

	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/sections"
)

// SectionIndexes is a resolved selection: an inclusive index range over a
// concrete section list.
type SectionIndexes struct {
	Start int
	End   int
}

type selectionKind uint8

const (
	selectionNone selectionKind = iota
	selectionIndex
	selectionType
	selectionRange
)

// Selection describes which sections are active. It is a closed union built
// through the constructors below; descriptors are resolved lazily against a
// section list so they survive section regeneration.
type Selection struct {
	kind        selectionKind
	start       int
	end         int
	sectionType calendar.SectionType
}

// NoSelection is the empty descriptor.
func NoSelection() Selection { return Selection{} }

// SelectIndex selects the section at the given position.
func SelectIndex(index int) Selection {
	return Selection{kind: selectionIndex, start: index, end: index}
}

// SelectType selects the first section of the given type.
func SelectType(sectionType calendar.SectionType) Selection {
	return Selection{kind: selectionType, sectionType: sectionType}
}

// SelectRange selects the inclusive index range [start, end].
func SelectRange(start, end int) Selection {
	return Selection{kind: selectionRange, start: start, end: end}
}

// IsNone reports whether the descriptor selects nothing by construction.
func (s Selection) IsNone() bool { return s.kind == selectionNone }

// Resolve maps the descriptor onto a concrete section list. Descriptors that
// fall outside the list, or name a type the list does not contain, resolve to
// nothing.
func (s Selection) Resolve(list []sections.Section) (SectionIndexes, bool) {
	switch s.kind {
	case selectionIndex:
		if s.start < 0 || s.start >= len(list) {
			return SectionIndexes{}, false
		}
		return SectionIndexes{Start: s.start, End: s.start}, true
	case selectionType:
		for i, section := range list {
			if section.Type == s.sectionType {
				return SectionIndexes{Start: i, End: i}, true
			}
		}
		return SectionIndexes{}, false
	case selectionRange:
		if s.start < 0 || s.end >= len(list) || s.start > s.end {
			return SectionIndexes{}, false
		}
		return SectionIndexes{Start: s.start, End: s.end}, true
	default:
		return SectionIndexes{}, false
	}
}

func (s Selection) String() string {
	switch s.kind {
	case selectionIndex:
		return fmt.Sprintf("section %d", s.start)
	case selectionType:
		return fmt.Sprintf("first %s section", s.sectionType)
	case selectionRange:
		return fmt.Sprintf("sections %d-%d", s.start, s.end)
	default:
		return "none"
	}
}
