package field

import (
	"strings"

	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/sections"
)

// ValueManager abstracts the value currency of a field. The shipped
// implementation handles a single date; the interface exists so an external
// aggregator can run two engines over the endpoints of a range.
type ValueManager interface {
	EmptyValue() calendar.Date
	AreValuesEqual(a calendar.Adapter, x, y calendar.Date) bool
	TodayValue(a calendar.Adapter) calendar.Date
}

// FieldValueManager owns the plumbing between values and section lists for
// one field shape.
type FieldValueManager interface {
	SectionsFromValue(p sections.Parser, prev []sections.Section, v calendar.Date, format string) ([]sections.Section, error)
	UpdateReferenceValue(a calendar.Adapter, v, fallback calendar.Date) calendar.Date
	ActiveDateManager(a calendar.Adapter, st FieldState, active sections.Section) ActiveDateManager
	ActiveDateSections(all []sections.Section, active sections.Section) []sections.Section
}

// ActiveDateManager scopes one edit to the date it belongs to. NewValue maps
// the edited active date back onto the field value and the reference value
// the next edit merges against.
type ActiveDateManager struct {
	Date          calendar.Date
	ReferenceDate calendar.Date
	NewValue      func(active calendar.Date) (value, reference calendar.Date)
}

type singleValueManager struct{}

// DefaultValueManager returns the single-date value manager.
func DefaultValueManager() ValueManager { return singleValueManager{} }

func (singleValueManager) EmptyValue() calendar.Date { return calendar.Date{} }

func (singleValueManager) AreValuesEqual(_ calendar.Adapter, x, y calendar.Date) bool {
	return x.Equal(y)
}

func (singleValueManager) TodayValue(a calendar.Adapter) calendar.Date { return a.Now() }

type singleFieldValueManager struct{}

// DefaultFieldValueManager returns the single-date field value manager.
func DefaultFieldValueManager() FieldValueManager { return singleFieldValueManager{} }

func (singleFieldValueManager) SectionsFromValue(p sections.Parser, _ []sections.Section, v calendar.Date, format string) ([]sections.Section, error) {
	return p.Parse(format, v)
}

func (singleFieldValueManager) UpdateReferenceValue(_ calendar.Adapter, v, fallback calendar.Date) calendar.Date {
	if v.IsValid() {
		return v
	}
	return fallback
}

func (singleFieldValueManager) ActiveDateManager(_ calendar.Adapter, st FieldState, _ sections.Section) ActiveDateManager {
	return ActiveDateManager{
		Date:          st.Value,
		ReferenceDate: st.ReferenceValue,
		NewValue: func(active calendar.Date) (calendar.Date, calendar.Date) {
			if active.IsValid() {
				return active, active
			}
			return active, st.ReferenceValue
		},
	}
}

func (singleFieldValueManager) ActiveDateSections(all []sections.Section, _ sections.Section) []sections.Section {
	return all
}

// dateFromSections parses the date a unit of sections currently spells.
// Weekday sections are skipped when a day-of-month section is present (the
// weekday is display decoration there); the remaining tokens and parse-target
// values are joined with spaces.
func dateFromSections(a calendar.Adapter, unit []sections.Section) calendar.Date {
	hasDay := false
	for _, section := range unit {
		if section.Type == calendar.SectionDay {
			hasDay = true
			break
		}
	}

	formats := make([]string, 0, len(unit))
	values := make([]string, 0, len(unit))
	for _, section := range unit {
		if hasDay && section.Type == calendar.SectionWeekDay {
			continue
		}
		formats = append(formats, section.Format)
		values = append(values, section.VisibleValue(sections.TargetParse))
	}
	return a.Parse(strings.Join(values, " "), strings.Join(formats, " "))
}
