package field

import (
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/sections"
)

// mergeDateIntoReferenceDate folds the candidate date onto the reference:
// each section of the unit transfers its logical component from the candidate
// while every untouched component keeps the reference's value. With
// onlyModified set, sections the user never touched are skipped.
func mergeDateIntoReferenceDate(a calendar.Adapter, candidate calendar.Date, unit []sections.Section, reference calendar.Date, onlyModified bool) calendar.Date {
	merged := reference
	for _, section := range unit {
		if onlyModified && !section.Modified {
			continue
		}
		if transfer, ok := transferHandlers[section.Type]; ok {
			merged = transfer(a, section, candidate, merged)
		}
	}
	return merged
}

// transferFunc moves one logical component from the candidate date onto the
// merge target.
type transferFunc func(a calendar.Adapter, section sections.Section, from, to calendar.Date) calendar.Date

var transferHandlers = map[calendar.SectionType]transferFunc{
	calendar.SectionYear:     transferYear,
	calendar.SectionMonth:    transferMonth,
	calendar.SectionDay:      transferDay,
	calendar.SectionWeekDay:  transferWeekDay,
	calendar.SectionHours:    transferHours,
	calendar.SectionMinutes:  transferMinutes,
	calendar.SectionSeconds:  transferSeconds,
	calendar.SectionMeridiem: transferMeridiem,
}

func transferYear(a calendar.Adapter, _ sections.Section, from, to calendar.Date) calendar.Date {
	return a.SetYear(to, a.Year(from))
}

func transferMonth(a calendar.Adapter, _ sections.Section, from, to calendar.Date) calendar.Date {
	return a.SetMonth(to, a.Month(from))
}

func transferDay(a calendar.Adapter, _ sections.Section, from, to calendar.Date) calendar.Date {
	return a.SetDay(to, a.Day(from))
}

// transferWeekDay moves the candidate to the weekday the section names by
// shifting whole days: the delta is the distance between the two weekdays'
// positions in the formatted week.
func transferWeekDay(a calendar.Adapter, section sections.Section, from, to calendar.Date) calendar.Date {
	names := weekDayNames(a, section.Format)
	fromPos := indexOf(names, a.FormatByString(from, section.Format))
	targetPos := indexOf(names, section.Value)
	if fromPos < 0 || targetPos < 0 {
		return to
	}
	return a.AddDays(from, targetPos-fromPos)
}

func transferHours(a calendar.Adapter, _ sections.Section, from, to calendar.Date) calendar.Date {
	return a.SetHours(to, a.Hours(from))
}

func transferMinutes(a calendar.Adapter, _ sections.Section, from, to calendar.Date) calendar.Date {
	return a.SetMinutes(to, a.Minutes(from))
}

func transferSeconds(a calendar.Adapter, _ sections.Section, from, to calendar.Date) calendar.Date {
	return a.SetSeconds(to, a.Seconds(from))
}

// transferMeridiem reads AM/PM off the candidate's hour and shifts the merge
// target by twelve hours when its half of the day disagrees.
func transferMeridiem(a calendar.Adapter, _ sections.Section, from, to calendar.Date) calendar.Date {
	isAM := a.Hours(from) < 12
	toHours := a.Hours(to)
	if isAM && toHours >= 12 {
		return a.AddHours(to, -12)
	}
	if !isAM && toHours < 12 {
		return a.AddHours(to, 12)
	}
	return to
}

// weekDayNames formats the seven days of the week, starting at the locale's
// first day, with the section's token.
func weekDayNames(a calendar.Adapter, format string) []string {
	start := a.StartOfWeek(a.Now())
	names := make([]string, 7)
	for i := range names {
		names[i] = a.FormatByString(a.AddDays(start, i), format)
	}
	return names
}

func indexOf(list []string, value string) int {
	for i, item := range list {
		if item == value {
			return i
		}
	}
	return -1
}
