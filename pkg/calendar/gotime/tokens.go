package gotime

import "github.com/goliatone/go-datefield/pkg/calendar"

// defaultTokenMap is the date-fns flavored vocabulary the adapter speaks.
// Tokens whose canonical rendering is zero padded carry no MaxLength; the
// unpadded digit tokens declare the digit count keyboard entry is bounded by.
func defaultTokenMap() calendar.TokenMap {
	return calendar.TokenMap{
		"yyyy": {Section: calendar.SectionYear, Content: calendar.ContentDigit},
		"yy":   {Section: calendar.SectionYear, Content: calendar.ContentDigit},
		"y":    {Section: calendar.SectionYear, Content: calendar.ContentDigit, MaxLength: 4},

		"MMMM": {Section: calendar.SectionMonth, Content: calendar.ContentLetter},
		"MMM":  {Section: calendar.SectionMonth, Content: calendar.ContentLetter},
		"MM":   {Section: calendar.SectionMonth, Content: calendar.ContentDigit},
		"M":    {Section: calendar.SectionMonth, Content: calendar.ContentDigit, MaxLength: 2},

		"dd": {Section: calendar.SectionDay, Content: calendar.ContentDigit},
		"d":  {Section: calendar.SectionDay, Content: calendar.ContentDigit, MaxLength: 2},
		"do": {Section: calendar.SectionDay, Content: calendar.ContentDigitWithLetter},

		"EEEE": {Section: calendar.SectionWeekDay, Content: calendar.ContentLetter},
		"EEE":  {Section: calendar.SectionWeekDay, Content: calendar.ContentLetter},

		"HH": {Section: calendar.SectionHours, Content: calendar.ContentDigit},
		"H":  {Section: calendar.SectionHours, Content: calendar.ContentDigit, MaxLength: 2},
		"hh": {Section: calendar.SectionHours, Content: calendar.ContentDigit},
		"h":  {Section: calendar.SectionHours, Content: calendar.ContentDigit, MaxLength: 2},

		"mm": {Section: calendar.SectionMinutes, Content: calendar.ContentDigit},
		"m":  {Section: calendar.SectionMinutes, Content: calendar.ContentDigit, MaxLength: 2},

		"ss": {Section: calendar.SectionSeconds, Content: calendar.ContentDigit},
		"s":  {Section: calendar.SectionSeconds, Content: calendar.ContentDigit, MaxLength: 2},

		"aa": {Section: calendar.SectionMeridiem, Content: calendar.ContentLetter},
		"a":  {Section: calendar.SectionMeridiem, Content: calendar.ContentLetter},
	}
}

// macroExpansions rewrites localized composite tokens into plain token runs.
// Expansions contain no further macros, so one rewrite pass reaches the
// fixed point ExpandFormat callers loop for.
var macroExpansions = map[string]string{
	"PPPP": "EEEE, MMMM d, yyyy",
	"PP":   "MMM d, yyyy",
	"Pp":   "MM/dd/yyyy h:mm aa",
	"P":    "MM/dd/yyyy",
	"p":    "h:mm aa",
}
