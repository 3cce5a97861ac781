package gotime

import "time"

// Locale carries the display names and week conventions the adapter formats
// and parses with. Weekday slices are indexed by time.Weekday (Sunday = 0).
type Locale struct {
	Name           string
	Months         [12]string
	MonthsAbbrev   [12]string
	Weekdays       [7]string
	WeekdaysAbbrev [7]string
	AM             string
	PM             string
	FirstDay       time.Weekday
}

// English returns the built-in default locale.
func English() Locale {
	return Locale{
		Name: "en",
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthsAbbrev: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		Weekdays: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		WeekdaysAbbrev: [7]string{
			"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
		},
		AM:       "AM",
		PM:       "PM",
		FirstDay: time.Sunday,
	}
}
