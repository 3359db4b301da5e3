package profile

import (
	"fmt"
	"time"
)

// BirthdateLayout is the layout birth dates are configured in.
const BirthdateLayout = "2006-01-02"

// Uptime returns the time elapsed from start to now as "YY:MM:DD".
// Missing days are borrowed from the calendar month before now.
func Uptime(start, now time.Time) string {
	years := now.Year() - start.Year()
	months := int(now.Month()) - int(start.Month())
	days := now.Day() - start.Day()

	if days < 0 {
		months--
		// Day 0 of the current month is the last day of the previous one.
		days += time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
	}
	if months < 0 {
		years--
		months += 12
	}
	return fmt.Sprintf("%02d:%02d:%02d", years, months, days)
}
