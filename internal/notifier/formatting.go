package notifier

import (
	"fmt"
	"time"

	"bitbucket.org/planbgroup/booking-notifier/internal/schema"
)

// FormattedTime is a booking instant rendered for message bodies.
type FormattedTime struct {
	Date string
	Time string
}

// FormatTimestamp renders an absolute instant in the booking display zone as
// "Wednesday 1st January 2025" and "10:00 AM".
func FormatTimestamp(t time.Time) FormattedTime {
	t = t.In(schema.BookingZone)

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	meridiem := "AM"
	if t.Hour() >= 12 {
		meridiem = "PM"
	}

	return FormattedTime{
		Date: fmt.Sprintf("%s %d%s %s %d", t.Weekday(), t.Day(), ordinalSuffix(t.Day()), t.Month(), t.Year()),
		Time: fmt.Sprintf("%d:%02d %s", hour, t.Minute(), meridiem),
	}
}

func ordinalSuffix(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}

	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}

	return "th"
}
