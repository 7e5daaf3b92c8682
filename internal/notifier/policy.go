package notifier

import "time"

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

// ShouldNotify reports whether a reminder is due: the booking starts in the
// future and within hoursThreshold hours of now. StartsAt is already an
// absolute instant, so no offset handling happens here.
func ShouldNotify(startsAt time.Time, hoursThreshold int) bool {
	untilStart := startsAt.Sub(CurrentTimeFunc())

	return untilStart > 0 && untilStart <= time.Duration(hoursThreshold)*time.Hour
}
