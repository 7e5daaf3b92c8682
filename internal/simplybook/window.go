package simplybook

import (
	"fmt"
	"time"
)

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

type WindowMode string

const (
	// WindowExactDayAgo queries the single calendar day exactly one month
	// back. Month arithmetic follows time.AddDate normalization, so a day-31
	// anchor can roll into the next month.
	WindowExactDayAgo WindowMode = "exact-day-ago"

	// WindowExactHourAgo queries the single minute exactly one hour back,
	// seconds truncated.
	WindowExactHourAgo WindowMode = "exact-hour-ago"

	// WindowRollingMonth queries from one month back through today.
	WindowRollingMonth WindowMode = "rolling-month"
)

// Window is a from/to filter pair, already formatted for the wire. Inclusive
// range semantics are the remote service's.
type Window struct {
	From string
	To   string
}

const (
	windowDateLayout     = "2006-01-02"
	windowDateTimeLayout = "2006-01-02 15:04:05"
)

func BuildWindow(mode WindowMode) (Window, error) {
	now := CurrentTimeFunc()

	switch mode {
	case WindowExactDayAgo, "":
		day := now.AddDate(0, -1, 0).Format(windowDateLayout)
		return Window{From: day, To: day}, nil

	case WindowExactHourAgo:
		at := now.Add(-time.Hour).Truncate(time.Minute).Format(windowDateTimeLayout)
		return Window{From: at, To: at}, nil

	case WindowRollingMonth:
		return Window{
			From: now.AddDate(0, -1, 0).Format(windowDateLayout),
			To:   now.Format(windowDateLayout),
		}, nil
	}

	return Window{}, fmt.Errorf("unknown window mode %q", mode)
}
