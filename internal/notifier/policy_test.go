package notifier_test

import (
	"testing"
	"time"

	"bitbucket.org/planbgroup/booking-notifier/internal/notifier"
	"bitbucket.org/planbgroup/booking-notifier/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldNotify(t *testing.T) {
	defer func() { notifier.CurrentTimeFunc = time.Now }()

	booking, err := schema.ParseBookingTime("2025-01-01 10:00:00")
	require.Nil(t, err)

	at := func(clock string) func() time.Time {
		now, err := schema.ParseBookingTime(clock)
		require.Nil(t, err)
		return func() time.Time { return now }
	}

	t.Run("should notify inside the threshold", func(t *testing.T) {
		notifier.CurrentTimeFunc = at("2025-01-01 09:30:00")

		assert.True(t, notifier.ShouldNotify(booking, 1))
	})

	t.Run("should not notify when the booking is further out than the threshold", func(t *testing.T) {
		notifier.CurrentTimeFunc = at("2025-01-01 08:00:00")

		assert.False(t, notifier.ShouldNotify(booking, 1))
	})

	t.Run("should not notify once the booking has started", func(t *testing.T) {
		notifier.CurrentTimeFunc = at("2025-01-01 10:30:00")

		assert.False(t, notifier.ShouldNotify(booking, 1))
	})

	t.Run("should not notify a zero start time", func(t *testing.T) {
		notifier.CurrentTimeFunc = at("2025-01-01 09:30:00")

		assert.False(t, notifier.ShouldNotify(time.Time{}, 1))
	})
}
