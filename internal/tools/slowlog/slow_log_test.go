package slowlog_test

import (
	"bytes"
	"testing"
	"time"

	"bitbucket.org/planbgroup/booking-notifier/internal/tools/slowlog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSlowLogger(t *testing.T) {
	t.Run("should measure and log a named breakpoint", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out).Level(zerolog.DebugLevel)

		slowLog := slowlog.CreateLogger(&log)

		slowLog.Start("reminder-scan")
		time.Sleep(5 * time.Millisecond)
		duration := slowLog.Stop("reminder-scan")

		assert.GreaterOrEqual(t, duration, 5*time.Millisecond)
		assert.Contains(t, out.String(), "reminder-scan")
		assert.Contains(t, out.String(), "slowlog")
	})
}
