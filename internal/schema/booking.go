package schema

import (
	"fmt"
	"time"
)

// BookingZone is the fixed offset the scheduling service reports wall-clock
// times in. All booking timestamps are converted into absolute instants in
// this zone exactly once, when a record is ingested.
var BookingZone = time.FixedZone("UTC+2", 2*60*60)

const (
	bookingDateTimeLayout = "2006-01-02 15:04:05"
	bookingMinuteLayout   = "2006-01-02 15:04"
	bookingDateLayout     = "2006-01-02"
)

// ParseBookingTime interprets a naive scheduling-service timestamp as a
// wall-clock value in BookingZone.
func ParseBookingTime(value string) (time.Time, error) {
	for _, layout := range []string{bookingDateTimeLayout, bookingMinuteLayout, bookingDateLayout} {
		t, err := time.ParseInLocation(layout, value, BookingZone)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable booking timestamp %q", value)
}

// BookingRecord is produced by the scheduling service and read-only from our
// side. StartsAt carries the ingested absolute instant of StartDateTime.
type BookingRecord struct {
	ID            string `json:"id"`
	ClientName    string `json:"client_name"`
	ClientPhone   string `json:"client_phone"`
	StartDateTime string `json:"start_date_time"`
	IsConfirmed   bool   `json:"is_confirmed"`
	Location      string `json:"location"`

	StartsAt time.Time `json:"-"`
}

// Ingest resolves the record's naive timestamp into StartsAt.
func (b *BookingRecord) Ingest() error {
	if b.StartDateTime == "" {
		return nil
	}

	startsAt, err := ParseBookingTime(b.StartDateTime)
	if err != nil {
		return err
	}

	b.StartsAt = startsAt

	return nil
}
