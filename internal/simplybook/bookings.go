package simplybook

import (
	"context"
	"fmt"

	"bitbucket.org/planbgroup/booking-notifier/internal/schema"
)

type bookingDetailsParams struct {
	ID   string `json:"id"`
	Sign string `json:"sign"`
}

type bookingFilter struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

type bookingSearchParams struct {
	Filter bookingFilter `json:"filter"`
}

// GetBookingDetails fetches one booking via the signed company-level lookup.
// A wrong signature surfaces as a remote authorization error, not a local one.
func (c *Client) GetBookingDetails(ctx context.Context, token string, bookingID string, bookingHash string) (schema.BookingRecord, error) {
	headers := map[string]string{
		"X-Company-Login": c.companyLogin,
		"X-Token":         token,
	}

	var booking schema.BookingRecord
	err := c.call(ctx, c.baseURL, "getBookingDetails", bookingDetailsParams{
		ID:   bookingID,
		Sign: Sign(bookingID, bookingHash, c.secretKey),
	}, headers, &booking)
	if err != nil {
		return schema.BookingRecord{}, fmt.Errorf("booking details lookup failed: %w", err)
	}

	if err := booking.Ingest(); err != nil {
		return schema.BookingRecord{}, err
	}

	return booking, nil
}

// GetBookings runs a time-windowed search against the administrative
// endpoint. Records come back in whatever order the service chose; a record
// with an unparseable timestamp is kept with a zero StartsAt and logged
// rather than failing the whole search.
func (c *Client) GetBookings(ctx context.Context, userToken string, window Window) ([]schema.BookingRecord, error) {
	headers := map[string]string{
		"X-Company-Login": c.companyLogin,
		"X-User-Token":    userToken,
	}

	var bookings []schema.BookingRecord
	err := c.call(ctx, c.baseURL+"/admin", "getBookings", bookingSearchParams{
		Filter: bookingFilter{
			DateFrom: window.From,
			DateTo:   window.To,
		},
	}, headers, &bookings)
	if err != nil {
		return nil, fmt.Errorf("booking search failed: %w", err)
	}

	for i := range bookings {
		if err := bookings[i].Ingest(); err != nil {
			c.logger.Warn().
				Str("bookingId", bookings[i].ID).
				Err(err).
				Msg("Skipping booking timestamp")
		}
	}

	return bookings, nil
}
