package notifier

import (
	"context"
	"time"

	"bitbucket.org/planbgroup/booking-notifier/internal/config"
	"bitbucket.org/planbgroup/booking-notifier/internal/ledger"
	"bitbucket.org/planbgroup/booking-notifier/internal/schema"
	"bitbucket.org/planbgroup/booking-notifier/internal/simplybook"
	"github.com/rs/zerolog"
)

// Service runs the two one-shot orchestrations. It holds no mutable state;
// every invocation authenticates afresh.
type Service struct {
	scheduling *simplybook.Client
	dispatcher *Dispatcher
	ledger     *ledger.Ledger
	windowMode simplybook.WindowMode
}

// NewService wires the orchestrator. A nil ledger disables cross-run dedup.
func NewService(cfg *config.Config, scheduling *simplybook.Client, dispatcher *Dispatcher, notified *ledger.Ledger) *Service {
	return &Service{
		scheduling: scheduling,
		dispatcher: dispatcher,
		ledger:     notified,
		windowMode: simplybook.WindowMode(cfg.ReminderWindow),
	}
}

// HandleBookingEvent is the reactive flow: authenticate, fetch the booking
// behind the webhook payload, notify the client. Authentication and lookup
// failures abort the invocation; a dispatch failure is logged and the
// booking is still returned to the caller.
func (s *Service) HandleBookingEvent(ctx context.Context, event schema.BookingEvent, logger *zerolog.Logger) (schema.BookingRecord, error) {
	kind, err := schema.ParseNotificationKind(event.NotificationType)
	if err != nil {
		return schema.BookingRecord{}, err
	}

	token, err := s.scheduling.GetToken(ctx)
	if err != nil {
		return schema.BookingRecord{}, err
	}

	booking, err := s.scheduling.GetBookingDetails(ctx, token, event.BookingID, event.BookingHash)
	if err != nil {
		return schema.BookingRecord{}, err
	}

	result := s.dispatcher.Dispatch(ctx, schema.NotificationRequest{
		RecipientPhone: booking.ClientPhone,
		RecipientName:  booking.ClientName,
		Kind:           kind,
		StartsAt:       booking.StartsAt,
		Location:       booking.Location,
	}, logger)

	logger.Info().
		Str("bookingId", booking.ID).
		Str("outcome", string(result.Outcome)).
		Str("reason", result.Reason).
		Msg("Booking event processed")

	return booking, nil
}

// RunReminderScan is the scheduled flow: authenticate as operator, search
// the configured window, dedupe clients by phone (first seen wins) and
// dispatch sequentially. Dispatch failures are counted, never fatal, and do
// not stop the rest of the batch.
func (s *Service) RunReminderScan(ctx context.Context, logger *zerolog.Logger) (schema.ScanSummary, error) {
	summary := schema.ScanSummary{Notified: []string{}}

	userToken, err := s.scheduling.GetUserToken(ctx)
	if err != nil {
		return summary, err
	}

	window, err := simplybook.BuildWindow(s.windowMode)
	if err != nil {
		return summary, err
	}

	bookings, err := s.scheduling.GetBookings(ctx, userToken, window)
	if err != nil {
		return summary, err
	}

	summary.Bookings = len(bookings)

	seen := make(map[string]bool)
	var unique []schema.BookingRecord
	for _, booking := range bookings {
		if booking.ClientPhone == "" || seen[booking.ClientPhone] {
			continue
		}

		seen[booking.ClientPhone] = true
		unique = append(unique, booking)
	}

	summary.UniqueClients = len(unique)

	for _, booking := range unique {
		if s.ledger != nil && s.ledger.AlreadyNotified(ctx, booking.ID) {
			summary.Skipped++
			continue
		}

		result := s.dispatcher.Dispatch(ctx, schema.NotificationRequest{
			RecipientPhone: booking.ClientPhone,
			RecipientName:  booking.ClientName,
			Kind:           schema.NotificationReminder,
			StartsAt:       booking.StartsAt,
			Location:       booking.Location,
		}, logger)

		switch result.Outcome {
		case OutcomeSent:
			summary.Sent++
			summary.Notified = append(summary.Notified, booking.ClientPhone)

			if s.ledger != nil {
				if err := s.ledger.MarkNotified(ctx, booking.ID, time.Now()); err != nil {
					logger.Warn().
						Str("bookingId", booking.ID).
						Err(err).
						Msg("Failed to record notification in ledger")
				}
			}
		case OutcomeSkipped:
			summary.Skipped++
		case OutcomeFailed:
			summary.Failed++
		}
	}

	return summary, nil
}
