package notifier

import (
	"context"
	"fmt"
	"strings"

	"bitbucket.org/planbgroup/booking-notifier/internal/schema"
	"github.com/rs/zerolog"
)

type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Result makes every dispatch observable to the orchestrator. A failed
// result never aborts the booking flow; the orchestrator logs it and moves
// on.
type Result struct {
	Outcome Outcome
	Reason  string
}

// Messenger is the outbound channel. Satisfied by the twilio client.
type Messenger interface {
	SendMessage(ctx context.Context, from string, to string, body string, mediaURL string) error
}

type Dispatcher struct {
	messenger     Messenger
	from          string
	mediaURL      string
	reminderHours int
}

func NewDispatcher(messenger Messenger, from string, mediaURL string, reminderHours int) *Dispatcher {
	return &Dispatcher{
		messenger:     messenger,
		from:          from,
		mediaURL:      mediaURL,
		reminderHours: reminderHours,
	}
}

// Dispatch sends one notification. Reminders outside the notify window are a
// recognized no-op, not a failure.
func (d *Dispatcher) Dispatch(ctx context.Context, request schema.NotificationRequest, logger *zerolog.Logger) Result {
	if request.RecipientPhone == "" {
		return Result{Outcome: OutcomeSkipped, Reason: "no recipient phone"}
	}

	if request.Kind == schema.NotificationReminder && !ShouldNotify(request.StartsAt, d.reminderHours) {
		return Result{Outcome: OutcomeSkipped, Reason: "outside reminder window"}
	}

	err := d.messenger.SendMessage(ctx, d.from, channelAddress(request.RecipientPhone), messageBody(request), d.mediaURL)
	if err != nil {
		logger.Error().
			Str("phone", request.RecipientPhone).
			Str("kind", string(request.Kind)).
			Err(err).
			Msg("Notification dispatch failed")

		return Result{Outcome: OutcomeFailed, Reason: err.Error()}
	}

	logger.Info().
		Str("phone", request.RecipientPhone).
		Str("kind", string(request.Kind)).
		Msg("Notification dispatched")

	return Result{Outcome: OutcomeSent}
}

func messageBody(request schema.NotificationRequest) string {
	formatted := FormatTimestamp(request.StartsAt)
	name := request.RecipientName
	if name == "" {
		name = "there"
	}

	var body string
	switch request.Kind {
	case schema.NotificationCancel:
		body = fmt.Sprintf("Hi %s, your appointment on %s at %s has been cancelled.", name, formatted.Date, formatted.Time)
	case schema.NotificationChange:
		body = fmt.Sprintf("Hi %s, your appointment has been moved to %s at %s.", name, formatted.Date, formatted.Time)
	case schema.NotificationReminder:
		body = fmt.Sprintf("Hi %s, this is a reminder of your appointment on %s at %s.", name, formatted.Date, formatted.Time)
	default:
		body = fmt.Sprintf("Hi %s, your appointment is confirmed for %s at %s.", name, formatted.Date, formatted.Time)
	}

	venue, ok := ResolveLocation(request.Location)
	if ok {
		body = fmt.Sprintf("%s See you at %s: %s", body, venue.DisplayName, venue.MapLink)
	}

	return body
}

// channelAddress prefixes a bare phone number with the whatsapp channel.
func channelAddress(phone string) string {
	if strings.Contains(phone, ":") {
		return phone
	}

	return "whatsapp:" + phone
}
