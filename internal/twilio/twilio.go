// Package twilio is a minimal client for the messaging provider's REST API.
// Only message creation is consumed.
package twilio

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bitbucket.org/planbgroup/booking-notifier/internal/config"
	"bitbucket.org/planbgroup/booking-notifier/internal/tools/requesting"
	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

type Client struct {
	accountSID string
	authToken  string
	baseURL    string

	timeout       time.Duration
	httpTransport *http.Transport
	logger        *zerolog.Logger
}

func New(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		accountSID:    cfg.MessagingAccountSID,
		authToken:     cfg.MessagingAuthToken,
		baseURL:       cfg.MessagingAPIURL,
		timeout:       cfg.Timeout,
		httpTransport: http.DefaultTransport.(*http.Transport),
		logger:        logger,
	}
}

type messageForm struct {
	Body     string `url:"Body"`
	From     string `url:"From"`
	To       string `url:"To"`
	MediaURL string `url:"MediaUrl,omitempty"`
}

// SendMessage posts one outbound message. Single attempt; a failure is the
// caller's to classify.
func (c *Client) SendMessage(ctx context.Context, from string, to string, body string, mediaURL string) error {
	form, err := query.Values(messageForm{
		Body:     body,
		From:     from,
		To:       to,
		MediaURL: mediaURL,
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}

	httpRequest.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpRequest.SetBasicAuth(c.accountSID, c.authToken)

	client := &http.Client{
		Timeout: c.timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: c.httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(c.logger),
			},
		},
	}

	response, err := requesting.RequestErrors(client.Do(httpRequest))
	if err != nil {
		return fmt.Errorf("message send failed: %w", err)
	}
	response.Body.Close()

	return nil
}
