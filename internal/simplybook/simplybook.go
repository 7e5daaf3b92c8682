// Package simplybook is a client for the SimplyBook.me JSON-RPC API. It
// covers the two login flows, signed single-booking lookups and the
// administrative booking search used by the reminder scan.
package simplybook

import (
	"net/http"
	"time"

	"bitbucket.org/planbgroup/booking-notifier/internal/config"
	"github.com/rs/zerolog"
)

type Client struct {
	baseURL      string
	companyLogin string
	apiKey       string
	secretKey    string
	userLogin    string
	userPassword string

	timeout       time.Duration
	httpTransport *http.Transport
	logger        *zerolog.Logger
}

func New(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		baseURL:       cfg.APIURL,
		companyLogin:  cfg.CompanyLogin,
		apiKey:        cfg.APIKey,
		secretKey:     cfg.SecretKey,
		userLogin:     cfg.UserLogin,
		userPassword:  cfg.UserPassword,
		timeout:       cfg.Timeout,
		httpTransport: http.DefaultTransport.(*http.Transport),
		logger:        logger,
	}
}
