package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DefaultMessagingAPIURL = "https://api.twilio.com"
	DefaultReminderHours   = 24
	DefaultLedgerTTL       = 45 * 24 * time.Hour
	DefaultTimeout         = 10 * time.Second
)

// Config is built once from the environment in cmd and passed into each
// component at construction. Business logic never reads ambient process state.
type Config struct {
	// Scheduling service
	CompanyLogin string
	APIKey       string
	SecretKey    string
	UserLogin    string
	UserPassword string
	APIURL       string

	// Messaging provider
	MessagingAccountSID string
	MessagingAuthToken  string
	MessagingAPIURL     string
	MessagingFrom       string
	MessagingMediaURL   string

	// Reminder scan
	ReminderWindow string
	ReminderHours  int

	// Notification ledger; empty URI disables cross-run dedup
	LedgerRedisURI string
	LedgerTTL      time.Duration

	// Shared secret for signed trigger tokens; empty disables trigger auth
	TriggerSecret string

	Timeout time.Duration
}

// FromEnv reads the process environment into a Config and validates the
// required credentials.
func FromEnv() (*Config, error) {
	cfg := &Config{
		CompanyLogin: os.Getenv("SIMPLYBOOK_COMPANY_LOGIN"),
		APIKey:       os.Getenv("SIMPLYBOOK_API_KEY"),
		SecretKey:    os.Getenv("SIMPLYBOOK_SECRET_KEY"),
		UserLogin:    os.Getenv("SIMPLYBOOK_USER_LOGIN"),
		UserPassword: os.Getenv("SIMPLYBOOK_USER_PASSWORD"),
		APIURL:       os.Getenv("SIMPLYBOOK_API_URL"),

		MessagingAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		MessagingAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		MessagingAPIURL:     os.Getenv("TWILIO_API_URL"),
		MessagingFrom:       os.Getenv("TWILIO_FROM"),
		MessagingMediaURL:   os.Getenv("TWILIO_MEDIA_URL"),

		ReminderWindow: os.Getenv("REMINDER_WINDOW"),
		ReminderHours:  DefaultReminderHours,

		LedgerRedisURI: os.Getenv("LEDGER_REDIS_URI"),
		LedgerTTL:      DefaultLedgerTTL,

		TriggerSecret: os.Getenv("TRIGGER_SECRET"),

		Timeout: DefaultTimeout,
	}

	// The service validates booking signatures with the API key when no
	// dedicated secret is issued.
	if cfg.SecretKey == "" {
		cfg.SecretKey = cfg.APIKey
	}

	if cfg.MessagingAPIURL == "" {
		cfg.MessagingAPIURL = DefaultMessagingAPIURL
	}

	if hours := os.Getenv("REMINDER_HOURS"); hours != "" {
		parsed, err := strconv.Atoi(hours)
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_HOURS: %w", err)
		}
		cfg.ReminderHours = parsed
	}

	if timeout := os.Getenv("UPSTREAM_TIMEOUT_MS"); timeout != "" {
		parsed, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT_MS: %w", err)
		}
		cfg.Timeout = time.Duration(parsed) * time.Millisecond
	}

	for name, value := range map[string]string{
		"SIMPLYBOOK_COMPANY_LOGIN": cfg.CompanyLogin,
		"SIMPLYBOOK_API_KEY":       cfg.APIKey,
		"SIMPLYBOOK_API_URL":       cfg.APIURL,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", name)
		}
	}

	return cfg, nil
}
