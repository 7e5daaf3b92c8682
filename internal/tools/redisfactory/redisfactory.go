package redisfactory

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Factory hands out the redis connections the service needs. Currently only
// the notification ledger uses one; a second concern gets its own client
// function instead of sharing this connection.
type Factory struct {
	ledgerCache *redis.Client
}

// New builds the factory from a redis URI. An empty URI leaves the ledger
// client nil, which disables cross-run notification dedup.
func New(ledgerURI string) *Factory {
	if ledgerURI == "" {
		return &Factory{}
	}

	opt, err := redis.ParseURL(ledgerURI)
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return &Factory{
		ledgerCache: redis.NewClient(opt),
	}
}

func (f *Factory) LedgerClient() *redis.Client {
	return f.ledgerCache
}
