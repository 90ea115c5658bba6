package tools

import (
	"context"
	"sync"

	"github.com/bnema/etrade-cli/internal/ports"
)

// ClientFactory builds the endpoint clients, typically from a headless session.
type ClientFactory func(ctx context.Context) (ports.AccountsAPI, ports.MarketAPI, error)

// Clients builds the endpoint clients on first use. Concurrent first calls
// run the factory once; a failed build is not cached so a later call can
// succeed after the user logs in.
type Clients struct {
	mu       sync.Mutex
	factory  ClientFactory
	accounts ports.AccountsAPI
	market   ports.MarketAPI
}

func NewClients(factory ClientFactory) *Clients {
	return &Clients{factory: factory}
}

func (c *Clients) Get(ctx context.Context) (ports.AccountsAPI, ports.MarketAPI, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accounts != nil && c.market != nil {
		return c.accounts, c.market, nil
	}

	accounts, market, err := c.factory(ctx)
	if err != nil {
		return nil, nil, err
	}

	c.accounts, c.market = accounts, market
	return accounts, market, nil
}
