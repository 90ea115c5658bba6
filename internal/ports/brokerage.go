package ports

import (
	"context"

	"github.com/bnema/etrade-cli/internal/domain"
)

// AccountsAPI covers the account endpoints. Portfolio and Orders return nil
// when the service answers with no content.
type AccountsAPI interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	Portfolio(ctx context.Context, accountIDKey string) (*domain.Portfolio, error)
	Balance(ctx context.Context, accountIDKey string, instType domain.InstitutionType) (*domain.Balance, error)
	Orders(ctx context.Context, accountIDKey string, query domain.OrdersQuery) ([]domain.Order, error)
}

type MarketAPI interface {
	Quotes(ctx context.Context, symbols []string) ([]domain.QuoteData, error)
	OptionExpireDates(ctx context.Context, symbol string, expiryType domain.ExpiryType) ([]domain.ExpirationDate, error)
	OptionChains(ctx context.Context, req domain.OptionChainRequest) (*domain.OptionChain, error)
}
