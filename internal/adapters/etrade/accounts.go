package etrade

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/ports"
)

type AccountsClient struct {
	client *Client
}

var _ ports.AccountsAPI = (*AccountsClient)(nil)

func NewAccountsClient(client *Client) *AccountsClient {
	return &AccountsClient{client: client}
}

type accountListEnvelope struct {
	AccountListResponse *struct {
		Accounts *struct {
			Account *[]domain.Account `json:"Account"`
		} `json:"Accounts"`
	} `json:"AccountListResponse"`
}

type portfolioEnvelope struct {
	PortfolioResponse *domain.Portfolio `json:"PortfolioResponse"`
}

type balanceEnvelope struct {
	BalanceResponse *domain.Balance `json:"BalanceResponse"`
}

type ordersEnvelope struct {
	OrdersResponse *struct {
		Marker string          `json:"marker,omitempty"`
		Next   string          `json:"next,omitempty"`
		Order  *[]domain.Order `json:"Order"`
	} `json:"OrdersResponse"`
}

func (a *AccountsClient) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	resp, err := a.client.get(ctx, endpointAccountList, "/v1/accounts/list.json", nil, nil)
	if err != nil {
		return nil, err
	}

	accounts, _, err := decode(endpointAccountList, resp.status, resp.body, func(env *accountListEnvelope) ([]domain.Account, bool) {
		if env.AccountListResponse == nil || env.AccountListResponse.Accounts == nil || env.AccountListResponse.Accounts.Account == nil {
			return nil, false
		}
		return *env.AccountListResponse.Accounts.Account, true
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *AccountsClient) Portfolio(ctx context.Context, accountIDKey string) (*domain.Portfolio, error) {
	path, err := accountPath(endpointPortfolio, accountIDKey, "portfolio.json")
	if err != nil {
		return nil, err
	}

	resp, err := a.client.get(ctx, endpointPortfolio, path, nil, nil)
	if err != nil {
		return nil, err
	}

	portfolio, present, err := decode(endpointPortfolio, resp.status, resp.body, func(env *portfolioEnvelope) (*domain.Portfolio, bool) {
		if env.PortfolioResponse == nil || env.PortfolioResponse.AccountPortfolio == nil {
			return nil, false
		}
		return env.PortfolioResponse, true
	})
	if err != nil || !present {
		return nil, err
	}
	return portfolio, nil
}

// Balance sends the consumer key header the balance endpoint requires on top
// of the signed request.
func (a *AccountsClient) Balance(ctx context.Context, accountIDKey string, instType domain.InstitutionType) (*domain.Balance, error) {
	path, err := accountPath(endpointBalance, accountIDKey, "balance.json")
	if err != nil {
		return nil, err
	}
	if instType == "" {
		instType = domain.InstitutionBrokerage
	}

	query := url.Values{}
	query.Set("instType", string(instType))
	query.Set("realTimeNAV", "true")

	header := http.Header{}
	header.Set("consumerkey", a.client.consumerKey)

	resp, err := a.client.get(ctx, endpointBalance, path, query, header)
	if err != nil {
		return nil, err
	}

	balance, _, err := decode(endpointBalance, resp.status, resp.body, func(env *balanceEnvelope) (*domain.Balance, bool) {
		return env.BalanceResponse, env.BalanceResponse != nil
	})
	if err != nil {
		return nil, err
	}
	return balance, nil
}
