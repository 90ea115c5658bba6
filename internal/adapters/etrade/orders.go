package etrade

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/bnema/etrade-cli/internal/domain"
)

const maxOrdersCount = 100

var ErrOrderCountRange = fmt.Errorf("order count must be between 1 and %d", maxOrdersCount)

// Orders lists orders for an account. A 204 yields nil.
func (a *AccountsClient) Orders(ctx context.Context, accountIDKey string, query domain.OrdersQuery) ([]domain.Order, error) {
	path, err := accountPath(endpointOrders, accountIDKey, "orders.json")
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	if query.Status != "" {
		params.Set("status", string(query.Status))
	}
	if query.Count < 0 || query.Count > maxOrdersCount {
		return nil, domain.NewInvalidArgumentError(endpointOrders.name, ErrOrderCountRange)
	}
	if query.Count > 0 {
		params.Set("count", strconv.Itoa(query.Count))
	}

	resp, err := a.client.get(ctx, endpointOrders, path, params, nil)
	if err != nil {
		return nil, err
	}

	orders, present, err := decode(endpointOrders, resp.status, resp.body, func(env *ordersEnvelope) ([]domain.Order, bool) {
		if env.OrdersResponse == nil || env.OrdersResponse.Order == nil {
			return nil, false
		}
		return *env.OrdersResponse.Order, true
	})
	if err != nil || !present {
		return nil, err
	}
	return orders, nil
}
