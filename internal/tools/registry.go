package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/ports"
)

const op = "tools"

type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description" yaml:"description"`
}

type Descriptor struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
}

type handler func(ctx context.Context, accounts ports.AccountsAPI, market ports.MarketAPI, args json.RawMessage) (any, error)

type tool struct {
	descriptor Descriptor
	call       handler
}

// Registry exposes the endpoint operations as named tools. Errors from the
// endpoint clients are returned unchanged.
type Registry struct {
	clients *Clients
	tools   map[string]tool
	order   []string
}

func NewRegistry(clients *Clients) *Registry {
	r := &Registry{clients: clients, tools: map[string]tool{}}
	for _, t := range builtinTools() {
		r.tools[t.descriptor.Name] = t
		r.order = append(r.order, t.descriptor.Name)
	}
	return r
}

func (r *Registry) List() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		descriptors = append(descriptors, r.tools[name].descriptor)
	}
	return descriptors
}

func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, domain.NewUsageError(op, fmt.Sprintf("unknown tool %q", name))
	}

	accounts, market, err := r.clients.Get(ctx)
	if err != nil {
		return nil, err
	}

	return t.call(ctx, accounts, market, args)
}

func decodeArgs(args json.RawMessage, target any) error {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("{}")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return invalidArguments(err.Error())
	}
	return nil
}

func requireString(name string, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalidArguments(name + " is required")
	}
	return nil
}

func invalidArguments(detail string) error {
	return domain.NewUsageError(op, "invalid arguments: "+detail)
}

type accountArgs struct {
	AccountIDKey string `json:"account_id_key"`
}

type balanceArgs struct {
	AccountIDKey string                 `json:"account_id_key"`
	InstType     domain.InstitutionType `json:"inst_type"`
}

type ordersArgs struct {
	AccountIDKey string             `json:"account_id_key"`
	Status       domain.OrderStatus `json:"status"`
	Count        int                `json:"count"`
}

// symbolList accepts either ["AAPL","GOOG"] or "AAPL,GOOG".
type symbolList []string

func (s *symbolList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return errors.New("symbols must be a list of strings or a comma separated string")
	}
	*s = nil
	for _, symbol := range strings.Split(joined, ",") {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			*s = append(*s, symbol)
		}
	}
	return nil
}

type quoteArgs struct {
	Symbols symbolList `json:"symbols"`
}

type expireDateArgs struct {
	Symbol     string            `json:"symbol"`
	ExpiryType domain.ExpiryType `json:"expiry_type"`
}

func builtinTools() []tool {
	accountKey := Parameter{Name: "account_id_key", Type: "string", Required: true, Description: "Account key from list_accounts."}

	return []tool{
		{
			descriptor: Descriptor{
				Name:        "list_accounts",
				Description: "List all brokerage accounts with their ids, descriptions and institution types.",
			},
			call: func(ctx context.Context, accounts ports.AccountsAPI, _ ports.MarketAPI, args json.RawMessage) (any, error) {
				if err := decodeArgs(args, &struct{}{}); err != nil {
					return nil, err
				}
				return accounts.ListAccounts(ctx)
			},
		},
		{
			descriptor: Descriptor{
				Name:        "get_portfolio",
				Description: "Get the portfolio positions of an account. Returns null when the account holds no positions.",
				Parameters:  []Parameter{accountKey},
			},
			call: func(ctx context.Context, accounts ports.AccountsAPI, _ ports.MarketAPI, args json.RawMessage) (any, error) {
				var in accountArgs
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				if err := requireString("account_id_key", in.AccountIDKey); err != nil {
					return nil, err
				}
				return accounts.Portfolio(ctx, in.AccountIDKey)
			},
		},
		{
			descriptor: Descriptor{
				Name:        "get_balance",
				Description: "Get the balance details of an account.",
				Parameters: []Parameter{
					accountKey,
					{Name: "inst_type", Type: "string", Description: "Institution type, BROKERAGE by default."},
				},
			},
			call: func(ctx context.Context, accounts ports.AccountsAPI, _ ports.MarketAPI, args json.RawMessage) (any, error) {
				var in balanceArgs
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				if err := requireString("account_id_key", in.AccountIDKey); err != nil {
					return nil, err
				}
				return accounts.Balance(ctx, in.AccountIDKey, in.InstType)
			},
		},
		{
			descriptor: Descriptor{
				Name:        "list_orders",
				Description: "List the orders of an account. Returns null when there are none.",
				Parameters: []Parameter{
					accountKey,
					{Name: "status", Type: "string", Description: "OPEN, EXECUTED, CANCELLED, INDIVIDUAL_FILLS, CANCEL_REQUESTED, EXPIRED or REJECTED."},
					{Name: "count", Type: "integer", Description: "Maximum number of orders, up to 100."},
				},
			},
			call: func(ctx context.Context, accounts ports.AccountsAPI, _ ports.MarketAPI, args json.RawMessage) (any, error) {
				var in ordersArgs
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				if err := requireString("account_id_key", in.AccountIDKey); err != nil {
					return nil, err
				}
				return accounts.Orders(ctx, in.AccountIDKey, domain.OrdersQuery{Status: in.Status, Count: in.Count})
			},
		},
		{
			descriptor: Descriptor{
				Name:        "get_quote",
				Description: "Get real-time quotes for one or more symbols.",
				Parameters: []Parameter{
					{Name: "symbols", Type: "array", Required: true, Description: `Symbols such as ["AAPL","GOOG"].`},
				},
			},
			call: func(ctx context.Context, _ ports.AccountsAPI, market ports.MarketAPI, args json.RawMessage) (any, error) {
				var in quoteArgs
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				if len(in.Symbols) == 0 {
					return nil, invalidArguments("symbols is required")
				}
				return market.Quotes(ctx, in.Symbols)
			},
		},
		{
			descriptor: Descriptor{
				Name:        "get_option_expire_dates",
				Description: "Get option expiration dates for a symbol.",
				Parameters: []Parameter{
					{Name: "symbol", Type: "string", Required: true, Description: "Underlying symbol."},
					{Name: "expiry_type", Type: "string", Description: "ALL, WEEKLY, MONTHLY or QUARTERLY. No filter when omitted."},
				},
			},
			call: func(ctx context.Context, _ ports.AccountsAPI, market ports.MarketAPI, args json.RawMessage) (any, error) {
				var in expireDateArgs
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				if err := requireString("symbol", in.Symbol); err != nil {
					return nil, err
				}
				return market.OptionExpireDates(ctx, in.Symbol, in.ExpiryType)
			},
		},
		{
			descriptor: Descriptor{
				Name:        "get_option_chains",
				Description: "Get the option chain for a symbol.",
				Parameters: []Parameter{
					{Name: "symbol", Type: "string", Required: true, Description: "Underlying symbol."},
					{Name: "expiry_year", Type: "integer", Description: "Expiration year."},
					{Name: "expiry_month", Type: "integer", Description: "Expiration month, 1-12."},
					{Name: "expiry_day", Type: "integer", Description: "Expiration day, 1-31."},
					{Name: "chain_type", Type: "string", Description: "CALLPUT (default), CALL or PUT."},
					{Name: "strike_price_near", Type: "number", Description: "Return strikes near this price."},
					{Name: "no_of_strikes", Type: "integer", Description: "Number of strikes to return."},
					{Name: "include_weekly", Type: "boolean", Description: "Include weekly options, false by default."},
					{Name: "skip_adjusted", Type: "boolean", Description: "Skip adjusted options, true by default."},
					{Name: "option_category", Type: "string", Description: "STANDARD (default), ALL or MINI."},
					{Name: "price_type", Type: "string", Description: "ATNM (default) or ALL."},
				},
			},
			call: func(ctx context.Context, _ ports.AccountsAPI, market ports.MarketAPI, args json.RawMessage) (any, error) {
				var in domain.OptionChainRequest
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				if err := requireString("symbol", in.Symbol); err != nil {
					return nil, err
				}
				return market.OptionChains(ctx, in)
			},
		},
	}
}
