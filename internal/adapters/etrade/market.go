package etrade

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/ports"
)

const (
	defaultOptionCategory = "STANDARD"
	defaultPriceType      = "ATNM"
)

// Argument errors reach callers wrapped as domain usage errors.
var (
	ErrNoSymbols         = errors.New("at least one symbol is required")
	ErrSymbolRequired    = errors.New("symbol is required")
	ErrInvalidExpiryType = errors.New("invalid expiry type")
	ErrInvalidChainType  = errors.New("invalid chain type")
)

type MarketClient struct {
	client *Client
}

var _ ports.MarketAPI = (*MarketClient)(nil)

func NewMarketClient(client *Client) *MarketClient {
	return &MarketClient{client: client}
}

type quoteEnvelope struct {
	QuoteResponse *struct {
		QuoteData *[]domain.QuoteData `json:"QuoteData"`
	} `json:"QuoteResponse"`
}

type expireDateEnvelope struct {
	OptionExpireDateResponse *struct {
		ExpirationDate *[]domain.ExpirationDate `json:"ExpirationDate"`
	} `json:"OptionExpireDateResponse"`
}

type optionChainEnvelope struct {
	OptionChainResponse *domain.OptionChain `json:"OptionChainResponse"`
}

// SplitSymbols turns "aapl, goog" into ["aapl", "goog"], dropping blanks.
func SplitSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	symbols := make([]string, 0, len(parts))
	for _, part := range parts {
		if symbol := strings.TrimSpace(part); symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}

func (m *MarketClient) Quotes(ctx context.Context, symbols []string) ([]domain.QuoteData, error) {
	escaped := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			escaped = append(escaped, url.PathEscape(symbol))
		}
	}
	if len(escaped) == 0 {
		return nil, domain.NewInvalidArgumentError(endpointQuote.name, ErrNoSymbols)
	}

	path := "/v1/market/quote/" + strings.Join(escaped, ",") + ".json"
	resp, err := m.client.get(ctx, endpointQuote, path, nil, nil)
	if err != nil {
		return nil, err
	}

	quotes, _, err := decode(endpointQuote, resp.status, resp.body, func(env *quoteEnvelope) ([]domain.QuoteData, bool) {
		if env.QuoteResponse == nil || env.QuoteResponse.QuoteData == nil {
			return nil, false
		}
		return *env.QuoteResponse.QuoteData, true
	})
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

// OptionExpireDates lists expiry dates; an empty expiryType applies no filter.
func (m *MarketClient) OptionExpireDates(ctx context.Context, symbol string, expiryType domain.ExpiryType) ([]domain.ExpirationDate, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, domain.NewInvalidArgumentError(endpointExpireDate.name, ErrSymbolRequired)
	}

	query := url.Values{}
	query.Set("symbol", symbol)
	if expiryType != "" {
		if !expiryType.Valid() {
			return nil, domain.NewInvalidArgumentError(endpointExpireDate.name, fmt.Errorf("%w %q", ErrInvalidExpiryType, expiryType))
		}
		query.Set("expiryType", string(expiryType))
	}

	resp, err := m.client.get(ctx, endpointExpireDate, "/v1/market/optionexpiredate.json", query, nil)
	if err != nil {
		return nil, err
	}

	dates, _, err := decode(endpointExpireDate, resp.status, resp.body, func(env *expireDateEnvelope) ([]domain.ExpirationDate, bool) {
		if env.OptionExpireDateResponse == nil || env.OptionExpireDateResponse.ExpirationDate == nil {
			return nil, false
		}
		return *env.OptionExpireDateResponse.ExpirationDate, true
	})
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (m *MarketClient) OptionChains(ctx context.Context, req domain.OptionChainRequest) (*domain.OptionChain, error) {
	query, err := optionChainQuery(req)
	if err != nil {
		return nil, err
	}

	resp, err := m.client.get(ctx, endpointOptionChain, "/v1/market/optionchains.json", query, nil)
	if err != nil {
		return nil, err
	}

	chain, _, err := decode(endpointOptionChain, resp.status, resp.body, func(env *optionChainEnvelope) (*domain.OptionChain, bool) {
		return env.OptionChainResponse, env.OptionChainResponse != nil
	})
	if err != nil {
		return nil, err
	}
	return chain, nil
}

// optionChainQuery omits zero numeric filters and always sends the boolean
// flags as "true" or "false".
func optionChainQuery(req domain.OptionChainRequest) (url.Values, error) {
	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		return nil, domain.NewInvalidArgumentError(endpointOptionChain.name, ErrSymbolRequired)
	}

	chainType := req.ChainType
	if chainType == "" {
		chainType = domain.ChainCallPut
	}
	if !chainType.Valid() {
		return nil, domain.NewInvalidArgumentError(endpointOptionChain.name, fmt.Errorf("%w %q", ErrInvalidChainType, chainType))
	}

	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("chainType", string(chainType))
	setPositive(query, "expiryYear", req.ExpiryYear)
	setPositive(query, "expiryMonth", req.ExpiryMonth)
	setPositive(query, "expiryDay", req.ExpiryDay)
	if !req.StrikePriceNear.IsZero() {
		query.Set("strikePriceNear", req.StrikePriceNear.String())
	}
	setPositive(query, "noOfStrikes", req.NoOfStrikes)

	skipAdjusted := true
	if req.SkipAdjusted != nil {
		skipAdjusted = *req.SkipAdjusted
	}
	query.Set("includeWeekly", strconv.FormatBool(req.IncludeWeekly))
	query.Set("skipAdjusted", strconv.FormatBool(skipAdjusted))

	optionCategory := req.OptionCategory
	if optionCategory == "" {
		optionCategory = defaultOptionCategory
	}
	priceType := req.PriceType
	if priceType == "" {
		priceType = defaultPriceType
	}
	query.Set("optionCategory", optionCategory)
	query.Set("priceType", priceType)

	return query, nil
}

func setPositive(query url.Values, key string, value int) {
	if value > 0 {
		query.Set(key, strconv.Itoa(value))
	}
}
