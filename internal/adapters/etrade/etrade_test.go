package etrade

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	path    string
	rawPath string
	query   url.Values
	header  http.Header
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		path:    r.URL.Path,
		rawPath: r.URL.EscapedPath(),
		query:   r.URL.Query(),
		header:  r.Header.Clone(),
	})
	status, body := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, status int, body string) (*Client, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{status: status, body: body}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	logger, _ := test.NewNullLogger()
	return NewClient(server.Client(), server.URL+"/", "consumer-key", logger), api
}

func TestListAccounts(t *testing.T) {
	t.Parallel()

	client, api := newTestClient(t, http.StatusOK, `{"AccountListResponse":{"Accounts":{"Account":[
		{"accountId":"111","accountIdKey":"k1","accountDesc":"Brokerage","institutionType":"BROKERAGE","accountStatus":"ACTIVE"},
		{"accountId":"222","accountIdKey":"k2","accountDesc":"Old","institutionType":"BROKERAGE","accountStatus":"CLOSED"}
	]}}}`)

	accounts, err := NewAccountsClient(client).ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "k1", accounts[0].AccountIDKey)
	assert.True(t, accounts[1].Closed())
	assert.Equal(t, "/v1/accounts/list.json", api.last(t).path)
}

func TestListAccountsSchemaError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{"AccountListResponse":{}}`)

	_, err := NewAccountsClient(client).ListAccounts(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.KindSchema, domain.KindOf(err))
	assert.Equal(t, "AccountList API service error", err.Error())
}

func TestPortfolioNoContentReturnsNil(t *testing.T) {
	t.Parallel()

	client, api := newTestClient(t, http.StatusNoContent, "")

	portfolio, err := NewAccountsClient(client).Portfolio(context.Background(), "key/1")
	require.NoError(t, err)
	assert.Nil(t, portfolio)
	assert.Equal(t, "/v1/accounts/key%2F1/portfolio.json", api.last(t).rawPath)
}

func TestPortfolioDecodesPositions(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{"PortfolioResponse":{"AccountPortfolio":[{"accountId":"111","Position":[
		{"positionId":1,"symbolDescription":"AAPL","quantity":10,"pricePaid":150.25,"marketValue":1890.5,"totalGain":388,"totalGainPct":25.82,
		 "Product":{"symbol":"AAPL","securityType":"EQ"},"Quick":{"lastTrade":189.05,"change":1.2,"changePct":0.64,"volume":1000}}
	]}]}}`)

	portfolio, err := NewAccountsClient(client).Portfolio(context.Background(), "k1")
	require.NoError(t, err)
	require.NotNil(t, portfolio)
	require.Len(t, portfolio.AccountPortfolio, 1)
	position := portfolio.AccountPortfolio[0].Position[0]
	assert.True(t, decimal.RequireFromString("150.25").Equal(position.PricePaid))
	require.NotNil(t, position.Quick)
	assert.True(t, decimal.RequireFromString("189.05").Equal(position.Quick.LastTrade))
}

func TestPortfolioErrorMessageVerbatim(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusInternalServerError, `{"Error":{"message":"Bad Request"}}`)

	_, err := NewAccountsClient(client).Portfolio(context.Background(), "k1")
	require.Error(t, err)
	assert.Equal(t, "Bad Request", err.Error())
	assert.Equal(t, domain.KindAPI, domain.KindOf(err))
}

func TestBalanceSendsConsumerKeyAndDefaults(t *testing.T) {
	t.Parallel()

	client, api := newTestClient(t, http.StatusOK, `{"BalanceResponse":{"accountId":"111","accountType":"INDIVIDUAL",
		"Computed":{"cashAvailableForInvestment":1000.5,"RealTimeValues":{"totalAccountValue":25000.75}}}}`)

	balance, err := NewAccountsClient(client).Balance(context.Background(), "k1", "")
	require.NoError(t, err)
	require.NotNil(t, balance.Computed)
	require.NotNil(t, balance.Computed.RealTimeValues)
	assert.True(t, decimal.RequireFromString("25000.75").Equal(balance.Computed.RealTimeValues.TotalAccountValue))

	req := api.last(t)
	assert.Equal(t, "/v1/accounts/k1/balance.json", req.path)
	assert.Equal(t, "BROKERAGE", req.query.Get("instType"))
	assert.Equal(t, "true", req.query.Get("realTimeNAV"))
	assert.Equal(t, "consumer-key", req.header.Get("consumerkey"))
}

func TestBalanceUsesGivenInstitutionType(t *testing.T) {
	t.Parallel()

	client, api := newTestClient(t, http.StatusOK, `{"BalanceResponse":{"accountId":"222"}}`)

	_, err := NewAccountsClient(client).Balance(context.Background(), "k2", domain.InstitutionBank)
	require.NoError(t, err)
	assert.Equal(t, "BANK", api.last(t).query.Get("instType"))
}

func TestOrders(t *testing.T) {
	t.Parallel()

	t.Run("decodes orders and filters", func(t *testing.T) {
		t.Parallel()

		client, api := newTestClient(t, http.StatusOK, `{"OrdersResponse":{"Order":[{"orderId":42,"orderType":"EQ","OrderDetail":[{"status":"OPEN","orderValue":100,
			"Instrument":[{"Product":{"symbol":"MSFT"},"orderAction":"BUY","orderedQuantity":1}]}]}]}}`)

		orders, err := NewAccountsClient(client).Orders(context.Background(), "k1", domain.OrdersQuery{Status: domain.OrderStatusOpen, Count: 25})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, int64(42), orders[0].OrderID)

		req := api.last(t)
		assert.Equal(t, "/v1/accounts/k1/orders.json", req.path)
		assert.Equal(t, "OPEN", req.query.Get("status"))
		assert.Equal(t, "25", req.query.Get("count"))
	})

	t.Run("no content", func(t *testing.T) {
		t.Parallel()

		client, api := newTestClient(t, http.StatusNoContent, "")
		orders, err := NewAccountsClient(client).Orders(context.Background(), "k1", domain.OrdersQuery{})
		require.NoError(t, err)
		assert.Nil(t, orders)
		assert.Empty(t, api.last(t).query)
	})

	t.Run("rejects count out of range", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, http.StatusOK, `{}`)
		_, err := NewAccountsClient(client).Orders(context.Background(), "k1", domain.OrdersQuery{Count: 500})
		assert.ErrorIs(t, err, ErrOrderCountRange)
		assert.Equal(t, domain.KindUsage, domain.KindOf(err))
	})
}

func TestQuotesJoinsSymbolsIntoOnePathSegment(t *testing.T) {
	t.Parallel()

	client, api := newTestClient(t, http.StatusOK, `{"QuoteResponse":{"QuoteData":[
		{"dateTime":"15:59:59 EDT 10-16-2026","Product":{"symbol":"AAPL","securityType":"EQ"},"All":{"lastTrade":189.05,"changeClose":-1.25}},
		{"Product":{"symbol":"GOOG","securityType":"EQ"},"All":{"lastTrade":140.1}}
	]}}`)

	quotes, err := NewMarketClient(client).Quotes(context.Background(), []string{"AAPL", "GOOG"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "AAPL", quotes[0].Product.Symbol)
	assert.Equal(t, "15:59:59 EDT 10-16-2026", quotes[0].DateTime)
	require.NotNil(t, quotes[0].All)
	assert.True(t, decimal.RequireFromString("-1.25").Equal(quotes[0].All.ChangeClose))
	assert.Equal(t, "GOOG", quotes[1].Product.Symbol)

	assert.Equal(t, "/v1/market/quote/AAPL,GOOG.json", api.last(t).path)
}

func TestQuotesEmbeddedMessagesBecomeAPIError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{"QuoteResponse":{"Messages":{"Message":[{"description":"Invalid symbol","code":1002,"type":"WARNING"}]}}}`)

	_, err := NewMarketClient(client).Quotes(context.Background(), []string{"ZZZZ"})
	require.Error(t, err)
	assert.Equal(t, "API Error: Invalid symbol", err.Error())
	assert.Equal(t, domain.KindAPI, domain.KindOf(err))
}

func TestQuotesRequiresSymbols(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{}`)
	_, err := NewMarketClient(client).Quotes(context.Background(), []string{" ", ""})
	assert.ErrorIs(t, err, ErrNoSymbols)
}

func TestRejectedArgumentsAreUsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(accounts *AccountsClient, market *MarketClient) error
		want error
	}{
		{
			name: "expiry type",
			call: func(_ *AccountsClient, market *MarketClient) error {
				_, err := market.OptionExpireDates(context.Background(), "AAPL", "FOO")
				return err
			},
			want: ErrInvalidExpiryType,
		},
		{
			name: "expiry symbol",
			call: func(_ *AccountsClient, market *MarketClient) error {
				_, err := market.OptionExpireDates(context.Background(), "  ", "")
				return err
			},
			want: ErrSymbolRequired,
		},
		{
			name: "chain type",
			call: func(_ *AccountsClient, market *MarketClient) error {
				_, err := market.OptionChains(context.Background(), domain.OptionChainRequest{Symbol: "AAPL", ChainType: "BOTH"})
				return err
			},
			want: ErrInvalidChainType,
		},
		{
			name: "quote symbols",
			call: func(_ *AccountsClient, market *MarketClient) error {
				_, err := market.Quotes(context.Background(), nil)
				return err
			},
			want: ErrNoSymbols,
		},
		{
			name: "order count",
			call: func(accounts *AccountsClient, _ *MarketClient) error {
				_, err := accounts.Orders(context.Background(), "k1", domain.OrdersQuery{Count: -1})
				return err
			},
			want: ErrOrderCountRange,
		},
		{
			name: "balance account key",
			call: func(accounts *AccountsClient, _ *MarketClient) error {
				_, err := accounts.Balance(context.Background(), " ", "")
				return err
			},
			want: ErrAccountKeyRequired,
		},
		{
			name: "portfolio account key",
			call: func(accounts *AccountsClient, _ *MarketClient) error {
				_, err := accounts.Portfolio(context.Background(), "")
				return err
			},
			want: ErrAccountKeyRequired,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, api := newTestClient(t, http.StatusOK, `{}`)
			err := tc.call(NewAccountsClient(client), NewMarketClient(client))

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, domain.KindUsage, domain.KindOf(err))
			assert.Equal(t, domain.ExitUsage, domain.ExitCode(err))
			assert.Zero(t, api.count(), "nothing is sent for a rejected argument")
		})
	}
}

func TestSplitSymbols(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"AAPL", "goog"}, SplitSymbols(" AAPL , goog ,,"))
	assert.Empty(t, SplitSymbols("  "))
}

func TestOptionExpireDates(t *testing.T) {
	t.Parallel()

	client, api := newTestClient(t, http.StatusOK, `{"OptionExpireDateResponse":{"ExpirationDate":[
		{"year":2026,"month":11,"day":20,"expiryType":"MONTHLY"}
	]}}`)
	market := NewMarketClient(client)

	dates, err := market.OptionExpireDates(context.Background(), "AAPL", domain.ExpiryMonthly)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, 2026, dates[0].Year)
	assert.Equal(t, 11, dates[0].Month)
	assert.Equal(t, 20, dates[0].Day)
	assert.Equal(t, "MONTHLY", dates[0].ExpiryType)
	assert.Equal(t, "MONTHLY", api.last(t).query.Get("expiryType"))
	assert.Equal(t, "AAPL", api.last(t).query.Get("symbol"))

	_, err = market.OptionExpireDates(context.Background(), "AAPL", "")
	require.NoError(t, err)
	assert.False(t, api.last(t).query.Has("expiryType"))

	_, err = market.OptionExpireDates(context.Background(), "AAPL", "DAILY")
	assert.Error(t, err)
}

func TestOptionExpireDatesErrorObjectOnSuccessStatus(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{"Error":{"message":"Symbol has no options"}}`)

	_, err := NewMarketClient(client).OptionExpireDates(context.Background(), "XYZ", "")
	require.Error(t, err)
	assert.Equal(t, "Symbol has no options", err.Error())
}

func TestOptionChainsDefaults(t *testing.T) {
	t.Parallel()

	client, api := newTestClient(t, http.StatusOK, `{"OptionChainResponse":{"nearPrice":190,"OptionPair":[
		{"Call":{"symbol":"AAPL Nov 20 '26 $190 Call","strikePrice":190,"bid":5.1,"ask":5.3,"OptionGreeks":{"delta":0.52,"iv":0.27}},
		 "Put":{"symbol":"AAPL Nov 20 '26 $190 Put","strikePrice":190,"bid":4.8,"ask":5}}
	],"SelectedED":{"year":2026,"month":11,"day":20}}}`)

	chain, err := NewMarketClient(client).OptionChains(context.Background(), domain.OptionChainRequest{Symbol: "AAPL"})
	require.NoError(t, err)
	require.Len(t, chain.OptionPair, 1)
	require.NotNil(t, chain.OptionPair[0].Call)
	require.NotNil(t, chain.OptionPair[0].Call.OptionGreeks)
	assert.InDelta(t, 0.52, chain.OptionPair[0].Call.OptionGreeks.Delta, 1e-9)
	require.NotNil(t, chain.SelectedED)
	assert.Equal(t, 20, chain.SelectedED.Day)

	query := api.last(t).query
	assert.Equal(t, "AAPL", query.Get("symbol"))
	assert.Equal(t, "CALLPUT", query.Get("chainType"))
	assert.Equal(t, "false", query.Get("includeWeekly"))
	assert.Equal(t, "true", query.Get("skipAdjusted"))
	assert.Equal(t, "STANDARD", query.Get("optionCategory"))
	assert.Equal(t, "ATNM", query.Get("priceType"))
	for _, key := range []string{"expiryYear", "expiryMonth", "expiryDay", "strikePriceNear", "noOfStrikes"} {
		assert.False(t, query.Has(key), key)
	}
}

func TestOptionChainQueryExplicitValues(t *testing.T) {
	t.Parallel()

	skip := false
	query, err := optionChainQuery(domain.OptionChainRequest{
		Symbol:          "AAPL",
		ExpiryYear:      2026,
		ExpiryMonth:     11,
		ExpiryDay:       20,
		ChainType:       domain.ChainPut,
		StrikePriceNear: decimal.RequireFromString("190.5"),
		NoOfStrikes:     5,
		IncludeWeekly:   true,
		SkipAdjusted:    &skip,
		OptionCategory:  "ALL",
		PriceType:       "ALL",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026", query.Get("expiryYear"))
	assert.Equal(t, "11", query.Get("expiryMonth"))
	assert.Equal(t, "20", query.Get("expiryDay"))
	assert.Equal(t, "PUT", query.Get("chainType"))
	assert.Equal(t, "190.5", query.Get("strikePriceNear"))
	assert.Equal(t, "5", query.Get("noOfStrikes"))
	assert.Equal(t, "true", query.Get("includeWeekly"))
	assert.Equal(t, "false", query.Get("skipAdjusted"))
	assert.Equal(t, "ALL", query.Get("optionCategory"))

	_, err = optionChainQuery(domain.OptionChainRequest{Symbol: "AAPL", ChainType: "STRADDLE"})
	assert.ErrorIs(t, err, ErrInvalidChainType)
	assert.EqualError(t, err, `invalid chain type "STRADDLE"`)
	_, err = optionChainQuery(domain.OptionChainRequest{})
	assert.ErrorIs(t, err, ErrSymbolRequired)
}

func TestOptionChainErrorStatusUsesGenericMessage(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusBadRequest, `garbage`)

	_, err := NewMarketClient(client).OptionChains(context.Background(), domain.OptionChainRequest{Symbol: "AAPL"})
	require.Error(t, err)
	assert.Equal(t, "Option Chain API service error", err.Error())
}

func TestTransportFailureIsClassified(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	serverURL := server.URL
	server.Close()

	logger, _ := test.NewNullLogger()
	client := NewClient(http.DefaultClient, serverURL, "ck", logger)

	_, err := NewAccountsClient(client).ListAccounts(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.KindTransport, domain.KindOf(err))
	assert.Contains(t, err.Error(), "AccountList request failed")
}

func TestQuotesKeepServicePayload(t *testing.T) {
	t.Parallel()

	quoteData := `[{"Product":{"symbol":"GOOG","securityType":"EQ"},"All":{"lastTrade":1175.74,"week52High":1186.89,"marketCap":8.18e11},"Fundamental":{"eps":20.12}}]`
	client, _ := newTestClient(t, http.StatusOK, `{"QuoteResponse":{"QuoteData":`+quoteData+`}}`)

	quotes, err := NewMarketClient(client).Quotes(context.Background(), []string{"GOOG"})
	require.NoError(t, err)

	encoded, err := json.Marshal(quotes)
	require.NoError(t, err)
	assert.JSONEq(t, quoteData, string(encoded))
	assert.True(t, decimal.RequireFromString("1175.74").Equal(quotes[0].All.LastTrade))
}

func TestBalanceKeepsServicePayload(t *testing.T) {
	t.Parallel()

	balance := `{"accountId":"111","optionLevel":"LEVEL_4","Cash":{"fundsForOpenOrdersCash":0,"moneyMktBalance":12.5},"Computed":{"cashBalance":-100.5,"RealTimeValues":{"totalAccountValue":2500}}}`
	client, _ := newTestClient(t, http.StatusOK, `{"BalanceResponse":`+balance+`}`)

	got, err := NewAccountsClient(client).Balance(context.Background(), "k1", "")
	require.NoError(t, err)

	encoded, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, balance, string(encoded))
	assert.Equal(t, "111", got.AccountID)
}

func TestEndpointsKeepServicePayload(t *testing.T) {
	t.Parallel()

	t.Run("accounts", func(t *testing.T) {
		t.Parallel()

		accounts := `[{"accountId":"111","accountIdKey":"k1","accountStatus":"ACTIVE","institutionType":"BROKERAGE","shareWorksAccount":false}]`
		client, _ := newTestClient(t, http.StatusOK, `{"AccountListResponse":{"Accounts":{"Account":`+accounts+`}}}`)

		got, err := NewAccountsClient(client).ListAccounts(context.Background())
		require.NoError(t, err)
		encoded, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, accounts, string(encoded))
	})

	t.Run("portfolio", func(t *testing.T) {
		t.Parallel()

		portfolio := `{"AccountPortfolio":[{"accountId":"111","totalPages":1,"Position":[{"positionId":7,"symbolDescription":"AAPL","quantity":10,"commissions":0,"Product":{"symbol":"AAPL","securityType":"EQ"}}]}],"Totals":{"todaysGainLoss":12.5}}`
		client, _ := newTestClient(t, http.StatusOK, `{"PortfolioResponse":`+portfolio+`}`)

		got, err := NewAccountsClient(client).Portfolio(context.Background(), "k1")
		require.NoError(t, err)
		encoded, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, portfolio, string(encoded))
	})

	t.Run("orders", func(t *testing.T) {
		t.Parallel()

		orders := `[{"orderId":42,"details":"https://api.etrade.com/v1/accounts/k1/orders/42","OrderDetail":[{"status":"OPEN","orderValue":123.4}]}]`
		client, _ := newTestClient(t, http.StatusOK, `{"OrdersResponse":{"Order":`+orders+`}}`)

		got, err := NewAccountsClient(client).Orders(context.Background(), "k1", domain.OrdersQuery{})
		require.NoError(t, err)
		encoded, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, orders, string(encoded))
	})

	t.Run("option chain", func(t *testing.T) {
		t.Parallel()

		chain := `{"OptionPair":[{"Call":{"symbol":"AAPL","strikePrice":150,"bid":1.2}}],"nearPrice":151.3,"quoteType":"DELAYED","adjustedFlag":false}`
		client, _ := newTestClient(t, http.StatusOK, `{"OptionChainResponse":`+chain+`}`)

		got, err := NewMarketClient(client).OptionChains(context.Background(), domain.OptionChainRequest{Symbol: "AAPL"})
		require.NoError(t, err)
		encoded, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, chain, string(encoded))
	})
}
