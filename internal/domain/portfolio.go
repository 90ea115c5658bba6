package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Product struct {
	Symbol       string          `json:"symbol"`
	SecurityType string          `json:"securityType,omitempty"`
	CallPut      string          `json:"callPut,omitempty"`
	ExpiryYear   int             `json:"expiryYear,omitempty"`
	ExpiryMonth  int             `json:"expiryMonth,omitempty"`
	ExpiryDay    int             `json:"expiryDay,omitempty"`
	StrikePrice  decimal.Decimal `json:"strikePrice"`
}

type QuickView struct {
	LastTrade     decimal.Decimal `json:"lastTrade"`
	Change        decimal.Decimal `json:"change"`
	ChangePct     decimal.Decimal `json:"changePct"`
	Volume        int64           `json:"volume"`
	LastTradeTime int64           `json:"lastTradeTime,omitempty"`
}

type Position struct {
	PositionID        int64           `json:"positionId"`
	SymbolDescription string          `json:"symbolDescription"`
	PositionType      string          `json:"positionType,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	PricePaid         decimal.Decimal `json:"pricePaid"`
	TotalGain         decimal.Decimal `json:"totalGain"`
	TotalGainPct      decimal.Decimal `json:"totalGainPct"`
	MarketValue       decimal.Decimal `json:"marketValue"`
	DaysGain          decimal.Decimal `json:"daysGain"`
	Product           Product         `json:"Product"`
	Quick             *QuickView      `json:"Quick,omitempty"`
}

type AccountPortfolio struct {
	AccountID  string     `json:"accountId"`
	TotalPages int        `json:"totalPages,omitempty"`
	Position   []Position `json:"Position"`

	payload json.RawMessage
}

type Portfolio struct {
	AccountPortfolio []AccountPortfolio `json:"AccountPortfolio"`

	payload json.RawMessage
}
