package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type AllQuoteDetails struct {
	CompanyName           string          `json:"companyName,omitempty"`
	LastTrade             decimal.Decimal `json:"lastTrade"`
	ChangeClose           decimal.Decimal `json:"changeClose"`
	ChangeClosePercentage decimal.Decimal `json:"changeClosePercentage"`
	PreviousClose         decimal.Decimal `json:"previousClose"`
	Bid                   decimal.Decimal `json:"bid"`
	BidSize               int64           `json:"bidSize"`
	Ask                   decimal.Decimal `json:"ask"`
	AskSize               int64           `json:"askSize"`
	Low                   decimal.Decimal `json:"low"`
	High                  decimal.Decimal `json:"high"`
	TotalVolume           int64           `json:"totalVolume"`
}

type QuoteData struct {
	DateTime    string           `json:"dateTime,omitempty"`
	DateTimeUTC int64            `json:"dateTimeUTC,omitempty"`
	QuoteStatus string           `json:"quoteStatus,omitempty"`
	AhFlag      string           `json:"ahFlag,omitempty"`
	Product     Product          `json:"Product"`
	All         *AllQuoteDetails `json:"All,omitempty"`

	payload json.RawMessage
}

type ExpiryType string

const (
	ExpiryAll       ExpiryType = "ALL"
	ExpiryWeekly    ExpiryType = "WEEKLY"
	ExpiryMonthly   ExpiryType = "MONTHLY"
	ExpiryQuarterly ExpiryType = "QUARTERLY"
)

func (t ExpiryType) Valid() bool {
	switch t {
	case ExpiryAll, ExpiryWeekly, ExpiryMonthly, ExpiryQuarterly:
		return true
	default:
		return false
	}
}

type ExpirationDate struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	ExpiryType string `json:"expiryType"`

	payload json.RawMessage
}

type ChainType string

const (
	ChainCallPut ChainType = "CALLPUT"
	ChainCall    ChainType = "CALL"
	ChainPut     ChainType = "PUT"
)

func (t ChainType) Valid() bool {
	switch t {
	case ChainCallPut, ChainCall, ChainPut:
		return true
	default:
		return false
	}
}

func (t ChainType) IncludesCalls() bool { return t == ChainCallPut || t == ChainCall }

func (t ChainType) IncludesPuts() bool { return t == ChainCallPut || t == ChainPut }

// OptionChainRequest holds the optionchains query. Zero numeric fields are
// omitted from the request; a nil SkipAdjusted means true.
type OptionChainRequest struct {
	Symbol          string          `json:"symbol"`
	ExpiryYear      int             `json:"expiry_year,omitempty"`
	ExpiryMonth     int             `json:"expiry_month,omitempty"`
	ExpiryDay       int             `json:"expiry_day,omitempty"`
	ChainType       ChainType       `json:"chain_type,omitempty"`
	StrikePriceNear decimal.Decimal `json:"strike_price_near"`
	NoOfStrikes     int             `json:"no_of_strikes,omitempty"`
	IncludeWeekly   bool            `json:"include_weekly,omitempty"`
	SkipAdjusted    *bool           `json:"skip_adjusted,omitempty"`
	OptionCategory  string          `json:"option_category,omitempty"`
	PriceType       string          `json:"price_type,omitempty"`
}

type OptionGreeks struct {
	Rho          float64 `json:"rho"`
	Vega         float64 `json:"vega"`
	Theta        float64 `json:"theta"`
	Delta        float64 `json:"delta"`
	Gamma        float64 `json:"gamma"`
	Iv           float64 `json:"iv"`
	CurrentValue bool    `json:"currentValue"`
}

type OptionDetails struct {
	OptionCategory   string          `json:"optionCategory,omitempty"`
	OptionRootSymbol string          `json:"optionRootSymbol,omitempty"`
	OptionType       string          `json:"optionType,omitempty"`
	Symbol           string          `json:"symbol,omitempty"`
	DisplaySymbol    string          `json:"displaySymbol,omitempty"`
	StrikePrice      decimal.Decimal `json:"strikePrice"`
	LastPrice        decimal.Decimal `json:"lastPrice"`
	Bid              decimal.Decimal `json:"bid"`
	Ask              decimal.Decimal `json:"ask"`
	BidSize          int64           `json:"bidSize"`
	AskSize          int64           `json:"askSize"`
	Volume           int64           `json:"volume"`
	OpenInterest     int64           `json:"openInterest"`
	InTheMoney       string          `json:"inTheMoney,omitempty"`
	OptionGreeks     *OptionGreeks   `json:"OptionGreeks,omitempty"`
}

type OptionPair struct {
	Call *OptionDetails `json:"Call,omitempty"`
	Put  *OptionDetails `json:"Put,omitempty"`
}

type SelectedExpiry struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type OptionChain struct {
	OptionPair []OptionPair    `json:"OptionPair"`
	Timestamp  int64           `json:"timeStamp,omitempty"`
	QuoteType  string          `json:"quoteType,omitempty"`
	NearPrice  decimal.Decimal `json:"nearPrice"`
	SelectedED *SelectedExpiry `json:"SelectedED,omitempty"`

	payload json.RawMessage
}
