package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type RealTimeValues struct {
	TotalAccountValue decimal.Decimal `json:"totalAccountValue"`
	NetMv             decimal.Decimal `json:"netMv"`
	NetMvLong         decimal.Decimal `json:"netMvLong"`
	NetMvShort        decimal.Decimal `json:"netMvShort"`
}

type ComputedBalance struct {
	CashAvailableForInvestment decimal.Decimal `json:"cashAvailableForInvestment"`
	CashAvailableForWithdrawal decimal.Decimal `json:"cashAvailableForWithdrawal"`
	NetCash                    decimal.Decimal `json:"netCash"`
	CashBalance                decimal.Decimal `json:"cashBalance"`
	CashBuyingPower            decimal.Decimal `json:"cashBuyingPower"`
	MarginBuyingPower          decimal.Decimal `json:"marginBuyingPower"`
	RealTimeValues             *RealTimeValues `json:"RealTimeValues,omitempty"`
}

type Balance struct {
	AccountID          string           `json:"accountId"`
	InstitutionType    InstitutionType  `json:"institutionType,omitempty"`
	AccountType        string           `json:"accountType,omitempty"`
	AccountDescription string           `json:"accountDescription,omitempty"`
	AccountMode        string           `json:"accountMode,omitempty"`
	Computed           *ComputedBalance `json:"Computed,omitempty"`

	payload json.RawMessage
}
