package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type OrderInstrument struct {
	Product               Product         `json:"Product"`
	SymbolDescription     string          `json:"symbolDescription,omitempty"`
	OrderAction           string          `json:"orderAction"`
	QuantityType          string          `json:"quantityType,omitempty"`
	OrderedQuantity       decimal.Decimal `json:"orderedQuantity"`
	FilledQuantity        decimal.Decimal `json:"filledQuantity"`
	AverageExecutionPrice decimal.Decimal `json:"averageExecutionPrice"`
	EstimatedCommission   decimal.Decimal `json:"estimatedCommission"`
}

type OrderDetail struct {
	PlacedTime    int64             `json:"placedTime,omitempty"`
	ExecutedTime  int64             `json:"executedTime,omitempty"`
	OrderValue    decimal.Decimal   `json:"orderValue"`
	Status        string            `json:"status"`
	OrderTerm     string            `json:"orderTerm,omitempty"`
	PriceType     string            `json:"priceType,omitempty"`
	LimitPrice    decimal.Decimal   `json:"limitPrice"`
	StopPrice     decimal.Decimal   `json:"stopPrice"`
	MarketSession string            `json:"marketSession,omitempty"`
	Instrument    []OrderInstrument `json:"Instrument"`
}

type Order struct {
	OrderID     int64         `json:"orderId"`
	OrderType   string        `json:"orderType,omitempty"`
	OrderDetail []OrderDetail `json:"OrderDetail"`

	payload json.RawMessage
}

// OrderStatus filters the orders listing; empty means all statuses.
type OrderStatus string

const (
	OrderStatusOpen           OrderStatus = "OPEN"
	OrderStatusExecuted       OrderStatus = "EXECUTED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
	OrderStatusIndividualFill OrderStatus = "INDIVIDUAL_FILLS"
	OrderStatusCancelRequest  OrderStatus = "CANCEL_REQUESTED"
	OrderStatusExpired        OrderStatus = "EXPIRED"
	OrderStatusRejected       OrderStatus = "REJECTED"
)

type OrdersQuery struct {
	Status OrderStatus `json:"status,omitempty"`
	Count  int         `json:"count,omitempty"`
}
