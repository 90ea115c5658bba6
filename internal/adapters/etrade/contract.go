package etrade

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bnema/etrade-cli/internal/domain"
)

// endpoint names an API operation for error messages and says whether a 204
// is a valid "no data" answer for it.
type endpoint struct {
	name      string
	root      string
	noContent bool
}

var (
	endpointAccountList = endpoint{name: "AccountList", root: "AccountListResponse"}
	endpointPortfolio   = endpoint{name: "Portfolio", root: "PortfolioResponse", noContent: true}
	endpointBalance     = endpoint{name: "Balance", root: "BalanceResponse"}
	endpointOrders      = endpoint{name: "Orders", root: "OrdersResponse", noContent: true}
	endpointQuote       = endpoint{name: "Quote", root: "QuoteResponse"}
	endpointExpireDate  = endpoint{name: "Option Expire Date", root: "OptionExpireDateResponse"}
	endpointOptionChain = endpoint{name: "Option Chain", root: "OptionChainResponse"}
)

type messagesBody struct {
	Messages *struct {
		Message []struct {
			Description string `json:"description"`
			Code        int    `json:"code,omitempty"`
			Type        string `json:"type,omitempty"`
		} `json:"Message"`
	} `json:"Messages"`
}

type errorBody struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"Error"`
}

// decode applies the response rules shared by every endpoint:
//
//   - 200 with the success path present yields the value;
//   - 200 without it fails with the envelope's Messages, then Error.message,
//     then the generic service error;
//   - 204 yields present=false on endpoints that allow it;
//   - anything else fails with Error.message or the generic service error,
//     classified as an auth error for 401.
func decode[E any, T any](ep endpoint, status int, body []byte, extract func(*E) (T, bool)) (T, bool, error) {
	var zero T

	switch {
	case status == http.StatusOK:
		var envelope E
		if err := json.Unmarshal(body, &envelope); err != nil {
			return zero, false, domain.NewSchemaError(ep.name)
		}
		if value, ok := extract(&envelope); ok {
			return value, true, nil
		}
		if descriptions := embeddedMessages(ep, body); len(descriptions) > 0 {
			return zero, false, domain.NewAPIError(ep.name, "API Error: "+strings.Join(descriptions, ", "))
		}
		if message := errorMessage(body); message != "" {
			return zero, false, domain.NewAPIError(ep.name, message)
		}
		return zero, false, domain.NewSchemaError(ep.name)

	case status == http.StatusNoContent && ep.noContent:
		return zero, false, nil

	default:
		message := errorMessage(body)
		if message == "" {
			message = domain.ServiceErrorMessage(ep.name)
		}
		if status == http.StatusUnauthorized {
			return zero, false, &domain.Error{Kind: domain.KindAuth, Op: ep.name, Message: message}
		}
		return zero, false, domain.NewAPIError(ep.name, message)
	}
}

func embeddedMessages(ep endpoint, body []byte) []string {
	var roots map[string]json.RawMessage
	if err := json.Unmarshal(body, &roots); err != nil {
		return nil
	}

	raw, ok := roots[ep.root]
	if !ok {
		return nil
	}

	var decoded messagesBody
	if err := json.Unmarshal(raw, &decoded); err != nil || decoded.Messages == nil {
		return nil
	}

	descriptions := make([]string, 0, len(decoded.Messages.Message))
	for _, message := range decoded.Messages.Message {
		if description := strings.TrimSpace(message.Description); description != "" {
			descriptions = append(descriptions, description)
		}
	}
	return descriptions
}

func errorMessage(body []byte) string {
	var decoded errorBody
	if err := json.Unmarshal(body, &decoded); err != nil || decoded.Error == nil {
		return ""
	}
	return strings.TrimSpace(decoded.Error.Message)
}
