package menu

import (
	"strconv"
	"strings"

	"github.com/bnema/etrade-cli/internal/domain"
)

type MainOption int

const (
	MainQuotes MainOption = iota + 1
	MainExpiryDates
	MainOptionChains
	MainAccountList
	MainExit
)

var mainOptions = []MainOption{MainQuotes, MainExpiryDates, MainOptionChains, MainAccountList, MainExit}

func (o MainOption) String() string {
	switch o {
	case MainQuotes:
		return "Market Quotes"
	case MainExpiryDates:
		return "Option Expire Dates"
	case MainOptionChains:
		return "Option Chains"
	case MainAccountList:
		return "Account List"
	case MainExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

type AccountOption int

const (
	AccountBalance AccountOption = iota + 1
	AccountPortfolio
	AccountOrders
	AccountBack
)

func (o AccountOption) String() string {
	switch o {
	case AccountBalance:
		return "Balance"
	case AccountPortfolio:
		return "Portfolio"
	case AccountOrders:
		return "Orders"
	case AccountBack:
		return "Go Back"
	default:
		return "Unknown"
	}
}

var accountMenus = map[domain.InstitutionType][]AccountOption{
	domain.InstitutionBrokerage: {AccountBalance, AccountPortfolio, AccountOrders, AccountBack},
	domain.InstitutionBank:      {AccountBalance, AccountBack},
}

// AccountMenu returns the entries offered for an institution type. Unknown
// types only get "Go Back".
func AccountMenu(institution domain.InstitutionType) []AccountOption {
	if options, ok := accountMenus[institution]; ok {
		return append([]AccountOption(nil), options...)
	}
	return []AccountOption{AccountBack}
}

// pick maps a 1-based selection onto options.
func pick[T any](options []T, selection string) (T, bool) {
	var zero T
	index, err := strconv.Atoi(strings.TrimSpace(selection))
	if err != nil || index < 1 || index > len(options) {
		return zero, false
	}
	return options[index-1], true
}
