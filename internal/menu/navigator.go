package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/etrade-cli/internal/adapters/etrade"
	"github.com/bnema/etrade-cli/internal/adapters/render/terminal"
	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/ports"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Screen int

const (
	ScreenMain Screen = iota
	ScreenAccountList
	ScreenAccountMenu
)

// State is only changed by the navigator's transitions.
type State struct {
	Screen   Screen
	Accounts []domain.Account
	Selected *domain.Account
}

var errExit = errors.New("exit menu")

type Navigator struct {
	input    *Input
	out      io.Writer
	accounts ports.AccountsAPI
	market   ports.MarketAPI
	renderer *terminal.Renderer
	logger   log.FieldLogger
	state    State
}

func NewNavigator(input *Input, out io.Writer, accounts ports.AccountsAPI, market ports.MarketAPI, logger log.FieldLogger) *Navigator {
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &Navigator{
		input:    input,
		out:      out,
		accounts: accounts,
		market:   market,
		renderer: terminal.NewRenderer(),
		logger:   logger,
	}
}

func (n *Navigator) State() State {
	return n.state
}

// Run drives the menus until the user exits or the input ends. Operation
// failures are printed and the loop continues.
func (n *Navigator) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch n.state.Screen {
		case ScreenAccountList:
			err = n.accountListStep()
		case ScreenAccountMenu:
			err = n.accountMenuStep(ctx)
		default:
			err = n.mainStep(ctx)
		}

		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			n.logger.WithError(err).Debug("menu operation failed")
			n.printf("Error: %s\n", err.Error())
		}
	}
}

func (n *Navigator) mainStep(ctx context.Context) error {
	labels := make([]string, len(mainOptions))
	for i, option := range mainOptions {
		labels[i] = option.String()
	}

	n.printf("\n")
	n.input.printOptions(labels...)
	selection, err := n.input.Ask("Please select an option: ")
	if err != nil {
		return err
	}

	option, ok := pick(mainOptions, selection)
	if !ok {
		n.printf("%s\n", unknownOption)
		return nil
	}

	switch option {
	case MainQuotes:
		return n.quotes(ctx)
	case MainExpiryDates:
		return n.expireDates(ctx)
	case MainOptionChains:
		return n.optionChains(ctx)
	case MainAccountList:
		return n.enterAccountList(ctx)
	case MainExit:
		return errExit
	}
	return nil
}

func (n *Navigator) enterAccountList(ctx context.Context) error {
	accounts, err := n.accounts.ListAccounts(ctx)
	if err != nil {
		return err
	}

	n.state = State{Screen: ScreenAccountList, Accounts: domain.OpenAccounts(accounts)}
	return nil
}

func (n *Navigator) accountListStep() error {
	n.printf("\nBrokerage Account List:\n")
	labels := make([]string, 0, len(n.state.Accounts)+1)
	for _, account := range n.state.Accounts {
		labels = append(labels, accountLabel(account))
	}
	labels = append(labels, AccountBack.String())
	n.input.printOptions(labels...)

	selection, err := n.input.Ask("Please select an account: ")
	if err != nil {
		return err
	}

	if strings.TrimSpace(selection) == strconv.Itoa(len(labels)) {
		n.state = State{Screen: ScreenMain}
		return nil
	}

	account, ok := pick(n.state.Accounts, selection)
	if !ok {
		n.printf("Unknown Account Selected!\n")
		return nil
	}

	n.state.Screen = ScreenAccountMenu
	n.state.Selected = &account
	return nil
}

func accountLabel(account domain.Account) string {
	parts := []string{account.AccountID}
	if desc := strings.TrimSpace(account.AccountDesc); desc != "" {
		parts = append(parts, desc)
	}
	if account.InstitutionType != "" {
		parts = append(parts, string(account.InstitutionType))
	}
	return strings.Join(parts, ", ")
}

func (n *Navigator) accountMenuStep(ctx context.Context) error {
	selected := n.state.Selected
	if selected == nil {
		n.state.Screen = ScreenAccountList
		return nil
	}

	options := AccountMenu(selected.InstitutionType)
	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = option.String()
	}

	n.printf("\n")
	n.input.printOptions(labels...)
	selection, err := n.input.Ask("Please select an option: ")
	if err != nil {
		return err
	}

	option, ok := pick(options, selection)
	if !ok {
		n.printf("%s\n", unknownOption)
		return nil
	}

	switch option {
	case AccountBalance:
		balance, err := n.accounts.Balance(ctx, selected.AccountIDKey, selected.InstitutionType)
		if err != nil {
			return err
		}
		n.printf("\n%s\n", n.renderer.Balance(balance))
	case AccountPortfolio:
		portfolio, err := n.accounts.Portfolio(ctx, selected.AccountIDKey)
		if err != nil {
			return err
		}
		n.printf("\n%s\n", n.renderer.Portfolio(portfolio))
	case AccountOrders:
		orders, err := n.accounts.Orders(ctx, selected.AccountIDKey, domain.OrdersQuery{})
		if err != nil {
			return err
		}
		n.printf("\n%s\n", n.renderer.Orders(orders))
	case AccountBack:
		n.state.Screen = ScreenAccountList
		n.state.Selected = nil
	}
	return nil
}

func (n *Navigator) quotes(ctx context.Context) error {
	raw, err := n.input.Ask("\nPlease enter Stock Symbol: ")
	if err != nil {
		return err
	}

	quotes, err := n.market.Quotes(ctx, etrade.SplitSymbols(raw))
	if err != nil {
		return err
	}
	n.printf("\n%s\n", n.renderer.Quotes(quotes))
	return nil
}

var expiryFilters = map[string]domain.ExpiryType{
	"1": domain.ExpiryAll,
	"2": domain.ExpiryWeekly,
	"3": domain.ExpiryMonthly,
	"4": domain.ExpiryQuarterly,
}

func (n *Navigator) expireDates(ctx context.Context) error {
	symbol, err := n.input.Ask("\nPlease enter Stock Symbol: ")
	if err != nil {
		return err
	}

	n.printf("\nExpiry Type Filter:\n")
	n.input.printOptions("All", "Weekly", "Monthly", "Quarterly", "No Filter (default)")
	selection, err := n.input.Ask("Select expiry type (default: 5): ")
	if err != nil {
		return err
	}

	dates, err := n.market.OptionExpireDates(ctx, symbol, expiryFilters[selection])
	if err != nil {
		return err
	}
	n.printf("\n%s\n", n.renderer.ExpirationDates(symbol, dates))
	return nil
}

var chainTypes = map[string]domain.ChainType{
	"1": domain.ChainCallPut,
	"2": domain.ChainCall,
	"3": domain.ChainPut,
}

func (n *Navigator) optionChains(ctx context.Context) error {
	req, err := n.readChainRequest()
	if err != nil {
		return err
	}

	chain, err := n.market.OptionChains(ctx, req)
	if err != nil {
		return err
	}
	n.printf("\n%s\n", n.renderer.OptionChain(req.Symbol, req.ChainType, chain))
	return nil
}

// readChainRequest asks every question before reporting the first invalid
// answer, so the remaining answers are never read as menu selections.
func (n *Navigator) readChainRequest() (domain.OptionChainRequest, error) {
	req := domain.OptionChainRequest{ChainType: domain.ChainCallPut}
	var invalid error

	symbol, err := n.input.Ask("\nPlease enter Stock Symbol: ")
	if err != nil {
		return req, err
	}
	req.Symbol = symbol

	n.printf("\nEnter expiration date (leave blank to skip):\n")
	year, err := n.input.Ask("  Expiry Year (e.g., 2026): ")
	if err != nil {
		return req, err
	}
	req.ExpiryYear = parseOptionalInt(year, "expiry year", &invalid)
	if year != "" {
		month, err := n.input.Ask("  Expiry Month (1-12): ")
		if err != nil {
			return req, err
		}
		day, err := n.input.Ask("  Expiry Day (1-31): ")
		if err != nil {
			return req, err
		}
		req.ExpiryMonth = parseOptionalInt(month, "expiry month", &invalid)
		req.ExpiryDay = parseOptionalInt(day, "expiry day", &invalid)
	}

	n.printf("\nChain Type:\n")
	n.input.printOptions("Calls and Puts (default)", "Calls Only", "Puts Only")
	selection, err := n.input.Ask("Select chain type (default: 1): ")
	if err != nil {
		return req, err
	}
	if chainType, ok := chainTypes[selection]; ok {
		req.ChainType = chainType
	}

	strike, err := n.input.Ask("\nStrike price near (leave blank for default): ")
	if err != nil {
		return req, err
	}
	if strike != "" {
		value, parseErr := decimal.NewFromString(strike)
		if parseErr != nil && invalid == nil {
			invalid = fmt.Errorf("invalid strike price %q", strike)
		}
		req.StrikePriceNear = value
	}

	strikes, err := n.input.Ask("Number of strikes to retrieve (leave blank for default): ")
	if err != nil {
		return req, err
	}
	req.NoOfStrikes = parseOptionalInt(strikes, "number of strikes", &invalid)

	n.printf("\nInclude weekly options?\n")
	n.input.printOptions("No (default)", "Yes")
	weekly, err := n.input.Ask("Select (default: 1): ")
	if err != nil {
		return req, err
	}
	req.IncludeWeekly = weekly == "2"

	return req, invalid
}

// parseOptionalInt treats a blank answer as zero and records the first
// invalid answer in invalid.
func parseOptionalInt(raw string, name string, invalid *error) int {
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		if *invalid == nil {
			*invalid = fmt.Errorf("invalid %s %q", name, raw)
		}
		return 0
	}
	return value
}

func (n *Navigator) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(n.out, format, args...)
}
