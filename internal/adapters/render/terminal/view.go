package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

const ruleWidth = 80

// Renderer turns API results into terminal text.
type Renderer struct {
	s styles
}

func NewRenderer() *Renderer {
	return &Renderer{s: newStyles()}
}

func (r *Renderer) rule(width int) string {
	return r.s.rule.Render(strings.Repeat("-", width))
}

func (r *Renderer) banner(title string, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Repeat("=", width),
		r.s.title.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, title)),
		strings.Repeat("=", width),
	)
}

func (r *Renderer) Quotes(quotes []domain.QuoteData) string {
	lines := []string{r.banner("MARKET QUOTES", ruleWidth)}
	if len(quotes) == 0 {
		lines = append(lines, r.s.empty.Render("No quotes returned."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, quote := range quotes {
		lines = append(lines, r.s.section.Render(r.quote(quote)))
	}
	lines = append(lines, "", strings.Repeat("=", ruleWidth))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) quote(quote domain.QuoteData) string {
	all := domain.AllQuoteDetails{}
	if quote.All != nil {
		all = *quote.All
	}

	securityType := quote.Product.SecurityType
	if securityType == "" {
		securityType = "N/A"
	}
	dateTime := quote.DateTime
	if dateTime == "" {
		dateTime = "N/A"
	}

	changeStyle := r.s.up
	if all.ChangeClose.IsNegative() {
		changeStyle = r.s.down
	}
	change := changeStyle.Render(fmt.Sprintf("%s %s (%s)",
		ChangeIndicator(all.ChangeClose), SignedAmount(all.ChangeClose), SignedPercent(all.ChangeClosePercentage)))

	return lipgloss.JoinVertical(lipgloss.Left,
		"  "+r.s.symbol.Render(fmt.Sprintf("%s (%s)", quote.Product.Symbol, securityType)),
		"  "+r.s.header.Render(dateTime),
		r.rule(ruleWidth),
		field("Last Price:", Money(all.LastTrade)),
		field("Change:", change),
		r.rule(ruleWidth),
		field("Previous Close:", Money(all.PreviousClose)),
		field("Day Range:", Money(all.Low)+" - "+Money(all.High)),
		r.rule(ruleWidth),
		field("Bid:", fmt.Sprintf("%s x %d", Money(all.Bid), all.BidSize)),
		field("Ask:", fmt.Sprintf("%s x %d", Money(all.Ask), all.AskSize)),
		r.rule(ruleWidth),
		field("Volume:", Count(all.TotalVolume)),
	)
}

func field(label string, value string) string {
	return fmt.Sprintf("  %-20s %s", label, value)
}

func (r *Renderer) ExpirationDates(symbol string, dates []domain.ExpirationDate) string {
	const width = 60

	var table strings.Builder
	writer := newTable(&table, []string{"#", "Date", "Type"})
	for i, date := range dates {
		expiryType := date.ExpiryType
		if expiryType == "" {
			expiryType = "N/A"
		}
		writer.Append([]string{fmt.Sprint(i + 1), ExpiryDate(date.Year, date.Month, date.Day), expiryType})
	}
	writer.Render()

	return lipgloss.JoinVertical(lipgloss.Left,
		r.banner("OPTION EXPIRATION DATES - "+strings.ToUpper(symbol), width),
		strings.TrimRight(table.String(), "\n"),
		r.rule(width),
		fmt.Sprintf("  Total: %d expiration dates", len(dates)),
		strings.Repeat("=", width),
	)
}

func (r *Renderer) OptionChain(symbol string, chainType domain.ChainType, chain *domain.OptionChain) string {
	const width = 120

	if chain == nil {
		return r.s.empty.Render("No option chain returned.")
	}

	expiration := "N/A"
	if chain.SelectedED != nil && chain.SelectedED.Year > 0 {
		expiration = fmt.Sprintf("%d/%d/%d", chain.SelectedED.Month, chain.SelectedED.Day, chain.SelectedED.Year)
	}

	lines := []string{
		strings.Repeat("=", width),
		r.s.title.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, "OPTION CHAIN - "+strings.ToUpper(symbol))),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, fmt.Sprintf("Expiration: %s | Near Price: %s", expiration, Money(chain.NearPrice))),
		strings.Repeat("=", width),
	}

	if chainType == "" {
		chainType = domain.ChainCallPut
	}
	if chainType.IncludesCalls() {
		lines = append(lines, r.optionSide("CALLS", chain.OptionPair, func(pair domain.OptionPair) *domain.OptionDetails { return pair.Call }), r.rule(width))
	}
	if chainType.IncludesPuts() {
		lines = append(lines, r.optionSide("PUTS", chain.OptionPair, func(pair domain.OptionPair) *domain.OptionDetails { return pair.Put }), r.rule(width))
	}

	lines = append(lines, "", fmt.Sprintf("  Total Option Pairs: %d", len(chain.OptionPair)), strings.Repeat("=", width))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) optionSide(title string, pairs []domain.OptionPair, pick func(domain.OptionPair) *domain.OptionDetails) string {
	var table strings.Builder
	writer := newTable(&table, []string{"Strike", "Last", "Bid", "Ask", "Volume", "Open Int", "IV", "Delta", "Theta"})
	writer.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, pair := range pairs {
		option := pick(pair)
		if option == nil {
			continue
		}

		greeks := domain.OptionGreeks{}
		if option.OptionGreeks != nil {
			greeks = *option.OptionGreeks
		}

		writer.Append([]string{
			Fixed(option.StrikePrice),
			Fixed(option.LastPrice),
			Fixed(option.Bid),
			Fixed(option.Ask),
			Count(option.Volume),
			Count(option.OpenInterest),
			fmt.Sprintf("%.1f%%", greeks.Iv*100),
			fmt.Sprintf("%.3f", greeks.Delta),
			fmt.Sprintf("%.3f", greeks.Theta),
		})
	}
	writer.Render()

	return lipgloss.JoinVertical(lipgloss.Left,
		r.s.section.Render("  "+r.s.title.Render(title)),
		strings.TrimRight(table.String(), "\n"),
	)
}

// Portfolio renders "None" for an account without positions.
func (r *Renderer) Portfolio(portfolio *domain.Portfolio) string {
	lines := []string{r.s.title.Render("Portfolio:")}
	if portfolio == nil || len(portfolio.AccountPortfolio) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, "None")...)
	}

	for _, account := range portfolio.AccountPortfolio {
		if len(account.Position) == 0 {
			lines = append(lines, "None")
			continue
		}

		var table strings.Builder
		writer := newTable(&table, []string{"Symbol", "Quantity", "Last Price", "Price Paid", "Total Gain", "Gain %", "Value"})
		total := decimal.Zero
		for _, position := range account.Position {
			lastPrice := "-"
			if position.Quick != nil {
				lastPrice = Money(position.Quick.LastTrade)
			}
			writer.Append([]string{
				position.SymbolDescription,
				Quantity(position.Quantity),
				lastPrice,
				Money(position.PricePaid),
				Money(position.TotalGain),
				SignedPercent(position.TotalGainPct),
				Money(position.MarketValue),
			})
			total = total.Add(position.MarketValue)
		}
		writer.SetFooter([]string{"", "", "", "", "", "Total", Money(total)})
		writer.Render()

		if account.AccountID != "" {
			lines = append(lines, r.s.header.Render("account "+account.AccountID))
		}
		lines = append(lines, strings.TrimRight(table.String(), "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) Balance(balance *domain.Balance) string {
	if balance == nil {
		return r.s.empty.Render("No balance returned.")
	}

	title := "Balance:"
	if balance.AccountID != "" {
		title = "Balance for " + balance.AccountID + ":"
	}

	lines := []string{r.s.title.Render(title)}
	if balance.AccountDescription != "" {
		lines = append(lines, "Account Nickname: "+balance.AccountDescription)
	}
	if computed := balance.Computed; computed != nil {
		if computed.RealTimeValues != nil {
			lines = append(lines, "Net Account Value: "+Money(computed.RealTimeValues.TotalAccountValue))
		}
		lines = append(lines,
			"Margin Buying Power: "+Money(computed.MarginBuyingPower),
			"Cash Buying Power: "+Money(computed.CashBuyingPower),
			"Cash Available For Investment: "+Money(computed.CashAvailableForInvestment),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) Orders(orders []domain.Order) string {
	lines := []string{r.s.title.Render("Orders:")}
	if len(orders) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, "None")...)
	}

	var table strings.Builder
	writer := newTable(&table, []string{"Order ID", "Placed", "Action", "Symbol", "Quantity", "Price Type", "Status", "Value"})
	for _, order := range orders {
		for _, detail := range order.OrderDetail {
			action, symbol, quantity := "-", "-", "-"
			if len(detail.Instrument) > 0 {
				instrument := detail.Instrument[0]
				action = instrument.OrderAction
				symbol = instrument.Product.Symbol
				quantity = Quantity(instrument.OrderedQuantity)
			}
			writer.Append([]string{
				fmt.Sprint(order.OrderID),
				EpochMillis(detail.PlacedTime),
				action,
				symbol,
				quantity,
				detail.PriceType,
				detail.Status,
				Money(detail.OrderValue),
			})
		}
	}
	writer.Render()

	return lipgloss.JoinVertical(lipgloss.Left, append(lines, strings.TrimRight(table.String(), "\n"))...)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
