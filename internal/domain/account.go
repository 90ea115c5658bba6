package domain

import "encoding/json"

type InstitutionType string

const (
	InstitutionBrokerage InstitutionType = "BROKERAGE"
	InstitutionBank      InstitutionType = "BANK"
)

const AccountStatusClosed = "CLOSED"

type Account struct {
	AccountID       string          `json:"accountId"`
	AccountIDKey    string          `json:"accountIdKey"`
	AccountMode     string          `json:"accountMode,omitempty"`
	AccountDesc     string          `json:"accountDesc,omitempty"`
	AccountName     string          `json:"accountName,omitempty"`
	AccountType     string          `json:"accountType,omitempty"`
	InstitutionType InstitutionType `json:"institutionType"`
	AccountStatus   string          `json:"accountStatus"`
	ClosedDate      int64           `json:"closedDate,omitempty"`

	payload json.RawMessage
}

func (a Account) Closed() bool {
	return a.AccountStatus == AccountStatusClosed
}

// OpenAccounts keeps the input order and drops closed accounts.
func OpenAccounts(accounts []Account) []Account {
	open := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Closed() {
			continue
		}
		open = append(open, account)
	}
	return open
}
