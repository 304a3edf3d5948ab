package account

import (
	"time"

	"github.com/boxbank/boxbank-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"name" doc:"Account name"`
	Balance   string `json:"balance" doc:"Decimal balance"`
	IBAN      string `json:"iban,omitempty" doc:"IBAN, empty for cash or virtual accounts"`
	BIC       string `json:"bic,omitempty" doc:"BIC, empty for cash or virtual accounts"`
	IsVirtual bool   `json:"isVirtual" doc:"True for envelopes that do not mirror a bank account"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(acc service.Account) Account {
	return Account{
		ID:        acc.ID.String(),
		Name:      acc.Name,
		Balance:   acc.Balance.String(),
		IBAN:      acc.IBAN,
		BIC:       acc.BIC,
		IsVirtual: acc.IsVirtual,
		CreatedAt: acc.CreatedAt.Format(time.RFC3339),
	}
}
