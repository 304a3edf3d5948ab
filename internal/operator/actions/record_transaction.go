package actions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/ledger"
	"github.com/boxbank/boxbank-server/internal/storage"
	"github.com/boxbank/boxbank-server/internal/storage/account"
	"github.com/boxbank/boxbank-server/internal/storage/transaction"
)

// RecordTransaction applies a validated double-entry request: one signed
// ledger row per tracked side, each row moving its account balance and the
// box balance by the row's amount. With two tracked sides the box is
// debited by one leg and credited by the other, so its net change is zero;
// this per-leg application is deliberate and matches the books produced so
// far.
type RecordTransaction struct {
	OwnerID          uuid.UUID
	Source           ledger.Party
	Destination      ledger.Party
	Amount           decimal.Decimal
	BoxID            uuid.UUID
	Date             time.Time
	ShortDescription string

	// CreatedIDs holds the IDs of the inserted rows, debit leg first when
	// present.
	CreatedIDs []uuid.UUID
}

func (a *RecordTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	request := ledger.Request{
		Source:           a.Source,
		Destination:      a.Destination,
		Amount:           a.Amount,
		BoxID:            a.BoxID,
		Date:             a.Date,
		ShortDescription: a.ShortDescription,
	}
	legs, err := request.Legs()
	if err != nil {
		return err
	}

	box, err := writer.Boxes.FindByIDForUpdate(ctx, a.BoxID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBoxNotFound
	}
	if err != nil {
		return err
	}
	if box.OwnerID != a.OwnerID {
		return ErrBoxNotFound
	}

	// Lock every tracked account up front and keep the names around for
	// the denormalized other-party labels. Locks are taken in byte order
	// of the IDs so two concurrent requests over the same pair of
	// accounts cannot deadlock each other.
	accountIDs := make([]uuid.UUID, 0, len(legs))
	for _, leg := range legs {
		accountIDs = append(accountIDs, leg.AccountID)
	}
	sortIDs(accountIDs)

	accounts := make(map[uuid.UUID]*account.Account, len(accountIDs))
	for _, accountID := range accountIDs {
		if _, seen := accounts[accountID]; seen {
			continue
		}
		acc, err := writer.Accounts.FindByIDForUpdate(ctx, accountID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		if err != nil {
			return err
		}
		if acc.OwnerID != a.OwnerID {
			return ErrAccountNotFound
		}
		accounts[accountID] = acc
	}

	for _, leg := range legs {
		create := &transaction.TransactionCreate{
			AccountID:        leg.AccountID,
			BoxID:            a.BoxID,
			OtherParty:       a.partyLabel(leg.Other, accounts),
			Amount:           leg.Amount,
			Date:             a.Date,
			ShortDescription: a.ShortDescription,
		}
		id, err := writer.Transactions.Insert(ctx, create)
		if err != nil {
			return err
		}
		a.CreatedIDs = append(a.CreatedIDs, id)

		magnitude := leg.Amount.Abs()
		if leg.Debit() {
			if err := writer.Accounts.Debit(ctx, leg.AccountID, magnitude); err != nil {
				return err
			}
			if err := writer.Boxes.Debit(ctx, a.BoxID, magnitude); err != nil {
				return err
			}
		} else {
			if err := writer.Accounts.Credit(ctx, leg.AccountID, magnitude); err != nil {
				return err
			}
			if err := writer.Boxes.Credit(ctx, a.BoxID, magnitude); err != nil {
				return err
			}
		}
	}

	return nil
}

// partyLabel resolves the other side of a leg to the stored free-text
// label: the account's name for a tracked party, the given name otherwise.
func (a *RecordTransaction) partyLabel(party ledger.Party, accounts map[uuid.UUID]*account.Account) string {
	if accountID, tracked := party.Tracked(); tracked {
		if acc, ok := accounts[accountID]; ok {
			return acc.Name
		}
	}
	name, _ := party.External()
	return name
}
