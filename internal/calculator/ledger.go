package calculator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/mosquefund/internal/models"
)

// ErrDataIntegrity is returned when a ledger record cannot be folded into totals,
// e.g. its amount is missing or negative.
var ErrDataIntegrity = errors.New("transaction failed integrity check")

// DisplayPlaces is the number of fractional digits shown for amounts.
const DisplayPlaces = 2

// Summary holds the aggregate figures of a set of transactions.
type Summary struct {
	CreditTotal decimal.Decimal
	DebitTotal  decimal.Decimal
	NetBalance  decimal.Decimal // CreditTotal - DebitTotal
	Count       int             // all records, including ones with an unknown type
}

// Rounded returns a copy of the summary with every total rounded to places.
// Rounding only happens here, at presentation time; sums are exact.
func (s Summary) Rounded(places int32) Summary {
	return Summary{
		CreditTotal: s.CreditTotal.Round(places),
		DebitTotal:  s.DebitTotal.Round(places),
		NetBalance:  s.NetBalance.Round(places),
		Count:       s.Count,
	}
}

// AuthorTotals is the breakdown of one author's own transactions.
type AuthorTotals struct {
	AuthorID    string
	Name        string
	CreditTotal decimal.Decimal
	DebitTotal  decimal.Decimal
	NetTotal    decimal.Decimal
	Count       int
}

// totals accumulates credit and debit sums.
type totals struct {
	credit decimal.Decimal
	debit  decimal.Decimal
	count  int
}

func (t *totals) add(txn *models.Transaction) error {
	amount, err := magnitude(txn)
	if err != nil {
		return err
	}
	t.count++
	switch txn.Type {
	case models.Credit:
		t.credit = t.credit.Add(amount)
	case models.Debit:
		t.debit = t.debit.Add(amount)
	}
	// Any other type is counted but belongs to neither sum.
	return nil
}

// magnitude validates the amount of a record and returns it.
func magnitude(txn *models.Transaction) (decimal.Decimal, error) {
	if txn == nil {
		return decimal.Zero, fmt.Errorf("%w: nil record", ErrDataIntegrity)
	}
	if !txn.Amount.Valid {
		return decimal.Zero, fmt.Errorf("%w: transaction %d has no amount", ErrDataIntegrity, txn.ID)
	}
	if txn.Amount.Decimal.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: transaction %d has negative amount %s",
			ErrDataIntegrity, txn.ID, txn.Amount.Decimal)
	}
	return txn.Amount.Decimal, nil
}

// Summarize folds transactions into credit, debit and net totals.
//
// The fold is exact decimal addition, so the result does not depend on the
// order of txns. The input slice is never modified.
func Summarize(txns []*models.Transaction) (Summary, error) {
	var t totals
	for _, txn := range txns {
		if err := t.add(txn); err != nil {
			return Summary{}, err
		}
	}
	return Summary{
		CreditTotal: t.credit,
		DebitTotal:  t.debit,
		NetBalance:  t.credit.Sub(t.debit),
		Count:       t.count,
	}, nil
}

// PerAuthorBreakdown computes totals per known author.
//
// Only authors with at least one transaction are returned, sorted by AuthorID.
// Transactions by unknown or missing authors are ignored.
func PerAuthorBreakdown(txns []*models.Transaction, authors []*models.Profile) ([]AuthorTotals, error) {
	byAuthor := make(map[string]*totals, len(authors))
	names := make(map[string]string, len(authors))
	for _, a := range authors {
		if a == nil {
			continue
		}
		byAuthor[a.ID] = &totals{}
		names[a.ID] = a.Name
	}

	for _, txn := range txns {
		if txn == nil || txn.CreatedBy == "" {
			continue
		}
		t, ok := byAuthor[txn.CreatedBy]
		if !ok {
			continue
		}
		if err := t.add(txn); err != nil {
			return nil, err
		}
	}

	var result []AuthorTotals
	for id, t := range byAuthor {
		if t.count == 0 {
			continue
		}
		result = append(result, AuthorTotals{
			AuthorID:    id,
			Name:        names[id],
			CreditTotal: t.credit,
			DebitTotal:  t.debit,
			NetTotal:    t.credit.Sub(t.debit),
			Count:       t.count,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AuthorID < result[j].AuthorID
	})
	return result, nil
}

// MyTransactions returns the transactions created by authorID, keeping their order.
// This is a display filter, not an access control.
func MyTransactions(txns []*models.Transaction, authorID string) []*models.Transaction {
	var mine []*models.Transaction
	for _, txn := range txns {
		if txn != nil && txn.CreatedBy == authorID {
			mine = append(mine, txn)
		}
	}
	return mine
}

// FormatAmount renders an amount with two decimals and a currency label, e.g. "120.00 BDT".
func FormatAmount(d decimal.Decimal, currency string) string {
	if currency == "" {
		return d.StringFixed(DisplayPlaces)
	}
	return d.StringFixed(DisplayPlaces) + " " + currency
}
