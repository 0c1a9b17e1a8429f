package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          int64               `json:"id"`
	Type        string              `json:"type"`
	Amount      decimal.NullDecimal `json:"amount"`
	Description string              `json:"description"`
	CreatedBy   string              `json:"created_by,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Summary carries exact totals plus a display string for the net balance.
type Summary struct {
	CreditTotal decimal.Decimal `json:"credit_total"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	NetBalance  decimal.Decimal `json:"net_balance"`
	Count       int             `json:"count"`
	Display     string          `json:"display"`
}

type GetBalanceResponse struct {
	Summary *Summary `json:"summary"`
}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type RecordTransactionRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type RecordTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type MyTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Summary      *Summary       `json:"summary"`
}

// AuthorBreakdown is one cashier's share of the ledger.
type AuthorBreakdown struct {
	AuthorID    string          `json:"author_id"`
	Name        string          `json:"name"`
	CreditTotal decimal.Decimal `json:"credit_total"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	NetTotal    decimal.Decimal `json:"net_total"`
	Count       int             `json:"count"`
}

type GetReportResponse struct {
	Summary     *Summary           `json:"summary"`
	Breakdown   []*AuthorBreakdown `json:"breakdown"`
	GeneratedAt time.Time          `json:"generated_at"`
}
