package events

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/mosquefund/internal/models"
)

// RoutingTransactionRecorded is the routing key for new ledger entries.
const RoutingTransactionRecorded = "transaction.recorded"

// TransactionRecorded announces a new ledger entry to downstream consumers
// such as a receipt printer or a bookkeeping export.
type TransactionRecorded struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	Timestamp   time.Time       `json:"timestamp"`
}

// NewTransactionRecorded builds the event for txn.
func NewTransactionRecorded(txn *models.Transaction) *TransactionRecorded {
	return &TransactionRecorded{
		ID:          txn.ID,
		Type:        string(txn.Type),
		Amount:      txn.Amount.Decimal,
		Description: txn.Description,
		CreatedBy:   txn.CreatedBy,
		CreatedAt:   txn.CreatedAt,
		Timestamp:   time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionRecorded) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
