package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/mosquefund/internal/models"
)

const transactionColumns = "id, type, amount, description, created_by, created_at"

// CreateTransaction persists a new transaction and fills in ID and CreatedAt.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if !txn.Amount.Valid {
		return fmt.Errorf("transaction amount is required")
	}
	txn.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (type, amount, description, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		string(txn.Type), txn.Amount.Decimal.String(), nullable(txn.Description),
		nullable(txn.CreatedBy), txn.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return unavailable("insert transaction", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return unavailable("read transaction id", err)
	}
	txn.ID = id

	return nil
}

// ListTransactions retrieves the whole ledger, newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, unavailable("list transactions", err)
	}
	return scanTransactions(ctx, rows)
}

// ListTransactionsByAuthor retrieves the transactions created by profileID, newest first.
func (s *SQLiteStore) ListTransactionsByAuthor(ctx context.Context, profileID string) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE created_by = ?
		 ORDER BY created_at DESC, id DESC`,
		profileID,
	)
	if err != nil {
		return nil, unavailable("list transactions by author", err)
	}
	return scanTransactions(ctx, rows)
}

func scanTransactions(ctx context.Context, rows *sql.Rows) ([]*models.Transaction, error) {
	defer rows.Close()

	var txns []*models.Transaction
	for rows.Next() {
		txn := &models.Transaction{}
		var typ string
		var amount, description, createdBy sql.NullString
		var createdAt int64

		if err := rows.Scan(&txn.ID, &typ, &amount, &description, &createdBy, &createdAt); err != nil {
			return nil, unavailable("scan transaction", err)
		}

		txn.Type = models.TransactionType(typ)
		txn.Description = description.String
		txn.CreatedBy = createdBy.String
		txn.CreatedAt = time.UnixMilli(createdAt).UTC()

		// Unparseable amounts are left null; the calculator reports them.
		if amount.Valid {
			if d, err := decimal.NewFromString(amount.String); err == nil {
				txn.Amount = decimal.NewNullDecimal(d)
			} else {
				slog.WarnContext(ctx, "Transaction has non-numeric amount", "id", txn.ID, "amount", amount.String)
			}
		}

		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate transactions", err)
	}

	return txns, nil
}
