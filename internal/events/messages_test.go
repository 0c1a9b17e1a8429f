package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/mosquefund/internal/models"
)

func TestTransactionRecorded(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	txn := models.NewTransaction(models.Credit, decimal.RequireFromString("250.50"), "Friday collection", "cashier-1")
	txn.ID = 42
	txn.CreatedAt = created

	body, err := NewTransactionRecorded(txn).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var got TransactionRecorded
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.ID != 42 || got.Type != "credit" || got.CreatedBy != "cashier-1" {
		t.Errorf("unexpected message: %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("250.5")) {
		t.Errorf("amount = %s, want 250.5", got.Amount)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, created)
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	if err := p.PublishTransactionRecorded(context.Background(), &models.Transaction{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
