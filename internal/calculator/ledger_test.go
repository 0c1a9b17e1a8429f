package calculator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/mosquefund/internal/models"
)

func txn(id int64, typ models.TransactionType, amount string, by string) *models.Transaction {
	return &models.Transaction{
		ID:        id,
		Type:      typ,
		Amount:    decimal.NewNullDecimal(decimal.RequireFromString(amount)),
		CreatedBy: by,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		txns    []*models.Transaction
		want    Summary
		wantErr error
	}{
		{
			name: "empty ledger",
			txns: nil,
			want: Summary{Count: 0},
		},
		{
			name: "credits and debits",
			txns: []*models.Transaction{
				txn(1, models.Credit, "100", ""),
				txn(2, models.Debit, "30", ""),
				txn(3, models.Credit, "20", ""),
			},
			want: Summary{CreditTotal: dec("120"), DebitTotal: dec("30"), NetBalance: dec("90"), Count: 3},
		},
		{
			name: "negative net balance",
			txns: []*models.Transaction{
				txn(1, models.Credit, "10.50", ""),
				txn(2, models.Debit, "25.25", ""),
			},
			want: Summary{CreditTotal: dec("10.50"), DebitTotal: dec("25.25"), NetBalance: dec("-14.75"), Count: 2},
		},
		{
			name: "unknown type is counted but not summed",
			txns: []*models.Transaction{
				txn(1, models.Credit, "50", ""),
				txn(2, models.TransactionType("income"), "500", ""),
			},
			want: Summary{CreditTotal: dec("50"), DebitTotal: dec("0"), NetBalance: dec("50"), Count: 2},
		},
		{
			name: "no floating point drift",
			txns: []*models.Transaction{
				txn(1, models.Credit, "0.1", ""),
				txn(2, models.Credit, "0.2", ""),
			},
			want: Summary{CreditTotal: dec("0.3"), DebitTotal: dec("0"), NetBalance: dec("0.3"), Count: 2},
		},
		{
			name: "missing amount",
			txns: []*models.Transaction{
				txn(1, models.Credit, "50", ""),
				{ID: 2, Type: models.Debit},
			},
			wantErr: ErrDataIntegrity,
		},
		{
			name:    "negative amount",
			txns:    []*models.Transaction{txn(1, models.Debit, "-5", "")},
			wantErr: ErrDataIntegrity,
		},
		{
			name:    "nil record",
			txns:    []*models.Transaction{nil},
			wantErr: ErrDataIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.txns)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Summarize() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Summarize() unexpected error: %v", err)
			}
			assertSummary(t, got, tt.want)
		})
	}
}

func assertSummary(t *testing.T, got, want Summary) {
	t.Helper()
	if !got.CreditTotal.Equal(want.CreditTotal) {
		t.Errorf("CreditTotal = %s, want %s", got.CreditTotal, want.CreditTotal)
	}
	if !got.DebitTotal.Equal(want.DebitTotal) {
		t.Errorf("DebitTotal = %s, want %s", got.DebitTotal, want.DebitTotal)
	}
	if !got.NetBalance.Equal(want.NetBalance) {
		t.Errorf("NetBalance = %s, want %s", got.NetBalance, want.NetBalance)
	}
	if got.Count != want.Count {
		t.Errorf("Count = %d, want %d", got.Count, want.Count)
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	txns := []*models.Transaction{
		txn(1, models.Credit, "100.10", "a"),
		txn(2, models.Debit, "30.03", "b"),
		txn(3, models.Credit, "0.07", "a"),
		txn(4, models.Debit, "12.5", "c"),
		txn(5, models.Credit, "999.99", "b"),
		txn(6, models.TransactionType("expense"), "1", "c"),
	}
	want, err := Summarize(txns)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]*models.Transaction, len(txns))
		copy(shuffled, txns)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := Summarize(shuffled)
		if err != nil {
			t.Fatalf("Summarize() error: %v", err)
		}
		assertSummary(t, got, want)
	}
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	txns := []*models.Transaction{
		txn(1, models.Credit, "10", "a"),
		txn(2, models.Debit, "4", "a"),
	}
	if _, err := Summarize(txns); err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if txns[0].ID != 1 || txns[1].ID != 2 {
		t.Error("input order changed")
	}
	if !txns[0].Amount.Decimal.Equal(dec("10")) {
		t.Errorf("input amount changed: %s", txns[0].Amount.Decimal)
	}
}

func TestSummary_Rounded(t *testing.T) {
	s := Summary{CreditTotal: dec("10.005"), DebitTotal: dec("0.004"), NetBalance: dec("10.001"), Count: 2}
	got := s.Rounded(DisplayPlaces)
	assertSummary(t, got, Summary{CreditTotal: dec("10.01"), DebitTotal: dec("0"), NetBalance: dec("10"), Count: 2})
}

func TestPerAuthorBreakdown(t *testing.T) {
	alice := &models.Profile{ID: "A", Name: "Alice", Role: models.RoleCashier}
	bob := &models.Profile{ID: "B", Name: "Bob", Role: models.RoleCashier}
	carol := &models.Profile{ID: "C", Name: "Carol", Role: models.RoleCashier}

	t.Run("authors without transactions are omitted", func(t *testing.T) {
		got, err := PerAuthorBreakdown([]*models.Transaction{
			txn(1, models.Credit, "50", "A"),
			txn(2, models.Debit, "10", "A"),
		}, []*models.Profile{alice, bob})
		if err != nil {
			t.Fatalf("PerAuthorBreakdown() error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 author, got %d", len(got))
		}
		a := got[0]
		if a.AuthorID != "A" || a.Name != "Alice" {
			t.Errorf("unexpected author %s/%s", a.AuthorID, a.Name)
		}
		if !a.CreditTotal.Equal(dec("50")) || !a.DebitTotal.Equal(dec("10")) || !a.NetTotal.Equal(dec("40")) {
			t.Errorf("totals = %s/%s/%s, want 50/10/40", a.CreditTotal, a.DebitTotal, a.NetTotal)
		}
	})

	t.Run("sorted by author ID", func(t *testing.T) {
		got, err := PerAuthorBreakdown([]*models.Transaction{
			txn(1, models.Credit, "5", "C"),
			txn(2, models.Credit, "7", "A"),
			txn(3, models.Debit, "1", "B"),
		}, []*models.Profile{carol, bob, alice})
		if err != nil {
			t.Fatalf("PerAuthorBreakdown() error: %v", err)
		}
		var ids []string
		for _, a := range got {
			ids = append(ids, a.AuthorID)
		}
		if len(ids) != 3 || ids[0] != "A" || ids[1] != "B" || ids[2] != "C" {
			t.Errorf("order = %v, want [A B C]", ids)
		}
	})

	t.Run("unknown and missing authors are ignored", func(t *testing.T) {
		got, err := PerAuthorBreakdown([]*models.Transaction{
			txn(1, models.Credit, "5", "ghost"),
			txn(2, models.Credit, "5", ""),
		}, []*models.Profile{alice})
		if err != nil {
			t.Fatalf("PerAuthorBreakdown() error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no authors, got %d", len(got))
		}
	})

	t.Run("integrity error is surfaced", func(t *testing.T) {
		_, err := PerAuthorBreakdown([]*models.Transaction{
			{ID: 9, Type: models.Credit, CreatedBy: "A"},
		}, []*models.Profile{alice})
		if !errors.Is(err, ErrDataIntegrity) {
			t.Errorf("error = %v, want ErrDataIntegrity", err)
		}
	})
}

func TestMyTransactions(t *testing.T) {
	txns := []*models.Transaction{
		txn(5, models.Credit, "1", "A"),
		txn(4, models.Debit, "2", "B"),
		txn(3, models.Credit, "3", "A"),
		txn(2, models.Credit, "4", ""),
		txn(1, models.Debit, "5", "A"),
	}

	got := MyTransactions(txns, "A")
	want := []int64{5, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got ID %d, want %d", i, got[i].ID, id)
		}
	}

	if len(MyTransactions(txns, "nobody")) != 0 {
		t.Error("expected no transactions for unknown author")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"120", "BDT", "120.00 BDT"},
		{"0.5", "BDT", "0.50 BDT"},
		{"-14.755", "BDT", "-14.76 BDT"},
		{"3", "", "3.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatAmount(dec(tt.amount), tt.currency); got != tt.want {
				t.Errorf("FormatAmount(%s, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}
