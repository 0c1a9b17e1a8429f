package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/mosquefund/internal/calculator"
	"github.com/mmynk/mosquefund/internal/events"
	"github.com/mmynk/mosquefund/internal/metrics"
	"github.com/mmynk/mosquefund/internal/models"
	"github.com/mmynk/mosquefund/internal/storage"
	"github.com/mmynk/mosquefund/pkg/api"
)

// LedgerStore is the storage the ledger service needs.
type LedgerStore interface {
	storage.TransactionStore
	storage.ProfileStore
}

// LedgerService implements the LedgerService RPC interface.
type LedgerService struct {
	store     LedgerStore
	publisher events.Publisher
	currency  string
	logger    *slog.Logger
}

// NewLedgerService creates a ledger service. A nil publisher drops events.
func NewLedgerService(store LedgerStore, publisher events.Publisher, currency string, logger *slog.Logger) *LedgerService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &LedgerService{
		store:     store,
		publisher: publisher,
		currency:  currency,
		logger:    logger,
	}
}

// GetBalance returns the fund totals shown on the home screen.
func (s *LedgerService) GetBalance(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.GetBalanceResponse], error) {
	txns, err := s.store.ListTransactions(ctx)
	if err != nil {
		s.logger.Error("Failed to load ledger", "error", err)
		return nil, toConnectError(err)
	}

	summary, err := calculator.Summarize(txns)
	if err != nil {
		s.logger.Error("Ledger failed integrity check", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetBalanceResponse{
		Summary: toAPISummary(summary, s.currency),
	}), nil
}

// ListTransactions returns the full history, newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ListTransactionsResponse], error) {
	txns, err := s.store.ListTransactions(ctx)
	if err != nil {
		s.logger.Error("Failed to list transactions", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListTransactionsResponse{
		Transactions: toAPITransactions(txns),
	}), nil
}

// RecordTransaction adds a ledger entry authored by the signed-in cashier.
func (s *LedgerService) RecordTransaction(ctx context.Context, req *connect.Request[api.RecordTransactionRequest]) (*connect.Response[api.RecordTransactionResponse], error) {
	sess, err := requireRole(ctx, models.RoleCashier)
	if err != nil {
		return nil, err
	}

	txnType, description, err := validateRecordRequest(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	txn := models.NewTransaction(txnType, req.Msg.Amount, description, sess.Profile.ID)
	if err := s.store.CreateTransaction(ctx, txn); err != nil {
		s.logger.Error("Failed to record transaction", "profile_id", sess.Profile.ID, "error", err)
		return nil, toConnectError(err)
	}
	metrics.TransactionsRecorded.WithLabelValues(string(txn.Type)).Inc()

	if err := s.publisher.PublishTransactionRecorded(ctx, txn); err != nil {
		s.logger.Warn("Failed to publish transaction event", "id", txn.ID, "error", err)
	}

	s.logger.Info("Transaction recorded",
		"id", txn.ID,
		"type", txn.Type,
		"amount", calculator.FormatAmount(txn.Amount.Decimal, s.currency),
		"profile_id", sess.Profile.ID,
	)
	return connect.NewResponse(&api.RecordTransactionResponse{
		Transaction: toAPITransaction(txn),
	}), nil
}

// maxAmountDigits bounds the integer part of a recorded amount.
const maxAmountDigits = 12

// validateRecordRequest checks a new entry and returns its type and trimmed description.
func validateRecordRequest(msg *api.RecordTransactionRequest) (models.TransactionType, string, error) {
	txnType := models.TransactionType(strings.ToLower(strings.TrimSpace(msg.Type)))
	if !txnType.Valid() {
		return "", "", fmt.Errorf("type must be credit or debit, got %q", msg.Type)
	}
	if !msg.Amount.IsPositive() {
		return "", "", errors.New("amount must be greater than zero")
	}
	if err := validateAmountScale(msg.Amount); err != nil {
		return "", "", err
	}
	description := strings.TrimSpace(msg.Description)
	if description == "" {
		return "", "", errors.New("description is required")
	}
	return txnType, description, nil
}

// validateAmountScale rejects amounts outside what the ledger can display:
// more than maxAmountDigits integer digits or sub-cent fractions.
func validateAmountScale(amount decimal.Decimal) error {
	if amount.NumDigits()+int(amount.Exponent()) > maxAmountDigits {
		return fmt.Errorf("amount is too large, at most %d integer digits", maxAmountDigits)
	}
	// Trailing zeros such as 10.500 are fine. The exponent check keeps Round cheap.
	if amount.Exponent() < -calculator.DisplayPlaces {
		if amount.Exponent() < -18 || !amount.Equal(amount.Round(calculator.DisplayPlaces)) {
			return fmt.Errorf("amount has more than %d decimal places", calculator.DisplayPlaces)
		}
	}
	return nil
}

// MyTransactions returns the signed-in cashier's own entries and their totals.
func (s *LedgerService) MyTransactions(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.MyTransactionsResponse], error) {
	sess, err := requireRole(ctx, models.RoleCashier)
	if err != nil {
		return nil, err
	}

	// The query already restricts rows to the author; the filter keeps the
	// result correct should a store return more.
	txns, err := s.store.ListTransactionsByAuthor(ctx, sess.Profile.ID)
	if err != nil {
		s.logger.Error("Failed to list own transactions", "profile_id", sess.Profile.ID, "error", err)
		return nil, toConnectError(err)
	}
	mine := calculator.MyTransactions(txns, sess.Profile.ID)

	summary, err := calculator.Summarize(mine)
	if err != nil {
		s.logger.Error("Ledger failed integrity check", "profile_id", sess.Profile.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.MyTransactionsResponse{
		Transactions: toAPITransactions(mine),
		Summary:      toAPISummary(summary, s.currency),
	}), nil
}

// GetReport returns the overall totals and the per-cashier breakdown.
func (s *LedgerService) GetReport(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.GetReportResponse], error) {
	if _, err := requireRole(ctx, models.RoleAdmin); err != nil {
		return nil, err
	}

	var (
		txns     []*models.Transaction
		cashiers []*models.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = s.store.ListTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cashiers, err = s.store.ListProfilesByRoles(gctx, models.RoleCashier)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to load report data", "error", err)
		return nil, toConnectError(err)
	}

	summary, err := calculator.Summarize(txns)
	if err != nil {
		s.logger.Error("Ledger failed integrity check", "error", err)
		return nil, toConnectError(err)
	}
	breakdown, err := calculator.PerAuthorBreakdown(txns, cashiers)
	if err != nil {
		s.logger.Error("Ledger failed integrity check", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetReportResponse{
		Summary:     toAPISummary(summary, s.currency),
		Breakdown:   toAPIBreakdown(breakdown),
		GeneratedAt: time.Now().UTC(),
	}), nil
}
