package service

import (
	"github.com/mmynk/mosquefund/internal/calculator"
	"github.com/mmynk/mosquefund/internal/models"
	"github.com/mmynk/mosquefund/internal/session"
	"github.com/mmynk/mosquefund/pkg/api"
)

func toAPITransaction(txn *models.Transaction) *api.Transaction {
	return &api.Transaction{
		ID:          txn.ID,
		Type:        string(txn.Type),
		Amount:      txn.Amount,
		Description: txn.Description,
		CreatedBy:   txn.CreatedBy,
		CreatedAt:   txn.CreatedAt,
	}
}

func toAPITransactions(txns []*models.Transaction) []*api.Transaction {
	out := make([]*api.Transaction, 0, len(txns))
	for _, txn := range txns {
		out = append(out, toAPITransaction(txn))
	}
	return out
}

// toAPISummary rounds for display; the exact totals are kept in the calculator.
func toAPISummary(s calculator.Summary, currency string) *api.Summary {
	r := s.Rounded(calculator.DisplayPlaces)
	return &api.Summary{
		CreditTotal: r.CreditTotal,
		DebitTotal:  r.DebitTotal,
		NetBalance:  r.NetBalance,
		Count:       r.Count,
		Display:     calculator.FormatAmount(r.NetBalance, currency),
	}
}

func toAPIBreakdown(rows []calculator.AuthorTotals) []*api.AuthorBreakdown {
	out := make([]*api.AuthorBreakdown, 0, len(rows))
	for _, r := range rows {
		out = append(out, &api.AuthorBreakdown{
			AuthorID:    r.AuthorID,
			Name:        r.Name,
			CreditTotal: r.CreditTotal.Round(calculator.DisplayPlaces),
			DebitTotal:  r.DebitTotal.Round(calculator.DisplayPlaces),
			NetTotal:    r.NetTotal.Round(calculator.DisplayPlaces),
			Count:       r.Count,
		})
	}
	return out
}

func toAPISession(s *session.Session) *api.SessionInfo {
	return &api.SessionInfo{
		ID:        s.ID,
		ProfileID: s.Profile.ID,
		Name:      s.Profile.Name,
		Role:      s.Profile.Role.String(),
		StartedAt: s.StartedAt,
	}
}

func toAPIMember(m *models.CommitteeMember) *api.CommitteeMember {
	return &api.CommitteeMember{
		ID:       m.ID,
		Name:     m.Name,
		Position: m.Position,
		Phone:    m.Phone,
		PhotoURL: m.PhotoURL,
	}
}
