package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/mosquefund/internal/models"
	"github.com/mmynk/mosquefund/internal/storage"
)

// ListCommitteeMembers retrieves all committee members, most recently added first.
func (s *SQLiteStore) ListCommitteeMembers(ctx context.Context) ([]*models.CommitteeMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, position, phone, photo_url
		 FROM committee ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, unavailable("list committee", err)
	}
	defer rows.Close()

	var members []*models.CommitteeMember
	for rows.Next() {
		member := &models.CommitteeMember{}
		var phone, photoURL sql.NullString
		if err := rows.Scan(&member.ID, &member.Name, &member.Position, &phone, &photoURL); err != nil {
			return nil, unavailable("scan committee member", err)
		}
		member.Phone = phone.String
		member.PhotoURL = photoURL.String
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate committee", err)
	}

	return members, nil
}

// CreateCommitteeMember inserts a new committee member.
func (s *SQLiteStore) CreateCommitteeMember(ctx context.Context, member *models.CommitteeMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO committee (id, name, position, phone, photo_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		member.ID, member.Name, member.Position,
		nullable(member.Phone), nullable(member.PhotoURL), time.Now().UnixNano(),
	)
	if err != nil {
		return unavailable("insert committee member", err)
	}
	return nil
}

// DeleteCommitteeMember removes a committee member by ID.
func (s *SQLiteStore) DeleteCommitteeMember(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM committee WHERE id = ?", id)
	if err != nil {
		return unavailable("delete committee member", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return unavailable("delete committee member", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: committee member %s", storage.ErrNotFound, id)
	}
	return nil
}
