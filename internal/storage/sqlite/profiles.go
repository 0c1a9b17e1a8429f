package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/mosquefund/internal/models"
)

// ListProfilesByRoles retrieves every profile whose role is one of roles.
func (s *SQLiteStore) ListProfilesByRoles(ctx context.Context, roles ...models.Role) ([]*models.Profile, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	args := make([]interface{}, len(roles))
	for i, r := range roles {
		args[i] = string(r)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, role, pin FROM profiles
		 WHERE role IN (`+placeholders(len(roles))+`)
		 ORDER BY name, id`,
		args...,
	)
	if err != nil {
		return nil, unavailable("list profiles", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, unavailable("scan profile", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate profiles", err)
	}

	return profiles, nil
}

// CreateProfile inserts a new profile.
func (s *SQLiteStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if !profile.Role.Valid() {
		return fmt.Errorf("invalid role %q", profile.Role)
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO profiles (id, name, role, pin) VALUES (?, ?, ?, ?)",
		profile.ID, profile.Name, string(profile.Role), nullable(profile.PIN),
	)
	if err != nil {
		return unavailable("insert profile", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	profile := &models.Profile{}
	var role string
	var pin sql.NullString
	if err := row.Scan(&profile.ID, &profile.Name, &role, &pin); err != nil {
		return nil, err
	}
	profile.Role = models.Role(role)
	if pin.Valid {
		profile.PIN = pin.String
	}
	return profile, nil
}
