// Package session holds the signed-in staff member and answers role checks.
//
// A Manager keeps at most one active Session. Authenticate replaces it,
// SignOut clears it, and Authorize is the single access rule used by every
// protected operation.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/mosquefund/internal/auth"
	"github.com/mmynk/mosquefund/internal/models"
	"github.com/mmynk/mosquefund/internal/storage"
)

var (
	ErrNotFound           = errors.New("profile not found")
	ErrInvalidCredentials = errors.New("incorrect PIN")
	ErrAccessDenied       = errors.New("access denied")
)

// PersistKey is the state key the active session is stored under.
const PersistKey = "userProfile"

// ProfileSource supplies the login candidates.
type ProfileSource interface {
	ListProfilesByRoles(ctx context.Context, roles ...models.Role) ([]*models.Profile, error)
}

// Session is the record of who is currently using the app.
type Session struct {
	ID        string         `json:"id"`
	Profile   models.Profile `json:"profile"`
	StartedAt time.Time      `json:"started_at"`
}

// Role returns the role the profile had at sign-in time.
func (s *Session) Role() models.Role {
	return s.Profile.Role
}

func (s *Session) clone() *Session {
	c := *s
	return &c
}

// Authorize is the access rule for protected operations: a session must exist
// and carry exactly the required role. It never changes any state.
func Authorize(s *Session, required models.Role) error {
	if s == nil {
		return fmt.Errorf("%w: not signed in", ErrAccessDenied)
	}
	if s.Profile.Role != required {
		return fmt.Errorf("%w: %s only", ErrAccessDenied, required)
	}
	return nil
}

// Manager owns the active session.
type Manager struct {
	profiles  ProfileSource
	persister storage.StateStore
	logger    *slog.Logger
	now       func() time.Time

	mu      sync.RWMutex
	current *Session
}

// NewManager creates a session manager. persister may be nil, in which case
// sessions do not survive a restart.
func NewManager(profiles ProfileSource, persister storage.StateStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		profiles:  profiles,
		persister: persister,
		logger:    logger,
		now:       time.Now,
	}
}

// ListCandidates returns every profile that may sign in.
// On a store failure the list is empty and the error wraps storage.ErrUnavailable.
func (m *Manager) ListCandidates(ctx context.Context) ([]models.Profile, error) {
	rows, err := m.profiles.ListProfilesByRoles(ctx, models.StaffRoles...)
	if err != nil {
		if !errors.Is(err, storage.ErrUnavailable) {
			err = fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
		}
		return []models.Profile{}, fmt.Errorf("list candidates: %w", err)
	}

	candidates := make([]models.Profile, 0, len(rows))
	for _, p := range rows {
		if p == nil || !p.Role.Valid() {
			continue
		}
		candidates = append(candidates, *p)
	}
	return candidates, nil
}

// Authenticate checks pin against the selected candidate and, on success,
// replaces the active session with a new one for that profile.
// A wrong PIN leaves the current session untouched.
func (m *Manager) Authenticate(ctx context.Context, profileID, pin string) (*Session, error) {
	candidates, err := m.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	var profile *models.Profile
	for i := range candidates {
		if candidates[i].ID == profileID {
			profile = &candidates[i]
			break
		}
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, profileID)
	}

	if !auth.VerifyPIN(profile.PIN, pin) {
		m.logger.WarnContext(ctx, "PIN rejected", "profile_id", profileID)
		return nil, ErrInvalidCredentials
	}

	s := &Session{
		ID:        uuid.New().String(),
		Profile:   *profile,
		StartedAt: m.now().UTC(),
	}

	// The store write happens under the lock so the persisted record always
	// matches the last writer.
	m.mu.Lock()
	m.current = s
	m.persist(ctx, s)
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "Session started",
		"session_id", s.ID,
		"profile_id", profile.ID,
		"role", profile.Role,
	)
	return s.clone(), nil
}

// Current returns the active session, or false if nobody is signed in.
func (m *Manager) Current() (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil, false
	}
	return m.current.clone(), true
}

// Lookup returns the active session if its ID is sessionID.
func (m *Manager) Lookup(sessionID string) (*Session, bool) {
	s, ok := m.Current()
	if !ok || s.ID != sessionID {
		return nil, false
	}
	return s, true
}

// IsAdmin reports whether an admin is signed in.
func (m *Manager) IsAdmin() bool {
	s, _ := m.Current()
	return Authorize(s, models.RoleAdmin) == nil
}

// IsCashier reports whether a cashier is signed in.
func (m *Manager) IsCashier() bool {
	s, _ := m.Current()
	return Authorize(s, models.RoleCashier) == nil
}

// SignOut clears the active session. Calling it with nobody signed in is a no-op.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// The persisted copy goes first so a failed delete cannot resurrect the
	// session on the next restart.
	if m.persister != nil {
		if err := m.persister.DeleteState(ctx, PersistKey); err != nil {
			return fmt.Errorf("clear persisted session: %w", err)
		}
	}

	prev := m.current
	m.current = nil
	if prev != nil {
		m.logger.InfoContext(ctx, "Session ended", "session_id", prev.ID, "profile_id", prev.Profile.ID)
	}
	return nil
}

// Restore loads the persisted session, if any. It is meant to run once at startup.
func (m *Manager) Restore(ctx context.Context) error {
	if m.persister == nil {
		return nil
	}

	data, ok, err := m.persister.LoadState(ctx, PersistKey)
	if err != nil {
		return fmt.Errorf("load persisted session: %w", err)
	}
	if !ok {
		return nil
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode persisted session: %w", err)
	}
	if s.ID == "" || !s.Profile.Role.Valid() {
		return fmt.Errorf("decode persisted session: incomplete record")
	}

	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "Session restored", "session_id", s.ID, "profile_id", s.Profile.ID)
	return nil
}

// persist saves s without its PIN. Failures are logged; the in-memory
// session stays valid either way.
func (m *Manager) persist(ctx context.Context, s *Session) {
	if m.persister == nil {
		return
	}
	stored := s.clone()
	stored.Profile.PIN = ""

	data, err := json.Marshal(stored)
	if err != nil {
		m.logger.ErrorContext(ctx, "Failed to encode session", "error", err)
		return
	}
	if err := m.persister.SaveState(ctx, PersistKey, data); err != nil {
		m.logger.ErrorContext(ctx, "Failed to persist session", "session_id", s.ID, "error", err)
	}
}
