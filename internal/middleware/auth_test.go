package middleware

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/mosquefund/internal/auth"
	"github.com/mmynk/mosquefund/internal/models"
	"github.com/mmynk/mosquefund/internal/session"
)

type fakeSessions struct {
	active *session.Session
}

func (f *fakeSessions) Lookup(id string) (*session.Session, bool) {
	if f.active == nil || f.active.ID != id {
		return nil, false
	}
	return f.active, true
}

func TestWithSession(t *testing.T) {
	jwtManager := auth.NewJWTManager("middleware-test-secret", time.Hour)
	profile := models.Profile{ID: "cashier-1", Name: "Bashir", Role: models.RoleCashier}
	active := &session.Session{ID: "s-active", Profile: profile}
	sessions := &fakeSessions{active: active}

	liveToken, err := jwtManager.Generate("s-active", profile)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	staleToken, err := jwtManager.Generate("s-old", profile)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	foreignToken, err := auth.NewJWTManager("some-other-secret", time.Hour).Generate("s-active", profile)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name        string
		header      string
		wantSession bool
	}{
		{"no header", "", false},
		{"live token", "Bearer " + liveToken, true},
		{"stale session", "Bearer " + staleToken, false},
		{"wrong secret", "Bearer " + foreignToken, false},
		{"not bearer", "Basic " + liveToken, false},
		{"malformed", "Bearer", false},
	}

	interceptor := WithSession(jwtManager, sessions)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *session.Session
			next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				got = SessionFrom(ctx)
				return connect.NewResponse(&emptypb.Empty{}), nil
			})

			req := connect.NewRequest(&emptypb.Empty{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			if _, err := interceptor(next)(context.Background(), req); err != nil {
				t.Fatalf("interceptor returned error: %v", err)
			}
			if tt.wantSession && (got == nil || got.ID != active.ID) {
				t.Errorf("expected session %s, got %+v", active.ID, got)
			}
			if !tt.wantSession && got != nil {
				t.Errorf("expected no session, got %+v", got)
			}
		})
	}
}

func TestProfileID(t *testing.T) {
	if got := ProfileID(context.Background()); got != "" {
		t.Errorf("ProfileID on empty context = %q", got)
	}
	s := &session.Session{ID: "s1", Profile: models.Profile{ID: "admin-1", Role: models.RoleAdmin}}
	ctx := context.WithValue(context.Background(), SessionKey, s)
	if got := ProfileID(ctx); got != "admin-1" {
		t.Errorf("ProfileID = %q, want admin-1", got)
	}
}
